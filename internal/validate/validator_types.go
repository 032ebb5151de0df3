// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"

	"goobits-cli/pkg/clispec"
)

// TypeValidator checks that every declared argument and option type is a
// member of the closed type enum, and that choice-typed values carry a
// choices list. The CUE schema already rejects unknown type strings at load
// time; this validator is the backstop for specs constructed in code.
type TypeValidator struct{}

// Name returns the validator name.
func (v *TypeValidator) Name() string { return "types" }

// DependsOn declares that structure runs first.
func (v *TypeValidator) DependsOn() []string { return []string{"structure"} }

// Validate checks all type declarations and collects all findings.
func (v *TypeValidator) Validate(ctx *Context) []Diagnostic {
	var diags []Diagnostic

	diags = append(diags, v.validateOptions(nil, "global_options", ctx.Spec.GlobalOptions)...)

	walkSpec(ctx.Spec, func(path []string, cmd *clispec.CommandSpec) {
		for i := range cmd.Arguments {
			arg := &cmd.Arguments[i]
			loc := locationOf(path, "arguments", arg.Name)

			if ok, errs := arg.Type.IsValid(); !ok {
				for _, err := range errs {
					diags = append(diags, Diagnostic{
						Severity:  SeverityError,
						Validator: v.Name(),
						Location:  loc,
						Message:   err.Error(),
					})
				}
				continue
			}

			if arg.GetType() == clispec.ArgumentTypeChoice {
				diags = append(diags, Diagnostic{
					Severity:   SeverityError,
					Validator:  v.Name(),
					Location:   loc,
					Message:    "choice-typed arguments are not supported; use a choice option instead",
					Suggestion: "positional choices have no portable syntax across targets",
				})
			}
		}

		diags = append(diags, v.validateOptions(path, "options", cmd.Options)...)
	})

	return diags
}

// validateOptions checks one option list for type-enum membership and
// choice/flag consistency.
func (v *TypeValidator) validateOptions(path []string, kind string, opts []clispec.OptionSpec) []Diagnostic {
	var diags []Diagnostic

	for i := range opts {
		opt := &opts[i]
		loc := locationOf(path, kind, opt.Name)

		if ok, errs := opt.Type.IsValid(); !ok {
			for _, err := range errs {
				diags = append(diags, Diagnostic{
					Severity:  SeverityError,
					Validator: v.Name(),
					Location:  loc,
					Message:   err.Error(),
				})
			}
			continue
		}

		effective := opt.GetType()

		if effective == clispec.OptionTypeChoice && len(opt.Choices) == 0 {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   "choice-typed option declares no choices",
			})
		}
		if effective != clispec.OptionTypeChoice && len(opt.Choices) > 0 {
			diags = append(diags, Diagnostic{
				Severity:   SeverityWarning,
				Validator:  v.Name(),
				Location:   loc,
				Message:    fmt.Sprintf("choices declared on %s-typed option are ignored", effective),
				Suggestion: `set type: "choice"`,
			})
		}
		if opt.Flag && effective != clispec.OptionTypeBool {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   fmt.Sprintf("flag option cannot have type %q", effective),
			})
		}
	}

	return diags
}
