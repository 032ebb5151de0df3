// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"
	"slices"

	"goobits-cli/pkg/clispec"
)

// DefaultValueValidator checks that declared default values are consistent
// with their declared types, and that choice defaults are members of the
// choices list.
type DefaultValueValidator struct{}

// Name returns the validator name.
func (v *DefaultValueValidator) Name() string { return "defaults" }

// DependsOn declares that type checking runs first; a default against an
// invalid type would produce a confusing second finding.
func (v *DefaultValueValidator) DependsOn() []string { return []string{"types"} }

// Validate checks all default declarations and collects all findings.
func (v *DefaultValueValidator) Validate(ctx *Context) []Diagnostic {
	var diags []Diagnostic

	check := func(loc string, typ string, def any, choices []string, required bool) {
		if def == nil {
			return
		}
		if required {
			diags = append(diags, Diagnostic{
				Severity:   SeverityWarning,
				Validator:  v.Name(),
				Location:   loc,
				Message:    "default value on a required parameter is never used",
				Suggestion: "drop the default or mark the parameter optional",
			})
		}
		if msg := defaultTypeMismatch(typ, def); msg != "" {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   msg,
			})
		}
		if typ == string(clispec.OptionTypeChoice) && len(choices) > 0 {
			if s, ok := def.(string); ok && !slices.Contains(choices, s) {
				diags = append(diags, Diagnostic{
					Severity:  SeverityError,
					Validator: v.Name(),
					Location:  loc,
					Message:   fmt.Sprintf("default %q is not one of the declared choices", s),
				})
			}
		}
	}

	for i := range ctx.Spec.GlobalOptions {
		opt := &ctx.Spec.GlobalOptions[i]
		check(locationOf(nil, "global_options", opt.Name), string(opt.GetType()), opt.Default, opt.Choices, false)
	}

	walkSpec(ctx.Spec, func(path []string, cmd *clispec.CommandSpec) {
		for i := range cmd.Arguments {
			arg := &cmd.Arguments[i]
			check(locationOf(path, "arguments", arg.Name), string(arg.GetType()), arg.Default, nil, arg.Required)
		}
		for i := range cmd.Options {
			opt := &cmd.Options[i]
			check(locationOf(path, "options", opt.Name), string(opt.GetType()), opt.Default, opt.Choices, false)
		}
	})

	return diags
}

// defaultTypeMismatch returns a message when the default's dynamic type does
// not fit the declared spec type, or "" when it does. CUE decodes numbers
// without a fraction as int and everything else as their natural Go type.
func defaultTypeMismatch(typ string, def any) string {
	switch typ {
	case string(clispec.OptionTypeString), string(clispec.OptionTypePath), string(clispec.OptionTypeChoice):
		if _, ok := def.(string); !ok {
			return fmt.Sprintf("default %v does not match declared type %q", def, typ)
		}
	case string(clispec.OptionTypeInt):
		switch def.(type) {
		case int, int64:
		default:
			return fmt.Sprintf("default %v does not match declared type \"int\"", def)
		}
	case string(clispec.OptionTypeFloat):
		switch def.(type) {
		case float64, int, int64: // ints coerce losslessly
		default:
			return fmt.Sprintf("default %v does not match declared type \"float\"", def)
		}
	case string(clispec.OptionTypeBool):
		if _, ok := def.(bool); !ok {
			return fmt.Sprintf("default %v does not match declared type \"bool\"", def)
		}
	}
	return ""
}
