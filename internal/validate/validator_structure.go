// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"

	"goobits-cli/pkg/clispec"
)

// reservedParameterNames are option/argument names the generated programs
// claim for themselves on every command.
var reservedParameterNames = map[string]bool{
	"help":         true,
	"version":      true,
	"command_name": true,
}

// targetKeywords are identifiers that are a keyword in at least one supported
// target language. A command or parameter using one would force every
// renderer to mangle it, so the structure validator rejects them up front.
var targetKeywords = map[string]bool{
	"as": true, "async": true, "await": true, "break": true, "class": true,
	"const": true, "continue": true, "def": true, "del": true, "do": true,
	"else": true, "enum": true, "export": true, "fn": true, "for": true,
	"from": true, "function": true, "if": true, "impl": true, "import": true,
	"in": true, "is": true, "lambda": true, "let": true, "loop": true,
	"match": true, "mod": true, "mut": true, "new": true, "pass": true,
	"pub": true, "raise": true, "return": true, "self": true, "static": true,
	"struct": true, "super": true, "trait": true, "try": true, "type": true,
	"unsafe": true, "use": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

// StructureValidator validates the structural correctness of the command tree:
// sibling name uniqueness, default-command multiplicity, argument ordering,
// variadic placement, duplicate parameter names, and reserved identifiers.
// It collects ALL findings rather than stopping at the first.
type StructureValidator struct{}

// Name returns the validator name.
func (v *StructureValidator) Name() string { return "structure" }

// DependsOn returns no dependencies; structure runs first.
func (v *StructureValidator) DependsOn() []string { return nil }

// Validate checks the spec structure and collects all findings.
func (v *StructureValidator) Validate(ctx *Context) []Diagnostic {
	var diags []Diagnostic

	if len(ctx.Spec.Commands) == 0 {
		diags = append(diags, Diagnostic{
			Severity:  SeverityCritical,
			Validator: v.Name(),
			Message:   "spec has no commands defined (missing or empty 'commands' map)",
		})
		return diags
	}

	diags = append(diags, v.validateSiblings(nil, ctx.Spec.Commands)...)
	diags = append(diags, v.validateOptionSet(nil, ctx.Spec.GlobalOptions, "global_options")...)

	walkSpec(ctx.Spec, func(path []string, cmd *clispec.CommandSpec) {
		diags = append(diags, v.validateCommand(path, cmd)...)
		if cmd.IsGroup() {
			diags = append(diags, v.validateSiblings(path, cmd.Subcommands)...)
		}
	})

	return diags
}

// validateSiblings checks one sibling set: unique names and at most one default.
func (v *StructureValidator) validateSiblings(parent []string, siblings []clispec.CommandSpec) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool, len(siblings))
	defaults := 0
	for i := range siblings {
		name := siblings[i].Name
		if seen[name] {
			diags = append(diags, Diagnostic{
				Severity:  SeverityCritical,
				Validator: v.Name(),
				Location:  locationOf(parent, name),
				Message:   fmt.Sprintf("duplicate sibling command %q", name),
				Suggestion: "rename one of the commands; sibling names must be " +
					"unique within their parent",
			})
		}
		seen[name] = true
		if siblings[i].IsDefault {
			defaults++
		}
	}

	if defaults > 1 {
		diags = append(diags, Diagnostic{
			Severity:   SeverityError,
			Validator:  v.Name(),
			Location:   locationOf(parent),
			Message:    fmt.Sprintf("%d sibling commands marked is_default, at most one is allowed", defaults),
			Suggestion: "keep is_default on a single command per sibling set",
		})
	}

	return diags
}

// validateCommand checks one command node: its name, arguments, and options.
func (v *StructureValidator) validateCommand(path []string, cmd *clispec.CommandSpec) []Diagnostic {
	var diags []Diagnostic

	if ok, errs := clispec.CommandName(cmd.Name).IsValid(); !ok {
		for _, err := range errs {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  locationOf(path),
				Message:   err.Error(),
			})
		}
	}
	if targetKeywords[cmd.Name] {
		diags = append(diags, Diagnostic{
			Severity:   SeverityError,
			Validator:  v.Name(),
			Location:   locationOf(path),
			Message:    fmt.Sprintf("command name %q is a keyword in a target language", cmd.Name),
			Suggestion: fmt.Sprintf("try %q", cmd.Name+"-cmd"),
		})
	}

	diags = append(diags, v.validateArgumentSet(path, cmd.Arguments)...)
	diags = append(diags, v.validateOptionSet(path, cmd.Options, "options")...)

	return diags
}

// validateArgumentSet checks ordering rules across a command's arguments:
// required before optional, variadic last, names unique.
func (v *StructureValidator) validateArgumentSet(path []string, args []clispec.ArgumentSpec) []Diagnostic {
	var diags []Diagnostic

	seen := make(map[string]bool, len(args))
	sawOptional := false
	for i := range args {
		arg := &args[i]
		loc := locationOf(path, "arguments", arg.Name)

		if seen[arg.Name] {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   fmt.Sprintf("duplicate argument name %q", arg.Name),
			})
		}
		seen[arg.Name] = true

		if reservedParameterNames[arg.Name] || targetKeywords[arg.Name] {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   fmt.Sprintf("argument name %q is reserved", arg.Name),
			})
		}

		if arg.Required && sawOptional {
			diags = append(diags, Diagnostic{
				Severity:   SeverityError,
				Validator:  v.Name(),
				Location:   loc,
				Message:    "required argument declared after an optional one",
				Suggestion: "move required arguments before all optional arguments",
			})
		}
		if !arg.Required {
			sawOptional = true
		}

		if arg.Variadic && i != len(args)-1 {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   "variadic argument must be the last argument of the command",
			})
		}
	}

	return diags
}

// validateOptionSet checks an option list (per-command or global).
func (v *StructureValidator) validateOptionSet(path []string, opts []clispec.OptionSpec, kind string) []Diagnostic {
	var diags []Diagnostic

	seenLong := make(map[string]bool, len(opts))
	seenShort := make(map[string]bool, len(opts))
	for i := range opts {
		opt := &opts[i]
		loc := locationOf(path, kind, opt.Name)

		if seenLong[opt.Name] {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   fmt.Sprintf("duplicate option name %q", opt.Name),
			})
		}
		seenLong[opt.Name] = true

		if reservedParameterNames[opt.Name] || targetKeywords[opt.Name] {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  loc,
				Message:   fmt.Sprintf("option name %q is reserved", opt.Name),
			})
		}

		if opt.Short != "" {
			if seenShort[opt.Short] {
				diags = append(diags, Diagnostic{
					Severity:  SeverityError,
					Validator: v.Name(),
					Location:  loc,
					Message:   fmt.Sprintf("short alias %q already used by another option", opt.Short),
				})
			}
			seenShort[opt.Short] = true
		}
	}

	return diags
}
