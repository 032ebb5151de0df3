// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"

	"goobits-cli/pkg/clispec"
)

// manyParametersThreshold is where a command's combined argument and option
// count starts hurting the generated hook signatures.
const manyParametersThreshold = 8

// ParameterHintValidator emits optimization hints in development mode:
// oversized parameter lists and commands whose hook would receive no
// parameters beyond the discriminator. Hints are informational only.
type ParameterHintValidator struct{}

// Name returns the validator name.
func (v *ParameterHintValidator) Name() string { return "parameter-hints" }

// DependsOn declares that hook names must already be resolved; the hints
// reference them via the shared context.
func (v *ParameterHintValidator) DependsOn() []string { return []string{"hooks"} }

// HintOnly marks this validator as development-mode only.
func (v *ParameterHintValidator) HintOnly() bool { return true }

// Validate emits hints for every executable command.
func (v *ParameterHintValidator) Validate(ctx *Context) []Diagnostic {
	hookNames, _ := ctx.Shared[SharedHookNames].(map[string]string)

	var diags []Diagnostic
	walkSpec(ctx.Spec, func(path []string, cmd *clispec.CommandSpec) {
		if cmd.IsGroup() {
			return
		}

		hook := hookNames[locationOf(path)]
		params := len(cmd.ParameterNames())

		if params > manyParametersThreshold {
			diags = append(diags, Diagnostic{
				Severity:  SeverityInfo,
				Validator: v.Name(),
				Location:  locationOf(path),
				Message: fmt.Sprintf("hook %s receives %d parameters (threshold %d)",
					hook, params, manyParametersThreshold),
				Suggestion: "group related options or split the command",
			})
		}

		if params == 0 && cmd.Description == "" {
			diags = append(diags, Diagnostic{
				Severity:   SeverityInfo,
				Validator:  v.Name(),
				Location:   locationOf(path),
				Message:    fmt.Sprintf("hook %s takes no parameters and the command has no description", hook),
				Suggestion: "add a desc so generated help is not empty",
			})
		}
	})
	return diags
}
