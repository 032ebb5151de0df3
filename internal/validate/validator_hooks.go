// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"
	"strings"

	"goobits-cli/internal/hooks"
	"goobits-cli/pkg/clispec"
)

// HookValidator derives the hook name of every executable command and checks
// the derived names for collisions across the whole tree. Two distinct paths
// can collide after separator normalization (a "list-models" command next to
// a "list models" group/leaf pair); that is an error here, before IR assembly,
// never silently resolved.
//
// The resolved names are published on the shared context under
// SharedHookNames so later validators reuse them instead of rederiving.
type HookValidator struct{}

// Name returns the validator name.
func (v *HookValidator) Name() string { return "hooks" }

// DependsOn declares that structure runs first; deriving names for a tree
// with duplicate siblings would double-report.
func (v *HookValidator) DependsOn() []string { return []string{"structure"} }

// Validate derives and collision-checks all hook names.
func (v *HookValidator) Validate(ctx *Context) []Diagnostic {
	var diags []Diagnostic

	hookNames := make(map[string]string) // slash path -> hook name
	owners := make(map[string][]string)  // hook name -> first owning path

	walkSpec(ctx.Spec, func(path []string, cmd *clispec.CommandSpec) {
		if cmd.IsGroup() {
			return
		}

		name := hooks.HookName(path)
		hookNames[locationOf(path)] = name

		if first, taken := owners[name]; taken {
			diags = append(diags, Diagnostic{
				Severity:  SeverityError,
				Validator: v.Name(),
				Location:  locationOf(path),
				Message: fmt.Sprintf("hook name %q already derived from command %q",
					name, strings.Join(first, " ")),
				Suggestion: "rename one of the commands so their underscore-joined paths differ",
			})
			return
		}
		owners[name] = path
	})

	ctx.Shared[SharedHookNames] = hookNames
	return diags
}
