// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"fmt"

	"goobits-cli/pkg/clispec"
)

// DefaultMaxDepth is the nesting depth above which DepthValidator warns.
// The hierarchy builder itself never rejects depth.
const DefaultMaxDepth = 5

// DepthValidator warns when commands nest deeper than a threshold. Deep trees
// are legal — the pipeline handles unbounded nesting — but they tend to make
// the generated CLI hard to discover.
type DepthValidator struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Name returns the validator name.
func (v *DepthValidator) Name() string { return "depth" }

// DependsOn declares that structure runs first.
func (v *DepthValidator) DependsOn() []string { return []string{"structure"} }

// Validate warns for every node beyond the threshold.
func (v *DepthValidator) Validate(ctx *Context) []Diagnostic {
	limit := v.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}

	var diags []Diagnostic
	walkSpec(ctx.Spec, func(path []string, _ *clispec.CommandSpec) {
		if len(path) == limit+1 {
			// Report once at the first level past the threshold, not for
			// every descendant below it.
			diags = append(diags, Diagnostic{
				Severity:   SeverityWarning,
				Validator:  v.Name(),
				Location:   locationOf(path),
				Message:    fmt.Sprintf("command nested %d levels deep (threshold %d)", len(path), limit),
				Suggestion: "consider flattening rarely-used intermediate groups",
			})
		}
	})
	return diags
}
