// SPDX-License-Identifier: MPL-2.0

// Package ir assembles the immutable intermediate representation every
// renderer consumes.
//
// The IR is constructed once per build from a validated spec, its normalized
// hierarchy, and the resolved hook bindings. Construction performs structural
// assembly only — defaults resolved, type names normalized, global options
// attached — and no semantic checks: calling Build against an invalid
// validation result is a contract violation, not a recoverable error.
package ir

import (
	"fmt"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"
)

type (
	// Project carries the CLI-wide metadata renderers stamp into manifests
	// and banners.
	Project struct {
		PackageName string
		CommandName string
		Version     string
		Description string
	}

	// IR is the complete language-agnostic description of one CLI. Treat it
	// as frozen: it is shared, unsynchronized, by every renderer — including
	// renderers running in parallel.
	IR struct {
		Project       Project
		GlobalOptions []clispec.OptionSpec
		Hierarchy     *hierarchy.Hierarchy
		Hooks         []hooks.Binding
	}

	// ContractError reports a pipeline-internal contract violation, such as
	// building an IR from an invalid validation result. It indicates a bug in
	// the caller, not a problem with the user's spec.
	ContractError struct {
		Stage  string
		Reason string
	}
)

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("pipeline contract violation in %s: %s", e.Stage, e.Reason)
}

// Build assembles the IR. The validation result must be valid and free of
// critical diagnostics; Build re-checks that single precondition (cheap, and
// the cost of assembling from a bad spec is silent garbage in every target)
// and otherwise performs no semantic validation.
func Build(spec *clispec.CLISpec, h *hierarchy.Hierarchy, bindings []hooks.Binding, result *validate.Result) (*IR, error) {
	if result == nil || !result.Valid || result.HasCritical() {
		return nil, &ContractError{
			Stage:  "ir",
			Reason: "IR assembly requires a valid validation result with no critical diagnostics",
		}
	}

	return &IR{
		Project: Project{
			PackageName: spec.PackageName,
			CommandName: spec.CommandName,
			Version:     spec.Version,
			Description: spec.Description,
		},
		GlobalOptions: normalizeOptions(spec.GlobalOptions),
		Hierarchy:     h,
		Hooks:         bindings,
	}, nil
}

// normalizeOptions resolves each option's effective type so renderers never
// see the zero-value shorthand.
func normalizeOptions(opts []clispec.OptionSpec) []clispec.OptionSpec {
	out := make([]clispec.OptionSpec, len(opts))
	copy(out, opts)
	for i := range out {
		out[i].Type = out[i].GetType()
	}
	return out
}

// Binding returns the hook binding for the given full path, or nil. Renderers
// use it to pair tree nodes with their entry points.
func (ir *IR) Binding(path []string) *hooks.Binding {
	key := hierarchy.PathKey(path)
	for i := range ir.Hooks {
		if hierarchy.PathKey(ir.Hooks[i].Path) == key {
			return &ir.Hooks[i]
		}
	}
	return nil
}
