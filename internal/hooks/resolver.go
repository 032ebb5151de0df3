// SPDX-License-Identifier: MPL-2.0

// Package hooks derives the business-logic entry-point names generated
// programs call, one per executable command node.
//
// The name is a pure function of the command's full path: identical paths
// always produce identical names, across builds and across target languages.
// Two distinct paths can still collide after separator normalization
// ("list-models" vs "list models"); that is detected here and surfaced as a
// validation error before IR assembly, never resolved silently.
package hooks

import (
	"fmt"
	"strings"

	"goobits-cli/internal/hierarchy"
)

// CommandNameParameter is the discriminator every hook receives alongside the
// command's own argument and option values.
const CommandNameParameter = "command_name"

type (
	// Binding ties one executable command node to its hook.
	Binding struct {
		// Path is the full root-to-node command path.
		Path []string
		// HookName is the derived entry-point name.
		HookName string
		// ExpectedParameters are the names the hook is invoked with: the
		// command_name discriminator plus every argument and option name.
		ExpectedParameters []string
	}

	// CollisionError reports two distinct command paths deriving the same
	// hook name.
	CollisionError struct {
		HookName string
		First    []string
		Second   []string
	}
)

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("hook name %q derived from both %q and %q",
		e.HookName,
		strings.Join(e.First, " "),
		strings.Join(e.Second, " "))
}

// HookName derives the entry-point name for a command path:
// "on_" + the lowercased segments joined with underscores, with internal
// hyphens normalized to underscores.
//
//	["status"]        -> "on_status"
//	["config", "get"] -> "on_config_get"
//	["list-models"]   -> "on_list_models"
func HookName(path []string) string {
	segments := make([]string, len(path))
	for i, seg := range path {
		segments[i] = strings.ToLower(strings.ReplaceAll(seg, "-", "_"))
	}
	return "on_" + strings.Join(segments, "_")
}

// Resolve derives one Binding per executable (non-group) node of the
// hierarchy, in declaration order, and checks the derived names for
// collisions across the whole tree. Global options are appended to every
// binding's expected parameters.
func Resolve(h *hierarchy.Hierarchy, globalOptions []string) ([]Binding, error) {
	var bindings []Binding
	owners := make(map[string][]string)

	var resolveErr error
	h.Walk(func(node *hierarchy.CommandNode) {
		if resolveErr != nil || node.IsGroup() {
			return
		}

		name := HookName(node.Path)
		if first, taken := owners[name]; taken {
			resolveErr = &CollisionError{HookName: name, First: first, Second: node.Path}
			return
		}
		owners[name] = node.Path

		params := []string{CommandNameParameter}
		params = append(params, node.Spec.ParameterNames()...)
		params = append(params, globalOptions...)

		bindings = append(bindings, Binding{
			Path:               node.Path,
			HookName:           name,
			ExpectedParameters: dedupe(params),
		})
	})

	if resolveErr != nil {
		return nil, resolveErr
	}
	return bindings, nil
}

// dedupe removes later duplicates while preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
