// SPDX-License-Identifier: MPL-2.0

package hierarchy

import (
	"fmt"
	"strings"

	"goobits-cli/pkg/clispec"
)

type (
	// FlatCommand is one command node addressed by its full root-to-node path.
	// It exists only during normalization and is discarded after the canonical
	// tree is rebuilt.
	FlatCommand struct {
		// Path is the full path from the root, one segment per ancestor plus
		// the node's own name.
		Path []string
		// Depth is len(Path).
		Depth int
		// Spec points at the underlying command declaration. Never mutated.
		Spec *clispec.CommandSpec
	}

	// ConflictError reports two commands flattening to an identical full path.
	// A single well-formed spec cannot produce one, but merged or migrated
	// specs can. It is fatal: the build aborts for every target language.
	ConflictError struct {
		Path []string
	}
)

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate command path %q", strings.Join(e.Path, " "))
}

// PathKey renders a full path as the canonical map key used for grouping and
// conflict detection.
func PathKey(path []string) string {
	return strings.Join(path, "\x1f")
}

// Flatten walks the spec's command tree depth-first in declaration order and
// emits one FlatCommand per node. O(n) in the total node count; depth is
// not capped here (a validator may warn on it, the builder never rejects it).
//
// Returns a ConflictError if two nodes share a full path.
func Flatten(spec *clispec.CLISpec) ([]FlatCommand, error) {
	var flat []FlatCommand
	seen := make(map[string]bool)

	var walk func(prefix []string, cmds []clispec.CommandSpec) error
	walk = func(prefix []string, cmds []clispec.CommandSpec) error {
		for i := range cmds {
			cmd := &cmds[i]
			path := append(append([]string{}, prefix...), cmd.Name)

			key := PathKey(path)
			if seen[key] {
				return &ConflictError{Path: path}
			}
			seen[key] = true

			flat = append(flat, FlatCommand{
				Path:  path,
				Depth: len(path),
				Spec:  cmd,
			})

			if err := walk(path, cmd.Subcommands); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(nil, spec.Commands); err != nil {
		return nil, err
	}
	return flat, nil
}

// ParentKey returns the PathKey of the flat command's parent path
// ("" for top-level commands).
func (f *FlatCommand) ParentKey() string {
	if len(f.Path) <= 1 {
		return ""
	}
	return PathKey(f.Path[:len(f.Path)-1])
}

// Name returns the node's own name, the last path segment.
func (f *FlatCommand) Name() string {
	return f.Path[len(f.Path)-1]
}
