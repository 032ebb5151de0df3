// SPDX-License-Identifier: MPL-2.0

package hierarchy

import (
	"goobits-cli/pkg/clispec"
)

type (
	// CommandNode is one node of the canonical rebuilt tree.
	CommandNode struct {
		// Name is the node's own path segment.
		Name string
		// Path is the full root-to-node path.
		Path []string
		// Spec is the underlying command declaration. Never mutated.
		Spec *clispec.CommandSpec
		// Children are the direct subcommands in declaration order.
		Children []*CommandNode
	}

	// Hierarchy is the canonical ordered tree rebuilt from flattened commands.
	// Derived per build and discarded after IR assembly.
	Hierarchy struct {
		// Roots are the top-level commands in declaration order.
		Roots []*CommandNode
		// MaxDepth is the deepest node's depth (0 for an empty hierarchy).
		MaxDepth int

		// byKey indexes every node by its PathKey for O(1) lookup.
		byKey map[string]*CommandNode
	}
)

// Rebuild reconstructs the canonical tree from a flat command list by grouping
// each entry under its parent path. Insertion order is preserved exactly as
// declared, which is what makes two builds of an unchanged spec byte-identical.
//
// Flatten emits parents before children, so a single pass suffices.
func Rebuild(flat []FlatCommand) *Hierarchy {
	h := &Hierarchy{byKey: make(map[string]*CommandNode, len(flat))}

	for i := range flat {
		f := &flat[i]
		node := &CommandNode{
			Name: f.Name(),
			Path: f.Path,
			Spec: f.Spec,
		}
		h.byKey[PathKey(f.Path)] = node

		if f.Depth > h.MaxDepth {
			h.MaxDepth = f.Depth
		}

		if parent, ok := h.byKey[f.ParentKey()]; ok && f.Depth > 1 {
			parent.Children = append(parent.Children, node)
		} else {
			h.Roots = append(h.Roots, node)
		}
	}

	return h
}

// Normalize flattens and rebuilds in one step.
func Normalize(spec *clispec.CLISpec) (*Hierarchy, error) {
	flat, err := Flatten(spec)
	if err != nil {
		return nil, err
	}
	return Rebuild(flat), nil
}

// Lookup returns the node at the given full path, or nil.
func (h *Hierarchy) Lookup(path ...string) *CommandNode {
	return h.byKey[PathKey(path)]
}

// Len returns the total number of nodes.
func (h *Hierarchy) Len() int {
	return len(h.byKey)
}

// Walk visits every node depth-first in declaration order.
func (h *Hierarchy) Walk(fn func(node *CommandNode)) {
	var walk func(nodes []*CommandNode)
	walk = func(nodes []*CommandNode) {
		for _, n := range nodes {
			fn(n)
			walk(n.Children)
		}
	}
	walk(h.Roots)
}

// IsGroup reports whether the node dispatches to children rather than
// executing a hook of its own.
func (n *CommandNode) IsGroup() bool {
	return len(n.Children) > 0
}

// Equal reports structural equality of two hierarchies: same paths in the
// same order with the same grouping. Used by the flatten/rebuild round-trip
// tests.
func (h *Hierarchy) Equal(other *Hierarchy) bool {
	if h.Len() != other.Len() {
		return false
	}

	var collect func(nodes []*CommandNode, out *[]string)
	collect = func(nodes []*CommandNode, out *[]string) {
		for _, n := range nodes {
			*out = append(*out, PathKey(n.Path))
			collect(n.Children, out)
		}
	}

	var a, b []string
	collect(h.Roots, &a)
	collect(other.Roots, &b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
