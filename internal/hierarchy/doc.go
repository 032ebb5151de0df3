// SPDX-License-Identifier: MPL-2.0

// Package hierarchy normalizes the nested command tree of a spec.
//
// The flatten/rebuild pair converts the recursive CommandSpec tree into a
// path-addressed flat list and back into a canonical, order-preserving tree.
// The flat form makes structural-equality tests and duplicate-path conflict
// detection simple map operations instead of recursive tree-walks; the rebuilt
// tree is what IR assembly and the renderers consume.
//
// For every well-formed spec, Rebuild(Flatten(spec)) reproduces the declared
// structure exactly, including declaration order. Deterministic generated
// output depends on that ordering guarantee.
package hierarchy
