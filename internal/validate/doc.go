// SPDX-License-Identifier: MPL-2.0

// Package validate runs independent validators against a parsed CLI spec and
// aggregates their diagnostics.
//
// Validators declare a name and the names of validators they depend on. A
// Registry computes a topological execution order at registration time, so a
// cyclic dependency declaration is a configuration error surfaced immediately,
// never at run time. Diagnostics are always collected in full — no validator
// short-circuits its siblings — so a single run surfaces every problem at once.
//
// The registry is a plain value constructed per build invocation. Nothing here
// is process-global; that keeps concurrent builds (and the orchestrator's
// parallel rendering) free of hidden shared state.
package validate
