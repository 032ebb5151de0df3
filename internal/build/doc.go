// SPDX-License-Identifier: MPL-2.0

// Package build runs the compilation pipeline end to end.
//
// A build validates the spec, normalizes the command hierarchy, resolves hook
// bindings, assembles the IR, and renders every requested target language.
// Spec-level failures (parse errors, duplicate paths, diagnostics above the
// mode's threshold) abort the build before any rendering starts; per-language
// render failures do not — the other languages still complete, and partial
// success is reported as such.
package build
