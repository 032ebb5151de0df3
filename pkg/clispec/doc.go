// SPDX-License-Identifier: MPL-2.0

// Package clispec defines the schema, typed model, and parsing for goobits
// CLI spec files.
//
// A spec file declares the complete surface of one command-line program:
// project metadata, global options, and an arbitrarily nested command tree
// with per-command arguments and options. The model is loaded once from CUE
// (or YAML, unified against the same CUE schema) and never mutated afterwards;
// every downstream pipeline stage treats it as read-only input.
//
// Command declaration order is significant. Spec files declare commands as CUE
// struct fields, and the parser walks the unified CUE value in source order so
// that CLISpec.Commands and CommandSpec.Subcommands preserve declaration order
// exactly. Deterministic generated output depends on this.
package clispec
