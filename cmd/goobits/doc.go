// SPDX-License-Identifier: MPL-2.0

// Command goobits compiles declarative CLI specs into per-language source
// packages. It contains all CLI commands of the tool.
package main
