// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"goobits-cli/pkg/cueutil"

	"cuelang.org/go/cue"
)

//go:embed spec_schema.cue
var specSchema string

// DefaultSpecFileName is the conventional spec file name looked up by the
// front end when no explicit path is given.
const DefaultSpecFileName = "cli.cue"

// SpecError reports malformed spec input. It is raised before validation runs,
// so no diagnostics accompany it; the build aborts for every target language.
type SpecError struct {
	// Path is the spec file the error originated from.
	Path string
	// Cause is the underlying parse or decode failure.
	Cause error
}

// Error implements the error interface.
func (e *SpecError) Error() string {
	return fmt.Sprintf("malformed spec %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *SpecError) Unwrap() error { return e.Cause }

// Parse reads and parses a spec file from the given path. The serialization
// format is chosen by extension: .yaml/.yml files are converted through CUE's
// YAML encoding, everything else is parsed as CUE. Both forms are unified
// against the same embedded schema.
func Parse(path string) (*CLISpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec at %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLBytes(data, path)
	default:
		return ParseBytes(data, path)
	}
}

// ParseBytes parses CUE spec content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema, compile user data, validate and decode.
func ParseBytes(data []byte, path string) (*CLISpec, error) {
	result, err := cueutil.ParseAndDecodeString[CLISpec](
		specSchema,
		data,
		"#CLISpec",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, &SpecError{Path: path, Cause: err}
	}
	return finishParse(result, path)
}

// ParseYAMLBytes parses YAML spec content from bytes, holding it to the same
// schema as native CUE input.
func ParseYAMLBytes(data []byte, path string) (*CLISpec, error) {
	result, err := cueutil.ParseYAMLAndDecode[CLISpec](
		[]byte(specSchema),
		data,
		"#CLISpec",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, &SpecError{Path: path, Cause: err}
	}
	return finishParse(result, path)
}

// finishParse fills in the parts of the model that plain decoding cannot
// provide: the ordered command tree (walked from the unified CUE value so
// declaration order survives) and the source path.
func finishParse(result *cueutil.ParseResult[CLISpec], path string) (*CLISpec, error) {
	spec := result.Value
	spec.FilePath = path

	commands, err := decodeCommandTree(result.Unified.LookupPath(cue.ParsePath("commands")))
	if err != nil {
		return nil, &SpecError{Path: path, Cause: err}
	}
	spec.Commands = commands

	return spec, nil
}

// decodeCommandTree converts a CUE struct of command declarations into an
// ordered []CommandSpec. CUE field iteration follows source order, which is
// what makes two builds of an unchanged spec byte-identical.
func decodeCommandTree(v cue.Value) ([]CommandSpec, error) {
	if !v.Exists() {
		return nil, nil
	}

	iter, err := v.Fields()
	if err != nil {
		return nil, fmt.Errorf("commands is not a struct: %w", err)
	}

	var commands []CommandSpec
	for iter.Next() {
		name := iter.Selector().Unquoted()

		cmd, err := decodeCommand(name, iter.Value())
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}
	return commands, nil
}

// decodeCommand decodes one command node and recurses into its subcommands.
func decodeCommand(name string, v cue.Value) (CommandSpec, error) {
	var cmd CommandSpec
	if err := v.Decode(&cmd); err != nil {
		return CommandSpec{}, fmt.Errorf("command %q: %w", name, err)
	}
	cmd.Name = name

	subs, err := decodeCommandTree(v.LookupPath(cue.ParsePath("subcommands")))
	if err != nil {
		return CommandSpec{}, fmt.Errorf("command %q: %w", name, err)
	}
	cmd.Subcommands = subs

	return cmd, nil
}
