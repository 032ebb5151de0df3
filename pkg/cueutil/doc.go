// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// The package consolidates the 3-step CUE parsing pattern used by the
// clispec and config packages:
//
//  1. Compile the embedded schema
//  2. Compile user data and unify with schema
//  3. Validate and decode to Go struct
//
// YAML inputs go through the same flow after being converted to a CUE
// expression, so a goobits.yaml spec is validated against the exact same
// schema as a goobits.cue spec.
//
// # Usage
//
//	//go:embed spec_schema.cue
//	var schemaBytes []byte
//
//	result, err := cueutil.ParseAndDecode[CLISpec](
//	    schemaBytes,
//	    userFileBytes,
//	    "#CLISpec",
//	    cueutil.WithFilename("goobits.cue"),
//	)
//	if err != nil {
//	    return nil, err  // Error includes CUE path for debugging
//	}
//	return result.Value, nil
package cueutil
