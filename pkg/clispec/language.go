// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
)

const (
	// LanguagePython targets a Python package built on click
	LanguagePython TargetLanguage = "python"
	// LanguageNodeJS targets a Node.js ESM program built on commander
	LanguageNodeJS TargetLanguage = "nodejs"
	// LanguageTypeScript targets a TypeScript program built on commander
	LanguageTypeScript TargetLanguage = "typescript"
	// LanguageRust targets a Rust crate built on clap
	LanguageRust TargetLanguage = "rust"
)

// ErrInvalidTargetLanguage is the sentinel error wrapped by InvalidTargetLanguageError.
var ErrInvalidTargetLanguage = errors.New("invalid target language")

type (
	// TargetLanguage identifies one supported code generation target.
	TargetLanguage string

	// InvalidTargetLanguageError is returned when a TargetLanguage value is not
	// one of the supported targets.
	InvalidTargetLanguageError struct {
		Value TargetLanguage
	}
)

// AllTargetLanguages returns every supported target in a fixed, documented order.
func AllTargetLanguages() []TargetLanguage {
	return []TargetLanguage{LanguagePython, LanguageNodeJS, LanguageTypeScript, LanguageRust}
}

// Error implements the error interface.
func (e *InvalidTargetLanguageError) Error() string {
	return fmt.Sprintf("invalid target language %q (valid: python, nodejs, typescript, rust)", e.Value)
}

// Unwrap returns ErrInvalidTargetLanguage so callers can use errors.Is for
// programmatic detection.
func (e *InvalidTargetLanguageError) Unwrap() error { return ErrInvalidTargetLanguage }

// IsValid returns whether the TargetLanguage is a supported target, and a list
// of validation errors if it is not.
func (l TargetLanguage) IsValid() (bool, []error) {
	switch l {
	case LanguagePython, LanguageNodeJS, LanguageTypeScript, LanguageRust:
		return true, nil
	default:
		return false, []error{&InvalidTargetLanguageError{Value: l}}
	}
}

// String returns the string representation of the TargetLanguage.
func (l TargetLanguage) String() string { return string(l) }
