// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"errors"
	"fmt"
)

const (
	// ModeStrict treats warnings as failures.
	ModeStrict Mode = "strict"
	// ModeLenient fails only on critical diagnostics.
	ModeLenient Mode = "lenient"
	// ModeDevelopment behaves like strict and additionally runs
	// optimization-hint validators.
	ModeDevelopment Mode = "development"
	// ModeProduction fails on errors only and skips hint validators.
	ModeProduction Mode = "production"
)

// ErrInvalidMode is the sentinel error wrapped by InvalidModeError.
var ErrInvalidMode = errors.New("invalid validation mode")

type (
	// Mode selects how strictly a validation run is judged.
	Mode string

	// InvalidModeError is returned when a Mode value is not one of the
	// defined modes.
	InvalidModeError struct {
		Value Mode
	}
)

// Error implements the error interface.
func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid validation mode %q (valid: strict, lenient, development, production)", e.Value)
}

// Unwrap returns ErrInvalidMode so callers can use errors.Is for programmatic detection.
func (e *InvalidModeError) Unwrap() error { return ErrInvalidMode }

// IsValid returns whether the Mode is one of the defined modes,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid — it is treated as strict by Threshold().
func (m Mode) IsValid() (bool, []error) {
	switch m {
	case ModeStrict, ModeLenient, ModeDevelopment, ModeProduction, "":
		return true, nil
	default:
		return false, []error{&InvalidModeError{Value: m}}
	}
}

// String returns the string representation of the Mode.
func (m Mode) String() string { return string(m) }

// Threshold returns the severity at or above which a diagnostic fails the run.
func (m Mode) Threshold() Severity {
	switch m {
	case ModeLenient:
		return SeverityCritical
	case ModeProduction:
		return SeverityError
	default: // strict, development, zero value
		return SeverityWarning
	}
}

// IncludesHints reports whether optimization-hint validators participate.
func (m Mode) IncludesHints() bool {
	return m == ModeDevelopment
}
