// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
)

const (
	// OptionTypeString is the default option type for string values
	OptionTypeString OptionType = "string"
	// OptionTypeInt is for integer options
	OptionTypeInt OptionType = "int"
	// OptionTypeFloat is for floating-point options
	OptionTypeFloat OptionType = "float"
	// OptionTypeBool is for boolean options
	OptionTypeBool OptionType = "bool"
	// OptionTypePath is for filesystem path options
	OptionTypePath OptionType = "path"
	// OptionTypeChoice is for options restricted to a fixed set of values
	OptionTypeChoice OptionType = "choice"
)

// ErrInvalidOptionType is returned when an OptionType value is not one of the defined types.
var ErrInvalidOptionType = errors.New("invalid option type")

type (
	// OptionType represents the data type of an option
	OptionType string

	// InvalidOptionTypeError is returned when an OptionType value is not recognized.
	// It wraps ErrInvalidOptionType for errors.Is() compatibility.
	InvalidOptionTypeError struct {
		Value OptionType
	}

	// OptionSpec represents a command-line option of a command
	OptionSpec struct {
		// Name is the long option name without dashes (POSIX-compliant:
		// starts with a letter, alphanumeric/hyphen/underscore)
		Name string `json:"name"`
		// Short is a single-character alias for the option (optional)
		Short string `json:"short,omitempty"`
		// Type specifies the data type of the option (optional, defaults to "string")
		// Supported types: "string", "int", "float", "bool", "path", "choice"
		Type OptionType `json:"type,omitempty"`
		// Default is the default value for the option (optional)
		Default any `json:"default,omitempty"`
		// Choices restricts the option value to a fixed set (required when Type is "choice")
		Choices []string `json:"choices,omitempty"`
		// Flag marks this as a boolean flag that takes no value (optional, defaults to false)
		Flag bool `json:"flag,omitempty"`
		// Help provides help text for the option
		Help string `json:"help,omitempty"`
	}
)

// Error implements the error interface for InvalidOptionTypeError.
func (e *InvalidOptionTypeError) Error() string {
	return fmt.Sprintf("invalid option type %q (valid: string, int, float, bool, path, choice)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOptionTypeError) Unwrap() error {
	return ErrInvalidOptionType
}

// IsValid returns whether the OptionType is one of the defined option types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid — it is treated as "string" by GetType().
func (ot OptionType) IsValid() (bool, []error) {
	switch ot {
	case OptionTypeString, OptionTypeInt, OptionTypeFloat,
		OptionTypeBool, OptionTypePath, OptionTypeChoice, "":
		return true, nil
	default:
		return false, []error{&InvalidOptionTypeError{Value: ot}}
	}
}

// String returns the string representation of the OptionType.
func (ot OptionType) String() string { return string(ot) }

// GetType returns the effective type of the option. A flag without an explicit
// type is "bool"; anything else defaults to "string".
func (o *OptionSpec) GetType() OptionType {
	if o.Type == "" {
		if o.Flag {
			return OptionTypeBool
		}
		return OptionTypeString
	}
	return o.Type
}
