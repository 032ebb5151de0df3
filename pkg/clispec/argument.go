// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
)

const (
	// ArgumentTypeString is the default argument type for string values
	ArgumentTypeString ArgumentType = "string"
	// ArgumentTypeInt is for integer arguments
	ArgumentTypeInt ArgumentType = "int"
	// ArgumentTypeFloat is for floating-point arguments
	ArgumentTypeFloat ArgumentType = "float"
	// ArgumentTypeBool is for boolean arguments
	ArgumentTypeBool ArgumentType = "bool"
	// ArgumentTypePath is for filesystem path arguments
	ArgumentTypePath ArgumentType = "path"
	// ArgumentTypeChoice is for arguments restricted to a fixed set of values
	ArgumentTypeChoice ArgumentType = "choice"
)

// ErrInvalidArgumentType is returned when an ArgumentType value is not one of the defined types.
var ErrInvalidArgumentType = errors.New("invalid argument type")

type (
	// ArgumentType represents the data type of an argument
	ArgumentType string

	// InvalidArgumentTypeError is returned when an ArgumentType value is not recognized.
	// It wraps ErrInvalidArgumentType for errors.Is() compatibility.
	InvalidArgumentTypeError struct {
		Value ArgumentType
	}

	// ArgumentSpec represents a positional command-line argument of a command
	ArgumentSpec struct {
		// Name is the argument name (POSIX-compliant: starts with a letter, alphanumeric/hyphen/underscore)
		Name string `json:"name"`
		// Type specifies the data type of the argument (optional, defaults to "string")
		// Supported types: "string", "int", "float", "bool", "path", "choice"
		Type ArgumentType `json:"type,omitempty"`
		// Required indicates whether this argument must be provided (optional, defaults to false)
		Required bool `json:"required,omitempty"`
		// Default is the default value if the argument is not provided (optional)
		Default any `json:"default,omitempty"`
		// Variadic indicates this argument accepts multiple values (optional, defaults to false)
		// Only the last argument of a command can be variadic
		Variadic bool `json:"variadic,omitempty"`
		// Help provides help text for the argument
		Help string `json:"help,omitempty"`
	}
)

// Error implements the error interface for InvalidArgumentTypeError.
func (e *InvalidArgumentTypeError) Error() string {
	return fmt.Sprintf("invalid argument type %q (valid: string, int, float, bool, path, choice)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidArgumentTypeError) Unwrap() error {
	return ErrInvalidArgumentType
}

// IsValid returns whether the ArgumentType is one of the defined argument types,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid — it is treated as "string" by GetType().
func (at ArgumentType) IsValid() (bool, []error) {
	switch at {
	case ArgumentTypeString, ArgumentTypeInt, ArgumentTypeFloat,
		ArgumentTypeBool, ArgumentTypePath, ArgumentTypeChoice, "":
		return true, nil
	default:
		return false, []error{&InvalidArgumentTypeError{Value: at}}
	}
}

// String returns the string representation of the ArgumentType.
func (at ArgumentType) String() string { return string(at) }

// GetType returns the effective type of the argument (defaults to "string" if not specified)
func (a *ArgumentSpec) GetType() ArgumentType {
	if a.Type == "" {
		return ArgumentTypeString
	}
	return a.Type
}
