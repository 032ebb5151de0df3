// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCommandName is the sentinel error wrapped by InvalidCommandNameError.
var ErrInvalidCommandName = errors.New("invalid command name")

type (
	// CommandName represents a single command path segment (no separators).
	// A valid command name is non-empty, not whitespace-only, and starts with
	// a letter.
	CommandName string

	// InvalidCommandNameError is returned when a CommandName value is empty,
	// whitespace-only, or not a valid path segment.
	InvalidCommandNameError struct {
		Value CommandName
	}

	// CommandSpec represents one command node of the declared CLI.
	// Loaded once from the spec file and never mutated afterwards.
	CommandSpec struct {
		// Name is the command identifier, taken from the map key under which
		// the command was declared.
		Name string `json:"-"`
		// Description is the one-line help shown in command listings
		Description string `json:"desc,omitempty"`
		// HelpText is the long-form help shown on `<cmd> --help` (optional)
		HelpText string `json:"help,omitempty"`
		// IsDefault marks this command as the default among its siblings.
		// At most one sibling per set may carry it.
		IsDefault bool `json:"is_default,omitempty"`
		// Arguments are the positional arguments, in declaration order
		Arguments []ArgumentSpec `json:"arguments,omitempty"`
		// Options are the command's options, in declaration order
		Options []OptionSpec `json:"options,omitempty"`
		// Subcommands are the nested commands, in declaration order.
		// Populated by the parser from the CUE value walk, not by decode,
		// so that declaration order survives.
		Subcommands []CommandSpec `json:"-"`
	}
)

// Error implements the error interface.
func (e *InvalidCommandNameError) Error() string {
	return fmt.Sprintf("invalid command name %q (must start with a letter, then letters, digits, '-' or '_')", e.Value)
}

// Unwrap returns ErrInvalidCommandName so callers can use errors.Is for
// programmatic detection.
func (e *InvalidCommandNameError) Unwrap() error { return ErrInvalidCommandName }

// IsValid returns whether the CommandName is a valid path segment, and a list
// of validation errors if it is not.
func (n CommandName) IsValid() (bool, []error) {
	s := string(n)
	if strings.TrimSpace(s) == "" {
		return false, []error{&InvalidCommandNameError{Value: n}}
	}
	c := s[0]
	if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return false, []error{&InvalidCommandNameError{Value: n}}
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		ok := c == '-' || c == '_' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
		if !ok {
			return false, []error{&InvalidCommandNameError{Value: n}}
		}
	}
	return true, nil
}

// String returns the string representation of the CommandName.
func (n CommandName) String() string { return string(n) }

// IsGroup reports whether this command has subcommands. Group nodes dispatch
// to children and do not receive a hook of their own.
func (c *CommandSpec) IsGroup() bool {
	return len(c.Subcommands) > 0
}

// Subcommand returns the direct subcommand with the given name, or nil.
func (c *CommandSpec) Subcommand(name string) *CommandSpec {
	for i := range c.Subcommands {
		if c.Subcommands[i].Name == name {
			return &c.Subcommands[i]
		}
	}
	return nil
}

// ParameterNames returns the names of every argument and option of this
// command, arguments first, each in declaration order.
func (c *CommandSpec) ParameterNames() []string {
	names := make([]string, 0, len(c.Arguments)+len(c.Options))
	for i := range c.Arguments {
		names = append(names, c.Arguments[i].Name)
	}
	for i := range c.Options {
		names = append(names, c.Options[i].Name)
	}
	return names
}
