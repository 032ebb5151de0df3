// SPDX-License-Identifier: MPL-2.0

package clispec

type (
	// CLISpec is the typed root of one parsed spec file: project metadata,
	// global options, and the full nested command tree. Immutable once loaded.
	CLISpec struct {
		// PackageName is the name the generated package is published under
		PackageName string `json:"package_name"`
		// CommandName is the executable name of the generated CLI
		CommandName string `json:"command_name"`
		// Version is the semantic version of the generated CLI
		Version string `json:"version"`
		// Description is the one-line project description
		Description string `json:"description,omitempty"`
		// Language is the default target language declared in the spec.
		// The build front end may request additional targets.
		Language TargetLanguage `json:"language,omitempty"`
		// GlobalOptions are options attached to every command, in declaration order
		GlobalOptions []OptionSpec `json:"global_options,omitempty"`
		// Commands is the top-level command tree, in declaration order.
		// Populated by the parser from the CUE value walk.
		Commands []CommandSpec `json:"-"`

		// FilePath is the path the spec was loaded from (informational).
		FilePath string `json:"-"`
	}
)

// Command returns the top-level command with the given name, or nil.
func (s *CLISpec) Command(name string) *CommandSpec {
	for i := range s.Commands {
		if s.Commands[i].Name == name {
			return &s.Commands[i]
		}
	}
	return nil
}

// GlobalOptionNames returns the names of the global options in declaration
// order.
func (s *CLISpec) GlobalOptionNames() []string {
	names := make([]string, len(s.GlobalOptions))
	for i := range s.GlobalOptions {
		names[i] = s.GlobalOptions[i].Name
	}
	return names
}

// CountCommands returns the total number of command nodes in the spec,
// counting nested subcommands at every depth.
func (s *CLISpec) CountCommands() int {
	var count func(cmds []CommandSpec) int
	count = func(cmds []CommandSpec) int {
		n := len(cmds)
		for i := range cmds {
			n += count(cmds[i].Subcommands)
		}
		return n
	}
	return count(s.Commands)
}
