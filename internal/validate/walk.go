// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"strings"

	"goobits-cli/pkg/clispec"
)

// visit is called for every command node with its root-to-node path.
type visit func(path []string, cmd *clispec.CommandSpec)

// walkSpec visits every command node depth-first in declaration order.
// Validators share this walk so their diagnostics agree on location paths.
func walkSpec(spec *clispec.CLISpec, fn visit) {
	var walk func(prefix []string, cmds []clispec.CommandSpec)
	walk = func(prefix []string, cmds []clispec.CommandSpec) {
		for i := range cmds {
			cmd := &cmds[i]
			path := append(append([]string{}, prefix...), cmd.Name)
			fn(path, cmd)
			walk(path, cmd.Subcommands)
		}
	}
	walk(nil, spec.Commands)
}

// locationOf renders a command path (plus optional trailing elements) as a
// slash-joined diagnostic location.
func locationOf(path []string, extra ...string) string {
	return strings.Join(append(append([]string{}, path...), extra...), "/")
}
