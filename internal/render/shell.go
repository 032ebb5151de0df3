// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"goobits-cli/internal/ir"

	"mvdan.cc/sh/v3/syntax"
)

// installScript renders the setup.sh every target ships: a small POSIX shell
// script that installs the generated program with the target ecosystem's
// standard tooling. The emitted script is parsed with mvdan.cc/sh before it
// is returned, so an emission bug surfaces as a RenderError at build time
// instead of a broken script on the user's machine.
func installScript(spec *ir.IR, lines []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("#!/bin/sh\n")
	sb.WriteString("# Installs the " + spec.Project.CommandName + " CLI.\n")
	sb.WriteString("set -eu\n\n")
	sb.WriteString(`cd "$(dirname "$0")"` + "\n\n")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString("\necho \"" + spec.Project.CommandName + " " + spec.Project.Version + " installed\"\n")

	script := sb.String()
	if err := checkShellSyntax(script); err != nil {
		return "", err
	}
	return script, nil
}

// checkShellSyntax parses src as POSIX shell and returns any syntax error.
func checkShellSyntax(src string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(src), "setup.sh"); err != nil {
		return fmt.Errorf("generated install script does not parse: %w", err)
	}
	return nil
}
