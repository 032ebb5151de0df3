// SPDX-License-Identifier: MPL-2.0

package clispec

import (
	"fmt"
	"strings"
)

// GenerateCUE generates CUE text from a CLISpec struct.
// This is what `goobits init` uses to scaffold a spec file, and it is also
// useful for writing specs programmatically. The output round-trips through
// ParseBytes into a structurally equal spec.
func GenerateCUE(spec *CLISpec) string {
	var sb strings.Builder

	sb.WriteString("// goobits CLI spec\n")
	sb.WriteString("// Declares commands, arguments, and options for every generated target.\n\n")

	fmt.Fprintf(&sb, "package_name: %q\n", spec.PackageName)
	fmt.Fprintf(&sb, "command_name: %q\n", spec.CommandName)
	fmt.Fprintf(&sb, "version: %q\n", spec.Version)
	if spec.Description != "" {
		fmt.Fprintf(&sb, "description: %q\n", spec.Description)
	}
	if spec.Language != "" {
		fmt.Fprintf(&sb, "language: %q\n", spec.Language)
	}

	if len(spec.GlobalOptions) > 0 {
		sb.WriteString("global_options: [\n")
		for i := range spec.GlobalOptions {
			generateOption(&sb, &spec.GlobalOptions[i], "\t")
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("\ncommands: {\n")
	for i := range spec.Commands {
		generateCommand(&sb, &spec.Commands[i], "\t")
	}
	sb.WriteString("}\n")

	return sb.String()
}

// generateCommand emits one command declaration at the given indentation,
// recursing into subcommands.
func generateCommand(sb *strings.Builder, cmd *CommandSpec, indent string) {
	fmt.Fprintf(sb, "%s%s: {\n", indent, cueLabel(cmd.Name))
	inner := indent + "\t"

	if cmd.Description != "" {
		fmt.Fprintf(sb, "%sdesc: %q\n", inner, cmd.Description)
	}
	if cmd.HelpText != "" {
		fmt.Fprintf(sb, "%shelp: %q\n", inner, cmd.HelpText)
	}
	if cmd.IsDefault {
		fmt.Fprintf(sb, "%sis_default: true\n", inner)
	}

	if len(cmd.Arguments) > 0 {
		fmt.Fprintf(sb, "%sarguments: [\n", inner)
		for i := range cmd.Arguments {
			generateArgument(sb, &cmd.Arguments[i], inner+"\t")
		}
		fmt.Fprintf(sb, "%s]\n", inner)
	}

	if len(cmd.Options) > 0 {
		fmt.Fprintf(sb, "%soptions: [\n", inner)
		for i := range cmd.Options {
			generateOption(sb, &cmd.Options[i], inner+"\t")
		}
		fmt.Fprintf(sb, "%s]\n", inner)
	}

	if len(cmd.Subcommands) > 0 {
		fmt.Fprintf(sb, "%ssubcommands: {\n", inner)
		for i := range cmd.Subcommands {
			generateCommand(sb, &cmd.Subcommands[i], inner+"\t")
		}
		fmt.Fprintf(sb, "%s}\n", inner)
	}

	fmt.Fprintf(sb, "%s}\n", indent)
}

// generateArgument emits one argument entry of an arguments list.
func generateArgument(sb *strings.Builder, arg *ArgumentSpec, indent string) {
	fmt.Fprintf(sb, "%s{name: %q", indent, arg.Name)
	if arg.Type != "" {
		fmt.Fprintf(sb, ", type: %q", arg.Type)
	}
	if arg.Required {
		sb.WriteString(", required: true")
	}
	if arg.Default != nil {
		fmt.Fprintf(sb, ", default: %s", cueScalar(arg.Default))
	}
	if arg.Variadic {
		sb.WriteString(", variadic: true")
	}
	if arg.Help != "" {
		fmt.Fprintf(sb, ", help: %q", arg.Help)
	}
	sb.WriteString("},\n")
}

// generateOption emits one option entry of an options list.
func generateOption(sb *strings.Builder, opt *OptionSpec, indent string) {
	fmt.Fprintf(sb, "%s{name: %q", indent, opt.Name)
	if opt.Short != "" {
		fmt.Fprintf(sb, ", short: %q", opt.Short)
	}
	if opt.Type != "" {
		fmt.Fprintf(sb, ", type: %q", opt.Type)
	}
	if opt.Default != nil {
		fmt.Fprintf(sb, ", default: %s", cueScalar(opt.Default))
	}
	if len(opt.Choices) > 0 {
		sb.WriteString(", choices: [")
		for i, c := range opt.Choices {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%q", c)
		}
		sb.WriteString("]")
	}
	if opt.Flag {
		sb.WriteString(", flag: true")
	}
	if opt.Help != "" {
		fmt.Fprintf(sb, ", help: %q", opt.Help)
	}
	sb.WriteString("},\n")
}

// cueLabel quotes a map key when it is not a bare CUE identifier.
func cueLabel(name string) string {
	for i := 0; i < len(name); i++ {
		c := name[i]
		ok := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (i > 0 && c >= '0' && c <= '9')
		if !ok {
			return fmt.Sprintf("%q", name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}

// cueScalar formats a scalar default value as CUE source.
func cueScalar(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case bool:
		return fmt.Sprintf("%t", x)
	case int, int64, uint64:
		return fmt.Sprintf("%d", x)
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%q", fmt.Sprint(x))
	}
}
