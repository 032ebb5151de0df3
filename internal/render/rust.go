// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"

	"github.com/pelletier/go-toml/v2"
)

type (
	// RustRenderer emits a clap builder-API binary crate. Hook bodies live in
	// an inline hooks module with stub implementations, so the generated
	// crate compiles as emitted and users replace bodies in place.
	RustRenderer struct{}

	// cargoManifest models the emitted Cargo.toml.
	cargoManifest struct {
		Package      cargoPackage      `toml:"package"`
		Dependencies map[string]string `toml:"dependencies"`
	}

	cargoPackage struct {
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Description string `toml:"description"`
		Edition     string `toml:"edition"`
	}
)

// Language implements Renderer.
func (r *RustRenderer) Language() clispec.TargetLanguage { return clispec.LanguageRust }

// OutputStructure implements Renderer.
func (r *RustRenderer) OutputStructure(_ *ir.IR) map[string]string {
	return map[string]string{
		componentCLI:       "src/main.rs",
		componentManifest:  "Cargo.toml",
		componentInstaller: "setup.sh",
	}
}

// Render implements Renderer.
func (r *RustRenderer) Render(spec *ir.IR, component string) (string, error) {
	switch component {
	case componentCLI:
		return r.renderCLI(spec), nil
	case componentManifest:
		return r.renderManifest(spec)
	case componentInstaller:
		return installScript(spec, []string{
			"cargo install --path . --locked 2>/dev/null || cargo install --path .",
		})
	default:
		return "", &MissingComponentError{Language: r.Language(), Component: component}
	}
}

func (r *RustRenderer) renderManifest(spec *ir.IR) (string, error) {
	manifest := cargoManifest{
		Package: cargoPackage{
			Name:        snakeCase(spec.Project.PackageName),
			Version:     spec.Project.Version,
			Description: spec.Project.Description,
			Edition:     "2021",
		},
		Dependencies: map[string]string{
			"clap": "4.5",
		},
	}

	out, err := toml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("marshal Cargo.toml: %w", err)
	}
	return string(out), nil
}

func (r *RustRenderer) renderCLI(spec *ir.IR) string {
	var sb strings.Builder

	sb.WriteString("// Generated by goobits; regenerate from the spec instead of editing.\n")
	sb.WriteString("// Replace the bodies in the hooks module to implement command behavior.\n\n")
	sb.WriteString("use clap::{Arg, ArgAction, Command};\n\n")

	r.writeHooksModule(&sb, spec)

	sb.WriteString("fn main() {\n")
	fmt.Fprintf(&sb, "    let matches = Command::new(%q)\n", spec.Project.CommandName)
	fmt.Fprintf(&sb, "        .version(%q)\n", spec.Project.Version)
	fmt.Fprintf(&sb, "        .about(%q)\n", spec.Project.Description)
	sb.WriteString("        .arg_required_else_help(true)")
	for _, node := range spec.Hierarchy.Roots {
		sb.WriteString("\n        .subcommand(\n")
		r.writeCommand(&sb, spec, node, 3)
		sb.WriteString("\n        )")
	}
	sb.WriteString("\n        .get_matches();\n\n")

	sb.WriteString("    match matches.subcommand() {\n")
	for _, node := range spec.Hierarchy.Roots {
		r.writeDispatchArm(&sb, spec, node, 2)
	}
	sb.WriteString("        _ => {}\n")
	sb.WriteString("    }\n}\n")
	return sb.String()
}

// writeHooksModule emits one stub per hook binding.
func (r *RustRenderer) writeHooksModule(sb *strings.Builder, spec *ir.IR) {
	sb.WriteString("mod hooks {\n")
	sb.WriteString("    use clap::ArgMatches;\n")
	for i := range spec.Hooks {
		b := &spec.Hooks[i]
		sb.WriteString("\n")
		fmt.Fprintf(sb, "    pub fn %s(matches: &ArgMatches) {\n", b.HookName)
		sb.WriteString("        let _ = matches;\n")
		fmt.Fprintf(sb, "        eprintln!(\"no hook defined for %s\");\n", strings.Join(b.Path, " "))
		sb.WriteString("    }\n")
	}
	sb.WriteString("}\n\n")
}

// writeCommand emits the clap Command builder expression for one node.
func (r *RustRenderer) writeCommand(sb *strings.Builder, spec *ir.IR, node *hierarchy.CommandNode, depth int) {
	ind := strings.Repeat("    ", depth)
	fmt.Fprintf(sb, "%sCommand::new(%q)\n", ind, node.Name)
	fmt.Fprintf(sb, "%s    .about(%q)", ind, node.Spec.Description)

	if node.IsGroup() {
		for _, child := range node.Children {
			fmt.Fprintf(sb, "\n%s    .subcommand(\n", ind)
			r.writeCommand(sb, spec, child, depth+2)
			fmt.Fprintf(sb, "\n%s    )", ind)
		}
		return
	}

	for i := range node.Spec.Arguments {
		r.writeArg(sb, &node.Spec.Arguments[i], ind)
	}
	for i := range node.Spec.Options {
		r.writeOpt(sb, &node.Spec.Options[i], ind)
	}
	for i := range spec.GlobalOptions {
		r.writeOpt(sb, &spec.GlobalOptions[i], ind)
	}
}

func (r *RustRenderer) writeArg(sb *strings.Builder, arg *clispec.ArgumentSpec, ind string) {
	fmt.Fprintf(sb, "\n%s    .arg(\n%s        Arg::new(%q)", ind, ind, arg.Name)
	if arg.Required {
		sb.WriteString("\n" + ind + "            .required(true)")
	}
	if arg.Variadic {
		sb.WriteString("\n" + ind + "            .num_args(1..)")
		sb.WriteString("\n" + ind + "            .action(ArgAction::Append)")
	}
	if vp := rustValueParser(string(arg.GetType()), nil); vp != "" {
		sb.WriteString("\n" + ind + "            .value_parser(" + vp + ")")
	}
	if arg.Default != nil {
		sb.WriteString("\n" + ind + "            .default_value(" + rustLiteral(arg.Default) + ")")
	}
	if arg.Help != "" {
		fmt.Fprintf(sb, "\n%s            .help(%q)", ind, arg.Help)
	}
	fmt.Fprintf(sb, ",\n%s    )", ind)
}

func (r *RustRenderer) writeOpt(sb *strings.Builder, opt *clispec.OptionSpec, ind string) {
	fmt.Fprintf(sb, "\n%s    .arg(\n%s        Arg::new(%q)", ind, ind, opt.Name)
	fmt.Fprintf(sb, "\n%s            .long(%q)", ind, opt.Name)
	if opt.Short != "" {
		fmt.Fprintf(sb, "\n%s            .short('%s')", ind, opt.Short)
	}
	if opt.Flag || opt.GetType() == clispec.OptionTypeBool {
		sb.WriteString("\n" + ind + "            .action(ArgAction::SetTrue)")
	} else if vp := rustValueParser(string(opt.GetType()), opt.Choices); vp != "" {
		sb.WriteString("\n" + ind + "            .value_parser(" + vp + ")")
	}
	if opt.Default != nil && !opt.Flag && opt.GetType() != clispec.OptionTypeBool {
		sb.WriteString("\n" + ind + "            .default_value(" + rustLiteral(opt.Default) + ")")
	}
	if opt.Help != "" {
		fmt.Fprintf(sb, "\n%s            .help(%q)", ind, opt.Help)
	}
	fmt.Fprintf(sb, ",\n%s    )", ind)
}

// writeDispatchArm emits the match arm routing a matched subcommand to its
// hook. Groups nest a match on their own subcommand; a group with a default
// child routes the bare group invocation to that child's hook.
func (r *RustRenderer) writeDispatchArm(sb *strings.Builder, spec *ir.IR, node *hierarchy.CommandNode, depth int) {
	ind := strings.Repeat("    ", depth)

	if !node.IsGroup() {
		binding := spec.Binding(node.Path)
		fmt.Fprintf(sb, "%sSome((%q, m)) => hooks::%s(m),\n", ind, node.Name, binding.HookName)
		return
	}

	fmt.Fprintf(sb, "%sSome((%q, m)) => match m.subcommand() {\n", ind, node.Name)
	for _, child := range node.Children {
		r.writeDispatchArm(sb, spec, child, depth+1)
	}
	if def := r.defaultLeaf(node); def != nil {
		binding := spec.Binding(def.Path)
		fmt.Fprintf(sb, "%s    _ => hooks::%s(m),\n", ind, binding.HookName)
	} else {
		fmt.Fprintf(sb, "%s    _ => {}\n", ind)
	}
	fmt.Fprintf(sb, "%s},\n", ind)
}

func (r *RustRenderer) defaultLeaf(node *hierarchy.CommandNode) *hierarchy.CommandNode {
	for _, child := range node.Children {
		if child.Spec.IsDefault && !child.IsGroup() {
			return child
		}
	}
	return nil
}

// rustValueParser maps a spec type to a clap value parser expression ("" for
// plain strings).
func rustValueParser(typ string, choices []string) string {
	switch typ {
	case "int":
		return "clap::value_parser!(i64)"
	case "float":
		return "clap::value_parser!(f64)"
	case "path":
		return "clap::value_parser!(std::path::PathBuf)"
	case "choice":
		if len(choices) == 0 {
			return ""
		}
		quoted := make([]string, len(choices))
		for i, c := range choices {
			quoted[i] = fmt.Sprintf("%q", c)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return ""
	}
}
