// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"

	"github.com/pelletier/go-toml/v2"
)

// Python component names.
const (
	componentCLI       = "cli"
	componentManifest  = "manifest"
	componentInstaller = "installer"
	componentInit      = "package_init"
	componentTSConfig  = "tsconfig"
)

type (
	// PythonRenderer emits a click-based Python package.
	PythonRenderer struct{}

	// pyProject models the emitted pyproject.toml.
	pyProject struct {
		BuildSystem pyBuildSystem     `toml:"build-system"`
		Project     pyProjectMetadata `toml:"project"`
	}

	pyBuildSystem struct {
		Requires     []string `toml:"requires"`
		BuildBackend string   `toml:"build-backend"`
	}

	pyProjectMetadata struct {
		Name         string            `toml:"name"`
		Version      string            `toml:"version"`
		Description  string            `toml:"description"`
		RequiresPy   string            `toml:"requires-python"`
		Dependencies []string          `toml:"dependencies"`
		Scripts      map[string]string `toml:"scripts"`
	}
)

// Language implements Renderer.
func (r *PythonRenderer) Language() clispec.TargetLanguage { return clispec.LanguagePython }

// OutputStructure implements Renderer.
func (r *PythonRenderer) OutputStructure(spec *ir.IR) map[string]string {
	pkg := snakeCase(spec.Project.PackageName)
	return map[string]string{
		componentCLI:       fmt.Sprintf("src/%s/cli.py", pkg),
		componentInit:      fmt.Sprintf("src/%s/__init__.py", pkg),
		componentManifest:  "pyproject.toml",
		componentInstaller: "setup.sh",
	}
}

// Render implements Renderer.
func (r *PythonRenderer) Render(spec *ir.IR, component string) (string, error) {
	switch component {
	case componentCLI:
		return r.renderCLI(spec), nil
	case componentInit:
		return r.renderInit(spec), nil
	case componentManifest:
		return r.renderManifest(spec)
	case componentInstaller:
		return installScript(spec, []string{
			"python3 -m pip install --upgrade pip >/dev/null",
			"python3 -m pip install .",
		})
	default:
		return "", &MissingComponentError{Language: r.Language(), Component: component}
	}
}

func (r *PythonRenderer) renderInit(spec *ir.IR) string {
	return fmt.Sprintf("__version__ = %q\n", spec.Project.Version)
}

func (r *PythonRenderer) renderManifest(spec *ir.IR) (string, error) {
	manifest := pyProject{
		BuildSystem: pyBuildSystem{
			Requires:     []string{"hatchling"},
			BuildBackend: "hatchling.build",
		},
		Project: pyProjectMetadata{
			Name:         spec.Project.PackageName,
			Version:      spec.Project.Version,
			Description:  spec.Project.Description,
			RequiresPy:   ">=3.9",
			Dependencies: []string{"click>=8.1"},
			Scripts: map[string]string{
				spec.Project.CommandName: snakeCase(spec.Project.PackageName) + ".cli:cli",
			},
		},
	}

	out, err := toml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("marshal pyproject.toml: %w", err)
	}
	return string(out), nil
}

func (r *PythonRenderer) renderCLI(spec *ir.IR) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\"\"\"%s — %s.\n\nGenerated by goobits; regenerate from the spec instead of editing.\n\"\"\"\n\n",
		spec.Project.CommandName, escapeString(spec.Project.Description, clispec.LanguagePython))
	sb.WriteString("import importlib\n\nimport click\n\n")

	hooksModule := snakeCase(spec.Project.PackageName) + "_hooks"
	fmt.Fprintf(&sb, "try:\n    hooks = importlib.import_module(%q)\nexcept ImportError:\n    hooks = None\n\n\n", hooksModule)

	sb.WriteString("def _dispatch(hook_name, **params):\n")
	sb.WriteString("    if hooks is not None:\n")
	sb.WriteString("        handler = getattr(hooks, hook_name, None)\n")
	fmt.Fprintf(&sb, "        if handler is None:\n            handler = getattr(hooks, %q, None)\n", hooks.GenericHookName)
	sb.WriteString("        if handler is not None:\n            return handler(**params)\n")
	sb.WriteString("    click.echo(f\"no hook defined for {params['command_name']}\", err=True)\n")
	sb.WriteString("    return None\n\n\n")

	sb.WriteString("@click.group()\n")
	fmt.Fprintf(&sb, "@click.version_option(%q)\ndef cli():\n", spec.Project.Version)
	fmt.Fprintf(&sb, "    \"\"\"%s\"\"\"\n", escapeString(spec.Project.Description, clispec.LanguagePython))

	for _, node := range spec.Hierarchy.Roots {
		r.writeNode(&sb, spec, node, "cli")
	}

	sb.WriteString("\n\nif __name__ == \"__main__\":\n    cli()\n")
	return sb.String()
}

// writeNode emits one command or group function attached to parentFn.
func (r *PythonRenderer) writeNode(sb *strings.Builder, spec *ir.IR, node *hierarchy.CommandNode, parentFn string) {
	fnName := "_cmd_" + snakeCase(strings.Join(node.Path, "_"))

	if node.IsGroup() {
		defaultChild := r.defaultChild(node)
		sb.WriteString("\n\n")
		if defaultChild != "" {
			fmt.Fprintf(sb, "@%s.group(%q, invoke_without_command=True)\n", parentFn, node.Name)
			sb.WriteString("@click.pass_context\n")
			fmt.Fprintf(sb, "def %s(ctx):\n", fnName)
			fmt.Fprintf(sb, "    \"\"\"%s\"\"\"\n", escapeString(node.Spec.Description, clispec.LanguagePython))
			fmt.Fprintf(sb, "    if ctx.invoked_subcommand is None:\n        ctx.invoke(%s)\n", defaultChild)
		} else {
			fmt.Fprintf(sb, "@%s.group(%q)\n", parentFn, node.Name)
			fmt.Fprintf(sb, "def %s():\n", fnName)
			fmt.Fprintf(sb, "    \"\"\"%s\"\"\"\n", escapeString(node.Spec.Description, clispec.LanguagePython))
		}

		for _, child := range node.Children {
			r.writeNode(sb, spec, child, fnName)
		}
		return
	}

	binding := spec.Binding(node.Path)

	sb.WriteString("\n\n")
	fmt.Fprintf(sb, "@%s.command(%q)\n", parentFn, node.Name)
	for i := range node.Spec.Arguments {
		r.writeArgument(sb, &node.Spec.Arguments[i])
	}
	for i := range node.Spec.Options {
		r.writeOption(sb, &node.Spec.Options[i])
	}
	for i := range spec.GlobalOptions {
		r.writeOption(sb, &spec.GlobalOptions[i])
	}

	params := r.parameterIdents(spec, node)
	fmt.Fprintf(sb, "def %s(%s):\n", fnName, strings.Join(params, ", "))
	if node.Spec.HelpText != "" {
		fmt.Fprintf(sb, "    \"\"\"%s\"\"\"\n", escapeString(node.Spec.HelpText, clispec.LanguagePython))
	} else {
		fmt.Fprintf(sb, "    \"\"\"%s\"\"\"\n", escapeString(node.Spec.Description, clispec.LanguagePython))
	}

	kwargs := []string{fmt.Sprintf("command_name=%q", strings.Join(node.Path, " "))}
	for _, p := range params {
		kwargs = append(kwargs, fmt.Sprintf("%s=%s", p, p))
	}
	fmt.Fprintf(sb, "    _dispatch(%q, %s)\n", binding.HookName, strings.Join(kwargs, ", "))
}

// defaultChild returns the generated function name of the node's default
// subcommand when one exists and is executable.
func (r *PythonRenderer) defaultChild(node *hierarchy.CommandNode) string {
	for _, child := range node.Children {
		if child.Spec.IsDefault && !child.IsGroup() {
			return "_cmd_" + snakeCase(strings.Join(child.Path, "_"))
		}
	}
	return ""
}

// parameterIdents returns the python identifiers of a leaf's parameters in
// declaration order: arguments, options, then global options.
func (r *PythonRenderer) parameterIdents(spec *ir.IR, node *hierarchy.CommandNode) []string {
	var params []string
	for i := range node.Spec.Arguments {
		params = append(params, snakeCase(node.Spec.Arguments[i].Name))
	}
	for i := range node.Spec.Options {
		params = append(params, snakeCase(node.Spec.Options[i].Name))
	}
	for i := range spec.GlobalOptions {
		params = append(params, snakeCase(spec.GlobalOptions[i].Name))
	}
	return params
}

func (r *PythonRenderer) writeArgument(sb *strings.Builder, arg *clispec.ArgumentSpec) {
	parts := []string{fmt.Sprintf("%q", arg.Name)}
	if t := pythonType(string(arg.GetType())); t != "" {
		parts = append(parts, "type="+t)
	}
	if arg.Variadic {
		parts = append(parts, "nargs=-1")
	}
	if !arg.Required {
		parts = append(parts, "required=False")
		if arg.Default != nil {
			parts = append(parts, "default="+pythonLiteral(arg.Default))
		}
	}
	fmt.Fprintf(sb, "@click.argument(%s)\n", strings.Join(parts, ", "))
}

func (r *PythonRenderer) writeOption(sb *strings.Builder, opt *clispec.OptionSpec) {
	parts := []string{fmt.Sprintf("\"--%s\"", opt.Name)}
	if opt.Short != "" {
		parts = append(parts, fmt.Sprintf("\"-%s\"", opt.Short))
	}
	if opt.Flag || opt.GetType() == clispec.OptionTypeBool {
		parts = append(parts, "is_flag=True")
	} else if opt.GetType() == clispec.OptionTypeChoice {
		quoted := make([]string, len(opt.Choices))
		for i, c := range opt.Choices {
			quoted[i] = fmt.Sprintf("%q", c)
		}
		parts = append(parts, fmt.Sprintf("type=click.Choice([%s])", strings.Join(quoted, ", ")))
	} else if t := pythonType(string(opt.GetType())); t != "" {
		parts = append(parts, "type="+t)
	}
	if opt.Default != nil {
		parts = append(parts, "default="+pythonLiteral(opt.Default))
	}
	if opt.Help != "" {
		parts = append(parts, fmt.Sprintf("help=\"%s\"", escapeString(opt.Help, clispec.LanguagePython)))
	}
	fmt.Fprintf(sb, "@click.option(%s)\n", strings.Join(parts, ", "))
}

// pythonType maps a spec type to a click type expression ("" for plain str).
func pythonType(typ string) string {
	switch typ {
	case "int":
		return "int"
	case "float":
		return "float"
	case "bool":
		return "bool"
	case "path":
		return "click.Path()"
	default:
		return ""
	}
}
