// SPDX-License-Identifier: MPL-2.0

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"
)

type (
	// NodeJSRenderer emits a commander-based ES module CLI.
	NodeJSRenderer struct{}

	// npmManifest models the emitted package.json. Field order is the order
	// npm init produces.
	npmManifest struct {
		Name         string            `json:"name"`
		Version      string            `json:"version"`
		Description  string            `json:"description"`
		Type         string            `json:"type"`
		Bin          map[string]string `json:"bin"`
		Dependencies map[string]string `json:"dependencies"`
		DevDeps      map[string]string `json:"devDependencies,omitempty"`
	}
)

// Language implements Renderer.
func (r *NodeJSRenderer) Language() clispec.TargetLanguage { return clispec.LanguageNodeJS }

// OutputStructure implements Renderer.
func (r *NodeJSRenderer) OutputStructure(_ *ir.IR) map[string]string {
	return map[string]string{
		componentCLI:       "cli.mjs",
		componentManifest:  "package.json",
		componentInstaller: "setup.sh",
	}
}

// Render implements Renderer.
func (r *NodeJSRenderer) Render(spec *ir.IR, component string) (string, error) {
	switch component {
	case componentCLI:
		return renderCommanderCLI(spec, "cli.mjs", clispec.LanguageNodeJS), nil
	case componentManifest:
		return marshalNpmManifest(npmManifest{
			Name:        spec.Project.PackageName,
			Version:     spec.Project.Version,
			Description: spec.Project.Description,
			Type:        "module",
			Bin:         map[string]string{spec.Project.CommandName: "./cli.mjs"},
			Dependencies: map[string]string{
				"commander": "^12.1.0",
			},
		})
	case componentInstaller:
		return installScript(spec, []string{
			"npm install --omit=dev",
			"npm link",
		})
	default:
		return "", &MissingComponentError{Language: r.Language(), Component: component}
	}
}

func marshalNpmManifest(m npmManifest) (string, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal package.json: %w", err)
	}
	return string(out) + "\n", nil
}

// renderCommanderCLI emits the commander program shared by the nodejs and
// typescript targets; the TS variant adds type annotations on the dispatch
// surface and a direct import of the hooks module.
func renderCommanderCLI(spec *ir.IR, sourceName string, lang clispec.TargetLanguage) string {
	ts := lang == clispec.LanguageTypeScript
	var sb strings.Builder

	if ts {
		fmt.Fprintf(&sb, "// %s — generated by goobits; regenerate from the spec instead of editing.\n", sourceName)
		sb.WriteString("import { Command } from 'commander';\n\n")
		sb.WriteString("type HookParams = Record<string, unknown>;\n")
		sb.WriteString("type Hooks = Record<string, (params: HookParams) => unknown>;\n\n")
		sb.WriteString("let hooks: Hooks = {};\n")
		sb.WriteString("try {\n")
		fmt.Fprintf(&sb, "  hooks = (await import('./%s_hooks.js')) as Hooks;\n", snakeCase(spec.Project.PackageName))
		sb.WriteString("} catch {\n  // No hooks module; every command falls through to the stub below.\n}\n\n")
	} else {
		sb.WriteString("#!/usr/bin/env node\n")
		fmt.Fprintf(&sb, "// %s — generated by goobits; regenerate from the spec instead of editing.\n", sourceName)
		sb.WriteString("import { Command } from 'commander';\n\n")
		sb.WriteString("let hooks = {};\n")
		sb.WriteString("try {\n")
		fmt.Fprintf(&sb, "  hooks = await import('./%s_hooks.mjs');\n", snakeCase(spec.Project.PackageName))
		sb.WriteString("} catch {\n  // No hooks module; every command falls through to the stub below.\n}\n\n")
	}

	if ts {
		sb.WriteString("function dispatch(hookName: string, params: HookParams): unknown {\n")
	} else {
		sb.WriteString("function dispatch(hookName, params) {\n")
	}
	fmt.Fprintf(&sb, "  const handler = hooks[hookName] ?? hooks[%q];\n", hooks.GenericHookName)
	sb.WriteString("  if (handler) {\n    return handler(params);\n  }\n")
	sb.WriteString("  console.error(`no hook defined for ${params.command_name}`);\n")
	sb.WriteString("  return undefined;\n}\n\n")

	sb.WriteString("const program = new Command();\n")
	fmt.Fprintf(&sb, "program\n  .name('%s')\n  .description('%s')\n  .version('%s');\n",
		escapeString(spec.Project.CommandName, lang),
		escapeString(spec.Project.Description, lang),
		spec.Project.Version)

	for _, node := range spec.Hierarchy.Roots {
		writeCommanderNode(&sb, spec, node, "program", lang)
	}

	sb.WriteString("\nprogram.parse();\n")
	return sb.String()
}

// writeCommanderNode emits one command or group attached to parentVar.
func writeCommanderNode(sb *strings.Builder, spec *ir.IR, node *hierarchy.CommandNode, parentVar string, lang clispec.TargetLanguage) {
	ts := lang == clispec.LanguageTypeScript
	varName := "cmd" + pascalCase(strings.Join(node.Path, "-"))

	sb.WriteString("\n")
	fmt.Fprintf(sb, "const %s = %s\n  .command('%s')\n  .description('%s')",
		varName, parentVar, commanderUsage(node), escapeString(node.Spec.Description, lang))

	if node.IsGroup() {
		sb.WriteString(";\n")
		for _, child := range node.Children {
			writeCommanderNode(sb, spec, child, varName, lang)
		}
		return
	}

	for i := range node.Spec.Options {
		writeCommanderOption(sb, &node.Spec.Options[i], lang)
	}
	for i := range spec.GlobalOptions {
		writeCommanderOption(sb, &spec.GlobalOptions[i], lang)
	}

	binding := spec.Binding(node.Path)
	args := make([]string, 0, len(node.Spec.Arguments)+1)
	for i := range node.Spec.Arguments {
		args = append(args, camelCase(node.Spec.Arguments[i].Name))
	}
	if ts {
		for i := range args {
			args[i] += ": string"
		}
		args = append(args, "options: HookParams")
	} else {
		args = append(args, "options")
	}

	fmt.Fprintf(sb, "\n  .action((%s) => {\n", strings.Join(args, ", "))
	fmt.Fprintf(sb, "    dispatch(%q, {\n", binding.HookName)
	fmt.Fprintf(sb, "      command_name: '%s',\n", strings.Join(node.Path, " "))
	for i := range node.Spec.Arguments {
		name := camelCase(node.Spec.Arguments[i].Name)
		fmt.Fprintf(sb, "      %s,\n", name)
	}
	sb.WriteString("      ...options,\n")
	sb.WriteString("    });\n  });\n")
}

// commanderUsage builds the command token with its positional argument
// syntax, e.g. "greet <name> [tags...]".
func commanderUsage(node *hierarchy.CommandNode) string {
	parts := []string{node.Name}
	for i := range node.Spec.Arguments {
		arg := &node.Spec.Arguments[i]
		token := camelCase(arg.Name)
		if arg.Variadic {
			token += "..."
		}
		if arg.Required {
			parts = append(parts, "<"+token+">")
		} else {
			parts = append(parts, "["+token+"]")
		}
	}
	return strings.Join(parts, " ")
}

func writeCommanderOption(sb *strings.Builder, opt *clispec.OptionSpec, lang clispec.TargetLanguage) {
	flags := "--" + opt.Name
	if opt.Short != "" {
		flags = "-" + opt.Short + ", " + flags
	}
	if !opt.Flag && opt.GetType() != clispec.OptionTypeBool {
		flags += " <value>"
	}

	parts := []string{fmt.Sprintf("'%s'", flags), fmt.Sprintf("'%s'", escapeString(opt.Help, lang))}
	if opt.Default != nil {
		parts = append(parts, jsLiteral(opt.Default))
	}
	fmt.Fprintf(sb, "\n  .option(%s)", strings.Join(parts, ", "))
}
