// SPDX-License-Identifier: MPL-2.0

package render

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"
)

// renderFixture assembles an IR covering the shapes renderers must handle:
// a plain leaf, a group with a default subcommand, typed parameters, and a
// global flag.
func renderFixture(t *testing.T) *ir.IR {
	t.Helper()

	spec := &clispec.CLISpec{
		PackageName: "demo-tool",
		CommandName: "demo",
		Version:     "0.3.1",
		Description: "demo CLI for tests",
		GlobalOptions: []clispec.OptionSpec{
			{Name: "verbose", Short: "v", Flag: true, Help: "verbose output"},
		},
		Commands: []clispec.CommandSpec{
			{
				Name:        "greet",
				Description: "greet someone",
				Arguments: []clispec.ArgumentSpec{
					{Name: "name", Required: true},
					{Name: "count", Type: clispec.ArgumentTypeInt, Default: 1},
				},
				Options: []clispec.OptionSpec{
					{
						Name:    "style",
						Type:    clispec.OptionTypeChoice,
						Choices: []string{"plain", "fancy"},
						Default: "plain",
					},
				},
			},
			{
				Name:        "config",
				Description: "manage settings",
				Subcommands: []clispec.CommandSpec{
					{Name: "show", Description: "print settings", IsDefault: true},
					{Name: "set", Description: "write a setting", Arguments: []clispec.ArgumentSpec{
						{Name: "key", Required: true},
						{Name: "value", Required: true},
					}},
				},
			},
		},
	}

	h, err := hierarchy.Normalize(spec)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	bindings, err := hooks.Resolve(h, spec.GlobalOptionNames())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	return &ir.IR{
		Project: ir.Project{
			PackageName: spec.PackageName,
			CommandName: spec.CommandName,
			Version:     spec.Version,
			Description: spec.Description,
		},
		GlobalOptions: spec.GlobalOptions,
		Hierarchy:     h,
		Hooks:         bindings,
	}
}

func TestNewDefaultRegistry_AllLanguages(t *testing.T) {
	t.Parallel()

	r := NewDefaultRegistry()
	langs := r.Languages()
	want := []clispec.TargetLanguage{
		clispec.LanguageNodeJS,
		clispec.LanguagePython,
		clispec.LanguageRust,
		clispec.LanguageTypeScript,
	}
	if len(langs) != len(want) {
		t.Fatalf("Languages() = %v", langs)
	}
	for i, l := range want {
		if langs[i] != l {
			t.Errorf("Languages()[%d] = %q, want %q", i, langs[i], l)
		}
	}
}

func TestRegister_MismatchedKey(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Register(clispec.LanguageRust, &PythonRenderer{})
	if err == nil {
		t.Fatal("expected error registering a python renderer under rust")
	}
	if !strings.Contains(err.Error(), "cannot register under") {
		t.Errorf("err = %v", err)
	}
}

func TestRegister_DuplicateLanguage(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Register(clispec.LanguagePython, &PythonRenderer{}); err != nil {
		t.Fatal(err)
	}
	if err := r.Register(clispec.LanguagePython, &PythonRenderer{}); err == nil {
		t.Error("expected error for duplicate language registration")
	}
}

func TestRegister_InvalidLanguage(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	err := r.Register("cobol", &PythonRenderer{})
	if !errors.Is(err, clispec.ErrInvalidTargetLanguage) {
		t.Errorf("err = %v, want ErrInvalidTargetLanguage", err)
	}
}

func TestGet_Unknown(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Register(clispec.LanguagePython, &PythonRenderer{}); err != nil {
		t.Fatal(err)
	}

	_, err := r.Get(clispec.LanguageRust)
	var unknown *UnknownLanguageError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownLanguageError, got %T: %v", err, err)
	}
	if unknown.Language != clispec.LanguageRust {
		t.Errorf("Language = %q", unknown.Language)
	}
	if len(unknown.Available) != 1 || unknown.Available[0] != clispec.LanguagePython {
		t.Errorf("Available = %v", unknown.Available)
	}
}

func TestRenderAll_Deterministic(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	r := NewDefaultRegistry()

	for _, lang := range r.Languages() {
		first, err := r.RenderAll(lang, spec)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		second, err := r.RenderAll(lang, spec)
		if err != nil {
			t.Fatalf("%s: %v", lang, err)
		}
		if len(first) != len(second) {
			t.Fatalf("%s: component count changed between renders", lang)
		}
		for component, file := range first {
			if second[component].Content != file.Content {
				t.Errorf("%s/%s: output differs between identical renders", lang, component)
			}
			if second[component].Path != file.Path {
				t.Errorf("%s/%s: path differs between identical renders", lang, component)
			}
		}
	}
}

func TestRenderers_UnknownComponent(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	for _, renderer := range []Renderer{
		&PythonRenderer{}, &NodeJSRenderer{}, &TypeScriptRenderer{}, &RustRenderer{},
	} {
		_, err := renderer.Render(spec, "bogus")
		var missing *MissingComponentError
		if !errors.As(err, &missing) {
			t.Errorf("%s: expected *MissingComponentError, got %T: %v", renderer.Language(), err, err)
			continue
		}
		if missing.Component != "bogus" {
			t.Errorf("%s: Component = %q", renderer.Language(), missing.Component)
		}
	}
}

// failingRenderer simulates a renderer whose content generation breaks.
type failingRenderer struct{}

func (failingRenderer) Language() clispec.TargetLanguage { return clispec.LanguagePython }

func (failingRenderer) OutputStructure(_ *ir.IR) map[string]string {
	return map[string]string{"cli": "cli.py"}
}

func (failingRenderer) Render(_ *ir.IR, _ string) (string, error) {
	return "", fmt.Errorf("disk on fire")
}

func TestRenderAll_WrapsFailureAsRenderError(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	if err := r.Register(clispec.LanguagePython, failingRenderer{}); err != nil {
		t.Fatal(err)
	}

	out, err := r.RenderAll(clispec.LanguagePython, renderFixture(t))
	if out != nil {
		t.Error("expected nil output on failure")
	}
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RenderError, got %T: %v", err, err)
	}
	if rerr.Language != clispec.LanguagePython || rerr.Component != "cli" {
		t.Errorf("RenderError = %+v", rerr)
	}
	if rerr.Unwrap() == nil || !strings.Contains(rerr.Unwrap().Error(), "disk on fire") {
		t.Errorf("cause not preserved: %v", rerr.Unwrap())
	}
}

func TestPythonRenderer_CLI(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	out, err := (&PythonRenderer{}).Render(spec, componentCLI)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"import click",
		`importlib.import_module("demo_tool_hooks")`,
		"def _dispatch(hook_name, **params):",
		`getattr(hooks, "on_command_executed", None)`,
		`@click.version_option("0.3.1")`,
		`@cli.command("greet")`,
		`@click.argument("name")`,
		`@click.argument("count", type=int, required=False, default=1)`,
		`type=click.Choice(["plain", "fancy"])`,
		`"--verbose", "-v", is_flag=True`,
		`_dispatch("on_greet", command_name="greet", name=name, count=count, style=style, verbose=verbose)`,
		`@cli.group("config", invoke_without_command=True)`,
		"ctx.invoke(_cmd_config_show)",
		`_dispatch("on_config_set", command_name="config set"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated cli.py missing %q", want)
		}
	}
}

func TestPythonRenderer_Manifest(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	out, err := (&PythonRenderer{}).Render(spec, componentManifest)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"build-backend = 'hatchling.build'",
		"name = 'demo-tool'",
		"version = '0.3.1'",
		"demo = 'demo_tool.cli:cli'",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("pyproject.toml missing %q:\n%s", want, out)
		}
	}
}

func TestCommanderRenderers_CLI(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)

	js, err := (&NodeJSRenderer{}).Render(spec, componentCLI)
	if err != nil {
		t.Fatal(err)
	}
	ts, err := (&TypeScriptRenderer{}).Render(spec, componentCLI)
	if err != nil {
		t.Fatal(err)
	}

	shared := []string{
		"commander",
		"function dispatch(",
		`"on_command_executed"`,
		`"on_greet"`,
		`"on_config_show"`,
		"--verbose",
	}
	for _, want := range shared {
		if !strings.Contains(js, want) {
			t.Errorf("cli.mjs missing %q", want)
		}
		if !strings.Contains(ts, want) {
			t.Errorf("cli.ts missing %q", want)
		}
	}

	// Only the TS variant carries type annotations.
	if strings.Contains(js, "HookParams") {
		t.Error("cli.mjs contains TypeScript type declarations")
	}
	if !strings.Contains(ts, "HookParams") {
		t.Error("cli.ts lacks type declarations")
	}
}

func TestTypeScriptRenderer_TSConfig(t *testing.T) {
	t.Parallel()

	out, err := (&TypeScriptRenderer{}).Render(renderFixture(t), componentTSConfig)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"strict": true`) {
		t.Errorf("tsconfig.json missing strict: %s", out)
	}
}

func TestRustRenderer_CLI(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	out, err := (&RustRenderer{}).Render(spec, componentCLI)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"mod hooks",
		"fn on_greet(",
		"fn on_config_show(",
		"clap::",
		`"greet"`,
		"subcommand()",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("main.rs missing %q", want)
		}
	}
}

func TestRustRenderer_Manifest(t *testing.T) {
	t.Parallel()

	out, err := (&RustRenderer{}).Render(renderFixture(t), componentManifest)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"name = 'demo_tool'", "edition = '2021'", "clap"} {
		if !strings.Contains(out, want) {
			t.Errorf("Cargo.toml missing %q:\n%s", want, out)
		}
	}
}

func TestInstallScripts_ParseAsPOSIX(t *testing.T) {
	t.Parallel()

	spec := renderFixture(t)
	for _, renderer := range []Renderer{
		&PythonRenderer{}, &NodeJSRenderer{}, &TypeScriptRenderer{}, &RustRenderer{},
	} {
		out, err := renderer.Render(spec, componentInstaller)
		if err != nil {
			t.Errorf("%s: %v", renderer.Language(), err)
			continue
		}
		if !strings.HasPrefix(out, "#!/bin/sh\n") {
			t.Errorf("%s: installer lacks shebang", renderer.Language())
		}
		// Render already syntax-checks; re-check here so a relaxed renderer
		// still fails the test.
		if err := checkShellSyntax(out); err != nil {
			t.Errorf("%s: %v", renderer.Language(), err)
		}
	}
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	if got := snakeCase("list-models"); got != "list_models" {
		t.Errorf("snakeCase = %q", got)
	}
	if got := camelCase("dry-run"); got != "dryRun" {
		t.Errorf("camelCase = %q", got)
	}
	if got := pascalCase("config-get"); got != "ConfigGet" {
		t.Errorf("pascalCase = %q", got)
	}
	if got := pythonLiteral(true); got != "True" {
		t.Errorf("pythonLiteral(true) = %q", got)
	}
	if got := jsLiteral("a\"b"); got != `"a\"b"` {
		t.Errorf("jsLiteral = %q", got)
	}
	if got := rustLiteral(42); got != `"42"` {
		t.Errorf("rustLiteral = %q", got)
	}
	if got := escapeString("it's `x`", clispec.LanguageNodeJS); got != "it\\'s \\`x\\`" {
		t.Errorf("escapeString = %q", got)
	}
}
