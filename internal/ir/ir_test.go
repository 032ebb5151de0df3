// SPDX-License-Identifier: MPL-2.0

package ir

import (
	"errors"
	"testing"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"
)

func pipelineFixture(t *testing.T) (*clispec.CLISpec, *hierarchy.Hierarchy, []hooks.Binding) {
	t.Helper()

	spec := &clispec.CLISpec{
		PackageName: "demo-tool",
		CommandName: "demo",
		Version:     "1.2.0",
		Description: "demo CLI",
		GlobalOptions: []clispec.OptionSpec{
			{Name: "verbose", Flag: true},
		},
		Commands: []clispec.CommandSpec{
			{Name: "hello", Description: "greet"},
			{Name: "config", Description: "settings", Subcommands: []clispec.CommandSpec{
				{Name: "get", Description: "read a value"},
			}},
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
	return spec, h, bindings
}

func validResult() *validate.Result {
	return &validate.Result{Valid: true}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	spec, h, bindings := pipelineFixture(t)
	built, err := Build(spec, h, bindings, validResult())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if built.Project.PackageName != "demo-tool" || built.Project.CommandName != "demo" {
		t.Errorf("Project = %+v", built.Project)
	}
	if built.Project.Version != "1.2.0" {
		t.Errorf("Version = %q", built.Project.Version)
	}
	if built.Hierarchy != h {
		t.Error("Hierarchy not carried through")
	}
	if len(built.Hooks) != len(bindings) {
		t.Errorf("got %d bindings, want %d", len(built.Hooks), len(bindings))
	}
}

func TestBuild_ContractViolations(t *testing.T) {
	t.Parallel()

	spec, h, bindings := pipelineFixture(t)

	tests := []struct {
		name   string
		result *validate.Result
	}{
		{"nil result", nil},
		{"invalid result", &validate.Result{Valid: false}},
		{"critical diagnostic", &validate.Result{
			Valid: true,
			Diagnostics: []validate.Diagnostic{
				{Severity: validate.SeverityCritical, Message: "boom"},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			built, err := Build(spec, h, bindings, tt.result)
			if built != nil {
				t.Error("Build returned an IR despite broken precondition")
			}
			var contract *ContractError
			if !errors.As(err, &contract) {
				t.Fatalf("expected *ContractError, got %T: %v", err, err)
			}
			if contract.Stage != "ir" {
				t.Errorf("Stage = %q", contract.Stage)
			}
		})
	}
}

func TestBuild_NormalizesGlobalOptionTypes(t *testing.T) {
	t.Parallel()

	spec, h, bindings := pipelineFixture(t)
	built, err := Build(spec, h, bindings, validResult())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got := built.GlobalOptions[0].Type; got != clispec.OptionTypeBool {
		t.Errorf("normalized type = %q, want bool (flag shorthand)", got)
	}
	// Normalization must not write back into the source spec.
	if spec.GlobalOptions[0].Type != "" {
		t.Errorf("source spec mutated: %q", spec.GlobalOptions[0].Type)
	}
}

func TestBinding(t *testing.T) {
	t.Parallel()

	spec, h, bindings := pipelineFixture(t)
	built, err := Build(spec, h, bindings, validResult())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	b := built.Binding([]string{"config", "get"})
	if b == nil {
		t.Fatal("Binding(config get) = nil")
	}
	if b.HookName != "on_config_get" {
		t.Errorf("HookName = %q", b.HookName)
	}

	if built.Binding([]string{"config"}) != nil {
		t.Error("group nodes must have no binding")
	}
	if built.Binding([]string{"missing"}) != nil {
		t.Error("unknown path must have no binding")
	}
}
