// SPDX-License-Identifier: MPL-2.0

package hooks

import (
	"errors"
	"slices"
	"testing"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/pkg/clispec"
)

func TestHookName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path []string
		want string
	}{
		{[]string{"status"}, "on_status"},
		{[]string{"config", "get"}, "on_config_get"},
		{[]string{"list-models"}, "on_list_models"},
		{[]string{"Config", "Get"}, "on_config_get"},
		{[]string{"db", "migrate-up"}, "on_db_migrate_up"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := HookName(tt.path); got != tt.want {
				t.Errorf("HookName(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestHookName_Pure(t *testing.T) {
	t.Parallel()

	path := []string{"config", "get"}
	first := HookName(path)
	for i := 0; i < 100; i++ {
		if got := HookName(path); got != first {
			t.Fatalf("HookName is not deterministic: %q then %q", first, got)
		}
	}
}

func normalize(t *testing.T, spec *clispec.CLISpec) *hierarchy.Hierarchy {
	t.Helper()
	h, err := hierarchy.Normalize(spec)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	return h
}

func TestResolve_GroupsGetNoBinding(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "config",
				Subcommands: []clispec.CommandSpec{
					{Name: "get"},
					{Name: "set"},
				},
			},
		},
	}

	bindings, err := Resolve(normalize(t, spec), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for _, b := range bindings {
		names = append(names, b.HookName)
	}
	want := []string{"on_config_get", "on_config_set"}
	if !slices.Equal(names, want) {
		t.Errorf("bindings = %v, want %v", names, want)
	}
}

func TestResolve_ExpectedParameters(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "hello",
				Arguments: []clispec.ArgumentSpec{
					{Name: "name", Required: true},
				},
			},
		},
	}

	bindings, err := Resolve(normalize(t, spec), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bindings) != 1 {
		t.Fatalf("got %d bindings, want 1", len(bindings))
	}

	want := []string{CommandNameParameter, "name"}
	if !slices.Equal(bindings[0].ExpectedParameters, want) {
		t.Errorf("ExpectedParameters = %v, want %v", bindings[0].ExpectedParameters, want)
	}
}

func TestResolve_GlobalOptionsAppended(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name:    "hello",
				Options: []clispec.OptionSpec{{Name: "shout", Flag: true}},
			},
		},
	}

	bindings, err := Resolve(normalize(t, spec), []string{"verbose", "shout"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// "shout" appears both locally and globally; the duplicate is dropped.
	want := []string{CommandNameParameter, "shout", "verbose"}
	if !slices.Equal(bindings[0].ExpectedParameters, want) {
		t.Errorf("ExpectedParameters = %v, want %v", bindings[0].ExpectedParameters, want)
	}
}

func TestResolve_Collision(t *testing.T) {
	t.Parallel()

	// "config get" and "config-get" derive the same hook name.
	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name:        "config",
				Subcommands: []clispec.CommandSpec{{Name: "get"}},
			},
			{Name: "config-get"},
		},
	}

	_, err := Resolve(normalize(t, spec), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var collision *CollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected *CollisionError, got %T: %v", err, err)
	}
	if collision.HookName != "on_config_get" {
		t.Errorf("HookName = %q", collision.HookName)
	}
}

func TestResolve_DeclarationOrder(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "zebra"},
			{Name: "alpha"},
		},
	}

	bindings, err := Resolve(normalize(t, spec), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bindings[0].HookName != "on_zebra" || bindings[1].HookName != "on_alpha" {
		t.Errorf("binding order = %q, %q", bindings[0].HookName, bindings[1].HookName)
	}
}
