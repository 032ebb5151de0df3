// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"strings"
	"testing"

	"goobits-cli/pkg/clispec"
)

// runValidator runs a single validator against a spec in the given mode.
func runValidator(t *testing.T, v Validator, spec *clispec.CLISpec, mode Mode) []Diagnostic {
	t.Helper()
	ctx := NewContext(spec, clispec.LanguagePython, mode)
	return v.Validate(ctx)
}

// countSeverity counts diagnostics of exactly the given severity.
func countSeverity(diags []Diagnostic, sev Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// findDiagnostic returns the first diagnostic whose message contains the
// given substring, or nil.
func findDiagnostic(diags []Diagnostic, substr string) *Diagnostic {
	for i := range diags {
		if strings.Contains(diags[i].Message, substr) {
			return &diags[i]
		}
	}
	return nil
}

func TestStructureValidator_EmptyCommands(t *testing.T) {
	t.Parallel()

	diags := runValidator(t, &StructureValidator{}, &clispec.CLISpec{}, ModeStrict)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	if diags[0].Severity != SeverityCritical {
		t.Errorf("Severity = %v, want critical", diags[0].Severity)
	}
}

func TestStructureValidator_DuplicateSiblings(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "deploy"},
			{Name: "deploy"},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	d := findDiagnostic(diags, `duplicate sibling command "deploy"`)
	if d == nil {
		t.Fatalf("no duplicate-sibling diagnostic in %v", diags)
	}
	if d.Severity != SeverityCritical {
		t.Errorf("Severity = %v, want critical", d.Severity)
	}
}

func TestStructureValidator_MultipleDefaults(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "outer", Subcommands: []clispec.CommandSpec{
				{Name: "a", IsDefault: true},
				{Name: "b", IsDefault: true},
			}},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	d := findDiagnostic(diags, "marked is_default")
	if d == nil {
		t.Fatalf("no multiple-default diagnostic in %v", diags)
	}
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Location != "outer" {
		t.Errorf("Location = %q, want %q", d.Location, "outer")
	}
}

func TestStructureValidator_ReservedAndKeywordNames(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "import"}, // keyword in several targets
			{
				Name:      "run",
				Arguments: []clispec.ArgumentSpec{{Name: "command_name"}},
				Options:   []clispec.OptionSpec{{Name: "help"}},
			},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	if d := findDiagnostic(diags, `command name "import" is a keyword`); d == nil {
		t.Errorf("keyword command name not reported: %v", diags)
	}
	if d := findDiagnostic(diags, `argument name "command_name" is reserved`); d == nil {
		t.Errorf("reserved argument name not reported: %v", diags)
	}
	if d := findDiagnostic(diags, `option name "help" is reserved`); d == nil {
		t.Errorf("reserved option name not reported: %v", diags)
	}
}

func TestStructureValidator_ArgumentOrdering(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "copy",
				Arguments: []clispec.ArgumentSpec{
					{Name: "dest"},                              // optional
					{Name: "source", Required: true},            // required after optional
					{Name: "extras", Variadic: true},            // variadic not last
					{Name: "trailing"},
				},
			},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	d := findDiagnostic(diags, "required argument declared after an optional one")
	if d == nil {
		t.Fatalf("ordering violation not reported: %v", diags)
	}
	if d.Location != "copy/arguments/source" {
		t.Errorf("Location = %q", d.Location)
	}
	if findDiagnostic(diags, "variadic argument must be the last") == nil {
		t.Errorf("variadic placement not reported: %v", diags)
	}
}

func TestStructureValidator_DuplicateShortAlias(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "serve",
				Options: []clispec.OptionSpec{
					{Name: "verbose", Short: "v"},
					{Name: "version-check", Short: "v"},
				},
			},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	d := findDiagnostic(diags, `short alias "v" already used`)
	if d == nil {
		t.Fatalf("duplicate short alias not reported: %v", diags)
	}
	if d.Location != "serve/options/version-check" {
		t.Errorf("Location = %q", d.Location)
	}
}

func TestStructureValidator_GlobalOptions(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{{Name: "hello"}},
		GlobalOptions: []clispec.OptionSpec{
			{Name: "config"},
			{Name: "config"},
		},
	}
	diags := runValidator(t, &StructureValidator{}, spec, ModeStrict)

	d := findDiagnostic(diags, `duplicate option name "config"`)
	if d == nil {
		t.Fatalf("duplicate global option not reported: %v", diags)
	}
	if d.Location != "global_options/config" {
		t.Errorf("Location = %q", d.Location)
	}
}

func TestTypeValidator(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "cmd",
				Arguments: []clispec.ArgumentSpec{
					{Name: "mode", Type: clispec.ArgumentTypeChoice},
					{Name: "bogus", Type: "decimal"},
				},
				Options: []clispec.OptionSpec{
					{Name: "format", Type: clispec.OptionTypeChoice}, // no choices
					{Name: "level", Type: clispec.OptionTypeInt, Choices: []string{"a"}},
					{Name: "force", Flag: true, Type: clispec.OptionTypeString},
				},
			},
		},
	}
	diags := runValidator(t, &TypeValidator{}, spec, ModeStrict)

	tests := []struct {
		substr   string
		severity Severity
	}{
		{"choice-typed arguments are not supported", SeverityError},
		{`invalid argument type "decimal"`, SeverityError},
		{"choice-typed option declares no choices", SeverityError},
		{"choices declared on int-typed option are ignored", SeverityWarning},
		{`flag option cannot have type "string"`, SeverityError},
	}
	for _, tt := range tests {
		d := findDiagnostic(diags, tt.substr)
		if d == nil {
			t.Errorf("missing diagnostic containing %q in %v", tt.substr, diags)
			continue
		}
		if d.Severity != tt.severity {
			t.Errorf("%q: Severity = %v, want %v", tt.substr, d.Severity, tt.severity)
		}
	}
	if len(diags) != len(tests) {
		t.Errorf("got %d diagnostics, want %d: %v", len(diags), len(tests), diags)
	}
}

func TestTypeValidator_FlagWithoutExplicitTypeIsFine(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "cmd", Options: []clispec.OptionSpec{{Name: "force", Flag: true}}},
		},
	}
	if diags := runValidator(t, &TypeValidator{}, spec, ModeStrict); len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestDefaultValueValidator(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{
				Name: "cmd",
				Arguments: []clispec.ArgumentSpec{
					{Name: "count", Type: clispec.ArgumentTypeInt, Default: "three"},
					{Name: "target", Required: true, Default: "prod"},
					{Name: "ratio", Type: clispec.ArgumentTypeFloat, Default: 2}, // int coerces
				},
				Options: []clispec.OptionSpec{
					{
						Name:    "format",
						Type:    clispec.OptionTypeChoice,
						Choices: []string{"json", "yaml"},
						Default: "xml",
					},
					{Name: "dry-run", Type: clispec.OptionTypeBool, Default: true},
				},
			},
		},
	}
	diags := runValidator(t, &DefaultValueValidator{}, spec, ModeStrict)

	if d := findDiagnostic(diags, `does not match declared type "int"`); d == nil {
		t.Errorf("int mismatch not reported: %v", diags)
	}
	if d := findDiagnostic(diags, "default value on a required parameter"); d == nil || d.Severity != SeverityWarning {
		t.Errorf("required-default warning missing or wrong severity: %v", diags)
	}
	if d := findDiagnostic(diags, `default "xml" is not one of the declared choices`); d == nil {
		t.Errorf("out-of-set choice default not reported: %v", diags)
	}
	// The float default 2 and the bool default true must pass silently.
	if len(diags) != 3 {
		t.Errorf("got %d diagnostics, want 3: %v", len(diags), diags)
	}
}

func TestHookValidator_Collision(t *testing.T) {
	t.Parallel()

	// "config get" and "config-get" both normalize to on_config_get.
	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "config", Subcommands: []clispec.CommandSpec{{Name: "get"}}},
			{Name: "config-get"},
		},
	}
	ctx := NewContext(spec, clispec.LanguagePython, ModeStrict)
	diags := (&HookValidator{}).Validate(ctx)

	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if !strings.Contains(d.Message, `"on_config_get"`) {
		t.Errorf("Message = %q, expected the colliding hook name", d.Message)
	}
	if d.Location != "config-get" {
		t.Errorf("Location = %q, want the later-declared command", d.Location)
	}
}

func TestHookValidator_PublishesSharedHookNames(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "hello"},
			{Name: "config", Subcommands: []clispec.CommandSpec{{Name: "get"}}},
		},
	}
	ctx := NewContext(spec, clispec.LanguagePython, ModeStrict)
	if diags := (&HookValidator{}).Validate(ctx); len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	names, ok := ctx.Shared[SharedHookNames].(map[string]string)
	if !ok {
		t.Fatalf("Shared[%q] = %T, want map[string]string", SharedHookNames, ctx.Shared[SharedHookNames])
	}
	want := map[string]string{
		"hello":      "on_hello",
		"config/get": "on_config_get",
	}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for path, hook := range want {
		if names[path] != hook {
			t.Errorf("names[%q] = %q, want %q", path, names[path], hook)
		}
	}
}

func TestDepthValidator_WarnsOncePastThreshold(t *testing.T) {
	t.Parallel()

	// A linear chain 8 levels deep with a threshold of 2 must produce exactly
	// one warning, at level 3, not one per deeper node.
	leaf := clispec.CommandSpec{Name: "l8"}
	for i := 7; i >= 1; i-- {
		leaf = clispec.CommandSpec{
			Name:        "l" + string(rune('0'+i)),
			Subcommands: []clispec.CommandSpec{leaf},
		}
	}
	spec := &clispec.CLISpec{Commands: []clispec.CommandSpec{leaf}}

	diags := runValidator(t, &DepthValidator{MaxDepth: 2}, spec, ModeStrict)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	if diags[0].Location != "l1/l2/l3" {
		t.Errorf("Location = %q, want l1/l2/l3", diags[0].Location)
	}
	if diags[0].Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", diags[0].Severity)
	}
}

func TestDepthValidator_DefaultThreshold(t *testing.T) {
	t.Parallel()

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "a", Subcommands: []clispec.CommandSpec{
				{Name: "b", Subcommands: []clispec.CommandSpec{
					{Name: "c", Subcommands: []clispec.CommandSpec{
						{Name: "d", Subcommands: []clispec.CommandSpec{
							{Name: "e"},
						}},
					}},
				}},
			}},
		},
	}
	// Exactly DefaultMaxDepth levels: no warning.
	if diags := runValidator(t, &DepthValidator{}, spec, ModeStrict); len(diags) != 0 {
		t.Errorf("unexpected diagnostics at the threshold: %v", diags)
	}
}

func TestParameterHintValidator(t *testing.T) {
	t.Parallel()

	var args []clispec.ArgumentSpec
	for _, n := range []string{"a", "b", "c", "d", "e"} {
		args = append(args, clispec.ArgumentSpec{Name: n})
	}
	var opts []clispec.OptionSpec
	for _, n := range []string{"f", "g", "h", "i"} {
		opts = append(opts, clispec.OptionSpec{Name: n})
	}

	spec := &clispec.CLISpec{
		Commands: []clispec.CommandSpec{
			{Name: "big", Description: "lots of knobs", Arguments: args, Options: opts},
			{Name: "bare"}, // no params, no description
			{Name: "fine", Description: "documented no-param command"},
		},
	}

	ctx := NewContext(spec, clispec.LanguagePython, ModeDevelopment)
	(&HookValidator{}).Validate(ctx)
	diags := (&ParameterHintValidator{}).Validate(ctx)

	if countSeverity(diags, SeverityInfo) != len(diags) {
		t.Errorf("hints must be info-only: %v", diags)
	}
	if d := findDiagnostic(diags, "on_big receives 9 parameters"); d == nil {
		t.Errorf("oversized-parameter hint missing: %v", diags)
	}
	if d := findDiagnostic(diags, "on_bare takes no parameters"); d == nil {
		t.Errorf("empty-command hint missing: %v", diags)
	}
	if len(diags) != 2 {
		t.Errorf("got %d diagnostics, want 2: %v", len(diags), diags)
	}
}
