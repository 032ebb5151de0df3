// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	t.Parallel()

	for _, id := range []Id{
		SpecNotFoundId, SpecParseErrorId, ValidationFailedId, HookCollisionId,
		DuplicateCommandId, UnknownLanguageId, RenderFailedId,
		ConfigLoadFailedId, OutputWriteFailedId, ValidatorCycleId,
	} {
		iss := Get(id)
		if iss == nil {
			t.Errorf("Get(%d) = nil", id)
			continue
		}
		if iss.Id() != id {
			t.Errorf("Get(%d).Id() = %d", id, iss.Id())
		}
		if strings.TrimSpace(string(iss.MarkdownMsg())) == "" {
			t.Errorf("issue %d has no message", id)
		}
	}

	if Get(Id(9999)) != nil {
		t.Error("Get(unknown) != nil")
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	values := Values()
	if len(values) != 10 {
		t.Errorf("Values() returned %d issues, want 10", len(values))
	}
	seen := make(map[Id]bool, len(values))
	for _, iss := range values {
		if seen[iss.Id()] {
			t.Errorf("duplicate issue id %d", iss.Id())
		}
		seen[iss.Id()] = true
	}
}

func TestIssueRender(t *testing.T) {
	// Swap the markdown renderer for a passthrough so the test asserts on
	// composition, not glamour's terminal styling.
	original := render
	render = func(in string, _ string) (string, error) { return in, nil }
	defer func() { render = original }()

	out, err := Get(HookCollisionId).Render("dark")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Hook name collision") {
		t.Errorf("rendered issue missing title: %q", out)
	}
}

func TestLinksAreCopies(t *testing.T) {
	t.Parallel()

	iss := Get(SpecNotFoundId)
	links := iss.DocLinks()
	links = append(links, "https://example.invalid")
	if len(iss.DocLinks()) == len(links) {
		t.Error("DocLinks returned a shared slice")
	}
}
