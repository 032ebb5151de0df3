// SPDX-License-Identifier: MPL-2.0

package hierarchy

import (
	"strings"
	"testing"
)

func TestRebuild_RoundTripIdentity(t *testing.T) {
	t.Parallel()

	spec := fixtureSpec()

	first, err := Normalize(spec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Flatten the rebuilt tree again and rebuild once more; the result must
	// be structurally identical.
	var reflat []FlatCommand
	first.Walk(func(node *CommandNode) {
		reflat = append(reflat, FlatCommand{Path: node.Path, Depth: len(node.Path), Spec: node.Spec})
	})
	second := Rebuild(reflat)

	if !first.Equal(second) {
		t.Error("flatten/rebuild round trip changed the hierarchy")
	}
}

func TestRebuild_Structure(t *testing.T) {
	t.Parallel()

	h, err := Normalize(fixtureSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if h.Len() != 7 {
		t.Errorf("Len() = %d, want 7", h.Len())
	}
	if h.MaxDepth != 3 {
		t.Errorf("MaxDepth = %d, want 3", h.MaxDepth)
	}
	if len(h.Roots) != 3 {
		t.Fatalf("got %d roots, want 3", len(h.Roots))
	}
	if h.Roots[0].Name != "hello" || h.Roots[1].Name != "config" || h.Roots[2].Name != "version" {
		t.Errorf("root order = %q, %q, %q", h.Roots[0].Name, h.Roots[1].Name, h.Roots[2].Name)
	}

	cfg := h.Roots[1]
	if !cfg.IsGroup() {
		t.Error("config should be a group")
	}
	if len(cfg.Children) != 3 {
		t.Fatalf("config has %d children, want 3", len(cfg.Children))
	}
	if cfg.Children[0].Name != "get" || cfg.Children[1].Name != "set" || cfg.Children[2].Name != "cache" {
		t.Errorf("config child order = %q, %q, %q",
			cfg.Children[0].Name, cfg.Children[1].Name, cfg.Children[2].Name)
	}

	if h.Roots[0].IsGroup() {
		t.Error("hello should not be a group")
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	h, err := Normalize(fixtureSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	node := h.Lookup("config", "cache", "clear")
	if node == nil {
		t.Fatal("Lookup(config cache clear) = nil")
	}
	if node.Name != "clear" {
		t.Errorf("Name = %q", node.Name)
	}

	if h.Lookup("config", "nope") != nil {
		t.Error("Lookup of missing path should be nil")
	}
	if h.Lookup() != nil {
		t.Error("Lookup of empty path should be nil")
	}
}

func TestWalk_DeclarationOrder(t *testing.T) {
	t.Parallel()

	h, err := Normalize(fixtureSpec())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var visited []string
	h.Walk(func(node *CommandNode) {
		visited = append(visited, strings.Join(node.Path, " "))
	})

	want := []string{
		"hello",
		"config",
		"config get",
		"config set",
		"config cache",
		"config cache clear",
		"version",
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a, _ := Normalize(fixtureSpec())
	b, _ := Normalize(fixtureSpec())
	if !a.Equal(b) {
		t.Error("identical specs should produce equal hierarchies")
	}

	other, _ := Normalize(fixtureSpec())
	// Drop one node to break equality.
	other.Roots[1].Children = other.Roots[1].Children[:2]
	delete(other.byKey, PathKey([]string{"config", "cache"}))
	delete(other.byKey, PathKey([]string{"config", "cache", "clear"}))
	if a.Equal(other) {
		t.Error("hierarchies with different node sets should not be equal")
	}
}
