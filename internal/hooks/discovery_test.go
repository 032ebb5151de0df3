// SPDX-License-Identifier: MPL-2.0

package hooks

import "testing"

func TestDiscovery_ExactWins(t *testing.T) {
	t.Parallel()

	d := NewDiscovery([]string{"on_config_get", "on_config__get", GenericHookName})

	match, ok := d.Find([]string{"config", "get"})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.HookName != "on_config_get" || match.Strategy != "exact" {
		t.Errorf("match = %+v", match)
	}
}

func TestDiscovery_NamespacedFallback(t *testing.T) {
	t.Parallel()

	d := NewDiscovery([]string{"on_config__get"})

	match, ok := d.Find([]string{"config", "get"})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.HookName != "on_config__get" || match.Strategy != "namespaced" {
		t.Errorf("match = %+v", match)
	}
}

func TestDiscovery_GenericFallback(t *testing.T) {
	t.Parallel()

	d := NewDiscovery([]string{GenericHookName})

	match, ok := d.Find([]string{"anything"})
	if !ok {
		t.Fatal("expected a match")
	}
	if match.HookName != GenericHookName || match.Strategy != "generic" {
		t.Errorf("match = %+v", match)
	}
}

func TestDiscovery_NoMatchIsNotAnError(t *testing.T) {
	t.Parallel()

	d := NewDiscovery(nil)

	if _, ok := d.Find([]string{"hello"}); ok {
		t.Error("expected no match against an empty hook set")
	}
}
