// SPDX-License-Identifier: MPL-2.0

package hooks

import "strings"

type (
	// Strategy is one way of locating a hook for a command path within a set
	// of known hook names. Strategies are tried in order; the first match
	// wins. A strategy that finds nothing returns ("", false) — failure is
	// signalled by the sentinel, not by an error, because hooks are optional.
	Strategy interface {
		// Name identifies the strategy in discovery reports.
		Name() string
		// Find returns the matching hook name and true, or ("", false).
		Find(path []string, known map[string]bool) (string, bool)
	}

	// Discovery resolves command paths against a set of hook names known to
	// exist in the user's hook module (harvested by the generated program at
	// runtime, or supplied to `goobits validate` for early feedback).
	Discovery struct {
		strategies []Strategy
		known      map[string]bool
	}

	// Match is a successful discovery outcome.
	Match struct {
		HookName string
		Strategy string
	}

	// exactStrategy matches the canonical derived name.
	exactStrategy struct{}

	// namespacedStrategy matches the double-underscore namespaced form
	// ("on_config__get"), kept for specs migrated from older hook modules.
	namespacedStrategy struct{}

	// genericStrategy matches the catch-all handler "on_command_executed".
	genericStrategy struct{}
)

// GenericHookName is the catch-all entry point a hook module may define to
// receive every command that has no dedicated hook.
const GenericHookName = "on_command_executed"

func (exactStrategy) Name() string { return "exact" }

func (exactStrategy) Find(path []string, known map[string]bool) (string, bool) {
	name := HookName(path)
	return name, known[name]
}

func (namespacedStrategy) Name() string { return "namespaced" }

func (namespacedStrategy) Find(path []string, known map[string]bool) (string, bool) {
	segments := make([]string, len(path))
	for i, seg := range path {
		segments[i] = strings.ToLower(strings.ReplaceAll(seg, "-", "_"))
	}
	name := "on_" + strings.Join(segments, "__")
	return name, known[name]
}

func (genericStrategy) Name() string { return "generic" }

func (genericStrategy) Find(_ []string, known map[string]bool) (string, bool) {
	return GenericHookName, known[GenericHookName]
}

// NewDiscovery creates a Discovery over the given known hook names using the
// default strategy order: exact, namespaced, generic.
func NewDiscovery(known []string) *Discovery {
	set := make(map[string]bool, len(known))
	for _, k := range known {
		set[k] = true
	}
	return &Discovery{
		strategies: []Strategy{exactStrategy{}, namespacedStrategy{}, genericStrategy{}},
		known:      set,
	}
}

// Find tries each strategy in order and returns the first match. The second
// return value is false when no strategy matched; that is a normal outcome,
// not an error, since commands without hooks are legal.
func (d *Discovery) Find(path []string) (Match, bool) {
	for _, s := range d.strategies {
		if name, ok := s.Find(path, d.known); ok {
			return Match{HookName: name, Strategy: s.Name()}, true
		}
	}
	return Match{}, false
}
