// SPDX-License-Identifier: MPL-2.0

package validate

import "goobits-cli/pkg/clispec"

// Context carries the inputs of one validation run plus a shared side-channel.
//
// Shared is mutable on purpose: validators execute in dependency order, and a
// later validator may reuse cheap insights a dependency already computed (the
// hooks validator stores resolved hook names under SharedHookNames for the
// hint validators, for example). The context lives for a single run and is
// never reused across builds.
type Context struct {
	// Spec is the parsed spec under validation. Read-only.
	Spec *clispec.CLISpec
	// Language is the target language the run is scoped to.
	Language clispec.TargetLanguage
	// Mode selects the failure threshold and whether hint validators run.
	Mode Mode
	// Shared is the cross-validator side-channel, keyed by well-known names.
	Shared map[string]any
}

// SharedHookNames is the Shared key under which the hooks validator publishes
// the map of slash-joined command paths to resolved hook names.
const SharedHookNames = "hook_names"

// NewContext creates a Context for one run.
func NewContext(spec *clispec.CLISpec, language clispec.TargetLanguage, mode Mode) *Context {
	return &Context{
		Spec:     spec,
		Language: language,
		Mode:     mode,
		Shared:   make(map[string]any),
	}
}
