// SPDX-License-Identifier: MPL-2.0

package main

import (
	"errors"
	"fmt"
	"io"

	"goobits-cli/internal/build"
	"goobits-cli/internal/config"
	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/issue"
	"goobits-cli/internal/render"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"
)

// issueFor maps a failure to its known-issue catalog entry. Errors built
// through the issue package carry their entry (or a stage default) directly;
// everything else is classified by type. Zero means no guidance applies.
func issueFor(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if id := ae.CatalogId(); id != 0 {
			return id
		}
	}

	var (
		specErr     *clispec.SpecError
		conflictErr *hierarchy.ConflictError
		collision   *hooks.CollisionError
		cycleErr    *validate.CycleError
		unknownLang *render.UnknownLanguageError
		renderErr   *render.RenderError
	)
	switch {
	case errors.As(err, &specErr):
		return issue.SpecParseErrorId
	case errors.Is(err, build.ErrSpecInvalid):
		return issue.ValidationFailedId
	case errors.As(err, &conflictErr):
		return issue.DuplicateCommandId
	case errors.As(err, &collision):
		return issue.HookCollisionId
	case errors.As(err, &cycleErr):
		return issue.ValidatorCycleId
	case errors.Is(err, clispec.ErrInvalidTargetLanguage):
		return issue.UnknownLanguageId
	case errors.As(err, &unknownLang):
		return issue.UnknownLanguageId
	case errors.As(err, &renderErr):
		return issue.RenderFailedId
	}
	return 0
}

// printGuidance renders the catalog entry matching err to w, after the error
// itself has been reported. Errors without an entry print nothing, as does a
// markdown rendering failure; guidance is additive, never a second failure.
func printGuidance(w io.Writer, err error) {
	printGuidanceFor(w, issueFor(err))
}

// printGuidanceFor renders one catalog entry by id.
func printGuidanceFor(w io.Writer, id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(guidanceStyle())
	if err != nil {
		return
	}
	fmt.Fprint(w, rendered)
}

// guidanceStyle maps the configured color scheme to a glamour style name.
func guidanceStyle() string {
	if cfg == nil {
		return "auto"
	}
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}
