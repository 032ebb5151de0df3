// SPDX-License-Identifier: MPL-2.0

package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"goobits-cli/internal/hierarchy"
	"goobits-cli/internal/hooks"
	"goobits-cli/internal/ir"
	"goobits-cli/internal/issue"
	"goobits-cli/internal/render"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"

	"github.com/charmbracelet/log"
)

// ErrSpecInvalid is returned when validation stops a build before rendering.
var ErrSpecInvalid = errors.New("spec failed validation")

type (
	// Options configures one Orchestrator.
	Options struct {
		// Languages to render. Must be non-empty.
		Languages []clispec.TargetLanguage
		// Mode is the validation mode ("" means strict).
		Mode validate.Mode
		// Parallel renders languages concurrently. Output is identical either
		// way; the IR is frozen before the first renderer runs.
		Parallel bool
		// Validators overrides the default validator registry (optional).
		Validators *validate.Registry
		// Renderers overrides the default renderer registry (optional).
		Renderers *render.Registry
		// Logger receives pipeline progress (optional).
		Logger *log.Logger
	}

	// LanguageResult is the outcome of rendering one target language.
	LanguageResult struct {
		Language clispec.TargetLanguage
		// Output maps component names to rendered files; nil when Err is set.
		Output render.Output
		// Err is the failure scoped to this language, if any.
		Err error
	}

	// Result is the complete outcome of one build.
	Result struct {
		// Validation holds every diagnostic collected, including ones below
		// the mode's threshold. Always set once validation ran.
		Validation *validate.Result
		// IR is the assembled intermediate representation; nil when the
		// build aborted before assembly.
		IR *ir.IR
		// Languages holds one entry per requested language, in request order.
		Languages []LanguageResult
	}

	// Orchestrator runs builds. Construct with New; a zero Orchestrator is
	// not usable.
	Orchestrator struct {
		opts       Options
		validators *validate.Registry
		renderers  *render.Registry
		logger     *log.Logger
	}
)

// Succeeded returns the results of languages that rendered without error.
func (r *Result) Succeeded() []LanguageResult {
	var out []LanguageResult
	for _, lr := range r.Languages {
		if lr.Err == nil {
			out = append(out, lr)
		}
	}
	return out
}

// Failed returns the results of languages whose rendering failed.
func (r *Result) Failed() []LanguageResult {
	var out []LanguageResult
	for _, lr := range r.Languages {
		if lr.Err != nil {
			out = append(out, lr)
		}
	}
	return out
}

// New creates an Orchestrator. Defaults are filled in for every unset
// optional field; an error is returned only for unusable options.
func New(opts Options) (*Orchestrator, error) {
	if len(opts.Languages) == 0 {
		return nil, fmt.Errorf("build: no target languages requested")
	}
	for _, lang := range opts.Languages {
		if ok, errs := lang.IsValid(); !ok {
			return nil, errs[0]
		}
	}
	if opts.Mode == "" {
		opts.Mode = validate.ModeStrict
	}
	if ok, errs := opts.Mode.IsValid(); !ok {
		return nil, errs[0]
	}

	validators := opts.Validators
	if validators == nil {
		var err error
		validators, err = validate.NewDefaultRegistry()
		if err != nil {
			return nil, fmt.Errorf("build: assemble default validators: %w", err)
		}
	}

	renderers := opts.Renderers
	if renderers == nil {
		renderers = render.NewDefaultRegistry()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "build",
		})
	}

	return &Orchestrator{
		opts:       opts,
		validators: validators,
		renderers:  renderers,
		logger:     logger,
	}, nil
}

// Build runs the full pipeline against a parsed spec. It returns the Result
// and a build-level error. A per-language render failure is NOT a build-level
// error: it lives in the Result, and the caller decides how partial success
// exits. The returned Result is non-nil whenever validation ran, so callers
// can print diagnostics even for a failed build.
func (o *Orchestrator) Build(ctx context.Context, spec *clispec.CLISpec) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("build canceled: %w", err)
	}

	o.logger.Debug("validating spec", "mode", o.opts.Mode, "commands", spec.CountCommands())
	vctx := validate.NewContext(spec, o.firstLanguage(), o.opts.Mode)
	vres := o.validators.Run(vctx)
	result := &Result{Validation: &vres}
	if !vres.Valid {
		o.logger.Error("validation failed", "diagnostics", len(vres.Diagnostics))
		return result, ErrSpecInvalid
	}

	h, err := hierarchy.Normalize(spec)
	if err != nil {
		// Duplicate sibling paths are fatal: a tree that silently dropped
		// one of them would generate a CLI missing a command.
		var conflict *hierarchy.ConflictError
		if errors.As(err, &conflict) {
			return result, issue.NewErrorContext().
				AtStage(issue.StageHierarchy).
				WithOperation("normalize command hierarchy").
				WithResource(spec.FilePath).
				WithIssue(issue.DuplicateCommandId).
				WithSuggestion("Rename one of the duplicate sibling commands").
				Wrap(err).
				BuildError()
		}
		return result, err
	}
	o.logger.Debug("hierarchy normalized", "commands", h.Len(), "max_depth", h.MaxDepth)

	bindings, err := hooks.Resolve(h, spec.GlobalOptionNames())
	if err != nil {
		return result, issue.NewErrorContext().
			AtStage(issue.StageHooks).
			WithOperation("resolve hook bindings").
			WithResource(spec.FilePath).
			WithIssue(issue.HookCollisionId).
			WithSuggestion("Rename one of the commands whose paths map to the same hook name").
			Wrap(err).
			BuildError()
	}
	o.logger.Debug("hooks resolved", "bindings", len(bindings))

	intermediate, err := ir.Build(spec, h, bindings, &vres)
	if err != nil {
		return result, err
	}
	result.IR = intermediate

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("build canceled: %w", err)
	}

	result.Languages = o.renderLanguages(intermediate)
	for _, lr := range result.Languages {
		if lr.Err != nil {
			o.logger.Error("render failed", "language", lr.Language, "err", lr.Err)
		} else {
			o.logger.Info("rendered", "language", lr.Language, "files", len(lr.Output))
		}
	}
	return result, nil
}

// renderLanguages renders every requested language, sequentially or in
// parallel. Result order always matches request order.
func (o *Orchestrator) renderLanguages(intermediate *ir.IR) []LanguageResult {
	results := make([]LanguageResult, len(o.opts.Languages))

	renderOne := func(i int, lang clispec.TargetLanguage) {
		out, err := o.renderers.RenderAll(lang, intermediate)
		if err != nil {
			// Scope the failure to its language so the CLI layer can report
			// per-language outcomes and pick catalog guidance.
			err = issue.NewErrorContext().
				AtStage(issue.StageRender).
				WithOperation("generate package").
				WithLanguage(string(lang)).
				Wrap(err).
				BuildError()
			results[i] = LanguageResult{Language: lang, Err: err}
			return
		}
		results[i] = LanguageResult{Language: lang, Output: out}
	}

	if !o.opts.Parallel {
		for i, lang := range o.opts.Languages {
			renderOne(i, lang)
		}
		return results
	}

	var wg sync.WaitGroup
	for i, lang := range o.opts.Languages {
		wg.Add(1)
		go func(i int, lang clispec.TargetLanguage) {
			defer wg.Done()
			renderOne(i, lang)
		}(i, lang)
	}
	wg.Wait()
	return results
}

// firstLanguage gives the validation context a representative target; the
// built-in validators are language-independent, so any requested one serves.
func (o *Orchestrator) firstLanguage() clispec.TargetLanguage {
	return o.opts.Languages[0]
}
