// SPDX-License-Identifier: MPL-2.0

// Package render turns the IR into per-language source trees.
//
// A Renderer is a pure function of the IR: it declares the files it will
// produce (OutputStructure) and generates each one by logical component name
// (Render). The registry maps a target language to exactly one renderer and
// makes a wrong or missing registration a loud, typed error — a renderer that
// silently never matches any build request is a defect class this package
// exists to kill.
//
// Renderers must be deterministic: rendering an unchanged IR twice yields
// byte-identical output. All iteration here runs over declaration-ordered
// slices, never over maps.
package render

import (
	"errors"
	"fmt"
	"sort"

	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"
)

type (
	// Renderer generates one target language's output from the IR.
	Renderer interface {
		// Language is the registry key this renderer serves.
		Language() clispec.TargetLanguage
		// OutputStructure maps logical component names to relative output
		// paths, without generating any content.
		OutputStructure(spec *ir.IR) map[string]string
		// Render generates the content of one named component.
		Render(spec *ir.IR, component string) (string, error)
	}

	// File is one rendered output file.
	File struct {
		// Path is the output path relative to the language's output root.
		Path string
		// Content is the complete file content.
		Content string
	}

	// Output maps logical component names to rendered files for one language.
	Output map[string]File

	// UnknownLanguageError is returned when a build requests a language no
	// renderer is registered under.
	UnknownLanguageError struct {
		Language  clispec.TargetLanguage
		Available []clispec.TargetLanguage
	}

	// MissingComponentError is returned when a renderer's Render does not
	// know a component its own OutputStructure promised.
	MissingComponentError struct {
		Language  clispec.TargetLanguage
		Component string
	}

	// RenderError scopes a render failure to one language. Other languages'
	// builds proceed; partial success is a first-class outcome.
	RenderError struct {
		Language  clispec.TargetLanguage
		Component string
		Cause     error
	}

	// Registry maps each target language to its renderer. A per-build value,
	// like the validator registry: no process-global state.
	Registry struct {
		renderers map[clispec.TargetLanguage]Renderer
	}
)

// Error implements the error interface.
func (e *UnknownLanguageError) Error() string {
	return fmt.Sprintf("no renderer registered for language %q (available: %v)", e.Language, e.Available)
}

// Error implements the error interface.
func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("%s renderer promised component %q but cannot render it", e.Language, e.Component)
}

// Error implements the error interface.
func (e *RenderError) Error() string {
	return fmt.Sprintf("%s: rendering %q failed: %v", e.Language, e.Component, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *RenderError) Unwrap() error { return e.Cause }

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{renderers: make(map[clispec.TargetLanguage]Renderer)}
}

// NewDefaultRegistry creates a Registry with every built-in renderer
// registered under its own language key.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, renderer := range []Renderer{
		&PythonRenderer{},
		&NodeJSRenderer{},
		&TypeScriptRenderer{},
		&RustRenderer{},
	} {
		// Built-ins register under their own Language(); Register enforces
		// the same for external renderers.
		if err := r.Register(renderer.Language(), renderer); err != nil {
			panic(err)
		}
	}
	return r
}

// Register binds a renderer to a language key. The key must match the
// renderer's own Language — registering under a mismatched key is exactly the
// silent-no-match defect the registry exists to prevent — and each key takes
// exactly one renderer.
func (r *Registry) Register(language clispec.TargetLanguage, renderer Renderer) error {
	if ok, errs := language.IsValid(); !ok {
		return errs[0]
	}
	if renderer.Language() != language {
		return fmt.Errorf("renderer identifies as %q, cannot register under %q",
			renderer.Language(), language)
	}
	if _, exists := r.renderers[language]; exists {
		return fmt.Errorf("renderer already registered for language %q", language)
	}
	r.renderers[language] = renderer
	return nil
}

// Get returns the renderer for a language, or UnknownLanguageError.
func (r *Registry) Get(language clispec.TargetLanguage) (Renderer, error) {
	renderer, ok := r.renderers[language]
	if !ok {
		return nil, &UnknownLanguageError{Language: language, Available: r.Languages()}
	}
	return renderer, nil
}

// Languages returns the registered language keys in sorted order.
func (r *Registry) Languages() []clispec.TargetLanguage {
	out := make([]clispec.TargetLanguage, 0, len(r.renderers))
	for l := range r.renderers {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RenderAll runs one language's full render: enumerate the declared structure,
// then render every component. The first failure is wrapped as a RenderError
// and returned with nil output; the caller decides how failures across
// languages aggregate.
func (r *Registry) RenderAll(language clispec.TargetLanguage, spec *ir.IR) (Output, error) {
	renderer, err := r.Get(language)
	if err != nil {
		return nil, err
	}

	structure := renderer.OutputStructure(spec)

	// Deterministic render order regardless of map iteration.
	components := make([]string, 0, len(structure))
	for c := range structure {
		components = append(components, c)
	}
	sort.Strings(components)

	out := make(Output, len(components))
	for _, component := range components {
		content, err := renderer.Render(spec, component)
		if err != nil {
			var missing *MissingComponentError
			if errors.As(err, &missing) {
				return nil, missing
			}
			return nil, &RenderError{Language: language, Component: component, Cause: err}
		}
		out[component] = File{Path: structure[component], Content: content}
	}
	return out, nil
}
