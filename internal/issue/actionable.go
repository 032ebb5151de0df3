// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

// Pipeline stages an ActionableError can originate from. The stage lets the
// CLI layer pick catalog guidance without parsing operation strings.
const (
	StageConfig    = "config"
	StageParse     = "parse"
	StageValidate  = "validate"
	StageHierarchy = "hierarchy"
	StageHooks     = "hooks"
	StageRender    = "render"
	StageWrite     = "write"
)

type (
	// ActionableError carries what the CLI layer needs to help the user past
	// a build failure: which pipeline stage stopped, the operation that
	// failed, the spec file or output path involved, the target language a
	// render failure is scoped to, concrete suggestions, and the known-issue
	// catalog entry covering this failure class.
	//
	// Construct through the ErrorContext builder:
	//
	//	return issue.NewErrorContext().
	//		AtStage(issue.StageHooks).
	//		WithOperation("resolve hook bindings").
	//		WithResource(spec.FilePath).
	//		WithIssue(issue.HookCollisionId).
	//		Wrap(err).
	//		BuildError()
	ActionableError struct {
		// Stage is the pipeline stage that failed, one of the Stage
		// constants (optional).
		Stage string

		// Operation is a verb phrase for what was being attempted,
		// e.g. "load spec" or "generate package".
		Operation string

		// Resource is the spec file, config path, or output target involved
		// (optional).
		Resource string

		// Language scopes a render or write failure to one target language
		// (optional).
		Language string

		// Suggestions are concrete next steps for the user (optional).
		Suggestions []string

		// Issue names the known-issue catalog entry whose rendered guidance
		// applies to this failure; zero when the stage default should be used.
		Issue Id

		// Cause is the underlying error (optional).
		Cause error
	}

	// ErrorContext builds ActionableError values incrementally, so context
	// gathered early (stage, spec path) can be combined with the cause once
	// the failure actually happens.
	ErrorContext struct {
		stage       string
		operation   string
		resource    string
		language    string
		suggestions []string
		issueId     Id
		cause       error
	}
)

// NewErrorContext creates an empty ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// Error implements the error interface with a concise one-line message:
//
//	failed to <operation>[ for <language>][: <resource>][: <cause>]
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Language != "" {
		msg.WriteString(" for ")
		msg.WriteString(e.Language)
	}

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}

	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for errors.Is/As chains.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// CatalogId resolves the known-issue catalog entry for this error: the
// explicit Issue when set, otherwise the default entry for the stage. Zero
// means no catalog guidance applies.
func (e *ActionableError) CatalogId() Id {
	if e.Issue != 0 {
		return e.Issue
	}
	switch e.Stage {
	case StageConfig:
		return ConfigLoadFailedId
	case StageParse:
		return SpecParseErrorId
	case StageValidate:
		return ValidationFailedId
	case StageHierarchy:
		return DuplicateCommandId
	case StageHooks:
		return HookCollisionId
	case StageRender:
		return RenderFailedId
	case StageWrite:
		return OutputWriteFailedId
	}
	return 0
}

// Format renders the error for display. The non-verbose form is the one-line
// message plus suggestion bullets; verbose additionally numbers the full
// unwrap chain of the cause.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	if len(e.Suggestions) > 0 {
		msg.WriteString("\n")
		for _, suggestion := range e.Suggestions {
			msg.WriteString("\n  • ")
			msg.WriteString(suggestion)
		}
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		err := e.Cause
		depth := 1
		for err != nil {
			fmt.Fprintf(&msg, "\n  %d. %s", depth, err.Error())
			err = errors.Unwrap(err)
			depth++
		}
	}

	return msg.String()
}

// HasSuggestions reports whether the error carries any suggestions.
func (e *ActionableError) HasSuggestions() bool {
	return len(e.Suggestions) > 0
}

// AtStage records the pipeline stage the failure belongs to.
func (c *ErrorContext) AtStage(stage string) *ErrorContext {
	c.stage = stage
	return c
}

// WithOperation sets the operation being performed, a verb phrase like
// "load spec" or "write generated output".
func (c *ErrorContext) WithOperation(op string) *ErrorContext {
	c.operation = op
	return c
}

// WithResource sets the file, path, or entity involved.
func (c *ErrorContext) WithResource(res string) *ErrorContext {
	c.resource = res
	return c
}

// WithLanguage scopes the failure to one target language.
func (c *ErrorContext) WithLanguage(lang string) *ErrorContext {
	c.language = lang
	return c
}

// WithSuggestion adds one suggestion; call repeatedly to add several.
func (c *ErrorContext) WithSuggestion(sug string) *ErrorContext {
	c.suggestions = append(c.suggestions, sug)
	return c
}

// WithSuggestions adds multiple suggestions at once.
func (c *ErrorContext) WithSuggestions(sugs ...string) *ErrorContext {
	c.suggestions = append(c.suggestions, sugs...)
	return c
}

// WithIssue links the failure to a known-issue catalog entry.
func (c *ErrorContext) WithIssue(id Id) *ErrorContext {
	c.issueId = id
	return c
}

// Wrap records an underlying error as the cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build creates the ActionableError. Returns nil unless an operation was set;
// an error without one has nothing to tell the user.
func (c *ErrorContext) Build() *ActionableError {
	if c.operation == "" {
		return nil
	}

	return &ActionableError{
		Stage:       c.stage,
		Operation:   c.operation,
		Resource:    c.resource,
		Language:    c.language,
		Suggestions: c.suggestions,
		Issue:       c.issueId,
		Cause:       c.cause,
	}
}

// BuildError is Build returning the error interface, convenient in return
// statements. Returns nil when Build does.
func (c *ErrorContext) BuildError() error {
	ae := c.Build()
	if ae == nil {
		return nil
	}
	return ae
}
