// SPDX-License-Identifier: MPL-2.0

package validate

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// SeverityInfo is an informational finding, never failing validation.
	SeverityInfo Severity = iota
	// SeverityWarning is a potential issue that fails validation only in strict mode.
	SeverityWarning
	// SeverityError is a definite spec problem.
	SeverityError
	// SeverityCritical is a problem that makes downstream stages unsafe to run.
	SeverityCritical
)

// ErrInvalidSeverity is returned when a Severity value is not one of the defined levels.
var ErrInvalidSeverity = errors.New("invalid severity")

type (
	// Severity indicates the weight of a diagnostic.
	Severity int

	// InvalidSeverityError is returned when a Severity value is not recognized.
	// It wraps ErrInvalidSeverity for errors.Is() compatibility.
	InvalidSeverityError struct {
		Value Severity
	}

	// Diagnostic is a single severity-tagged validation finding attached to a
	// location in the spec.
	Diagnostic struct {
		// Severity is the weight of the finding.
		Severity Severity
		// Validator is the name of the validator that produced the finding.
		Validator string
		// Location is the slash-joined spec path the finding refers to
		// (e.g., "config/get/arguments/key"). Empty for spec-wide findings.
		Location string
		// Message is the human-readable description.
		Message string
		// Suggestion is an optional hint for fixing the finding.
		Suggestion string
	}

	// Result aggregates every diagnostic produced by one validation run.
	Result struct {
		// Diagnostics holds all findings in validator execution order.
		Diagnostics []Diagnostic
		// Valid reports whether no diagnostic reached the mode's failure
		// threshold.
		Valid bool
	}
)

// Error implements the error interface.
func (e *InvalidSeverityError) Error() string {
	return fmt.Sprintf("invalid severity %d (valid: 0..3)", int(e.Value))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidSeverityError) Unwrap() error { return ErrInvalidSeverity }

// IsValid returns whether the Severity is one of the defined levels,
// and a list of validation errors if it is not.
func (s Severity) IsValid() (bool, []error) {
	if s < SeverityInfo || s > SeverityCritical {
		return false, []error{&InvalidSeverityError{Value: s}}
	}
	return true, nil
}

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// String renders the diagnostic as a one-line report.
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Severity.String())
	if d.Location != "" {
		sb.WriteString(" at ")
		sb.WriteString(d.Location)
	}
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(d.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// HasCritical reports whether any diagnostic is critical. IR assembly must
// never run against a spec with an unresolved critical diagnostic.
func (r *Result) HasCritical() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// CountAtLeast returns the number of diagnostics at or above the given severity.
func (r *Result) CountAtLeast(min Severity) int {
	n := 0
	for _, d := range r.Diagnostics {
		if d.Severity >= min {
			n++
		}
	}
	return n
}
