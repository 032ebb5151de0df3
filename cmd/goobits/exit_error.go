// SPDX-License-Identifier: MPL-2.0

package main

import "fmt"

// Exit codes. Spec problems, partial render failures, and total render
// failures are distinct outcomes for scripts driving the tool.
const (
	// ExitOK means every requested language rendered.
	ExitOK = 0
	// ExitSpecInvalid means the spec failed parsing or validation; nothing
	// was rendered.
	ExitSpecInvalid = 2
	// ExitPartialFailure means at least one language rendered and at least
	// one failed.
	ExitPartialFailure = 3
	// ExitRenderFailed means the spec was valid but every requested
	// language's generator failed.
	ExitRenderFailed = 4
)

// renderExitCode picks the exit code from per-language render outcomes.
func renderExitCode(succeeded, failed int) int {
	switch {
	case failed > 0 && succeeded == 0:
		return ExitRenderFailed
	case failed > 0:
		return ExitPartialFailure
	default:
		return ExitOK
	}
}

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
