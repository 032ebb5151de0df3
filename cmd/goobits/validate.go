// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"goobits-cli/internal/issue"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

var (
	validateMode string

	// validateCmd checks a spec without generating anything.
	validateCmd = &cobra.Command{
		Use:   "validate [spec-file]",
		Short: "Check a spec without generating code",
		Long: `Parse a spec file and run the full validator suite against it.

All diagnostics are reported, including ones below the mode's failure
threshold. Development mode additionally runs hint validators that point
out legal-but-awkward spec constructs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
)

func init() {
	validateCmd.Flags().StringVarP(&validateMode, "mode", "m", "", "validation mode (strict, lenient, development, production)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(args)
	if err != nil {
		printGuidance(os.Stderr, err)
		return &ExitError{Code: ExitSpecInvalid, Err: err}
	}

	mode := resolveMode()
	if validateMode != "" {
		mode = validate.Mode(validateMode)
	}
	if ok, errs := mode.IsValid(); !ok {
		return errs[0]
	}

	registry, err := validate.NewDefaultRegistry()
	if err != nil {
		return err
	}

	vctx := validate.NewContext(spec, validationLanguage(spec), mode)
	result := registry.Run(vctx)
	printDiagnostics(&result)

	if !result.Valid {
		printGuidanceFor(os.Stderr, issue.ValidationFailedId)
		return &ExitError{
			Code: ExitSpecInvalid,
			Err:  fmt.Errorf("spec failed validation in %s mode (%d diagnostics)", mode, len(result.Diagnostics)),
		}
	}

	fmt.Printf("%s %s is valid (%d commands, %d diagnostics)\n",
		SuccessStyle.Render("✓"), spec.FilePath, spec.CountCommands(), len(result.Diagnostics))
	return nil
}

// validationLanguage picks the language the validators see: the spec's own
// declared target, or python when the spec leaves it open.
func validationLanguage(spec *clispec.CLISpec) clispec.TargetLanguage {
	if spec.Language != "" {
		return spec.Language
	}
	return clispec.LanguagePython
}
