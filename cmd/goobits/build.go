// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"goobits-cli/internal/build"
	"goobits-cli/internal/issue"
	"goobits-cli/internal/validate"
	"goobits-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

var (
	buildLanguages  []string
	buildMode       string
	buildOutput     string
	buildSequential bool

	// buildCmd compiles a spec into every requested target language.
	buildCmd = &cobra.Command{
		Use:   "build [spec-file]",
		Short: "Generate CLI packages from a spec",
		Long: `Generate a complete CLI package for each requested target language.

The spec file defaults to cli.cue (then cli.yaml, cli.yml) in the current
directory. Target languages come from --language flags, falling back to the
spec's own 'language' field and then the configured default_languages.

A failure in one language's generator does not stop the others; the build
reports per-language outcomes and exits non-zero only when something failed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringSliceVarP(&buildLanguages, "language", "l", nil, "target language (repeatable: python, nodejs, typescript, rust)")
	buildCmd.Flags().StringVarP(&buildMode, "mode", "m", "", "validation mode (strict, lenient, development, production)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default from config)")
	buildCmd.Flags().BoolVar(&buildSequential, "sequential", false, "render languages one at a time")
}

func runBuild(cmd *cobra.Command, args []string) error {
	spec, err := loadSpec(args)
	if err != nil {
		printGuidance(os.Stderr, err)
		return &ExitError{Code: ExitSpecInvalid, Err: err}
	}

	languages, err := resolveLanguages(spec)
	if err != nil {
		printGuidance(os.Stderr, err)
		return &ExitError{Code: ExitSpecInvalid, Err: err}
	}

	orch, err := build.New(build.Options{
		Languages: languages,
		Mode:      resolveMode(),
		Parallel:  cfg.ParallelRender && !buildSequential,
	})
	if err != nil {
		return err
	}

	result, err := orch.Build(cmd.Context(), spec)
	if result != nil && result.Validation != nil {
		printDiagnostics(result.Validation)
	}
	if err != nil {
		printGuidance(os.Stderr, err)
		return &ExitError{Code: ExitSpecInvalid, Err: err}
	}

	outputDir := buildOutput
	if outputDir == "" {
		outputDir = cfg.OutputDir.String()
	}
	written, err := build.WriteOutput(result, outputDir)
	if err != nil {
		printGuidance(os.Stderr, err)
		return err
	}

	for _, lr := range result.Succeeded() {
		fmt.Printf("%s %s (%d files)\n", SuccessStyle.Render("✓"), lr.Language, len(lr.Output))
	}
	failed := result.Failed()
	for _, lr := range failed {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", ErrorStyle.Render("✗"), lr.Language, formatErrorForDisplay(lr.Err, verbose))
	}
	if len(failed) > 0 {
		printGuidance(os.Stderr, failed[0].Err)
	}
	if len(written) > 0 {
		fmt.Println(SubtitleStyle.Render(fmt.Sprintf("Wrote %d files under %s", len(written), outputDir)))
	}

	switch code := renderExitCode(len(result.Succeeded()), len(failed)); code {
	case ExitRenderFailed:
		return &ExitError{Code: code, Err: fmt.Errorf("all %d target languages failed", len(result.Languages))}
	case ExitPartialFailure:
		return &ExitError{Code: code, Err: fmt.Errorf("%d of %d target languages failed", len(failed), len(result.Languages))}
	default:
		return nil
	}
}

// loadSpec parses the spec named by args, falling back to the conventional
// filenames in the current directory.
func loadSpec(args []string) (*clispec.CLISpec, error) {
	if len(args) > 0 {
		return clispec.Parse(args[0])
	}

	for _, candidate := range []string{clispec.DefaultSpecFileName, "cli.yaml", "cli.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return clispec.Parse(candidate)
		}
	}
	return nil, issue.NewErrorContext().
		WithOperation("locate spec file").
		WithIssue(issue.SpecNotFoundId).
		WithSuggestion("Run 'goobits init' to scaffold one").
		WithSuggestion("Or pass an explicit path: goobits build path/to/cli.cue").
		Wrap(fmt.Errorf("no cli.cue, cli.yaml, or cli.yml in the current directory")).
		BuildError()
}

// resolveLanguages applies the precedence: --language flags, then the spec's
// own language field, then the configured defaults.
func resolveLanguages(spec *clispec.CLISpec) ([]clispec.TargetLanguage, error) {
	names := buildLanguages
	if len(names) == 0 && spec.Language != "" {
		names = []string{spec.Language.String()}
	}
	if len(names) == 0 {
		names = cfg.DefaultLanguages
	}

	languages := make([]clispec.TargetLanguage, 0, len(names))
	seen := make(map[clispec.TargetLanguage]bool)
	for _, name := range names {
		lang := clispec.TargetLanguage(name)
		if ok, errs := lang.IsValid(); !ok {
			return nil, errs[0]
		}
		if !seen[lang] {
			seen[lang] = true
			languages = append(languages, lang)
		}
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("no target languages: pass --language or set default_languages in config")
	}
	return languages, nil
}

// resolveMode applies the precedence: --mode flag, then config, then strict.
func resolveMode() validate.Mode {
	if buildMode != "" {
		return validate.Mode(buildMode)
	}
	if cfg.ValidationMode != "" {
		return validate.Mode(cfg.ValidationMode)
	}
	return validate.ModeStrict
}

// printDiagnostics renders every diagnostic with severity-appropriate styling.
func printDiagnostics(result *validate.Result) {
	for _, d := range result.Diagnostics {
		line := d.String()
		switch {
		case d.Severity >= validate.SeverityError:
			fmt.Fprintln(os.Stderr, ErrorStyle.Render(line))
		case d.Severity == validate.SeverityWarning:
			fmt.Fprintln(os.Stderr, WarningStyle.Render(line))
		default:
			fmt.Fprintln(os.Stderr, SubtitleStyle.Render(line))
		}
	}
}
