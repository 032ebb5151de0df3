// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// ModeStrict fails the build on warnings and above.
	ModeStrict ValidationMode = "strict"
	// ModeLenient fails the build only on critical diagnostics.
	ModeLenient ValidationMode = "lenient"
	// ModeDevelopment behaves like strict and additionally runs hint validators.
	ModeDevelopment ValidationMode = "development"
	// ModeProduction fails the build on errors and above.
	ModeProduction ValidationMode = "production"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidValidationMode is returned when a ValidationMode value is not recognized.
	ErrInvalidValidationMode = errors.New("invalid validation mode")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputDir is returned when an OutputDir value is whitespace-only.
	ErrInvalidOutputDir = errors.New("invalid output dir")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ValidationMode selects the severity threshold for spec validation.
	// Defined locally to avoid coupling config to internal/validate;
	// the orchestrator casts to validate.Mode at the boundary.
	ValidationMode string

	// InvalidValidationModeError is returned when a ValidationMode value is not
	// recognized. It wraps ErrInvalidValidationMode for errors.Is() compatibility.
	InvalidValidationModeError struct {
		Value ValidationMode
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputDir represents the directory generated trees are written under.
	// The zero value ("") is valid and means "use the built-in default".
	// Non-zero values must not be whitespace-only.
	OutputDir string

	// InvalidOutputDirError is returned when an OutputDir value is non-empty
	// but whitespace-only. It wraps ErrInvalidOutputDir for errors.Is().
	InvalidOutputDirError struct {
		Value OutputDir
	}

	// UIConfig groups terminal presentation settings.
	UIConfig struct {
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
		Verbose     bool        `mapstructure:"verbose"`
	}

	// Config is the complete goobits tool configuration.
	Config struct {
		DefaultLanguages []string       `mapstructure:"default_languages"`
		OutputDir        OutputDir      `mapstructure:"output_dir"`
		ValidationMode   ValidationMode `mapstructure:"validation_mode"`
		ParallelRender   bool           `mapstructure:"parallel_render"`
		UI               UIConfig       `mapstructure:"ui"`
	}

	// InvalidConfigError is returned when a Config fails validation.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and
	// aggregates the individual field errors.
	InvalidConfigError struct {
		Errs []error
	}
)

// Error implements the error interface for InvalidValidationModeError.
func (e *InvalidValidationModeError) Error() string {
	return fmt.Sprintf("invalid validation mode %q (valid: strict, lenient, development, production)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidValidationModeError) Unwrap() error { return ErrInvalidValidationMode }

// IsValid returns whether the ValidationMode is one of the defined modes,
// and a list of validation errors if it is not.
// Note: the zero value ("") is valid — it means "use the built-in default".
func (m ValidationMode) IsValid() (bool, []error) {
	switch m {
	case ModeStrict, ModeLenient, ModeDevelopment, ModeProduction, "":
		return true, nil
	default:
		return false, []error{&InvalidValidationModeError{Value: m}}
	}
}

// String returns the string representation of the ValidationMode.
func (m ValidationMode) String() string { return string(m) }

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is one of the defined schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight, "":
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Error implements the error interface for InvalidOutputDirError.
func (e *InvalidOutputDirError) Error() string {
	return fmt.Sprintf("invalid output dir %q (must not be whitespace-only)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOutputDirError) Unwrap() error { return ErrInvalidOutputDir }

// IsValid returns whether the OutputDir is empty or a non-whitespace path,
// and a list of validation errors if it is not.
func (d OutputDir) IsValid() (bool, []error) {
	if d != "" && strings.TrimSpace(string(d)) == "" {
		return false, []error{&InvalidOutputDirError{Value: d}}
	}
	return true, nil
}

// String returns the string representation of the OutputDir.
func (d OutputDir) String() string { return string(d) }

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// IsValid returns whether every field of the Config is valid, and the
// accumulated field errors if any are not.
func (c *Config) IsValid() (bool, []error) {
	var errs []error
	if ok, fieldErrs := c.ValidationMode.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.OutputDir.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if ok, fieldErrs := c.UI.ColorScheme.IsValid(); !ok {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{Errs: errs}}
	}
	return true, nil
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DefaultLanguages: []string{"python"},
		OutputDir:        "generated",
		ValidationMode:   ModeStrict,
		ParallelRender:   true,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
