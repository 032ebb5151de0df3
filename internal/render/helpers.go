// SPDX-License-Identifier: MPL-2.0

package render

import (
	"fmt"
	"strings"

	"goobits-cli/pkg/clispec"
)

// escapeString escapes s for inclusion inside a double-quoted string literal
// of the target language. The four targets share the core rules; JS adds
// single quotes and backticks because generated code may interpolate.
func escapeString(s string, language clispec.TargetLanguage) string {
	if s == "" {
		return s
	}
	out := strings.ReplaceAll(s, `\`, `\\`)
	out = strings.ReplaceAll(out, `"`, `\"`)
	out = strings.ReplaceAll(out, "\n", `\n`)
	if language == clispec.LanguageNodeJS || language == clispec.LanguageTypeScript {
		out = strings.ReplaceAll(out, "'", `\'`)
		out = strings.ReplaceAll(out, "`", "\\`")
	}
	return out
}

// snakeCase converts a hyphenated CLI name to a snake_case identifier.
func snakeCase(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, "-", "_"))
}

// camelCase converts a hyphenated or underscored CLI name to camelCase,
// the convention for generated JS/TS identifiers.
func camelCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
	if len(parts) == 0 {
		return name
	}
	var sb strings.Builder
	sb.WriteString(strings.ToLower(parts[0]))
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(p[:1]))
		sb.WriteString(strings.ToLower(p[1:]))
	}
	return sb.String()
}

// pascalCase converts a hyphenated or underscored CLI name to PascalCase.
func pascalCase(name string) string {
	c := camelCase(name)
	if c == "" {
		return c
	}
	return strings.ToUpper(c[:1]) + c[1:]
}

// indentBlock indents every non-empty line of text by level copies of unit.
func indentBlock(text string, level int, unit string) string {
	prefix := strings.Repeat(unit, level)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// pythonLiteral formats a default value as Python source.
func pythonLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return fmt.Sprintf("%q", x)
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// jsLiteral formats a default value as JavaScript/TypeScript source.
func jsLiteral(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case bool:
		return fmt.Sprintf("%t", x)
	case string:
		return fmt.Sprintf("%q", x)
	case float64:
		return fmt.Sprintf("%g", x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// rustLiteral formats a default value as a Rust string literal; clap's
// builder API takes defaults as strings regardless of the value parser.
func rustLiteral(v any) string {
	return fmt.Sprintf("%q", fmt.Sprint(v))
}
