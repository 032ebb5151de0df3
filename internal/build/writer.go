// SPDX-License-Identifier: MPL-2.0

package build

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"goobits-cli/internal/issue"
	"goobits-cli/internal/render"
)

// WriteOutput writes every successful language's rendered files under
// outputDir/<language>/. Failed languages are skipped; a write error aborts
// (the filesystem is already inconsistent, so pressing on helps nobody).
// It returns the paths written, relative to outputDir, in sorted order.
func WriteOutput(result *Result, outputDir string) ([]string, error) {
	var written []string

	for _, lr := range result.Languages {
		if lr.Err != nil {
			continue
		}
		root := filepath.Join(outputDir, string(lr.Language))
		for _, file := range sortedFiles(lr.Output) {
			target := filepath.Join(root, filepath.FromSlash(file.Path))
			if err := writeFile(target, file); err != nil {
				return written, issue.NewErrorContext().
					AtStage(issue.StageWrite).
					WithOperation("write generated output").
					WithResource(target).
					WithLanguage(string(lr.Language)).
					WithSuggestion("Check permissions on the output directory").
					WithSuggestion("Pass --output to write somewhere else").
					Wrap(err).
					BuildError()
			}
			rel, err := filepath.Rel(outputDir, target)
			if err != nil {
				rel = target
			}
			written = append(written, rel)
		}
	}

	sort.Strings(written)
	return written, nil
}

// sortedFiles flattens an Output map into deterministic path order.
func sortedFiles(out render.Output) []render.File {
	files := make([]render.File, 0, len(out))
	for _, f := range out {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files
}

func writeFile(target string, file render.File) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	perm := os.FileMode(0o644)
	if strings.HasSuffix(file.Path, ".sh") {
		perm = 0o755
	}
	if err := os.WriteFile(target, []byte(file.Content), perm); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
