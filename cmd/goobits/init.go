// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"goobits-cli/pkg/clispec"

	"github.com/spf13/cobra"
)

var (
	initForce bool
	initName  string

	// initCmd scaffolds a starter spec file.
	initCmd = &cobra.Command{
		Use:   "init [spec-file]",
		Short: "Create a starter spec in the current directory",
		Long: `Create a starter spec file with an example command tree.

The generated spec parses and validates as-is, so 'goobits build' works
immediately; edit the commands to describe your own CLI.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing spec file")
	initCmd.Flags().StringVarP(&initName, "name", "n", "mycli", "command name for the scaffold")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := "cli.cue"
	if len(args) > 0 {
		filename = args[0]
	}

	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	content := clispec.GenerateCUE(scaffoldSpec(initName))

	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the spec to describe your commands")
	fmt.Println("  2. Check it with 'goobits validate " + filename + "'")
	fmt.Println("  3. Generate with 'goobits build " + filename + "'")
	return nil
}

// scaffoldSpec builds the example spec the init command writes: one plain
// command plus a small group, enough to show arguments, options, and nesting.
func scaffoldSpec(name string) *clispec.CLISpec {
	return &clispec.CLISpec{
		PackageName: name,
		CommandName: name,
		Version:     "0.1.0",
		Description: "A CLI generated by goobits",
		GlobalOptions: []clispec.OptionSpec{
			{Name: "verbose", Short: "v", Flag: true, Help: "Enable verbose output"},
		},
		Commands: []clispec.CommandSpec{
			{
				Name:        "hello",
				Description: "Greet someone",
				Arguments: []clispec.ArgumentSpec{
					{Name: "name", Required: true, Help: "Who to greet"},
				},
				Options: []clispec.OptionSpec{
					{Name: "shout", Flag: true, Help: "Greet loudly"},
				},
			},
			{
				Name:        "config",
				Description: "Manage configuration",
				Subcommands: []clispec.CommandSpec{
					{
						Name:        "get",
						Description: "Read a configuration value",
						Arguments: []clispec.ArgumentSpec{
							{Name: "key", Required: true},
						},
					},
					{
						Name:        "set",
						Description: "Write a configuration value",
						Arguments: []clispec.ArgumentSpec{
							{Name: "key", Required: true},
							{Name: "value", Required: true},
						},
					},
				},
			},
		},
	}
}
