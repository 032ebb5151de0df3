// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	SpecNotFoundId Id = iota + 1
	SpecParseErrorId
	ValidationFailedId
	HookCollisionId
	DuplicateCommandId
	UnknownLanguageId
	RenderFailedId
	ConfigLoadFailedId
	OutputWriteFailedId
	ValidatorCycleId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	specNotFoundIssue = &Issue{
		id: SpecNotFoundId,
		mdMsg: `
# No CLI spec found!

We searched for a spec file but couldn't find one in the expected locations.

## Search locations (in order of precedence):
1. The path given on the command line
2. cli.cue / cli.yaml / cli.yml in the current directory

## Things you can try:
- Scaffold a spec in your current directory:
~~~
$ goobits init
~~~

- Or point the build at an explicit file:
~~~
$ goobits build path/to/cli.cue
~~~`,
	}

	specParseErrorIssue = &Issue{
		id: SpecParseErrorId,
		mdMsg: `
# Failed to parse the CLI spec!

Your spec file contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE or YAML syntax (missing quotes, braces, indentation)
- Unknown field names
- Invalid values for known fields (e.g. a non-semver version)
- Missing required fields (package_name, command_name, version)

## Things you can try:
- Check the error message above for the specific line/column
- Run the validator alone for the full diagnostic list:
~~~
$ goobits validate cli.cue
~~~

## Example of a valid spec:
~~~cue
package_name: "greeter"
command_name: "greet"
version:      "1.0.0"
description:  "Says hello"

commands: {
	hello: {
		desc: "Greet someone"
		arguments: [{name: "name", required: true}]
	}
}
~~~`,
	}

	validationFailedIssue = &Issue{
		id: ValidationFailedId,
		mdMsg: `
# Spec validation failed!

The spec parsed, but one or more validators reported problems above the
current mode's severity threshold.

## Things you can try:
- Fix the diagnostics listed above; each carries a spec location
- Re-run in development mode to see hints as well:
~~~
$ goobits validate --mode development cli.cue
~~~

- If you are iterating and want warnings tolerated temporarily:
~~~
$ goobits build --mode lenient cli.cue
~~~`,
	}

	hookCollisionIssue = &Issue{
		id: HookCollisionId,
		mdMsg: `
# Hook name collision!

Two different command paths map to the same hook function name, so one
handler would silently shadow the other.

## Why this happens:
Hook names are derived by joining path segments with underscores, so
'config get' and a single command named 'config-get' both become
'on_config_get'.

## Things you can try:
- Rename one of the colliding commands
- Restructure one command under a different parent`,
	}

	duplicateCommandIssue = &Issue{
		id: DuplicateCommandId,
		mdMsg: `
# Duplicate command path!

Two sibling commands share the same name, so the command tree is ambiguous.

## Things you can try:
- Rename one of the duplicate commands
- If they were meant to be one command, merge their definitions`,
	}

	unknownLanguageIssue = &Issue{
		id: UnknownLanguageId,
		mdMsg: `
# Unknown target language!

A build requested a language no renderer is registered for.

## Supported targets:
- python
- nodejs
- typescript
- rust

## Things you can try:
- Check the --language flags for typos
- Check the default_languages list in your config file`,
	}

	renderFailedIssue = &Issue{
		id: RenderFailedId,
		mdMsg: `
# Rendering failed for a target language!

One language's generator reported an error. Other requested languages are
unaffected; their output was still written.

## Things you can try:
- Read the per-language error above for the failing component
- Re-run with verbose mode for the full error chain:
~~~
$ goobits --verbose build cli.cue
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The goobits config file exists but could not be read or validated.

## Config location:
- $XDG_CONFIG_HOME/goobits/config.cue (usually ~/.config/goobits/config.cue)

## Things you can try:
- Check the CUE syntax of the config file
- Remove the file to fall back to built-in defaults
- Check file permissions`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write generated output!

Rendering succeeded but the output files could not be written to disk.

## Common causes:
- The output directory is not writable
- A generated path collides with an existing directory

## Things you can try:
- Check permissions on the output directory
- Point the build somewhere writable:
~~~
$ goobits build --output ./generated cli.cue
~~~`,
	}

	validatorCycleIssue = &Issue{
		id: ValidatorCycleId,
		mdMsg: `
# Validator dependency cycle!

A custom validator declared a dependency chain that loops back on itself,
so no execution order exists.

## Things you can try:
- Review the depends_on declarations of your custom validators
- Break the cycle by removing or inverting one dependency`,
	}

	issues = map[Id]*Issue{
		specNotFoundIssue.Id():      specNotFoundIssue,
		specParseErrorIssue.Id():    specParseErrorIssue,
		validationFailedIssue.Id():  validationFailedIssue,
		hookCollisionIssue.Id():     hookCollisionIssue,
		duplicateCommandIssue.Id():  duplicateCommandIssue,
		unknownLanguageIssue.Id():   unknownLanguageIssue,
		renderFailedIssue.Id():      renderFailedIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
		outputWriteFailedIssue.Id(): outputWriteFailedIssue,
		validatorCycleIssue.Id():    validatorCycleIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
