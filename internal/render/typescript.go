// SPDX-License-Identifier: MPL-2.0

package render

import (
	"goobits-cli/internal/ir"
	"goobits-cli/pkg/clispec"
)

// TypeScriptRenderer emits a commander-based CLI with a tsc build step. The
// generated program is the typed variant of the nodejs target: same command
// tree, same dispatch protocol, plus type annotations and a tsconfig.
type TypeScriptRenderer struct{}

// Language implements Renderer.
func (r *TypeScriptRenderer) Language() clispec.TargetLanguage { return clispec.LanguageTypeScript }

// OutputStructure implements Renderer.
func (r *TypeScriptRenderer) OutputStructure(_ *ir.IR) map[string]string {
	return map[string]string{
		componentCLI:       "src/cli.ts",
		componentManifest:  "package.json",
		componentTSConfig:  "tsconfig.json",
		componentInstaller: "setup.sh",
	}
}

// Render implements Renderer.
func (r *TypeScriptRenderer) Render(spec *ir.IR, component string) (string, error) {
	switch component {
	case componentCLI:
		return renderCommanderCLI(spec, "src/cli.ts", clispec.LanguageTypeScript), nil
	case componentManifest:
		return marshalNpmManifest(npmManifest{
			Name:        spec.Project.PackageName,
			Version:     spec.Project.Version,
			Description: spec.Project.Description,
			Type:        "module",
			Bin:         map[string]string{spec.Project.CommandName: "./dist/cli.js"},
			Dependencies: map[string]string{
				"commander": "^12.1.0",
			},
			DevDeps: map[string]string{
				"typescript": "^5.5.0",
			},
		})
	case componentTSConfig:
		return tsConfig, nil
	case componentInstaller:
		return installScript(spec, []string{
			"npm install",
			"npx tsc",
			"npm link",
		})
	default:
		return "", &MissingComponentError{Language: r.Language(), Component: component}
	}
}

// tsConfig is static: the generated program has no per-spec compiler needs.
const tsConfig = `{
  "compilerOptions": {
    "target": "ES2022",
    "module": "NodeNext",
    "moduleResolution": "NodeNext",
    "outDir": "dist",
    "rootDir": "src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true
  },
  "include": ["src"]
}
`
