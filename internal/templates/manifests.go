package templates

import "github.com/simonhull/hatchling/internal/project"

// Field order of these structs is the key order of the written JSON.

type packageJSON struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Private      bool              `json:"private"`
	Scripts      packageScripts    `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
}

type packageScripts struct {
	Dev   string `json:"dev"`
	Build string `json:"build"`
	Start string `json:"start"`
}

func packageManifest(cfg project.Config) any {
	return packageJSON{
		Name:    cfg.Name + "-frontend",
		Version: "0.1.0",
		Private: true,
		Scripts: packageScripts{
			Dev:   "next dev",
			Build: "next build",
			Start: "next start",
		},
		Dependencies: map[string]string{
			"next":      "latest",
			"react":     "latest",
			"react-dom": "latest",
		},
	}
}

type tsconfigJSON struct {
	CompilerOptions tsCompilerOptions `json:"compilerOptions"`
	Include         []string          `json:"include"`
	Exclude         []string          `json:"exclude"`
}

type tsCompilerOptions struct {
	Target                           string   `json:"target"`
	Lib                              []string `json:"lib"`
	AllowJS                          bool     `json:"allowJs"`
	SkipLibCheck                     bool     `json:"skipLibCheck"`
	Strict                           bool     `json:"strict"`
	ForceConsistentCasingInFileNames bool     `json:"forceConsistentCasingInFileNames"`
	NoEmit                           bool     `json:"noEmit"`
	ESModuleInterop                  bool     `json:"esModuleInterop"`
	Module                           string   `json:"module"`
	ModuleResolution                 string   `json:"moduleResolution"`
	ResolveJSONModule                bool     `json:"resolveJsonModule"`
	IsolatedModules                  bool     `json:"isolatedModules"`
	JSX                              string   `json:"jsx"`
}

func tsconfigManifest() any {
	return tsconfigJSON{
		CompilerOptions: tsCompilerOptions{
			Target:                           "es5",
			Lib:                              []string{"dom", "dom.iterable", "esnext"},
			AllowJS:                          true,
			SkipLibCheck:                     true,
			Strict:                           true,
			ForceConsistentCasingInFileNames: true,
			NoEmit:                           true,
			ESModuleInterop:                  true,
			Module:                           "esnext",
			ModuleResolution:                 "node",
			ResolveJSONModule:                true,
			IsolatedModules:                  true,
			JSX:                              "preserve",
		},
		Include: []string{"next-env.d.ts", "**/*.ts", "**/*.tsx"},
		Exclude: []string{"node_modules"},
	}
}
