// Package templates renders the files of a generated project. Every render
// is a pure function of the project Config.
package templates

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/simonhull/hatchling/fledge/generator"
	"github.com/simonhull/hatchling/internal/project"
)

//go:embed files
var filesFS embed.FS

// Template names are the slash-separated output paths relative to the
// project root.
const (
	FrontendPackageJSON = "frontend/package.json"
	FrontendPageJS      = "frontend/pages/index.js"
	FrontendPageTSX     = "frontend/pages/index.tsx"
	FrontendNextConfig  = "frontend/next.config.js"
	FrontendReadme      = "frontend/README.md"
	FrontendTSConfig    = "frontend/tsconfig.json"
	FrontendNextEnv     = "frontend/next-env.d.ts"
	FrontendGlobalsCSS  = "frontend/styles/globals.css"
	FrontendTailwind    = "frontend/tailwind.config.js"
	FrontendPostCSS     = "frontend/postcss.config.js"
	BackendGoMod        = "backend/go.mod"
	BackendMain         = "backend/main.go"
	BackendReadme       = "backend/README.md"
)

// sources maps text templates to their embedded files. The JSX page uses
// "{{" itself, so templates are parsed with [[ ]] delimiters.
var sources = map[string]string{
	FrontendPageJS:     "files/frontend/pages/index.tmpl",
	FrontendPageTSX:    "files/frontend/pages/index.tmpl",
	FrontendNextConfig: "files/frontend/next.config.js.tmpl",
	FrontendReadme:     "files/frontend/README.md.tmpl",
	FrontendNextEnv:    "files/frontend/next-env.d.ts.tmpl",
	FrontendGlobalsCSS: "files/frontend/styles/globals.css.tmpl",
	FrontendTailwind:   "files/frontend/tailwind.config.js.tmpl",
	FrontendPostCSS:    "files/frontend/postcss.config.js.tmpl",
	BackendGoMod:       "files/backend/go.mod.tmpl",
	BackendMain:        "files/backend/main.go.tmpl",
	BackendReadme:      "files/backend/README.md.tmpl",
}

// manifests are rendered by encoding a value rather than from text.
var manifests = map[string]func(project.Config) any{
	FrontendPackageJSON: packageManifest,
	FrontendTSConfig:    func(project.Config) any { return tsconfigManifest() },
}

var renderer = generator.NewRenderer(generator.WithDelims("[[", "]]"))

// Data is what the text templates see.
type Data struct {
	Name          string
	BackendModule string
	Language      string
	TypeScript    bool
	Tailwind      bool
	FrontendPath  string // <name>/frontend, as shown in instructions
	BackendPath   string // <name>/backend
}

// NewData derives the template data from cfg.
func NewData(cfg project.Config) Data {
	return Data{
		Name:          cfg.Name,
		BackendModule: cfg.BackendModule(),
		Language:      cfg.Language.String(),
		TypeScript:    cfg.TypeScript(),
		Tailwind:      cfg.Tailwind(),
		FrontendPath:  filepath.Join(cfg.Name, "frontend"),
		BackendPath:   filepath.Join(cfg.Name, "backend"),
	}
}

// Render produces the contents of the named file for cfg. The project name
// is substituted as is; nothing is escaped except inside JSON strings.
func Render(name string, cfg project.Config) ([]byte, error) {
	if build, ok := manifests[name]; ok {
		content, err := encodeJSON(build(cfg))
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		return content, nil
	}

	src, ok := sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", name)
	}

	return renderer.RenderFS(filesFS, src, NewData(cfg))
}

// Names lists every known template name, sorted.
func Names() []string {
	names := make([]string, 0, len(sources)+len(manifests))
	for name := range sources {
		names = append(names, name)
	}
	for name := range manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// encodeJSON writes v with two-space indentation. HTML characters are kept
// as typed so a name like "R&D" is not turned into "R\u0026D".
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
