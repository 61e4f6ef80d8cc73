package scaffold

import (
	"github.com/simonhull/hatchling/internal/project"
	"github.com/simonhull/hatchling/internal/templates"
)

// Directories returns the directories of the tree, parents first, relative
// to the project root ("." is the root itself). styles/ is created even
// without Tailwind.
func Directories(cfg project.Config) []string {
	return []string{
		".",
		"frontend",
		"frontend/pages",
		"frontend/public",
		"frontend/styles",
		"backend",
	}
}

// Files returns the template names written for cfg, in write order.
//
// TypeScript adds tsconfig.json and next-env.d.ts and swaps the page to
// index.tsx. Tailwind adds globals.css, tailwind.config.js and
// postcss.config.js. The two switches are independent.
func Files(cfg project.Config) []string {
	files := []string{templates.FrontendPackageJSON}

	if cfg.TypeScript() {
		files = append(files, templates.FrontendTSConfig, templates.FrontendNextEnv)
	}
	files = append(files, pageTemplate(cfg.Language), templates.FrontendNextConfig)

	if cfg.Tailwind() {
		files = append(files,
			templates.FrontendGlobalsCSS,
			templates.FrontendTailwind,
			templates.FrontendPostCSS,
		)
	}

	return append(files,
		templates.FrontendReadme,
		templates.BackendGoMod,
		templates.BackendMain,
		templates.BackendReadme,
	)
}

func pageTemplate(lang project.Language) string {
	return "frontend/pages/" + lang.PageFile()
}
