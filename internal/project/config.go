package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrEmptyName is returned when a project name is empty or only whitespace.
var ErrEmptyName = errors.New("project name cannot be empty")

// Language is the frontend language variant.
type Language int

const (
	JavaScript Language = iota
	TypeScript
)

// Languages lists every variant in prompt order.
var Languages = []Language{JavaScript, TypeScript}

// String returns the display name ("JavaScript", "TypeScript").
func (l Language) String() string {
	switch l {
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// PageFile is the name of the generated index page.
func (l Language) PageFile() string {
	if l == TypeScript {
		return "index.tsx"
	}
	return "index.js"
}

// Valid reports whether l is a known variant.
func (l Language) Valid() bool {
	return l == JavaScript || l == TypeScript
}

// ParseLanguage resolves a variant by display name, case-insensitively.
func ParseLanguage(s string) (Language, error) {
	for _, l := range Languages {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown language variant %q (want JavaScript or TypeScript)", s)
}

// Styling is the CSS setup of the frontend.
type Styling int

const (
	StylePlain Styling = iota
	StyleTailwind
)

// String returns "plain" or "tailwind".
func (s Styling) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleTailwind:
		return "tailwind"
	default:
		return fmt.Sprintf("Styling(%d)", int(s))
	}
}

// Valid reports whether s is a known variant.
func (s Styling) Valid() bool {
	return s == StylePlain || s == StyleTailwind
}

// StylingFor maps the yes/no Tailwind answer onto a Styling.
func StylingFor(useTailwind bool) Styling {
	if useTailwind {
		return StyleTailwind
	}
	return StylePlain
}

// Config is the set of answers a generation run works from.
// It is built once and not modified afterwards.
type Config struct {
	TargetDir string // absolute path of the project root
	Name      string
	Language  Language
	Styling   Styling
}

// New builds a Config and validates it.
func New(targetDir, name string, lang Language, styling Styling) (Config, error) {
	cfg := Config{
		TargetDir: filepath.Clean(targetDir),
		Name:      strings.TrimSpace(name),
		Language:  lang,
		Styling:   styling,
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the invariants generation relies on. It performs no I/O.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if c.TargetDir == "" || !filepath.IsAbs(c.TargetDir) {
		return fmt.Errorf("target directory %q is not absolute", c.TargetDir)
	}
	if !c.Language.Valid() {
		return fmt.Errorf("unknown language variant: %s", c.Language)
	}
	if !c.Styling.Valid() {
		return fmt.Errorf("unknown styling variant: %s", c.Styling)
	}
	return nil
}

// TypeScript reports whether the frontend uses TypeScript.
func (c Config) TypeScript() bool {
	return c.Language == TypeScript
}

// Tailwind reports whether Tailwind CSS is set up.
func (c Config) Tailwind() bool {
	return c.Styling == StyleTailwind
}

// FrontendDir is TargetDir/frontend.
func (c Config) FrontendDir() string {
	return filepath.Join(c.TargetDir, "frontend")
}

// BackendDir is TargetDir/backend.
func (c Config) BackendDir() string {
	return filepath.Join(c.TargetDir, "backend")
}

// BackendModule is the module path written to backend/go.mod.
func (c Config) BackendModule() string {
	return c.Name + "-backend"
}
