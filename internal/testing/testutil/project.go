package testutil

import (
	"path/filepath"
	"testing"

	"github.com/simonhull/hatchling/fledge/filesystem"
	"github.com/simonhull/hatchling/internal/project"
	"github.com/spf13/afero"
)

// TestProject is a generated project under test
type TestProject struct {
	Fs   afero.Fs
	Root string
	t    *testing.T
}

// NewTestProject creates an in-memory project rooted at /work/<name>
func NewTestProject(t *testing.T, name string) *TestProject {
	t.Helper()

	return &TestProject{
		Fs:   filesystem.Memory(),
		Root: filepath.Join(string(filepath.Separator), "work", name),
		t:    t,
	}
}

// NewDiskProject creates a project rooted in a temporary directory on disk
func NewDiskProject(t *testing.T, name string) *TestProject {
	t.Helper()

	return &TestProject{
		Fs:   filesystem.OS(),
		Root: filepath.Join(t.TempDir(), name),
		t:    t,
	}
}

// Config builds a valid Config for this project
func (p *TestProject) Config(lang project.Language, styling project.Styling) project.Config {
	p.t.Helper()

	cfg, err := project.New(p.Root, filepath.Base(p.Root), lang, styling)
	if err != nil {
		p.t.Fatalf("invalid test config: %v", err)
	}
	return cfg
}

// Files lists every file in the project, sorted and slash-separated
func (p *TestProject) Files() []string {
	p.t.Helper()

	files, err := filesystem.Tree(p.Fs, p.Root)
	if err != nil {
		p.t.Fatalf("listing %s: %v", p.Root, err)
	}
	return files
}

// FileExists checks if a file exists in the project
func (p *TestProject) FileExists(path string) bool {
	p.t.Helper()

	exists, err := afero.Exists(p.Fs, filepath.Join(p.Root, filepath.FromSlash(path)))
	return err == nil && exists
}

// DirExists checks if a directory exists in the project
func (p *TestProject) DirExists(path string) bool {
	p.t.Helper()

	isDir, err := afero.IsDir(p.Fs, filepath.Join(p.Root, filepath.FromSlash(path)))
	return err == nil && isDir
}

// ReadFile reads a file from the project
func (p *TestProject) ReadFile(path string) string {
	p.t.Helper()

	content, err := afero.ReadFile(p.Fs, filepath.Join(p.Root, filepath.FromSlash(path)))
	if err != nil {
		p.t.Fatalf("reading %s: %v", path, err)
	}
	return string(content)
}

// WriteFile writes a file into the project, creating parent directories
func (p *TestProject) WriteFile(path, content string) {
	p.t.Helper()

	full := filepath.Join(p.Root, filepath.FromSlash(path))
	if err := p.Fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
		p.t.Fatalf("creating %s: %v", filepath.Dir(full), err)
	}
	if err := afero.WriteFile(p.Fs, full, []byte(content), 0644); err != nil {
		p.t.Fatalf("writing %s: %v", path, err)
	}
}
