package gomod

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
)

// ModuleInfo contains information from go.mod
type ModuleInfo struct {
	Path      string // Module path (e.g., "github.com/user/repo")
	GoVersion string // Go version requirement (e.g., "1.21")
}

// Parse parses go.mod content. file is only used in error messages.
func Parse(file string, data []byte) (*ModuleInfo, error) {
	modFile, err := modfile.Parse(file, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go.mod: %w", err)
	}
	if modFile.Module == nil {
		return nil, fmt.Errorf("%s: no module directive", file)
	}

	info := &ModuleInfo{Path: modFile.Module.Mod.Path}
	if modFile.Go != nil {
		info.GoVersion = modFile.Go.Version
	}

	return info, nil
}

// Detect reads go.mod from dir and returns module information.
// Returns an error if go.mod doesn't exist or is invalid.
func Detect(fsys afero.Fs, dir string) (*ModuleInfo, error) {
	modPath := filepath.Join(dir, "go.mod")
	data, err := afero.ReadFile(fsys, modPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("go.mod not found in %s", dir)
		}
		return nil, fmt.Errorf("failed to read go.mod: %w", err)
	}

	return Parse(modPath, data)
}

// Check parses go.mod content and verifies the module path is importable.
// `go build` rejects modules that fail either step.
func Check(file string, data []byte) error {
	info, err := Parse(file, data)
	if err != nil {
		return err
	}
	return module.CheckImportPath(info.Path)
}
