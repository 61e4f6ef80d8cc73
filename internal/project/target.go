package project

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ResolveTarget joins the working directory, the user supplied directory and
// the project name the way a shell would resolve them: segments are applied
// left to right and an absolute segment replaces everything before it.
// Nothing is checked on disk.
//
//	ResolveTarget("/home/u", ".", "demo")      // /home/u/demo
//	ResolveTarget("/home/u/work", "..", "demo") // /home/u/demo
//	ResolveTarget("/home/u", "/srv", "demo")   // /srv/demo
func ResolveTarget(cwd, directory, name string) (string, error) {
	if !filepath.IsAbs(cwd) {
		return "", fmt.Errorf("working directory %q is not absolute", cwd)
	}
	if strings.TrimSpace(name) == "" {
		return "", ErrEmptyName
	}

	resolved := cwd
	for _, segment := range []string{directory, name} {
		if segment == "" {
			continue
		}
		if filepath.IsAbs(segment) {
			resolved = segment
			continue
		}
		resolved = filepath.Join(resolved, segment)
	}

	return filepath.Clean(resolved), nil
}
