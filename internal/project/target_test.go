package project

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX paths")
	}

	tests := []struct {
		name      string
		cwd       string
		directory string
		project   string
		want      string
	}{
		{"current directory", "/home/u", ".", "demo", "/home/u/demo"},
		{"parent directory", "/home/u/work", "..", "demo", "/home/u/demo"},
		{"parent of home", "/home/u", "..", "demo", "/home/demo"},
		{"empty directory", "/home/u", "", "demo", "/home/u/demo"},
		{"relative nested", "/home/u", "code/apps", "demo", "/home/u/code/apps/demo"},
		{"relative with dots", "/home/u", "./a/../b", "demo", "/home/u/b/demo"},
		{"absolute directory", "/home/u", "/srv/projects", "demo", "/srv/projects/demo"},
		{"trailing slash", "/home/u", "/srv/", "demo", "/srv/demo"},
		{"absolute name wins", "/home/u", "work", "/opt/demo", "/opt/demo"},
		{"name with subdir", "/home/u", ".", "acme/web", "/home/u/acme/web"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTarget(tt.cwd, tt.directory, tt.project)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveTarget_Errors(t *testing.T) {
	_, err := ResolveTarget("relative", ".", "demo")
	assert.Error(t, err)

	_, err = ResolveTarget(filepath.Join(string(filepath.Separator), "home"), ".", "")
	assert.ErrorIs(t, err, ErrEmptyName)
}
