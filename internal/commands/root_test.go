package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/hatchling"
	"github.com/simonhull/hatchling/fledge/filesystem"
	"github.com/simonhull/hatchling/fledge/input"
	"github.com/simonhull/hatchling/fledge/output"
	"github.com/simonhull/hatchling/internal/project"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cwd = "/home/u"

type harness struct {
	fs  afero.Fs
	out *bytes.Buffer
}

// execute runs the root command against an in-memory filesystem with stdin
// fed from the given lines. An empty config file keeps the user's
// hatchling.yml out of the test.
func execute(t *testing.T, stdin string, args ...string) (*harness, error) {
	t.Helper()

	cfgFile := filepath.Join(t.TempDir(), "hatchling.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("# hatchling test config\n"), 0644))
	return executeWithConfig(t, cfgFile, stdin, args...)
}

func executeWithConfig(t *testing.T, cfgFile, stdin string, args ...string) (*harness, error) {
	t.Helper()
	t.Cleanup(func() {
		output.SetWriter(nil)
		output.SetVerbose(false)
	})

	h := &harness{fs: afero.NewMemMapFs(), out: &bytes.Buffer{}}
	cmd := newRootCmd(env{
		fs:    h.fs,
		getwd: func() (string, error) { return cwd, nil },
	})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(h.out)
	cmd.SetErr(h.out)
	cmd.SetArgs(append([]string{"--config", cfgFile}, args...))

	return h, cmd.ExecuteContext(context.Background())
}

func (h *harness) files(t *testing.T, root string) []string {
	t.Helper()
	files, err := filesystem.Tree(h.fs, root)
	require.NoError(t, err)
	return files
}

func TestRoot_EndToEnd(t *testing.T) {
	// directory ".", name "shop", TypeScript, Tailwind
	h, err := execute(t, "\nshop\n2\ny\n")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"backend/README.md",
		"backend/go.mod",
		"backend/main.go",
		"frontend/README.md",
		"frontend/next-env.d.ts",
		"frontend/next.config.js",
		"frontend/package.json",
		"frontend/pages/index.tsx",
		"frontend/postcss.config.js",
		"frontend/styles/globals.css",
		"frontend/tailwind.config.js",
		"frontend/tsconfig.json",
	}, h.files(t, "/home/u/shop"))

	out := h.out.String()
	assert.Contains(t, out, "Welcome to hatchling")
	assert.Contains(t, out, "Creating project at: /home/u/shop")
	assert.Contains(t, out, "npm install -D tailwindcss postcss autoprefixer")
	assert.Contains(t, out, "Project setup completed successfully!")
	assert.Contains(t, out, "Next Steps:")
	assert.Contains(t, out, "Navigate to shop/backend")

	// progress lines are only shown in verbose or dry-run mode
	assert.NotContains(t, out, "✓ Create")
}

func TestRoot_DefaultsOnly(t *testing.T) {
	h, err := execute(t, "\nblog\n\n\n")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"backend/README.md",
		"backend/go.mod",
		"backend/main.go",
		"frontend/README.md",
		"frontend/next.config.js",
		"frontend/package.json",
		"frontend/pages/index.js",
	}, h.files(t, "/home/u/blog"))
	assert.NotContains(t, h.out.String(), "Tailwind")
}

func TestRoot_DirectoryAnswer(t *testing.T) {
	h, err := execute(t, "../projects\nshop\n1\nn\n")
	require.NoError(t, err)

	exists, err := afero.DirExists(h.fs, "/home/projects/shop/frontend/public")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRoot_EmptyNameIsReprompted(t *testing.T) {
	h, err := execute(t, "\n   \nshop\n\n\n")
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), project.ErrEmptyName.Error())
	assert.Contains(t, h.files(t, "/home/u/shop"), "backend/main.go")
}

func TestRoot_NoInput(t *testing.T) {
	h, err := execute(t, "")

	assert.ErrorIs(t, err, input.ErrNoInput)
	exists, _ := afero.Exists(h.fs, "/home/u")
	assert.False(t, exists)
}

func TestRoot_DryRun(t *testing.T) {
	h, err := execute(t, "\nshop\n\n\n", "--dry-run")
	require.NoError(t, err)

	exists, _ := afero.Exists(h.fs, "/home/u/shop")
	assert.False(t, exists)
	out := h.out.String()
	header := strings.Index(out, "Creating project at: /home/u/shop")
	firstOp := strings.Index(out, "✓ [DRY RUN] Create")
	done := strings.Index(out, "Dry run complete: 7 files would be written")

	require.NotEqual(t, -1, header)
	require.NotEqual(t, -1, firstOp)
	require.NotEqual(t, -1, done)
	assert.Less(t, header, firstOp, "header should precede the operation list")
	assert.Less(t, firstOp, done)
}

func TestRoot_Verbose(t *testing.T) {
	h, err := execute(t, "\nshop\n\n\n", "--verbose")
	require.NoError(t, err)

	out := h.out.String()
	assert.Contains(t, out, "✓ Create")
	assert.Contains(t, out, "Using defaults from")
	assert.Contains(t, out, "frontend/pages/index.js")
	assert.Contains(t, out, "Backend module: shop-backend (go 1.16)")
}

func TestRoot_ConfigDefaults(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "hatchling.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`defaults:
  directory: apps
  language: TypeScript
  tailwind: true
`), 0644))

	h, err := executeWithConfig(t, cfgFile, "\nshop\n\n\n")
	require.NoError(t, err)

	files := h.files(t, "/home/u/apps/shop")
	assert.Contains(t, files, "frontend/pages/index.tsx")
	assert.Contains(t, files, "frontend/tailwind.config.js")
}

func TestRoot_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "hatchling.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("defaults:\n  language: Rust\n"), 0644))

	_, err := executeWithConfig(t, cfgFile, "\nshop\n\n\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.language")
}

func TestRoot_RejectsArguments(t *testing.T) {
	_, err := execute(t, "", "myapp")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	h, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "hatchling "+hatchling.Version+"\n", h.out.String())
}
