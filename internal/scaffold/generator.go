// Package scaffold generates the project tree: a Next.js frontend and a Go
// backend under one directory.
package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/simonhull/hatchling/fledge/filesystem"
	"github.com/simonhull/hatchling/fledge/generator"
	"github.com/simonhull/hatchling/fledge/gomod"
	"github.com/simonhull/hatchling/fledge/output"
	"github.com/simonhull/hatchling/internal/project"
	"github.com/simonhull/hatchling/internal/templates"
	"github.com/spf13/afero"
)

const (
	dirMode  = 0755
	fileMode = 0644
)

// File is one rendered file of a Plan.
type File struct {
	Path    string // slash-separated, relative to the project root
	Content []byte
}

// Plan is everything a run will write, computed without touching disk.
type Plan struct {
	Root  string
	Dirs  []string
	Files []File
}

// Result describes a finished (or failed) run.
type Result struct {
	Root     string
	Written  []string // relative paths of the files in the plan
	Messages []Message
}

// Generator writes project trees
type Generator struct {
	fs       afero.Fs
	progress io.Writer
	notify   func(Message)
	dryRun   bool
}

// Option configures a Generator
type Option func(*Generator)

// WithFs sets the filesystem to write to (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) { g.fs = fs }
}

// WithProgress sets where per-operation lines ("✓ Create ...") are written.
// They are discarded by default.
func WithProgress(w io.Writer) Option {
	return func(g *Generator) { g.progress = w }
}

// WithNotify sets a hook called with each status message as soon as it is
// produced, so messages and progress lines come out interleaved in order.
// The messages are still collected in the Result.
func WithNotify(fn func(Message)) Option {
	return func(g *Generator) { g.notify = fn }
}

// WithDryRun reports operations without performing them.
func WithDryRun(dryRun bool) Option {
	return func(g *Generator) { g.dryRun = dryRun }
}

// NewGenerator creates a new project generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		fs:       filesystem.OS(),
		progress: io.Discard,
		notify:   func(Message) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Plan validates cfg and renders every file. It performs no I/O.
func (g *Generator) Plan(cfg project.Config) (*Plan, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	plan := &Plan{
		Root: cfg.TargetDir,
		Dirs: Directories(cfg),
	}

	for _, name := range Files(cfg) {
		content, err := templates.Render(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", name, err)
		}
		plan.Files = append(plan.Files, File{Path: name, Content: content})
	}

	return plan, nil
}

// WriteTree writes the project for cfg. Directories are created before any
// file; existing files are overwritten. A failure stops the run and leaves
// whatever was already written in place. The returned Result is non-nil
// whenever cfg was valid, even on error, so its messages can be shown.
func (g *Generator) WriteTree(ctx context.Context, cfg project.Config) (*Result, error) {
	plan, err := g.Plan(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{Root: plan.Root}
	g.emit(result, info(fmt.Sprintf("Creating project at: %s", plan.Root)))

	output.Verbose(fmt.Sprintf("Planned %d directories and %d files", len(plan.Dirs), len(plan.Files)))

	if err := generator.Execute(ctx, g.operations(plan), generator.ExecuteOptions{
		DryRun: g.dryRun,
		Force:  true,
		Writer: g.progress,
	}); err != nil {
		return result, err
	}

	for _, f := range plan.Files {
		result.Written = append(result.Written, f.Path)
	}

	if cfg.Tailwind() {
		g.emit(result, note("Note: To install Tailwind CSS, run:"))
		g.emit(result, step("npm install -D tailwindcss postcss autoprefixer"))
	}

	if err := checkBackendModule(plan); err != nil {
		g.emit(result, note(fmt.Sprintf(
			"%q is not a valid Go module path; edit backend/go.mod before building (%v)",
			cfg.BackendModule(), err)))
	}

	if g.dryRun {
		g.emit(result, success(fmt.Sprintf("Dry run complete: %d files would be written", len(result.Written))))
		return result, nil
	}

	g.emit(result, info(fmt.Sprintf("Created %d files", len(result.Written))))
	g.emit(result, success("Project setup completed successfully!"))

	return result, nil
}

// emit records m on result and hands it to the notify hook.
func (g *Generator) emit(result *Result, m Message) {
	result.Messages = append(result.Messages, m)
	g.notify(m)
}

// checkBackendModule reports whether the rendered backend go.mod would be
// accepted by the go command. The name is interpolated unescaped, so names
// with spaces or other odd characters produce an unusable module line.
func checkBackendModule(plan *Plan) error {
	for _, f := range plan.Files {
		if f.Path == templates.BackendGoMod {
			return gomod.Check(f.Path, f.Content)
		}
	}
	return nil
}

// operations turns a plan into filesystem operations, directories first.
func (g *Generator) operations(plan *Plan) []generator.Operation {
	ops := make([]generator.Operation, 0, len(plan.Dirs)+len(plan.Files))

	for _, dir := range plan.Dirs {
		ops = append(ops, &generator.MkdirOp{
			Fs:   g.fs,
			Path: filepath.Join(plan.Root, filepath.FromSlash(dir)),
			Mode: dirMode,
		})
	}

	for _, f := range plan.Files {
		ops = append(ops, &generator.WriteFileOp{
			Fs:      g.fs,
			Path:    filepath.Join(plan.Root, filepath.FromSlash(f.Path)),
			Content: f.Content,
			Mode:    fileMode,
		})
	}

	return ops
}

// Summary returns the next-step instructions printed after a run.
func Summary(cfg project.Config) []Message {
	frontend := filepath.Join(cfg.Name, "frontend")
	backend := filepath.Join(cfg.Name, "backend")

	return []Message{
		info("Next Steps:"),
		step(fmt.Sprintf("1. Frontend: Navigate to %s, run 'npm install', then 'npm run dev'.", frontend)),
		step(fmt.Sprintf("2. Backend: Navigate to %s, run 'go mod tidy', then 'go run main.go'.", backend)),
	}
}
