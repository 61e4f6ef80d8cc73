package generator

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Operation represents a file system operation that can be validated and executed.
//
// Validate checks if the operation would succeed without executing it.
// force=true skips conflict checks (e.g., file already exists).
//
// Execute performs the actual operation. This should only be called after Validate succeeds.
//
// Description returns a human-readable description for output (e.g., "Create frontend/package.json (234 bytes)").
type Operation interface {
	Validate(ctx context.Context, force bool) error
	Execute(ctx context.Context) error
	Description() string
}

// MkdirOp creates a directory and any missing parents.
// An existing directory is not an error.
type MkdirOp struct {
	Fs   afero.Fs    // Target filesystem (defaults to the OS filesystem)
	Path string      // Directory path to create
	Mode fs.FileMode // Directory permissions (e.g., 0755)
}

func (op *MkdirOp) Validate(ctx context.Context, force bool) error {
	if op.Path == "" {
		return fmt.Errorf("directory path is empty")
	}
	return nil
}

func (op *MkdirOp) Execute(ctx context.Context) error {
	if err := fsOrDefault(op.Fs).MkdirAll(op.Path, op.Mode); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", op.Path, err)
	}
	return nil
}

func (op *MkdirOp) Description() string {
	return fmt.Sprintf("Create %s/", op.Path)
}

// WriteFileOp creates a file with content, or replaces an existing one.
//
// Validation behavior:
//   - Checks for file conflicts unless force=true
//   - Allows empty content (zero bytes) but rejects nil content
//
// Execution behavior:
//   - Writes the file with the specified Mode, truncating any existing file.
//     The parent directory must already exist; schedule a MkdirOp first.
type WriteFileOp struct {
	Fs      afero.Fs    // Target filesystem (defaults to the OS filesystem)
	Path    string      // File path to create
	Content []byte      // File content (can be empty, must not be nil)
	Mode    fs.FileMode // File permissions (e.g., 0644)
}

func (op *WriteFileOp) Validate(ctx context.Context, force bool) error {
	// Reject nil content (empty is OK)
	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	if !force {
		exists, err := afero.Exists(fsOrDefault(op.Fs), op.Path)
		if err != nil {
			return fmt.Errorf("cannot stat %s: %w", op.Path, err)
		}
		if exists {
			return fmt.Errorf("file already exists: %s", op.Path)
		}
	}

	return nil
}

func (op *WriteFileOp) Execute(ctx context.Context) error {
	if err := afero.WriteFile(fsOrDefault(op.Fs), op.Path, op.Content, op.Mode); err != nil {
		return fmt.Errorf("cannot write %s: %w", op.Path, err)
	}
	return nil
}

func (op *WriteFileOp) Description() string {
	return fmt.Sprintf("Create %s (%d bytes)", op.Path, len(op.Content))
}

func fsOrDefault(fsys afero.Fs) afero.Fs {
	if fsys == nil {
		return afero.NewOsFs()
	}
	return fsys
}
