// Package generator provides utilities for template-based file generation.
//
// # Features
//
//   - Cached template rendering from any fs.FS with configurable delimiters
//   - Filesystem operations (MkdirOp, WriteFileOp) over an afero.Fs
//   - Validate-then-execute runs with dry-run support
//
// # Operations
//
// Build a list of operations and hand it to Execute:
//
//	ops := []generator.Operation{
//	    &generator.MkdirOp{Fs: fs, Path: "app", Mode: 0755},
//	    &generator.WriteFileOp{Fs: fs, Path: "app/main.go", Content: src, Mode: 0644},
//	}
//
//	if err := generator.Execute(ctx, ops, generator.ExecuteOptions{Force: true}); err != nil {
//	    return err
//	}
//
// Every operation is validated before the first one runs. Execution stops at
// the first failure and nothing is rolled back: files written before the
// failure stay on disk.
package generator
