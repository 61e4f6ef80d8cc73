// Package filesystem provides the filesystem collaborator used by generators
// and utilities for traversing the trees they produce.
//
// Every function takes an afero.Fs so the same code runs against the real
// disk and against an in-memory filesystem:
//
//	fsys := filesystem.OS()        // afero.NewOsFs()
//	fsys := filesystem.Memory()    // afero.NewMemMapFs()
//
// List the files of a generated project, skipping node_modules, .git and
// other dependency directories:
//
//	files, err := filesystem.Tree(fsys, "/home/u/shop")
//	// [backend/README.md backend/go.mod backend/main.go frontend/README.md ...]
//
// Custom walk with ignore patterns:
//
//	err := filesystem.Walk(fsys, ".", filesystem.WalkOptions{
//	    IgnoreDirs:     []string{".git", "tmp"},
//	    IgnorePatterns: []string{"*.tmp", "*.bak"},
//	}, func(path string, info os.FileInfo) error {
//	    return nil
//	})
package filesystem
