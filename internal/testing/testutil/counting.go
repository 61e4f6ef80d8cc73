package testutil

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/spf13/afero"
)

// CountingFs wraps a filesystem and counts every call made through it.
type CountingFs struct {
	afero.Fs
	calls atomic.Int64
}

// NewCountingFs wraps fs, or a fresh in-memory filesystem when fs is nil
func NewCountingFs(fs afero.Fs) *CountingFs {
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	return &CountingFs{Fs: fs}
}

// Calls returns the number of calls made so far
func (c *CountingFs) Calls() int64 {
	return c.calls.Load()
}

func (c *CountingFs) Create(name string) (afero.File, error) {
	c.calls.Add(1)
	return c.Fs.Create(name)
}

func (c *CountingFs) Mkdir(name string, perm os.FileMode) error {
	c.calls.Add(1)
	return c.Fs.Mkdir(name, perm)
}

func (c *CountingFs) MkdirAll(path string, perm os.FileMode) error {
	c.calls.Add(1)
	return c.Fs.MkdirAll(path, perm)
}

func (c *CountingFs) Open(name string) (afero.File, error) {
	c.calls.Add(1)
	return c.Fs.Open(name)
}

func (c *CountingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	c.calls.Add(1)
	return c.Fs.OpenFile(name, flag, perm)
}

func (c *CountingFs) Remove(name string) error {
	c.calls.Add(1)
	return c.Fs.Remove(name)
}

func (c *CountingFs) RemoveAll(path string) error {
	c.calls.Add(1)
	return c.Fs.RemoveAll(path)
}

func (c *CountingFs) Rename(oldname, newname string) error {
	c.calls.Add(1)
	return c.Fs.Rename(oldname, newname)
}

func (c *CountingFs) Stat(name string) (os.FileInfo, error) {
	c.calls.Add(1)
	return c.Fs.Stat(name)
}

func (c *CountingFs) Chmod(name string, mode os.FileMode) error {
	c.calls.Add(1)
	return c.Fs.Chmod(name, mode)
}

func (c *CountingFs) Chown(name string, uid, gid int) error {
	c.calls.Add(1)
	return c.Fs.Chown(name, uid, gid)
}

func (c *CountingFs) Chtimes(name string, atime, mtime time.Time) error {
	c.calls.Add(1)
	return c.Fs.Chtimes(name, atime, mtime)
}
