package filesystem

import (
	"github.com/spf13/afero"
)

// OS returns the filesystem backed by the real disk.
func OS() afero.Fs {
	return afero.NewOsFs()
}

// Memory returns an empty in-memory filesystem, used for dry runs and tests.
func Memory() afero.Fs {
	return afero.NewMemMapFs()
}
