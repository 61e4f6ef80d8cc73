// Package gomod reads go.mod files.
//
// Detect reads a go.mod from an afero.Fs; Parse and Check work on content
// that has not been written yet, such as a rendered template:
//
//	if err := gomod.Check("backend/go.mod", content); err != nil {
//	    output.Warn(err.Error())
//	}
package gomod
