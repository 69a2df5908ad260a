// Package fileutil provides helpers for file system access.
package fileutil

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Vfs is the file system used by this package; tests may replace it with
// an in-memory implementation.
var Vfs = afero.NewOsFs()

// FolderExists ensures that folder exists
func FolderExists(dir string) error {
	if dir == "" {
		return errors.New("invalid parameter: dir")
	}
	stat, err := Vfs.Stat(dir)
	if err != nil {
		return errors.WithStack(err)
	}
	if !stat.IsDir() {
		return errors.Errorf("not a folder: %q", dir)
	}
	return nil
}
