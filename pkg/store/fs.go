package store

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
)

func newFs(path string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if path == "" {
		return fs, nil
	}
	if exists, err := afero.DirExists(fs, path); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.New("dir not exists")
	}
	return afero.NewBasePathFs(fs, path), nil
}

// tmpName is a hidden sibling of path, so the final rename stays on the
// same file system.
func tmpName(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+xid.New().String()+".tmp")
}
