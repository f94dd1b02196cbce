package yamlstore

import (
	"io/fs"
	"os"
	"path/filepath"

	"fileauth/internal/errors"
)

const (
	newFileMode = 0o600
	newDirMode  = 0o755
	tempPattern = ".users_*.tmp"
)

// renameFunc swaps the temp file into place.
type renameFunc func(oldpath, newpath string) error

// writeAtomic replaces path with data. The data is written to a temp file in
// the same directory, synced, given the existing file's mode (0600 for a new
// file) and renamed over path. On any failure the temp file is removed and
// path is left as it was.
func writeAtomic(path string, data []byte, rename renameFunc) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, newDirMode); err != nil {
		return errors.Wrap(err, "create users file directory")
	}

	mode := fs.FileMode(newFileMode)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return errors.Wrap(statErr, "stat users file")
	}

	tmp, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmpPath)
	}()

	if _, err = tmp.Write(data); err != nil {
		return errors.Wrap(err, "write temp file")
	}
	if err = tmp.Sync(); err != nil {
		return errors.Wrap(err, "sync temp file")
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp file")
	}
	if err = os.Chmod(tmpPath, mode); err != nil {
		return errors.Wrap(err, "chmod temp file")
	}
	if err = rename(tmpPath, path); err != nil {
		return errors.Wrap(err, "rename temp file")
	}

	return nil
}
