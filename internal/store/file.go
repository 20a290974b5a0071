package store

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// File modes for written outputs.
const (
	ModePrivate os.FileMode = 0o600
	ModePublic  os.FileMode = 0o644
)

// ReadFile reads the file at path; a missing file yields nil, nil.
func ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return b, nil
}

// WriteFile writes b via a temp file, then atomically replaces the target.
func WriteFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	f, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", path)
	}
	tmp := f.Name()

	// Best-effort cleanup if anything fails before rename.
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "writing %s", tmp)
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "chmod %s", tmp)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", tmp)
	}

	return errors.Wrapf(os.Rename(tmp, path), "replacing %s", path)
}
