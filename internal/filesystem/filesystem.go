// Package filesystem implements the file primitives the store is built on:
// creating directories, reading files, replacing files atomically and
// advisory locking of directories.
package filesystem

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"
)

const (
	// DirPerm is the mode new directories are created with.
	DirPerm os.FileMode = 0o755

	// FilePerm is the mode new files are created with, existing files keep
	// their mode when they are replaced.
	FilePerm os.FileMode = 0o644
)

type osProvider interface {
	CreateTemp(dir, pattern string) (*os.File, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (*os.File, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Flock(fd int, how int) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}

// MkdirAll creates the directory dir along with all missing parents. It is
// not an error if dir already exists.
func (f *Handler) MkdirAll(dir string) error {
	if err := f.osHandler.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("(fs-mkdir) %w", err)
	}

	return nil
}

// ReadFile returns the contents of the file at path. A missing file yields
// an error matching [fs.ErrNotExist].
func (f *Handler) ReadFile(path string) ([]byte, error) {
	data, err := f.osHandler.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-readfile) %w", err)
	}

	return data, nil
}

// WriteFile replaces the file at path with data. The data is written to a
// hidden temporary file in the same directory, synced, verified against its
// checksum and then renamed over path. On any failure the temporary file is
// removed and the file at path is left as it was.
func (f *Handler) WriteFile(path string, data []byte) error {
	var committed bool

	perm := FilePerm
	if info, err := f.osHandler.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("(fs-writefile) failed to stat dst: %w", err)
	}

	tmpFile, err := f.osHandler.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("(fs-writefile) failed to create tmp: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if !committed {
			tmpFile.Close()             //nolint:errcheck
			f.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	hasher := blake3.New()
	multiWriter := io.MultiWriter(tmpFile, hasher)

	if _, err := io.Copy(multiWriter, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("(fs-writefile) failed to write tmp: %w", err)
	}

	if err := tmpFile.Chmod(perm); err != nil {
		return fmt.Errorf("(fs-writefile) failed to chmod tmp: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("(fs-writefile) failed to sync tmp: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("(fs-writefile) failed to close tmp: %w", err)
	}

	srcChecksum := hex.EncodeToString(hasher.Sum(nil))

	dstChecksum, err := f.checksum(tmpPath)
	if err != nil {
		return fmt.Errorf("(fs-writefile) failed to checksum tmp: %w", err)
	}

	if srcChecksum != dstChecksum {
		return fmt.Errorf("(fs-writefile) %w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if err := f.osHandler.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("(fs-writefile) failed to rename tmp to dst: %w", err)
	}

	committed = true

	slog.Debug("Wrote file:",
		"path", path,
		"size", humanize.Bytes(uint64(len(data))),
		"blake3", srcChecksum,
	)

	return nil
}

func (f *Handler) checksum(path string) (string, error) {
	file, err := f.osHandler.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
