package filesystem

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// Lock is an exclusive advisory lock held on a directory. It only excludes
// other processes that take the same lock, plain readers and writers are not
// affected.
type Lock struct {
	dir         string
	file        *os.File
	unixHandler unixProvider
}

// Lock blocks until it holds an exclusive advisory lock on the directory dir.
func (f *Handler) Lock(dir string) (*Lock, error) {
	file, err := f.osHandler.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("(fs-lock) failed to open: %w", err)
	}

	if err := f.unixHandler.Flock(int(file.Fd()), unix.LOCK_EX); err != nil {
		file.Close() //nolint:errcheck

		return nil, fmt.Errorf("(fs-lock) failed to flock: %w", err)
	}

	slog.Debug("Locked directory:", "path", dir)

	return &Lock{
		dir:         dir,
		file:        file,
		unixHandler: f.unixHandler,
	}, nil
}

// Unlock releases the lock. The lock must not be used afterwards.
func (l *Lock) Unlock() error {
	if l.file == nil {
		return fmt.Errorf("(fs-unlock) %w: %s", ErrNotLocked, l.dir)
	}

	defer func() {
		l.file.Close() //nolint:errcheck
		l.file = nil
	}()

	if err := l.unixHandler.Flock(int(l.file.Fd()), unix.LOCK_UN); err != nil {
		return fmt.Errorf("(fs-unlock) failed to unflock: %w", err)
	}

	slog.Debug("Unlocked directory:", "path", l.dir)

	return nil
}
