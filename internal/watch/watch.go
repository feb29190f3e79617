// Package watch re-reads a store path whenever one of its backing files
// changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/desertwitch/nest/internal/pathing"
	"github.com/desertwitch/nest/internal/value"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last file event before the
// path is read again.
const DefaultDebounce = 100 * time.Millisecond

type storeProvider interface {
	Directories(p pathing.Path) ([]string, error)
	Files(p pathing.Path) ([]string, error)
	Get(p pathing.Path) (value.Value, error)
}

type statProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Option configures a [Watcher].
type Option func(*Watcher)

// WithDebounce sets the quiet period, see [DefaultDebounce].
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// Watcher emits the value of a store path each time it changes.
type Watcher struct {
	store    storeProvider
	osOps    statProvider
	path     pathing.Path
	debounce time.Duration

	files   map[string]struct{}
	dirs    []string
	watched map[string]struct{}
}

// New returns a pointer to a new [Watcher] for the value at p.
func New(store storeProvider, osOps statProvider, p pathing.Path, opts ...Option) *Watcher {
	w := &Watcher{
		store:    store,
		osOps:    osOps,
		path:     p,
		debounce: DefaultDebounce,
		files:    make(map[string]struct{}),
		watched:  make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Run calls fn with the current value, and again whenever the backing files
// changed and the value read afterwards differs from the last one passed to
// fn. Failed reads are logged and skipped. Run blocks until ctx is done or fn
// returns an error, which Run then returns.
func (w *Watcher) Run(ctx context.Context, fn func(value.Value) error) error {
	files, err := w.store.Files(w.path)
	if err != nil {
		return fmt.Errorf("(watch-run) %w", err)
	}
	for _, file := range files {
		w.files[filepath.Clean(file)] = struct{}{}
	}

	w.dirs, err = w.store.Directories(w.path)
	if err != nil {
		return fmt.Errorf("(watch-run) %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("(watch-run) failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.sync(fsw); err != nil {
		return err
	}

	var last *[32]byte

	emit := func() error {
		v, err := w.store.Get(w.path)
		if err != nil {
			slog.Warn("Failed to read watched path:",
				"path", w.path.String(),
				"err", err,
			)

			return nil
		}

		sum := v.Sum()
		if last != nil && *last == sum {
			return nil
		}
		last = &sum

		return fn(v)
	}

	if err := emit(); err != nil {
		return err
	}

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.handleEvent(fsw, event) {
				pending = time.After(w.debounce)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("File watcher error:", "err", err)

		case <-pending:
			pending = nil
			if err := emit(); err != nil {
				return err
			}
		}
	}
}

// handleEvent reports whether event can have changed the watched value.
func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)

	if strings.HasPrefix(filepath.Base(name), ".") {
		return false
	}

	if _, ok := w.files[name]; ok {
		slog.Debug("Watched file changed:", "path", name, "op", event.Op.String())

		return true
	}

	if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		if _, ok := w.watched[name]; ok {
			delete(w.watched, name)

			return true
		}
	}

	if event.Has(fsnotify.Create) && w.leadsToDirectory(name) {
		if err := w.sync(fsw); err != nil {
			slog.Warn("Failed to watch new directory:", "path", name, "err", err)
		}

		return true
	}

	return false
}

// sync watches every wanted directory, or its closest existing parent when
// it does not exist yet.
func (w *Watcher) sync(fsw *fsnotify.Watcher) error {
	for _, dir := range w.dirs {
		target, err := w.closestExisting(dir)
		if err != nil {
			return fmt.Errorf("(watch-sync) %w", err)
		}

		if _, ok := w.watched[target]; ok {
			continue
		}

		if err := fsw.Add(target); err != nil {
			return fmt.Errorf("(watch-sync) failed to watch %s: %w", target, err)
		}
		w.watched[target] = struct{}{}

		slog.Debug("Watching directory:", "path", target)
	}

	return nil
}

func (w *Watcher) closestExisting(dir string) (string, error) {
	for {
		_, err := w.osOps.Stat(dir)
		if err == nil {
			return dir, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("failed to stat %s: %w", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no existing parent for %s: %w", dir, err)
		}
		dir = parent
	}
}

// leadsToDirectory reports whether name is a wanted directory or one of its
// parents.
func (w *Watcher) leadsToDirectory(name string) bool {
	for _, dir := range w.dirs {
		rel, err := filepath.Rel(name, dir)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}

	return false
}
