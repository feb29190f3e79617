// Package store reads and writes key paths in a tree of structured files.
//
// A [Store] resolves every path against its schema. The segments consumed by
// directories select a file below the root, the remaining segments select a
// key inside that file. Reading a directory assembles one object from all
// files below it, setting a directory distributes an object over them.
// Files are decoded fresh on every call, nothing is cached.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/desertwitch/nest/internal/codec"
	"github.com/desertwitch/nest/internal/filesystem"
	"github.com/desertwitch/nest/internal/pathing"
	"github.com/desertwitch/nest/internal/schema"
	"github.com/desertwitch/nest/internal/value"
)

type fsProvider interface {
	Lock(dir string) (*filesystem.Lock, error)
	MkdirAll(dir string) error
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// Option configures a [Store].
type Option func(*Store)

// WithLocking enables an exclusive advisory lock on every directory that a
// Set writes into, held from before the first read until after the last
// write. It only serializes stores that have locking enabled.
func WithLocking(enabled bool) Option {
	return func(s *Store) {
		s.locking = enabled
	}
}

// Store is a schema-routed view of the files below a root directory.
type Store struct {
	root      string
	schema    *schema.Schema
	base      pathing.Path
	fsHandler fsProvider
	locking   bool
}

// New returns a pointer to a new [Store] for the files below root.
func New(root string, sch *schema.Schema, fsHandler fsProvider, opts ...Option) *Store {
	s := &Store{
		root:      root,
		schema:    sch,
		fsHandler: fsHandler,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Open returns a pointer to a new [Store] for the files below root, with
// the schema read from schemaFile. The format of the schema file is chosen
// by its extension.
func Open(root, schemaFile string, fsHandler fsProvider, opts ...Option) (*Store, error) {
	c, ok := codec.ForExtension(filepath.Ext(schemaFile))
	if !ok {
		return nil, &Error{
			Kind: ErrDeserialize,
			File: schemaFile,
			Err:  fmt.Errorf("(store-open) no codec for extension %q", filepath.Ext(schemaFile)),
		}
	}

	data, err := fsHandler.ReadFile(schemaFile)
	if err != nil {
		return nil, &Error{Kind: ErrReadSource, File: schemaFile, Err: err}
	}

	sch, err := schema.Parse(data, c)
	if err != nil {
		return nil, &Error{Kind: ErrDeserialize, File: schemaFile, Err: err}
	}

	return New(root, sch, fsHandler, opts...), nil
}

// Root returns the directory the store is rooted at.
func (s *Store) Root() string {
	return s.root
}

// Schema returns the schema the store resolves paths against.
func (s *Store) Schema() *schema.Schema {
	return s.schema
}

// Get returns the value at p. A path ending at a directory yields an object
// with one entry per schema child, a path ending at or below a leaf yields
// the file contents or the key inside it.
func (s *Store) Get(p pathing.Path) (value.Value, error) {
	full := s.base.Join(p)

	node, consumed, remaining, ok := s.schema.Resolve(full)
	if !ok {
		return value.Value{}, &Error{Kind: ErrSchemaNotFound, Path: full}
	}

	return s.read(node, consumed, remaining)
}

func (s *Store) read(node *schema.Schema, consumed, remaining pathing.Path) (value.Value, error) {
	if node.IsDirectory() {
		m := value.NewMap()

		for _, child := range node.Children() {
			v, err := s.read(child.Schema, consumed.Append(child.Name), pathing.Path{})
			if err != nil {
				return value.Value{}, err
			}
			m.Set(child.Name, v)
		}

		return value.FromMap(m), nil
	}

	file := s.filePath(node, consumed)

	doc, err := s.load(node, consumed, file)
	if err != nil {
		return value.Value{}, err
	}

	v, ok := doc.Lookup(remaining.Segments()...)
	if !ok {
		return value.Value{}, &Error{Kind: ErrValueNotFound, Path: consumed.Join(remaining), File: file}
	}

	return v, nil
}

func (s *Store) load(node *schema.Schema, consumed pathing.Path, file string) (value.Value, error) {
	data, err := s.fsHandler.ReadFile(file)
	if err != nil {
		return value.Value{}, &Error{Kind: ErrReadSource, Path: consumed, File: file, Err: err}
	}

	doc, err := node.Codec().Decode(data)
	if err != nil {
		return value.Value{}, &Error{Kind: ErrDeserialize, Path: consumed, File: file, Err: err}
	}

	return doc, nil
}

// Sub returns a store for the part of s at p, so that sub.Get(q) equals
// s.Get(p joined with q). Resolving below a leaf is allowed, the sub-store
// then addresses keys inside that file.
func (s *Store) Sub(p pathing.Path) (*Store, error) {
	full := s.base.Join(p)

	node, consumed, remaining, ok := s.schema.Resolve(full)
	if !ok {
		return nil, &Error{Kind: ErrSchemaNotFound, Path: full}
	}

	return &Store{
		root:      filepath.Join(s.root, consumed.FilePath()),
		schema:    node,
		base:      remaining,
		fsHandler: s.fsHandler,
		locking:   s.locking,
	}, nil
}

// Files returns the backing files of the value at p in schema order. The
// files need not exist.
func (s *Store) Files(p pathing.Path) ([]string, error) {
	full := s.base.Join(p)

	node, consumed, _, ok := s.schema.Resolve(full)
	if !ok {
		return nil, &Error{Kind: ErrSchemaNotFound, Path: full}
	}

	var files []string
	s.walk(node, consumed, func(leaf *schema.Schema, at pathing.Path) {
		files = append(files, s.filePath(leaf, at))
	})

	return files, nil
}

// Directories returns the sorted directories holding the backing files of
// the value at p, including directories of the schema that contain no files
// yet. The directories need not exist.
func (s *Store) Directories(p pathing.Path) ([]string, error) {
	full := s.base.Join(p)

	node, consumed, _, ok := s.schema.Resolve(full)
	if !ok {
		return nil, &Error{Kind: ErrSchemaNotFound, Path: full}
	}

	var dirs []string

	if node.IsLeaf() {
		dirs = append(dirs, filepath.Dir(s.filePath(node, consumed)))
	} else {
		var collect func(dir *schema.Schema, at pathing.Path)
		collect = func(dir *schema.Schema, at pathing.Path) {
			dirs = append(dirs, filepath.Join(s.root, at.FilePath()))
			for _, child := range dir.Children() {
				if child.Schema.IsDirectory() {
					collect(child.Schema, at.Append(child.Name))
				}
			}
		}
		collect(node, consumed)
	}

	slices.Sort(dirs)

	return slices.Compact(dirs), nil
}

func (s *Store) walk(node *schema.Schema, at pathing.Path, fn func(leaf *schema.Schema, at pathing.Path)) {
	if node.IsLeaf() {
		fn(node, at)

		return
	}

	for _, child := range node.Children() {
		s.walk(child.Schema, at.Append(child.Name), fn)
	}
}

// filePath returns the file backing the leaf at the consumed path. A store
// whose schema is a leaf has its file next to the root, named like it.
func (s *Store) filePath(leaf *schema.Schema, consumed pathing.Path) string {
	return filepath.Join(s.root, consumed.FilePath()) + "." + leaf.Codec().ID()
}

// pendingWrite is a single file update of a Set, planned before anything is
// written.
type pendingWrite struct {
	leaf      *schema.Schema
	consumed  pathing.Path
	remaining pathing.Path
	value     value.Value
	file      string
	data      []byte
}

// Set writes v at p. At a directory v has to be an object, its keys are set
// on the matching schema children and keys without a child are ignored.
// At a leaf the file is read, v is merged in at the remaining keys and the
// file is replaced atomically. A missing file counts as an empty object.
//
// The whole update is planned first: the shape of v is checked and every
// affected file is read, merged and encoded before the first file is
// written, so such failures leave all files unchanged.
func (s *Store) Set(p pathing.Path, v value.Value) error {
	full := s.base.Join(p)

	node, consumed, remaining, ok := s.schema.Resolve(full)
	if !ok {
		return &Error{Kind: ErrSchemaNotFound, Path: full}
	}

	var writes []*pendingWrite
	if err := s.plan(node, consumed, remaining, v, &writes); err != nil {
		return err
	}

	if len(writes) == 0 {
		return nil
	}

	dirs := make([]string, 0, len(writes))
	for _, w := range writes {
		w.file = s.filePath(w.leaf, w.consumed)
		dirs = append(dirs, filepath.Dir(w.file))
	}
	slices.Sort(dirs)
	dirs = slices.Compact(dirs)

	for _, dir := range dirs {
		if err := s.fsHandler.MkdirAll(dir); err != nil {
			return &Error{Kind: ErrMakeDirectory, Path: full, File: dir, Err: err}
		}
	}

	if s.locking {
		unlock, err := s.lock(dirs, full)
		if err != nil {
			return err
		}
		defer unlock()
	}

	for _, w := range writes {
		if err := s.merge(w); err != nil {
			return err
		}
	}

	for _, w := range writes {
		if err := s.fsHandler.WriteFile(w.file, w.data); err != nil {
			return &Error{Kind: ErrWriteSource, Path: w.consumed, File: w.file, Err: err}
		}
	}

	return nil
}

func (s *Store) plan(node *schema.Schema, consumed, remaining pathing.Path, v value.Value, writes *[]*pendingWrite) error {
	if node.IsLeaf() {
		*writes = append(*writes, &pendingWrite{
			leaf:      node,
			consumed:  consumed,
			remaining: remaining,
			value:     v,
		})

		return nil
	}

	m, ok := v.AsMap()
	if !ok {
		return &Error{
			Kind: ErrExpectedObjectForDirectory,
			Path: consumed,
			Err:  fmt.Errorf("(store-set) got %s", v.Kind()),
		}
	}

	for key := range m.All() {
		if _, known := node.Child(key); !known {
			slog.Debug("Ignored key without schema entry:",
				"key", key,
				"path", consumed.String(),
				"root", s.root,
			)
		}
	}

	for _, child := range node.Children() {
		elem, present := m.Get(child.Name)
		if !present {
			continue
		}

		if err := s.plan(child.Schema, consumed.Append(child.Name), pathing.Path{}, elem, writes); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) merge(w *pendingWrite) error {
	prior := value.Object()

	data, err := s.fsHandler.ReadFile(w.file)

	switch {
	case err == nil:
		prior, err = w.leaf.Codec().Decode(data)
		if err != nil {
			return &Error{Kind: ErrDeserialize, Path: w.consumed, File: w.file, Err: err}
		}

	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("Creating new file:", "path", w.file)

	default:
		return &Error{Kind: ErrReadSource, Path: w.consumed, File: w.file, Err: err}
	}

	merged := prior.With(w.remaining.Segments(), w.value)

	data, err = w.leaf.Codec().Encode(merged)
	if err != nil {
		return &Error{Kind: ErrSerialize, Path: w.consumed.Join(w.remaining), File: w.file, Err: err}
	}
	w.data = data

	return nil
}

func (s *Store) lock(dirs []string, at pathing.Path) (func(), error) {
	locks := make([]*filesystem.Lock, 0, len(dirs))

	unlock := func() {
		for i := len(locks) - 1; i >= 0; i-- {
			if err := locks[i].Unlock(); err != nil {
				slog.Warn("Failed to release directory lock:", "err", err)
			}
		}
	}

	for _, dir := range dirs {
		l, err := s.fsHandler.Lock(dir)
		if err != nil {
			unlock()

			return nil, &Error{Kind: ErrWriteSource, Path: at, File: dir, Err: err}
		}
		locks = append(locks, l)
	}

	return unlock, nil
}
