package store

import (
	"errors"
	"strings"

	"github.com/desertwitch/nest/internal/pathing"
)

var (
	// ErrSchemaNotFound is an error that occurs when a path segment names no
	// entry of the directory it is resolved in.
	ErrSchemaNotFound = errors.New("no schema entry for path")

	// ErrValueNotFound is an error that occurs when the keys below a leaf do
	// not exist in the file, or an intermediate value is not an object.
	ErrValueNotFound = errors.New("value not found")

	// ErrExpectedObjectForDirectory is an error that occurs when a value that
	// is not an object is set at a path that resolves to a directory.
	ErrExpectedObjectForDirectory = errors.New("expected an object for a directory")

	// ErrReadSource is an error that occurs when a backing file cannot be read.
	ErrReadSource = errors.New("failed to read source")

	// ErrWriteSource is an error that occurs when a backing file cannot be
	// replaced.
	ErrWriteSource = errors.New("failed to write source")

	// ErrMakeDirectory is an error that occurs when the directory of a backing
	// file cannot be created.
	ErrMakeDirectory = errors.New("failed to create directory")

	// ErrDeserialize is an error that occurs when a backing file is not valid
	// in the format of its schema leaf.
	ErrDeserialize = errors.New("failed to deserialize")

	// ErrSerialize is an error that occurs when a value cannot be expressed
	// in the format of its schema leaf.
	ErrSerialize = errors.New("failed to serialize")
)

// Error is the error returned by all [Store] operations. It matches both its
// Kind, one of the sentinel errors of this package, and its cause with
// [errors.Is].
type Error struct {
	// Kind is the sentinel error describing the failure.
	Kind error

	// Path is the path relative to the store root that failed.
	Path pathing.Path

	// File is the backing file involved, if any.
	File string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Kind.Error())

	if !e.Path.IsEmpty() {
		sb.WriteString(" at ")
		sb.WriteString(e.Path.String())
	}

	if e.File != "" {
		sb.WriteString(" (")
		sb.WriteString(e.File)
		sb.WriteString(")")
	}

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}
