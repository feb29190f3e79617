package codec

import "errors"

var (
	// ErrUnsupportedValue is an error that occurs when a [value.Value] cannot
	// be expressed in the target format, e.g. null in TOML or NaN in JSON.
	ErrUnsupportedValue = errors.New("value not supported by format")

	// ErrNonStringKey is an error that occurs when a decoded mapping has a key
	// that is not a string.
	ErrNonStringKey = errors.New("mapping key is not a string")

	// ErrTrailingData is an error that occurs when a document is followed by
	// further content.
	ErrTrailingData = errors.New("unexpected data after document")

	// ErrEmptyDocument is an error that occurs when a format that requires a
	// document is given no content at all.
	ErrEmptyDocument = errors.New("empty document")
)
