// Package codec converts between the on-disk text formats and the generic
// [value.Value] tree.
//
// Every codec is stateless. Converting native data to a [value.Value] is
// total, while converting a [value.Value] to a format may fail with
// [ErrUnsupportedValue] when the format cannot express it.
package codec

import (
	"github.com/desertwitch/nest/internal/value"
)

// Codec is a single on-disk format.
type Codec interface {
	// ID is the format id used in schema definitions. It is also the file
	// extension (without the dot).
	ID() string

	// Decode parses the full contents of a file.
	Decode(data []byte) (value.Value, error)

	// Encode serializes a value to the full contents of a file.
	Encode(v value.Value) ([]byte, error)
}
