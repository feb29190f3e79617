package schema

import (
	"errors"
	"fmt"

	"github.com/desertwitch/nest/internal/pathing"
	"github.com/desertwitch/nest/internal/value"
)

// ErrInvalidSchema is an error that occurs when a schema definition contains
// a value that is neither an object nor the id of a known format.
var ErrInvalidSchema = errors.New("invalid schema")

// InvalidSchemaError carries the offending part of a schema definition.
type InvalidSchemaError struct {
	// Value is the rejected part of the definition.
	Value value.Value

	// Path is where Value sits in the definition.
	Path pathing.Path
}

func (e *InvalidSchemaError) Error() string {
	if e.Path.IsEmpty() {
		return fmt.Sprintf("%v: %s", ErrInvalidSchema, e.Value)
	}

	return fmt.Sprintf("%v at %s: %s", ErrInvalidSchema, e.Path, e.Value)
}

func (e *InvalidSchemaError) Unwrap() error {
	return ErrInvalidSchema
}
