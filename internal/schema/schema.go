// Package schema describes how key paths map onto directories and files.
//
// A [Schema] is either a directory, whose named children are further schemas,
// or a leaf, which is a single file in the format of its [codec.Codec]. The
// tree is immutable after construction and safe for concurrent use.
package schema

import (
	"fmt"

	"github.com/desertwitch/nest/internal/codec"
	"github.com/desertwitch/nest/internal/pathing"
	"github.com/desertwitch/nest/internal/value"
)

// Child is a named entry of a directory [Schema].
type Child struct {
	Name   string
	Schema *Schema
}

// Schema is a node of the schema tree.
type Schema struct {
	codec    codec.Codec
	children []Child
	index    map[string]int
}

// Leaf returns a schema for a single file in the format of c.
func Leaf(c codec.Codec) *Schema {
	return &Schema{codec: c}
}

// Directory returns a schema for a directory with the given children, in
// order. A repeated name replaces the earlier schema but keeps its position.
func Directory(children ...Child) *Schema {
	s := &Schema{
		children: make([]Child, 0, len(children)),
		index:    make(map[string]int, len(children)),
	}

	for _, child := range children {
		if i, exists := s.index[child.Name]; exists {
			s.children[i].Schema = child.Schema

			continue
		}
		s.index[child.Name] = len(s.children)
		s.children = append(s.children, child)
	}

	return s
}

func (s *Schema) IsLeaf() bool {
	return s.codec != nil
}

func (s *Schema) IsDirectory() bool {
	return s.codec == nil
}

// Codec returns the format of a leaf, or nil for a directory.
func (s *Schema) Codec() codec.Codec {
	return s.codec
}

// Children returns the entries of a directory in declaration order.
func (s *Schema) Children() []Child {
	children := make([]Child, len(s.children))
	copy(children, s.children)

	return children
}

// Names returns the entry names of a directory in declaration order.
func (s *Schema) Names() []string {
	names := make([]string, 0, len(s.children))
	for _, child := range s.children {
		names = append(names, child.Name)
	}

	return names
}

// Child returns the entry of a directory called name.
func (s *Schema) Child(name string) (*Schema, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}

	return s.children[i].Schema, true
}

// Resolve walks p from s, consuming one segment per directory, and stops at
// the first leaf or when p is exhausted. It returns the node it stopped at,
// the consumed prefix of p and the remaining segments. The remaining segments
// are only ever non-empty when node is a leaf, they address keys inside the
// file. ok is false when a segment names no entry of its directory.
func (s *Schema) Resolve(p pathing.Path) (node *Schema, consumed, remaining pathing.Path, ok bool) {
	node, rest, depth := s, p, 0

	for node.IsDirectory() && !rest.IsEmpty() {
		child, exists := node.Child(rest.First())
		if !exists {
			return nil, p.Take(depth), rest, false
		}

		node, rest = child, rest.Rest()
		depth++
	}

	return node, p.Take(depth), rest, true
}

// Value returns the definition of s in the form accepted by [FromValue].
func (s *Schema) Value() value.Value {
	if s.IsLeaf() {
		return value.String(s.codec.ID())
	}

	m := value.NewMap()
	for _, child := range s.children {
		m.Set(child.Name, child.Schema.Value())
	}

	return value.FromMap(m)
}

// FromValue builds a schema from its definition: an object is a directory
// with one entry per key, a string is a leaf in the named format. Anything
// else, including an unknown format id, is an [InvalidSchemaError].
func FromValue(v value.Value) (*Schema, error) {
	return fromValue(v, pathing.Path{})
}

func fromValue(v value.Value, at pathing.Path) (*Schema, error) {
	if id, ok := v.AsString(); ok {
		c, known := codec.Lookup(id)
		if !known {
			return nil, &InvalidSchemaError{Value: v, Path: at}
		}

		return Leaf(c), nil
	}

	m, ok := v.AsMap()
	if !ok {
		return nil, &InvalidSchemaError{Value: v, Path: at}
	}

	children := make([]Child, 0, m.Len())
	for name, elem := range m.All() {
		child, err := fromValue(elem, at.Append(name))
		if err != nil {
			return nil, err
		}
		children = append(children, Child{Name: name, Schema: child})
	}

	return Directory(children...), nil
}

// Parse decodes data with c and builds a schema from the result.
func Parse(data []byte, c codec.Codec) (*Schema, error) {
	v, err := c.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("(schema-parse) %w", err)
	}

	s, err := FromValue(v)
	if err != nil {
		return nil, fmt.Errorf("(schema-parse) %w", err)
	}

	return s, nil
}
