package value

import "iter"

// Map is an insertion-ordered mapping of string keys to values.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap returns a pointer to a new, empty [Map].
func NewMap() *Map {
	return &Map{
		entries: make(map[string]Value),
	}
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}

	v, ok := m.entries[key]

	return v, ok
}

// Set inserts or replaces the value for key. A replaced key keeps its
// position.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.entries[key] = v
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, exists := m.entries[key]; !exists {
		return false
	}

	delete(m.entries, key)

	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)

			break
		}
	}

	return true
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}

	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// All iterates the members in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}

		for _, key := range m.keys {
			if !yield(key, m.entries[key]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of m, the values themselves are shared.
func (m *Map) Clone() *Map {
	clone := &Map{
		keys:    make([]string, m.Len()),
		entries: make(map[string]Value, m.Len()),
	}

	if m == nil {
		return clone
	}

	copy(clone.keys, m.keys)
	for key, v := range m.entries {
		clone.entries[key] = v
	}

	return clone
}
