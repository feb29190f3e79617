package value

// Lookup walks nested objects one segment at a time. It reports false when a
// segment is missing or when a non-object value is reached while segments
// remain. Without segments v itself is returned.
func (v Value) Lookup(segments ...string) (Value, bool) {
	current := v

	for _, segment := range segments {
		m, ok := current.AsMap()
		if !ok {
			return Value{}, false
		}

		next, ok := m.Get(segment)
		if !ok {
			return Value{}, false
		}

		current = next
	}

	return current, true
}

// With returns a tree equal to v except that the value at segments is
// replaced by next. Without segments next is returned as is.
//
// Missing intermediate objects are created, an intermediate that is not an
// object is replaced by a fresh object. Every sibling not on the path is kept.
// The objects along the path are copied, v is never mutated.
func (v Value) With(segments []string, next Value) Value {
	if len(segments) == 0 {
		return next
	}

	var m *Map
	if existing, ok := v.AsMap(); ok {
		m = existing.Clone()
	} else {
		m = NewMap()
	}

	child, _ := m.Get(segments[0])
	m.Set(segments[0], child.With(segments[1:], next))

	return FromMap(m)
}
