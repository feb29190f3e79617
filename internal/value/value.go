// Package value implements the format-agnostic value tree that is exchanged
// between the store and every codec.
package value

// Kind identifies the variant held by a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a tagged value tree node. The zero value is null.
//
// A Value holding an array or an object references its elements, copying a
// Value is therefore shallow. Functions in this package never mutate the
// elements of a Value they were given.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	obj  *Map
}

// Member is a single key/value pair of an object, used with [Object].
type Member struct {
	Key   string
	Value Value
}

// KV returns a new [Member].
func KV(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

func Null() Value {
	return Value{}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

func Uint(u uint64) Value {
	return Value{kind: KindUint, u: u}
}

func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array value holding the given elements.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}

	return Value{kind: KindArray, arr: elems}
}

// Object returns an object value holding the given members in order. A
// repeated key replaces the value of its first occurrence.
func Object(members ...Member) Value {
	m := NewMap()
	for _, member := range members {
		m.Set(member.Key, member.Value)
	}

	return Value{kind: KindObject, obj: m}
}

// FromMap returns an object value backed by m. A nil m yields an empty
// object.
func FromMap(m *Map) Value {
	if m == nil {
		m = NewMap()
	}

	return Value{kind: KindObject, obj: m}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsObject() bool {
	return v.kind == KindObject
}

func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

func (v Value) AsUint() (uint64, bool) {
	return v.u, v.kind == KindUint
}

func (v Value) AsFloat() (float64, bool) {
	return v.f, v.kind == KindFloat
}

func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsArray returns the elements of an array value. The returned slice must
// not be modified.
func (v Value) AsArray() ([]Value, bool) {
	if v.kind != KindArray {
		return nil, false
	}

	return v.arr, true
}

// AsMap returns the ordered map of an object value. The returned map must
// not be modified, use [Map.Clone] to derive a changed copy.
func (v Value) AsMap() (*Map, bool) {
	if v.kind != KindObject {
		return nil, false
	}

	return v.obj, true
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			elems[i] = elem.Clone()
		}

		return Value{kind: KindArray, arr: elems}

	case KindObject:
		m := NewMap()
		for key, elem := range v.obj.All() {
			m.Set(key, elem.Clone())
		}

		return Value{kind: KindObject, obj: m}

	default:
		return v
	}
}
