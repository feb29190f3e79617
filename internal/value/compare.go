package value

import (
	"encoding/binary"
	"hash"
	"math"
	"slices"

	"github.com/zeebo/blake3"
)

// Equal reports whether a and b are structurally equal. Numeric variants are
// distinct, Int(1) is not equal to Uint(1). Object key order is ignored. NaN
// floats are equal to each other.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindUint:
		return a.u == b.u
	case KindFloat:
		return a.f == b.f || (math.IsNaN(a.f) && math.IsNaN(b.f))
	case KindString:
		return a.s == b.s
	case KindArray:
		return slices.EqualFunc(a.arr, b.arr, Equal)
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for key, av := range a.obj.All() {
			bv, ok := b.obj.Get(key)
			if !ok || !Equal(av, bv) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

// Equal is the method form of [Equal].
func (v Value) Equal(other Value) bool {
	return Equal(v, other)
}

// Sum returns a blake3 digest of the canonical form of v. Values that are
// [Equal] have the same digest.
func (v Value) Sum() [32]byte {
	h := blake3.New()
	writeCanonical(h, v)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))

	return sum
}

func writeCanonical(h hash.Hash, v Value) {
	var buf [binary.MaxVarintLen64]byte

	writeUvarint := func(x uint64) {
		n := binary.PutUvarint(buf[:], x)
		h.Write(buf[:n])
	}

	writeString := func(s string) {
		writeUvarint(uint64(len(s)))
		h.Write([]byte(s))
	}

	h.Write([]byte{byte(v.kind)})

	switch v.kind {
	case KindNull:
	case KindBool:
		if v.b {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case KindInt:
		writeUvarint(uint64(v.i)) //nolint:gosec
	case KindUint:
		writeUvarint(v.u)
	case KindFloat:
		f := v.f
		if math.IsNaN(f) {
			f = math.NaN()
		}
		writeUvarint(math.Float64bits(f))
	case KindString:
		writeString(v.s)
	case KindArray:
		writeUvarint(uint64(len(v.arr)))
		for _, elem := range v.arr {
			writeCanonical(h, elem)
		}
	case KindObject:
		keys := v.obj.Keys()
		slices.Sort(keys)

		writeUvarint(uint64(len(keys)))
		for _, key := range keys {
			elem, _ := v.obj.Get(key)
			writeString(key)
			writeCanonical(h, elem)
		}
	}
}
