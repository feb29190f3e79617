package codec

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/desertwitch/nest/internal/value"
)

// Location names the TOML decoder assigns to local date and time values.
const (
	tomlLocalDatetime = "datetime-local"
	tomlLocalDate     = "date-local"
	tomlLocalTime     = "time-local"
)

// TOML is the codec for TOML files.
//
// TOML has no null, so encoding a null fails. Datetimes are not part of the
// value model: they decode to their string form, and on encoding any string
// that parses as an RFC 3339 timestamp is written as a native datetime. This
// is a best-effort heuristic and not lossless, a string that merely looks
// like a timestamp comes back as a datetime on the next write, and precision
// details like trailing zero fractions are normalized.
type TOML struct{}

func (*TOML) ID() string {
	return "toml"
}

// Decode parses data as a TOML document. Tables keep their document order.
func (*TOML) Decode(data []byte) (value.Value, error) {
	var doc map[string]any

	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return value.Value{}, fmt.Errorf("(codec-toml) %w", err)
	}

	order := newTOMLKeyOrder()
	for _, key := range md.Keys() {
		order.add(key)
	}

	return valueFromTOML(doc, order), nil
}

// Encode writes v, which has to be an object, as a TOML document.
func (*TOML) Encode(v value.Value) ([]byte, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("(codec-toml) %w: document root must be an object, not %s", ErrUnsupportedValue, v.Kind())
	}

	native, err := tomlFromValue(v)
	if err != nil {
		return nil, fmt.Errorf("(codec-toml) %w", err)
	}

	var buf bytes.Buffer

	enc := toml.NewEncoder(&buf)
	enc.Indent = ""

	if err := enc.Encode(native); err != nil {
		return nil, fmt.Errorf("(codec-toml) failed to encode: %w", err)
	}

	return buf.Bytes(), nil
}

// tomlKeyOrder records the document order of keys, per table.
type tomlKeyOrder struct {
	names    []string
	children map[string]*tomlKeyOrder
}

func newTOMLKeyOrder() *tomlKeyOrder {
	return &tomlKeyOrder{children: make(map[string]*tomlKeyOrder)}
}

func (o *tomlKeyOrder) add(key toml.Key) {
	node := o
	for _, part := range key {
		node = node.child(part)
	}
}

func (o *tomlKeyOrder) child(name string) *tomlKeyOrder {
	if o == nil {
		return nil
	}

	next, exists := o.children[name]
	if !exists {
		next = newTOMLKeyOrder()
		o.children[name] = next
		o.names = append(o.names, name)
	}

	return next
}

func (o *tomlKeyOrder) lookup(name string) *tomlKeyOrder {
	if o == nil {
		return nil
	}

	return o.children[name]
}

// sortedKeys returns the keys of table in document order, keys unknown to the
// order follow in lexical order.
func (o *tomlKeyOrder) sortedKeys(table map[string]any) []string {
	keys := make([]string, 0, len(table))
	seen := make(map[string]struct{}, len(table))

	if o != nil {
		for _, name := range o.names {
			if _, ok := table[name]; ok {
				keys = append(keys, name)
				seen[name] = struct{}{}
			}
		}
	}

	rest := make([]string, 0, len(table)-len(keys))
	for name := range table {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	slices.Sort(rest)

	return append(keys, rest...)
}

func valueFromTOML(native any, order *tomlKeyOrder) value.Value {
	switch t := native.(type) {
	case map[string]any:
		m := value.NewMap()
		for _, key := range order.sortedKeys(t) {
			m.Set(key, valueFromTOML(t[key], order.lookup(key)))
		}

		return value.FromMap(m)

	case []map[string]any:
		elems := make([]value.Value, 0, len(t))
		for _, table := range t {
			elems = append(elems, valueFromTOML(table, order))
		}

		return value.Array(elems...)

	case []any:
		elems := make([]value.Value, 0, len(t))
		for _, elem := range t {
			elems = append(elems, valueFromTOML(elem, order))
		}

		return value.Array(elems...)

	case int64:
		return numberFromInt64(t)

	case float64:
		return value.Float(t)

	case bool:
		return value.Bool(t)

	case string:
		return value.String(t)

	case time.Time:
		return value.String(formatTOMLTime(t))

	default:
		return value.String(fmt.Sprint(t))
	}
}

func formatTOMLTime(t time.Time) string {
	switch t.Location().String() {
	case tomlLocalDatetime:
		return t.Format("2006-01-02T15:04:05.999999999")
	case tomlLocalDate:
		return t.Format(time.DateOnly)
	case tomlLocalTime:
		return t.Format("15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}

// tomlFromValue converts v to data the TOML encoder writes in the order of
// the value. Objects become anonymous structs, since the encoder sorts map
// keys but keeps struct field order.
func tomlFromValue(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, fmt.Errorf("%w: toml has no null", ErrUnsupportedValue)

	case value.KindBool:
		b, _ := v.AsBool()

		return b, nil

	case value.KindInt:
		i, _ := v.AsInt()

		return i, nil

	case value.KindUint:
		u, _ := v.AsUint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: integer %d exceeds the toml integer range", ErrUnsupportedValue, u)
		}

		return int64(u), nil

	case value.KindFloat:
		f, _ := v.AsFloat()

		return f, nil

	case value.KindString:
		s, _ := v.AsString()
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}

		return s, nil

	case value.KindArray:
		elems, _ := v.AsArray()
		out := make([]any, 0, len(elems))
		for i, elem := range elems {
			native, err := tomlFromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, native)
		}

		return out, nil

	case value.KindObject:
		m, _ := v.AsMap()

		return tomlTableFromMap(m)

	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedValue, v.Kind())
	}
}

func tomlTableFromMap(m *value.Map) (any, error) {
	keys := m.Keys()
	natives := make([]any, 0, len(keys))

	for key, elem := range m.All() {
		native, err := tomlFromValue(elem)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		natives = append(natives, native)
	}

	if !slices.ContainsFunc(keys, isUntaggableTOMLKey) {
		fields := make([]reflect.StructField, len(keys))
		for i, key := range keys {
			fields[i] = reflect.StructField{
				Name: "F" + strconv.Itoa(i),
				Type: reflect.TypeFor[any](),
				Tag:  reflect.StructTag(`toml:` + strconv.Quote(key)),
			}
		}

		table := reflect.New(reflect.StructOf(fields)).Elem()
		for i, native := range natives {
			table.Field(i).Set(reflect.ValueOf(native))
		}

		return table.Interface(), nil
	}

	table := make(map[string]any, len(keys))
	for i, key := range keys {
		table[key] = natives[i]
	}

	return table, nil
}

// isUntaggableTOMLKey reports whether key cannot be carried in a struct tag
// without changing its meaning for the encoder.
func isUntaggableTOMLKey(key string) bool {
	return key == "" || key == "-" || strings.Contains(key, ",")
}
