package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/desertwitch/nest/internal/value"
	"github.com/hjson/hjson-go/v4"
)

// HJSON is the codec for Hjson files. Objects keep their document order,
// comments are not preserved on rewrite.
type HJSON struct{}

func (*HJSON) ID() string {
	return "hjson"
}

func (*HJSON) Decode(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Value{}, fmt.Errorf("(codec-hjson) %w", ErrEmptyDocument)
	}

	opts := hjson.DefaultDecoderOptions()
	opts.UseJSONNumber = true

	var node hjson.Node
	if err := hjson.UnmarshalWithOptions(data, &node, opts); err != nil {
		return value.Value{}, fmt.Errorf("(codec-hjson) %w", err)
	}

	v, err := valueFromHJSON(node.Value)
	if err != nil {
		return value.Value{}, fmt.Errorf("(codec-hjson) %w", err)
	}

	return v, nil
}

// Encode writes v with root braces, two space indentation and a trailing
// newline.
func (*HJSON) Encode(v value.Value) ([]byte, error) {
	native, err := hjsonFromValue(v)
	if err != nil {
		return nil, fmt.Errorf("(codec-hjson) %w", err)
	}

	opts := hjson.DefaultOptions()
	opts.IndentBy = "  "
	opts.EmitRootBraces = true

	data, err := hjson.MarshalWithOptions(native, opts)
	if err != nil {
		return nil, fmt.Errorf("(codec-hjson) failed to encode: %w", err)
	}

	return append(data, '\n'), nil
}

func valueFromHJSON(native any) (value.Value, error) {
	switch t := native.(type) {
	case *hjson.Node:
		if t == nil {
			return value.Null(), nil
		}

		return valueFromHJSON(t.Value)

	case hjson.Node:
		return valueFromHJSON(t.Value)

	case nil:
		return value.Null(), nil

	case bool:
		return value.Bool(t), nil

	case string:
		return value.String(t), nil

	case json.Number:
		return numberFromLiteral(t.String())

	case float64:
		return numberFromLiteral(strconv.FormatFloat(t, 'g', -1, 64))

	case []any:
		elems := make([]value.Value, 0, len(t))
		for _, elem := range t {
			v, err := valueFromHJSON(elem)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, v)
		}

		return value.Array(elems...), nil

	case *hjson.OrderedMap:
		m := value.NewMap()
		for _, key := range t.Keys {
			v, err := valueFromHJSON(t.Map[key])
			if err != nil {
				return value.Value{}, err
			}
			m.Set(key, v)
		}

		return value.FromMap(m), nil

	case map[string]any:
		return value.Value{}, fmt.Errorf("unordered object in decoded tree")

	default:
		return value.Value{}, fmt.Errorf("unexpected decoded type %T", native)
	}
}

func hjsonFromValue(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil

	case value.KindBool:
		b, _ := v.AsBool()

		return b, nil

	case value.KindInt:
		i, _ := v.AsInt()

		return json.Number(strconv.FormatInt(i, 10)), nil

	case value.KindUint:
		u, _ := v.AsUint()

		return json.Number(strconv.FormatUint(u, 10)), nil

	case value.KindFloat:
		f, _ := v.AsFloat()
		if err := checkFinite(f); err != nil {
			return nil, err
		}

		return json.Number(formatFloat(f)), nil

	case value.KindString:
		s, _ := v.AsString()

		return s, nil

	case value.KindArray:
		elems, _ := v.AsArray()
		out := make([]any, 0, len(elems))
		for i, elem := range elems {
			native, err := hjsonFromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, native)
		}

		return out, nil

	case value.KindObject:
		m, _ := v.AsMap()
		out := hjson.NewOrderedMap()
		for key, elem := range m.All() {
			native, err := hjsonFromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out.Set(key, native)
		}

		return out, nil

	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedValue, v.Kind())
	}
}
