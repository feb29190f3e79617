package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/desertwitch/nest/internal/value"
)

// JSON is the codec for JSON files. Objects keep their document order.
type JSON struct{}

func (*JSON) ID() string {
	return "json"
}

// Decode parses a single JSON document. Duplicate keys keep the position of
// their first occurrence and the value of their last.
func (*JSON) Decode(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Value{}, fmt.Errorf("(codec-json) %w", ErrEmptyDocument)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeJSONValue(dec)
	if err != nil {
		return value.Value{}, fmt.Errorf("(codec-json) %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Value{}, fmt.Errorf("(codec-json) %w", ErrTrailingData)
	}

	return v, nil
}

// Encode writes v pretty-printed with two spaces and a trailing newline.
func (*JSON) Encode(v value.Value) ([]byte, error) {
	var compact bytes.Buffer
	if err := encodeJSONValue(&compact, v); err != nil {
		return nil, fmt.Errorf("(codec-json) %w", err)
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("(codec-json) failed to indent: %w", err)
	}
	out.WriteByte('\n')

	return out.Bytes(), nil
}

func decodeJSONValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return value.Value{}, fmt.Errorf("unexpected delimiter %q", t)
		}
	case json.Number:
		return numberFromLiteral(t.String())
	case string:
		return value.String(t), nil
	case bool:
		return value.Bool(t), nil
	case nil:
		return value.Null(), nil
	default:
		return value.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeJSONObject(dec *json.Decoder) (value.Value, error) {
	m := value.NewMap()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return value.Value{}, err
		}

		key, ok := tok.(string)
		if !ok {
			return value.Value{}, fmt.Errorf("%w: %v", ErrNonStringKey, tok)
		}

		elem, err := decodeJSONValue(dec)
		if err != nil {
			return value.Value{}, err
		}

		m.Set(key, elem)
	}

	if _, err := dec.Token(); err != nil {
		return value.Value{}, err
	}

	return value.FromMap(m), nil
}

func decodeJSONArray(dec *json.Decoder) (value.Value, error) {
	elems := []value.Value{}

	for dec.More() {
		elem, err := decodeJSONValue(dec)
		if err != nil {
			return value.Value{}, err
		}
		elems = append(elems, elem)
	}

	if _, err := dec.Token(); err != nil {
		return value.Value{}, err
	}

	return value.Array(elems...), nil
}

func encodeJSONValue(buf *bytes.Buffer, v value.Value) error {
	switch v.Kind() {
	case value.KindNull:
		buf.WriteString("null")

	case value.KindBool:
		b, _ := v.AsBool()
		buf.WriteString(strconv.FormatBool(b))

	case value.KindInt:
		i, _ := v.AsInt()
		buf.WriteString(strconv.FormatInt(i, 10))

	case value.KindUint:
		u, _ := v.AsUint()
		buf.WriteString(strconv.FormatUint(u, 10))

	case value.KindFloat:
		f, _ := v.AsFloat()
		if err := checkFinite(f); err != nil {
			return err
		}
		buf.WriteString(formatFloat(f))

	case value.KindString:
		s, _ := v.AsString()
		if err := encodeJSONString(buf, s); err != nil {
			return err
		}

	case value.KindArray:
		elems, _ := v.AsArray()
		buf.WriteByte('[')
		for i, elem := range elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSONValue(buf, elem); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')

	case value.KindObject:
		m, _ := v.AsMap()
		buf.WriteByte('{')
		first := true
		for key, elem := range m.All() {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := encodeJSONString(buf, key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := encodeJSONValue(buf, elem); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		buf.WriteByte('}')
	}

	return nil
}

func encodeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("failed to encode string: %w", err)
	}

	// Encode terminates every value with a newline.
	buf.Truncate(buf.Len() - 1)

	return nil
}
