package value

import (
	"strconv"
	"strings"
)

// String renders v in a compact JSON-like notation for logs and error
// messages. It is not a serialization format, use a codec for that.
func (v Value) String() string {
	var sb strings.Builder
	v.format(&sb)

	return sb.String()
}

func (v Value) format(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		sb.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		sb.WriteString(strconv.FormatFloat(v.f, 'g', -1, 64))
	case KindString:
		sb.WriteString(strconv.Quote(v.s))
	case KindArray:
		sb.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			elem.format(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		first := true
		for key, elem := range v.obj.All() {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(strconv.Quote(key))
			sb.WriteByte(':')
			elem.format(sb)
		}
		sb.WriteByte('}')
	}
}
