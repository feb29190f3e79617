package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/desertwitch/nest/internal/value"
	"gopkg.in/yaml.v3"
)

const (
	yamlNullTag      = "!!null"
	yamlBoolTag      = "!!bool"
	yamlIntTag       = "!!int"
	yamlFloatTag     = "!!float"
	yamlStrTag       = "!!str"
	yamlMapTag       = "!!map"
	yamlSeqTag       = "!!seq"
	yamlMergeTag     = "!!merge"
	yamlDocumentHead = "---\n"
)

// YAML is the codec for YAML files. Mappings keep their document order and
// must only have string keys.
type YAML struct{}

func (*YAML) ID() string {
	return "yaml"
}

// Decode parses the first document of data. An empty document is null.
func (*YAML) Decode(data []byte) (value.Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return value.Value{}, fmt.Errorf("(codec-yaml) %w", err)
	}

	if doc.Kind == 0 || len(doc.Content) == 0 {
		return value.Null(), nil
	}

	v, err := valueFromYAML(doc.Content[0])
	if err != nil {
		return value.Value{}, fmt.Errorf("(codec-yaml) %w", err)
	}

	return v, nil
}

// Encode writes v as a single document starting with a document marker.
func (*YAML) Encode(v value.Value) ([]byte, error) {
	node, err := yamlFromValue(v)
	if err != nil {
		return nil, fmt.Errorf("(codec-yaml) %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(yamlDocumentHead)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{node}}); err != nil {
		return nil, fmt.Errorf("(codec-yaml) failed to encode: %w", err)
	}

	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("(codec-yaml) failed to close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

func valueFromYAML(node *yaml.Node) (value.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return value.Null(), nil
		}

		return valueFromYAML(node.Content[0])

	case yaml.AliasNode:
		return valueFromYAML(node.Alias)

	case yaml.SequenceNode:
		elems := make([]value.Value, 0, len(node.Content))
		for _, child := range node.Content {
			elem, err := valueFromYAML(child)
			if err != nil {
				return value.Value{}, err
			}
			elems = append(elems, elem)
		}

		return value.Array(elems...), nil

	case yaml.MappingNode:
		m := value.NewMap()
		if err := mergeYAMLMapping(m, node, true); err != nil {
			return value.Value{}, err
		}

		return value.FromMap(m), nil

	case yaml.ScalarNode:
		return valueFromYAMLScalar(node)

	default:
		return value.Value{}, fmt.Errorf("unknown node kind %d at line %d", node.Kind, node.Line)
	}
}

// mergeYAMLMapping adds the pairs of node to m. Explicit keys overwrite
// existing ones, pairs from merge keys only fill in missing keys.
func mergeYAMLMapping(m *value.Map, node *yaml.Node, explicit bool) error {
	var merges []*yaml.Node

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := resolveYAMLAlias(node.Content[i]), node.Content[i+1]

		if keyNode.Kind == yaml.ScalarNode && keyNode.ShortTag() == yamlMergeTag {
			merges = append(merges, resolveYAMLAlias(valNode))

			continue
		}

		if keyNode.Kind != yaml.ScalarNode || keyNode.ShortTag() != yamlStrTag {
			return fmt.Errorf("%w: %s key at line %d", ErrNonStringKey, keyNode.ShortTag(), keyNode.Line)
		}

		if _, exists := m.Get(keyNode.Value); exists && !explicit {
			continue
		}

		elem, err := valueFromYAML(valNode)
		if err != nil {
			return err
		}
		m.Set(keyNode.Value, elem)
	}

	for _, merge := range merges {
		sources := []*yaml.Node{merge}
		if merge.Kind == yaml.SequenceNode {
			sources = merge.Content
		}

		for _, source := range sources {
			source = resolveYAMLAlias(source)
			if source.Kind != yaml.MappingNode {
				return fmt.Errorf("merge key at line %d does not reference a mapping", source.Line)
			}
			if err := mergeYAMLMapping(m, source, false); err != nil {
				return err
			}
		}
	}

	return nil
}

func resolveYAMLAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func valueFromYAMLScalar(node *yaml.Node) (value.Value, error) {
	switch node.ShortTag() {
	case yamlNullTag:
		return value.Null(), nil

	case yamlBoolTag:
		var b bool
		if err := node.Decode(&b); err != nil {
			return value.Value{}, fmt.Errorf("invalid bool at line %d: %w", node.Line, err)
		}

		return value.Bool(b), nil

	case yamlIntTag:
		var u uint64
		if err := node.Decode(&u); err == nil {
			return value.Uint(u), nil
		}

		var i int64
		if err := node.Decode(&i); err == nil {
			return value.Int(i), nil
		}

		var f float64
		if err := node.Decode(&f); err != nil {
			return value.Value{}, fmt.Errorf("invalid int at line %d: %w", node.Line, err)
		}

		return value.Float(f), nil

	case yamlFloatTag:
		var f float64
		if err := node.Decode(&f); err != nil {
			return value.Value{}, fmt.Errorf("invalid float at line %d: %w", node.Line, err)
		}

		return value.Float(f), nil

	default:
		// Strings, timestamps, binary and custom tags keep their text.
		return value.String(node.Value), nil
	}
}

func yamlFromValue(v value.Value) (*yaml.Node, error) {
	scalar := func(tag, text string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: text}
	}

	switch v.Kind() {
	case value.KindNull:
		return scalar(yamlNullTag, "null"), nil

	case value.KindBool:
		b, _ := v.AsBool()

		return scalar(yamlBoolTag, strconv.FormatBool(b)), nil

	case value.KindInt:
		i, _ := v.AsInt()

		return scalar(yamlIntTag, strconv.FormatInt(i, 10)), nil

	case value.KindUint:
		u, _ := v.AsUint()

		return scalar(yamlIntTag, strconv.FormatUint(u, 10)), nil

	case value.KindFloat:
		f, _ := v.AsFloat()

		return scalar(yamlFloatTag, formatYAMLFloat(f)), nil

	case value.KindString:
		s, _ := v.AsString()

		return scalar(yamlStrTag, s), nil

	case value.KindArray:
		elems, _ := v.AsArray()
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: yamlSeqTag}
		for i, elem := range elems {
			child, err := yamlFromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			node.Content = append(node.Content, child)
		}

		return node, nil

	case value.KindObject:
		m, _ := v.AsMap()
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: yamlMapTag}
		for key, elem := range m.All() {
			child, err := yamlFromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			node.Content = append(node.Content, scalar(yamlStrTag, key), child)
		}

		return node, nil

	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnsupportedValue, v.Kind())
	}
}

func formatYAMLFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return formatFloat(f)
	}
}
