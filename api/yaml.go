package api

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// maxYAMLDepth bounds nesting (and alias expansion) when parsing text.
const maxYAMLDepth = 1000

const (
	tagNull   = "!!null"
	tagBool   = "!!bool"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagStr    = "!!str"
	tagBinary = "!!binary"
)

// ParseYAML parses a YAML (or JSON) document into a Value. Mapping order is
// preserved in the resulting Dictionary. An empty document is Nil.
func ParseYAML(text []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(text, &doc); err != nil {
		return Value{}, fmt.Errorf("parse yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return Nil(), nil
	}
	return fromNode(doc.Content[0], 0)
}

// MustParseYAML is ParseYAML for literals in tests and examples. It panics on error.
func MustParseYAML(text string) Value {
	v, err := ParseYAML([]byte(text))
	if err != nil {
		panic(err)
	}
	return v
}

func fromNode(n *yaml.Node, depth int) (Value, error) {
	if depth > maxYAMLDepth {
		return Value{}, fmt.Errorf("yaml line %d: nesting exceeds %d levels", n.Line, maxYAMLDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nil(), nil
		}
		return fromNode(n.Content[0], depth+1)

	case yaml.AliasNode:
		return fromNode(n.Alias, depth+1)

	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromNode(c, depth+1)
			if err != nil {
				return Value{}, err
			}
			items = append(items, item)
		}
		return Array(items...), nil

	case yaml.MappingNode:
		pairs := make([]KeyValuePair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return Value{}, fmt.Errorf("yaml line %d: mapping keys must be scalars", k.Line)
			}
			val, err := fromNode(n.Content[i+1], depth+1)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair(k.Value, val))
		}
		return Dictionary(pairs...), nil

	case yaml.ScalarNode:
		return fromScalar(n)
	}

	return Value{}, fmt.Errorf("yaml line %d: unsupported node kind %d", n.Line, n.Kind)
}

func fromScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case tagNull:
		return Nil(), nil
	case tagBool:
		var b bool
		if err := n.Decode(&b); err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case tagInt:
		var i int64
		if err := n.Decode(&i); err != nil {
			return Value{}, err
		}
		return Int(i), nil
	case tagFloat:
		var f float64
		if err := n.Decode(&f); err != nil {
			return Value{}, err
		}
		return Float(f), nil
	case tagBinary:
		raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return Value{}, fmt.Errorf("yaml line %d: %w", n.Line, err)
		}
		return Bytes(raw), nil
	default:
		return String(n.Value), nil
	}
}

// MarshalYAML renders v as a YAML document. Strings that are not valid
// UTF-8 are emitted as !!binary.
func MarshalYAML(v Value) ([]byte, error) {
	return yaml.Marshal(ToNode(v))
}

// ToNode converts v into a yaml.Node tree.
func ToNode(v Value) *yaml.Node {
	switch v.kind {
	case KindBool:
		return scalar(tagBool, strconv.FormatBool(v.AsBool()))
	case KindInt:
		return scalar(tagInt, strconv.FormatInt(v.AsInt(), 10))
	case KindFloat:
		return scalar(tagFloat, formatFloat(v.AsFloat()))
	case KindString:
		if !utf8.Valid(v.str) {
			return scalar(tagBinary, base64.StdEncoding.EncodeToString(v.str))
		}
		return scalar(tagStr, string(v.str))
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.items {
			n.Content = append(n.Content, ToNode(item))
		}
		return n
	case KindDictionary:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, p := range v.pairs {
			n.Content = append(n.Content, scalar(tagStr, p.Key), ToNode(p.Value))
		}
		return n
	default:
		return scalar(tagNull, "null")
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
