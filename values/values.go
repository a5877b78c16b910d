// Package values models arbitrary JSON-compatible values as a tagged union.
//
// OpenAPI documents embed free-form literals in several places (examples,
// defaults, extension properties). This package keeps those literals typed
// without forcing them through interface{} maps, and preserves both scalar
// literals and mapping key order across a decode/encode round trip.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/speakeasy-api/openapi/sequencedmap"
	"gopkg.in/yaml.v3"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is a single JSON-compatible value. Exactly the fields implied by Kind
// are meaningful; the rest stay zero. Numbers keep their raw literal text so
// that values like 0.300 or 9007199254740993 survive a round trip untouched.
type Value struct {
	Kind Kind

	// Bool holds the value when Kind is KindBool.
	Bool bool
	// Scalar holds the raw literal when Kind is KindNumber or KindString.
	Scalar string
	// Sequence holds the elements when Kind is KindSequence.
	Sequence []*Value
	// Mapping holds the entries, in document order, when Kind is KindMapping.
	Mapping *sequencedmap.Map[string, *Value]
}

// NewNull returns the null value.
func NewNull() *Value { return &Value{Kind: KindNull} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// NewNumber returns a numeric value from its literal text.
func NewNumber(lit string) *Value { return &Value{Kind: KindNumber, Scalar: lit} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{Kind: KindString, Scalar: s} }

// NewSequence returns a sequence value of the given elements.
func NewSequence(elems ...*Value) *Value {
	return &Value{Kind: KindSequence, Sequence: elems}
}

// NewMapping returns an empty mapping value.
func NewMapping() *Value {
	return &Value{Kind: KindMapping, Mapping: sequencedmap.New[string, *Value]()}
}

// Set adds or replaces an entry on a mapping value and returns the value for
// chaining. It panics if v is not a mapping.
func (v *Value) Set(key string, elem *Value) *Value {
	if v.Kind != KindMapping {
		panic("values: Set on non-mapping value")
	}
	v.Mapping.Set(key, elem)
	return v
}

// Equal reports deep equality. It is also picked up by go-cmp in tests.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindNumber, KindString:
		return v.Scalar == o.Scalar
	case KindSequence:
		if len(v.Sequence) != len(o.Sequence) {
			return false
		}
		for i := range v.Sequence {
			if !v.Sequence[i].Equal(o.Sequence[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if v.Mapping.Len() != o.Mapping.Len() {
			return false
		}
		for key, elem := range v.Mapping.All() {
			other, ok := o.Mapping.Get(key)
			if !ok || !elem.Equal(other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// UnmarshalYAML decodes any YAML (or JSON, which yaml.v3 parses as a subset)
// node into the matching variant.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			v.Kind = KindNull
			return nil
		}
		return v.UnmarshalYAML(node.Content[0])
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			v.Kind = KindNull
		case "!!bool":
			v.Kind = KindBool
			return node.Decode(&v.Bool)
		case "!!int", "!!float":
			v.Kind = KindNumber
			v.Scalar = node.Value
		default:
			// Strings, timestamps and anything custom-tagged keep their text.
			v.Kind = KindString
			v.Scalar = node.Value
		}
		return nil
	case yaml.SequenceNode:
		v.Kind = KindSequence
		v.Sequence = make([]*Value, 0, len(node.Content))
		for _, c := range node.Content {
			elem := new(Value)
			if err := elem.UnmarshalYAML(c); err != nil {
				return err
			}
			v.Sequence = append(v.Sequence, elem)
		}
		return nil
	case yaml.MappingNode:
		v.Kind = KindMapping
		v.Mapping = sequencedmap.New[string, *Value]()
		for i := 0; i+1 < len(node.Content); i += 2 {
			elem := new(Value)
			if err := elem.UnmarshalYAML(node.Content[i+1]); err != nil {
				return err
			}
			v.Mapping.Set(node.Content[i].Value, elem)
		}
		return nil
	default:
		return fmt.Errorf("values: cannot decode node kind %d", node.Kind)
	}
}

// MarshalYAML encodes the value back into a yaml.Node tree.
func (v *Value) MarshalYAML() (interface{}, error) {
	return v.node()
}

func (v *Value) node() (*yaml.Node, error) {
	switch v.Kind {
	case KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v.Bool)}, nil
	case KindNumber:
		// YAML integer spellings include hex, octal and underscored forms;
		// base-0 parsing (after stripping separators) recognizes them all so
		// the literal keeps its integer tag.
		tag := "!!float"
		plain := strings.ReplaceAll(v.Scalar, "_", "")
		if _, err := strconv.ParseInt(plain, 0, 64); err == nil {
			tag = "!!int"
		} else if _, err := strconv.ParseUint(plain, 0, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.Scalar}, nil
	case KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Scalar}, nil
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range v.Sequence {
			c, err := elem.node()
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, c)
		}
		return n, nil
	case KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if v.Mapping == nil {
			return n, nil
		}
		for key, elem := range v.Mapping.All() {
			c, err := elem.node()
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, c)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("values: cannot encode kind %v", v.Kind)
	}
}
