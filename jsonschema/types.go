package jsonschema

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SchemaType is a data type defined by JSON Schema Validation section 6.1.1.
type SchemaType string

const (
	TypeNull    SchemaType = "null"
	TypeBoolean SchemaType = "boolean"
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeNumber  SchemaType = "number"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
)

// ParseSchemaType validates s against the closed set of JSON Schema types.
func ParseSchemaType(s string) (SchemaType, error) {
	switch t := SchemaType(s); t {
	case TypeNull, TypeBoolean, TypeObject, TypeArray, TypeNumber, TypeString, TypeInteger:
		return t, nil
	default:
		return "", fmt.Errorf("unknown schema type %q", s)
	}
}

// TypeSet is the internal representation of the `type` keyword. The wire
// format allows either a bare scalar or a sequence of scalars; internally the
// set is always a sequence, in original order. Duplicates are kept verbatim
// rather than silently dropped.
type TypeSet []SchemaType

// Contains reports whether t includes st.
func (t TypeSet) Contains(st SchemaType) bool {
	for _, have := range t {
		if have == st {
			return true
		}
	}
	return false
}

// UnmarshalYAML accepts either one type or a sequence of types.
func (t *TypeSet) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		st, err := ParseSchemaType(s)
		if err != nil {
			return err
		}
		*t = TypeSet{st}
		return nil
	case yaml.SequenceNode:
		var ss []string
		if err := node.Decode(&ss); err != nil {
			return err
		}
		if len(ss) == 0 {
			return fmt.Errorf("type must not be an empty array")
		}
		set := make(TypeSet, 0, len(ss))
		for _, s := range ss {
			st, err := ParseSchemaType(s)
			if err != nil {
				return err
			}
			set = append(set, st)
		}
		*t = set
		return nil
	default:
		return fmt.Errorf("type must be a string or an array of strings")
	}
}

// MarshalYAML degrades a one-element set to the bare scalar form so that
// `type: string` does not come back as `type: [string]`.
func (t TypeSet) MarshalYAML() (interface{}, error) {
	if len(t) == 1 {
		return string(t[0]), nil
	}
	out := make([]string, len(t))
	for i, st := range t {
		out[i] = string(st)
	}
	return out, nil
}
