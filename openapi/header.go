package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/speakeasy-api/oasdoc/jsonschema"
	"github.com/speakeasy-api/oasdoc/values"
)

// HeaderStyle is the only serialization style valid for headers.
type HeaderStyle string

// HeaderSimple is the RFC 6570 simple style.
const HeaderSimple HeaderStyle = "simple"

// UnmarshalYAML validates the single-member style set.
func (h *HeaderStyle) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if HeaderStyle(s) != HeaderSimple {
		return fmt.Errorf("unknown header style %q", s)
	}
	*h = HeaderSimple
	return nil
}

// Header follows the structure of Parameter, except the name is given by the
// enclosing headers map and the location is implicitly "header".
type Header struct {
	Description *string            `yaml:"description,omitempty"`
	Required    bool               `yaml:"required,omitempty"`
	Deprecated  bool               `yaml:"deprecated,omitempty"`
	Style       *HeaderStyle       `yaml:"style,omitempty"`
	Schema      *jsonschema.Schema `yaml:"schema,omitempty"`
	// Example and Examples are mutually exclusive; both kept when present.
	Example  *values.Value                  `yaml:"example,omitempty"`
	Examples map[string]*Reference[Example] `yaml:"examples,omitempty"`
	Content  map[string]MediaType           `yaml:"content,omitempty"`
}
