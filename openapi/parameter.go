package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/speakeasy-api/oasdoc/jsonschema"
	"github.com/speakeasy-api/oasdoc/values"
)

// ParameterLocation is the `in` field of a parameter.
type ParameterLocation string

const (
	// InPath parameters are part of the operation's URL, as in
	// /items/{itemId}.
	InPath ParameterLocation = "path"
	// InQuery parameters are appended to the URL.
	InQuery ParameterLocation = "query"
	// InHeader parameters are custom request headers; names are
	// case-insensitive.
	InHeader ParameterLocation = "header"
	// InCookie parameters pass a specific cookie value.
	InCookie ParameterLocation = "cookie"
)

// UnmarshalYAML validates membership in the closed location set.
func (p *ParameterLocation) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch loc := ParameterLocation(s); loc {
	case InPath, InQuery, InHeader, InCookie:
		*p = loc
		return nil
	default:
		return fmt.Errorf("unknown parameter location %q", s)
	}
}

// ParameterStyle describes how a parameter value is serialized depending on
// its type; RFC 6570 styles plus the OpenAPI additions.
type ParameterStyle string

const (
	StyleMatrix         ParameterStyle = "matrix"
	StyleLabel          ParameterStyle = "label"
	StyleForm           ParameterStyle = "form"
	StyleSimple         ParameterStyle = "simple"
	StyleSpaceDelimited ParameterStyle = "spaceDelimited"
	StylePipeDelimited  ParameterStyle = "pipeDelimited"
	StyleDeepObject     ParameterStyle = "deepObject"
)

// UnmarshalYAML validates membership in the closed style set.
func (p *ParameterStyle) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch st := ParameterStyle(s); st {
	case StyleMatrix, StyleLabel, StyleForm, StyleSimple,
		StyleSpaceDelimited, StylePipeDelimited, StyleDeepObject:
		*p = st
		return nil
	default:
		return fmt.Errorf("unknown parameter style %q", s)
	}
}

// Parameter describes a single operation parameter, uniquely identified by
// the combination of name and location.
type Parameter struct {
	// Name of the parameter; case-sensitive. For path parameters it must
	// match a template expression in the path.
	Name string `yaml:"name"`
	// In is the location of the parameter.
	In ParameterLocation `yaml:"in"`
	// Description is a brief description; CommonMark syntax may be used.
	Description *string `yaml:"description,omitempty"`
	// Required must be true for path parameters; defaults to false
	// elsewhere.
	Required bool `yaml:"required,omitempty"`
	// Deprecated marks the parameter for removal.
	Deprecated bool `yaml:"deprecated,omitempty"`
	// AllowEmptyValue permits empty-valued query parameters. Use is
	// discouraged by the OAS.
	AllowEmptyValue bool `yaml:"allowEmptyValue,omitempty"`
	// Style selects the serialization; defaults depend on In.
	Style *ParameterStyle `yaml:"style,omitempty"`
	// Explode generates separate parameters per array value or map pair.
	Explode bool `yaml:"explode,omitempty"`
	// AllowReserved permits RFC 3986 reserved characters without
	// percent-encoding; query parameters only.
	AllowReserved bool `yaml:"allowReserved,omitempty"`
	// Schema defines the type used for the parameter.
	Schema *jsonschema.Schema `yaml:"schema,omitempty"`
	// Example of the parameter's potential value; mutually exclusive with
	// Examples, both kept when present.
	Example *values.Value `yaml:"example,omitempty"`
	// Examples of the parameter's potential value.
	Examples map[string]*Reference[Example] `yaml:"examples,omitempty"`
	// Content holds the representation for complex parameters; at most one
	// entry.
	Content map[string]MediaType `yaml:"content,omitempty"`
}
