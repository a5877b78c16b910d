package openapi

import (
	"github.com/speakeasy-api/oasdoc/jsonschema"
	"github.com/speakeasy-api/oasdoc/values"
)

// RequestBody describes a single request body.
type RequestBody struct {
	Description *string `yaml:"description,omitempty"`
	// Content keys are media types or media type ranges; the most specific
	// key wins for requests matching several.
	Content map[string]MediaType `yaml:"content"`
	// Required defaults to false.
	Required bool `yaml:"required,omitempty"`
}

// MediaType provides schema and examples for the media type identified by
// its key in the enclosing content map.
type MediaType struct {
	// Schema defines the content of the request, response, or parameter.
	Schema *jsonschema.Schema `yaml:"schema,omitempty"`
	// Example and Examples are mutually exclusive; both kept when present.
	Example  *values.Value                  `yaml:"example,omitempty"`
	Examples map[string]*Reference[Example] `yaml:"examples,omitempty"`
	// Encoding maps property names to their encoding information; only
	// meaningful for multipart and form-urlencoded request bodies.
	Encoding map[string]Encoding `yaml:"encoding,omitempty"`
}

// Encoding is a single encoding definition applied to a single schema
// property.
type Encoding struct {
	// ContentType for the property; a specific type, a wildcard, or a
	// comma-separated list.
	ContentType *string `yaml:"contentType,omitempty"`
	// Headers provides additional information as headers, for example
	// Content-Disposition. Multipart bodies only.
	Headers map[string]*Reference[Header] `yaml:"headers,omitempty"`
	// Style follows the same values as query parameters.
	Style *ParameterStyle `yaml:"style,omitempty"`
	// Explode mirrors Parameter.Explode.
	Explode bool `yaml:"explode,omitempty"`
	// AllowReserved mirrors Parameter.AllowReserved.
	AllowReserved bool `yaml:"allowReserved,omitempty"`
}
