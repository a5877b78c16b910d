// Package openapi models an OpenAPI 3.1 document as a typed in-memory tree
// and reads it from JSON or YAML files.
//
// Implements:
//
//	OpenAPI                 version 3.1.0
//	JSON Schema             draft-bhutton-json-schema-00 (via package jsonschema)
//
// The model is a faithful structural decode/encode: it asserts wire shape
// (required fields, closed enums) but applies no cross-field rules, resolves
// no references, and validates no instances. The whole aggregate is built
// once by the codec, treated as immutable by consumers, and dropped after a
// single processing pass.
package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/speakeasy-api/oasdoc/jsonschema"
)

// ExternalDocumentation is shared with schema objects; see package
// jsonschema.
type ExternalDocumentation = jsonschema.ExternalDocumentation

// Version is the OpenAPI Specification version tag. Only 3.1.0 is supported.
type Version string

// Version310 is OpenAPI Specification version 3.1.0.
const Version310 Version = "3.1.0"

// UnmarshalYAML rejects any version this model does not implement.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if Version(s) != Version310 {
		return fmt.Errorf("unsupported OpenAPI version %q (only %s is supported)", s, Version310)
	}
	*v = Version310
	return nil
}

// Paths holds the relative endpoint paths (which must begin with a forward
// slash) and their operations.
type Paths map[string]*PathItem

// SecurityRequirement lists the security schemes required to execute an
// operation, by component name. Multiple schemes in one requirement must all
// be satisfied; multiple requirements in a list are alternatives.
type SecurityRequirement map[string][]string

// Spec is the root object of an OpenAPI document.
type Spec struct {
	// OpenAPI is the specification version number the document uses. Not
	// related to Info.Version.
	OpenAPI Version `yaml:"openapi"`
	// Info provides metadata about the API.
	Info Info `yaml:"info"`
	// JSONSchemaDialect is the default `$schema` for Schema objects in this
	// document. Must be a URI.
	JSONSchemaDialect *string `yaml:"jsonSchemaDialect,omitempty"`
	// Servers provide connectivity information to target servers.
	Servers []Server `yaml:"servers,omitempty"`
	// Paths holds the available paths and operations.
	Paths Paths `yaml:"paths,omitempty"`
	// Webhooks describes requests initiated by the API provider rather than
	// by an API call; keys are arbitrary unique names.
	Webhooks map[string]*PathItem `yaml:"webhooks,omitempty"`
	// Components holds the reusable object pools.
	Components *Components `yaml:"components,omitempty"`
	// Security declares which mechanisms can be used across the API.
	Security []SecurityRequirement `yaml:"security,omitempty"`
	// Tags used by the document, with metadata; order is meaningful.
	Tags []Tag `yaml:"tags,omitempty"`
	// ExternalDocs is additional external documentation.
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
}

// Validate checks the required root fields the declarative decode cannot
// enforce on its own. It does not recurse into components or paths.
func (s *Spec) Validate() error {
	if s.OpenAPI == "" {
		return fmt.Errorf("missing required field openapi")
	}
	if s.Info.Title == "" {
		return fmt.Errorf("missing required field info.title")
	}
	if s.Info.Version == "" {
		return fmt.Errorf("missing required field info.version")
	}
	return nil
}
