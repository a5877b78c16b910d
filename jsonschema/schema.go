// Package jsonschema models a JSON Schema node as used by OpenAPI 3.1.
//
// It implements the draft 2020-12 dialect (draft-bhutton-json-schema-00 and
// its validation companion) plus the OpenAPI schema extensions
// (discriminator, xml, externalDocs, the deprecated singular example).
//
// A Schema is a faithful structural decode/encode of the keyword families; it
// performs no instance validation and never resolves `$ref`. Every child
// schema is exclusively owned by its parent: the value is a tree, and `$ref`
// is the only reuse mechanism, resolved (if at all) at the document level.
package jsonschema

import "github.com/speakeasy-api/oasdoc/values"

// Schema is a single schema object. Nil pointers and empty collections mean
// the keyword is absent, which carries the keyword's defined omission
// semantics (usually "no constraint").
type Schema struct {
	// Identity keywords (JSON Schema core section 8).

	// Dialect is the `$schema` keyword, a URI identifying the dialect this
	// schema is written for.
	Dialect *string `yaml:"$schema,omitempty"`
	// ID is the `$id` keyword, the canonical URI of this schema resource.
	ID *string `yaml:"$id,omitempty"`
	// Ref is the in-band `$ref` applicator keyword. It is modeled, never
	// resolved here.
	Ref *string `yaml:"$ref,omitempty"`
	// Comment reserves a location for notes from schema authors; it must not
	// be shown to end users.
	Comment *string `yaml:"$comment,omitempty"`

	// Logical composition (core section 10.2.1). The sequences are ordered.
	AllOf []*Schema `yaml:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty"`
	Not   *Schema   `yaml:"not,omitempty"`

	// Conditional composition (core section 10.2.2).
	If               *Schema            `yaml:"if,omitempty"`
	Then             *Schema            `yaml:"then,omitempty"`
	Else             *Schema            `yaml:"else,omitempty"`
	DependentSchemas map[string]*Schema `yaml:"dependentSchemas,omitempty"`

	// Applicators for arrays (core section 10.3.1). PrefixItems is
	// positional; Items applies beyond the prefix.
	PrefixItems []*Schema `yaml:"prefixItems,omitempty"`
	Items       *Schema   `yaml:"items,omitempty"`
	Contains    *Schema   `yaml:"contains,omitempty"`

	// Applicators for objects (core section 10.3.2).
	Properties           map[string]*Schema `yaml:"properties,omitempty"`
	PatternProperties    map[string]*Schema `yaml:"patternProperties,omitempty"`
	AdditionalProperties *Schema            `yaml:"additionalProperties,omitempty"`
	PropertyNames        *Schema            `yaml:"propertyNames,omitempty"`

	// Unevaluated locations (core section 11); semantically evaluated last.
	UnevaluatedItems      *Schema `yaml:"unevaluatedItems,omitempty"`
	UnevaluatedProperties *Schema `yaml:"unevaluatedProperties,omitempty"`

	// Assertions for any instance type (validation section 6.1).
	Type  TypeSet  `yaml:"type,omitempty"`
	Enum  []string `yaml:"enum,omitempty"`
	Const *string  `yaml:"const,omitempty"`

	// Numeric assertions (validation section 6.2).
	MultipleOf       *float64 `yaml:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty"`
	ExclusiveMaximum *float64 `yaml:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty"`
	ExclusiveMinimum *float64 `yaml:"exclusiveMinimum,omitempty"`

	// String assertions (validation section 6.3).
	MaxLength *int64  `yaml:"maxLength,omitempty"`
	MinLength *int64  `yaml:"minLength,omitempty"`
	Pattern   *string `yaml:"pattern,omitempty"`

	// Array assertions (validation section 6.4).
	MaxItems    *int64 `yaml:"maxItems,omitempty"`
	MinItems    *int64 `yaml:"minItems,omitempty"`
	UniqueItems bool   `yaml:"uniqueItems,omitempty"`
	MaxContains *int64 `yaml:"maxContains,omitempty"`
	MinContains *int64 `yaml:"minContains,omitempty"`

	// Object assertions (validation section 6.5).
	MaxProperties     *int64              `yaml:"maxProperties,omitempty"`
	MinProperties     *int64              `yaml:"minProperties,omitempty"`
	Required          []string            `yaml:"required,omitempty"`
	DependentRequired map[string][]string `yaml:"dependentRequired,omitempty"`

	// Semantic format (validation section 7).
	Format *Format `yaml:"format,omitempty"`

	// String-encoded data (validation section 8).
	ContentEncoding  *string `yaml:"contentEncoding,omitempty"`
	ContentMediaType *string `yaml:"contentMediaType,omitempty"`
	ContentSchema    *Schema `yaml:"contentSchema,omitempty"`

	// Meta-data annotations (validation section 9).
	Title       *string         `yaml:"title,omitempty"`
	Description *string         `yaml:"description,omitempty"`
	Default     *values.Value   `yaml:"default,omitempty"`
	Deprecated  bool            `yaml:"deprecated,omitempty"`
	ReadOnly    bool            `yaml:"readOnly,omitempty"`
	WriteOnly   bool            `yaml:"writeOnly,omitempty"`
	Examples    []*values.Value `yaml:"examples,omitempty"`

	// OpenAPI spec extensions.
	Discriminator *Discriminator         `yaml:"discriminator,omitempty"`
	XML           *XML                   `yaml:"xml,omitempty"`
	ExternalDocs  *ExternalDocumentation `yaml:"externalDocs,omitempty"`
	// Example is deprecated in favor of the examples keyword but still
	// common in the wild.
	Example *values.Value `yaml:"example,omitempty"`

	// Extensions collects every top-level key not claimed by a field above.
	// Unrecognized keys are never a decode error; later JSON Schema or
	// OpenAPI revisions land here.
	Extensions map[string]*values.Value `yaml:",inline"`
}

// IsRef reports whether the schema is wholly a reference. Note this is the
// in-band `$ref` keyword: a `$ref`-bearing schema may still carry sibling
// keywords under the 2020-12 dialect, and they are all preserved.
func (s *Schema) IsRef() bool { return s.Ref != nil }
