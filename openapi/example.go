package openapi

import "github.com/speakeasy-api/oasdoc/values"

// Example carries a literal (or externally referenced) example value,
// expected to be compatible with the schema of its associated value.
type Example struct {
	Summary     *string `yaml:"summary,omitempty"`
	Description *string `yaml:"description,omitempty"`
	// Value is the embedded literal example. Mutually exclusive with
	// ExternalValue per the OAS; both are kept verbatim when a document
	// sets both.
	Value *values.Value `yaml:"value,omitempty"`
	// ExternalValue is a URI pointing to the literal example.
	ExternalValue string `yaml:"externalValue,omitempty"`
}
