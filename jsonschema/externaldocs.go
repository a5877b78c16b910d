package jsonschema

// ExternalDocumentation references an external resource for extended
// documentation. It appears both on Schema objects and on several OpenAPI
// objects (root, operations, tags).
type ExternalDocumentation struct {
	// Description of the target documentation. CommonMark syntax may be used.
	Description *string `yaml:"description,omitempty"`
	// URL for the target documentation.
	URL string `yaml:"url"`
}
