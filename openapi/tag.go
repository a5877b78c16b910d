package openapi

// Tag adds metadata to a single tag used by operations. Declaring a Tag per
// used tag name is optional.
type Tag struct {
	Name         string                 `yaml:"name"`
	Description  *string                `yaml:"description,omitempty"`
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
}
