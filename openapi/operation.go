package openapi

// Operation describes a single API operation on a path.
type Operation struct {
	// Tags for logical grouping of operations.
	Tags []string `yaml:"tags,omitempty"`
	// Summary of what the operation does.
	Summary *string `yaml:"summary,omitempty"`
	// Description is a verbose explanation; CommonMark syntax may be used.
	Description *string `yaml:"description,omitempty"`
	// ExternalDocs is additional documentation for this operation.
	ExternalDocs *ExternalDocumentation `yaml:"externalDocs,omitempty"`
	// OperationID uniquely identifies the operation; case-sensitive.
	OperationID *string `yaml:"operationId,omitempty"`
	// Parameters applicable to this operation, merged over the path item's.
	Parameters []*Reference[Parameter] `yaml:"parameters,omitempty"`
	// RequestBody applicable to this operation.
	RequestBody *Reference[RequestBody] `yaml:"requestBody,omitempty"`
	// Responses as returned from executing this operation.
	Responses *Responses `yaml:"responses,omitempty"`
	// Callbacks maps identifiers to out-of-band callback definitions.
	Callbacks map[string]*Reference[Callback] `yaml:"callbacks,omitempty"`
	// Deprecated declares the operation should no longer be used.
	Deprecated bool `yaml:"deprecated,omitempty"`
	// Security overrides the root-level declaration; an empty slice removes
	// it.
	Security []SecurityRequirement `yaml:"security,omitempty"`
	// Servers overrides the path-item and root server arrays.
	Servers []Server `yaml:"servers,omitempty"`
}
