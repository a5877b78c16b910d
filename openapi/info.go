package openapi

// Info provides metadata about the API, for clients and for documentation
// generation tools.
type Info struct {
	// Title of the API.
	Title string `yaml:"title"`
	// Summary is a short summary of the API.
	Summary *string `yaml:"summary,omitempty"`
	// Description of the API; CommonMark syntax may be used.
	Description *string `yaml:"description,omitempty"`
	// TermsOfService is a URL to the Terms of Service for the API.
	TermsOfService *string `yaml:"termsOfService,omitempty"`
	// Contact information for the exposed API.
	Contact *Contact `yaml:"contact,omitempty"`
	// License information for the exposed API.
	License *License `yaml:"license,omitempty"`
	// Version of this document (distinct from the OpenAPI Specification
	// version and from the API implementation version).
	Version string `yaml:"version"`
}

// Contact information for the exposed API.
type Contact struct {
	Name  *string `yaml:"name,omitempty"`
	URL   *string `yaml:"url,omitempty"`
	Email *string `yaml:"email,omitempty"`
}

// License information for the exposed API. Identifier (an SPDX expression)
// and URL are mutually exclusive per the OAS; both are kept verbatim when a
// document sets both, and precedence is left to the consumer.
type License struct {
	Name       string  `yaml:"name"`
	Identifier *string `yaml:"identifier,omitempty"`
	URL        *string `yaml:"url,omitempty"`
}
