package openapi

// Server represents a target host. The URL supports server variables in
// {brackets} and may be relative to where the document is served.
type Server struct {
	URL         string  `yaml:"url"`
	Description *string `yaml:"description,omitempty"`
	// Variables maps a variable name to its value for substitution in the
	// URL template.
	Variables map[string]ServerVariable `yaml:"variables,omitempty"`
}

// ServerVariable is a single server URL template substitution.
type ServerVariable struct {
	// Enum limits substitution to a fixed set; must not be empty when set.
	Enum []string `yaml:"enum,omitempty"`
	// Default is sent when no alternate value is supplied. Unlike schema
	// defaults this one is required.
	Default     string  `yaml:"default"`
	Description *string `yaml:"description,omitempty"`
}
