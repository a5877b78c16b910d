package jsonschema

import "gopkg.in/yaml.v3"

// Format is the value of the `format` annotation keyword: either one of the
// well-known tags from JSON Schema Validation section 7.3 (extended by the
// OpenAPI spec) or, as a fallback, an arbitrary string kept verbatim.
type Format string

const (
	// Dates, times, and duration.
	FormatDateTime Format = "date-time"
	FormatDate     Format = "date"
	FormatTime     Format = "time"
	FormatDuration Format = "duration"

	// Email addresses.
	FormatEmail    Format = "email"
	FormatIdnEmail Format = "idn-email"

	// Hostnames.
	FormatHostname    Format = "hostname"
	FormatIdnHostname Format = "idn-hostname"

	// IP addresses.
	FormatIPv4 Format = "ipv4"
	FormatIPv6 Format = "ipv6"

	// Resource identifiers.
	FormatURI          Format = "uri"
	FormatURIReference Format = "uri-reference"
	FormatIRI          Format = "iri"
	FormatIRIReference Format = "iri-reference"
	FormatUUID         Format = "uuid"
	FormatURITemplate  Format = "uri-template"

	// JSON pointers.
	FormatJSONPointer         Format = "json-pointer"
	FormatRelativeJSONPointer Format = "relative-json-pointer"

	FormatRegex Format = "regex"

	// Commonly seen outside the specs.
	FormatBinary Format = "binary"
	FormatIP     Format = "ip"

	// OpenAPI spec extensions.
	FormatInt32    Format = "int32"
	FormatInt64    Format = "int64"
	FormatFloat    Format = "float"
	FormatDouble   Format = "double"
	FormatPassword Format = "password"
)

var knownFormats = map[Format]bool{
	FormatDateTime: true, FormatDate: true, FormatTime: true, FormatDuration: true,
	FormatEmail: true, FormatIdnEmail: true,
	FormatHostname: true, FormatIdnHostname: true,
	FormatIPv4: true, FormatIPv6: true,
	FormatURI: true, FormatURIReference: true, FormatIRI: true, FormatIRIReference: true,
	FormatUUID: true, FormatURITemplate: true,
	FormatJSONPointer: true, FormatRelativeJSONPointer: true,
	FormatRegex: true, FormatBinary: true, FormatIP: true,
	FormatInt32: true, FormatInt64: true, FormatFloat: true, FormatDouble: true,
	FormatPassword: true,
}

// Historical spellings mapped to their canonical tags. Matching is
// case-sensitive; anything that misses both tables stays an opaque string.
var formatAliases = map[string]Format{
	"full-date":    FormatDate,
	"full-time":    FormatTime,
	"partial-time": FormatTime,
	"url":          FormatURI,
}

// Known reports whether f is one of the recognized catalog tags.
func (f Format) Known() bool { return knownFormats[f] }

// UnmarshalYAML canonicalizes recognized tags and aliases, and keeps anything
// else verbatim.
func (f *Format) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if alias, ok := formatAliases[s]; ok {
		*f = alias
		return nil
	}
	*f = Format(s)
	return nil
}
