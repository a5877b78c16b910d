package openapi

import (
	"fmt"
	"regexp"
	"strings"
)

var lineRe = regexp.MustCompile(`line (\d+)`)

// FormatDecodeError turns a raw decode error into a user-facing message.
// yaml.v3 reports unmarshal failures as a multi-line blob; each underlying
// problem becomes one classified bullet with a location and, where known, a
// hint.
func FormatDecodeError(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("Failed to parse the specification.\n")

	for _, raw := range strings.Split(err.Error(), "\n") {
		line := strings.TrimSpace(raw)
		line = strings.TrimPrefix(line, "yaml: ")
		if line == "" || line == "unmarshal errors:" || strings.HasPrefix(line, "parsing specification:") && strings.HasSuffix(line, "unmarshal errors:") {
			continue
		}

		loc := deriveLocation(line)
		msg, hint := classifyAndHint(line)

		fmt.Fprintf(&b, "- %s\n", msg)
		if loc != "" {
			fmt.Fprintf(&b, "  Location: %s\n", loc)
		}
		if hint != "" {
			fmt.Fprintf(&b, "  How to fix: %s\n", hint)
		}
	}

	return b.String()
}

func deriveLocation(s string) string {
	if m := lineRe.FindStringSubmatch(s); len(m) == 2 {
		return "line " + m[1]
	}
	return ""
}

func classifyAndHint(s string) (msg, hint string) {
	switch {
	case strings.Contains(s, "cannot unmarshal"):
		return "A field holds the wrong kind of value: " + s,
			"Compare the field against its OpenAPI 3.1 type (string vs. mapping vs. sequence)."
	case strings.Contains(s, "unsupported OpenAPI version"):
		return s, "Only OpenAPI 3.1.0 documents are supported."
	case strings.Contains(s, "unknown parameter location") ||
		strings.Contains(s, "unknown parameter style") ||
		strings.Contains(s, "unknown security scheme") ||
		strings.Contains(s, "unknown header style") ||
		strings.Contains(s, "unknown schema type"):
		return s, "The value must be one of the members the OAS defines for this field."
	case strings.Contains(s, "missing required field"):
		return s, "Add the field; openapi, info.title and info.version are mandatory."
	case strings.Contains(s, "did not find expected") ||
		strings.Contains(s, "could not find") ||
		strings.Contains(s, "mapping values are not allowed"):
		return "The document is not well-formed YAML/JSON: " + s,
			"Check indentation and quoting around the reported line."
	default:
		return s, ""
	}
}
