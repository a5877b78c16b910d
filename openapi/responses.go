package openapi

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Responses maps HTTP response codes to expected responses. `default` covers
// codes not declared individually; the remaining keys are status codes
// ("200") or wildcard classes ("2XX"), kept as strings for JSON/YAML
// compatibility. The code map shares the object's top level with the default
// entry, so the codec flattens it by hand.
type Responses struct {
	// Default documents responses other than the declared codes.
	Default *Reference[Response]
	// Codes maps a status code or wildcard class to its response.
	Codes map[string]*Reference[Response]
}

// UnmarshalYAML splits the `default` key off from the flattened code map.
func (r *Responses) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("responses must be a mapping")
	}
	r.Default = nil
	r.Codes = make(map[string]*Reference[Response], len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		ref := new(Reference[Response])
		if err := node.Content[i+1].Decode(ref); err != nil {
			return err
		}
		if key := node.Content[i].Value; key == "default" {
			r.Default = ref
		} else {
			r.Codes[key] = ref
		}
	}
	return nil
}

// MarshalYAML writes the default entry first, then the codes in sorted
// order for deterministic output.
func (r *Responses) MarshalYAML() (interface{}, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	appendEntry := func(key string, ref *Reference[Response]) error {
		var val yaml.Node
		if err := val.Encode(ref); err != nil {
			return err
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, &val)
		return nil
	}

	if r.Default != nil {
		if err := appendEntry("default", r.Default); err != nil {
			return nil, err
		}
	}
	codes := make([]string, 0, len(r.Codes))
	for code := range r.Codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if err := appendEntry(code, r.Codes[code]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Response describes a single response from an API operation, including
// design-time links to operations based on the response.
type Response struct {
	// Description of the response; required by the OAS.
	Description string `yaml:"description"`
	// Headers maps header names (case-insensitive) to definitions; a
	// Content-Type entry is ignored by consumers.
	Headers map[string]*Reference[Header] `yaml:"headers,omitempty"`
	// Content maps media types or ranges to potential payloads.
	Content map[string]MediaType `yaml:"content,omitempty"`
	// Links that can be followed from the response.
	Links map[string]*Reference[Link] `yaml:"links,omitempty"`
}
