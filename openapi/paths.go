package openapi

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// PathItem describes the operations available on a single path. It may be
// empty due to ACL constraints. Unlike other objects, a PathItem carries the
// reference fields in-band: a `$ref` here coexists with the rest of the
// fields rather than selecting a separate variant.
type PathItem struct {
	// Ref allows a referenced definition of this path item. Behavior when a
	// field appears both here and in the referenced object is undefined by
	// the OAS.
	Ref         *string `yaml:"$ref,omitempty"`
	Summary     *string `yaml:"summary,omitempty"`
	Description *string `yaml:"description,omitempty"`

	// One operation per HTTP method.
	Get     *Operation `yaml:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty"`
	Trace   *Operation `yaml:"trace,omitempty"`

	// Servers overrides the server array for all operations in this path.
	Servers []Server `yaml:"servers,omitempty"`
	// Parameters apply to all operations under this path; operations can
	// override but not remove them.
	Parameters []*Reference[Parameter] `yaml:"parameters,omitempty"`
}

// Callback maps runtime expressions to the path item describing the request
// the API provider may initiate. The keys are the expressions themselves, so
// the map is flattened at the top level of the object.
type Callback struct {
	Expressions map[string]*PathItem
}

// UnmarshalYAML collects every key of the mapping as a runtime expression.
func (c *Callback) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("callback must be a mapping")
	}
	c.Expressions = make(map[string]*PathItem, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		item := new(PathItem)
		if err := node.Content[i+1].Decode(item); err != nil {
			return err
		}
		c.Expressions[node.Content[i].Value] = item
	}
	return nil
}

// MarshalYAML flattens the expressions back out, in sorted order for
// deterministic output.
func (c *Callback) MarshalYAML() (interface{}, error) {
	keys := make([]string, 0, len(c.Expressions))
	for key := range c.Expressions {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, key := range keys {
		var item yaml.Node
		if err := item.Encode(c.Expressions[key]); err != nil {
			return nil, err
		}
		out.Content = append(out.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, &item)
	}
	return out, nil
}
