package openapi

import (
	"fmt"
	"net/url"

	"gopkg.in/yaml.v3"
)

// Reference is either a pointer to a named component or an inlined value of
// type T. Both variants share one flat namespace on the wire, so the decoder
// must decide the variant before touching any field: presence of the `$ref`
// marker key selects the pointer variant, its absence selects the inline one.
// Probing the marker first (rather than "try T, fall back to pointer") keeps
// a T that happens to contain a summary or description field from being
// misclassified.
//
// Resolving a pointer to its target is deliberately not done here; that is
// the caller's job, given a document-wide symbol table.
type Reference[T any] struct {
	// Ref is the reference URI. Non-empty exactly when this is the pointer
	// variant.
	Ref string
	// Summary overrides the referenced component's summary, where the target
	// type allows one.
	Summary *string
	// Description overrides the referenced component's description, where
	// the target type allows one.
	Description *string

	// Object is the inlined value. Non-nil exactly when this is the inline
	// variant.
	Object *T
}

// IsReference reports whether r is the pointer variant.
func (r *Reference[T]) IsReference() bool { return r.Ref != "" }

// referenceFields is the wire shape of the pointer variant.
type referenceFields struct {
	Ref         string  `yaml:"$ref"`
	Summary     *string `yaml:"summary,omitempty"`
	Description *string `yaml:"description,omitempty"`
}

// UnmarshalYAML probes the mapping for the `$ref` marker key and dispatches
// to the selected variant's decoder.
func (r *Reference[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && hasKey(node, "$ref") {
		var fields referenceFields
		if err := node.Decode(&fields); err != nil {
			return err
		}
		if fields.Ref == "" {
			return fmt.Errorf("$ref must not be empty")
		}
		if _, err := url.Parse(fields.Ref); err != nil {
			return fmt.Errorf("$ref %q is not a valid URI reference: %w", fields.Ref, err)
		}
		r.Ref = fields.Ref
		r.Summary = fields.Summary
		r.Description = fields.Description
		r.Object = nil
		return nil
	}

	obj := new(T)
	if err := node.Decode(obj); err != nil {
		return err
	}
	r.Ref = ""
	r.Summary = nil
	r.Description = nil
	r.Object = obj
	return nil
}

// MarshalYAML flattens whichever variant is set at the top level; a pointer
// never gets a wrapper key and an inline value never gets a marker.
func (r *Reference[T]) MarshalYAML() (interface{}, error) {
	if r.IsReference() {
		return referenceFields{Ref: r.Ref, Summary: r.Summary, Description: r.Description}, nil
	}
	return r.Object, nil
}

// hasKey reports whether the mapping node carries the given top-level key.
func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
