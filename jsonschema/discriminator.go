package jsonschema

// Discriminator adds support for polymorphism: it names the property whose
// value selects which of the composite subschemas describes the payload.
// Legal only alongside oneOf, anyOf or allOf.
type Discriminator struct {
	// PropertyName is the payload property holding the discriminator value.
	PropertyName string `yaml:"propertyName"`
	// Mapping maps payload values to schema names or references.
	Mapping map[string]string `yaml:"mapping,omitempty"`
}
