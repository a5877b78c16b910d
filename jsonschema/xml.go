package jsonschema

// XML allows fine-tuning the XML representation of a property schema. It has
// no effect on root schemas.
type XML struct {
	// Name replaces the element/attribute name used for the property.
	Name *string `yaml:"name,omitempty"`
	// Namespace is the absolute URI of the namespace definition.
	Namespace *string `yaml:"namespace,omitempty"`
	// Prefix is used for the name.
	Prefix *string `yaml:"prefix,omitempty"`
	// Attribute declares the property as an XML attribute instead of an
	// element. Defaults to false.
	Attribute bool `yaml:"attribute,omitempty"`
	// Wrapped signifies whether an array is wrapped
	// (<books><book/></books>) or unwrapped (<book/>). Array definitions
	// only. Defaults to false.
	Wrapped bool `yaml:"wrapped,omitempty"`
}
