package openapi

import "github.com/speakeasy-api/oasdoc/jsonschema"

// Components holds the reusable object pools of the document. Entries have
// no effect on the API unless something outside the components object
// references them.
type Components struct {
	Schemas         map[string]*jsonschema.Schema         `yaml:"schemas,omitempty"`
	Responses       map[string]*Reference[Response]       `yaml:"responses,omitempty"`
	Parameters      map[string]*Reference[Parameter]      `yaml:"parameters,omitempty"`
	Examples        map[string]*Reference[Example]        `yaml:"examples,omitempty"`
	RequestBodies   map[string]*Reference[RequestBody]    `yaml:"requestBodies,omitempty"`
	Headers         map[string]*Reference[Header]         `yaml:"headers,omitempty"`
	SecuritySchemes map[string]*Reference[SecurityScheme] `yaml:"securitySchemes,omitempty"`
	Links           map[string]*Reference[Link]           `yaml:"links,omitempty"`
	Callbacks       map[string]*Reference[Callback]       `yaml:"callbacks,omitempty"`
	// PathItems are raw path items; PathItem carries its own in-band $ref
	// fields, so no Reference wrapper is needed.
	PathItems map[string]*PathItem `yaml:"pathItems,omitempty"`
}
