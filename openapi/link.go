package openapi

// RuntimeExpression defines a value based on information only available
// within an actual API call's HTTP message ($url, $method, $request.header.X
// and so on). Kept as its source text.
type RuntimeExpression = string

// Link represents a possible design-time link for a response: a known
// relationship and traversal mechanism to another operation. A linked
// operation is identified by either OperationRef or OperationID.
type Link struct {
	// OperationRef is a URI reference to an OAS operation; mutually
	// exclusive with OperationID.
	OperationRef *string `yaml:"operationRef,omitempty"`
	// OperationID names an existing operation; mutually exclusive with
	// OperationRef.
	OperationID *string `yaml:"operationId,omitempty"`
	// Parameters to pass to the linked operation; keys may be qualified as
	// {in}.{name}.
	Parameters map[string]RuntimeExpression `yaml:"parameters,omitempty"`
	// RequestBody to use when calling the target operation.
	RequestBody *RuntimeExpression `yaml:"requestBody,omitempty"`
	Description *string            `yaml:"description,omitempty"`
	// Server to be used by the target operation.
	Server *Server `yaml:"server,omitempty"`
}
