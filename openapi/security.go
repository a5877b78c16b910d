package openapi

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SecuritySchemeType is the `type` field of a security scheme.
type SecuritySchemeType string

const (
	SchemeAPIKey        SecuritySchemeType = "apiKey"
	SchemeHTTP          SecuritySchemeType = "http"
	SchemeMutualTLS     SecuritySchemeType = "mutualTLS"
	SchemeOAuth2        SecuritySchemeType = "oauth2"
	SchemeOpenIDConnect SecuritySchemeType = "openIdConnect"
)

// UnmarshalYAML validates membership in the closed scheme type set.
func (t *SecuritySchemeType) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch st := SecuritySchemeType(s); st {
	case SchemeAPIKey, SchemeHTTP, SchemeMutualTLS, SchemeOAuth2, SchemeOpenIDConnect:
		*t = st
		return nil
	default:
		return fmt.Errorf("unknown security scheme type %q", s)
	}
}

// SecuritySchemeIn is the location of an API key.
type SecuritySchemeIn string

const (
	SchemeInQuery  SecuritySchemeIn = "query"
	SchemeInHeader SecuritySchemeIn = "header"
	SchemeInCookie SecuritySchemeIn = "cookie"
)

// UnmarshalYAML validates membership in the closed location set.
func (i *SecuritySchemeIn) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch in := SecuritySchemeIn(s); in {
	case SchemeInQuery, SchemeInHeader, SchemeInCookie:
		*i = in
		return nil
	default:
		return fmt.Errorf("unknown security scheme location %q", s)
	}
}

// SecurityScheme defines a security scheme usable by the operations: HTTP
// auth, an API key, mutual TLS, OAuth2 flows, or OpenID Connect discovery.
// Which optional fields are required depends on Type; that cross-field rule
// is left to consumers.
type SecurityScheme struct {
	Type        SecuritySchemeType `yaml:"type"`
	Description *string            `yaml:"description,omitempty"`
	// Name of the header, query or cookie parameter; apiKey only.
	Name *string `yaml:"name,omitempty"`
	// In is the location of the API key; apiKey only.
	In *SecuritySchemeIn `yaml:"in,omitempty"`
	// Scheme is the HTTP Authorization scheme; http only.
	Scheme *string `yaml:"scheme,omitempty"`
	// BearerFormat hints how the bearer token is formatted; http bearer
	// only.
	BearerFormat *string `yaml:"bearerFormat,omitempty"`
	// Flows configures the supported OAuth flows; oauth2 only.
	Flows *OAuthFlows `yaml:"flows,omitempty"`
	// OpenIDConnectURL discovers OAuth2 configuration values; openIdConnect
	// only.
	OpenIDConnectURL *string `yaml:"openIdConnectUrl,omitempty"`
}

// OAuthFlows configures the supported OAuth flow types.
type OAuthFlows struct {
	Implicit *OAuthFlow `yaml:"implicit,omitempty"`
	Password *OAuthFlow `yaml:"password,omitempty"`
	// ClientCredentials was called `application` in OpenAPI 2.0.
	ClientCredentials *OAuthFlow `yaml:"clientCredentials,omitempty"`
	// AuthorizationCode was called `accessCode` in OpenAPI 2.0.
	AuthorizationCode *OAuthFlow `yaml:"authorizationCode,omitempty"`
}

// OAuthFlow holds the configuration details for one supported flow.
type OAuthFlow struct {
	// AuthorizationURL applies to the implicit and authorizationCode flows.
	AuthorizationURL string `yaml:"authorizationUrl,omitempty"`
	// TokenURL applies to all flows except implicit.
	TokenURL string `yaml:"tokenUrl,omitempty"`
	// RefreshURL obtains refresh tokens.
	RefreshURL *string `yaml:"refreshUrl,omitempty"`
	// Scopes maps available scope names to short descriptions; may be
	// empty.
	Scopes map[string]string `yaml:"scopes"`
}
