// Package codegen turns a parsed OpenAPI document into target-language
// source. At the moment only the module documentation header is rendered;
// paths, operations and components are not emitted yet.
package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/speakeasy-api/oasdoc/openapi"
)

// Generator renders a specification through a target language.
type Generator struct {
	lang Language
	log  Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger replaces the generator's logger.
func WithLogger(l Logger) Option {
	return func(g *Generator) { g.log = l }
}

// WithLogLevel installs the default stderr logger at the given level.
func WithLogLevel(level LogLevel) Option {
	return func(g *Generator) { g.log = NewLogger(level, nil) }
}

// New creates a Generator for the given target language.
func New(lang Language, opts ...Option) *Generator {
	g := &Generator{lang: lang, log: NopLogger()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteTo writes the rendered output for spec to w and returns the
// non-fatal warnings collected along the way. Writes to w are not buffered;
// wrap w in a bufio.Writer for anything bigger than a test.
func (g *Generator) WriteTo(spec *openapi.Spec, w io.Writer) ([]string, error) {
	log := g.log.With(map[string]any{"title": spec.Info.Title, "lang": g.lang.Name()})
	log.Debugf("rendering module docs")

	docs, warnings := ModuleDocs(spec)
	if err := g.lang.ModuleDocs(docs, w); err != nil {
		return nil, fmt.Errorf("writing module docs: %w", err)
	}

	for _, warning := range warnings {
		log.Warnf("%s", warning)
	}
	return warnings, nil
}

// ModuleDocs synthesizes the documentation header for spec, roughly:
//
//	${info.title}
//
//	${info.description || info.summary}.
//
//	${external_docs.description}: <${external_docs.url}>.
//
//	Version: ${info.version}
//	Contact: ${info.contact.name} <${info.contact.email}>
//	License: ${info.license.name} (${info.license.identifier}) ${info.license.url}
//	Terms of Service: ${info.terms_of_service}
//
// It also returns the warnings for root fields the generator cannot render
// yet. The pass is deterministic: the same spec always yields byte-identical
// text and the same warning list.
func ModuleDocs(spec *openapi.Spec) (string, []string) {
	info := &spec.Info

	var docs strings.Builder
	docs.WriteString(info.Title)

	desc := info.Description
	if desc == nil {
		desc = info.Summary
	}
	if desc != nil {
		docs.WriteString("\n\n")
		docs.WriteString(*desc)
		if !strings.HasSuffix(*desc, ".") {
			docs.WriteByte('.')
		}
	}

	if ed := spec.ExternalDocs; ed != nil {
		docs.WriteString("\n\n")
		lead := "More documentation at"
		if ed.Description != nil {
			// Strip the trailing period so the line never doubles up on
			// punctuation.
			lead = strings.TrimSuffix(*ed.Description, ".")
		}
		fmt.Fprintf(&docs, "%s: <%s>.", lead, ed.URL)
	}

	docs.WriteString("\n\nVersion: ")
	docs.WriteString(info.Version)

	if contact := info.Contact; contact != nil {
		// One contact line for any subset of {name, email}; an empty
		// contact object produces nothing.
		switch {
		case contact.Name != nil && contact.Email != nil:
			fmt.Fprintf(&docs, "\nContact: %s <%s>", *contact.Name, *contact.Email)
		case contact.Name != nil:
			fmt.Fprintf(&docs, "\nContact: %s", *contact.Name)
		case contact.Email != nil:
			fmt.Fprintf(&docs, "\nContact: %s", *contact.Email)
		}
	}

	if license := info.License; license != nil {
		docs.WriteString("\nLicense: ")
		docs.WriteString(license.Name)
		if license.Identifier != nil {
			fmt.Fprintf(&docs, " (%s)", *license.Identifier)
		}
		if license.URL != nil {
			docs.WriteByte(' ')
			docs.WriteString(*license.URL)
		}
	}

	if tos := info.TermsOfService; tos != nil {
		docs.WriteString("\nTerms of Service: ")
		docs.WriteString(*tos)
	}

	// The three root checks are independent; any subset may fire, always in
	// this order.
	var warnings []string
	if spec.JSONSchemaDialect != nil {
		warnings = append(warnings, "$root.jsonSchemaDialect not supported")
	}
	if len(spec.Webhooks) != 0 {
		warnings = append(warnings, "$root.webhooks not supported")
	}
	if len(spec.Security) != 0 {
		warnings = append(warnings, "$root.security not supported")
	}

	return docs.String(), warnings
}
