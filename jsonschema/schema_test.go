package jsonschema

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func decodeSchema(t *testing.T, doc string) *Schema {
	t.Helper()
	s := new(Schema)
	if err := yaml.Unmarshal([]byte(doc), s); err != nil {
		t.Fatalf("decode schema: %v\n%s", err, doc)
	}
	return s
}

func roundTrip(t *testing.T, s *Schema) *Schema {
	t.Helper()
	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return decodeSchema(t, string(out))
}

func TestTypeScalarRoundTripsAsScalar(t *testing.T) {
	s := decodeSchema(t, "type: string\n")
	if len(s.Type) != 1 || s.Type[0] != TypeString {
		t.Fatalf("got type set %v, want [string]", s.Type)
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := strings.TrimSpace(string(out))
	if got != "type: string" {
		t.Errorf("one-element type set must encode as the bare scalar, got %q", got)
	}
}

func TestTypeArrayKeepsOrderAndDuplicates(t *testing.T) {
	s := decodeSchema(t, "type: [string, \"null\", string]\n")
	want := TypeSet{TypeString, TypeNull, TypeString}
	if diff := cmp.Diff(want, s.Type); diff != "" {
		t.Fatalf("type set mismatch (-want +got):\n%s", diff)
	}

	again := roundTrip(t, s)
	if diff := cmp.Diff(s.Type, again.Type); diff != "" {
		t.Errorf("type set changed across round trip (-before +after):\n%s", diff)
	}
}

func TestTypeRejectsUnknownAndEmpty(t *testing.T) {
	var s Schema
	if err := yaml.Unmarshal([]byte("type: tuple\n"), &s); err == nil {
		t.Error("expected error for unknown type")
	}
	if err := yaml.Unmarshal([]byte("type: []\n"), &s); err == nil {
		t.Error("expected error for empty type array")
	}
}

func TestFormatAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"date-time", FormatDateTime},
		{"full-date", FormatDate},
		{"full-time", FormatTime},
		{"partial-time", FormatTime},
		{"url", FormatURI},
		{"int64", FormatInt64},
	}
	for _, tt := range tests {
		s := decodeSchema(t, "format: "+tt.in+"\n")
		if s.Format == nil || *s.Format != tt.want {
			t.Errorf("format %q: got %v, want %v", tt.in, s.Format, tt.want)
		}
		if !s.Format.Known() {
			t.Errorf("format %q should be a recognized tag", tt.in)
		}
	}
}

func TestFormatFallsBackToOpaqueString(t *testing.T) {
	s := decodeSchema(t, "format: chess-notation\n")
	if s.Format == nil || *s.Format != Format("chess-notation") {
		t.Fatalf("got %v, want verbatim fallback", s.Format)
	}
	if s.Format.Known() {
		t.Error("fallback format must not report as known")
	}

	again := roundTrip(t, s)
	if *again.Format != "chess-notation" {
		t.Errorf("opaque format changed across round trip: %v", *again.Format)
	}
}

func TestRecursiveApplicatorsDecode(t *testing.T) {
	s := decodeSchema(t, `
allOf:
  - type: object
    properties:
      id:
        type: integer
        format: int64
  - required: [id]
properties:
  nested:
    items:
      type: string
prefixItems:
  - type: number
  - type: string
if:
  properties:
    kind:
      const: dog
then:
  required: [barks]
dependentSchemas:
  credit:
    required: [billing]
`)
	if len(s.AllOf) != 2 {
		t.Fatalf("got %d allOf children, want 2", len(s.AllOf))
	}
	id := s.AllOf[0].Properties["id"]
	if id == nil || !id.Type.Contains(TypeInteger) || *id.Format != FormatInt64 {
		t.Errorf("allOf[0].properties.id decoded wrong: %+v", id)
	}
	if s.Properties["nested"].Items == nil || !s.Properties["nested"].Items.Type.Contains(TypeString) {
		t.Error("nested items schema missing")
	}
	if len(s.PrefixItems) != 2 {
		t.Errorf("got %d prefixItems, want 2", len(s.PrefixItems))
	}
	if s.If == nil || s.Then == nil {
		t.Error("conditional children missing")
	}
	if dep := s.DependentSchemas["credit"]; dep == nil || len(dep.Required) != 1 {
		t.Error("dependentSchemas child missing")
	}
}

func TestUnknownKeysLandInExtensions(t *testing.T) {
	s := decodeSchema(t, `
type: object
x-internal: true
x-order: 3
futureKeyword:
  nested: true
`)
	if len(s.Extensions) != 3 {
		t.Fatalf("got %d extension keys, want 3: %v", len(s.Extensions), s.Extensions)
	}
	if v := s.Extensions["x-internal"]; v == nil || !v.Bool {
		t.Error("x-internal not captured")
	}
	if v := s.Extensions["futureKeyword"]; v == nil || v.Mapping == nil {
		t.Error("unknown structured keyword not captured")
	}

	again := roundTrip(t, s)
	if len(again.Extensions) != 3 {
		t.Errorf("extensions lost in round trip: %v", again.Extensions)
	}
}

func TestAssertionsAndAnnotationsRoundTrip(t *testing.T) {
	s := decodeSchema(t, `
type: [string, integer]
enum: [a, b, "7"]
const: a
minLength: 1
maxLength: 80
pattern: "^[a-z]+$"
minItems: 0
maxItems: 10
uniqueItems: true
minContains: 1
maxContains: 4
minProperties: 1
maxProperties: 9
required: [a, b]
dependentRequired:
  a: [b]
multipleOf: 0.5
minimum: 0
maximum: 100
exclusiveMinimum: -1
exclusiveMaximum: 101
contentEncoding: base64
contentMediaType: application/json
title: Thing
description: A thing.
deprecated: true
readOnly: true
writeOnly: true
default: a
examples: [a, b]
`)
	again := roundTrip(t, s)
	if diff := cmp.Diff(s, again); diff != "" {
		t.Errorf("schema changed across round trip (-before +after):\n%s", diff)
	}
	if !s.UniqueItems || !s.Deprecated || !s.ReadOnly || !s.WriteOnly {
		t.Error("boolean assertions lost")
	}
	if *s.MultipleOf != 0.5 || *s.MaxLength != 80 {
		t.Error("numeric bounds decoded wrong")
	}
}

func TestRefSchemaKeepsSiblings(t *testing.T) {
	s := decodeSchema(t, "$ref: \"#/components/schemas/Pet\"\ndescription: override\n")
	if !s.IsRef() {
		t.Fatal("expected a $ref-bearing schema")
	}
	if s.Description == nil || *s.Description != "override" {
		t.Error("sibling keyword next to $ref was dropped")
	}
}
