package openapi

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestReferenceDecodesPointer(t *testing.T) {
	src := `
$ref: '#/components/responses/NotFound'
summary: missing pet
`
	var ref Reference[Response]
	if err := yaml.Unmarshal([]byte(src), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !ref.IsReference() {
		t.Fatal("expected the pointer variant")
	}
	if ref.Ref != "#/components/responses/NotFound" {
		t.Errorf("Ref = %q", ref.Ref)
	}
	if ref.Summary == nil || *ref.Summary != "missing pet" {
		t.Errorf("Summary = %v", ref.Summary)
	}
	if ref.Object != nil {
		t.Error("pointer variant must not carry an inline object")
	}
}

func TestReferenceDecodesInline(t *testing.T) {
	src := `
description: pet not found
`
	var ref Reference[Response]
	if err := yaml.Unmarshal([]byte(src), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.IsReference() {
		t.Fatal("expected the inline variant")
	}
	if ref.Object == nil || ref.Object.Description != "pet not found" {
		t.Errorf("Object = %+v", ref.Object)
	}
}

// An inline Example carries its own summary field; without probing for the
// marker key first it would decode as a pointer with override fields.
func TestReferenceInlineWithSummaryField(t *testing.T) {
	src := `
summary: a tabby
description: a cat example
`
	var ref Reference[Example]
	if err := yaml.Unmarshal([]byte(src), &ref); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ref.IsReference() {
		t.Fatal("inline example misclassified as a pointer")
	}
	if ref.Object == nil || ref.Object.Summary == nil || *ref.Object.Summary != "a tabby" {
		t.Errorf("Object = %+v", ref.Object)
	}
}

func TestReferenceRejectsEmptyRef(t *testing.T) {
	var ref Reference[Response]
	err := yaml.Unmarshal([]byte(`{"$ref": ""}`), &ref)
	if err == nil || !strings.Contains(err.Error(), "$ref must not be empty") {
		t.Fatalf("err = %v", err)
	}
}

func TestReferenceRejectsMalformedURI(t *testing.T) {
	var ref Reference[Response]
	err := yaml.Unmarshal([]byte(`{"$ref": "http://[::1"}`), &ref)
	if err == nil || !strings.Contains(err.Error(), "not a valid URI reference") {
		t.Fatalf("err = %v", err)
	}
}

func TestReferenceRoundTripKeepsVariant(t *testing.T) {
	summary := "missing pet"
	pointer := Reference[Response]{Ref: "#/components/responses/NotFound", Summary: &summary}
	inline := Reference[Response]{Object: &Response{Description: "pet not found"}}

	for name, ref := range map[string]Reference[Response]{"pointer": pointer, "inline": inline} {
		t.Run(name, func(t *testing.T) {
			data, err := yaml.Marshal(&ref)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var got Reference[Response]
			if err := yaml.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.IsReference() != ref.IsReference() {
				t.Fatalf("variant changed across round trip:\n%s", data)
			}
			if diff := cmp.Diff(ref, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReferencePointerMarshalsFlat(t *testing.T) {
	ref := Reference[Response]{Ref: "#/components/responses/NotFound"}
	data, err := yaml.Marshal(&ref)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := "$ref: '#/components/responses/NotFound'\n"
	if string(data) != want {
		t.Errorf("marshal = %q, want %q", data, want)
	}
}
