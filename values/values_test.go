package values

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func decode(t *testing.T, doc string) *Value {
	t.Helper()
	v := new(Value)
	if err := yaml.Unmarshal([]byte(doc), v); err != nil {
		t.Fatalf("decode %q: %v", doc, err)
	}
	return v
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		doc  string
		kind Kind
	}{
		{"null", KindNull},
		{"true", KindBool},
		{"42", KindNumber},
		{"0.300", KindNumber},
		{`"hello"`, KindString},
		{"[1, 2]", KindSequence},
		{"a: 1", KindMapping},
	}
	for _, tt := range tests {
		if got := decode(t, tt.doc).Kind; got != tt.kind {
			t.Errorf("%q: got kind %v, want %v", tt.doc, got, tt.kind)
		}
	}
}

func TestNumberKeepsLiteral(t *testing.T) {
	v := decode(t, "0.300")
	if v.Scalar != "0.300" {
		t.Fatalf("got literal %q, want 0.300", v.Scalar)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.TrimSpace(string(out)) != "0.300" {
		t.Errorf("round trip changed literal: %q", out)
	}
}

func TestHexLiteralKeepsIntegerTag(t *testing.T) {
	for _, lit := range []string{"0x1F", "0o17", "1_000"} {
		v := decode(t, lit)
		if v.Kind != KindNumber || v.Scalar != lit {
			t.Fatalf("%q: got kind %v scalar %q", lit, v.Kind, v.Scalar)
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			t.Fatalf("marshal %q: %v", lit, err)
		}
		// An integer literal re-tagged as a float would come back with an
		// explicit !!float tag.
		if strings.TrimSpace(string(out)) != lit {
			t.Errorf("%q round-tripped as %q", lit, strings.TrimSpace(string(out)))
		}
	}
}

func TestNumericLookingStringStaysString(t *testing.T) {
	v := decode(t, `"123"`)
	if v.Kind != KindString {
		t.Fatalf("got kind %v, want string", v.Kind)
	}
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := new(Value)
	if err := yaml.Unmarshal(out, got); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if got.Kind != KindString || got.Scalar != "123" {
		t.Errorf("round trip got %v %q, want string 123", got.Kind, got.Scalar)
	}
}

func TestMappingPreservesOrder(t *testing.T) {
	v := decode(t, "zebra: 1\nalpha: 2\nmike: 3\n")
	var keys []string
	for key := range v.Mapping.All() {
		keys = append(keys, key)
	}
	want := []string{"zebra", "alpha", "mike"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got key order %v, want %v", keys, want)
		}
	}

	// Order must also survive encoding.
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := "zebra: 1\nalpha: 2\nmike: 3\n"; string(out) != want {
		t.Errorf("encoded mapping:\n%s\nwant:\n%s", out, want)
	}
}

func TestRoundTripNested(t *testing.T) {
	doc := "name: pet\ntags: [a, b]\nmeta:\n  count: 2\n  ok: true\n  none: null\n"
	v := decode(t, doc)
	out, err := yaml.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	again := new(Value)
	if err := yaml.Unmarshal(out, again); err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if !v.Equal(again) {
		t.Errorf("round trip not equal:\n%s", out)
	}
}

func TestEqual(t *testing.T) {
	a := NewMapping().Set("x", NewNumber("1")).Set("y", NewSequence(NewString("s"), NewBool(true)))
	b := NewMapping().Set("x", NewNumber("1")).Set("y", NewSequence(NewString("s"), NewBool(true)))
	if !a.Equal(b) {
		t.Error("expected equal values")
	}
	b.Set("x", NewNumber("2"))
	if a.Equal(b) {
		t.Error("expected unequal values after change")
	}
	if a.Equal(NewNull()) {
		t.Error("mapping should not equal null")
	}
}
