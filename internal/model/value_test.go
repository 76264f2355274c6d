package model_test

import (
	"encoding/json"
	"testing"

	"qr-menu/internal/model"
)

func TestValueUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind model.ValueKind
	}{
		{"null", `null`, model.ValueNone},
		{"string", `"vegetariano"`, model.ValueString},
		{"number", `2500`, model.ValueNumber},
		{"bool", `true`, model.ValueBool},
		{"list", `["a","b"]`, model.ValueList},
		{"range", `{"min":0,"max":3000}`, model.ValueRange},
		{"partial range", `{"max":3000}`, model.ValueRange},
		{"mixed list", `["a",1]`, model.ValueInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v model.Value
			if err := json.Unmarshal([]byte(tc.in), &v); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v.Kind() != tc.kind {
				t.Errorf("expected kind %s, got %s", tc.kind, v.Kind())
			}
		})
	}
}

func TestValueRangeBounds(t *testing.T) {
	var v model.Value
	if err := json.Unmarshal([]byte(`{"min":null,"max":"x"}`), &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r, ok := v.AsRange()
	if !ok {
		t.Fatalf("expected range, got %s", v.Kind())
	}
	if r.Min != nil || r.Max != nil {
		t.Errorf("expected missing bounds, got %+v", r)
	}
}

func TestValueMarshalKeepsShape(t *testing.T) {
	inputs := []string{`"tag_1"`, `12.5`, `false`, `["a","b"]`, `{"min":1,"max":2}`, `["a",1]`, `null`}
	for _, in := range inputs {
		var v model.Value
		if err := json.Unmarshal([]byte(in), &v); err != nil {
			t.Fatalf("%s: unexpected error: %v", in, err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("%s: marshal error: %v", in, err)
		}
		if string(out) != in {
			t.Errorf("expected %s, got %s", in, out)
		}
	}
}

func TestValueStrings(t *testing.T) {
	if got := model.StringValue("x").Strings(); len(got) != 1 || got[0] != "x" {
		t.Errorf("scalar should wrap into singleton, got %v", got)
	}
	if got := model.ListValue("a", "b").Strings(); len(got) != 2 {
		t.Errorf("list should pass through, got %v", got)
	}
	if got := model.NumberValue(1).Strings(); got != nil {
		t.Errorf("number should not normalize to a list, got %v", got)
	}
}
