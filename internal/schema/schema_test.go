package schema

import (
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"name": map[string]any{"type": "string"},
				"xp":   map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"name", "xp"},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	if err := Validate(testSchema(), []byte(`{"name":"a","xp":3}`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	if err := Validate(nil, []byte(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got: %v", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed", `{"name":`},
		{"missing field", `{"name":"a"}`},
		{"negative", `{"name":"a","xp":-1}`},
		{"wrong type", `{"name":"a","xp":"ten"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(testSchema(), []byte(tt.raw))
			var inv *InvalidError
			if !errors.As(err, &inv) {
				t.Fatalf("expected *InvalidError, got %T: %v", err, err)
			}
			if inv.Schema != "test-object" {
				t.Errorf("Schema = %q", inv.Schema)
			}
		})
	}
}
