package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	// The question schema shape: stem, labeled options, correct enum.
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
				},
				"required": []any{"A", "B"},
			},
			"correct": map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
			"keywords": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"question", "options", "correct"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if schema.Properties["options"].Type != "OBJECT" {
		t.Fatalf("expected OBJECT for options, got %s", schema.Properties["options"].Type)
	}
	if len(schema.Properties["options"].Required) != 2 {
		t.Fatalf("expected 2 required option labels, got %d", len(schema.Properties["options"].Required))
	}
	if len(schema.Properties["correct"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["correct"].Enum))
	}
	if schema.Properties["keywords"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for keywords, got %s", schema.Properties["keywords"].Type)
	}
	if schema.Properties["keywords"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for keywords items, got %s", schema.Properties["keywords"].Items.Type)
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}
