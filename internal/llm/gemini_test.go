package llm

import (
	"testing"
)

func TestResolveModel_Gemini(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, geminiModels); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question":       map[string]any{"type": "string"},
			"correct_answer": map[string]any{"type": "string"},
			"question_type": map[string]any{
				"type": "string",
				"enum": []any{"multiple_choice", "translation", "fill_blank"},
			},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"difficulty": map[string]any{"type": "number"},
		},
		"required": []any{"question", "correct_answer"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 5 {
		t.Fatalf("expected 5 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if schema.Properties["difficulty"].Type != "NUMBER" {
		t.Fatalf("expected NUMBER for difficulty, got %s", schema.Properties["difficulty"].Type)
	}
	if len(schema.Properties["question_type"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["question_type"].Enum))
	}
	if schema.Properties["options"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for options, got %s", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for options items, got %s", schema.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
