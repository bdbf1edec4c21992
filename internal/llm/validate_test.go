package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func gradingSchema() *Schema {
	return &Schema{
		Name:        "grading-result",
		Description: "A graded free-form answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"score":    map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
				"feedback": map[string]any{"type": "string"},
				"level":    map[string]any{"type": "string", "enum": []any{"A1", "A2", "B1"}},
			},
			"required": []any{"score", "feedback"},
		},
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid full", `{"score":85,"feedback":"Good word order.","level":"A2"}`, false},
		{"valid without optional", `{"score":100,"feedback":"Perfect."}`, false},
		{"missing required", `{"score":70}`, true},
		{"wrong type", `{"score":"high","feedback":"ok"}`, true},
		{"out of range", `{"score":120,"feedback":"ok"}`, true},
		{"bad enum value", `{"score":50,"feedback":"ok","level":"C9"}`, true},
		{"malformed JSON", `{not json}`, true},
		{"empty response", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(gradingSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				assertInvalid(t, err)
			} else if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
		})
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`{"anything":"goes"}`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "question-batch",
		Description: "A batch of generated questions",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question":       map[string]any{"type": "string"},
							"correct_answer": map[string]any{"type": "string"},
						},
						"required": []any{"question", "correct_answer"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}

	valid := json.RawMessage(`{"questions":[{"question":"Translate 'merci'.","correct_answer":"thank you"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"questions":[{"question":"Translate 'merci'."}]}`)
	assertInvalid(t, validateResponse(schema, invalid))
}
