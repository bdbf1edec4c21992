package llm

import (
	"testing"
)

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     OpenRouterConfig
		wantErr bool
		wantID  string
	}{
		{
			name:   "valid config",
			cfg:    OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.0-flash-exp"},
			wantID: "google/gemini-2.0-flash-exp",
		},
		{
			name:    "empty API key",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
			wantErr: true,
		},
		{
			name:   "model passes through without mapping",
			cfg:    OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantID: "anthropic/claude-3-haiku",
		},
		{
			name: "custom base URL",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://custom.openrouter.example/v1",
			},
			wantID: "meta-llama/llama-3-8b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.ModelID() != tt.wantID {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantID)
			}
		})
	}
}
