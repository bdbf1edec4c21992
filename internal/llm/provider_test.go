package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_ServesResponsesInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"question":"Translate 'bonjour'.","correct_answer":"hello"}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"score":90,"feedback":"Close."}`)},
	)

	resp1, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "first"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp1.Content) != `{"question":"Translate 'bonjour'.","correct_answer":"hello"}` {
		t.Fatalf("unexpected first content: %s", resp1.Content)
	}
	if resp1.Usage.InputTokens != 10 {
		t.Fatalf("expected 10 input tokens, got %d", resp1.Usage.InputTokens)
	}
	if resp1.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp1.StopReason)
	}

	resp2, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "second"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp2.Content) != `{"score":90,"feedback":"Close."}` {
		t.Fatalf("unexpected second content: %s", resp2.Content)
	}
}

func TestMockProvider_EmptyQueueIsAnOutage(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	req := Request{
		System:   "You are a language tutor.",
		Messages: []Message{{Role: RoleUser, Content: "Grade this answer."}},
	}
	_, _ = mock.Generate(context.Background(), req)

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "You are a language tutor." {
		t.Fatalf("unexpected recorded system prompt: %q", mock.Calls[0].System)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 0}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_AddResponse(t *testing.T) {
	mock := NewMockProvider()
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"ok":true}`)})

	resp, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown', got %q", p)
	}

	ctx = WithPurpose(ctx, PurposeQuestionGen)
	if p := PurposeFrom(ctx); p != "question-gen" {
		t.Fatalf("expected 'question-gen', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name: "anthropic with key",
			cfg:  Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name: "openai with key",
			cfg:  Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
		},
		{
			name: "mock needs no key",
			cfg:  Config{Provider: "mock"},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
