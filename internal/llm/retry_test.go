package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var fastRetry = RetryConfig{
	MaxAttempts: 3,
	InitialWait: 1 * time.Millisecond,
	MaxWait:     10 * time.Millisecond,
	Multiplier:  2.0,
}

const gradedContent = `{"score":85,"feedback":"Minor accent error."}`

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(gradedContent)},
	)
	p := WithRetry(mock, fastRetry)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != gradedContent {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(gradedContent)},
	)
	p := WithRetry(mock, fastRetry)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != gradedContent {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	p := WithRetry(mock, fastRetry)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_TruncationNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}},
	)
	p := WithRetry(mock, fastRetry)

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`not json`), Err: errors.New("bad")}}
	mock := NewMockProvider(
		bad,
		bad,
		MockResponse{Content: json.RawMessage(gradedContent)},
	)
	p := WithRetry(mock, fastRetry)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls (one retry), got %d", mock.CallCount())
	}
}

func TestRetry_CanceledContextStopsRetrying(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(gradedContent)},
	)
	p := WithRetry(mock, fastRetry)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestRetry_RateLimitUsesRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(gradedContent)},
	)
	p := WithRetry(mock, fastRetry)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != gradedContent {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry)
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
