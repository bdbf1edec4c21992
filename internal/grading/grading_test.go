package grading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/lingo/internal/llm"
)

func TestCheckExact(t *testing.T) {
	options := []string{"veloz", "lento", "grande", "alto"}

	tests := []struct {
		name    string
		answer  string
		correct string
		options []string
		want    bool
	}{
		{"exact match", "fui", "fui", nil, true},
		{"case insensitive", "FUI", "fui", nil, true},
		{"whitespace collapsed", "  el  gato  ", "el gato", nil, true},
		{"wrong answer", "iba", "fui", nil, false},
		{"empty answer", "", "fui", nil, false},
		{"option by text", "veloz", "veloz", options, true},
		{"option by index", "1", "veloz", options, true},
		{"wrong index", "2", "veloz", options, false},
		{"index out of range falls back to text", "9", "9", options, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckExact(tt.answer, tt.correct, tt.options); got != tt.want {
				t.Errorf("CheckExact(%q, %q) = %v, want %v", tt.answer, tt.correct, got, tt.want)
			}
		})
	}
}

func TestExactlyGradable(t *testing.T) {
	for _, qType := range []string{"multiple_choice", "fill_blank", "sentence_order"} {
		if !ExactlyGradable(qType) {
			t.Errorf("expected %q to be exactly gradable", qType)
		}
	}
	for _, qType := range []string{"translation", "speaking"} {
		if ExactlyGradable(qType) {
			t.Errorf("expected %q to need the LLM grader", qType)
		}
	}
}

func TestGrade(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 85, "feedback": "Close! Watch the article."}`),
	})
	g := NewLLMGrader(mock)

	res, err := g.Grade(context.Background(), GradeInput{
		Question: "Translate: the red house",
		Expected: "la casa roja",
		Answer:   "la casa rojo",
		Language: "spanish",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 85 {
		t.Errorf("expected score 85, got %d", res.Score)
	}
	if res.Feedback == "" {
		t.Error("expected non-empty feedback")
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"la casa roja", "la casa rojo", "the red house"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestGrade_ScoreClamped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 140, "feedback": "ok"}`),
	})
	g := NewLLMGrader(mock)

	res, err := g.Grade(context.Background(), GradeInput{Question: "q", Answer: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 100 {
		t.Errorf("expected score clamped to 100, got %d", res.Score)
	}
}

func TestGrade_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	g := NewLLMGrader(mock)

	_, err := g.Grade(context.Background(), GradeInput{Question: "q", Answer: "a"})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestEvaluate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score": 70, "feedback": "Practice the second word."}`),
	})
	g := NewLLMGrader(mock)

	res, err := g.Evaluate(context.Background(), SpeechInput{
		TargetText: "Je voudrais un café",
		Transcript: "je voudray un café",
		Language:   "french",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccuracyScore != 70 {
		t.Errorf("expected accuracy 70, got %d", res.AccuracyScore)
	}
}

func TestFallbacks(t *testing.T) {
	if Fallback().Score != 0 {
		t.Error("grade fallback must score 0")
	}
	if SpeechFallback().AccuracyScore != 0 {
		t.Error("speech fallback must score 0")
	}
}
