package generation

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/skill"
)

func batchJSON(items ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(items, ",") + `]}`)
}

const validMC = `{
	"type": "multiple_choice",
	"target_skill": "vocabulary",
	"difficulty_label": "B1",
	"question": "¿Cuál es el sinónimo de 'rápido'?",
	"passage": "",
	"correct_answer": "veloz",
	"options": ["veloz", "lento", "grande", "alto"],
	"translation": "Which is a synonym of 'fast'?",
	"grammar_tags": [],
	"vocab_tags": ["adjectives"],
	"topic_tags": ["everyday life"]
}`

const validFill = `{
	"type": "fill_blank",
	"target_skill": "grammar",
	"difficulty_label": "B1",
	"question": "Ayer yo ___ al mercado.",
	"passage": "",
	"correct_answer": "fui",
	"options": [],
	"translation": "Yesterday I went to the market.",
	"grammar_tags": ["past tense"],
	"vocab_tags": [],
	"topic_tags": ["shopping"]
}`

func newTestGenerator(mock *llm.MockProvider) *LLMGenerator {
	return New(mock, DefaultConfig(), zap.NewNop())
}

func TestGenerate_Batch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(validMC, validFill),
	})
	gen := newTestGenerator(mock)

	qs, err := gen.Generate(context.Background(), Input{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B1,
		Count:               2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(qs))
	}
	if qs[0].TargetSkill != skill.Vocabulary {
		t.Errorf("unexpected skill: %q", qs[0].TargetSkill)
	}
	if qs[0].Hash == "" || qs[1].Hash == "" {
		t.Error("expected non-empty hashes")
	}
	if qs[0].Payload.Translations["english"] != "Which is a synonym of 'fast'?" {
		t.Errorf("unexpected translation: %q", qs[0].Payload.Translations["english"])
	}
	if qs[1].GrammarTags[0] != "past tense" {
		t.Errorf("unexpected grammar tags: %v", qs[1].GrammarTags)
	}
}

func TestGenerate_DropsInvalidItems(t *testing.T) {
	missingAnswer := `{
		"type": "fill_blank",
		"target_skill": "grammar",
		"difficulty_label": "B1",
		"question": "Ayer yo ___ al mercado.",
		"passage": "",
		"correct_answer": "",
		"options": [],
		"translation": "Yesterday I went to the market.",
		"grammar_tags": [],
		"vocab_tags": [],
		"topic_tags": []
	}`
	badOptions := `{
		"type": "multiple_choice",
		"target_skill": "vocabulary",
		"difficulty_label": "B1",
		"question": "¿Cuál es el sinónimo de 'rápido'?",
		"passage": "",
		"correct_answer": "veloz",
		"options": ["lento", "grande", "alto"],
		"translation": "Which is a synonym of 'fast'?",
		"grammar_tags": [],
		"vocab_tags": [],
		"topic_tags": []
	}`
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(validMC, missingAnswer, badOptions),
	})
	gen := newTestGenerator(mock)

	qs, err := gen.Generate(context.Background(), Input{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B1,
		Count:               3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 surviving question, got %d", len(qs))
	}
}

func TestGenerate_DeduplicatesWithinBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(validMC, validMC),
	})
	gen := newTestGenerator(mock)

	qs, err := gen.Generate(context.Background(), Input{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B1,
		Count:               2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected duplicates collapsed to 1, got %d", len(qs))
	}
}

func TestGenerate_UnknownLabelFallsBack(t *testing.T) {
	badLabel := strings.Replace(validFill, `"difficulty_label": "B1"`, `"difficulty_label": "native"`, 1)
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(badLabel),
	})
	gen := newTestGenerator(mock)

	qs, err := gen.Generate(context.Background(), Input{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.A2,
		Count:               1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("expected 1 question, got %d", len(qs))
	}
	if qs[0].DifficultyLabel != difficulty.A2 {
		t.Errorf("expected fallback label A2, got %q", qs[0].DifficultyLabel)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns provider unavailable
	gen := newTestGenerator(mock)

	_, err := gen.Generate(context.Background(), Input{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B1,
		Count:               2,
	})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestGenerateIncremental_PromptCarriesExclusions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batchJSON(validFill),
	})
	gen := newTestGenerator(mock)

	_, err := gen.GenerateIncremental(context.Background(), IncrementalInput{
		Language:            "spanish",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B2,
		Count:               1,
		RecentQuestions:     []string{"¿Cómo te llamas?"},
		ExcludeSkills:       []skill.Skill{skill.Vocabulary, skill.Reading},
		ExcludeTypes:        []string{"multiple_choice"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"vocabulary, reading",
		"multiple_choice",
		"¿Cómo te llamas?",
		"CEFR level: B2",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildAvoid_Truncates(t *testing.T) {
	qs := []string{"q1", "q2", "q3", "q4"}
	got := buildAvoid(qs, 2)
	if strings.Contains(got, "q1") || strings.Contains(got, "q2") {
		t.Errorf("expected oldest questions dropped, got:\n%s", got)
	}
	if !strings.Contains(got, "q3") || !strings.Contains(got, "q4") {
		t.Errorf("expected newest questions kept, got:\n%s", got)
	}
}

func TestBuildAvoid_Empty(t *testing.T) {
	if got := buildAvoid(nil, 5); got != "None" {
		t.Errorf("expected \"None\", got %q", got)
	}
}
