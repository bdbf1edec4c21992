package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

func diagnosticSession() *store.PracticeSession {
	return &store.PracticeSession{
		SessionID: "s1",
		UserID:    "u1",
		Language:  "spanish",
		Status:    store.StatusActive,
		Mode:      store.ModeDiagnostic,
		Progress:  &store.SessionProgress{Answers: []store.AnswerRecord{}},
	}
}

func extensionCandidate(hash string) generation.Candidate {
	return generation.Candidate{
		Hash:            hash,
		Language:        "spanish",
		Type:            "fill_blank",
		TargetSkill:     skill.Grammar,
		DifficultyLabel: "B1",
		Payload: store.QuestionPayload{
			Question:      "Ayer yo ___ al mercado.",
			CorrectAnswer: "fui",
			Translations:  map[string]string{"english": "Yesterday I went to the market."},
		},
	}
}

func TestExtend_MergesAndMarksSeen(t *testing.T) {
	gen := &fakeGenerator{batch: []generation.Candidate{extensionCandidate("gen-1")}}
	poolRepo := newFakePoolRepo()
	exposure := newFakeExposureRepo()
	e := NewExtender(gen, poolRepo, exposure, zap.NewNop())

	batch := e.Extend(context.Background(), diagnosticSession(), 3, "english")
	if len(batch) != 1 {
		t.Fatalf("expected 1 question, got %d", len(batch))
	}
	if batch[0].Hash != "gen-1" || batch[0].QuestionID == "" {
		t.Fatalf("unexpected question: %+v", batch[0])
	}

	if _, ok := poolRepo.questions["gen-1"]; !ok {
		t.Error("expected pool ingestion")
	}
	seen, _ := exposure.SeenHashes(context.Background(), "u1", "spanish")
	if _, ok := seen["gen-1"]; !ok {
		t.Error("expected the served hash marked seen")
	}
}

func TestExtend_ConcurrentTriggersCollapse(t *testing.T) {
	gen := &fakeGenerator{
		batch: []generation.Candidate{extensionCandidate("gen-1")},
		block: make(chan struct{}),
	}
	e := NewExtender(gen, newFakePoolRepo(), newFakeExposureRepo(), zap.NewNop())
	s := diagnosticSession()

	const triggers = 4
	var wg, ready sync.WaitGroup
	ready.Add(triggers)
	results := make([][]store.PracticeQuestion, triggers)
	for i := 0; i < triggers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ready.Done()
			results[i] = e.Extend(context.Background(), s, 3, "english")
		}(i)
	}

	// Release the single in-flight generation once all triggers attach.
	ready.Wait()
	time.Sleep(50 * time.Millisecond)
	close(gen.block)
	wg.Wait()

	if gen.callCount() != 1 {
		t.Fatalf("expected concurrent triggers to share one generation, got %d", gen.callCount())
	}
	for i, r := range results {
		if len(r) != 1 {
			t.Errorf("trigger %d: expected the shared batch, got %d questions", i, len(r))
		}
	}
}

func TestExtend_AbortDiscardsResult(t *testing.T) {
	gen := &fakeGenerator{batch: []generation.Candidate{extensionCandidate("gen-1")}}
	e := NewExtender(gen, newFakePoolRepo(), newFakeExposureRepo(), zap.NewNop())
	s := diagnosticSession()

	e.Abort(s.SessionID)
	if batch := e.Extend(context.Background(), s, 3, "english"); batch != nil {
		t.Fatalf("expected the aborted session to discard results, got %d", len(batch))
	}

	e.Release(s.SessionID)
	if batch := e.Extend(context.Background(), s, 3, "english"); len(batch) != 1 {
		t.Fatal("expected extension to work again after release")
	}
}

func TestExtend_FailureDegradesToEmpty(t *testing.T) {
	gen := &fakeGenerator{err: context.DeadlineExceeded}
	e := NewExtender(gen, newFakePoolRepo(), newFakeExposureRepo(), zap.NewNop())

	if batch := e.Extend(context.Background(), diagnosticSession(), 3, "english"); batch != nil {
		t.Fatalf("expected an empty batch on failure, got %d", len(batch))
	}
}
