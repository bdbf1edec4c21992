package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/pool"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

type prefetchEnv struct {
	sessions *fakeSessionRepo
	pool     *fakePoolRepo
	exposure *fakeExposureRepo
	learners *fakeLearnerRepo
	gen      *fakeGenerator
	pre      *Prefetcher
}

func newPrefetchEnv() *prefetchEnv {
	env := &prefetchEnv{
		sessions: newFakeSessionRepo(),
		pool:     newFakePoolRepo(),
		exposure: newFakeExposureRepo(),
		learners: &fakeLearnerRepo{},
		gen:      &fakeGenerator{},
	}
	log := zap.NewNop()
	lc := NewLifecycle(env.sessions, DefaultConfig(), log)
	searcher := pool.NewSearcher(env.pool, env.exposure, pool.DefaultConfig(), log)
	env.pre = NewPrefetcher(lc, env.learners, env.pool, env.exposure, searcher, env.gen, DefaultConfig(), log)
	return env
}

func poolRow(hash string, label difficulty.Label) *store.PoolQuestion {
	return &store.PoolQuestion{
		Hash:            hash,
		Language:        "spanish",
		Type:            "multiple_choice",
		TargetSkill:     skill.Vocabulary,
		DifficultyLabel: label,
		Payload: store.QuestionPayload{
			Question:      "question " + hash,
			CorrectAnswer: "veloz",
			Options:       []string{"veloz", "lento", "grande", "alto"},
			Translations:  map[string]string{"english": "translated " + hash},
		},
	}
}

func TestEnqueue_BuildsSetFromPoolAndGeneration(t *testing.T) {
	env := newPrefetchEnv()
	for i := 0; i < 3; i++ {
		env.pool.questions[fmt.Sprintf("pool-%d", i)] = poolRow(fmt.Sprintf("pool-%d", i), difficulty.B1)
	}
	env.gen.batch = []generation.Candidate{
		extensionCandidate("gen-1"),
		extensionCandidate("gen-2"),
	}

	id, err := env.pre.Enqueue(context.Background(), "u1", "spanish", store.ModeFixed, "english")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.pre.Wait()

	s, _ := env.sessions.Get(context.Background(), id)
	if s.Status != store.StatusReady {
		t.Fatalf("expected ready, got %s (%s)", s.Status, s.FailureReason)
	}
	if len(s.PracticeSet) != 5 {
		t.Fatalf("expected 3 pool + 2 generated questions, got %d", len(s.PracticeSet))
	}

	// Every served hash is now in the learner's seen-set.
	seen, _ := env.exposure.SeenHashes(context.Background(), "u1", "spanish")
	for _, q := range s.PracticeSet {
		if _, ok := seen[q.Hash]; !ok {
			t.Errorf("expected %s marked seen", q.Hash)
		}
	}

	// Generated questions joined the shared pool.
	if _, ok := env.pool.questions["gen-1"]; !ok {
		t.Error("expected generated question ingested into the pool")
	}
}

func TestEnqueue_SecondClaimRejected(t *testing.T) {
	env := newPrefetchEnv()
	env.gen.batch = []generation.Candidate{extensionCandidate("gen-1")}
	ctx := context.Background()

	if _, err := env.pre.Enqueue(ctx, "u1", "spanish", store.ModeFixed, "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := env.pre.Enqueue(ctx, "u1", "spanish", store.ModeFixed, "english"); !errors.Is(err, ErrNoSlot) {
		t.Fatalf("expected ErrNoSlot, got %v", err)
	}
	env.pre.Wait()
}

func TestEnqueue_EmptyEverythingFails(t *testing.T) {
	env := newPrefetchEnv()
	env.gen.err = errors.New("provider down")

	id, err := env.pre.Enqueue(context.Background(), "u1", "spanish", store.ModeFixed, "english")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.pre.Wait()

	s, _ := env.sessions.Get(context.Background(), id)
	if s.Status != store.StatusFailed {
		t.Fatalf("expected failed, got %s", s.Status)
	}
	if s.FailureReason == "" {
		t.Fatal("expected a failure reason")
	}
}

func TestEnqueue_DiagnosticUsesSeedSize(t *testing.T) {
	env := newPrefetchEnv()
	for i := 0; i < 12; i++ {
		env.pool.questions[fmt.Sprintf("pool-%d", i)] = poolRow(fmt.Sprintf("pool-%d", i), difficulty.B1)
	}

	id, err := env.pre.Enqueue(context.Background(), "u1", "spanish", store.ModeDiagnostic, "english")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.pre.Wait()

	s, _ := env.sessions.Get(context.Background(), id)
	if s.Status != store.StatusReady {
		t.Fatalf("expected ready, got %s", s.Status)
	}
	if want := DefaultConfig().DiagnosticSeedSize; len(s.PracticeSet) != want {
		t.Fatalf("expected the %d-question diagnostic seed, got %d", want, len(s.PracticeSet))
	}
}

func TestEnqueue_WeakSkillsSteerGeneration(t *testing.T) {
	env := newPrefetchEnv()
	env.learners.profile = &store.LearnerProfile{
		UserID:          "u1",
		Language:        "spanish",
		AbilityEstimate: 0,
		SkillScores:     map[string]float64{"grammar": 40, "vocabulary": 85},
	}
	env.gen.batch = []generation.Candidate{extensionCandidate("gen-1")}

	if _, err := env.pre.Enqueue(context.Background(), "u1", "spanish", store.ModeFixed, "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	env.pre.Wait()

	if env.gen.callCount() == 0 {
		t.Fatal("expected generation for the empty pool")
	}
}
