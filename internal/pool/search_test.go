package pool

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// fakePoolRepo implements store.PoolRepo over an in-memory slice.
type fakePoolRepo struct {
	questions []*store.PoolQuestion
}

func (f *fakePoolRepo) Insert(_ context.Context, q *store.PoolQuestion) error {
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakePoolRepo) SearchByDifficulty(_ context.Context, lang string, labels []difficulty.Label, limit int) ([]*store.PoolQuestion, error) {
	want := make(map[difficulty.Label]bool)
	for _, l := range labels {
		want[l] = true
	}
	var out []*store.PoolQuestion
	for _, q := range f.questions {
		if q.Language == lang && want[q.DifficultyLabel] && len(out) < limit {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakePoolRepo) CountByLanguage(_ context.Context, lang string) (int, error) {
	n := 0
	for _, q := range f.questions {
		if q.Language == lang {
			n++
		}
	}
	return n, nil
}

func (f *fakePoolRepo) RecordResponse(_ context.Context, _ string, _ bool) error { return nil }

// fakeExposureRepo implements store.ExposureRepo.
type fakeExposureRepo struct {
	seen map[string]struct{}
}

func (f *fakeExposureRepo) SeenHashes(_ context.Context, _, _ string) (map[string]struct{}, error) {
	if f.seen == nil {
		return map[string]struct{}{}, nil
	}
	return f.seen, nil
}

func (f *fakeExposureRepo) MarkSeen(_ context.Context, _, _ string, _ []string) error { return nil }

func poolQ(hash, qType, sk string, label difficulty.Label) *store.PoolQuestion {
	return &store.PoolQuestion{
		Hash:            hash,
		Language:        "french",
		Type:            qType,
		TargetSkill:     skill.Skill(sk),
		DifficultyLabel: label,
		Payload: store.QuestionPayload{
			Question:      "Q " + hash,
			CorrectAnswer: "A",
			Translations:  map[string]string{"english": "translated"},
		},
	}
}

func newSearcher(repo *fakePoolRepo, exp *fakeExposureRepo) *Searcher {
	return NewSearcher(repo, exp, DefaultConfig(), zap.NewNop())
}

func baseInput(count int) SearchInput {
	return SearchInput{
		UserID:              "u1",
		Language:            "french",
		TranslationLanguage: "english",
		TargetDifficulty:    difficulty.B1,
		Count:               count,
	}
}

func TestSearchExcludesSeenQuestions(t *testing.T) {
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		poolQ("h1", "multiple_choice", "vocabulary", difficulty.B1),
		poolQ("h2", "multiple_choice", "grammar", difficulty.B1),
	}}
	exp := &fakeExposureRepo{seen: map[string]struct{}{"h1": {}}}

	res, err := newSearcher(repo, exp).Search(context.Background(), baseInput(5))
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range res.Questions {
		if q.Hash == "h1" {
			t.Error("seen question h1 was returned")
		}
	}
	if len(res.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(res.Questions))
	}
}

func TestSearchExcludesUntranslated(t *testing.T) {
	missing := poolQ("h1", "multiple_choice", "vocabulary", difficulty.B1)
	missing.Payload.Translations = nil
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		missing,
		poolQ("h2", "multiple_choice", "grammar", difficulty.B1),
	}}

	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 1 || res.Questions[0].Hash != "h2" {
		t.Errorf("expected only translated h2, got %v", res.Questions)
	}
}

func TestSearchExcludesOutOfScopeTypes(t *testing.T) {
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		poolQ("h1", "flashcard", "vocabulary", difficulty.B1),
	}}
	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 0 || res.PoolSize != 0 {
		t.Errorf("flashcard type should be filtered out, got %v (poolSize %d)", res.Questions, res.PoolSize)
	}
}

func TestSearchEmptyPool(t *testing.T) {
	res, err := newSearcher(&fakePoolRepo{}, &fakeExposureRepo{}).Search(context.Background(), baseInput(5))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 0 || res.PoolSize != 0 {
		t.Errorf("empty pool should yield empty result with PoolSize 0, got %+v", res)
	}
}

func TestSearchWidensOneTier(t *testing.T) {
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		poolQ("a2", "multiple_choice", "vocabulary", difficulty.A2),
		poolQ("b2", "fill_blank", "grammar", difficulty.B2),
		poolQ("c1", "translation", "reading", difficulty.C1), // two tiers up: out of range
	}}
	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(5))
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, q := range res.Questions {
		got[q.Hash] = true
	}
	if !got["a2"] || !got["b2"] || got["c1"] {
		t.Errorf("adjacent tiers should be included, two tiers away excluded: %v", got)
	}
}

func TestSearchDiversityPrefersDistinctPairs(t *testing.T) {
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		poolQ("h1", "multiple_choice", "vocabulary", difficulty.B1),
		poolQ("h2", "multiple_choice", "vocabulary", difficulty.B1),
		poolQ("h3", "fill_blank", "grammar", difficulty.B1),
	}}
	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(res.Questions))
	}
	pairA := res.Questions[0].Type + "/" + string(res.Questions[0].TargetSkill)
	pairB := res.Questions[1].Type + "/" + string(res.Questions[1].TargetSkill)
	if pairA == pairB {
		t.Errorf("duplicate (type, skill) pair %s chosen despite distinct supply", pairA)
	}
}

func TestSearchDiversityDegradesGracefully(t *testing.T) {
	// Only duplicate pairs available: quota still fills.
	repo := &fakePoolRepo{questions: []*store.PoolQuestion{
		poolQ("h1", "multiple_choice", "vocabulary", difficulty.B1),
		poolQ("h2", "multiple_choice", "vocabulary", difficulty.B1),
		poolQ("h3", "multiple_choice", "vocabulary", difficulty.B1),
	}}
	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 3 {
		t.Errorf("diversity should degrade rather than starve: got %d, want 3", len(res.Questions))
	}
}

func TestSearchRespectsCount(t *testing.T) {
	repo := &fakePoolRepo{}
	for i := 0; i < 20; i++ {
		repo.questions = append(repo.questions,
			poolQ(fmt.Sprintf("h%d", i), "multiple_choice", "vocabulary", difficulty.B1))
	}
	res, err := newSearcher(repo, &fakeExposureRepo{}).Search(context.Background(), baseInput(4))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Questions) != 4 {
		t.Errorf("got %d questions, want 4", len(res.Questions))
	}
	if res.PoolSize != 20 {
		t.Errorf("PoolSize = %d, want 20 surviving candidates", res.PoolSize)
	}
}
