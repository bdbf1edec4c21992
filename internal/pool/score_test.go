package pool

import (
	"testing"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/store"
)

func calibratedQuestion(a, b float64) *store.PoolQuestion {
	return &store.PoolQuestion{
		Hash:            "h",
		Type:            "multiple_choice",
		TargetSkill:     "vocabulary",
		DifficultyLabel: difficulty.B1,
		TotalResponses:  50,
		Discrimination:  &a,
		EmpiricalDifficulty: &b,
	}
}

func TestHigherDiscriminationScoresHigher(t *testing.T) {
	// Two calibrated candidates at theta=0 differing only in a (1.2 vs
	// 0.5, same b=0): the sharper item carries more information and a
	// better discrimination-quality term.
	cfg := DefaultConfig()
	sharp := Score(calibratedQuestion(1.2, 0), 0, TargetTags{}, cfg)
	dull := Score(calibratedQuestion(0.5, 0), 0, TargetTags{}, cfg)
	if sharp <= dull {
		t.Errorf("a=1.2 score %v should exceed a=0.5 score %v", sharp, dull)
	}
}

func TestUncalibratedGetsExplorationBonus(t *testing.T) {
	cfg := DefaultConfig()
	fresh := &store.PoolQuestion{
		Type:            "multiple_choice",
		TargetSkill:     "vocabulary",
		DifficultyLabel: difficulty.B1,
		TotalResponses:  cfg.CalibrationThreshold - 1,
	}
	withBonus := Score(fresh, 0, TargetTags{}, cfg)

	noBonus := cfg
	noBonus.ExplorationBonus = 0
	base := Score(fresh, 0, TargetTags{}, noBonus)

	if diff := withBonus - base; diff < 0.149 || diff > 0.151 {
		t.Errorf("exploration bonus contributed %v, want 0.15", diff)
	}
}

func TestUncalibratedFallsBackToLabelAnchor(t *testing.T) {
	cfg := DefaultConfig()
	// An uncalibrated B2 question: b falls back to the B2 anchor (+0.5),
	// so fit at theta=+0.5 beats fit at theta=-2.5.
	q := &store.PoolQuestion{
		Type:            "multiple_choice",
		TargetSkill:     "grammar",
		DifficultyLabel: difficulty.B2,
	}
	near := Score(q, 0.5, TargetTags{}, cfg)
	far := Score(q, -2.5, TargetTags{}, cfg)
	if near <= far {
		t.Errorf("score near label anchor (%v) should exceed score far away (%v)", near, far)
	}
}

func TestRelevanceRewardsTagOverlap(t *testing.T) {
	cfg := DefaultConfig()
	q := calibratedQuestion(1.0, 0)
	q.GrammarTags = []string{"past-tense"}
	q.TopicTags = []string{"travel"}

	target := TargetTags{
		Grammar: NewTagSet("past-tense"),
		Vocab:   NewTagSet(),
		Topic:   NewTagSet("travel"),
	}
	matched := Score(q, 0, target, cfg)
	unmatched := Score(q, 0, TargetTags{Grammar: NewTagSet("kla"), Vocab: NewTagSet(), Topic: NewTagSet("x")}, cfg)
	if matched <= unmatched {
		t.Errorf("tag-matched score %v should exceed unmatched %v", matched, unmatched)
	}
}

func TestFingerprintStable(t *testing.T) {
	p1 := store.QuestionPayload{
		Question:      "What  is the capital of France?",
		CorrectAnswer: "Paris",
		Options:       []string{"Paris", "Lyon", "Nice"},
	}
	p2 := store.QuestionPayload{
		Question:      "what is the capital of france?",
		CorrectAnswer: "paris",
		Options:       []string{"Nice", "Paris", "Lyon"},
	}
	if Fingerprint("multiple_choice", p1) != Fingerprint("multiple_choice", p2) {
		t.Error("whitespace, casing and option order should not change the fingerprint")
	}
	if Fingerprint("multiple_choice", p1) == Fingerprint("fill_blank", p1) {
		t.Error("question type must be part of the fingerprint")
	}
}
