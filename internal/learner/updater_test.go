package learner

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/session"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

type fakeLearnerRepo struct {
	profile *store.LearnerProfile
	saved   int
}

func (f *fakeLearnerRepo) GetOrCreate(_ context.Context, userID, lang string) (*store.LearnerProfile, error) {
	if f.profile == nil {
		f.profile = &store.LearnerProfile{UserID: userID, Language: lang, SkillScores: map[string]float64{}}
	}
	return f.profile, nil
}

func (f *fakeLearnerRepo) Save(_ context.Context, p *store.LearnerProfile) error {
	f.profile = p
	f.saved++
	return nil
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate(context.Context, string, string) error {
	f.calls++
	return nil
}

type fakeEnqueuer struct {
	calls int
	err   error
}

func (f *fakeEnqueuer) Enqueue(context.Context, string, string, store.SessionMode, string) (string, error) {
	f.calls++
	return "next-session", f.err
}

func record(sk string, label string, correct bool) store.AnswerRecord {
	return store.AnswerRecord{TargetSkill: sk, DifficultyLabel: label, IsCorrect: correct}
}

func TestAggregate(t *testing.T) {
	answers := []store.AnswerRecord{
		record("grammar", "A2", true),
		record("grammar", "B1", false),
		record("vocabulary", "B1", true),
		{TargetSkill: "grammar", DifficultyLabel: "C2", Skipped: true}, // never aggregated
		record("", "B2", true), // unknown skill falls into the default group
	}

	updates := Aggregate(answers)
	if len(updates) != 3 {
		t.Fatalf("expected 3 skill groups, got %d", len(updates))
	}

	byName := make(map[skill.Skill]SkillUpdate)
	for _, u := range updates {
		byName[u.Skill] = u
	}

	g := byName[skill.Grammar]
	if g.Count != 2 || g.AvgScore != 50 {
		t.Errorf("unexpected grammar group: %+v", g)
	}
	// anchors: A2 -1.5, B1 -0.5 -> mean -1.0
	if g.AvgDifficulty != -1.0 {
		t.Errorf("expected avg difficulty -1.0, got %v", g.AvgDifficulty)
	}

	v := byName[skill.Vocabulary]
	if v.Count != 1 || v.AvgScore != 100 {
		t.Errorf("unexpected vocabulary group: %+v", v)
	}

	d := byName[skill.Default]
	if d.Count != 1 || d.AvgScore != 100 {
		t.Errorf("expected unknown skill in the default group, got %+v", d)
	}
}

func TestAggregate_Empty(t *testing.T) {
	if got := Aggregate(nil); len(got) != 0 {
		t.Fatalf("expected no updates, got %v", got)
	}
	onlySkips := []store.AnswerRecord{{TargetSkill: "grammar", Skipped: true}}
	if got := Aggregate(onlySkips); len(got) != 0 {
		t.Fatalf("expected skips ignored, got %v", got)
	}
}

func finishedSession(answers []store.AnswerRecord) *store.PracticeSession {
	return &store.PracticeSession{
		SessionID: "s1",
		UserID:    "u1",
		Language:  "spanish",
		Status:    store.StatusActive,
		Mode:      store.ModeFixed,
		Progress:  &store.SessionProgress{Answers: answers},
	}
}

func TestFinish_MovesAbilityTowardPerformance(t *testing.T) {
	repo := &fakeLearnerRepo{}
	inv := &fakeInvalidator{}
	enq := &fakeEnqueuer{}
	u := NewUpdater(repo, inv, enq, zap.NewNop())

	// A perfect session on B2 material should raise a zero estimate.
	answers := []store.AnswerRecord{
		record("grammar", "B2", true),
		record("vocabulary", "B2", true),
		record("reading", "B2", true),
	}
	if err := u.Finish(context.Background(), finishedSession(answers), "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.profile.AbilityEstimate <= 0 {
		t.Errorf("expected ability to rise, got %v", repo.profile.AbilityEstimate)
	}
	if repo.profile.AbilityConfidence <= 0 {
		t.Error("expected confidence to accumulate")
	}
	if repo.saved != 1 {
		t.Errorf("expected one profile save, got %d", repo.saved)
	}
	if got := repo.profile.SkillScores["grammar"]; got != 100 {
		t.Errorf("expected grammar score 100, got %v", got)
	}

	// Updates applied, then stale prefetch discarded, then a fresh one queued.
	if inv.calls != 1 || enq.calls != 1 {
		t.Fatalf("expected invalidate and enqueue once each, got %d/%d", inv.calls, enq.calls)
	}
}

func TestFinish_AllWrongLowersAbility(t *testing.T) {
	repo := &fakeLearnerRepo{}
	u := NewUpdater(repo, &fakeInvalidator{}, &fakeEnqueuer{}, zap.NewNop())

	answers := []store.AnswerRecord{
		record("grammar", "A1", false),
		record("vocabulary", "A1", false),
	}
	if err := u.Finish(context.Background(), finishedSession(answers), "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.profile.AbilityEstimate >= 0 {
		t.Errorf("expected ability to fall, got %v", repo.profile.AbilityEstimate)
	}
}

func TestFinish_SkillScoreEWMA(t *testing.T) {
	repo := &fakeLearnerRepo{profile: &store.LearnerProfile{
		UserID: "u1", Language: "spanish",
		SkillScores: map[string]float64{"grammar": 100},
	}}
	u := NewUpdater(repo, &fakeInvalidator{}, &fakeEnqueuer{}, zap.NewNop())

	answers := []store.AnswerRecord{record("grammar", "B1", false)}
	if err := u.Finish(context.Background(), finishedSession(answers), "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.7*100 + 0.3*0 = 70: one bad session dents, not erases, history.
	if got := repo.profile.SkillScores["grammar"]; got != 70 {
		t.Errorf("expected EWMA score 70, got %v", got)
	}
}

func TestFinish_EmptySessionStillRotatesPrefetch(t *testing.T) {
	repo := &fakeLearnerRepo{}
	inv := &fakeInvalidator{}
	enq := &fakeEnqueuer{}
	u := NewUpdater(repo, inv, enq, zap.NewNop())

	if err := u.Finish(context.Background(), finishedSession(nil), "english"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saved != 0 {
		t.Error("expected no profile write without scored answers")
	}
	if inv.calls != 1 || enq.calls != 1 {
		t.Fatal("expected prefetch rotation even for an empty session")
	}
}

func TestFinish_NoSlotIsBenign(t *testing.T) {
	u := NewUpdater(&fakeLearnerRepo{}, &fakeInvalidator{}, &fakeEnqueuer{err: session.ErrNoSlot}, zap.NewNop())

	answers := []store.AnswerRecord{record("grammar", "B1", true), record("grammar", "B1", true)}
	if err := u.Finish(context.Background(), finishedSession(answers), "english"); err != nil {
		t.Fatalf("a held slot must not fail the finish: %v", err)
	}
}

func TestFinish_EnqueueErrorSurfaces(t *testing.T) {
	u := NewUpdater(&fakeLearnerRepo{}, &fakeInvalidator{}, &fakeEnqueuer{err: errors.New("store down")}, zap.NewNop())

	if err := u.Finish(context.Background(), finishedSession(nil), "english"); err == nil {
		t.Fatal("expected the store error to surface")
	}
}
