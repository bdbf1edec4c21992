package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/grading"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

type runnerEnv struct {
	sessions *fakeSessionRepo
	pool     *fakePoolRepo
	grader   *fakeGrader
	speech   *fakeSpeech
	gen      *fakeGenerator
	runner   *Runner
}

func newRunnerEnv() *runnerEnv {
	env := &runnerEnv{
		sessions: newFakeSessionRepo(),
		pool:     newFakePoolRepo(),
		grader:   &fakeGrader{result: grading.Result{Score: 80, Feedback: "nice"}},
		speech:   &fakeSpeech{result: grading.SpeechResult{AccuracyScore: 90, Feedback: "clear"}},
		gen:      &fakeGenerator{},
	}
	log := zap.NewNop()
	extender := NewExtender(env.gen, env.pool, newFakeExposureRepo(), log)
	env.runner = NewRunner(env.sessions, env.pool, env.grader, env.speech, extender, log)
	return env
}

func mcQuestion(id string) store.PracticeQuestion {
	return store.PracticeQuestion{
		QuestionID:      id,
		Hash:            "hash-" + id,
		Type:            "multiple_choice",
		TargetSkill:     "vocabulary",
		DifficultyLabel: "A2",
		Points:          questionPoints,
		Question:        "question " + id,
		CorrectAnswer:   "veloz",
		Options:         []string{"veloz", "lento", "grande", "alto"},
	}
}

func activeSession(env *runnerEnv, mode store.SessionMode, set []store.PracticeQuestion) *store.PracticeSession {
	s := &store.PracticeSession{
		SessionID:   "s1",
		UserID:      "u1",
		Language:    "spanish",
		Status:      store.StatusActive,
		Mode:        mode,
		PracticeSet: set,
		Progress:    &store.SessionProgress{Answers: []store.AnswerRecord{}, Phase: "questions"},
	}
	env.sessions.rows[s.SessionID] = s
	return s
}

func bigSet(n int) []store.PracticeQuestion {
	set := make([]store.PracticeQuestion, n)
	for i := range set {
		set[i] = mcQuestion(fmt.Sprintf("q%d", i))
	}
	return set
}

func TestRecordAnswer_Correct(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(5))

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{
		QuestionID: "q0", Answer: "veloz", ResponseTimeMs: 1200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.IsCorrect || fb.Score != 100 || fb.EarnedPoints != questionPoints {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if s.Progress.TotalScore != questionPoints || s.Progress.MaxScore != questionPoints {
		t.Fatalf("unexpected totals: %+v", s.Progress)
	}
	if env.pool.responseCount("hash-q0") != 1 {
		t.Error("expected a pool response record")
	}
	if len(s.Progress.Answers) != 1 || s.Progress.Answers[0].ResponseTimeMs != 1200 {
		t.Fatalf("unexpected answer record: %+v", s.Progress.Answers)
	}
}

func TestRecordAnswer_Wrong(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(5))

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "q0", Answer: "lento"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.IsCorrect || fb.EarnedPoints != 0 {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if s.Progress.TotalScore != 0 || s.Progress.MaxScore != questionPoints {
		t.Fatalf("wrong answers still raise max score: %+v", s.Progress)
	}
}

func TestRecordAnswer_SkipContributesNothing(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(5))

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "q0", Skip: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fb.IsCorrect || fb.Score != 0 || fb.EarnedPoints != 0 {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if s.Progress.TotalScore != 0 || s.Progress.MaxScore != 0 {
		t.Fatal("skips must not contribute to totalScore or maxScore")
	}
	if !s.Progress.Answers[0].Skipped {
		t.Fatal("expected the record marked skipped")
	}
	if env.pool.responseCount("hash-q0") != 0 {
		t.Error("skips must not feed calibration")
	}

	// The skip still consumed its slot.
	if got := Unanswered(s.PracticeSet, s.Progress.Answers); len(got) != 4 {
		t.Fatalf("expected 4 remaining, got %d", len(got))
	}
}

func TestRecordAnswer_DuplicateIgnored(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(5))
	ctx := context.Background()

	if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: "q0", Answer: "veloz"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fb, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: "q0", Answer: "lento"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.Duplicate {
		t.Fatal("expected the resubmission flagged as duplicate")
	}
	if !fb.IsCorrect {
		t.Fatal("expected the original result returned")
	}
	if len(s.Progress.Answers) != 1 {
		t.Fatalf("expected one stored answer, got %d", len(s.Progress.Answers))
	}
	if s.Progress.TotalScore != questionPoints {
		t.Fatal("expected totals untouched by the duplicate")
	}
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(2))

	if _, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "nope"}); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestRecordAnswer_FreeFormGrading(t *testing.T) {
	env := newRunnerEnv()
	set := bigSet(3)
	set[0].Type = "translation"
	set[0].Options = nil
	s := activeSession(env, store.ModeFixed, set)

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "q0", Answer: "the fast one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.grader.calls != 1 {
		t.Fatal("expected the free-form grader consulted")
	}
	if fb.Score != 80 || !fb.IsCorrect || fb.Feedback != "nice" {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
	if fb.EarnedPoints != questionPoints*80/100 {
		t.Fatalf("expected proportional points, got %d", fb.EarnedPoints)
	}
}

func TestRecordAnswer_GradingFailureDegrades(t *testing.T) {
	env := newRunnerEnv()
	env.grader.err = errors.New("provider down")
	set := bigSet(3)
	set[0].Type = "translation"
	s := activeSession(env, store.ModeFixed, set)

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "q0", Answer: "algo"})
	if err != nil {
		t.Fatalf("grading failure must not surface: %v", err)
	}
	if fb.IsCorrect || fb.Score != 0 {
		t.Fatalf("expected zero credit, got %+v", fb)
	}
	if fb.Feedback == "" {
		t.Fatal("expected an explanatory message")
	}
}

func TestRecordAnswer_SpeechEvaluation(t *testing.T) {
	env := newRunnerEnv()
	set := bigSet(3)
	set[0].Type = "speaking"
	set[0].RequiresAudio = true
	s := activeSession(env, store.ModeFixed, set)

	fb, err := env.runner.RecordAnswer(context.Background(), s, AnswerInput{QuestionID: "q0", Transcript: "veloz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env.speech.calls != 1 {
		t.Fatal("expected the speech evaluator consulted")
	}
	if fb.Score != 90 || !fb.IsCorrect {
		t.Fatalf("unexpected feedback: %+v", fb)
	}
}

func TestDiagnostic_EarlyFinishOfferedAtMin(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeDiagnostic, bigSet(12))
	ctx := context.Background()

	for i := 0; i < DiagnosticMinAnswers; i++ {
		fb, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if i < DiagnosticMinAnswers-1 && fb.EarlyFinishAvailable {
			t.Fatalf("early finish offered after %d answers", i+1)
		}
		if i == DiagnosticMinAnswers-1 && !fb.EarlyFinishAvailable {
			t.Fatal("expected early finish offered at the minimum")
		}
	}
}

func TestCanFinish_FixedModeAlwaysAllowed(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(5))
	if !env.runner.CanFinish(s) {
		t.Fatal("fixed sessions may finish at any point")
	}
}

func TestDiagnostic_CanFinishRequiresMinimum(t *testing.T) {
	env := newRunnerEnv()
	env.gen.err = errors.New("provider down")
	ctx := context.Background()
	s := activeSession(env, store.ModeDiagnostic, bigSet(12))

	if env.runner.CanFinish(s) {
		t.Fatal("a fresh diagnostic must not be finishable")
	}

	// Skips consume questions without counting toward the minimum.
	for i := 0; i < DiagnosticMinAnswers; i++ {
		if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Skip: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if env.runner.CanFinish(s) {
		t.Fatal("skipped answers must not unlock the early finish")
	}

	for i := DiagnosticMinAnswers; i < 2*DiagnosticMinAnswers; i++ {
		if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !env.runner.CanFinish(s) {
		t.Fatal("expected the early finish unlocked at the minimum")
	}
}

func TestDiagnostic_CanFinishWhenSetExhausted(t *testing.T) {
	env := newRunnerEnv()
	env.gen.err = errors.New("provider down")
	ctx := context.Background()
	s := activeSession(env, store.ModeDiagnostic, bigSet(2))

	for i := 0; i < 2; i++ {
		if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if !env.runner.CanFinish(s) {
		t.Fatal("an exhausted diagnostic must be finishable below the minimum")
	}
}

func TestDiagnostic_HardCap(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeDiagnostic, bigSet(15))
	ctx := context.Background()

	for i := 0; i < DiagnosticMaxAnswers; i++ {
		if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// The cap is reached; the next answer is not recorded.
	fb, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: "q12", Answer: "veloz"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fb.SessionComplete {
		t.Fatal("expected the session reported complete at the cap")
	}
	if got := len(nonSkipped(s.Progress.Answers)); got != DiagnosticMaxAnswers {
		t.Fatalf("expected exactly %d scored answers, got %d", DiagnosticMaxAnswers, got)
	}

	q, done, err := env.runner.Next(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done || q != nil {
		t.Fatal("expected Next to report completion at the cap")
	}
}

func TestDiagnostic_LowBufferExtends(t *testing.T) {
	env := newRunnerEnv()
	env.gen.batch = []generation.Candidate{
		{
			Hash:            "gen-1",
			Language:        "spanish",
			Type:            "fill_blank",
			TargetSkill:     skill.Grammar,
			DifficultyLabel: "B1",
			Payload: store.QuestionPayload{
				Question:      "Ayer yo ___ al mercado.",
				CorrectAnswer: "fui",
				Translations:  map[string]string{"english": "Yesterday I went to the market."},
			},
		},
	}
	s := activeSession(env, store.ModeDiagnostic, bigSet(4))
	ctx := context.Background()

	// Two answers leave two remaining, hitting the buffer.
	for i := 0; i < 2; i++ {
		if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if len(s.PracticeSet) != 5 {
		t.Fatalf("expected the set extended to 5, got %d", len(s.PracticeSet))
	}
	if env.gen.callCount() == 0 {
		t.Fatal("expected incremental generation triggered")
	}

	// The generated question landed in the shared pool.
	if _, ok := env.pool.questions["gen-1"]; !ok {
		t.Fatal("expected the generated question inserted into the pool")
	}

	// Exclusions reflect the recent answers.
	env.gen.mu.Lock()
	in := env.gen.incremental[0]
	env.gen.mu.Unlock()
	foundSkill := false
	for _, sk := range in.ExcludeSkills {
		if sk == skill.Vocabulary {
			foundSkill = true
		}
	}
	if !foundSkill {
		t.Errorf("expected vocabulary excluded, got %v", in.ExcludeSkills)
	}
	foundType := false
	for _, ty := range in.ExcludeTypes {
		if ty == "multiple_choice" {
			foundType = true
		}
	}
	if !foundType {
		t.Errorf("expected multiple_choice excluded, got %v", in.ExcludeTypes)
	}
}

func TestDiagnostic_GenerationFailureEndsGracefully(t *testing.T) {
	env := newRunnerEnv()
	env.gen.err = errors.New("provider down")
	s := activeSession(env, store.ModeDiagnostic, bigSet(4))
	ctx := context.Background()

	var fb *AnswerFeedback
	var err error
	for i := 0; i < 4; i++ {
		fb, err = env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: fmt.Sprintf("q%d", i), Answer: "veloz"})
		if err != nil {
			t.Fatalf("generation failure must not surface: %v", err)
		}
	}
	if !fb.SessionComplete {
		t.Fatal("expected the session to end once the pool is exhausted")
	}
}

func TestNext_OrdersByHeuristic(t *testing.T) {
	env := newRunnerEnv()
	set := []store.PracticeQuestion{
		mcQuestion("hard"),
		mcQuestion("target"),
	}
	set[0].DifficultyLabel = "C2"
	set[1].DifficultyLabel = "A2"
	s := activeSession(env, store.ModeFixed, set)

	q, done, err := env.runner.Next(context.Background(), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if done {
		t.Fatal("session should not be complete")
	}
	if q.QuestionID != "target" {
		t.Fatalf("expected the default-tier question first, got %s", q.QuestionID)
	}
}

func TestNext_FixedCompletesOnExhaustion(t *testing.T) {
	env := newRunnerEnv()
	s := activeSession(env, store.ModeFixed, bigSet(1))
	ctx := context.Background()

	if _, err := env.runner.RecordAnswer(ctx, s, AnswerInput{QuestionID: "q0", Answer: "veloz"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, done, err := env.runner.Next(ctx, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !done || q != nil {
		t.Fatal("expected completion once the set is consumed")
	}
}
