package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/grading"
	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/store"
)

// ErrUnknownQuestion is returned when an answer references a question
// that is not part of the session's practice set.
var ErrUnknownQuestion = errors.New("session: question not in practice set")

// correctThreshold is the grading score at or above which an answer
// counts as correct.
const correctThreshold = 60

// AnswerInput is one submitted answer.
type AnswerInput struct {
	QuestionID string

	// Answer is the learner's text answer. Empty for skips and speech.
	Answer string

	// Transcript is the recognized speech for speaking questions.
	Transcript string

	// TranslationLanguage is the learner's interface language.
	TranslationLanguage string

	ResponseTimeMs int

	// Skip records the question as skipped: it consumes a pool slot but
	// contributes no score.
	Skip bool
}

// AnswerFeedback is the immediate result of recording one answer.
type AnswerFeedback struct {
	IsCorrect     bool   `json:"is_correct"`
	Score         int    `json:"score"`
	EarnedPoints  int    `json:"earned_points"`
	CorrectAnswer string `json:"correct_answer"`
	Feedback      string `json:"feedback,omitempty"`

	// Duplicate marks a resubmission of an already-recorded answer; the
	// stored record is untouched.
	Duplicate bool `json:"duplicate,omitempty"`

	SessionComplete      bool `json:"session_complete"`
	EarlyFinishAvailable bool `json:"early_finish_available,omitempty"`
}

// Runner orchestrates in-session question ordering, grading and the
// diagnostic extension protocol.
type Runner struct {
	sessions store.SessionRepo
	pool     store.PoolRepo
	grader   grading.Grader
	speech   grading.SpeechEvaluator
	extender *Extender
	log      *zap.Logger
}

// NewRunner creates a Runner over the given collaborators.
func NewRunner(sessions store.SessionRepo, pool store.PoolRepo, grader grading.Grader, speech grading.SpeechEvaluator, extender *Extender, log *zap.Logger) *Runner {
	return &Runner{
		sessions: sessions,
		pool:     pool,
		grader:   grader,
		speech:   speech,
		extender: extender,
		log:      log,
	}
}

// Next selects the session's next question. Returns (nil, true) when
// the session is complete: the diagnostic answer cap was reached or the
// available pool is exhausted.
func (r *Runner) Next(ctx context.Context, s *store.PracticeSession) (*store.PracticeQuestion, bool, error) {
	progress := ensureProgress(s)
	answers := progress.Answers

	if s.Mode == store.ModeDiagnostic && len(nonSkipped(answers)) >= DiagnosticMaxAnswers {
		return nil, true, nil
	}

	candidates := Unanswered(Playable(s.PracticeSet), answers)
	if len(candidates) == 0 {
		return nil, true, nil
	}

	target := NextTargetTier(answers, progress.LastTargetTier)
	q := PickNext(candidates, answers, target)

	if target != progress.LastTargetTier {
		progress.LastTargetTier = target
		if err := r.sessions.SaveProgress(ctx, s.SessionID, progress); err != nil {
			return nil, false, fmt.Errorf("saving target tier: %w", err)
		}
	}
	return q, false, nil
}

// RecordAnswer grades and records one answer, then runs the diagnostic
// low-buffer check. Duplicate submissions of the same question text are
// silently ignored.
func (r *Runner) RecordAnswer(ctx context.Context, s *store.PracticeSession, in AnswerInput) (*AnswerFeedback, error) {
	progress := ensureProgress(s)

	q := findQuestion(s.PracticeSet, in.QuestionID)
	if q == nil {
		return nil, ErrUnknownQuestion
	}

	if prev := findByText(progress.Answers, q.Question); prev != nil {
		return &AnswerFeedback{
			IsCorrect:     prev.IsCorrect,
			Score:         scoreOf(prev),
			EarnedPoints:  prev.EarnedPoints,
			CorrectAnswer: q.CorrectAnswer,
			Duplicate:     true,
		}, nil
	}

	if s.Mode == store.ModeDiagnostic && len(nonSkipped(progress.Answers)) >= DiagnosticMaxAnswers {
		return &AnswerFeedback{CorrectAnswer: q.CorrectAnswer, SessionComplete: true}, nil
	}

	score, feedback := r.grade(ctx, s.Language, q, in)
	isCorrect := !in.Skip && score >= correctThreshold
	earned := 0
	if !in.Skip {
		earned = q.Points * score / 100
	}

	record := store.AnswerRecord{
		QuestionID:      q.QuestionID,
		QuestionText:    q.Question,
		QuestionType:    q.Type,
		TargetSkill:     q.TargetSkill,
		DifficultyLabel: q.DifficultyLabel,
		UserAnswer:      in.Answer,
		IsCorrect:       isCorrect,
		EarnedPoints:    earned,
		ResponseTimeMs:  in.ResponseTimeMs,
		Skipped:         in.Skip,
	}
	progress.Answers = append(progress.Answers, record)
	if !in.Skip {
		progress.TotalScore += earned
		progress.MaxScore += q.Points
	}

	scored := len(nonSkipped(progress.Answers))
	if s.Mode == store.ModeDiagnostic && scored >= DiagnosticMinAnswers {
		progress.EarlyFinishOffered = true
	}
	progress.LastTargetTier = NextTargetTier(progress.Answers, progress.LastTargetTier)

	// Skips still trigger the low-buffer check.
	complete := r.maybeExtend(ctx, s, progress, in.TranslationLanguage)

	if err := r.sessions.SaveProgress(ctx, s.SessionID, progress); err != nil {
		return nil, fmt.Errorf("saving answer: %w", err)
	}

	if !in.Skip && q.Hash != "" {
		if err := r.pool.RecordResponse(ctx, q.Hash, isCorrect); err != nil {
			r.log.Warn("recording pool response failed",
				zap.String("hash", q.Hash), zap.Error(err))
		}
	}

	return &AnswerFeedback{
		IsCorrect:            isCorrect,
		Score:                score,
		EarnedPoints:         earned,
		CorrectAnswer:        q.CorrectAnswer,
		Feedback:             feedback,
		SessionComplete:      complete,
		EarlyFinishAvailable: progress.EarlyFinishOffered,
	}, nil
}

// CanFinish reports whether the session may be submitted now. Diagnostic
// sessions need DiagnosticMinAnswers non-skipped answers before an early
// finish, unless no playable questions remain.
func (r *Runner) CanFinish(s *store.PracticeSession) bool {
	if s.Mode != store.ModeDiagnostic {
		return true
	}
	progress := ensureProgress(s)
	if len(nonSkipped(progress.Answers)) >= DiagnosticMinAnswers {
		return true
	}
	return len(Unanswered(Playable(s.PracticeSet), progress.Answers)) == 0
}

// grade routes the answer to exact matching, the speech evaluator or
// the free-form grader. Grading failures degrade to zero credit rather
// than blocking progress.
func (r *Runner) grade(ctx context.Context, lang string, q *store.PracticeQuestion, in AnswerInput) (int, string) {
	if in.Skip {
		return 0, ""
	}

	switch {
	case q.Type == "speaking":
		res, err := r.speech.Evaluate(ctx, grading.SpeechInput{
			TargetText: q.CorrectAnswer,
			Transcript: in.Transcript,
			Language:   lang,
		})
		if err != nil {
			r.log.Warn("speech evaluation failed", zap.Error(err))
			fb := grading.SpeechFallback()
			return fb.AccuracyScore, fb.Feedback
		}
		return res.AccuracyScore, res.Feedback

	case grading.ExactlyGradable(q.Type):
		if grading.CheckExact(in.Answer, q.CorrectAnswer, q.Options) {
			return 100, ""
		}
		return 0, ""

	default:
		res, err := r.grader.Grade(ctx, grading.GradeInput{
			Question: q.Question,
			Expected: q.CorrectAnswer,
			Answer:   in.Answer,
			Language: lang,
		})
		if err != nil {
			r.log.Warn("free-form grading failed", zap.Error(err))
			fb := grading.Fallback()
			return fb.Score, fb.Feedback
		}
		return res.Score, res.Feedback
	}
}

// maybeExtend runs the diagnostic low-buffer check and merges any
// generated questions into the practice set. Returns true when the
// session is complete.
func (r *Runner) maybeExtend(ctx context.Context, s *store.PracticeSession, progress *store.SessionProgress, translationLang string) bool {
	remaining := len(Unanswered(Playable(s.PracticeSet), progress.Answers))
	scored := len(nonSkipped(progress.Answers))

	if s.Mode != store.ModeDiagnostic {
		return remaining == 0
	}
	if scored >= DiagnosticMaxAnswers {
		return true
	}
	if remaining > extensionBuffer {
		return false
	}

	if translationLang == "" {
		translationLang = language.Default
	}
	batch := r.extender.Extend(ctx, s, progress.LastTargetTier, translationLang)
	if len(batch) == 0 {
		// Pool exhausted with no generation success: the session ends
		// once the remaining questions are consumed.
		return remaining == 0
	}

	s.PracticeSet = append(s.PracticeSet, batch...)
	if err := r.sessions.UpdatePracticeSet(ctx, s.SessionID, s.PracticeSet); err != nil {
		r.log.Warn("updating practice set failed",
			zap.String("session_id", s.SessionID), zap.Error(err))
	}
	return false
}

func ensureProgress(s *store.PracticeSession) *store.SessionProgress {
	if s.Progress == nil {
		s.Progress = &store.SessionProgress{
			Answers: []store.AnswerRecord{},
			Phase:   "questions",
		}
	}
	return s.Progress
}

func findQuestion(set []store.PracticeQuestion, id string) *store.PracticeQuestion {
	for i := range set {
		if set[i].QuestionID == id {
			return &set[i]
		}
	}
	return nil
}

func findByText(answers []store.AnswerRecord, text string) *store.AnswerRecord {
	for i := range answers {
		if answers[i].QuestionText == text {
			return &answers[i]
		}
	}
	return nil
}

func scoreOf(a *store.AnswerRecord) int {
	if a.IsCorrect {
		return 100
	}
	return 0
}
