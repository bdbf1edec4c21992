package grading

import "context"

// Result is a graded answer on the 0..100 scale.
type Result struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// GradeInput describes one free-form answer to grade.
type GradeInput struct {
	// Question is the prompt shown to the learner.
	Question string

	// Expected is the reference answer when one exists. Empty for
	// open-ended questions.
	Expected string

	// Answer is what the learner submitted.
	Answer string

	// Language is the content language being practiced.
	Language string
}

// Grader scores free-form answers that cannot be matched exactly.
type Grader interface {
	Grade(ctx context.Context, in GradeInput) (Result, error)
}

// SpeechInput describes one shadow-speech attempt. The transcript is
// produced by the client's speech recognizer.
type SpeechInput struct {
	TargetText string
	Transcript string
	Language   string
}

// SpeechResult is a scored speech attempt.
type SpeechResult struct {
	AccuracyScore int    `json:"accuracy_score"`
	Feedback      string `json:"feedback"`
}

// SpeechEvaluator scores how closely a spoken attempt matched its target.
type SpeechEvaluator interface {
	Evaluate(ctx context.Context, in SpeechInput) (SpeechResult, error)
}

// Fallback is the safe default when grading fails: progress is never
// blocked, the learner just gets no credit for the answer.
func Fallback() Result {
	return Result{Score: 0, Feedback: "We couldn't grade this answer right now. It has been recorded without credit."}
}

// SpeechFallback is the safe default when speech evaluation fails.
func SpeechFallback() SpeechResult {
	return SpeechResult{AccuracyScore: 0, Feedback: "We couldn't evaluate this recording right now. It has been recorded without credit."}
}
