package llm

import "context"

// Purpose labels attached to outgoing requests for event logging.
const (
	PurposeQuestionGen            = "question-gen"
	PurposeQuestionGenIncremental = "question-gen-incremental"
	PurposeGrading                = "grading"
	PurposeSpeechEval             = "speech-eval"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context, or "unknown"
// when no label was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
