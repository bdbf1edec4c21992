package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/lingo/internal/llm"
)

const gradeSystemPrompt = `You are a language tutor grading a learner's answer.

Rules:
- Score from 0 to 100. 100 means fully correct, 0 means entirely wrong or empty.
- Accept valid alternative phrasings; meaning matters more than word-for-word match.
- Minor spelling or accent mistakes cost a few points, not all of them.
- Feedback is one or two short sentences in the learner's interface language, encouraging and specific.`

const speechSystemPrompt = `You are a pronunciation coach scoring a shadow-speech attempt.

You receive the sentence the learner was asked to say and the transcript of what a speech recognizer heard.

Rules:
- Score from 0 to 100 for how closely the transcript matches the target.
- Missing or substituted words cost points in proportion to how much they change the sentence.
- An empty or unrelated transcript scores 0.
- Feedback is one short sentence naming the words to practice.`

var resultSchema = &llm.Schema{
	Name:        "grade-result",
	Description: "A graded answer with score and feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Score from 0 (wrong) to 100 (fully correct)",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two short sentences of feedback",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}

// LLMGrader grades free-form answers and speech attempts with the LLM
// provider.
type LLMGrader struct {
	provider    llm.Provider
	maxTokens   int
	temperature float64
}

// NewLLMGrader creates a grader backed by the given provider.
func NewLLMGrader(provider llm.Provider) *LLMGrader {
	return &LLMGrader{provider: provider, maxTokens: 256, temperature: 0.2}
}

// Grade scores one free-form answer.
func (g *LLMGrader) Grade(ctx context.Context, in GradeInput) (Result, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeGrading)

	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", in.Language)
	fmt.Fprintf(&b, "Question: %s\n", in.Question)
	if in.Expected != "" {
		fmt.Fprintf(&b, "Reference answer: %s\n", in.Expected)
	}
	fmt.Fprintf(&b, "Learner's answer: %s\n", in.Answer)

	var out Result
	if err := g.run(ctx, gradeSystemPrompt, b.String(), &out); err != nil {
		return Result{}, err
	}
	out.Score = clampScore(out.Score)
	return out, nil
}

// Evaluate scores one shadow-speech attempt.
func (g *LLMGrader) Evaluate(ctx context.Context, in SpeechInput) (SpeechResult, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeSpeechEval)

	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", in.Language)
	fmt.Fprintf(&b, "Target sentence: %s\n", in.TargetText)
	fmt.Fprintf(&b, "Recognized transcript: %s\n", in.Transcript)

	var out Result
	if err := g.run(ctx, speechSystemPrompt, b.String(), &out); err != nil {
		return SpeechResult{}, err
	}
	return SpeechResult{AccuracyScore: clampScore(out.Score), Feedback: out.Feedback}, nil
}

func (g *LLMGrader) run(ctx context.Context, system, userMsg string, out *Result) error {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      resultSchema,
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("LLM grading failed: %w", err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("failed to parse grading response: %w", err)
	}
	return nil
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
