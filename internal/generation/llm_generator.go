package generation

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/llm"
	"github.com/abhisek/lingo/internal/pool"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	log      *zap.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg, log: log}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Type            string   `json:"type"`
	TargetSkill     string   `json:"target_skill"`
	DifficultyLabel string   `json:"difficulty_label"`
	Question        string   `json:"question"`
	Passage         string   `json:"passage"`
	CorrectAnswer   string   `json:"correct_answer"`
	Options         []string `json:"options"`
	Translation     string   `json:"translation"`
	GrammarTags     []string `json:"grammar_tags"`
	VocabTags       []string `json:"vocab_tags"`
	TopicTags       []string `json:"topic_tags"`
}

// Generate produces a batch of questions for a fresh practice set.
func (g *LLMGenerator) Generate(ctx context.Context, input Input) ([]Candidate, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	return g.run(ctx, buildUserMessage(input, g.config), input.Language, input.TranslationLanguage, input.TargetDifficulty)
}

// GenerateIncremental produces a mid-session top-up batch.
func (g *LLMGenerator) GenerateIncremental(ctx context.Context, input IncrementalInput) ([]Candidate, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGenIncremental)
	return g.run(ctx, buildIncrementalMessage(input, g.config), input.Language, input.TranslationLanguage, input.TargetDifficulty)
}

func (g *LLMGenerator) run(ctx context.Context, userMsg, lang, translationLang string, fallback difficulty.Label) ([]Candidate, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	seen := make(map[string]struct{}, len(raw.Questions))
	out := make([]Candidate, 0, len(raw.Questions))
	for _, q := range raw.Questions {
		c, reason := g.toCandidate(q, lang, translationLang, fallback)
		if reason != "" {
			g.log.Debug("dropping generated question",
				zap.String("reason", reason),
				zap.String("question", q.Question))
			continue
		}
		if _, dup := seen[c.Hash]; dup {
			continue
		}
		seen[c.Hash] = struct{}{}
		out = append(out, c)
	}
	return out, nil
}

// toCandidate validates one raw item and converts it. A non-empty reason
// means the item is dropped.
func (g *LLMGenerator) toCandidate(q questionOutput, lang, translationLang string, fallback difficulty.Label) (Candidate, string) {
	switch {
	case q.Question == "":
		return Candidate{}, "question is empty"
	case len(q.Question) > g.config.MaxQuestionLen:
		return Candidate{}, "question too long"
	case len(q.Passage) > g.config.MaxPassageLen:
		return Candidate{}, "passage too long"
	case q.CorrectAnswer == "":
		return Candidate{}, "correct_answer is empty"
	case q.Translation == "":
		return Candidate{}, "translation is empty"
	}

	if q.Type == "multiple_choice" {
		if len(q.Options) != 4 {
			return Candidate{}, "multiple_choice needs exactly 4 options"
		}
		found := false
		for _, o := range q.Options {
			if o == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return Candidate{}, "correct_answer not among options"
		}
	}

	label := difficulty.Label(q.DifficultyLabel)
	if difficulty.Tier(label) == 0 {
		label = fallback
	}

	payload := store.QuestionPayload{
		Question:      q.Question,
		Passage:       q.Passage,
		CorrectAnswer: q.CorrectAnswer,
		Options:       q.Options,
		Translations:  map[string]string{translationLang: q.Translation},
	}

	return Candidate{
		Hash:            pool.Fingerprint(q.Type, payload),
		Language:        lang,
		Type:            q.Type,
		TargetSkill:     skill.Normalize(q.TargetSkill),
		DifficultyLabel: label,
		GrammarTags:     q.GrammarTags,
		VocabTags:       q.VocabTags,
		TopicTags:       q.TopicTags,
		Payload:         payload,
	}, ""
}
