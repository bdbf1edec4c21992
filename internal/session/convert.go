package session

import (
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/generation"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// questionPoints is the flat point value of one question.
const questionPoints = 10

// audioTypes require a playable asset or microphone input.
var audioTypes = map[string]bool{
	"listening": true,
	"speaking":  true,
}

// fromPool denormalizes a pool row into a session-scoped question.
func fromPool(q *store.PoolQuestion) store.PracticeQuestion {
	return store.PracticeQuestion{
		QuestionID:        uuid.NewString(),
		Hash:              q.Hash,
		Type:              q.Type,
		TargetSkill:       string(q.TargetSkill),
		DifficultyLabel:   string(q.DifficultyLabel),
		DifficultyNumeric: poolDifficulty(q),
		Points:            questionPoints,
		Question:          q.Payload.Question,
		Passage:           q.Payload.Passage,
		CorrectAnswer:     q.Payload.CorrectAnswer,
		Options:           q.Payload.Options,
		AudioURL:          q.Payload.AudioURL,
		RequiresAudio:     audioTypes[q.Type],
	}
}

// poolDifficulty prefers the calibrated difficulty when present,
// otherwise estimates from label and text.
func poolDifficulty(q *store.PoolQuestion) float64 {
	if q.EmpiricalDifficulty != nil {
		return *q.EmpiricalDifficulty
	}
	return estimateFor(string(q.DifficultyLabel), q.Payload.Question, q.Payload.Passage, q.Payload.CorrectAnswer, q.Language)
}

// fromCandidate converts a freshly generated question for serving.
func fromCandidate(c generation.Candidate) store.PracticeQuestion {
	return store.PracticeQuestion{
		QuestionID:        uuid.NewString(),
		Hash:              c.Hash,
		Type:              c.Type,
		TargetSkill:       string(c.TargetSkill),
		DifficultyLabel:   string(c.DifficultyLabel),
		DifficultyNumeric: estimateFor(string(c.DifficultyLabel), c.Payload.Question, c.Payload.Passage, c.Payload.CorrectAnswer, c.Language),
		Points:            questionPoints,
		Question:          c.Payload.Question,
		Passage:           c.Payload.Passage,
		CorrectAnswer:     c.Payload.CorrectAnswer,
		Options:           c.Payload.Options,
		AudioURL:          c.Payload.AudioURL,
		RequiresAudio:     audioTypes[c.Type],
	}
}

// toPoolRow prepares a generated candidate for pool ingestion.
func toPoolRow(c generation.Candidate) *store.PoolQuestion {
	return &store.PoolQuestion{
		Hash:            c.Hash,
		Language:        c.Language,
		Type:            c.Type,
		TargetSkill:     c.TargetSkill,
		DifficultyLabel: c.DifficultyLabel,
		GrammarTags:     c.GrammarTags,
		VocabTags:       c.VocabTags,
		TopicTags:       c.TopicTags,
		Payload:         c.Payload,
	}
}

func skillsOf(names []string) []skill.Skill {
	out := make([]skill.Skill, len(names))
	for i, n := range names {
		out[i] = skill.Normalize(n)
	}
	return out
}

func estimateFor(label, question, passage, answer, lang string) float64 {
	text := question
	if passage != "" {
		text = strings.TrimSpace(question + " " + passage)
	}
	return difficulty.Estimate(difficulty.Input{
		Label:      difficulty.Label(label),
		Text:       text,
		AnswerText: answer,
	}, lang)
}
