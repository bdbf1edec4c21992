package generation

import (
	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/skill"
	"github.com/abhisek/lingo/internal/store"
)

// Candidate is a generated question ready for pool insertion. The Hash
// is the canonical content fingerprint; a duplicate hash means the pool
// already holds this question.
type Candidate struct {
	Hash            string
	Language        string
	Type            string
	TargetSkill     skill.Skill
	DifficultyLabel difficulty.Label
	GrammarTags     []string
	VocabTags       []string
	TopicTags       []string
	Payload         store.QuestionPayload
}

// Input holds all context needed to generate a fresh practice set.
type Input struct {
	// Language is the content language being practiced.
	Language string

	// TranslationLanguage is the learner's interface language. Every
	// generated question carries a translation into it.
	TranslationLanguage string

	// TargetDifficulty is the CEFR label to aim for.
	TargetDifficulty difficulty.Label

	// Count is the number of questions requested.
	Count int

	// FocusSkills biases generation toward the learner's weak skills.
	// Empty means no bias.
	FocusSkills []skill.Skill

	// Interests are topic tags from the learner's profile, used to pick
	// passage subjects. Empty slice if no profile.
	Interests []string

	// AvoidQuestions contains the text of questions the learner has
	// already seen. Used for deduplication in the prompt.
	AvoidQuestions []string
}

// IncrementalInput holds the context for a mid-session top-up batch.
type IncrementalInput struct {
	Language            string
	TranslationLanguage string
	TargetDifficulty    difficulty.Label
	Count               int

	// RecentQuestions contains the text of questions already served in
	// this session.
	RecentQuestions []string

	// ExcludeSkills and ExcludeTypes steer the batch away from what the
	// session has just exercised.
	ExcludeSkills []skill.Skill
	ExcludeTypes  []string
}
