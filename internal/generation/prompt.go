package generation

import (
	"fmt"
	"strings"

	"github.com/abhisek/lingo/internal/language"
	"github.com/abhisek/lingo/internal/skill"
)

const systemPrompt = `You are a language tutor creating practice questions for adult learners.

Rules:
- Generate the requested number of questions in the target language at the given CEFR level.
- Vary the exercise types and target skills across the batch; do not produce two near-identical questions.
- Question text is written in the target language. The translation field carries a faithful translation into the learner's interface language.
- For multiple_choice, provide exactly 4 options where exactly one is correct. Distractors should reflect plausible learner mistakes, not random words.
- For fill_blank, mark the gap with ___ and put the missing word or phrase in correct_answer.
- For reading, provide a short passage and a comprehension question about it.
- For translation, the question is a sentence to translate and correct_answer is the expected translation.
- For speaking, correct_answer is the exact sentence the learner should say aloud.
- Tag every question with the grammar points, vocabulary domains and topics it exercises, in lowercase English.
- Do not repeat any question from the "avoid" list.`

// buildUserMessage constructs the user message for a fresh practice set.
func buildUserMessage(in Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n", languageName(in.Language))
	fmt.Fprintf(&b, "Interface language: %s\n", languageName(in.TranslationLanguage))
	fmt.Fprintf(&b, "CEFR level: %s\n", in.TargetDifficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", in.Count)

	if len(in.FocusSkills) > 0 {
		fmt.Fprintf(&b, "Focus on these skills: %s\n", joinSkills(in.FocusSkills))
	}
	if len(in.Interests) > 0 {
		fmt.Fprintf(&b, "Learner interests: %s\n", strings.Join(in.Interests, ", "))
	}

	b.WriteString("\nAvoid repeating these questions:\n")
	b.WriteString(buildAvoid(in.AvoidQuestions, cfg.MaxAvoidQuestions))

	return b.String()
}

// buildIncrementalMessage constructs the user message for a mid-session
// top-up batch with skill and type exclusions.
func buildIncrementalMessage(in IncrementalInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Language: %s\n", languageName(in.Language))
	fmt.Fprintf(&b, "Interface language: %s\n", languageName(in.TranslationLanguage))
	fmt.Fprintf(&b, "CEFR level: %s\n", in.TargetDifficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", in.Count)

	if len(in.ExcludeSkills) > 0 {
		fmt.Fprintf(&b, "Do NOT target these skills: %s\n", joinSkills(in.ExcludeSkills))
	}
	if len(in.ExcludeTypes) > 0 {
		fmt.Fprintf(&b, "Do NOT use these exercise types: %s\n", strings.Join(in.ExcludeTypes, ", "))
	}

	b.WriteString("\nAvoid repeating these questions:\n")
	b.WriteString(buildAvoid(in.RecentQuestions, cfg.MaxAvoidQuestions))

	return b.String()
}

// buildAvoid formats already-seen questions for the prompt, respecting
// the max limit. Returns "None" if there are none.
func buildAvoid(questions []string, max int) string {
	if len(questions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(questions) > max {
		questions = questions[len(questions)-max:]
	}

	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}

func joinSkills(skills []skill.Skill) string {
	parts := make([]string, len(skills))
	for i, s := range skills {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}

func languageName(code string) string {
	if l, ok := language.Get(code); ok {
		return l.Name
	}
	return code
}
