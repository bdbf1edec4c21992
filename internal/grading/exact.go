package grading

import (
	"strconv"
	"strings"
)

// ExactlyGradable reports whether a question type has a single canonical
// answer that can be matched without the LLM grader.
func ExactlyGradable(qType string) bool {
	switch qType {
	case "multiple_choice", "fill_blank", "sentence_order", "reading", "listening":
		return true
	}
	return false
}

// CheckExact compares the learner's input against the correct answer for
// exactly-gradable types.
//
// Normalization rules:
// - Whitespace is trimmed and collapsed
// - Comparison is case-insensitive
// - For multiple choice: matches against the option text or index (1-N)
func CheckExact(answer, correct string, options []string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}

	if len(options) > 0 {
		// Try matching by option index first.
		if idx, err := strconv.Atoi(answer); err == nil && idx >= 1 && idx <= len(options) {
			return equalNormalized(options[idx-1], correct)
		}
	}

	return equalNormalized(answer, correct)
}

func equalNormalized(a, b string) bool {
	return strings.EqualFold(collapse(a), collapse(b))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
