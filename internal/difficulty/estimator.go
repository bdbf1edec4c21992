// Package difficulty estimates a continuous IRT difficulty for a question
// from its authored label and surface-text features. The estimate is pure
// and deterministic: the same input always yields the same value, so initial
// b parameters are reproducible until calibration takes over.
package difficulty

import (
	"strings"
	"unicode"

	"github.com/abhisek/lingo/internal/irt"
	"github.com/abhisek/lingo/internal/language"
)

// Input carries the question features the estimator inspects.
type Input struct {
	Label      Label
	Text       string // question text, with passage appended when present
	AnswerText string
}

// anchorWeight blends the label anchor against the averaged text
// heuristics. The label dominates; heuristics nudge within a level.
const (
	anchorWeight    = 0.6
	heuristicWeight = 0.4
)

// Estimate maps a question to a difficulty in [-3, +3].
func Estimate(in Input, lang string) float64 {
	anchor := Anchor(in.Label)

	logographic := language.IsLogographic(lang)

	signals := []float64{
		lengthSignal(in.Text, logographic),
		clauseSignal(in.Text),
		answerSignal(in.AnswerText, logographic),
	}
	if logographic {
		signals = append(signals, densitySignal(in.Text))
	}

	var sum float64
	for _, s := range signals {
		sum += s
	}
	avg := sum / float64(len(signals))

	return irt.Clamp(anchorWeight*anchor + heuristicWeight*avg)
}

// tierValue converts a 1-based tier into the anchor scale.
func tierValue(tier int) float64 {
	if tier < 1 {
		tier = 1
	}
	if tier > 6 {
		tier = 6
	}
	return -2.5 + float64(tier-1)
}

// lengthSignal buckets text length into six tiers. Word count for
// alphabetic scripts, character count for logographic ones. Empty text
// lands in the lowest tier.
func lengthSignal(text string, logographic bool) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return tierValue(1)
	}

	if logographic {
		n := 0
		for _, r := range text {
			if !unicode.IsSpace(r) {
				n++
			}
		}
		switch {
		case n < 10:
			return tierValue(1)
		case n < 20:
			return tierValue(2)
		case n < 35:
			return tierValue(3)
		case n < 55:
			return tierValue(4)
		case n < 80:
			return tierValue(5)
		default:
			return tierValue(6)
		}
	}

	n := len(strings.Fields(text))
	switch {
	case n < 6:
		return tierValue(1)
	case n < 12:
		return tierValue(2)
	case n < 20:
		return tierValue(3)
	case n < 30:
		return tierValue(4)
	case n < 45:
		return tierValue(5)
	default:
		return tierValue(6)
	}
}

// clauseDelimiters covers Latin and CJK punctuation that splits clauses.
const clauseDelimiters = ",;:.!?、，。！？；"

// clauseSignal counts clauses by delimiter occurrences, never below 1.
func clauseSignal(text string) float64 {
	clauses := 0
	for _, r := range text {
		if strings.ContainsRune(clauseDelimiters, r) {
			clauses++
		}
	}
	if clauses < 1 {
		clauses = 1
	}
	if clauses > 6 {
		clauses = 6
	}
	return tierValue(clauses)
}

// answerSignal buckets the expected answer's complexity.
func answerSignal(answer string, logographic bool) float64 {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return tierValue(1)
	}

	n := len(strings.Fields(answer))
	if logographic {
		n = 0
		for _, r := range answer {
			if !unicode.IsSpace(r) {
				n++
			}
		}
		n = (n + 2) / 3 // ~3 characters per word-equivalent
	}
	switch {
	case n <= 1:
		return tierValue(1)
	case n <= 3:
		return tierValue(2)
	case n <= 6:
		return tierValue(3)
	case n <= 10:
		return tierValue(4)
	case n <= 16:
		return tierValue(5)
	default:
		return tierValue(6)
	}
}

// densitySignal buckets the share of logographic characters in the text.
// A passage dense with kanji or hanzi reads harder than one padded with
// kana or romaji.
func densitySignal(text string) float64 {
	total, logo := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsPunct(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) {
			logo++
		}
	}
	if total == 0 {
		return tierValue(1)
	}
	density := float64(logo) / float64(total)
	tier := 1 + int(density*5)
	return tierValue(tier)
}
