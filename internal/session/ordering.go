package session

import (
	"github.com/abhisek/lingo/internal/difficulty"
	"github.com/abhisek/lingo/internal/store"
)

// Ordering score weights.
const (
	tierExactBonus    = 3
	tierAdjacentBonus = 1
	sameSkillPenalty  = -2
	sameTypePenalty   = -2
	untestedBonus     = 2
	audioPenalty      = -1

	// defaultTier is the starting target before two answers exist.
	defaultTier = 2
)

// NextTargetTier applies the up/down/hold rule: with fewer than two
// answers the default tier is used; otherwise the last recomputeWindow
// non-skipped answers move the previous tier up when all were correct,
// down when all were wrong, and hold it on a mix. The result stays
// within the label range, one step at a time.
func NextTargetTier(answers []store.AnswerRecord, prevTier int) int {
	scored := nonSkipped(answers)
	if len(scored) < 2 {
		return defaultTier
	}
	if prevTier < 1 {
		prevTier = defaultTier
	}

	window := scored
	if len(window) > recomputeWindow {
		window = window[len(window)-recomputeWindow:]
	}

	allCorrect, allWrong := true, true
	for _, a := range window {
		if a.IsCorrect {
			allWrong = false
		} else {
			allCorrect = false
		}
	}

	switch {
	case allCorrect:
		prevTier++
	case allWrong:
		prevTier--
	}
	if prevTier < 1 {
		prevTier = 1
	}
	if max := len(difficulty.Labels); prevTier > max {
		prevTier = max
	}
	return prevTier
}

// Playable filters out questions that need an audio asset but lack one.
// Such a question is never offered.
func Playable(set []store.PracticeQuestion) []store.PracticeQuestion {
	out := make([]store.PracticeQuestion, 0, len(set))
	for _, q := range set {
		if q.RequiresAudio && q.AudioURL == "" {
			continue
		}
		out = append(out, q)
	}
	return out
}

// PickNext selects the next question from the unanswered candidates via
// the ordering heuristic: reward matching the target tier, avoid
// repeating the previous question's skill and type, prefer skills not
// yet tested this session, mildly deprioritize microphone questions.
// Ties keep pool order. Returns nil when candidates is empty.
func PickNext(candidates []store.PracticeQuestion, answers []store.AnswerRecord, targetTier int) *store.PracticeQuestion {
	if len(candidates) == 0 {
		return nil
	}

	var prevSkill, prevType string
	if len(answers) > 0 {
		last := answers[len(answers)-1]
		prevSkill, prevType = last.TargetSkill, last.QuestionType
	}
	tested := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		tested[a.TargetSkill] = struct{}{}
	}

	bestIdx, bestScore := 0, orderingScore(candidates[0], prevSkill, prevType, tested, targetTier)
	for i := 1; i < len(candidates); i++ {
		if s := orderingScore(candidates[i], prevSkill, prevType, tested, targetTier); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	q := candidates[bestIdx]
	return &q
}

func orderingScore(q store.PracticeQuestion, prevSkill, prevType string, tested map[string]struct{}, targetTier int) int {
	score := 0

	tier := difficulty.Tier(difficulty.Label(q.DifficultyLabel))
	switch {
	case tier == targetTier:
		score += tierExactBonus
	case tier == targetTier-1 || tier == targetTier+1:
		score += tierAdjacentBonus
	}

	if q.TargetSkill == prevSkill && prevSkill != "" {
		score += sameSkillPenalty
	}
	if q.Type == prevType && prevType != "" {
		score += sameTypePenalty
	}
	if _, ok := tested[q.TargetSkill]; !ok {
		score += untestedBonus
	}
	if q.RequiresAudio {
		score += audioPenalty
	}
	return score
}

// Unanswered returns the practice-set questions not yet answered or
// skipped.
func Unanswered(set []store.PracticeQuestion, answers []store.AnswerRecord) []store.PracticeQuestion {
	answered := make(map[string]struct{}, len(answers))
	for _, a := range answers {
		answered[a.QuestionID] = struct{}{}
	}
	out := make([]store.PracticeQuestion, 0, len(set))
	for _, q := range set {
		if _, ok := answered[q.QuestionID]; !ok {
			out = append(out, q)
		}
	}
	return out
}

func nonSkipped(answers []store.AnswerRecord) []store.AnswerRecord {
	out := make([]store.AnswerRecord, 0, len(answers))
	for _, a := range answers {
		if !a.Skipped {
			out = append(out, a)
		}
	}
	return out
}

// recentSkillsAndTypes collects the skills and types of the last
// exclusionWindow non-skipped answers, for generation exclusions.
func recentSkillsAndTypes(answers []store.AnswerRecord) (skills, types []string) {
	scored := nonSkipped(answers)
	if len(scored) > exclusionWindow {
		scored = scored[len(scored)-exclusionWindow:]
	}
	seenSkill := make(map[string]struct{})
	seenType := make(map[string]struct{})
	for _, a := range scored {
		if a.TargetSkill != "" {
			if _, ok := seenSkill[a.TargetSkill]; !ok {
				seenSkill[a.TargetSkill] = struct{}{}
				skills = append(skills, a.TargetSkill)
			}
		}
		if a.QuestionType != "" {
			if _, ok := seenType[a.QuestionType]; !ok {
				seenType[a.QuestionType] = struct{}{}
				types = append(types, a.QuestionType)
			}
		}
	}
	return skills, types
}
