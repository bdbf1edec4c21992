package session

import (
	"testing"

	"github.com/abhisek/lingo/internal/store"
)

func answer(skill string, correct bool) store.AnswerRecord {
	return store.AnswerRecord{TargetSkill: skill, IsCorrect: correct}
}

func skipped() store.AnswerRecord {
	return store.AnswerRecord{Skipped: true}
}

func TestNextTargetTier(t *testing.T) {
	tests := []struct {
		name     string
		answers  []store.AnswerRecord
		prevTier int
		want     int
	}{
		{"no answers defaults to tier 2", nil, 0, 2},
		{"one answer defaults to tier 2", []store.AnswerRecord{answer("grammar", true)}, 0, 2},
		{"skips do not count toward the two-answer threshold",
			[]store.AnswerRecord{answer("grammar", true), skipped()}, 0, 2},
		{"all correct moves up one",
			[]store.AnswerRecord{answer("grammar", true), answer("vocabulary", true), answer("reading", true)}, 2, 3},
		{"all wrong moves down one",
			[]store.AnswerRecord{answer("grammar", false), answer("vocabulary", false), answer("reading", false)}, 3, 2},
		{"mixed holds",
			[]store.AnswerRecord{answer("grammar", true), answer("vocabulary", false), answer("reading", true)}, 3, 3},
		{"window looks at last three only",
			[]store.AnswerRecord{answer("grammar", false), answer("vocabulary", true), answer("reading", true), answer("writing", true)}, 2, 3},
		{"skips excluded from the window",
			[]store.AnswerRecord{answer("grammar", true), answer("vocabulary", true), skipped(), answer("reading", true)}, 2, 3},
		{"clamped at top",
			[]store.AnswerRecord{answer("grammar", true), answer("vocabulary", true), answer("reading", true)}, 6, 6},
		{"clamped at bottom",
			[]store.AnswerRecord{answer("grammar", false), answer("vocabulary", false)}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextTargetTier(tt.answers, tt.prevTier); got != tt.want {
				t.Errorf("NextTargetTier() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextTargetTier_NeverJumps(t *testing.T) {
	// Three consecutive correct answers at tier 2 move to 3, not 5.
	answers := []store.AnswerRecord{
		{TargetSkill: "grammar", DifficultyLabel: "A2", IsCorrect: true},
		{TargetSkill: "vocabulary", DifficultyLabel: "A2", IsCorrect: true},
		{TargetSkill: "reading", DifficultyLabel: "A2", IsCorrect: true},
	}
	if got := NextTargetTier(answers, 2); got != 3 {
		t.Fatalf("expected tier 3, got %d", got)
	}
}

func TestPlayable_FiltersAudioWithoutAsset(t *testing.T) {
	set := []store.PracticeQuestion{
		{QuestionID: "q1", Type: "listening", RequiresAudio: true},
		{QuestionID: "q2", Type: "listening", RequiresAudio: true, AudioURL: "https://cdn/audio.mp3"},
		{QuestionID: "q3", Type: "fill_blank"},
	}
	got := Playable(set)
	if len(got) != 2 {
		t.Fatalf("expected 2 playable questions, got %d", len(got))
	}
	for _, q := range got {
		if q.QuestionID == "q1" {
			t.Error("question lacking its audio asset must never be offered")
		}
	}
}

func TestPickNext_PrefersTargetTier(t *testing.T) {
	candidates := []store.PracticeQuestion{
		{QuestionID: "far", DifficultyLabel: "C2", TargetSkill: "grammar"},
		{QuestionID: "adjacent", DifficultyLabel: "B1", TargetSkill: "vocabulary"},
		{QuestionID: "exact", DifficultyLabel: "A2", TargetSkill: "reading"},
	}
	q := PickNext(candidates, nil, 2)
	if q == nil || q.QuestionID != "exact" {
		t.Fatalf("expected the exact-tier candidate, got %+v", q)
	}
}

func TestPickNext_AvoidsRepeatingSkillAndType(t *testing.T) {
	answers := []store.AnswerRecord{
		{QuestionID: "prev", TargetSkill: "grammar", QuestionType: "fill_blank"},
	}
	candidates := []store.PracticeQuestion{
		{QuestionID: "same", DifficultyLabel: "A2", TargetSkill: "grammar", Type: "fill_blank"},
		{QuestionID: "different", DifficultyLabel: "A2", TargetSkill: "vocabulary", Type: "multiple_choice"},
	}
	q := PickNext(candidates, answers, 2)
	if q.QuestionID != "different" {
		t.Fatalf("expected the skill/type change, got %s", q.QuestionID)
	}
}

func TestPickNext_UntestedSkillBonus(t *testing.T) {
	answers := []store.AnswerRecord{
		{QuestionID: "a1", TargetSkill: "grammar", QuestionType: "translation"},
		{QuestionID: "a2", TargetSkill: "vocabulary", QuestionType: "multiple_choice"},
	}
	candidates := []store.PracticeQuestion{
		{QuestionID: "tested", DifficultyLabel: "A2", TargetSkill: "grammar", Type: "fill_blank"},
		{QuestionID: "untested", DifficultyLabel: "A2", TargetSkill: "reading", Type: "reading"},
	}
	q := PickNext(candidates, answers, 2)
	if q.QuestionID != "untested" {
		t.Fatalf("expected the untested skill, got %s", q.QuestionID)
	}
}

func TestPickNext_AudioPenaltyBreaksTie(t *testing.T) {
	candidates := []store.PracticeQuestion{
		{QuestionID: "mic", DifficultyLabel: "A2", TargetSkill: "speaking", Type: "speaking", RequiresAudio: true},
		{QuestionID: "text", DifficultyLabel: "A2", TargetSkill: "writing", Type: "fill_blank"},
	}
	q := PickNext(candidates, nil, 2)
	if q.QuestionID != "text" {
		t.Fatalf("expected the microphone question deprioritized, got %s", q.QuestionID)
	}
}

func TestPickNext_TiesKeepPoolOrder(t *testing.T) {
	candidates := []store.PracticeQuestion{
		{QuestionID: "first", DifficultyLabel: "A2", TargetSkill: "grammar", Type: "fill_blank"},
		{QuestionID: "second", DifficultyLabel: "A2", TargetSkill: "vocabulary", Type: "multiple_choice"},
	}
	q := PickNext(candidates, nil, 2)
	if q.QuestionID != "first" {
		t.Fatalf("expected pool order on ties, got %s", q.QuestionID)
	}
}

func TestPickNext_Empty(t *testing.T) {
	if q := PickNext(nil, nil, 2); q != nil {
		t.Fatalf("expected nil for empty candidates, got %+v", q)
	}
}

func TestUnanswered(t *testing.T) {
	set := []store.PracticeQuestion{
		{QuestionID: "q1"}, {QuestionID: "q2"}, {QuestionID: "q3"},
	}
	answers := []store.AnswerRecord{
		{QuestionID: "q1"},
		{QuestionID: "q3", Skipped: true}, // skips consume their slot
	}
	got := Unanswered(set, answers)
	if len(got) != 1 || got[0].QuestionID != "q2" {
		t.Fatalf("expected only q2 unanswered, got %+v", got)
	}
}

func TestRecentSkillsAndTypes(t *testing.T) {
	answers := []store.AnswerRecord{
		{TargetSkill: "writing", QuestionType: "translation"}, // outside the window
		{TargetSkill: "grammar", QuestionType: "fill_blank"},
		{TargetSkill: "grammar", QuestionType: "fill_blank"}, // duplicates collapse
		{Skipped: true, TargetSkill: "speaking", QuestionType: "speaking"},
		{TargetSkill: "vocabulary", QuestionType: "multiple_choice"},
		{TargetSkill: "reading", QuestionType: "reading"},
		{TargetSkill: "listening", QuestionType: "listening"},
	}
	skills, types := recentSkillsAndTypes(answers)

	for _, s := range skills {
		if s == "writing" {
			t.Error("expected the window to slide past the oldest answer")
		}
		if s == "speaking" {
			t.Error("expected skipped answers excluded from the window")
		}
	}
	if len(skills) != 4 {
		t.Fatalf("expected 4 distinct skills, got %v", skills)
	}
	if len(types) != 4 {
		t.Fatalf("expected 4 distinct types, got %v", types)
	}
}
