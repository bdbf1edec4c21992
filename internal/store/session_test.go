package store

import (
	"testing"
)

func TestQuestionMapRoundTrip(t *testing.T) {
	set := []PracticeQuestion{
		{
			QuestionID:        "q-1",
			Hash:              "abc123",
			Type:              "multiple_choice",
			TargetSkill:       "vocabulary",
			DifficultyLabel:   "B1",
			DifficultyNumeric: 0.5,
			Points:            10,
			Question:          "What does 'le pain' mean?",
			CorrectAnswer:     "bread",
			Options:           []string{"bread", "pain", "wine", "cheese"},
		},
		{
			QuestionID:      "q-2",
			Type:            "speaking",
			TargetSkill:     "speaking",
			DifficultyLabel: "A2",
			Points:          10,
			Question:        "Say the phrase aloud.",
			CorrectAnswer:   "bonjour tout le monde",
			RequiresAudio:   true,
		},
	}

	maps, err := questionsToMaps(set)
	if err != nil {
		t.Fatalf("questionsToMaps: %v", err)
	}
	back, err := mapsToQuestions(maps)
	if err != nil {
		t.Fatalf("mapsToQuestions: %v", err)
	}

	if len(back) != len(set) {
		t.Fatalf("expected %d questions, got %d", len(set), len(back))
	}
	if back[0].CorrectAnswer != "bread" || len(back[0].Options) != 4 {
		t.Fatalf("first question mangled: %+v", back[0])
	}
	if back[0].DifficultyNumeric != 0.5 {
		t.Fatalf("difficulty lost: %v", back[0].DifficultyNumeric)
	}
	if !back[1].RequiresAudio {
		t.Fatal("requires_audio flag lost")
	}
}

func TestProgressMapRoundTrip(t *testing.T) {
	p := &SessionProgress{
		Answers: []AnswerRecord{
			{
				QuestionID:      "q-1",
				QuestionText:    "What does 'le pain' mean?",
				TargetSkill:     "vocabulary",
				DifficultyLabel: "B1",
				UserAnswer:      "bread",
				IsCorrect:       true,
				EarnedPoints:    10,
				ResponseTimeMs:  1200,
			},
			{QuestionID: "q-2", Skipped: true},
		},
		Phase:              "diagnostic",
		TotalScore:         10,
		MaxScore:           20,
		LastTargetTier:     3,
		EarlyFinishOffered: true,
	}

	m, err := progressToMap(p)
	if err != nil {
		t.Fatalf("progressToMap: %v", err)
	}

	var back SessionProgress
	if err := reencode(m, &back); err != nil {
		t.Fatalf("reencode: %v", err)
	}

	if len(back.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(back.Answers))
	}
	if !back.Answers[0].IsCorrect || back.Answers[0].EarnedPoints != 10 {
		t.Fatalf("first answer mangled: %+v", back.Answers[0])
	}
	if !back.Answers[1].Skipped {
		t.Fatal("skipped flag lost")
	}
	if back.LastTargetTier != 3 || !back.EarlyFinishOffered {
		t.Fatalf("progress fields lost: %+v", back)
	}
}

func TestProgressMapNilStaysNil(t *testing.T) {
	m, err := progressToMap(nil)
	if err != nil {
		t.Fatalf("progressToMap(nil): %v", err)
	}
	if m != nil {
		t.Fatalf("expected nil map, got %v", m)
	}
}
