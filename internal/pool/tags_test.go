package pool

import (
	"testing"

	"github.com/abhisek/lingo/internal/skill"
)

func TestJaccardEmptySets(t *testing.T) {
	if got := NewTagSet().Jaccard(NewTagSet()); got != 0 {
		t.Errorf("Jaccard(empty, empty) = %v, want 0", got)
	}
}

func TestJaccardIdenticalNonempty(t *testing.T) {
	a := NewTagSet("past-tense", "particles")
	if got := a.Jaccard(a); got != 1 {
		t.Errorf("Jaccard(A, A) = %v, want 1", got)
	}
}

func TestJaccardPartialOverlap(t *testing.T) {
	a := NewTagSet("food", "travel", "work")
	b := NewTagSet("travel", "work", "music")
	// intersection 2, union 4
	if got := a.Jaccard(b); got != 0.5 {
		t.Errorf("Jaccard = %v, want 0.5", got)
	}
}

func TestJaccardOneEmpty(t *testing.T) {
	a := NewTagSet("food")
	if got := a.Jaccard(NewTagSet()); got != 0 {
		t.Errorf("Jaccard(A, empty) = %v, want 0", got)
	}
}

func TestNewTagSetNormalizes(t *testing.T) {
	s := NewTagSet(" Food ", "food", "", "TRAVEL")
	if len(s) != 2 {
		t.Errorf("expected 2 normalized tags, got %d: %v", len(s), s)
	}
}

func TestBuildTargetTagsPartitioning(t *testing.T) {
	weak := []WeakArea{
		{Skill: skill.Grammar, Tag: "past-tense"},
		{Skill: skill.Writing, Tag: "conjunctions"},
		{Skill: skill.Vocabulary, Tag: "food"},
		{Skill: skill.Listening, Tag: "numbers"},
	}
	got := BuildTargetTags(weak, []string{"travel", "music"})

	if _, ok := got.Grammar["past-tense"]; !ok {
		t.Error("grammar weak area missing from grammar set")
	}
	if _, ok := got.Grammar["conjunctions"]; !ok {
		t.Error("writing weak area should land in grammar set")
	}
	if _, ok := got.Vocab["food"]; !ok {
		t.Error("vocabulary weak area missing from vocab set")
	}
	if _, ok := got.Topic["numbers"]; !ok {
		t.Error("listening weak area should land in topic set")
	}
	for _, interest := range []string{"travel", "music"} {
		if _, ok := got.Topic[interest]; !ok {
			t.Errorf("interest %q missing from topic set", interest)
		}
	}
}
