package pool

import (
	"strings"

	"github.com/abhisek/lingo/internal/skill"
)

// TagSet is a normalized set of content tags.
type TagSet map[string]struct{}

// NewTagSet builds a set from tags, lowercasing and dropping empties.
func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		s[t] = struct{}{}
	}
	return s
}

// Add inserts a tag into the set.
func (s TagSet) Add(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag != "" {
		s[tag] = struct{}{}
	}
}

// Jaccard returns |s ∩ other| / |s ∪ other|. Two empty sets have zero
// similarity: no evidence of overlap is not the same as perfect overlap.
func (s TagSet) Jaccard(other TagSet) float64 {
	if len(s) == 0 && len(other) == 0 {
		return 0
	}
	inter := 0
	for t := range s {
		if _, ok := other[t]; ok {
			inter++
		}
	}
	union := len(s) + len(other) - inter
	return float64(inter) / float64(union)
}

// WeakArea is one record of learner weakness: the skill it was observed
// on and the tag naming the weak concept.
type WeakArea struct {
	Skill skill.Skill
	Tag   string
}

// TargetTags is the learner's target tag profile, partitioned by category.
type TargetTags struct {
	Grammar TagSet
	Vocab   TagSet
	Topic   TagSet
}

// BuildTargetTags partitions weak areas by their declared skill's category
// and folds all interests into the topic set.
func BuildTargetTags(weakAreas []WeakArea, interests []string) TargetTags {
	t := TargetTags{
		Grammar: NewTagSet(),
		Vocab:   NewTagSet(),
		Topic:   NewTagSet(),
	}
	for _, wa := range weakAreas {
		switch skill.CategoryOf(wa.Skill) {
		case skill.CategoryGrammar:
			t.Grammar.Add(wa.Tag)
		case skill.CategoryVocabulary:
			t.Vocab.Add(wa.Tag)
		default:
			t.Topic.Add(wa.Tag)
		}
	}
	for _, in := range interests {
		t.Topic.Add(in)
	}
	return t
}
