// Package skill defines the taxonomy of language skills a question can
// target and the category each skill falls under. Categories drive the
// tag-set partitioning in pool search: weak areas land in the grammar,
// vocabulary or topic target set according to their skill's category.
package skill

// Skill identifies a practiced language skill.
type Skill string

const (
	Grammar       Skill = "grammar"
	Vocabulary    Skill = "vocabulary"
	Reading       Skill = "reading"
	Listening     Skill = "listening"
	Speaking      Skill = "speaking"
	Writing       Skill = "writing"
	Comprehension Skill = "comprehension"
)

// Default is used when a question carries no target skill.
const Default = Comprehension

// Category buckets skills for tag matching.
type Category int

const (
	CategoryGrammar Category = iota
	CategoryVocabulary
	CategoryTopic
)

// CategoryOf maps a skill to its tag category. Skills that are neither
// grammar nor vocabulary count as topic-level.
func CategoryOf(s Skill) Category {
	switch s {
	case Grammar, Writing:
		return CategoryGrammar
	case Vocabulary:
		return CategoryVocabulary
	default:
		return CategoryTopic
	}
}

// Normalize returns s if it names a known skill, Default otherwise.
func Normalize(s string) Skill {
	switch Skill(s) {
	case Grammar, Vocabulary, Reading, Listening, Speaking, Writing, Comprehension:
		return Skill(s)
	}
	return Default
}
