// Code generated by ent, DO NOT EDIT.

package poolquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the poolquestion type in the database.
	Label = "pool_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTargetSkill holds the string denoting the target_skill field in the database.
	FieldTargetSkill = "target_skill"
	// FieldDifficultyLabel holds the string denoting the difficulty_label field in the database.
	FieldDifficultyLabel = "difficulty_label"
	// FieldEmpiricalDifficulty holds the string denoting the empirical_difficulty field in the database.
	FieldEmpiricalDifficulty = "empirical_difficulty"
	// FieldDiscrimination holds the string denoting the discrimination field in the database.
	FieldDiscrimination = "discrimination"
	// FieldTotalResponses holds the string denoting the total_responses field in the database.
	FieldTotalResponses = "total_responses"
	// FieldCorrectResponses holds the string denoting the correct_responses field in the database.
	FieldCorrectResponses = "correct_responses"
	// FieldGrammarTags holds the string denoting the grammar_tags field in the database.
	FieldGrammarTags = "grammar_tags"
	// FieldVocabTags holds the string denoting the vocab_tags field in the database.
	FieldVocabTags = "vocab_tags"
	// FieldTopicTags holds the string denoting the topic_tags field in the database.
	FieldTopicTags = "topic_tags"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the poolquestion in the database.
	Table = "pool_questions"
)

// Columns holds all SQL columns for poolquestion fields.
var Columns = []string{
	FieldID,
	FieldHash,
	FieldLanguage,
	FieldType,
	FieldTargetSkill,
	FieldDifficultyLabel,
	FieldEmpiricalDifficulty,
	FieldDiscrimination,
	FieldTotalResponses,
	FieldCorrectResponses,
	FieldGrammarTags,
	FieldVocabTags,
	FieldTopicTags,
	FieldPayload,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// TypeValidator is a validator for the "type" field. It is called by the builders before save.
	TypeValidator func(string) error
	// DefaultTotalResponses holds the default value on creation for the "total_responses" field.
	DefaultTotalResponses int
	// DefaultCorrectResponses holds the default value on creation for the "correct_responses" field.
	DefaultCorrectResponses int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PoolQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTargetSkill orders the results by the target_skill field.
func ByTargetSkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetSkill, opts...).ToFunc()
}

// ByDifficultyLabel orders the results by the difficulty_label field.
func ByDifficultyLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficultyLabel, opts...).ToFunc()
}

// ByEmpiricalDifficulty orders the results by the empirical_difficulty field.
func ByEmpiricalDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmpiricalDifficulty, opts...).ToFunc()
}

// ByDiscrimination orders the results by the discrimination field.
func ByDiscrimination(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiscrimination, opts...).ToFunc()
}

// ByTotalResponses orders the results by the total_responses field.
func ByTotalResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalResponses, opts...).ToFunc()
}

// ByCorrectResponses orders the results by the correct_responses field.
func ByCorrectResponses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectResponses, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
