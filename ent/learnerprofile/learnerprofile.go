// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the learnerprofile type in the database.
	Label = "learner_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldAbilityEstimate holds the string denoting the ability_estimate field in the database.
	FieldAbilityEstimate = "ability_estimate"
	// FieldAbilityConfidence holds the string denoting the ability_confidence field in the database.
	FieldAbilityConfidence = "ability_confidence"
	// FieldSkillScores holds the string denoting the skill_scores field in the database.
	FieldSkillScores = "skill_scores"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the learnerprofile in the database.
	Table = "learner_profiles"
)

// Columns holds all SQL columns for learnerprofile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLanguage,
	FieldAbilityEstimate,
	FieldAbilityConfidence,
	FieldSkillScores,
	FieldUpdatedAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	LanguageValidator func(string) error
	// DefaultAbilityEstimate holds the default value on creation for the "ability_estimate" field.
	DefaultAbilityEstimate float64
	// DefaultAbilityConfidence holds the default value on creation for the "ability_confidence" field.
	DefaultAbilityConfidence float64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the LearnerProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByAbilityEstimate orders the results by the ability_estimate field.
func ByAbilityEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbilityEstimate, opts...).ToFunc()
}

// ByAbilityConfidence orders the results by the ability_confidence field.
func ByAbilityConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbilityConfidence, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
