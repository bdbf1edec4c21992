// Code generated by ent, DO NOT EDIT.

package questionexposure

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the questionexposure type in the database.
	Label = "question_exposure"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldSeenAt holds the string denoting the seen_at field in the database.
	FieldSeenAt = "seen_at"
	// Table holds the table name of the questionexposure in the database.
	Table = "question_exposures"
)

// Columns holds all SQL columns for questionexposure fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldLanguage,
	FieldHash,
	FieldSeenAt,
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
	// HashValidator is a validator for the "hash" field. It is called by the builders before save.
	HashValidator func(string) error
	// DefaultSeenAt holds the default value on creation for the "seen_at" field.
	DefaultSeenAt func() time.Time
)

// OrderOption defines the ordering options for the QuestionExposure queries.
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

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// BySeenAt orders the results by the seen_at field.
func BySeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeenAt, opts...).ToFunc()
}
