// Code generated by ent, DO NOT EDIT.

package questionexposure

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldUserID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldLanguage, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldHash, v))
}

// SeenAt applies equality check predicate on the "seen_at" field. It's identical to SeenAtEQ.
func SeenAt(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldSeenAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContainsFold(FieldUserID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContainsFold(FieldLanguage, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldContainsFold(FieldHash, v))
}

// SeenAtEQ applies the EQ predicate on the "seen_at" field.
func SeenAtEQ(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldEQ(FieldSeenAt, v))
}

// SeenAtNEQ applies the NEQ predicate on the "seen_at" field.
func SeenAtNEQ(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNEQ(FieldSeenAt, v))
}

// SeenAtIn applies the In predicate on the "seen_at" field.
func SeenAtIn(vs ...time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldIn(FieldSeenAt, vs...))
}

// SeenAtNotIn applies the NotIn predicate on the "seen_at" field.
func SeenAtNotIn(vs ...time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldNotIn(FieldSeenAt, vs...))
}

// SeenAtGT applies the GT predicate on the "seen_at" field.
func SeenAtGT(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGT(FieldSeenAt, v))
}

// SeenAtGTE applies the GTE predicate on the "seen_at" field.
func SeenAtGTE(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldGTE(FieldSeenAt, v))
}

// SeenAtLT applies the LT predicate on the "seen_at" field.
func SeenAtLT(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLT(FieldSeenAt, v))
}

// SeenAtLTE applies the LTE predicate on the "seen_at" field.
func SeenAtLTE(v time.Time) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.FieldLTE(FieldSeenAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuestionExposure) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuestionExposure) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuestionExposure) predicate.QuestionExposure {
	return predicate.QuestionExposure(sql.NotPredicates(p))
}
