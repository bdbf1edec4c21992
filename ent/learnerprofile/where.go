// Code generated by ent, DO NOT EDIT.

package learnerprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUserID, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLanguage, v))
}

// AbilityEstimate applies equality check predicate on the "ability_estimate" field. It's identical to AbilityEstimateEQ.
func AbilityEstimate(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAbilityEstimate, v))
}

// AbilityConfidence applies equality check predicate on the "ability_confidence" field. It's identical to AbilityConfidenceEQ.
func AbilityConfidence(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAbilityConfidence, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldUserID, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldContainsFold(FieldLanguage, v))
}

// AbilityEstimateEQ applies the EQ predicate on the "ability_estimate" field.
func AbilityEstimateEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAbilityEstimate, v))
}

// AbilityEstimateNEQ applies the NEQ predicate on the "ability_estimate" field.
func AbilityEstimateNEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldAbilityEstimate, v))
}

// AbilityEstimateIn applies the In predicate on the "ability_estimate" field.
func AbilityEstimateIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldAbilityEstimate, vs...))
}

// AbilityEstimateNotIn applies the NotIn predicate on the "ability_estimate" field.
func AbilityEstimateNotIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldAbilityEstimate, vs...))
}

// AbilityEstimateGT applies the GT predicate on the "ability_estimate" field.
func AbilityEstimateGT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldAbilityEstimate, v))
}

// AbilityEstimateGTE applies the GTE predicate on the "ability_estimate" field.
func AbilityEstimateGTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldAbilityEstimate, v))
}

// AbilityEstimateLT applies the LT predicate on the "ability_estimate" field.
func AbilityEstimateLT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldAbilityEstimate, v))
}

// AbilityEstimateLTE applies the LTE predicate on the "ability_estimate" field.
func AbilityEstimateLTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldAbilityEstimate, v))
}

// AbilityConfidenceEQ applies the EQ predicate on the "ability_confidence" field.
func AbilityConfidenceEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldAbilityConfidence, v))
}

// AbilityConfidenceNEQ applies the NEQ predicate on the "ability_confidence" field.
func AbilityConfidenceNEQ(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldAbilityConfidence, v))
}

// AbilityConfidenceIn applies the In predicate on the "ability_confidence" field.
func AbilityConfidenceIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldAbilityConfidence, vs...))
}

// AbilityConfidenceNotIn applies the NotIn predicate on the "ability_confidence" field.
func AbilityConfidenceNotIn(vs ...float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldAbilityConfidence, vs...))
}

// AbilityConfidenceGT applies the GT predicate on the "ability_confidence" field.
func AbilityConfidenceGT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldAbilityConfidence, v))
}

// AbilityConfidenceGTE applies the GTE predicate on the "ability_confidence" field.
func AbilityConfidenceGTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldAbilityConfidence, v))
}

// AbilityConfidenceLT applies the LT predicate on the "ability_confidence" field.
func AbilityConfidenceLT(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldAbilityConfidence, v))
}

// AbilityConfidenceLTE applies the LTE predicate on the "ability_confidence" field.
func AbilityConfidenceLTE(v float64) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldAbilityConfidence, v))
}

// SkillScoresIsNil applies the IsNil predicate on the "skill_scores" field.
func SkillScoresIsNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIsNull(FieldSkillScores))
}

// SkillScoresNotNil applies the NotNil predicate on the "skill_scores" field.
func SkillScoresNotNil() predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotNull(FieldSkillScores))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LearnerProfile) predicate.LearnerProfile {
	return predicate.LearnerProfile(sql.NotPredicates(p))
}
