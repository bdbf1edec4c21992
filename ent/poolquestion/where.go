// Code generated by ent, DO NOT EDIT.

package poolquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldID, id))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldHash, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldLanguage, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldType, v))
}

// TargetSkill applies equality check predicate on the "target_skill" field. It's identical to TargetSkillEQ.
func TargetSkill(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldTargetSkill, v))
}

// DifficultyLabel applies equality check predicate on the "difficulty_label" field. It's identical to DifficultyLabelEQ.
func DifficultyLabel(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldDifficultyLabel, v))
}

// EmpiricalDifficulty applies equality check predicate on the "empirical_difficulty" field. It's identical to EmpiricalDifficultyEQ.
func EmpiricalDifficulty(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldEmpiricalDifficulty, v))
}

// Discrimination applies equality check predicate on the "discrimination" field. It's identical to DiscriminationEQ.
func Discrimination(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldDiscrimination, v))
}

// TotalResponses applies equality check predicate on the "total_responses" field. It's identical to TotalResponsesEQ.
func TotalResponses(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldTotalResponses, v))
}

// CorrectResponses applies equality check predicate on the "correct_responses" field. It's identical to CorrectResponsesEQ.
func CorrectResponses(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldCorrectResponses, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContainsFold(FieldHash, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContainsFold(FieldLanguage, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContainsFold(FieldType, v))
}

// TargetSkillEQ applies the EQ predicate on the "target_skill" field.
func TargetSkillEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldTargetSkill, v))
}

// TargetSkillNEQ applies the NEQ predicate on the "target_skill" field.
func TargetSkillNEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldTargetSkill, v))
}

// TargetSkillIn applies the In predicate on the "target_skill" field.
func TargetSkillIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldTargetSkill, vs...))
}

// TargetSkillNotIn applies the NotIn predicate on the "target_skill" field.
func TargetSkillNotIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldTargetSkill, vs...))
}

// TargetSkillGT applies the GT predicate on the "target_skill" field.
func TargetSkillGT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldTargetSkill, v))
}

// TargetSkillGTE applies the GTE predicate on the "target_skill" field.
func TargetSkillGTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldTargetSkill, v))
}

// TargetSkillLT applies the LT predicate on the "target_skill" field.
func TargetSkillLT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldTargetSkill, v))
}

// TargetSkillLTE applies the LTE predicate on the "target_skill" field.
func TargetSkillLTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldTargetSkill, v))
}

// TargetSkillContains applies the Contains predicate on the "target_skill" field.
func TargetSkillContains(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContains(FieldTargetSkill, v))
}

// TargetSkillHasPrefix applies the HasPrefix predicate on the "target_skill" field.
func TargetSkillHasPrefix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasPrefix(FieldTargetSkill, v))
}

// TargetSkillHasSuffix applies the HasSuffix predicate on the "target_skill" field.
func TargetSkillHasSuffix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasSuffix(FieldTargetSkill, v))
}

// TargetSkillEqualFold applies the EqualFold predicate on the "target_skill" field.
func TargetSkillEqualFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEqualFold(FieldTargetSkill, v))
}

// TargetSkillContainsFold applies the ContainsFold predicate on the "target_skill" field.
func TargetSkillContainsFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContainsFold(FieldTargetSkill, v))
}

// DifficultyLabelEQ applies the EQ predicate on the "difficulty_label" field.
func DifficultyLabelEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldDifficultyLabel, v))
}

// DifficultyLabelNEQ applies the NEQ predicate on the "difficulty_label" field.
func DifficultyLabelNEQ(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldDifficultyLabel, v))
}

// DifficultyLabelIn applies the In predicate on the "difficulty_label" field.
func DifficultyLabelIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldDifficultyLabel, vs...))
}

// DifficultyLabelNotIn applies the NotIn predicate on the "difficulty_label" field.
func DifficultyLabelNotIn(vs ...string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldDifficultyLabel, vs...))
}

// DifficultyLabelGT applies the GT predicate on the "difficulty_label" field.
func DifficultyLabelGT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldDifficultyLabel, v))
}

// DifficultyLabelGTE applies the GTE predicate on the "difficulty_label" field.
func DifficultyLabelGTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldDifficultyLabel, v))
}

// DifficultyLabelLT applies the LT predicate on the "difficulty_label" field.
func DifficultyLabelLT(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldDifficultyLabel, v))
}

// DifficultyLabelLTE applies the LTE predicate on the "difficulty_label" field.
func DifficultyLabelLTE(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldDifficultyLabel, v))
}

// DifficultyLabelContains applies the Contains predicate on the "difficulty_label" field.
func DifficultyLabelContains(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContains(FieldDifficultyLabel, v))
}

// DifficultyLabelHasPrefix applies the HasPrefix predicate on the "difficulty_label" field.
func DifficultyLabelHasPrefix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasPrefix(FieldDifficultyLabel, v))
}

// DifficultyLabelHasSuffix applies the HasSuffix predicate on the "difficulty_label" field.
func DifficultyLabelHasSuffix(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldHasSuffix(FieldDifficultyLabel, v))
}

// DifficultyLabelEqualFold applies the EqualFold predicate on the "difficulty_label" field.
func DifficultyLabelEqualFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEqualFold(FieldDifficultyLabel, v))
}

// DifficultyLabelContainsFold applies the ContainsFold predicate on the "difficulty_label" field.
func DifficultyLabelContainsFold(v string) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldContainsFold(FieldDifficultyLabel, v))
}

// EmpiricalDifficultyEQ applies the EQ predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyEQ(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyNEQ applies the NEQ predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyNEQ(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyIn applies the In predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyIn(vs ...float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldEmpiricalDifficulty, vs...))
}

// EmpiricalDifficultyNotIn applies the NotIn predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyNotIn(vs ...float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldEmpiricalDifficulty, vs...))
}

// EmpiricalDifficultyGT applies the GT predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyGT(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyGTE applies the GTE predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyGTE(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyLT applies the LT predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyLT(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyLTE applies the LTE predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyLTE(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldEmpiricalDifficulty, v))
}

// EmpiricalDifficultyIsNil applies the IsNil predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyIsNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIsNull(FieldEmpiricalDifficulty))
}

// EmpiricalDifficultyNotNil applies the NotNil predicate on the "empirical_difficulty" field.
func EmpiricalDifficultyNotNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotNull(FieldEmpiricalDifficulty))
}

// DiscriminationEQ applies the EQ predicate on the "discrimination" field.
func DiscriminationEQ(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldDiscrimination, v))
}

// DiscriminationNEQ applies the NEQ predicate on the "discrimination" field.
func DiscriminationNEQ(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldDiscrimination, v))
}

// DiscriminationIn applies the In predicate on the "discrimination" field.
func DiscriminationIn(vs ...float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldDiscrimination, vs...))
}

// DiscriminationNotIn applies the NotIn predicate on the "discrimination" field.
func DiscriminationNotIn(vs ...float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldDiscrimination, vs...))
}

// DiscriminationGT applies the GT predicate on the "discrimination" field.
func DiscriminationGT(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldDiscrimination, v))
}

// DiscriminationGTE applies the GTE predicate on the "discrimination" field.
func DiscriminationGTE(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldDiscrimination, v))
}

// DiscriminationLT applies the LT predicate on the "discrimination" field.
func DiscriminationLT(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldDiscrimination, v))
}

// DiscriminationLTE applies the LTE predicate on the "discrimination" field.
func DiscriminationLTE(v float64) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldDiscrimination, v))
}

// DiscriminationIsNil applies the IsNil predicate on the "discrimination" field.
func DiscriminationIsNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIsNull(FieldDiscrimination))
}

// DiscriminationNotNil applies the NotNil predicate on the "discrimination" field.
func DiscriminationNotNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotNull(FieldDiscrimination))
}

// TotalResponsesEQ applies the EQ predicate on the "total_responses" field.
func TotalResponsesEQ(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldTotalResponses, v))
}

// TotalResponsesNEQ applies the NEQ predicate on the "total_responses" field.
func TotalResponsesNEQ(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldTotalResponses, v))
}

// TotalResponsesIn applies the In predicate on the "total_responses" field.
func TotalResponsesIn(vs ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldTotalResponses, vs...))
}

// TotalResponsesNotIn applies the NotIn predicate on the "total_responses" field.
func TotalResponsesNotIn(vs ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldTotalResponses, vs...))
}

// TotalResponsesGT applies the GT predicate on the "total_responses" field.
func TotalResponsesGT(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldTotalResponses, v))
}

// TotalResponsesGTE applies the GTE predicate on the "total_responses" field.
func TotalResponsesGTE(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldTotalResponses, v))
}

// TotalResponsesLT applies the LT predicate on the "total_responses" field.
func TotalResponsesLT(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldTotalResponses, v))
}

// TotalResponsesLTE applies the LTE predicate on the "total_responses" field.
func TotalResponsesLTE(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldTotalResponses, v))
}

// CorrectResponsesEQ applies the EQ predicate on the "correct_responses" field.
func CorrectResponsesEQ(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldCorrectResponses, v))
}

// CorrectResponsesNEQ applies the NEQ predicate on the "correct_responses" field.
func CorrectResponsesNEQ(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldCorrectResponses, v))
}

// CorrectResponsesIn applies the In predicate on the "correct_responses" field.
func CorrectResponsesIn(vs ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldCorrectResponses, vs...))
}

// CorrectResponsesNotIn applies the NotIn predicate on the "correct_responses" field.
func CorrectResponsesNotIn(vs ...int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldCorrectResponses, vs...))
}

// CorrectResponsesGT applies the GT predicate on the "correct_responses" field.
func CorrectResponsesGT(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldCorrectResponses, v))
}

// CorrectResponsesGTE applies the GTE predicate on the "correct_responses" field.
func CorrectResponsesGTE(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldCorrectResponses, v))
}

// CorrectResponsesLT applies the LT predicate on the "correct_responses" field.
func CorrectResponsesLT(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldCorrectResponses, v))
}

// CorrectResponsesLTE applies the LTE predicate on the "correct_responses" field.
func CorrectResponsesLTE(v int) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldCorrectResponses, v))
}

// GrammarTagsIsNil applies the IsNil predicate on the "grammar_tags" field.
func GrammarTagsIsNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIsNull(FieldGrammarTags))
}

// GrammarTagsNotNil applies the NotNil predicate on the "grammar_tags" field.
func GrammarTagsNotNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotNull(FieldGrammarTags))
}

// VocabTagsIsNil applies the IsNil predicate on the "vocab_tags" field.
func VocabTagsIsNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIsNull(FieldVocabTags))
}

// VocabTagsNotNil applies the NotNil predicate on the "vocab_tags" field.
func VocabTagsNotNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotNull(FieldVocabTags))
}

// TopicTagsIsNil applies the IsNil predicate on the "topic_tags" field.
func TopicTagsIsNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIsNull(FieldTopicTags))
}

// TopicTagsNotNil applies the NotNil predicate on the "topic_tags" field.
func TopicTagsNotNil() predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotNull(FieldTopicTags))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PoolQuestion) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PoolQuestion) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PoolQuestion) predicate.PoolQuestion {
	return predicate.PoolQuestion(sql.NotPredicates(p))
}
