// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/lingo/ent/activesession"
	"github.com/abhisek/lingo/ent/learnerprofile"
	"github.com/abhisek/lingo/ent/poolquestion"
	"github.com/abhisek/lingo/ent/questionexposure"
	"github.com/abhisek/lingo/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	activesessionFields := schema.ActiveSession{}.Fields()
	_ = activesessionFields
	// activesessionDescSessionID is the schema descriptor for session_id field.
	activesessionDescSessionID := activesessionFields[0].Descriptor()
	// activesession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	activesession.SessionIDValidator = activesessionDescSessionID.Validators[0].(func(string) error)
	// activesessionDescUserID is the schema descriptor for user_id field.
	activesessionDescUserID := activesessionFields[1].Descriptor()
	// activesession.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	activesession.UserIDValidator = activesessionDescUserID.Validators[0].(func(string) error)
	// activesessionDescLanguage is the schema descriptor for language field.
	activesessionDescLanguage := activesessionFields[2].Descriptor()
	// activesession.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	activesession.LanguageValidator = activesessionDescLanguage.Validators[0].(func(string) error)
	// activesessionDescMode is the schema descriptor for mode field.
	activesessionDescMode := activesessionFields[4].Descriptor()
	// activesession.DefaultMode holds the default value on creation for the mode field.
	activesession.DefaultMode = activesessionDescMode.Default.(string)
	// activesessionDescCreatedAt is the schema descriptor for created_at field.
	activesessionDescCreatedAt := activesessionFields[8].Descriptor()
	// activesession.DefaultCreatedAt holds the default value on creation for the created_at field.
	activesession.DefaultCreatedAt = activesessionDescCreatedAt.Default.(func() time.Time)
	// activesessionDescUpdatedAt is the schema descriptor for updated_at field.
	activesessionDescUpdatedAt := activesessionFields[9].Descriptor()
	// activesession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	activesession.DefaultUpdatedAt = activesessionDescUpdatedAt.Default.(func() time.Time)
	// activesession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	activesession.UpdateDefaultUpdatedAt = activesessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	learnerprofileFields := schema.LearnerProfile{}.Fields()
	_ = learnerprofileFields
	// learnerprofileDescUserID is the schema descriptor for user_id field.
	learnerprofileDescUserID := learnerprofileFields[0].Descriptor()
	// learnerprofile.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	learnerprofile.UserIDValidator = learnerprofileDescUserID.Validators[0].(func(string) error)
	// learnerprofileDescLanguage is the schema descriptor for language field.
	learnerprofileDescLanguage := learnerprofileFields[1].Descriptor()
	// learnerprofile.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	learnerprofile.LanguageValidator = learnerprofileDescLanguage.Validators[0].(func(string) error)
	// learnerprofileDescAbilityEstimate is the schema descriptor for ability_estimate field.
	learnerprofileDescAbilityEstimate := learnerprofileFields[2].Descriptor()
	// learnerprofile.DefaultAbilityEstimate holds the default value on creation for the ability_estimate field.
	learnerprofile.DefaultAbilityEstimate = learnerprofileDescAbilityEstimate.Default.(float64)
	// learnerprofileDescAbilityConfidence is the schema descriptor for ability_confidence field.
	learnerprofileDescAbilityConfidence := learnerprofileFields[3].Descriptor()
	// learnerprofile.DefaultAbilityConfidence holds the default value on creation for the ability_confidence field.
	learnerprofile.DefaultAbilityConfidence = learnerprofileDescAbilityConfidence.Default.(float64)
	// learnerprofileDescUpdatedAt is the schema descriptor for updated_at field.
	learnerprofileDescUpdatedAt := learnerprofileFields[5].Descriptor()
	// learnerprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	learnerprofile.DefaultUpdatedAt = learnerprofileDescUpdatedAt.Default.(func() time.Time)
	// learnerprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	learnerprofile.UpdateDefaultUpdatedAt = learnerprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
	poolquestionFields := schema.PoolQuestion{}.Fields()
	_ = poolquestionFields
	// poolquestionDescHash is the schema descriptor for hash field.
	poolquestionDescHash := poolquestionFields[0].Descriptor()
	// poolquestion.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	poolquestion.HashValidator = poolquestionDescHash.Validators[0].(func(string) error)
	// poolquestionDescLanguage is the schema descriptor for language field.
	poolquestionDescLanguage := poolquestionFields[1].Descriptor()
	// poolquestion.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	poolquestion.LanguageValidator = poolquestionDescLanguage.Validators[0].(func(string) error)
	// poolquestionDescType is the schema descriptor for type field.
	poolquestionDescType := poolquestionFields[2].Descriptor()
	// poolquestion.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	poolquestion.TypeValidator = poolquestionDescType.Validators[0].(func(string) error)
	// poolquestionDescTotalResponses is the schema descriptor for total_responses field.
	poolquestionDescTotalResponses := poolquestionFields[7].Descriptor()
	// poolquestion.DefaultTotalResponses holds the default value on creation for the total_responses field.
	poolquestion.DefaultTotalResponses = poolquestionDescTotalResponses.Default.(int)
	// poolquestionDescCorrectResponses is the schema descriptor for correct_responses field.
	poolquestionDescCorrectResponses := poolquestionFields[8].Descriptor()
	// poolquestion.DefaultCorrectResponses holds the default value on creation for the correct_responses field.
	poolquestion.DefaultCorrectResponses = poolquestionDescCorrectResponses.Default.(int)
	// poolquestionDescCreatedAt is the schema descriptor for created_at field.
	poolquestionDescCreatedAt := poolquestionFields[13].Descriptor()
	// poolquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	poolquestion.DefaultCreatedAt = poolquestionDescCreatedAt.Default.(func() time.Time)
	questionexposureFields := schema.QuestionExposure{}.Fields()
	_ = questionexposureFields
	// questionexposureDescUserID is the schema descriptor for user_id field.
	questionexposureDescUserID := questionexposureFields[0].Descriptor()
	// questionexposure.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	questionexposure.UserIDValidator = questionexposureDescUserID.Validators[0].(func(string) error)
	// questionexposureDescLanguage is the schema descriptor for language field.
	questionexposureDescLanguage := questionexposureFields[1].Descriptor()
	// questionexposure.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	questionexposure.LanguageValidator = questionexposureDescLanguage.Validators[0].(func(string) error)
	// questionexposureDescHash is the schema descriptor for hash field.
	questionexposureDescHash := questionexposureFields[2].Descriptor()
	// questionexposure.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	questionexposure.HashValidator = questionexposureDescHash.Validators[0].(func(string) error)
	// questionexposureDescSeenAt is the schema descriptor for seen_at field.
	questionexposureDescSeenAt := questionexposureFields[3].Descriptor()
	// questionexposure.DefaultSeenAt holds the default value on creation for the seen_at field.
	questionexposure.DefaultSeenAt = questionexposureDescSeenAt.Default.(func() time.Time)
}
