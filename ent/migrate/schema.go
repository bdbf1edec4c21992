// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ActiveSessionsColumns holds the columns for the "active_sessions" table.
	ActiveSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "fixed"},
		{Name: "practice_set", Type: field.TypeJSON, Nullable: true},
		{Name: "progress", Type: field.TypeJSON, Nullable: true},
		{Name: "failure_reason", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ActiveSessionsTable holds the schema information for the "active_sessions" table.
	ActiveSessionsTable = &schema.Table{
		Name:       "active_sessions",
		Columns:    ActiveSessionsColumns,
		PrimaryKey: []*schema.Column{ActiveSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "activesession_session_id",
				Unique:  true,
				Columns: []*schema.Column{ActiveSessionsColumns[1]},
			},
			{
				Name:    "activesession_user_id_language",
				Unique:  false,
				Columns: []*schema.Column{ActiveSessionsColumns[2], ActiveSessionsColumns[3]},
			},
			{
				Name:    "activesession_status",
				Unique:  false,
				Columns: []*schema.Column{ActiveSessionsColumns[4]},
			},
		},
	}
	// LearnerProfilesColumns holds the columns for the "learner_profiles" table.
	LearnerProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "ability_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "ability_confidence", Type: field.TypeFloat64, Default: 0},
		{Name: "skill_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LearnerProfilesTable holds the schema information for the "learner_profiles" table.
	LearnerProfilesTable = &schema.Table{
		Name:       "learner_profiles",
		Columns:    LearnerProfilesColumns,
		PrimaryKey: []*schema.Column{LearnerProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learnerprofile_user_id_language",
				Unique:  true,
				Columns: []*schema.Column{LearnerProfilesColumns[1], LearnerProfilesColumns[2]},
			},
		},
	}
	// PoolQuestionsColumns holds the columns for the "pool_questions" table.
	PoolQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "hash", Type: field.TypeString, Unique: true},
		{Name: "language", Type: field.TypeString},
		{Name: "type", Type: field.TypeString},
		{Name: "target_skill", Type: field.TypeString},
		{Name: "difficulty_label", Type: field.TypeString},
		{Name: "empirical_difficulty", Type: field.TypeFloat64, Nullable: true},
		{Name: "discrimination", Type: field.TypeFloat64, Nullable: true},
		{Name: "total_responses", Type: field.TypeInt, Default: 0},
		{Name: "correct_responses", Type: field.TypeInt, Default: 0},
		{Name: "grammar_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "vocab_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "topic_tags", Type: field.TypeJSON, Nullable: true},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PoolQuestionsTable holds the schema information for the "pool_questions" table.
	PoolQuestionsTable = &schema.Table{
		Name:       "pool_questions",
		Columns:    PoolQuestionsColumns,
		PrimaryKey: []*schema.Column{PoolQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "poolquestion_hash",
				Unique:  true,
				Columns: []*schema.Column{PoolQuestionsColumns[1]},
			},
			{
				Name:    "poolquestion_language_difficulty_label",
				Unique:  false,
				Columns: []*schema.Column{PoolQuestionsColumns[2], PoolQuestionsColumns[5]},
			},
			{
				Name:    "poolquestion_language_target_skill",
				Unique:  false,
				Columns: []*schema.Column{PoolQuestionsColumns[2], PoolQuestionsColumns[4]},
			},
		},
	}
	// QuestionExposuresColumns holds the columns for the "question_exposures" table.
	QuestionExposuresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "language", Type: field.TypeString},
		{Name: "hash", Type: field.TypeString},
		{Name: "seen_at", Type: field.TypeTime},
	}
	// QuestionExposuresTable holds the schema information for the "question_exposures" table.
	QuestionExposuresTable = &schema.Table{
		Name:       "question_exposures",
		Columns:    QuestionExposuresColumns,
		PrimaryKey: []*schema.Column{QuestionExposuresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "questionexposure_user_id_language",
				Unique:  false,
				Columns: []*schema.Column{QuestionExposuresColumns[1], QuestionExposuresColumns[2]},
			},
			{
				Name:    "questionexposure_user_id_language_hash",
				Unique:  true,
				Columns: []*schema.Column{QuestionExposuresColumns[1], QuestionExposuresColumns[2], QuestionExposuresColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ActiveSessionsTable,
		LearnerProfilesTable,
		PoolQuestionsTable,
		QuestionExposuresTable,
	}
)

func init() {
}
