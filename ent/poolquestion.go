// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/poolquestion"
)

// PoolQuestion is the model entity for the PoolQuestion schema.
type PoolQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Content fingerprint used for deduplication
	Hash string `json:"hash,omitempty"`
	// Content language code, e.g. japanese
	Language string `json:"language,omitempty"`
	// Question modality, e.g. multiple_choice
	Type string `json:"type,omitempty"`
	// Skill the question exercises
	TargetSkill string `json:"target_skill,omitempty"`
	// Authored CEFR label (A1-C2)
	DifficultyLabel string `json:"difficulty_label,omitempty"`
	// Calibrated IRT b parameter
	EmpiricalDifficulty *float64 `json:"empirical_difficulty,omitempty"`
	// Calibrated IRT a parameter
	Discrimination *float64 `json:"discrimination,omitempty"`
	// TotalResponses holds the value of the "total_responses" field.
	TotalResponses int `json:"total_responses,omitempty"`
	// CorrectResponses holds the value of the "correct_responses" field.
	CorrectResponses int `json:"correct_responses,omitempty"`
	// GrammarTags holds the value of the "grammar_tags" field.
	GrammarTags []string `json:"grammar_tags,omitempty"`
	// VocabTags holds the value of the "vocab_tags" field.
	VocabTags []string `json:"vocab_tags,omitempty"`
	// TopicTags holds the value of the "topic_tags" field.
	TopicTags []string `json:"topic_tags,omitempty"`
	// Authored question content
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PoolQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case poolquestion.FieldGrammarTags, poolquestion.FieldVocabTags, poolquestion.FieldTopicTags, poolquestion.FieldPayload:
			values[i] = new([]byte)
		case poolquestion.FieldEmpiricalDifficulty, poolquestion.FieldDiscrimination:
			values[i] = new(sql.NullFloat64)
		case poolquestion.FieldID, poolquestion.FieldTotalResponses, poolquestion.FieldCorrectResponses:
			values[i] = new(sql.NullInt64)
		case poolquestion.FieldHash, poolquestion.FieldLanguage, poolquestion.FieldType, poolquestion.FieldTargetSkill, poolquestion.FieldDifficultyLabel:
			values[i] = new(sql.NullString)
		case poolquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PoolQuestion fields.
func (_m *PoolQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case poolquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case poolquestion.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case poolquestion.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case poolquestion.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = value.String
			}
		case poolquestion.FieldTargetSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_skill", values[i])
			} else if value.Valid {
				_m.TargetSkill = value.String
			}
		case poolquestion.FieldDifficultyLabel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty_label", values[i])
			} else if value.Valid {
				_m.DifficultyLabel = value.String
			}
		case poolquestion.FieldEmpiricalDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field empirical_difficulty", values[i])
			} else if value.Valid {
				_m.EmpiricalDifficulty = new(float64)
				*_m.EmpiricalDifficulty = value.Float64
			}
		case poolquestion.FieldDiscrimination:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field discrimination", values[i])
			} else if value.Valid {
				_m.Discrimination = new(float64)
				*_m.Discrimination = value.Float64
			}
		case poolquestion.FieldTotalResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_responses", values[i])
			} else if value.Valid {
				_m.TotalResponses = int(value.Int64)
			}
		case poolquestion.FieldCorrectResponses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_responses", values[i])
			} else if value.Valid {
				_m.CorrectResponses = int(value.Int64)
			}
		case poolquestion.FieldGrammarTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field grammar_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.GrammarTags); err != nil {
					return fmt.Errorf("unmarshal field grammar_tags: %w", err)
				}
			}
		case poolquestion.FieldVocabTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field vocab_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.VocabTags); err != nil {
					return fmt.Errorf("unmarshal field vocab_tags: %w", err)
				}
			}
		case poolquestion.FieldTopicTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field topic_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TopicTags); err != nil {
					return fmt.Errorf("unmarshal field topic_tags: %w", err)
				}
			}
		case poolquestion.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case poolquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PoolQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *PoolQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PoolQuestion.
// Note that you need to call PoolQuestion.Unwrap() before calling this method if this PoolQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PoolQuestion) Update() *PoolQuestionUpdateOne {
	return NewPoolQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PoolQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PoolQuestion) Unwrap() *PoolQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PoolQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PoolQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("PoolQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(_m.Type)
	builder.WriteString(", ")
	builder.WriteString("target_skill=")
	builder.WriteString(_m.TargetSkill)
	builder.WriteString(", ")
	builder.WriteString("difficulty_label=")
	builder.WriteString(_m.DifficultyLabel)
	builder.WriteString(", ")
	if v := _m.EmpiricalDifficulty; v != nil {
		builder.WriteString("empirical_difficulty=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Discrimination; v != nil {
		builder.WriteString("discrimination=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("total_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalResponses))
	builder.WriteString(", ")
	builder.WriteString("correct_responses=")
	builder.WriteString(fmt.Sprintf("%v", _m.CorrectResponses))
	builder.WriteString(", ")
	builder.WriteString("grammar_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.GrammarTags))
	builder.WriteString(", ")
	builder.WriteString("vocab_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.VocabTags))
	builder.WriteString(", ")
	builder.WriteString("topic_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.TopicTags))
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PoolQuestions is a parsable slice of PoolQuestion.
type PoolQuestions []*PoolQuestion
