// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/learnerprofile"
)

// LearnerProfile is the model entity for the LearnerProfile schema.
type LearnerProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// IRT theta, roughly [-3, 3]
	AbilityEstimate float64 `json:"ability_estimate,omitempty"`
	// 0..1, grows with response volume
	AbilityConfidence float64 `json:"ability_confidence,omitempty"`
	// Rolling 0..100 score per skill
	SkillScores map[string]float64 `json:"skill_scores,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LearnerProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldSkillScores:
			values[i] = new([]byte)
		case learnerprofile.FieldAbilityEstimate, learnerprofile.FieldAbilityConfidence:
			values[i] = new(sql.NullFloat64)
		case learnerprofile.FieldID:
			values[i] = new(sql.NullInt64)
		case learnerprofile.FieldUserID, learnerprofile.FieldLanguage:
			values[i] = new(sql.NullString)
		case learnerprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LearnerProfile fields.
func (_m *LearnerProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case learnerprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case learnerprofile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case learnerprofile.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case learnerprofile.FieldAbilityEstimate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ability_estimate", values[i])
			} else if value.Valid {
				_m.AbilityEstimate = value.Float64
			}
		case learnerprofile.FieldAbilityConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ability_confidence", values[i])
			} else if value.Valid {
				_m.AbilityConfidence = value.Float64
			}
		case learnerprofile.FieldSkillScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkillScores); err != nil {
					return fmt.Errorf("unmarshal field skill_scores: %w", err)
				}
			}
		case learnerprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LearnerProfile.
// This includes values selected through modifiers, order, etc.
func (_m *LearnerProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LearnerProfile.
// Note that you need to call LearnerProfile.Unwrap() before calling this method if this LearnerProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LearnerProfile) Update() *LearnerProfileUpdateOne {
	return NewLearnerProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LearnerProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LearnerProfile) Unwrap() *LearnerProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LearnerProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LearnerProfile) String() string {
	var builder strings.Builder
	builder.WriteString("LearnerProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("ability_estimate=")
	builder.WriteString(fmt.Sprintf("%v", _m.AbilityEstimate))
	builder.WriteString(", ")
	builder.WriteString("ability_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.AbilityConfidence))
	builder.WriteString(", ")
	builder.WriteString("skill_scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkillScores))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LearnerProfiles is a parsable slice of LearnerProfile.
type LearnerProfiles []*LearnerProfile
