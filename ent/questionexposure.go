// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/questionexposure"
)

// QuestionExposure is the model entity for the QuestionExposure schema.
type QuestionExposure struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Hash holds the value of the "hash" field.
	Hash string `json:"hash,omitempty"`
	// SeenAt holds the value of the "seen_at" field.
	SeenAt       time.Time `json:"seen_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuestionExposure) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case questionexposure.FieldID:
			values[i] = new(sql.NullInt64)
		case questionexposure.FieldUserID, questionexposure.FieldLanguage, questionexposure.FieldHash:
			values[i] = new(sql.NullString)
		case questionexposure.FieldSeenAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuestionExposure fields.
func (_m *QuestionExposure) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case questionexposure.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case questionexposure.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case questionexposure.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case questionexposure.FieldHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash", values[i])
			} else if value.Valid {
				_m.Hash = value.String
			}
		case questionexposure.FieldSeenAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field seen_at", values[i])
			} else if value.Valid {
				_m.SeenAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuestionExposure.
// This includes values selected through modifiers, order, etc.
func (_m *QuestionExposure) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuestionExposure.
// Note that you need to call QuestionExposure.Unwrap() before calling this method if this QuestionExposure
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuestionExposure) Update() *QuestionExposureUpdateOne {
	return NewQuestionExposureClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuestionExposure entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuestionExposure) Unwrap() *QuestionExposure {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuestionExposure is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuestionExposure) String() string {
	var builder strings.Builder
	builder.WriteString("QuestionExposure(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("hash=")
	builder.WriteString(_m.Hash)
	builder.WriteString(", ")
	builder.WriteString("seen_at=")
	builder.WriteString(_m.SeenAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// QuestionExposures is a parsable slice of QuestionExposure.
type QuestionExposures []*QuestionExposure
