// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/poolquestion"
)

// PoolQuestionCreate is the builder for creating a PoolQuestion entity.
type PoolQuestionCreate struct {
	config
	mutation *PoolQuestionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHash sets the "hash" field.
func (_c *PoolQuestionCreate) SetHash(v string) *PoolQuestionCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PoolQuestionCreate) SetLanguage(v string) *PoolQuestionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetType sets the "type" field.
func (_c *PoolQuestionCreate) SetType(v string) *PoolQuestionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTargetSkill sets the "target_skill" field.
func (_c *PoolQuestionCreate) SetTargetSkill(v string) *PoolQuestionCreate {
	_c.mutation.SetTargetSkill(v)
	return _c
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (_c *PoolQuestionCreate) SetDifficultyLabel(v string) *PoolQuestionCreate {
	_c.mutation.SetDifficultyLabel(v)
	return _c
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (_c *PoolQuestionCreate) SetEmpiricalDifficulty(v float64) *PoolQuestionCreate {
	_c.mutation.SetEmpiricalDifficulty(v)
	return _c
}

// SetNillableEmpiricalDifficulty sets the "empirical_difficulty" field if the given value is not nil.
func (_c *PoolQuestionCreate) SetNillableEmpiricalDifficulty(v *float64) *PoolQuestionCreate {
	if v != nil {
		_c.SetEmpiricalDifficulty(*v)
	}
	return _c
}

// SetDiscrimination sets the "discrimination" field.
func (_c *PoolQuestionCreate) SetDiscrimination(v float64) *PoolQuestionCreate {
	_c.mutation.SetDiscrimination(v)
	return _c
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_c *PoolQuestionCreate) SetNillableDiscrimination(v *float64) *PoolQuestionCreate {
	if v != nil {
		_c.SetDiscrimination(*v)
	}
	return _c
}

// SetTotalResponses sets the "total_responses" field.
func (_c *PoolQuestionCreate) SetTotalResponses(v int) *PoolQuestionCreate {
	_c.mutation.SetTotalResponses(v)
	return _c
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_c *PoolQuestionCreate) SetNillableTotalResponses(v *int) *PoolQuestionCreate {
	if v != nil {
		_c.SetTotalResponses(*v)
	}
	return _c
}

// SetCorrectResponses sets the "correct_responses" field.
func (_c *PoolQuestionCreate) SetCorrectResponses(v int) *PoolQuestionCreate {
	_c.mutation.SetCorrectResponses(v)
	return _c
}

// SetNillableCorrectResponses sets the "correct_responses" field if the given value is not nil.
func (_c *PoolQuestionCreate) SetNillableCorrectResponses(v *int) *PoolQuestionCreate {
	if v != nil {
		_c.SetCorrectResponses(*v)
	}
	return _c
}

// SetGrammarTags sets the "grammar_tags" field.
func (_c *PoolQuestionCreate) SetGrammarTags(v []string) *PoolQuestionCreate {
	_c.mutation.SetGrammarTags(v)
	return _c
}

// SetVocabTags sets the "vocab_tags" field.
func (_c *PoolQuestionCreate) SetVocabTags(v []string) *PoolQuestionCreate {
	_c.mutation.SetVocabTags(v)
	return _c
}

// SetTopicTags sets the "topic_tags" field.
func (_c *PoolQuestionCreate) SetTopicTags(v []string) *PoolQuestionCreate {
	_c.mutation.SetTopicTags(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PoolQuestionCreate) SetPayload(v map[string]interface{}) *PoolQuestionCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PoolQuestionCreate) SetCreatedAt(v time.Time) *PoolQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PoolQuestionCreate) SetNillableCreatedAt(v *time.Time) *PoolQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the PoolQuestionMutation object of the builder.
func (_c *PoolQuestionCreate) Mutation() *PoolQuestionMutation {
	return _c.mutation
}

// Save creates the PoolQuestion in the database.
func (_c *PoolQuestionCreate) Save(ctx context.Context) (*PoolQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PoolQuestionCreate) SaveX(ctx context.Context) *PoolQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoolQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoolQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PoolQuestionCreate) defaults() {
	if _, ok := _c.mutation.TotalResponses(); !ok {
		v := poolquestion.DefaultTotalResponses
		_c.mutation.SetTotalResponses(v)
	}
	if _, ok := _c.mutation.CorrectResponses(); !ok {
		v := poolquestion.DefaultCorrectResponses
		_c.mutation.SetCorrectResponses(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := poolquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PoolQuestionCreate) check() error {
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "PoolQuestion.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := poolquestion.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "PoolQuestion.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "PoolQuestion.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := poolquestion.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "PoolQuestion.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "PoolQuestion.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := poolquestion.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "PoolQuestion.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TargetSkill(); !ok {
		return &ValidationError{Name: "target_skill", err: errors.New(`ent: missing required field "PoolQuestion.target_skill"`)}
	}
	if _, ok := _c.mutation.DifficultyLabel(); !ok {
		return &ValidationError{Name: "difficulty_label", err: errors.New(`ent: missing required field "PoolQuestion.difficulty_label"`)}
	}
	if _, ok := _c.mutation.TotalResponses(); !ok {
		return &ValidationError{Name: "total_responses", err: errors.New(`ent: missing required field "PoolQuestion.total_responses"`)}
	}
	if _, ok := _c.mutation.CorrectResponses(); !ok {
		return &ValidationError{Name: "correct_responses", err: errors.New(`ent: missing required field "PoolQuestion.correct_responses"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PoolQuestion.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PoolQuestion.created_at"`)}
	}
	return nil
}

func (_c *PoolQuestionCreate) sqlSave(ctx context.Context) (*PoolQuestion, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PoolQuestionCreate) createSpec() (*PoolQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &PoolQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(poolquestion.Table, sqlgraph.NewFieldSpec(poolquestion.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(poolquestion.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(poolquestion.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(poolquestion.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.TargetSkill(); ok {
		_spec.SetField(poolquestion.FieldTargetSkill, field.TypeString, value)
		_node.TargetSkill = value
	}
	if value, ok := _c.mutation.DifficultyLabel(); ok {
		_spec.SetField(poolquestion.FieldDifficultyLabel, field.TypeString, value)
		_node.DifficultyLabel = value
	}
	if value, ok := _c.mutation.EmpiricalDifficulty(); ok {
		_spec.SetField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64, value)
		_node.EmpiricalDifficulty = &value
	}
	if value, ok := _c.mutation.Discrimination(); ok {
		_spec.SetField(poolquestion.FieldDiscrimination, field.TypeFloat64, value)
		_node.Discrimination = &value
	}
	if value, ok := _c.mutation.TotalResponses(); ok {
		_spec.SetField(poolquestion.FieldTotalResponses, field.TypeInt, value)
		_node.TotalResponses = value
	}
	if value, ok := _c.mutation.CorrectResponses(); ok {
		_spec.SetField(poolquestion.FieldCorrectResponses, field.TypeInt, value)
		_node.CorrectResponses = value
	}
	if value, ok := _c.mutation.GrammarTags(); ok {
		_spec.SetField(poolquestion.FieldGrammarTags, field.TypeJSON, value)
		_node.GrammarTags = value
	}
	if value, ok := _c.mutation.VocabTags(); ok {
		_spec.SetField(poolquestion.FieldVocabTags, field.TypeJSON, value)
		_node.VocabTags = value
	}
	if value, ok := _c.mutation.TopicTags(); ok {
		_spec.SetField(poolquestion.FieldTopicTags, field.TypeJSON, value)
		_node.TopicTags = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(poolquestion.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(poolquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PoolQuestion.Create().
//		SetHash(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PoolQuestionUpsert) {
//			SetHash(v+v).
//		}).
//		Exec(ctx)
func (_c *PoolQuestionCreate) OnConflict(opts ...sql.ConflictOption) *PoolQuestionUpsertOne {
	_c.conflict = opts
	return &PoolQuestionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PoolQuestionCreate) OnConflictColumns(columns ...string) *PoolQuestionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PoolQuestionUpsertOne{
		create: _c,
	}
}

type (
	// PoolQuestionUpsertOne is the builder for "upsert"-ing
	//  one PoolQuestion node.
	PoolQuestionUpsertOne struct {
		create *PoolQuestionCreate
	}

	// PoolQuestionUpsert is the "OnConflict" setter.
	PoolQuestionUpsert struct {
		*sql.UpdateSet
	}
)

// SetDifficultyLabel sets the "difficulty_label" field.
func (u *PoolQuestionUpsert) SetDifficultyLabel(v string) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldDifficultyLabel, v)
	return u
}

// UpdateDifficultyLabel sets the "difficulty_label" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateDifficultyLabel() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldDifficultyLabel)
	return u
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (u *PoolQuestionUpsert) SetEmpiricalDifficulty(v float64) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldEmpiricalDifficulty, v)
	return u
}

// UpdateEmpiricalDifficulty sets the "empirical_difficulty" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateEmpiricalDifficulty() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldEmpiricalDifficulty)
	return u
}

// AddEmpiricalDifficulty adds v to the "empirical_difficulty" field.
func (u *PoolQuestionUpsert) AddEmpiricalDifficulty(v float64) *PoolQuestionUpsert {
	u.Add(poolquestion.FieldEmpiricalDifficulty, v)
	return u
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (u *PoolQuestionUpsert) ClearEmpiricalDifficulty() *PoolQuestionUpsert {
	u.SetNull(poolquestion.FieldEmpiricalDifficulty)
	return u
}

// SetDiscrimination sets the "discrimination" field.
func (u *PoolQuestionUpsert) SetDiscrimination(v float64) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldDiscrimination, v)
	return u
}

// UpdateDiscrimination sets the "discrimination" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateDiscrimination() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldDiscrimination)
	return u
}

// AddDiscrimination adds v to the "discrimination" field.
func (u *PoolQuestionUpsert) AddDiscrimination(v float64) *PoolQuestionUpsert {
	u.Add(poolquestion.FieldDiscrimination, v)
	return u
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (u *PoolQuestionUpsert) ClearDiscrimination() *PoolQuestionUpsert {
	u.SetNull(poolquestion.FieldDiscrimination)
	return u
}

// SetTotalResponses sets the "total_responses" field.
func (u *PoolQuestionUpsert) SetTotalResponses(v int) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldTotalResponses, v)
	return u
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateTotalResponses() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldTotalResponses)
	return u
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *PoolQuestionUpsert) AddTotalResponses(v int) *PoolQuestionUpsert {
	u.Add(poolquestion.FieldTotalResponses, v)
	return u
}

// SetCorrectResponses sets the "correct_responses" field.
func (u *PoolQuestionUpsert) SetCorrectResponses(v int) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldCorrectResponses, v)
	return u
}

// UpdateCorrectResponses sets the "correct_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateCorrectResponses() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldCorrectResponses)
	return u
}

// AddCorrectResponses adds v to the "correct_responses" field.
func (u *PoolQuestionUpsert) AddCorrectResponses(v int) *PoolQuestionUpsert {
	u.Add(poolquestion.FieldCorrectResponses, v)
	return u
}

// SetGrammarTags sets the "grammar_tags" field.
func (u *PoolQuestionUpsert) SetGrammarTags(v []string) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldGrammarTags, v)
	return u
}

// UpdateGrammarTags sets the "grammar_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateGrammarTags() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldGrammarTags)
	return u
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (u *PoolQuestionUpsert) ClearGrammarTags() *PoolQuestionUpsert {
	u.SetNull(poolquestion.FieldGrammarTags)
	return u
}

// SetVocabTags sets the "vocab_tags" field.
func (u *PoolQuestionUpsert) SetVocabTags(v []string) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldVocabTags, v)
	return u
}

// UpdateVocabTags sets the "vocab_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateVocabTags() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldVocabTags)
	return u
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (u *PoolQuestionUpsert) ClearVocabTags() *PoolQuestionUpsert {
	u.SetNull(poolquestion.FieldVocabTags)
	return u
}

// SetTopicTags sets the "topic_tags" field.
func (u *PoolQuestionUpsert) SetTopicTags(v []string) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldTopicTags, v)
	return u
}

// UpdateTopicTags sets the "topic_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdateTopicTags() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldTopicTags)
	return u
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (u *PoolQuestionUpsert) ClearTopicTags() *PoolQuestionUpsert {
	u.SetNull(poolquestion.FieldTopicTags)
	return u
}

// SetPayload sets the "payload" field.
func (u *PoolQuestionUpsert) SetPayload(v map[string]interface{}) *PoolQuestionUpsert {
	u.Set(poolquestion.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PoolQuestionUpsert) UpdatePayload() *PoolQuestionUpsert {
	u.SetExcluded(poolquestion.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PoolQuestionUpsertOne) UpdateNewValues() *PoolQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Hash(); exists {
			s.SetIgnore(poolquestion.FieldHash)
		}
		if _, exists := u.create.mutation.Language(); exists {
			s.SetIgnore(poolquestion.FieldLanguage)
		}
		if _, exists := u.create.mutation.GetType(); exists {
			s.SetIgnore(poolquestion.FieldType)
		}
		if _, exists := u.create.mutation.TargetSkill(); exists {
			s.SetIgnore(poolquestion.FieldTargetSkill)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(poolquestion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PoolQuestionUpsertOne) Ignore() *PoolQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PoolQuestionUpsertOne) DoNothing() *PoolQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PoolQuestionCreate.OnConflict
// documentation for more info.
func (u *PoolQuestionUpsertOne) Update(set func(*PoolQuestionUpsert)) *PoolQuestionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PoolQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (u *PoolQuestionUpsertOne) SetDifficultyLabel(v string) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetDifficultyLabel(v)
	})
}

// UpdateDifficultyLabel sets the "difficulty_label" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateDifficultyLabel() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateDifficultyLabel()
	})
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (u *PoolQuestionUpsertOne) SetEmpiricalDifficulty(v float64) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetEmpiricalDifficulty(v)
	})
}

// AddEmpiricalDifficulty adds v to the "empirical_difficulty" field.
func (u *PoolQuestionUpsertOne) AddEmpiricalDifficulty(v float64) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddEmpiricalDifficulty(v)
	})
}

// UpdateEmpiricalDifficulty sets the "empirical_difficulty" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateEmpiricalDifficulty() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateEmpiricalDifficulty()
	})
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (u *PoolQuestionUpsertOne) ClearEmpiricalDifficulty() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearEmpiricalDifficulty()
	})
}

// SetDiscrimination sets the "discrimination" field.
func (u *PoolQuestionUpsertOne) SetDiscrimination(v float64) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetDiscrimination(v)
	})
}

// AddDiscrimination adds v to the "discrimination" field.
func (u *PoolQuestionUpsertOne) AddDiscrimination(v float64) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddDiscrimination(v)
	})
}

// UpdateDiscrimination sets the "discrimination" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateDiscrimination() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateDiscrimination()
	})
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (u *PoolQuestionUpsertOne) ClearDiscrimination() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearDiscrimination()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *PoolQuestionUpsertOne) SetTotalResponses(v int) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *PoolQuestionUpsertOne) AddTotalResponses(v int) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateTotalResponses() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetCorrectResponses sets the "correct_responses" field.
func (u *PoolQuestionUpsertOne) SetCorrectResponses(v int) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetCorrectResponses(v)
	})
}

// AddCorrectResponses adds v to the "correct_responses" field.
func (u *PoolQuestionUpsertOne) AddCorrectResponses(v int) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddCorrectResponses(v)
	})
}

// UpdateCorrectResponses sets the "correct_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateCorrectResponses() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateCorrectResponses()
	})
}

// SetGrammarTags sets the "grammar_tags" field.
func (u *PoolQuestionUpsertOne) SetGrammarTags(v []string) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetGrammarTags(v)
	})
}

// UpdateGrammarTags sets the "grammar_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateGrammarTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateGrammarTags()
	})
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (u *PoolQuestionUpsertOne) ClearGrammarTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearGrammarTags()
	})
}

// SetVocabTags sets the "vocab_tags" field.
func (u *PoolQuestionUpsertOne) SetVocabTags(v []string) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetVocabTags(v)
	})
}

// UpdateVocabTags sets the "vocab_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateVocabTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateVocabTags()
	})
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (u *PoolQuestionUpsertOne) ClearVocabTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearVocabTags()
	})
}

// SetTopicTags sets the "topic_tags" field.
func (u *PoolQuestionUpsertOne) SetTopicTags(v []string) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetTopicTags(v)
	})
}

// UpdateTopicTags sets the "topic_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdateTopicTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateTopicTags()
	})
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (u *PoolQuestionUpsertOne) ClearTopicTags() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearTopicTags()
	})
}

// SetPayload sets the "payload" field.
func (u *PoolQuestionUpsertOne) SetPayload(v map[string]interface{}) *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PoolQuestionUpsertOne) UpdatePayload() *PoolQuestionUpsertOne {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *PoolQuestionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PoolQuestionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PoolQuestionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PoolQuestionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PoolQuestionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PoolQuestionCreateBulk is the builder for creating many PoolQuestion entities in bulk.
type PoolQuestionCreateBulk struct {
	config
	err      error
	builders []*PoolQuestionCreate
	conflict []sql.ConflictOption
}

// Save creates the PoolQuestion entities in the database.
func (_c *PoolQuestionCreateBulk) Save(ctx context.Context) ([]*PoolQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PoolQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PoolQuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PoolQuestionCreateBulk) SaveX(ctx context.Context) []*PoolQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PoolQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PoolQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PoolQuestion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PoolQuestionUpsert) {
//			SetHash(v+v).
//		}).
//		Exec(ctx)
func (_c *PoolQuestionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PoolQuestionUpsertBulk {
	_c.conflict = opts
	return &PoolQuestionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PoolQuestionCreateBulk) OnConflictColumns(columns ...string) *PoolQuestionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PoolQuestionUpsertBulk{
		create: _c,
	}
}

// PoolQuestionUpsertBulk is the builder for "upsert"-ing
// a bulk of PoolQuestion nodes.
type PoolQuestionUpsertBulk struct {
	create *PoolQuestionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PoolQuestionUpsertBulk) UpdateNewValues() *PoolQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Hash(); exists {
				s.SetIgnore(poolquestion.FieldHash)
			}
			if _, exists := b.mutation.Language(); exists {
				s.SetIgnore(poolquestion.FieldLanguage)
			}
			if _, exists := b.mutation.GetType(); exists {
				s.SetIgnore(poolquestion.FieldType)
			}
			if _, exists := b.mutation.TargetSkill(); exists {
				s.SetIgnore(poolquestion.FieldTargetSkill)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(poolquestion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PoolQuestion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PoolQuestionUpsertBulk) Ignore() *PoolQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PoolQuestionUpsertBulk) DoNothing() *PoolQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PoolQuestionCreateBulk.OnConflict
// documentation for more info.
func (u *PoolQuestionUpsertBulk) Update(set func(*PoolQuestionUpsert)) *PoolQuestionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PoolQuestionUpsert{UpdateSet: update})
	}))
	return u
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (u *PoolQuestionUpsertBulk) SetDifficultyLabel(v string) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetDifficultyLabel(v)
	})
}

// UpdateDifficultyLabel sets the "difficulty_label" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateDifficultyLabel() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateDifficultyLabel()
	})
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (u *PoolQuestionUpsertBulk) SetEmpiricalDifficulty(v float64) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetEmpiricalDifficulty(v)
	})
}

// AddEmpiricalDifficulty adds v to the "empirical_difficulty" field.
func (u *PoolQuestionUpsertBulk) AddEmpiricalDifficulty(v float64) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddEmpiricalDifficulty(v)
	})
}

// UpdateEmpiricalDifficulty sets the "empirical_difficulty" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateEmpiricalDifficulty() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateEmpiricalDifficulty()
	})
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (u *PoolQuestionUpsertBulk) ClearEmpiricalDifficulty() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearEmpiricalDifficulty()
	})
}

// SetDiscrimination sets the "discrimination" field.
func (u *PoolQuestionUpsertBulk) SetDiscrimination(v float64) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetDiscrimination(v)
	})
}

// AddDiscrimination adds v to the "discrimination" field.
func (u *PoolQuestionUpsertBulk) AddDiscrimination(v float64) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddDiscrimination(v)
	})
}

// UpdateDiscrimination sets the "discrimination" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateDiscrimination() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateDiscrimination()
	})
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (u *PoolQuestionUpsertBulk) ClearDiscrimination() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearDiscrimination()
	})
}

// SetTotalResponses sets the "total_responses" field.
func (u *PoolQuestionUpsertBulk) SetTotalResponses(v int) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetTotalResponses(v)
	})
}

// AddTotalResponses adds v to the "total_responses" field.
func (u *PoolQuestionUpsertBulk) AddTotalResponses(v int) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddTotalResponses(v)
	})
}

// UpdateTotalResponses sets the "total_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateTotalResponses() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateTotalResponses()
	})
}

// SetCorrectResponses sets the "correct_responses" field.
func (u *PoolQuestionUpsertBulk) SetCorrectResponses(v int) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetCorrectResponses(v)
	})
}

// AddCorrectResponses adds v to the "correct_responses" field.
func (u *PoolQuestionUpsertBulk) AddCorrectResponses(v int) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.AddCorrectResponses(v)
	})
}

// UpdateCorrectResponses sets the "correct_responses" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateCorrectResponses() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateCorrectResponses()
	})
}

// SetGrammarTags sets the "grammar_tags" field.
func (u *PoolQuestionUpsertBulk) SetGrammarTags(v []string) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetGrammarTags(v)
	})
}

// UpdateGrammarTags sets the "grammar_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateGrammarTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateGrammarTags()
	})
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (u *PoolQuestionUpsertBulk) ClearGrammarTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearGrammarTags()
	})
}

// SetVocabTags sets the "vocab_tags" field.
func (u *PoolQuestionUpsertBulk) SetVocabTags(v []string) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetVocabTags(v)
	})
}

// UpdateVocabTags sets the "vocab_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateVocabTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateVocabTags()
	})
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (u *PoolQuestionUpsertBulk) ClearVocabTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearVocabTags()
	})
}

// SetTopicTags sets the "topic_tags" field.
func (u *PoolQuestionUpsertBulk) SetTopicTags(v []string) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetTopicTags(v)
	})
}

// UpdateTopicTags sets the "topic_tags" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdateTopicTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdateTopicTags()
	})
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (u *PoolQuestionUpsertBulk) ClearTopicTags() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.ClearTopicTags()
	})
}

// SetPayload sets the "payload" field.
func (u *PoolQuestionUpsertBulk) SetPayload(v map[string]interface{}) *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *PoolQuestionUpsertBulk) UpdatePayload() *PoolQuestionUpsertBulk {
	return u.Update(func(s *PoolQuestionUpsert) {
		s.UpdatePayload()
	})
}

// Exec executes the query.
func (u *PoolQuestionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PoolQuestionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PoolQuestionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PoolQuestionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
