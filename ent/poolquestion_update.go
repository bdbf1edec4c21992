// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/poolquestion"
	"github.com/abhisek/lingo/ent/predicate"
)

// PoolQuestionUpdate is the builder for updating PoolQuestion entities.
type PoolQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *PoolQuestionMutation
}

// Where appends a list predicates to the PoolQuestionUpdate builder.
func (_u *PoolQuestionUpdate) Where(ps ...predicate.PoolQuestion) *PoolQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (_u *PoolQuestionUpdate) SetDifficultyLabel(v string) *PoolQuestionUpdate {
	_u.mutation.SetDifficultyLabel(v)
	return _u
}

// SetNillableDifficultyLabel sets the "difficulty_label" field if the given value is not nil.
func (_u *PoolQuestionUpdate) SetNillableDifficultyLabel(v *string) *PoolQuestionUpdate {
	if v != nil {
		_u.SetDifficultyLabel(*v)
	}
	return _u
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (_u *PoolQuestionUpdate) SetEmpiricalDifficulty(v float64) *PoolQuestionUpdate {
	_u.mutation.ResetEmpiricalDifficulty()
	_u.mutation.SetEmpiricalDifficulty(v)
	return _u
}

// SetNillableEmpiricalDifficulty sets the "empirical_difficulty" field if the given value is not nil.
func (_u *PoolQuestionUpdate) SetNillableEmpiricalDifficulty(v *float64) *PoolQuestionUpdate {
	if v != nil {
		_u.SetEmpiricalDifficulty(*v)
	}
	return _u
}

// AddEmpiricalDifficulty adds value to the "empirical_difficulty" field.
func (_u *PoolQuestionUpdate) AddEmpiricalDifficulty(v float64) *PoolQuestionUpdate {
	_u.mutation.AddEmpiricalDifficulty(v)
	return _u
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (_u *PoolQuestionUpdate) ClearEmpiricalDifficulty() *PoolQuestionUpdate {
	_u.mutation.ClearEmpiricalDifficulty()
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *PoolQuestionUpdate) SetDiscrimination(v float64) *PoolQuestionUpdate {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *PoolQuestionUpdate) SetNillableDiscrimination(v *float64) *PoolQuestionUpdate {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *PoolQuestionUpdate) AddDiscrimination(v float64) *PoolQuestionUpdate {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (_u *PoolQuestionUpdate) ClearDiscrimination() *PoolQuestionUpdate {
	_u.mutation.ClearDiscrimination()
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *PoolQuestionUpdate) SetTotalResponses(v int) *PoolQuestionUpdate {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *PoolQuestionUpdate) SetNillableTotalResponses(v *int) *PoolQuestionUpdate {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *PoolQuestionUpdate) AddTotalResponses(v int) *PoolQuestionUpdate {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetCorrectResponses sets the "correct_responses" field.
func (_u *PoolQuestionUpdate) SetCorrectResponses(v int) *PoolQuestionUpdate {
	_u.mutation.ResetCorrectResponses()
	_u.mutation.SetCorrectResponses(v)
	return _u
}

// SetNillableCorrectResponses sets the "correct_responses" field if the given value is not nil.
func (_u *PoolQuestionUpdate) SetNillableCorrectResponses(v *int) *PoolQuestionUpdate {
	if v != nil {
		_u.SetCorrectResponses(*v)
	}
	return _u
}

// AddCorrectResponses adds value to the "correct_responses" field.
func (_u *PoolQuestionUpdate) AddCorrectResponses(v int) *PoolQuestionUpdate {
	_u.mutation.AddCorrectResponses(v)
	return _u
}

// SetGrammarTags sets the "grammar_tags" field.
func (_u *PoolQuestionUpdate) SetGrammarTags(v []string) *PoolQuestionUpdate {
	_u.mutation.SetGrammarTags(v)
	return _u
}

// AppendGrammarTags appends value to the "grammar_tags" field.
func (_u *PoolQuestionUpdate) AppendGrammarTags(v []string) *PoolQuestionUpdate {
	_u.mutation.AppendGrammarTags(v)
	return _u
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (_u *PoolQuestionUpdate) ClearGrammarTags() *PoolQuestionUpdate {
	_u.mutation.ClearGrammarTags()
	return _u
}

// SetVocabTags sets the "vocab_tags" field.
func (_u *PoolQuestionUpdate) SetVocabTags(v []string) *PoolQuestionUpdate {
	_u.mutation.SetVocabTags(v)
	return _u
}

// AppendVocabTags appends value to the "vocab_tags" field.
func (_u *PoolQuestionUpdate) AppendVocabTags(v []string) *PoolQuestionUpdate {
	_u.mutation.AppendVocabTags(v)
	return _u
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (_u *PoolQuestionUpdate) ClearVocabTags() *PoolQuestionUpdate {
	_u.mutation.ClearVocabTags()
	return _u
}

// SetTopicTags sets the "topic_tags" field.
func (_u *PoolQuestionUpdate) SetTopicTags(v []string) *PoolQuestionUpdate {
	_u.mutation.SetTopicTags(v)
	return _u
}

// AppendTopicTags appends value to the "topic_tags" field.
func (_u *PoolQuestionUpdate) AppendTopicTags(v []string) *PoolQuestionUpdate {
	_u.mutation.AppendTopicTags(v)
	return _u
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (_u *PoolQuestionUpdate) ClearTopicTags() *PoolQuestionUpdate {
	_u.mutation.ClearTopicTags()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PoolQuestionUpdate) SetPayload(v map[string]interface{}) *PoolQuestionUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the PoolQuestionMutation object of the builder.
func (_u *PoolQuestionUpdate) Mutation() *PoolQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PoolQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoolQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PoolQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoolQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PoolQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(poolquestion.Table, poolquestion.Columns, sqlgraph.NewFieldSpec(poolquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DifficultyLabel(); ok {
		_spec.SetField(poolquestion.FieldDifficultyLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmpiricalDifficulty(); ok {
		_spec.SetField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmpiricalDifficulty(); ok {
		_spec.AddField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64, value)
	}
	if _u.mutation.EmpiricalDifficultyCleared() {
		_spec.ClearField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(poolquestion.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(poolquestion.FieldDiscrimination, field.TypeFloat64, value)
	}
	if _u.mutation.DiscriminationCleared() {
		_spec.ClearField(poolquestion.FieldDiscrimination, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(poolquestion.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(poolquestion.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectResponses(); ok {
		_spec.SetField(poolquestion.FieldCorrectResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectResponses(); ok {
		_spec.AddField(poolquestion.FieldCorrectResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrammarTags(); ok {
		_spec.SetField(poolquestion.FieldGrammarTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrammarTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldGrammarTags, value)
		})
	}
	if _u.mutation.GrammarTagsCleared() {
		_spec.ClearField(poolquestion.FieldGrammarTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.VocabTags(); ok {
		_spec.SetField(poolquestion.FieldVocabTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldVocabTags, value)
		})
	}
	if _u.mutation.VocabTagsCleared() {
		_spec.ClearField(poolquestion.FieldVocabTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicTags(); ok {
		_spec.SetField(poolquestion.FieldTopicTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldTopicTags, value)
		})
	}
	if _u.mutation.TopicTagsCleared() {
		_spec.ClearField(poolquestion.FieldTopicTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(poolquestion.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poolquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PoolQuestionUpdateOne is the builder for updating a single PoolQuestion entity.
type PoolQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PoolQuestionMutation
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (_u *PoolQuestionUpdateOne) SetDifficultyLabel(v string) *PoolQuestionUpdateOne {
	_u.mutation.SetDifficultyLabel(v)
	return _u
}

// SetNillableDifficultyLabel sets the "difficulty_label" field if the given value is not nil.
func (_u *PoolQuestionUpdateOne) SetNillableDifficultyLabel(v *string) *PoolQuestionUpdateOne {
	if v != nil {
		_u.SetDifficultyLabel(*v)
	}
	return _u
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (_u *PoolQuestionUpdateOne) SetEmpiricalDifficulty(v float64) *PoolQuestionUpdateOne {
	_u.mutation.ResetEmpiricalDifficulty()
	_u.mutation.SetEmpiricalDifficulty(v)
	return _u
}

// SetNillableEmpiricalDifficulty sets the "empirical_difficulty" field if the given value is not nil.
func (_u *PoolQuestionUpdateOne) SetNillableEmpiricalDifficulty(v *float64) *PoolQuestionUpdateOne {
	if v != nil {
		_u.SetEmpiricalDifficulty(*v)
	}
	return _u
}

// AddEmpiricalDifficulty adds value to the "empirical_difficulty" field.
func (_u *PoolQuestionUpdateOne) AddEmpiricalDifficulty(v float64) *PoolQuestionUpdateOne {
	_u.mutation.AddEmpiricalDifficulty(v)
	return _u
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (_u *PoolQuestionUpdateOne) ClearEmpiricalDifficulty() *PoolQuestionUpdateOne {
	_u.mutation.ClearEmpiricalDifficulty()
	return _u
}

// SetDiscrimination sets the "discrimination" field.
func (_u *PoolQuestionUpdateOne) SetDiscrimination(v float64) *PoolQuestionUpdateOne {
	_u.mutation.ResetDiscrimination()
	_u.mutation.SetDiscrimination(v)
	return _u
}

// SetNillableDiscrimination sets the "discrimination" field if the given value is not nil.
func (_u *PoolQuestionUpdateOne) SetNillableDiscrimination(v *float64) *PoolQuestionUpdateOne {
	if v != nil {
		_u.SetDiscrimination(*v)
	}
	return _u
}

// AddDiscrimination adds value to the "discrimination" field.
func (_u *PoolQuestionUpdateOne) AddDiscrimination(v float64) *PoolQuestionUpdateOne {
	_u.mutation.AddDiscrimination(v)
	return _u
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (_u *PoolQuestionUpdateOne) ClearDiscrimination() *PoolQuestionUpdateOne {
	_u.mutation.ClearDiscrimination()
	return _u
}

// SetTotalResponses sets the "total_responses" field.
func (_u *PoolQuestionUpdateOne) SetTotalResponses(v int) *PoolQuestionUpdateOne {
	_u.mutation.ResetTotalResponses()
	_u.mutation.SetTotalResponses(v)
	return _u
}

// SetNillableTotalResponses sets the "total_responses" field if the given value is not nil.
func (_u *PoolQuestionUpdateOne) SetNillableTotalResponses(v *int) *PoolQuestionUpdateOne {
	if v != nil {
		_u.SetTotalResponses(*v)
	}
	return _u
}

// AddTotalResponses adds value to the "total_responses" field.
func (_u *PoolQuestionUpdateOne) AddTotalResponses(v int) *PoolQuestionUpdateOne {
	_u.mutation.AddTotalResponses(v)
	return _u
}

// SetCorrectResponses sets the "correct_responses" field.
func (_u *PoolQuestionUpdateOne) SetCorrectResponses(v int) *PoolQuestionUpdateOne {
	_u.mutation.ResetCorrectResponses()
	_u.mutation.SetCorrectResponses(v)
	return _u
}

// SetNillableCorrectResponses sets the "correct_responses" field if the given value is not nil.
func (_u *PoolQuestionUpdateOne) SetNillableCorrectResponses(v *int) *PoolQuestionUpdateOne {
	if v != nil {
		_u.SetCorrectResponses(*v)
	}
	return _u
}

// AddCorrectResponses adds value to the "correct_responses" field.
func (_u *PoolQuestionUpdateOne) AddCorrectResponses(v int) *PoolQuestionUpdateOne {
	_u.mutation.AddCorrectResponses(v)
	return _u
}

// SetGrammarTags sets the "grammar_tags" field.
func (_u *PoolQuestionUpdateOne) SetGrammarTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.SetGrammarTags(v)
	return _u
}

// AppendGrammarTags appends value to the "grammar_tags" field.
func (_u *PoolQuestionUpdateOne) AppendGrammarTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.AppendGrammarTags(v)
	return _u
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (_u *PoolQuestionUpdateOne) ClearGrammarTags() *PoolQuestionUpdateOne {
	_u.mutation.ClearGrammarTags()
	return _u
}

// SetVocabTags sets the "vocab_tags" field.
func (_u *PoolQuestionUpdateOne) SetVocabTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.SetVocabTags(v)
	return _u
}

// AppendVocabTags appends value to the "vocab_tags" field.
func (_u *PoolQuestionUpdateOne) AppendVocabTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.AppendVocabTags(v)
	return _u
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (_u *PoolQuestionUpdateOne) ClearVocabTags() *PoolQuestionUpdateOne {
	_u.mutation.ClearVocabTags()
	return _u
}

// SetTopicTags sets the "topic_tags" field.
func (_u *PoolQuestionUpdateOne) SetTopicTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.SetTopicTags(v)
	return _u
}

// AppendTopicTags appends value to the "topic_tags" field.
func (_u *PoolQuestionUpdateOne) AppendTopicTags(v []string) *PoolQuestionUpdateOne {
	_u.mutation.AppendTopicTags(v)
	return _u
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (_u *PoolQuestionUpdateOne) ClearTopicTags() *PoolQuestionUpdateOne {
	_u.mutation.ClearTopicTags()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PoolQuestionUpdateOne) SetPayload(v map[string]interface{}) *PoolQuestionUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the PoolQuestionMutation object of the builder.
func (_u *PoolQuestionUpdateOne) Mutation() *PoolQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the PoolQuestionUpdate builder.
func (_u *PoolQuestionUpdateOne) Where(ps ...predicate.PoolQuestion) *PoolQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PoolQuestionUpdateOne) Select(field string, fields ...string) *PoolQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PoolQuestion entity.
func (_u *PoolQuestionUpdateOne) Save(ctx context.Context) (*PoolQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PoolQuestionUpdateOne) SaveX(ctx context.Context) *PoolQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PoolQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PoolQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PoolQuestionUpdateOne) sqlSave(ctx context.Context) (_node *PoolQuestion, err error) {
	_spec := sqlgraph.NewUpdateSpec(poolquestion.Table, poolquestion.Columns, sqlgraph.NewFieldSpec(poolquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PoolQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poolquestion.FieldID)
		for _, f := range fields {
			if !poolquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poolquestion.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DifficultyLabel(); ok {
		_spec.SetField(poolquestion.FieldDifficultyLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmpiricalDifficulty(); ok {
		_spec.SetField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmpiricalDifficulty(); ok {
		_spec.AddField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64, value)
	}
	if _u.mutation.EmpiricalDifficultyCleared() {
		_spec.ClearField(poolquestion.FieldEmpiricalDifficulty, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Discrimination(); ok {
		_spec.SetField(poolquestion.FieldDiscrimination, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDiscrimination(); ok {
		_spec.AddField(poolquestion.FieldDiscrimination, field.TypeFloat64, value)
	}
	if _u.mutation.DiscriminationCleared() {
		_spec.ClearField(poolquestion.FieldDiscrimination, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TotalResponses(); ok {
		_spec.SetField(poolquestion.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalResponses(); ok {
		_spec.AddField(poolquestion.FieldTotalResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectResponses(); ok {
		_spec.SetField(poolquestion.FieldCorrectResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectResponses(); ok {
		_spec.AddField(poolquestion.FieldCorrectResponses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.GrammarTags(); ok {
		_spec.SetField(poolquestion.FieldGrammarTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedGrammarTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldGrammarTags, value)
		})
	}
	if _u.mutation.GrammarTagsCleared() {
		_spec.ClearField(poolquestion.FieldGrammarTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.VocabTags(); ok {
		_spec.SetField(poolquestion.FieldVocabTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedVocabTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldVocabTags, value)
		})
	}
	if _u.mutation.VocabTagsCleared() {
		_spec.ClearField(poolquestion.FieldVocabTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopicTags(); ok {
		_spec.SetField(poolquestion.FieldTopicTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTopicTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, poolquestion.FieldTopicTags, value)
		})
	}
	if _u.mutation.TopicTagsCleared() {
		_spec.ClearField(poolquestion.FieldTopicTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(poolquestion.FieldPayload, field.TypeJSON, value)
	}
	_node = &PoolQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poolquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
