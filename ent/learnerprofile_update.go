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
	"github.com/abhisek/lingo/ent/learnerprofile"
	"github.com/abhisek/lingo/ent/predicate"
)

// LearnerProfileUpdate is the builder for updating LearnerProfile entities.
type LearnerProfileUpdate struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdate) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (_u *LearnerProfileUpdate) SetAbilityEstimate(v float64) *LearnerProfileUpdate {
	_u.mutation.ResetAbilityEstimate()
	_u.mutation.SetAbilityEstimate(v)
	return _u
}

// SetNillableAbilityEstimate sets the "ability_estimate" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableAbilityEstimate(v *float64) *LearnerProfileUpdate {
	if v != nil {
		_u.SetAbilityEstimate(*v)
	}
	return _u
}

// AddAbilityEstimate adds value to the "ability_estimate" field.
func (_u *LearnerProfileUpdate) AddAbilityEstimate(v float64) *LearnerProfileUpdate {
	_u.mutation.AddAbilityEstimate(v)
	return _u
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (_u *LearnerProfileUpdate) SetAbilityConfidence(v float64) *LearnerProfileUpdate {
	_u.mutation.ResetAbilityConfidence()
	_u.mutation.SetAbilityConfidence(v)
	return _u
}

// SetNillableAbilityConfidence sets the "ability_confidence" field if the given value is not nil.
func (_u *LearnerProfileUpdate) SetNillableAbilityConfidence(v *float64) *LearnerProfileUpdate {
	if v != nil {
		_u.SetAbilityConfidence(*v)
	}
	return _u
}

// AddAbilityConfidence adds value to the "ability_confidence" field.
func (_u *LearnerProfileUpdate) AddAbilityConfidence(v float64) *LearnerProfileUpdate {
	_u.mutation.AddAbilityConfidence(v)
	return _u
}

// SetSkillScores sets the "skill_scores" field.
func (_u *LearnerProfileUpdate) SetSkillScores(v map[string]float64) *LearnerProfileUpdate {
	_u.mutation.SetSkillScores(v)
	return _u
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (_u *LearnerProfileUpdate) ClearSkillScores() *LearnerProfileUpdate {
	_u.mutation.ClearSkillScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdate) SetUpdatedAt(v time.Time) *LearnerProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdate) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearnerProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearnerProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AbilityEstimate(); ok {
		_spec.SetField(learnerprofile.FieldAbilityEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityEstimate(); ok {
		_spec.AddField(learnerprofile.FieldAbilityEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbilityConfidence(); ok {
		_spec.SetField(learnerprofile.FieldAbilityConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityConfidence(); ok {
		_spec.AddField(learnerprofile.FieldAbilityConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SkillScores(); ok {
		_spec.SetField(learnerprofile.FieldSkillScores, field.TypeJSON, value)
	}
	if _u.mutation.SkillScoresCleared() {
		_spec.ClearField(learnerprofile.FieldSkillScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearnerProfileUpdateOne is the builder for updating a single LearnerProfile entity.
type LearnerProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (_u *LearnerProfileUpdateOne) SetAbilityEstimate(v float64) *LearnerProfileUpdateOne {
	_u.mutation.ResetAbilityEstimate()
	_u.mutation.SetAbilityEstimate(v)
	return _u
}

// SetNillableAbilityEstimate sets the "ability_estimate" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableAbilityEstimate(v *float64) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetAbilityEstimate(*v)
	}
	return _u
}

// AddAbilityEstimate adds value to the "ability_estimate" field.
func (_u *LearnerProfileUpdateOne) AddAbilityEstimate(v float64) *LearnerProfileUpdateOne {
	_u.mutation.AddAbilityEstimate(v)
	return _u
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (_u *LearnerProfileUpdateOne) SetAbilityConfidence(v float64) *LearnerProfileUpdateOne {
	_u.mutation.ResetAbilityConfidence()
	_u.mutation.SetAbilityConfidence(v)
	return _u
}

// SetNillableAbilityConfidence sets the "ability_confidence" field if the given value is not nil.
func (_u *LearnerProfileUpdateOne) SetNillableAbilityConfidence(v *float64) *LearnerProfileUpdateOne {
	if v != nil {
		_u.SetAbilityConfidence(*v)
	}
	return _u
}

// AddAbilityConfidence adds value to the "ability_confidence" field.
func (_u *LearnerProfileUpdateOne) AddAbilityConfidence(v float64) *LearnerProfileUpdateOne {
	_u.mutation.AddAbilityConfidence(v)
	return _u
}

// SetSkillScores sets the "skill_scores" field.
func (_u *LearnerProfileUpdateOne) SetSkillScores(v map[string]float64) *LearnerProfileUpdateOne {
	_u.mutation.SetSkillScores(v)
	return _u
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (_u *LearnerProfileUpdateOne) ClearSkillScores() *LearnerProfileUpdateOne {
	_u.mutation.ClearSkillScores()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LearnerProfileUpdateOne) SetUpdatedAt(v time.Time) *LearnerProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_u *LearnerProfileUpdateOne) Mutation() *LearnerProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearnerProfileUpdate builder.
func (_u *LearnerProfileUpdateOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearnerProfileUpdateOne) Select(field string, fields ...string) *LearnerProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearnerProfile entity.
func (_u *LearnerProfileUpdateOne) Save(ctx context.Context) (*LearnerProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) SaveX(ctx context.Context) *LearnerProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearnerProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearnerProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LearnerProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := learnerprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *LearnerProfileUpdateOne) sqlSave(ctx context.Context) (_node *LearnerProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(learnerprofile.Table, learnerprofile.Columns, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearnerProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learnerprofile.FieldID)
		for _, f := range fields {
			if !learnerprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learnerprofile.FieldID {
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
	if value, ok := _u.mutation.AbilityEstimate(); ok {
		_spec.SetField(learnerprofile.FieldAbilityEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityEstimate(); ok {
		_spec.AddField(learnerprofile.FieldAbilityEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AbilityConfidence(); ok {
		_spec.SetField(learnerprofile.FieldAbilityConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbilityConfidence(); ok {
		_spec.AddField(learnerprofile.FieldAbilityConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SkillScores(); ok {
		_spec.SetField(learnerprofile.FieldSkillScores, field.TypeJSON, value)
	}
	if _u.mutation.SkillScoresCleared() {
		_spec.ClearField(learnerprofile.FieldSkillScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LearnerProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learnerprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
