// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/activesession"
	"github.com/abhisek/lingo/ent/predicate"
)

// ActiveSessionUpdate is the builder for updating ActiveSession entities.
type ActiveSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdate) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActiveSessionUpdate) SetStatus(v string) *ActiveSessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableStatus(v *string) *ActiveSessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ActiveSessionUpdate) SetMode(v string) *ActiveSessionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableMode(v *string) *ActiveSessionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPracticeSet sets the "practice_set" field.
func (_u *ActiveSessionUpdate) SetPracticeSet(v []map[string]interface{}) *ActiveSessionUpdate {
	_u.mutation.SetPracticeSet(v)
	return _u
}

// AppendPracticeSet appends value to the "practice_set" field.
func (_u *ActiveSessionUpdate) AppendPracticeSet(v []map[string]interface{}) *ActiveSessionUpdate {
	_u.mutation.AppendPracticeSet(v)
	return _u
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (_u *ActiveSessionUpdate) ClearPracticeSet() *ActiveSessionUpdate {
	_u.mutation.ClearPracticeSet()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ActiveSessionUpdate) SetProgress(v map[string]interface{}) *ActiveSessionUpdate {
	_u.mutation.SetProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ActiveSessionUpdate) ClearProgress() *ActiveSessionUpdate {
	_u.mutation.ClearProgress()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ActiveSessionUpdate) SetFailureReason(v string) *ActiveSessionUpdate {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ActiveSessionUpdate) SetNillableFailureReason(v *string) *ActiveSessionUpdate {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ActiveSessionUpdate) ClearFailureReason() *ActiveSessionUpdate {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActiveSessionUpdate) SetUpdatedAt(v time.Time) *ActiveSessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdate) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActiveSessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActiveSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActiveSessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ActiveSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(activesession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeSet(); ok {
		_spec.SetField(activesession.FieldPracticeSet, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPracticeSet(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activesession.FieldPracticeSet, value)
		})
	}
	if _u.mutation.PracticeSetCleared() {
		_spec.ClearField(activesession.FieldPracticeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(activesession.FieldProgress, field.TypeJSON, value)
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(activesession.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(activesession.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(activesession.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activesession.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActiveSessionUpdateOne is the builder for updating a single ActiveSession entity.
type ActiveSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActiveSessionMutation
}

// SetStatus sets the "status" field.
func (_u *ActiveSessionUpdateOne) SetStatus(v string) *ActiveSessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableStatus(v *string) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ActiveSessionUpdateOne) SetMode(v string) *ActiveSessionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableMode(v *string) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetPracticeSet sets the "practice_set" field.
func (_u *ActiveSessionUpdateOne) SetPracticeSet(v []map[string]interface{}) *ActiveSessionUpdateOne {
	_u.mutation.SetPracticeSet(v)
	return _u
}

// AppendPracticeSet appends value to the "practice_set" field.
func (_u *ActiveSessionUpdateOne) AppendPracticeSet(v []map[string]interface{}) *ActiveSessionUpdateOne {
	_u.mutation.AppendPracticeSet(v)
	return _u
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (_u *ActiveSessionUpdateOne) ClearPracticeSet() *ActiveSessionUpdateOne {
	_u.mutation.ClearPracticeSet()
	return _u
}

// SetProgress sets the "progress" field.
func (_u *ActiveSessionUpdateOne) SetProgress(v map[string]interface{}) *ActiveSessionUpdateOne {
	_u.mutation.SetProgress(v)
	return _u
}

// ClearProgress clears the value of the "progress" field.
func (_u *ActiveSessionUpdateOne) ClearProgress() *ActiveSessionUpdateOne {
	_u.mutation.ClearProgress()
	return _u
}

// SetFailureReason sets the "failure_reason" field.
func (_u *ActiveSessionUpdateOne) SetFailureReason(v string) *ActiveSessionUpdateOne {
	_u.mutation.SetFailureReason(v)
	return _u
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_u *ActiveSessionUpdateOne) SetNillableFailureReason(v *string) *ActiveSessionUpdateOne {
	if v != nil {
		_u.SetFailureReason(*v)
	}
	return _u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (_u *ActiveSessionUpdateOne) ClearFailureReason() *ActiveSessionUpdateOne {
	_u.mutation.ClearFailureReason()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ActiveSessionUpdateOne) SetUpdatedAt(v time.Time) *ActiveSessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_u *ActiveSessionUpdateOne) Mutation() *ActiveSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActiveSessionUpdate builder.
func (_u *ActiveSessionUpdateOne) Where(ps ...predicate.ActiveSession) *ActiveSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActiveSessionUpdateOne) Select(field string, fields ...string) *ActiveSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActiveSession entity.
func (_u *ActiveSessionUpdateOne) Save(ctx context.Context) (*ActiveSession, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) SaveX(ctx context.Context) *ActiveSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActiveSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActiveSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ActiveSessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := activesession.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ActiveSessionUpdateOne) sqlSave(ctx context.Context) (_node *ActiveSession, err error) {
	_spec := sqlgraph.NewUpdateSpec(activesession.Table, activesession.Columns, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActiveSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activesession.FieldID)
		for _, f := range fields {
			if !activesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activesession.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(activesession.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PracticeSet(); ok {
		_spec.SetField(activesession.FieldPracticeSet, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPracticeSet(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, activesession.FieldPracticeSet, value)
		})
	}
	if _u.mutation.PracticeSetCleared() {
		_spec.ClearField(activesession.FieldPracticeSet, field.TypeJSON)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(activesession.FieldProgress, field.TypeJSON, value)
	}
	if _u.mutation.ProgressCleared() {
		_spec.ClearField(activesession.FieldProgress, field.TypeJSON)
	}
	if value, ok := _u.mutation.FailureReason(); ok {
		_spec.SetField(activesession.FieldFailureReason, field.TypeString, value)
	}
	if _u.mutation.FailureReasonCleared() {
		_spec.ClearField(activesession.FieldFailureReason, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(activesession.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ActiveSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
