// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/predicate"
	"github.com/abhisek/lingo/ent/questionexposure"
)

// QuestionExposureUpdate is the builder for updating QuestionExposure entities.
type QuestionExposureUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionExposureMutation
}

// Where appends a list predicates to the QuestionExposureUpdate builder.
func (_u *QuestionExposureUpdate) Where(ps ...predicate.QuestionExposure) *QuestionExposureUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the QuestionExposureMutation object of the builder.
func (_u *QuestionExposureUpdate) Mutation() *QuestionExposureMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionExposureUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionExposureUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionExposureUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionExposureUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionExposureUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionexposure.Table, questionexposure.Columns, sqlgraph.NewFieldSpec(questionexposure.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionexposure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionExposureUpdateOne is the builder for updating a single QuestionExposure entity.
type QuestionExposureUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionExposureMutation
}

// Mutation returns the QuestionExposureMutation object of the builder.
func (_u *QuestionExposureUpdateOne) Mutation() *QuestionExposureMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionExposureUpdate builder.
func (_u *QuestionExposureUpdateOne) Where(ps ...predicate.QuestionExposure) *QuestionExposureUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionExposureUpdateOne) Select(field string, fields ...string) *QuestionExposureUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuestionExposure entity.
func (_u *QuestionExposureUpdateOne) Save(ctx context.Context) (*QuestionExposure, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionExposureUpdateOne) SaveX(ctx context.Context) *QuestionExposure {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionExposureUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionExposureUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QuestionExposureUpdateOne) sqlSave(ctx context.Context) (_node *QuestionExposure, err error) {
	_spec := sqlgraph.NewUpdateSpec(questionexposure.Table, questionexposure.Columns, sqlgraph.NewFieldSpec(questionexposure.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuestionExposure.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, questionexposure.FieldID)
		for _, f := range fields {
			if !questionexposure.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != questionexposure.FieldID {
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
	_node = &QuestionExposure{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{questionexposure.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
