// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/lingo/ent/learnerprofile"
	"github.com/abhisek/lingo/ent/predicate"
)

// LearnerProfileDelete is the builder for deleting a LearnerProfile entity.
type LearnerProfileDelete struct {
	config
	hooks    []Hook
	mutation *LearnerProfileMutation
}

// Where appends a list predicates to the LearnerProfileDelete builder.
func (_d *LearnerProfileDelete) Where(ps ...predicate.LearnerProfile) *LearnerProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *LearnerProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *LearnerProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// LearnerProfileDeleteOne is the builder for deleting a single LearnerProfile entity.
type LearnerProfileDeleteOne struct {
	_d *LearnerProfileDelete
}

// Where appends a list predicates to the LearnerProfileDelete builder.
func (_d *LearnerProfileDeleteOne) Where(ps ...predicate.LearnerProfile) *LearnerProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *LearnerProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{learnerprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *LearnerProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
