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
	"github.com/abhisek/lingo/ent/activesession"
)

// ActiveSessionCreate is the builder for creating a ActiveSession entity.
type ActiveSessionCreate struct {
	config
	mutation *ActiveSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *ActiveSessionCreate) SetSessionID(v string) *ActiveSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ActiveSessionCreate) SetUserID(v string) *ActiveSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ActiveSessionCreate) SetLanguage(v string) *ActiveSessionCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActiveSessionCreate) SetStatus(v string) *ActiveSessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ActiveSessionCreate) SetMode(v string) *ActiveSessionCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableMode(v *string) *ActiveSessionCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetPracticeSet sets the "practice_set" field.
func (_c *ActiveSessionCreate) SetPracticeSet(v []map[string]interface{}) *ActiveSessionCreate {
	_c.mutation.SetPracticeSet(v)
	return _c
}

// SetProgress sets the "progress" field.
func (_c *ActiveSessionCreate) SetProgress(v map[string]interface{}) *ActiveSessionCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetFailureReason sets the "failure_reason" field.
func (_c *ActiveSessionCreate) SetFailureReason(v string) *ActiveSessionCreate {
	_c.mutation.SetFailureReason(v)
	return _c
}

// SetNillableFailureReason sets the "failure_reason" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableFailureReason(v *string) *ActiveSessionCreate {
	if v != nil {
		_c.SetFailureReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ActiveSessionCreate) SetCreatedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableCreatedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ActiveSessionCreate) SetUpdatedAt(v time.Time) *ActiveSessionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ActiveSessionCreate) SetNillableUpdatedAt(v *time.Time) *ActiveSessionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ActiveSessionMutation object of the builder.
func (_c *ActiveSessionCreate) Mutation() *ActiveSessionMutation {
	return _c.mutation
}

// Save creates the ActiveSession in the database.
func (_c *ActiveSessionCreate) Save(ctx context.Context) (*ActiveSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActiveSessionCreate) SaveX(ctx context.Context) *ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActiveSessionCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := activesession.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := activesession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := activesession.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActiveSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ActiveSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := activesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ActiveSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := activesession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "ActiveSession.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := activesession.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "ActiveSession.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActiveSession.status"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "ActiveSession.mode"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ActiveSession.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ActiveSession.updated_at"`)}
	}
	return nil
}

func (_c *ActiveSessionCreate) sqlSave(ctx context.Context) (*ActiveSession, error) {
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

func (_c *ActiveSessionCreate) createSpec() (*ActiveSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ActiveSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(activesession.Table, sqlgraph.NewFieldSpec(activesession.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(activesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(activesession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(activesession.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(activesession.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(activesession.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.PracticeSet(); ok {
		_spec.SetField(activesession.FieldPracticeSet, field.TypeJSON, value)
		_node.PracticeSet = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(activesession.FieldProgress, field.TypeJSON, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.FailureReason(); ok {
		_spec.SetField(activesession.FieldFailureReason, field.TypeString, value)
		_node.FailureReason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(activesession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(activesession.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActiveSession.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActiveSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActiveSessionCreate) OnConflict(opts ...sql.ConflictOption) *ActiveSessionUpsertOne {
	_c.conflict = opts
	return &ActiveSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActiveSessionCreate) OnConflictColumns(columns ...string) *ActiveSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActiveSessionUpsertOne{
		create: _c,
	}
}

type (
	// ActiveSessionUpsertOne is the builder for "upsert"-ing
	//  one ActiveSession node.
	ActiveSessionUpsertOne struct {
		create *ActiveSessionCreate
	}

	// ActiveSessionUpsert is the "OnConflict" setter.
	ActiveSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *ActiveSessionUpsert) SetStatus(v string) *ActiveSessionUpsert {
	u.Set(activesession.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdateStatus() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldStatus)
	return u
}

// SetMode sets the "mode" field.
func (u *ActiveSessionUpsert) SetMode(v string) *ActiveSessionUpsert {
	u.Set(activesession.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdateMode() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldMode)
	return u
}

// SetPracticeSet sets the "practice_set" field.
func (u *ActiveSessionUpsert) SetPracticeSet(v []map[string]interface{}) *ActiveSessionUpsert {
	u.Set(activesession.FieldPracticeSet, v)
	return u
}

// UpdatePracticeSet sets the "practice_set" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdatePracticeSet() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldPracticeSet)
	return u
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (u *ActiveSessionUpsert) ClearPracticeSet() *ActiveSessionUpsert {
	u.SetNull(activesession.FieldPracticeSet)
	return u
}

// SetProgress sets the "progress" field.
func (u *ActiveSessionUpsert) SetProgress(v map[string]interface{}) *ActiveSessionUpsert {
	u.Set(activesession.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdateProgress() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldProgress)
	return u
}

// ClearProgress clears the value of the "progress" field.
func (u *ActiveSessionUpsert) ClearProgress() *ActiveSessionUpsert {
	u.SetNull(activesession.FieldProgress)
	return u
}

// SetFailureReason sets the "failure_reason" field.
func (u *ActiveSessionUpsert) SetFailureReason(v string) *ActiveSessionUpsert {
	u.Set(activesession.FieldFailureReason, v)
	return u
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdateFailureReason() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldFailureReason)
	return u
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ActiveSessionUpsert) ClearFailureReason() *ActiveSessionUpsert {
	u.SetNull(activesession.FieldFailureReason)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActiveSessionUpsert) SetUpdatedAt(v time.Time) *ActiveSessionUpsert {
	u.Set(activesession.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActiveSessionUpsert) UpdateUpdatedAt() *ActiveSessionUpsert {
	u.SetExcluded(activesession.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActiveSessionUpsertOne) UpdateNewValues() *ActiveSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(activesession.FieldSessionID)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(activesession.FieldUserID)
		}
		if _, exists := u.create.mutation.Language(); exists {
			s.SetIgnore(activesession.FieldLanguage)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(activesession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ActiveSessionUpsertOne) Ignore() *ActiveSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActiveSessionUpsertOne) DoNothing() *ActiveSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActiveSessionCreate.OnConflict
// documentation for more info.
func (u *ActiveSessionUpsertOne) Update(set func(*ActiveSessionUpsert)) *ActiveSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActiveSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ActiveSessionUpsertOne) SetStatus(v string) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdateStatus() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetMode sets the "mode" field.
func (u *ActiveSessionUpsertOne) SetMode(v string) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdateMode() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateMode()
	})
}

// SetPracticeSet sets the "practice_set" field.
func (u *ActiveSessionUpsertOne) SetPracticeSet(v []map[string]interface{}) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetPracticeSet(v)
	})
}

// UpdatePracticeSet sets the "practice_set" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdatePracticeSet() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdatePracticeSet()
	})
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (u *ActiveSessionUpsertOne) ClearPracticeSet() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearPracticeSet()
	})
}

// SetProgress sets the "progress" field.
func (u *ActiveSessionUpsertOne) SetProgress(v map[string]interface{}) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdateProgress() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateProgress()
	})
}

// ClearProgress clears the value of the "progress" field.
func (u *ActiveSessionUpsertOne) ClearProgress() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearProgress()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *ActiveSessionUpsertOne) SetFailureReason(v string) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdateFailureReason() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ActiveSessionUpsertOne) ClearFailureReason() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearFailureReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActiveSessionUpsertOne) SetUpdatedAt(v time.Time) *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActiveSessionUpsertOne) UpdateUpdatedAt() *ActiveSessionUpsertOne {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ActiveSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActiveSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActiveSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ActiveSessionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ActiveSessionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ActiveSessionCreateBulk is the builder for creating many ActiveSession entities in bulk.
type ActiveSessionCreateBulk struct {
	config
	err      error
	builders []*ActiveSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ActiveSession entities in the database.
func (_c *ActiveSessionCreateBulk) Save(ctx context.Context) ([]*ActiveSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActiveSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActiveSessionMutation)
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
func (_c *ActiveSessionCreateBulk) SaveX(ctx context.Context) []*ActiveSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActiveSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActiveSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ActiveSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ActiveSessionUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *ActiveSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ActiveSessionUpsertBulk {
	_c.conflict = opts
	return &ActiveSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ActiveSessionCreateBulk) OnConflictColumns(columns ...string) *ActiveSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ActiveSessionUpsertBulk{
		create: _c,
	}
}

// ActiveSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ActiveSession nodes.
type ActiveSessionUpsertBulk struct {
	create *ActiveSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ActiveSessionUpsertBulk) UpdateNewValues() *ActiveSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(activesession.FieldSessionID)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(activesession.FieldUserID)
			}
			if _, exists := b.mutation.Language(); exists {
				s.SetIgnore(activesession.FieldLanguage)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(activesession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ActiveSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ActiveSessionUpsertBulk) Ignore() *ActiveSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ActiveSessionUpsertBulk) DoNothing() *ActiveSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ActiveSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ActiveSessionUpsertBulk) Update(set func(*ActiveSessionUpsert)) *ActiveSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ActiveSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *ActiveSessionUpsertBulk) SetStatus(v string) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdateStatus() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateStatus()
	})
}

// SetMode sets the "mode" field.
func (u *ActiveSessionUpsertBulk) SetMode(v string) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdateMode() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateMode()
	})
}

// SetPracticeSet sets the "practice_set" field.
func (u *ActiveSessionUpsertBulk) SetPracticeSet(v []map[string]interface{}) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetPracticeSet(v)
	})
}

// UpdatePracticeSet sets the "practice_set" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdatePracticeSet() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdatePracticeSet()
	})
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (u *ActiveSessionUpsertBulk) ClearPracticeSet() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearPracticeSet()
	})
}

// SetProgress sets the "progress" field.
func (u *ActiveSessionUpsertBulk) SetProgress(v map[string]interface{}) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdateProgress() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateProgress()
	})
}

// ClearProgress clears the value of the "progress" field.
func (u *ActiveSessionUpsertBulk) ClearProgress() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearProgress()
	})
}

// SetFailureReason sets the "failure_reason" field.
func (u *ActiveSessionUpsertBulk) SetFailureReason(v string) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetFailureReason(v)
	})
}

// UpdateFailureReason sets the "failure_reason" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdateFailureReason() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateFailureReason()
	})
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (u *ActiveSessionUpsertBulk) ClearFailureReason() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.ClearFailureReason()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ActiveSessionUpsertBulk) SetUpdatedAt(v time.Time) *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ActiveSessionUpsertBulk) UpdateUpdatedAt() *ActiveSessionUpsertBulk {
	return u.Update(func(s *ActiveSessionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ActiveSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ActiveSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ActiveSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ActiveSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
