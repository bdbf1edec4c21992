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
	"github.com/abhisek/lingo/ent/questionexposure"
)

// QuestionExposureCreate is the builder for creating a QuestionExposure entity.
type QuestionExposureCreate struct {
	config
	mutation *QuestionExposureMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *QuestionExposureCreate) SetUserID(v string) *QuestionExposureCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *QuestionExposureCreate) SetLanguage(v string) *QuestionExposureCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetHash sets the "hash" field.
func (_c *QuestionExposureCreate) SetHash(v string) *QuestionExposureCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetSeenAt sets the "seen_at" field.
func (_c *QuestionExposureCreate) SetSeenAt(v time.Time) *QuestionExposureCreate {
	_c.mutation.SetSeenAt(v)
	return _c
}

// SetNillableSeenAt sets the "seen_at" field if the given value is not nil.
func (_c *QuestionExposureCreate) SetNillableSeenAt(v *time.Time) *QuestionExposureCreate {
	if v != nil {
		_c.SetSeenAt(*v)
	}
	return _c
}

// Mutation returns the QuestionExposureMutation object of the builder.
func (_c *QuestionExposureCreate) Mutation() *QuestionExposureMutation {
	return _c.mutation
}

// Save creates the QuestionExposure in the database.
func (_c *QuestionExposureCreate) Save(ctx context.Context) (*QuestionExposure, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionExposureCreate) SaveX(ctx context.Context) *QuestionExposure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionExposureCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionExposureCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionExposureCreate) defaults() {
	if _, ok := _c.mutation.SeenAt(); !ok {
		v := questionexposure.DefaultSeenAt()
		_c.mutation.SetSeenAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionExposureCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "QuestionExposure.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := questionexposure.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "QuestionExposure.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "QuestionExposure.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := questionexposure.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "QuestionExposure.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "QuestionExposure.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := questionexposure.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "QuestionExposure.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SeenAt(); !ok {
		return &ValidationError{Name: "seen_at", err: errors.New(`ent: missing required field "QuestionExposure.seen_at"`)}
	}
	return nil
}

func (_c *QuestionExposureCreate) sqlSave(ctx context.Context) (*QuestionExposure, error) {
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

func (_c *QuestionExposureCreate) createSpec() (*QuestionExposure, *sqlgraph.CreateSpec) {
	var (
		_node = &QuestionExposure{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(questionexposure.Table, sqlgraph.NewFieldSpec(questionexposure.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(questionexposure.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(questionexposure.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(questionexposure.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.SeenAt(); ok {
		_spec.SetField(questionexposure.FieldSeenAt, field.TypeTime, value)
		_node.SeenAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionExposure.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionExposureUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionExposureCreate) OnConflict(opts ...sql.ConflictOption) *QuestionExposureUpsertOne {
	_c.conflict = opts
	return &QuestionExposureUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionExposureCreate) OnConflictColumns(columns ...string) *QuestionExposureUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionExposureUpsertOne{
		create: _c,
	}
}

type (
	// QuestionExposureUpsertOne is the builder for "upsert"-ing
	//  one QuestionExposure node.
	QuestionExposureUpsertOne struct {
		create *QuestionExposureCreate
	}

	// QuestionExposureUpsert is the "OnConflict" setter.
	QuestionExposureUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionExposureUpsertOne) UpdateNewValues() *QuestionExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(questionexposure.FieldUserID)
		}
		if _, exists := u.create.mutation.Language(); exists {
			s.SetIgnore(questionexposure.FieldLanguage)
		}
		if _, exists := u.create.mutation.Hash(); exists {
			s.SetIgnore(questionexposure.FieldHash)
		}
		if _, exists := u.create.mutation.SeenAt(); exists {
			s.SetIgnore(questionexposure.FieldSeenAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *QuestionExposureUpsertOne) Ignore() *QuestionExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionExposureUpsertOne) DoNothing() *QuestionExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionExposureCreate.OnConflict
// documentation for more info.
func (u *QuestionExposureUpsertOne) Update(set func(*QuestionExposureUpsert)) *QuestionExposureUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionExposureUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *QuestionExposureUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionExposureCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionExposureUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *QuestionExposureUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *QuestionExposureUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// QuestionExposureCreateBulk is the builder for creating many QuestionExposure entities in bulk.
type QuestionExposureCreateBulk struct {
	config
	err      error
	builders []*QuestionExposureCreate
	conflict []sql.ConflictOption
}

// Save creates the QuestionExposure entities in the database.
func (_c *QuestionExposureCreateBulk) Save(ctx context.Context) ([]*QuestionExposure, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuestionExposure, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionExposureMutation)
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
func (_c *QuestionExposureCreateBulk) SaveX(ctx context.Context) []*QuestionExposure {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionExposureCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionExposureCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.QuestionExposure.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.QuestionExposureUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *QuestionExposureCreateBulk) OnConflict(opts ...sql.ConflictOption) *QuestionExposureUpsertBulk {
	_c.conflict = opts
	return &QuestionExposureUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *QuestionExposureCreateBulk) OnConflictColumns(columns ...string) *QuestionExposureUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &QuestionExposureUpsertBulk{
		create: _c,
	}
}

// QuestionExposureUpsertBulk is the builder for "upsert"-ing
// a bulk of QuestionExposure nodes.
type QuestionExposureUpsertBulk struct {
	create *QuestionExposureCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *QuestionExposureUpsertBulk) UpdateNewValues() *QuestionExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(questionexposure.FieldUserID)
			}
			if _, exists := b.mutation.Language(); exists {
				s.SetIgnore(questionexposure.FieldLanguage)
			}
			if _, exists := b.mutation.Hash(); exists {
				s.SetIgnore(questionexposure.FieldHash)
			}
			if _, exists := b.mutation.SeenAt(); exists {
				s.SetIgnore(questionexposure.FieldSeenAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.QuestionExposure.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *QuestionExposureUpsertBulk) Ignore() *QuestionExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *QuestionExposureUpsertBulk) DoNothing() *QuestionExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the QuestionExposureCreateBulk.OnConflict
// documentation for more info.
func (u *QuestionExposureUpsertBulk) Update(set func(*QuestionExposureUpsert)) *QuestionExposureUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&QuestionExposureUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *QuestionExposureUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the QuestionExposureCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for QuestionExposureCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *QuestionExposureUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
