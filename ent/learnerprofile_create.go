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
)

// LearnerProfileCreate is the builder for creating a LearnerProfile entity.
type LearnerProfileCreate struct {
	config
	mutation *LearnerProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *LearnerProfileCreate) SetUserID(v string) *LearnerProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *LearnerProfileCreate) SetLanguage(v string) *LearnerProfileCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (_c *LearnerProfileCreate) SetAbilityEstimate(v float64) *LearnerProfileCreate {
	_c.mutation.SetAbilityEstimate(v)
	return _c
}

// SetNillableAbilityEstimate sets the "ability_estimate" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableAbilityEstimate(v *float64) *LearnerProfileCreate {
	if v != nil {
		_c.SetAbilityEstimate(*v)
	}
	return _c
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (_c *LearnerProfileCreate) SetAbilityConfidence(v float64) *LearnerProfileCreate {
	_c.mutation.SetAbilityConfidence(v)
	return _c
}

// SetNillableAbilityConfidence sets the "ability_confidence" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableAbilityConfidence(v *float64) *LearnerProfileCreate {
	if v != nil {
		_c.SetAbilityConfidence(*v)
	}
	return _c
}

// SetSkillScores sets the "skill_scores" field.
func (_c *LearnerProfileCreate) SetSkillScores(v map[string]float64) *LearnerProfileCreate {
	_c.mutation.SetSkillScores(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LearnerProfileCreate) SetUpdatedAt(v time.Time) *LearnerProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LearnerProfileCreate) SetNillableUpdatedAt(v *time.Time) *LearnerProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LearnerProfileMutation object of the builder.
func (_c *LearnerProfileCreate) Mutation() *LearnerProfileMutation {
	return _c.mutation
}

// Save creates the LearnerProfile in the database.
func (_c *LearnerProfileCreate) Save(ctx context.Context) (*LearnerProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearnerProfileCreate) SaveX(ctx context.Context) *LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearnerProfileCreate) defaults() {
	if _, ok := _c.mutation.AbilityEstimate(); !ok {
		v := learnerprofile.DefaultAbilityEstimate
		_c.mutation.SetAbilityEstimate(v)
	}
	if _, ok := _c.mutation.AbilityConfidence(); !ok {
		v := learnerprofile.DefaultAbilityConfidence
		_c.mutation.SetAbilityConfidence(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := learnerprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearnerProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearnerProfile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learnerprofile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "LearnerProfile.language"`)}
	}
	if v, ok := _c.mutation.Language(); ok {
		if err := learnerprofile.LanguageValidator(v); err != nil {
			return &ValidationError{Name: "language", err: fmt.Errorf(`ent: validator failed for field "LearnerProfile.language": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AbilityEstimate(); !ok {
		return &ValidationError{Name: "ability_estimate", err: errors.New(`ent: missing required field "LearnerProfile.ability_estimate"`)}
	}
	if _, ok := _c.mutation.AbilityConfidence(); !ok {
		return &ValidationError{Name: "ability_confidence", err: errors.New(`ent: missing required field "LearnerProfile.ability_confidence"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LearnerProfile.updated_at"`)}
	}
	return nil
}

func (_c *LearnerProfileCreate) sqlSave(ctx context.Context) (*LearnerProfile, error) {
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

func (_c *LearnerProfileCreate) createSpec() (*LearnerProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &LearnerProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learnerprofile.Table, sqlgraph.NewFieldSpec(learnerprofile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learnerprofile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(learnerprofile.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.AbilityEstimate(); ok {
		_spec.SetField(learnerprofile.FieldAbilityEstimate, field.TypeFloat64, value)
		_node.AbilityEstimate = value
	}
	if value, ok := _c.mutation.AbilityConfidence(); ok {
		_spec.SetField(learnerprofile.FieldAbilityConfidence, field.TypeFloat64, value)
		_node.AbilityConfidence = value
	}
	if value, ok := _c.mutation.SkillScores(); ok {
		_spec.SetField(learnerprofile.FieldSkillScores, field.TypeJSON, value)
		_node.SkillScores = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(learnerprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnerProfile.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerProfileUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerProfileCreate) OnConflict(opts ...sql.ConflictOption) *LearnerProfileUpsertOne {
	_c.conflict = opts
	return &LearnerProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerProfileCreate) OnConflictColumns(columns ...string) *LearnerProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerProfileUpsertOne{
		create: _c,
	}
}

type (
	// LearnerProfileUpsertOne is the builder for "upsert"-ing
	//  one LearnerProfile node.
	LearnerProfileUpsertOne struct {
		create *LearnerProfileCreate
	}

	// LearnerProfileUpsert is the "OnConflict" setter.
	LearnerProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetAbilityEstimate sets the "ability_estimate" field.
func (u *LearnerProfileUpsert) SetAbilityEstimate(v float64) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldAbilityEstimate, v)
	return u
}

// UpdateAbilityEstimate sets the "ability_estimate" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateAbilityEstimate() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldAbilityEstimate)
	return u
}

// AddAbilityEstimate adds v to the "ability_estimate" field.
func (u *LearnerProfileUpsert) AddAbilityEstimate(v float64) *LearnerProfileUpsert {
	u.Add(learnerprofile.FieldAbilityEstimate, v)
	return u
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (u *LearnerProfileUpsert) SetAbilityConfidence(v float64) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldAbilityConfidence, v)
	return u
}

// UpdateAbilityConfidence sets the "ability_confidence" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateAbilityConfidence() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldAbilityConfidence)
	return u
}

// AddAbilityConfidence adds v to the "ability_confidence" field.
func (u *LearnerProfileUpsert) AddAbilityConfidence(v float64) *LearnerProfileUpsert {
	u.Add(learnerprofile.FieldAbilityConfidence, v)
	return u
}

// SetSkillScores sets the "skill_scores" field.
func (u *LearnerProfileUpsert) SetSkillScores(v map[string]float64) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldSkillScores, v)
	return u
}

// UpdateSkillScores sets the "skill_scores" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateSkillScores() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldSkillScores)
	return u
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (u *LearnerProfileUpsert) ClearSkillScores() *LearnerProfileUpsert {
	u.SetNull(learnerprofile.FieldSkillScores)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsert) SetUpdatedAt(v time.Time) *LearnerProfileUpsert {
	u.Set(learnerprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsert) UpdateUpdatedAt() *LearnerProfileUpsert {
	u.SetExcluded(learnerprofile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearnerProfileUpsertOne) UpdateNewValues() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(learnerprofile.FieldUserID)
		}
		if _, exists := u.create.mutation.Language(); exists {
			s.SetIgnore(learnerprofile.FieldLanguage)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *LearnerProfileUpsertOne) Ignore() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerProfileUpsertOne) DoNothing() *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerProfileCreate.OnConflict
// documentation for more info.
func (u *LearnerProfileUpsertOne) Update(set func(*LearnerProfileUpsert)) *LearnerProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (u *LearnerProfileUpsertOne) SetAbilityEstimate(v float64) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetAbilityEstimate(v)
	})
}

// AddAbilityEstimate adds v to the "ability_estimate" field.
func (u *LearnerProfileUpsertOne) AddAbilityEstimate(v float64) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddAbilityEstimate(v)
	})
}

// UpdateAbilityEstimate sets the "ability_estimate" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateAbilityEstimate() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateAbilityEstimate()
	})
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (u *LearnerProfileUpsertOne) SetAbilityConfidence(v float64) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetAbilityConfidence(v)
	})
}

// AddAbilityConfidence adds v to the "ability_confidence" field.
func (u *LearnerProfileUpsertOne) AddAbilityConfidence(v float64) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddAbilityConfidence(v)
	})
}

// UpdateAbilityConfidence sets the "ability_confidence" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateAbilityConfidence() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateAbilityConfidence()
	})
}

// SetSkillScores sets the "skill_scores" field.
func (u *LearnerProfileUpsertOne) SetSkillScores(v map[string]float64) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetSkillScores(v)
	})
}

// UpdateSkillScores sets the "skill_scores" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateSkillScores() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateSkillScores()
	})
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (u *LearnerProfileUpsertOne) ClearSkillScores() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.ClearSkillScores()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsertOne) SetUpdatedAt(v time.Time) *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsertOne) UpdateUpdatedAt() *LearnerProfileUpsertOne {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnerProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *LearnerProfileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *LearnerProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// LearnerProfileCreateBulk is the builder for creating many LearnerProfile entities in bulk.
type LearnerProfileCreateBulk struct {
	config
	err      error
	builders []*LearnerProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the LearnerProfile entities in the database.
func (_c *LearnerProfileCreateBulk) Save(ctx context.Context) ([]*LearnerProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearnerProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearnerProfileMutation)
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
func (_c *LearnerProfileCreateBulk) SaveX(ctx context.Context) []*LearnerProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearnerProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearnerProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.LearnerProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.LearnerProfileUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *LearnerProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *LearnerProfileUpsertBulk {
	_c.conflict = opts
	return &LearnerProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *LearnerProfileCreateBulk) OnConflictColumns(columns ...string) *LearnerProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &LearnerProfileUpsertBulk{
		create: _c,
	}
}

// LearnerProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of LearnerProfile nodes.
type LearnerProfileUpsertBulk struct {
	create *LearnerProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *LearnerProfileUpsertBulk) UpdateNewValues() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(learnerprofile.FieldUserID)
			}
			if _, exists := b.mutation.Language(); exists {
				s.SetIgnore(learnerprofile.FieldLanguage)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.LearnerProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *LearnerProfileUpsertBulk) Ignore() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *LearnerProfileUpsertBulk) DoNothing() *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the LearnerProfileCreateBulk.OnConflict
// documentation for more info.
func (u *LearnerProfileUpsertBulk) Update(set func(*LearnerProfileUpsert)) *LearnerProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&LearnerProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (u *LearnerProfileUpsertBulk) SetAbilityEstimate(v float64) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetAbilityEstimate(v)
	})
}

// AddAbilityEstimate adds v to the "ability_estimate" field.
func (u *LearnerProfileUpsertBulk) AddAbilityEstimate(v float64) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddAbilityEstimate(v)
	})
}

// UpdateAbilityEstimate sets the "ability_estimate" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateAbilityEstimate() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateAbilityEstimate()
	})
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (u *LearnerProfileUpsertBulk) SetAbilityConfidence(v float64) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetAbilityConfidence(v)
	})
}

// AddAbilityConfidence adds v to the "ability_confidence" field.
func (u *LearnerProfileUpsertBulk) AddAbilityConfidence(v float64) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.AddAbilityConfidence(v)
	})
}

// UpdateAbilityConfidence sets the "ability_confidence" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateAbilityConfidence() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateAbilityConfidence()
	})
}

// SetSkillScores sets the "skill_scores" field.
func (u *LearnerProfileUpsertBulk) SetSkillScores(v map[string]float64) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetSkillScores(v)
	})
}

// UpdateSkillScores sets the "skill_scores" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateSkillScores() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateSkillScores()
	})
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (u *LearnerProfileUpsertBulk) ClearSkillScores() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.ClearSkillScores()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *LearnerProfileUpsertBulk) SetUpdatedAt(v time.Time) *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *LearnerProfileUpsertBulk) UpdateUpdatedAt() *LearnerProfileUpsertBulk {
	return u.Update(func(s *LearnerProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *LearnerProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the LearnerProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for LearnerProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *LearnerProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
