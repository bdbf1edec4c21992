// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/activesession"
	"github.com/abhisek/lingo/ent/learnerprofile"
	"github.com/abhisek/lingo/ent/poolquestion"
	"github.com/abhisek/lingo/ent/predicate"
	"github.com/abhisek/lingo/ent/questionexposure"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActiveSession    = "ActiveSession"
	TypeLearnerProfile   = "LearnerProfile"
	TypePoolQuestion     = "PoolQuestion"
	TypeQuestionExposure = "QuestionExposure"
)

// ActiveSessionMutation represents an operation that mutates the ActiveSession nodes in the graph.
type ActiveSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	session_id         *string
	user_id            *string
	language           *string
	status             *string
	mode               *string
	practice_set       *[]map[string]interface{}
	appendpractice_set []map[string]interface{}
	progress           *map[string]interface{}
	failure_reason     *string
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*ActiveSession, error)
	predicates         []predicate.ActiveSession
}

var _ ent.Mutation = (*ActiveSessionMutation)(nil)

// activesessionOption allows management of the mutation configuration using functional options.
type activesessionOption func(*ActiveSessionMutation)

// newActiveSessionMutation creates new mutation for the ActiveSession entity.
func newActiveSessionMutation(c config, op Op, opts ...activesessionOption) *ActiveSessionMutation {
	m := &ActiveSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeActiveSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActiveSessionID sets the ID field of the mutation.
func withActiveSessionID(id int) activesessionOption {
	return func(m *ActiveSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ActiveSession
		)
		m.oldValue = func(ctx context.Context) (*ActiveSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActiveSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActiveSession sets the old ActiveSession of the mutation.
func withActiveSession(node *ActiveSession) activesessionOption {
	return func(m *ActiveSessionMutation) {
		m.oldValue = func(context.Context) (*ActiveSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActiveSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActiveSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActiveSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActiveSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActiveSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ActiveSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ActiveSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ActiveSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ActiveSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ActiveSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ActiveSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetLanguage sets the "language" field.
func (m *ActiveSessionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *ActiveSessionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *ActiveSessionMutation) ResetLanguage() {
	m.language = nil
}

// SetStatus sets the "status" field.
func (m *ActiveSessionMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ActiveSessionMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActiveSessionMutation) ResetStatus() {
	m.status = nil
}

// SetMode sets the "mode" field.
func (m *ActiveSessionMutation) SetMode(s string) {
	m.mode = &s
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ActiveSessionMutation) Mode() (r string, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ActiveSessionMutation) ResetMode() {
	m.mode = nil
}

// SetPracticeSet sets the "practice_set" field.
func (m *ActiveSessionMutation) SetPracticeSet(value []map[string]interface{}) {
	m.practice_set = &value
	m.appendpractice_set = nil
}

// PracticeSet returns the value of the "practice_set" field in the mutation.
func (m *ActiveSessionMutation) PracticeSet() (r []map[string]interface{}, exists bool) {
	v := m.practice_set
	if v == nil {
		return
	}
	return *v, true
}

// OldPracticeSet returns the old "practice_set" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldPracticeSet(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPracticeSet is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPracticeSet requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPracticeSet: %w", err)
	}
	return oldValue.PracticeSet, nil
}

// AppendPracticeSet adds value to the "practice_set" field.
func (m *ActiveSessionMutation) AppendPracticeSet(value []map[string]interface{}) {
	m.appendpractice_set = append(m.appendpractice_set, value...)
}

// AppendedPracticeSet returns the list of values that were appended to the "practice_set" field in this mutation.
func (m *ActiveSessionMutation) AppendedPracticeSet() ([]map[string]interface{}, bool) {
	if len(m.appendpractice_set) == 0 {
		return nil, false
	}
	return m.appendpractice_set, true
}

// ClearPracticeSet clears the value of the "practice_set" field.
func (m *ActiveSessionMutation) ClearPracticeSet() {
	m.practice_set = nil
	m.appendpractice_set = nil
	m.clearedFields[activesession.FieldPracticeSet] = struct{}{}
}

// PracticeSetCleared returns if the "practice_set" field was cleared in this mutation.
func (m *ActiveSessionMutation) PracticeSetCleared() bool {
	_, ok := m.clearedFields[activesession.FieldPracticeSet]
	return ok
}

// ResetPracticeSet resets all changes to the "practice_set" field.
func (m *ActiveSessionMutation) ResetPracticeSet() {
	m.practice_set = nil
	m.appendpractice_set = nil
	delete(m.clearedFields, activesession.FieldPracticeSet)
}

// SetProgress sets the "progress" field.
func (m *ActiveSessionMutation) SetProgress(value map[string]interface{}) {
	m.progress = &value
}

// Progress returns the value of the "progress" field in the mutation.
func (m *ActiveSessionMutation) Progress() (r map[string]interface{}, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldProgress(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// ClearProgress clears the value of the "progress" field.
func (m *ActiveSessionMutation) ClearProgress() {
	m.progress = nil
	m.clearedFields[activesession.FieldProgress] = struct{}{}
}

// ProgressCleared returns if the "progress" field was cleared in this mutation.
func (m *ActiveSessionMutation) ProgressCleared() bool {
	_, ok := m.clearedFields[activesession.FieldProgress]
	return ok
}

// ResetProgress resets all changes to the "progress" field.
func (m *ActiveSessionMutation) ResetProgress() {
	m.progress = nil
	delete(m.clearedFields, activesession.FieldProgress)
}

// SetFailureReason sets the "failure_reason" field.
func (m *ActiveSessionMutation) SetFailureReason(s string) {
	m.failure_reason = &s
}

// FailureReason returns the value of the "failure_reason" field in the mutation.
func (m *ActiveSessionMutation) FailureReason() (r string, exists bool) {
	v := m.failure_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureReason returns the old "failure_reason" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldFailureReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureReason: %w", err)
	}
	return oldValue.FailureReason, nil
}

// ClearFailureReason clears the value of the "failure_reason" field.
func (m *ActiveSessionMutation) ClearFailureReason() {
	m.failure_reason = nil
	m.clearedFields[activesession.FieldFailureReason] = struct{}{}
}

// FailureReasonCleared returns if the "failure_reason" field was cleared in this mutation.
func (m *ActiveSessionMutation) FailureReasonCleared() bool {
	_, ok := m.clearedFields[activesession.FieldFailureReason]
	return ok
}

// ResetFailureReason resets all changes to the "failure_reason" field.
func (m *ActiveSessionMutation) ResetFailureReason() {
	m.failure_reason = nil
	delete(m.clearedFields, activesession.FieldFailureReason)
}

// SetCreatedAt sets the "created_at" field.
func (m *ActiveSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ActiveSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ActiveSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ActiveSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ActiveSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ActiveSession entity.
// If the ActiveSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActiveSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ActiveSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ActiveSessionMutation builder.
func (m *ActiveSessionMutation) Where(ps ...predicate.ActiveSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActiveSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActiveSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActiveSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActiveSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActiveSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActiveSession).
func (m *ActiveSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActiveSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session_id != nil {
		fields = append(fields, activesession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, activesession.FieldUserID)
	}
	if m.language != nil {
		fields = append(fields, activesession.FieldLanguage)
	}
	if m.status != nil {
		fields = append(fields, activesession.FieldStatus)
	}
	if m.mode != nil {
		fields = append(fields, activesession.FieldMode)
	}
	if m.practice_set != nil {
		fields = append(fields, activesession.FieldPracticeSet)
	}
	if m.progress != nil {
		fields = append(fields, activesession.FieldProgress)
	}
	if m.failure_reason != nil {
		fields = append(fields, activesession.FieldFailureReason)
	}
	if m.created_at != nil {
		fields = append(fields, activesession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, activesession.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActiveSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case activesession.FieldSessionID:
		return m.SessionID()
	case activesession.FieldUserID:
		return m.UserID()
	case activesession.FieldLanguage:
		return m.Language()
	case activesession.FieldStatus:
		return m.Status()
	case activesession.FieldMode:
		return m.Mode()
	case activesession.FieldPracticeSet:
		return m.PracticeSet()
	case activesession.FieldProgress:
		return m.Progress()
	case activesession.FieldFailureReason:
		return m.FailureReason()
	case activesession.FieldCreatedAt:
		return m.CreatedAt()
	case activesession.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActiveSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case activesession.FieldSessionID:
		return m.OldSessionID(ctx)
	case activesession.FieldUserID:
		return m.OldUserID(ctx)
	case activesession.FieldLanguage:
		return m.OldLanguage(ctx)
	case activesession.FieldStatus:
		return m.OldStatus(ctx)
	case activesession.FieldMode:
		return m.OldMode(ctx)
	case activesession.FieldPracticeSet:
		return m.OldPracticeSet(ctx)
	case activesession.FieldProgress:
		return m.OldProgress(ctx)
	case activesession.FieldFailureReason:
		return m.OldFailureReason(ctx)
	case activesession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case activesession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ActiveSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case activesession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case activesession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case activesession.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case activesession.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case activesession.FieldMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case activesession.FieldPracticeSet:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPracticeSet(v)
		return nil
	case activesession.FieldProgress:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case activesession.FieldFailureReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureReason(v)
		return nil
	case activesession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case activesession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActiveSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActiveSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActiveSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActiveSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActiveSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(activesession.FieldPracticeSet) {
		fields = append(fields, activesession.FieldPracticeSet)
	}
	if m.FieldCleared(activesession.FieldProgress) {
		fields = append(fields, activesession.FieldProgress)
	}
	if m.FieldCleared(activesession.FieldFailureReason) {
		fields = append(fields, activesession.FieldFailureReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActiveSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ClearField(name string) error {
	switch name {
	case activesession.FieldPracticeSet:
		m.ClearPracticeSet()
		return nil
	case activesession.FieldProgress:
		m.ClearProgress()
		return nil
	case activesession.FieldFailureReason:
		m.ClearFailureReason()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActiveSessionMutation) ResetField(name string) error {
	switch name {
	case activesession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case activesession.FieldUserID:
		m.ResetUserID()
		return nil
	case activesession.FieldLanguage:
		m.ResetLanguage()
		return nil
	case activesession.FieldStatus:
		m.ResetStatus()
		return nil
	case activesession.FieldMode:
		m.ResetMode()
		return nil
	case activesession.FieldPracticeSet:
		m.ResetPracticeSet()
		return nil
	case activesession.FieldProgress:
		m.ResetProgress()
		return nil
	case activesession.FieldFailureReason:
		m.ResetFailureReason()
		return nil
	case activesession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case activesession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ActiveSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActiveSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActiveSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActiveSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActiveSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActiveSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActiveSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActiveSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActiveSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ActiveSession edge %s", name)
}

// LearnerProfileMutation represents an operation that mutates the LearnerProfile nodes in the graph.
type LearnerProfileMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	language              *string
	ability_estimate      *float64
	addability_estimate   *float64
	ability_confidence    *float64
	addability_confidence *float64
	skill_scores          *map[string]float64
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*LearnerProfile, error)
	predicates            []predicate.LearnerProfile
}

var _ ent.Mutation = (*LearnerProfileMutation)(nil)

// learnerprofileOption allows management of the mutation configuration using functional options.
type learnerprofileOption func(*LearnerProfileMutation)

// newLearnerProfileMutation creates new mutation for the LearnerProfile entity.
func newLearnerProfileMutation(c config, op Op, opts ...learnerprofileOption) *LearnerProfileMutation {
	m := &LearnerProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeLearnerProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLearnerProfileID sets the ID field of the mutation.
func withLearnerProfileID(id int) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *LearnerProfile
		)
		m.oldValue = func(ctx context.Context) (*LearnerProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LearnerProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLearnerProfile sets the old LearnerProfile of the mutation.
func withLearnerProfile(node *LearnerProfile) learnerprofileOption {
	return func(m *LearnerProfileMutation) {
		m.oldValue = func(context.Context) (*LearnerProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LearnerProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LearnerProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LearnerProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LearnerProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LearnerProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *LearnerProfileMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *LearnerProfileMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *LearnerProfileMutation) ResetUserID() {
	m.user_id = nil
}

// SetLanguage sets the "language" field.
func (m *LearnerProfileMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *LearnerProfileMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *LearnerProfileMutation) ResetLanguage() {
	m.language = nil
}

// SetAbilityEstimate sets the "ability_estimate" field.
func (m *LearnerProfileMutation) SetAbilityEstimate(f float64) {
	m.ability_estimate = &f
	m.addability_estimate = nil
}

// AbilityEstimate returns the value of the "ability_estimate" field in the mutation.
func (m *LearnerProfileMutation) AbilityEstimate() (r float64, exists bool) {
	v := m.ability_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldAbilityEstimate returns the old "ability_estimate" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldAbilityEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbilityEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbilityEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbilityEstimate: %w", err)
	}
	return oldValue.AbilityEstimate, nil
}

// AddAbilityEstimate adds f to the "ability_estimate" field.
func (m *LearnerProfileMutation) AddAbilityEstimate(f float64) {
	if m.addability_estimate != nil {
		*m.addability_estimate += f
	} else {
		m.addability_estimate = &f
	}
}

// AddedAbilityEstimate returns the value that was added to the "ability_estimate" field in this mutation.
func (m *LearnerProfileMutation) AddedAbilityEstimate() (r float64, exists bool) {
	v := m.addability_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetAbilityEstimate resets all changes to the "ability_estimate" field.
func (m *LearnerProfileMutation) ResetAbilityEstimate() {
	m.ability_estimate = nil
	m.addability_estimate = nil
}

// SetAbilityConfidence sets the "ability_confidence" field.
func (m *LearnerProfileMutation) SetAbilityConfidence(f float64) {
	m.ability_confidence = &f
	m.addability_confidence = nil
}

// AbilityConfidence returns the value of the "ability_confidence" field in the mutation.
func (m *LearnerProfileMutation) AbilityConfidence() (r float64, exists bool) {
	v := m.ability_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAbilityConfidence returns the old "ability_confidence" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldAbilityConfidence(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbilityConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbilityConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbilityConfidence: %w", err)
	}
	return oldValue.AbilityConfidence, nil
}

// AddAbilityConfidence adds f to the "ability_confidence" field.
func (m *LearnerProfileMutation) AddAbilityConfidence(f float64) {
	if m.addability_confidence != nil {
		*m.addability_confidence += f
	} else {
		m.addability_confidence = &f
	}
}

// AddedAbilityConfidence returns the value that was added to the "ability_confidence" field in this mutation.
func (m *LearnerProfileMutation) AddedAbilityConfidence() (r float64, exists bool) {
	v := m.addability_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetAbilityConfidence resets all changes to the "ability_confidence" field.
func (m *LearnerProfileMutation) ResetAbilityConfidence() {
	m.ability_confidence = nil
	m.addability_confidence = nil
}

// SetSkillScores sets the "skill_scores" field.
func (m *LearnerProfileMutation) SetSkillScores(value map[string]float64) {
	m.skill_scores = &value
}

// SkillScores returns the value of the "skill_scores" field in the mutation.
func (m *LearnerProfileMutation) SkillScores() (r map[string]float64, exists bool) {
	v := m.skill_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldSkillScores returns the old "skill_scores" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldSkillScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkillScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkillScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkillScores: %w", err)
	}
	return oldValue.SkillScores, nil
}

// ClearSkillScores clears the value of the "skill_scores" field.
func (m *LearnerProfileMutation) ClearSkillScores() {
	m.skill_scores = nil
	m.clearedFields[learnerprofile.FieldSkillScores] = struct{}{}
}

// SkillScoresCleared returns if the "skill_scores" field was cleared in this mutation.
func (m *LearnerProfileMutation) SkillScoresCleared() bool {
	_, ok := m.clearedFields[learnerprofile.FieldSkillScores]
	return ok
}

// ResetSkillScores resets all changes to the "skill_scores" field.
func (m *LearnerProfileMutation) ResetSkillScores() {
	m.skill_scores = nil
	delete(m.clearedFields, learnerprofile.FieldSkillScores)
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LearnerProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LearnerProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the LearnerProfile entity.
// If the LearnerProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LearnerProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LearnerProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the LearnerProfileMutation builder.
func (m *LearnerProfileMutation) Where(ps ...predicate.LearnerProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LearnerProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LearnerProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LearnerProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LearnerProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LearnerProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LearnerProfile).
func (m *LearnerProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LearnerProfileMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user_id != nil {
		fields = append(fields, learnerprofile.FieldUserID)
	}
	if m.language != nil {
		fields = append(fields, learnerprofile.FieldLanguage)
	}
	if m.ability_estimate != nil {
		fields = append(fields, learnerprofile.FieldAbilityEstimate)
	}
	if m.ability_confidence != nil {
		fields = append(fields, learnerprofile.FieldAbilityConfidence)
	}
	if m.skill_scores != nil {
		fields = append(fields, learnerprofile.FieldSkillScores)
	}
	if m.updated_at != nil {
		fields = append(fields, learnerprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LearnerProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldUserID:
		return m.UserID()
	case learnerprofile.FieldLanguage:
		return m.Language()
	case learnerprofile.FieldAbilityEstimate:
		return m.AbilityEstimate()
	case learnerprofile.FieldAbilityConfidence:
		return m.AbilityConfidence()
	case learnerprofile.FieldSkillScores:
		return m.SkillScores()
	case learnerprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LearnerProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case learnerprofile.FieldUserID:
		return m.OldUserID(ctx)
	case learnerprofile.FieldLanguage:
		return m.OldLanguage(ctx)
	case learnerprofile.FieldAbilityEstimate:
		return m.OldAbilityEstimate(ctx)
	case learnerprofile.FieldAbilityConfidence:
		return m.OldAbilityConfidence(ctx)
	case learnerprofile.FieldSkillScores:
		return m.OldSkillScores(ctx)
	case learnerprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LearnerProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case learnerprofile.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case learnerprofile.FieldAbilityEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbilityEstimate(v)
		return nil
	case learnerprofile.FieldAbilityConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbilityConfidence(v)
		return nil
	case learnerprofile.FieldSkillScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkillScores(v)
		return nil
	case learnerprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LearnerProfileMutation) AddedFields() []string {
	var fields []string
	if m.addability_estimate != nil {
		fields = append(fields, learnerprofile.FieldAbilityEstimate)
	}
	if m.addability_confidence != nil {
		fields = append(fields, learnerprofile.FieldAbilityConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LearnerProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case learnerprofile.FieldAbilityEstimate:
		return m.AddedAbilityEstimate()
	case learnerprofile.FieldAbilityConfidence:
		return m.AddedAbilityConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LearnerProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case learnerprofile.FieldAbilityEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbilityEstimate(v)
		return nil
	case learnerprofile.FieldAbilityConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbilityConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LearnerProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(learnerprofile.FieldSkillScores) {
		fields = append(fields, learnerprofile.FieldSkillScores)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LearnerProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ClearField(name string) error {
	switch name {
	case learnerprofile.FieldSkillScores:
		m.ClearSkillScores()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LearnerProfileMutation) ResetField(name string) error {
	switch name {
	case learnerprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case learnerprofile.FieldLanguage:
		m.ResetLanguage()
		return nil
	case learnerprofile.FieldAbilityEstimate:
		m.ResetAbilityEstimate()
		return nil
	case learnerprofile.FieldAbilityConfidence:
		m.ResetAbilityConfidence()
		return nil
	case learnerprofile.FieldSkillScores:
		m.ResetSkillScores()
		return nil
	case learnerprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown LearnerProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LearnerProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LearnerProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LearnerProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LearnerProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LearnerProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LearnerProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LearnerProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LearnerProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown LearnerProfile edge %s", name)
}

// PoolQuestionMutation represents an operation that mutates the PoolQuestion nodes in the graph.
type PoolQuestionMutation struct {
	config
	op                      Op
	typ                     string
	id                      *int
	hash                    *string
	language                *string
	_type                   *string
	target_skill            *string
	difficulty_label        *string
	empirical_difficulty    *float64
	addempirical_difficulty *float64
	discrimination          *float64
	adddiscrimination       *float64
	total_responses         *int
	addtotal_responses      *int
	correct_responses       *int
	addcorrect_responses    *int
	grammar_tags            *[]string
	appendgrammar_tags      []string
	vocab_tags              *[]string
	appendvocab_tags        []string
	topic_tags              *[]string
	appendtopic_tags        []string
	payload                 *map[string]interface{}
	created_at              *time.Time
	clearedFields           map[string]struct{}
	done                    bool
	oldValue                func(context.Context) (*PoolQuestion, error)
	predicates              []predicate.PoolQuestion
}

var _ ent.Mutation = (*PoolQuestionMutation)(nil)

// poolquestionOption allows management of the mutation configuration using functional options.
type poolquestionOption func(*PoolQuestionMutation)

// newPoolQuestionMutation creates new mutation for the PoolQuestion entity.
func newPoolQuestionMutation(c config, op Op, opts ...poolquestionOption) *PoolQuestionMutation {
	m := &PoolQuestionMutation{
		config:        c,
		op:            op,
		typ:           TypePoolQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPoolQuestionID sets the ID field of the mutation.
func withPoolQuestionID(id int) poolquestionOption {
	return func(m *PoolQuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *PoolQuestion
		)
		m.oldValue = func(ctx context.Context) (*PoolQuestion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PoolQuestion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPoolQuestion sets the old PoolQuestion of the mutation.
func withPoolQuestion(node *PoolQuestion) poolquestionOption {
	return func(m *PoolQuestionMutation) {
		m.oldValue = func(context.Context) (*PoolQuestion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PoolQuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PoolQuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PoolQuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PoolQuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PoolQuestion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetHash sets the "hash" field.
func (m *PoolQuestionMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *PoolQuestionMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *PoolQuestionMutation) ResetHash() {
	m.hash = nil
}

// SetLanguage sets the "language" field.
func (m *PoolQuestionMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *PoolQuestionMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *PoolQuestionMutation) ResetLanguage() {
	m.language = nil
}

// SetType sets the "type" field.
func (m *PoolQuestionMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *PoolQuestionMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *PoolQuestionMutation) ResetType() {
	m._type = nil
}

// SetTargetSkill sets the "target_skill" field.
func (m *PoolQuestionMutation) SetTargetSkill(s string) {
	m.target_skill = &s
}

// TargetSkill returns the value of the "target_skill" field in the mutation.
func (m *PoolQuestionMutation) TargetSkill() (r string, exists bool) {
	v := m.target_skill
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetSkill returns the old "target_skill" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldTargetSkill(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetSkill is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetSkill requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetSkill: %w", err)
	}
	return oldValue.TargetSkill, nil
}

// ResetTargetSkill resets all changes to the "target_skill" field.
func (m *PoolQuestionMutation) ResetTargetSkill() {
	m.target_skill = nil
}

// SetDifficultyLabel sets the "difficulty_label" field.
func (m *PoolQuestionMutation) SetDifficultyLabel(s string) {
	m.difficulty_label = &s
}

// DifficultyLabel returns the value of the "difficulty_label" field in the mutation.
func (m *PoolQuestionMutation) DifficultyLabel() (r string, exists bool) {
	v := m.difficulty_label
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyLabel returns the old "difficulty_label" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldDifficultyLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyLabel: %w", err)
	}
	return oldValue.DifficultyLabel, nil
}

// ResetDifficultyLabel resets all changes to the "difficulty_label" field.
func (m *PoolQuestionMutation) ResetDifficultyLabel() {
	m.difficulty_label = nil
}

// SetEmpiricalDifficulty sets the "empirical_difficulty" field.
func (m *PoolQuestionMutation) SetEmpiricalDifficulty(f float64) {
	m.empirical_difficulty = &f
	m.addempirical_difficulty = nil
}

// EmpiricalDifficulty returns the value of the "empirical_difficulty" field in the mutation.
func (m *PoolQuestionMutation) EmpiricalDifficulty() (r float64, exists bool) {
	v := m.empirical_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// OldEmpiricalDifficulty returns the old "empirical_difficulty" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldEmpiricalDifficulty(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmpiricalDifficulty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmpiricalDifficulty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmpiricalDifficulty: %w", err)
	}
	return oldValue.EmpiricalDifficulty, nil
}

// AddEmpiricalDifficulty adds f to the "empirical_difficulty" field.
func (m *PoolQuestionMutation) AddEmpiricalDifficulty(f float64) {
	if m.addempirical_difficulty != nil {
		*m.addempirical_difficulty += f
	} else {
		m.addempirical_difficulty = &f
	}
}

// AddedEmpiricalDifficulty returns the value that was added to the "empirical_difficulty" field in this mutation.
func (m *PoolQuestionMutation) AddedEmpiricalDifficulty() (r float64, exists bool) {
	v := m.addempirical_difficulty
	if v == nil {
		return
	}
	return *v, true
}

// ClearEmpiricalDifficulty clears the value of the "empirical_difficulty" field.
func (m *PoolQuestionMutation) ClearEmpiricalDifficulty() {
	m.empirical_difficulty = nil
	m.addempirical_difficulty = nil
	m.clearedFields[poolquestion.FieldEmpiricalDifficulty] = struct{}{}
}

// EmpiricalDifficultyCleared returns if the "empirical_difficulty" field was cleared in this mutation.
func (m *PoolQuestionMutation) EmpiricalDifficultyCleared() bool {
	_, ok := m.clearedFields[poolquestion.FieldEmpiricalDifficulty]
	return ok
}

// ResetEmpiricalDifficulty resets all changes to the "empirical_difficulty" field.
func (m *PoolQuestionMutation) ResetEmpiricalDifficulty() {
	m.empirical_difficulty = nil
	m.addempirical_difficulty = nil
	delete(m.clearedFields, poolquestion.FieldEmpiricalDifficulty)
}

// SetDiscrimination sets the "discrimination" field.
func (m *PoolQuestionMutation) SetDiscrimination(f float64) {
	m.discrimination = &f
	m.adddiscrimination = nil
}

// Discrimination returns the value of the "discrimination" field in the mutation.
func (m *PoolQuestionMutation) Discrimination() (r float64, exists bool) {
	v := m.discrimination
	if v == nil {
		return
	}
	return *v, true
}

// OldDiscrimination returns the old "discrimination" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldDiscrimination(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDiscrimination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDiscrimination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDiscrimination: %w", err)
	}
	return oldValue.Discrimination, nil
}

// AddDiscrimination adds f to the "discrimination" field.
func (m *PoolQuestionMutation) AddDiscrimination(f float64) {
	if m.adddiscrimination != nil {
		*m.adddiscrimination += f
	} else {
		m.adddiscrimination = &f
	}
}

// AddedDiscrimination returns the value that was added to the "discrimination" field in this mutation.
func (m *PoolQuestionMutation) AddedDiscrimination() (r float64, exists bool) {
	v := m.adddiscrimination
	if v == nil {
		return
	}
	return *v, true
}

// ClearDiscrimination clears the value of the "discrimination" field.
func (m *PoolQuestionMutation) ClearDiscrimination() {
	m.discrimination = nil
	m.adddiscrimination = nil
	m.clearedFields[poolquestion.FieldDiscrimination] = struct{}{}
}

// DiscriminationCleared returns if the "discrimination" field was cleared in this mutation.
func (m *PoolQuestionMutation) DiscriminationCleared() bool {
	_, ok := m.clearedFields[poolquestion.FieldDiscrimination]
	return ok
}

// ResetDiscrimination resets all changes to the "discrimination" field.
func (m *PoolQuestionMutation) ResetDiscrimination() {
	m.discrimination = nil
	m.adddiscrimination = nil
	delete(m.clearedFields, poolquestion.FieldDiscrimination)
}

// SetTotalResponses sets the "total_responses" field.
func (m *PoolQuestionMutation) SetTotalResponses(i int) {
	m.total_responses = &i
	m.addtotal_responses = nil
}

// TotalResponses returns the value of the "total_responses" field in the mutation.
func (m *PoolQuestionMutation) TotalResponses() (r int, exists bool) {
	v := m.total_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalResponses returns the old "total_responses" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldTotalResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalResponses: %w", err)
	}
	return oldValue.TotalResponses, nil
}

// AddTotalResponses adds i to the "total_responses" field.
func (m *PoolQuestionMutation) AddTotalResponses(i int) {
	if m.addtotal_responses != nil {
		*m.addtotal_responses += i
	} else {
		m.addtotal_responses = &i
	}
}

// AddedTotalResponses returns the value that was added to the "total_responses" field in this mutation.
func (m *PoolQuestionMutation) AddedTotalResponses() (r int, exists bool) {
	v := m.addtotal_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalResponses resets all changes to the "total_responses" field.
func (m *PoolQuestionMutation) ResetTotalResponses() {
	m.total_responses = nil
	m.addtotal_responses = nil
}

// SetCorrectResponses sets the "correct_responses" field.
func (m *PoolQuestionMutation) SetCorrectResponses(i int) {
	m.correct_responses = &i
	m.addcorrect_responses = nil
}

// CorrectResponses returns the value of the "correct_responses" field in the mutation.
func (m *PoolQuestionMutation) CorrectResponses() (r int, exists bool) {
	v := m.correct_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectResponses returns the old "correct_responses" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldCorrectResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectResponses: %w", err)
	}
	return oldValue.CorrectResponses, nil
}

// AddCorrectResponses adds i to the "correct_responses" field.
func (m *PoolQuestionMutation) AddCorrectResponses(i int) {
	if m.addcorrect_responses != nil {
		*m.addcorrect_responses += i
	} else {
		m.addcorrect_responses = &i
	}
}

// AddedCorrectResponses returns the value that was added to the "correct_responses" field in this mutation.
func (m *PoolQuestionMutation) AddedCorrectResponses() (r int, exists bool) {
	v := m.addcorrect_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectResponses resets all changes to the "correct_responses" field.
func (m *PoolQuestionMutation) ResetCorrectResponses() {
	m.correct_responses = nil
	m.addcorrect_responses = nil
}

// SetGrammarTags sets the "grammar_tags" field.
func (m *PoolQuestionMutation) SetGrammarTags(s []string) {
	m.grammar_tags = &s
	m.appendgrammar_tags = nil
}

// GrammarTags returns the value of the "grammar_tags" field in the mutation.
func (m *PoolQuestionMutation) GrammarTags() (r []string, exists bool) {
	v := m.grammar_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldGrammarTags returns the old "grammar_tags" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldGrammarTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrammarTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrammarTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrammarTags: %w", err)
	}
	return oldValue.GrammarTags, nil
}

// AppendGrammarTags adds s to the "grammar_tags" field.
func (m *PoolQuestionMutation) AppendGrammarTags(s []string) {
	m.appendgrammar_tags = append(m.appendgrammar_tags, s...)
}

// AppendedGrammarTags returns the list of values that were appended to the "grammar_tags" field in this mutation.
func (m *PoolQuestionMutation) AppendedGrammarTags() ([]string, bool) {
	if len(m.appendgrammar_tags) == 0 {
		return nil, false
	}
	return m.appendgrammar_tags, true
}

// ClearGrammarTags clears the value of the "grammar_tags" field.
func (m *PoolQuestionMutation) ClearGrammarTags() {
	m.grammar_tags = nil
	m.appendgrammar_tags = nil
	m.clearedFields[poolquestion.FieldGrammarTags] = struct{}{}
}

// GrammarTagsCleared returns if the "grammar_tags" field was cleared in this mutation.
func (m *PoolQuestionMutation) GrammarTagsCleared() bool {
	_, ok := m.clearedFields[poolquestion.FieldGrammarTags]
	return ok
}

// ResetGrammarTags resets all changes to the "grammar_tags" field.
func (m *PoolQuestionMutation) ResetGrammarTags() {
	m.grammar_tags = nil
	m.appendgrammar_tags = nil
	delete(m.clearedFields, poolquestion.FieldGrammarTags)
}

// SetVocabTags sets the "vocab_tags" field.
func (m *PoolQuestionMutation) SetVocabTags(s []string) {
	m.vocab_tags = &s
	m.appendvocab_tags = nil
}

// VocabTags returns the value of the "vocab_tags" field in the mutation.
func (m *PoolQuestionMutation) VocabTags() (r []string, exists bool) {
	v := m.vocab_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldVocabTags returns the old "vocab_tags" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldVocabTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVocabTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVocabTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVocabTags: %w", err)
	}
	return oldValue.VocabTags, nil
}

// AppendVocabTags adds s to the "vocab_tags" field.
func (m *PoolQuestionMutation) AppendVocabTags(s []string) {
	m.appendvocab_tags = append(m.appendvocab_tags, s...)
}

// AppendedVocabTags returns the list of values that were appended to the "vocab_tags" field in this mutation.
func (m *PoolQuestionMutation) AppendedVocabTags() ([]string, bool) {
	if len(m.appendvocab_tags) == 0 {
		return nil, false
	}
	return m.appendvocab_tags, true
}

// ClearVocabTags clears the value of the "vocab_tags" field.
func (m *PoolQuestionMutation) ClearVocabTags() {
	m.vocab_tags = nil
	m.appendvocab_tags = nil
	m.clearedFields[poolquestion.FieldVocabTags] = struct{}{}
}

// VocabTagsCleared returns if the "vocab_tags" field was cleared in this mutation.
func (m *PoolQuestionMutation) VocabTagsCleared() bool {
	_, ok := m.clearedFields[poolquestion.FieldVocabTags]
	return ok
}

// ResetVocabTags resets all changes to the "vocab_tags" field.
func (m *PoolQuestionMutation) ResetVocabTags() {
	m.vocab_tags = nil
	m.appendvocab_tags = nil
	delete(m.clearedFields, poolquestion.FieldVocabTags)
}

// SetTopicTags sets the "topic_tags" field.
func (m *PoolQuestionMutation) SetTopicTags(s []string) {
	m.topic_tags = &s
	m.appendtopic_tags = nil
}

// TopicTags returns the value of the "topic_tags" field in the mutation.
func (m *PoolQuestionMutation) TopicTags() (r []string, exists bool) {
	v := m.topic_tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicTags returns the old "topic_tags" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldTopicTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicTags: %w", err)
	}
	return oldValue.TopicTags, nil
}

// AppendTopicTags adds s to the "topic_tags" field.
func (m *PoolQuestionMutation) AppendTopicTags(s []string) {
	m.appendtopic_tags = append(m.appendtopic_tags, s...)
}

// AppendedTopicTags returns the list of values that were appended to the "topic_tags" field in this mutation.
func (m *PoolQuestionMutation) AppendedTopicTags() ([]string, bool) {
	if len(m.appendtopic_tags) == 0 {
		return nil, false
	}
	return m.appendtopic_tags, true
}

// ClearTopicTags clears the value of the "topic_tags" field.
func (m *PoolQuestionMutation) ClearTopicTags() {
	m.topic_tags = nil
	m.appendtopic_tags = nil
	m.clearedFields[poolquestion.FieldTopicTags] = struct{}{}
}

// TopicTagsCleared returns if the "topic_tags" field was cleared in this mutation.
func (m *PoolQuestionMutation) TopicTagsCleared() bool {
	_, ok := m.clearedFields[poolquestion.FieldTopicTags]
	return ok
}

// ResetTopicTags resets all changes to the "topic_tags" field.
func (m *PoolQuestionMutation) ResetTopicTags() {
	m.topic_tags = nil
	m.appendtopic_tags = nil
	delete(m.clearedFields, poolquestion.FieldTopicTags)
}

// SetPayload sets the "payload" field.
func (m *PoolQuestionMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *PoolQuestionMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *PoolQuestionMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PoolQuestionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PoolQuestionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PoolQuestion entity.
// If the PoolQuestion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PoolQuestionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PoolQuestionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the PoolQuestionMutation builder.
func (m *PoolQuestionMutation) Where(ps ...predicate.PoolQuestion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PoolQuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PoolQuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PoolQuestion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PoolQuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PoolQuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PoolQuestion).
func (m *PoolQuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PoolQuestionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.hash != nil {
		fields = append(fields, poolquestion.FieldHash)
	}
	if m.language != nil {
		fields = append(fields, poolquestion.FieldLanguage)
	}
	if m._type != nil {
		fields = append(fields, poolquestion.FieldType)
	}
	if m.target_skill != nil {
		fields = append(fields, poolquestion.FieldTargetSkill)
	}
	if m.difficulty_label != nil {
		fields = append(fields, poolquestion.FieldDifficultyLabel)
	}
	if m.empirical_difficulty != nil {
		fields = append(fields, poolquestion.FieldEmpiricalDifficulty)
	}
	if m.discrimination != nil {
		fields = append(fields, poolquestion.FieldDiscrimination)
	}
	if m.total_responses != nil {
		fields = append(fields, poolquestion.FieldTotalResponses)
	}
	if m.correct_responses != nil {
		fields = append(fields, poolquestion.FieldCorrectResponses)
	}
	if m.grammar_tags != nil {
		fields = append(fields, poolquestion.FieldGrammarTags)
	}
	if m.vocab_tags != nil {
		fields = append(fields, poolquestion.FieldVocabTags)
	}
	if m.topic_tags != nil {
		fields = append(fields, poolquestion.FieldTopicTags)
	}
	if m.payload != nil {
		fields = append(fields, poolquestion.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, poolquestion.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PoolQuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poolquestion.FieldHash:
		return m.Hash()
	case poolquestion.FieldLanguage:
		return m.Language()
	case poolquestion.FieldType:
		return m.GetType()
	case poolquestion.FieldTargetSkill:
		return m.TargetSkill()
	case poolquestion.FieldDifficultyLabel:
		return m.DifficultyLabel()
	case poolquestion.FieldEmpiricalDifficulty:
		return m.EmpiricalDifficulty()
	case poolquestion.FieldDiscrimination:
		return m.Discrimination()
	case poolquestion.FieldTotalResponses:
		return m.TotalResponses()
	case poolquestion.FieldCorrectResponses:
		return m.CorrectResponses()
	case poolquestion.FieldGrammarTags:
		return m.GrammarTags()
	case poolquestion.FieldVocabTags:
		return m.VocabTags()
	case poolquestion.FieldTopicTags:
		return m.TopicTags()
	case poolquestion.FieldPayload:
		return m.Payload()
	case poolquestion.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PoolQuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poolquestion.FieldHash:
		return m.OldHash(ctx)
	case poolquestion.FieldLanguage:
		return m.OldLanguage(ctx)
	case poolquestion.FieldType:
		return m.OldType(ctx)
	case poolquestion.FieldTargetSkill:
		return m.OldTargetSkill(ctx)
	case poolquestion.FieldDifficultyLabel:
		return m.OldDifficultyLabel(ctx)
	case poolquestion.FieldEmpiricalDifficulty:
		return m.OldEmpiricalDifficulty(ctx)
	case poolquestion.FieldDiscrimination:
		return m.OldDiscrimination(ctx)
	case poolquestion.FieldTotalResponses:
		return m.OldTotalResponses(ctx)
	case poolquestion.FieldCorrectResponses:
		return m.OldCorrectResponses(ctx)
	case poolquestion.FieldGrammarTags:
		return m.OldGrammarTags(ctx)
	case poolquestion.FieldVocabTags:
		return m.OldVocabTags(ctx)
	case poolquestion.FieldTopicTags:
		return m.OldTopicTags(ctx)
	case poolquestion.FieldPayload:
		return m.OldPayload(ctx)
	case poolquestion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PoolQuestion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoolQuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poolquestion.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case poolquestion.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case poolquestion.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case poolquestion.FieldTargetSkill:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetSkill(v)
		return nil
	case poolquestion.FieldDifficultyLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyLabel(v)
		return nil
	case poolquestion.FieldEmpiricalDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmpiricalDifficulty(v)
		return nil
	case poolquestion.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDiscrimination(v)
		return nil
	case poolquestion.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalResponses(v)
		return nil
	case poolquestion.FieldCorrectResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectResponses(v)
		return nil
	case poolquestion.FieldGrammarTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrammarTags(v)
		return nil
	case poolquestion.FieldVocabTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVocabTags(v)
		return nil
	case poolquestion.FieldTopicTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicTags(v)
		return nil
	case poolquestion.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case poolquestion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PoolQuestion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PoolQuestionMutation) AddedFields() []string {
	var fields []string
	if m.addempirical_difficulty != nil {
		fields = append(fields, poolquestion.FieldEmpiricalDifficulty)
	}
	if m.adddiscrimination != nil {
		fields = append(fields, poolquestion.FieldDiscrimination)
	}
	if m.addtotal_responses != nil {
		fields = append(fields, poolquestion.FieldTotalResponses)
	}
	if m.addcorrect_responses != nil {
		fields = append(fields, poolquestion.FieldCorrectResponses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PoolQuestionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case poolquestion.FieldEmpiricalDifficulty:
		return m.AddedEmpiricalDifficulty()
	case poolquestion.FieldDiscrimination:
		return m.AddedDiscrimination()
	case poolquestion.FieldTotalResponses:
		return m.AddedTotalResponses()
	case poolquestion.FieldCorrectResponses:
		return m.AddedCorrectResponses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PoolQuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case poolquestion.FieldEmpiricalDifficulty:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmpiricalDifficulty(v)
		return nil
	case poolquestion.FieldDiscrimination:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDiscrimination(v)
		return nil
	case poolquestion.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalResponses(v)
		return nil
	case poolquestion.FieldCorrectResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectResponses(v)
		return nil
	}
	return fmt.Errorf("unknown PoolQuestion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PoolQuestionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(poolquestion.FieldEmpiricalDifficulty) {
		fields = append(fields, poolquestion.FieldEmpiricalDifficulty)
	}
	if m.FieldCleared(poolquestion.FieldDiscrimination) {
		fields = append(fields, poolquestion.FieldDiscrimination)
	}
	if m.FieldCleared(poolquestion.FieldGrammarTags) {
		fields = append(fields, poolquestion.FieldGrammarTags)
	}
	if m.FieldCleared(poolquestion.FieldVocabTags) {
		fields = append(fields, poolquestion.FieldVocabTags)
	}
	if m.FieldCleared(poolquestion.FieldTopicTags) {
		fields = append(fields, poolquestion.FieldTopicTags)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PoolQuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PoolQuestionMutation) ClearField(name string) error {
	switch name {
	case poolquestion.FieldEmpiricalDifficulty:
		m.ClearEmpiricalDifficulty()
		return nil
	case poolquestion.FieldDiscrimination:
		m.ClearDiscrimination()
		return nil
	case poolquestion.FieldGrammarTags:
		m.ClearGrammarTags()
		return nil
	case poolquestion.FieldVocabTags:
		m.ClearVocabTags()
		return nil
	case poolquestion.FieldTopicTags:
		m.ClearTopicTags()
		return nil
	}
	return fmt.Errorf("unknown PoolQuestion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PoolQuestionMutation) ResetField(name string) error {
	switch name {
	case poolquestion.FieldHash:
		m.ResetHash()
		return nil
	case poolquestion.FieldLanguage:
		m.ResetLanguage()
		return nil
	case poolquestion.FieldType:
		m.ResetType()
		return nil
	case poolquestion.FieldTargetSkill:
		m.ResetTargetSkill()
		return nil
	case poolquestion.FieldDifficultyLabel:
		m.ResetDifficultyLabel()
		return nil
	case poolquestion.FieldEmpiricalDifficulty:
		m.ResetEmpiricalDifficulty()
		return nil
	case poolquestion.FieldDiscrimination:
		m.ResetDiscrimination()
		return nil
	case poolquestion.FieldTotalResponses:
		m.ResetTotalResponses()
		return nil
	case poolquestion.FieldCorrectResponses:
		m.ResetCorrectResponses()
		return nil
	case poolquestion.FieldGrammarTags:
		m.ResetGrammarTags()
		return nil
	case poolquestion.FieldVocabTags:
		m.ResetVocabTags()
		return nil
	case poolquestion.FieldTopicTags:
		m.ResetTopicTags()
		return nil
	case poolquestion.FieldPayload:
		m.ResetPayload()
		return nil
	case poolquestion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PoolQuestion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PoolQuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PoolQuestionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PoolQuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PoolQuestionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PoolQuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PoolQuestionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PoolQuestionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PoolQuestion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PoolQuestionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PoolQuestion edge %s", name)
}

// QuestionExposureMutation represents an operation that mutates the QuestionExposure nodes in the graph.
type QuestionExposureMutation struct {
	config
	op            Op
	typ           string
	id            *int
	user_id       *string
	language      *string
	hash          *string
	seen_at       *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuestionExposure, error)
	predicates    []predicate.QuestionExposure
}

var _ ent.Mutation = (*QuestionExposureMutation)(nil)

// questionexposureOption allows management of the mutation configuration using functional options.
type questionexposureOption func(*QuestionExposureMutation)

// newQuestionExposureMutation creates new mutation for the QuestionExposure entity.
func newQuestionExposureMutation(c config, op Op, opts ...questionexposureOption) *QuestionExposureMutation {
	m := &QuestionExposureMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestionExposure,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionExposureID sets the ID field of the mutation.
func withQuestionExposureID(id int) questionexposureOption {
	return func(m *QuestionExposureMutation) {
		var (
			err   error
			once  sync.Once
			value *QuestionExposure
		)
		m.oldValue = func(ctx context.Context) (*QuestionExposure, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuestionExposure.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestionExposure sets the old QuestionExposure of the mutation.
func withQuestionExposure(node *QuestionExposure) questionexposureOption {
	return func(m *QuestionExposureMutation) {
		m.oldValue = func(context.Context) (*QuestionExposure, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionExposureMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionExposureMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionExposureMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionExposureMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuestionExposure.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *QuestionExposureMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *QuestionExposureMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the QuestionExposure entity.
// If the QuestionExposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionExposureMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *QuestionExposureMutation) ResetUserID() {
	m.user_id = nil
}

// SetLanguage sets the "language" field.
func (m *QuestionExposureMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *QuestionExposureMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the QuestionExposure entity.
// If the QuestionExposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionExposureMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ResetLanguage resets all changes to the "language" field.
func (m *QuestionExposureMutation) ResetLanguage() {
	m.language = nil
}

// SetHash sets the "hash" field.
func (m *QuestionExposureMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *QuestionExposureMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the QuestionExposure entity.
// If the QuestionExposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionExposureMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *QuestionExposureMutation) ResetHash() {
	m.hash = nil
}

// SetSeenAt sets the "seen_at" field.
func (m *QuestionExposureMutation) SetSeenAt(t time.Time) {
	m.seen_at = &t
}

// SeenAt returns the value of the "seen_at" field in the mutation.
func (m *QuestionExposureMutation) SeenAt() (r time.Time, exists bool) {
	v := m.seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSeenAt returns the old "seen_at" field's value of the QuestionExposure entity.
// If the QuestionExposure object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionExposureMutation) OldSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeenAt: %w", err)
	}
	return oldValue.SeenAt, nil
}

// ResetSeenAt resets all changes to the "seen_at" field.
func (m *QuestionExposureMutation) ResetSeenAt() {
	m.seen_at = nil
}

// Where appends a list predicates to the QuestionExposureMutation builder.
func (m *QuestionExposureMutation) Where(ps ...predicate.QuestionExposure) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionExposureMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionExposureMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuestionExposure, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionExposureMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionExposureMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuestionExposure).
func (m *QuestionExposureMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionExposureMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, questionexposure.FieldUserID)
	}
	if m.language != nil {
		fields = append(fields, questionexposure.FieldLanguage)
	}
	if m.hash != nil {
		fields = append(fields, questionexposure.FieldHash)
	}
	if m.seen_at != nil {
		fields = append(fields, questionexposure.FieldSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionExposureMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case questionexposure.FieldUserID:
		return m.UserID()
	case questionexposure.FieldLanguage:
		return m.Language()
	case questionexposure.FieldHash:
		return m.Hash()
	case questionexposure.FieldSeenAt:
		return m.SeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionExposureMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case questionexposure.FieldUserID:
		return m.OldUserID(ctx)
	case questionexposure.FieldLanguage:
		return m.OldLanguage(ctx)
	case questionexposure.FieldHash:
		return m.OldHash(ctx)
	case questionexposure.FieldSeenAt:
		return m.OldSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuestionExposure field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionExposureMutation) SetField(name string, value ent.Value) error {
	switch name {
	case questionexposure.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case questionexposure.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case questionexposure.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case questionexposure.FieldSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuestionExposure field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionExposureMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionExposureMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionExposureMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown QuestionExposure numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionExposureMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionExposureMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionExposureMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuestionExposure nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionExposureMutation) ResetField(name string) error {
	switch name {
	case questionexposure.FieldUserID:
		m.ResetUserID()
		return nil
	case questionexposure.FieldLanguage:
		m.ResetLanguage()
		return nil
	case questionexposure.FieldHash:
		m.ResetHash()
		return nil
	case questionexposure.FieldSeenAt:
		m.ResetSeenAt()
		return nil
	}
	return fmt.Errorf("unknown QuestionExposure field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionExposureMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionExposureMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionExposureMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionExposureMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionExposureMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionExposureMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionExposureMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuestionExposure unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionExposureMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuestionExposure edge %s", name)
}
