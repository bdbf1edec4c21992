// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/lingo/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/lingo/ent/activesession"
	"github.com/abhisek/lingo/ent/learnerprofile"
	"github.com/abhisek/lingo/ent/poolquestion"
	"github.com/abhisek/lingo/ent/questionexposure"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ActiveSession is the client for interacting with the ActiveSession builders.
	ActiveSession *ActiveSessionClient
	// LearnerProfile is the client for interacting with the LearnerProfile builders.
	LearnerProfile *LearnerProfileClient
	// PoolQuestion is the client for interacting with the PoolQuestion builders.
	PoolQuestion *PoolQuestionClient
	// QuestionExposure is the client for interacting with the QuestionExposure builders.
	QuestionExposure *QuestionExposureClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ActiveSession = NewActiveSessionClient(c.config)
	c.LearnerProfile = NewLearnerProfileClient(c.config)
	c.PoolQuestion = NewPoolQuestionClient(c.config)
	c.QuestionExposure = NewQuestionExposureClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ActiveSession:    NewActiveSessionClient(cfg),
		LearnerProfile:   NewLearnerProfileClient(cfg),
		PoolQuestion:     NewPoolQuestionClient(cfg),
		QuestionExposure: NewQuestionExposureClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		ActiveSession:    NewActiveSessionClient(cfg),
		LearnerProfile:   NewLearnerProfileClient(cfg),
		PoolQuestion:     NewPoolQuestionClient(cfg),
		QuestionExposure: NewQuestionExposureClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ActiveSession.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.ActiveSession.Use(hooks...)
	c.LearnerProfile.Use(hooks...)
	c.PoolQuestion.Use(hooks...)
	c.QuestionExposure.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ActiveSession.Intercept(interceptors...)
	c.LearnerProfile.Intercept(interceptors...)
	c.PoolQuestion.Intercept(interceptors...)
	c.QuestionExposure.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ActiveSessionMutation:
		return c.ActiveSession.mutate(ctx, m)
	case *LearnerProfileMutation:
		return c.LearnerProfile.mutate(ctx, m)
	case *PoolQuestionMutation:
		return c.PoolQuestion.mutate(ctx, m)
	case *QuestionExposureMutation:
		return c.QuestionExposure.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ActiveSessionClient is a client for the ActiveSession schema.
type ActiveSessionClient struct {
	config
}

// NewActiveSessionClient returns a client for the ActiveSession from the given config.
func NewActiveSessionClient(c config) *ActiveSessionClient {
	return &ActiveSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `activesession.Hooks(f(g(h())))`.
func (c *ActiveSessionClient) Use(hooks ...Hook) {
	c.hooks.ActiveSession = append(c.hooks.ActiveSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `activesession.Intercept(f(g(h())))`.
func (c *ActiveSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ActiveSession = append(c.inters.ActiveSession, interceptors...)
}

// Create returns a builder for creating a ActiveSession entity.
func (c *ActiveSessionClient) Create() *ActiveSessionCreate {
	mutation := newActiveSessionMutation(c.config, OpCreate)
	return &ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ActiveSession entities.
func (c *ActiveSessionClient) CreateBulk(builders ...*ActiveSessionCreate) *ActiveSessionCreateBulk {
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ActiveSessionClient) MapCreateBulk(slice any, setFunc func(*ActiveSessionCreate, int)) *ActiveSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ActiveSessionCreateBulk{err: fmt.Errorf("calling to ActiveSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ActiveSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ActiveSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ActiveSession.
func (c *ActiveSessionClient) Update() *ActiveSessionUpdate {
	mutation := newActiveSessionMutation(c.config, OpUpdate)
	return &ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ActiveSessionClient) UpdateOne(_m *ActiveSession) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSession(_m))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ActiveSessionClient) UpdateOneID(id int) *ActiveSessionUpdateOne {
	mutation := newActiveSessionMutation(c.config, OpUpdateOne, withActiveSessionID(id))
	return &ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ActiveSession.
func (c *ActiveSessionClient) Delete() *ActiveSessionDelete {
	mutation := newActiveSessionMutation(c.config, OpDelete)
	return &ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ActiveSessionClient) DeleteOne(_m *ActiveSession) *ActiveSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ActiveSessionClient) DeleteOneID(id int) *ActiveSessionDeleteOne {
	builder := c.Delete().Where(activesession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ActiveSessionDeleteOne{builder}
}

// Query returns a query builder for ActiveSession.
func (c *ActiveSessionClient) Query() *ActiveSessionQuery {
	return &ActiveSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeActiveSession},
		inters: c.Interceptors(),
	}
}

// Get returns a ActiveSession entity by its id.
func (c *ActiveSessionClient) Get(ctx context.Context, id int) (*ActiveSession, error) {
	return c.Query().Where(activesession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ActiveSessionClient) GetX(ctx context.Context, id int) *ActiveSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ActiveSessionClient) Hooks() []Hook {
	return c.hooks.ActiveSession
}

// Interceptors returns the client interceptors.
func (c *ActiveSessionClient) Interceptors() []Interceptor {
	return c.inters.ActiveSession
}

func (c *ActiveSessionClient) mutate(ctx context.Context, m *ActiveSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ActiveSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ActiveSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ActiveSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ActiveSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ActiveSession mutation op: %q", m.Op())
	}
}

// LearnerProfileClient is a client for the LearnerProfile schema.
type LearnerProfileClient struct {
	config
}

// NewLearnerProfileClient returns a client for the LearnerProfile from the given config.
func NewLearnerProfileClient(c config) *LearnerProfileClient {
	return &LearnerProfileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `learnerprofile.Hooks(f(g(h())))`.
func (c *LearnerProfileClient) Use(hooks ...Hook) {
	c.hooks.LearnerProfile = append(c.hooks.LearnerProfile, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `learnerprofile.Intercept(f(g(h())))`.
func (c *LearnerProfileClient) Intercept(interceptors ...Interceptor) {
	c.inters.LearnerProfile = append(c.inters.LearnerProfile, interceptors...)
}

// Create returns a builder for creating a LearnerProfile entity.
func (c *LearnerProfileClient) Create() *LearnerProfileCreate {
	mutation := newLearnerProfileMutation(c.config, OpCreate)
	return &LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LearnerProfile entities.
func (c *LearnerProfileClient) CreateBulk(builders ...*LearnerProfileCreate) *LearnerProfileCreateBulk {
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LearnerProfileClient) MapCreateBulk(slice any, setFunc func(*LearnerProfileCreate, int)) *LearnerProfileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LearnerProfileCreateBulk{err: fmt.Errorf("calling to LearnerProfileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LearnerProfileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LearnerProfileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LearnerProfile.
func (c *LearnerProfileClient) Update() *LearnerProfileUpdate {
	mutation := newLearnerProfileMutation(c.config, OpUpdate)
	return &LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LearnerProfileClient) UpdateOne(_m *LearnerProfile) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfile(_m))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LearnerProfileClient) UpdateOneID(id int) *LearnerProfileUpdateOne {
	mutation := newLearnerProfileMutation(c.config, OpUpdateOne, withLearnerProfileID(id))
	return &LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LearnerProfile.
func (c *LearnerProfileClient) Delete() *LearnerProfileDelete {
	mutation := newLearnerProfileMutation(c.config, OpDelete)
	return &LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LearnerProfileClient) DeleteOne(_m *LearnerProfile) *LearnerProfileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LearnerProfileClient) DeleteOneID(id int) *LearnerProfileDeleteOne {
	builder := c.Delete().Where(learnerprofile.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LearnerProfileDeleteOne{builder}
}

// Query returns a query builder for LearnerProfile.
func (c *LearnerProfileClient) Query() *LearnerProfileQuery {
	return &LearnerProfileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLearnerProfile},
		inters: c.Interceptors(),
	}
}

// Get returns a LearnerProfile entity by its id.
func (c *LearnerProfileClient) Get(ctx context.Context, id int) (*LearnerProfile, error) {
	return c.Query().Where(learnerprofile.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LearnerProfileClient) GetX(ctx context.Context, id int) *LearnerProfile {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LearnerProfileClient) Hooks() []Hook {
	return c.hooks.LearnerProfile
}

// Interceptors returns the client interceptors.
func (c *LearnerProfileClient) Interceptors() []Interceptor {
	return c.inters.LearnerProfile
}

func (c *LearnerProfileClient) mutate(ctx context.Context, m *LearnerProfileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LearnerProfileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LearnerProfileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LearnerProfileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LearnerProfileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LearnerProfile mutation op: %q", m.Op())
	}
}

// PoolQuestionClient is a client for the PoolQuestion schema.
type PoolQuestionClient struct {
	config
}

// NewPoolQuestionClient returns a client for the PoolQuestion from the given config.
func NewPoolQuestionClient(c config) *PoolQuestionClient {
	return &PoolQuestionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poolquestion.Hooks(f(g(h())))`.
func (c *PoolQuestionClient) Use(hooks ...Hook) {
	c.hooks.PoolQuestion = append(c.hooks.PoolQuestion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poolquestion.Intercept(f(g(h())))`.
func (c *PoolQuestionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PoolQuestion = append(c.inters.PoolQuestion, interceptors...)
}

// Create returns a builder for creating a PoolQuestion entity.
func (c *PoolQuestionClient) Create() *PoolQuestionCreate {
	mutation := newPoolQuestionMutation(c.config, OpCreate)
	return &PoolQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PoolQuestion entities.
func (c *PoolQuestionClient) CreateBulk(builders ...*PoolQuestionCreate) *PoolQuestionCreateBulk {
	return &PoolQuestionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PoolQuestionClient) MapCreateBulk(slice any, setFunc func(*PoolQuestionCreate, int)) *PoolQuestionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PoolQuestionCreateBulk{err: fmt.Errorf("calling to PoolQuestionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PoolQuestionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PoolQuestionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PoolQuestion.
func (c *PoolQuestionClient) Update() *PoolQuestionUpdate {
	mutation := newPoolQuestionMutation(c.config, OpUpdate)
	return &PoolQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PoolQuestionClient) UpdateOne(_m *PoolQuestion) *PoolQuestionUpdateOne {
	mutation := newPoolQuestionMutation(c.config, OpUpdateOne, withPoolQuestion(_m))
	return &PoolQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PoolQuestionClient) UpdateOneID(id int) *PoolQuestionUpdateOne {
	mutation := newPoolQuestionMutation(c.config, OpUpdateOne, withPoolQuestionID(id))
	return &PoolQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PoolQuestion.
func (c *PoolQuestionClient) Delete() *PoolQuestionDelete {
	mutation := newPoolQuestionMutation(c.config, OpDelete)
	return &PoolQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PoolQuestionClient) DeleteOne(_m *PoolQuestion) *PoolQuestionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PoolQuestionClient) DeleteOneID(id int) *PoolQuestionDeleteOne {
	builder := c.Delete().Where(poolquestion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PoolQuestionDeleteOne{builder}
}

// Query returns a query builder for PoolQuestion.
func (c *PoolQuestionClient) Query() *PoolQuestionQuery {
	return &PoolQuestionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePoolQuestion},
		inters: c.Interceptors(),
	}
}

// Get returns a PoolQuestion entity by its id.
func (c *PoolQuestionClient) Get(ctx context.Context, id int) (*PoolQuestion, error) {
	return c.Query().Where(poolquestion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PoolQuestionClient) GetX(ctx context.Context, id int) *PoolQuestion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PoolQuestionClient) Hooks() []Hook {
	return c.hooks.PoolQuestion
}

// Interceptors returns the client interceptors.
func (c *PoolQuestionClient) Interceptors() []Interceptor {
	return c.inters.PoolQuestion
}

func (c *PoolQuestionClient) mutate(ctx context.Context, m *PoolQuestionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PoolQuestionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PoolQuestionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PoolQuestionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PoolQuestionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PoolQuestion mutation op: %q", m.Op())
	}
}

// QuestionExposureClient is a client for the QuestionExposure schema.
type QuestionExposureClient struct {
	config
}

// NewQuestionExposureClient returns a client for the QuestionExposure from the given config.
func NewQuestionExposureClient(c config) *QuestionExposureClient {
	return &QuestionExposureClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `questionexposure.Hooks(f(g(h())))`.
func (c *QuestionExposureClient) Use(hooks ...Hook) {
	c.hooks.QuestionExposure = append(c.hooks.QuestionExposure, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `questionexposure.Intercept(f(g(h())))`.
func (c *QuestionExposureClient) Intercept(interceptors ...Interceptor) {
	c.inters.QuestionExposure = append(c.inters.QuestionExposure, interceptors...)
}

// Create returns a builder for creating a QuestionExposure entity.
func (c *QuestionExposureClient) Create() *QuestionExposureCreate {
	mutation := newQuestionExposureMutation(c.config, OpCreate)
	return &QuestionExposureCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QuestionExposure entities.
func (c *QuestionExposureClient) CreateBulk(builders ...*QuestionExposureCreate) *QuestionExposureCreateBulk {
	return &QuestionExposureCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QuestionExposureClient) MapCreateBulk(slice any, setFunc func(*QuestionExposureCreate, int)) *QuestionExposureCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QuestionExposureCreateBulk{err: fmt.Errorf("calling to QuestionExposureClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QuestionExposureCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QuestionExposureCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QuestionExposure.
func (c *QuestionExposureClient) Update() *QuestionExposureUpdate {
	mutation := newQuestionExposureMutation(c.config, OpUpdate)
	return &QuestionExposureUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QuestionExposureClient) UpdateOne(_m *QuestionExposure) *QuestionExposureUpdateOne {
	mutation := newQuestionExposureMutation(c.config, OpUpdateOne, withQuestionExposure(_m))
	return &QuestionExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QuestionExposureClient) UpdateOneID(id int) *QuestionExposureUpdateOne {
	mutation := newQuestionExposureMutation(c.config, OpUpdateOne, withQuestionExposureID(id))
	return &QuestionExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QuestionExposure.
func (c *QuestionExposureClient) Delete() *QuestionExposureDelete {
	mutation := newQuestionExposureMutation(c.config, OpDelete)
	return &QuestionExposureDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QuestionExposureClient) DeleteOne(_m *QuestionExposure) *QuestionExposureDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QuestionExposureClient) DeleteOneID(id int) *QuestionExposureDeleteOne {
	builder := c.Delete().Where(questionexposure.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QuestionExposureDeleteOne{builder}
}

// Query returns a query builder for QuestionExposure.
func (c *QuestionExposureClient) Query() *QuestionExposureQuery {
	return &QuestionExposureQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQuestionExposure},
		inters: c.Interceptors(),
	}
}

// Get returns a QuestionExposure entity by its id.
func (c *QuestionExposureClient) Get(ctx context.Context, id int) (*QuestionExposure, error) {
	return c.Query().Where(questionexposure.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QuestionExposureClient) GetX(ctx context.Context, id int) *QuestionExposure {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QuestionExposureClient) Hooks() []Hook {
	return c.hooks.QuestionExposure
}

// Interceptors returns the client interceptors.
func (c *QuestionExposureClient) Interceptors() []Interceptor {
	return c.inters.QuestionExposure
}

func (c *QuestionExposureClient) mutate(ctx context.Context, m *QuestionExposureMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QuestionExposureCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QuestionExposureUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QuestionExposureUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QuestionExposureDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QuestionExposure mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ActiveSession, LearnerProfile, PoolQuestion, QuestionExposure []ent.Hook
	}
	inters struct {
		ActiveSession, LearnerProfile, PoolQuestion, QuestionExposure []ent.Interceptor
	}
)
