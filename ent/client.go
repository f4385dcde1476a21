// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abhisek/learnpath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/learnpath/ent/behaviorevent"
	"github.com/abhisek/learnpath/ent/oraclerequestevent"
	"github.com/abhisek/learnpath/ent/savedsession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BehaviorEvent is the client for interacting with the BehaviorEvent builders.
	BehaviorEvent *BehaviorEventClient
	// OracleRequestEvent is the client for interacting with the OracleRequestEvent builders.
	OracleRequestEvent *OracleRequestEventClient
	// SavedSession is the client for interacting with the SavedSession builders.
	SavedSession *SavedSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BehaviorEvent = NewBehaviorEventClient(c.config)
	c.OracleRequestEvent = NewOracleRequestEventClient(c.config)
	c.SavedSession = NewSavedSessionClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		BehaviorEvent:      NewBehaviorEventClient(cfg),
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		SavedSession:       NewSavedSessionClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		BehaviorEvent:      NewBehaviorEventClient(cfg),
		OracleRequestEvent: NewOracleRequestEventClient(cfg),
		SavedSession:       NewSavedSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BehaviorEvent.
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
	c.BehaviorEvent.Use(hooks...)
	c.OracleRequestEvent.Use(hooks...)
	c.SavedSession.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BehaviorEvent.Intercept(interceptors...)
	c.OracleRequestEvent.Intercept(interceptors...)
	c.SavedSession.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BehaviorEventMutation:
		return c.BehaviorEvent.mutate(ctx, m)
	case *OracleRequestEventMutation:
		return c.OracleRequestEvent.mutate(ctx, m)
	case *SavedSessionMutation:
		return c.SavedSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BehaviorEventClient is a client for the BehaviorEvent schema.
type BehaviorEventClient struct {
	config
}

// NewBehaviorEventClient returns a client for the BehaviorEvent from the given config.
func NewBehaviorEventClient(c config) *BehaviorEventClient {
	return &BehaviorEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `behaviorevent.Hooks(f(g(h())))`.
func (c *BehaviorEventClient) Use(hooks ...Hook) {
	c.hooks.BehaviorEvent = append(c.hooks.BehaviorEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `behaviorevent.Intercept(f(g(h())))`.
func (c *BehaviorEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.BehaviorEvent = append(c.inters.BehaviorEvent, interceptors...)
}

// Create returns a builder for creating a BehaviorEvent entity.
func (c *BehaviorEventClient) Create() *BehaviorEventCreate {
	mutation := newBehaviorEventMutation(c.config, OpCreate)
	return &BehaviorEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BehaviorEvent entities.
func (c *BehaviorEventClient) CreateBulk(builders ...*BehaviorEventCreate) *BehaviorEventCreateBulk {
	return &BehaviorEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BehaviorEventClient) MapCreateBulk(slice any, setFunc func(*BehaviorEventCreate, int)) *BehaviorEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BehaviorEventCreateBulk{err: fmt.Errorf("calling to BehaviorEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BehaviorEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BehaviorEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BehaviorEvent.
func (c *BehaviorEventClient) Update() *BehaviorEventUpdate {
	mutation := newBehaviorEventMutation(c.config, OpUpdate)
	return &BehaviorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BehaviorEventClient) UpdateOne(_m *BehaviorEvent) *BehaviorEventUpdateOne {
	mutation := newBehaviorEventMutation(c.config, OpUpdateOne, withBehaviorEvent(_m))
	return &BehaviorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BehaviorEventClient) UpdateOneID(id int) *BehaviorEventUpdateOne {
	mutation := newBehaviorEventMutation(c.config, OpUpdateOne, withBehaviorEventID(id))
	return &BehaviorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BehaviorEvent.
func (c *BehaviorEventClient) Delete() *BehaviorEventDelete {
	mutation := newBehaviorEventMutation(c.config, OpDelete)
	return &BehaviorEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BehaviorEventClient) DeleteOne(_m *BehaviorEvent) *BehaviorEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BehaviorEventClient) DeleteOneID(id int) *BehaviorEventDeleteOne {
	builder := c.Delete().Where(behaviorevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BehaviorEventDeleteOne{builder}
}

// Query returns a query builder for BehaviorEvent.
func (c *BehaviorEventClient) Query() *BehaviorEventQuery {
	return &BehaviorEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBehaviorEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a BehaviorEvent entity by its id.
func (c *BehaviorEventClient) Get(ctx context.Context, id int) (*BehaviorEvent, error) {
	return c.Query().Where(behaviorevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BehaviorEventClient) GetX(ctx context.Context, id int) *BehaviorEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BehaviorEventClient) Hooks() []Hook {
	return c.hooks.BehaviorEvent
}

// Interceptors returns the client interceptors.
func (c *BehaviorEventClient) Interceptors() []Interceptor {
	return c.inters.BehaviorEvent
}

func (c *BehaviorEventClient) mutate(ctx context.Context, m *BehaviorEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BehaviorEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BehaviorEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BehaviorEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BehaviorEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BehaviorEvent mutation op: %q", m.Op())
	}
}

// OracleRequestEventClient is a client for the OracleRequestEvent schema.
type OracleRequestEventClient struct {
	config
}

// NewOracleRequestEventClient returns a client for the OracleRequestEvent from the given config.
func NewOracleRequestEventClient(c config) *OracleRequestEventClient {
	return &OracleRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `oraclerequestevent.Hooks(f(g(h())))`.
func (c *OracleRequestEventClient) Use(hooks ...Hook) {
	c.hooks.OracleRequestEvent = append(c.hooks.OracleRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `oraclerequestevent.Intercept(f(g(h())))`.
func (c *OracleRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.OracleRequestEvent = append(c.inters.OracleRequestEvent, interceptors...)
}

// Create returns a builder for creating a OracleRequestEvent entity.
func (c *OracleRequestEventClient) Create() *OracleRequestEventCreate {
	mutation := newOracleRequestEventMutation(c.config, OpCreate)
	return &OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OracleRequestEvent entities.
func (c *OracleRequestEventClient) CreateBulk(builders ...*OracleRequestEventCreate) *OracleRequestEventCreateBulk {
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OracleRequestEventClient) MapCreateBulk(slice any, setFunc func(*OracleRequestEventCreate, int)) *OracleRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OracleRequestEventCreateBulk{err: fmt.Errorf("calling to OracleRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OracleRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OracleRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Update() *OracleRequestEventUpdate {
	mutation := newOracleRequestEventMutation(c.config, OpUpdate)
	return &OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OracleRequestEventClient) UpdateOne(_m *OracleRequestEvent) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEvent(_m))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OracleRequestEventClient) UpdateOneID(id int) *OracleRequestEventUpdateOne {
	mutation := newOracleRequestEventMutation(c.config, OpUpdateOne, withOracleRequestEventID(id))
	return &OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Delete() *OracleRequestEventDelete {
	mutation := newOracleRequestEventMutation(c.config, OpDelete)
	return &OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OracleRequestEventClient) DeleteOne(_m *OracleRequestEvent) *OracleRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OracleRequestEventClient) DeleteOneID(id int) *OracleRequestEventDeleteOne {
	builder := c.Delete().Where(oraclerequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OracleRequestEventDeleteOne{builder}
}

// Query returns a query builder for OracleRequestEvent.
func (c *OracleRequestEventClient) Query() *OracleRequestEventQuery {
	return &OracleRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOracleRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a OracleRequestEvent entity by its id.
func (c *OracleRequestEventClient) Get(ctx context.Context, id int) (*OracleRequestEvent, error) {
	return c.Query().Where(oraclerequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OracleRequestEventClient) GetX(ctx context.Context, id int) *OracleRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *OracleRequestEventClient) Hooks() []Hook {
	return c.hooks.OracleRequestEvent
}

// Interceptors returns the client interceptors.
func (c *OracleRequestEventClient) Interceptors() []Interceptor {
	return c.inters.OracleRequestEvent
}

func (c *OracleRequestEventClient) mutate(ctx context.Context, m *OracleRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OracleRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OracleRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OracleRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OracleRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OracleRequestEvent mutation op: %q", m.Op())
	}
}

// SavedSessionClient is a client for the SavedSession schema.
type SavedSessionClient struct {
	config
}

// NewSavedSessionClient returns a client for the SavedSession from the given config.
func NewSavedSessionClient(c config) *SavedSessionClient {
	return &SavedSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `savedsession.Hooks(f(g(h())))`.
func (c *SavedSessionClient) Use(hooks ...Hook) {
	c.hooks.SavedSession = append(c.hooks.SavedSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `savedsession.Intercept(f(g(h())))`.
func (c *SavedSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.SavedSession = append(c.inters.SavedSession, interceptors...)
}

// Create returns a builder for creating a SavedSession entity.
func (c *SavedSessionClient) Create() *SavedSessionCreate {
	mutation := newSavedSessionMutation(c.config, OpCreate)
	return &SavedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SavedSession entities.
func (c *SavedSessionClient) CreateBulk(builders ...*SavedSessionCreate) *SavedSessionCreateBulk {
	return &SavedSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SavedSessionClient) MapCreateBulk(slice any, setFunc func(*SavedSessionCreate, int)) *SavedSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SavedSessionCreateBulk{err: fmt.Errorf("calling to SavedSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SavedSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SavedSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SavedSession.
func (c *SavedSessionClient) Update() *SavedSessionUpdate {
	mutation := newSavedSessionMutation(c.config, OpUpdate)
	return &SavedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SavedSessionClient) UpdateOne(_m *SavedSession) *SavedSessionUpdateOne {
	mutation := newSavedSessionMutation(c.config, OpUpdateOne, withSavedSession(_m))
	return &SavedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SavedSessionClient) UpdateOneID(id int) *SavedSessionUpdateOne {
	mutation := newSavedSessionMutation(c.config, OpUpdateOne, withSavedSessionID(id))
	return &SavedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SavedSession.
func (c *SavedSessionClient) Delete() *SavedSessionDelete {
	mutation := newSavedSessionMutation(c.config, OpDelete)
	return &SavedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SavedSessionClient) DeleteOne(_m *SavedSession) *SavedSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SavedSessionClient) DeleteOneID(id int) *SavedSessionDeleteOne {
	builder := c.Delete().Where(savedsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SavedSessionDeleteOne{builder}
}

// Query returns a query builder for SavedSession.
func (c *SavedSessionClient) Query() *SavedSessionQuery {
	return &SavedSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSavedSession},
		inters: c.Interceptors(),
	}
}

// Get returns a SavedSession entity by its id.
func (c *SavedSessionClient) Get(ctx context.Context, id int) (*SavedSession, error) {
	return c.Query().Where(savedsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SavedSessionClient) GetX(ctx context.Context, id int) *SavedSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SavedSessionClient) Hooks() []Hook {
	return c.hooks.SavedSession
}

// Interceptors returns the client interceptors.
func (c *SavedSessionClient) Interceptors() []Interceptor {
	return c.inters.SavedSession
}

func (c *SavedSessionClient) mutate(ctx context.Context, m *SavedSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SavedSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SavedSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SavedSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SavedSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SavedSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BehaviorEvent, OracleRequestEvent, SavedSession []ent.Hook
	}
	inters struct {
		BehaviorEvent, OracleRequestEvent, SavedSession []ent.Interceptor
	}
)
