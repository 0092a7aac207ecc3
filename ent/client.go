// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/casetalk/casetalk/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/casetalk/casetalk/ent/attemptrecord"
	"github.com/casetalk/casetalk/ent/casedoc"
	"github.com/casetalk/casetalk/ent/llmrequestevent"
	"github.com/casetalk/casetalk/ent/messageevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AttemptRecord is the client for interacting with the AttemptRecord builders.
	AttemptRecord *AttemptRecordClient
	// CaseDoc is the client for interacting with the CaseDoc builders.
	CaseDoc *CaseDocClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// MessageEvent is the client for interacting with the MessageEvent builders.
	MessageEvent *MessageEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AttemptRecord = NewAttemptRecordClient(c.config)
	c.CaseDoc = NewCaseDocClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.MessageEvent = NewMessageEventClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		AttemptRecord:   NewAttemptRecordClient(cfg),
		CaseDoc:         NewCaseDocClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MessageEvent:    NewMessageEventClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		AttemptRecord:   NewAttemptRecordClient(cfg),
		CaseDoc:         NewCaseDocClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		MessageEvent:    NewMessageEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AttemptRecord.
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
	c.AttemptRecord.Use(hooks...)
	c.CaseDoc.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.MessageEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.AttemptRecord.Intercept(interceptors...)
	c.CaseDoc.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.MessageEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AttemptRecordMutation:
		return c.AttemptRecord.mutate(ctx, m)
	case *CaseDocMutation:
		return c.CaseDoc.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *MessageEventMutation:
		return c.MessageEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AttemptRecordClient is a client for the AttemptRecord schema.
type AttemptRecordClient struct {
	config
}

// NewAttemptRecordClient returns a client for the AttemptRecord from the given config.
func NewAttemptRecordClient(c config) *AttemptRecordClient {
	return &AttemptRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attemptrecord.Hooks(f(g(h())))`.
func (c *AttemptRecordClient) Use(hooks ...Hook) {
	c.hooks.AttemptRecord = append(c.hooks.AttemptRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attemptrecord.Intercept(f(g(h())))`.
func (c *AttemptRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.AttemptRecord = append(c.inters.AttemptRecord, interceptors...)
}

// Create returns a builder for creating a AttemptRecord entity.
func (c *AttemptRecordClient) Create() *AttemptRecordCreate {
	mutation := newAttemptRecordMutation(c.config, OpCreate)
	return &AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AttemptRecord entities.
func (c *AttemptRecordClient) CreateBulk(builders ...*AttemptRecordCreate) *AttemptRecordCreateBulk {
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttemptRecordClient) MapCreateBulk(slice any, setFunc func(*AttemptRecordCreate, int)) *AttemptRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttemptRecordCreateBulk{err: fmt.Errorf("calling to AttemptRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttemptRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttemptRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AttemptRecord.
func (c *AttemptRecordClient) Update() *AttemptRecordUpdate {
	mutation := newAttemptRecordMutation(c.config, OpUpdate)
	return &AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttemptRecordClient) UpdateOne(_m *AttemptRecord) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecord(_m))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttemptRecordClient) UpdateOneID(id int) *AttemptRecordUpdateOne {
	mutation := newAttemptRecordMutation(c.config, OpUpdateOne, withAttemptRecordID(id))
	return &AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AttemptRecord.
func (c *AttemptRecordClient) Delete() *AttemptRecordDelete {
	mutation := newAttemptRecordMutation(c.config, OpDelete)
	return &AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttemptRecordClient) DeleteOne(_m *AttemptRecord) *AttemptRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttemptRecordClient) DeleteOneID(id int) *AttemptRecordDeleteOne {
	builder := c.Delete().Where(attemptrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttemptRecordDeleteOne{builder}
}

// Query returns a query builder for AttemptRecord.
func (c *AttemptRecordClient) Query() *AttemptRecordQuery {
	return &AttemptRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttemptRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a AttemptRecord entity by its id.
func (c *AttemptRecordClient) Get(ctx context.Context, id int) (*AttemptRecord, error) {
	return c.Query().Where(attemptrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttemptRecordClient) GetX(ctx context.Context, id int) *AttemptRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AttemptRecordClient) Hooks() []Hook {
	return c.hooks.AttemptRecord
}

// Interceptors returns the client interceptors.
func (c *AttemptRecordClient) Interceptors() []Interceptor {
	return c.inters.AttemptRecord
}

func (c *AttemptRecordClient) mutate(ctx context.Context, m *AttemptRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttemptRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttemptRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttemptRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttemptRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AttemptRecord mutation op: %q", m.Op())
	}
}

// CaseDocClient is a client for the CaseDoc schema.
type CaseDocClient struct {
	config
}

// NewCaseDocClient returns a client for the CaseDoc from the given config.
func NewCaseDocClient(c config) *CaseDocClient {
	return &CaseDocClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `casedoc.Hooks(f(g(h())))`.
func (c *CaseDocClient) Use(hooks ...Hook) {
	c.hooks.CaseDoc = append(c.hooks.CaseDoc, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `casedoc.Intercept(f(g(h())))`.
func (c *CaseDocClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaseDoc = append(c.inters.CaseDoc, interceptors...)
}

// Create returns a builder for creating a CaseDoc entity.
func (c *CaseDocClient) Create() *CaseDocCreate {
	mutation := newCaseDocMutation(c.config, OpCreate)
	return &CaseDocCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaseDoc entities.
func (c *CaseDocClient) CreateBulk(builders ...*CaseDocCreate) *CaseDocCreateBulk {
	return &CaseDocCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaseDocClient) MapCreateBulk(slice any, setFunc func(*CaseDocCreate, int)) *CaseDocCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaseDocCreateBulk{err: fmt.Errorf("calling to CaseDocClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaseDocCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaseDocCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaseDoc.
func (c *CaseDocClient) Update() *CaseDocUpdate {
	mutation := newCaseDocMutation(c.config, OpUpdate)
	return &CaseDocUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaseDocClient) UpdateOne(_m *CaseDoc) *CaseDocUpdateOne {
	mutation := newCaseDocMutation(c.config, OpUpdateOne, withCaseDoc(_m))
	return &CaseDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaseDocClient) UpdateOneID(id int) *CaseDocUpdateOne {
	mutation := newCaseDocMutation(c.config, OpUpdateOne, withCaseDocID(id))
	return &CaseDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaseDoc.
func (c *CaseDocClient) Delete() *CaseDocDelete {
	mutation := newCaseDocMutation(c.config, OpDelete)
	return &CaseDocDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaseDocClient) DeleteOne(_m *CaseDoc) *CaseDocDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaseDocClient) DeleteOneID(id int) *CaseDocDeleteOne {
	builder := c.Delete().Where(casedoc.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaseDocDeleteOne{builder}
}

// Query returns a query builder for CaseDoc.
func (c *CaseDocClient) Query() *CaseDocQuery {
	return &CaseDocQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaseDoc},
		inters: c.Interceptors(),
	}
}

// Get returns a CaseDoc entity by its id.
func (c *CaseDocClient) Get(ctx context.Context, id int) (*CaseDoc, error) {
	return c.Query().Where(casedoc.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaseDocClient) GetX(ctx context.Context, id int) *CaseDoc {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CaseDocClient) Hooks() []Hook {
	return c.hooks.CaseDoc
}

// Interceptors returns the client interceptors.
func (c *CaseDocClient) Interceptors() []Interceptor {
	return c.inters.CaseDoc
}

func (c *CaseDocClient) mutate(ctx context.Context, m *CaseDocMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaseDocCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaseDocUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaseDocUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaseDocDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaseDoc mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// MessageEventClient is a client for the MessageEvent schema.
type MessageEventClient struct {
	config
}

// NewMessageEventClient returns a client for the MessageEvent from the given config.
func NewMessageEventClient(c config) *MessageEventClient {
	return &MessageEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `messageevent.Hooks(f(g(h())))`.
func (c *MessageEventClient) Use(hooks ...Hook) {
	c.hooks.MessageEvent = append(c.hooks.MessageEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `messageevent.Intercept(f(g(h())))`.
func (c *MessageEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.MessageEvent = append(c.inters.MessageEvent, interceptors...)
}

// Create returns a builder for creating a MessageEvent entity.
func (c *MessageEventClient) Create() *MessageEventCreate {
	mutation := newMessageEventMutation(c.config, OpCreate)
	return &MessageEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MessageEvent entities.
func (c *MessageEventClient) CreateBulk(builders ...*MessageEventCreate) *MessageEventCreateBulk {
	return &MessageEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageEventClient) MapCreateBulk(slice any, setFunc func(*MessageEventCreate, int)) *MessageEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageEventCreateBulk{err: fmt.Errorf("calling to MessageEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MessageEvent.
func (c *MessageEventClient) Update() *MessageEventUpdate {
	mutation := newMessageEventMutation(c.config, OpUpdate)
	return &MessageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageEventClient) UpdateOne(_m *MessageEvent) *MessageEventUpdateOne {
	mutation := newMessageEventMutation(c.config, OpUpdateOne, withMessageEvent(_m))
	return &MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageEventClient) UpdateOneID(id int) *MessageEventUpdateOne {
	mutation := newMessageEventMutation(c.config, OpUpdateOne, withMessageEventID(id))
	return &MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MessageEvent.
func (c *MessageEventClient) Delete() *MessageEventDelete {
	mutation := newMessageEventMutation(c.config, OpDelete)
	return &MessageEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageEventClient) DeleteOne(_m *MessageEvent) *MessageEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageEventClient) DeleteOneID(id int) *MessageEventDeleteOne {
	builder := c.Delete().Where(messageevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageEventDeleteOne{builder}
}

// Query returns a query builder for MessageEvent.
func (c *MessageEventClient) Query() *MessageEventQuery {
	return &MessageEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessageEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a MessageEvent entity by its id.
func (c *MessageEventClient) Get(ctx context.Context, id int) (*MessageEvent, error) {
	return c.Query().Where(messageevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageEventClient) GetX(ctx context.Context, id int) *MessageEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageEventClient) Hooks() []Hook {
	return c.hooks.MessageEvent
}

// Interceptors returns the client interceptors.
func (c *MessageEventClient) Interceptors() []Interceptor {
	return c.inters.MessageEvent
}

func (c *MessageEventClient) mutate(ctx context.Context, m *MessageEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MessageEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AttemptRecord, CaseDoc, LLMRequestEvent, MessageEvent []ent.Hook
	}
	inters struct {
		AttemptRecord, CaseDoc, LLMRequestEvent, MessageEvent []ent.Interceptor
	}
)
