// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/atlasfibra/backoffice/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/atlasfibra/backoffice/ent/integrationrequest"
	"github.com/atlasfibra/backoffice/ent/supportconversation"
	"github.com/atlasfibra/backoffice/ent/ticket"
	"github.com/atlasfibra/backoffice/ent/user"
	"github.com/atlasfibra/backoffice/ent/verificationattempt"
	"github.com/atlasfibra/backoffice/ent/verificationrequest"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// IntegrationRequest is the client for interacting with the IntegrationRequest builders.
	IntegrationRequest *IntegrationRequestClient
	// SupportConversation is the client for interacting with the SupportConversation builders.
	SupportConversation *SupportConversationClient
	// Ticket is the client for interacting with the Ticket builders.
	Ticket *TicketClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// VerificationAttempt is the client for interacting with the VerificationAttempt builders.
	VerificationAttempt *VerificationAttemptClient
	// VerificationRequest is the client for interacting with the VerificationRequest builders.
	VerificationRequest *VerificationRequestClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.IntegrationRequest = NewIntegrationRequestClient(c.config)
	c.SupportConversation = NewSupportConversationClient(c.config)
	c.Ticket = NewTicketClient(c.config)
	c.User = NewUserClient(c.config)
	c.VerificationAttempt = NewVerificationAttemptClient(c.config)
	c.VerificationRequest = NewVerificationRequestClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		IntegrationRequest:  NewIntegrationRequestClient(cfg),
		SupportConversation: NewSupportConversationClient(cfg),
		Ticket:              NewTicketClient(cfg),
		User:                NewUserClient(cfg),
		VerificationAttempt: NewVerificationAttemptClient(cfg),
		VerificationRequest: NewVerificationRequestClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		IntegrationRequest:  NewIntegrationRequestClient(cfg),
		SupportConversation: NewSupportConversationClient(cfg),
		Ticket:              NewTicketClient(cfg),
		User:                NewUserClient(cfg),
		VerificationAttempt: NewVerificationAttemptClient(cfg),
		VerificationRequest: NewVerificationRequestClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		IntegrationRequest.
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
	for _, n := range []interface{ Use(...Hook) }{
		c.IntegrationRequest, c.SupportConversation, c.Ticket, c.User,
		c.VerificationAttempt, c.VerificationRequest,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.IntegrationRequest, c.SupportConversation, c.Ticket, c.User,
		c.VerificationAttempt, c.VerificationRequest,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *IntegrationRequestMutation:
		return c.IntegrationRequest.mutate(ctx, m)
	case *SupportConversationMutation:
		return c.SupportConversation.mutate(ctx, m)
	case *TicketMutation:
		return c.Ticket.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VerificationAttemptMutation:
		return c.VerificationAttempt.mutate(ctx, m)
	case *VerificationRequestMutation:
		return c.VerificationRequest.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// IntegrationRequestClient is a client for the IntegrationRequest schema.
type IntegrationRequestClient struct {
	config
}

// NewIntegrationRequestClient returns a client for the IntegrationRequest from the given config.
func NewIntegrationRequestClient(c config) *IntegrationRequestClient {
	return &IntegrationRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `integrationrequest.Hooks(f(g(h())))`.
func (c *IntegrationRequestClient) Use(hooks ...Hook) {
	c.hooks.IntegrationRequest = append(c.hooks.IntegrationRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `integrationrequest.Intercept(f(g(h())))`.
func (c *IntegrationRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.IntegrationRequest = append(c.inters.IntegrationRequest, interceptors...)
}

// Create returns a builder for creating a IntegrationRequest entity.
func (c *IntegrationRequestClient) Create() *IntegrationRequestCreate {
	mutation := newIntegrationRequestMutation(c.config, OpCreate)
	return &IntegrationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IntegrationRequest entities.
func (c *IntegrationRequestClient) CreateBulk(builders ...*IntegrationRequestCreate) *IntegrationRequestCreateBulk {
	return &IntegrationRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IntegrationRequestClient) MapCreateBulk(slice any, setFunc func(*IntegrationRequestCreate, int)) *IntegrationRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IntegrationRequestCreateBulk{err: fmt.Errorf("calling to IntegrationRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IntegrationRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IntegrationRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IntegrationRequest.
func (c *IntegrationRequestClient) Update() *IntegrationRequestUpdate {
	mutation := newIntegrationRequestMutation(c.config, OpUpdate)
	return &IntegrationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IntegrationRequestClient) UpdateOne(_m *IntegrationRequest) *IntegrationRequestUpdateOne {
	mutation := newIntegrationRequestMutation(c.config, OpUpdateOne, withIntegrationRequest(_m))
	return &IntegrationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IntegrationRequestClient) UpdateOneID(id string) *IntegrationRequestUpdateOne {
	mutation := newIntegrationRequestMutation(c.config, OpUpdateOne, withIntegrationRequestID(id))
	return &IntegrationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IntegrationRequest.
func (c *IntegrationRequestClient) Delete() *IntegrationRequestDelete {
	mutation := newIntegrationRequestMutation(c.config, OpDelete)
	return &IntegrationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IntegrationRequestClient) DeleteOne(_m *IntegrationRequest) *IntegrationRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IntegrationRequestClient) DeleteOneID(id string) *IntegrationRequestDeleteOne {
	builder := c.Delete().Where(integrationrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IntegrationRequestDeleteOne{builder}
}

// Query returns a query builder for IntegrationRequest.
func (c *IntegrationRequestClient) Query() *IntegrationRequestQuery {
	return &IntegrationRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIntegrationRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a IntegrationRequest entity by its id.
func (c *IntegrationRequestClient) Get(ctx context.Context, id string) (*IntegrationRequest, error) {
	return c.Query().Where(integrationrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IntegrationRequestClient) GetX(ctx context.Context, id string) *IntegrationRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IntegrationRequestClient) Hooks() []Hook {
	return c.hooks.IntegrationRequest
}

// Interceptors returns the client interceptors.
func (c *IntegrationRequestClient) Interceptors() []Interceptor {
	return c.inters.IntegrationRequest
}

func (c *IntegrationRequestClient) mutate(ctx context.Context, m *IntegrationRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IntegrationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IntegrationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IntegrationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IntegrationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IntegrationRequest mutation op: %q", m.Op())
	}
}

// SupportConversationClient is a client for the SupportConversation schema.
type SupportConversationClient struct {
	config
}

// NewSupportConversationClient returns a client for the SupportConversation from the given config.
func NewSupportConversationClient(c config) *SupportConversationClient {
	return &SupportConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `supportconversation.Hooks(f(g(h())))`.
func (c *SupportConversationClient) Use(hooks ...Hook) {
	c.hooks.SupportConversation = append(c.hooks.SupportConversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `supportconversation.Intercept(f(g(h())))`.
func (c *SupportConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.SupportConversation = append(c.inters.SupportConversation, interceptors...)
}

// Create returns a builder for creating a SupportConversation entity.
func (c *SupportConversationClient) Create() *SupportConversationCreate {
	mutation := newSupportConversationMutation(c.config, OpCreate)
	return &SupportConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SupportConversation entities.
func (c *SupportConversationClient) CreateBulk(builders ...*SupportConversationCreate) *SupportConversationCreateBulk {
	return &SupportConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SupportConversationClient) MapCreateBulk(slice any, setFunc func(*SupportConversationCreate, int)) *SupportConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SupportConversationCreateBulk{err: fmt.Errorf("calling to SupportConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SupportConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SupportConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SupportConversation.
func (c *SupportConversationClient) Update() *SupportConversationUpdate {
	mutation := newSupportConversationMutation(c.config, OpUpdate)
	return &SupportConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SupportConversationClient) UpdateOne(_m *SupportConversation) *SupportConversationUpdateOne {
	mutation := newSupportConversationMutation(c.config, OpUpdateOne, withSupportConversation(_m))
	return &SupportConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SupportConversationClient) UpdateOneID(id string) *SupportConversationUpdateOne {
	mutation := newSupportConversationMutation(c.config, OpUpdateOne, withSupportConversationID(id))
	return &SupportConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SupportConversation.
func (c *SupportConversationClient) Delete() *SupportConversationDelete {
	mutation := newSupportConversationMutation(c.config, OpDelete)
	return &SupportConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SupportConversationClient) DeleteOne(_m *SupportConversation) *SupportConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SupportConversationClient) DeleteOneID(id string) *SupportConversationDeleteOne {
	builder := c.Delete().Where(supportconversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SupportConversationDeleteOne{builder}
}

// Query returns a query builder for SupportConversation.
func (c *SupportConversationClient) Query() *SupportConversationQuery {
	return &SupportConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSupportConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a SupportConversation entity by its id.
func (c *SupportConversationClient) Get(ctx context.Context, id string) (*SupportConversation, error) {
	return c.Query().Where(supportconversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SupportConversationClient) GetX(ctx context.Context, id string) *SupportConversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SupportConversationClient) Hooks() []Hook {
	return c.hooks.SupportConversation
}

// Interceptors returns the client interceptors.
func (c *SupportConversationClient) Interceptors() []Interceptor {
	return c.inters.SupportConversation
}

func (c *SupportConversationClient) mutate(ctx context.Context, m *SupportConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SupportConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SupportConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SupportConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SupportConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SupportConversation mutation op: %q", m.Op())
	}
}

// TicketClient is a client for the Ticket schema.
type TicketClient struct {
	config
}

// NewTicketClient returns a client for the Ticket from the given config.
func NewTicketClient(c config) *TicketClient {
	return &TicketClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ticket.Hooks(f(g(h())))`.
func (c *TicketClient) Use(hooks ...Hook) {
	c.hooks.Ticket = append(c.hooks.Ticket, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ticket.Intercept(f(g(h())))`.
func (c *TicketClient) Intercept(interceptors ...Interceptor) {
	c.inters.Ticket = append(c.inters.Ticket, interceptors...)
}

// Create returns a builder for creating a Ticket entity.
func (c *TicketClient) Create() *TicketCreate {
	mutation := newTicketMutation(c.config, OpCreate)
	return &TicketCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Ticket entities.
func (c *TicketClient) CreateBulk(builders ...*TicketCreate) *TicketCreateBulk {
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TicketClient) MapCreateBulk(slice any, setFunc func(*TicketCreate, int)) *TicketCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TicketCreateBulk{err: fmt.Errorf("calling to TicketClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TicketCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TicketCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Ticket.
func (c *TicketClient) Update() *TicketUpdate {
	mutation := newTicketMutation(c.config, OpUpdate)
	return &TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TicketClient) UpdateOne(_m *Ticket) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicket(_m))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TicketClient) UpdateOneID(id string) *TicketUpdateOne {
	mutation := newTicketMutation(c.config, OpUpdateOne, withTicketID(id))
	return &TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Ticket.
func (c *TicketClient) Delete() *TicketDelete {
	mutation := newTicketMutation(c.config, OpDelete)
	return &TicketDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TicketClient) DeleteOne(_m *Ticket) *TicketDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TicketClient) DeleteOneID(id string) *TicketDeleteOne {
	builder := c.Delete().Where(ticket.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TicketDeleteOne{builder}
}

// Query returns a query builder for Ticket.
func (c *TicketClient) Query() *TicketQuery {
	return &TicketQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTicket},
		inters: c.Interceptors(),
	}
}

// Get returns a Ticket entity by its id.
func (c *TicketClient) Get(ctx context.Context, id string) (*Ticket, error) {
	return c.Query().Where(ticket.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TicketClient) GetX(ctx context.Context, id string) *Ticket {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TicketClient) Hooks() []Hook {
	return c.hooks.Ticket
}

// Interceptors returns the client interceptors.
func (c *TicketClient) Interceptors() []Interceptor {
	return c.inters.Ticket
}

func (c *TicketClient) mutate(ctx context.Context, m *TicketMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TicketCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TicketUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TicketUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TicketDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Ticket mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int64) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int64) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int64) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int64) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// VerificationAttemptClient is a client for the VerificationAttempt schema.
type VerificationAttemptClient struct {
	config
}

// NewVerificationAttemptClient returns a client for the VerificationAttempt from the given config.
func NewVerificationAttemptClient(c config) *VerificationAttemptClient {
	return &VerificationAttemptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationattempt.Hooks(f(g(h())))`.
func (c *VerificationAttemptClient) Use(hooks ...Hook) {
	c.hooks.VerificationAttempt = append(c.hooks.VerificationAttempt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationattempt.Intercept(f(g(h())))`.
func (c *VerificationAttemptClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationAttempt = append(c.inters.VerificationAttempt, interceptors...)
}

// Create returns a builder for creating a VerificationAttempt entity.
func (c *VerificationAttemptClient) Create() *VerificationAttemptCreate {
	mutation := newVerificationAttemptMutation(c.config, OpCreate)
	return &VerificationAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationAttempt entities.
func (c *VerificationAttemptClient) CreateBulk(builders ...*VerificationAttemptCreate) *VerificationAttemptCreateBulk {
	return &VerificationAttemptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationAttemptClient) MapCreateBulk(slice any, setFunc func(*VerificationAttemptCreate, int)) *VerificationAttemptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationAttemptCreateBulk{err: fmt.Errorf("calling to VerificationAttemptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationAttemptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationAttemptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationAttempt.
func (c *VerificationAttemptClient) Update() *VerificationAttemptUpdate {
	mutation := newVerificationAttemptMutation(c.config, OpUpdate)
	return &VerificationAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationAttemptClient) UpdateOne(_m *VerificationAttempt) *VerificationAttemptUpdateOne {
	mutation := newVerificationAttemptMutation(c.config, OpUpdateOne, withVerificationAttempt(_m))
	return &VerificationAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationAttemptClient) UpdateOneID(id int) *VerificationAttemptUpdateOne {
	mutation := newVerificationAttemptMutation(c.config, OpUpdateOne, withVerificationAttemptID(id))
	return &VerificationAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationAttempt.
func (c *VerificationAttemptClient) Delete() *VerificationAttemptDelete {
	mutation := newVerificationAttemptMutation(c.config, OpDelete)
	return &VerificationAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationAttemptClient) DeleteOne(_m *VerificationAttempt) *VerificationAttemptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationAttemptClient) DeleteOneID(id int) *VerificationAttemptDeleteOne {
	builder := c.Delete().Where(verificationattempt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationAttemptDeleteOne{builder}
}

// Query returns a query builder for VerificationAttempt.
func (c *VerificationAttemptClient) Query() *VerificationAttemptQuery {
	return &VerificationAttemptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationAttempt},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationAttempt entity by its id.
func (c *VerificationAttemptClient) Get(ctx context.Context, id int) (*VerificationAttempt, error) {
	return c.Query().Where(verificationattempt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationAttemptClient) GetX(ctx context.Context, id int) *VerificationAttempt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryVerification queries the verification edge of a VerificationAttempt.
func (c *VerificationAttemptClient) QueryVerification(_m *VerificationAttempt) *VerificationRequestQuery {
	query := (&VerificationRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationattempt.Table, verificationattempt.FieldID, id),
			sqlgraph.To(verificationrequest.Table, verificationrequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, verificationattempt.VerificationTable, verificationattempt.VerificationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationAttemptClient) Hooks() []Hook {
	return c.hooks.VerificationAttempt
}

// Interceptors returns the client interceptors.
func (c *VerificationAttemptClient) Interceptors() []Interceptor {
	return c.inters.VerificationAttempt
}

func (c *VerificationAttemptClient) mutate(ctx context.Context, m *VerificationAttemptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationAttemptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationAttemptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationAttemptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationAttemptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationAttempt mutation op: %q", m.Op())
	}
}

// VerificationRequestClient is a client for the VerificationRequest schema.
type VerificationRequestClient struct {
	config
}

// NewVerificationRequestClient returns a client for the VerificationRequest from the given config.
func NewVerificationRequestClient(c config) *VerificationRequestClient {
	return &VerificationRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `verificationrequest.Hooks(f(g(h())))`.
func (c *VerificationRequestClient) Use(hooks ...Hook) {
	c.hooks.VerificationRequest = append(c.hooks.VerificationRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `verificationrequest.Intercept(f(g(h())))`.
func (c *VerificationRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.VerificationRequest = append(c.inters.VerificationRequest, interceptors...)
}

// Create returns a builder for creating a VerificationRequest entity.
func (c *VerificationRequestClient) Create() *VerificationRequestCreate {
	mutation := newVerificationRequestMutation(c.config, OpCreate)
	return &VerificationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VerificationRequest entities.
func (c *VerificationRequestClient) CreateBulk(builders ...*VerificationRequestCreate) *VerificationRequestCreateBulk {
	return &VerificationRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VerificationRequestClient) MapCreateBulk(slice any, setFunc func(*VerificationRequestCreate, int)) *VerificationRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VerificationRequestCreateBulk{err: fmt.Errorf("calling to VerificationRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VerificationRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VerificationRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VerificationRequest.
func (c *VerificationRequestClient) Update() *VerificationRequestUpdate {
	mutation := newVerificationRequestMutation(c.config, OpUpdate)
	return &VerificationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VerificationRequestClient) UpdateOne(_m *VerificationRequest) *VerificationRequestUpdateOne {
	mutation := newVerificationRequestMutation(c.config, OpUpdateOne, withVerificationRequest(_m))
	return &VerificationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VerificationRequestClient) UpdateOneID(id string) *VerificationRequestUpdateOne {
	mutation := newVerificationRequestMutation(c.config, OpUpdateOne, withVerificationRequestID(id))
	return &VerificationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VerificationRequest.
func (c *VerificationRequestClient) Delete() *VerificationRequestDelete {
	mutation := newVerificationRequestMutation(c.config, OpDelete)
	return &VerificationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VerificationRequestClient) DeleteOne(_m *VerificationRequest) *VerificationRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VerificationRequestClient) DeleteOneID(id string) *VerificationRequestDeleteOne {
	builder := c.Delete().Where(verificationrequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VerificationRequestDeleteOne{builder}
}

// Query returns a query builder for VerificationRequest.
func (c *VerificationRequestClient) Query() *VerificationRequestQuery {
	return &VerificationRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVerificationRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a VerificationRequest entity by its id.
func (c *VerificationRequestClient) Get(ctx context.Context, id string) (*VerificationRequest, error) {
	return c.Query().Where(verificationrequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VerificationRequestClient) GetX(ctx context.Context, id string) *VerificationRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttempts queries the attempts edge of a VerificationRequest.
func (c *VerificationRequestClient) QueryAttempts(_m *VerificationRequest) *VerificationAttemptQuery {
	query := (&VerificationAttemptClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(verificationrequest.Table, verificationrequest.FieldID, id),
			sqlgraph.To(verificationattempt.Table, verificationattempt.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, verificationrequest.AttemptsTable, verificationrequest.AttemptsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VerificationRequestClient) Hooks() []Hook {
	return c.hooks.VerificationRequest
}

// Interceptors returns the client interceptors.
func (c *VerificationRequestClient) Interceptors() []Interceptor {
	return c.inters.VerificationRequest
}

func (c *VerificationRequestClient) mutate(ctx context.Context, m *VerificationRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VerificationRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VerificationRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VerificationRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VerificationRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VerificationRequest mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		IntegrationRequest, SupportConversation, Ticket, User, VerificationAttempt,
		VerificationRequest []ent.Hook
	}
	inters struct {
		IntegrationRequest, SupportConversation, Ticket, User, VerificationAttempt,
		VerificationRequest []ent.Interceptor
	}
)
