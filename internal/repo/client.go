// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/dealpermissionoverride"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/fund"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/permissiongrant"
	"github.com/AndrejDratschuk/citadels-investor-portal-sub003/internal/repo/stakeholderrole"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// DealPermissionOverride is the client for interacting with the DealPermissionOverride builders.
	DealPermissionOverride *DealPermissionOverrideClient
	// Fund is the client for interacting with the Fund builders.
	Fund *FundClient
	// PermissionGrant is the client for interacting with the PermissionGrant builders.
	PermissionGrant *PermissionGrantClient
	// StakeholderRole is the client for interacting with the StakeholderRole builders.
	StakeholderRole *StakeholderRoleClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.DealPermissionOverride = NewDealPermissionOverrideClient(c.config)
	c.Fund = NewFundClient(c.config)
	c.PermissionGrant = NewPermissionGrantClient(c.config)
	c.StakeholderRole = NewStakeholderRoleClient(c.config)
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
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                    ctx,
		config:                 cfg,
		DealPermissionOverride: NewDealPermissionOverrideClient(cfg),
		Fund:                   NewFundClient(cfg),
		PermissionGrant:        NewPermissionGrantClient(cfg),
		StakeholderRole:        NewStakeholderRoleClient(cfg),
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
		ctx:                    ctx,
		config:                 cfg,
		DealPermissionOverride: NewDealPermissionOverrideClient(cfg),
		Fund:                   NewFundClient(cfg),
		PermissionGrant:        NewPermissionGrantClient(cfg),
		StakeholderRole:        NewStakeholderRoleClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		DealPermissionOverride.
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
	c.DealPermissionOverride.Use(hooks...)
	c.Fund.Use(hooks...)
	c.PermissionGrant.Use(hooks...)
	c.StakeholderRole.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.DealPermissionOverride.Intercept(interceptors...)
	c.Fund.Intercept(interceptors...)
	c.PermissionGrant.Intercept(interceptors...)
	c.StakeholderRole.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DealPermissionOverrideMutation:
		return c.DealPermissionOverride.mutate(ctx, m)
	case *FundMutation:
		return c.Fund.mutate(ctx, m)
	case *PermissionGrantMutation:
		return c.PermissionGrant.mutate(ctx, m)
	case *StakeholderRoleMutation:
		return c.StakeholderRole.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// DealPermissionOverrideClient is a client for the DealPermissionOverride schema.
type DealPermissionOverrideClient struct {
	config
}

// NewDealPermissionOverrideClient returns a client for the DealPermissionOverride from the given config.
func NewDealPermissionOverrideClient(c config) *DealPermissionOverrideClient {
	return &DealPermissionOverrideClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `dealpermissionoverride.Hooks(f(g(h())))`.
func (c *DealPermissionOverrideClient) Use(hooks ...Hook) {
	c.hooks.DealPermissionOverride = append(c.hooks.DealPermissionOverride, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `dealpermissionoverride.Intercept(f(g(h())))`.
func (c *DealPermissionOverrideClient) Intercept(interceptors ...Interceptor) {
	c.inters.DealPermissionOverride = append(c.inters.DealPermissionOverride, interceptors...)
}

// Create returns a builder for creating a DealPermissionOverride entity.
func (c *DealPermissionOverrideClient) Create() *DealPermissionOverrideCreate {
	mutation := newDealPermissionOverrideMutation(c.config, OpCreate)
	return &DealPermissionOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DealPermissionOverride entities.
func (c *DealPermissionOverrideClient) CreateBulk(builders ...*DealPermissionOverrideCreate) *DealPermissionOverrideCreateBulk {
	return &DealPermissionOverrideCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DealPermissionOverrideClient) MapCreateBulk(slice any, setFunc func(*DealPermissionOverrideCreate, int)) *DealPermissionOverrideCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DealPermissionOverrideCreateBulk{err: fmt.Errorf("calling to DealPermissionOverrideClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DealPermissionOverrideCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DealPermissionOverrideCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DealPermissionOverride.
func (c *DealPermissionOverrideClient) Update() *DealPermissionOverrideUpdate {
	mutation := newDealPermissionOverrideMutation(c.config, OpUpdate)
	return &DealPermissionOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DealPermissionOverrideClient) UpdateOne(_m *DealPermissionOverride) *DealPermissionOverrideUpdateOne {
	mutation := newDealPermissionOverrideMutation(c.config, OpUpdateOne, withDealPermissionOverride(_m))
	return &DealPermissionOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DealPermissionOverrideClient) UpdateOneID(id uuid.UUID) *DealPermissionOverrideUpdateOne {
	mutation := newDealPermissionOverrideMutation(c.config, OpUpdateOne, withDealPermissionOverrideID(id))
	return &DealPermissionOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DealPermissionOverride.
func (c *DealPermissionOverrideClient) Delete() *DealPermissionOverrideDelete {
	mutation := newDealPermissionOverrideMutation(c.config, OpDelete)
	return &DealPermissionOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DealPermissionOverrideClient) DeleteOne(_m *DealPermissionOverride) *DealPermissionOverrideDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DealPermissionOverrideClient) DeleteOneID(id uuid.UUID) *DealPermissionOverrideDeleteOne {
	builder := c.Delete().Where(dealpermissionoverride.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DealPermissionOverrideDeleteOne{builder}
}

// Query returns a query builder for DealPermissionOverride.
func (c *DealPermissionOverrideClient) Query() *DealPermissionOverrideQuery {
	return &DealPermissionOverrideQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDealPermissionOverride},
		inters: c.Interceptors(),
	}
}

// Get returns a DealPermissionOverride entity by its id.
func (c *DealPermissionOverrideClient) Get(ctx context.Context, id uuid.UUID) (*DealPermissionOverride, error) {
	return c.Query().Where(dealpermissionoverride.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DealPermissionOverrideClient) GetX(ctx context.Context, id uuid.UUID) *DealPermissionOverride {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRole queries the role edge of a DealPermissionOverride.
func (c *DealPermissionOverrideClient) QueryRole(_m *DealPermissionOverride) *StakeholderRoleQuery {
	query := (&StakeholderRoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(dealpermissionoverride.Table, dealpermissionoverride.FieldID, id),
			sqlgraph.To(stakeholderrole.Table, stakeholderrole.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, dealpermissionoverride.RoleTable, dealpermissionoverride.RoleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DealPermissionOverrideClient) Hooks() []Hook {
	return c.hooks.DealPermissionOverride
}

// Interceptors returns the client interceptors.
func (c *DealPermissionOverrideClient) Interceptors() []Interceptor {
	return c.inters.DealPermissionOverride
}

func (c *DealPermissionOverrideClient) mutate(ctx context.Context, m *DealPermissionOverrideMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DealPermissionOverrideCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DealPermissionOverrideUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DealPermissionOverrideUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DealPermissionOverrideDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown DealPermissionOverride mutation op: %q", m.Op())
	}
}

// FundClient is a client for the Fund schema.
type FundClient struct {
	config
}

// NewFundClient returns a client for the Fund from the given config.
func NewFundClient(c config) *FundClient {
	return &FundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fund.Hooks(f(g(h())))`.
func (c *FundClient) Use(hooks ...Hook) {
	c.hooks.Fund = append(c.hooks.Fund, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fund.Intercept(f(g(h())))`.
func (c *FundClient) Intercept(interceptors ...Interceptor) {
	c.inters.Fund = append(c.inters.Fund, interceptors...)
}

// Create returns a builder for creating a Fund entity.
func (c *FundClient) Create() *FundCreate {
	mutation := newFundMutation(c.config, OpCreate)
	return &FundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Fund entities.
func (c *FundClient) CreateBulk(builders ...*FundCreate) *FundCreateBulk {
	return &FundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FundClient) MapCreateBulk(slice any, setFunc func(*FundCreate, int)) *FundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FundCreateBulk{err: fmt.Errorf("calling to FundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Fund.
func (c *FundClient) Update() *FundUpdate {
	mutation := newFundMutation(c.config, OpUpdate)
	return &FundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FundClient) UpdateOne(_m *Fund) *FundUpdateOne {
	mutation := newFundMutation(c.config, OpUpdateOne, withFund(_m))
	return &FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FundClient) UpdateOneID(id uuid.UUID) *FundUpdateOne {
	mutation := newFundMutation(c.config, OpUpdateOne, withFundID(id))
	return &FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Fund.
func (c *FundClient) Delete() *FundDelete {
	mutation := newFundMutation(c.config, OpDelete)
	return &FundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FundClient) DeleteOne(_m *Fund) *FundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FundClient) DeleteOneID(id uuid.UUID) *FundDeleteOne {
	builder := c.Delete().Where(fund.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FundDeleteOne{builder}
}

// Query returns a query builder for Fund.
func (c *FundClient) Query() *FundQuery {
	return &FundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFund},
		inters: c.Interceptors(),
	}
}

// Get returns a Fund entity by its id.
func (c *FundClient) Get(ctx context.Context, id uuid.UUID) (*Fund, error) {
	return c.Query().Where(fund.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FundClient) GetX(ctx context.Context, id uuid.UUID) *Fund {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRoles queries the roles edge of a Fund.
func (c *FundClient) QueryRoles(_m *Fund) *StakeholderRoleQuery {
	query := (&StakeholderRoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fund.Table, fund.FieldID, id),
			sqlgraph.To(stakeholderrole.Table, stakeholderrole.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, fund.RolesTable, fund.RolesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FundClient) Hooks() []Hook {
	return c.hooks.Fund
}

// Interceptors returns the client interceptors.
func (c *FundClient) Interceptors() []Interceptor {
	return c.inters.Fund
}

func (c *FundClient) mutate(ctx context.Context, m *FundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Fund mutation op: %q", m.Op())
	}
}

// PermissionGrantClient is a client for the PermissionGrant schema.
type PermissionGrantClient struct {
	config
}

// NewPermissionGrantClient returns a client for the PermissionGrant from the given config.
func NewPermissionGrantClient(c config) *PermissionGrantClient {
	return &PermissionGrantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `permissiongrant.Hooks(f(g(h())))`.
func (c *PermissionGrantClient) Use(hooks ...Hook) {
	c.hooks.PermissionGrant = append(c.hooks.PermissionGrant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `permissiongrant.Intercept(f(g(h())))`.
func (c *PermissionGrantClient) Intercept(interceptors ...Interceptor) {
	c.inters.PermissionGrant = append(c.inters.PermissionGrant, interceptors...)
}

// Create returns a builder for creating a PermissionGrant entity.
func (c *PermissionGrantClient) Create() *PermissionGrantCreate {
	mutation := newPermissionGrantMutation(c.config, OpCreate)
	return &PermissionGrantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PermissionGrant entities.
func (c *PermissionGrantClient) CreateBulk(builders ...*PermissionGrantCreate) *PermissionGrantCreateBulk {
	return &PermissionGrantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PermissionGrantClient) MapCreateBulk(slice any, setFunc func(*PermissionGrantCreate, int)) *PermissionGrantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PermissionGrantCreateBulk{err: fmt.Errorf("calling to PermissionGrantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PermissionGrantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PermissionGrantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PermissionGrant.
func (c *PermissionGrantClient) Update() *PermissionGrantUpdate {
	mutation := newPermissionGrantMutation(c.config, OpUpdate)
	return &PermissionGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PermissionGrantClient) UpdateOne(_m *PermissionGrant) *PermissionGrantUpdateOne {
	mutation := newPermissionGrantMutation(c.config, OpUpdateOne, withPermissionGrant(_m))
	return &PermissionGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PermissionGrantClient) UpdateOneID(id uuid.UUID) *PermissionGrantUpdateOne {
	mutation := newPermissionGrantMutation(c.config, OpUpdateOne, withPermissionGrantID(id))
	return &PermissionGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PermissionGrant.
func (c *PermissionGrantClient) Delete() *PermissionGrantDelete {
	mutation := newPermissionGrantMutation(c.config, OpDelete)
	return &PermissionGrantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PermissionGrantClient) DeleteOne(_m *PermissionGrant) *PermissionGrantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PermissionGrantClient) DeleteOneID(id uuid.UUID) *PermissionGrantDeleteOne {
	builder := c.Delete().Where(permissiongrant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PermissionGrantDeleteOne{builder}
}

// Query returns a query builder for PermissionGrant.
func (c *PermissionGrantClient) Query() *PermissionGrantQuery {
	return &PermissionGrantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePermissionGrant},
		inters: c.Interceptors(),
	}
}

// Get returns a PermissionGrant entity by its id.
func (c *PermissionGrantClient) Get(ctx context.Context, id uuid.UUID) (*PermissionGrant, error) {
	return c.Query().Where(permissiongrant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PermissionGrantClient) GetX(ctx context.Context, id uuid.UUID) *PermissionGrant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRole queries the role edge of a PermissionGrant.
func (c *PermissionGrantClient) QueryRole(_m *PermissionGrant) *StakeholderRoleQuery {
	query := (&StakeholderRoleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(permissiongrant.Table, permissiongrant.FieldID, id),
			sqlgraph.To(stakeholderrole.Table, stakeholderrole.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, permissiongrant.RoleTable, permissiongrant.RoleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PermissionGrantClient) Hooks() []Hook {
	return c.hooks.PermissionGrant
}

// Interceptors returns the client interceptors.
func (c *PermissionGrantClient) Interceptors() []Interceptor {
	return c.inters.PermissionGrant
}

func (c *PermissionGrantClient) mutate(ctx context.Context, m *PermissionGrantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PermissionGrantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PermissionGrantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PermissionGrantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PermissionGrantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown PermissionGrant mutation op: %q", m.Op())
	}
}

// StakeholderRoleClient is a client for the StakeholderRole schema.
type StakeholderRoleClient struct {
	config
}

// NewStakeholderRoleClient returns a client for the StakeholderRole from the given config.
func NewStakeholderRoleClient(c config) *StakeholderRoleClient {
	return &StakeholderRoleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stakeholderrole.Hooks(f(g(h())))`.
func (c *StakeholderRoleClient) Use(hooks ...Hook) {
	c.hooks.StakeholderRole = append(c.hooks.StakeholderRole, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stakeholderrole.Intercept(f(g(h())))`.
func (c *StakeholderRoleClient) Intercept(interceptors ...Interceptor) {
	c.inters.StakeholderRole = append(c.inters.StakeholderRole, interceptors...)
}

// Create returns a builder for creating a StakeholderRole entity.
func (c *StakeholderRoleClient) Create() *StakeholderRoleCreate {
	mutation := newStakeholderRoleMutation(c.config, OpCreate)
	return &StakeholderRoleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StakeholderRole entities.
func (c *StakeholderRoleClient) CreateBulk(builders ...*StakeholderRoleCreate) *StakeholderRoleCreateBulk {
	return &StakeholderRoleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StakeholderRoleClient) MapCreateBulk(slice any, setFunc func(*StakeholderRoleCreate, int)) *StakeholderRoleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StakeholderRoleCreateBulk{err: fmt.Errorf("calling to StakeholderRoleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StakeholderRoleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StakeholderRoleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StakeholderRole.
func (c *StakeholderRoleClient) Update() *StakeholderRoleUpdate {
	mutation := newStakeholderRoleMutation(c.config, OpUpdate)
	return &StakeholderRoleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StakeholderRoleClient) UpdateOne(_m *StakeholderRole) *StakeholderRoleUpdateOne {
	mutation := newStakeholderRoleMutation(c.config, OpUpdateOne, withStakeholderRole(_m))
	return &StakeholderRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StakeholderRoleClient) UpdateOneID(id uuid.UUID) *StakeholderRoleUpdateOne {
	mutation := newStakeholderRoleMutation(c.config, OpUpdateOne, withStakeholderRoleID(id))
	return &StakeholderRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StakeholderRole.
func (c *StakeholderRoleClient) Delete() *StakeholderRoleDelete {
	mutation := newStakeholderRoleMutation(c.config, OpDelete)
	return &StakeholderRoleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StakeholderRoleClient) DeleteOne(_m *StakeholderRole) *StakeholderRoleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StakeholderRoleClient) DeleteOneID(id uuid.UUID) *StakeholderRoleDeleteOne {
	builder := c.Delete().Where(stakeholderrole.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StakeholderRoleDeleteOne{builder}
}

// Query returns a query builder for StakeholderRole.
func (c *StakeholderRoleClient) Query() *StakeholderRoleQuery {
	return &StakeholderRoleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStakeholderRole},
		inters: c.Interceptors(),
	}
}

// Get returns a StakeholderRole entity by its id.
func (c *StakeholderRoleClient) Get(ctx context.Context, id uuid.UUID) (*StakeholderRole, error) {
	return c.Query().Where(stakeholderrole.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StakeholderRoleClient) GetX(ctx context.Context, id uuid.UUID) *StakeholderRole {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFund queries the fund edge of a StakeholderRole.
func (c *StakeholderRoleClient) QueryFund(_m *StakeholderRole) *FundQuery {
	query := (&FundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, id),
			sqlgraph.To(fund.Table, fund.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, stakeholderrole.FundTable, stakeholderrole.FundColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryGrants queries the grants edge of a StakeholderRole.
func (c *StakeholderRoleClient) QueryGrants(_m *StakeholderRole) *PermissionGrantQuery {
	query := (&PermissionGrantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, id),
			sqlgraph.To(permissiongrant.Table, permissiongrant.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stakeholderrole.GrantsTable, stakeholderrole.GrantsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryOverrides queries the overrides edge of a StakeholderRole.
func (c *StakeholderRoleClient) QueryOverrides(_m *StakeholderRole) *DealPermissionOverrideQuery {
	query := (&DealPermissionOverrideClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(stakeholderrole.Table, stakeholderrole.FieldID, id),
			sqlgraph.To(dealpermissionoverride.Table, dealpermissionoverride.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, stakeholderrole.OverridesTable, stakeholderrole.OverridesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *StakeholderRoleClient) Hooks() []Hook {
	return c.hooks.StakeholderRole
}

// Interceptors returns the client interceptors.
func (c *StakeholderRoleClient) Interceptors() []Interceptor {
	return c.inters.StakeholderRole
}

func (c *StakeholderRoleClient) mutate(ctx context.Context, m *StakeholderRoleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StakeholderRoleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StakeholderRoleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StakeholderRoleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StakeholderRoleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown StakeholderRole mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		DealPermissionOverride, Fund, PermissionGrant, StakeholderRole []ent.Hook
	}
	inters struct {
		DealPermissionOverride, Fund, PermissionGrant, StakeholderRole []ent.Interceptor
	}
)
