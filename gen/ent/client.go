// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/construtiva/proposal-pipeline/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// PaymentCondition is the client for interacting with the PaymentCondition builders.
	PaymentCondition *PaymentConditionClient
	// PipelineMetric is the client for interacting with the PipelineMetric builders.
	PipelineMetric *PipelineMetricClient
	// ProcessingLog is the client for interacting with the ProcessingLog builders.
	ProcessingLog *ProcessingLogClient
	// Proposal is the client for interacting with the Proposal builders.
	Proposal *ProposalClient
	// ProposalItem is the client for interacting with the ProposalItem builders.
	ProposalItem *ProposalItemClient
	// ProposalSolution is the client for interacting with the ProposalSolution builders.
	ProposalSolution *ProposalSolutionClient
	// RecommendedProduct is the client for interacting with the RecommendedProduct builders.
	RecommendedProduct *RecommendedProductClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.PaymentCondition = NewPaymentConditionClient(c.config)
	c.PipelineMetric = NewPipelineMetricClient(c.config)
	c.ProcessingLog = NewProcessingLogClient(c.config)
	c.Proposal = NewProposalClient(c.config)
	c.ProposalItem = NewProposalItemClient(c.config)
	c.ProposalSolution = NewProposalSolutionClient(c.config)
	c.RecommendedProduct = NewRecommendedProductClient(c.config)
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
		PaymentCondition:   NewPaymentConditionClient(cfg),
		PipelineMetric:     NewPipelineMetricClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
		Proposal:           NewProposalClient(cfg),
		ProposalItem:       NewProposalItemClient(cfg),
		ProposalSolution:   NewProposalSolutionClient(cfg),
		RecommendedProduct: NewRecommendedProductClient(cfg),
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
		PaymentCondition:   NewPaymentConditionClient(cfg),
		PipelineMetric:     NewPipelineMetricClient(cfg),
		ProcessingLog:      NewProcessingLogClient(cfg),
		Proposal:           NewProposalClient(cfg),
		ProposalItem:       NewProposalItemClient(cfg),
		ProposalSolution:   NewProposalSolutionClient(cfg),
		RecommendedProduct: NewRecommendedProductClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		PaymentCondition.
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
		c.PaymentCondition, c.PipelineMetric, c.ProcessingLog, c.Proposal,
		c.ProposalItem, c.ProposalSolution, c.RecommendedProduct,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.PaymentCondition, c.PipelineMetric, c.ProcessingLog, c.Proposal,
		c.ProposalItem, c.ProposalSolution, c.RecommendedProduct,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *PaymentConditionMutation:
		return c.PaymentCondition.mutate(ctx, m)
	case *PipelineMetricMutation:
		return c.PipelineMetric.mutate(ctx, m)
	case *ProcessingLogMutation:
		return c.ProcessingLog.mutate(ctx, m)
	case *ProposalMutation:
		return c.Proposal.mutate(ctx, m)
	case *ProposalItemMutation:
		return c.ProposalItem.mutate(ctx, m)
	case *ProposalSolutionMutation:
		return c.ProposalSolution.mutate(ctx, m)
	case *RecommendedProductMutation:
		return c.RecommendedProduct.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// PaymentConditionClient is a client for the PaymentCondition schema.
type PaymentConditionClient struct {
	config
}

// NewPaymentConditionClient returns a client for the PaymentCondition from the given config.
func NewPaymentConditionClient(c config) *PaymentConditionClient {
	return &PaymentConditionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `paymentcondition.Hooks(f(g(h())))`.
func (c *PaymentConditionClient) Use(hooks ...Hook) {
	c.hooks.PaymentCondition = append(c.hooks.PaymentCondition, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `paymentcondition.Intercept(f(g(h())))`.
func (c *PaymentConditionClient) Intercept(interceptors ...Interceptor) {
	c.inters.PaymentCondition = append(c.inters.PaymentCondition, interceptors...)
}

// Create returns a builder for creating a PaymentCondition entity.
func (c *PaymentConditionClient) Create() *PaymentConditionCreate {
	mutation := newPaymentConditionMutation(c.config, OpCreate)
	return &PaymentConditionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PaymentCondition entities.
func (c *PaymentConditionClient) CreateBulk(builders ...*PaymentConditionCreate) *PaymentConditionCreateBulk {
	return &PaymentConditionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PaymentConditionClient) MapCreateBulk(slice any, setFunc func(*PaymentConditionCreate, int)) *PaymentConditionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PaymentConditionCreateBulk{err: fmt.Errorf("calling to PaymentConditionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PaymentConditionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PaymentConditionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PaymentCondition.
func (c *PaymentConditionClient) Update() *PaymentConditionUpdate {
	mutation := newPaymentConditionMutation(c.config, OpUpdate)
	return &PaymentConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PaymentConditionClient) UpdateOne(_m *PaymentCondition) *PaymentConditionUpdateOne {
	mutation := newPaymentConditionMutation(c.config, OpUpdateOne, withPaymentCondition(_m))
	return &PaymentConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PaymentConditionClient) UpdateOneID(id uuid.UUID) *PaymentConditionUpdateOne {
	mutation := newPaymentConditionMutation(c.config, OpUpdateOne, withPaymentConditionID(id))
	return &PaymentConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PaymentCondition.
func (c *PaymentConditionClient) Delete() *PaymentConditionDelete {
	mutation := newPaymentConditionMutation(c.config, OpDelete)
	return &PaymentConditionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PaymentConditionClient) DeleteOne(_m *PaymentCondition) *PaymentConditionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PaymentConditionClient) DeleteOneID(id uuid.UUID) *PaymentConditionDeleteOne {
	builder := c.Delete().Where(paymentcondition.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PaymentConditionDeleteOne{builder}
}

// Query returns a query builder for PaymentCondition.
func (c *PaymentConditionClient) Query() *PaymentConditionQuery {
	return &PaymentConditionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePaymentCondition},
		inters: c.Interceptors(),
	}
}

// Get returns a PaymentCondition entity by its id.
func (c *PaymentConditionClient) Get(ctx context.Context, id uuid.UUID) (*PaymentCondition, error) {
	return c.Query().Where(paymentcondition.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PaymentConditionClient) GetX(ctx context.Context, id uuid.UUID) *PaymentCondition {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a PaymentCondition.
func (c *PaymentConditionClient) QueryProposal(_m *PaymentCondition) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(paymentcondition.Table, paymentcondition.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, paymentcondition.ProposalTable, paymentcondition.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PaymentConditionClient) Hooks() []Hook {
	return c.hooks.PaymentCondition
}

// Interceptors returns the client interceptors.
func (c *PaymentConditionClient) Interceptors() []Interceptor {
	return c.inters.PaymentCondition
}

func (c *PaymentConditionClient) mutate(ctx context.Context, m *PaymentConditionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PaymentConditionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PaymentConditionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PaymentConditionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PaymentConditionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PaymentCondition mutation op: %q", m.Op())
	}
}

// PipelineMetricClient is a client for the PipelineMetric schema.
type PipelineMetricClient struct {
	config
}

// NewPipelineMetricClient returns a client for the PipelineMetric from the given config.
func NewPipelineMetricClient(c config) *PipelineMetricClient {
	return &PipelineMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pipelinemetric.Hooks(f(g(h())))`.
func (c *PipelineMetricClient) Use(hooks ...Hook) {
	c.hooks.PipelineMetric = append(c.hooks.PipelineMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pipelinemetric.Intercept(f(g(h())))`.
func (c *PipelineMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.PipelineMetric = append(c.inters.PipelineMetric, interceptors...)
}

// Create returns a builder for creating a PipelineMetric entity.
func (c *PipelineMetricClient) Create() *PipelineMetricCreate {
	mutation := newPipelineMetricMutation(c.config, OpCreate)
	return &PipelineMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PipelineMetric entities.
func (c *PipelineMetricClient) CreateBulk(builders ...*PipelineMetricCreate) *PipelineMetricCreateBulk {
	return &PipelineMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PipelineMetricClient) MapCreateBulk(slice any, setFunc func(*PipelineMetricCreate, int)) *PipelineMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PipelineMetricCreateBulk{err: fmt.Errorf("calling to PipelineMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PipelineMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PipelineMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PipelineMetric.
func (c *PipelineMetricClient) Update() *PipelineMetricUpdate {
	mutation := newPipelineMetricMutation(c.config, OpUpdate)
	return &PipelineMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PipelineMetricClient) UpdateOne(_m *PipelineMetric) *PipelineMetricUpdateOne {
	mutation := newPipelineMetricMutation(c.config, OpUpdateOne, withPipelineMetric(_m))
	return &PipelineMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PipelineMetricClient) UpdateOneID(id uuid.UUID) *PipelineMetricUpdateOne {
	mutation := newPipelineMetricMutation(c.config, OpUpdateOne, withPipelineMetricID(id))
	return &PipelineMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PipelineMetric.
func (c *PipelineMetricClient) Delete() *PipelineMetricDelete {
	mutation := newPipelineMetricMutation(c.config, OpDelete)
	return &PipelineMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PipelineMetricClient) DeleteOne(_m *PipelineMetric) *PipelineMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PipelineMetricClient) DeleteOneID(id uuid.UUID) *PipelineMetricDeleteOne {
	builder := c.Delete().Where(pipelinemetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PipelineMetricDeleteOne{builder}
}

// Query returns a query builder for PipelineMetric.
func (c *PipelineMetricClient) Query() *PipelineMetricQuery {
	return &PipelineMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePipelineMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a PipelineMetric entity by its id.
func (c *PipelineMetricClient) Get(ctx context.Context, id uuid.UUID) (*PipelineMetric, error) {
	return c.Query().Where(pipelinemetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PipelineMetricClient) GetX(ctx context.Context, id uuid.UUID) *PipelineMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PipelineMetricClient) Hooks() []Hook {
	return c.hooks.PipelineMetric
}

// Interceptors returns the client interceptors.
func (c *PipelineMetricClient) Interceptors() []Interceptor {
	return c.inters.PipelineMetric
}

func (c *PipelineMetricClient) mutate(ctx context.Context, m *PipelineMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PipelineMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PipelineMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PipelineMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PipelineMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PipelineMetric mutation op: %q", m.Op())
	}
}

// ProcessingLogClient is a client for the ProcessingLog schema.
type ProcessingLogClient struct {
	config
}

// NewProcessingLogClient returns a client for the ProcessingLog from the given config.
func NewProcessingLogClient(c config) *ProcessingLogClient {
	return &ProcessingLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processinglog.Hooks(f(g(h())))`.
func (c *ProcessingLogClient) Use(hooks ...Hook) {
	c.hooks.ProcessingLog = append(c.hooks.ProcessingLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processinglog.Intercept(f(g(h())))`.
func (c *ProcessingLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessingLog = append(c.inters.ProcessingLog, interceptors...)
}

// Create returns a builder for creating a ProcessingLog entity.
func (c *ProcessingLogClient) Create() *ProcessingLogCreate {
	mutation := newProcessingLogMutation(c.config, OpCreate)
	return &ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessingLog entities.
func (c *ProcessingLogClient) CreateBulk(builders ...*ProcessingLogCreate) *ProcessingLogCreateBulk {
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessingLogClient) MapCreateBulk(slice any, setFunc func(*ProcessingLogCreate, int)) *ProcessingLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessingLogCreateBulk{err: fmt.Errorf("calling to ProcessingLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessingLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessingLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessingLog.
func (c *ProcessingLogClient) Update() *ProcessingLogUpdate {
	mutation := newProcessingLogMutation(c.config, OpUpdate)
	return &ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessingLogClient) UpdateOne(_m *ProcessingLog) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLog(_m))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessingLogClient) UpdateOneID(id uuid.UUID) *ProcessingLogUpdateOne {
	mutation := newProcessingLogMutation(c.config, OpUpdateOne, withProcessingLogID(id))
	return &ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessingLog.
func (c *ProcessingLogClient) Delete() *ProcessingLogDelete {
	mutation := newProcessingLogMutation(c.config, OpDelete)
	return &ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessingLogClient) DeleteOne(_m *ProcessingLog) *ProcessingLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessingLogClient) DeleteOneID(id uuid.UUID) *ProcessingLogDeleteOne {
	builder := c.Delete().Where(processinglog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessingLogDeleteOne{builder}
}

// Query returns a query builder for ProcessingLog.
func (c *ProcessingLogClient) Query() *ProcessingLogQuery {
	return &ProcessingLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessingLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessingLog entity by its id.
func (c *ProcessingLogClient) Get(ctx context.Context, id uuid.UUID) (*ProcessingLog, error) {
	return c.Query().Where(processinglog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessingLogClient) GetX(ctx context.Context, id uuid.UUID) *ProcessingLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessingLogClient) Hooks() []Hook {
	return c.hooks.ProcessingLog
}

// Interceptors returns the client interceptors.
func (c *ProcessingLogClient) Interceptors() []Interceptor {
	return c.inters.ProcessingLog
}

func (c *ProcessingLogClient) mutate(ctx context.Context, m *ProcessingLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessingLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessingLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessingLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessingLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessingLog mutation op: %q", m.Op())
	}
}

// ProposalClient is a client for the Proposal schema.
type ProposalClient struct {
	config
}

// NewProposalClient returns a client for the Proposal from the given config.
func NewProposalClient(c config) *ProposalClient {
	return &ProposalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposal.Hooks(f(g(h())))`.
func (c *ProposalClient) Use(hooks ...Hook) {
	c.hooks.Proposal = append(c.hooks.Proposal, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposal.Intercept(f(g(h())))`.
func (c *ProposalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Proposal = append(c.inters.Proposal, interceptors...)
}

// Create returns a builder for creating a Proposal entity.
func (c *ProposalClient) Create() *ProposalCreate {
	mutation := newProposalMutation(c.config, OpCreate)
	return &ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Proposal entities.
func (c *ProposalClient) CreateBulk(builders ...*ProposalCreate) *ProposalCreateBulk {
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalClient) MapCreateBulk(slice any, setFunc func(*ProposalCreate, int)) *ProposalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalCreateBulk{err: fmt.Errorf("calling to ProposalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Proposal.
func (c *ProposalClient) Update() *ProposalUpdate {
	mutation := newProposalMutation(c.config, OpUpdate)
	return &ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalClient) UpdateOne(_m *Proposal) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposal(_m))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalClient) UpdateOneID(id uuid.UUID) *ProposalUpdateOne {
	mutation := newProposalMutation(c.config, OpUpdateOne, withProposalID(id))
	return &ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Proposal.
func (c *ProposalClient) Delete() *ProposalDelete {
	mutation := newProposalMutation(c.config, OpDelete)
	return &ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalClient) DeleteOne(_m *Proposal) *ProposalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalClient) DeleteOneID(id uuid.UUID) *ProposalDeleteOne {
	builder := c.Delete().Where(proposal.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalDeleteOne{builder}
}

// Query returns a query builder for Proposal.
func (c *ProposalClient) Query() *ProposalQuery {
	return &ProposalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposal},
		inters: c.Interceptors(),
	}
}

// Get returns a Proposal entity by its id.
func (c *ProposalClient) Get(ctx context.Context, id uuid.UUID) (*Proposal, error) {
	return c.Query().Where(proposal.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalClient) GetX(ctx context.Context, id uuid.UUID) *Proposal {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a Proposal.
func (c *ProposalClient) QueryItems(_m *Proposal) *ProposalItemQuery {
	query := (&ProposalItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(proposalitem.Table, proposalitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.ItemsTable, proposal.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPaymentConditions queries the payment_conditions edge of a Proposal.
func (c *ProposalClient) QueryPaymentConditions(_m *Proposal) *PaymentConditionQuery {
	query := (&PaymentConditionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(paymentcondition.Table, paymentcondition.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.PaymentConditionsTable, proposal.PaymentConditionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySolutions queries the solutions edge of a Proposal.
func (c *ProposalClient) QuerySolutions(_m *Proposal) *ProposalSolutionQuery {
	query := (&ProposalSolutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(proposalsolution.Table, proposalsolution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.SolutionsTable, proposal.SolutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecommendedProducts queries the recommended_products edge of a Proposal.
func (c *ProposalClient) QueryRecommendedProducts(_m *Proposal) *RecommendedProductQuery {
	query := (&RecommendedProductClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposal.Table, proposal.FieldID, id),
			sqlgraph.To(recommendedproduct.Table, recommendedproduct.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, proposal.RecommendedProductsTable, proposal.RecommendedProductsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProposalClient) Hooks() []Hook {
	return c.hooks.Proposal
}

// Interceptors returns the client interceptors.
func (c *ProposalClient) Interceptors() []Interceptor {
	return c.inters.Proposal
}

func (c *ProposalClient) mutate(ctx context.Context, m *ProposalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Proposal mutation op: %q", m.Op())
	}
}

// ProposalItemClient is a client for the ProposalItem schema.
type ProposalItemClient struct {
	config
}

// NewProposalItemClient returns a client for the ProposalItem from the given config.
func NewProposalItemClient(c config) *ProposalItemClient {
	return &ProposalItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposalitem.Hooks(f(g(h())))`.
func (c *ProposalItemClient) Use(hooks ...Hook) {
	c.hooks.ProposalItem = append(c.hooks.ProposalItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposalitem.Intercept(f(g(h())))`.
func (c *ProposalItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProposalItem = append(c.inters.ProposalItem, interceptors...)
}

// Create returns a builder for creating a ProposalItem entity.
func (c *ProposalItemClient) Create() *ProposalItemCreate {
	mutation := newProposalItemMutation(c.config, OpCreate)
	return &ProposalItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProposalItem entities.
func (c *ProposalItemClient) CreateBulk(builders ...*ProposalItemCreate) *ProposalItemCreateBulk {
	return &ProposalItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalItemClient) MapCreateBulk(slice any, setFunc func(*ProposalItemCreate, int)) *ProposalItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalItemCreateBulk{err: fmt.Errorf("calling to ProposalItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProposalItem.
func (c *ProposalItemClient) Update() *ProposalItemUpdate {
	mutation := newProposalItemMutation(c.config, OpUpdate)
	return &ProposalItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalItemClient) UpdateOne(_m *ProposalItem) *ProposalItemUpdateOne {
	mutation := newProposalItemMutation(c.config, OpUpdateOne, withProposalItem(_m))
	return &ProposalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalItemClient) UpdateOneID(id uuid.UUID) *ProposalItemUpdateOne {
	mutation := newProposalItemMutation(c.config, OpUpdateOne, withProposalItemID(id))
	return &ProposalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProposalItem.
func (c *ProposalItemClient) Delete() *ProposalItemDelete {
	mutation := newProposalItemMutation(c.config, OpDelete)
	return &ProposalItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalItemClient) DeleteOne(_m *ProposalItem) *ProposalItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalItemClient) DeleteOneID(id uuid.UUID) *ProposalItemDeleteOne {
	builder := c.Delete().Where(proposalitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalItemDeleteOne{builder}
}

// Query returns a query builder for ProposalItem.
func (c *ProposalItemClient) Query() *ProposalItemQuery {
	return &ProposalItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposalItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ProposalItem entity by its id.
func (c *ProposalItemClient) Get(ctx context.Context, id uuid.UUID) (*ProposalItem, error) {
	return c.Query().Where(proposalitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalItemClient) GetX(ctx context.Context, id uuid.UUID) *ProposalItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a ProposalItem.
func (c *ProposalItemClient) QueryProposal(_m *ProposalItem) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposalitem.Table, proposalitem.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, proposalitem.ProposalTable, proposalitem.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProposalItemClient) Hooks() []Hook {
	return c.hooks.ProposalItem
}

// Interceptors returns the client interceptors.
func (c *ProposalItemClient) Interceptors() []Interceptor {
	return c.inters.ProposalItem
}

func (c *ProposalItemClient) mutate(ctx context.Context, m *ProposalItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProposalItem mutation op: %q", m.Op())
	}
}

// ProposalSolutionClient is a client for the ProposalSolution schema.
type ProposalSolutionClient struct {
	config
}

// NewProposalSolutionClient returns a client for the ProposalSolution from the given config.
func NewProposalSolutionClient(c config) *ProposalSolutionClient {
	return &ProposalSolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `proposalsolution.Hooks(f(g(h())))`.
func (c *ProposalSolutionClient) Use(hooks ...Hook) {
	c.hooks.ProposalSolution = append(c.hooks.ProposalSolution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `proposalsolution.Intercept(f(g(h())))`.
func (c *ProposalSolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProposalSolution = append(c.inters.ProposalSolution, interceptors...)
}

// Create returns a builder for creating a ProposalSolution entity.
func (c *ProposalSolutionClient) Create() *ProposalSolutionCreate {
	mutation := newProposalSolutionMutation(c.config, OpCreate)
	return &ProposalSolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProposalSolution entities.
func (c *ProposalSolutionClient) CreateBulk(builders ...*ProposalSolutionCreate) *ProposalSolutionCreateBulk {
	return &ProposalSolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProposalSolutionClient) MapCreateBulk(slice any, setFunc func(*ProposalSolutionCreate, int)) *ProposalSolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProposalSolutionCreateBulk{err: fmt.Errorf("calling to ProposalSolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProposalSolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProposalSolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProposalSolution.
func (c *ProposalSolutionClient) Update() *ProposalSolutionUpdate {
	mutation := newProposalSolutionMutation(c.config, OpUpdate)
	return &ProposalSolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProposalSolutionClient) UpdateOne(_m *ProposalSolution) *ProposalSolutionUpdateOne {
	mutation := newProposalSolutionMutation(c.config, OpUpdateOne, withProposalSolution(_m))
	return &ProposalSolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProposalSolutionClient) UpdateOneID(id uuid.UUID) *ProposalSolutionUpdateOne {
	mutation := newProposalSolutionMutation(c.config, OpUpdateOne, withProposalSolutionID(id))
	return &ProposalSolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProposalSolution.
func (c *ProposalSolutionClient) Delete() *ProposalSolutionDelete {
	mutation := newProposalSolutionMutation(c.config, OpDelete)
	return &ProposalSolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProposalSolutionClient) DeleteOne(_m *ProposalSolution) *ProposalSolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProposalSolutionClient) DeleteOneID(id uuid.UUID) *ProposalSolutionDeleteOne {
	builder := c.Delete().Where(proposalsolution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProposalSolutionDeleteOne{builder}
}

// Query returns a query builder for ProposalSolution.
func (c *ProposalSolutionClient) Query() *ProposalSolutionQuery {
	return &ProposalSolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProposalSolution},
		inters: c.Interceptors(),
	}
}

// Get returns a ProposalSolution entity by its id.
func (c *ProposalSolutionClient) Get(ctx context.Context, id uuid.UUID) (*ProposalSolution, error) {
	return c.Query().Where(proposalsolution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProposalSolutionClient) GetX(ctx context.Context, id uuid.UUID) *ProposalSolution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a ProposalSolution.
func (c *ProposalSolutionClient) QueryProposal(_m *ProposalSolution) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(proposalsolution.Table, proposalsolution.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, proposalsolution.ProposalTable, proposalsolution.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProposalSolutionClient) Hooks() []Hook {
	return c.hooks.ProposalSolution
}

// Interceptors returns the client interceptors.
func (c *ProposalSolutionClient) Interceptors() []Interceptor {
	return c.inters.ProposalSolution
}

func (c *ProposalSolutionClient) mutate(ctx context.Context, m *ProposalSolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProposalSolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProposalSolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProposalSolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProposalSolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProposalSolution mutation op: %q", m.Op())
	}
}

// RecommendedProductClient is a client for the RecommendedProduct schema.
type RecommendedProductClient struct {
	config
}

// NewRecommendedProductClient returns a client for the RecommendedProduct from the given config.
func NewRecommendedProductClient(c config) *RecommendedProductClient {
	return &RecommendedProductClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendedproduct.Hooks(f(g(h())))`.
func (c *RecommendedProductClient) Use(hooks ...Hook) {
	c.hooks.RecommendedProduct = append(c.hooks.RecommendedProduct, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendedproduct.Intercept(f(g(h())))`.
func (c *RecommendedProductClient) Intercept(interceptors ...Interceptor) {
	c.inters.RecommendedProduct = append(c.inters.RecommendedProduct, interceptors...)
}

// Create returns a builder for creating a RecommendedProduct entity.
func (c *RecommendedProductClient) Create() *RecommendedProductCreate {
	mutation := newRecommendedProductMutation(c.config, OpCreate)
	return &RecommendedProductCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RecommendedProduct entities.
func (c *RecommendedProductClient) CreateBulk(builders ...*RecommendedProductCreate) *RecommendedProductCreateBulk {
	return &RecommendedProductCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendedProductClient) MapCreateBulk(slice any, setFunc func(*RecommendedProductCreate, int)) *RecommendedProductCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendedProductCreateBulk{err: fmt.Errorf("calling to RecommendedProductClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendedProductCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendedProductCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RecommendedProduct.
func (c *RecommendedProductClient) Update() *RecommendedProductUpdate {
	mutation := newRecommendedProductMutation(c.config, OpUpdate)
	return &RecommendedProductUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendedProductClient) UpdateOne(_m *RecommendedProduct) *RecommendedProductUpdateOne {
	mutation := newRecommendedProductMutation(c.config, OpUpdateOne, withRecommendedProduct(_m))
	return &RecommendedProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendedProductClient) UpdateOneID(id uuid.UUID) *RecommendedProductUpdateOne {
	mutation := newRecommendedProductMutation(c.config, OpUpdateOne, withRecommendedProductID(id))
	return &RecommendedProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RecommendedProduct.
func (c *RecommendedProductClient) Delete() *RecommendedProductDelete {
	mutation := newRecommendedProductMutation(c.config, OpDelete)
	return &RecommendedProductDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendedProductClient) DeleteOne(_m *RecommendedProduct) *RecommendedProductDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendedProductClient) DeleteOneID(id uuid.UUID) *RecommendedProductDeleteOne {
	builder := c.Delete().Where(recommendedproduct.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendedProductDeleteOne{builder}
}

// Query returns a query builder for RecommendedProduct.
func (c *RecommendedProductClient) Query() *RecommendedProductQuery {
	return &RecommendedProductQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendedProduct},
		inters: c.Interceptors(),
	}
}

// Get returns a RecommendedProduct entity by its id.
func (c *RecommendedProductClient) Get(ctx context.Context, id uuid.UUID) (*RecommendedProduct, error) {
	return c.Query().Where(recommendedproduct.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendedProductClient) GetX(ctx context.Context, id uuid.UUID) *RecommendedProduct {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProposal queries the proposal edge of a RecommendedProduct.
func (c *RecommendedProductClient) QueryProposal(_m *RecommendedProduct) *ProposalQuery {
	query := (&ProposalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recommendedproduct.Table, recommendedproduct.FieldID, id),
			sqlgraph.To(proposal.Table, proposal.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recommendedproduct.ProposalTable, recommendedproduct.ProposalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecommendedProductClient) Hooks() []Hook {
	return c.hooks.RecommendedProduct
}

// Interceptors returns the client interceptors.
func (c *RecommendedProductClient) Interceptors() []Interceptor {
	return c.inters.RecommendedProduct
}

func (c *RecommendedProductClient) mutate(ctx context.Context, m *RecommendedProductMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendedProductCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendedProductUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendedProductUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendedProductDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RecommendedProduct mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		PaymentCondition, PipelineMetric, ProcessingLog, Proposal, ProposalItem,
		ProposalSolution, RecommendedProduct []ent.Hook
	}
	inters struct {
		PaymentCondition, PipelineMetric, ProcessingLog, Proposal, ProposalItem,
		ProposalSolution, RecommendedProduct []ent.Interceptor
	}
)
