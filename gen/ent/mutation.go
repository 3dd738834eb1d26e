// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePaymentCondition   = "PaymentCondition"
	TypePipelineMetric     = "PipelineMetric"
	TypeProcessingLog      = "ProcessingLog"
	TypeProposal           = "Proposal"
	TypeProposalItem       = "ProposalItem"
	TypeProposalSolution   = "ProposalSolution"
	TypeRecommendedProduct = "RecommendedProduct"
)

// PaymentConditionMutation represents an operation that mutates the PaymentCondition nodes in the graph.
type PaymentConditionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	description     *string
	installments    *int
	addinstallments *int
	method          *string
	clearedFields   map[string]struct{}
	proposal        *uuid.UUID
	clearedproposal bool
	done            bool
	oldValue        func(context.Context) (*PaymentCondition, error)
	predicates      []predicate.PaymentCondition
}

var _ ent.Mutation = (*PaymentConditionMutation)(nil)

// paymentconditionOption allows management of the mutation configuration using functional options.
type paymentconditionOption func(*PaymentConditionMutation)

// newPaymentConditionMutation creates new mutation for the PaymentCondition entity.
func newPaymentConditionMutation(c config, op Op, opts ...paymentconditionOption) *PaymentConditionMutation {
	m := &PaymentConditionMutation{
		config:        c,
		op:            op,
		typ:           TypePaymentCondition,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaymentConditionID sets the ID field of the mutation.
func withPaymentConditionID(id uuid.UUID) paymentconditionOption {
	return func(m *PaymentConditionMutation) {
		var (
			err   error
			once  sync.Once
			value *PaymentCondition
		)
		m.oldValue = func(ctx context.Context) (*PaymentCondition, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaymentCondition.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaymentCondition sets the old PaymentCondition of the mutation.
func withPaymentCondition(node *PaymentCondition) paymentconditionOption {
	return func(m *PaymentConditionMutation) {
		m.oldValue = func(context.Context) (*PaymentCondition, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaymentConditionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaymentConditionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaymentCondition entities.
func (m *PaymentConditionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaymentConditionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaymentConditionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaymentCondition.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *PaymentConditionMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *PaymentConditionMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the PaymentCondition entity.
// If the PaymentCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentConditionMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *PaymentConditionMutation) ResetProposalID() {
	m.proposal = nil
}

// SetDescription sets the "description" field.
func (m *PaymentConditionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PaymentConditionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the PaymentCondition entity.
// If the PaymentCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentConditionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *PaymentConditionMutation) ResetDescription() {
	m.description = nil
}

// SetInstallments sets the "installments" field.
func (m *PaymentConditionMutation) SetInstallments(i int) {
	m.installments = &i
	m.addinstallments = nil
}

// Installments returns the value of the "installments" field in the mutation.
func (m *PaymentConditionMutation) Installments() (r int, exists bool) {
	v := m.installments
	if v == nil {
		return
	}
	return *v, true
}

// OldInstallments returns the old "installments" field's value of the PaymentCondition entity.
// If the PaymentCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentConditionMutation) OldInstallments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstallments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstallments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstallments: %w", err)
	}
	return oldValue.Installments, nil
}

// AddInstallments adds i to the "installments" field.
func (m *PaymentConditionMutation) AddInstallments(i int) {
	if m.addinstallments != nil {
		*m.addinstallments += i
	} else {
		m.addinstallments = &i
	}
}

// AddedInstallments returns the value that was added to the "installments" field in this mutation.
func (m *PaymentConditionMutation) AddedInstallments() (r int, exists bool) {
	v := m.addinstallments
	if v == nil {
		return
	}
	return *v, true
}

// ResetInstallments resets all changes to the "installments" field.
func (m *PaymentConditionMutation) ResetInstallments() {
	m.installments = nil
	m.addinstallments = nil
}

// SetMethod sets the "method" field.
func (m *PaymentConditionMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *PaymentConditionMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the PaymentCondition entity.
// If the PaymentCondition object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaymentConditionMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *PaymentConditionMutation) ResetMethod() {
	m.method = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *PaymentConditionMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[paymentcondition.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *PaymentConditionMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *PaymentConditionMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *PaymentConditionMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the PaymentConditionMutation builder.
func (m *PaymentConditionMutation) Where(ps ...predicate.PaymentCondition) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaymentConditionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaymentConditionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaymentCondition, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaymentConditionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaymentConditionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaymentCondition).
func (m *PaymentConditionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaymentConditionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.proposal != nil {
		fields = append(fields, paymentcondition.FieldProposalID)
	}
	if m.description != nil {
		fields = append(fields, paymentcondition.FieldDescription)
	}
	if m.installments != nil {
		fields = append(fields, paymentcondition.FieldInstallments)
	}
	if m.method != nil {
		fields = append(fields, paymentcondition.FieldMethod)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaymentConditionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paymentcondition.FieldProposalID:
		return m.ProposalID()
	case paymentcondition.FieldDescription:
		return m.Description()
	case paymentcondition.FieldInstallments:
		return m.Installments()
	case paymentcondition.FieldMethod:
		return m.Method()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaymentConditionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paymentcondition.FieldProposalID:
		return m.OldProposalID(ctx)
	case paymentcondition.FieldDescription:
		return m.OldDescription(ctx)
	case paymentcondition.FieldInstallments:
		return m.OldInstallments(ctx)
	case paymentcondition.FieldMethod:
		return m.OldMethod(ctx)
	}
	return nil, fmt.Errorf("unknown PaymentCondition field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentConditionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paymentcondition.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case paymentcondition.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case paymentcondition.FieldInstallments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstallments(v)
		return nil
	case paymentcondition.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentCondition field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaymentConditionMutation) AddedFields() []string {
	var fields []string
	if m.addinstallments != nil {
		fields = append(fields, paymentcondition.FieldInstallments)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaymentConditionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paymentcondition.FieldInstallments:
		return m.AddedInstallments()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaymentConditionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paymentcondition.FieldInstallments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInstallments(v)
		return nil
	}
	return fmt.Errorf("unknown PaymentCondition numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaymentConditionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaymentConditionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaymentConditionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PaymentCondition nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaymentConditionMutation) ResetField(name string) error {
	switch name {
	case paymentcondition.FieldProposalID:
		m.ResetProposalID()
		return nil
	case paymentcondition.FieldDescription:
		m.ResetDescription()
		return nil
	case paymentcondition.FieldInstallments:
		m.ResetInstallments()
		return nil
	case paymentcondition.FieldMethod:
		m.ResetMethod()
		return nil
	}
	return fmt.Errorf("unknown PaymentCondition field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaymentConditionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposal != nil {
		edges = append(edges, paymentcondition.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaymentConditionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paymentcondition.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaymentConditionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaymentConditionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaymentConditionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposal {
		edges = append(edges, paymentcondition.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaymentConditionMutation) EdgeCleared(name string) bool {
	switch name {
	case paymentcondition.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaymentConditionMutation) ClearEdge(name string) error {
	switch name {
	case paymentcondition.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown PaymentCondition unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaymentConditionMutation) ResetEdge(name string) error {
	switch name {
	case paymentcondition.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown PaymentCondition edge %s", name)
}

// PipelineMetricMutation represents an operation that mutates the PipelineMetric nodes in the graph.
type PipelineMetricMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	metric_date        *time.Time
	stage              *string
	attempts           *int
	addattempts        *int
	successes          *int
	addsuccesses       *int
	errors             *int
	adderrors          *int
	avg_duration_ms    *int64
	addavg_duration_ms *int64
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*PipelineMetric, error)
	predicates         []predicate.PipelineMetric
}

var _ ent.Mutation = (*PipelineMetricMutation)(nil)

// pipelinemetricOption allows management of the mutation configuration using functional options.
type pipelinemetricOption func(*PipelineMetricMutation)

// newPipelineMetricMutation creates new mutation for the PipelineMetric entity.
func newPipelineMetricMutation(c config, op Op, opts ...pipelinemetricOption) *PipelineMetricMutation {
	m := &PipelineMetricMutation{
		config:        c,
		op:            op,
		typ:           TypePipelineMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineMetricID sets the ID field of the mutation.
func withPipelineMetricID(id uuid.UUID) pipelinemetricOption {
	return func(m *PipelineMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *PipelineMetric
		)
		m.oldValue = func(ctx context.Context) (*PipelineMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PipelineMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipelineMetric sets the old PipelineMetric of the mutation.
func withPipelineMetric(node *PipelineMetric) pipelinemetricOption {
	return func(m *PipelineMetricMutation) {
		m.oldValue = func(context.Context) (*PipelineMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PipelineMetric entities.
func (m *PipelineMetricMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMetricMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMetricMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PipelineMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetMetricDate sets the "metric_date" field.
func (m *PipelineMetricMutation) SetMetricDate(t time.Time) {
	m.metric_date = &t
}

// MetricDate returns the value of the "metric_date" field in the mutation.
func (m *PipelineMetricMutation) MetricDate() (r time.Time, exists bool) {
	v := m.metric_date
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricDate returns the old "metric_date" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldMetricDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricDate: %w", err)
	}
	return oldValue.MetricDate, nil
}

// ResetMetricDate resets all changes to the "metric_date" field.
func (m *PipelineMetricMutation) ResetMetricDate() {
	m.metric_date = nil
}

// SetStage sets the "stage" field.
func (m *PipelineMetricMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *PipelineMetricMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *PipelineMetricMutation) ResetStage() {
	m.stage = nil
}

// SetAttempts sets the "attempts" field.
func (m *PipelineMetricMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *PipelineMetricMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *PipelineMetricMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *PipelineMetricMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *PipelineMetricMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetSuccesses sets the "successes" field.
func (m *PipelineMetricMutation) SetSuccesses(i int) {
	m.successes = &i
	m.addsuccesses = nil
}

// Successes returns the value of the "successes" field in the mutation.
func (m *PipelineMetricMutation) Successes() (r int, exists bool) {
	v := m.successes
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccesses returns the old "successes" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldSuccesses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccesses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccesses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccesses: %w", err)
	}
	return oldValue.Successes, nil
}

// AddSuccesses adds i to the "successes" field.
func (m *PipelineMetricMutation) AddSuccesses(i int) {
	if m.addsuccesses != nil {
		*m.addsuccesses += i
	} else {
		m.addsuccesses = &i
	}
}

// AddedSuccesses returns the value that was added to the "successes" field in this mutation.
func (m *PipelineMetricMutation) AddedSuccesses() (r int, exists bool) {
	v := m.addsuccesses
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccesses resets all changes to the "successes" field.
func (m *PipelineMetricMutation) ResetSuccesses() {
	m.successes = nil
	m.addsuccesses = nil
}

// SetErrors sets the "errors" field.
func (m *PipelineMetricMutation) SetErrors(i int) {
	m.errors = &i
	m.adderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *PipelineMetricMutation) Errors() (r int, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldErrors(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AddErrors adds i to the "errors" field.
func (m *PipelineMetricMutation) AddErrors(i int) {
	if m.adderrors != nil {
		*m.adderrors += i
	} else {
		m.adderrors = &i
	}
}

// AddedErrors returns the value that was added to the "errors" field in this mutation.
func (m *PipelineMetricMutation) AddedErrors() (r int, exists bool) {
	v := m.adderrors
	if v == nil {
		return
	}
	return *v, true
}

// ResetErrors resets all changes to the "errors" field.
func (m *PipelineMetricMutation) ResetErrors() {
	m.errors = nil
	m.adderrors = nil
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (m *PipelineMetricMutation) SetAvgDurationMs(i int64) {
	m.avg_duration_ms = &i
	m.addavg_duration_ms = nil
}

// AvgDurationMs returns the value of the "avg_duration_ms" field in the mutation.
func (m *PipelineMetricMutation) AvgDurationMs() (r int64, exists bool) {
	v := m.avg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgDurationMs returns the old "avg_duration_ms" field's value of the PipelineMetric entity.
// If the PipelineMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMetricMutation) OldAvgDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgDurationMs: %w", err)
	}
	return oldValue.AvgDurationMs, nil
}

// AddAvgDurationMs adds i to the "avg_duration_ms" field.
func (m *PipelineMetricMutation) AddAvgDurationMs(i int64) {
	if m.addavg_duration_ms != nil {
		*m.addavg_duration_ms += i
	} else {
		m.addavg_duration_ms = &i
	}
}

// AddedAvgDurationMs returns the value that was added to the "avg_duration_ms" field in this mutation.
func (m *PipelineMetricMutation) AddedAvgDurationMs() (r int64, exists bool) {
	v := m.addavg_duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgDurationMs resets all changes to the "avg_duration_ms" field.
func (m *PipelineMetricMutation) ResetAvgDurationMs() {
	m.avg_duration_ms = nil
	m.addavg_duration_ms = nil
}

// Where appends a list predicates to the PipelineMetricMutation builder.
func (m *PipelineMetricMutation) Where(ps ...predicate.PipelineMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PipelineMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PipelineMetric).
func (m *PipelineMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMetricMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.metric_date != nil {
		fields = append(fields, pipelinemetric.FieldMetricDate)
	}
	if m.stage != nil {
		fields = append(fields, pipelinemetric.FieldStage)
	}
	if m.attempts != nil {
		fields = append(fields, pipelinemetric.FieldAttempts)
	}
	if m.successes != nil {
		fields = append(fields, pipelinemetric.FieldSuccesses)
	}
	if m.errors != nil {
		fields = append(fields, pipelinemetric.FieldErrors)
	}
	if m.avg_duration_ms != nil {
		fields = append(fields, pipelinemetric.FieldAvgDurationMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipelinemetric.FieldMetricDate:
		return m.MetricDate()
	case pipelinemetric.FieldStage:
		return m.Stage()
	case pipelinemetric.FieldAttempts:
		return m.Attempts()
	case pipelinemetric.FieldSuccesses:
		return m.Successes()
	case pipelinemetric.FieldErrors:
		return m.Errors()
	case pipelinemetric.FieldAvgDurationMs:
		return m.AvgDurationMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipelinemetric.FieldMetricDate:
		return m.OldMetricDate(ctx)
	case pipelinemetric.FieldStage:
		return m.OldStage(ctx)
	case pipelinemetric.FieldAttempts:
		return m.OldAttempts(ctx)
	case pipelinemetric.FieldSuccesses:
		return m.OldSuccesses(ctx)
	case pipelinemetric.FieldErrors:
		return m.OldErrors(ctx)
	case pipelinemetric.FieldAvgDurationMs:
		return m.OldAvgDurationMs(ctx)
	}
	return nil, fmt.Errorf("unknown PipelineMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipelinemetric.FieldMetricDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricDate(v)
		return nil
	case pipelinemetric.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case pipelinemetric.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case pipelinemetric.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccesses(v)
		return nil
	case pipelinemetric.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case pipelinemetric.FieldAvgDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMetricMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, pipelinemetric.FieldAttempts)
	}
	if m.addsuccesses != nil {
		fields = append(fields, pipelinemetric.FieldSuccesses)
	}
	if m.adderrors != nil {
		fields = append(fields, pipelinemetric.FieldErrors)
	}
	if m.addavg_duration_ms != nil {
		fields = append(fields, pipelinemetric.FieldAvgDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pipelinemetric.FieldAttempts:
		return m.AddedAttempts()
	case pipelinemetric.FieldSuccesses:
		return m.AddedSuccesses()
	case pipelinemetric.FieldErrors:
		return m.AddedErrors()
	case pipelinemetric.FieldAvgDurationMs:
		return m.AddedAvgDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pipelinemetric.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case pipelinemetric.FieldSuccesses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccesses(v)
		return nil
	case pipelinemetric.FieldErrors:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddErrors(v)
		return nil
	case pipelinemetric.FieldAvgDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown PipelineMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMetricMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMetricMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PipelineMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMetricMutation) ResetField(name string) error {
	switch name {
	case pipelinemetric.FieldMetricDate:
		m.ResetMetricDate()
		return nil
	case pipelinemetric.FieldStage:
		m.ResetStage()
		return nil
	case pipelinemetric.FieldAttempts:
		m.ResetAttempts()
		return nil
	case pipelinemetric.FieldSuccesses:
		m.ResetSuccesses()
		return nil
	case pipelinemetric.FieldErrors:
		m.ResetErrors()
		return nil
	case pipelinemetric.FieldAvgDurationMs:
		m.ResetAvgDurationMs()
		return nil
	}
	return fmt.Errorf("unknown PipelineMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMetricMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMetricMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMetricMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown PipelineMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMetricMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown PipelineMetric edge %s", name)
}

// ProcessingLogMutation represents an operation that mutates the ProcessingLog nodes in the graph.
type ProcessingLogMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	processing_id  *string
	stage          *string
	status         *string
	duration_ms    *int64
	addduration_ms *int64
	error_message  *string
	details        *json.RawMessage
	appenddetails  json.RawMessage
	user_id        *string
	file_name      *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ProcessingLog, error)
	predicates     []predicate.ProcessingLog
}

var _ ent.Mutation = (*ProcessingLogMutation)(nil)

// processinglogOption allows management of the mutation configuration using functional options.
type processinglogOption func(*ProcessingLogMutation)

// newProcessingLogMutation creates new mutation for the ProcessingLog entity.
func newProcessingLogMutation(c config, op Op, opts ...processinglogOption) *ProcessingLogMutation {
	m := &ProcessingLogMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessingLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessingLogID sets the ID field of the mutation.
func withProcessingLogID(id uuid.UUID) processinglogOption {
	return func(m *ProcessingLogMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessingLog
		)
		m.oldValue = func(ctx context.Context) (*ProcessingLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessingLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessingLog sets the old ProcessingLog of the mutation.
func withProcessingLog(node *ProcessingLog) processinglogOption {
	return func(m *ProcessingLogMutation) {
		m.oldValue = func(context.Context) (*ProcessingLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessingLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessingLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessingLog entities.
func (m *ProcessingLogMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessingLogMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessingLogMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessingLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProcessingID sets the "processing_id" field.
func (m *ProcessingLogMutation) SetProcessingID(s string) {
	m.processing_id = &s
}

// ProcessingID returns the value of the "processing_id" field in the mutation.
func (m *ProcessingLogMutation) ProcessingID() (r string, exists bool) {
	v := m.processing_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingID returns the old "processing_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldProcessingID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingID: %w", err)
	}
	return oldValue.ProcessingID, nil
}

// ResetProcessingID resets all changes to the "processing_id" field.
func (m *ProcessingLogMutation) ResetProcessingID() {
	m.processing_id = nil
}

// SetStage sets the "stage" field.
func (m *ProcessingLogMutation) SetStage(s string) {
	m.stage = &s
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ProcessingLogMutation) Stage() (r string, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ProcessingLogMutation) ResetStage() {
	m.stage = nil
}

// SetStatus sets the "status" field.
func (m *ProcessingLogMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessingLogMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ProcessingLogMutation) ResetStatus() {
	m.status = nil
}

// SetDurationMs sets the "duration_ms" field.
func (m *ProcessingLogMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *ProcessingLogMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *ProcessingLogMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *ProcessingLogMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *ProcessingLogMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ProcessingLogMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ProcessingLogMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ProcessingLogMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[processinglog.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ProcessingLogMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ProcessingLogMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, processinglog.FieldErrorMessage)
}

// SetDetails sets the "details" field.
func (m *ProcessingLogMutation) SetDetails(jm json.RawMessage) {
	m.details = &jm
	m.appenddetails = nil
}

// Details returns the value of the "details" field in the mutation.
func (m *ProcessingLogMutation) Details() (r json.RawMessage, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldDetails(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// AppendDetails adds jm to the "details" field.
func (m *ProcessingLogMutation) AppendDetails(jm json.RawMessage) {
	m.appenddetails = append(m.appenddetails, jm...)
}

// AppendedDetails returns the list of values that were appended to the "details" field in this mutation.
func (m *ProcessingLogMutation) AppendedDetails() (json.RawMessage, bool) {
	if len(m.appenddetails) == 0 {
		return nil, false
	}
	return m.appenddetails, true
}

// ClearDetails clears the value of the "details" field.
func (m *ProcessingLogMutation) ClearDetails() {
	m.details = nil
	m.appenddetails = nil
	m.clearedFields[processinglog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ProcessingLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[processinglog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ProcessingLogMutation) ResetDetails() {
	m.details = nil
	m.appenddetails = nil
	delete(m.clearedFields, processinglog.FieldDetails)
}

// SetUserID sets the "user_id" field.
func (m *ProcessingLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ProcessingLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldUserID(ctx context.Context) (v string, err error) {
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
func (m *ProcessingLogMutation) ResetUserID() {
	m.user_id = nil
}

// SetFileName sets the "file_name" field.
func (m *ProcessingLogMutation) SetFileName(s string) {
	m.file_name = &s
}

// FileName returns the value of the "file_name" field in the mutation.
func (m *ProcessingLogMutation) FileName() (r string, exists bool) {
	v := m.file_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFileName returns the old "file_name" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldFileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileName: %w", err)
	}
	return oldValue.FileName, nil
}

// ResetFileName resets all changes to the "file_name" field.
func (m *ProcessingLogMutation) ResetFileName() {
	m.file_name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessingLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessingLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessingLog entity.
// If the ProcessingLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessingLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProcessingLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ProcessingLogMutation builder.
func (m *ProcessingLogMutation) Where(ps ...predicate.ProcessingLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessingLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessingLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessingLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessingLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessingLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessingLog).
func (m *ProcessingLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessingLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.processing_id != nil {
		fields = append(fields, processinglog.FieldProcessingID)
	}
	if m.stage != nil {
		fields = append(fields, processinglog.FieldStage)
	}
	if m.status != nil {
		fields = append(fields, processinglog.FieldStatus)
	}
	if m.duration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.details != nil {
		fields = append(fields, processinglog.FieldDetails)
	}
	if m.user_id != nil {
		fields = append(fields, processinglog.FieldUserID)
	}
	if m.file_name != nil {
		fields = append(fields, processinglog.FieldFileName)
	}
	if m.created_at != nil {
		fields = append(fields, processinglog.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessingLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldProcessingID:
		return m.ProcessingID()
	case processinglog.FieldStage:
		return m.Stage()
	case processinglog.FieldStatus:
		return m.Status()
	case processinglog.FieldDurationMs:
		return m.DurationMs()
	case processinglog.FieldErrorMessage:
		return m.ErrorMessage()
	case processinglog.FieldDetails:
		return m.Details()
	case processinglog.FieldUserID:
		return m.UserID()
	case processinglog.FieldFileName:
		return m.FileName()
	case processinglog.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessingLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processinglog.FieldProcessingID:
		return m.OldProcessingID(ctx)
	case processinglog.FieldStage:
		return m.OldStage(ctx)
	case processinglog.FieldStatus:
		return m.OldStatus(ctx)
	case processinglog.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case processinglog.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case processinglog.FieldDetails:
		return m.OldDetails(ctx)
	case processinglog.FieldUserID:
		return m.OldUserID(ctx)
	case processinglog.FieldFileName:
		return m.OldFileName(ctx)
	case processinglog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessingLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldProcessingID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingID(v)
		return nil
	case processinglog.FieldStage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case processinglog.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processinglog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case processinglog.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case processinglog.FieldDetails:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case processinglog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case processinglog.FieldFileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileName(v)
		return nil
	case processinglog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessingLogMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, processinglog.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessingLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processinglog.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessingLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processinglog.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessingLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processinglog.FieldErrorMessage) {
		fields = append(fields, processinglog.FieldErrorMessage)
	}
	if m.FieldCleared(processinglog.FieldDetails) {
		fields = append(fields, processinglog.FieldDetails)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessingLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ClearField(name string) error {
	switch name {
	case processinglog.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case processinglog.FieldDetails:
		m.ClearDetails()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessingLogMutation) ResetField(name string) error {
	switch name {
	case processinglog.FieldProcessingID:
		m.ResetProcessingID()
		return nil
	case processinglog.FieldStage:
		m.ResetStage()
		return nil
	case processinglog.FieldStatus:
		m.ResetStatus()
		return nil
	case processinglog.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case processinglog.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case processinglog.FieldDetails:
		m.ResetDetails()
		return nil
	case processinglog.FieldUserID:
		m.ResetUserID()
		return nil
	case processinglog.FieldFileName:
		m.ResetFileName()
		return nil
	case processinglog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ProcessingLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessingLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessingLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessingLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessingLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessingLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessingLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessingLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessingLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessingLog edge %s", name)
}

// ProposalMutation represents an operation that mutates the Proposal nodes in the graph.
type ProposalMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	client_name                 *string
	vendor_name                 *string
	proposal_number             *string
	proposal_date               *time.Time
	subtotal                    *float64
	addsubtotal                 *float64
	total                       *float64
	addtotal                    *float64
	observations                *string
	status                      *string
	valid_until                 *time.Time
	source_asset_id             *string
	confidence                  *int
	addconfidence               *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	items                       map[uuid.UUID]struct{}
	removeditems                map[uuid.UUID]struct{}
	cleareditems                bool
	payment_conditions          map[uuid.UUID]struct{}
	removedpayment_conditions   map[uuid.UUID]struct{}
	clearedpayment_conditions   bool
	solutions                   map[uuid.UUID]struct{}
	removedsolutions            map[uuid.UUID]struct{}
	clearedsolutions            bool
	recommended_products        map[uuid.UUID]struct{}
	removedrecommended_products map[uuid.UUID]struct{}
	clearedrecommended_products bool
	done                        bool
	oldValue                    func(context.Context) (*Proposal, error)
	predicates                  []predicate.Proposal
}

var _ ent.Mutation = (*ProposalMutation)(nil)

// proposalOption allows management of the mutation configuration using functional options.
type proposalOption func(*ProposalMutation)

// newProposalMutation creates new mutation for the Proposal entity.
func newProposalMutation(c config, op Op, opts ...proposalOption) *ProposalMutation {
	m := &ProposalMutation{
		config:        c,
		op:            op,
		typ:           TypeProposal,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalID sets the ID field of the mutation.
func withProposalID(id uuid.UUID) proposalOption {
	return func(m *ProposalMutation) {
		var (
			err   error
			once  sync.Once
			value *Proposal
		)
		m.oldValue = func(ctx context.Context) (*Proposal, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Proposal.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposal sets the old Proposal of the mutation.
func withProposal(node *Proposal) proposalOption {
	return func(m *ProposalMutation) {
		m.oldValue = func(context.Context) (*Proposal, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Proposal entities.
func (m *ProposalMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Proposal.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientName sets the "client_name" field.
func (m *ProposalMutation) SetClientName(s string) {
	m.client_name = &s
}

// ClientName returns the value of the "client_name" field in the mutation.
func (m *ProposalMutation) ClientName() (r string, exists bool) {
	v := m.client_name
	if v == nil {
		return
	}
	return *v, true
}

// OldClientName returns the old "client_name" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldClientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientName: %w", err)
	}
	return oldValue.ClientName, nil
}

// ResetClientName resets all changes to the "client_name" field.
func (m *ProposalMutation) ResetClientName() {
	m.client_name = nil
}

// SetVendorName sets the "vendor_name" field.
func (m *ProposalMutation) SetVendorName(s string) {
	m.vendor_name = &s
}

// VendorName returns the value of the "vendor_name" field in the mutation.
func (m *ProposalMutation) VendorName() (r string, exists bool) {
	v := m.vendor_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVendorName returns the old "vendor_name" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldVendorName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVendorName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVendorName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVendorName: %w", err)
	}
	return oldValue.VendorName, nil
}

// ResetVendorName resets all changes to the "vendor_name" field.
func (m *ProposalMutation) ResetVendorName() {
	m.vendor_name = nil
}

// SetProposalNumber sets the "proposal_number" field.
func (m *ProposalMutation) SetProposalNumber(s string) {
	m.proposal_number = &s
}

// ProposalNumber returns the value of the "proposal_number" field in the mutation.
func (m *ProposalMutation) ProposalNumber() (r string, exists bool) {
	v := m.proposal_number
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalNumber returns the old "proposal_number" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposalNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalNumber: %w", err)
	}
	return oldValue.ProposalNumber, nil
}

// ResetProposalNumber resets all changes to the "proposal_number" field.
func (m *ProposalMutation) ResetProposalNumber() {
	m.proposal_number = nil
}

// SetProposalDate sets the "proposal_date" field.
func (m *ProposalMutation) SetProposalDate(t time.Time) {
	m.proposal_date = &t
}

// ProposalDate returns the value of the "proposal_date" field in the mutation.
func (m *ProposalMutation) ProposalDate() (r time.Time, exists bool) {
	v := m.proposal_date
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalDate returns the old "proposal_date" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldProposalDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalDate: %w", err)
	}
	return oldValue.ProposalDate, nil
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (m *ProposalMutation) ClearProposalDate() {
	m.proposal_date = nil
	m.clearedFields[proposal.FieldProposalDate] = struct{}{}
}

// ProposalDateCleared returns if the "proposal_date" field was cleared in this mutation.
func (m *ProposalMutation) ProposalDateCleared() bool {
	_, ok := m.clearedFields[proposal.FieldProposalDate]
	return ok
}

// ResetProposalDate resets all changes to the "proposal_date" field.
func (m *ProposalMutation) ResetProposalDate() {
	m.proposal_date = nil
	delete(m.clearedFields, proposal.FieldProposalDate)
}

// SetSubtotal sets the "subtotal" field.
func (m *ProposalMutation) SetSubtotal(f float64) {
	m.subtotal = &f
	m.addsubtotal = nil
}

// Subtotal returns the value of the "subtotal" field in the mutation.
func (m *ProposalMutation) Subtotal() (r float64, exists bool) {
	v := m.subtotal
	if v == nil {
		return
	}
	return *v, true
}

// OldSubtotal returns the old "subtotal" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldSubtotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubtotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubtotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubtotal: %w", err)
	}
	return oldValue.Subtotal, nil
}

// AddSubtotal adds f to the "subtotal" field.
func (m *ProposalMutation) AddSubtotal(f float64) {
	if m.addsubtotal != nil {
		*m.addsubtotal += f
	} else {
		m.addsubtotal = &f
	}
}

// AddedSubtotal returns the value that was added to the "subtotal" field in this mutation.
func (m *ProposalMutation) AddedSubtotal() (r float64, exists bool) {
	v := m.addsubtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetSubtotal resets all changes to the "subtotal" field.
func (m *ProposalMutation) ResetSubtotal() {
	m.subtotal = nil
	m.addsubtotal = nil
}

// SetTotal sets the "total" field.
func (m *ProposalMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ProposalMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ProposalMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ProposalMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ProposalMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetObservations sets the "observations" field.
func (m *ProposalMutation) SetObservations(s string) {
	m.observations = &s
}

// Observations returns the value of the "observations" field in the mutation.
func (m *ProposalMutation) Observations() (r string, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldObservations(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// ResetObservations resets all changes to the "observations" field.
func (m *ProposalMutation) ResetObservations() {
	m.observations = nil
}

// SetStatus sets the "status" field.
func (m *ProposalMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProposalMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ProposalMutation) ResetStatus() {
	m.status = nil
}

// SetValidUntil sets the "valid_until" field.
func (m *ProposalMutation) SetValidUntil(t time.Time) {
	m.valid_until = &t
}

// ValidUntil returns the value of the "valid_until" field in the mutation.
func (m *ProposalMutation) ValidUntil() (r time.Time, exists bool) {
	v := m.valid_until
	if v == nil {
		return
	}
	return *v, true
}

// OldValidUntil returns the old "valid_until" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldValidUntil(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidUntil: %w", err)
	}
	return oldValue.ValidUntil, nil
}

// ResetValidUntil resets all changes to the "valid_until" field.
func (m *ProposalMutation) ResetValidUntil() {
	m.valid_until = nil
}

// SetSourceAssetID sets the "source_asset_id" field.
func (m *ProposalMutation) SetSourceAssetID(s string) {
	m.source_asset_id = &s
}

// SourceAssetID returns the value of the "source_asset_id" field in the mutation.
func (m *ProposalMutation) SourceAssetID() (r string, exists bool) {
	v := m.source_asset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceAssetID returns the old "source_asset_id" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldSourceAssetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceAssetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceAssetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceAssetID: %w", err)
	}
	return oldValue.SourceAssetID, nil
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (m *ProposalMutation) ClearSourceAssetID() {
	m.source_asset_id = nil
	m.clearedFields[proposal.FieldSourceAssetID] = struct{}{}
}

// SourceAssetIDCleared returns if the "source_asset_id" field was cleared in this mutation.
func (m *ProposalMutation) SourceAssetIDCleared() bool {
	_, ok := m.clearedFields[proposal.FieldSourceAssetID]
	return ok
}

// ResetSourceAssetID resets all changes to the "source_asset_id" field.
func (m *ProposalMutation) ResetSourceAssetID() {
	m.source_asset_id = nil
	delete(m.clearedFields, proposal.FieldSourceAssetID)
}

// SetConfidence sets the "confidence" field.
func (m *ProposalMutation) SetConfidence(i int) {
	m.confidence = &i
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *ProposalMutation) Confidence() (r int, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldConfidence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds i to the "confidence" field.
func (m *ProposalMutation) AddConfidence(i int) {
	if m.addconfidence != nil {
		*m.addconfidence += i
	} else {
		m.addconfidence = &i
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *ProposalMutation) AddedConfidence() (r int, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *ProposalMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProposalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProposalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProposalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProposalMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProposalMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Proposal entity.
// If the Proposal object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProposalMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the ProposalItem entity by ids.
func (m *ProposalMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the ProposalItem entity.
func (m *ProposalMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the ProposalItem entity was cleared.
func (m *ProposalMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the ProposalItem entity by IDs.
func (m *ProposalMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the ProposalItem entity.
func (m *ProposalMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *ProposalMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *ProposalMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// AddPaymentConditionIDs adds the "payment_conditions" edge to the PaymentCondition entity by ids.
func (m *ProposalMutation) AddPaymentConditionIDs(ids ...uuid.UUID) {
	if m.payment_conditions == nil {
		m.payment_conditions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.payment_conditions[ids[i]] = struct{}{}
	}
}

// ClearPaymentConditions clears the "payment_conditions" edge to the PaymentCondition entity.
func (m *ProposalMutation) ClearPaymentConditions() {
	m.clearedpayment_conditions = true
}

// PaymentConditionsCleared reports if the "payment_conditions" edge to the PaymentCondition entity was cleared.
func (m *ProposalMutation) PaymentConditionsCleared() bool {
	return m.clearedpayment_conditions
}

// RemovePaymentConditionIDs removes the "payment_conditions" edge to the PaymentCondition entity by IDs.
func (m *ProposalMutation) RemovePaymentConditionIDs(ids ...uuid.UUID) {
	if m.removedpayment_conditions == nil {
		m.removedpayment_conditions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.payment_conditions, ids[i])
		m.removedpayment_conditions[ids[i]] = struct{}{}
	}
}

// RemovedPaymentConditions returns the removed IDs of the "payment_conditions" edge to the PaymentCondition entity.
func (m *ProposalMutation) RemovedPaymentConditionsIDs() (ids []uuid.UUID) {
	for id := range m.removedpayment_conditions {
		ids = append(ids, id)
	}
	return
}

// PaymentConditionsIDs returns the "payment_conditions" edge IDs in the mutation.
func (m *ProposalMutation) PaymentConditionsIDs() (ids []uuid.UUID) {
	for id := range m.payment_conditions {
		ids = append(ids, id)
	}
	return
}

// ResetPaymentConditions resets all changes to the "payment_conditions" edge.
func (m *ProposalMutation) ResetPaymentConditions() {
	m.payment_conditions = nil
	m.clearedpayment_conditions = false
	m.removedpayment_conditions = nil
}

// AddSolutionIDs adds the "solutions" edge to the ProposalSolution entity by ids.
func (m *ProposalMutation) AddSolutionIDs(ids ...uuid.UUID) {
	if m.solutions == nil {
		m.solutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.solutions[ids[i]] = struct{}{}
	}
}

// ClearSolutions clears the "solutions" edge to the ProposalSolution entity.
func (m *ProposalMutation) ClearSolutions() {
	m.clearedsolutions = true
}

// SolutionsCleared reports if the "solutions" edge to the ProposalSolution entity was cleared.
func (m *ProposalMutation) SolutionsCleared() bool {
	return m.clearedsolutions
}

// RemoveSolutionIDs removes the "solutions" edge to the ProposalSolution entity by IDs.
func (m *ProposalMutation) RemoveSolutionIDs(ids ...uuid.UUID) {
	if m.removedsolutions == nil {
		m.removedsolutions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.solutions, ids[i])
		m.removedsolutions[ids[i]] = struct{}{}
	}
}

// RemovedSolutions returns the removed IDs of the "solutions" edge to the ProposalSolution entity.
func (m *ProposalMutation) RemovedSolutionsIDs() (ids []uuid.UUID) {
	for id := range m.removedsolutions {
		ids = append(ids, id)
	}
	return
}

// SolutionsIDs returns the "solutions" edge IDs in the mutation.
func (m *ProposalMutation) SolutionsIDs() (ids []uuid.UUID) {
	for id := range m.solutions {
		ids = append(ids, id)
	}
	return
}

// ResetSolutions resets all changes to the "solutions" edge.
func (m *ProposalMutation) ResetSolutions() {
	m.solutions = nil
	m.clearedsolutions = false
	m.removedsolutions = nil
}

// AddRecommendedProductIDs adds the "recommended_products" edge to the RecommendedProduct entity by ids.
func (m *ProposalMutation) AddRecommendedProductIDs(ids ...uuid.UUID) {
	if m.recommended_products == nil {
		m.recommended_products = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.recommended_products[ids[i]] = struct{}{}
	}
}

// ClearRecommendedProducts clears the "recommended_products" edge to the RecommendedProduct entity.
func (m *ProposalMutation) ClearRecommendedProducts() {
	m.clearedrecommended_products = true
}

// RecommendedProductsCleared reports if the "recommended_products" edge to the RecommendedProduct entity was cleared.
func (m *ProposalMutation) RecommendedProductsCleared() bool {
	return m.clearedrecommended_products
}

// RemoveRecommendedProductIDs removes the "recommended_products" edge to the RecommendedProduct entity by IDs.
func (m *ProposalMutation) RemoveRecommendedProductIDs(ids ...uuid.UUID) {
	if m.removedrecommended_products == nil {
		m.removedrecommended_products = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.recommended_products, ids[i])
		m.removedrecommended_products[ids[i]] = struct{}{}
	}
}

// RemovedRecommendedProducts returns the removed IDs of the "recommended_products" edge to the RecommendedProduct entity.
func (m *ProposalMutation) RemovedRecommendedProductsIDs() (ids []uuid.UUID) {
	for id := range m.removedrecommended_products {
		ids = append(ids, id)
	}
	return
}

// RecommendedProductsIDs returns the "recommended_products" edge IDs in the mutation.
func (m *ProposalMutation) RecommendedProductsIDs() (ids []uuid.UUID) {
	for id := range m.recommended_products {
		ids = append(ids, id)
	}
	return
}

// ResetRecommendedProducts resets all changes to the "recommended_products" edge.
func (m *ProposalMutation) ResetRecommendedProducts() {
	m.recommended_products = nil
	m.clearedrecommended_products = false
	m.removedrecommended_products = nil
}

// Where appends a list predicates to the ProposalMutation builder.
func (m *ProposalMutation) Where(ps ...predicate.Proposal) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Proposal, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Proposal).
func (m *ProposalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.client_name != nil {
		fields = append(fields, proposal.FieldClientName)
	}
	if m.vendor_name != nil {
		fields = append(fields, proposal.FieldVendorName)
	}
	if m.proposal_number != nil {
		fields = append(fields, proposal.FieldProposalNumber)
	}
	if m.proposal_date != nil {
		fields = append(fields, proposal.FieldProposalDate)
	}
	if m.subtotal != nil {
		fields = append(fields, proposal.FieldSubtotal)
	}
	if m.total != nil {
		fields = append(fields, proposal.FieldTotal)
	}
	if m.observations != nil {
		fields = append(fields, proposal.FieldObservations)
	}
	if m.status != nil {
		fields = append(fields, proposal.FieldStatus)
	}
	if m.valid_until != nil {
		fields = append(fields, proposal.FieldValidUntil)
	}
	if m.source_asset_id != nil {
		fields = append(fields, proposal.FieldSourceAssetID)
	}
	if m.confidence != nil {
		fields = append(fields, proposal.FieldConfidence)
	}
	if m.created_at != nil {
		fields = append(fields, proposal.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, proposal.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldClientName:
		return m.ClientName()
	case proposal.FieldVendorName:
		return m.VendorName()
	case proposal.FieldProposalNumber:
		return m.ProposalNumber()
	case proposal.FieldProposalDate:
		return m.ProposalDate()
	case proposal.FieldSubtotal:
		return m.Subtotal()
	case proposal.FieldTotal:
		return m.Total()
	case proposal.FieldObservations:
		return m.Observations()
	case proposal.FieldStatus:
		return m.Status()
	case proposal.FieldValidUntil:
		return m.ValidUntil()
	case proposal.FieldSourceAssetID:
		return m.SourceAssetID()
	case proposal.FieldConfidence:
		return m.Confidence()
	case proposal.FieldCreatedAt:
		return m.CreatedAt()
	case proposal.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposal.FieldClientName:
		return m.OldClientName(ctx)
	case proposal.FieldVendorName:
		return m.OldVendorName(ctx)
	case proposal.FieldProposalNumber:
		return m.OldProposalNumber(ctx)
	case proposal.FieldProposalDate:
		return m.OldProposalDate(ctx)
	case proposal.FieldSubtotal:
		return m.OldSubtotal(ctx)
	case proposal.FieldTotal:
		return m.OldTotal(ctx)
	case proposal.FieldObservations:
		return m.OldObservations(ctx)
	case proposal.FieldStatus:
		return m.OldStatus(ctx)
	case proposal.FieldValidUntil:
		return m.OldValidUntil(ctx)
	case proposal.FieldSourceAssetID:
		return m.OldSourceAssetID(ctx)
	case proposal.FieldConfidence:
		return m.OldConfidence(ctx)
	case proposal.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case proposal.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Proposal field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldClientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientName(v)
		return nil
	case proposal.FieldVendorName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVendorName(v)
		return nil
	case proposal.FieldProposalNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalNumber(v)
		return nil
	case proposal.FieldProposalDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalDate(v)
		return nil
	case proposal.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubtotal(v)
		return nil
	case proposal.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case proposal.FieldObservations:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case proposal.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case proposal.FieldValidUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidUntil(v)
		return nil
	case proposal.FieldSourceAssetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceAssetID(v)
		return nil
	case proposal.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case proposal.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case proposal.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalMutation) AddedFields() []string {
	var fields []string
	if m.addsubtotal != nil {
		fields = append(fields, proposal.FieldSubtotal)
	}
	if m.addtotal != nil {
		fields = append(fields, proposal.FieldTotal)
	}
	if m.addconfidence != nil {
		fields = append(fields, proposal.FieldConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proposal.FieldSubtotal:
		return m.AddedSubtotal()
	case proposal.FieldTotal:
		return m.AddedTotal()
	case proposal.FieldConfidence:
		return m.AddedConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proposal.FieldSubtotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSubtotal(v)
		return nil
	case proposal.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case proposal.FieldConfidence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Proposal numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(proposal.FieldProposalDate) {
		fields = append(fields, proposal.FieldProposalDate)
	}
	if m.FieldCleared(proposal.FieldSourceAssetID) {
		fields = append(fields, proposal.FieldSourceAssetID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalMutation) ClearField(name string) error {
	switch name {
	case proposal.FieldProposalDate:
		m.ClearProposalDate()
		return nil
	case proposal.FieldSourceAssetID:
		m.ClearSourceAssetID()
		return nil
	}
	return fmt.Errorf("unknown Proposal nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalMutation) ResetField(name string) error {
	switch name {
	case proposal.FieldClientName:
		m.ResetClientName()
		return nil
	case proposal.FieldVendorName:
		m.ResetVendorName()
		return nil
	case proposal.FieldProposalNumber:
		m.ResetProposalNumber()
		return nil
	case proposal.FieldProposalDate:
		m.ResetProposalDate()
		return nil
	case proposal.FieldSubtotal:
		m.ResetSubtotal()
		return nil
	case proposal.FieldTotal:
		m.ResetTotal()
		return nil
	case proposal.FieldObservations:
		m.ResetObservations()
		return nil
	case proposal.FieldStatus:
		m.ResetStatus()
		return nil
	case proposal.FieldValidUntil:
		m.ResetValidUntil()
		return nil
	case proposal.FieldSourceAssetID:
		m.ResetSourceAssetID()
		return nil
	case proposal.FieldConfidence:
		m.ResetConfidence()
		return nil
	case proposal.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case proposal.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Proposal field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.items != nil {
		edges = append(edges, proposal.EdgeItems)
	}
	if m.payment_conditions != nil {
		edges = append(edges, proposal.EdgePaymentConditions)
	}
	if m.solutions != nil {
		edges = append(edges, proposal.EdgeSolutions)
	}
	if m.recommended_products != nil {
		edges = append(edges, proposal.EdgeRecommendedProducts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgePaymentConditions:
		ids := make([]ent.Value, 0, len(m.payment_conditions))
		for id := range m.payment_conditions {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.solutions))
		for id := range m.solutions {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeRecommendedProducts:
		ids := make([]ent.Value, 0, len(m.recommended_products))
		for id := range m.recommended_products {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeditems != nil {
		edges = append(edges, proposal.EdgeItems)
	}
	if m.removedpayment_conditions != nil {
		edges = append(edges, proposal.EdgePaymentConditions)
	}
	if m.removedsolutions != nil {
		edges = append(edges, proposal.EdgeSolutions)
	}
	if m.removedrecommended_products != nil {
		edges = append(edges, proposal.EdgeRecommendedProducts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case proposal.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgePaymentConditions:
		ids := make([]ent.Value, 0, len(m.removedpayment_conditions))
		for id := range m.removedpayment_conditions {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeSolutions:
		ids := make([]ent.Value, 0, len(m.removedsolutions))
		for id := range m.removedsolutions {
			ids = append(ids, id)
		}
		return ids
	case proposal.EdgeRecommendedProducts:
		ids := make([]ent.Value, 0, len(m.removedrecommended_products))
		for id := range m.removedrecommended_products {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareditems {
		edges = append(edges, proposal.EdgeItems)
	}
	if m.clearedpayment_conditions {
		edges = append(edges, proposal.EdgePaymentConditions)
	}
	if m.clearedsolutions {
		edges = append(edges, proposal.EdgeSolutions)
	}
	if m.clearedrecommended_products {
		edges = append(edges, proposal.EdgeRecommendedProducts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalMutation) EdgeCleared(name string) bool {
	switch name {
	case proposal.EdgeItems:
		return m.cleareditems
	case proposal.EdgePaymentConditions:
		return m.clearedpayment_conditions
	case proposal.EdgeSolutions:
		return m.clearedsolutions
	case proposal.EdgeRecommendedProducts:
		return m.clearedrecommended_products
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Proposal unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalMutation) ResetEdge(name string) error {
	switch name {
	case proposal.EdgeItems:
		m.ResetItems()
		return nil
	case proposal.EdgePaymentConditions:
		m.ResetPaymentConditions()
		return nil
	case proposal.EdgeSolutions:
		m.ResetSolutions()
		return nil
	case proposal.EdgeRecommendedProducts:
		m.ResetRecommendedProducts()
		return nil
	}
	return fmt.Errorf("unknown Proposal edge %s", name)
}

// ProposalItemMutation represents an operation that mutates the ProposalItem nodes in the graph.
type ProposalItemMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	position        *int
	addposition     *int
	description     *string
	quantity        *float64
	addquantity     *float64
	unit            *string
	unit_price      *float64
	addunit_price   *float64
	total           *float64
	addtotal        *float64
	clearedFields   map[string]struct{}
	proposal        *uuid.UUID
	clearedproposal bool
	done            bool
	oldValue        func(context.Context) (*ProposalItem, error)
	predicates      []predicate.ProposalItem
}

var _ ent.Mutation = (*ProposalItemMutation)(nil)

// proposalitemOption allows management of the mutation configuration using functional options.
type proposalitemOption func(*ProposalItemMutation)

// newProposalItemMutation creates new mutation for the ProposalItem entity.
func newProposalItemMutation(c config, op Op, opts ...proposalitemOption) *ProposalItemMutation {
	m := &ProposalItemMutation{
		config:        c,
		op:            op,
		typ:           TypeProposalItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalItemID sets the ID field of the mutation.
func withProposalItemID(id uuid.UUID) proposalitemOption {
	return func(m *ProposalItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ProposalItem
		)
		m.oldValue = func(ctx context.Context) (*ProposalItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProposalItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposalItem sets the old ProposalItem of the mutation.
func withProposalItem(node *ProposalItem) proposalitemOption {
	return func(m *ProposalItemMutation) {
		m.oldValue = func(context.Context) (*ProposalItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProposalItem entities.
func (m *ProposalItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProposalItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *ProposalItemMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *ProposalItemMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *ProposalItemMutation) ResetProposalID() {
	m.proposal = nil
}

// SetPosition sets the "position" field.
func (m *ProposalItemMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *ProposalItemMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *ProposalItemMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *ProposalItemMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *ProposalItemMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetDescription sets the "description" field.
func (m *ProposalItemMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProposalItemMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ProposalItemMutation) ResetDescription() {
	m.description = nil
}

// SetQuantity sets the "quantity" field.
func (m *ProposalItemMutation) SetQuantity(f float64) {
	m.quantity = &f
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *ProposalItemMutation) Quantity() (r float64, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldQuantity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds f to the "quantity" field.
func (m *ProposalItemMutation) AddQuantity(f float64) {
	if m.addquantity != nil {
		*m.addquantity += f
	} else {
		m.addquantity = &f
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *ProposalItemMutation) AddedQuantity() (r float64, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *ProposalItemMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetUnit sets the "unit" field.
func (m *ProposalItemMutation) SetUnit(s string) {
	m.unit = &s
}

// Unit returns the value of the "unit" field in the mutation.
func (m *ProposalItemMutation) Unit() (r string, exists bool) {
	v := m.unit
	if v == nil {
		return
	}
	return *v, true
}

// OldUnit returns the old "unit" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnit: %w", err)
	}
	return oldValue.Unit, nil
}

// ResetUnit resets all changes to the "unit" field.
func (m *ProposalItemMutation) ResetUnit() {
	m.unit = nil
}

// SetUnitPrice sets the "unit_price" field.
func (m *ProposalItemMutation) SetUnitPrice(f float64) {
	m.unit_price = &f
	m.addunit_price = nil
}

// UnitPrice returns the value of the "unit_price" field in the mutation.
func (m *ProposalItemMutation) UnitPrice() (r float64, exists bool) {
	v := m.unit_price
	if v == nil {
		return
	}
	return *v, true
}

// OldUnitPrice returns the old "unit_price" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldUnitPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUnitPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUnitPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUnitPrice: %w", err)
	}
	return oldValue.UnitPrice, nil
}

// AddUnitPrice adds f to the "unit_price" field.
func (m *ProposalItemMutation) AddUnitPrice(f float64) {
	if m.addunit_price != nil {
		*m.addunit_price += f
	} else {
		m.addunit_price = &f
	}
}

// AddedUnitPrice returns the value that was added to the "unit_price" field in this mutation.
func (m *ProposalItemMutation) AddedUnitPrice() (r float64, exists bool) {
	v := m.addunit_price
	if v == nil {
		return
	}
	return *v, true
}

// ResetUnitPrice resets all changes to the "unit_price" field.
func (m *ProposalItemMutation) ResetUnitPrice() {
	m.unit_price = nil
	m.addunit_price = nil
}

// SetTotal sets the "total" field.
func (m *ProposalItemMutation) SetTotal(f float64) {
	m.total = &f
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ProposalItemMutation) Total() (r float64, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ProposalItem entity.
// If the ProposalItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalItemMutation) OldTotal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds f to the "total" field.
func (m *ProposalItemMutation) AddTotal(f float64) {
	if m.addtotal != nil {
		*m.addtotal += f
	} else {
		m.addtotal = &f
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ProposalItemMutation) AddedTotal() (r float64, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ProposalItemMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *ProposalItemMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[proposalitem.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *ProposalItemMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *ProposalItemMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *ProposalItemMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the ProposalItemMutation builder.
func (m *ProposalItemMutation) Where(ps ...predicate.ProposalItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProposalItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProposalItem).
func (m *ProposalItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalItemMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.proposal != nil {
		fields = append(fields, proposalitem.FieldProposalID)
	}
	if m.position != nil {
		fields = append(fields, proposalitem.FieldPosition)
	}
	if m.description != nil {
		fields = append(fields, proposalitem.FieldDescription)
	}
	if m.quantity != nil {
		fields = append(fields, proposalitem.FieldQuantity)
	}
	if m.unit != nil {
		fields = append(fields, proposalitem.FieldUnit)
	}
	if m.unit_price != nil {
		fields = append(fields, proposalitem.FieldUnitPrice)
	}
	if m.total != nil {
		fields = append(fields, proposalitem.FieldTotal)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposalitem.FieldProposalID:
		return m.ProposalID()
	case proposalitem.FieldPosition:
		return m.Position()
	case proposalitem.FieldDescription:
		return m.Description()
	case proposalitem.FieldQuantity:
		return m.Quantity()
	case proposalitem.FieldUnit:
		return m.Unit()
	case proposalitem.FieldUnitPrice:
		return m.UnitPrice()
	case proposalitem.FieldTotal:
		return m.Total()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposalitem.FieldProposalID:
		return m.OldProposalID(ctx)
	case proposalitem.FieldPosition:
		return m.OldPosition(ctx)
	case proposalitem.FieldDescription:
		return m.OldDescription(ctx)
	case proposalitem.FieldQuantity:
		return m.OldQuantity(ctx)
	case proposalitem.FieldUnit:
		return m.OldUnit(ctx)
	case proposalitem.FieldUnitPrice:
		return m.OldUnitPrice(ctx)
	case proposalitem.FieldTotal:
		return m.OldTotal(ctx)
	}
	return nil, fmt.Errorf("unknown ProposalItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposalitem.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case proposalitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case proposalitem.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case proposalitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case proposalitem.FieldUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnit(v)
		return nil
	case proposalitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUnitPrice(v)
		return nil
	case proposalitem.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	}
	return fmt.Errorf("unknown ProposalItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalItemMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, proposalitem.FieldPosition)
	}
	if m.addquantity != nil {
		fields = append(fields, proposalitem.FieldQuantity)
	}
	if m.addunit_price != nil {
		fields = append(fields, proposalitem.FieldUnitPrice)
	}
	if m.addtotal != nil {
		fields = append(fields, proposalitem.FieldTotal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case proposalitem.FieldPosition:
		return m.AddedPosition()
	case proposalitem.FieldQuantity:
		return m.AddedQuantity()
	case proposalitem.FieldUnitPrice:
		return m.AddedUnitPrice()
	case proposalitem.FieldTotal:
		return m.AddedTotal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case proposalitem.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	case proposalitem.FieldQuantity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case proposalitem.FieldUnitPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUnitPrice(v)
		return nil
	case proposalitem.FieldTotal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	}
	return fmt.Errorf("unknown ProposalItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalItemMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalItemMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProposalItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalItemMutation) ResetField(name string) error {
	switch name {
	case proposalitem.FieldProposalID:
		m.ResetProposalID()
		return nil
	case proposalitem.FieldPosition:
		m.ResetPosition()
		return nil
	case proposalitem.FieldDescription:
		m.ResetDescription()
		return nil
	case proposalitem.FieldQuantity:
		m.ResetQuantity()
		return nil
	case proposalitem.FieldUnit:
		m.ResetUnit()
		return nil
	case proposalitem.FieldUnitPrice:
		m.ResetUnitPrice()
		return nil
	case proposalitem.FieldTotal:
		m.ResetTotal()
		return nil
	}
	return fmt.Errorf("unknown ProposalItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposal != nil {
		edges = append(edges, proposalitem.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposalitem.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposal {
		edges = append(edges, proposalitem.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalItemMutation) EdgeCleared(name string) bool {
	switch name {
	case proposalitem.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalItemMutation) ClearEdge(name string) error {
	switch name {
	case proposalitem.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown ProposalItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalItemMutation) ResetEdge(name string) error {
	switch name {
	case proposalitem.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown ProposalItem edge %s", name)
}

// ProposalSolutionMutation represents an operation that mutates the ProposalSolution nodes in the graph.
type ProposalSolutionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	description     *string
	clearedFields   map[string]struct{}
	proposal        *uuid.UUID
	clearedproposal bool
	done            bool
	oldValue        func(context.Context) (*ProposalSolution, error)
	predicates      []predicate.ProposalSolution
}

var _ ent.Mutation = (*ProposalSolutionMutation)(nil)

// proposalsolutionOption allows management of the mutation configuration using functional options.
type proposalsolutionOption func(*ProposalSolutionMutation)

// newProposalSolutionMutation creates new mutation for the ProposalSolution entity.
func newProposalSolutionMutation(c config, op Op, opts ...proposalsolutionOption) *ProposalSolutionMutation {
	m := &ProposalSolutionMutation{
		config:        c,
		op:            op,
		typ:           TypeProposalSolution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProposalSolutionID sets the ID field of the mutation.
func withProposalSolutionID(id uuid.UUID) proposalsolutionOption {
	return func(m *ProposalSolutionMutation) {
		var (
			err   error
			once  sync.Once
			value *ProposalSolution
		)
		m.oldValue = func(ctx context.Context) (*ProposalSolution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProposalSolution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProposalSolution sets the old ProposalSolution of the mutation.
func withProposalSolution(node *ProposalSolution) proposalsolutionOption {
	return func(m *ProposalSolutionMutation) {
		m.oldValue = func(context.Context) (*ProposalSolution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProposalSolutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProposalSolutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProposalSolution entities.
func (m *ProposalSolutionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProposalSolutionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProposalSolutionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProposalSolution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *ProposalSolutionMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *ProposalSolutionMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the ProposalSolution entity.
// If the ProposalSolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalSolutionMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *ProposalSolutionMutation) ResetProposalID() {
	m.proposal = nil
}

// SetName sets the "name" field.
func (m *ProposalSolutionMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProposalSolutionMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ProposalSolution entity.
// If the ProposalSolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalSolutionMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProposalSolutionMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ProposalSolutionMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ProposalSolutionMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ProposalSolution entity.
// If the ProposalSolution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProposalSolutionMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ProposalSolutionMutation) ResetDescription() {
	m.description = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *ProposalSolutionMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[proposalsolution.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *ProposalSolutionMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *ProposalSolutionMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *ProposalSolutionMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the ProposalSolutionMutation builder.
func (m *ProposalSolutionMutation) Where(ps ...predicate.ProposalSolution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProposalSolutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProposalSolutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProposalSolution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProposalSolutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProposalSolutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProposalSolution).
func (m *ProposalSolutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProposalSolutionMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.proposal != nil {
		fields = append(fields, proposalsolution.FieldProposalID)
	}
	if m.name != nil {
		fields = append(fields, proposalsolution.FieldName)
	}
	if m.description != nil {
		fields = append(fields, proposalsolution.FieldDescription)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProposalSolutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case proposalsolution.FieldProposalID:
		return m.ProposalID()
	case proposalsolution.FieldName:
		return m.Name()
	case proposalsolution.FieldDescription:
		return m.Description()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProposalSolutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case proposalsolution.FieldProposalID:
		return m.OldProposalID(ctx)
	case proposalsolution.FieldName:
		return m.OldName(ctx)
	case proposalsolution.FieldDescription:
		return m.OldDescription(ctx)
	}
	return nil, fmt.Errorf("unknown ProposalSolution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalSolutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case proposalsolution.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case proposalsolution.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case proposalsolution.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	}
	return fmt.Errorf("unknown ProposalSolution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProposalSolutionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProposalSolutionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProposalSolutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ProposalSolution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProposalSolutionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProposalSolutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProposalSolutionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ProposalSolution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProposalSolutionMutation) ResetField(name string) error {
	switch name {
	case proposalsolution.FieldProposalID:
		m.ResetProposalID()
		return nil
	case proposalsolution.FieldName:
		m.ResetName()
		return nil
	case proposalsolution.FieldDescription:
		m.ResetDescription()
		return nil
	}
	return fmt.Errorf("unknown ProposalSolution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProposalSolutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposal != nil {
		edges = append(edges, proposalsolution.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProposalSolutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case proposalsolution.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProposalSolutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProposalSolutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProposalSolutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposal {
		edges = append(edges, proposalsolution.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProposalSolutionMutation) EdgeCleared(name string) bool {
	switch name {
	case proposalsolution.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProposalSolutionMutation) ClearEdge(name string) error {
	switch name {
	case proposalsolution.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown ProposalSolution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProposalSolutionMutation) ResetEdge(name string) error {
	switch name {
	case proposalsolution.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown ProposalSolution edge %s", name)
}

// RecommendedProductMutation represents an operation that mutates the RecommendedProduct nodes in the graph.
type RecommendedProductMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	reason          *string
	clearedFields   map[string]struct{}
	proposal        *uuid.UUID
	clearedproposal bool
	done            bool
	oldValue        func(context.Context) (*RecommendedProduct, error)
	predicates      []predicate.RecommendedProduct
}

var _ ent.Mutation = (*RecommendedProductMutation)(nil)

// recommendedproductOption allows management of the mutation configuration using functional options.
type recommendedproductOption func(*RecommendedProductMutation)

// newRecommendedProductMutation creates new mutation for the RecommendedProduct entity.
func newRecommendedProductMutation(c config, op Op, opts ...recommendedproductOption) *RecommendedProductMutation {
	m := &RecommendedProductMutation{
		config:        c,
		op:            op,
		typ:           TypeRecommendedProduct,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRecommendedProductID sets the ID field of the mutation.
func withRecommendedProductID(id uuid.UUID) recommendedproductOption {
	return func(m *RecommendedProductMutation) {
		var (
			err   error
			once  sync.Once
			value *RecommendedProduct
		)
		m.oldValue = func(ctx context.Context) (*RecommendedProduct, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RecommendedProduct.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRecommendedProduct sets the old RecommendedProduct of the mutation.
func withRecommendedProduct(node *RecommendedProduct) recommendedproductOption {
	return func(m *RecommendedProductMutation) {
		m.oldValue = func(context.Context) (*RecommendedProduct, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RecommendedProductMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RecommendedProductMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RecommendedProduct entities.
func (m *RecommendedProductMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RecommendedProductMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RecommendedProductMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RecommendedProduct.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProposalID sets the "proposal_id" field.
func (m *RecommendedProductMutation) SetProposalID(u uuid.UUID) {
	m.proposal = &u
}

// ProposalID returns the value of the "proposal_id" field in the mutation.
func (m *RecommendedProductMutation) ProposalID() (r uuid.UUID, exists bool) {
	v := m.proposal
	if v == nil {
		return
	}
	return *v, true
}

// OldProposalID returns the old "proposal_id" field's value of the RecommendedProduct entity.
// If the RecommendedProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendedProductMutation) OldProposalID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProposalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProposalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProposalID: %w", err)
	}
	return oldValue.ProposalID, nil
}

// ResetProposalID resets all changes to the "proposal_id" field.
func (m *RecommendedProductMutation) ResetProposalID() {
	m.proposal = nil
}

// SetName sets the "name" field.
func (m *RecommendedProductMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RecommendedProductMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the RecommendedProduct entity.
// If the RecommendedProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendedProductMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RecommendedProductMutation) ResetName() {
	m.name = nil
}

// SetReason sets the "reason" field.
func (m *RecommendedProductMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *RecommendedProductMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the RecommendedProduct entity.
// If the RecommendedProduct object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RecommendedProductMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *RecommendedProductMutation) ResetReason() {
	m.reason = nil
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (m *RecommendedProductMutation) ClearProposal() {
	m.clearedproposal = true
	m.clearedFields[recommendedproduct.FieldProposalID] = struct{}{}
}

// ProposalCleared reports if the "proposal" edge to the Proposal entity was cleared.
func (m *RecommendedProductMutation) ProposalCleared() bool {
	return m.clearedproposal
}

// ProposalIDs returns the "proposal" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProposalID instead. It exists only for internal usage by the builders.
func (m *RecommendedProductMutation) ProposalIDs() (ids []uuid.UUID) {
	if id := m.proposal; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProposal resets all changes to the "proposal" edge.
func (m *RecommendedProductMutation) ResetProposal() {
	m.proposal = nil
	m.clearedproposal = false
}

// Where appends a list predicates to the RecommendedProductMutation builder.
func (m *RecommendedProductMutation) Where(ps ...predicate.RecommendedProduct) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RecommendedProductMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RecommendedProductMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RecommendedProduct, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RecommendedProductMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RecommendedProductMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RecommendedProduct).
func (m *RecommendedProductMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RecommendedProductMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.proposal != nil {
		fields = append(fields, recommendedproduct.FieldProposalID)
	}
	if m.name != nil {
		fields = append(fields, recommendedproduct.FieldName)
	}
	if m.reason != nil {
		fields = append(fields, recommendedproduct.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RecommendedProductMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case recommendedproduct.FieldProposalID:
		return m.ProposalID()
	case recommendedproduct.FieldName:
		return m.Name()
	case recommendedproduct.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RecommendedProductMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case recommendedproduct.FieldProposalID:
		return m.OldProposalID(ctx)
	case recommendedproduct.FieldName:
		return m.OldName(ctx)
	case recommendedproduct.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown RecommendedProduct field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendedProductMutation) SetField(name string, value ent.Value) error {
	switch name {
	case recommendedproduct.FieldProposalID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProposalID(v)
		return nil
	case recommendedproduct.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case recommendedproduct.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown RecommendedProduct field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RecommendedProductMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RecommendedProductMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RecommendedProductMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RecommendedProduct numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RecommendedProductMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RecommendedProductMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RecommendedProductMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RecommendedProduct nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RecommendedProductMutation) ResetField(name string) error {
	switch name {
	case recommendedproduct.FieldProposalID:
		m.ResetProposalID()
		return nil
	case recommendedproduct.FieldName:
		m.ResetName()
		return nil
	case recommendedproduct.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown RecommendedProduct field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RecommendedProductMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.proposal != nil {
		edges = append(edges, recommendedproduct.EdgeProposal)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RecommendedProductMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case recommendedproduct.EdgeProposal:
		if id := m.proposal; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RecommendedProductMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RecommendedProductMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RecommendedProductMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedproposal {
		edges = append(edges, recommendedproduct.EdgeProposal)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RecommendedProductMutation) EdgeCleared(name string) bool {
	switch name {
	case recommendedproduct.EdgeProposal:
		return m.clearedproposal
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RecommendedProductMutation) ClearEdge(name string) error {
	switch name {
	case recommendedproduct.EdgeProposal:
		m.ClearProposal()
		return nil
	}
	return fmt.Errorf("unknown RecommendedProduct unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RecommendedProductMutation) ResetEdge(name string) error {
	switch name {
	case recommendedproduct.EdgeProposal:
		m.ResetProposal()
		return nil
	}
	return fmt.Errorf("unknown RecommendedProduct edge %s", name)
}
