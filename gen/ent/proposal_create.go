// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

// ProposalCreate is the builder for creating a Proposal entity.
type ProposalCreate struct {
	config
	mutation *ProposalMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetClientName sets the "client_name" field.
func (_c *ProposalCreate) SetClientName(v string) *ProposalCreate {
	_c.mutation.SetClientName(v)
	return _c
}

// SetVendorName sets the "vendor_name" field.
func (_c *ProposalCreate) SetVendorName(v string) *ProposalCreate {
	_c.mutation.SetVendorName(v)
	return _c
}

// SetProposalNumber sets the "proposal_number" field.
func (_c *ProposalCreate) SetProposalNumber(v string) *ProposalCreate {
	_c.mutation.SetProposalNumber(v)
	return _c
}

// SetProposalDate sets the "proposal_date" field.
func (_c *ProposalCreate) SetProposalDate(v time.Time) *ProposalCreate {
	_c.mutation.SetProposalDate(v)
	return _c
}

// SetNillableProposalDate sets the "proposal_date" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableProposalDate(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetProposalDate(*v)
	}
	return _c
}

// SetSubtotal sets the "subtotal" field.
func (_c *ProposalCreate) SetSubtotal(v float64) *ProposalCreate {
	_c.mutation.SetSubtotal(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ProposalCreate) SetTotal(v float64) *ProposalCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetObservations sets the "observations" field.
func (_c *ProposalCreate) SetObservations(v string) *ProposalCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableObservations(v *string) *ProposalCreate {
	if v != nil {
		_c.SetObservations(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProposalCreate) SetStatus(v string) *ProposalCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableStatus(v *string) *ProposalCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetValidUntil sets the "valid_until" field.
func (_c *ProposalCreate) SetValidUntil(v time.Time) *ProposalCreate {
	_c.mutation.SetValidUntil(v)
	return _c
}

// SetSourceAssetID sets the "source_asset_id" field.
func (_c *ProposalCreate) SetSourceAssetID(v string) *ProposalCreate {
	_c.mutation.SetSourceAssetID(v)
	return _c
}

// SetNillableSourceAssetID sets the "source_asset_id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableSourceAssetID(v *string) *ProposalCreate {
	if v != nil {
		_c.SetSourceAssetID(*v)
	}
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *ProposalCreate) SetConfidence(v int) *ProposalCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableConfidence(v *int) *ProposalCreate {
	if v != nil {
		_c.SetConfidence(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProposalCreate) SetCreatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableCreatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProposalCreate) SetUpdatedAt(v time.Time) *ProposalCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableUpdatedAt(v *time.Time) *ProposalCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalCreate) SetID(v uuid.UUID) *ProposalCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProposalCreate) SetNillableID(v *uuid.UUID) *ProposalCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the ProposalItem entity by IDs.
func (_c *ProposalCreate) AddItemIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the ProposalItem entity.
func (_c *ProposalCreate) AddItems(v ...*ProposalItem) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddPaymentConditionIDs adds the "payment_conditions" edge to the PaymentCondition entity by IDs.
func (_c *ProposalCreate) AddPaymentConditionIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddPaymentConditionIDs(ids...)
	return _c
}

// AddPaymentConditions adds the "payment_conditions" edges to the PaymentCondition entity.
func (_c *ProposalCreate) AddPaymentConditions(v ...*PaymentCondition) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPaymentConditionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the ProposalSolution entity by IDs.
func (_c *ProposalCreate) AddSolutionIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddSolutionIDs(ids...)
	return _c
}

// AddSolutions adds the "solutions" edges to the ProposalSolution entity.
func (_c *ProposalCreate) AddSolutions(v ...*ProposalSolution) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSolutionIDs(ids...)
}

// AddRecommendedProductIDs adds the "recommended_products" edge to the RecommendedProduct entity by IDs.
func (_c *ProposalCreate) AddRecommendedProductIDs(ids ...uuid.UUID) *ProposalCreate {
	_c.mutation.AddRecommendedProductIDs(ids...)
	return _c
}

// AddRecommendedProducts adds the "recommended_products" edges to the RecommendedProduct entity.
func (_c *ProposalCreate) AddRecommendedProducts(v ...*RecommendedProduct) *ProposalCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecommendedProductIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_c *ProposalCreate) Mutation() *ProposalMutation {
	return _c.mutation
}

// Save creates the Proposal in the database.
func (_c *ProposalCreate) Save(ctx context.Context) (*Proposal, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalCreate) SaveX(ctx context.Context) *Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalCreate) defaults() {
	if _, ok := _c.mutation.Observations(); !ok {
		v := proposal.DefaultObservations
		_c.mutation.SetObservations(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := proposal.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		v := proposal.DefaultConfidence
		_c.mutation.SetConfidence(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := proposal.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := proposal.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proposal.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalCreate) check() error {
	if _, ok := _c.mutation.ClientName(); !ok {
		return &ValidationError{Name: "client_name", err: errors.New(`ent: missing required field "Proposal.client_name"`)}
	}
	if _, ok := _c.mutation.VendorName(); !ok {
		return &ValidationError{Name: "vendor_name", err: errors.New(`ent: missing required field "Proposal.vendor_name"`)}
	}
	if _, ok := _c.mutation.ProposalNumber(); !ok {
		return &ValidationError{Name: "proposal_number", err: errors.New(`ent: missing required field "Proposal.proposal_number"`)}
	}
	if _, ok := _c.mutation.Subtotal(); !ok {
		return &ValidationError{Name: "subtotal", err: errors.New(`ent: missing required field "Proposal.subtotal"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "Proposal.total"`)}
	}
	if _, ok := _c.mutation.Observations(); !ok {
		return &ValidationError{Name: "observations", err: errors.New(`ent: missing required field "Proposal.observations"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Proposal.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ValidUntil(); !ok {
		return &ValidationError{Name: "valid_until", err: errors.New(`ent: missing required field "Proposal.valid_until"`)}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "Proposal.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := proposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Proposal.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Proposal.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Proposal.updated_at"`)}
	}
	return nil
}

func (_c *ProposalCreate) sqlSave(ctx context.Context) (*Proposal, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProposalCreate) createSpec() (*Proposal, *sqlgraph.CreateSpec) {
	var (
		_node = &Proposal{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposal.Table, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
		_node.ClientName = value
	}
	if value, ok := _c.mutation.VendorName(); ok {
		_spec.SetField(proposal.FieldVendorName, field.TypeString, value)
		_node.VendorName = value
	}
	if value, ok := _c.mutation.ProposalNumber(); ok {
		_spec.SetField(proposal.FieldProposalNumber, field.TypeString, value)
		_node.ProposalNumber = value
	}
	if value, ok := _c.mutation.ProposalDate(); ok {
		_spec.SetField(proposal.FieldProposalDate, field.TypeTime, value)
		_node.ProposalDate = &value
	}
	if value, ok := _c.mutation.Subtotal(); ok {
		_spec.SetField(proposal.FieldSubtotal, field.TypeFloat64, value)
		_node.Subtotal = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(proposal.FieldObservations, field.TypeString, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ValidUntil(); ok {
		_spec.SetField(proposal.FieldValidUntil, field.TypeTime, value)
		_node.ValidUntil = value
	}
	if value, ok := _c.mutation.SourceAssetID(); ok {
		_spec.SetField(proposal.FieldSourceAssetID, field.TypeString, value)
		_node.SourceAssetID = &value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(proposal.FieldConfidence, field.TypeInt, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.ItemsTable,
			Columns: []string{proposal.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposalitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PaymentConditionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.PaymentConditionsTable,
			Columns: []string{proposal.PaymentConditionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paymentcondition.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SolutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.SolutionsTable,
			Columns: []string{proposal.SolutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposalsolution.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecommendedProductsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   proposal.RecommendedProductsTable,
			Columns: []string{proposal.RecommendedProductsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendedproduct.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.Create().
//		SetClientName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetClientName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertOne {
	_c.conflict = opts
	return &ProposalUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreate) OnConflictColumns(columns ...string) *ProposalUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertOne{
		create: _c,
	}
}

type (
	// ProposalUpsertOne is the builder for "upsert"-ing
	//  one Proposal node.
	ProposalUpsertOne struct {
		create *ProposalCreate
	}

	// ProposalUpsert is the "OnConflict" setter.
	ProposalUpsert struct {
		*sql.UpdateSet
	}
)

// SetClientName sets the "client_name" field.
func (u *ProposalUpsert) SetClientName(v string) *ProposalUpsert {
	u.Set(proposal.FieldClientName, v)
	return u
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateClientName() *ProposalUpsert {
	u.SetExcluded(proposal.FieldClientName)
	return u
}

// SetVendorName sets the "vendor_name" field.
func (u *ProposalUpsert) SetVendorName(v string) *ProposalUpsert {
	u.Set(proposal.FieldVendorName, v)
	return u
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateVendorName() *ProposalUpsert {
	u.SetExcluded(proposal.FieldVendorName)
	return u
}

// SetProposalNumber sets the "proposal_number" field.
func (u *ProposalUpsert) SetProposalNumber(v string) *ProposalUpsert {
	u.Set(proposal.FieldProposalNumber, v)
	return u
}

// UpdateProposalNumber sets the "proposal_number" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposalNumber() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposalNumber)
	return u
}

// SetProposalDate sets the "proposal_date" field.
func (u *ProposalUpsert) SetProposalDate(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldProposalDate, v)
	return u
}

// UpdateProposalDate sets the "proposal_date" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateProposalDate() *ProposalUpsert {
	u.SetExcluded(proposal.FieldProposalDate)
	return u
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (u *ProposalUpsert) ClearProposalDate() *ProposalUpsert {
	u.SetNull(proposal.FieldProposalDate)
	return u
}

// SetSubtotal sets the "subtotal" field.
func (u *ProposalUpsert) SetSubtotal(v float64) *ProposalUpsert {
	u.Set(proposal.FieldSubtotal, v)
	return u
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateSubtotal() *ProposalUpsert {
	u.SetExcluded(proposal.FieldSubtotal)
	return u
}

// AddSubtotal adds v to the "subtotal" field.
func (u *ProposalUpsert) AddSubtotal(v float64) *ProposalUpsert {
	u.Add(proposal.FieldSubtotal, v)
	return u
}

// SetTotal sets the "total" field.
func (u *ProposalUpsert) SetTotal(v float64) *ProposalUpsert {
	u.Set(proposal.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateTotal() *ProposalUpsert {
	u.SetExcluded(proposal.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *ProposalUpsert) AddTotal(v float64) *ProposalUpsert {
	u.Add(proposal.FieldTotal, v)
	return u
}

// SetObservations sets the "observations" field.
func (u *ProposalUpsert) SetObservations(v string) *ProposalUpsert {
	u.Set(proposal.FieldObservations, v)
	return u
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateObservations() *ProposalUpsert {
	u.SetExcluded(proposal.FieldObservations)
	return u
}

// SetStatus sets the "status" field.
func (u *ProposalUpsert) SetStatus(v string) *ProposalUpsert {
	u.Set(proposal.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateStatus() *ProposalUpsert {
	u.SetExcluded(proposal.FieldStatus)
	return u
}

// SetValidUntil sets the "valid_until" field.
func (u *ProposalUpsert) SetValidUntil(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldValidUntil, v)
	return u
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateValidUntil() *ProposalUpsert {
	u.SetExcluded(proposal.FieldValidUntil)
	return u
}

// SetSourceAssetID sets the "source_asset_id" field.
func (u *ProposalUpsert) SetSourceAssetID(v string) *ProposalUpsert {
	u.Set(proposal.FieldSourceAssetID, v)
	return u
}

// UpdateSourceAssetID sets the "source_asset_id" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateSourceAssetID() *ProposalUpsert {
	u.SetExcluded(proposal.FieldSourceAssetID)
	return u
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (u *ProposalUpsert) ClearSourceAssetID() *ProposalUpsert {
	u.SetNull(proposal.FieldSourceAssetID)
	return u
}

// SetConfidence sets the "confidence" field.
func (u *ProposalUpsert) SetConfidence(v int) *ProposalUpsert {
	u.Set(proposal.FieldConfidence, v)
	return u
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateConfidence() *ProposalUpsert {
	u.SetExcluded(proposal.FieldConfidence)
	return u
}

// AddConfidence adds v to the "confidence" field.
func (u *ProposalUpsert) AddConfidence(v int) *ProposalUpsert {
	u.Add(proposal.FieldConfidence, v)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ProposalUpsert) SetCreatedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateCreatedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsert) SetUpdatedAt(v time.Time) *ProposalUpsert {
	u.Set(proposal.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsert) UpdateUpdatedAt() *ProposalUpsert {
	u.SetExcluded(proposal.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertOne) UpdateNewValues() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposal.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalUpsertOne) Ignore() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertOne) DoNothing() *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreate.OnConflict
// documentation for more info.
func (u *ProposalUpsertOne) Update(set func(*ProposalUpsert)) *ProposalUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetClientName sets the "client_name" field.
func (u *ProposalUpsertOne) SetClientName(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateClientName() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateClientName()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *ProposalUpsertOne) SetVendorName(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateVendorName() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVendorName()
	})
}

// SetProposalNumber sets the "proposal_number" field.
func (u *ProposalUpsertOne) SetProposalNumber(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalNumber(v)
	})
}

// UpdateProposalNumber sets the "proposal_number" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposalNumber() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalNumber()
	})
}

// SetProposalDate sets the "proposal_date" field.
func (u *ProposalUpsertOne) SetProposalDate(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalDate(v)
	})
}

// UpdateProposalDate sets the "proposal_date" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateProposalDate() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalDate()
	})
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (u *ProposalUpsertOne) ClearProposalDate() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposalDate()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *ProposalUpsertOne) SetSubtotal(v float64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *ProposalUpsertOne) AddSubtotal(v float64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateSubtotal() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTotal sets the "total" field.
func (u *ProposalUpsertOne) SetTotal(v float64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ProposalUpsertOne) AddTotal(v float64) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateTotal() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTotal()
	})
}

// SetObservations sets the "observations" field.
func (u *ProposalUpsertOne) SetObservations(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateObservations() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateObservations()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertOne) SetStatus(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateStatus() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *ProposalUpsertOne) SetValidUntil(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateValidUntil() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateValidUntil()
	})
}

// SetSourceAssetID sets the "source_asset_id" field.
func (u *ProposalUpsertOne) SetSourceAssetID(v string) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSourceAssetID(v)
	})
}

// UpdateSourceAssetID sets the "source_asset_id" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateSourceAssetID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSourceAssetID()
	})
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (u *ProposalUpsertOne) ClearSourceAssetID() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearSourceAssetID()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ProposalUpsertOne) SetConfidence(v int) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ProposalUpsertOne) AddConfidence(v int) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateConfidence() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateConfidence()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ProposalUpsertOne) SetCreatedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateCreatedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsertOne) SetUpdatedAt(v time.Time) *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsertOne) UpdateUpdatedAt() *ProposalUpsertOne {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalUpsertOne.ID is not supported by MySQL driver. Use ProposalUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalCreateBulk is the builder for creating many Proposal entities in bulk.
type ProposalCreateBulk struct {
	config
	err      error
	builders []*ProposalCreate
	conflict []sql.ConflictOption
}

// Save creates the Proposal entities in the database.
func (_c *ProposalCreateBulk) Save(ctx context.Context) ([]*Proposal, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Proposal, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalMutation)
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
func (_c *ProposalCreateBulk) SaveX(ctx context.Context) []*Proposal {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Proposal.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalUpsert) {
//			SetClientName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalUpsertBulk {
	_c.conflict = opts
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalCreateBulk) OnConflictColumns(columns ...string) *ProposalUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalUpsertBulk{
		create: _c,
	}
}

// ProposalUpsertBulk is the builder for "upsert"-ing
// a bulk of Proposal nodes.
type ProposalUpsertBulk struct {
	create *ProposalCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposal.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalUpsertBulk) UpdateNewValues() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposal.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Proposal.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalUpsertBulk) Ignore() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalUpsertBulk) DoNothing() *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalUpsertBulk) Update(set func(*ProposalUpsert)) *ProposalUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalUpsert{UpdateSet: update})
	}))
	return u
}

// SetClientName sets the "client_name" field.
func (u *ProposalUpsertBulk) SetClientName(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetClientName(v)
	})
}

// UpdateClientName sets the "client_name" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateClientName() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateClientName()
	})
}

// SetVendorName sets the "vendor_name" field.
func (u *ProposalUpsertBulk) SetVendorName(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetVendorName(v)
	})
}

// UpdateVendorName sets the "vendor_name" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateVendorName() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateVendorName()
	})
}

// SetProposalNumber sets the "proposal_number" field.
func (u *ProposalUpsertBulk) SetProposalNumber(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalNumber(v)
	})
}

// UpdateProposalNumber sets the "proposal_number" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposalNumber() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalNumber()
	})
}

// SetProposalDate sets the "proposal_date" field.
func (u *ProposalUpsertBulk) SetProposalDate(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetProposalDate(v)
	})
}

// UpdateProposalDate sets the "proposal_date" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateProposalDate() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateProposalDate()
	})
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (u *ProposalUpsertBulk) ClearProposalDate() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearProposalDate()
	})
}

// SetSubtotal sets the "subtotal" field.
func (u *ProposalUpsertBulk) SetSubtotal(v float64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSubtotal(v)
	})
}

// AddSubtotal adds v to the "subtotal" field.
func (u *ProposalUpsertBulk) AddSubtotal(v float64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.AddSubtotal(v)
	})
}

// UpdateSubtotal sets the "subtotal" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateSubtotal() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSubtotal()
	})
}

// SetTotal sets the "total" field.
func (u *ProposalUpsertBulk) SetTotal(v float64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ProposalUpsertBulk) AddTotal(v float64) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateTotal() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateTotal()
	})
}

// SetObservations sets the "observations" field.
func (u *ProposalUpsertBulk) SetObservations(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateObservations() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateObservations()
	})
}

// SetStatus sets the "status" field.
func (u *ProposalUpsertBulk) SetStatus(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateStatus() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateStatus()
	})
}

// SetValidUntil sets the "valid_until" field.
func (u *ProposalUpsertBulk) SetValidUntil(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetValidUntil(v)
	})
}

// UpdateValidUntil sets the "valid_until" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateValidUntil() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateValidUntil()
	})
}

// SetSourceAssetID sets the "source_asset_id" field.
func (u *ProposalUpsertBulk) SetSourceAssetID(v string) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetSourceAssetID(v)
	})
}

// UpdateSourceAssetID sets the "source_asset_id" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateSourceAssetID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateSourceAssetID()
	})
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (u *ProposalUpsertBulk) ClearSourceAssetID() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.ClearSourceAssetID()
	})
}

// SetConfidence sets the "confidence" field.
func (u *ProposalUpsertBulk) SetConfidence(v int) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetConfidence(v)
	})
}

// AddConfidence adds v to the "confidence" field.
func (u *ProposalUpsertBulk) AddConfidence(v int) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.AddConfidence(v)
	})
}

// UpdateConfidence sets the "confidence" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateConfidence() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateConfidence()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ProposalUpsertBulk) SetCreatedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateCreatedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProposalUpsertBulk) SetUpdatedAt(v time.Time) *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProposalUpsertBulk) UpdateUpdatedAt() *ProposalUpsertBulk {
	return u.Update(func(s *ProposalUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProposalUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
