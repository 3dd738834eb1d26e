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
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

// ProposalUpdate is the builder for updating Proposal entities.
type ProposalUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalMutation
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdate) Where(ps ...predicate.Proposal) *ProposalUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClientName sets the "client_name" field.
func (_u *ProposalUpdate) SetClientName(v string) *ProposalUpdate {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableClientName(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ProposalUpdate) SetVendorName(v string) *ProposalUpdate {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableVendorName(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetProposalNumber sets the "proposal_number" field.
func (_u *ProposalUpdate) SetProposalNumber(v string) *ProposalUpdate {
	_u.mutation.SetProposalNumber(v)
	return _u
}

// SetNillableProposalNumber sets the "proposal_number" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposalNumber(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetProposalNumber(*v)
	}
	return _u
}

// SetProposalDate sets the "proposal_date" field.
func (_u *ProposalUpdate) SetProposalDate(v time.Time) *ProposalUpdate {
	_u.mutation.SetProposalDate(v)
	return _u
}

// SetNillableProposalDate sets the "proposal_date" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableProposalDate(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetProposalDate(*v)
	}
	return _u
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (_u *ProposalUpdate) ClearProposalDate() *ProposalUpdate {
	_u.mutation.ClearProposalDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ProposalUpdate) SetSubtotal(v float64) *ProposalUpdate {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableSubtotal(v *float64) *ProposalUpdate {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ProposalUpdate) AddSubtotal(v float64) *ProposalUpdate {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalUpdate) SetTotal(v float64) *ProposalUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableTotal(v *float64) *ProposalUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalUpdate) AddTotal(v float64) *ProposalUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ProposalUpdate) SetObservations(v string) *ProposalUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableObservations(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdate) SetStatus(v string) *ProposalUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableStatus(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ProposalUpdate) SetValidUntil(v time.Time) *ProposalUpdate {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableValidUntil(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// SetSourceAssetID sets the "source_asset_id" field.
func (_u *ProposalUpdate) SetSourceAssetID(v string) *ProposalUpdate {
	_u.mutation.SetSourceAssetID(v)
	return _u
}

// SetNillableSourceAssetID sets the "source_asset_id" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableSourceAssetID(v *string) *ProposalUpdate {
	if v != nil {
		_u.SetSourceAssetID(*v)
	}
	return _u
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (_u *ProposalUpdate) ClearSourceAssetID() *ProposalUpdate {
	_u.mutation.ClearSourceAssetID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProposalUpdate) SetConfidence(v int) *ProposalUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableConfidence(v *int) *ProposalUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProposalUpdate) AddConfidence(v int) *ProposalUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProposalUpdate) SetCreatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProposalUpdate) SetNillableCreatedAt(v *time.Time) *ProposalUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdate) SetUpdatedAt(v time.Time) *ProposalUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ProposalItem entity by IDs.
func (_u *ProposalUpdate) AddItemIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ProposalItem entity.
func (_u *ProposalUpdate) AddItems(v ...*ProposalItem) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddPaymentConditionIDs adds the "payment_conditions" edge to the PaymentCondition entity by IDs.
func (_u *ProposalUpdate) AddPaymentConditionIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddPaymentConditionIDs(ids...)
	return _u
}

// AddPaymentConditions adds the "payment_conditions" edges to the PaymentCondition entity.
func (_u *ProposalUpdate) AddPaymentConditions(v ...*PaymentCondition) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentConditionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the ProposalSolution entity by IDs.
func (_u *ProposalUpdate) AddSolutionIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the ProposalSolution entity.
func (_u *ProposalUpdate) AddSolutions(v ...*ProposalSolution) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddRecommendedProductIDs adds the "recommended_products" edge to the RecommendedProduct entity by IDs.
func (_u *ProposalUpdate) AddRecommendedProductIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.AddRecommendedProductIDs(ids...)
	return _u
}

// AddRecommendedProducts adds the "recommended_products" edges to the RecommendedProduct entity.
func (_u *ProposalUpdate) AddRecommendedProducts(v ...*RecommendedProduct) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendedProductIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdate) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ProposalItem entity.
func (_u *ProposalUpdate) ClearItems() *ProposalUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ProposalItem entities by IDs.
func (_u *ProposalUpdate) RemoveItemIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ProposalItem entities.
func (_u *ProposalUpdate) RemoveItems(v ...*ProposalItem) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearPaymentConditions clears all "payment_conditions" edges to the PaymentCondition entity.
func (_u *ProposalUpdate) ClearPaymentConditions() *ProposalUpdate {
	_u.mutation.ClearPaymentConditions()
	return _u
}

// RemovePaymentConditionIDs removes the "payment_conditions" edge to PaymentCondition entities by IDs.
func (_u *ProposalUpdate) RemovePaymentConditionIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemovePaymentConditionIDs(ids...)
	return _u
}

// RemovePaymentConditions removes "payment_conditions" edges to PaymentCondition entities.
func (_u *ProposalUpdate) RemovePaymentConditions(v ...*PaymentCondition) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentConditionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the ProposalSolution entity.
func (_u *ProposalUpdate) ClearSolutions() *ProposalUpdate {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to ProposalSolution entities by IDs.
func (_u *ProposalUpdate) RemoveSolutionIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to ProposalSolution entities.
func (_u *ProposalUpdate) RemoveSolutions(v ...*ProposalSolution) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearRecommendedProducts clears all "recommended_products" edges to the RecommendedProduct entity.
func (_u *ProposalUpdate) ClearRecommendedProducts() *ProposalUpdate {
	_u.mutation.ClearRecommendedProducts()
	return _u
}

// RemoveRecommendedProductIDs removes the "recommended_products" edge to RecommendedProduct entities by IDs.
func (_u *ProposalUpdate) RemoveRecommendedProductIDs(ids ...uuid.UUID) *ProposalUpdate {
	_u.mutation.RemoveRecommendedProductIDs(ids...)
	return _u
}

// RemoveRecommendedProducts removes "recommended_products" edges to RecommendedProduct entities.
func (_u *ProposalUpdate) RemoveRecommendedProducts(v ...*RecommendedProduct) *ProposalUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendedProductIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := proposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Proposal.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(proposal.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalNumber(); ok {
		_spec.SetField(proposal.FieldProposalNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalDate(); ok {
		_spec.SetField(proposal.FieldProposalDate, field.TypeTime, value)
	}
	if _u.mutation.ProposalDateCleared() {
		_spec.ClearField(proposal.FieldProposalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(proposal.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(proposal.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(proposal.FieldObservations, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(proposal.FieldValidUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceAssetID(); ok {
		_spec.SetField(proposal.FieldSourceAssetID, field.TypeString, value)
	}
	if _u.mutation.SourceAssetIDCleared() {
		_spec.ClearField(proposal.FieldSourceAssetID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(proposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(proposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentConditionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentConditionsIDs(); len(nodes) > 0 && !_u.mutation.PaymentConditionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentConditionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendedProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendedProductsIDs(); len(nodes) > 0 && !_u.mutation.RecommendedProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendedProductsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalUpdateOne is the builder for updating a single Proposal entity.
type ProposalUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalMutation
}

// SetClientName sets the "client_name" field.
func (_u *ProposalUpdateOne) SetClientName(v string) *ProposalUpdateOne {
	_u.mutation.SetClientName(v)
	return _u
}

// SetNillableClientName sets the "client_name" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableClientName(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetClientName(*v)
	}
	return _u
}

// SetVendorName sets the "vendor_name" field.
func (_u *ProposalUpdateOne) SetVendorName(v string) *ProposalUpdateOne {
	_u.mutation.SetVendorName(v)
	return _u
}

// SetNillableVendorName sets the "vendor_name" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableVendorName(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetVendorName(*v)
	}
	return _u
}

// SetProposalNumber sets the "proposal_number" field.
func (_u *ProposalUpdateOne) SetProposalNumber(v string) *ProposalUpdateOne {
	_u.mutation.SetProposalNumber(v)
	return _u
}

// SetNillableProposalNumber sets the "proposal_number" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposalNumber(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposalNumber(*v)
	}
	return _u
}

// SetProposalDate sets the "proposal_date" field.
func (_u *ProposalUpdateOne) SetProposalDate(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetProposalDate(v)
	return _u
}

// SetNillableProposalDate sets the "proposal_date" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableProposalDate(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetProposalDate(*v)
	}
	return _u
}

// ClearProposalDate clears the value of the "proposal_date" field.
func (_u *ProposalUpdateOne) ClearProposalDate() *ProposalUpdateOne {
	_u.mutation.ClearProposalDate()
	return _u
}

// SetSubtotal sets the "subtotal" field.
func (_u *ProposalUpdateOne) SetSubtotal(v float64) *ProposalUpdateOne {
	_u.mutation.ResetSubtotal()
	_u.mutation.SetSubtotal(v)
	return _u
}

// SetNillableSubtotal sets the "subtotal" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableSubtotal(v *float64) *ProposalUpdateOne {
	if v != nil {
		_u.SetSubtotal(*v)
	}
	return _u
}

// AddSubtotal adds value to the "subtotal" field.
func (_u *ProposalUpdateOne) AddSubtotal(v float64) *ProposalUpdateOne {
	_u.mutation.AddSubtotal(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalUpdateOne) SetTotal(v float64) *ProposalUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableTotal(v *float64) *ProposalUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalUpdateOne) AddTotal(v float64) *ProposalUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetObservations sets the "observations" field.
func (_u *ProposalUpdateOne) SetObservations(v string) *ProposalUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// SetNillableObservations sets the "observations" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableObservations(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetObservations(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ProposalUpdateOne) SetStatus(v string) *ProposalUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableStatus(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetValidUntil sets the "valid_until" field.
func (_u *ProposalUpdateOne) SetValidUntil(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetValidUntil(v)
	return _u
}

// SetNillableValidUntil sets the "valid_until" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableValidUntil(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetValidUntil(*v)
	}
	return _u
}

// SetSourceAssetID sets the "source_asset_id" field.
func (_u *ProposalUpdateOne) SetSourceAssetID(v string) *ProposalUpdateOne {
	_u.mutation.SetSourceAssetID(v)
	return _u
}

// SetNillableSourceAssetID sets the "source_asset_id" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableSourceAssetID(v *string) *ProposalUpdateOne {
	if v != nil {
		_u.SetSourceAssetID(*v)
	}
	return _u
}

// ClearSourceAssetID clears the value of the "source_asset_id" field.
func (_u *ProposalUpdateOne) ClearSourceAssetID() *ProposalUpdateOne {
	_u.mutation.ClearSourceAssetID()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *ProposalUpdateOne) SetConfidence(v int) *ProposalUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableConfidence(v *int) *ProposalUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *ProposalUpdateOne) AddConfidence(v int) *ProposalUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ProposalUpdateOne) SetCreatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ProposalUpdateOne) SetNillableCreatedAt(v *time.Time) *ProposalUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProposalUpdateOne) SetUpdatedAt(v time.Time) *ProposalUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the ProposalItem entity by IDs.
func (_u *ProposalUpdateOne) AddItemIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the ProposalItem entity.
func (_u *ProposalUpdateOne) AddItems(v ...*ProposalItem) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddPaymentConditionIDs adds the "payment_conditions" edge to the PaymentCondition entity by IDs.
func (_u *ProposalUpdateOne) AddPaymentConditionIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddPaymentConditionIDs(ids...)
	return _u
}

// AddPaymentConditions adds the "payment_conditions" edges to the PaymentCondition entity.
func (_u *ProposalUpdateOne) AddPaymentConditions(v ...*PaymentCondition) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPaymentConditionIDs(ids...)
}

// AddSolutionIDs adds the "solutions" edge to the ProposalSolution entity by IDs.
func (_u *ProposalUpdateOne) AddSolutionIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddSolutionIDs(ids...)
	return _u
}

// AddSolutions adds the "solutions" edges to the ProposalSolution entity.
func (_u *ProposalUpdateOne) AddSolutions(v ...*ProposalSolution) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSolutionIDs(ids...)
}

// AddRecommendedProductIDs adds the "recommended_products" edge to the RecommendedProduct entity by IDs.
func (_u *ProposalUpdateOne) AddRecommendedProductIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.AddRecommendedProductIDs(ids...)
	return _u
}

// AddRecommendedProducts adds the "recommended_products" edges to the RecommendedProduct entity.
func (_u *ProposalUpdateOne) AddRecommendedProducts(v ...*RecommendedProduct) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendedProductIDs(ids...)
}

// Mutation returns the ProposalMutation object of the builder.
func (_u *ProposalUpdateOne) Mutation() *ProposalMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the ProposalItem entity.
func (_u *ProposalUpdateOne) ClearItems() *ProposalUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to ProposalItem entities by IDs.
func (_u *ProposalUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to ProposalItem entities.
func (_u *ProposalUpdateOne) RemoveItems(v ...*ProposalItem) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearPaymentConditions clears all "payment_conditions" edges to the PaymentCondition entity.
func (_u *ProposalUpdateOne) ClearPaymentConditions() *ProposalUpdateOne {
	_u.mutation.ClearPaymentConditions()
	return _u
}

// RemovePaymentConditionIDs removes the "payment_conditions" edge to PaymentCondition entities by IDs.
func (_u *ProposalUpdateOne) RemovePaymentConditionIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemovePaymentConditionIDs(ids...)
	return _u
}

// RemovePaymentConditions removes "payment_conditions" edges to PaymentCondition entities.
func (_u *ProposalUpdateOne) RemovePaymentConditions(v ...*PaymentCondition) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePaymentConditionIDs(ids...)
}

// ClearSolutions clears all "solutions" edges to the ProposalSolution entity.
func (_u *ProposalUpdateOne) ClearSolutions() *ProposalUpdateOne {
	_u.mutation.ClearSolutions()
	return _u
}

// RemoveSolutionIDs removes the "solutions" edge to ProposalSolution entities by IDs.
func (_u *ProposalUpdateOne) RemoveSolutionIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemoveSolutionIDs(ids...)
	return _u
}

// RemoveSolutions removes "solutions" edges to ProposalSolution entities.
func (_u *ProposalUpdateOne) RemoveSolutions(v ...*ProposalSolution) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSolutionIDs(ids...)
}

// ClearRecommendedProducts clears all "recommended_products" edges to the RecommendedProduct entity.
func (_u *ProposalUpdateOne) ClearRecommendedProducts() *ProposalUpdateOne {
	_u.mutation.ClearRecommendedProducts()
	return _u
}

// RemoveRecommendedProductIDs removes the "recommended_products" edge to RecommendedProduct entities by IDs.
func (_u *ProposalUpdateOne) RemoveRecommendedProductIDs(ids ...uuid.UUID) *ProposalUpdateOne {
	_u.mutation.RemoveRecommendedProductIDs(ids...)
	return _u
}

// RemoveRecommendedProducts removes "recommended_products" edges to RecommendedProduct entities.
func (_u *ProposalUpdateOne) RemoveRecommendedProducts(v ...*RecommendedProduct) *ProposalUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendedProductIDs(ids...)
}

// Where appends a list predicates to the ProposalUpdate builder.
func (_u *ProposalUpdateOne) Where(ps ...predicate.Proposal) *ProposalUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalUpdateOne) Select(field string, fields ...string) *ProposalUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Proposal entity.
func (_u *ProposalUpdateOne) Save(ctx context.Context) (*Proposal, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalUpdateOne) SaveX(ctx context.Context) *Proposal {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProposalUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := proposal.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := proposal.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Proposal.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := proposal.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Proposal.confidence": %w`, err)}
		}
	}
	return nil
}

func (_u *ProposalUpdateOne) sqlSave(ctx context.Context) (_node *Proposal, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposal.Table, proposal.Columns, sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Proposal.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposal.FieldID)
		for _, f := range fields {
			if !proposal.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposal.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClientName(); ok {
		_spec.SetField(proposal.FieldClientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VendorName(); ok {
		_spec.SetField(proposal.FieldVendorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalNumber(); ok {
		_spec.SetField(proposal.FieldProposalNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProposalDate(); ok {
		_spec.SetField(proposal.FieldProposalDate, field.TypeTime, value)
	}
	if _u.mutation.ProposalDateCleared() {
		_spec.ClearField(proposal.FieldProposalDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Subtotal(); ok {
		_spec.SetField(proposal.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSubtotal(); ok {
		_spec.AddField(proposal.FieldSubtotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposal.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(proposal.FieldObservations, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(proposal.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ValidUntil(); ok {
		_spec.SetField(proposal.FieldValidUntil, field.TypeTime, value)
	}
	if value, ok := _u.mutation.SourceAssetID(); ok {
		_spec.SetField(proposal.FieldSourceAssetID, field.TypeString, value)
	}
	if _u.mutation.SourceAssetIDCleared() {
		_spec.ClearField(proposal.FieldSourceAssetID, field.TypeString)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(proposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(proposal.FieldConfidence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(proposal.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(proposal.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PaymentConditionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPaymentConditionsIDs(); len(nodes) > 0 && !_u.mutation.PaymentConditionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PaymentConditionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SolutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSolutionsIDs(); len(nodes) > 0 && !_u.mutation.SolutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SolutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendedProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendedProductsIDs(); len(nodes) > 0 && !_u.mutation.RecommendedProductsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendedProductsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Proposal{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposal.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
