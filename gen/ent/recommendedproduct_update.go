// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

// RecommendedProductUpdate is the builder for updating RecommendedProduct entities.
type RecommendedProductUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendedProductMutation
}

// Where appends a list predicates to the RecommendedProductUpdate builder.
func (_u *RecommendedProductUpdate) Where(ps ...predicate.RecommendedProduct) *RecommendedProductUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *RecommendedProductUpdate) SetProposalID(v uuid.UUID) *RecommendedProductUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *RecommendedProductUpdate) SetNillableProposalID(v *uuid.UUID) *RecommendedProductUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecommendedProductUpdate) SetName(v string) *RecommendedProductUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecommendedProductUpdate) SetNillableName(v *string) *RecommendedProductUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RecommendedProductUpdate) SetReason(v string) *RecommendedProductUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RecommendedProductUpdate) SetNillableReason(v *string) *RecommendedProductUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *RecommendedProductUpdate) SetProposal(v *Proposal) *RecommendedProductUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the RecommendedProductMutation object of the builder.
func (_u *RecommendedProductUpdate) Mutation() *RecommendedProductMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *RecommendedProductUpdate) ClearProposal() *RecommendedProductUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendedProductUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendedProductUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendedProductUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendedProductUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendedProductUpdate) check() error {
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecommendedProduct.proposal"`)
	}
	return nil
}

func (_u *RecommendedProductUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendedproduct.Table, recommendedproduct.Columns, sqlgraph.NewFieldSpec(recommendedproduct.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recommendedproduct.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(recommendedproduct.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendedproduct.ProposalTable,
			Columns: []string{recommendedproduct.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendedproduct.ProposalTable,
			Columns: []string{recommendedproduct.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendedproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendedProductUpdateOne is the builder for updating a single RecommendedProduct entity.
type RecommendedProductUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendedProductMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *RecommendedProductUpdateOne) SetProposalID(v uuid.UUID) *RecommendedProductUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *RecommendedProductUpdateOne) SetNillableProposalID(v *uuid.UUID) *RecommendedProductUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RecommendedProductUpdateOne) SetName(v string) *RecommendedProductUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RecommendedProductUpdateOne) SetNillableName(v *string) *RecommendedProductUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *RecommendedProductUpdateOne) SetReason(v string) *RecommendedProductUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *RecommendedProductUpdateOne) SetNillableReason(v *string) *RecommendedProductUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *RecommendedProductUpdateOne) SetProposal(v *Proposal) *RecommendedProductUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the RecommendedProductMutation object of the builder.
func (_u *RecommendedProductUpdateOne) Mutation() *RecommendedProductMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *RecommendedProductUpdateOne) ClearProposal() *RecommendedProductUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the RecommendedProductUpdate builder.
func (_u *RecommendedProductUpdateOne) Where(ps ...predicate.RecommendedProduct) *RecommendedProductUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendedProductUpdateOne) Select(field string, fields ...string) *RecommendedProductUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RecommendedProduct entity.
func (_u *RecommendedProductUpdateOne) Save(ctx context.Context) (*RecommendedProduct, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendedProductUpdateOne) SaveX(ctx context.Context) *RecommendedProduct {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendedProductUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendedProductUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendedProductUpdateOne) check() error {
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RecommendedProduct.proposal"`)
	}
	return nil
}

func (_u *RecommendedProductUpdateOne) sqlSave(ctx context.Context) (_node *RecommendedProduct, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendedproduct.Table, recommendedproduct.Columns, sqlgraph.NewFieldSpec(recommendedproduct.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecommendedProduct.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendedproduct.FieldID)
		for _, f := range fields {
			if !recommendedproduct.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendedproduct.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(recommendedproduct.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(recommendedproduct.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendedproduct.ProposalTable,
			Columns: []string{recommendedproduct.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProposalIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendedproduct.ProposalTable,
			Columns: []string{recommendedproduct.ProposalColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(proposal.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RecommendedProduct{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendedproduct.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
