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
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/google/uuid"
)

// ProposalItemUpdate is the builder for updating ProposalItem entities.
type ProposalItemUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalItemMutation
}

// Where appends a list predicates to the ProposalItemUpdate builder.
func (_u *ProposalItemUpdate) Where(ps ...predicate.ProposalItem) *ProposalItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalItemUpdate) SetProposalID(v uuid.UUID) *ProposalItemUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableProposalID(v *uuid.UUID) *ProposalItemUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ProposalItemUpdate) SetPosition(v int) *ProposalItemUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillablePosition(v *int) *ProposalItemUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProposalItemUpdate) AddPosition(v int) *ProposalItemUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalItemUpdate) SetDescription(v string) *ProposalItemUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableDescription(v *string) *ProposalItemUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ProposalItemUpdate) SetQuantity(v float64) *ProposalItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableQuantity(v *float64) *ProposalItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ProposalItemUpdate) AddQuantity(v float64) *ProposalItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProposalItemUpdate) SetUnit(v string) *ProposalItemUpdate {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableUnit(v *string) *ProposalItemUpdate {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ProposalItemUpdate) SetUnitPrice(v float64) *ProposalItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableUnitPrice(v *float64) *ProposalItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ProposalItemUpdate) AddUnitPrice(v float64) *ProposalItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalItemUpdate) SetTotal(v float64) *ProposalItemUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalItemUpdate) SetNillableTotal(v *float64) *ProposalItemUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalItemUpdate) AddTotal(v float64) *ProposalItemUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *ProposalItemUpdate) SetProposal(v *Proposal) *ProposalItemUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the ProposalItemMutation object of the builder.
func (_u *ProposalItemUpdate) Mutation() *ProposalItemMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *ProposalItemUpdate) ClearProposal() *ProposalItemUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalItemUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := proposalitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ProposalItem.position": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProposalItem.proposal"`)
	}
	return nil
}

func (_u *ProposalItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposalitem.Table, proposalitem.Columns, sqlgraph.NewFieldSpec(proposalitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(proposalitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(proposalitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposalitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(proposalitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(proposalitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(proposalitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(proposalitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(proposalitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposalitem.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposalitem.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposalitem.ProposalTable,
			Columns: []string{proposalitem.ProposalColumn},
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
			Table:   proposalitem.ProposalTable,
			Columns: []string{proposalitem.ProposalColumn},
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
			err = &NotFoundError{proposalitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalItemUpdateOne is the builder for updating a single ProposalItem entity.
type ProposalItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalItemMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalItemUpdateOne) SetProposalID(v uuid.UUID) *ProposalItemUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableProposalID(v *uuid.UUID) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *ProposalItemUpdateOne) SetPosition(v int) *ProposalItemUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillablePosition(v *int) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *ProposalItemUpdateOne) AddPosition(v int) *ProposalItemUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalItemUpdateOne) SetDescription(v string) *ProposalItemUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableDescription(v *string) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *ProposalItemUpdateOne) SetQuantity(v float64) *ProposalItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableQuantity(v *float64) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *ProposalItemUpdateOne) AddQuantity(v float64) *ProposalItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnit sets the "unit" field.
func (_u *ProposalItemUpdateOne) SetUnit(v string) *ProposalItemUpdateOne {
	_u.mutation.SetUnit(v)
	return _u
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableUnit(v *string) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetUnit(*v)
	}
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *ProposalItemUpdateOne) SetUnitPrice(v float64) *ProposalItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableUnitPrice(v *float64) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *ProposalItemUpdateOne) AddUnitPrice(v float64) *ProposalItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ProposalItemUpdateOne) SetTotal(v float64) *ProposalItemUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ProposalItemUpdateOne) SetNillableTotal(v *float64) *ProposalItemUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ProposalItemUpdateOne) AddTotal(v float64) *ProposalItemUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *ProposalItemUpdateOne) SetProposal(v *Proposal) *ProposalItemUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the ProposalItemMutation object of the builder.
func (_u *ProposalItemUpdateOne) Mutation() *ProposalItemMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *ProposalItemUpdateOne) ClearProposal() *ProposalItemUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the ProposalItemUpdate builder.
func (_u *ProposalItemUpdateOne) Where(ps ...predicate.ProposalItem) *ProposalItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalItemUpdateOne) Select(field string, fields ...string) *ProposalItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProposalItem entity.
func (_u *ProposalItemUpdateOne) Save(ctx context.Context) (*ProposalItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalItemUpdateOne) SaveX(ctx context.Context) *ProposalItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalItemUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := proposalitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ProposalItem.position": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProposalItem.proposal"`)
	}
	return nil
}

func (_u *ProposalItemUpdateOne) sqlSave(ctx context.Context) (_node *ProposalItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposalitem.Table, proposalitem.Columns, sqlgraph.NewFieldSpec(proposalitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProposalItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposalitem.FieldID)
		for _, f := range fields {
			if !proposalitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposalitem.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(proposalitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(proposalitem.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposalitem.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(proposalitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(proposalitem.FieldQuantity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Unit(); ok {
		_spec.SetField(proposalitem.FieldUnit, field.TypeString, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(proposalitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(proposalitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(proposalitem.FieldTotal, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(proposalitem.FieldTotal, field.TypeFloat64, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposalitem.ProposalTable,
			Columns: []string{proposalitem.ProposalColumn},
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
			Table:   proposalitem.ProposalTable,
			Columns: []string{proposalitem.ProposalColumn},
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
	_node = &ProposalItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposalitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
