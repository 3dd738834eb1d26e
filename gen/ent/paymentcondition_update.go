// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// PaymentConditionUpdate is the builder for updating PaymentCondition entities.
type PaymentConditionUpdate struct {
	config
	hooks    []Hook
	mutation *PaymentConditionMutation
}

// Where appends a list predicates to the PaymentConditionUpdate builder.
func (_u *PaymentConditionUpdate) Where(ps ...predicate.PaymentCondition) *PaymentConditionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *PaymentConditionUpdate) SetProposalID(v uuid.UUID) *PaymentConditionUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *PaymentConditionUpdate) SetNillableProposalID(v *uuid.UUID) *PaymentConditionUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PaymentConditionUpdate) SetDescription(v string) *PaymentConditionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PaymentConditionUpdate) SetNillableDescription(v *string) *PaymentConditionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInstallments sets the "installments" field.
func (_u *PaymentConditionUpdate) SetInstallments(v int) *PaymentConditionUpdate {
	_u.mutation.ResetInstallments()
	_u.mutation.SetInstallments(v)
	return _u
}

// SetNillableInstallments sets the "installments" field if the given value is not nil.
func (_u *PaymentConditionUpdate) SetNillableInstallments(v *int) *PaymentConditionUpdate {
	if v != nil {
		_u.SetInstallments(*v)
	}
	return _u
}

// AddInstallments adds value to the "installments" field.
func (_u *PaymentConditionUpdate) AddInstallments(v int) *PaymentConditionUpdate {
	_u.mutation.AddInstallments(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentConditionUpdate) SetMethod(v string) *PaymentConditionUpdate {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentConditionUpdate) SetNillableMethod(v *string) *PaymentConditionUpdate {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *PaymentConditionUpdate) SetProposal(v *Proposal) *PaymentConditionUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the PaymentConditionMutation object of the builder.
func (_u *PaymentConditionUpdate) Mutation() *PaymentConditionMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *PaymentConditionUpdate) ClearProposal() *PaymentConditionUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaymentConditionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentConditionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaymentConditionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentConditionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentConditionUpdate) check() error {
	if v, ok := _u.mutation.Installments(); ok {
		if err := paymentcondition.InstallmentsValidator(v); err != nil {
			return &ValidationError{Name: "installments", err: fmt.Errorf(`ent: validator failed for field "PaymentCondition.installments": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentCondition.proposal"`)
	}
	return nil
}

func (_u *PaymentConditionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentcondition.Table, paymentcondition.Columns, sqlgraph.NewFieldSpec(paymentcondition.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(paymentcondition.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Installments(); ok {
		_spec.SetField(paymentcondition.FieldInstallments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstallments(); ok {
		_spec.AddField(paymentcondition.FieldInstallments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(paymentcondition.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentcondition.ProposalTable,
			Columns: []string{paymentcondition.ProposalColumn},
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
			Table:   paymentcondition.ProposalTable,
			Columns: []string{paymentcondition.ProposalColumn},
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
			err = &NotFoundError{paymentcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaymentConditionUpdateOne is the builder for updating a single PaymentCondition entity.
type PaymentConditionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaymentConditionMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *PaymentConditionUpdateOne) SetProposalID(v uuid.UUID) *PaymentConditionUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *PaymentConditionUpdateOne) SetNillableProposalID(v *uuid.UUID) *PaymentConditionUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PaymentConditionUpdateOne) SetDescription(v string) *PaymentConditionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PaymentConditionUpdateOne) SetNillableDescription(v *string) *PaymentConditionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetInstallments sets the "installments" field.
func (_u *PaymentConditionUpdateOne) SetInstallments(v int) *PaymentConditionUpdateOne {
	_u.mutation.ResetInstallments()
	_u.mutation.SetInstallments(v)
	return _u
}

// SetNillableInstallments sets the "installments" field if the given value is not nil.
func (_u *PaymentConditionUpdateOne) SetNillableInstallments(v *int) *PaymentConditionUpdateOne {
	if v != nil {
		_u.SetInstallments(*v)
	}
	return _u
}

// AddInstallments adds value to the "installments" field.
func (_u *PaymentConditionUpdateOne) AddInstallments(v int) *PaymentConditionUpdateOne {
	_u.mutation.AddInstallments(v)
	return _u
}

// SetMethod sets the "method" field.
func (_u *PaymentConditionUpdateOne) SetMethod(v string) *PaymentConditionUpdateOne {
	_u.mutation.SetMethod(v)
	return _u
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_u *PaymentConditionUpdateOne) SetNillableMethod(v *string) *PaymentConditionUpdateOne {
	if v != nil {
		_u.SetMethod(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *PaymentConditionUpdateOne) SetProposal(v *Proposal) *PaymentConditionUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the PaymentConditionMutation object of the builder.
func (_u *PaymentConditionUpdateOne) Mutation() *PaymentConditionMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *PaymentConditionUpdateOne) ClearProposal() *PaymentConditionUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the PaymentConditionUpdate builder.
func (_u *PaymentConditionUpdateOne) Where(ps ...predicate.PaymentCondition) *PaymentConditionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaymentConditionUpdateOne) Select(field string, fields ...string) *PaymentConditionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PaymentCondition entity.
func (_u *PaymentConditionUpdateOne) Save(ctx context.Context) (*PaymentCondition, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaymentConditionUpdateOne) SaveX(ctx context.Context) *PaymentCondition {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaymentConditionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaymentConditionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaymentConditionUpdateOne) check() error {
	if v, ok := _u.mutation.Installments(); ok {
		if err := paymentcondition.InstallmentsValidator(v); err != nil {
			return &ValidationError{Name: "installments", err: fmt.Errorf(`ent: validator failed for field "PaymentCondition.installments": %w`, err)}
		}
	}
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PaymentCondition.proposal"`)
	}
	return nil
}

func (_u *PaymentConditionUpdateOne) sqlSave(ctx context.Context) (_node *PaymentCondition, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paymentcondition.Table, paymentcondition.Columns, sqlgraph.NewFieldSpec(paymentcondition.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PaymentCondition.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paymentcondition.FieldID)
		for _, f := range fields {
			if !paymentcondition.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paymentcondition.FieldID {
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
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(paymentcondition.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Installments(); ok {
		_spec.SetField(paymentcondition.FieldInstallments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInstallments(); ok {
		_spec.AddField(paymentcondition.FieldInstallments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Method(); ok {
		_spec.SetField(paymentcondition.FieldMethod, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paymentcondition.ProposalTable,
			Columns: []string{paymentcondition.ProposalColumn},
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
			Table:   paymentcondition.ProposalTable,
			Columns: []string{paymentcondition.ProposalColumn},
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
	_node = &PaymentCondition{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paymentcondition.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
