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
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/google/uuid"
)

// ProposalSolutionUpdate is the builder for updating ProposalSolution entities.
type ProposalSolutionUpdate struct {
	config
	hooks    []Hook
	mutation *ProposalSolutionMutation
}

// Where appends a list predicates to the ProposalSolutionUpdate builder.
func (_u *ProposalSolutionUpdate) Where(ps ...predicate.ProposalSolution) *ProposalSolutionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalSolutionUpdate) SetProposalID(v uuid.UUID) *ProposalSolutionUpdate {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalSolutionUpdate) SetNillableProposalID(v *uuid.UUID) *ProposalSolutionUpdate {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProposalSolutionUpdate) SetName(v string) *ProposalSolutionUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProposalSolutionUpdate) SetNillableName(v *string) *ProposalSolutionUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalSolutionUpdate) SetDescription(v string) *ProposalSolutionUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalSolutionUpdate) SetNillableDescription(v *string) *ProposalSolutionUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *ProposalSolutionUpdate) SetProposal(v *Proposal) *ProposalSolutionUpdate {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the ProposalSolutionMutation object of the builder.
func (_u *ProposalSolutionUpdate) Mutation() *ProposalSolutionMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *ProposalSolutionUpdate) ClearProposal() *ProposalSolutionUpdate {
	_u.mutation.ClearProposal()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProposalSolutionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalSolutionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProposalSolutionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalSolutionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalSolutionUpdate) check() error {
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProposalSolution.proposal"`)
	}
	return nil
}

func (_u *ProposalSolutionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposalsolution.Table, proposalsolution.Columns, sqlgraph.NewFieldSpec(proposalsolution.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(proposalsolution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposalsolution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposalsolution.ProposalTable,
			Columns: []string{proposalsolution.ProposalColumn},
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
			Table:   proposalsolution.ProposalTable,
			Columns: []string{proposalsolution.ProposalColumn},
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
			err = &NotFoundError{proposalsolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProposalSolutionUpdateOne is the builder for updating a single ProposalSolution entity.
type ProposalSolutionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProposalSolutionMutation
}

// SetProposalID sets the "proposal_id" field.
func (_u *ProposalSolutionUpdateOne) SetProposalID(v uuid.UUID) *ProposalSolutionUpdateOne {
	_u.mutation.SetProposalID(v)
	return _u
}

// SetNillableProposalID sets the "proposal_id" field if the given value is not nil.
func (_u *ProposalSolutionUpdateOne) SetNillableProposalID(v *uuid.UUID) *ProposalSolutionUpdateOne {
	if v != nil {
		_u.SetProposalID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ProposalSolutionUpdateOne) SetName(v string) *ProposalSolutionUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ProposalSolutionUpdateOne) SetNillableName(v *string) *ProposalSolutionUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ProposalSolutionUpdateOne) SetDescription(v string) *ProposalSolutionUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ProposalSolutionUpdateOne) SetNillableDescription(v *string) *ProposalSolutionUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_u *ProposalSolutionUpdateOne) SetProposal(v *Proposal) *ProposalSolutionUpdateOne {
	return _u.SetProposalID(v.ID)
}

// Mutation returns the ProposalSolutionMutation object of the builder.
func (_u *ProposalSolutionUpdateOne) Mutation() *ProposalSolutionMutation {
	return _u.mutation
}

// ClearProposal clears the "proposal" edge to the Proposal entity.
func (_u *ProposalSolutionUpdateOne) ClearProposal() *ProposalSolutionUpdateOne {
	_u.mutation.ClearProposal()
	return _u
}

// Where appends a list predicates to the ProposalSolutionUpdate builder.
func (_u *ProposalSolutionUpdateOne) Where(ps ...predicate.ProposalSolution) *ProposalSolutionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProposalSolutionUpdateOne) Select(field string, fields ...string) *ProposalSolutionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProposalSolution entity.
func (_u *ProposalSolutionUpdateOne) Save(ctx context.Context) (*ProposalSolution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProposalSolutionUpdateOne) SaveX(ctx context.Context) *ProposalSolution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProposalSolutionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProposalSolutionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProposalSolutionUpdateOne) check() error {
	if _u.mutation.ProposalCleared() && len(_u.mutation.ProposalIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ProposalSolution.proposal"`)
	}
	return nil
}

func (_u *ProposalSolutionUpdateOne) sqlSave(ctx context.Context) (_node *ProposalSolution, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(proposalsolution.Table, proposalsolution.Columns, sqlgraph.NewFieldSpec(proposalsolution.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProposalSolution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, proposalsolution.FieldID)
		for _, f := range fields {
			if !proposalsolution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != proposalsolution.FieldID {
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
		_spec.SetField(proposalsolution.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(proposalsolution.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.ProposalCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   proposalsolution.ProposalTable,
			Columns: []string{proposalsolution.ProposalColumn},
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
			Table:   proposalsolution.ProposalTable,
			Columns: []string{proposalsolution.ProposalColumn},
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
	_node = &ProposalSolution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{proposalsolution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
