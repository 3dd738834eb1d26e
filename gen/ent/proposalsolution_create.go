// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/google/uuid"
)

// ProposalSolutionCreate is the builder for creating a ProposalSolution entity.
type ProposalSolutionCreate struct {
	config
	mutation *ProposalSolutionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProposalID sets the "proposal_id" field.
func (_c *ProposalSolutionCreate) SetProposalID(v uuid.UUID) *ProposalSolutionCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ProposalSolutionCreate) SetName(v string) *ProposalSolutionCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProposalSolutionCreate) SetDescription(v string) *ProposalSolutionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ProposalSolutionCreate) SetNillableDescription(v *string) *ProposalSolutionCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalSolutionCreate) SetID(v uuid.UUID) *ProposalSolutionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProposalSolutionCreate) SetNillableID(v *uuid.UUID) *ProposalSolutionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *ProposalSolutionCreate) SetProposal(v *Proposal) *ProposalSolutionCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the ProposalSolutionMutation object of the builder.
func (_c *ProposalSolutionCreate) Mutation() *ProposalSolutionMutation {
	return _c.mutation
}

// Save creates the ProposalSolution in the database.
func (_c *ProposalSolutionCreate) Save(ctx context.Context) (*ProposalSolution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalSolutionCreate) SaveX(ctx context.Context) *ProposalSolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalSolutionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalSolutionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalSolutionCreate) defaults() {
	if _, ok := _c.mutation.Description(); !ok {
		v := proposalsolution.DefaultDescription
		_c.mutation.SetDescription(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proposalsolution.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalSolutionCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "ProposalSolution.proposal_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ProposalSolution.name"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ProposalSolution.description"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "ProposalSolution.proposal"`)}
	}
	return nil
}

func (_c *ProposalSolutionCreate) sqlSave(ctx context.Context) (*ProposalSolution, error) {
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

func (_c *ProposalSolutionCreate) createSpec() (*ProposalSolution, *sqlgraph.CreateSpec) {
	var (
		_node = &ProposalSolution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposalsolution.Table, sqlgraph.NewFieldSpec(proposalsolution.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(proposalsolution.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(proposalsolution.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProposalSolution.Create().
//		SetProposalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalSolutionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalSolutionCreate) OnConflict(opts ...sql.ConflictOption) *ProposalSolutionUpsertOne {
	_c.conflict = opts
	return &ProposalSolutionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalSolutionCreate) OnConflictColumns(columns ...string) *ProposalSolutionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalSolutionUpsertOne{
		create: _c,
	}
}

type (
	// ProposalSolutionUpsertOne is the builder for "upsert"-ing
	//  one ProposalSolution node.
	ProposalSolutionUpsertOne struct {
		create *ProposalSolutionCreate
	}

	// ProposalSolutionUpsert is the "OnConflict" setter.
	ProposalSolutionUpsert struct {
		*sql.UpdateSet
	}
)

// SetProposalID sets the "proposal_id" field.
func (u *ProposalSolutionUpsert) SetProposalID(v uuid.UUID) *ProposalSolutionUpsert {
	u.Set(proposalsolution.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalSolutionUpsert) UpdateProposalID() *ProposalSolutionUpsert {
	u.SetExcluded(proposalsolution.FieldProposalID)
	return u
}

// SetName sets the "name" field.
func (u *ProposalSolutionUpsert) SetName(v string) *ProposalSolutionUpsert {
	u.Set(proposalsolution.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProposalSolutionUpsert) UpdateName() *ProposalSolutionUpsert {
	u.SetExcluded(proposalsolution.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ProposalSolutionUpsert) SetDescription(v string) *ProposalSolutionUpsert {
	u.Set(proposalsolution.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalSolutionUpsert) UpdateDescription() *ProposalSolutionUpsert {
	u.SetExcluded(proposalsolution.FieldDescription)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposalsolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalSolutionUpsertOne) UpdateNewValues() *ProposalSolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposalsolution.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalSolutionUpsertOne) Ignore() *ProposalSolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalSolutionUpsertOne) DoNothing() *ProposalSolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalSolutionCreate.OnConflict
// documentation for more info.
func (u *ProposalSolutionUpsertOne) Update(set func(*ProposalSolutionUpsert)) *ProposalSolutionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalSolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalSolutionUpsertOne) SetProposalID(v uuid.UUID) *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalSolutionUpsertOne) UpdateProposalID() *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateProposalID()
	})
}

// SetName sets the "name" field.
func (u *ProposalSolutionUpsertOne) SetName(v string) *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProposalSolutionUpsertOne) UpdateName() *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalSolutionUpsertOne) SetDescription(v string) *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalSolutionUpsertOne) UpdateDescription() *ProposalSolutionUpsertOne {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *ProposalSolutionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalSolutionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalSolutionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalSolutionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalSolutionUpsertOne.ID is not supported by MySQL driver. Use ProposalSolutionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalSolutionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalSolutionCreateBulk is the builder for creating many ProposalSolution entities in bulk.
type ProposalSolutionCreateBulk struct {
	config
	err      error
	builders []*ProposalSolutionCreate
	conflict []sql.ConflictOption
}

// Save creates the ProposalSolution entities in the database.
func (_c *ProposalSolutionCreateBulk) Save(ctx context.Context) ([]*ProposalSolution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProposalSolution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalSolutionMutation)
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
func (_c *ProposalSolutionCreateBulk) SaveX(ctx context.Context) []*ProposalSolution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalSolutionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalSolutionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProposalSolution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalSolutionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalSolutionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalSolutionUpsertBulk {
	_c.conflict = opts
	return &ProposalSolutionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalSolutionCreateBulk) OnConflictColumns(columns ...string) *ProposalSolutionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalSolutionUpsertBulk{
		create: _c,
	}
}

// ProposalSolutionUpsertBulk is the builder for "upsert"-ing
// a bulk of ProposalSolution nodes.
type ProposalSolutionUpsertBulk struct {
	create *ProposalSolutionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposalsolution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalSolutionUpsertBulk) UpdateNewValues() *ProposalSolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposalsolution.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProposalSolution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalSolutionUpsertBulk) Ignore() *ProposalSolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalSolutionUpsertBulk) DoNothing() *ProposalSolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalSolutionCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalSolutionUpsertBulk) Update(set func(*ProposalSolutionUpsert)) *ProposalSolutionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalSolutionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalSolutionUpsertBulk) SetProposalID(v uuid.UUID) *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalSolutionUpsertBulk) UpdateProposalID() *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateProposalID()
	})
}

// SetName sets the "name" field.
func (u *ProposalSolutionUpsertBulk) SetName(v string) *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ProposalSolutionUpsertBulk) UpdateName() *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalSolutionUpsertBulk) SetDescription(v string) *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalSolutionUpsertBulk) UpdateDescription() *ProposalSolutionUpsertBulk {
	return u.Update(func(s *ProposalSolutionUpsert) {
		s.UpdateDescription()
	})
}

// Exec executes the query.
func (u *ProposalSolutionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalSolutionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalSolutionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalSolutionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
