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
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

// RecommendedProductCreate is the builder for creating a RecommendedProduct entity.
type RecommendedProductCreate struct {
	config
	mutation *RecommendedProductMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProposalID sets the "proposal_id" field.
func (_c *RecommendedProductCreate) SetProposalID(v uuid.UUID) *RecommendedProductCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RecommendedProductCreate) SetName(v string) *RecommendedProductCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *RecommendedProductCreate) SetReason(v string) *RecommendedProductCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *RecommendedProductCreate) SetNillableReason(v *string) *RecommendedProductCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendedProductCreate) SetID(v uuid.UUID) *RecommendedProductCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RecommendedProductCreate) SetNillableID(v *uuid.UUID) *RecommendedProductCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *RecommendedProductCreate) SetProposal(v *Proposal) *RecommendedProductCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the RecommendedProductMutation object of the builder.
func (_c *RecommendedProductCreate) Mutation() *RecommendedProductMutation {
	return _c.mutation
}

// Save creates the RecommendedProduct in the database.
func (_c *RecommendedProductCreate) Save(ctx context.Context) (*RecommendedProduct, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendedProductCreate) SaveX(ctx context.Context) *RecommendedProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendedProductCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendedProductCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendedProductCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := recommendedproduct.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := recommendedproduct.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendedProductCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "RecommendedProduct.proposal_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RecommendedProduct.name"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "RecommendedProduct.reason"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "RecommendedProduct.proposal"`)}
	}
	return nil
}

func (_c *RecommendedProductCreate) sqlSave(ctx context.Context) (*RecommendedProduct, error) {
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

func (_c *RecommendedProductCreate) createSpec() (*RecommendedProduct, *sqlgraph.CreateSpec) {
	var (
		_node = &RecommendedProduct{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendedproduct.Table, sqlgraph.NewFieldSpec(recommendedproduct.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(recommendedproduct.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(recommendedproduct.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecommendedProduct.Create().
//		SetProposalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendedProductUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendedProductCreate) OnConflict(opts ...sql.ConflictOption) *RecommendedProductUpsertOne {
	_c.conflict = opts
	return &RecommendedProductUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendedProductCreate) OnConflictColumns(columns ...string) *RecommendedProductUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendedProductUpsertOne{
		create: _c,
	}
}

type (
	// RecommendedProductUpsertOne is the builder for "upsert"-ing
	//  one RecommendedProduct node.
	RecommendedProductUpsertOne struct {
		create *RecommendedProductCreate
	}

	// RecommendedProductUpsert is the "OnConflict" setter.
	RecommendedProductUpsert struct {
		*sql.UpdateSet
	}
)

// SetProposalID sets the "proposal_id" field.
func (u *RecommendedProductUpsert) SetProposalID(v uuid.UUID) *RecommendedProductUpsert {
	u.Set(recommendedproduct.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *RecommendedProductUpsert) UpdateProposalID() *RecommendedProductUpsert {
	u.SetExcluded(recommendedproduct.FieldProposalID)
	return u
}

// SetName sets the "name" field.
func (u *RecommendedProductUpsert) SetName(v string) *RecommendedProductUpsert {
	u.Set(recommendedproduct.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecommendedProductUpsert) UpdateName() *RecommendedProductUpsert {
	u.SetExcluded(recommendedproduct.FieldName)
	return u
}

// SetReason sets the "reason" field.
func (u *RecommendedProductUpsert) SetReason(v string) *RecommendedProductUpsert {
	u.Set(recommendedproduct.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RecommendedProductUpsert) UpdateReason() *RecommendedProductUpsert {
	u.SetExcluded(recommendedproduct.FieldReason)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendedproduct.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendedProductUpsertOne) UpdateNewValues() *RecommendedProductUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(recommendedproduct.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecommendedProductUpsertOne) Ignore() *RecommendedProductUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendedProductUpsertOne) DoNothing() *RecommendedProductUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendedProductCreate.OnConflict
// documentation for more info.
func (u *RecommendedProductUpsertOne) Update(set func(*RecommendedProductUpsert)) *RecommendedProductUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendedProductUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *RecommendedProductUpsertOne) SetProposalID(v uuid.UUID) *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *RecommendedProductUpsertOne) UpdateProposalID() *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateProposalID()
	})
}

// SetName sets the "name" field.
func (u *RecommendedProductUpsertOne) SetName(v string) *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecommendedProductUpsertOne) UpdateName() *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateName()
	})
}

// SetReason sets the "reason" field.
func (u *RecommendedProductUpsertOne) SetReason(v string) *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RecommendedProductUpsertOne) UpdateReason() *RecommendedProductUpsertOne {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *RecommendedProductUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendedProductCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendedProductUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecommendedProductUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RecommendedProductUpsertOne.ID is not supported by MySQL driver. Use RecommendedProductUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecommendedProductUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecommendedProductCreateBulk is the builder for creating many RecommendedProduct entities in bulk.
type RecommendedProductCreateBulk struct {
	config
	err      error
	builders []*RecommendedProductCreate
	conflict []sql.ConflictOption
}

// Save creates the RecommendedProduct entities in the database.
func (_c *RecommendedProductCreateBulk) Save(ctx context.Context) ([]*RecommendedProduct, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RecommendedProduct, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendedProductMutation)
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
func (_c *RecommendedProductCreateBulk) SaveX(ctx context.Context) []*RecommendedProduct {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendedProductCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendedProductCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecommendedProduct.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendedProductUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendedProductCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecommendedProductUpsertBulk {
	_c.conflict = opts
	return &RecommendedProductUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendedProductCreateBulk) OnConflictColumns(columns ...string) *RecommendedProductUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendedProductUpsertBulk{
		create: _c,
	}
}

// RecommendedProductUpsertBulk is the builder for "upsert"-ing
// a bulk of RecommendedProduct nodes.
type RecommendedProductUpsertBulk struct {
	create *RecommendedProductCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendedproduct.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendedProductUpsertBulk) UpdateNewValues() *RecommendedProductUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(recommendedproduct.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecommendedProduct.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecommendedProductUpsertBulk) Ignore() *RecommendedProductUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendedProductUpsertBulk) DoNothing() *RecommendedProductUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendedProductCreateBulk.OnConflict
// documentation for more info.
func (u *RecommendedProductUpsertBulk) Update(set func(*RecommendedProductUpsert)) *RecommendedProductUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendedProductUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *RecommendedProductUpsertBulk) SetProposalID(v uuid.UUID) *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *RecommendedProductUpsertBulk) UpdateProposalID() *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateProposalID()
	})
}

// SetName sets the "name" field.
func (u *RecommendedProductUpsertBulk) SetName(v string) *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *RecommendedProductUpsertBulk) UpdateName() *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateName()
	})
}

// SetReason sets the "reason" field.
func (u *RecommendedProductUpsertBulk) SetReason(v string) *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *RecommendedProductUpsertBulk) UpdateReason() *RecommendedProductUpsertBulk {
	return u.Update(func(s *RecommendedProductUpsert) {
		s.UpdateReason()
	})
}

// Exec executes the query.
func (u *RecommendedProductUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RecommendedProductCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendedProductCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendedProductUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
