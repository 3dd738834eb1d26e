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
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/google/uuid"
)

// ProposalItemCreate is the builder for creating a ProposalItem entity.
type ProposalItemCreate struct {
	config
	mutation *ProposalItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProposalID sets the "proposal_id" field.
func (_c *ProposalItemCreate) SetProposalID(v uuid.UUID) *ProposalItemCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *ProposalItemCreate) SetPosition(v int) *ProposalItemCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ProposalItemCreate) SetDescription(v string) *ProposalItemCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *ProposalItemCreate) SetQuantity(v float64) *ProposalItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUnit sets the "unit" field.
func (_c *ProposalItemCreate) SetUnit(v string) *ProposalItemCreate {
	_c.mutation.SetUnit(v)
	return _c
}

// SetNillableUnit sets the "unit" field if the given value is not nil.
func (_c *ProposalItemCreate) SetNillableUnit(v *string) *ProposalItemCreate {
	if v != nil {
		_c.SetUnit(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *ProposalItemCreate) SetUnitPrice(v float64) *ProposalItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ProposalItemCreate) SetTotal(v float64) *ProposalItemCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ProposalItemCreate) SetID(v uuid.UUID) *ProposalItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProposalItemCreate) SetNillableID(v *uuid.UUID) *ProposalItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *ProposalItemCreate) SetProposal(v *Proposal) *ProposalItemCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the ProposalItemMutation object of the builder.
func (_c *ProposalItemCreate) Mutation() *ProposalItemMutation {
	return _c.mutation
}

// Save creates the ProposalItem in the database.
func (_c *ProposalItemCreate) Save(ctx context.Context) (*ProposalItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProposalItemCreate) SaveX(ctx context.Context) *ProposalItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProposalItemCreate) defaults() {
	if _, ok := _c.mutation.Unit(); !ok {
		v := proposalitem.DefaultUnit
		_c.mutation.SetUnit(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := proposalitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProposalItemCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "ProposalItem.proposal_id"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "ProposalItem.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := proposalitem.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "ProposalItem.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "ProposalItem.description"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "ProposalItem.quantity"`)}
	}
	if _, ok := _c.mutation.Unit(); !ok {
		return &ValidationError{Name: "unit", err: errors.New(`ent: missing required field "ProposalItem.unit"`)}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "ProposalItem.unit_price"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ProposalItem.total"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "ProposalItem.proposal"`)}
	}
	return nil
}

func (_c *ProposalItemCreate) sqlSave(ctx context.Context) (*ProposalItem, error) {
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

func (_c *ProposalItemCreate) createSpec() (*ProposalItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ProposalItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(proposalitem.Table, sqlgraph.NewFieldSpec(proposalitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(proposalitem.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(proposalitem.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(proposalitem.FieldQuantity, field.TypeFloat64, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Unit(); ok {
		_spec.SetField(proposalitem.FieldUnit, field.TypeString, value)
		_node.Unit = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(proposalitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(proposalitem.FieldTotal, field.TypeFloat64, value)
		_node.Total = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProposalItem.Create().
//		SetProposalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalItemUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalItemCreate) OnConflict(opts ...sql.ConflictOption) *ProposalItemUpsertOne {
	_c.conflict = opts
	return &ProposalItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalItemCreate) OnConflictColumns(columns ...string) *ProposalItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalItemUpsertOne{
		create: _c,
	}
}

type (
	// ProposalItemUpsertOne is the builder for "upsert"-ing
	//  one ProposalItem node.
	ProposalItemUpsertOne struct {
		create *ProposalItemCreate
	}

	// ProposalItemUpsert is the "OnConflict" setter.
	ProposalItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetProposalID sets the "proposal_id" field.
func (u *ProposalItemUpsert) SetProposalID(v uuid.UUID) *ProposalItemUpsert {
	u.Set(proposalitem.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateProposalID() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldProposalID)
	return u
}

// SetPosition sets the "position" field.
func (u *ProposalItemUpsert) SetPosition(v int) *ProposalItemUpsert {
	u.Set(proposalitem.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdatePosition() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *ProposalItemUpsert) AddPosition(v int) *ProposalItemUpsert {
	u.Add(proposalitem.FieldPosition, v)
	return u
}

// SetDescription sets the "description" field.
func (u *ProposalItemUpsert) SetDescription(v string) *ProposalItemUpsert {
	u.Set(proposalitem.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateDescription() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldDescription)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *ProposalItemUpsert) SetQuantity(v float64) *ProposalItemUpsert {
	u.Set(proposalitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateQuantity() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *ProposalItemUpsert) AddQuantity(v float64) *ProposalItemUpsert {
	u.Add(proposalitem.FieldQuantity, v)
	return u
}

// SetUnit sets the "unit" field.
func (u *ProposalItemUpsert) SetUnit(v string) *ProposalItemUpsert {
	u.Set(proposalitem.FieldUnit, v)
	return u
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateUnit() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldUnit)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *ProposalItemUpsert) SetUnitPrice(v float64) *ProposalItemUpsert {
	u.Set(proposalitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateUnitPrice() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ProposalItemUpsert) AddUnitPrice(v float64) *ProposalItemUpsert {
	u.Add(proposalitem.FieldUnitPrice, v)
	return u
}

// SetTotal sets the "total" field.
func (u *ProposalItemUpsert) SetTotal(v float64) *ProposalItemUpsert {
	u.Set(proposalitem.FieldTotal, v)
	return u
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalItemUpsert) UpdateTotal() *ProposalItemUpsert {
	u.SetExcluded(proposalitem.FieldTotal)
	return u
}

// AddTotal adds v to the "total" field.
func (u *ProposalItemUpsert) AddTotal(v float64) *ProposalItemUpsert {
	u.Add(proposalitem.FieldTotal, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposalitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalItemUpsertOne) UpdateNewValues() *ProposalItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(proposalitem.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProposalItemUpsertOne) Ignore() *ProposalItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalItemUpsertOne) DoNothing() *ProposalItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalItemCreate.OnConflict
// documentation for more info.
func (u *ProposalItemUpsertOne) Update(set func(*ProposalItemUpsert)) *ProposalItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalItemUpsertOne) SetProposalID(v uuid.UUID) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateProposalID() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateProposalID()
	})
}

// SetPosition sets the "position" field.
func (u *ProposalItemUpsertOne) SetPosition(v int) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ProposalItemUpsertOne) AddPosition(v int) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdatePosition() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdatePosition()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalItemUpsertOne) SetDescription(v string) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateDescription() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *ProposalItemUpsertOne) SetQuantity(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *ProposalItemUpsertOne) AddQuantity(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateQuantity() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnit sets the "unit" field.
func (u *ProposalItemUpsertOne) SetUnit(v string) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateUnit() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateUnit()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *ProposalItemUpsertOne) SetUnitPrice(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ProposalItemUpsertOne) AddUnitPrice(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateUnitPrice() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetTotal sets the "total" field.
func (u *ProposalItemUpsertOne) SetTotal(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ProposalItemUpsertOne) AddTotal(v float64) *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalItemUpsertOne) UpdateTotal() *ProposalItemUpsertOne {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *ProposalItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProposalItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProposalItemUpsertOne.ID is not supported by MySQL driver. Use ProposalItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProposalItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProposalItemCreateBulk is the builder for creating many ProposalItem entities in bulk.
type ProposalItemCreateBulk struct {
	config
	err      error
	builders []*ProposalItemCreate
	conflict []sql.ConflictOption
}

// Save creates the ProposalItem entities in the database.
func (_c *ProposalItemCreateBulk) Save(ctx context.Context) ([]*ProposalItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProposalItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProposalItemMutation)
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
func (_c *ProposalItemCreateBulk) SaveX(ctx context.Context) []*ProposalItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProposalItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProposalItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProposalItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProposalItemUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProposalItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProposalItemUpsertBulk {
	_c.conflict = opts
	return &ProposalItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProposalItemCreateBulk) OnConflictColumns(columns ...string) *ProposalItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProposalItemUpsertBulk{
		create: _c,
	}
}

// ProposalItemUpsertBulk is the builder for "upsert"-ing
// a bulk of ProposalItem nodes.
type ProposalItemUpsertBulk struct {
	create *ProposalItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(proposalitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProposalItemUpsertBulk) UpdateNewValues() *ProposalItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(proposalitem.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProposalItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProposalItemUpsertBulk) Ignore() *ProposalItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProposalItemUpsertBulk) DoNothing() *ProposalItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProposalItemCreateBulk.OnConflict
// documentation for more info.
func (u *ProposalItemUpsertBulk) Update(set func(*ProposalItemUpsert)) *ProposalItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProposalItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *ProposalItemUpsertBulk) SetProposalID(v uuid.UUID) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateProposalID() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateProposalID()
	})
}

// SetPosition sets the "position" field.
func (u *ProposalItemUpsertBulk) SetPosition(v int) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *ProposalItemUpsertBulk) AddPosition(v int) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdatePosition() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdatePosition()
	})
}

// SetDescription sets the "description" field.
func (u *ProposalItemUpsertBulk) SetDescription(v string) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateDescription() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateDescription()
	})
}

// SetQuantity sets the "quantity" field.
func (u *ProposalItemUpsertBulk) SetQuantity(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *ProposalItemUpsertBulk) AddQuantity(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateQuantity() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetUnit sets the "unit" field.
func (u *ProposalItemUpsertBulk) SetUnit(v string) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetUnit(v)
	})
}

// UpdateUnit sets the "unit" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateUnit() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateUnit()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *ProposalItemUpsertBulk) SetUnitPrice(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *ProposalItemUpsertBulk) AddUnitPrice(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateUnitPrice() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetTotal sets the "total" field.
func (u *ProposalItemUpsertBulk) SetTotal(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.SetTotal(v)
	})
}

// AddTotal adds v to the "total" field.
func (u *ProposalItemUpsertBulk) AddTotal(v float64) *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.AddTotal(v)
	})
}

// UpdateTotal sets the "total" field to the value that was provided on create.
func (u *ProposalItemUpsertBulk) UpdateTotal() *ProposalItemUpsertBulk {
	return u.Update(func(s *ProposalItemUpsert) {
		s.UpdateTotal()
	})
}

// Exec executes the query.
func (u *ProposalItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProposalItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProposalItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProposalItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
