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
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// PaymentConditionCreate is the builder for creating a PaymentCondition entity.
type PaymentConditionCreate struct {
	config
	mutation *PaymentConditionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProposalID sets the "proposal_id" field.
func (_c *PaymentConditionCreate) SetProposalID(v uuid.UUID) *PaymentConditionCreate {
	_c.mutation.SetProposalID(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PaymentConditionCreate) SetDescription(v string) *PaymentConditionCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetInstallments sets the "installments" field.
func (_c *PaymentConditionCreate) SetInstallments(v int) *PaymentConditionCreate {
	_c.mutation.SetInstallments(v)
	return _c
}

// SetNillableInstallments sets the "installments" field if the given value is not nil.
func (_c *PaymentConditionCreate) SetNillableInstallments(v *int) *PaymentConditionCreate {
	if v != nil {
		_c.SetInstallments(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *PaymentConditionCreate) SetMethod(v string) *PaymentConditionCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetNillableMethod sets the "method" field if the given value is not nil.
func (_c *PaymentConditionCreate) SetNillableMethod(v *string) *PaymentConditionCreate {
	if v != nil {
		_c.SetMethod(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaymentConditionCreate) SetID(v uuid.UUID) *PaymentConditionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaymentConditionCreate) SetNillableID(v *uuid.UUID) *PaymentConditionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProposal sets the "proposal" edge to the Proposal entity.
func (_c *PaymentConditionCreate) SetProposal(v *Proposal) *PaymentConditionCreate {
	return _c.SetProposalID(v.ID)
}

// Mutation returns the PaymentConditionMutation object of the builder.
func (_c *PaymentConditionCreate) Mutation() *PaymentConditionMutation {
	return _c.mutation
}

// Save creates the PaymentCondition in the database.
func (_c *PaymentConditionCreate) Save(ctx context.Context) (*PaymentCondition, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaymentConditionCreate) SaveX(ctx context.Context) *PaymentCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentConditionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentConditionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaymentConditionCreate) defaults() {
	if _, ok := _c.mutation.Installments(); !ok {
		v := paymentcondition.DefaultInstallments
		_c.mutation.SetInstallments(v)
	}
	if _, ok := _c.mutation.Method(); !ok {
		v := paymentcondition.DefaultMethod
		_c.mutation.SetMethod(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paymentcondition.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaymentConditionCreate) check() error {
	if _, ok := _c.mutation.ProposalID(); !ok {
		return &ValidationError{Name: "proposal_id", err: errors.New(`ent: missing required field "PaymentCondition.proposal_id"`)}
	}
	if _, ok := _c.mutation.Description(); !ok {
		return &ValidationError{Name: "description", err: errors.New(`ent: missing required field "PaymentCondition.description"`)}
	}
	if _, ok := _c.mutation.Installments(); !ok {
		return &ValidationError{Name: "installments", err: errors.New(`ent: missing required field "PaymentCondition.installments"`)}
	}
	if v, ok := _c.mutation.Installments(); ok {
		if err := paymentcondition.InstallmentsValidator(v); err != nil {
			return &ValidationError{Name: "installments", err: fmt.Errorf(`ent: validator failed for field "PaymentCondition.installments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "PaymentCondition.method"`)}
	}
	if len(_c.mutation.ProposalIDs()) == 0 {
		return &ValidationError{Name: "proposal", err: errors.New(`ent: missing required edge "PaymentCondition.proposal"`)}
	}
	return nil
}

func (_c *PaymentConditionCreate) sqlSave(ctx context.Context) (*PaymentCondition, error) {
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

func (_c *PaymentConditionCreate) createSpec() (*PaymentCondition, *sqlgraph.CreateSpec) {
	var (
		_node = &PaymentCondition{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paymentcondition.Table, sqlgraph.NewFieldSpec(paymentcondition.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(paymentcondition.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Installments(); ok {
		_spec.SetField(paymentcondition.FieldInstallments, field.TypeInt, value)
		_node.Installments = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(paymentcondition.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if nodes := _c.mutation.ProposalIDs(); len(nodes) > 0 {
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
		_node.ProposalID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentCondition.Create().
//		SetProposalID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentConditionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentConditionCreate) OnConflict(opts ...sql.ConflictOption) *PaymentConditionUpsertOne {
	_c.conflict = opts
	return &PaymentConditionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentConditionCreate) OnConflictColumns(columns ...string) *PaymentConditionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentConditionUpsertOne{
		create: _c,
	}
}

type (
	// PaymentConditionUpsertOne is the builder for "upsert"-ing
	//  one PaymentCondition node.
	PaymentConditionUpsertOne struct {
		create *PaymentConditionCreate
	}

	// PaymentConditionUpsert is the "OnConflict" setter.
	PaymentConditionUpsert struct {
		*sql.UpdateSet
	}
)

// SetProposalID sets the "proposal_id" field.
func (u *PaymentConditionUpsert) SetProposalID(v uuid.UUID) *PaymentConditionUpsert {
	u.Set(paymentcondition.FieldProposalID, v)
	return u
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *PaymentConditionUpsert) UpdateProposalID() *PaymentConditionUpsert {
	u.SetExcluded(paymentcondition.FieldProposalID)
	return u
}

// SetDescription sets the "description" field.
func (u *PaymentConditionUpsert) SetDescription(v string) *PaymentConditionUpsert {
	u.Set(paymentcondition.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PaymentConditionUpsert) UpdateDescription() *PaymentConditionUpsert {
	u.SetExcluded(paymentcondition.FieldDescription)
	return u
}

// SetInstallments sets the "installments" field.
func (u *PaymentConditionUpsert) SetInstallments(v int) *PaymentConditionUpsert {
	u.Set(paymentcondition.FieldInstallments, v)
	return u
}

// UpdateInstallments sets the "installments" field to the value that was provided on create.
func (u *PaymentConditionUpsert) UpdateInstallments() *PaymentConditionUpsert {
	u.SetExcluded(paymentcondition.FieldInstallments)
	return u
}

// AddInstallments adds v to the "installments" field.
func (u *PaymentConditionUpsert) AddInstallments(v int) *PaymentConditionUpsert {
	u.Add(paymentcondition.FieldInstallments, v)
	return u
}

// SetMethod sets the "method" field.
func (u *PaymentConditionUpsert) SetMethod(v string) *PaymentConditionUpsert {
	u.Set(paymentcondition.FieldMethod, v)
	return u
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentConditionUpsert) UpdateMethod() *PaymentConditionUpsert {
	u.SetExcluded(paymentcondition.FieldMethod)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentcondition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentConditionUpsertOne) UpdateNewValues() *PaymentConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(paymentcondition.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PaymentConditionUpsertOne) Ignore() *PaymentConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentConditionUpsertOne) DoNothing() *PaymentConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentConditionCreate.OnConflict
// documentation for more info.
func (u *PaymentConditionUpsertOne) Update(set func(*PaymentConditionUpsert)) *PaymentConditionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *PaymentConditionUpsertOne) SetProposalID(v uuid.UUID) *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *PaymentConditionUpsertOne) UpdateProposalID() *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateProposalID()
	})
}

// SetDescription sets the "description" field.
func (u *PaymentConditionUpsertOne) SetDescription(v string) *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PaymentConditionUpsertOne) UpdateDescription() *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateDescription()
	})
}

// SetInstallments sets the "installments" field.
func (u *PaymentConditionUpsertOne) SetInstallments(v int) *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetInstallments(v)
	})
}

// AddInstallments adds v to the "installments" field.
func (u *PaymentConditionUpsertOne) AddInstallments(v int) *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.AddInstallments(v)
	})
}

// UpdateInstallments sets the "installments" field to the value that was provided on create.
func (u *PaymentConditionUpsertOne) UpdateInstallments() *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateInstallments()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentConditionUpsertOne) SetMethod(v string) *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentConditionUpsertOne) UpdateMethod() *PaymentConditionUpsertOne {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateMethod()
	})
}

// Exec executes the query.
func (u *PaymentConditionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentConditionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentConditionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PaymentConditionUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PaymentConditionUpsertOne.ID is not supported by MySQL driver. Use PaymentConditionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PaymentConditionUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PaymentConditionCreateBulk is the builder for creating many PaymentCondition entities in bulk.
type PaymentConditionCreateBulk struct {
	config
	err      error
	builders []*PaymentConditionCreate
	conflict []sql.ConflictOption
}

// Save creates the PaymentCondition entities in the database.
func (_c *PaymentConditionCreateBulk) Save(ctx context.Context) ([]*PaymentCondition, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PaymentCondition, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaymentConditionMutation)
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
func (_c *PaymentConditionCreateBulk) SaveX(ctx context.Context) []*PaymentCondition {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaymentConditionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaymentConditionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PaymentCondition.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PaymentConditionUpsert) {
//			SetProposalID(v+v).
//		}).
//		Exec(ctx)
func (_c *PaymentConditionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PaymentConditionUpsertBulk {
	_c.conflict = opts
	return &PaymentConditionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PaymentConditionCreateBulk) OnConflictColumns(columns ...string) *PaymentConditionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PaymentConditionUpsertBulk{
		create: _c,
	}
}

// PaymentConditionUpsertBulk is the builder for "upsert"-ing
// a bulk of PaymentCondition nodes.
type PaymentConditionUpsertBulk struct {
	create *PaymentConditionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(paymentcondition.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PaymentConditionUpsertBulk) UpdateNewValues() *PaymentConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(paymentcondition.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PaymentCondition.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PaymentConditionUpsertBulk) Ignore() *PaymentConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PaymentConditionUpsertBulk) DoNothing() *PaymentConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PaymentConditionCreateBulk.OnConflict
// documentation for more info.
func (u *PaymentConditionUpsertBulk) Update(set func(*PaymentConditionUpsert)) *PaymentConditionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PaymentConditionUpsert{UpdateSet: update})
	}))
	return u
}

// SetProposalID sets the "proposal_id" field.
func (u *PaymentConditionUpsertBulk) SetProposalID(v uuid.UUID) *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetProposalID(v)
	})
}

// UpdateProposalID sets the "proposal_id" field to the value that was provided on create.
func (u *PaymentConditionUpsertBulk) UpdateProposalID() *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateProposalID()
	})
}

// SetDescription sets the "description" field.
func (u *PaymentConditionUpsertBulk) SetDescription(v string) *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *PaymentConditionUpsertBulk) UpdateDescription() *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateDescription()
	})
}

// SetInstallments sets the "installments" field.
func (u *PaymentConditionUpsertBulk) SetInstallments(v int) *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetInstallments(v)
	})
}

// AddInstallments adds v to the "installments" field.
func (u *PaymentConditionUpsertBulk) AddInstallments(v int) *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.AddInstallments(v)
	})
}

// UpdateInstallments sets the "installments" field to the value that was provided on create.
func (u *PaymentConditionUpsertBulk) UpdateInstallments() *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateInstallments()
	})
}

// SetMethod sets the "method" field.
func (u *PaymentConditionUpsertBulk) SetMethod(v string) *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.SetMethod(v)
	})
}

// UpdateMethod sets the "method" field to the value that was provided on create.
func (u *PaymentConditionUpsertBulk) UpdateMethod() *PaymentConditionUpsertBulk {
	return u.Update(func(s *PaymentConditionUpsert) {
		s.UpdateMethod()
	})
}

// Exec executes the query.
func (u *PaymentConditionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PaymentConditionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PaymentConditionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PaymentConditionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
