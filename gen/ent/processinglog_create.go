// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
	"github.com/google/uuid"
)

// ProcessingLogCreate is the builder for creating a ProcessingLog entity.
type ProcessingLogCreate struct {
	config
	mutation *ProcessingLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProcessingID sets the "processing_id" field.
func (_c *ProcessingLogCreate) SetProcessingID(v string) *ProcessingLogCreate {
	_c.mutation.SetProcessingID(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *ProcessingLogCreate) SetStage(v string) *ProcessingLogCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ProcessingLogCreate) SetStatus(v string) *ProcessingLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *ProcessingLogCreate) SetDurationMs(v int64) *ProcessingLogCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableDurationMs(v *int64) *ProcessingLogCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ProcessingLogCreate) SetErrorMessage(v string) *ProcessingLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableErrorMessage(v *string) *ProcessingLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ProcessingLogCreate) SetDetails(v json.RawMessage) *ProcessingLogCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProcessingLogCreate) SetUserID(v string) *ProcessingLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableUserID(v *string) *ProcessingLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetFileName sets the "file_name" field.
func (_c *ProcessingLogCreate) SetFileName(v string) *ProcessingLogCreate {
	_c.mutation.SetFileName(v)
	return _c
}

// SetNillableFileName sets the "file_name" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableFileName(v *string) *ProcessingLogCreate {
	if v != nil {
		_c.SetFileName(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProcessingLogCreate) SetCreatedAt(v time.Time) *ProcessingLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableCreatedAt(v *time.Time) *ProcessingLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessingLogCreate) SetID(v uuid.UUID) *ProcessingLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessingLogCreate) SetNillableID(v *uuid.UUID) *ProcessingLogCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_c *ProcessingLogCreate) Mutation() *ProcessingLogMutation {
	return _c.mutation
}

// Save creates the ProcessingLog in the database.
func (_c *ProcessingLogCreate) Save(ctx context.Context) (*ProcessingLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessingLogCreate) SaveX(ctx context.Context) *ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessingLogCreate) defaults() {
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := processinglog.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
	if _, ok := _c.mutation.UserID(); !ok {
		v := processinglog.DefaultUserID
		_c.mutation.SetUserID(v)
	}
	if _, ok := _c.mutation.FileName(); !ok {
		v := processinglog.DefaultFileName
		_c.mutation.SetFileName(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := processinglog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processinglog.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessingLogCreate) check() error {
	if _, ok := _c.mutation.ProcessingID(); !ok {
		return &ValidationError{Name: "processing_id", err: errors.New(`ent: missing required field "ProcessingLog.processing_id"`)}
	}
	if v, ok := _c.mutation.ProcessingID(); ok {
		if err := processinglog.ProcessingIDValidator(v); err != nil {
			return &ValidationError{Name: "processing_id", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.processing_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "ProcessingLog.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := processinglog.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ProcessingLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := processinglog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ProcessingLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "ProcessingLog.duration_ms"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProcessingLog.user_id"`)}
	}
	if _, ok := _c.mutation.FileName(); !ok {
		return &ValidationError{Name: "file_name", err: errors.New(`ent: missing required field "ProcessingLog.file_name"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProcessingLog.created_at"`)}
	}
	return nil
}

func (_c *ProcessingLogCreate) sqlSave(ctx context.Context) (*ProcessingLog, error) {
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

func (_c *ProcessingLogCreate) createSpec() (*ProcessingLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessingLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processinglog.Table, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ProcessingID(); ok {
		_spec.SetField(processinglog.FieldProcessingID, field.TypeString, value)
		_node.ProcessingID = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(processinglog.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(processinglog.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(processinglog.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(processinglog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(processinglog.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(processinglog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileName(); ok {
		_spec.SetField(processinglog.FieldFileName, field.TypeString, value)
		_node.FileName = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(processinglog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessingLog.Create().
//		SetProcessingID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessingLogUpsert) {
//			SetProcessingID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessingLogCreate) OnConflict(opts ...sql.ConflictOption) *ProcessingLogUpsertOne {
	_c.conflict = opts
	return &ProcessingLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessingLogCreate) OnConflictColumns(columns ...string) *ProcessingLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessingLogUpsertOne{
		create: _c,
	}
}

type (
	// ProcessingLogUpsertOne is the builder for "upsert"-ing
	//  one ProcessingLog node.
	ProcessingLogUpsertOne struct {
		create *ProcessingLogCreate
	}

	// ProcessingLogUpsert is the "OnConflict" setter.
	ProcessingLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processinglog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessingLogUpsertOne) UpdateNewValues() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(processinglog.FieldID)
		}
		if _, exists := u.create.mutation.ProcessingID(); exists {
			s.SetIgnore(processinglog.FieldProcessingID)
		}
		if _, exists := u.create.mutation.Stage(); exists {
			s.SetIgnore(processinglog.FieldStage)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(processinglog.FieldStatus)
		}
		if _, exists := u.create.mutation.DurationMs(); exists {
			s.SetIgnore(processinglog.FieldDurationMs)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(processinglog.FieldErrorMessage)
		}
		if _, exists := u.create.mutation.Details(); exists {
			s.SetIgnore(processinglog.FieldDetails)
		}
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(processinglog.FieldUserID)
		}
		if _, exists := u.create.mutation.FileName(); exists {
			s.SetIgnore(processinglog.FieldFileName)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(processinglog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProcessingLogUpsertOne) Ignore() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessingLogUpsertOne) DoNothing() *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessingLogCreate.OnConflict
// documentation for more info.
func (u *ProcessingLogUpsertOne) Update(set func(*ProcessingLogUpsert)) *ProcessingLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessingLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProcessingLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessingLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessingLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProcessingLogUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ProcessingLogUpsertOne.ID is not supported by MySQL driver. Use ProcessingLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProcessingLogUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProcessingLogCreateBulk is the builder for creating many ProcessingLog entities in bulk.
type ProcessingLogCreateBulk struct {
	config
	err      error
	builders []*ProcessingLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ProcessingLog entities in the database.
func (_c *ProcessingLogCreateBulk) Save(ctx context.Context) ([]*ProcessingLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessingLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessingLogMutation)
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
func (_c *ProcessingLogCreateBulk) SaveX(ctx context.Context) []*ProcessingLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessingLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessingLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProcessingLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProcessingLogUpsert) {
//			SetProcessingID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProcessingLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProcessingLogUpsertBulk {
	_c.conflict = opts
	return &ProcessingLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProcessingLogCreateBulk) OnConflictColumns(columns ...string) *ProcessingLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProcessingLogUpsertBulk{
		create: _c,
	}
}

// ProcessingLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ProcessingLog nodes.
type ProcessingLogUpsertBulk struct {
	create *ProcessingLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(processinglog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProcessingLogUpsertBulk) UpdateNewValues() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(processinglog.FieldID)
			}
			if _, exists := b.mutation.ProcessingID(); exists {
				s.SetIgnore(processinglog.FieldProcessingID)
			}
			if _, exists := b.mutation.Stage(); exists {
				s.SetIgnore(processinglog.FieldStage)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(processinglog.FieldStatus)
			}
			if _, exists := b.mutation.DurationMs(); exists {
				s.SetIgnore(processinglog.FieldDurationMs)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(processinglog.FieldErrorMessage)
			}
			if _, exists := b.mutation.Details(); exists {
				s.SetIgnore(processinglog.FieldDetails)
			}
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(processinglog.FieldUserID)
			}
			if _, exists := b.mutation.FileName(); exists {
				s.SetIgnore(processinglog.FieldFileName)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(processinglog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProcessingLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProcessingLogUpsertBulk) Ignore() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProcessingLogUpsertBulk) DoNothing() *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProcessingLogCreateBulk.OnConflict
// documentation for more info.
func (u *ProcessingLogUpsertBulk) Update(set func(*ProcessingLogUpsert)) *ProcessingLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProcessingLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ProcessingLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProcessingLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProcessingLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProcessingLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
