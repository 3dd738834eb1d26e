// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/google/uuid"
)

// PipelineMetricCreate is the builder for creating a PipelineMetric entity.
type PipelineMetricCreate struct {
	config
	mutation *PipelineMetricMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetMetricDate sets the "metric_date" field.
func (_c *PipelineMetricCreate) SetMetricDate(v time.Time) *PipelineMetricCreate {
	_c.mutation.SetMetricDate(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *PipelineMetricCreate) SetStage(v string) *PipelineMetricCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *PipelineMetricCreate) SetAttempts(v int) *PipelineMetricCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *PipelineMetricCreate) SetNillableAttempts(v *int) *PipelineMetricCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetSuccesses sets the "successes" field.
func (_c *PipelineMetricCreate) SetSuccesses(v int) *PipelineMetricCreate {
	_c.mutation.SetSuccesses(v)
	return _c
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_c *PipelineMetricCreate) SetNillableSuccesses(v *int) *PipelineMetricCreate {
	if v != nil {
		_c.SetSuccesses(*v)
	}
	return _c
}

// SetErrors sets the "errors" field.
func (_c *PipelineMetricCreate) SetErrors(v int) *PipelineMetricCreate {
	_c.mutation.SetErrors(v)
	return _c
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_c *PipelineMetricCreate) SetNillableErrors(v *int) *PipelineMetricCreate {
	if v != nil {
		_c.SetErrors(*v)
	}
	return _c
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_c *PipelineMetricCreate) SetAvgDurationMs(v int64) *PipelineMetricCreate {
	_c.mutation.SetAvgDurationMs(v)
	return _c
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_c *PipelineMetricCreate) SetNillableAvgDurationMs(v *int64) *PipelineMetricCreate {
	if v != nil {
		_c.SetAvgDurationMs(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineMetricCreate) SetID(v uuid.UUID) *PipelineMetricCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PipelineMetricCreate) SetNillableID(v *uuid.UUID) *PipelineMetricCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PipelineMetricMutation object of the builder.
func (_c *PipelineMetricCreate) Mutation() *PipelineMetricMutation {
	return _c.mutation
}

// Save creates the PipelineMetric in the database.
func (_c *PipelineMetricCreate) Save(ctx context.Context) (*PipelineMetric, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineMetricCreate) SaveX(ctx context.Context) *PipelineMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineMetricCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineMetricCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineMetricCreate) defaults() {
	if _, ok := _c.mutation.Attempts(); !ok {
		v := pipelinemetric.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.Successes(); !ok {
		v := pipelinemetric.DefaultSuccesses
		_c.mutation.SetSuccesses(v)
	}
	if _, ok := _c.mutation.Errors(); !ok {
		v := pipelinemetric.DefaultErrors
		_c.mutation.SetErrors(v)
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		v := pipelinemetric.DefaultAvgDurationMs
		_c.mutation.SetAvgDurationMs(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pipelinemetric.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineMetricCreate) check() error {
	if _, ok := _c.mutation.MetricDate(); !ok {
		return &ValidationError{Name: "metric_date", err: errors.New(`ent: missing required field "PipelineMetric.metric_date"`)}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "PipelineMetric.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := pipelinemetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "PipelineMetric.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := pipelinemetric.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Successes(); !ok {
		return &ValidationError{Name: "successes", err: errors.New(`ent: missing required field "PipelineMetric.successes"`)}
	}
	if v, ok := _c.mutation.Successes(); ok {
		if err := pipelinemetric.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.successes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Errors(); !ok {
		return &ValidationError{Name: "errors", err: errors.New(`ent: missing required field "PipelineMetric.errors"`)}
	}
	if v, ok := _c.mutation.Errors(); ok {
		if err := pipelinemetric.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.errors": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AvgDurationMs(); !ok {
		return &ValidationError{Name: "avg_duration_ms", err: errors.New(`ent: missing required field "PipelineMetric.avg_duration_ms"`)}
	}
	return nil
}

func (_c *PipelineMetricCreate) sqlSave(ctx context.Context) (*PipelineMetric, error) {
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

func (_c *PipelineMetricCreate) createSpec() (*PipelineMetric, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineMetric{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinemetric.Table, sqlgraph.NewFieldSpec(pipelinemetric.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.MetricDate(); ok {
		_spec.SetField(pipelinemetric.FieldMetricDate, field.TypeTime, value)
		_node.MetricDate = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(pipelinemetric.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(pipelinemetric.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Successes(); ok {
		_spec.SetField(pipelinemetric.FieldSuccesses, field.TypeInt, value)
		_node.Successes = value
	}
	if value, ok := _c.mutation.Errors(); ok {
		_spec.SetField(pipelinemetric.FieldErrors, field.TypeInt, value)
		_node.Errors = value
	}
	if value, ok := _c.mutation.AvgDurationMs(); ok {
		_spec.SetField(pipelinemetric.FieldAvgDurationMs, field.TypeInt64, value)
		_node.AvgDurationMs = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineMetric.Create().
//		SetMetricDate(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineMetricUpsert) {
//			SetMetricDate(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineMetricCreate) OnConflict(opts ...sql.ConflictOption) *PipelineMetricUpsertOne {
	_c.conflict = opts
	return &PipelineMetricUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineMetricCreate) OnConflictColumns(columns ...string) *PipelineMetricUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineMetricUpsertOne{
		create: _c,
	}
}

type (
	// PipelineMetricUpsertOne is the builder for "upsert"-ing
	//  one PipelineMetric node.
	PipelineMetricUpsertOne struct {
		create *PipelineMetricCreate
	}

	// PipelineMetricUpsert is the "OnConflict" setter.
	PipelineMetricUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetricDate sets the "metric_date" field.
func (u *PipelineMetricUpsert) SetMetricDate(v time.Time) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldMetricDate, v)
	return u
}

// UpdateMetricDate sets the "metric_date" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateMetricDate() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldMetricDate)
	return u
}

// SetStage sets the "stage" field.
func (u *PipelineMetricUpsert) SetStage(v string) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldStage, v)
	return u
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateStage() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldStage)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *PipelineMetricUpsert) SetAttempts(v int) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateAttempts() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineMetricUpsert) AddAttempts(v int) *PipelineMetricUpsert {
	u.Add(pipelinemetric.FieldAttempts, v)
	return u
}

// SetSuccesses sets the "successes" field.
func (u *PipelineMetricUpsert) SetSuccesses(v int) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldSuccesses, v)
	return u
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateSuccesses() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldSuccesses)
	return u
}

// AddSuccesses adds v to the "successes" field.
func (u *PipelineMetricUpsert) AddSuccesses(v int) *PipelineMetricUpsert {
	u.Add(pipelinemetric.FieldSuccesses, v)
	return u
}

// SetErrors sets the "errors" field.
func (u *PipelineMetricUpsert) SetErrors(v int) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldErrors, v)
	return u
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateErrors() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldErrors)
	return u
}

// AddErrors adds v to the "errors" field.
func (u *PipelineMetricUpsert) AddErrors(v int) *PipelineMetricUpsert {
	u.Add(pipelinemetric.FieldErrors, v)
	return u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *PipelineMetricUpsert) SetAvgDurationMs(v int64) *PipelineMetricUpsert {
	u.Set(pipelinemetric.FieldAvgDurationMs, v)
	return u
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *PipelineMetricUpsert) UpdateAvgDurationMs() *PipelineMetricUpsert {
	u.SetExcluded(pipelinemetric.FieldAvgDurationMs)
	return u
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *PipelineMetricUpsert) AddAvgDurationMs(v int64) *PipelineMetricUpsert {
	u.Add(pipelinemetric.FieldAvgDurationMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinemetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineMetricUpsertOne) UpdateNewValues() *PipelineMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pipelinemetric.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PipelineMetricUpsertOne) Ignore() *PipelineMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineMetricUpsertOne) DoNothing() *PipelineMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineMetricCreate.OnConflict
// documentation for more info.
func (u *PipelineMetricUpsertOne) Update(set func(*PipelineMetricUpsert)) *PipelineMetricUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetricDate sets the "metric_date" field.
func (u *PipelineMetricUpsertOne) SetMetricDate(v time.Time) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetMetricDate(v)
	})
}

// UpdateMetricDate sets the "metric_date" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateMetricDate() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateMetricDate()
	})
}

// SetStage sets the "stage" field.
func (u *PipelineMetricUpsertOne) SetStage(v string) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateStage() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateStage()
	})
}

// SetAttempts sets the "attempts" field.
func (u *PipelineMetricUpsertOne) SetAttempts(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineMetricUpsertOne) AddAttempts(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateAttempts() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateAttempts()
	})
}

// SetSuccesses sets the "successes" field.
func (u *PipelineMetricUpsertOne) SetSuccesses(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *PipelineMetricUpsertOne) AddSuccesses(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateSuccesses() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateSuccesses()
	})
}

// SetErrors sets the "errors" field.
func (u *PipelineMetricUpsertOne) SetErrors(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetErrors(v)
	})
}

// AddErrors adds v to the "errors" field.
func (u *PipelineMetricUpsertOne) AddErrors(v int) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateErrors() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateErrors()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *PipelineMetricUpsertOne) SetAvgDurationMs(v int64) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *PipelineMetricUpsertOne) AddAvgDurationMs(v int64) *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *PipelineMetricUpsertOne) UpdateAvgDurationMs() *PipelineMetricUpsertOne {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// Exec executes the query.
func (u *PipelineMetricUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineMetricCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineMetricUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PipelineMetricUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PipelineMetricUpsertOne.ID is not supported by MySQL driver. Use PipelineMetricUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PipelineMetricUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PipelineMetricCreateBulk is the builder for creating many PipelineMetric entities in bulk.
type PipelineMetricCreateBulk struct {
	config
	err      error
	builders []*PipelineMetricCreate
	conflict []sql.ConflictOption
}

// Save creates the PipelineMetric entities in the database.
func (_c *PipelineMetricCreateBulk) Save(ctx context.Context) ([]*PipelineMetric, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineMetric, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineMetricMutation)
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
func (_c *PipelineMetricCreateBulk) SaveX(ctx context.Context) []*PipelineMetric {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineMetricCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineMetricCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PipelineMetric.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PipelineMetricUpsert) {
//			SetMetricDate(v+v).
//		}).
//		Exec(ctx)
func (_c *PipelineMetricCreateBulk) OnConflict(opts ...sql.ConflictOption) *PipelineMetricUpsertBulk {
	_c.conflict = opts
	return &PipelineMetricUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PipelineMetricCreateBulk) OnConflictColumns(columns ...string) *PipelineMetricUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PipelineMetricUpsertBulk{
		create: _c,
	}
}

// PipelineMetricUpsertBulk is the builder for "upsert"-ing
// a bulk of PipelineMetric nodes.
type PipelineMetricUpsertBulk struct {
	create *PipelineMetricCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pipelinemetric.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PipelineMetricUpsertBulk) UpdateNewValues() *PipelineMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pipelinemetric.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PipelineMetric.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PipelineMetricUpsertBulk) Ignore() *PipelineMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PipelineMetricUpsertBulk) DoNothing() *PipelineMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PipelineMetricCreateBulk.OnConflict
// documentation for more info.
func (u *PipelineMetricUpsertBulk) Update(set func(*PipelineMetricUpsert)) *PipelineMetricUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PipelineMetricUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetricDate sets the "metric_date" field.
func (u *PipelineMetricUpsertBulk) SetMetricDate(v time.Time) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetMetricDate(v)
	})
}

// UpdateMetricDate sets the "metric_date" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateMetricDate() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateMetricDate()
	})
}

// SetStage sets the "stage" field.
func (u *PipelineMetricUpsertBulk) SetStage(v string) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetStage(v)
	})
}

// UpdateStage sets the "stage" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateStage() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateStage()
	})
}

// SetAttempts sets the "attempts" field.
func (u *PipelineMetricUpsertBulk) SetAttempts(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *PipelineMetricUpsertBulk) AddAttempts(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateAttempts() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateAttempts()
	})
}

// SetSuccesses sets the "successes" field.
func (u *PipelineMetricUpsertBulk) SetSuccesses(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetSuccesses(v)
	})
}

// AddSuccesses adds v to the "successes" field.
func (u *PipelineMetricUpsertBulk) AddSuccesses(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddSuccesses(v)
	})
}

// UpdateSuccesses sets the "successes" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateSuccesses() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateSuccesses()
	})
}

// SetErrors sets the "errors" field.
func (u *PipelineMetricUpsertBulk) SetErrors(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetErrors(v)
	})
}

// AddErrors adds v to the "errors" field.
func (u *PipelineMetricUpsertBulk) AddErrors(v int) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddErrors(v)
	})
}

// UpdateErrors sets the "errors" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateErrors() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateErrors()
	})
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (u *PipelineMetricUpsertBulk) SetAvgDurationMs(v int64) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.SetAvgDurationMs(v)
	})
}

// AddAvgDurationMs adds v to the "avg_duration_ms" field.
func (u *PipelineMetricUpsertBulk) AddAvgDurationMs(v int64) *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.AddAvgDurationMs(v)
	})
}

// UpdateAvgDurationMs sets the "avg_duration_ms" field to the value that was provided on create.
func (u *PipelineMetricUpsertBulk) UpdateAvgDurationMs() *PipelineMetricUpsertBulk {
	return u.Update(func(s *PipelineMetricUpsert) {
		s.UpdateAvgDurationMs()
	})
}

// Exec executes the query.
func (u *PipelineMetricUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PipelineMetricCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PipelineMetricCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PipelineMetricUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
