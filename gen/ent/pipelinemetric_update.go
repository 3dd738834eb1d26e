// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
)

// PipelineMetricUpdate is the builder for updating PipelineMetric entities.
type PipelineMetricUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineMetricMutation
}

// Where appends a list predicates to the PipelineMetricUpdate builder.
func (_u *PipelineMetricUpdate) Where(ps ...predicate.PipelineMetric) *PipelineMetricUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetricDate sets the "metric_date" field.
func (_u *PipelineMetricUpdate) SetMetricDate(v time.Time) *PipelineMetricUpdate {
	_u.mutation.SetMetricDate(v)
	return _u
}

// SetNillableMetricDate sets the "metric_date" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableMetricDate(v *time.Time) *PipelineMetricUpdate {
	if v != nil {
		_u.SetMetricDate(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *PipelineMetricUpdate) SetStage(v string) *PipelineMetricUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableStage(v *string) *PipelineMetricUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PipelineMetricUpdate) SetAttempts(v int) *PipelineMetricUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableAttempts(v *int) *PipelineMetricUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PipelineMetricUpdate) AddAttempts(v int) *PipelineMetricUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *PipelineMetricUpdate) SetSuccesses(v int) *PipelineMetricUpdate {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableSuccesses(v *int) *PipelineMetricUpdate {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *PipelineMetricUpdate) AddSuccesses(v int) *PipelineMetricUpdate {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *PipelineMetricUpdate) SetErrors(v int) *PipelineMetricUpdate {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableErrors(v *int) *PipelineMetricUpdate {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *PipelineMetricUpdate) AddErrors(v int) *PipelineMetricUpdate {
	_u.mutation.AddErrors(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *PipelineMetricUpdate) SetAvgDurationMs(v int64) *PipelineMetricUpdate {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *PipelineMetricUpdate) SetNillableAvgDurationMs(v *int64) *PipelineMetricUpdate {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *PipelineMetricUpdate) AddAvgDurationMs(v int64) *PipelineMetricUpdate {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// Mutation returns the PipelineMetricMutation object of the builder.
func (_u *PipelineMetricUpdate) Mutation() *PipelineMetricMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineMetricUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineMetricUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineMetricUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineMetricUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineMetricUpdate) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinemetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := pipelinemetric.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Successes(); ok {
		if err := pipelinemetric.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.successes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Errors(); ok {
		if err := pipelinemetric.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.errors": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineMetricUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinemetric.Table, pipelinemetric.Columns, sqlgraph.NewFieldSpec(pipelinemetric.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.MetricDate(); ok {
		_spec.SetField(pipelinemetric.FieldMetricDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinemetric.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(pipelinemetric.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(pipelinemetric.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(pipelinemetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(pipelinemetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(pipelinemetric.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(pipelinemetric.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(pipelinemetric.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(pipelinemetric.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineMetricUpdateOne is the builder for updating a single PipelineMetric entity.
type PipelineMetricUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineMetricMutation
}

// SetMetricDate sets the "metric_date" field.
func (_u *PipelineMetricUpdateOne) SetMetricDate(v time.Time) *PipelineMetricUpdateOne {
	_u.mutation.SetMetricDate(v)
	return _u
}

// SetNillableMetricDate sets the "metric_date" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableMetricDate(v *time.Time) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetMetricDate(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *PipelineMetricUpdateOne) SetStage(v string) *PipelineMetricUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableStage(v *string) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *PipelineMetricUpdateOne) SetAttempts(v int) *PipelineMetricUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableAttempts(v *int) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *PipelineMetricUpdateOne) AddAttempts(v int) *PipelineMetricUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSuccesses sets the "successes" field.
func (_u *PipelineMetricUpdateOne) SetSuccesses(v int) *PipelineMetricUpdateOne {
	_u.mutation.ResetSuccesses()
	_u.mutation.SetSuccesses(v)
	return _u
}

// SetNillableSuccesses sets the "successes" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableSuccesses(v *int) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetSuccesses(*v)
	}
	return _u
}

// AddSuccesses adds value to the "successes" field.
func (_u *PipelineMetricUpdateOne) AddSuccesses(v int) *PipelineMetricUpdateOne {
	_u.mutation.AddSuccesses(v)
	return _u
}

// SetErrors sets the "errors" field.
func (_u *PipelineMetricUpdateOne) SetErrors(v int) *PipelineMetricUpdateOne {
	_u.mutation.ResetErrors()
	_u.mutation.SetErrors(v)
	return _u
}

// SetNillableErrors sets the "errors" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableErrors(v *int) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetErrors(*v)
	}
	return _u
}

// AddErrors adds value to the "errors" field.
func (_u *PipelineMetricUpdateOne) AddErrors(v int) *PipelineMetricUpdateOne {
	_u.mutation.AddErrors(v)
	return _u
}

// SetAvgDurationMs sets the "avg_duration_ms" field.
func (_u *PipelineMetricUpdateOne) SetAvgDurationMs(v int64) *PipelineMetricUpdateOne {
	_u.mutation.ResetAvgDurationMs()
	_u.mutation.SetAvgDurationMs(v)
	return _u
}

// SetNillableAvgDurationMs sets the "avg_duration_ms" field if the given value is not nil.
func (_u *PipelineMetricUpdateOne) SetNillableAvgDurationMs(v *int64) *PipelineMetricUpdateOne {
	if v != nil {
		_u.SetAvgDurationMs(*v)
	}
	return _u
}

// AddAvgDurationMs adds value to the "avg_duration_ms" field.
func (_u *PipelineMetricUpdateOne) AddAvgDurationMs(v int64) *PipelineMetricUpdateOne {
	_u.mutation.AddAvgDurationMs(v)
	return _u
}

// Mutation returns the PipelineMetricMutation object of the builder.
func (_u *PipelineMetricUpdateOne) Mutation() *PipelineMetricMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineMetricUpdate builder.
func (_u *PipelineMetricUpdateOne) Where(ps ...predicate.PipelineMetric) *PipelineMetricUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineMetricUpdateOne) Select(field string, fields ...string) *PipelineMetricUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineMetric entity.
func (_u *PipelineMetricUpdateOne) Save(ctx context.Context) (*PipelineMetric, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineMetricUpdateOne) SaveX(ctx context.Context) *PipelineMetric {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineMetricUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineMetricUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineMetricUpdateOne) check() error {
	if v, ok := _u.mutation.Stage(); ok {
		if err := pipelinemetric.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Attempts(); ok {
		if err := pipelinemetric.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Successes(); ok {
		if err := pipelinemetric.SuccessesValidator(v); err != nil {
			return &ValidationError{Name: "successes", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.successes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Errors(); ok {
		if err := pipelinemetric.ErrorsValidator(v); err != nil {
			return &ValidationError{Name: "errors", err: fmt.Errorf(`ent: validator failed for field "PipelineMetric.errors": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineMetricUpdateOne) sqlSave(ctx context.Context) (_node *PipelineMetric, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinemetric.Table, pipelinemetric.Columns, sqlgraph.NewFieldSpec(pipelinemetric.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineMetric.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinemetric.FieldID)
		for _, f := range fields {
			if !pipelinemetric.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinemetric.FieldID {
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
	if value, ok := _u.mutation.MetricDate(); ok {
		_spec.SetField(pipelinemetric.FieldMetricDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(pipelinemetric.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(pipelinemetric.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(pipelinemetric.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Successes(); ok {
		_spec.SetField(pipelinemetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccesses(); ok {
		_spec.AddField(pipelinemetric.FieldSuccesses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Errors(); ok {
		_spec.SetField(pipelinemetric.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrors(); ok {
		_spec.AddField(pipelinemetric.FieldErrors, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgDurationMs(); ok {
		_spec.SetField(pipelinemetric.FieldAvgDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAvgDurationMs(); ok {
		_spec.AddField(pipelinemetric.FieldAvgDurationMs, field.TypeInt64, value)
	}
	_node = &PipelineMetric{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinemetric.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
