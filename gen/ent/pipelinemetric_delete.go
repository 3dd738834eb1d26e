// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
)

// PipelineMetricDelete is the builder for deleting a PipelineMetric entity.
type PipelineMetricDelete struct {
	config
	hooks    []Hook
	mutation *PipelineMetricMutation
}

// Where appends a list predicates to the PipelineMetricDelete builder.
func (_d *PipelineMetricDelete) Where(ps ...predicate.PipelineMetric) *PipelineMetricDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PipelineMetricDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PipelineMetricDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PipelineMetricDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(pipelinemetric.Table, sqlgraph.NewFieldSpec(pipelinemetric.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PipelineMetricDeleteOne is the builder for deleting a single PipelineMetric entity.
type PipelineMetricDeleteOne struct {
	_d *PipelineMetricDelete
}

// Where appends a list predicates to the PipelineMetricDelete builder.
func (_d *PipelineMetricDeleteOne) Where(ps ...predicate.PipelineMetric) *PipelineMetricDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PipelineMetricDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{pipelinemetric.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PipelineMetricDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
