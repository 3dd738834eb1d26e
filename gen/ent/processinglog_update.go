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
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
)

// ProcessingLogUpdate is the builder for updating ProcessingLog entities.
type ProcessingLogUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdate) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdate) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessingLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessingLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(processinglog.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessingLogUpdateOne is the builder for updating a single ProcessingLog entity.
type ProcessingLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessingLogMutation
}

// Mutation returns the ProcessingLogMutation object of the builder.
func (_u *ProcessingLogUpdateOne) Mutation() *ProcessingLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessingLogUpdate builder.
func (_u *ProcessingLogUpdateOne) Where(ps ...predicate.ProcessingLog) *ProcessingLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessingLogUpdateOne) Select(field string, fields ...string) *ProcessingLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessingLog entity.
func (_u *ProcessingLogUpdateOne) Save(ctx context.Context) (*ProcessingLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) SaveX(ctx context.Context) *ProcessingLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessingLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessingLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ProcessingLogUpdateOne) sqlSave(ctx context.Context) (_node *ProcessingLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(processinglog.Table, processinglog.Columns, sqlgraph.NewFieldSpec(processinglog.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessingLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processinglog.FieldID)
		for _, f := range fields {
			if !processinglog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processinglog.FieldID {
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
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(processinglog.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(processinglog.FieldDetails, field.TypeJSON)
	}
	_node = &ProcessingLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processinglog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
