// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/google/uuid"
)

// PipelineMetric is the model entity for the PipelineMetric schema.
type PipelineMetric struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// MetricDate holds the value of the "metric_date" field.
	MetricDate time.Time `json:"metric_date,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// Attempts holds the value of the "attempts" field.
	Attempts int `json:"attempts,omitempty"`
	// Successes holds the value of the "successes" field.
	Successes int `json:"successes,omitempty"`
	// Errors holds the value of the "errors" field.
	Errors int `json:"errors,omitempty"`
	// AvgDurationMs holds the value of the "avg_duration_ms" field.
	AvgDurationMs int64 `json:"avg_duration_ms,omitempty"`
	selectValues  sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineMetric) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinemetric.FieldAttempts, pipelinemetric.FieldSuccesses, pipelinemetric.FieldErrors, pipelinemetric.FieldAvgDurationMs:
			values[i] = new(sql.NullInt64)
		case pipelinemetric.FieldStage:
			values[i] = new(sql.NullString)
		case pipelinemetric.FieldMetricDate:
			values[i] = new(sql.NullTime)
		case pipelinemetric.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineMetric fields.
func (_m *PipelineMetric) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinemetric.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pipelinemetric.FieldMetricDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field metric_date", values[i])
			} else if value.Valid {
				_m.MetricDate = value.Time
			}
		case pipelinemetric.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case pipelinemetric.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case pipelinemetric.FieldSuccesses:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field successes", values[i])
			} else if value.Valid {
				_m.Successes = int(value.Int64)
			}
		case pipelinemetric.FieldErrors:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field errors", values[i])
			} else if value.Valid {
				_m.Errors = int(value.Int64)
			}
		case pipelinemetric.FieldAvgDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_duration_ms", values[i])
			} else if value.Valid {
				_m.AvgDurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineMetric.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineMetric) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineMetric.
// Note that you need to call PipelineMetric.Unwrap() before calling this method if this PipelineMetric
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineMetric) Update() *PipelineMetricUpdateOne {
	return NewPipelineMetricClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineMetric entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineMetric) Unwrap() *PipelineMetric {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineMetric is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineMetric) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineMetric(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("metric_date=")
	builder.WriteString(_m.MetricDate.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("successes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Successes))
	builder.WriteString(", ")
	builder.WriteString("errors=")
	builder.WriteString(fmt.Sprintf("%v", _m.Errors))
	builder.WriteString(", ")
	builder.WriteString("avg_duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgDurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineMetrics is a parsable slice of PipelineMetric.
type PipelineMetrics []*PipelineMetric
