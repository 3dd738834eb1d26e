// Code generated by ent, DO NOT EDIT.

package pipelinemetric

import (
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pipelinemetric type in the database.
	Label = "pipeline_metric"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldMetricDate holds the string denoting the metric_date field in the database.
	FieldMetricDate = "metric_date"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldSuccesses holds the string denoting the successes field in the database.
	FieldSuccesses = "successes"
	// FieldErrors holds the string denoting the errors field in the database.
	FieldErrors = "errors"
	// FieldAvgDurationMs holds the string denoting the avg_duration_ms field in the database.
	FieldAvgDurationMs = "avg_duration_ms"
	// Table holds the table name of the pipelinemetric in the database.
	Table = "pipeline_metrics"
)

// Columns holds all SQL columns for pipelinemetric fields.
var Columns = []string{
	FieldID,
	FieldMetricDate,
	FieldStage,
	FieldAttempts,
	FieldSuccesses,
	FieldErrors,
	FieldAvgDurationMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StageValidator is a validator for the "stage" field. It is called by the builders before save.
	StageValidator func(string) error
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	AttemptsValidator func(int) error
	// DefaultSuccesses holds the default value on creation for the "successes" field.
	DefaultSuccesses int
	// SuccessesValidator is a validator for the "successes" field. It is called by the builders before save.
	SuccessesValidator func(int) error
	// DefaultErrors holds the default value on creation for the "errors" field.
	DefaultErrors int
	// ErrorsValidator is a validator for the "errors" field. It is called by the builders before save.
	ErrorsValidator func(int) error
	// DefaultAvgDurationMs holds the default value on creation for the "avg_duration_ms" field.
	DefaultAvgDurationMs int64
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PipelineMetric queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByMetricDate orders the results by the metric_date field.
func ByMetricDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetricDate, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// BySuccesses orders the results by the successes field.
func BySuccesses(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccesses, opts...).ToFunc()
}

// ByErrors orders the results by the errors field.
func ByErrors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrors, opts...).ToFunc()
}

// ByAvgDurationMs orders the results by the avg_duration_ms field.
func ByAvgDurationMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgDurationMs, opts...).ToFunc()
}
