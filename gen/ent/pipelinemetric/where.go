// Code generated by ent, DO NOT EDIT.

package pipelinemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldID, id))
}

// MetricDate applies equality check predicate on the "metric_date" field. It's identical to MetricDateEQ.
func MetricDate(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldMetricDate, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldStage, v))
}

// Attempts applies equality check predicate on the "attempts" field. It's identical to AttemptsEQ.
func Attempts(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldAttempts, v))
}

// Successes applies equality check predicate on the "successes" field. It's identical to SuccessesEQ.
func Successes(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldSuccesses, v))
}

// Errors applies equality check predicate on the "errors" field. It's identical to ErrorsEQ.
func Errors(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldErrors, v))
}

// AvgDurationMs applies equality check predicate on the "avg_duration_ms" field. It's identical to AvgDurationMsEQ.
func AvgDurationMs(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldAvgDurationMs, v))
}

// MetricDateEQ applies the EQ predicate on the "metric_date" field.
func MetricDateEQ(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldMetricDate, v))
}

// MetricDateNEQ applies the NEQ predicate on the "metric_date" field.
func MetricDateNEQ(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldMetricDate, v))
}

// MetricDateIn applies the In predicate on the "metric_date" field.
func MetricDateIn(vs ...time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldMetricDate, vs...))
}

// MetricDateNotIn applies the NotIn predicate on the "metric_date" field.
func MetricDateNotIn(vs ...time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldMetricDate, vs...))
}

// MetricDateGT applies the GT predicate on the "metric_date" field.
func MetricDateGT(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldMetricDate, v))
}

// MetricDateGTE applies the GTE predicate on the "metric_date" field.
func MetricDateGTE(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldMetricDate, v))
}

// MetricDateLT applies the LT predicate on the "metric_date" field.
func MetricDateLT(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldMetricDate, v))
}

// MetricDateLTE applies the LTE predicate on the "metric_date" field.
func MetricDateLTE(v time.Time) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldMetricDate, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldContainsFold(FieldStage, v))
}

// AttemptsEQ applies the EQ predicate on the "attempts" field.
func AttemptsEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldAttempts, v))
}

// AttemptsNEQ applies the NEQ predicate on the "attempts" field.
func AttemptsNEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldAttempts, v))
}

// AttemptsIn applies the In predicate on the "attempts" field.
func AttemptsIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldAttempts, vs...))
}

// AttemptsNotIn applies the NotIn predicate on the "attempts" field.
func AttemptsNotIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldAttempts, vs...))
}

// AttemptsGT applies the GT predicate on the "attempts" field.
func AttemptsGT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldAttempts, v))
}

// AttemptsGTE applies the GTE predicate on the "attempts" field.
func AttemptsGTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldAttempts, v))
}

// AttemptsLT applies the LT predicate on the "attempts" field.
func AttemptsLT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldAttempts, v))
}

// AttemptsLTE applies the LTE predicate on the "attempts" field.
func AttemptsLTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldAttempts, v))
}

// SuccessesEQ applies the EQ predicate on the "successes" field.
func SuccessesEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldSuccesses, v))
}

// SuccessesNEQ applies the NEQ predicate on the "successes" field.
func SuccessesNEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldSuccesses, v))
}

// SuccessesIn applies the In predicate on the "successes" field.
func SuccessesIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldSuccesses, vs...))
}

// SuccessesNotIn applies the NotIn predicate on the "successes" field.
func SuccessesNotIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldSuccesses, vs...))
}

// SuccessesGT applies the GT predicate on the "successes" field.
func SuccessesGT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldSuccesses, v))
}

// SuccessesGTE applies the GTE predicate on the "successes" field.
func SuccessesGTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldSuccesses, v))
}

// SuccessesLT applies the LT predicate on the "successes" field.
func SuccessesLT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldSuccesses, v))
}

// SuccessesLTE applies the LTE predicate on the "successes" field.
func SuccessesLTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldSuccesses, v))
}

// ErrorsEQ applies the EQ predicate on the "errors" field.
func ErrorsEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldErrors, v))
}

// ErrorsNEQ applies the NEQ predicate on the "errors" field.
func ErrorsNEQ(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldErrors, v))
}

// ErrorsIn applies the In predicate on the "errors" field.
func ErrorsIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldErrors, vs...))
}

// ErrorsNotIn applies the NotIn predicate on the "errors" field.
func ErrorsNotIn(vs ...int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldErrors, vs...))
}

// ErrorsGT applies the GT predicate on the "errors" field.
func ErrorsGT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldErrors, v))
}

// ErrorsGTE applies the GTE predicate on the "errors" field.
func ErrorsGTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldErrors, v))
}

// ErrorsLT applies the LT predicate on the "errors" field.
func ErrorsLT(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldErrors, v))
}

// ErrorsLTE applies the LTE predicate on the "errors" field.
func ErrorsLTE(v int) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldErrors, v))
}

// AvgDurationMsEQ applies the EQ predicate on the "avg_duration_ms" field.
func AvgDurationMsEQ(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsNEQ applies the NEQ predicate on the "avg_duration_ms" field.
func AvgDurationMsNEQ(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNEQ(FieldAvgDurationMs, v))
}

// AvgDurationMsIn applies the In predicate on the "avg_duration_ms" field.
func AvgDurationMsIn(vs ...int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsNotIn applies the NotIn predicate on the "avg_duration_ms" field.
func AvgDurationMsNotIn(vs ...int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldNotIn(FieldAvgDurationMs, vs...))
}

// AvgDurationMsGT applies the GT predicate on the "avg_duration_ms" field.
func AvgDurationMsGT(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGT(FieldAvgDurationMs, v))
}

// AvgDurationMsGTE applies the GTE predicate on the "avg_duration_ms" field.
func AvgDurationMsGTE(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldGTE(FieldAvgDurationMs, v))
}

// AvgDurationMsLT applies the LT predicate on the "avg_duration_ms" field.
func AvgDurationMsLT(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLT(FieldAvgDurationMs, v))
}

// AvgDurationMsLTE applies the LTE predicate on the "avg_duration_ms" field.
func AvgDurationMsLTE(v int64) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.FieldLTE(FieldAvgDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineMetric) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineMetric) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineMetric) predicate.PipelineMetric {
	return predicate.PipelineMetric(sql.NotPredicates(p))
}
