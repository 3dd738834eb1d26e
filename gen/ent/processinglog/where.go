// Code generated by ent, DO NOT EDIT.

package processinglog

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldID, id))
}

// ProcessingID applies equality check predicate on the "processing_id" field. It's identical to ProcessingIDEQ.
func ProcessingID(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldProcessingID, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStage, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStatus, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldDurationMs, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldUserID, v))
}

// FileName applies equality check predicate on the "file_name" field. It's identical to FileNameEQ.
func FileName(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldFileName, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldCreatedAt, v))
}

// ProcessingIDEQ applies the EQ predicate on the "processing_id" field.
func ProcessingIDEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldProcessingID, v))
}

// ProcessingIDNEQ applies the NEQ predicate on the "processing_id" field.
func ProcessingIDNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldProcessingID, v))
}

// ProcessingIDIn applies the In predicate on the "processing_id" field.
func ProcessingIDIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldProcessingID, vs...))
}

// ProcessingIDNotIn applies the NotIn predicate on the "processing_id" field.
func ProcessingIDNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldProcessingID, vs...))
}

// ProcessingIDGT applies the GT predicate on the "processing_id" field.
func ProcessingIDGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldProcessingID, v))
}

// ProcessingIDGTE applies the GTE predicate on the "processing_id" field.
func ProcessingIDGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldProcessingID, v))
}

// ProcessingIDLT applies the LT predicate on the "processing_id" field.
func ProcessingIDLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldProcessingID, v))
}

// ProcessingIDLTE applies the LTE predicate on the "processing_id" field.
func ProcessingIDLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldProcessingID, v))
}

// ProcessingIDContains applies the Contains predicate on the "processing_id" field.
func ProcessingIDContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldProcessingID, v))
}

// ProcessingIDHasPrefix applies the HasPrefix predicate on the "processing_id" field.
func ProcessingIDHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldProcessingID, v))
}

// ProcessingIDHasSuffix applies the HasSuffix predicate on the "processing_id" field.
func ProcessingIDHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldProcessingID, v))
}

// ProcessingIDEqualFold applies the EqualFold predicate on the "processing_id" field.
func ProcessingIDEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldProcessingID, v))
}

// ProcessingIDContainsFold applies the ContainsFold predicate on the "processing_id" field.
func ProcessingIDContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldProcessingID, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldStage, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldStatus, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldDurationMs, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldErrorMessage, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotNull(FieldDetails))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldUserID, v))
}

// FileNameEQ applies the EQ predicate on the "file_name" field.
func FileNameEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldFileName, v))
}

// FileNameNEQ applies the NEQ predicate on the "file_name" field.
func FileNameNEQ(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldFileName, v))
}

// FileNameIn applies the In predicate on the "file_name" field.
func FileNameIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldFileName, vs...))
}

// FileNameNotIn applies the NotIn predicate on the "file_name" field.
func FileNameNotIn(vs ...string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldFileName, vs...))
}

// FileNameGT applies the GT predicate on the "file_name" field.
func FileNameGT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldFileName, v))
}

// FileNameGTE applies the GTE predicate on the "file_name" field.
func FileNameGTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldFileName, v))
}

// FileNameLT applies the LT predicate on the "file_name" field.
func FileNameLT(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldFileName, v))
}

// FileNameLTE applies the LTE predicate on the "file_name" field.
func FileNameLTE(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldFileName, v))
}

// FileNameContains applies the Contains predicate on the "file_name" field.
func FileNameContains(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContains(FieldFileName, v))
}

// FileNameHasPrefix applies the HasPrefix predicate on the "file_name" field.
func FileNameHasPrefix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasPrefix(FieldFileName, v))
}

// FileNameHasSuffix applies the HasSuffix predicate on the "file_name" field.
func FileNameHasSuffix(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldHasSuffix(FieldFileName, v))
}

// FileNameEqualFold applies the EqualFold predicate on the "file_name" field.
func FileNameEqualFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEqualFold(FieldFileName, v))
}

// FileNameContainsFold applies the ContainsFold predicate on the "file_name" field.
func FileNameContainsFold(v string) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldContainsFold(FieldFileName, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProcessingLog) predicate.ProcessingLog {
	return predicate.ProcessingLog(sql.NotPredicates(p))
}
