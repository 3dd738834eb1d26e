// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/construtiva/proposal-pipeline/db/ent/schema"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/pipelinemetric"
	"github.com/construtiva/proposal-pipeline/gen/ent/processinglog"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/construtiva/proposal-pipeline/gen/ent/recommendedproduct"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	paymentconditionFields := schema.PaymentCondition{}.Fields()
	_ = paymentconditionFields
	// paymentconditionDescInstallments is the schema descriptor for installments field.
	paymentconditionDescInstallments := paymentconditionFields[3].Descriptor()
	// paymentcondition.DefaultInstallments holds the default value on creation for the installments field.
	paymentcondition.DefaultInstallments = paymentconditionDescInstallments.Default.(int)
	// paymentcondition.InstallmentsValidator is a validator for the "installments" field. It is called by the builders before save.
	paymentcondition.InstallmentsValidator = paymentconditionDescInstallments.Validators[0].(func(int) error)
	// paymentconditionDescMethod is the schema descriptor for method field.
	paymentconditionDescMethod := paymentconditionFields[4].Descriptor()
	// paymentcondition.DefaultMethod holds the default value on creation for the method field.
	paymentcondition.DefaultMethod = paymentconditionDescMethod.Default.(string)
	// paymentconditionDescID is the schema descriptor for id field.
	paymentconditionDescID := paymentconditionFields[0].Descriptor()
	// paymentcondition.DefaultID holds the default value on creation for the id field.
	paymentcondition.DefaultID = paymentconditionDescID.Default.(func() uuid.UUID)
	pipelinemetricFields := schema.PipelineMetric{}.Fields()
	_ = pipelinemetricFields
	// pipelinemetricDescStage is the schema descriptor for stage field.
	pipelinemetricDescStage := pipelinemetricFields[2].Descriptor()
	// pipelinemetric.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	pipelinemetric.StageValidator = pipelinemetricDescStage.Validators[0].(func(string) error)
	// pipelinemetricDescAttempts is the schema descriptor for attempts field.
	pipelinemetricDescAttempts := pipelinemetricFields[3].Descriptor()
	// pipelinemetric.DefaultAttempts holds the default value on creation for the attempts field.
	pipelinemetric.DefaultAttempts = pipelinemetricDescAttempts.Default.(int)
	// pipelinemetric.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	pipelinemetric.AttemptsValidator = pipelinemetricDescAttempts.Validators[0].(func(int) error)
	// pipelinemetricDescSuccesses is the schema descriptor for successes field.
	pipelinemetricDescSuccesses := pipelinemetricFields[4].Descriptor()
	// pipelinemetric.DefaultSuccesses holds the default value on creation for the successes field.
	pipelinemetric.DefaultSuccesses = pipelinemetricDescSuccesses.Default.(int)
	// pipelinemetric.SuccessesValidator is a validator for the "successes" field. It is called by the builders before save.
	pipelinemetric.SuccessesValidator = pipelinemetricDescSuccesses.Validators[0].(func(int) error)
	// pipelinemetricDescErrors is the schema descriptor for errors field.
	pipelinemetricDescErrors := pipelinemetricFields[5].Descriptor()
	// pipelinemetric.DefaultErrors holds the default value on creation for the errors field.
	pipelinemetric.DefaultErrors = pipelinemetricDescErrors.Default.(int)
	// pipelinemetric.ErrorsValidator is a validator for the "errors" field. It is called by the builders before save.
	pipelinemetric.ErrorsValidator = pipelinemetricDescErrors.Validators[0].(func(int) error)
	// pipelinemetricDescAvgDurationMs is the schema descriptor for avg_duration_ms field.
	pipelinemetricDescAvgDurationMs := pipelinemetricFields[6].Descriptor()
	// pipelinemetric.DefaultAvgDurationMs holds the default value on creation for the avg_duration_ms field.
	pipelinemetric.DefaultAvgDurationMs = pipelinemetricDescAvgDurationMs.Default.(int64)
	// pipelinemetricDescID is the schema descriptor for id field.
	pipelinemetricDescID := pipelinemetricFields[0].Descriptor()
	// pipelinemetric.DefaultID holds the default value on creation for the id field.
	pipelinemetric.DefaultID = pipelinemetricDescID.Default.(func() uuid.UUID)
	processinglogFields := schema.ProcessingLog{}.Fields()
	_ = processinglogFields
	// processinglogDescProcessingID is the schema descriptor for processing_id field.
	processinglogDescProcessingID := processinglogFields[1].Descriptor()
	// processinglog.ProcessingIDValidator is a validator for the "processing_id" field. It is called by the builders before save.
	processinglog.ProcessingIDValidator = processinglogDescProcessingID.Validators[0].(func(string) error)
	// processinglogDescStage is the schema descriptor for stage field.
	processinglogDescStage := processinglogFields[2].Descriptor()
	// processinglog.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	processinglog.StageValidator = processinglogDescStage.Validators[0].(func(string) error)
	// processinglogDescStatus is the schema descriptor for status field.
	processinglogDescStatus := processinglogFields[3].Descriptor()
	// processinglog.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processinglog.StatusValidator = func() func(string) error {
		validators := processinglogDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processinglogDescDurationMs is the schema descriptor for duration_ms field.
	processinglogDescDurationMs := processinglogFields[4].Descriptor()
	// processinglog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	processinglog.DefaultDurationMs = processinglogDescDurationMs.Default.(int64)
	// processinglogDescUserID is the schema descriptor for user_id field.
	processinglogDescUserID := processinglogFields[7].Descriptor()
	// processinglog.DefaultUserID holds the default value on creation for the user_id field.
	processinglog.DefaultUserID = processinglogDescUserID.Default.(string)
	// processinglogDescFileName is the schema descriptor for file_name field.
	processinglogDescFileName := processinglogFields[8].Descriptor()
	// processinglog.DefaultFileName holds the default value on creation for the file_name field.
	processinglog.DefaultFileName = processinglogDescFileName.Default.(string)
	// processinglogDescCreatedAt is the schema descriptor for created_at field.
	processinglogDescCreatedAt := processinglogFields[9].Descriptor()
	// processinglog.DefaultCreatedAt holds the default value on creation for the created_at field.
	processinglog.DefaultCreatedAt = processinglogDescCreatedAt.Default.(func() time.Time)
	// processinglogDescID is the schema descriptor for id field.
	processinglogDescID := processinglogFields[0].Descriptor()
	// processinglog.DefaultID holds the default value on creation for the id field.
	processinglog.DefaultID = processinglogDescID.Default.(func() uuid.UUID)
	proposalFields := schema.Proposal{}.Fields()
	_ = proposalFields
	// proposalDescObservations is the schema descriptor for observations field.
	proposalDescObservations := proposalFields[7].Descriptor()
	// proposal.DefaultObservations holds the default value on creation for the observations field.
	proposal.DefaultObservations = proposalDescObservations.Default.(string)
	// proposalDescStatus is the schema descriptor for status field.
	proposalDescStatus := proposalFields[8].Descriptor()
	// proposal.DefaultStatus holds the default value on creation for the status field.
	proposal.DefaultStatus = proposalDescStatus.Default.(string)
	// proposal.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	proposal.StatusValidator = proposalDescStatus.Validators[0].(func(string) error)
	// proposalDescConfidence is the schema descriptor for confidence field.
	proposalDescConfidence := proposalFields[11].Descriptor()
	// proposal.DefaultConfidence holds the default value on creation for the confidence field.
	proposal.DefaultConfidence = proposalDescConfidence.Default.(int)
	// proposal.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	proposal.ConfidenceValidator = func() func(int) error {
		validators := proposalDescConfidence.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(confidence int) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// proposalDescCreatedAt is the schema descriptor for created_at field.
	proposalDescCreatedAt := proposalFields[12].Descriptor()
	// proposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	proposal.DefaultCreatedAt = proposalDescCreatedAt.Default.(func() time.Time)
	// proposalDescUpdatedAt is the schema descriptor for updated_at field.
	proposalDescUpdatedAt := proposalFields[13].Descriptor()
	// proposal.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	proposal.DefaultUpdatedAt = proposalDescUpdatedAt.Default.(func() time.Time)
	// proposal.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	proposal.UpdateDefaultUpdatedAt = proposalDescUpdatedAt.UpdateDefault.(func() time.Time)
	// proposalDescID is the schema descriptor for id field.
	proposalDescID := proposalFields[0].Descriptor()
	// proposal.DefaultID holds the default value on creation for the id field.
	proposal.DefaultID = proposalDescID.Default.(func() uuid.UUID)
	proposalitemFields := schema.ProposalItem{}.Fields()
	_ = proposalitemFields
	// proposalitemDescPosition is the schema descriptor for position field.
	proposalitemDescPosition := proposalitemFields[2].Descriptor()
	// proposalitem.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	proposalitem.PositionValidator = proposalitemDescPosition.Validators[0].(func(int) error)
	// proposalitemDescUnit is the schema descriptor for unit field.
	proposalitemDescUnit := proposalitemFields[5].Descriptor()
	// proposalitem.DefaultUnit holds the default value on creation for the unit field.
	proposalitem.DefaultUnit = proposalitemDescUnit.Default.(string)
	// proposalitemDescID is the schema descriptor for id field.
	proposalitemDescID := proposalitemFields[0].Descriptor()
	// proposalitem.DefaultID holds the default value on creation for the id field.
	proposalitem.DefaultID = proposalitemDescID.Default.(func() uuid.UUID)
	proposalsolutionFields := schema.ProposalSolution{}.Fields()
	_ = proposalsolutionFields
	// proposalsolutionDescDescription is the schema descriptor for description field.
	proposalsolutionDescDescription := proposalsolutionFields[3].Descriptor()
	// proposalsolution.DefaultDescription holds the default value on creation for the description field.
	proposalsolution.DefaultDescription = proposalsolutionDescDescription.Default.(string)
	// proposalsolutionDescID is the schema descriptor for id field.
	proposalsolutionDescID := proposalsolutionFields[0].Descriptor()
	// proposalsolution.DefaultID holds the default value on creation for the id field.
	proposalsolution.DefaultID = proposalsolutionDescID.Default.(func() uuid.UUID)
	recommendedproductFields := schema.RecommendedProduct{}.Fields()
	_ = recommendedproductFields
	// recommendedproductDescReason is the schema descriptor for reason field.
	recommendedproductDescReason := recommendedproductFields[3].Descriptor()
	// recommendedproduct.DefaultReason holds the default value on creation for the reason field.
	recommendedproduct.DefaultReason = recommendedproductDescReason.Default.(string)
	// recommendedproductDescID is the schema descriptor for id field.
	recommendedproductDescID := recommendedproductFields[0].Descriptor()
	// recommendedproduct.DefaultID holds the default value on creation for the id field.
	recommendedproduct.DefaultID = recommendedproductDescID.Default.(func() uuid.UUID)
}
