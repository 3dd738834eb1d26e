// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldID, id))
}

// ClientName applies equality check predicate on the "client_name" field. It's identical to ClientNameEQ.
func ClientName(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientName, v))
}

// VendorName applies equality check predicate on the "vendor_name" field. It's identical to VendorNameEQ.
func VendorName(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVendorName, v))
}

// ProposalNumber applies equality check predicate on the "proposal_number" field. It's identical to ProposalNumberEQ.
func ProposalNumber(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalNumber, v))
}

// ProposalDate applies equality check predicate on the "proposal_date" field. It's identical to ProposalDateEQ.
func ProposalDate(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalDate, v))
}

// Subtotal applies equality check predicate on the "subtotal" field. It's identical to SubtotalEQ.
func Subtotal(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSubtotal, v))
}

// Total applies equality check predicate on the "total" field. It's identical to TotalEQ.
func Total(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTotal, v))
}

// Observations applies equality check predicate on the "observations" field. It's identical to ObservationsEQ.
func Observations(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldObservations, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// ValidUntil applies equality check predicate on the "valid_until" field. It's identical to ValidUntilEQ.
func ValidUntil(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldValidUntil, v))
}

// SourceAssetID applies equality check predicate on the "source_asset_id" field. It's identical to SourceAssetIDEQ.
func SourceAssetID(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSourceAssetID, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldConfidence, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// ClientNameEQ applies the EQ predicate on the "client_name" field.
func ClientNameEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldClientName, v))
}

// ClientNameNEQ applies the NEQ predicate on the "client_name" field.
func ClientNameNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldClientName, v))
}

// ClientNameIn applies the In predicate on the "client_name" field.
func ClientNameIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldClientName, vs...))
}

// ClientNameNotIn applies the NotIn predicate on the "client_name" field.
func ClientNameNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldClientName, vs...))
}

// ClientNameGT applies the GT predicate on the "client_name" field.
func ClientNameGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldClientName, v))
}

// ClientNameGTE applies the GTE predicate on the "client_name" field.
func ClientNameGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldClientName, v))
}

// ClientNameLT applies the LT predicate on the "client_name" field.
func ClientNameLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldClientName, v))
}

// ClientNameLTE applies the LTE predicate on the "client_name" field.
func ClientNameLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldClientName, v))
}

// ClientNameContains applies the Contains predicate on the "client_name" field.
func ClientNameContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldClientName, v))
}

// ClientNameHasPrefix applies the HasPrefix predicate on the "client_name" field.
func ClientNameHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldClientName, v))
}

// ClientNameHasSuffix applies the HasSuffix predicate on the "client_name" field.
func ClientNameHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldClientName, v))
}

// ClientNameEqualFold applies the EqualFold predicate on the "client_name" field.
func ClientNameEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldClientName, v))
}

// ClientNameContainsFold applies the ContainsFold predicate on the "client_name" field.
func ClientNameContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldClientName, v))
}

// VendorNameEQ applies the EQ predicate on the "vendor_name" field.
func VendorNameEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldVendorName, v))
}

// VendorNameNEQ applies the NEQ predicate on the "vendor_name" field.
func VendorNameNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldVendorName, v))
}

// VendorNameIn applies the In predicate on the "vendor_name" field.
func VendorNameIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldVendorName, vs...))
}

// VendorNameNotIn applies the NotIn predicate on the "vendor_name" field.
func VendorNameNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldVendorName, vs...))
}

// VendorNameGT applies the GT predicate on the "vendor_name" field.
func VendorNameGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldVendorName, v))
}

// VendorNameGTE applies the GTE predicate on the "vendor_name" field.
func VendorNameGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldVendorName, v))
}

// VendorNameLT applies the LT predicate on the "vendor_name" field.
func VendorNameLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldVendorName, v))
}

// VendorNameLTE applies the LTE predicate on the "vendor_name" field.
func VendorNameLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldVendorName, v))
}

// VendorNameContains applies the Contains predicate on the "vendor_name" field.
func VendorNameContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldVendorName, v))
}

// VendorNameHasPrefix applies the HasPrefix predicate on the "vendor_name" field.
func VendorNameHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldVendorName, v))
}

// VendorNameHasSuffix applies the HasSuffix predicate on the "vendor_name" field.
func VendorNameHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldVendorName, v))
}

// VendorNameEqualFold applies the EqualFold predicate on the "vendor_name" field.
func VendorNameEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldVendorName, v))
}

// VendorNameContainsFold applies the ContainsFold predicate on the "vendor_name" field.
func VendorNameContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldVendorName, v))
}

// ProposalNumberEQ applies the EQ predicate on the "proposal_number" field.
func ProposalNumberEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalNumber, v))
}

// ProposalNumberNEQ applies the NEQ predicate on the "proposal_number" field.
func ProposalNumberNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposalNumber, v))
}

// ProposalNumberIn applies the In predicate on the "proposal_number" field.
func ProposalNumberIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposalNumber, vs...))
}

// ProposalNumberNotIn applies the NotIn predicate on the "proposal_number" field.
func ProposalNumberNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposalNumber, vs...))
}

// ProposalNumberGT applies the GT predicate on the "proposal_number" field.
func ProposalNumberGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposalNumber, v))
}

// ProposalNumberGTE applies the GTE predicate on the "proposal_number" field.
func ProposalNumberGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposalNumber, v))
}

// ProposalNumberLT applies the LT predicate on the "proposal_number" field.
func ProposalNumberLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposalNumber, v))
}

// ProposalNumberLTE applies the LTE predicate on the "proposal_number" field.
func ProposalNumberLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposalNumber, v))
}

// ProposalNumberContains applies the Contains predicate on the "proposal_number" field.
func ProposalNumberContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldProposalNumber, v))
}

// ProposalNumberHasPrefix applies the HasPrefix predicate on the "proposal_number" field.
func ProposalNumberHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldProposalNumber, v))
}

// ProposalNumberHasSuffix applies the HasSuffix predicate on the "proposal_number" field.
func ProposalNumberHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldProposalNumber, v))
}

// ProposalNumberEqualFold applies the EqualFold predicate on the "proposal_number" field.
func ProposalNumberEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldProposalNumber, v))
}

// ProposalNumberContainsFold applies the ContainsFold predicate on the "proposal_number" field.
func ProposalNumberContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldProposalNumber, v))
}

// ProposalDateEQ applies the EQ predicate on the "proposal_date" field.
func ProposalDateEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldProposalDate, v))
}

// ProposalDateNEQ applies the NEQ predicate on the "proposal_date" field.
func ProposalDateNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldProposalDate, v))
}

// ProposalDateIn applies the In predicate on the "proposal_date" field.
func ProposalDateIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldProposalDate, vs...))
}

// ProposalDateNotIn applies the NotIn predicate on the "proposal_date" field.
func ProposalDateNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldProposalDate, vs...))
}

// ProposalDateGT applies the GT predicate on the "proposal_date" field.
func ProposalDateGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldProposalDate, v))
}

// ProposalDateGTE applies the GTE predicate on the "proposal_date" field.
func ProposalDateGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldProposalDate, v))
}

// ProposalDateLT applies the LT predicate on the "proposal_date" field.
func ProposalDateLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldProposalDate, v))
}

// ProposalDateLTE applies the LTE predicate on the "proposal_date" field.
func ProposalDateLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldProposalDate, v))
}

// ProposalDateIsNil applies the IsNil predicate on the "proposal_date" field.
func ProposalDateIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldProposalDate))
}

// ProposalDateNotNil applies the NotNil predicate on the "proposal_date" field.
func ProposalDateNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldProposalDate))
}

// SubtotalEQ applies the EQ predicate on the "subtotal" field.
func SubtotalEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSubtotal, v))
}

// SubtotalNEQ applies the NEQ predicate on the "subtotal" field.
func SubtotalNEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldSubtotal, v))
}

// SubtotalIn applies the In predicate on the "subtotal" field.
func SubtotalIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldSubtotal, vs...))
}

// SubtotalNotIn applies the NotIn predicate on the "subtotal" field.
func SubtotalNotIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldSubtotal, vs...))
}

// SubtotalGT applies the GT predicate on the "subtotal" field.
func SubtotalGT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldSubtotal, v))
}

// SubtotalGTE applies the GTE predicate on the "subtotal" field.
func SubtotalGTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldSubtotal, v))
}

// SubtotalLT applies the LT predicate on the "subtotal" field.
func SubtotalLT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldSubtotal, v))
}

// SubtotalLTE applies the LTE predicate on the "subtotal" field.
func SubtotalLTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldSubtotal, v))
}

// TotalEQ applies the EQ predicate on the "total" field.
func TotalEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldTotal, v))
}

// TotalNEQ applies the NEQ predicate on the "total" field.
func TotalNEQ(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldTotal, v))
}

// TotalIn applies the In predicate on the "total" field.
func TotalIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldTotal, vs...))
}

// TotalNotIn applies the NotIn predicate on the "total" field.
func TotalNotIn(vs ...float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldTotal, vs...))
}

// TotalGT applies the GT predicate on the "total" field.
func TotalGT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldTotal, v))
}

// TotalGTE applies the GTE predicate on the "total" field.
func TotalGTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldTotal, v))
}

// TotalLT applies the LT predicate on the "total" field.
func TotalLT(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldTotal, v))
}

// TotalLTE applies the LTE predicate on the "total" field.
func TotalLTE(v float64) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldTotal, v))
}

// ObservationsEQ applies the EQ predicate on the "observations" field.
func ObservationsEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldObservations, v))
}

// ObservationsNEQ applies the NEQ predicate on the "observations" field.
func ObservationsNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldObservations, v))
}

// ObservationsIn applies the In predicate on the "observations" field.
func ObservationsIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldObservations, vs...))
}

// ObservationsNotIn applies the NotIn predicate on the "observations" field.
func ObservationsNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldObservations, vs...))
}

// ObservationsGT applies the GT predicate on the "observations" field.
func ObservationsGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldObservations, v))
}

// ObservationsGTE applies the GTE predicate on the "observations" field.
func ObservationsGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldObservations, v))
}

// ObservationsLT applies the LT predicate on the "observations" field.
func ObservationsLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldObservations, v))
}

// ObservationsLTE applies the LTE predicate on the "observations" field.
func ObservationsLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldObservations, v))
}

// ObservationsContains applies the Contains predicate on the "observations" field.
func ObservationsContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldObservations, v))
}

// ObservationsHasPrefix applies the HasPrefix predicate on the "observations" field.
func ObservationsHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldObservations, v))
}

// ObservationsHasSuffix applies the HasSuffix predicate on the "observations" field.
func ObservationsHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldObservations, v))
}

// ObservationsEqualFold applies the EqualFold predicate on the "observations" field.
func ObservationsEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldObservations, v))
}

// ObservationsContainsFold applies the ContainsFold predicate on the "observations" field.
func ObservationsContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldObservations, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldStatus, v))
}

// ValidUntilEQ applies the EQ predicate on the "valid_until" field.
func ValidUntilEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldValidUntil, v))
}

// ValidUntilNEQ applies the NEQ predicate on the "valid_until" field.
func ValidUntilNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldValidUntil, v))
}

// ValidUntilIn applies the In predicate on the "valid_until" field.
func ValidUntilIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldValidUntil, vs...))
}

// ValidUntilNotIn applies the NotIn predicate on the "valid_until" field.
func ValidUntilNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldValidUntil, vs...))
}

// ValidUntilGT applies the GT predicate on the "valid_until" field.
func ValidUntilGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldValidUntil, v))
}

// ValidUntilGTE applies the GTE predicate on the "valid_until" field.
func ValidUntilGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldValidUntil, v))
}

// ValidUntilLT applies the LT predicate on the "valid_until" field.
func ValidUntilLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldValidUntil, v))
}

// ValidUntilLTE applies the LTE predicate on the "valid_until" field.
func ValidUntilLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldValidUntil, v))
}

// SourceAssetIDEQ applies the EQ predicate on the "source_asset_id" field.
func SourceAssetIDEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldSourceAssetID, v))
}

// SourceAssetIDNEQ applies the NEQ predicate on the "source_asset_id" field.
func SourceAssetIDNEQ(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldSourceAssetID, v))
}

// SourceAssetIDIn applies the In predicate on the "source_asset_id" field.
func SourceAssetIDIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldSourceAssetID, vs...))
}

// SourceAssetIDNotIn applies the NotIn predicate on the "source_asset_id" field.
func SourceAssetIDNotIn(vs ...string) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldSourceAssetID, vs...))
}

// SourceAssetIDGT applies the GT predicate on the "source_asset_id" field.
func SourceAssetIDGT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldSourceAssetID, v))
}

// SourceAssetIDGTE applies the GTE predicate on the "source_asset_id" field.
func SourceAssetIDGTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldSourceAssetID, v))
}

// SourceAssetIDLT applies the LT predicate on the "source_asset_id" field.
func SourceAssetIDLT(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldSourceAssetID, v))
}

// SourceAssetIDLTE applies the LTE predicate on the "source_asset_id" field.
func SourceAssetIDLTE(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldSourceAssetID, v))
}

// SourceAssetIDContains applies the Contains predicate on the "source_asset_id" field.
func SourceAssetIDContains(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContains(FieldSourceAssetID, v))
}

// SourceAssetIDHasPrefix applies the HasPrefix predicate on the "source_asset_id" field.
func SourceAssetIDHasPrefix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasPrefix(FieldSourceAssetID, v))
}

// SourceAssetIDHasSuffix applies the HasSuffix predicate on the "source_asset_id" field.
func SourceAssetIDHasSuffix(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldHasSuffix(FieldSourceAssetID, v))
}

// SourceAssetIDIsNil applies the IsNil predicate on the "source_asset_id" field.
func SourceAssetIDIsNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldIsNull(FieldSourceAssetID))
}

// SourceAssetIDNotNil applies the NotNil predicate on the "source_asset_id" field.
func SourceAssetIDNotNil() predicate.Proposal {
	return predicate.Proposal(sql.FieldNotNull(FieldSourceAssetID))
}

// SourceAssetIDEqualFold applies the EqualFold predicate on the "source_asset_id" field.
func SourceAssetIDEqualFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldEqualFold(FieldSourceAssetID, v))
}

// SourceAssetIDContainsFold applies the ContainsFold predicate on the "source_asset_id" field.
func SourceAssetIDContainsFold(v string) predicate.Proposal {
	return predicate.Proposal(sql.FieldContainsFold(FieldSourceAssetID, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...int) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v int) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldConfidence, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Proposal {
	return predicate.Proposal(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.ProposalItem) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPaymentConditions applies the HasEdge predicate on the "payment_conditions" edge.
func HasPaymentConditions() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PaymentConditionsTable, PaymentConditionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPaymentConditionsWith applies the HasEdge predicate on the "payment_conditions" edge with a given conditions (other predicates).
func HasPaymentConditionsWith(preds ...predicate.PaymentCondition) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newPaymentConditionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSolutions applies the HasEdge predicate on the "solutions" edge.
func HasSolutions() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSolutionsWith applies the HasEdge predicate on the "solutions" edge with a given conditions (other predicates).
func HasSolutionsWith(preds ...predicate.ProposalSolution) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newSolutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRecommendedProducts applies the HasEdge predicate on the "recommended_products" edge.
func HasRecommendedProducts() predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecommendedProductsTable, RecommendedProductsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecommendedProductsWith applies the HasEdge predicate on the "recommended_products" edge with a given conditions (other predicates).
func HasRecommendedProductsWith(preds ...predicate.RecommendedProduct) predicate.Proposal {
	return predicate.Proposal(func(s *sql.Selector) {
		step := newRecommendedProductsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Proposal) predicate.Proposal {
	return predicate.Proposal(sql.NotPredicates(p))
}
