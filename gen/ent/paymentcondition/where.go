// Code generated by ent, DO NOT EDIT.

package paymentcondition

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/construtiva/proposal-pipeline/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLTE(FieldID, id))
}

// ProposalID applies equality check predicate on the "proposal_id" field. It's identical to ProposalIDEQ.
func ProposalID(v uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldProposalID, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldDescription, v))
}

// Installments applies equality check predicate on the "installments" field. It's identical to InstallmentsEQ.
func Installments(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldInstallments, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldMethod, v))
}

// ProposalIDEQ applies the EQ predicate on the "proposal_id" field.
func ProposalIDEQ(v uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldProposalID, v))
}

// ProposalIDNEQ applies the NEQ predicate on the "proposal_id" field.
func ProposalIDNEQ(v uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNEQ(FieldProposalID, v))
}

// ProposalIDIn applies the In predicate on the "proposal_id" field.
func ProposalIDIn(vs ...uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldIn(FieldProposalID, vs...))
}

// ProposalIDNotIn applies the NotIn predicate on the "proposal_id" field.
func ProposalIDNotIn(vs ...uuid.UUID) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNotIn(FieldProposalID, vs...))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldContainsFold(FieldDescription, v))
}

// InstallmentsEQ applies the EQ predicate on the "installments" field.
func InstallmentsEQ(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldInstallments, v))
}

// InstallmentsNEQ applies the NEQ predicate on the "installments" field.
func InstallmentsNEQ(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNEQ(FieldInstallments, v))
}

// InstallmentsIn applies the In predicate on the "installments" field.
func InstallmentsIn(vs ...int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldIn(FieldInstallments, vs...))
}

// InstallmentsNotIn applies the NotIn predicate on the "installments" field.
func InstallmentsNotIn(vs ...int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNotIn(FieldInstallments, vs...))
}

// InstallmentsGT applies the GT predicate on the "installments" field.
func InstallmentsGT(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGT(FieldInstallments, v))
}

// InstallmentsGTE applies the GTE predicate on the "installments" field.
func InstallmentsGTE(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGTE(FieldInstallments, v))
}

// InstallmentsLT applies the LT predicate on the "installments" field.
func InstallmentsLT(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLT(FieldInstallments, v))
}

// InstallmentsLTE applies the LTE predicate on the "installments" field.
func InstallmentsLTE(v int) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLTE(FieldInstallments, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.FieldContainsFold(FieldMethod, v))
}

// HasProposal applies the HasEdge predicate on the "proposal" edge.
func HasProposal() predicate.PaymentCondition {
	return predicate.PaymentCondition(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProposalWith applies the HasEdge predicate on the "proposal" edge with a given conditions (other predicates).
func HasProposalWith(preds ...predicate.Proposal) predicate.PaymentCondition {
	return predicate.PaymentCondition(func(s *sql.Selector) {
		step := newProposalStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PaymentCondition) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PaymentCondition) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PaymentCondition) predicate.PaymentCondition {
	return predicate.PaymentCondition(sql.NotPredicates(p))
}
