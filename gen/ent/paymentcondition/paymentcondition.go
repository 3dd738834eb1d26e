// Code generated by ent, DO NOT EDIT.

package paymentcondition

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paymentcondition type in the database.
	Label = "payment_condition"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldProposalID holds the string denoting the proposal_id field in the database.
	FieldProposalID = "proposal_id"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldInstallments holds the string denoting the installments field in the database.
	FieldInstallments = "installments"
	// FieldMethod holds the string denoting the method field in the database.
	FieldMethod = "method"
	// EdgeProposal holds the string denoting the proposal edge name in mutations.
	EdgeProposal = "proposal"
	// Table holds the table name of the paymentcondition in the database.
	Table = "payment_conditions"
	// ProposalTable is the table that holds the proposal relation/edge.
	ProposalTable = "payment_conditions"
	// ProposalInverseTable is the table name for the Proposal entity.
	// It exists in this package in order to avoid circular dependency with the "proposal" package.
	ProposalInverseTable = "proposals"
	// ProposalColumn is the table column denoting the proposal relation/edge.
	ProposalColumn = "proposal_id"
)

// Columns holds all SQL columns for paymentcondition fields.
var Columns = []string{
	FieldID,
	FieldProposalID,
	FieldDescription,
	FieldInstallments,
	FieldMethod,
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
	// DefaultInstallments holds the default value on creation for the "installments" field.
	DefaultInstallments int
	// InstallmentsValidator is a validator for the "installments" field. It is called by the builders before save.
	InstallmentsValidator func(int) error
	// DefaultMethod holds the default value on creation for the "method" field.
	DefaultMethod string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PaymentCondition queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProposalID orders the results by the proposal_id field.
func ByProposalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalID, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByInstallments orders the results by the installments field.
func ByInstallments(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstallments, opts...).ToFunc()
}

// ByMethod orders the results by the method field.
func ByMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMethod, opts...).ToFunc()
}

// ByProposalField orders the results by proposal field.
func ByProposalField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProposalStep(), sql.OrderByField(field, opts...))
	}
}
func newProposalStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProposalInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProposalTable, ProposalColumn),
	)
}
