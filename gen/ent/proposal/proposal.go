// Code generated by ent, DO NOT EDIT.

package proposal

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the proposal type in the database.
	Label = "proposal"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldClientName holds the string denoting the client_name field in the database.
	FieldClientName = "client_name"
	// FieldVendorName holds the string denoting the vendor_name field in the database.
	FieldVendorName = "vendor_name"
	// FieldProposalNumber holds the string denoting the proposal_number field in the database.
	FieldProposalNumber = "proposal_number"
	// FieldProposalDate holds the string denoting the proposal_date field in the database.
	FieldProposalDate = "proposal_date"
	// FieldSubtotal holds the string denoting the subtotal field in the database.
	FieldSubtotal = "subtotal"
	// FieldTotal holds the string denoting the total field in the database.
	FieldTotal = "total"
	// FieldObservations holds the string denoting the observations field in the database.
	FieldObservations = "observations"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldValidUntil holds the string denoting the valid_until field in the database.
	FieldValidUntil = "valid_until"
	// FieldSourceAssetID holds the string denoting the source_asset_id field in the database.
	FieldSourceAssetID = "source_asset_id"
	// FieldConfidence holds the string denoting the confidence field in the database.
	FieldConfidence = "confidence"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// EdgePaymentConditions holds the string denoting the payment_conditions edge name in mutations.
	EdgePaymentConditions = "payment_conditions"
	// EdgeSolutions holds the string denoting the solutions edge name in mutations.
	EdgeSolutions = "solutions"
	// EdgeRecommendedProducts holds the string denoting the recommended_products edge name in mutations.
	EdgeRecommendedProducts = "recommended_products"
	// Table holds the table name of the proposal in the database.
	Table = "proposals"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "proposal_items"
	// ItemsInverseTable is the table name for the ProposalItem entity.
	// It exists in this package in order to avoid circular dependency with the "proposalitem" package.
	ItemsInverseTable = "proposal_items"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "proposal_id"
	// PaymentConditionsTable is the table that holds the payment_conditions relation/edge.
	PaymentConditionsTable = "payment_conditions"
	// PaymentConditionsInverseTable is the table name for the PaymentCondition entity.
	// It exists in this package in order to avoid circular dependency with the "paymentcondition" package.
	PaymentConditionsInverseTable = "payment_conditions"
	// PaymentConditionsColumn is the table column denoting the payment_conditions relation/edge.
	PaymentConditionsColumn = "proposal_id"
	// SolutionsTable is the table that holds the solutions relation/edge.
	SolutionsTable = "proposal_solutions"
	// SolutionsInverseTable is the table name for the ProposalSolution entity.
	// It exists in this package in order to avoid circular dependency with the "proposalsolution" package.
	SolutionsInverseTable = "proposal_solutions"
	// SolutionsColumn is the table column denoting the solutions relation/edge.
	SolutionsColumn = "proposal_id"
	// RecommendedProductsTable is the table that holds the recommended_products relation/edge.
	RecommendedProductsTable = "recommended_products"
	// RecommendedProductsInverseTable is the table name for the RecommendedProduct entity.
	// It exists in this package in order to avoid circular dependency with the "recommendedproduct" package.
	RecommendedProductsInverseTable = "recommended_products"
	// RecommendedProductsColumn is the table column denoting the recommended_products relation/edge.
	RecommendedProductsColumn = "proposal_id"
)

// Columns holds all SQL columns for proposal fields.
var Columns = []string{
	FieldID,
	FieldClientName,
	FieldVendorName,
	FieldProposalNumber,
	FieldProposalDate,
	FieldSubtotal,
	FieldTotal,
	FieldObservations,
	FieldStatus,
	FieldValidUntil,
	FieldSourceAssetID,
	FieldConfidence,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultObservations holds the default value on creation for the "observations" field.
	DefaultObservations string
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultConfidence holds the default value on creation for the "confidence" field.
	DefaultConfidence int
	// ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ConfidenceValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Proposal queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByClientName orders the results by the client_name field.
func ByClientName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientName, opts...).ToFunc()
}

// ByVendorName orders the results by the vendor_name field.
func ByVendorName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVendorName, opts...).ToFunc()
}

// ByProposalNumber orders the results by the proposal_number field.
func ByProposalNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalNumber, opts...).ToFunc()
}

// ByProposalDate orders the results by the proposal_date field.
func ByProposalDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProposalDate, opts...).ToFunc()
}

// BySubtotal orders the results by the subtotal field.
func BySubtotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubtotal, opts...).ToFunc()
}

// ByTotal orders the results by the total field.
func ByTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotal, opts...).ToFunc()
}

// ByObservations orders the results by the observations field.
func ByObservations(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservations, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByValidUntil orders the results by the valid_until field.
func ByValidUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValidUntil, opts...).ToFunc()
}

// BySourceAssetID orders the results by the source_asset_id field.
func BySourceAssetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceAssetID, opts...).ToFunc()
}

// ByConfidence orders the results by the confidence field.
func ByConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidence, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPaymentConditionsCount orders the results by payment_conditions count.
func ByPaymentConditionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPaymentConditionsStep(), opts...)
	}
}

// ByPaymentConditions orders the results by payment_conditions terms.
func ByPaymentConditions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPaymentConditionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySolutionsCount orders the results by solutions count.
func BySolutionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSolutionsStep(), opts...)
	}
}

// BySolutions orders the results by solutions terms.
func BySolutions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSolutionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByRecommendedProductsCount orders the results by recommended_products count.
func ByRecommendedProductsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecommendedProductsStep(), opts...)
	}
}

// ByRecommendedProducts orders the results by recommended_products terms.
func ByRecommendedProducts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecommendedProductsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
func newPaymentConditionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PaymentConditionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PaymentConditionsTable, PaymentConditionsColumn),
	)
}
func newSolutionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SolutionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SolutionsTable, SolutionsColumn),
	)
}
func newRecommendedProductsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecommendedProductsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecommendedProductsTable, RecommendedProductsColumn),
	)
}
