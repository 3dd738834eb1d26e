// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// Proposal is the model entity for the Proposal schema.
type Proposal struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ClientName holds the value of the "client_name" field.
	ClientName string `json:"client_name,omitempty"`
	// VendorName holds the value of the "vendor_name" field.
	VendorName string `json:"vendor_name,omitempty"`
	// ProposalNumber holds the value of the "proposal_number" field.
	ProposalNumber string `json:"proposal_number,omitempty"`
	// ProposalDate holds the value of the "proposal_date" field.
	ProposalDate *time.Time `json:"proposal_date,omitempty"`
	// Subtotal holds the value of the "subtotal" field.
	Subtotal float64 `json:"subtotal,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// Observations holds the value of the "observations" field.
	Observations string `json:"observations,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ValidUntil holds the value of the "valid_until" field.
	ValidUntil time.Time `json:"valid_until,omitempty"`
	// SourceAssetID holds the value of the "source_asset_id" field.
	SourceAssetID *string `json:"source_asset_id,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence int `json:"confidence,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProposalQuery when eager-loading is set.
	Edges        ProposalEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProposalEdges holds the relations/edges for other nodes in the graph.
type ProposalEdges struct {
	// Items holds the value of the items edge.
	Items []*ProposalItem `json:"items,omitempty"`
	// PaymentConditions holds the value of the payment_conditions edge.
	PaymentConditions []*PaymentCondition `json:"payment_conditions,omitempty"`
	// Solutions holds the value of the solutions edge.
	Solutions []*ProposalSolution `json:"solutions,omitempty"`
	// RecommendedProducts holds the value of the recommended_products edge.
	RecommendedProducts []*RecommendedProduct `json:"recommended_products,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) ItemsOrErr() ([]*ProposalItem, error) {
	if e.loadedTypes[0] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// PaymentConditionsOrErr returns the PaymentConditions value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) PaymentConditionsOrErr() ([]*PaymentCondition, error) {
	if e.loadedTypes[1] {
		return e.PaymentConditions, nil
	}
	return nil, &NotLoadedError{edge: "payment_conditions"}
}

// SolutionsOrErr returns the Solutions value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) SolutionsOrErr() ([]*ProposalSolution, error) {
	if e.loadedTypes[2] {
		return e.Solutions, nil
	}
	return nil, &NotLoadedError{edge: "solutions"}
}

// RecommendedProductsOrErr returns the RecommendedProducts value or an error if the edge
// was not loaded in eager-loading.
func (e ProposalEdges) RecommendedProductsOrErr() ([]*RecommendedProduct, error) {
	if e.loadedTypes[3] {
		return e.RecommendedProducts, nil
	}
	return nil, &NotLoadedError{edge: "recommended_products"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Proposal) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proposal.FieldSubtotal, proposal.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case proposal.FieldConfidence:
			values[i] = new(sql.NullInt64)
		case proposal.FieldClientName, proposal.FieldVendorName, proposal.FieldProposalNumber, proposal.FieldObservations, proposal.FieldStatus, proposal.FieldSourceAssetID:
			values[i] = new(sql.NullString)
		case proposal.FieldProposalDate, proposal.FieldValidUntil, proposal.FieldCreatedAt, proposal.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case proposal.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Proposal fields.
func (_m *Proposal) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proposal.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case proposal.FieldClientName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field client_name", values[i])
			} else if value.Valid {
				_m.ClientName = value.String
			}
		case proposal.FieldVendorName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field vendor_name", values[i])
			} else if value.Valid {
				_m.VendorName = value.String
			}
		case proposal.FieldProposalNumber:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_number", values[i])
			} else if value.Valid {
				_m.ProposalNumber = value.String
			}
		case proposal.FieldProposalDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_date", values[i])
			} else if value.Valid {
				_m.ProposalDate = new(time.Time)
				*_m.ProposalDate = value.Time
			}
		case proposal.FieldSubtotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field subtotal", values[i])
			} else if value.Valid {
				_m.Subtotal = value.Float64
			}
		case proposal.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		case proposal.FieldObservations:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field observations", values[i])
			} else if value.Valid {
				_m.Observations = value.String
			}
		case proposal.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case proposal.FieldValidUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field valid_until", values[i])
			} else if value.Valid {
				_m.ValidUntil = value.Time
			}
		case proposal.FieldSourceAssetID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_asset_id", values[i])
			} else if value.Valid {
				_m.SourceAssetID = new(string)
				*_m.SourceAssetID = value.String
			}
		case proposal.FieldConfidence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = int(value.Int64)
			}
		case proposal.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case proposal.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Proposal.
// This includes values selected through modifiers, order, etc.
func (_m *Proposal) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryItems queries the "items" edge of the Proposal entity.
func (_m *Proposal) QueryItems() *ProposalItemQuery {
	return NewProposalClient(_m.config).QueryItems(_m)
}

// QueryPaymentConditions queries the "payment_conditions" edge of the Proposal entity.
func (_m *Proposal) QueryPaymentConditions() *PaymentConditionQuery {
	return NewProposalClient(_m.config).QueryPaymentConditions(_m)
}

// QuerySolutions queries the "solutions" edge of the Proposal entity.
func (_m *Proposal) QuerySolutions() *ProposalSolutionQuery {
	return NewProposalClient(_m.config).QuerySolutions(_m)
}

// QueryRecommendedProducts queries the "recommended_products" edge of the Proposal entity.
func (_m *Proposal) QueryRecommendedProducts() *RecommendedProductQuery {
	return NewProposalClient(_m.config).QueryRecommendedProducts(_m)
}

// Update returns a builder for updating this Proposal.
// Note that you need to call Proposal.Unwrap() before calling this method if this Proposal
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Proposal) Update() *ProposalUpdateOne {
	return NewProposalClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Proposal entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Proposal) Unwrap() *Proposal {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Proposal is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Proposal) String() string {
	var builder strings.Builder
	builder.WriteString("Proposal(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("client_name=")
	builder.WriteString(_m.ClientName)
	builder.WriteString(", ")
	builder.WriteString("vendor_name=")
	builder.WriteString(_m.VendorName)
	builder.WriteString(", ")
	builder.WriteString("proposal_number=")
	builder.WriteString(_m.ProposalNumber)
	builder.WriteString(", ")
	if v := _m.ProposalDate; v != nil {
		builder.WriteString("proposal_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("subtotal=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subtotal))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteString(", ")
	builder.WriteString("observations=")
	builder.WriteString(_m.Observations)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("valid_until=")
	builder.WriteString(_m.ValidUntil.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SourceAssetID; v != nil {
		builder.WriteString("source_asset_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Proposals is a parsable slice of Proposal.
type Proposals []*Proposal
