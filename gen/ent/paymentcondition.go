// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/paymentcondition"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/google/uuid"
)

// PaymentCondition is the model entity for the PaymentCondition schema.
type PaymentCondition struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID uuid.UUID `json:"proposal_id,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Installments holds the value of the "installments" field.
	Installments int `json:"installments,omitempty"`
	// Method holds the value of the "method" field.
	Method string `json:"method,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaymentConditionQuery when eager-loading is set.
	Edges        PaymentConditionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaymentConditionEdges holds the relations/edges for other nodes in the graph.
type PaymentConditionEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaymentConditionEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaymentCondition) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paymentcondition.FieldInstallments:
			values[i] = new(sql.NullInt64)
		case paymentcondition.FieldDescription, paymentcondition.FieldMethod:
			values[i] = new(sql.NullString)
		case paymentcondition.FieldID, paymentcondition.FieldProposalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaymentCondition fields.
func (_m *PaymentCondition) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paymentcondition.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paymentcondition.FieldProposalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value != nil {
				_m.ProposalID = *value
			}
		case paymentcondition.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case paymentcondition.FieldInstallments:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field installments", values[i])
			} else if value.Valid {
				_m.Installments = int(value.Int64)
			}
		case paymentcondition.FieldMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field method", values[i])
			} else if value.Valid {
				_m.Method = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaymentCondition.
// This includes values selected through modifiers, order, etc.
func (_m *PaymentCondition) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the PaymentCondition entity.
func (_m *PaymentCondition) QueryProposal() *ProposalQuery {
	return NewPaymentConditionClient(_m.config).QueryProposal(_m)
}

// Update returns a builder for updating this PaymentCondition.
// Note that you need to call PaymentCondition.Unwrap() before calling this method if this PaymentCondition
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaymentCondition) Update() *PaymentConditionUpdateOne {
	return NewPaymentConditionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaymentCondition entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaymentCondition) Unwrap() *PaymentCondition {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaymentCondition is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaymentCondition) String() string {
	var builder strings.Builder
	builder.WriteString("PaymentCondition(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("installments=")
	builder.WriteString(fmt.Sprintf("%v", _m.Installments))
	builder.WriteString(", ")
	builder.WriteString("method=")
	builder.WriteString(_m.Method)
	builder.WriteByte(')')
	return builder.String()
}

// PaymentConditions is a parsable slice of PaymentCondition.
type PaymentConditions []*PaymentCondition
