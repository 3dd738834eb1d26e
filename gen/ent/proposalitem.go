// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalitem"
	"github.com/google/uuid"
)

// ProposalItem is the model entity for the ProposalItem schema.
type ProposalItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID uuid.UUID `json:"proposal_id,omitempty"`
	// Position holds the value of the "position" field.
	Position int `json:"position,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Quantity holds the value of the "quantity" field.
	Quantity float64 `json:"quantity,omitempty"`
	// Unit holds the value of the "unit" field.
	Unit string `json:"unit,omitempty"`
	// UnitPrice holds the value of the "unit_price" field.
	UnitPrice float64 `json:"unit_price,omitempty"`
	// Total holds the value of the "total" field.
	Total float64 `json:"total,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProposalItemQuery when eager-loading is set.
	Edges        ProposalItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProposalItemEdges holds the relations/edges for other nodes in the graph.
type ProposalItemEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProposalItemEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProposalItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proposalitem.FieldQuantity, proposalitem.FieldUnitPrice, proposalitem.FieldTotal:
			values[i] = new(sql.NullFloat64)
		case proposalitem.FieldPosition:
			values[i] = new(sql.NullInt64)
		case proposalitem.FieldDescription, proposalitem.FieldUnit:
			values[i] = new(sql.NullString)
		case proposalitem.FieldID, proposalitem.FieldProposalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProposalItem fields.
func (_m *ProposalItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proposalitem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case proposalitem.FieldProposalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value != nil {
				_m.ProposalID = *value
			}
		case proposalitem.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case proposalitem.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case proposalitem.FieldQuantity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity", values[i])
			} else if value.Valid {
				_m.Quantity = value.Float64
			}
		case proposalitem.FieldUnit:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field unit", values[i])
			} else if value.Valid {
				_m.Unit = value.String
			}
		case proposalitem.FieldUnitPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field unit_price", values[i])
			} else if value.Valid {
				_m.UnitPrice = value.Float64
			}
		case proposalitem.FieldTotal:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total", values[i])
			} else if value.Valid {
				_m.Total = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProposalItem.
// This includes values selected through modifiers, order, etc.
func (_m *ProposalItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the ProposalItem entity.
func (_m *ProposalItem) QueryProposal() *ProposalQuery {
	return NewProposalItemClient(_m.config).QueryProposal(_m)
}

// Update returns a builder for updating this ProposalItem.
// Note that you need to call ProposalItem.Unwrap() before calling this method if this ProposalItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProposalItem) Update() *ProposalItemUpdateOne {
	return NewProposalItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProposalItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProposalItem) Unwrap() *ProposalItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProposalItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProposalItem) String() string {
	var builder strings.Builder
	builder.WriteString("ProposalItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("quantity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Quantity))
	builder.WriteString(", ")
	builder.WriteString("unit=")
	builder.WriteString(_m.Unit)
	builder.WriteString(", ")
	builder.WriteString("unit_price=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnitPrice))
	builder.WriteString(", ")
	builder.WriteString("total=")
	builder.WriteString(fmt.Sprintf("%v", _m.Total))
	builder.WriteByte(')')
	return builder.String()
}

// ProposalItems is a parsable slice of ProposalItem.
type ProposalItems []*ProposalItem
