// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposal"
	"github.com/construtiva/proposal-pipeline/gen/ent/proposalsolution"
	"github.com/google/uuid"
)

// ProposalSolution is the model entity for the ProposalSolution schema.
type ProposalSolution struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ProposalID holds the value of the "proposal_id" field.
	ProposalID uuid.UUID `json:"proposal_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ProposalSolutionQuery when eager-loading is set.
	Edges        ProposalSolutionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ProposalSolutionEdges holds the relations/edges for other nodes in the graph.
type ProposalSolutionEdges struct {
	// Proposal holds the value of the proposal edge.
	Proposal *Proposal `json:"proposal,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProposalOrErr returns the Proposal value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ProposalSolutionEdges) ProposalOrErr() (*Proposal, error) {
	if e.Proposal != nil {
		return e.Proposal, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: proposal.Label}
	}
	return nil, &NotLoadedError{edge: "proposal"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProposalSolution) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case proposalsolution.FieldName, proposalsolution.FieldDescription:
			values[i] = new(sql.NullString)
		case proposalsolution.FieldID, proposalsolution.FieldProposalID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProposalSolution fields.
func (_m *ProposalSolution) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case proposalsolution.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case proposalsolution.FieldProposalID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field proposal_id", values[i])
			} else if value != nil {
				_m.ProposalID = *value
			}
		case proposalsolution.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case proposalsolution.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProposalSolution.
// This includes values selected through modifiers, order, etc.
func (_m *ProposalSolution) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProposal queries the "proposal" edge of the ProposalSolution entity.
func (_m *ProposalSolution) QueryProposal() *ProposalQuery {
	return NewProposalSolutionClient(_m.config).QueryProposal(_m)
}

// Update returns a builder for updating this ProposalSolution.
// Note that you need to call ProposalSolution.Unwrap() before calling this method if this ProposalSolution
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProposalSolution) Update() *ProposalSolutionUpdateOne {
	return NewProposalSolutionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProposalSolution entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProposalSolution) Unwrap() *ProposalSolution {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProposalSolution is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProposalSolution) String() string {
	var builder strings.Builder
	builder.WriteString("ProposalSolution(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("proposal_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProposalID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteByte(')')
	return builder.String()
}

// ProposalSolutions is a parsable slice of ProposalSolution.
type ProposalSolutions []*ProposalSolution
