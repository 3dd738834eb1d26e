package entity

import (
	"time"

	"github.com/google/uuid"
)

// Proposal represents a persisted proposal for data transfer between layers.
type Proposal struct {
	ID             uuid.UUID `json:"id"`
	ClientName     string    `json:"client_name"`
	VendorName     string    `json:"vendor_name"`
	ProposalNumber string    `json:"proposal_number"`
	ProposalDate   time.Time `json:"proposal_date"`
	Subtotal       float64   `json:"subtotal"`
	Total          float64   `json:"total"`
	Observations   string    `json:"observations"`
	Status         string    `json:"status"`
	ValidUntil     time.Time `json:"valid_until"`
	SourceAssetID  string    `json:"source_asset_id,omitempty"`
	Confidence     int       `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Items               []ProposalItem       `json:"items,omitempty"`
	PaymentConditions   []PaymentCondition   `json:"payment_conditions,omitempty"`
	Solutions           []ProposalSolution   `json:"solutions,omitempty"`
	RecommendedProducts []RecommendedProduct `json:"recommended_products,omitempty"`
}

// ProposalItem is one line item of a proposal.
type ProposalItem struct {
	ID          uuid.UUID `json:"id"`
	ProposalID  uuid.UUID `json:"proposal_id"`
	Position    int       `json:"position"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	UnitPrice   float64   `json:"unit_price"`
	Total       float64   `json:"total"`
}

// PaymentCondition is a payment option attached to a proposal.
type PaymentCondition struct {
	ID           uuid.UUID `json:"id"`
	ProposalID   uuid.UUID `json:"proposal_id"`
	Description  string    `json:"description"`
	Installments int       `json:"installments"`
	Method       string    `json:"method"`
}

// ProposalSolution is a solution block selected for a proposal.
type ProposalSolution struct {
	ID          uuid.UUID `json:"id"`
	ProposalID  uuid.UUID `json:"proposal_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// RecommendedProduct is a cross-sell recommendation attached to a proposal.
type RecommendedProduct struct {
	ID         uuid.UUID `json:"id"`
	ProposalID uuid.UUID `json:"proposal_id"`
	Name       string    `json:"name"`
	Reason     string    `json:"reason"`
}
