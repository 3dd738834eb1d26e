package llm

import (
	"context"

	"github.com/construtiva/proposal-pipeline/constants"
)

// Item is one line item of the organized output.
type Item struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// OrganizedData is the normalized shape we want from the LLM. Every numeric
// field defaults to 0 and every textual field to the "N/A" sentinel; no
// field is ever left undefined after ApplyDefaults.
type OrganizedData struct {
	ClientName     string  `json:"client_name"`
	VendorName     string  `json:"vendor_name"`
	ProposalNumber string  `json:"proposal_number"`
	Date           string  `json:"date"` // YYYY-MM-DD or sentinel
	Items          []Item  `json:"items"`
	Subtotal       float64 `json:"subtotal"`
	Total          float64 `json:"total"`
	PaymentTerms   string  `json:"payment_terms"`
	DeliveryTerms  string  `json:"delivery_terms"`
}

// OrganizeRequest carries the raw extracted text into the organizer. APIKey
// is the resolved per-run credential; when empty the organizer falls back to
// its statically configured key.
type OrganizeRequest struct {
	RawText    string
	ContextTag string // e.g. filename or proposal kind hint
	APIKey     string
}

// Organizer is the interface the pipeline depends on.
type Organizer interface {
	Organize(ctx context.Context, req OrganizeRequest) (OrganizedData, []byte /*rawJSON*/, error)
}

// ApplyDefaults fills missing fields with sentinels so downstream code never
// sees an undefined value.
func ApplyDefaults(d *OrganizedData) {
	if d.ClientName == "" {
		d.ClientName = constants.SentinelText
	}
	if d.VendorName == "" {
		d.VendorName = constants.SentinelText
	}
	if d.ProposalNumber == "" {
		d.ProposalNumber = constants.SentinelText
	}
	if d.Date == "" {
		d.Date = constants.SentinelText
	}
	if d.PaymentTerms == "" {
		d.PaymentTerms = constants.SentinelText
	}
	if d.DeliveryTerms == "" {
		d.DeliveryTerms = constants.SentinelText
	}
	if d.Items == nil {
		d.Items = []Item{}
	}
	for i := range d.Items {
		if d.Items[i].Unit == "" {
			d.Items[i].Unit = constants.SentinelText
		}
	}
}
