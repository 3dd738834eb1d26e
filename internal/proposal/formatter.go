package proposal

import (
	"math"
	"strings"
	"time"

	"github.com/construtiva/proposal-pipeline/constants"
	"github.com/construtiva/proposal-pipeline/internal/llm"
)

// FormattedItem is one line item in the persisted schema, with its total
// recomputed from quantity and unit price.
type FormattedItem struct {
	Position    int     `json:"position"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// FormattedProposal is the organized data reshaped into the application's
// persisted schema. Ownership transfers to the persistence layer on write.
type FormattedProposal struct {
	ClientName     string          `json:"client_name"`
	VendorName     string          `json:"vendor_name"`
	ProposalNumber string          `json:"proposal_number"`
	ProposalDate   string          `json:"proposal_date"` // YYYY-MM-DD or ""
	Items          []FormattedItem `json:"items"`
	Subtotal       float64         `json:"subtotal"`
	Total          float64         `json:"total"`
	Observations   string          `json:"observations"`
	Status         string          `json:"status"`
	ValidUntil     time.Time       `json:"valid_until"`
	Confidence     int             `json:"confidence"`
	SourceAssetID  string          `json:"source_asset_id,omitempty"`
	UserID         string          `json:"user_id,omitempty"`
	FileName       string          `json:"file_name,omitempty"`
}

// Format normalizes organized data into the persisted proposal shape. It is
// a pure function of (d, now): the same input always yields the same output.
//
// Each item total is recomputed as quantity x unit price rather than trusting
// the organizer. The organizer-supplied subtotal/total are used only when
// positive; otherwise the recomputed accumulation wins, which guards against
// a model total inconsistent with its own line items.
func Format(d llm.OrganizedData, now time.Time) FormattedProposal {
	items := make([]FormattedItem, 0, len(d.Items))
	var computed float64
	for i, it := range d.Items {
		total := round2(it.Quantity * it.UnitPrice)
		computed += total
		items = append(items, FormattedItem{
			Position:    i + 1,
			Description: clearSentinel(it.Description),
			Quantity:    it.Quantity,
			Unit:        clearSentinel(it.Unit),
			UnitPrice:   it.UnitPrice,
			Total:       total,
		})
	}
	computed = round2(computed)

	subtotal := computed
	if d.Subtotal > 0 {
		subtotal = d.Subtotal
	}
	total := computed
	if d.Total > 0 {
		total = d.Total
	}

	return FormattedProposal{
		ClientName:     clearSentinel(d.ClientName),
		VendorName:     clearSentinel(d.VendorName),
		ProposalNumber: clearSentinel(d.ProposalNumber),
		ProposalDate:   clearSentinel(d.Date),
		Items:          items,
		Subtotal:       subtotal,
		Total:          total,
		Observations:   buildObservations(d),
		Status:         string(constants.ProposalDraft),
		ValidUntil:     now.AddDate(0, 0, constants.ValidityDays),
		Confidence:     llm.Confidence(d),
	}
}

// buildObservations concatenates the non-sentinel terms fields into the
// free-text observations block.
func buildObservations(d llm.OrganizedData) string {
	var parts []string
	if s := clearSentinel(d.PaymentTerms); s != "" {
		parts = append(parts, "Pagamento: "+s)
	}
	if s := clearSentinel(d.DeliveryTerms); s != "" {
		parts = append(parts, "Entrega: "+s)
	}
	return strings.Join(parts, " | ")
}

// clearSentinel maps the organizer's "N/A" placeholder to the empty string so
// the persistence layer never stores the literal sentinel.
func clearSentinel(s string) string {
	s = strings.TrimSpace(s)
	if s == constants.SentinelText {
		return ""
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
