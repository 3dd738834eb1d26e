package llm

import (
	"math"

	"github.com/construtiva/proposal-pipeline/constants"
)

// Confidence scores how complete the organized data is, 0..100. It is a pure
// function of the data: fixed-weight points per populated top-level field
// plus points per well-formed line item (non-empty description, positive
// quantity, positive unit price). The score is informational only and never
// gates persistence.
func Confidence(d OrganizedData) int {
	const (
		topWeight   = 60.0
		itemsWeight = 40.0
	)

	populated := func(s string) bool {
		return s != "" && s != constants.SentinelText
	}

	topChecks := []bool{
		populated(d.ClientName),
		populated(d.VendorName),
		populated(d.ProposalNumber),
		populated(d.Date),
		populated(d.PaymentTerms),
		populated(d.DeliveryTerms),
		d.Subtotal > 0,
		d.Total > 0,
	}
	topHits := 0
	for _, ok := range topChecks {
		if ok {
			topHits++
		}
	}

	score := topWeight * float64(topHits) / float64(len(topChecks))

	if n := len(d.Items); n > 0 {
		good := 0
		for _, it := range d.Items {
			if populated(it.Description) && it.Quantity > 0 && it.UnitPrice > 0 {
				good++
			}
		}
		score += itemsWeight * float64(good) / float64(n)
	}

	return int(math.Round(score))
}
