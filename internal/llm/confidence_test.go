package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfidence_Boundaries(t *testing.T) {
	t.Run("all defaults score zero", func(t *testing.T) {
		d := OrganizedData{}
		ApplyDefaults(&d)
		assert.Equal(t, 0, Confidence(d))
	})

	t.Run("fully populated scores one hundred", func(t *testing.T) {
		d := OrganizedData{
			ClientName:     "Obra Central",
			VendorName:     "Construtiva Materiais",
			ProposalNumber: "PROP-0042",
			Date:           "2025-05-20",
			Items: []Item{
				{Description: "Cimento", Quantity: 10, Unit: "sc", UnitPrice: 32.5, Total: 325},
				{Description: "Areia", Quantity: 3, Unit: "m³", UnitPrice: 120, Total: 360},
			},
			Subtotal:      685,
			Total:         685,
			PaymentTerms:  "30 dias",
			DeliveryTerms: "10 dias úteis",
		}
		assert.Equal(t, 100, Confidence(d))
	})
}

func TestConfidence_Deterministic(t *testing.T) {
	d := OrganizedData{
		ClientName: "Obra Central",
		Items: []Item{
			{Description: "Cimento", Quantity: 10, UnitPrice: 32.5},
			{Description: "", Quantity: 0, UnitPrice: 0}, // malformed item
		},
		Total: 325,
	}
	first := Confidence(d)
	second := Confidence(d)
	assert.Equal(t, first, second)
	assert.Greater(t, first, 0)
	assert.Less(t, first, 100)
}

func TestConfidence_MalformedItemsScoreNothing(t *testing.T) {
	base := OrganizedData{
		Items: []Item{{Description: "Cimento", Quantity: 10, UnitPrice: 32.5}},
	}
	broken := OrganizedData{
		Items: []Item{{Description: "Cimento", Quantity: 10, UnitPrice: 0}},
	}
	assert.Greater(t, Confidence(base), Confidence(broken))
}

func TestApplyDefaults(t *testing.T) {
	d := OrganizedData{Items: []Item{{Description: "Cimento", Quantity: 1, UnitPrice: 2}}}
	ApplyDefaults(&d)

	assert.Equal(t, "N/A", d.ClientName)
	assert.Equal(t, "N/A", d.VendorName)
	assert.Equal(t, "N/A", d.ProposalNumber)
	assert.Equal(t, "N/A", d.Date)
	assert.Equal(t, "N/A", d.PaymentTerms)
	assert.Equal(t, "N/A", d.DeliveryTerms)
	assert.Equal(t, "N/A", d.Items[0].Unit)
	assert.Zero(t, d.Subtotal)
	assert.Zero(t, d.Total)
}
