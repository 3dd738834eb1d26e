package proposal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/construtiva/proposal-pipeline/internal/llm"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFormat_ItemTotalsRecomputed(t *testing.T) {
	tests := []struct {
		name      string
		item      llm.Item
		wantTotal float64
	}{
		{
			name:      "simple multiplication",
			item:      llm.Item{Description: "Cimento CP-II 50kg", Quantity: 10, UnitPrice: 32.5},
			wantTotal: 325.00,
		},
		{
			name:      "model total ignored",
			item:      llm.Item{Description: "Areia média m³", Quantity: 3, UnitPrice: 120, Total: 999},
			wantTotal: 360.00,
		},
		{
			name:      "fractional quantity rounds to cents",
			item:      llm.Item{Description: "Vergalhão 10mm", Quantity: 2.5, UnitPrice: 33.333},
			wantTotal: 83.33,
		},
		{
			name:      "zero quantity",
			item:      llm.Item{Description: "Brinde", Quantity: 0, UnitPrice: 50},
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Format(llm.OrganizedData{Items: []llm.Item{tt.item}}, fixedNow)
			require.Len(t, fp.Items, 1)
			assert.InDelta(t, tt.wantTotal, fp.Items[0].Total, 1e-9)
		})
	}
}

func TestFormat_TotalFallback(t *testing.T) {
	items := []llm.Item{
		{Description: "Item A", Quantity: 2, UnitPrice: 10},
		{Description: "Item B", Quantity: 1, UnitPrice: 5},
	}

	t.Run("zero supplied total uses recomputed sum", func(t *testing.T) {
		fp := Format(llm.OrganizedData{Items: items, Total: 0}, fixedNow)
		assert.Equal(t, 25.0, fp.Subtotal)
		assert.Equal(t, 25.0, fp.Total)
	})

	t.Run("positive supplied total wins even when inconsistent", func(t *testing.T) {
		fp := Format(llm.OrganizedData{Items: items, Subtotal: 25, Total: 30}, fixedNow)
		assert.Equal(t, 25.0, fp.Subtotal)
		assert.Equal(t, 30.0, fp.Total)
	})

	t.Run("no items and no totals", func(t *testing.T) {
		fp := Format(llm.OrganizedData{}, fixedNow)
		assert.Zero(t, fp.Subtotal)
		assert.Zero(t, fp.Total)
		assert.Empty(t, fp.Items)
	})
}

func TestFormat_RoundTripSubtotal(t *testing.T) {
	d := llm.OrganizedData{
		Items: []llm.Item{
			{Description: "Bloco cerâmico", Quantity: 1200, UnitPrice: 1.87},
			{Description: "Argamassa ACIII", Quantity: 14, UnitPrice: 28.9},
			{Description: "Telha fibrocimento", Quantity: 36, UnitPrice: 45.05},
		},
	}
	fp := Format(d, fixedNow)

	var sum float64
	for _, it := range fp.Items {
		sum += it.Total
	}
	assert.InDelta(t, fp.Subtotal, sum, 0.01)
}

func TestFormat_SentinelMapping(t *testing.T) {
	d := llm.OrganizedData{
		ClientName:     "N/A",
		VendorName:     "Construtiva Materiais",
		ProposalNumber: "N/A",
		Date:           "N/A",
		PaymentTerms:   "N/A",
		DeliveryTerms:  "N/A",
		Items: []llm.Item{
			{Description: "Item", Quantity: 1, Unit: "N/A", UnitPrice: 10},
		},
	}
	fp := Format(d, fixedNow)

	assert.Empty(t, fp.ClientName)
	assert.Equal(t, "Construtiva Materiais", fp.VendorName)
	assert.Empty(t, fp.ProposalNumber)
	assert.Empty(t, fp.ProposalDate)
	assert.Empty(t, fp.Observations)
	assert.Empty(t, fp.Items[0].Unit)
}

func TestFormat_Observations(t *testing.T) {
	tests := []struct {
		name     string
		payment  string
		delivery string
		want     string
	}{
		{"both present", "30/60/90 dias", "15 dias úteis", "Pagamento: 30/60/90 dias | Entrega: 15 dias úteis"},
		{"payment only", "à vista", "N/A", "Pagamento: à vista"},
		{"delivery only", "N/A", "imediata", "Entrega: imediata"},
		{"both sentinel", "N/A", "N/A", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fp := Format(llm.OrganizedData{PaymentTerms: tt.payment, DeliveryTerms: tt.delivery}, fixedNow)
			assert.Equal(t, tt.want, fp.Observations)
		})
	}
}

func TestFormat_DefaultsAndValidity(t *testing.T) {
	fp := Format(llm.OrganizedData{}, fixedNow)
	assert.Equal(t, "draft", fp.Status)
	assert.Equal(t, fixedNow.AddDate(0, 0, 30), fp.ValidUntil)
}

func TestFormat_Idempotent(t *testing.T) {
	d := llm.OrganizedData{
		ClientName: "Obra Central",
		Items: []llm.Item{
			{Description: "Item A", Quantity: 2, UnitPrice: 10.55},
			{Description: "Item B", Quantity: 7, UnitPrice: 3.2},
		},
		Subtotal:     43.5,
		Total:        43.5,
		PaymentTerms: "boleto 28 dias",
	}
	first := Format(d, fixedNow)
	second := Format(d, fixedNow)
	assert.Equal(t, first, second)
}
