package llm

// BuildProposalJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map. We embed it in the prompt as the output contract and also use
// it locally to validate the model's response.
func BuildProposalJSONSchema() map[string]any {
	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string"},
			"quantity":    numberProp(),
			"unit":        map[string]any{"type": "string"},
			"unit_price":  numberProp(),
			"total":       numberProp(),
		},
		"required": []string{"description", "quantity", "unit_price"},
	}

	props := map[string]any{
		"client_name":     map[string]any{"type": "string"},
		"vendor_name":     map[string]any{"type": "string"},
		"proposal_number": map[string]any{"type": "string"},
		"date":            map[string]any{"type": "string"},
		"items":           map[string]any{"type": "array", "items": item},
		"subtotal":        numberProp(),
		"total":           numberProp(),
		"payment_terms":   map[string]any{"type": "string"},
		"delivery_terms":  map[string]any{"type": "string"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             []string{"items"},
	}
}

func numberProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}
