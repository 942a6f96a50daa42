package tickets

type ValidateSelectionResponse struct {
	Result
	ProductCode   ProductCode `json:"product_code"`
	Label         string      `json:"label"`
	Category      Category    `json:"category"`
	DurationLabel string      `json:"duration_label"`
	UnitPrice     *float64    `json:"unit_price,omitempty"`
}
