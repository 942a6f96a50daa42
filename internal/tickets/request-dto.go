package tickets

// ValidateSelectionRequest is the storefront pre-validation payload.
type ValidateSelectionRequest struct {
	ProductCode string   `json:"product_code" validate:"required"`
	Days        []string `json:"days" validate:"max=8"`
}
