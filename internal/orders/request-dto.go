package orders

type CheckoutItemRequest struct {
	ProductCode string   `json:"product_code" validate:"required"`
	Days        []string `json:"days" validate:"max=8"`
	Quantity    int      `json:"quantity" validate:"required,min=1"`
}

type CheckoutRequest struct {
	Email    string                `json:"email" validate:"required,email"`
	FullName string                `json:"full_name" validate:"required,min=2,max=255"`
	Items    []CheckoutItemRequest `json:"items" validate:"required,min=1,max=20,dive"`
	Metadata map[string]string     `json:"metadata,omitempty" validate:"max=20"`
}

type OrderListQuery struct {
	Status   string `form:"status"`
	Email    string `form:"email"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

type CleanupRequest struct {
	OlderThanMinutes int `json:"older_than_minutes" validate:"omitempty,min=1,max=10080"`
}
