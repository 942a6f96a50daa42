package vip

type ReserveTableRequest struct {
	OrderID string   `json:"order_id" validate:"required,uuid"`
	TableID string   `json:"table_id" validate:"required,uuid"`
	Days    []string `json:"days" validate:"required,min=1,max=4"`
	Seats   int      `json:"seats" validate:"required,min=1,max=20"`
}
