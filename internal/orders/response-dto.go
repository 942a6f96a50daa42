package orders

import (
	"time"

	"festtix/internal/tickets"
	"festtix/internal/vip"
)

type CheckoutResponse struct {
	OrderID     string              `json:"order_id"`
	Reference   string              `json:"reference"`
	Status      Status              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	Currency    string              `json:"currency"`
	CheckoutURL string              `json:"checkout_url"`
	SessionID   string              `json:"session_id"`
	Items       []OrderItemResponse `json:"items"`
}

type OrderItemResponse struct {
	ProductCode   tickets.ProductCode `json:"product_code"`
	ProductLabel  string              `json:"product_label"`
	Category      tickets.Category    `json:"category"`
	DurationLabel string              `json:"duration_label"`
	Days          []string            `json:"days"`
	Quantity      int                 `json:"quantity"`
	UnitPrice     float64             `json:"unit_price"`
	LineTotal     float64             `json:"line_total"`
}

type TicketResponse struct {
	Code        string              `json:"code"`
	ProductCode tickets.ProductCode `json:"product_code"`
	Days        []string            `json:"days"`
	HolderName  string              `json:"holder_name"`
	CheckedInAt *time.Time          `json:"checked_in_at,omitempty"`
}

type OrderResponse struct {
	ID           string                    `json:"id"`
	Reference    string                    `json:"reference"`
	Email        string                    `json:"email"`
	FullName     string                    `json:"full_name"`
	Status       Status                    `json:"status"`
	TotalAmount  float64                   `json:"total_amount"`
	Currency     string                    `json:"currency"`
	PaidAt       *time.Time                `json:"paid_at,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	Items        []OrderItemResponse       `json:"items"`
	Tickets      []TicketResponse          `json:"tickets"`
	Reservations []vip.ReservationResponse `json:"vip_reservations"`
}

type OrderSummaryResponse struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	Status      Status    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

type CleanupResult struct {
	ExpiredOrders       int64  `json:"expired_orders"`
	ExpiredReservations int64  `json:"expired_reservations"`
	Cutoff              string `json:"cutoff"`
}

func toItemResponse(item OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ProductCode:   item.ProductCode,
		ProductLabel:  tickets.LabelFromProductCode(item.ProductCode),
		Category:      item.Category,
		DurationLabel: tickets.DurationLabelFromProductCode(item.ProductCode),
		Days:          []string(item.Days),
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		LineTotal:     item.LineTotal,
	}
}

func toOrderResponse(o *Order, reservations []vip.ReservationResponse) *OrderResponse {
	resp := &OrderResponse{
		ID:           o.ID.String(),
		Reference:    o.Reference,
		Email:        o.Email,
		FullName:     o.FullName,
		Status:       o.Status,
		TotalAmount:  o.TotalAmount,
		Currency:     o.Currency,
		PaidAt:       o.PaidAt,
		CreatedAt:    o.CreatedAt,
		Items:        make([]OrderItemResponse, 0, len(o.Items)),
		Tickets:      make([]TicketResponse, 0, len(o.Tickets)),
		Reservations: reservations,
	}
	if resp.Reservations == nil {
		resp.Reservations = []vip.ReservationResponse{}
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	for _, t := range o.Tickets {
		resp.Tickets = append(resp.Tickets, TicketResponse{
			Code:        t.Code,
			ProductCode: t.ProductCode,
			Days:        []string(t.Days),
			HolderName:  t.HolderName,
			CheckedInAt: t.CheckedInAt,
		})
	}
	return resp
}

func toSummary(o *Order) OrderSummaryResponse {
	return OrderSummaryResponse{
		ID:          o.ID.String(),
		Reference:   o.Reference,
		Email:       o.Email,
		FullName:    o.FullName,
		Status:      o.Status,
		TotalAmount: o.TotalAmount,
		Currency:    o.Currency,
		ItemCount:   len(o.Items),
		CreatedAt:   o.CreatedAt,
	}
}
