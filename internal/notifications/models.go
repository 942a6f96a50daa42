package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TicketEmailReason string

const (
	ReasonOrderPaid TicketEmailReason = "ORDER_PAID"
	ReasonResend    TicketEmailReason = "RESEND"
)

func (r TicketEmailReason) IsValid() bool {
	return r == ReasonOrderPaid || r == ReasonResend
}

// TicketLine is one issued ticket as shown in the email.
type TicketLine struct {
	Code         string   `json:"code"`
	ProductCode  string   `json:"product_code"`
	ProductLabel string   `json:"product_label"`
	Days         []string `json:"days"`
}

// TicketEmailRequest asks the mail worker to deliver an order's tickets.
type TicketEmailRequest struct {
	ID          uuid.UUID         `json:"id"`
	OrderID     uuid.UUID         `json:"order_id"`
	Reference   string            `json:"reference"`
	Email       string            `json:"email"`
	FullName    string            `json:"full_name"`
	Reason      TicketEmailReason `json:"reason"`
	Tickets     []TicketLine      `json:"tickets"`
	TotalAmount float64           `json:"total_amount"`
	Currency    string            `json:"currency"`
	CreatedAt   time.Time         `json:"created_at"`
}

func NewTicketEmailRequest(orderID uuid.UUID, reason TicketEmailReason) *TicketEmailRequest {
	return &TicketEmailRequest{
		ID:        uuid.New(),
		OrderID:   orderID,
		Reason:    reason,
		CreatedAt: time.Now().UTC(),
	}
}

// PartitionKey keeps all mails of one order on one partition.
func (r *TicketEmailRequest) PartitionKey() string {
	return r.OrderID.String()
}

func (r *TicketEmailRequest) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

// TicketCodes lists the codes in ticket order.
func (r *TicketEmailRequest) TicketCodes() []string {
	codes := make([]string, len(r.Tickets))
	for i, t := range r.Tickets {
		codes[i] = t.Code
	}
	return codes
}
