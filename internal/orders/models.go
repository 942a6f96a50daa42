package orders

import (
	"time"

	"festtix/internal/tickets"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Order is a storefront purchase of one or more ticket lines.
type Order struct {
	ID                    uuid.UUID         `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Reference             string            `json:"reference" gorm:"size:32;uniqueIndex;not null"`
	Email                 string            `json:"email" gorm:"size:255;index;not null"`
	FullName              string            `json:"full_name" gorm:"size:255;not null"`
	Status                Status            `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	TotalAmount           float64           `json:"total_amount" gorm:"type:numeric(10,2);not null"`
	Currency              string            `json:"currency" gorm:"type:varchar(3);not null"`
	StripeSessionID       *string           `json:"stripe_session_id,omitempty" gorm:"size:255;uniqueIndex"`
	StripePaymentIntentID string            `json:"stripe_payment_intent_id,omitempty" gorm:"size:255"`
	PaidAt                *time.Time        `json:"paid_at,omitempty"`
	Metadata              datatypes.JSONMap `json:"metadata,omitempty" gorm:"type:jsonb"`
	CreatedAt             time.Time         `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt             time.Time         `json:"updated_at" gorm:"autoUpdateTime"`

	Items   []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
	Tickets []Ticket    `json:"tickets,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem is one validated, server-priced line.
type OrderItem struct {
	ID          uuid.UUID           `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID           `json:"order_id" gorm:"type:uuid;not null;index"`
	ProductCode tickets.ProductCode `json:"product_code" gorm:"type:varchar(32);not null"`
	Category    tickets.Category    `json:"category" gorm:"type:varchar(16);not null"`
	Days        pq.StringArray      `json:"days" gorm:"type:text[];not null"`
	Quantity    int                 `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice   float64             `json:"unit_price" gorm:"type:numeric(10,2);not null"`
	LineTotal   float64             `json:"line_total" gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time           `json:"created_at" gorm:"autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// DaySet parses the stored day codes.
func (i OrderItem) DaySet() tickets.DaySet {
	return tickets.ParseDaySet(i.Days)
}

// Ticket is one admission issued when an order is paid.
type Ticket struct {
	ID          uuid.UUID           `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID     uuid.UUID           `json:"order_id" gorm:"type:uuid;not null;index"`
	OrderItemID uuid.UUID           `json:"order_item_id" gorm:"type:uuid;not null;index"`
	Code        string              `json:"code" gorm:"size:64;uniqueIndex;not null"`
	ProductCode tickets.ProductCode `json:"product_code" gorm:"type:varchar(32);not null"`
	Category    tickets.Category    `json:"category" gorm:"type:varchar(16);not null"`
	Days        pq.StringArray      `json:"days" gorm:"type:text[];not null"`
	HolderName  string              `json:"holder_name" gorm:"size:255"`
	CheckedInAt *time.Time          `json:"checked_in_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at" gorm:"autoCreateTime"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t Ticket) DaySet() tickets.DaySet {
	return tickets.ParseDaySet(t.Days)
}
