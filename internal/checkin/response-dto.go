package checkin

import (
	"time"

	"festtix/internal/tickets"
)

type ScanResult struct {
	Outcome        Outcome             `json:"outcome"`
	Admitted       bool                `json:"admitted"`
	Message        string              `json:"message"`
	Day            tickets.DayCode     `json:"day"`
	TicketCode     string              `json:"ticket_code"`
	ProductCode    tickets.ProductCode `json:"product_code,omitempty"`
	ProductLabel   string              `json:"product_label,omitempty"`
	HolderName     string              `json:"holder_name,omitempty"`
	ValidDays      []string            `json:"valid_days,omitempty"`
	OrderReference string              `json:"order_reference,omitempty"`
	ScannedAt      *time.Time          `json:"scanned_at,omitempty"`
}
