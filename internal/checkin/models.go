package checkin

import (
	"time"

	"github.com/google/uuid"
)

// TicketScan is one admission of a ticket on a festival day.
type TicketScan struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TicketID  uuid.UUID  `json:"ticket_id" gorm:"type:uuid;not null;uniqueIndex:idx_ticket_scans_ticket_day"`
	OrderID   uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	Day       string     `json:"day" gorm:"type:varchar(3);not null;uniqueIndex:idx_ticket_scans_ticket_day;index"`
	ScannedBy *uuid.UUID `json:"scanned_by,omitempty" gorm:"type:uuid"`
	ScannedAt time.Time  `json:"scanned_at" gorm:"not null"`
}

func (TicketScan) TableName() string {
	return "ticket_scans"
}
