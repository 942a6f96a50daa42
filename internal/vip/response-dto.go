package vip

import (
	"time"

	"festtix/internal/tickets"
)

type DayAvailabilityResponse struct {
	Day   tickets.DayCode    `json:"day"`
	Date  string             `json:"date"`
	Zones []ZoneAvailability `json:"zones"`
}

type ReservationResponse struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"order_id"`
	TableID   string            `json:"table_id"`
	Seats     int               `json:"seats"`
	Status    ReservationStatus `json:"status"`
	Days      []tickets.DayCode `json:"days"`
	CreatedAt time.Time         `json:"created_at"`
}
