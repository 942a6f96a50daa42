package vip

import (
	"time"

	"github.com/google/uuid"
)

// Zone is a named VIP area.
type Zone struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `json:"code" gorm:"size:50;uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	IsActive  bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Zone) TableName() string {
	return "vip_zones"
}

// Table belongs to exactly one zone.
type Table struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ZoneID      uuid.UUID `json:"zone_id" gorm:"type:uuid;not null;index"`
	TableNumber int       `json:"table_number" gorm:"not null"`
	Capacity    int       `json:"capacity" gorm:"not null;check:capacity >= 0"`
	SortOrder   int       `json:"sort_order" gorm:"not null;default:0"`
	IsActive    bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Table) TableName() string {
	return "vip_tables"
}

// TableDayOverride changes a table's capacity or enabled flag for one day.
// Nil columns fall back to the table defaults.
type TableDayOverride struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	TableID          uuid.UUID `json:"table_id" gorm:"type:uuid;not null;uniqueIndex:idx_vip_override_table_day"`
	EventDayID       uuid.UUID `json:"event_day_id" gorm:"type:uuid;not null;uniqueIndex:idx_vip_override_table_day"`
	CapacityOverride *int      `json:"capacity_override" gorm:"check:capacity_override >= 0"`
	IsEnabled        *bool     `json:"is_enabled"`
	CreatedAt        time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt        time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (TableDayOverride) TableName() string {
	return "vip_table_day_overrides"
}

// Reservation holds seats at one table for an order on one or more days.
type Reservation struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID       uuid.UUID         `json:"order_id" gorm:"type:uuid;not null;index"`
	TableID       uuid.UUID         `json:"table_id" gorm:"type:uuid;not null;index"`
	SeatsReserved int               `json:"seats_reserved" gorm:"not null;check:seats_reserved > 0"`
	Status        ReservationStatus `json:"status" gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Days          []ReservationDay  `json:"days" gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Reservation) TableName() string {
	return "vip_reservations"
}

// ReservationDay links a reservation to a day it consumes capacity on.
type ReservationDay struct {
	ReservationID uuid.UUID `json:"reservation_id" gorm:"type:uuid;primaryKey"`
	EventDayID    uuid.UUID `json:"event_day_id" gorm:"type:uuid;primaryKey;index"`
}

func (ReservationDay) TableName() string {
	return "vip_reservation_days"
}

// CoversDay reports whether the reservation is linked to dayID.
func (r Reservation) CoversDay(dayID uuid.UUID) bool {
	for _, d := range r.Days {
		if d.EventDayID == dayID {
			return true
		}
	}
	return false
}
