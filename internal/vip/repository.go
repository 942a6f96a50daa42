package vip

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	ListActiveZones(ctx context.Context) ([]Zone, error)
	ListActiveTables(ctx context.Context) ([]Table, error)
	ListOverridesForDay(ctx context.Context, dayID uuid.UUID) ([]TableDayOverride, error)
	// ListHoldingReservationsForDay returns non-cancelled, non-expired reservations linked to dayID, with their day links.
	ListHoldingReservationsForDay(ctx context.Context, dayID uuid.UUID, tableID *uuid.UUID) ([]Reservation, error)

	GetTable(ctx context.Context, id uuid.UUID) (*Table, error)
	// WithReservationLocks runs fn in a transaction holding row locks on the
	// order and then the table. fn gets the order's status as read under the lock.
	WithReservationLocks(ctx context.Context, orderID, tableID uuid.UUID, fn func(tx Repository, orderStatus string, table *Table) error) error
	CreateReservation(ctx context.Context, reservation *Reservation) error

	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)
	ListReservationsForOrder(ctx context.Context, orderID uuid.UUID) ([]Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, from []ReservationStatus, to ReservationStatus) (int64, error)
	UpdateStatusForOrders(ctx context.Context, orderIDs []uuid.UUID, from []ReservationStatus, to ReservationStatus) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActiveZones(ctx context.Context) ([]Zone, error) {
	var zones []Zone
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, code ASC").
		Find(&zones).Error
	return zones, err
}

func (r *repository) ListActiveTables(ctx context.Context) ([]Table, error) {
	var tables []Table
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("zone_id, sort_order ASC, table_number ASC").
		Find(&tables).Error
	return tables, err
}

func (r *repository) ListOverridesForDay(ctx context.Context, dayID uuid.UUID) ([]TableDayOverride, error) {
	var overrides []TableDayOverride
	err := r.db.WithContext(ctx).
		Where("event_day_id = ?", dayID).
		Find(&overrides).Error
	return overrides, err
}

func (r *repository) ListHoldingReservationsForDay(ctx context.Context, dayID uuid.UUID, tableID *uuid.UUID) ([]Reservation, error) {
	q := r.db.WithContext(ctx).
		Preload("Days").
		Joins("JOIN vip_reservation_days rd ON rd.reservation_id = vip_reservations.id").
		Where("rd.event_day_id = ?", dayID).
		Where("vip_reservations.status NOT IN ?", []ReservationStatus{ReservationCancelled, ReservationExpired})
	if tableID != nil {
		q = q.Where("vip_reservations.table_id = ?", *tableID)
	}

	var reservations []Reservation
	err := q.Find(&reservations).Error
	return reservations, err
}

func (r *repository) GetTable(ctx context.Context, id uuid.UUID) (*Table, error) {
	var table Table
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return &table, nil
}

func (r *repository) WithReservationLocks(ctx context.Context, orderID, tableID uuid.UUID, fn func(tx Repository, orderStatus string, table *Table) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// order first, then table; status changes on orders wait for this transaction
		var orderStatus string
		res := tx.Raw("SELECT status FROM orders WHERE id = ? FOR UPDATE", orderID).Scan(&orderStatus)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrOrderNotFound
		}

		var table Table
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = ?", tableID, true).
			First(&table).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTableNotFound
			}
			return err
		}
		return fn(&repository{db: tx}, orderStatus, &table)
	})
}

// CreateReservation inserts the reservation together with its day links.
func (r *repository) CreateReservation(ctx context.Context, reservation *Reservation) error {
	return r.db.WithContext(ctx).Create(reservation).Error
}

func (r *repository) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var reservation Reservation
	err := r.db.WithContext(ctx).Preload("Days").Where("id = ?", id).First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *repository) ListReservationsForOrder(ctx context.Context, orderID uuid.UUID) ([]Reservation, error) {
	var reservations []Reservation
	err := r.db.WithContext(ctx).
		Preload("Days").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *repository) UpdateReservationStatus(ctx context.Context, id uuid.UUID, from []ReservationStatus, to ReservationStatus) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *repository) UpdateStatusForOrders(ctx context.Context, orderIDs []uuid.UUID, from []ReservationStatus, to ReservationStatus) (int64, error) {
	if len(orderIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&Reservation{}).
		Where("order_id IN ? AND status IN ?", orderIDs, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}
