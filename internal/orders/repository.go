package orders

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	// GetWithRelations loads items and tickets as well.
	GetWithRelations(ctx context.Context, id uuid.UUID) (*Order, error)
	SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error

	// MarkPaid moves an order from one of from to PAID and inserts its tickets
	// in one transaction. It reports false when no row was in a payable state.
	MarkPaid(ctx context.Context, id uuid.UUID, from []Status, sessionID, paymentIntentID string, paidAt time.Time, issued []Ticket) (bool, error)
	// UpdateStatus returns the ids it actually moved.
	UpdateStatus(ctx context.Context, ids []uuid.UUID, from []Status, to Status) ([]uuid.UUID, error)

	List(ctx context.Context, query OrderListQuery) ([]Order, int64, error)
	// Delete removes an unpaid order. release runs inside the same transaction
	// once the row is gone; an error from it rolls the delete back.
	Delete(ctx context.Context, id uuid.UUID, release func(ctx context.Context) error) (int64, error)
	ListStalePending(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, order *Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *repository) GetWithRelations(ctx context.Context, id uuid.UUID) (*Order, error) {
	var order Order
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Tickets", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC, code ASC") }).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *repository) SetCheckoutSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&Order{}).
		Where("id = ?", id).
		Update("stripe_session_id", sessionID).Error
}

func (r *repository) MarkPaid(ctx context.Context, id uuid.UUID, from []Status, sessionID, paymentIntentID string, paidAt time.Time, issued []Ticket) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":                   StatusPaid,
			"paid_at":                  paidAt,
			"stripe_payment_intent_id": paymentIntentID,
		}
		if sessionID != "" {
			updates["stripe_session_id"] = sessionID
		}

		res := tx.Model(&Order{}).
			Where("id = ? AND status IN ?", id, from).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		applied = true

		if len(issued) == 0 {
			return nil
		}
		return tx.CreateInBatches(issued, 100).Error
	})
	return applied, err
}

func (r *repository) UpdateStatus(ctx context.Context, ids []uuid.UUID, from []Status, to Status) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var moved []Order
	err := r.db.WithContext(ctx).
		Model(&moved).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("id IN ? AND status IN ?", ids, from).
		Update("status", to).Error
	if err != nil {
		return nil, err
	}

	out := make([]uuid.UUID, 0, len(moved))
	for _, o := range moved {
		out = append(out, o.ID)
	}
	return out, nil
}

func (r *repository) List(ctx context.Context, query OrderListQuery) ([]Order, int64, error) {
	var orders []Order
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 20
	}

	baseQuery := r.applyFilters(r.db.WithContext(ctx).Model(&Order{}), query)

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&orders).Error

	return orders, totalCount, err
}

func (r *repository) applyFilters(query *gorm.DB, filters OrderListQuery) *gorm.DB {
	if filters.Status != "" {
		query = query.Where("status = ?", strings.ToUpper(filters.Status))
	}

	if filters.Email != "" {
		query = query.Where("email ILIKE ?", "%"+strings.ToLower(filters.Email)+"%")
	}

	if filters.DateFrom != "" {
		if dateFrom, err := time.Parse("2006-01-02", filters.DateFrom); err == nil {
			query = query.Where("created_at >= ?", dateFrom)
		}
	}

	if filters.DateTo != "" {
		if dateTo, err := time.Parse("2006-01-02", filters.DateTo); err == nil {
			query = query.Where("created_at < ?", dateTo.AddDate(0, 0, 1))
		}
	}

	return query
}

// Delete never matches a paid order. The deleted row stays locked until
// release returns, so a payment for it waits and then finds nothing.
func (r *repository) Delete(ctx context.Context, id uuid.UUID, release func(ctx context.Context) error) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND status <> ?", id, StatusPaid).Delete(&Order{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 || release == nil {
			return nil
		}
		return release(ctx)
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (r *repository) ListStalePending(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Order{}).
		Where("status = ? AND created_at < ?", StatusPending, before).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &ids).Error
	return ids, err
}
