package eventdays

import (
	"context"
	"errors"

	"festtix/internal/tickets"

	"gorm.io/gorm"
)

var ErrDayNotFound = errors.New("event day not found")

type Repository interface {
	ListActive(ctx context.Context) ([]EventDay, error)
	GetByCode(ctx context.Context, code tickets.DayCode) (*EventDay, error)
	GetByCodes(ctx context.Context, codes []tickets.DayCode) ([]EventDay, error)
	Upsert(ctx context.Context, day *EventDay) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]EventDay, error) {
	var days []EventDay
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

func (r *repository) GetByCode(ctx context.Context, code tickets.DayCode) (*EventDay, error) {
	var day EventDay
	err := r.db.WithContext(ctx).
		Where("code = ? AND is_active = ?", code.String(), true).
		First(&day).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *repository) GetByCodes(ctx context.Context, codes []tickets.DayCode) ([]EventDay, error) {
	raw := make([]string, len(codes))
	for i, c := range codes {
		raw[i] = c.String()
	}
	var days []EventDay
	err := r.db.WithContext(ctx).
		Where("code IN ? AND is_active = ?", raw, true).
		Order("date ASC").
		Find(&days).Error
	return days, err
}

// Upsert inserts or refreshes a day keyed by code.
func (r *repository) Upsert(ctx context.Context, day *EventDay) error {
	return r.db.WithContext(ctx).
		Where(EventDay{Code: day.Code}).
		Assign(map[string]interface{}{"date": day.Date, "label": day.Label, "is_active": day.IsActive}).
		FirstOrCreate(day).Error
}
