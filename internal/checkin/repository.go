package checkin

import (
	"context"
	"errors"

	"festtix/internal/orders"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrTicketNotFound = errors.New("ticket not found")

// TicketRecord is a ticket joined with the order fields the scanner needs.
type TicketRecord struct {
	Ticket         orders.Ticket
	OrderStatus    orders.Status
	OrderReference string
}

type Repository interface {
	FindTicket(ctx context.Context, code string) (*TicketRecord, error)
	GetScan(ctx context.Context, ticketID uuid.UUID, day string) (*TicketScan, error)
	// RecordScan inserts the scan and stamps the ticket's first check-in.
	// It reports false when the ticket was already scanned for that day.
	RecordScan(ctx context.Context, scan *TicketScan) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindTicket(ctx context.Context, code string) (*TicketRecord, error) {
	var ticket orders.Ticket
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&ticket).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	var order orders.Order
	err := r.db.WithContext(ctx).
		Select("id", "status", "reference").
		Where("id = ?", ticket.OrderID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTicketNotFound
		}
		return nil, err
	}

	return &TicketRecord{Ticket: ticket, OrderStatus: order.Status, OrderReference: order.Reference}, nil
}

func (r *repository) GetScan(ctx context.Context, ticketID uuid.UUID, day string) (*TicketScan, error) {
	var scan TicketScan
	err := r.db.WithContext(ctx).Where("ticket_id = ? AND day = ?", ticketID, day).First(&scan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &scan, nil
}

func (r *repository) RecordScan(ctx context.Context, scan *TicketScan) (bool, error) {
	inserted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ticket_id"}, {Name: "day"}},
			DoNothing: true,
		}).Create(scan)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		inserted = true

		return tx.Model(&orders.Ticket{}).
			Where("id = ? AND checked_in_at IS NULL", scan.TicketID).
			Update("checked_in_at", scan.ScannedAt).Error
	})
	return inserted, err
}
