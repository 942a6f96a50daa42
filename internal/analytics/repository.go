package analytics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	OrderCountsByStatus(ctx context.Context) ([]CountRow, error)
	GrossRevenue(ctx context.Context) (float64, error)
	TicketsByProduct(ctx context.Context) ([]CountRow, error)
	TicketsByDay(ctx context.Context) ([]CountRow, error)
	CheckedInTickets(ctx context.Context) (int, error)
	ScansByDay(ctx context.Context) ([]CountRow, error)
	VIPSeatsByDay(ctx context.Context) ([]CountRow, error)
	DailySales(ctx context.Context, since time.Time) ([]DailySales, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrderCountsByStatus(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.WithContext(ctx).
		Table("orders").
		Select("status AS key, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}
	return rows, nil
}

func (r *repository) GrossRevenue(ctx context.Context) (float64, error) {
	var revenue float64
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("status = ?", "PAID").
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&revenue).Error
	if err != nil {
		return 0, fmt.Errorf("failed to calculate gross revenue: %w", err)
	}
	return revenue, nil
}

func (r *repository) TicketsByProduct(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("product_code AS key, COUNT(*) AS count").
		Group("product_code").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by product: %w", err)
	}
	return rows, nil
}

func (r *repository) TicketsByDay(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT d.day AS key, COUNT(*) AS count
		FROM tickets t, unnest(t.days) AS d(day)
		GROUP BY d.day
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets by day: %w", err)
	}
	return rows, nil
}

func (r *repository) CheckedInTickets(ctx context.Context) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Table("tickets").
		Where("checked_in_at IS NOT NULL").
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count checked-in tickets: %w", err)
	}
	return int(n), nil
}

func (r *repository) ScansByDay(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.WithContext(ctx).
		Table("ticket_scans").
		Select("day AS key, COUNT(*) AS count").
		Group("day").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count scans by day: %w", err)
	}
	return rows, nil
}

func (r *repository) VIPSeatsByDay(ctx context.Context) ([]CountRow, error) {
	var rows []CountRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT ed.code AS key, COALESCE(SUM(vr.seats_reserved), 0) AS count
		FROM vip_reservations vr
		JOIN vip_reservation_days rd ON rd.reservation_id = vr.id
		JOIN event_days ed ON ed.id = rd.event_day_id
		WHERE vr.status IN ('PENDING', 'CONFIRMED')
		GROUP BY ed.code
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum VIP seats by day: %w", err)
	}
	return rows, nil
}

func (r *repository) DailySales(ctx context.Context, since time.Time) ([]DailySales, error) {
	var stats []DailySales
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date,
			COUNT(*) AS total_orders,
			SUM(CASE WHEN status = 'PAID' THEN 1 ELSE 0 END) AS paid_orders,
			SUM(CASE WHEN status = 'EXPIRED' THEN 1 ELSE 0 END) AS expired_orders,
			COALESCE(SUM(CASE WHEN status = 'PAID' THEN total_amount ELSE 0 END), 0) AS revenue,
			COALESCE(AVG(CASE WHEN status = 'PAID' THEN total_amount ELSE NULL END), 0) AS average_value
		FROM orders
		WHERE created_at >= ?
		GROUP BY DATE(created_at)
		ORDER BY date DESC
	`, since).Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}
	return stats, nil
}
