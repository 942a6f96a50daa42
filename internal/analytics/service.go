package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"festtix/internal/shared/constants"
	"festtix/pkg/cache"
	"festtix/pkg/logger"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

const maxDailySalesWindow = 90

type Service interface {
	SetCacheService(cacheService cache.Service)
	GetOverview(ctx context.Context) (*Overview, error)
	GetDailySales(ctx context.Context, days int) ([]DailySales, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	now          func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) GetOverview(ctx context.Context) (*Overview, error) {
	cacheKey := constants.CACHE_KEY_ANALYTICS_OVERVIEW

	if s.cacheService != nil {
		var cached Overview
		if err := s.cacheService.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	overview, err := s.buildOverview(ctx)
	if err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		if err := s.cacheService.Set(ctx, cacheKey, overview, constants.TTL_ANALYTICS_OVERVIEW); err != nil {
			logger.GetDefault().WithError(err).Warn("Failed to cache analytics overview")
		}
	}
	return overview, nil
}

func (s *service) buildOverview(ctx context.Context) (*Overview, error) {
	statusRows, err := s.repo.OrderCountsByStatus(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.GrossRevenue(ctx)
	if err != nil {
		return nil, err
	}
	productRows, err := s.repo.TicketsByProduct(ctx)
	if err != nil {
		return nil, err
	}
	dayRows, err := s.repo.TicketsByDay(ctx)
	if err != nil {
		return nil, err
	}
	checkedIn, err := s.repo.CheckedInTickets(ctx)
	if err != nil {
		return nil, err
	}
	scanRows, err := s.repo.ScansByDay(ctx)
	if err != nil {
		return nil, err
	}
	vipRows, err := s.repo.VIPSeatsByDay(ctx)
	if err != nil {
		return nil, err
	}

	overview := &Overview{
		Orders: OrderMetrics{
			ByStatus:     toMap(statusRows),
			GrossRevenue: round2(revenue),
		},
		Tickets: TicketMetrics{
			ByProduct: toMap(productRows),
			ByDay:     toMap(dayRows),
		},
		CheckIns: CheckInMetrics{
			TicketsCheckedIn: checkedIn,
			ScansByDay:       toMap(scanRows),
		},
		VIP: VIPMetrics{
			SeatsReservedByDay: toMap(vipRows),
		},
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
	}

	for _, n := range overview.Orders.ByStatus {
		overview.Orders.Total += n
	}
	for _, n := range overview.Tickets.ByProduct {
		overview.Tickets.Sold += n
	}

	paid := overview.Orders.ByStatus["PAID"]
	overview.Orders.AverageOrder = ratio(revenue, paid, 1)
	overview.Orders.ConversionRate = ratio(float64(paid), overview.Orders.Total, 100)
	overview.CheckIns.CheckInRate = ratio(float64(checkedIn), overview.Tickets.Sold, 100)

	return overview, nil
}

// GetDailySales returns the last days of order activity, newest first.
func (s *service) GetDailySales(ctx context.Context, days int) ([]DailySales, error) {
	if days <= 0 {
		days = 30
	}
	if days > maxDailySalesWindow {
		days = maxDailySalesWindow
	}

	stats, err := s.repo.DailySales(ctx, s.now().AddDate(0, 0, -days))
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}
	if stats == nil {
		stats = []DailySales{}
	}
	return stats, nil
}

func toMap(rows []CountRow) map[string]int {
	out := make(map[string]int, len(rows))
	for _, r := range rows {
		out[r.Key] += r.Count
	}
	return out
}

// ratio returns num/den*scale rounded to cents, or 0 for an empty denominator.
func ratio(num float64, den int, scale float64) float64 {
	if den == 0 {
		return 0
	}
	return round2(num / float64(den) * scale)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
