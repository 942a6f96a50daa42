package checkin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"festtix/internal/shared/constants"
	"festtix/internal/tickets"
	"festtix/pkg/cache"
	"festtix/pkg/logger"

	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Service interface {
	SetCacheService(cacheService cache.Service)
	// Scan validates a ticket for day and records the admission.
	Scan(ctx context.Context, code string, day tickets.DayCode, scannerID string) (*ScanResult, error)
	// Inspect evaluates a ticket without admitting it.
	Inspect(ctx context.Context, code string, day tickets.DayCode) (*ScanResult, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	now          func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) Scan(ctx context.Context, code string, day tickets.DayCode, scannerID string) (*ScanResult, error) {
	result, record, err := s.evaluate(ctx, code, day)
	if err != nil {
		return nil, err
	}

	if result.Outcome.Admits() {
		scan := &TicketScan{
			ID:        uuid.New(),
			TicketID:  record.Ticket.ID,
			OrderID:   record.Ticket.OrderID,
			Day:       day.String(),
			ScannedAt: s.now(),
		}
		if id, err := uuid.Parse(scannerID); err == nil {
			scan.ScannedBy = &id
		}

		inserted, err := s.repo.RecordScan(ctx, scan)
		if err != nil {
			return nil, fmt.Errorf("failed to record scan: %w", err)
		}
		if inserted {
			result.ScannedAt = &scan.ScannedAt
			s.invalidateAnalytics(ctx)
		} else {
			// lost the race against another gate
			if err := s.markAlreadyScanned(ctx, result, record, day); err != nil {
				return nil, err
			}
		}
	}

	logger.GetDefault().LogTicketScanned(ctx, result.TicketCode, day.String(), string(result.Outcome), scannerID)
	return result, nil
}

func (s *service) Inspect(ctx context.Context, code string, day tickets.DayCode) (*ScanResult, error) {
	result, _, err := s.evaluate(ctx, code, day)
	return result, err
}

func (s *service) evaluate(ctx context.Context, code string, day tickets.DayCode) (*ScanResult, *TicketRecord, error) {
	code = strings.TrimSpace(code)
	result := &ScanResult{Day: day, TicketCode: code}

	record, err := s.repo.FindTicket(ctx, code)
	if err != nil && !errors.Is(err, ErrTicketNotFound) {
		return nil, nil, fmt.Errorf("failed to load ticket: %w", err)
	}

	facts := scanFacts{Found: record != nil, Day: day}
	if record != nil {
		facts.OrderStatus = record.OrderStatus
		facts.TicketDays = record.Ticket.DaySet()

		result.ProductCode = record.Ticket.ProductCode
		result.ProductLabel = record.Ticket.ProductCode.Label()
		result.HolderName = record.Ticket.HolderName
		result.ValidDays = []string(record.Ticket.Days)
		result.OrderReference = record.OrderReference

		prior, err := s.repo.GetScan(ctx, record.Ticket.ID, day.String())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load scans: %w", err)
		}
		if prior != nil {
			facts.AlreadyScanned = true
			result.ScannedAt = &prior.ScannedAt
		}
	}

	result.Outcome = evaluateScan(facts)
	result.Admitted = result.Outcome.Admits()
	result.Message = result.Outcome.Message()
	return result, record, nil
}

func (s *service) markAlreadyScanned(ctx context.Context, result *ScanResult, record *TicketRecord, day tickets.DayCode) error {
	result.Outcome = OutcomeAlreadyCheckedIn
	result.Admitted = false
	result.Message = result.Outcome.Message()

	prior, err := s.repo.GetScan(ctx, record.Ticket.ID, day.String())
	if err != nil {
		return fmt.Errorf("failed to load scans: %w", err)
	}
	if prior != nil {
		result.ScannedAt = &prior.ScannedAt
	}
	return nil
}

func (s *service) invalidateAnalytics(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ANALYTICS); err != nil {
		logger.GetDefault().WithError(err).Warn("Failed to invalidate analytics cache")
	}
}
