package eventdays

import (
	"context"
	"errors"
	"fmt"

	"festtix/internal/shared/constants"
	"festtix/internal/tickets"
	"festtix/pkg/cache"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type Service interface {
	SetCacheService(cacheService cache.Service)
	List(ctx context.Context) ([]EventDayResponse, error)
	GetByCode(ctx context.Context, code tickets.DayCode) (*EventDay, error)
	// ResolveDays returns one record per member of days or ErrDayNotFound.
	ResolveDays(ctx context.Context, days tickets.DaySet) ([]EventDay, error)
}

type service struct {
	repo         Repository
	cacheService cache.Service
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) List(ctx context.Context) ([]EventDayResponse, error) {
	fetch := func() (interface{}, error) {
		days, err := s.repo.ListActive(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list event days: %w", err)
		}
		out := make([]EventDayResponse, len(days))
		for i, d := range days {
			out[i] = d.ToResponse()
		}
		return out, nil
	}

	if s.cacheService == nil {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.([]EventDayResponse), nil
	}

	var out []EventDayResponse
	if err := s.cacheService.GetOrSet(ctx, constants.CACHE_KEY_EVENT_DAYS_ACTIVE, constants.TTL_EVENT_DAYS, fetch, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *service) GetByCode(ctx context.Context, code tickets.DayCode) (*EventDay, error) {
	if !code.IsValid() {
		return nil, ErrDayNotFound
	}

	if s.cacheService != nil {
		var cached EventDay
		if err := s.cacheService.Get(ctx, constants.BuildEventDayKey(code.String()), &cached); err == nil {
			return &cached, nil
		}
	}

	day, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrDayNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event day %s: %w", code, err)
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, constants.BuildEventDayKey(code.String()), day, constants.TTL_EVENT_DAYS)
	}
	return day, nil
}

func (s *service) ResolveDays(ctx context.Context, days tickets.DaySet) ([]EventDay, error) {
	codes := days.Days()
	if len(codes) == 0 {
		return nil, nil
	}

	records, err := s.repo.GetByCodes(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve event days: %w", err)
	}

	var found tickets.DaySet
	for _, r := range records {
		if code, ok := r.DayCode(); ok {
			found = found.Add(code)
		}
	}
	if !found.Equal(days) {
		return nil, fmt.Errorf("%w: requested %s, found %s", ErrDayNotFound, days, found)
	}
	return records, nil
}
