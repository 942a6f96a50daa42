package vip

import (
	"context"
	"fmt"

	"festtix/internal/eventdays"
	"festtix/internal/shared/constants"
	"festtix/internal/tickets"
	"festtix/pkg/cache"
	"festtix/pkg/logger"

	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// OrderState is what reservations need to know about an order.
type OrderState struct {
	// Status is the order's status when it was looked up.
	Status   string
	Editable bool
	// VIPSeatsByDay counts VIP tickets on the order that cover each day.
	VIPSeatsByDay map[tickets.DayCode]int
}

type OrderLookup interface {
	LookupOrder(ctx context.Context, orderID uuid.UUID) (OrderState, error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)
	SetOrderLookup(lookup OrderLookup)

	GetAvailability(ctx context.Context, day tickets.DayCode) (*DayAvailabilityResponse, error)
	ReserveTable(ctx context.Context, req *ReserveTableRequest) (*ReservationResponse, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	ListForOrder(ctx context.Context, orderID uuid.UUID) ([]ReservationResponse, error)

	// ConfirmForOrder moves the order's pending reservations to CONFIRMED.
	ConfirmForOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	// ExpireForOrders releases pending reservations of abandoned orders.
	ExpireForOrders(ctx context.Context, orderIDs []uuid.UUID) (int64, error)
}

type service struct {
	repo         Repository
	days         eventdays.Service
	orders       OrderLookup
	cacheService cache.Service
}

func NewService(repo Repository, days eventdays.Service) Service {
	return &service{repo: repo, days: days}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) SetOrderLookup(lookup OrderLookup) {
	s.orders = lookup
}

func (s *service) GetAvailability(ctx context.Context, code tickets.DayCode) (*DayAvailabilityResponse, error) {
	day, err := s.days.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	fetch := func() (interface{}, error) {
		return s.computeDay(ctx, day)
	}

	if s.cacheService == nil {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.(*DayAvailabilityResponse), nil
	}

	var out DayAvailabilityResponse
	key := constants.BuildVIPAvailabilityKey(code.String())
	if err := s.cacheService.GetOrSet(ctx, key, constants.TTL_VIP_AVAILABILITY, fetch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) computeDay(ctx context.Context, day *eventdays.EventDay) (*DayAvailabilityResponse, error) {
	zones, err := s.repo.ListActiveZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vip zones: %w", err)
	}
	tables, err := s.repo.ListActiveTables(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vip tables: %w", err)
	}
	overrides, err := s.repo.ListOverridesForDay(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load table overrides: %w", err)
	}
	reservations, err := s.repo.ListHoldingReservationsForDay(ctx, day.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	code, _ := day.DayCode()
	return &DayAvailabilityResponse{
		Day:  code,
		Date: day.Date.Format("2006-01-02"),
		Zones: ComputeAvailability(Snapshot{
			DayID:        day.ID,
			Zones:        zones,
			Tables:       tables,
			Overrides:    overrides,
			Reservations: reservations,
		}),
	}, nil
}

func (s *service) ReserveTable(ctx context.Context, req *ReserveTableRequest) (*ReservationResponse, error) {
	if s.orders == nil {
		return nil, ErrOrderLookupMissing
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad order id", ErrInvalidSelection)
	}
	tableID, err := uuid.Parse(req.TableID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad table id", ErrInvalidSelection)
	}
	if req.Seats <= 0 {
		return nil, fmt.Errorf("%w: seats must be positive", ErrInvalidSelection)
	}

	var requested tickets.DaySet
	for _, raw := range req.Days {
		code, ok := tickets.ParseDayCode(raw)
		if !ok {
			return nil, fmt.Errorf("%w: unknown day %q", ErrDayNotFound, raw)
		}
		requested = requested.Add(code)
	}
	if requested.IsEmpty() {
		return nil, fmt.Errorf("%w: no days requested", ErrInvalidSelection)
	}

	days, err := s.days.ResolveDays(ctx, requested)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.LookupOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Editable {
		return nil, ErrOrderNotEditable
	}

	reservation := &Reservation{
		ID:            uuid.New(),
		OrderID:       orderID,
		TableID:       tableID,
		SeatsReserved: req.Seats,
		Status:        ReservationPending,
	}

	err = s.repo.WithReservationLocks(ctx, orderID, tableID, func(tx Repository, orderStatus string, table *Table) error {
		// paid or swept since the lookup
		if orderStatus != order.Status {
			return ErrOrderNotEditable
		}

		existing, err := tx.ListReservationsForOrder(ctx, orderID)
		if err != nil {
			return fmt.Errorf("failed to load order reservations: %w", err)
		}
		if err := checkOrderSeats(days, existing, order, req.Seats); err != nil {
			return err
		}

		for _, d := range days {
			overrides, err := tx.ListOverridesForDay(ctx, d.ID)
			if err != nil {
				return err
			}
			holding, err := tx.ListHoldingReservationsForDay(ctx, d.ID, &table.ID)
			if err != nil {
				return err
			}

			avail := ComputeTable(*table, lookupOverride(OverridesForDay(d.ID, overrides), table.ID), ReservedSeats(d.ID, holding)[table.ID])
			if !avail.IsEnabled || avail.EmptySeats < req.Seats {
				return fmt.Errorf("%w: %s has %d empty seats", ErrTableUnavailable, d.Code, avail.EmptySeats)
			}
			reservation.Days = append(reservation.Days, ReservationDay{ReservationID: reservation.ID, EventDayID: d.ID})
		}
		return tx.CreateReservation(ctx, reservation)
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx)
	logger.GetDefault().LogReservationCreated(ctx, reservation.ID.String(), orderID.String(), tableID.String(), req.Seats, requested.Strings())

	resp := toReservationResponse(reservation, requested)
	return &resp, nil
}

// checkOrderSeats keeps the order's held seats per day within its VIP tickets.
func checkOrderSeats(days []eventdays.EventDay, existing []Reservation, order OrderState, seats int) error {
	for _, d := range days {
		code, _ := d.DayCode()
		held := 0
		for _, r := range existing {
			if r.Status.HoldsSeats() && r.CoversDay(d.ID) {
				held += r.SeatsReserved
			}
		}
		if held+seats > order.VIPSeatsByDay[code] {
			return fmt.Errorf("%w: %s allows %d, already holding %d", ErrSeatsExceedTickets, code, order.VIPSeatsByDay[code], held)
		}
	}
	return nil
}

func (s *service) CancelReservation(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.repo.GetReservation(ctx, id)
	if err != nil {
		return err
	}
	if reservation.Status != ReservationPending {
		return ErrReservationLocked
	}

	n, err := s.repo.UpdateReservationStatus(ctx, id, []ReservationStatus{ReservationPending}, ReservationCancelled)
	if err != nil {
		return fmt.Errorf("failed to cancel reservation: %w", err)
	}
	if n == 0 {
		// lost a race with payment or cleanup
		return ErrReservationLocked
	}

	s.invalidateAvailability(ctx)
	return nil
}

func (s *service) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]ReservationResponse, error) {
	reservations, err := s.repo.ListReservationsForOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	if len(reservations) == 0 {
		return []ReservationResponse{}, nil
	}

	days, err := s.days.List(ctx)
	if err != nil {
		return nil, err
	}
	codeByID := make(map[uuid.UUID]tickets.DayCode, len(days))
	for _, d := range days {
		if id, err := uuid.Parse(d.ID); err == nil {
			codeByID[id] = d.Code
		}
	}

	out := make([]ReservationResponse, 0, len(reservations))
	for i := range reservations {
		var set tickets.DaySet
		for _, link := range reservations[i].Days {
			if code, ok := codeByID[link.EventDayID]; ok {
				set = set.Add(code)
			}
		}
		out = append(out, toReservationResponse(&reservations[i], set))
	}
	return out, nil
}

func (s *service) ConfirmForOrder(ctx context.Context, orderID uuid.UUID) (int64, error) {
	n, err := s.repo.UpdateStatusForOrders(ctx, []uuid.UUID{orderID}, []ReservationStatus{ReservationPending}, ReservationConfirmed)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm reservations: %w", err)
	}
	return n, nil
}

func (s *service) ExpireForOrders(ctx context.Context, orderIDs []uuid.UUID) (int64, error) {
	n, err := s.repo.UpdateStatusForOrders(ctx, orderIDs, []ReservationStatus{ReservationPending}, ReservationExpired)
	if err != nil {
		return 0, fmt.Errorf("failed to expire reservations: %w", err)
	}
	if n > 0 {
		s.invalidateAvailability(ctx)
	}
	return n, nil
}

func (s *service) invalidateAvailability(ctx context.Context) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_VIP_AVAILABILITY); err != nil {
		logger.GetDefault().Warn("failed to invalidate vip availability cache", "error", err)
	}
}

func toReservationResponse(r *Reservation, days tickets.DaySet) ReservationResponse {
	return ReservationResponse{
		ID:        r.ID.String(),
		OrderID:   r.OrderID.String(),
		TableID:   r.TableID.String(),
		Seats:     r.SeatsReserved,
		Status:    r.Status,
		Days:      days.Days(),
		CreatedAt: r.CreatedAt,
	}
}
