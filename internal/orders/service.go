package orders

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"festtix/internal/notifications"
	"festtix/internal/payments"
	"festtix/internal/shared/config"
	"festtix/internal/shared/constants"
	"festtix/internal/tickets"
	"festtix/internal/vip"
	"festtix/pkg/cache"
	"festtix/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go
//go:generate go run github.com/golang/mock/mockgen -destination=reservations_mock_test.go -package=orders festtix/internal/orders ReservationManager

// Stripe rejects checkout sessions that expire sooner than this.
const minSessionLifetime = 30 * time.Minute

const cleanupBatchSize = 500

// ReservationManager is the part of the VIP service orders drive.
type ReservationManager interface {
	ConfirmForOrder(ctx context.Context, orderID uuid.UUID) (int64, error)
	ExpireForOrders(ctx context.Context, orderIDs []uuid.UUID) (int64, error)
	ListForOrder(ctx context.Context, orderID uuid.UUID) ([]vip.ReservationResponse, error)
}

type Service interface {
	SetCacheService(cacheService cache.Service)

	Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error)

	// MarkPaid is idempotent: a second confirmation for a paid order is a no-op.
	MarkPaid(ctx context.Context, id uuid.UUID, sessionID, paymentIntentID string) error
	MarkExpired(ctx context.Context, id uuid.UUID) error

	List(ctx context.Context, query OrderListQuery) ([]OrderSummaryResponse, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	CleanupUnpaid(ctx context.Context, olderThan time.Duration) (*CleanupResult, error)
	ResendEmail(ctx context.Context, id uuid.UUID) error

	LookupOrder(ctx context.Context, id uuid.UUID) (vip.OrderState, error)
}

type service struct {
	repo         Repository
	gateway      payments.Gateway
	reservations ReservationManager
	publisher    notifications.TicketEmailPublisher
	cacheService cache.Service
	festival     config.FestivalConfig
	currency     string
	now          func() time.Time
}

func NewService(repo Repository, gateway payments.Gateway, reservations ReservationManager, publisher notifications.TicketEmailPublisher, festival config.FestivalConfig, currency string) Service {
	return &service{
		repo:         repo,
		gateway:      gateway,
		reservations: reservations,
		publisher:    publisher,
		festival:     festival,
		currency:     strings.ToLower(currency),
		now:          time.Now,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) Checkout(ctx context.Context, req *CheckoutRequest) (*CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: no items", ErrInvalidCheckout)
	}

	items := make([]OrderItem, 0, len(req.Items))
	total := 0.0
	for i, line := range req.Items {
		if msg := s.quantityProblem(line.Quantity); msg != "" {
			return nil, &SelectionError{Line: i, ProductCode: line.ProductCode, Message: msg}
		}

		product, _ := tickets.ParseProductCode(line.ProductCode)
		quote, res, err := tickets.QuoteSelection(product, line.Days)
		if err != nil {
			msg := res.Message
			if msg == "" {
				msg = err.Error()
			}
			return nil, &SelectionError{Line: i, ProductCode: line.ProductCode, Message: msg}
		}

		lineTotal := roundCents(quote.UnitPrice * float64(line.Quantity))
		total += lineTotal
		items = append(items, OrderItem{
			ID:          uuid.New(),
			ProductCode: quote.Product,
			Category:    quote.Product.Category(),
			Days:        quote.Days.Strings(),
			Quantity:    line.Quantity,
			UnitPrice:   quote.UnitPrice,
			LineTotal:   lineTotal,
		})
	}

	reference, err := generateOrderReference(s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate order reference: %w", err)
	}

	order := &Order{
		ID:          uuid.New(),
		Reference:   reference,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:    strings.TrimSpace(req.FullName),
		Status:      StatusPending,
		TotalAmount: roundCents(total),
		Currency:    s.currency,
		Items:       items,
	}
	if len(req.Metadata) > 0 {
		meta := datatypes.JSONMap{}
		for k, v := range req.Metadata {
			meta[k] = v
		}
		order.Metadata = meta
	}
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	session, err := s.gateway.CreateCheckoutSession(ctx, s.sessionInput(order))
	if err != nil {
		// the order can never be paid without a session
		if _, uerr := s.repo.UpdateStatus(ctx, []uuid.UUID{order.ID}, []Status{StatusPending}, StatusCancelled); uerr != nil {
			logger.GetDefault().WithError(uerr).Error("Failed to cancel order after payment error", "order_id", order.ID.String())
		}
		return nil, fmt.Errorf("%w: %v", ErrPaymentUnavailable, err)
	}

	if err := s.repo.SetCheckoutSession(ctx, order.ID, session.ID); err != nil {
		return nil, fmt.Errorf("failed to store checkout session: %w", err)
	}

	logger.GetDefault().LogOrderCreated(ctx, order.ID.String(), order.Email, order.TotalAmount, len(order.Items))
	s.invalidate(ctx, order.ID)

	resp := &CheckoutResponse{
		OrderID:     order.ID.String(),
		Reference:   order.Reference,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		CheckoutURL: session.URL,
		SessionID:   session.ID,
		Items:       make([]OrderItemResponse, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, toItemResponse(item))
	}
	return resp, nil
}

// quantityProblem returns the buyer-facing message for a bad quantity, or "".
// A zero MaxItemQuantity means no upper limit.
func (s *service) quantityProblem(quantity int) string {
	limit := s.festival.MaxItemQuantity
	switch {
	case limit > 0 && (quantity < 1 || quantity > limit):
		return fmt.Sprintf("Quantity must be between 1 and %d.", limit)
	case quantity < 1:
		return "Quantity must be at least 1."
	}
	return ""
}

func (s *service) sessionInput(order *Order) *payments.CheckoutSessionInput {
	in := &payments.CheckoutSessionInput{
		OrderID:   order.ID,
		Reference: order.Reference,
		Email:     order.Email,
		Currency:  order.Currency,
	}
	if ttl := s.festival.UnpaidOrderTTL; ttl >= minSessionLifetime {
		in.ExpiresAt = s.now().Add(ttl)
	}
	for _, item := range order.Items {
		in.Lines = append(in.Lines, payments.CheckoutLine{
			Name:        item.ProductCode.Label(),
			Description: strings.Join(item.Days, ", "),
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return in
}

func (s *service) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	fetch := func() (interface{}, error) {
		order, err := s.repo.GetWithRelations(ctx, id)
		if err != nil {
			return nil, err
		}
		reservations, err := s.reservations.ListForOrder(ctx, id)
		if err != nil {
			return nil, err
		}
		return toOrderResponse(order, reservations), nil
	}

	if s.cacheService == nil {
		data, err := fetch()
		if err != nil {
			return nil, err
		}
		return data.(*OrderResponse), nil
	}

	var out OrderResponse
	if err := s.cacheService.GetOrSet(ctx, constants.BuildOrderDetailKey(id.String()), constants.TTL_ORDER_DETAIL, fetch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *service) MarkPaid(ctx context.Context, id uuid.UUID, sessionID, paymentIntentID string) error {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order.Status == StatusPaid {
		return nil
	}
	if !order.Status.CanBePaid() {
		return fmt.Errorf("%w: order is %s", ErrOrderNotPayable, order.Status)
	}
	if order.Status == StatusExpired {
		logger.GetDefault().Warn("Payment received for expired order, issuing tickets", "order_id", id.String())
	}

	issued := issueTickets(order)
	applied, err := s.repo.MarkPaid(ctx, id, []Status{StatusPending, StatusExpired}, sessionID, paymentIntentID, s.now().UTC(), issued)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}
	if !applied {
		// a concurrent webhook delivery won
		return nil
	}

	if _, err := s.reservations.ConfirmForOrder(ctx, id); err != nil {
		logger.GetDefault().WithError(err).Error("Failed to confirm VIP reservations", "order_id", id.String())
	}

	order.Tickets = issued
	s.publishTickets(ctx, order, notifications.ReasonOrderPaid)
	s.invalidate(ctx, id)
	logger.GetDefault().LogOrderPaid(ctx, id.String(), paymentIntentID, len(issued))
	return nil
}

func issueTickets(order *Order) []Ticket {
	var issued []Ticket
	for _, item := range order.Items {
		for n := 0; n < item.Quantity; n++ {
			issued = append(issued, Ticket{
				ID:          uuid.New(),
				OrderID:     order.ID,
				OrderItemID: item.ID,
				Code:        uuid.NewString(),
				ProductCode: item.ProductCode,
				Category:    item.Category,
				Days:        append([]string(nil), item.Days...),
				HolderName:  order.FullName,
			})
		}
	}
	return issued
}

func (s *service) MarkExpired(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	moved, err := s.repo.UpdateStatus(ctx, []uuid.UUID{id}, []Status{StatusPending}, StatusExpired)
	if err != nil {
		return fmt.Errorf("failed to expire order: %w", err)
	}
	if len(moved) == 0 {
		return nil
	}

	if _, err := s.reservations.ExpireForOrders(ctx, moved); err != nil {
		return fmt.Errorf("failed to expire reservations: %w", err)
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) List(ctx context.Context, query OrderListQuery) ([]OrderSummaryResponse, int64, error) {
	if query.Status != "" && !Status(strings.ToUpper(query.Status)).IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", ErrInvalidCheckout, query.Status)
	}

	list, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	out := make([]OrderSummaryResponse, 0, len(list))
	for i := range list {
		out = append(out, toSummary(&list[i]))
	}
	return out, total, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !order.Status.CanBeDeleted() {
		return ErrOrderNotDeletable
	}

	release := func(ctx context.Context) error {
		if _, err := s.reservations.ExpireForOrders(ctx, []uuid.UUID{id}); err != nil {
			return fmt.Errorf("failed to release reservations: %w", err)
		}
		return nil
	}

	n, err := s.repo.Delete(ctx, id, release)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		// paid in the meantime
		return ErrOrderNotDeletable
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *service) CleanupUnpaid(ctx context.Context, olderThan time.Duration) (*CleanupResult, error) {
	start := s.now()
	if olderThan <= 0 {
		olderThan = s.festival.UnpaidOrderTTL
	}
	cutoff := start.Add(-olderThan)

	result := &CleanupResult{Cutoff: cutoff.UTC().Format(time.RFC3339)}
	for {
		ids, err := s.repo.ListStalePending(ctx, cutoff, cleanupBatchSize)
		if err != nil {
			return nil, fmt.Errorf("failed to find stale orders: %w", err)
		}
		if len(ids) == 0 {
			break
		}

		// orders paid since the listing are not moved and keep their seats
		moved, err := s.repo.UpdateStatus(ctx, ids, []Status{StatusPending}, StatusExpired)
		if err != nil {
			return nil, fmt.Errorf("failed to expire orders: %w", err)
		}
		result.ExpiredOrders += int64(len(moved))

		if len(moved) > 0 {
			r, err := s.reservations.ExpireForOrders(ctx, moved)
			if err != nil {
				return nil, fmt.Errorf("failed to expire reservations: %w", err)
			}
			result.ExpiredReservations += r
		}

		if len(ids) < cleanupBatchSize {
			break
		}
	}

	if result.ExpiredOrders > 0 && s.cacheService != nil {
		if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ORDERS); err != nil {
			logger.GetDefault().WithError(err).Warn("Failed to invalidate order cache")
		}
		s.invalidate(ctx, uuid.Nil)
	}

	logger.GetDefault().LogCleanupRun(ctx, result.ExpiredOrders, result.ExpiredReservations, s.now().Sub(start))
	return result, nil
}

func (s *service) ResendEmail(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.GetWithRelations(ctx, id)
	if err != nil {
		return err
	}
	if order.Status != StatusPaid {
		return ErrOrderNotPaid
	}
	return s.publish(ctx, order, notifications.ReasonResend)
}

func (s *service) LookupOrder(ctx context.Context, id uuid.UUID) (vip.OrderState, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vip.OrderState{}, err
	}

	state := vip.OrderState{
		Status:        string(order.Status),
		Editable:      order.Status.IsEditable(),
		VIPSeatsByDay: make(map[tickets.DayCode]int),
	}
	for _, item := range order.Items {
		if item.Category != tickets.CategoryVIP {
			continue
		}
		for _, day := range item.DaySet().Days() {
			state.VIPSeatsByDay[day] += item.Quantity
		}
	}
	return state, nil
}

// publishTickets logs publish failures; payment must not fail because mail is down.
func (s *service) publishTickets(ctx context.Context, order *Order, reason notifications.TicketEmailReason) {
	if err := s.publish(ctx, order, reason); err != nil {
		logger.GetDefault().WithError(err).Error("Failed to queue ticket email", "order_id", order.ID.String())
	}
}

func (s *service) publish(ctx context.Context, order *Order, reason notifications.TicketEmailReason) error {
	if s.publisher == nil {
		return nil
	}

	req := notifications.NewTicketEmailRequest(order.ID, reason)
	req.Reference = order.Reference
	req.Email = order.Email
	req.FullName = order.FullName
	req.TotalAmount = order.TotalAmount
	req.Currency = order.Currency
	for _, t := range order.Tickets {
		req.Tickets = append(req.Tickets, notifications.TicketLine{
			Code:         t.Code,
			ProductCode:  t.ProductCode.String(),
			ProductLabel: t.ProductCode.Label(),
			Days:         []string(t.Days),
		})
	}
	return s.publisher.PublishTicketEmail(ctx, req)
}

// invalidate drops the order detail (when id is set) and the analytics overview.
func (s *service) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	if id != uuid.Nil {
		if err := s.cacheService.Delete(ctx, constants.BuildOrderDetailKey(id.String())); err != nil {
			logger.GetDefault().WithError(err).Warn("Failed to invalidate order cache", "order_id", id.String())
		}
	}
	if err := s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ANALYTICS); err != nil {
		logger.GetDefault().WithError(err).Warn("Failed to invalidate analytics cache")
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateOrderReference builds references like FT-20260717-QWERTZ.
func generateOrderReference(now time.Time) (string, error) {
	const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("FT-%s-%s", now.Format("20060102"), string(randomPart)), nil
}
