package orders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"festtix/internal/notifications"
	mock_notifications "festtix/internal/notifications/mocks"
	"festtix/internal/payments"
	mock_payments "festtix/internal/payments/mocks"
	"festtix/internal/shared/config"
	"festtix/internal/tickets"
	"festtix/internal/vip"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	mu     sync.Mutex
	orders map[uuid.UUID]*Order
}

func newMemRepo() *memRepo {
	return &memRepo{orders: make(map[uuid.UUID]*Order)}
}

func (r *memRepo) Create(_ context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *order
	cp.CreatedAt = time.Now()
	r.orders[order.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memRepo) GetWithRelations(ctx context.Context, id uuid.UUID) (*Order, error) {
	return r.GetByID(ctx, id)
}

func (r *memRepo) SetCheckoutSession(_ context.Context, id uuid.UUID, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[id].StripeSessionID = &sessionID
	return nil
}

func (r *memRepo) MarkPaid(_ context.Context, id uuid.UUID, from []Status, _, paymentIntentID string, paidAt time.Time, issued []Ticket) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || !statusIn(o.Status, from) {
		return false, nil
	}
	o.Status = StatusPaid
	o.PaidAt = &paidAt
	o.StripePaymentIntentID = paymentIntentID
	o.Tickets = append(o.Tickets, issued...)
	return true, nil
}

func (r *memRepo) UpdateStatus(_ context.Context, ids []uuid.UUID, from []Status, to Status) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var moved []uuid.UUID
	for _, id := range ids {
		if o, ok := r.orders[id]; ok && statusIn(o.Status, from) {
			o.Status = to
			moved = append(moved, id)
		}
	}
	return moved, nil
}

func (r *memRepo) List(_ context.Context, query OrderListQuery) ([]Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Order
	for _, o := range r.orders {
		if query.Status != "" && string(o.Status) != query.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *memRepo) Delete(ctx context.Context, id uuid.UUID, release func(ctx context.Context) error) (int64, error) {
	r.mu.Lock()
	o, ok := r.orders[id]
	if !ok || o.Status == StatusPaid {
		r.mu.Unlock()
		return 0, nil
	}
	delete(r.orders, id)
	r.mu.Unlock()

	if release != nil {
		if err := release(ctx); err != nil {
			r.mu.Lock()
			r.orders[id] = o
			r.mu.Unlock()
			return 0, err
		}
	}
	return 1, nil
}

func (r *memRepo) setStatus(id uuid.UUID, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[id].Status = status
}

// racingRepo runs a hook after a read, standing in for a webhook that lands
// between the service's read and its write.
type racingRepo struct {
	*memRepo
	afterGet  func(id uuid.UUID)
	afterList func(ids []uuid.UUID)
}

func (r *racingRepo) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := r.memRepo.GetByID(ctx, id)
	if err == nil && r.afterGet != nil {
		r.afterGet(id)
	}
	return o, err
}

func (r *racingRepo) ListStalePending(ctx context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	ids, err := r.memRepo.ListStalePending(ctx, before, limit)
	if err == nil && r.afterList != nil {
		r.afterList(ids)
	}
	return ids, err
}

func (r *memRepo) ListStalePending(_ context.Context, before time.Time, limit int) ([]uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for id, o := range r.orders {
		if o.Status == StatusPending && o.CreatedAt.Before(before) && len(ids) < limit {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func statusIn(s Status, set []Status) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}

type fixture struct {
	repo         *memRepo
	gateway      *mock_payments.MockGateway
	reservations *MockReservationManager
	publisher    *mock_notifications.MockTicketEmailPublisher
	svc          *service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		repo:         newMemRepo(),
		gateway:      mock_payments.NewMockGateway(ctrl),
		reservations: NewMockReservationManager(ctrl),
		publisher:    mock_notifications.NewMockTicketEmailPublisher(ctrl),
	}
	festival := config.FestivalConfig{Name: "Test Fest", UnpaidOrderTTL: 30 * time.Minute, MaxItemQuantity: 10}
	f.svc = NewService(f.repo, f.gateway, f.reservations, f.publisher, festival, "EUR").(*service)
	f.svc.now = func() time.Time { return time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func (f *fixture) seed(status Status, items ...OrderItem) *Order {
	o := &Order{ID: uuid.New(), Reference: "FT-TEST", Email: "a@b.io", FullName: "Ada", Status: status, Currency: "eur", Items: items}
	for i := range o.Items {
		o.Items[i].ID = uuid.New()
		o.Items[i].OrderID = o.ID
	}
	_ = f.repo.Create(context.Background(), o)
	return o
}

func validRequest() *CheckoutRequest {
	return &CheckoutRequest{
		Email:    " Ada@Example.COM ",
		FullName: "Ada Lovelace",
		Items: []CheckoutItemRequest{
			{ProductCode: "general_2_day", Days: []string{"fri", "sun"}, Quantity: 2},
			{ProductCode: "VIP_1_DAY", Days: []string{"sat"}, Quantity: 1},
		},
		Metadata: map[string]string{"utm_source": "newsletter"},
	}
}

func TestService_Checkout(t *testing.T) {
	f := newFixture(t)

	f.gateway.EXPECT().
		CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *payments.CheckoutSessionInput) (*payments.CheckoutSession, error) {
			require.Equal(t, "ada@example.com", in.Email)
			require.Equal(t, "eur", in.Currency)
			require.Len(t, in.Lines, 2)
			require.Equal(t, 60.0, in.Lines[0].UnitPrice)
			require.Equal(t, "FRI, SUN", in.Lines[0].Description)
			require.False(t, in.ExpiresAt.IsZero())
			return &payments.CheckoutSession{ID: "cs_1", URL: "https://pay.example/cs_1"}, nil
		})

	resp, err := f.svc.Checkout(context.Background(), validRequest())
	require.NoError(t, err)
	require.Equal(t, StatusPending, resp.Status)
	require.Equal(t, 470.0, resp.TotalAmount)
	require.Equal(t, "https://pay.example/cs_1", resp.CheckoutURL)
	require.Regexp(t, `^FT-20260701-[A-Z]{6}$`, resp.Reference)

	stored, err := f.repo.GetByID(context.Background(), uuid.MustParse(resp.OrderID))
	require.NoError(t, err)
	require.Equal(t, "cs_1", *stored.StripeSessionID)
	require.Equal(t, "newsletter", stored.Metadata["utm_source"])
	require.Equal(t, tickets.CategoryVIP, stored.Items[1].Category)
	require.Equal(t, []string{"SAT"}, []string(stored.Items[1].Days))
}

func TestService_Checkout_RejectsSelection(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Items[1] = CheckoutItemRequest{ProductCode: "GENERAL_2_DAY", Days: []string{"fri", "sat"}, Quantity: 1}

	_, err := f.svc.Checkout(context.Background(), req)
	var selErr *SelectionError
	require.ErrorAs(t, err, &selErr)
	require.Equal(t, 1, selErr.Line)
	require.ErrorIs(t, err, ErrInvalidCheckout)
	require.Empty(t, f.repo.orders)

	req = validRequest()
	req.Items[0].Quantity = 11
	_, err = f.svc.Checkout(context.Background(), req)
	require.ErrorAs(t, err, &selErr)
	require.Equal(t, 0, selErr.Line)

	req = validRequest()
	req.Items[0].ProductCode = "BACKSTAGE"
	_, err = f.svc.Checkout(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidCheckout)
}

func TestService_QuantityProblem(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, "Quantity must be between 1 and 10.", f.svc.quantityProblem(0))
	require.Equal(t, "Quantity must be between 1 and 10.", f.svc.quantityProblem(11))
	require.Empty(t, f.svc.quantityProblem(10))

	f.svc.festival.MaxItemQuantity = 0
	require.Equal(t, "Quantity must be at least 1.", f.svc.quantityProblem(0))
	require.Equal(t, "Quantity must be at least 1.", f.svc.quantityProblem(-3))
	require.Empty(t, f.svc.quantityProblem(500))
}

func TestService_Checkout_GatewayFailureCancelsOrder(t *testing.T) {
	f := newFixture(t)
	f.gateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).Return(nil, errors.New("stripe down"))

	_, err := f.svc.Checkout(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrPaymentUnavailable)

	require.Len(t, f.repo.orders, 1)
	for _, o := range f.repo.orders {
		require.Equal(t, StatusCancelled, o.Status)
	}
}

func TestService_MarkPaid(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending,
		OrderItem{ProductCode: tickets.General2Day, Category: tickets.CategoryGeneral, Days: []string{"FRI", "SUN"}, Quantity: 2, UnitPrice: 60},
		OrderItem{ProductCode: tickets.VIP1Day, Category: tickets.CategoryVIP, Days: []string{"SAT"}, Quantity: 1, UnitPrice: 350},
	)

	f.reservations.EXPECT().ConfirmForOrder(gomock.Any(), order.ID).Return(int64(1), nil)
	f.publisher.EXPECT().
		PublishTicketEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *notifications.TicketEmailRequest) error {
			require.Equal(t, notifications.ReasonOrderPaid, req.Reason)
			require.Equal(t, order.ID, req.OrderID)
			require.Len(t, req.Tickets, 3)
			return nil
		})

	require.NoError(t, f.svc.MarkPaid(context.Background(), order.ID, "cs_1", "pi_1"))

	stored, _ := f.repo.GetByID(context.Background(), order.ID)
	require.Equal(t, StatusPaid, stored.Status)
	require.Len(t, stored.Tickets, 3)
	require.NotNil(t, stored.PaidAt)

	codes := map[string]bool{}
	for _, tk := range stored.Tickets {
		codes[tk.Code] = true
	}
	require.Len(t, codes, 3)

	// redelivery is a no-op
	require.NoError(t, f.svc.MarkPaid(context.Background(), order.ID, "cs_1", "pi_1"))
	stored, _ = f.repo.GetByID(context.Background(), order.ID)
	require.Len(t, stored.Tickets, 3)
}

func TestService_MarkPaid_States(t *testing.T) {
	f := newFixture(t)

	cancelled := f.seed(StatusCancelled)
	err := f.svc.MarkPaid(context.Background(), cancelled.ID, "cs", "pi")
	require.ErrorIs(t, err, ErrOrderNotPayable)

	err = f.svc.MarkPaid(context.Background(), uuid.New(), "cs", "pi")
	require.ErrorIs(t, err, ErrOrderNotFound)

	// late payment after expiry still issues tickets
	expired := f.seed(StatusExpired, OrderItem{ProductCode: tickets.General1Day, Category: tickets.CategoryGeneral, Days: []string{"FRI"}, Quantity: 1, UnitPrice: 50})
	f.reservations.EXPECT().ConfirmForOrder(gomock.Any(), expired.ID).Return(int64(0), nil)
	f.publisher.EXPECT().PublishTicketEmail(gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	require.NoError(t, f.svc.MarkPaid(context.Background(), expired.ID, "cs", "pi"))
	stored, _ := f.repo.GetByID(context.Background(), expired.ID)
	require.Equal(t, StatusPaid, stored.Status)
}

func TestService_MarkExpired(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending)

	f.reservations.EXPECT().ExpireForOrders(gomock.Any(), []uuid.UUID{order.ID}).Return(int64(2), nil)
	require.NoError(t, f.svc.MarkExpired(context.Background(), order.ID))

	stored, _ := f.repo.GetByID(context.Background(), order.ID)
	require.Equal(t, StatusExpired, stored.Status)

	// already expired: nothing more to release
	require.NoError(t, f.svc.MarkExpired(context.Background(), order.ID))

	paid := f.seed(StatusPaid)
	require.NoError(t, f.svc.MarkExpired(context.Background(), paid.ID))
	stored, _ = f.repo.GetByID(context.Background(), paid.ID)
	require.Equal(t, StatusPaid, stored.Status)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)

	paid := f.seed(StatusPaid)
	require.ErrorIs(t, f.svc.Delete(context.Background(), paid.ID), ErrOrderNotDeletable)

	pending := f.seed(StatusPending)
	f.reservations.EXPECT().ExpireForOrders(gomock.Any(), []uuid.UUID{pending.ID}).Return(int64(1), nil)
	require.NoError(t, f.svc.Delete(context.Background(), pending.ID))

	_, err := f.repo.GetByID(context.Background(), pending.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)

	require.ErrorIs(t, f.svc.Delete(context.Background(), uuid.New()), ErrOrderNotFound)
}

func TestService_Delete_PaidMeanwhileKeepsReservations(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending)

	f.svc.repo = &racingRepo{memRepo: f.repo, afterGet: func(id uuid.UUID) { f.repo.setStatus(id, StatusPaid) }}

	// no ExpireForOrders expectation: releasing here would fail the test
	require.ErrorIs(t, f.svc.Delete(context.Background(), order.ID), ErrOrderNotDeletable)
	require.Equal(t, StatusPaid, f.repo.orders[order.ID].Status)
}

func TestService_Delete_ReleaseFailureKeepsOrder(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending)

	f.reservations.EXPECT().ExpireForOrders(gomock.Any(), []uuid.UUID{order.ID}).Return(int64(0), errors.New("db down"))
	require.Error(t, f.svc.Delete(context.Background(), order.ID))

	stored, err := f.repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPending, stored.Status)
}

func TestService_CleanupUnpaid(t *testing.T) {
	f := newFixture(t)

	stale := f.seed(StatusPending)
	f.repo.orders[stale.ID].CreatedAt = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	fresh := f.seed(StatusPending)
	f.repo.orders[fresh.ID].CreatedAt = time.Date(2026, 7, 1, 11, 50, 0, 0, time.UTC)
	paid := f.seed(StatusPaid)
	f.repo.orders[paid.ID].CreatedAt = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	f.reservations.EXPECT().ExpireForOrders(gomock.Any(), []uuid.UUID{stale.ID}).Return(int64(1), nil)

	result, err := f.svc.CleanupUnpaid(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.ExpiredOrders)
	require.Equal(t, int64(1), result.ExpiredReservations)
	require.Equal(t, "2026-07-01T11:30:00Z", result.Cutoff)

	require.Equal(t, StatusExpired, f.repo.orders[stale.ID].Status)
	require.Equal(t, StatusPending, f.repo.orders[fresh.ID].Status)
	require.Equal(t, StatusPaid, f.repo.orders[paid.ID].Status)
}

func TestService_CleanupUnpaid_SkipsOrdersPaidMeanwhile(t *testing.T) {
	f := newFixture(t)

	abandoned := f.seed(StatusPending)
	f.repo.orders[abandoned.ID].CreatedAt = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)
	paying := f.seed(StatusPending)
	f.repo.orders[paying.ID].CreatedAt = time.Date(2026, 7, 1, 10, 5, 0, 0, time.UTC)

	f.svc.repo = &racingRepo{memRepo: f.repo, afterList: func(ids []uuid.UUID) {
		if len(ids) > 0 {
			f.repo.setStatus(paying.ID, StatusPaid)
		}
	}}

	f.reservations.EXPECT().ExpireForOrders(gomock.Any(), []uuid.UUID{abandoned.ID}).Return(int64(1), nil)

	result, err := f.svc.CleanupUnpaid(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), result.ExpiredOrders)
	require.Equal(t, StatusExpired, f.repo.orders[abandoned.ID].Status)
	require.Equal(t, StatusPaid, f.repo.orders[paying.ID].Status)
}

func TestService_CleanupUnpaid_NothingMovedReleasesNothing(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending)
	f.repo.orders[order.ID].CreatedAt = time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC)

	f.svc.repo = &racingRepo{memRepo: f.repo, afterList: func(ids []uuid.UUID) {
		for _, id := range ids {
			f.repo.setStatus(id, StatusPaid)
		}
	}}

	result, err := f.svc.CleanupUnpaid(context.Background(), 0)
	require.NoError(t, err)
	require.Zero(t, result.ExpiredOrders)
	require.Zero(t, result.ExpiredReservations)
}

func TestService_ResendEmail(t *testing.T) {
	f := newFixture(t)

	pending := f.seed(StatusPending)
	require.ErrorIs(t, f.svc.ResendEmail(context.Background(), pending.ID), ErrOrderNotPaid)

	paid := f.seed(StatusPaid)
	f.repo.orders[paid.ID].Tickets = []Ticket{{Code: "T-1", ProductCode: tickets.General1Day, Days: []string{"FRI"}}}
	f.publisher.EXPECT().
		PublishTicketEmail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *notifications.TicketEmailRequest) error {
			require.Equal(t, notifications.ReasonResend, req.Reason)
			require.Equal(t, []string{"T-1"}, req.TicketCodes())
			return nil
		})
	require.NoError(t, f.svc.ResendEmail(context.Background(), paid.ID))
}

func TestService_GetOrder(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending, OrderItem{ProductCode: tickets.VIP4Day, Category: tickets.CategoryVIP, Days: []string{"FRI", "SAT", "SUN", "MON"}, Quantity: 2, UnitPrice: 750})

	f.reservations.EXPECT().ListForOrder(gomock.Any(), order.ID).Return(nil, nil)
	resp, err := f.svc.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID.String(), resp.ID)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Reservations)
	require.Empty(t, resp.Tickets)

	_, err = f.svc.GetOrder(context.Background(), uuid.New())
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_LookupOrder(t *testing.T) {
	f := newFixture(t)
	order := f.seed(StatusPending,
		OrderItem{ProductCode: tickets.VIP4Day, Category: tickets.CategoryVIP, Days: []string{"FRI", "SAT", "SUN", "MON"}, Quantity: 2},
		OrderItem{ProductCode: tickets.VIP1Day, Category: tickets.CategoryVIP, Days: []string{"SAT"}, Quantity: 1},
		OrderItem{ProductCode: tickets.General1Day, Category: tickets.CategoryGeneral, Days: []string{"SUN"}, Quantity: 5},
	)

	state, err := f.svc.LookupOrder(context.Background(), order.ID)
	require.NoError(t, err)
	require.True(t, state.Editable)
	require.Equal(t, "PENDING", state.Status)
	require.Equal(t, 2, state.VIPSeatsByDay[tickets.Friday])
	require.Equal(t, 3, state.VIPSeatsByDay[tickets.Saturday])
	require.Equal(t, 2, state.VIPSeatsByDay[tickets.Sunday])

	paid := f.seed(StatusPaid)
	state, err = f.svc.LookupOrder(context.Background(), paid.ID)
	require.NoError(t, err)
	require.False(t, state.Editable)

	_, err = f.svc.LookupOrder(context.Background(), uuid.New())
	require.ErrorIs(t, err, vip.ErrOrderNotFound)
}

func TestService_List_RejectsUnknownStatus(t *testing.T) {
	f := newFixture(t)
	f.seed(StatusPending)
	f.seed(StatusPaid)

	list, total, err := f.svc.List(context.Background(), OrderListQuery{Status: "PAID"})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Equal(t, StatusPaid, list[0].Status)

	_, _, err = f.svc.List(context.Background(), OrderListQuery{Status: "refunded"})
	require.ErrorIs(t, err, ErrInvalidCheckout)
}

func TestGenerateOrderReference(t *testing.T) {
	ref, err := generateOrderReference(time.Date(2026, 7, 17, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Regexp(t, `^FT-20260717-[A-HJ-NP-Z]{6}$`, ref)
}
