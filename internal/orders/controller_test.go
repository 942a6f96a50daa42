package orders_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"festtix/internal/orders"
	mock_orders "festtix/internal/orders/mocks"
	"festtix/internal/shared/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeAuth stands in for JWTAuth and trusts the X-Role header.
func fakeAuth(c *gin.Context) {
	role := c.GetHeader("X-Role")
	if role == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Set(middleware.ContextUserRole, role)
	c.Next()
}

func newRouter(svc orders.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	orders.SetupOrderRoutes(e.Group("/api/v1"), orders.NewController(svc), fakeAuth)
	return e
}

func TestController_Checkout(t *testing.T) {
	type mockBehavior func(s *mock_orders.MockService)

	validBody := `{"email":"ada@example.com","full_name":"Ada Lovelace","items":[{"product_code":"GENERAL_2_DAY","days":["fri","sun"],"quantity":2}]}`

	tests := []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: validBody,
			mockBehavior: func(s *mock_orders.MockService) {
				s.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *orders.CheckoutRequest) (*orders.CheckoutResponse, error) {
						require.Equal(t, 2, req.Items[0].Quantity)
						return &orders.CheckoutResponse{OrderID: "o-1", CheckoutURL: "https://pay.example/cs_1"}, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"checkout_url":"https://pay.example/cs_1"`,
		},
		{
			name:         "malformed json",
			body:         `{"email":`,
			mockBehavior: func(s *mock_orders.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `Invalid request body`,
		},
		{
			name:         "missing items",
			body:         `{"email":"ada@example.com","full_name":"Ada","items":[]}`,
			mockBehavior: func(s *mock_orders.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `Validation failed`,
		},
		{
			name:         "bad email",
			body:         `{"email":"nope","full_name":"Ada","items":[{"product_code":"VIP_4_DAY","quantity":1}]}`,
			mockBehavior: func(s *mock_orders.MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `Validation failed`,
		},
		{
			name: "rejected selection",
			body: validBody,
			mockBehavior: func(s *mock_orders.MockService) {
				s.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(nil, &orders.SelectionError{Line: 0, ProductCode: "GENERAL_2_DAY", Message: "Two-day passes cannot include Saturday."})
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `Two-day passes cannot include Saturday.`,
		},
		{
			name: "payment provider down",
			body: validBody,
			mockBehavior: func(s *mock_orders.MockService) {
				s.EXPECT().Checkout(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: timeout", orders.ErrPaymentUnavailable))
			},
			expectedCode: http.StatusBadGateway,
			expectedBody: `Payment provider unavailable`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(s *mock_orders.MockService) {
				s.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `Failed to create order`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			svc := mock_orders.NewMockService(c)
			tt.mockBehavior(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			newRouter(svc).ServeHTTP(w, req)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestController_GetOrder(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	id := uuid.New()
	svc := mock_orders.NewMockService(c)
	svc.EXPECT().GetOrder(gomock.Any(), id).Return(&orders.OrderResponse{ID: id.String(), Status: orders.StatusPaid}, nil)
	svc.EXPECT().GetOrder(gomock.Any(), gomock.Not(id)).Return(nil, orders.ErrOrderNotFound)

	r := newRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+id.String(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"PAID"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+uuid.NewString(), nil))
	require.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/orders/not-a-uuid", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_AdminRoutesRequireAdmin(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	r := newRouter(mock_orders.NewMockService(c))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil)
	req.Header.Set("X-Role", "SCANNER")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestController_ListOrders(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	svc := mock_orders.NewMockService(c)
	svc.EXPECT().
		List(gomock.Any(), orders.OrderListQuery{Status: "PAID", Page: 2, Limit: 100}).
		Return([]orders.OrderSummaryResponse{{ID: "o-1", Status: orders.StatusPaid, CreatedAt: time.Now()}}, int64(101), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders?status=PAID&page=2&limit=500", nil)
	req.Header.Set("X-Role", "ADMIN")
	newRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"total_count":101`)
	require.Contains(t, w.Body.String(), `"id":"o-1"`)
}

func TestController_DeleteOrder(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	paid, pending := uuid.New(), uuid.New()
	svc := mock_orders.NewMockService(c)
	svc.EXPECT().Delete(gomock.Any(), paid).Return(orders.ErrOrderNotDeletable)
	svc.EXPECT().Delete(gomock.Any(), pending).Return(nil)

	r := newRouter(svc)
	for id, code := range map[uuid.UUID]int{paid: http.StatusConflict, pending: http.StatusOK} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/orders/"+id.String(), nil)
		req.Header.Set("X-Role", "ADMIN")
		r.ServeHTTP(w, req)
		require.Equal(t, code, w.Code)
	}
}

func TestController_CleanupUnpaid(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	svc := mock_orders.NewMockService(c)
	svc.EXPECT().CleanupUnpaid(gomock.Any(), 45*time.Minute).Return(&orders.CleanupResult{ExpiredOrders: 3}, nil)
	svc.EXPECT().CleanupUnpaid(gomock.Any(), time.Duration(0)).Return(&orders.CleanupResult{}, nil)

	r := newRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders/cleanup", strings.NewReader(`{"older_than_minutes":45}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "ADMIN")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"expired_orders":3`)

	// empty body falls back to the configured TTL
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders/cleanup", nil)
	req.Header.Set("X-Role", "ADMIN")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders/cleanup", strings.NewReader(`{"older_than_minutes":-5}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Role", "ADMIN")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestController_ResendEmail(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	paid, pending := uuid.New(), uuid.New()
	svc := mock_orders.NewMockService(c)
	svc.EXPECT().ResendEmail(gomock.Any(), paid).Return(nil)
	svc.EXPECT().ResendEmail(gomock.Any(), pending).Return(orders.ErrOrderNotPaid)

	r := newRouter(svc)
	for id, code := range map[uuid.UUID]int{paid: http.StatusAccepted, pending: http.StatusConflict} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/orders/"+id.String()+"/resend-email", nil)
		req.Header.Set("X-Role", "ADMIN")
		r.ServeHTTP(w, req)
		require.Equal(t, code, w.Code)
	}
}
