package payments_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"festtix/internal/payments"
	mock_payments "festtix/internal/payments/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type handlerCall struct {
	kind      string
	orderID   uuid.UUID
	sessionID string
}

type fakeHandler struct {
	calls []handlerCall
	err   error
}

func (h *fakeHandler) HandlePaid(_ context.Context, orderID uuid.UUID, sessionID, _ string) error {
	h.calls = append(h.calls, handlerCall{"paid", orderID, sessionID})
	return h.err
}

func (h *fakeHandler) HandleExpired(_ context.Context, orderID uuid.UUID, sessionID string) error {
	h.calls = append(h.calls, handlerCall{"expired", orderID, sessionID})
	return h.err
}

func TestController_Webhook(t *testing.T) {
	orderID := uuid.New()
	type mockBehavior func(g *mock_payments.MockGateway)

	tests := []struct {
		name          string
		mockBehavior  mockBehavior
		handlerErr    error
		expectedCode  int
		expectedCalls []string
	}{
		{
			name: "paid",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook([]byte("body"), "sig").
					Return(&payments.WebhookEvent{Type: payments.EventCheckoutCompleted, OrderID: orderID, SessionID: "cs_1", Paid: true}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCalls: []string{"paid"},
		},
		{
			name: "completed but unpaid",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(&payments.WebhookEvent{Type: payments.EventCheckoutCompleted, OrderID: orderID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "expired",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(&payments.WebhookEvent{Type: payments.EventCheckoutExpired, OrderID: orderID, SessionID: "cs_1"}, nil)
			},
			expectedCode:  http.StatusOK,
			expectedCalls: []string{"expired"},
		},
		{
			name: "other event acknowledged",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(&payments.WebhookEvent{Type: "charge.refunded"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "bad signature",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).Return(nil, payments.ErrInvalidSignature)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown order",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(&payments.WebhookEvent{Type: payments.EventCheckoutExpired, OrderID: orderID}, nil)
			},
			handlerErr:    payments.ErrUnknownOrder,
			expectedCode:  http.StatusOK,
			expectedCalls: []string{"expired"},
		},
		{
			name: "handler failure is retried by provider",
			mockBehavior: func(g *mock_payments.MockGateway) {
				g.EXPECT().ParseWebhook(gomock.Any(), gomock.Any()).
					Return(&payments.WebhookEvent{Type: payments.EventCheckoutCompleted, OrderID: orderID, Paid: true}, nil)
			},
			handlerErr:    errors.New("db down"),
			expectedCode:  http.StatusInternalServerError,
			expectedCalls: []string{"paid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gomock.NewController(t)
			defer c.Finish()

			gw := mock_payments.NewMockGateway(c)
			tt.mockBehavior(gw)
			h := &fakeHandler{err: tt.handlerErr}

			gin.SetMode(gin.TestMode)
			e := gin.New()
			payments.SetupPaymentRoutes(e.Group("/api/v1"), payments.NewController(gw, h))

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/api/v1/payments/webhook", strings.NewReader("body"))
			r.Header.Set("Stripe-Signature", "sig")
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			var kinds []string
			for _, call := range h.calls {
				kinds = append(kinds, call.kind)
			}
			require.Equal(t, tt.expectedCalls, kinds)
		})
	}
}
