package payments

import (
	"context"
	"errors"
	"io"
	"net/http"

	"festtix/internal/shared/utils/response"
	"festtix/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxWebhookBytes = int64(65536)

// ErrUnknownOrder is returned by handlers for events about orders this service never created.
var ErrUnknownOrder = errors.New("webhook refers to an unknown order")

// OrderPaymentHandler applies payment outcomes to orders.
type OrderPaymentHandler interface {
	HandlePaid(ctx context.Context, orderID uuid.UUID, sessionID, paymentIntentID string) error
	HandleExpired(ctx context.Context, orderID uuid.UUID, sessionID string) error
}

type Controller struct {
	gateway Gateway
	orders  OrderPaymentHandler
}

func NewController(gateway Gateway, orders OrderPaymentHandler) *Controller {
	return &Controller{gateway: gateway, orders: orders}
}

// Webhook handles POST /payments/webhook
func (c *Controller) Webhook(ctx *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxWebhookBytes))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Unable to read webhook body", nil, nil)
		return
	}

	event, err := c.gateway.ParseWebhook(payload, ctx.GetHeader("Stripe-Signature"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.RespondJSON(ctx, "error", http.StatusServiceUnavailable, "Payments are not configured", nil, nil)
		default:
			logger.GetDefault().LogHTTPError(ctx, err, http.StatusBadRequest)
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid webhook", nil, nil)
		}
		return
	}

	reqCtx := ctx.Request.Context()
	switch event.Type {
	case EventCheckoutCompleted, EventCheckoutAsyncSucceeded:
		if !event.Paid {
			// async payment methods settle later with async_payment_succeeded
			break
		}
		err = c.orders.HandlePaid(reqCtx, event.OrderID, event.SessionID, event.PaymentIntentID)
	case EventCheckoutExpired:
		err = c.orders.HandleExpired(reqCtx, event.OrderID, event.SessionID)
	}

	if err != nil {
		if errors.Is(err, ErrUnknownOrder) {
			logger.GetDefault().Warn("Webhook for unknown order", "event_id", event.ID, "order_id", event.OrderID.String())
			response.RespondJSON(ctx, "success", http.StatusOK, "Event ignored", nil, nil)
			return
		}
		logger.GetDefault().WithError(err).Error("Webhook processing failed", "event_id", event.ID, "type", string(event.Type))
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to process webhook", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event received", gin.H{"type": event.Type}, nil)
}
