package orders

import (
	"context"
	"errors"

	"festtix/internal/payments"

	"github.com/google/uuid"
)

// PaymentEventAdapter lets the payments webhook drive order state.
type PaymentEventAdapter struct {
	service Service
}

func NewPaymentEventAdapter(service Service) *PaymentEventAdapter {
	return &PaymentEventAdapter{service: service}
}

func (a *PaymentEventAdapter) HandlePaid(ctx context.Context, orderID uuid.UUID, sessionID, paymentIntentID string) error {
	return mapPaymentError(a.service.MarkPaid(ctx, orderID, sessionID, paymentIntentID))
}

func (a *PaymentEventAdapter) HandleExpired(ctx context.Context, orderID uuid.UUID, _ string) error {
	return mapPaymentError(a.service.MarkExpired(ctx, orderID))
}

// mapPaymentError acknowledges events that can never succeed so the provider stops retrying.
func mapPaymentError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrOrderNotPayable):
		return errors.Join(payments.ErrUnknownOrder, err)
	default:
		return err
	}
}

var _ payments.OrderPaymentHandler = (*PaymentEventAdapter)(nil)
