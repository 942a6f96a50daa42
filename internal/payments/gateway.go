package payments

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

//go:generate go run github.com/golang/mock/mockgen -source=gateway.go -destination=mocks/mock.go

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrNotConfigured    = errors.New("payment gateway not configured")
)

type EventType string

const (
	EventCheckoutCompleted      EventType = "checkout.session.completed"
	EventCheckoutAsyncSucceeded EventType = "checkout.session.async_payment_succeeded"
	EventCheckoutExpired        EventType = "checkout.session.expired"
)

// CheckoutLine is one priced line of a hosted checkout page.
type CheckoutLine struct {
	Name        string
	Description string
	UnitPrice   float64
	Quantity    int
}

type CheckoutSessionInput struct {
	OrderID   uuid.UUID
	Reference string
	Email     string
	Currency  string
	Lines     []CheckoutLine
	// ExpiresAt is left to the provider default when zero.
	ExpiresAt time.Time
}

type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent is the part of a provider event the order flow needs.
type WebhookEvent struct {
	ID              string
	Type            EventType
	OrderID         uuid.UUID
	SessionID       string
	PaymentIntentID string
	// Paid is false for completed sessions whose payment is still processing.
	Paid bool
}

type Gateway interface {
	CreateCheckoutSession(ctx context.Context, in *CheckoutSessionInput) (*CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*WebhookEvent, error)
}

// MinorUnits converts a decimal amount to cents.
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
