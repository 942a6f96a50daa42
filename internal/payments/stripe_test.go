package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"festtix/internal/shared/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_secret"

func sign(payload []byte, secret string, at time.Time) string {
	ts := at.Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(fmt.Sprintf("%d.%s", ts, payload)))
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func sessionEvent(eventType string, orderID uuid.UUID, paymentStatus string) []byte {
	return []byte(fmt.Sprintf(`{
  "id": "evt_1",
  "object": "event",
  "type": %q,
  "data": {
    "object": {
      "id": "cs_test_1",
      "object": "checkout.session",
      "client_reference_id": %q,
      "metadata": {"order_id": %q},
      "payment_intent": "pi_123",
      "payment_status": %q
    }
  }
}`, eventType, orderID, orderID, paymentStatus))
}

func testGateway() *StripeGateway {
	return NewStripeGateway(config.StripeConfig{WebhookSecret: testSecret, Currency: "eur"})
}

func TestParseWebhook_Completed(t *testing.T) {
	orderID := uuid.New()
	payload := sessionEvent("checkout.session.completed", orderID, "paid")

	ev, err := testGateway().ParseWebhook(payload, sign(payload, testSecret, time.Now()))
	require.NoError(t, err)
	require.Equal(t, EventCheckoutCompleted, ev.Type)
	require.Equal(t, orderID, ev.OrderID)
	require.Equal(t, "cs_test_1", ev.SessionID)
	require.Equal(t, "pi_123", ev.PaymentIntentID)
	require.True(t, ev.Paid)
}

func TestParseWebhook_Unpaid(t *testing.T) {
	payload := sessionEvent("checkout.session.completed", uuid.New(), "unpaid")
	ev, err := testGateway().ParseWebhook(payload, sign(payload, testSecret, time.Now()))
	require.NoError(t, err)
	require.False(t, ev.Paid)
}

func TestParseWebhook_BadSignature(t *testing.T) {
	payload := sessionEvent("checkout.session.completed", uuid.New(), "paid")

	_, err := testGateway().ParseWebhook(payload, sign(payload, "whsec_other", time.Now()))
	require.ErrorIs(t, err, ErrInvalidSignature)

	_, err = testGateway().ParseWebhook(payload, "")
	require.ErrorIs(t, err, ErrInvalidSignature)

	// outside the default tolerance
	_, err = testGateway().ParseWebhook(payload, sign(payload, testSecret, time.Now().Add(-time.Hour)))
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseWebhook_OtherEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_2","object":"event","type":"charge.refunded","data":{"object":{"id":"ch_1","object":"charge"}}}`)
	ev, err := testGateway().ParseWebhook(payload, sign(payload, testSecret, time.Now()))
	require.NoError(t, err)
	require.Equal(t, EventType("charge.refunded"), ev.Type)
	require.Equal(t, uuid.Nil, ev.OrderID)
}

func TestParseWebhook_MissingOrder(t *testing.T) {
	payload := []byte(`{"id":"evt_3","object":"event","type":"checkout.session.expired","data":{"object":{"id":"cs_2","object":"checkout.session"}}}`)
	_, err := testGateway().ParseWebhook(payload, sign(payload, testSecret, time.Now()))
	require.ErrorIs(t, err, ErrInvalidPayload)
}

func TestParseWebhook_NotConfigured(t *testing.T) {
	_, err := NewStripeGateway(config.StripeConfig{}).ParseWebhook([]byte(`{}`), "t=1,v1=00")
	require.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewStripeGateway(config.StripeConfig{}).CreateCheckoutSession(context.Background(), &CheckoutSessionInput{})
	require.ErrorIs(t, err, ErrNotConfigured)
}

func TestBuildSessionParams(t *testing.T) {
	orderID := uuid.New()
	cfg := config.StripeConfig{SuccessURL: "https://shop/ok", CancelURL: "https://shop/cancel", Currency: "eur"}
	expires := time.Now().Add(time.Hour)

	p := buildSessionParams(cfg, &CheckoutSessionInput{
		OrderID:   orderID,
		Reference: "FT-1",
		Email:     "fan@example.org",
		ExpiresAt: expires,
		Lines: []CheckoutLine{
			{Name: "VIP 1-Day Pass", Description: "SAT", UnitPrice: 80, Quantity: 2},
			{Name: "General Admission 2-Day Pass", UnitPrice: 60.005, Quantity: 1},
		},
	})

	require.Equal(t, "payment", *p.Mode)
	require.Equal(t, orderID.String(), *p.ClientReferenceID)
	require.Equal(t, orderID.String(), p.Metadata["order_id"])
	require.Equal(t, orderID.String(), p.PaymentIntentData.Metadata["order_id"])
	require.Equal(t, expires.Unix(), *p.ExpiresAt)
	require.Len(t, p.LineItems, 2)
	require.Equal(t, int64(8000), *p.LineItems[0].PriceData.UnitAmount)
	require.Equal(t, int64(2), *p.LineItems[0].Quantity)
	require.Equal(t, "eur", *p.LineItems[0].PriceData.Currency)
	require.Nil(t, p.LineItems[1].PriceData.ProductData.Description)
}

func TestMinorUnits(t *testing.T) {
	require.Equal(t, int64(35000), MinorUnits(350))
	require.Equal(t, int64(1999), MinorUnits(19.99))
	require.Equal(t, int64(0), MinorUnits(0))
}
