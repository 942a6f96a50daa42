package orders_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"festtix/internal/orders"
	mock_orders "festtix/internal/orders/mocks"
	"festtix/internal/payments"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPaymentEventAdapter(t *testing.T) {
	c := gomock.NewController(t)
	defer c.Finish()

	svc := mock_orders.NewMockService(c)
	adapter := orders.NewPaymentEventAdapter(svc)
	ctx := context.Background()

	ok, gone, broken, cancelled := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	svc.EXPECT().MarkPaid(ctx, ok, "cs_1", "pi_1").Return(nil)
	svc.EXPECT().MarkPaid(ctx, gone, "cs_2", "pi_2").Return(orders.ErrOrderNotFound)
	svc.EXPECT().MarkPaid(ctx, broken, "cs_3", "pi_3").Return(errors.New("db down"))
	svc.EXPECT().MarkPaid(ctx, cancelled, "cs_4", "pi_4").Return(fmt.Errorf("%w: order is CANCELLED", orders.ErrOrderNotPayable))
	svc.EXPECT().MarkExpired(ctx, ok).Return(nil)

	require.NoError(t, adapter.HandlePaid(ctx, ok, "cs_1", "pi_1"))

	err := adapter.HandlePaid(ctx, gone, "cs_2", "pi_2")
	require.ErrorIs(t, err, payments.ErrUnknownOrder)
	require.ErrorIs(t, err, orders.ErrOrderNotFound)

	err = adapter.HandlePaid(ctx, broken, "cs_3", "pi_3")
	require.Error(t, err)
	require.NotErrorIs(t, err, payments.ErrUnknownOrder)

	require.ErrorIs(t, adapter.HandlePaid(ctx, cancelled, "cs_4", "pi_4"), payments.ErrUnknownOrder)
	require.NoError(t, adapter.HandleExpired(ctx, ok, "cs_1"))
}
