package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, getLogLevel("warning"))
	require.Equal(t, slog.LevelError, getLogLevel("error"))
	require.Equal(t, slog.LevelInfo, getLogLevel(""))
}

func TestLogOrderPaid_JSON(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	l.LogOrderPaid(context.Background(), "ord-1", "pi_123", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "Order Paid", entry["msg"])
	require.Equal(t, "ord-1", entry["order_id"])
	require.Equal(t, float64(3), entry["tickets_issued"])
}

func TestLevelFiltering(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	l.LogOrderCreated(context.Background(), "ord-1", "a@b.c", 120, 1)
	require.Zero(t, buf.Len())

	l.LogRateLimitExceeded(context.Background(), "10.0.0.1", "/api/v1/checkout")
	require.NotZero(t, buf.Len())
}
