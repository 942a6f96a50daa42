package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"festtix/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// windowScripter emulates the sliding-window script in memory.
type windowScripter struct {
	hits  map[string][]int64
	keys  []string
	fail  error
	reply interface{}
}

func newWindowScripter() *windowScripter {
	return &windowScripter{hits: map[string][]int64{}}
}

func (s *windowScripter) Eval(_ context.Context, _ string, keys []string, args ...interface{}) *redis.Cmd {
	if s.fail != nil {
		return redis.NewCmdResult(nil, s.fail)
	}
	if s.reply != nil {
		return redis.NewCmdResult(s.reply, nil)
	}

	key := keys[0]
	s.keys = append(s.keys, key)
	windowStart, now, limit := args[0].(int64), args[1].(int64), args[2].(int)

	kept := s.hits[key][:0]
	for _, h := range s.hits[key] {
		if h > windowStart {
			kept = append(kept, h)
		}
	}
	count := int64(len(kept))
	if count >= int64(limit) {
		s.hits[key] = kept
		return redis.NewCmdResult([]interface{}{count + 1, int64(0)}, nil)
	}
	s.hits[key] = append(kept, now)
	return redis.NewCmdResult([]interface{}{count + 1, int64(limit) - count - 1}, nil)
}

func testConfig() *Config {
	return ConfigFrom(config.RateLimitConfig{
		Enabled:          true,
		WindowDuration:   time.Minute,
		DefaultRequests:  5,
		PublicRequests:   5,
		AuthRequests:     2,
		CheckoutRequests: 3,
		ScannerRequests:  100,
		AdminRequests:    50,
		WebhookRequests:  100,
		HealthRequests:   10,
		WhitelistedIPs:   []string{"10.0.0.9"},
	})
}

func TestRateLimiter_SlidingWindow(t *testing.T) {
	store := newWindowScripter()
	rl := NewRateLimiter(store, testConfig())
	clock := time.Date(2026, 7, 17, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		res, err := rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypeCheckout)
		require.NoError(t, err)
		require.True(t, res.Allowed)
		require.Equal(t, 2-i, res.Remaining)
		clock = clock.Add(time.Second)
	}

	res, err := rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypeCheckout)
	require.NoError(t, err)
	require.False(t, res.Allowed)
	require.Equal(t, 0, res.Remaining)
	require.Equal(t, 3, res.Limit)

	// other classes and clients have their own windows
	res, err = rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePublic)
	require.NoError(t, err)
	require.True(t, res.Allowed)
	res, err = rl.IsAllowed(context.Background(), "5.6.7.8", RateLimitTypeCheckout)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	// the first hit slides out
	clock = clock.Add(58 * time.Second)
	res, err = rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypeCheckout)
	require.NoError(t, err)
	require.True(t, res.Allowed)

	require.Contains(t, store.keys, "festtix:ratelimit:1.2.3.4:checkout")
}

func TestRateLimiter_DisabledAndWhitelisted(t *testing.T) {
	store := newWindowScripter()
	store.fail = errors.New("must not be called")

	cfg := testConfig()
	rl := NewRateLimiter(store, cfg)
	res, err := rl.IsAllowed(context.Background(), "10.0.0.9", RateLimitTypeAuth)
	require.NoError(t, err)
	require.True(t, res.Allowed)
	require.Equal(t, 2, res.Limit)

	cfg.Enabled = false
	rl = NewRateLimiter(store, cfg)
	res, err = rl.IsAllowed(context.Background(), "1.2.3.4", RateLimitTypeAuth)
	require.NoError(t, err)
	require.True(t, res.Allowed)
}

func TestRateLimiter_RedisErrors(t *testing.T) {
	store := newWindowScripter()
	store.fail = errors.New("connection refused")
	_, err := NewRateLimiter(store, testConfig()).IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePublic)
	require.Error(t, err)

	store = newWindowScripter()
	store.reply = "OK"
	_, err = NewRateLimiter(store, testConfig()).IsAllowed(context.Background(), "1.2.3.4", RateLimitTypePublic)
	require.Error(t, err)
}

func TestGetRateLimitType(t *testing.T) {
	tests := map[string]RateLimitType{
		"/health":                  RateLimitTypeHealth,
		"/api/v1/payments/webhook": RateLimitTypeWebhook,
		"/api/v1/scanner/scan":     RateLimitTypeScanner,
		"/api/v1/admin/orders/:id": RateLimitTypeAdmin,
		"/api/v1/auth/login":       RateLimitTypeAuth,
		"/api/v1/checkout":         RateLimitTypeCheckout,
		"/api/v1/vip/reservations": RateLimitTypeCheckout,
		"/api/v1/tickets/validate": RateLimitTypeCheckout,
		"/api/v1/catalog":          RateLimitTypePublic,
		"/api/v1/vip/availability": RateLimitTypePublic,
		"/api/v1/orders/:id":       RateLimitTypePublic,
		"":                         RateLimitTypeDefault,
	}
	for path, want := range tests {
		require.Equal(t, want, getRateLimitType(path), path)
	}
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(newWindowScripter(), testConfig())

	e := gin.New()
	e.Use(Middleware(rl))
	e.POST("/api/v1/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		e.ServeHTTP(w, req)
		codes = append(codes, w.Code)
		if i == 0 {
			require.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			require.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
