package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/iliyamo/giftshop-catalog/internal/config"
)

func newLimitedEcho(t *testing.T, cfg config.RateLimitConfig, log *zap.Logger) (*echo.Echo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })

	e := echo.New()
	e.GET("/v1/occasions", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	}, NewTokenBucket(cfg, rdb, log))
	return e, mr
}

func getOccasions(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/v1/occasions", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func limitConfig(capacity int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   1,
		RefillInterval: time.Hour,
		TTL:            5 * time.Hour,
		KeyStrategy:    "ip_route",
		Prefix:         "rl",
	}
}

func TestNewTokenBucket(t *testing.T) {
	t.Run("exhausted bucket returns 429", func(t *testing.T) {
		e, _ := newLimitedEcho(t, limitConfig(2), nil)

		first := getOccasions(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

		second := getOccasions(e, "10.0.0.1")
		assert.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

		third := getOccasions(e, "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, third.Code)
		assert.Equal(t, "0", third.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, "3600", third.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"error":"rate limit exceeded","retry_after":3600}`, third.Body.String())
	})

	t.Run("buckets are per key", func(t *testing.T) {
		e, _ := newLimitedEcho(t, limitConfig(1), nil)

		assert.Equal(t, http.StatusOK, getOccasions(e, "10.0.0.1").Code)
		assert.Equal(t, http.StatusTooManyRequests, getOccasions(e, "10.0.0.1").Code)
		assert.Equal(t, http.StatusOK, getOccasions(e, "10.0.0.2").Code)
	})

	t.Run("bucket state lives in redis with a ttl", func(t *testing.T) {
		e, mr := newLimitedEcho(t, limitConfig(3), nil)

		getOccasions(e, "10.0.0.1")

		key := "rl:ip:10.0.0.1:route:GET /v1/occasions"
		require.True(t, mr.Exists(key))
		assert.Equal(t, "2", mr.HGet(key, "tokens"))
		assert.Equal(t, 5*time.Hour, mr.TTL(key))
	})

	t.Run("debug exposes the key", func(t *testing.T) {
		cfg := limitConfig(1)
		cfg.Debug = true
		e, _ := newLimitedEcho(t, cfg, nil)

		rec := getOccasions(e, "10.0.0.1")

		assert.Equal(t, "rl:ip:10.0.0.1:route:GET /v1/occasions", rec.Header().Get("X-RateLimit-Key"))
	})

	t.Run("redis failure lets requests through", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		cfg := limitConfig(1)
		cfg.Debug = true
		e, mr := newLimitedEcho(t, cfg, zap.New(core))
		mr.Close()

		for i := 0; i < 3; i++ {
			rec := getOccasions(e, "10.0.0.1")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, rec.Header().Get("X-RateLimit-Remaining"))
		}
		assert.Equal(t, 3, logs.FilterMessage("rate limit script failed").Len())
	})
}
