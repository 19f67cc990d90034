package main

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iliyamo/giftshop-catalog/internal/metrics"
)

func requestCounts(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "giftshop_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			out[labels["route"]+" "+labels["status"]] = m.GetCounter().GetValue()
		}
	}
	return out
}

func TestNewEchoCountsRecoveredPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	e := newEcho(zap.NewNop(), metrics.NewHTTP(reg))
	e.GET("/panic", func(c echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, requestCounts(t, reg)["/panic 500"])
}

func TestNewEchoSetsRequestID(t *testing.T) {
	e := newEcho(zap.NewNop(), metrics.NewHTTP(prometheus.NewRegistry()))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)
}

func TestServe(t *testing.T) {
	t.Run("listener failure is returned", func(t *testing.T) {
		taken, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		defer taken.Close()

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		done := make(chan error, 1)
		go func() { done <- serve(context.Background(), e, taken.Addr().String()) }()

		select {
		case err := <-done:
			assert.ErrorContains(t, err, "listen "+taken.Addr().String())
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return on listener failure")
		}
	})

	t.Run("cancelled context shuts down", func(t *testing.T) {
		e := echo.New()
		e.HideBanner = true
		e.HidePort = true

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- serve(ctx, e, "127.0.0.1:0") }()

		require.Eventually(t, func() bool { return e.ListenerAddr() != nil }, 5*time.Second, 10*time.Millisecond)
		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("serve did not return after cancel")
		}
	})
}
