package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iliyamo/giftshop-catalog/internal/handler"
	"github.com/iliyamo/giftshop-catalog/internal/middleware"
	"github.com/iliyamo/giftshop-catalog/internal/model"
)

// RegisterRoutes registers the operational endpoints: the health check and
// the Prometheus scrape target for gatherer.
func RegisterRoutes(e *echo.Echo, gatherer prometheus.Gatherer) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// RegisterCatalog registers the public catalog listings under /v1.  They
// need no session; limiter (typically the Redis token bucket) guards them.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, limiter echo.MiddlewareFunc) {
	g := e.Group("/v1", limiter)
	g.GET("/gift-wraps", h.ListGiftWraps)
	g.GET("/occasions", h.ListOccasions)
}

// RegisterSession exposes the caller's session at /v1/session.  A valid
// access token with a known role is required.
func RegisterSession(e *echo.Echo, jwtSecret string) {
	e.GET("/v1/session", handler.Session,
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
	)
}
