// Package handler exposes the HTTP handlers of the catalog API.
package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// listActive runs list and writes the result as a JSON array.  Any failure
// becomes a 500 carrying the store's message, or fallback when the store
// gave none.  The result is written as returned: filtering and ordering
// belong to the store.
func listActive[T any](c echo.Context, log *zap.Logger, resource, fallback string, list func(context.Context) ([]T, error)) error {
	items, err := list(c.Request().Context())
	if err != nil {
		msg := err.Error()
		if strings.TrimSpace(msg) == "" {
			msg = fallback
		}
		log.Warn("listing query failed", zap.String("resource", resource), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": msg})
	}
	if items == nil {
		items = []T{}
	}
	return c.JSON(http.StatusOK, items)
}
