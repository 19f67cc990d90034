package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/giftshop-catalog/internal/middleware"
)

// Session handles GET /v1/session and echoes back the caller's session as
// built by JWTAuth.
func Session(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	return c.JSON(http.StatusOK, s)
}
