package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/giftshop-catalog/internal/model"
)

const sessionKey = "session"

func setSession(c echo.Context, p model.TokenPayload) error {
	s, err := model.NewSession(p)
	if err != nil {
		return err
	}
	c.Set(sessionKey, s)
	return nil
}

// SessionFrom returns the session stored by JWTAuth, if any.
func SessionFrom(c echo.Context) (model.Session, bool) {
	s, ok := c.Get(sessionKey).(model.Session)
	return s, ok
}
