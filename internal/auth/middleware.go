package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// UsernameKey is the echo context key holding the authenticated username.
	UsernameKey = "username"
)

// Middleware rejects requests without a valid bearer token with 401.
func (s *Service) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			username, err := s.ParseToken(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			c.Set(UsernameKey, username)
			return next(c)
		}
	}
}
