package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/ports"
)

// Auth verifies the bearer token and injects the resolved user into context
// under the "user" key. Signature, expiry and subject-existence failures all
// surface as 401 through the global error handler.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := auth.VerifyToken(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
