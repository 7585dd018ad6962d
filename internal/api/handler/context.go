package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soaeast/crm-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Auth
// middleware. Its absence means a protected route was registered without
// the middleware; reject rather than act as nobody.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}

// messageResponse is the envelope for delete confirmations and other
// acknowledgement-only replies.
type messageResponse struct {
	Message string `json:"message"`
}
