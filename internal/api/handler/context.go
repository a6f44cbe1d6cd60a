package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/user-api/internal/core/domain"
)

// currentUser extracts the account injected by the Authenticate middleware.
// Its presence proves the middleware ran; a handler reached without it is
// a wiring mistake and fails closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
