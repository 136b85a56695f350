package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware. Its
// absence means a protected handler was reached without the middleware, which
// is a wiring bug surfaced as 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get("user").(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication identity")
	}
	return user, nil
}
