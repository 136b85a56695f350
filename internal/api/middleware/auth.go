package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atcnextgen/catalog-api/internal/core/domain"
	"github.com/atcnextgen/catalog-api/internal/core/ports"
	"github.com/atcnextgen/catalog-api/internal/core/service"
)

// Auth verifies the bearer token, resolves the embedded user id against the
// user store, and injects the resolved identity into the echo context under
// "user", "username" and "role". A token that verifies but points at a deleted
// user is rejected; tokens are never revoked before their natural expiry.
func Auth(tokens *service.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied: no token provided or invalid format")
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token: user not found")
				}
				return err
			}

			c.Set("user", user)
			c.Set("username", user.Username)
			c.Set("role", user.Role)

			return next(c)
		}
	}
}
