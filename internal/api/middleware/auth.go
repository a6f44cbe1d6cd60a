package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/user-api/internal/api/metrics"
	"github.com/crewbase/user-api/internal/core/domain"
	"github.com/crewbase/user-api/internal/core/ports"
)

// Authenticate verifies the bearer token, resolves the account behind it
// and injects both into the request context under "user" and "user_id".
//
// A valid token whose account has since been deleted is rejected with 401:
// the store, not the token, is the source of truth for account existence.
// The cache is optional; on a miss or cache failure the lookup falls
// through to the repository.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, cache ports.UserCache) echo.MiddlewareFunc {
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

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				result := "invalid"
				if errors.Is(err, domain.ErrExpiredToken) {
					result = "expired"
				}
				metrics.TokenVerificationsTotal.WithLabelValues(result).Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			user, err := lookupUser(c, users, cache, claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidUserID) {
					return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
				}
				return err
			}

			c.Set("user", user)
			c.Set("user_id", user.ID)

			return next(c)
		}
	}
}

func lookupUser(c echo.Context, users ports.UserRepository, cache ports.UserCache, id string) (*domain.User, error) {
	ctx := c.Request().Context()

	if cache != nil {
		if cached, err := cache.Get(ctx, id); err == nil && cached != nil {
			return cached, nil
		}
	}

	user, err := users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cache != nil {
		_ = cache.Set(ctx, user)
	}
	return user, nil
}
