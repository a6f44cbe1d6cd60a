package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/user-api/internal/api/metrics"
	"github.com/crewbase/user-api/internal/core/domain"
)

// Authorize enforces role-based access control on an authenticated
// request. The caller's role expands through the fixed hierarchy, so
// Authorize("manager") admits managers and admins alike. Any single
// match against requiredRoles suffices.
//
// With no required roles the gate degrades to authentication-only: any
// authenticated caller passes. The 403 body never names the roles that
// would have succeeded.
func Authorize(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*domain.User)
			if !ok || user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			if !hasAccess(user.Role, requiredRoles) {
				metrics.AuthzDenialsTotal.WithLabelValues(c.Path()).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}

			return next(c)
		}
	}
}

func hasAccess(role domain.Role, requiredRoles []string) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	for _, required := range requiredRoles {
		if role.HasPermission(required) {
			return true
		}
	}
	return false
}
