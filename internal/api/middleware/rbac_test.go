package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/crewbase/user-api/internal/core/domain"
)

func authedContext(e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user", &domain.User{ID: "u1", Role: role})
	c.Set("user_id", "u1")
	return c, rec
}

func TestAuthorize_ExactRole(t *testing.T) {
	e := echo.New()
	c, rec := authedContext(e, domain.RoleStaff)

	called := false
	handler := Authorize("staff")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_HierarchyGrantsLowerRole(t *testing.T) {
	e := echo.New()

	// Admin passes a manager-gated route through permission expansion.
	c, rec := authedContext(e, domain.RoleAdmin)
	handler := Authorize("manager")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin on manager route, got %d", rec.Code)
	}
}

func TestAuthorize_InsufficientRole(t *testing.T) {
	e := echo.New()

	// Manager against an admin-only route: the expansion never grants up.
	c, rec := authedContext(e, domain.RoleManager)
	handler := Authorize("admin")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthorize_AnyRoleMatches(t *testing.T) {
	e := echo.New()
	c, rec := authedContext(e, domain.RoleStaff)

	handler := Authorize("admin", "staff")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_EmptyListPassesAuthenticated(t *testing.T) {
	e := echo.New()
	c, rec := authedContext(e, domain.RoleStaff)

	handler := Authorize()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthorize_NoAuthenticatedUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Authorize("staff")(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthorize_ForbiddenBodyHidesRoles(t *testing.T) {
	e := echo.New()
	c, rec := authedContext(e, domain.RoleStaff)

	handler := Authorize("admin")(func(c echo.Context) error {
		return nil
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	body := rec.Body.String()
	for _, leak := range []string{"admin", "manager"} {
		if strings.Contains(body, leak) {
			t.Fatalf("403 body leaks required role %q: %s", leak, body)
		}
	}
}
