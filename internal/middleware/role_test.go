package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/garage-booking/internal/model"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestRequireRoleAllowsMember(t *testing.T) {
	c, rec := newTestContext(t)
	c.Set(identityKey, &model.Identity{ID: 1, Role: model.RoleGarageStaff})

	h := RequireRole(model.RoleGarage, model.RoleGarageStaff)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRequireRoleRejectsOutsider(t *testing.T) {
	c, rec := newTestContext(t)
	c.Set(identityKey, &model.Identity{ID: 1, Role: model.RoleCustomer})

	h := RequireRole(model.RoleAdmin, model.RoleSuperadmin)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}

// Role sets are literal: superadmin passes an admin-gated check only when
// the set names superadmin.
func TestRequireRoleNoImpliedHierarchy(t *testing.T) {
	c, rec := newTestContext(t)
	c.Set(identityKey, &model.Identity{ID: 1, Role: model.RoleSuperadmin})

	h := RequireRole(model.RoleAdmin)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("superadmin passed an admin-only set: status = %d, want 403", rec.Code)
	}
}

func TestRequireRoleMissingIdentity(t *testing.T) {
	c, rec := newTestContext(t)

	h := RequireRole(model.RoleCustomer)(okHandler)
	if err := h(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
}
