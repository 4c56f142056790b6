package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
)

func requestWithCaller(caller repository.Caller) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	return req.WithContext(context.WithValue(req.Context(), CallerContextKey, caller))
}

func TestRequireRolesDeniesWithoutRunningHandler(t *testing.T) {
	mw := RequireRoles(domain.RoleAdmin, domain.RoleSupport)
	rr := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run on a denied request")
	})).ServeHTTP(rr, requestWithCaller(repository.Caller{ID: 3, Role: domain.RoleTenant}))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	mw := RequireRoles(domain.RoleOwner, domain.RoleBroker)
	rr := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rr, requestWithCaller(repository.Caller{ID: 1, Role: domain.RoleOwner}))

	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestRequireRolesWithoutAuthContextIs401(t *testing.T) {
	mw := RequireRoles(domain.RoleAdmin)
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without auth context")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRequireCrossTenantAdmitsSupportAndAdminOnly(t *testing.T) {
	mw := RequireCrossTenant()

	cases := []struct {
		role domain.Role
		want int
	}{
		{domain.RoleAdmin, http.StatusOK},
		{domain.RoleSupport, http.StatusOK},
		{domain.RoleOwner, http.StatusForbidden},
		{domain.RoleProvider, http.StatusForbidden},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, requestWithCaller(repository.Caller{ID: 1, Role: tc.role}))
		if rr.Code != tc.want {
			t.Errorf("role %s: expected %d, got %d", tc.role, tc.want, rr.Code)
		}
	}
}

func TestRouteGroup(t *testing.T) {
	cases := map[string]string{
		"/api/v1/properties/10": "api/properties",
		"/api/v1/auth/login":    "api/auth",
		"/healthz":              "healthz",
		"/":                     "root",
	}
	for path, want := range cases {
		if got := routeGroup(path); got != want {
			t.Errorf("routeGroup(%q): got %q, want %q", path, got, want)
		}
	}
}
