package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/middleware"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
	servicegomock "github.com/arriendohq/arriendo/internal/service/gomock"
)

func TestAdminListUsersFiltersByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	userSvc.EXPECT().
		ListPaged(gomock.Any(), repository.UserFilter{Role: domain.RoleProvider}, repository.PageRequest{Page: 1, Limit: 20}).
		Return(repository.PageResult[domain.User]{
			Items: []domain.User{{ID: 5, Email: "p@example.com", Role: domain.RoleProvider}},
			Page:  1, Limit: 20, Total: 1, Pages: 1,
		}, nil)
	h := NewAdminHandler(userSvc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?role=PROVIDER", nil),
		repository.Caller{ID: 1, Role: domain.RoleAdmin})
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"p@example.com"`) {
		t.Errorf("expected provider in body, got %s", rr.Body.String())
	}
}

func TestAdminListUsersMapsUnknownRoleTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	userSvc.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		repository.PageResult[domain.User]{}, service.ErrInvalidRole)
	h := NewAdminHandler(userSvc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?role=WIZARD", nil),
		repository.Caller{ID: 1, Role: domain.RoleAdmin})
	rr := httptest.NewRecorder()
	h.ListUsers(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestAdminRoutesBehindCrossTenantGateRejectOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	userSvc.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewAdminHandler(userSvc)

	router := chi.NewRouter()
	router.With(middleware.RequireCrossTenant()).Get("/api/v1/admin/users", h.ListUsers)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil),
		repository.Caller{ID: 2, Role: domain.RoleOwner})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestAdminSetUserRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	userSvc.EXPECT().SetRole(gomock.Any(), uint(5), domain.RoleSupport).
		Return(&domain.User{ID: 5, Role: domain.RoleSupport}, nil)
	h := NewAdminHandler(userSvc)

	router := chi.NewRouter()
	router.Put("/api/v1/admin/users/{id}/role", h.SetUserRole)

	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/v1/admin/users/5/role",
		strings.NewReader(`{"role":"SUPPORT"}`)),
		repository.Caller{ID: 1, Role: domain.RoleAdmin})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestAdminSetUserStatusMapsMissingUserTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	userSvc := servicegomock.NewMockUserService(ctrl)
	userSvc.EXPECT().SetStatus(gomock.Any(), uint(99), "suspended").
		Return(nil, repository.ErrUserNotFound)
	h := NewAdminHandler(userSvc)

	router := chi.NewRouter()
	router.Put("/api/v1/admin/users/{id}/status", h.SetUserStatus)

	req := withCaller(httptest.NewRequest(http.MethodPut, "/api/v1/admin/users/99/status",
		strings.NewReader(`{"status":"suspended"}`)),
		repository.Caller{ID: 1, Role: domain.RoleAdmin})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
