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

func TestPropertyListRejectsZeroLimitWithoutServiceCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	svc.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPropertyHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/properties?limit=0", nil),
		repository.Caller{ID: 1, Role: domain.RoleOwner})
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if env := decodeError(t, rr); env.Success {
		t.Error("error envelope must have success=false")
	}
}

func TestPropertyListRejectsOversizedLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	svc.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPropertyHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/properties?limit=101", nil),
		repository.Caller{ID: 1, Role: domain.RoleOwner})
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPropertyListPassesCallerAndFilterThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	caller := repository.Caller{ID: 7, Role: domain.RoleBroker}
	svc.EXPECT().
		ListPaged(gomock.Any(), caller, repository.PropertyFilter{Status: "available", Commune: "Providencia"},
			repository.PageRequest{Page: 2, Limit: 10}).
		Return(repository.PageResult[domain.Property]{
			Items: []domain.Property{{ID: 31, Title: "Depto Providencia"}},
			Page:  2, Limit: 10, Total: 11, Pages: 2,
		}, nil)
	h := NewPropertyHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet,
		"/api/v1/properties?status=available&commune=Providencia&page=2&limit=10", nil), caller)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"total":11`) || !strings.Contains(body, `"pages":2`) {
		t.Errorf("expected pagination in body, got %s", body)
	}
}

func TestPropertyGetMapsScopedMissToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	caller := repository.Caller{ID: 2, Role: domain.RoleTenant}
	svc.EXPECT().GetByID(gomock.Any(), caller, uint(99)).Return(nil, repository.ErrPropertyNotFound)
	h := NewPropertyHandler(svc)

	router := chi.NewRouter()
	router.Get("/api/v1/properties/{id}", h.GetByID)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/properties/99", nil), caller)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestPropertyGetRejectsNonNumericID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	svc.EXPECT().GetByID(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPropertyHandler(svc)

	router := chi.NewRouter()
	router.Get("/api/v1/properties/{id}", h.GetByID)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/properties/abc", nil),
		repository.Caller{ID: 2, Role: domain.RoleTenant})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPropertyCreateBehindRoleGateNeverReachesServiceForTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPropertyHandler(svc)

	router := chi.NewRouter()
	router.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
		Post("/api/v1/properties", h.Create)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/properties",
		strings.NewReader(`{"title":"Casa","address":"Calle 1","rent_amount":500000}`)),
		repository.Caller{ID: 3, Role: domain.RoleTenant})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestPropertyCreateMapsValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().Create(gomock.Any(), caller, uint(0), gomock.Any()).Return(nil, service.ErrPropertyInvalidRent)
	h := NewPropertyHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/properties",
		strings.NewReader(`{"title":"Casa","address":"Calle 1","rent_amount":-5}`)), caller)
	rr := httptest.NewRecorder()
	h.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPropertyDeletePhotoRequiresKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	svc.EXPECT().DeletePhoto(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPropertyHandler(svc)

	router := chi.NewRouter()
	router.Delete("/api/v1/properties/{id}/photos", h.DeletePhoto)
	req := withCaller(httptest.NewRequest(http.MethodDelete, "/api/v1/properties/5/photos", nil),
		repository.Caller{ID: 1, Role: domain.RoleOwner})
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPropertyDeletePhotoMapsMissingPhotoTo404(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPropertyService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().
		DeletePhoto(gomock.Any(), caller, uint(5), "properties/owner-1/property-5/missing.jpg").
		Return(service.ErrPhotoNotFound)
	h := NewPropertyHandler(svc)

	router := chi.NewRouter()
	router.Delete("/api/v1/properties/{id}/photos", h.DeletePhoto)
	req := withCaller(httptest.NewRequest(http.MethodDelete,
		"/api/v1/properties/5/photos?key=properties%2Fowner-1%2Fproperty-5%2Fmissing.jpg", nil), caller)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
