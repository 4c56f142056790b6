package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/service"
	servicegomock "github.com/arriendohq/arriendo/internal/service/gomock"
)

func TestPaymentTrendDefaultsToSixMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().Trend(gomock.Any(), caller, 6).Return([]service.TrendPoint{
		{Month: "2026-01"}, {Month: "2026-02", Amount: 1000000, Count: 2},
		{Month: "2026-03"}, {Month: "2026-04"}, {Month: "2026-05"}, {Month: "2026-06"},
	}, nil)
	h := NewPaymentHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/payments/trend", nil), caller)
	rr := httptest.NewRecorder()
	h.Trend(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"months":6`) || !strings.Contains(body, `"2026-02"`) {
		t.Errorf("trend body mismatch: %s", body)
	}
}

func TestPaymentTrendMapsOutOfRangeMonthsTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().Trend(gomock.Any(), caller, 25).Return(nil, service.ErrTrendInvalidMonths)
	h := NewPaymentHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/payments/trend?months=25", nil), caller)
	rr := httptest.NewRecorder()
	h.Trend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPaymentTrendRejectsExplicitZeroMonths(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().Trend(gomock.Any(), caller, 0).Return(nil, service.ErrTrendInvalidMonths)
	h := NewPaymentHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/payments/trend?months=0", nil), caller)
	rr := httptest.NewRecorder()
	h.Trend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPaymentTrendRejectsNonNumericMonthsWithoutServiceCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	svc.EXPECT().Trend(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	h := NewPaymentHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/payments/trend?months=six", nil),
		repository.Caller{ID: 1, Role: domain.RoleOwner})
	rr := httptest.NewRecorder()
	h.Trend(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPaymentListParsesDueDateWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().
		ListPaged(gomock.Any(), caller, gomock.Any(), repository.PageRequest{Page: 1, Limit: 20}).
		DoAndReturn(func(_ context.Context, _ repository.Caller, filter repository.PaymentFilter, _ repository.PageRequest) (repository.PageResult[domain.Payment], error) {
			if filter.DueFrom == nil || filter.DueFrom.Format("2006-01-02") != "2026-01-01" {
				t.Errorf("due_from not parsed: %v", filter.DueFrom)
			}
			if filter.DueTo == nil || filter.DueTo.Format("2006-01-02") != "2026-06-30" {
				t.Errorf("due_to not parsed: %v", filter.DueTo)
			}
			return repository.PageResult[domain.Payment]{Page: 1, Limit: 20}, nil
		})
	h := NewPaymentHandler(svc)

	req := withCaller(httptest.NewRequest(http.MethodGet,
		"/api/v1/payments?due_from=2026-01-01&due_to=2026-06-30", nil), caller)
	rr := httptest.NewRecorder()
	h.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestPaymentMarkPaidMapsSettledTo400(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 1, Role: domain.RoleOwner}
	svc.EXPECT().MarkPaid(gomock.Any(), caller, uint(12), "transfer", "TX-1").
		Return(nil, service.ErrPaymentAlreadyPaid)
	h := NewPaymentHandler(svc)

	router := chi.NewRouter()
	router.Post("/api/v1/payments/{id}/pay", h.MarkPaid)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/payments/12/pay",
		strings.NewReader(`{"method":"transfer","reference":"TX-1"}`)), caller)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestPaymentGetMapsScopedMissToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := servicegomock.NewMockPaymentService(ctrl)
	caller := repository.Caller{ID: 4, Role: domain.RoleTenant}
	svc.EXPECT().GetByID(gomock.Any(), caller, uint(77)).Return(nil, repository.ErrPaymentNotFound)
	h := NewPaymentHandler(svc)

	router := chi.NewRouter()
	router.Get("/api/v1/payments/{id}", h.GetByID)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/payments/77", nil), caller)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
