package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/handler"
	"github.com/arriendohq/arriendo/internal/http/router"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
	"github.com/arriendohq/arriendo/internal/service"
	servicegomock "github.com/arriendohq/arriendo/internal/service/gomock"
)

func jsonReader(s string) io.Reader {
	return strings.NewReader(s)
}

type routerMocks struct {
	auth      *servicegomock.MockAuthService
	user      *servicegomock.MockUserService
	property  *servicegomock.MockPropertyService
	contract  *servicegomock.MockContractService
	payment   *servicegomock.MockPaymentService
	ticket    *servicegomock.MockTicketService
	visit     *servicegomock.MockVisitService
	legal     *servicegomock.MockLegalService
	dashboard *servicegomock.MockDashboardService
	template  *servicegomock.MockTemplateService
}

func newTestRouter(t *testing.T) (http.Handler, *security.JWTManager, *routerMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		auth:      servicegomock.NewMockAuthService(ctrl),
		user:      servicegomock.NewMockUserService(ctrl),
		property:  servicegomock.NewMockPropertyService(ctrl),
		contract:  servicegomock.NewMockContractService(ctrl),
		payment:   servicegomock.NewMockPaymentService(ctrl),
		ticket:    servicegomock.NewMockTicketService(ctrl),
		visit:     servicegomock.NewMockVisitService(ctrl),
		legal:     servicegomock.NewMockLegalService(ctrl),
		dashboard: servicegomock.NewMockDashboardService(ctrl),
		template:  servicegomock.NewMockTemplateService(ctrl),
	}

	cfg := &config.Config{JWTAccessTTL: 15 * time.Minute, JWTRefreshTTL: 24 * time.Hour}
	cookies := security.NewCookieManager("", false, "lax")
	jwtMgr := security.NewJWTManager("iss", "aud", "abcdefghijklmnopqrstuvwxyz123456", "abcdefghijklmnopqrstuvwxyz654321")

	h := router.NewRouter(router.Dependencies{
		AuthHandler:      handler.NewAuthHandler(cfg, m.auth, m.user, cookies),
		PropertyHandler:  handler.NewPropertyHandler(m.property),
		ContractHandler:  handler.NewContractHandler(m.contract),
		PaymentHandler:   handler.NewPaymentHandler(m.payment),
		TicketHandler:    handler.NewTicketHandler(m.ticket),
		VisitHandler:     handler.NewVisitHandler(m.visit),
		LegalHandler:     handler.NewLegalHandler(m.legal),
		TemplateHandler:  handler.NewTemplateHandler(m.template),
		DashboardHandler: handler.NewDashboardHandler(m.dashboard),
		AdminHandler:     handler.NewAdminHandler(m.user),
		JWTManager:       jwtMgr,
		AuthRateLimitRPM: 1000,
		APIRateLimitRPM:  1000,
	})
	return h, jwtMgr, m
}

func signToken(t *testing.T, mgr *security.JWTManager, userID uint, role domain.Role) string {
	t.Helper()
	token, err := mgr.SignAccessToken(userID, role, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func authenticate(req *http.Request, token string) {
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
}

func withCSRF(req *http.Request) {
	req.AddCookie(&http.Cookie{Name: "csrf_token", Value: "csrf-test-token"})
	req.Header.Set("X-CSRF-Token", "csrf-test-token")
}

func TestUnauthenticatedRequestIs401BeforeAnyServiceCall(t *testing.T) {
	h, _, m := newTestRouter(t)
	m.property.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
	var envelope struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(w.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if envelope.Success {
		t.Fatal("expected success=false in error envelope")
	}
}

func TestTenantCannotCreatePropertyAndServiceIsNeverCalled(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	m.property.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	token := signToken(t, mgr, 7, domain.RoleTenant)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", nil)
	authenticate(req, token)
	withCSRF(req)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}

func TestProviderCannotReadContractsButCanUpdateTicketStatus(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	token := signToken(t, mgr, 9, domain.RoleProvider)

	m.ticket.EXPECT().
		UpdateStatus(gomock.Any(), repository.Caller{ID: 9, Role: domain.RoleProvider}, uint(4), domain.TicketStatusInProgress).
		Return(&service.TicketView{ID: 4, Status: domain.TicketStatusInProgress}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/4/status",
		jsonReader(`{"status":"in_progress"}`))
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, token)
	withCSRF(req)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	m.ticket.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	req = httptest.NewRequest(http.MethodPost, "/api/v1/tickets/4/assign",
		jsonReader(`{"provider_id":9}`))
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, token)
	withCSRF(req)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for provider assigning tickets, got %d", w.Code)
	}
}

func TestOwnerExportsContractsAsCSV(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	caller := repository.Caller{ID: 3, Role: domain.RoleOwner}
	m.contract.EXPECT().
		ExportRows(gomock.Any(), caller, repository.ContractFilter{}).
		Return([][]string{{"1", "Depto Ñuñoa", "Carolina Reyes", "Matías Fuentes", "Sin asignar", "active", "650000", "2026-01-01", "2026-12-31"}}, nil)
	m.contract.EXPECT().
		ExportHeader().
		Return([]string{"contract_id", "property", "owner", "tenant", "broker", "status", "rent_amount", "start_date", "end_date"})

	token := signToken(t, mgr, 3, domain.RoleOwner)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/contracts/export?format=csv", nil)
	authenticate(req, token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/csv; charset=utf-8" {
		t.Fatalf("unexpected content type %q", ct)
	}
}

func TestZeroLimitIsRejectedThroughTheFullStack(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	m.property.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	token := signToken(t, mgr, 3, domain.RoleOwner)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?limit=0", nil)
	authenticate(req, token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestCSRFMissingHeaderBlocksStateChangingRequest(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	m.property.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	token := signToken(t, mgr, 3, domain.RoleOwner)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties",
		jsonReader(`{"title":"Casa","address":"Calle 1","rent_amount":500000}`))
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing csrf token, got %d", w.Code)
	}
}

func TestOwnerCannotReachAdminRoutes(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	m.user.EXPECT().ListPaged(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	token := signToken(t, mgr, 3, domain.RoleOwner)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	authenticate(req, token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", w.Code)
	}
}

func TestSupportReadsAdminUsersButCannotChangeRoles(t *testing.T) {
	h, mgr, m := newTestRouter(t)
	token := signToken(t, mgr, 11, domain.RoleSupport)

	m.user.EXPECT().
		ListPaged(gomock.Any(), repository.UserFilter{}, repository.PageRequest{Page: 1, Limit: 20}).
		Return(repository.PageResult[domain.User]{Items: []domain.User{}, Page: 1, Limit: 20}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)
	authenticate(req, token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	m.user.EXPECT().SetRole(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	req = httptest.NewRequest(http.MethodPut, "/api/v1/admin/users/5/role", jsonReader(`{"role":"ADMIN"}`))
	req.Header.Set("Content-Type", "application/json")
	authenticate(req, token)
	withCSRF(req)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for support changing roles, got %d", w.Code)
	}
}
