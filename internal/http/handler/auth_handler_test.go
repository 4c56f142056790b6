package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/arriendohq/arriendo/internal/config"
	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/middleware"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
	"github.com/arriendohq/arriendo/internal/service"
	servicegomock "github.com/arriendohq/arriendo/internal/service/gomock"
)

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env
}

func withCaller(req *http.Request, caller repository.Caller) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), middleware.CallerContextKey, caller))
}

func newAuthHandlerForTest(t *testing.T) (*AuthHandler, *servicegomock.MockAuthService, *servicegomock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	authSvc := servicegomock.NewMockAuthService(ctrl)
	userSvc := servicegomock.NewMockUserService(ctrl)
	cfg := &config.Config{
		JWTAccessTTL:  15 * time.Minute,
		JWTRefreshTTL: 7 * 24 * time.Hour,
	}
	cookies := security.NewCookieManager("", false, "lax")
	return NewAuthHandler(cfg, authSvc, userSvc, cookies), authSvc, userSvc
}

func TestLoginSetsSessionCookies(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)

	result := &service.LoginResult{
		User:         &domain.User{ID: 4, Email: "carla@example.com", Role: domain.RoleOwner, Status: domain.UserStatusActive},
		AccessToken:  "access-jwt",
		RefreshToken: "refresh-opaque",
		CSRFToken:    "csrf-value",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
	authSvc.EXPECT().Login("carla@example.com", "Str0ng!Pass", gomock.Any(), gomock.Any()).Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"carla@example.com","password":"Str0ng!Pass"}`))
	rr := httptest.NewRecorder()
	h.Login(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	got := map[string]string{}
	for _, c := range rr.Result().Cookies() {
		got[c.Name] = c.Value
	}
	if got["access_token"] != "access-jwt" {
		t.Errorf("access_token cookie: got %q", got["access_token"])
	}
	if got["refresh_token"] != "refresh-opaque" {
		t.Errorf("refresh_token cookie: got %q", got["refresh_token"])
	}
	if got["csrf_token"] != "csrf-value" {
		t.Errorf("csrf_token cookie: got %q", got["csrf_token"])
	}
	if strings.Contains(rr.Body.String(), "access-jwt") {
		t.Error("access token must not appear in the response body")
	}
}

func TestLoginMapsCredentialAndSuspensionErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"bad credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"suspended account", service.ErrAccountSuspended, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, authSvc, _ := newAuthHandlerForTest(t)
			authSvc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
				strings.NewReader(`{"email":"x@example.com","password":"nope"}`))
			rr := httptest.NewRecorder()
			h.Login(rr, req)

			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rr.Code)
			}
			if env := decodeError(t, rr); env.Success {
				t.Error("error envelope must have success=false")
			}
		})
	}
}

func TestRegisterRejectsPrivilegedRole(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)
	authSvc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, service.ErrRoleNotAllowed)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register",
		strings.NewReader(`{"email":"a@example.com","name":"A","password":"Str0ng!Pass","role":"ADMIN"}`))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRegisterRejectsMalformedBodyWithoutServiceCall(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)
	authSvc.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	h.Register(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRefreshWithoutCookieIs401AndNeverHitsService(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)
	authSvc.EXPECT().Refresh(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestRefreshClearsCookiesOnRevokedSession(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)
	authSvc.EXPECT().Refresh("stale-token", gomock.Any(), gomock.Any()).Return(nil, repository.ErrSessionNotFound)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-token"})
	rr := httptest.NewRecorder()
	h.Refresh(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	cleared := false
	for _, c := range rr.Result().Cookies() {
		if c.Name == "refresh_token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected refresh_token cookie to be cleared")
	}
}

func TestMeReturnsProfileForCaller(t *testing.T) {
	h, _, userSvc := newAuthHandlerForTest(t)
	userSvc.EXPECT().GetByID(gomock.Any(), uint(9)).
		Return(&domain.User{ID: 9, Email: "b@example.com", Role: domain.RoleBroker}, nil)

	req := withCaller(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil),
		repository.Caller{ID: 9, Role: domain.RoleBroker})
	rr := httptest.NewRecorder()
	h.Me(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"b@example.com"`) {
		t.Errorf("expected profile email in body, got %s", rr.Body.String())
	}
}

func TestMeWithoutAuthContextIs401(t *testing.T) {
	h, _, userSvc := newAuthHandlerForTest(t)
	userSvc.EXPECT().GetByID(gomock.Any(), gomock.Any()).Times(0)

	rr := httptest.NewRecorder()
	h.Me(rr, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestChangePasswordMapsWrongCurrentPasswordTo401(t *testing.T) {
	h, authSvc, _ := newAuthHandlerForTest(t)
	authSvc.EXPECT().ChangePassword(uint(5), "wrong", "NewStr0ng!Pass").Return(service.ErrInvalidCredentials)

	req := withCaller(httptest.NewRequest(http.MethodPost, "/api/v1/auth/change-password",
		strings.NewReader(`{"current_password":"wrong","new_password":"NewStr0ng!Pass"}`)),
		repository.Caller{ID: 5, Role: domain.RoleTenant})
	rr := httptest.NewRecorder()
	h.ChangePassword(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
