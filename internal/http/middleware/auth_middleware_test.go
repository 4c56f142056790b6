package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/security"
)

func newJWTManagerForTest() *security.JWTManager {
	return security.NewJWTManager("arriendo-test", "arriendo-api", "access-secret-for-tests", "refresh-secret-for-tests")
}

func TestAuthMiddlewareRejectsMissingAndInvalidTokens(t *testing.T) {
	mw := AuthMiddleware(newJWTManagerForTest())

	cases := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"no credentials", func(r *http.Request) {}},
		{"garbage cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "access_token", Value: "not-a-jwt"})
		}},
		{"garbage bearer", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer not-a-jwt")
		}},
		{"wrong signing key", func(r *http.Request) {
			other := security.NewJWTManager("arriendo-test", "arriendo-api", "other-secret", "other-refresh")
			token, err := other.SignAccessToken(1, domain.RoleOwner, time.Minute)
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			r.Header.Set("Authorization", "Bearer "+token)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
			tc.setup(req)
			rr := httptest.NewRecorder()

			mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				t.Fatal("expected middleware to block request")
			})).ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
		})
	}
}

func TestAuthMiddlewareResolvesCallerFromCookie(t *testing.T) {
	jwtMgr := newJWTManagerForTest()
	token, err := jwtMgr.SignAccessToken(7, domain.RoleBroker, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	rr := httptest.NewRecorder()

	called := false
	AuthMiddleware(jwtMgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		caller, ok := CallerFromContext(r.Context())
		if !ok {
			t.Fatal("expected caller in context")
		}
		if caller.ID != 7 || caller.Role != domain.RoleBroker {
			t.Fatalf("unexpected caller: %+v", caller)
		}
	})).ServeHTTP(rr, req)

	if !called {
		t.Fatal("expected handler to run")
	}
}

func TestAuthMiddlewareAcceptsBearerHeader(t *testing.T) {
	jwtMgr := newJWTManagerForTest()
	token, err := jwtMgr.SignAccessToken(3, domain.RoleTenant, time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	AuthMiddleware(jwtMgr)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, _ := CallerFromContext(r.Context())
		if caller.Role != domain.RoleTenant {
			t.Fatalf("unexpected caller: %+v", caller)
		}
		w.WriteHeader(http.StatusOK)
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	jwtMgr := newJWTManagerForTest()
	token, err := jwtMgr.SignAccessToken(7, domain.RoleOwner, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	AuthMiddleware(jwtMgr)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("expected expired token to be rejected")
	})).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
