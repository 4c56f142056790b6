package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLocalFixedWindowLimiter(t *testing.T) {
	limiter := NewLocalFixedWindowLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, _, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
		if err != nil || !allowed {
			t.Fatalf("request %d: allowed=%v err=%v", i, allowed, err)
		}
	}
	allowed, retryAfter, err := limiter.Allow(ctx, "1.2.3.4", 3, time.Minute)
	if err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if allowed {
		t.Fatal("expected fourth request denied")
	}
	if retryAfter <= 0 {
		t.Fatalf("expected positive retry-after, got %v", retryAfter)
	}

	// A different key has its own window.
	if allowed, _, _ := limiter.Allow(ctx, "5.6.7.8", 3, time.Minute); !allowed {
		t.Fatal("expected other key to be allowed")
	}
}

func TestRateLimiterMiddlewareRejectsWithRetryAfter(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.RemoteAddr = "10.0.0.1:4321"

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int, time.Duration) (bool, time.Duration, error) {
	return false, 0, errors.New("backend down")
}

func TestRateLimiterFailureModes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	req.RemoteAddr = "10.0.0.1:4321"

	t.Run("fail open lets the request through", func(t *testing.T) {
		rl := NewDistributedRateLimiter(failingLimiter{}, 10, time.Minute, FailOpen, "api")
		rr := httptest.NewRecorder()
		rl.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rr, req)
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
	})

	t.Run("fail closed rejects", func(t *testing.T) {
		rl := NewDistributedRateLimiter(failingLimiter{}, 10, time.Minute, FailClosed, "api")
		rr := httptest.NewRecorder()
		rl.Middleware()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run in fail-closed mode")
		})).ServeHTTP(rr, req)
		if rr.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rr.Code)
		}
	})
}
