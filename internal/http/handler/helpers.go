package handler

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/arriendohq/arriendo/internal/http/middleware"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/repository"
)

// callerFromRequest pulls the authenticated caller placed in the context by
// the auth middleware. Routes are always mounted behind it, so a miss is a
// programming error surfaced as 401 rather than a panic.
func callerFromRequest(w http.ResponseWriter, r *http.Request) (repository.Caller, bool) {
	caller, ok := middleware.CallerFromContext(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "missing auth context", nil)
		return repository.Caller{}, false
	}
	return caller, true
}

func parsePathID(input string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(input), 10, 64)
	if err != nil || n == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(n), nil
}

// parsePageRequest rejects non-positive page and limit values outright;
// page=0 or limit=0 is a client error, not something to silently clamp.
func parsePageRequest(r *http.Request) (repository.PageRequest, error) {
	page := repository.DefaultPage
	limit := repository.DefaultLimit
	if raw := strings.TrimSpace(r.URL.Query().Get("page")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("page must be a positive integer")
		}
		page = v
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return repository.PageRequest{}, errors.New("limit must be a positive integer")
		}
		if v > repository.MaxLimit {
			return repository.PageRequest{}, fmt.Errorf("limit must be <= %d", repository.MaxLimit)
		}
		limit = v
	}
	return repository.PageRequest{Page: page, Limit: limit}, nil
}

func parseDateParam(r *http.Request, name string) (time.Time, bool, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%s must be a YYYY-MM-DD date", name)
	}
	return t, true, nil
}

func parseOptionalUintParam(r *http.Request, name string) (uint, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return uint(n), nil
}

// clientIP prefers the proxy-restored RemoteAddr (the RealIP middleware runs
// first) and falls back to the raw address.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// isConflictError matches the driver-level duplicate-key text for both the
// postgres runtime and the sqlite test databases.
func isConflictError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}

func pagination[T any](res repository.PageResult[T]) response.Pagination {
	return response.Pagination{
		Page:  res.Page,
		Limit: res.Limit,
		Total: res.Total,
		Pages: res.Pages,
	}
}
