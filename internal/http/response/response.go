// Package response owns the one envelope every endpoint emits:
// {"success":true,"data":...} on success, {"success":false,"error":...} on
// failure. Pagination is normalized to {page,limit,total,pages} here; no
// handler ships its own variant.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`

	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func JSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	write(w, r, status, envelope{Success: true, Data: data})
}

func Paginated(w http.ResponseWriter, r *http.Request, status int, data any, p Pagination) {
	write(w, r, status, envelope{Success: true, Data: data, Pagination: &p})
}

// Error emits the failure envelope. msg must already be client-safe; callers
// log internal detail before reaching here.
func Error(w http.ResponseWriter, r *http.Request, status int, msg string, details []string) {
	write(w, r, status, envelope{Success: false, Error: msg, Details: details})
}

func write(w http.ResponseWriter, r *http.Request, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(r.Context(), "response encode failed", "path", r.URL.Path, "error", err)
	}
}
