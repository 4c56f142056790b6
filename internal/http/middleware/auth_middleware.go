package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
	"github.com/arriendohq/arriendo/internal/repository"
	"github.com/arriendohq/arriendo/internal/security"
)

type contextKey string

const CallerContextKey contextKey = "caller"

// AuthMiddleware resolves the caller from the access_token cookie or a Bearer
// header and rejects before any handler, and therefore any query, runs.
func AuthMiddleware(jwtMgr *security.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			source := "cookie"
			raw := security.GetCookie(r, "access_token")
			if raw == "" {
				source = "header"
				auth := r.Header.Get("Authorization")
				if strings.HasPrefix(strings.ToLower(auth), "bearer ") {
					raw = strings.TrimSpace(auth[7:])
				}
			}
			if raw == "" {
				observability.RecordAccessTokenValidation(r.Context(), "missing", source)
				response.Error(w, r, http.StatusUnauthorized, "missing access token", nil)
				return
			}
			claims, err := jwtMgr.ParseAccessToken(raw)
			if err != nil {
				observability.RecordAccessTokenValidation(r.Context(), "invalid", source)
				response.Error(w, r, http.StatusUnauthorized, "invalid access token", nil)
				return
			}
			id64, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil || id64 == 0 {
				observability.RecordAccessTokenValidation(r.Context(), "invalid_subject", source)
				response.Error(w, r, http.StatusUnauthorized, "invalid access token", nil)
				return
			}
			observability.RecordAccessTokenValidation(r.Context(), "valid", source)
			caller := repository.Caller{ID: uint(id64), Role: claims.Role}
			ctx := context.WithValue(r.Context(), CallerContextKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func CallerFromContext(ctx context.Context) (repository.Caller, bool) {
	c, ok := ctx.Value(CallerContextKey).(repository.Caller)
	return c, ok
}
