package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/observability"
)

// RequireRoles gates a route group to an allow-list of roles. The decision is
// made on the token's role claim alone: a denied request never reaches a
// handler, so nothing is read from the database on the 403 path.
func RequireRoles(roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			group := routeGroup(r.URL.Path)
			caller, ok := CallerFromContext(r.Context())
			if !ok {
				observability.RecordRoleGateDecision(r.Context(), group, "none", "missing_context")
				response.Error(w, r, http.StatusUnauthorized, "missing auth context", nil)
				return
			}
			if _, ok := allowed[caller.Role]; !ok {
				observability.RecordRoleGateDecision(r.Context(), group, string(caller.Role), "denied")
				response.Error(w, r, http.StatusForbidden, "role not permitted for this resource", nil)
				return
			}
			observability.RecordRoleGateDecision(r.Context(), group, string(caller.Role), "allowed")
			next.ServeHTTP(w, r)
		})
	}
}

// RequireCrossTenant admits only the platform-wide roles.
func RequireCrossTenant() func(http.Handler) http.Handler {
	return requirePredicate("cross_tenant", domain.IsCrossTenant)
}

// RequireProvider admits only service providers.
func RequireProvider() func(http.Handler) http.Handler {
	return requirePredicate("provider", domain.IsProviderRole)
}

func requirePredicate(name string, predicate func(domain.Role) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			group := routeGroup(r.URL.Path)
			caller, ok := CallerFromContext(r.Context())
			if !ok {
				observability.RecordRoleGateDecision(r.Context(), group, "none", "missing_context")
				response.Error(w, r, http.StatusUnauthorized, "missing auth context", nil)
				return
			}
			if !predicate(caller.Role) {
				observability.RecordRoleGateDecision(r.Context(), group, string(caller.Role), "denied_"+name)
				response.Error(w, r, http.StatusForbidden, "role not permitted for this resource", nil)
				return
			}
			observability.RecordRoleGateDecision(r.Context(), group, string(caller.Role), "allowed")
			next.ServeHTTP(w, r)
		})
	}
}

func routeGroup(rawPath string) string {
	p := strings.Trim(path.Clean(rawPath), "/")
	if p == "." || p == "" {
		return "root"
	}
	parts := strings.Split(p, "/")
	if len(parts) >= 3 && parts[0] == "api" {
		return parts[0] + "/" + parts[2]
	}
	return parts[0]
}
