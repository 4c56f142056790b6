package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/arriendohq/arriendo/internal/domain"
	"github.com/arriendohq/arriendo/internal/health"
	"github.com/arriendohq/arriendo/internal/http/handler"
	"github.com/arriendohq/arriendo/internal/http/middleware"
	"github.com/arriendohq/arriendo/internal/http/response"
	"github.com/arriendohq/arriendo/internal/security"
)

// Named so the injector can tell the two limiter providers apart.
type (
	GlobalRateLimiterFunc func(http.Handler) http.Handler
	AuthRateLimiterFunc   func(http.Handler) http.Handler
)

type Dependencies struct {
	AuthHandler      *handler.AuthHandler
	PropertyHandler  *handler.PropertyHandler
	ContractHandler  *handler.ContractHandler
	PaymentHandler   *handler.PaymentHandler
	TicketHandler    *handler.TicketHandler
	VisitHandler     *handler.VisitHandler
	LegalHandler     *handler.LegalHandler
	TemplateHandler  *handler.TemplateHandler
	DashboardHandler *handler.DashboardHandler
	AdminHandler     *handler.AdminHandler

	JWTManager *security.JWTManager

	CORSOrigins        []string
	AuthRateLimitRPM   int
	APIRateLimitRPM    int
	GlobalRateLimiter  GlobalRateLimiterFunc
	AuthRateLimiter    AuthRateLimiterFunc
	Readiness          *health.ProbeRunner
	EnableOTelHTTP     bool
	PhotoUploadMaxSize int64
}

const defaultPhotoUploadMaxSize = 10 << 20

// NewRouter wires the middleware chain and the role-gated route tree. Role
// gates sit in front of every handler so a mismatched role is rejected before
// any repository work happens; row visibility inside an allowed role is the
// repository scope's job.
func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.StructuredRequestLogger)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(dep.CORSOrigins))
	r.Use(middleware.BodyLimit(1 << 20))
	if dep.GlobalRateLimiter != nil {
		r.Use(dep.GlobalRateLimiter)
	} else {
		r.Use(middleware.NewRateLimiter(dep.APIRateLimitRPM, time.Minute).Middleware())
	}

	authLimiter := dep.AuthRateLimiter
	if authLimiter == nil {
		authLimiter = middleware.NewRateLimiter(dep.AuthRateLimitRPM, time.Minute).Middleware()
	}
	authn := middleware.AuthMiddleware(dep.JWTManager)
	photoUploadMax := dep.PhotoUploadMaxSize
	if photoUploadMax <= 0 {
		photoUploadMax = defaultPhotoUploadMaxSize
	}

	r.Get("/health/live", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if dep.Readiness == nil {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": []any{}})
			return
		}
		ready, results := dep.Readiness.Ready(r.Context())
		if ready {
			response.JSON(w, r, http.StatusOK, map[string]any{"status": "ready", "checks": results})
			return
		}
		response.Error(w, r, http.StatusServiceUnavailable, "dependencies are not ready", nil)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(authLimiter).Post("/register", dep.AuthHandler.Register)
			r.With(authLimiter).Post("/login", dep.AuthHandler.Login)
			r.With(authLimiter).Get("/google/login", dep.AuthHandler.GoogleLoginURL)
			r.With(authLimiter).Get("/google/callback", dep.AuthHandler.GoogleCallback)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(authLimiter).Post("/refresh", dep.AuthHandler.Refresh)
				r.With(authn).Post("/logout", dep.AuthHandler.Logout)
				r.With(authn, authLimiter).Post("/change-password", dep.AuthHandler.ChangePassword)
			})
			r.With(authn).Get("/me", dep.AuthHandler.Me)
			r.With(authn, middleware.CSRFMiddleware).Patch("/me", dep.AuthHandler.UpdateMe)
		})

		r.Route("/properties", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", dep.PropertyHandler.List)
			r.Get("/{id}", dep.PropertyHandler.GetByID)
			r.Get("/{id}/photos", dep.PropertyHandler.Photos)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
					Post("/", dep.PropertyHandler.Create)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleBroker, domain.RoleAdmin)).
					Put("/{id}", dep.PropertyHandler.Update)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
					Delete("/{id}", dep.PropertyHandler.Delete)
				// Photo upload needs more room than the global body limit.
				r.With(
					middleware.RequireRoles(domain.RoleOwner, domain.RoleBroker, domain.RoleAdmin),
					middleware.BodyLimit(photoUploadMax),
				).Post("/{id}/photos", dep.PropertyHandler.UploadPhoto)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
					Delete("/{id}/photos", dep.PropertyHandler.DeletePhoto)
			})
		})

		r.Route("/contracts", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", dep.ContractHandler.List)
			r.Get("/export", dep.ContractHandler.Export)
			r.Get("/{id}", dep.ContractHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleBroker, domain.RoleAdmin)).
					Post("/", dep.ContractHandler.Create)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
					Post("/{id}/terminate", dep.ContractHandler.Terminate)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", dep.PaymentHandler.List)
			r.Get("/trend", dep.PaymentHandler.Trend)
			r.Get("/{id}", dep.PaymentHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(middleware.RequireRoles(domain.RoleTenant, domain.RoleOwner, domain.RoleAdmin)).
					Post("/", dep.PaymentHandler.Create)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin)).
					Post("/{id}/pay", dep.PaymentHandler.MarkPaid)
			})
		})

		r.Route("/tickets", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", dep.TicketHandler.List)
			r.Get("/{id}", dep.TicketHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(middleware.RequireRoles(domain.RoleTenant, domain.RoleOwner, domain.RoleAdmin)).
					Post("/", dep.TicketHandler.Create)
				r.With(middleware.RequireRoles(domain.RoleOwner, domain.RoleAdmin, domain.RoleSupport)).
					Post("/{id}/assign", dep.TicketHandler.AssignProvider)
				r.With(middleware.RequireProvider()).
					Post("/{id}/status", dep.TicketHandler.UpdateStatus)
			})
		})

		r.Route("/visits", func(r chi.Router) {
			r.Use(authn)
			r.Use(middleware.RequireRoles(domain.RoleOwner, domain.RoleBroker, domain.RoleAdmin, domain.RoleSupport))
			r.Get("/", dep.VisitHandler.List)
			r.Get("/{id}", dep.VisitHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.With(middleware.RequireRoles(domain.RoleBroker, domain.RoleOwner, domain.RoleAdmin)).
					Post("/", dep.VisitHandler.Schedule)
				r.With(middleware.RequireRoles(domain.RoleBroker, domain.RoleAdmin)).
					Post("/{id}/complete", dep.VisitHandler.Complete)
				r.With(middleware.RequireRoles(domain.RoleBroker, domain.RoleAdmin)).
					Post("/{id}/cancel", dep.VisitHandler.Cancel)
			})
		})

		r.Route("/legal-cases", func(r chi.Router) {
			r.Use(authn)
			r.Get("/", dep.LegalHandler.List)
			r.Get("/{id}", dep.LegalHandler.GetByID)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.Use(middleware.RequireCrossTenant())
				r.Post("/", dep.LegalHandler.Open)
				r.Post("/{id}/assign", dep.LegalHandler.AssignHandler)
				r.Post("/{id}/close", dep.LegalHandler.Close)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Use(authn)
			r.Use(middleware.RequireRoles(domain.RoleAdmin))
			r.Get("/", dep.TemplateHandler.List)
			r.Get("/{key}", dep.TemplateHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.Put("/{key}", dep.TemplateHandler.Save)
				r.Delete("/{key}", dep.TemplateHandler.Delete)
				r.Post("/{key}/preview", dep.TemplateHandler.Preview)
			})
		})

		r.With(authn).Get("/dashboard", dep.DashboardHandler.Summary)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authn)
			r.Use(middleware.RequireCrossTenant())
			r.Get("/users", dep.AdminHandler.ListUsers)
			r.Get("/users/{id}", dep.AdminHandler.GetUser)
			r.Group(func(r chi.Router) {
				r.Use(middleware.CSRFMiddleware)
				r.Use(middleware.RequireRoles(domain.RoleAdmin))
				r.Put("/users/{id}/role", dep.AdminHandler.SetUserRole)
				r.Put("/users/{id}/status", dep.AdminHandler.SetUserStatus)
			})
		})
	})

	var h http.Handler = r
	if dep.EnableOTelHTTP {
		h = otelhttp.NewHandler(r, "http.server")
	}
	return h
}
