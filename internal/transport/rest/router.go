package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/labsample-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Me      *MeHandler
	Samples *SampleHandler
	Tags    *TagHandler
	Audit   *AuditHandler
	Reports *ReportHandler
	Users   *UserAdminHandler
}

// RouterConfig carries the middleware applied around the routes.
// Global wraps everything, Authenticate wraps /api, and AuthLimit wraps
// the public login and register endpoints.
type RouterConfig struct {
	Global       []middleware.Middleware
	Authenticate middleware.Middleware
	AuthLimit    middleware.Middleware
}

// NewRouter builds the chi router for the whole HTTP surface.
func NewRouter(h Handlers, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(cfg.Global...))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(cfg.AuthLimit))
			r.Post("/auth/login", h.Auth.Login)
			r.Post("/auth/register", h.Auth.Register)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(cfg.Authenticate))

			r.Get("/me", h.Me.Get)
			r.Put("/me", h.Me.Update)

			r.Route("/samples", func(r chi.Router) {
				r.Get("/", h.Samples.List)
				r.Post("/", h.Samples.Create)
				r.Get("/export", h.Samples.Export)
				r.Route("/{number}", func(r chi.Router) {
					r.Get("/", h.Samples.Get)
					r.Put("/", h.Samples.Update)
					r.Delete("/", h.Samples.Delete)
					r.Post("/actions", h.Samples.Action)
				})
			})

			r.Route("/tags", func(r chi.Router) {
				r.Get("/", h.Tags.List)
				r.Post("/", h.Tags.Create)
				r.Patch("/{uid}", h.Tags.Patch)
				r.Delete("/{uid}", h.Tags.Delete)
			})

			r.Get("/audit", h.Audit.List)

			r.Get("/reports", h.Reports.Get)
			r.Get("/reports/export/{format}", h.Reports.Export)

			r.Route("/admin/users", func(r chi.Router) {
				r.Get("/", h.Users.List)
				r.Post("/", h.Users.Create)
				r.Put("/{id}", h.Users.Update)
				r.Post("/{id}/toggle-active", h.Users.ToggleActive)
				r.Post("/{id}/reset-password", h.Users.ResetPassword)
			})
		})
	})

	return r
}
