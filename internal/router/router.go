package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/indigo-rhapsody/indigo-admin/internal/middleware"
	"github.com/indigo-rhapsody/indigo-admin/internal/middleware/metrics"
	"github.com/indigo-rhapsody/indigo-admin/internal/setup"
)

const loginThrottled = "Too many login attempts. Please wait a minute and try again."

func SetupRouter(deps *setup.Dependencies) http.Handler {
	h := deps.Handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(deps.Public.SecureCookies, middleware.AdminCSP))

	// Outside the session and CSRF stack.
	r.Get("/healthz", healthz)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))

	r.Group(func(r chi.Router) {
		r.Use(middleware.GenerateCSRFToken(middleware.CSRFConfig{SecureCookies: deps.Public.SecureCookies}))
		r.Use(middleware.ValidateCSRFToken())
		r.Use(deps.Auth.LoadSession)

		r.Get("/", redirectToLogin)
		r.Get("/login", h.LoginGetHandler)
		r.With(middleware.RateLimit(deps.LoginLimiter, middleware.GetIP, func(w http.ResponseWriter, r *http.Request) {
			h.LoginThrottled(w, r, loginThrottled)
		})).Post("/login", h.LoginPostHandler)
		r.Post("/logout", h.LogoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.NeedAuth)

			r.Get("/dashboard", h.DashboardHandler)
			r.Get("/blogs/{id}/preview", h.BlogPreviewHandler)

			r.Get("/{table}", h.TableHandler)
			r.Post("/{table}", h.CreateHandler)
			r.Get("/{table}/new", h.NewHandler)
			r.Get("/{table}/{id}/edit", h.EditHandler)
			r.Post("/{table}/{id}/edit", h.UpdateHandler)
			r.Post("/{table}/{id}/{action}", h.ActionHandler)
		})

		r.Route("/api", func(r chi.Router) {
			// Preflight requests carry no cookies, so CORS runs before the auth gate.
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins:   deps.Public.CORSOrigins,
				AllowedMethods:   []string{http.MethodGet, http.MethodPost},
				AllowedHeaders:   []string{"Accept", "Content-Type", middleware.CSRFHeader},
				AllowCredentials: true,
				MaxAge:           300,
			}))
			r.Use(deps.Auth.NeedAuth)

			r.Get("/tables/{table}/rows", h.RowsAPIHandler)
			r.Post("/markdown/preview", h.MarkdownPreviewHandler)
			r.MethodNotAllowed(methodNotAllowed)
		})
	})

	r.NotFound(redirectToLogin)
	r.MethodNotAllowed(pageMethodNotAllowed)
	return r
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// pageMethodNotAllowed treats a GET on a POST-only page pattern such as
// /{table}/{id}/{action} as an unknown page.
func pageMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		redirectToLogin(w, r)
		return
	}
	methodNotAllowed(w, r)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
