package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/craftops/atelier/internal/logging"
)

// NewRouter constructs the HTTP handler serving the Atelier API.
//
// Routes:
//
//	POST /api/auth/register       → authHandler.Register
//	POST /api/auth/login          → authHandler.Login
//	GET  /api/auth/me             → authHandler.Me       (bearer)
//	POST /api/auth/logout         → authHandler.Logout   (bearer)
//	GET  /api/dashboard/summary       → dashHandler.Summary     (bearer)
//	GET  /api/dashboard/sales-chart   → dashHandler.SalesChart  (bearer)
//	GET  /api/dashboard/top-products  → dashHandler.TopProducts (bearer)
func NewRouter(authHandler *AuthHandler, dashHandler *DashboardHandler, secretKey []byte, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(withRequestLogging(logger))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(BearerAuth(secretKey))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
			})
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Use(BearerAuth(secretKey))
			r.Get("/summary", dashHandler.Summary)
			r.Get("/sales-chart", dashHandler.SalesChart)
			r.Get("/top-products", dashHandler.TopProducts)
		})
	})

	return r
}

// withRequestLogging logs method, path, status and latency of every request.
func withRequestLogging(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			)
		})
	}
}
