package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter creates a new Chi router with all middleware and routes.
// Static routes are registered alongside the catch-all /{slug} redirect;
// chi matches them with higher priority than the parameter route.
func NewRouter(handler *Handler, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware chain
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)
	r.Post("/webhook", handler.Webhook)

	r.Get("/qr", handler.QRData)
	r.Get("/qr/{uniqueID}", handler.QRImage)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/form", handler.AdminForm)
		r.Post("/form", handler.AdminForm)
		r.Get("/entries", handler.AdminEntries)
	})

	// Redirect routes, both path shapes
	r.Get("/redirect/{slug}", handler.Redirect)
	r.Get("/{slug}", handler.Redirect)

	return r
}
