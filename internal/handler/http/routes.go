package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order is fixed: tracing and logging
// wrap everything, panics are recovered inside them, and CORS runs before
// the security headers so preflight requests never reach a module.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		middleware.Recoverer,
		h.withCORS(),
		h.withSecurityHeaders(h.cfg.DocsRoute),
		middleware.Timeout(h.cfg.RequestTimeout),
	)

	// must be set before modules are mounted so subrouters inherit it
	router.MethodNotAllowed(CheckHTTPMethod(router))

	for _, module := range h.modules() {
		router.Route(module.Pattern(), module.Routes)
	}

	router.Get("/metrics", h.metrics.Handler().ServeHTTP)

	return router
}
