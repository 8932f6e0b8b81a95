package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// allowedMethods are the methods the API serves. CORS advertises them and
// metrics labels every other method as "other".
var allowedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// withCORS answers preflight requests and adds CORS headers for the
// configured origins.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: allowedMethods,
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         corsMaxAge,
	})
}
