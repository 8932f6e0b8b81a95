package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-starter/internal/utils"
	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID puts a logger carrying trace_id into the request context and
// echoes the ID in the response. A client supplied ID is kept only when it
// passes [utils.IsTraceID]; otherwise a fresh one replaces it, also on the
// request header seen by later handlers.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !utils.IsTraceID(traceID) {
			traceID = utils.NewTraceID()
			r.Header.Set(traceIDHeader, traceID)
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
