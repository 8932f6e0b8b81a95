package http

import (
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	unmatchedRoute = "unmatched"
	otherMethod    = "other"
)

// withMetrics records request count, latency and response size labelled by
// method and chi route pattern, so neither path parameters nor invented
// methods grow the label set.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.metrics.RequestsInFlight.Inc()
		defer h.metrics.RequestsInFlight.Dec()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		defer func() {
			status := mw.status
			if status == 0 {
				status = http.StatusOK
			}

			method, route := methodLabel(r.Method), routePattern(r)
			h.metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			h.metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			h.metrics.ResponseSize.WithLabelValues(method, route).Observe(float64(mw.size))
		}()

		next.ServeHTTP(mw, r)
	})
}

// methodLabel keeps the label set bounded: clients may send any method.
func methodLabel(method string) string {
	if slices.Contains(allowedMethods, method) {
		return method
	}
	return otherMethod
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return unmatchedRoute
}
