package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/logger"
)

// withLogging writes one entry when a request arrives and one when its
// response is done. The second entry is deferred, so it is written exactly
// once even if a downstream handler panics; the panic is then re-raised.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Msg("request received")

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			rec := recover()

			status := lw.status
			switch {
			case rec != nil:
				status = http.StatusInternalServerError
			case status == 0:
				status = http.StatusOK
			}

			log.Info().
				Str("uri", uri).
				Str("method", method).
				Int("status", status).
				Dur("duration", time.Since(start)).
				Int("size", lw.size).
				Msg("response sent")

			if rec != nil {
				panic(rec)
			}
		}()

		next.ServeHTTP(lw, r)
	})
}
