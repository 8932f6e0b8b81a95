package http

import (
	"github.com/MKhiriev/go-api-starter/internal/config"
	"github.com/MKhiriev/go-api-starter/internal/docs"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/metrics"
	"github.com/MKhiriev/go-api-starter/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.Server
	metrics  *metrics.Metrics
	spec     *docs.Document
	limiter  *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, m *metrics.Metrics, spec *docs.Document, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		metrics:  m,
		spec:     spec,
		limiter:  newIPRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst, visitorTTL),
		logger:   logger,
	}
}

// SweepRateLimiter forgets clients that have been idle longer than the
// visitor TTL. It is run periodically by a background worker.
func (h *Handler) SweepRateLimiter() int {
	return h.limiter.sweep()
}
