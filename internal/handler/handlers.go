package handler

import (
	"github.com/MKhiriev/go-api-starter/internal/config"
	"github.com/MKhiriev/go-api-starter/internal/docs"
	"github.com/MKhiriev/go-api-starter/internal/handler/grpc"
	"github.com/MKhiriev/go-api-starter/internal/handler/http"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/metrics"
	"github.com/MKhiriev/go-api-starter/internal/service"
)

// Handlers groups the transport handlers. HTTP is always present; GRPC is
// nil unless a gRPC address is configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, spec *docs.Document, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, m, spec, logger),
	}

	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers
}
