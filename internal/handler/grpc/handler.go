// Package grpc exposes the standard gRPC health checking protocol for the
// API so that orchestrators can probe the process without going through HTTP.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported next to the overall ("")
// server status.
const ServiceName = "go-api-starter"

// Handler is the root gRPC transport handler.
//
// The serving status it publishes is refreshed from [service.HealthService]
// by a periodic worker; see [Handler.RefreshHealth].
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// RefreshHealth checks the service dependencies and publishes SERVING or
// NOT_SERVING. The check error is returned so the caller can log it.
func (h *Handler) RefreshHealth(ctx context.Context) error {
	status := healthpb.HealthCheckResponse_SERVING
	err := h.services.HealthService.Check(ctx)
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)

	return err
}

// Shutdown reports NOT_SERVING for every service and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
