package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-starter/internal/logger"
)

type healthService struct {
	storage Pinger
	logger  *logger.Logger
}

func NewHealthService(storage Pinger, logger *logger.Logger) HealthService {
	return &healthService{storage: storage, logger: logger}
}

// Check pings the storage. The error wraps ErrStorageUnhealthy.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.storage.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*healthService.Check").Msg("storage ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnhealthy, err)
	}
	return nil
}
