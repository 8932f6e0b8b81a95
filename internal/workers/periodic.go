package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-api-starter/internal/logger"
)

type periodic struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger
}

// NewPeriodic returns a Worker that calls fn every interval until ctx is
// done. A failing fn is logged and retried on the next tick.
func NewPeriodic(name string, interval time.Duration, fn func(ctx context.Context) error, logger *logger.Logger) Worker {
	return &periodic{
		name:     name,
		interval: interval,
		fn:       fn,
		logger:   logger,
	}
}

func (p *periodic) Name() string {
	return p.name
}

func (p *periodic) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := p.fn(ctx); err != nil {
				p.logger.Warn().Err(err).Str("worker", p.name).Msg("periodic task failed")
			}
		}
	}
}
