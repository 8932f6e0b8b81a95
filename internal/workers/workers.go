package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-api-starter/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Add registers more workers. It must not be called while Run is active.
func (w *Workers) Add(workers ...Worker) {
	w.workers = append(w.workers, workers...)
}

// Run starts every worker in its own goroutine and waits for all of them to
// return. Worker errors are joined; cancellation errors are dropped.
func (w *Workers) Run(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for _, worker := range w.workers {
		wg.Go(func() {
			w.logger.Info().Str("worker", worker.Name()).Msg("worker started")

			err := worker.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				w.logger.Err(err).Str("worker", worker.Name()).Msg("worker stopped with error")
				mu.Lock()
				errs = append(errs, fmt.Errorf("worker %s: %w", worker.Name(), err))
				mu.Unlock()
				return
			}

			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
		})
	}

	wg.Wait()

	return errors.Join(errs...)
}
