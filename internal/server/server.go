package server

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-api-starter/internal/config"
	"github.com/MKhiriev/go-api-starter/internal/handler"
	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the HTTP server and, when handlers carry one, the gRPC
// server. Background workers run for the lifetime of the server.
func NewServer(handlers *handler.Handlers, w *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	servers := &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    w,
		logger:     logger,
	}
	if handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	return servers, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	for _, t := range s.transports() {
		t.Shutdown()
	}
}

func (s *server) transports() []transport {
	transports := []transport{s.httpServer}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}

func (s *server) run(ctx context.Context) error {
	if err := s.listen(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// listen binds every transport, so a taken port fails startup before any
// request is served.
func (s *server) listen() error {
	var bound []transport
	for _, t := range s.transports() {
		if err := t.Listen(); err != nil {
			for _, b := range bound {
				_ = b.Close()
			}
			return err
		}
		bound = append(bound, t)
	}
	return nil
}

// serve runs the bound transports and workers until ctx is done or a
// transport fails.
func (s *server) serve(parent context.Context) error {
	ctx, cancel := context.WithCancelCause(parent)
	defer cancel(nil)

	var wg sync.WaitGroup

	for _, t := range s.transports() {
		wg.Go(func() {
			if err := t.RunServer(); err != nil {
				s.logger.Err(err).Str("addr", t.Addr()).Msg("transport stopped")
				cancel(err)
			}
		})
	}

	var workersErr error
	if s.workers != nil {
		wg.Go(func() {
			workersErr = s.workers.Run(ctx)
		})
	}

	<-ctx.Done()
	s.logger.Info().Msg("shutting down...")

	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")

	if cause := context.Cause(ctx); cause != nil && !errors.Is(cause, context.Canceled) {
		return errors.Join(cause, workersErr)
	}
	return workersErr
}
