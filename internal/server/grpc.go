package server

import (
	"errors"
	"fmt"
	"net"

	"github.com/MKhiriev/go-api-starter/internal/config"
	myGRPC "github.com/MKhiriev/go-api-starter/internal/handler/grpc"
	"github.com/MKhiriev/go-api-starter/internal/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	address         string
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)
	reflection.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) Listen() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	g.gRPCNetListener = listener
	g.logger.Info().Str("addr", listener.Addr().String()).Msg("gRPC server listening")
	return nil
}

func (g *grpcServer) RunServer() error {
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.handler.Shutdown()
	g.server.GracefulStop()
	g.logger.Info().Msg("gRPC server Shutdown")
}

func (g *grpcServer) Addr() string {
	if g.gRPCNetListener == nil {
		return g.address
	}
	return g.gRPCNetListener.Addr().String()
}

func (g *grpcServer) Close() error {
	if g.gRPCNetListener == nil {
		return nil
	}
	return g.gRPCNetListener.Close()
}
