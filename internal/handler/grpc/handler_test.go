package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/go-api-starter/internal/logger"
	"github.com/MKhiriev/go-api-starter/internal/mock"
	"github.com/MKhiriev/go-api-starter/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockHealthService) {
	t.Helper()

	healthSvc := mock.NewMockHealthService(gomock.NewController(t))
	h := NewHandler(&service.Services{HealthService: healthSvc}, logger.Nop())
	return h, healthSvc
}

func status(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestRefreshHealth(t *testing.T) {
	h, healthSvc := newTestHandler(t)

	healthSvc.EXPECT().Check(gomock.Any()).Return(nil)
	require.NoError(t, h.RefreshHealth(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, h, ServiceName))

	down := errors.New("db down")
	healthSvc.EXPECT().Check(gomock.Any()).Return(down)
	assert.ErrorIs(t, h.RefreshHealth(context.Background()), down)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestShutdown_ReportsNotServing(t *testing.T) {
	h, healthSvc := newTestHandler(t)

	healthSvc.EXPECT().Check(gomock.Any()).Return(nil).Times(2)
	require.NoError(t, h.RefreshHealth(context.Background()))

	h.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))

	// updates after shutdown are ignored
	require.NoError(t, h.RefreshHealth(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, h, ServiceName))
}

func TestRegister_ServesHealthOverGRPC(t *testing.T) {
	h, healthSvc := newTestHandler(t)
	healthSvc.EXPECT().Check(gomock.Any()).Return(nil)
	require.NoError(t, h.RefreshHealth(context.Background()))

	listener := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(listener) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	_, err = healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: "unknown"})
	assert.Error(t, err)
}
