package server

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"dev.rubentxu.step7-service/internal/adapters/grpc/protos/step7"
	"dev.rubentxu.step7-service/internal/core/ports"
)

// NewGRPCServer crea el servidor gRPC con los servicios Step7, health y
// reflection registrados.
func NewGRPCServer(executor Executor, logger ports.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(LoggingInterceptor(logger.With("component", "grpc_server"))),
	}, opts...)

	srv := grpc.NewServer(opts...)
	step7.RegisterStep7Server(srv, NewStep7Server(executor))

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)
	healthSrv.SetServingStatus(step7.ServiceName, healthpb.HealthCheckResponse_SERVING)

	reflection.Register(srv)
	return srv, healthSrv
}
