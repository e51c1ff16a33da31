package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"dev.rubentxu.step7-service/internal/core/ports"
	"dev.rubentxu.step7-service/internal/core/usecase"
)

// RequestIDHeader es la cabecera de metadata con el identificador de la petición.
const RequestIDHeader = "x-request-id"

// LoggingInterceptor registra cada RPC con su duración y código gRPC, y deja
// la dirección del cliente en el contexto para el diario de llamadas.
func LoggingInterceptor(logger ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		requestID := requestIDFrom(ctx)

		addr := ""
		if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
			addr = p.Addr.String()
		}
		ctx = usecase.WithPeer(ctx, addr)
		_ = grpc.SetHeader(ctx, metadata.Pairs(RequestIDHeader, requestID))

		resp, err := handler(ctx, req)

		fields := []interface{}{
			"method", info.FullMethod,
			"request_id", requestID,
			"peer", addr,
			"code", status.Code(err).String(),
			"duration", time.Since(start).String(),
		}
		if err != nil {
			logger.Error("rpc failed", append(fields, "error", err)...)
		} else {
			logger.Info("rpc handled", fields...)
		}
		return resp, err
	}
}

func requestIDFrom(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(RequestIDHeader); len(ids) > 0 && ids[0] != "" {
			return ids[0]
		}
	}
	return uuid.NewString()
}
