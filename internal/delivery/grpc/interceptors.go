package grpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kerim-dauren/hostname/internal/infrastructure/metrics"
)

func loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	duration := time.Since(start)
	metrics.RequestDuration.WithLabelValues("grpc", info.FullMethod).Observe(duration.Seconds())

	code := status.Code(err)

	switch {
	case err == nil:
		slog.Info("gRPC request completed",
			"method", info.FullMethod,
			"duration", duration.String(),
			"code", code.String())
	case code == codes.InvalidArgument:
		slog.Warn("gRPC request rejected",
			"method", info.FullMethod,
			"duration", duration.String(),
			"code", code.String(),
			"error", err.Error())
	default:
		slog.Error("gRPC request failed",
			"method", info.FullMethod,
			"duration", duration.String(),
			"code", code.String(),
			"error", err.Error())
	}

	return resp, err
}

func recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("gRPC request panicked",
				"method", info.FullMethod,
				"panic", r)

			err = status.Error(codes.Internal, "Internal server error")
		}
	}()

	return handler(ctx, req)
}
