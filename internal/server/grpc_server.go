package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/oggyb/interview-match/internal/auth"
	"github.com/oggyb/interview-match/internal/config"
	"github.com/oggyb/interview-match/internal/logger"
)

// NewGRPCServer builds a gRPC server with logging (and, when a JWT secret is
// configured, auth) interceptors, the health service and reflection, and
// registers all provided services.
func NewGRPCServer(cfg *config.Config, registrars ...Registrar) (*grpc.Server, *health.Server) {
	interceptors := []grpc.UnaryServerInterceptor{LoggingInterceptor()}
	if cfg.Auth.JWTSecret != "" {
		interceptors = append(interceptors, auth.NewVerifier(cfg.Auth.JWTSecret).UnaryInterceptor())
	}

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors...))

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	for name := range grpcServer.GetServiceInfo() {
		healthServer.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return grpcServer, healthServer
}

// StartGRPCServer boots a gRPC server and blocks until ctx is cancelled or
// serving fails. Cancellation drains in-flight calls.
func StartGRPCServer(ctx context.Context, cfg *config.Config, registrars ...Registrar) error {
	addr := fmt.Sprintf("%s:%s", cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer, healthServer := NewGRPCServer(cfg, registrars...)

	go func() {
		<-ctx.Done()
		healthServer.Shutdown()
		grpcServer.GracefulStop()
	}()

	return grpcServer.Serve(lis)
}

// LoggingInterceptor logs every unary call with its status code and latency.
func LoggingInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		code := status.Code(err)
		args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
		if err != nil {
			logger.L().WarnContext(ctx, "grpc call failed", append(args, "err", err)...)
		} else {
			logger.L().DebugContext(ctx, "grpc call", args...)
		}
		return resp, err
	}
}
