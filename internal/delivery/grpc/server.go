package grpc

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"

	"github.com/kerim-dauren/hostname/internal/application"
)

const healthPollInterval = 10 * time.Second

// HealthReporter tells the health service whether the catalog is being kept
// up to date.
type HealthReporter interface {
	IsHealthy() bool
}

type ServerConfig struct {
	Host   string
	Port   int
	Health HealthReporter
}

type Server struct {
	server          *grpc.Server
	health          *health.Server
	hostnameService application.HostnameChecker
	config          ServerConfig
}

func NewServer(hostnameService application.HostnameChecker, config ServerConfig) *Server {
	keepaliveParams := keepalive.ServerParameters{
		MaxConnectionIdle:     15 * time.Second,
		MaxConnectionAge:      30 * time.Second,
		MaxConnectionAgeGrace: 5 * time.Second,
		Time:                  5 * time.Second,
		Timeout:               1 * time.Second,
	}

	keepalivePolicy := keepalive.EnforcementPolicy{
		MinTime:             5 * time.Second,
		PermitWithoutStream: true,
	}

	opts := []grpc.ServerOption{
		grpc.KeepaliveParams(keepaliveParams),
		grpc.KeepaliveEnforcementPolicy(keepalivePolicy),
		grpc.ChainUnaryInterceptor(recoveryInterceptor, loggingInterceptor),
	}

	server := grpc.NewServer(opts...)
	healthServer := health.NewServer()

	RegisterHostnameServer(server, NewHandler(hostnameService))
	healthpb.RegisterHealthServer(server, healthServer)

	s := &Server{
		server:          server,
		health:          healthServer,
		hostnameService: hostnameService,
		config:          config,
	}
	s.updateHealth()

	return s
}

func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	slog.Info("Starting gRPC server", "addr", addr)

	return s.Serve(ctx, lis)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	go func() {
		<-ctx.Done()
		slog.Info("Shutting down gRPC server...")
		s.health.Shutdown()
		s.server.GracefulStop()
	}()

	if s.config.Health != nil {
		go s.watchHealth(ctx)
	}

	if err := s.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server failed: %w", err)
	}

	return nil
}

func (s *Server) Stop() {
	if s.server != nil {
		s.health.Shutdown()
		s.server.GracefulStop()
	}
}

func (s *Server) watchHealth(ctx context.Context) {
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.updateHealth()
		}
	}
}

func (s *Server) updateHealth() {
	servingStatus := healthpb.HealthCheckResponse_SERVING
	if s.config.Health != nil && !s.config.Health.IsHealthy() {
		servingStatus = healthpb.HealthCheckResponse_NOT_SERVING
	}

	s.health.SetServingStatus("", servingStatus)
	s.health.SetServingStatus(ServiceName, servingStatus)
}
