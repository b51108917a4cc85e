package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/kerim-dauren/hostname/internal/application"
	"github.com/kerim-dauren/hostname/internal/infrastructure/metrics"
)

const (
	pathValidate = "/api/v1/validate"
	pathParse    = "/api/v1/parse"
	pathMatch    = "/api/v1/match"
	pathStats    = "/api/v1/stats"
	pathHealth   = "/health"
	pathMetrics  = "/metrics"
)

type ServerConfig struct {
	Host           string
	Port           int
	MetricsEnabled bool
	// Health is optional.
	Health HealthReporter
}

type Server struct {
	server          *http.Server
	hostnameService application.HostnameChecker
	config          ServerConfig
}

func NewServer(hostnameService application.HostnameChecker, config ServerConfig) *Server {
	return &Server{
		hostnameService: hostnameService,
		config:          config,
	}
}

// Routes returns the full handler chain, middleware included.
func (s *Server) Routes() http.Handler {
	handler := NewHandler(s.hostnameService, s.config.Health)

	mux := http.NewServeMux()

	mux.HandleFunc(pathValidate, handler.Validate)
	mux.HandleFunc(pathParse, handler.Parse)
	mux.HandleFunc(pathMatch, handler.Match)
	mux.HandleFunc(pathStats, handler.GetStats)
	mux.HandleFunc(pathHealth, handler.HealthCheck)

	if s.config.MetricsEnabled {
		mux.Handle(pathMetrics, metrics.Handler())
	}

	return CORSMiddleware(LoggingMiddleware(RecoveryMiddleware(mux)))
}

func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	slog.Info("Starting REST server", "addr", addr)

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down REST server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Failed to shutdown REST server gracefully", "error", err)
		}
	}()

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("REST server failed: %w", err)
	}

	return nil
}

func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}
}
