package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/kerim-dauren/hostname/internal/application"
	"github.com/kerim-dauren/hostname/internal/delivery/grpc"
	"github.com/kerim-dauren/hostname/internal/delivery/rest"
	"github.com/kerim-dauren/hostname/internal/infrastructure/config"
	"github.com/kerim-dauren/hostname/internal/infrastructure/hostlist"
	"github.com/kerim-dauren/hostname/internal/infrastructure/normalizer"
	"github.com/kerim-dauren/hostname/internal/infrastructure/storage"
	"github.com/kerim-dauren/hostname/internal/infrastructure/updater"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	setupLogging(cfg.Logging)

	slog.Info("Starting hostname service", "env", cfg.Server.Env)

	hostNormalizer := normalizer.NewHostNormalizer()
	catalog := storage.NewCatalog()
	hostnameService := application.NewHostnameService(hostNormalizer, catalog)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var health rest.HealthReporter
	var scheduler *updater.Scheduler

	if sources := cfg.Sources(); len(sources) > 0 {
		clientConfig := hostlist.ClientConfig{
			Sources: sources,
			Timeout: cfg.HostList.Timeout,
			Logger:  slog.Default().With("component", "hostlist"),
		}
		if cfg.HostList.Normalize {
			clientConfig.Normalizer = hostNormalizer
		}

		client, err := hostlist.NewClient(clientConfig)
		if err != nil {
			slog.Error("Failed to create host list client", "error", err)
			os.Exit(1)
		}

		updaterConfig := cfg.UpdaterConfig()
		updaterConfig.Logger = slog.Default().With("component", "updater")
		scheduler = updater.NewScheduler(client, hostnameService, updaterConfig)
		health = scheduler

		slog.Info("Starting catalog reload scheduler", "sources", len(sources), "interval", updaterConfig.Interval)
		if err := scheduler.Start(ctx); err != nil {
			slog.Error("Catalog reload scheduler failed", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Warn("No host list configured, serving with an empty catalog")
	}

	grpcServer := grpc.NewServer(hostnameService, grpc.ServerConfig{
		Host:   cfg.Server.Host,
		Port:   cfg.Server.GRPCPort,
		Health: health,
	})
	restServer := rest.NewServer(hostnameService, rest.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.RESTPort,
		MetricsEnabled: cfg.Metrics.Enabled,
		Health:         health,
	})

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := grpcServer.Start(ctx); err != nil {
			slog.Error("gRPC server failed", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := restServer.Start(ctx); err != nil {
			slog.Error("REST server failed", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigChan {
		if sig == syscall.SIGHUP {
			if scheduler != nil {
				slog.Info("Reload signal received")
				scheduler.TriggerUpdate()
			}
			continue
		}
		break
	}
	slog.Info("Shutdown signal received")

	cancel()

	slog.Info("Waiting for servers to shut down...")
	wg.Wait()

	slog.Info("Service stopped")
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		slog.Error("Invalid log level", "level", cfg.Level)
		os.Exit(1)
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
}
