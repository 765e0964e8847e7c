// Package main provides the API server entry point.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/psychosledge/squickr-life/internal/config"
	"github.com/psychosledge/squickr-life/internal/infrastructure/httpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	slog.SetDefault(logger)

	logger.Info("starting squickr-life API server",
		slog.String("storage", string(cfg.Storage.Backend)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to build container", slog.String("error", err.Error()))
		os.Exit(1)
	}

	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, logger)
	SetupRoutes(server, container)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		logger.Info("shutting down", slog.String("signal", s.String()))

		if shutdownErr := server.Shutdown(context.Background()); shutdownErr != nil {
			logger.Error("shutdown failed", slog.String("error", shutdownErr.Error()))
		}
		cancel()
	}()

	if err = server.Start(); err != nil {
		logger.Error("server failed", slog.String("error", err.Error()))
	}

	if err = container.Close(); err != nil {
		logger.Error("failed to close container", slog.String("error", err.Error()))
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
