package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/Ozerg97/nestle-chat-bot/config"
	"github.com/Ozerg97/nestle-chat-bot/internal/app"
	httpDelivery "github.com/Ozerg97/nestle-chat-bot/internal/delivery/http"
	"github.com/Ozerg97/nestle-chat-bot/internal/observability"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		ServiceName: "catalogqa-backend",
	})

	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("session_store", cfg.Session.Type).
		Str("model", cfg.Generation.Model).
		Msg("Starting catalog QA backend v1.0.0")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.Build(startCtx, cfg, registry, logger)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize services")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(application.Questions, application.Sessions, httpDelivery.HandlerConfig{
		SessionCookie:  cfg.Server.SessionCookie,
		SessionTTL:     cfg.Session.TTL,
		SecureCookie:   cfg.Server.Environment == "production",
		RequestTimeout: cfg.Server.RequestTimeout,
	}, logger)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger, registry)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("Server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt or error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("Server error")
			exitCode = 1
		}
	case sig := <-shutdown:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("Graceful shutdown failed")
			srv.Close()
			exitCode = 1
		}
		cancel()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := application.Close(ctx); err != nil {
		exitCode = 1
	}
	cancel()

	logger.Info().Msg("Server stopped")
	os.Exit(exitCode)
}
