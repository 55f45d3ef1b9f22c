package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/practicehub/feedback-api/internal/adapters/database"
	"github.com/practicehub/feedback-api/internal/api/handlers"
	"github.com/practicehub/feedback-api/internal/api/routes"
	"github.com/practicehub/feedback-api/internal/application/services"
	"github.com/practicehub/feedback-api/internal/domain/providers"
	"github.com/practicehub/feedback-api/internal/infrastructure/clients/postgres"
	"github.com/practicehub/feedback-api/internal/infrastructure/notifications"
	"github.com/practicehub/feedback-api/internal/infrastructure/observability"
	"github.com/practicehub/feedback-api/internal/ratelimit"
	"github.com/practicehub/feedback-api/pkg/config"
)

func main() {
	// Load configuration once; components receive their settings at construction
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	observability.InitLogger(cfg.App.Name, cfg.App.Env, cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()

	feedbackRepo := database.NewFeedbackAdapter(pgClient)

	limiter := ratelimit.NewFixedWindowLimiter(cfg.RateLimit.PerWindow, cfg.RateLimit.Window)

	var notifier providers.Notifier
	switch cfg.Notify.Mode {
	case config.NotifyModeWebhook:
		if cfg.Notify.WebhookURL == "" {
			log.Warn().Msg("webhook notify mode selected but WEBHOOK_URL is not set")
		}
		notifier = notifications.NewWebhookNotifier(cfg.Notify.WebhookURL, cfg.Notify.Timeout, *observability.GetLogger())
	default:
		notifier = notifications.NewConsoleNotifier(*observability.GetLogger())
	}

	feedbackService := services.NewFeedbackService(
		limiter,
		services.NewPayloadValidator(),
		feedbackRepo,
		notifier,
		metrics,
		*observability.GetLogger(),
	)

	router := routes.NewRouter(
		handlers.NewFeedbackHandler(feedbackService),
		handlers.NewHealthHandler(),
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Int("rate_limit_per_minute", cfg.RateLimit.PerWindow).
			Str("notify_mode", cfg.Notify.Mode).
			Msg("feedback API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
