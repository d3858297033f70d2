package cli

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"talentscout/internal/ai"
	"talentscout/internal/config"
	"talentscout/internal/observability"
	"talentscout/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP interview service",
	Long: `Start an HTTP server that runs candidate interviews over a REST API.

Available endpoints:
- POST /sessions: Create an interview session
- POST /sessions/{id}/messages: Send a candidate message
- GET /sessions/{id}: Inspect collected candidate data
- GET /sessions/{id}/export: Export candidate data (json or csv)
- GET /sessions/{id}/score: Score the interview
- POST /sessions/{id}/reset: Restart a session
- GET /health: Health check endpoint
- GET /stats: Server statistics and rate limiting info
- GET /metrics: Prometheus metrics`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "Port to listen on (default from config)")
	serveCmd.Flags().String("host", "", "Host to bind to (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := getConfigFromContext(ctx)
	logger := getLoggerFromContext(ctx)

	// Flag overrides beat config file and environment
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.Server.Port = port
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}

	obs, err := observability.Setup(cfg.Observability, Version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			logger.LogError(err, "Failed to shutdown observability")
		}
	}()

	var metrics *observability.Metrics
	if cfg.Observability.MetricsEnabled {
		metrics = observability.NewMetrics(prometheus.DefaultRegisterer)
	}

	// New sessions pick up reloaded interview tunables; listeners and the AI
	// client keep their startup configuration.
	cfg.Watch(logger, func(fresh *config.Config) {
		cfg.ApplyReload(fresh)
		logger.Info("Applied updated interview settings",
			"max_questions", fresh.Interview.MaxQuestions,
			"default_format", fresh.App.DefaultFormat)
	})

	aiService, err := ai.NewService(ctx, cfg.AI, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := aiService.Close(); err != nil {
			logger.LogError(err, "Failed to close AI service")
		}
	}()

	return server.NewServer(cfg, Version, aiService, metrics, logger).Start(ctx)
}
