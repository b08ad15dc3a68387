package di

import (
	"fmt"

	drepo "TVRelay/internal/domain/repository"
	"TVRelay/internal/handler/api"
	"TVRelay/internal/service/discord"
	"TVRelay/internal/service/payload"
	"TVRelay/internal/usecase"
	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
	applogger "TVRelay/pkg/logger"
	"TVRelay/pkg/metrics"
	"TVRelay/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideExtractor selects the payload extractor for the configured mode.
func ProvideExtractor(cfg *config.Config) payload.Extractor {
	return payload.ForMode(cfg.Relay.Mode)
}

// ProvideForwarder creates the Discord webhook client.
func ProvideForwarder(cfg *config.Config) drepo.Forwarder {
	return discord.New(cfg.Discord.WebhookURL, cfg.Discord.Timeout)
}

// ProvideRelay creates the relay pipeline use case.
func ProvideRelay(
	cfg *config.Config,
	logger *applogger.Logger,
	extractor payload.Extractor,
	forwarder drepo.Forwarder,
	m drepo.Metrics,
) *usecase.Relay {
	return usecase.NewRelay(cfg, logger, extractor, forwarder, m)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *applogger.Logger, cfg *config.Config, relay *usecase.Relay) xhttp.Handler {
	return api.NewRelayHandler(logger, cfg, relay)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
