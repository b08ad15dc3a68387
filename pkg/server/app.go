package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
	applogger "TVRelay/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	handler    xhttp.Handler
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		handler: handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The service still starts without a webhook URL, but every alert
	// will be answered with a configuration error until one is set.
	if a.cfg.Degraded() {
		a.logger.Error("DISCORD_WEBHOOK_URL is not set; serving in degraded mode, all alerts will fail")
	}

	metricsPath := ""
	if a.cfg.Metrics.Enabled {
		metricsPath = a.cfg.Metrics.Path
	}

	a.httpServer = xhttp.NewServer(a.logger, a.handler,
		xhttp.WithHost(a.cfg.Server.Host),
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("relay started",
		applogger.String("mode", a.cfg.Relay.Mode),
		applogger.Bool("secret_configured", a.cfg.Relay.SecretKey != ""),
		applogger.Bool("degraded", a.cfg.Degraded()),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops the HTTP server.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		return err
	}

	a.logger.Info("shutdown complete")
	return nil
}
