package usecase

import (
	"context"
	"net/http"
	"time"

	drepo "TVRelay/internal/domain/repository"
	"TVRelay/internal/service/payload"
	"TVRelay/pkg/config"
	xhttp "TVRelay/pkg/http"
	xlogger "TVRelay/pkg/logger"
)

// RawKeyHeader carries the shared secret for raw-text alerts. The secret
// cannot be embedded unambiguously in free text, so raw mode checks this
// header instead of a body field.
const RawKeyHeader = "X-Webhook-Key"

// Relay runs the request pipeline: configuration check, payload
// extraction, authorization, message construction, forwarding, and outcome
// mapping. It holds no mutable state and is safe for concurrent use.
type Relay struct {
	cfg       *config.Config
	logger    *xlogger.Logger
	extractor payload.Extractor
	forwarder drepo.Forwarder
	metrics   drepo.Metrics
}

// NewRelay creates the relay pipeline.
func NewRelay(
	cfg *config.Config,
	logger *xlogger.Logger,
	extractor payload.Extractor,
	forwarder drepo.Forwarder,
	metrics drepo.Metrics,
) *Relay {
	return &Relay{
		cfg:       cfg,
		logger:    logger,
		extractor: extractor,
		forwarder: forwarder,
		metrics:   metrics,
	}
}

// Handle processes one inbound alert. Every returned error is an
// *xhttp.AppError carrying the caller-facing status and message; all are
// terminal for the request, none trigger a retry.
func (r *Relay) Handle(ctx context.Context, body []byte, headers http.Header) error {
	mode := r.cfg.Relay.Mode

	// Stage 1: configuration. A missing webhook URL is a deployment
	// error, not something the caller can fix by resending.
	if r.cfg.Degraded() {
		r.metrics.RecordError("config")
		r.logger.Error("relay: webhook URL not configured")
		return xhttp.ConfigurationError()
	}

	// Stage 2: payload extraction
	alert, err := r.extractor.Extract(body)
	if err != nil {
		r.metrics.RecordError("payload")
		r.logger.Warn("relay: payload rejected", xlogger.String("mode", mode), xlogger.Error(err))
		return err
	}

	// Stage 3: shared-secret authorization. Rejection happens before any
	// outbound call is made.
	if secret := r.cfg.Relay.SecretKey; secret != "" {
		key := alert.Key
		if alert.IsRaw() {
			key = headers.Get(RawKeyHeader)
		}
		if key != secret {
			r.metrics.RecordError("auth")
			r.logger.Warn("relay: invalid or missing secret key", xlogger.String("mode", mode))
			return xhttp.UnauthorizedError()
		}
	}

	// Stage 4: message construction
	content := alert.Content(time.Now())

	// Stage 5: forwarding, single attempt
	start := time.Now()
	res, err := r.forwarder.Forward(ctx, content)
	r.metrics.RecordForwardLatency(time.Since(start).Seconds())

	// Stage 6: outcome mapping
	if err != nil {
		r.metrics.RecordRelay(mode, "transport_error")
		r.logger.Error("relay: could not reach Discord", xlogger.Error(err))
		return xhttp.TransportError(err)
	}
	if !res.Succeeded() {
		r.metrics.RecordRelay(mode, "upstream_rejected")
		r.logger.Error("relay: Discord rejected message",
			xlogger.Int("status", res.StatusCode),
			xlogger.String("body", res.Body),
		)
		return xhttp.UpstreamError(res.Body)
	}

	r.metrics.RecordRelay(mode, "ok")
	r.logger.Info("relay: message delivered",
		xlogger.String("mode", mode),
		xlogger.Int("status", res.StatusCode),
	)
	return nil
}
