package repository

import (
	"context"

	"TVRelay/internal/domain/models"
)

// Forwarder delivers a formatted message to the downstream chat webhook.
// A non-nil error means the downstream was never reached (timeout, DNS,
// connection refused); a rejected delivery comes back as a DeliveryResult.
type Forwarder interface {
	Forward(ctx context.Context, content string) (*models.DeliveryResult, error)
}

// Metrics records relay instrumentation.
type Metrics interface {
	RecordRelay(mode, outcome string)
	RecordError(kind string)
	RecordForwardLatency(seconds float64)
}
