package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	alertsRelayed  *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	forwardLatency prometheus.Histogram
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		alertsRelayed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tvrelay_alerts_total",
				Help: "Total number of relayed alerts by extraction mode and outcome",
			},
			[]string{"mode", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tvrelay_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		forwardLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tvrelay_discord_request_duration_seconds",
				Help:    "Duration of outbound Discord webhook calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// RecordRelay records the outcome of one relay attempt.
func (r *Recorder) RecordRelay(mode, outcome string) {
	r.alertsRelayed.WithLabelValues(mode, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordForwardLatency records one Discord round trip in seconds.
func (r *Recorder) RecordForwardLatency(seconds float64) {
	r.forwardLatency.Observe(seconds)
}
