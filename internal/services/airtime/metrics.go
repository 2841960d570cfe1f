package airtime

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Purchase outcomes
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
)

// MetricsCollector records purchase outcomes.
type MetricsCollector interface {
	RecordOutcome(outcome string)
	RecordProviderLatency(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordOutcome(string)                {}
func (n *NoopMetricsCollector) RecordProviderLatency(time.Duration) {}

// PrometheusMetrics exports purchase metrics to a prometheus registry.
type PrometheusMetrics struct {
	outcomes *prometheus.CounterVec
	latency  prometheus.Histogram
}

// NewPrometheusMetrics registers the airtime collectors on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "airtime_purchases_total",
				Help: "Airtime purchase attempts by outcome",
			},
			[]string{"outcome"},
		),
		latency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "airtime_provider_request_duration_seconds",
				Help:    "Latency of calls to the airtime provider",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
	reg.MustRegister(m.outcomes, m.latency)
	return m
}

func (m *PrometheusMetrics) RecordOutcome(outcome string) {
	m.outcomes.WithLabelValues(outcome).Inc()
}

func (m *PrometheusMetrics) RecordProviderLatency(duration time.Duration) {
	m.latency.Observe(duration.Seconds())
}
