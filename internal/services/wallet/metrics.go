package wallet

import "github.com/prometheus/client_golang/prometheus"

// Credit results
const (
	ResultCredited      = "credited"
	ResultWalletMissing = "wallet_missing"
	ResultFailed        = "failed"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordCredit(string) {}

// PrometheusMetrics counts wallet credits by result.
type PrometheusMetrics struct {
	credits *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		credits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wallet_credits_total",
			Help: "Wallet funding attempts by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.credits)
	return m
}

func (m *PrometheusMetrics) RecordCredit(result string) {
	m.credits.WithLabelValues(result).Inc()
}
