package client

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "mailtriage_client"

// Metrics counts and times backend calls by operation, call style and
// outcome. A nil *Metrics records nothing.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "api_calls_total",
			Help:      "Backend calls by operation, call kind and outcome.",
		}, []string{"operation", "kind", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "api_call_duration_seconds",
			Help:      "Backend call latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation", "kind"}),
	}
	reg.MustRegister(m.calls, m.duration)
	return m
}

func (m *Metrics) observe(op, kind string, err error, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = KindOf(err).String()
	}
	m.calls.WithLabelValues(op, kind, outcome).Inc()
	m.duration.WithLabelValues(op, kind).Observe(d.Seconds())
}
