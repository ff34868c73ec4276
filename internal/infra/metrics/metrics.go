// Package metrics collects Prometheus metrics for backend round trips and auth transitions.
package metrics

import (
	"net/http"
	"time"

	"authkit/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector is the Prometheus implementation of service.MetricsRecorder.
type Collector struct {
	registry        *prometheus.Registry
	backendCalls    *prometheus.CounterVec
	backendLatency  *prometheus.HistogramVec
	authTransitions *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Collector)(nil)

// New creates a Collector registered on its own registry.
func New() *Collector {
	return NewCollector(prometheus.NewRegistry())
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		backendCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authkit_backend_calls_total",
			Help: "Backend round trips by component, operation and outcome.",
		}, []string{"component", "operation", "outcome"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "authkit_backend_call_duration_seconds",
			Help:    "Latency of backend round trips.",
			Buckets: prometheus.DefBuckets,
		}, []string{"component", "operation"}),
		authTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "authkit_auth_transitions_total",
			Help: "Auth state transitions by resulting status.",
		}, []string{"status"}),
	}

	reg.MustRegister(c.backendCalls, c.backendLatency, c.authTransitions)

	return c
}

// AsRecorder exposes the collector through the domain interface for Fx.
func AsRecorder(c *Collector) service.MetricsRecorder {
	return c
}

// RecordBackendCall counts one backend round trip and observes its latency.
func (c *Collector) RecordBackendCall(component, operation, outcome string, latency time.Duration) {
	c.backendCalls.WithLabelValues(component, operation, outcome).Inc()
	c.backendLatency.WithLabelValues(component, operation).Observe(latency.Seconds())
}

// RecordAuthTransition counts an auth state change.
func (c *Collector) RecordAuthTransition(status string) {
	c.authTransitions.WithLabelValues(status).Inc()
}

// Handler returns the scrape handler for the collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
