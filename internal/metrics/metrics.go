// Package metrics exposes Prometheus counters for title generation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generate request outcomes.
const (
	OutcomeOK            = "ok"
	OutcomeEmpty         = "empty"
	OutcomeInvalid       = "invalid"
	OutcomeUpstreamError = "upstream_error"
)

// Metrics records generation outcomes. A nil *Metrics records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	requests         *prometheus.CounterVec
	extractionSource *prometheus.CounterVec
	upstreamDuration prometheus.Histogram
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "copywriter",
			Name:      "generate_requests_total",
			Help:      "Title generation requests by outcome.",
		}, []string{"outcome"}),
		extractionSource: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "copywriter",
			Name:      "extraction_source_total",
			Help:      "Which extraction strategy produced the returned titles.",
		}, []string{"source"}),
		upstreamDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "copywriter",
			Name:      "upstream_duration_seconds",
			Help:      "Latency of the chat completion call.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}),
	}
}

func (m *Metrics) ObserveRequest(outcome string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveExtraction(source string) {
	if m == nil {
		return
	}
	m.extractionSource.WithLabelValues(source).Inc()
}

func (m *Metrics) ObserveUpstream(d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
