package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"margin-suggest/core/types"
)

// Metrics holds the service collectors on a private registry
type Metrics struct {
	registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	suggestions *prometheus.CounterVec
	warnings    *prometheus.CounterVec
	batchSize   prometheus.Histogram
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		suggestions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "margin_suggestions_total",
				Help: "Suggestions computed, by recommended strategy and category",
			},
			[]string{"strategy", "category"},
		),
		warnings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "margin_warnings_total",
				Help: "Warnings and data-quality flags attached to suggestions",
			},
			[]string{"type"},
		),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "margin_batch_size",
			Help:    "Number of products per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.duration,
		m.suggestions,
		m.warnings,
		m.batchSize,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished request
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveSuggestion records the outcome of one computed suggestion
func (m *Metrics) ObserveSuggestion(s *types.Suggestions) {
	if s == nil {
		return
	}
	m.suggestions.WithLabelValues(string(s.Recommendation.Strategy), string(s.Category.Key)).Inc()
	for _, w := range s.Warnings {
		m.warnings.WithLabelValues(string(w.Type)).Inc()
	}
	for _, w := range s.DataQuality {
		m.warnings.WithLabelValues(string(w.Type)).Inc()
	}
}

// ObserveBatch records the size of one batch request
func (m *Metrics) ObserveBatch(n int) {
	m.batchSize.Observe(float64(n))
}
