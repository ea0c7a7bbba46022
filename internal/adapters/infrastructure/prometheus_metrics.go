package infrastructure

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "weatherdesk"

// PrometheusMetricsCollector implements the MetricsCollector port on a private registry
type PrometheusMetricsCollector struct {
	registry         *prometheus.Registry
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	favouritesSaved  prometheus.Counter
	httpRequests     *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the application metrics plus Go runtime collectors
func NewPrometheusMetricsCollector() *PrometheusMetricsCollector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &PrometheusMetricsCollector{
		registry: registry,
		providerRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "provider_requests_total",
				Help:      "The total number of weather provider requests by outcome",
			},
			[]string{"operation", "outcome"},
		),
		providerLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "provider_request_duration_seconds",
				Help:      "Weather provider request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		favouritesSaved: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "favourites_saved_total",
				Help:      "The total number of cities saved to favourites",
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "http_requests_total",
				Help:      "Total HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "status"},
		),
	}
}

// RecordProviderRequest counts a provider call and observes its latency
func (m *PrometheusMetricsCollector) RecordProviderRequest(_ context.Context, operation string, success bool, duration time.Duration) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.providerRequests.WithLabelValues(operation, outcome).Inc()
	m.providerLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordFavouriteSaved counts a successful favourite save
func (m *PrometheusMetricsCollector) RecordFavouriteSaved(_ context.Context) {
	m.favouritesSaved.Inc()
}

// RecordHTTPRequest counts a served HTTP request
func (m *PrometheusMetricsCollector) RecordHTTPRequest(route, method string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler exposes the registry in the Prometheus text format
func (m *PrometheusMetricsCollector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *PrometheusMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
