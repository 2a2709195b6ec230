// Package metrics exposes Prometheus metrics for ranking calls and the HTTP
// surface.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var defaultLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

var sizeBuckets = []float64{0, 1, 5, 10, 20, 50, 100, 200}

type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	registry       *prometheus.Registry
	classify       func(error) string

	rankingRequests   *prometheus.CounterVec
	rankingDuration   *prometheus.HistogramVec
	rankingCandidates *prometheus.HistogramVec
	rankingReturned   *prometheus.HistogramVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	circuitState *prometheus.GaugeVec
}

// NewManager registers all collectors. Each manager owns a fresh registry
// unless one is supplied, so tests can build managers freely.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "turf",
		subsystem:      "matchmaking",
		latencyBuckets: defaultLatencyBuckets,
		classify:       func(error) string { return "error" },
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.rankingRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_requests_total",
		Help:      "Ranking calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	m.rankingDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_duration_seconds",
		Help:      "Ranking call latency including store reads.",
		Buckets:   m.latencyBuckets,
	}, []string{"operation"})

	m.rankingCandidates = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_candidates",
		Help:      "Candidates scored per ranking call.",
		Buckets:   sizeBuckets,
	}, []string{"operation"})

	m.rankingReturned = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_results",
		Help:      "Results returned per ranking call.",
		Buckets:   sizeBuckets,
	}, []string{"operation"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "HTTP requests by route pattern, method and status code.",
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route pattern and method.",
		Buckets:   m.latencyBuckets,
	}, []string{"route", "method"})

	m.circuitState = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_circuit_open",
		Help:      "1 when the store circuit breaker is open or half open.",
	}, []string{"store"})
}

// ObserveRanking records one completed ranking call.
func (m *Manager) ObserveRanking(operation string, candidates, returned int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = m.classify(err)
	}

	m.rankingRequests.WithLabelValues(operation, outcome).Inc()
	m.rankingDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
	if err == nil {
		m.rankingCandidates.WithLabelValues(operation).Observe(float64(candidates))
		m.rankingReturned.WithLabelValues(operation).Observe(float64(returned))
	}
}

func (m *Manager) ObserveHTTPRequest(route, method string, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) SetCircuitOpen(store string, open bool) {
	if m == nil {
		return
	}
	value := 0.0
	if open {
		value = 1
	}
	m.circuitState.WithLabelValues(store).Set(value)
}

// Handler serves the manager's registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}
