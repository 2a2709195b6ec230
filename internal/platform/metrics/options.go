package metrics

import "github.com/prometheus/client_golang/prometheus"

type Option func(*Manager)

func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

func WithSubsystem(subsystem string) Option {
	return func(m *Manager) {
		if subsystem != "" {
			m.subsystem = subsystem
		}
	}
}

// WithHistogramBuckets sets latency buckets in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.latencyBuckets = buckets
		}
	}
}

// WithRegistry registers metrics on registry and serves it from Handler.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// WithOutcomeClassifier maps a ranking error to a low-cardinality outcome
// label. Nil errors are always "ok".
func WithOutcomeClassifier(classify func(error) string) Option {
	return func(m *Manager) {
		if classify != nil {
			m.classify = classify
		}
	}
}
