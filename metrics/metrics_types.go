package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics recorded by BFS runs.
type Registry struct {
	registry *prometheus.Registry

	RunsTotal       *prometheus.CounterVec
	PhaseDuration   *prometheus.HistogramVec
	Levels          prometheus.Histogram
	FrontierSize    *prometheus.HistogramVec
	EdgeMapTotal    *prometheus.CounterVec
	ReachedVertices prometheus.Gauge
	InitWorkers     prometheus.Gauge
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
	}
	r.initBFSMetrics()
	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
