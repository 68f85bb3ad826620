package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBFSMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ligra_bfs_runs_total",
			Help: "Total number of BFS runs by outcome",
		},
		[]string{"status"},
	)

	r.PhaseDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ligra_bfs_phase_duration_seconds",
			Help:    "Duration of the initialization and traversal phases",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"phase"},
	)

	r.Levels = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ligra_bfs_levels",
			Help:    "Number of frontier expansions per BFS run",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 1024},
		},
	)

	r.FrontierSize = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ligra_bfs_frontier_size",
			Help:    "Size of each frontier produced, by traversal mode",
			Buckets: prometheus.ExponentialBuckets(1, 10, 9),
		},
		[]string{"mode"},
	)

	r.EdgeMapTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ligra_bfs_edge_map_total",
			Help: "Total number of frontier expansions by traversal mode",
		},
		[]string{"mode"},
	)

	r.ReachedVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ligra_bfs_reached_vertices",
			Help: "Vertices reached by the most recent BFS run",
		},
	)

	r.InitWorkers = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "ligra_bfs_init_workers",
			Help: "Workers used to initialize the parent array in the most recent run",
		},
	)
}
