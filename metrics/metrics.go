package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordRun records the outcome of a BFS run.
func (r *Registry) RecordRun(status string, levels, reached int) {
	r.RunsTotal.WithLabelValues(status).Inc()
	if status == "ok" {
		r.Levels.Observe(float64(levels))
		r.ReachedVertices.Set(float64(reached))
	}
}

// RecordPhase records the duration of a BFS phase ("init" or "traverse").
func (r *Registry) RecordPhase(phase string, duration time.Duration) {
	r.PhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}

// RecordStep records one frontier expansion.
func (r *Registry) RecordStep(mode string, frontierSize int) {
	r.EdgeMapTotal.WithLabelValues(mode).Inc()
	r.FrontierSize.WithLabelValues(mode).Observe(float64(frontierSize))
}

// WriteToTextfile dumps all metrics in the Prometheus text format, for the
// node exporter textfile collector.
func (r *Registry) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
