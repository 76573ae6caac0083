package player

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeCompleted = "completed"
	OutcomeCanceled  = "canceled"
	OutcomeFailed    = "failed"
	OutcomeTruncated = "truncated" // stopped at MaxFrames
)

// Metrics counts frames and runs per algorithm.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Frames   *prometheus.CounterVec
	Runs     *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// It panics if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepviz_frames_total",
			Help: "Snapshots rendered, by family and algorithm",
		}, []string{"family", "algorithm"}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stepviz_runs_total",
			Help: "Finished playbacks, by family, algorithm and outcome",
		}, []string{"family", "algorithm", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "stepviz_run_duration_seconds",
			Help:    "Wall time of a playback in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10), // 1ms to ~4.4min
		}, []string{"family", "algorithm"}),
	}
	reg.MustRegister(m.Frames, m.Runs, m.Duration)

	return m
}

func (m *Metrics) frame(family, algorithm string) {
	if m == nil {
		return
	}
	m.Frames.WithLabelValues(family, algorithm).Inc()
}

func (m *Metrics) run(family, algorithm, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.Runs.WithLabelValues(family, algorithm, outcome).Inc()
	m.Duration.WithLabelValues(family, algorithm).Observe(d.Seconds())
}
