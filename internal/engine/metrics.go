package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Command results recorded in metrics.
const (
	resultOK       = "ok"
	resultRejected = "rejected"
	resultError    = "error"
)

// Metrics are the engine's Prometheus collectors.
type Metrics struct {
	commands   *prometheus.CounterVec
	rejections *prometheus.CounterVec
	combat     *prometheus.CounterVec
	levelUps   prometheus.Counter
	latency    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fluxmud",
			Name:      "commands_total",
			Help:      "Commands processed, by verb and result.",
		}, []string{"verb", "result"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fluxmud",
			Name:      "rejections_total",
			Help:      "Rejected commands, by reason.",
		}, []string{"reason"}),
		combat: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "fluxmud",
			Name:      "combat_rounds_total",
			Help:      "Combat rounds resolved, by outcome.",
		}, []string{"outcome"}),
		levelUps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "fluxmud",
			Name:      "level_ups_total",
			Help:      "Levels gained by all players.",
		}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "fluxmud",
			Name:      "command_duration_seconds",
			Help:      "Time to process one command, including persistence.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}

	if reg != nil {
		reg.MustRegister(m.commands, m.rejections, m.combat, m.levelUps, m.latency)
	}
	return m
}
