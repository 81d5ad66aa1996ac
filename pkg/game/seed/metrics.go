package seed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"smz3/pkg/game/fill"
)

// Metrics counts generation work. Register it with a dedicated registry in
// tests and with prometheus.DefaultRegisterer in long running processes.
type Metrics struct {
	Seeds      *prometheus.CounterVec
	Attempts   prometheus.Counter
	DeadEnds   prometheus.Counter
	Unverified prometheus.Counter
	Duration   prometheus.Histogram
}

// NewMetrics creates and registers the generation metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Seeds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smz3",
			Name:      "seeds_total",
			Help:      "Generation requests by outcome.",
		}, []string{"outcome"}),
		Attempts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smz3",
			Name:      "fill_attempts_total",
			Help:      "Fill attempts across all worlds.",
		}),
		DeadEnds: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smz3",
			Name:      "fill_dead_ends_total",
			Help:      "Attempts discarded because an item had no eligible location.",
		}),
		Unverified: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "smz3",
			Name:      "fill_verification_failures_total",
			Help:      "Attempts discarded because the walkthrough did not complete.",
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smz3",
			Name:      "generation_seconds",
			Help:      "Wall time of a whole generation request.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
	}
}

func (m *Metrics) observeFill(s fill.Stats) {
	if m == nil {
		return
	}
	m.Attempts.Add(float64(s.Attempts))
	m.DeadEnds.Add(float64(s.DeadEnds))
	m.Unverified.Add(float64(s.VerificationFailed))
}

func (m *Metrics) observeOutcome(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Seeds.WithLabelValues(outcome).Inc()
	m.Duration.Observe(seconds)
}
