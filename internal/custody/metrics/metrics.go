package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the custody module.
type Metrics struct {
	// Operation outcomes: outcome is a success classification or failure reason
	Outcomes *prometheus.CounterVec

	// Post-commit effects that failed and were swallowed
	EffectFailures *prometheus.CounterVec

	// Named business telemetry events
	TelemetryEvents *prometheus.CounterVec

	OperationLatency *prometheus.HistogramVec
}

// New creates a Metrics instance registered with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the metrics with reg. Tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Outcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casework_custody_outcomes_total",
			Help: "Custody operation outcomes by operation and outcome or failure reason",
		}, []string{"operation", "outcome"}),

		EffectFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casework_custody_effect_failures_total",
			Help: "Post-commit side effects that failed",
		}, []string{"effect"}),

		TelemetryEvents: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casework_custody_telemetry_events_total",
			Help: "Business telemetry events by name",
		}, []string{"name"}),

		OperationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casework_custody_operation_duration_seconds",
			Help:    "Duration of custody operations including the transaction",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementOutcome(operation, outcome string) {
	if m != nil {
		m.Outcomes.WithLabelValues(operation, outcome).Inc()
	}
}

func (m *Metrics) IncrementEffectFailure(effect string) {
	if m != nil {
		m.EffectFailures.WithLabelValues(effect).Inc()
	}
}

func (m *Metrics) IncrementTelemetryEvent(name string) {
	if m != nil {
		m.TelemetryEvents.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) ObserveOperationLatency(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
