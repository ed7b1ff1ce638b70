// Package metrics exposes Prometheus collectors for the fraud engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FraudMetrics records engine activity on a Prometheus registry. It
// satisfies the engine's MetricsCollector interface.
type FraudMetrics struct {
	evaluations      prometheus.Counter
	verdicts         *prometheus.CounterVec
	detectorTriggers *prometheus.CounterVec
	errors           *prometheus.CounterVec
	duration         prometheus.Histogram
}

// NewFraudMetrics registers the engine collectors on reg, or on the
// default registry when reg is nil.
func NewFraudMetrics(reg prometheus.Registerer) *FraudMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &FraudMetrics{
		evaluations: factory.NewCounter(prometheus.CounterOpts{
			Name: "vigil_evaluations_total",
			Help: "Fraud evaluations attempted, including ones that failed.",
		}),
		verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_verdicts_total",
			Help: "Completed evaluations by verdict.",
		}, []string{"verdict"}),
		detectorTriggers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_detector_triggers_total",
			Help: "Individual detector hits by detector name.",
		}, []string{"detector"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "vigil_evaluation_errors_total",
			Help: "Evaluations aborted by stage: validation, a detector name, or feedback.",
		}, []string{"stage"}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "vigil_evaluation_duration_seconds",
			Help:    "Wall time of successful evaluations.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *FraudMetrics) RecordEvaluationDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

func (m *FraudMetrics) RecordVerdict(isFraud bool) {
	m.evaluations.Inc()
	m.verdicts.WithLabelValues(verdictLabel(isFraud)).Inc()
}

func (m *FraudMetrics) RecordDetectorTrigger(detector string) {
	m.detectorTriggers.WithLabelValues(detector).Inc()
}

func (m *FraudMetrics) RecordError(stage string) {
	m.evaluations.Inc()
	m.errors.WithLabelValues(stage).Inc()
}

func verdictLabel(isFraud bool) string {
	if isFraud {
		return "fraud"
	}
	return "clean"
}
