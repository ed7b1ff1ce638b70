package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFraudMetrics_Counters(t *testing.T) {
	m := NewFraudMetrics(prometheus.NewRegistry())

	m.RecordVerdict(true)
	m.RecordVerdict(true)
	m.RecordVerdict(false)
	m.RecordError("validation")
	m.RecordDetectorTrigger("odd_hour")
	m.RecordDetectorTrigger("odd_hour")
	m.RecordDetectorTrigger("blacklisted_ip")

	assert.Equal(t, 4.0, testutil.ToFloat64(m.evaluations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.verdicts.WithLabelValues("fraud")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.verdicts.WithLabelValues("clean")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("validation")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.detectorTriggers.WithLabelValues("odd_hour")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.detectorTriggers.WithLabelValues("blacklisted_ip")))
}

func TestFraudMetrics_Duration(t *testing.T) {
	m := NewFraudMetrics(prometheus.NewRegistry())

	m.RecordEvaluationDuration(42 * time.Millisecond)

	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestFraudMetrics_SeparateRegistries(t *testing.T) {
	// Two instances must not collide on registration.
	assert.NotPanics(t, func() {
		NewFraudMetrics(prometheus.NewRegistry())
		NewFraudMetrics(prometheus.NewRegistry())
	})
}
