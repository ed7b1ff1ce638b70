package fraud

import "time"

// NoopMetricsCollector is a no-op implementation of MetricsCollector
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordEvaluationDuration(time.Duration) {}
func (n *NoopMetricsCollector) RecordVerdict(bool)                     {}
func (n *NoopMetricsCollector) RecordDetectorTrigger(string)           {}
func (n *NoopMetricsCollector) RecordError(string)                     {}
