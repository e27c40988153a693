// Package metrics provides metrics collector implementations for the
// flightops pipeline.
package metrics

import (
	"time"

	"github.com/aerologix/flightops/types"
)

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external metrics
// collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordAssignmentBatch discards the batch metric.
func (n *NopMetrics) RecordAssignmentBatch(_ /* flights */, _ /* issues */ int, _ /* duration */ time.Duration) {
	// No-op
}

// RecordAlertEnqueued discards the enqueue counter.
func (n *NopMetrics) RecordAlertEnqueued(_ /* producer */ string) {
	// No-op
}

// RecordAlertDropped discards the drop counter.
func (n *NopMetrics) RecordAlertDropped(_ /* producer */ string) {
	// No-op
}

// RecordProducerError discards the producer error counter.
func (n *NopMetrics) RecordProducerError(_ /* producer */ string) {
	// No-op
}

// RecordDispatch discards the dispatch counter.
func (n *NopMetrics) RecordDispatch(_ /* severity */ types.Severity) {
	// No-op
}

// RecordSinkError discards the sink error counter.
func (n *NopMetrics) RecordSinkError(_ /* sink */ string) {
	// No-op
}

// RecordQueueDepth discards the queue depth gauge.
func (n *NopMetrics) RecordQueueDepth(_ /* depth */ int) {
	// No-op
}
