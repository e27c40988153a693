package types

import "time"

// MetricsCollector defines the metrics recorded by the flightops pipeline.
//
// Implementations must be safe for concurrent use: producers, the dispatcher
// and the assignment engine all record from their own goroutines. A no-op
// implementation is used when no collector is configured.
type MetricsCollector interface {
	// RecordAssignmentBatch records one completed engine batch.
	RecordAssignmentBatch(flights, issues int, duration time.Duration)

	// RecordAlertEnqueued records an event accepted by the queue.
	RecordAlertEnqueued(producer string)

	// RecordAlertDropped records an event rejected because the queue was full.
	RecordAlertDropped(producer string)

	// RecordProducerError records a failed producer tick (error or panic).
	RecordProducerError(producer string)

	// RecordDispatch records an event forwarded by the dispatcher.
	RecordDispatch(severity Severity)

	// RecordSinkError records a sink delivery failure.
	RecordSinkError(sink string)

	// RecordQueueDepth records the queue depth observed after a drain.
	RecordQueueDepth(depth int)
}
