package alert

import (
	"sync/atomic"

	"github.com/aerologix/flightops/types"
)

// DefaultQueueCapacity bounds the queue when no capacity is configured.
const DefaultQueueCapacity = 1024

// Queue is the bounded, order-preserving buffer between alert producers and
// the dispatcher.
//
// Enqueue is safe for concurrent producers and never blocks: when the queue
// is full the event is dropped and counted (drop-newest policy). Drain is
// intended for a single consumer. Within one producer, enqueue order is
// preserved; across producers the interleaving is arrival order.
type Queue struct {
	events  chan types.AlertEvent
	dropped atomic.Uint64
	logger  types.Logger
	metrics types.MetricsCollector
}

// NewQueue creates a queue with the given capacity.
//
// Parameters:
//   - capacity: Maximum buffered events; DefaultQueueCapacity when <= 0
//
// Returns:
//   - *Queue: Initialized queue
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}

	return &Queue{events: make(chan types.AlertEvent, capacity)}
}

// SetLogger sets the logger used for overflow warnings. Optional.
func (q *Queue) SetLogger(logger types.Logger) {
	q.logger = logger
}

// SetMetrics sets the metrics collector. Optional.
func (q *Queue) SetMetrics(metrics types.MetricsCollector) {
	q.metrics = metrics
}

// Enqueue appends an event to the queue without blocking.
//
// Parameters:
//   - producer: Producer name, for logs and metrics
//   - event: Event to enqueue
//
// Returns:
//   - bool: false when the queue was full and the event was dropped
func (q *Queue) Enqueue(producer string, event types.AlertEvent) bool {
	select {
	case q.events <- event:
		if q.metrics != nil {
			q.metrics.RecordAlertEnqueued(producer)
		}

		return true
	default:
		q.dropped.Add(1)
		if q.metrics != nil {
			q.metrics.RecordAlertDropped(producer)
		}
		if q.logger != nil {
			q.logger.Warn("alert queue full, dropping event",
				"producer", producer,
				"alert_type", event.Type,
				"flight_id", event.FlightID,
			)
		}

		return false
	}
}

// Drain removes and returns all events buffered at the time of the call.
//
// This is a snapshot drain: events enqueued concurrently after Drain reads
// the buffer length are left for the next drain. Only a single consumer may
// call Drain.
//
// Returns:
//   - []types.AlertEvent: Drained events in FIFO order (nil when empty)
func (q *Queue) Drain() []types.AlertEvent {
	n := len(q.events)
	if n == 0 {
		return nil
	}

	out := make([]types.AlertEvent, 0, n)
	for range n {
		out = append(out, <-q.events)
	}

	return out
}

// Len returns the number of currently buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped returns the total number of events dropped due to overflow.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
