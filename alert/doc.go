// Package alert implements the concurrent alert pipeline: a bounded FIFO
// queue shared by periodic producers, a dispatcher that drains it on a fixed
// tick, and the append-only critical-alert log.
//
// Producers enqueue concurrently without blocking; the single dispatcher
// goroutine snapshot-drains whatever is buffered at each tick and forwards
// every event to the registered sinks. Events at CRITICAL severity or above
// are additionally persisted to the critical log. Delivery is at-most-once;
// the stream is advisory.
package alert
