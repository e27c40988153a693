// Package monitor provides the evaluators wrapped by the alert producers.
//
// Each evaluator is a pure pass over a flight snapshot: metrics in, alert
// events out. Missing metric fields default to zero/false rather than
// failing. The crew evaluator is the exception in that it drives the
// assignment engine (which mutates the roster); it runs from a single
// producer goroutine, and the engine serializes batches regardless.
package monitor
