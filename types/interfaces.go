package types

import "context"

// FlightSource supplies the current flight snapshot to the monitors and the
// assignment engine.
//
// Implementations should return a copy the caller can hold without racing
// against concurrent updates. Producers query the source on every tick, so
// ListFlights should be cheap.
type FlightSource interface {
	// ListFlights returns the current set of flights.
	ListFlights(ctx context.Context) ([]Flight, error)
}

// CrewSelector picks crew members from an eligible pool.
//
// Selectors implement different selection policies:
//   - Random: uniform selection (reference behavior)
//   - RoundRobin: rotating cursor, fully deterministic
//   - LeastUtilized: fewest assigned flights first
//
// The selection distribution is not a contract; the structural guarantees
// are. Implementations must:
//   - Return an index within [0, len(pool)) from Pick, or -1 when the pool
//     is empty
//   - Return distinct in-range indices from Sample, at most n of them
//   - Be stateless with respect to the pool (no side effects on members)
type CrewSelector interface {
	// Pick selects one member from the pool, returning its index.
	Pick(pool []*CrewMember) int

	// Sample selects up to n distinct members from the pool, returning
	// their indices in selection order.
	Sample(pool []*CrewMember, n int) []int
}

// Evaluator is a pure function from a flight snapshot to zero or more alert
// events. Producers invoke their evaluator once per tick; any error or panic
// is contained at the loop boundary and does not stop subsequent ticks.
type Evaluator func(ctx context.Context, flights []Flight) ([]AlertEvent, error)

// Sink receives alert events from the dispatcher.
//
// Delivery failures are logged and counted but never retried; the stream is
// advisory. Implementations must be safe for use from the dispatcher
// goroutine.
type Sink interface {
	// Name identifies the sink in logs and metrics.
	Name() string

	// Deliver forwards one alert event.
	Deliver(ctx context.Context, event AlertEvent) error
}
