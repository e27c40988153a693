package types

import "time"

// Clock supplies the current time to the assignment engine and monitors.
//
// The reference behavior compared crew availability against the wall clock,
// making outcomes non-reproducible. Injecting a Clock keeps eligibility
// checks deterministic in tests; production code uses SystemClock.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}
