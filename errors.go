package flightops

import "errors"

// Sentinel errors returned by the Orchestrator.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrFlightSourceRequired is returned when the flight source is nil.
	ErrFlightSourceRequired = errors.New("flight source is required")

	// ErrRosterRequired is returned when the crew roster is nil.
	ErrRosterRequired = errors.New("crew roster is required")

	// ErrAlreadyStarted is returned when Start is called on a running orchestrator.
	ErrAlreadyStarted = errors.New("orchestrator already started")

	// ErrNotStarted is returned when Stop is called on an orchestrator that
	// hasn't been started.
	ErrNotStarted = errors.New("orchestrator not started")
)
