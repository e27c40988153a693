// Package source provides flight snapshot sources for the monitors and the
// assignment engine.
package source

import (
	"context"
	"sync"

	"github.com/aerologix/flightops/types"
)

// Static implements a flight source with an updatable in-memory list.
type Static struct {
	mu      sync.RWMutex
	flights []types.Flight
}

var _ types.FlightSource = (*Static)(nil)

// NewStatic creates a new static flight source.
//
// Producers read the source on every tick; Update swaps the dataset for all
// subsequent reads.
//
// Parameters:
//   - flights: Initial flight list
//
// Returns:
//   - *Static: Initialized source
func NewStatic(flights []types.Flight) *Static {
	return &Static{flights: flights}
}

// ListFlights returns a copy of the current flight list.
//
// Returns:
//   - []types.Flight: Current flights
//   - error: Always nil
func (s *Static) ListFlights(_ context.Context) ([]types.Flight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]types.Flight, len(s.flights))
	copy(result, s.flights)

	return result, nil
}

// Update replaces the flight list.
func (s *Static) Update(flights []types.Flight) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flights = flights
}
