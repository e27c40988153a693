// Package roster holds the mutable set of crew members and their
// availability state.
//
// The roster is a leaf data store: it owns no goroutines and performs no
// I/O. Mutation is confined to the assignment engine, which serializes whole
// batches; the roster's own lock only protects individual reads and writes
// so that read-only callers (CLI search, dashboard) can observe it safely
// while a batch runs.
package roster

import (
	"fmt"
	"sync"
	"time"

	"github.com/aerologix/flightops/types"
)

// Reference population sizes.
const (
	standardPilots     = 10
	standardAttendants = 20
)

// pilotRestCeiling is the maximum accrued rest hours for pilot eligibility.
const pilotRestCeiling = 8

var standardBases = []string{"DEL", "BOM", "BLR"}

// Roster is the fixed-size pool of crew members for one run.
type Roster struct {
	mu      sync.RWMutex
	members []*types.CrewMember
	byID    map[string]*types.CrewMember
}

// New creates a roster from the given members.
//
// Members are held by reference; the caller must not mutate them after
// construction. Duplicated IDs keep the first occurrence.
func New(members []*types.CrewMember) *Roster {
	r := &Roster{
		members: make([]*types.CrewMember, 0, len(members)),
		byID:    make(map[string]*types.CrewMember, len(members)),
	}

	for _, m := range members {
		if _, exists := r.byID[m.ID]; exists {
			continue
		}
		r.members = append(r.members, m)
		r.byID[m.ID] = m
	}

	return r
}

// NewStandard creates the reference crew population: 10 pilots (P001..P010,
// ATPL licensed) and 20 attendants (FA001..FA020, alternating type-rating
// groups), all available as of clock.Now().
func NewStandard(clock types.Clock) *Roster {
	now := clock.Now()
	members := make([]*types.CrewMember, 0, standardPilots+standardAttendants)

	for i := 1; i <= standardPilots; i++ {
		members = append(members, &types.CrewMember{
			ID:            fmt.Sprintf("P%03d", i),
			Name:          fmt.Sprintf("Captain Pilot %d", i),
			Role:          types.RolePilot,
			Capabilities:  []string{"ATPL"},
			Base:          standardBases[(i-1)%len(standardBases)],
			NextAvailable: now,
		})
	}

	for i := 1; i <= standardAttendants; i++ {
		ratings := []string{"B787", "A350"}
		if i%2 == 0 {
			ratings = []string{"A320", "B737"}
		}
		members = append(members, &types.CrewMember{
			ID:            fmt.Sprintf("FA%03d", i),
			Name:          fmt.Sprintf("Flight Attendant %d", i),
			Role:          types.RoleAttendant,
			Capabilities:  ratings,
			Base:          standardBases[(i-1)%len(standardBases)],
			NextAvailable: now,
		})
	}

	return New(members)
}

// Size returns the total number of crew members.
func (r *Roster) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.members)
}

// Get returns a copy of the member with the given ID.
func (r *Roster) Get(id string) (types.CrewMember, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return types.CrewMember{}, false
	}

	return copyMember(m), true
}

// Members returns a copy of all crew members in roster order.
func (r *Roster) Members() []types.CrewMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]types.CrewMember, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, copyMember(m))
	}

	return out
}

// AvailablePilots returns the pilots eligible for assignment at the given
// time: role pilot, NextAvailable <= now, and accrued rest within the
// 8-hour duty ceiling.
//
// The returned slice holds live references in stable roster order; only the
// assignment engine may mutate them, via MarkAssigned.
func (r *Roster) AvailablePilots(now time.Time) []*types.CrewMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pool []*types.CrewMember
	for _, m := range r.members {
		if m.Role != types.RolePilot {
			continue
		}
		if m.NextAvailable.After(now) || m.RestHours > pilotRestCeiling {
			continue
		}
		pool = append(pool, m)
	}

	return pool
}

// AvailableAttendants returns the attendants eligible for assignment at the
// given time: role attendant and NextAvailable <= now. The rest ceiling does
// not apply to attendants.
func (r *Roster) AvailableAttendants(now time.Time) []*types.CrewMember {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var pool []*types.CrewMember
	for _, m := range r.members {
		if m.Role != types.RoleAttendant {
			continue
		}
		if m.NextAvailable.After(now) {
			continue
		}
		pool = append(pool, m)
	}

	return pool
}

// MarkAssigned records a flight assignment for the given members: appends
// the flight ID to their history and pushes NextAvailable out to the given
// time. NextAvailable never moves backwards.
func (r *Roster) MarkAssigned(ids []string, flightID string, until time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, id := range ids {
		m, ok := r.byID[id]
		if !ok {
			continue
		}
		m.AssignedFlights = append(m.AssignedFlights, flightID)
		if until.After(m.NextAvailable) {
			m.NextAvailable = until
		}
	}
}

func copyMember(m *types.CrewMember) types.CrewMember {
	out := *m
	out.Capabilities = append([]string(nil), m.Capabilities...)
	out.AssignedFlights = append([]string(nil), m.AssignedFlights...)

	return out
}
