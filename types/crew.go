package types

import "time"

// Role classifies a crew member.
type Role string

const (
	// RolePilot covers captains and first officers.
	RolePilot Role = "pilot"

	// RoleAttendant covers cabin crew.
	RoleAttendant Role = "attendant"
)

// CrewMember is a pilot or attendant entity with availability state.
//
// Members are created once at roster initialization and mutated in place by
// the assignment engine on every assignment; they are never destroyed during
// a run. NextAvailable is monotonically non-decreasing across the
// assignments a member participates in within one engine run.
type CrewMember struct {
	// ID uniquely identifies the member and is role-prefixed
	// (e.g., "P003", "FA012").
	ID string `json:"crew_id"`

	// Name is the member's display name.
	Name string `json:"name"`

	// Role is the member's role (pilot or attendant).
	Role Role `json:"role"`

	// Capabilities holds the license type for pilots (e.g., "ATPL") and
	// aircraft type ratings for attendants (e.g., "A320", "B737").
	Capabilities []string `json:"capabilities"`

	// Base is the member's home base airport code.
	Base string `json:"base"`

	// RestHours is the hours of rest accrued since last duty. It is only
	// enforced for pilots, as an eligibility ceiling of 8 hours, not a floor.
	RestHours float64 `json:"rest_hours"`

	// NextAvailable is the point in time after which the member may be
	// assigned again.
	NextAvailable time.Time `json:"next_available"`

	// AssignedFlights is the cumulative list of flight IDs the member has
	// been assigned to, in assignment order.
	AssignedFlights []string `json:"assigned_flights"`
}

// Utilization returns the number of flights the member has been assigned to.
func (m *CrewMember) Utilization() int {
	return len(m.AssignedFlights)
}
