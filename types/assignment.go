package types

import "time"

// Assignment records the crew assigned to one flight.
//
// Assignments are created once per flight per engine batch and are immutable
// afterward. Captain and FirstOfficer are nil when the eligible pilot pool
// could not supply them; they serialize as JSON null per the wire contract.
type Assignment struct {
	FlightID   string `json:"flight_id"`
	AircraftID string `json:"aircraft_id"`

	// Captain is the assigned captain's crew ID, or nil when no captain
	// could be assigned.
	Captain *string `json:"captain"`

	// FirstOfficer is the assigned first officer's crew ID, or nil when the
	// eligible pilot pool had five or fewer members.
	FirstOfficer *string `json:"first_officer"`

	// Attendants is the ordered set of assigned attendant IDs (0-4 members,
	// no duplicates).
	Attendants []string `json:"attendants"`

	// CrewCount is the total number of crew on the assignment.
	CrewCount int `json:"crew_count"`

	// AssignmentTime is when the assignment was produced.
	AssignmentTime time.Time `json:"assignment_time"`
}

// CrewIDs returns all assigned crew IDs in role order: captain, first
// officer, then attendants. Absent roles are skipped.
func (a Assignment) CrewIDs() []string {
	ids := make([]string, 0, 2+len(a.Attendants))
	if a.Captain != nil {
		ids = append(ids, *a.Captain)
	}
	if a.FirstOfficer != nil {
		ids = append(ids, *a.FirstOfficer)
	}
	ids = append(ids, a.Attendants...)

	return ids
}

// IssueType tags a detected scheduling problem.
type IssueType string

const (
	// IssueDoubleBooking flags a crew member assigned to two flights whose
	// availability windows overlap.
	IssueDoubleBooking IssueType = "DOUBLE_BOOKING"

	// IssueCrewShortage flags a flight missing a captain or first officer.
	IssueCrewShortage IssueType = "CREW_SHORTAGE"
)

// Roles named by CREW_SHORTAGE issues.
const (
	MissingCaptain      = "captain"
	MissingFirstOfficer = "first_officer"
)

// Issue is a detected scheduling problem, distinct from a system error.
// Issues are a pure derivative of an assignment sequence: recomputing from
// the same sequence yields the same issues.
type Issue struct {
	Type IssueType `json:"type"`

	// CrewID is set for DOUBLE_BOOKING issues.
	CrewID string `json:"crew_id,omitempty"`

	// Flights is the pair of conflicting flight IDs for DOUBLE_BOOKING.
	Flights []string `json:"flights,omitempty"`

	// FlightID is set for CREW_SHORTAGE issues.
	FlightID string `json:"flight_id,omitempty"`

	// MissingRole names the unfilled role for CREW_SHORTAGE issues; the
	// captain takes priority when both cockpit seats are empty.
	MissingRole string `json:"missing_role,omitempty"`

	Severity Severity `json:"severity"`
}

// Summary aggregates crew utilization across one assignment batch.
type Summary struct {
	TotalFlightsScheduled int     `json:"total_flights_scheduled"`
	TotalCrewUtilized     int     `json:"total_crew_utilized"`
	AvgFlightsPerCrew     float64 `json:"avg_flights_per_crew"`
	MaxFlightsPerCrew     int     `json:"max_flights_per_crew"`
}

// AssignmentResult is the full output of one engine batch.
type AssignmentResult struct {
	Assignments []Assignment `json:"assignments"`
	Issues      []Issue      `json:"issues"`
	Summary     Summary      `json:"summary"`
}
