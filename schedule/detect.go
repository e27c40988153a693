package schedule

import "github.com/aerologix/flightops/types"

// Detect audits an assignment sequence for scheduling problems.
//
// Detection is a single forward pass and a pure function of its input:
// calling it twice on the same sequence yields identical issues. Issue order
// follows assignment order, then crew-role order (captain, first officer,
// attendants) within an assignment; all DOUBLE_BOOKING issues precede all
// CREW_SHORTAGE issues.
//
// DOUBLE_BOOKING references the first flight a member was seen on and the
// repeating flight, with severity HIGH for cockpit roles and MEDIUM for
// attendants. CREW_SHORTAGE is emitted for every assignment missing a
// captain or first officer, severity CRITICAL, captain taking priority when
// both seats are empty.
func Detect(assignments []types.Assignment) []types.Issue {
	var issues []types.Issue

	firstSeen := make(map[string]string, len(assignments)*6)

	record := func(crewID, flightID string, severity types.Severity) {
		if prior, seen := firstSeen[crewID]; seen {
			issues = append(issues, types.Issue{
				Type:     types.IssueDoubleBooking,
				CrewID:   crewID,
				Flights:  []string{prior, flightID},
				Severity: severity,
			})

			return
		}
		firstSeen[crewID] = flightID
	}

	for _, a := range assignments {
		if a.Captain != nil {
			record(*a.Captain, a.FlightID, types.SeverityHigh)
		}
		if a.FirstOfficer != nil {
			record(*a.FirstOfficer, a.FlightID, types.SeverityHigh)
		}
		for _, attendant := range a.Attendants {
			record(attendant, a.FlightID, types.SeverityMedium)
		}
	}

	for _, a := range assignments {
		if a.Captain != nil && a.FirstOfficer != nil {
			continue
		}

		missing := types.MissingFirstOfficer
		if a.Captain == nil {
			missing = types.MissingCaptain
		}

		issues = append(issues, types.Issue{
			Type:        types.IssueCrewShortage,
			FlightID:    a.FlightID,
			MissingRole: missing,
			Severity:    types.SeverityCritical,
		})
	}

	return issues
}
