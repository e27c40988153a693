package schedule

import "github.com/aerologix/flightops/types"

// Summarize tallies crew utilization across an assignment batch.
//
// Every crew ID occurrence counts: captain, first officer and attendants.
// Average and maximum default to zero when no crew were utilized.
func Summarize(assignments []types.Assignment) types.Summary {
	utilization := make(map[string]int)
	for _, a := range assignments {
		for _, id := range a.CrewIDs() {
			utilization[id]++
		}
	}

	summary := types.Summary{
		TotalFlightsScheduled: len(assignments),
		TotalCrewUtilized:     len(utilization),
	}

	if len(utilization) == 0 {
		return summary
	}

	total := 0
	for _, count := range utilization {
		total += count
		if count > summary.MaxFlightsPerCrew {
			summary.MaxFlightsPerCrew = count
		}
	}
	summary.AvgFlightsPerCrew = float64(total) / float64(len(utilization))

	return summary
}
