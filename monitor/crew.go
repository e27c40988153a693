package monitor

import (
	"context"
	"fmt"

	"github.com/aerologix/flightops/schedule"
	"github.com/aerologix/flightops/types"
)

// Crew returns an evaluator that runs an assignment batch over the flight
// snapshot and surfaces CRITICAL scheduling issues as alert events.
//
// The engine serializes whole batches internally, so this evaluator is safe
// to run alongside other engine callers; in the reference deployment it is
// the engine's only periodic trigger.
func Crew(engine *schedule.Engine, clock types.Clock) types.Evaluator {
	return func(ctx context.Context, flights []types.Flight) ([]types.AlertEvent, error) {
		result, err := engine.Assign(ctx, flights)
		if err != nil {
			return nil, fmt.Errorf("crew assignment failed: %w", err)
		}

		var events []types.AlertEvent
		for _, issue := range result.Issues {
			if issue.Severity < types.SeverityCritical {
				continue
			}

			now := clock.Now()
			events = append(events, types.AlertEvent{
				AlertID:   types.NewAlertID(string(issue.Type), issue.FlightID, now),
				FlightID:  issue.FlightID,
				Timestamp: now,
				Type:      string(issue.Type),
				Severity:  issue.Severity,
				Message:   fmt.Sprintf("Crew issue for flight %s: missing %s", issue.FlightID, issue.MissingRole),
				Payload:   map[string]any{"missing_role": issue.MissingRole},
			})
		}

		return events, nil
	}
}
