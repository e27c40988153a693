package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/aerologix/flightops/types"
)

// RouteThresholds holds the enroute and destination weather limits.
type RouteThresholds struct {
	// CrosswindKnots is the enroute crosswind alert limit.
	CrosswindKnots float64 `yaml:"crosswindKnots"`

	// DestVisibilityMeters is the minimum acceptable destination visibility.
	DestVisibilityMeters float64 `yaml:"destVisibilityMeters"`

	// DestWindKnots is the destination surface wind limit.
	DestWindKnots float64 `yaml:"destWindKnots"`
}

// DefaultRouteThresholds returns the reference route limits.
func DefaultRouteThresholds() RouteThresholds {
	return RouteThresholds{
		CrosswindKnots:       40,
		DestVisibilityMeters: 1500,
		DestWindKnots:        30,
	}
}

// alternates maps destination airports to their diversion candidates, in
// preference order.
var alternates = map[string][]string{
	"DEL": {"AMD", "ATQ"},
	"BOM": {"GOI", "PNQ"},
	"BLR": {"MAA", "HYD"},
	"MAA": {"BLR", "HYD"},
	"HYD": {"BLR", "GOI"},
	"CCU": {"GAU", "PAT"},
	"DXB": {"AUH", "DOH"},
	"LHR": {"LGW", "MAN"},
	"JFK": {"EWR", "BOS"},
	"SIN": {"KUL", "CGK"},
}

// Route returns an evaluator that scans weather telemetry along each
// flight's route and at its destination. When any weather alert fires and
// the destination has a known alternate, a DIVERSION_RECOMMENDED event
// names the preferred alternate. Flights without both an origin and a
// destination are skipped.
func Route(th RouteThresholds, clock types.Clock) types.Evaluator {
	return func(_ context.Context, flights []types.Flight) ([]types.AlertEvent, error) {
		var events []types.AlertEvent
		for _, flight := range flights {
			if flight.Origin == "" || flight.Destination == "" {
				continue
			}

			flightEvents := checkRouteWeather(th, clock, flight)
			if len(flightEvents) > 0 {
				if diversion, ok := suggestDiversion(clock, flight); ok {
					flightEvents = append(flightEvents, diversion)
				}
			}
			events = append(events, flightEvents...)
		}

		return events, nil
	}
}

func checkRouteWeather(th RouteThresholds, clock types.Clock, flight types.Flight) []types.AlertEvent {
	var events []types.AlertEvent
	now := clock.Now()

	for _, log := range flight.Logs {
		if log.Type != types.LogTypeWeather {
			continue
		}

		if turbulence := log.Label("turbulence"); turbulence == "severe" || turbulence == "extreme" {
			events = append(events, routeEvent(flight, now, "SEVERE_TURBULENCE_ENROUTE", types.SeverityHigh,
				"turbulence", 0, 0,
				"Severe turbulence detected along route",
				"Consider altitude change or route deviation"))
		}

		if log.Flag("thunderstorm") {
			events = append(events, routeEvent(flight, now, "THUNDERSTORM_ENROUTE", types.SeverityHigh,
				"thunderstorm", 1, 0,
				"Thunderstorm activity along route",
				"Request weather deviation clearance"))
		}

		if crosswind := log.Metric("crosswind"); crosswind > th.CrosswindKnots {
			events = append(events, routeEvent(flight, now, "HIGH_CROSSWIND_ENROUTE", types.SeverityMedium,
				"crosswind", crosswind, th.CrosswindKnots,
				fmt.Sprintf("High crosswind (%.1f knots) along route", crosswind),
				"Be prepared for challenging conditions"))
		}

		if vis, ok := log.Metrics["visibility"]; ok && vis < th.DestVisibilityMeters {
			events = append(events, routeEvent(flight, now, "LOW_VISIBILITY_AT_DESTINATION", types.SeverityHigh,
				"visibility", vis, th.DestVisibilityMeters,
				fmt.Sprintf("Low visibility at %s: %.0f meters", flight.Destination, vis),
				"Consider holding or diversion"))
		}

		if wind, ok := log.Metrics["wind_speed"]; ok && wind > th.DestWindKnots {
			events = append(events, routeEvent(flight, now, "HIGH_WINDS_AT_DESTINATION", types.SeverityMedium,
				"wind_speed", wind, th.DestWindKnots,
				fmt.Sprintf("High winds at %s: %.1f knots", flight.Destination, wind),
				"Be prepared for challenging landing"))
		}
	}

	return events
}

func suggestDiversion(clock types.Clock, flight types.Flight) (types.AlertEvent, bool) {
	alts := alternates[flight.Destination]
	if len(alts) == 0 {
		return types.AlertEvent{}, false
	}

	alt := alts[0]
	now := clock.Now()
	event := routeEvent(flight, now, "DIVERSION_RECOMMENDED", types.SeverityHigh,
		"", 0, 0,
		fmt.Sprintf("Consider diverting to %s due to weather at %s", alt, flight.Destination),
		fmt.Sprintf("Divert to %s", alt))
	event.Payload["current_destination"] = flight.Destination
	event.Payload["suggested_diversion"] = alt

	return event, true
}

func routeEvent(flight types.Flight, now time.Time, alertType string, severity types.Severity, metric string, value, threshold float64, message, recommendation string) types.AlertEvent {
	return types.AlertEvent{
		AlertID:    types.NewAlertID(alertType, flight.ID, now),
		FlightID:   flight.ID,
		AircraftID: flight.AircraftID,
		Timestamp:  now,
		Type:       alertType,
		Severity:   severity,
		Metric:     metric,
		Value:      value,
		Threshold:  threshold,
		Message:    message,
		Payload:    map[string]any{"recommendation": recommendation},
	}
}
