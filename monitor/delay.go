package monitor

import (
	"context"
	"fmt"

	"github.com/aerologix/flightops/types"
)

// DelayThresholds holds the delay prediction limits.
type DelayThresholds struct {
	// CrosswindKnots is the crosswind landing limit.
	CrosswindKnots float64 `yaml:"crosswindKnots"`

	// VisibilityMeters is the minimum visibility.
	VisibilityMeters float64 `yaml:"visibilityMeters"`

	// ThrustDeviationPct is the allowed engine thrust deviation from 100%.
	ThrustDeviationPct float64 `yaml:"thrustDeviationPct"`

	// LoadFactor is the passenger load fraction above which boarding is
	// expected to run long.
	LoadFactor float64 `yaml:"loadFactor"`

	// ReportMinutes is the minimum predicted delay that produces an alert
	// event; smaller predictions are suppressed as noise.
	ReportMinutes int `yaml:"reportMinutes"`
}

// DefaultDelayThresholds returns the reference delay limits.
func DefaultDelayThresholds() DelayThresholds {
	return DelayThresholds{
		CrosswindKnots:     40,
		VisibilityMeters:   1500,
		ThrustDeviationPct: 20,
		LoadFactor:         0.9,
		ReportMinutes:      30,
	}
}

// DelayPrediction is the per-flight output of the delay evaluator.
type DelayPrediction struct {
	FlightID     string   `json:"flight_id"`
	AircraftID   string   `json:"aircraft_id"`
	DelayMinutes int      `json:"predicted_delay_minutes"`
	Reasons      []string `json:"reasons"`
	Band         string   `json:"severity"`
}

// DelayBand categorizes a predicted delay in minutes.
func DelayBand(minutes int) string {
	switch {
	case minutes == 0:
		return "NONE"
	case minutes <= 30:
		return "MINOR"
	case minutes <= 60:
		return "MODERATE"
	case minutes <= 120:
		return "SIGNIFICANT"
	default:
		return "SEVERE"
	}
}

// PredictDelay computes the delay prediction for one flight from its
// weather, engine and load telemetry. Pure function; missing metrics
// contribute no delay.
func PredictDelay(th DelayThresholds, flight types.Flight) DelayPrediction {
	delay := 0
	var reasons []string

	for _, log := range flight.Logs {
		switch log.Type {
		case types.LogTypeWeather:
			if crosswind := log.Metric("crosswind"); crosswind > th.CrosswindKnots {
				extra := int(crosswind - th.CrosswindKnots)
				if extra > 60 {
					extra = 60
				}
				delay += extra
				reasons = append(reasons, fmt.Sprintf("High crosswind (%.1f knots)", crosswind))
			}
			if _, ok := log.Metrics["visibility"]; ok && log.Metric("visibility") < th.VisibilityMeters {
				delay += 30
				reasons = append(reasons, fmt.Sprintf("Low visibility (%.0f meters)", log.Metric("visibility")))
			}
			if log.Flag("thunderstorm") {
				delay += 45
				reasons = append(reasons, "Thunderstorm detected")
			}
			if turbulence := log.Label("turbulence"); turbulence == "severe" || turbulence == "extreme" {
				delay += 20
				reasons = append(reasons, fmt.Sprintf("%s turbulence", turbulence))
			}

		case types.LogTypeEngine:
			if thrust, ok := log.Metrics["engine_thrust"]; ok {
				deviation := thrust - 100
				if deviation < 0 {
					deviation = -deviation
				}
				if deviation > th.ThrustDeviationPct {
					delay += 60
					reasons = append(reasons, fmt.Sprintf("Engine thrust deviation (%.1f%%)", thrust))
				}
			}
			if vibration := log.Metric("engine_vibration"); vibration > 3.0 {
				delay += 90
				reasons = append(reasons, fmt.Sprintf("High engine vibration (%.2f)", vibration))
			}

		case types.LogTypePassengerLoad:
			if load := log.Metric("load_factor"); load > th.LoadFactor {
				delay += 15
				reasons = append(reasons, fmt.Sprintf("High passenger load (%.0f%%)", load*100))
			}
		}
	}

	return DelayPrediction{
		FlightID:     flight.ID,
		AircraftID:   flight.AircraftID,
		DelayMinutes: delay,
		Reasons:      reasons,
		Band:         DelayBand(delay),
	}
}

// Delay returns an evaluator that predicts departure delays and emits a
// DELAY_PREDICTED event for every flight whose predicted delay exceeds the
// report threshold. Predictions above 60 minutes are HIGH severity, the rest
// MEDIUM.
func Delay(th DelayThresholds, clock types.Clock) types.Evaluator {
	return func(_ context.Context, flights []types.Flight) ([]types.AlertEvent, error) {
		var events []types.AlertEvent
		for _, flight := range flights {
			prediction := PredictDelay(th, flight)
			if prediction.DelayMinutes <= th.ReportMinutes {
				continue
			}

			severity := types.SeverityMedium
			if prediction.DelayMinutes > 60 {
				severity = types.SeverityHigh
			}

			now := clock.Now()
			events = append(events, types.AlertEvent{
				AlertID:    types.NewAlertID("DELAY_PREDICTED", flight.ID, now),
				FlightID:   flight.ID,
				AircraftID: flight.AircraftID,
				Timestamp:  now,
				Type:       "DELAY_PREDICTED",
				Severity:   severity,
				Metric:     "predicted_delay_minutes",
				Value:      float64(prediction.DelayMinutes),
				Threshold:  float64(th.ReportMinutes),
				Message:    fmt.Sprintf("Flight %s delayed by %d minutes", flight.ID, prediction.DelayMinutes),
				Payload:    map[string]any{"reasons": prediction.Reasons, "band": prediction.Band},
			})
		}

		return events, nil
	}
}
