package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/aerologix/flightops/types"
)

// HealthThresholds holds the aircraft health alerting limits.
type HealthThresholds struct {
	// EngineVibration is the vibration alert threshold in mm/s; readings
	// above EngineVibrationHigh escalate from MEDIUM to HIGH.
	EngineVibration     float64 `yaml:"engineVibration"`
	EngineVibrationHigh float64 `yaml:"engineVibrationHigh"`

	// FuelFlow is the abnormal fuel burn threshold in kg/hr.
	FuelFlow float64 `yaml:"fuelFlow"`

	// OilTemperature is the oil temperature limit in degrees Celsius.
	OilTemperature float64 `yaml:"oilTemperature"`

	// CabinPressureDrop is the depressurization rate limit in PSI/min.
	CabinPressureDrop float64 `yaml:"cabinPressureDrop"`

	// CabinTemperature is the cabin temperature limit in degrees Celsius.
	CabinTemperature float64 `yaml:"cabinTemperature"`
}

// DefaultHealthThresholds returns the reference health limits.
func DefaultHealthThresholds() HealthThresholds {
	return HealthThresholds{
		EngineVibration:     3.0,
		EngineVibrationHigh: 5.0,
		FuelFlow:            4500,
		OilTemperature:      110,
		CabinPressureDrop:   0.1,
		CabinTemperature:    30,
	}
}

// Health returns an evaluator that scans engine and cabin telemetry for
// out-of-limit readings.
func Health(th HealthThresholds, clock types.Clock) types.Evaluator {
	return func(_ context.Context, flights []types.Flight) ([]types.AlertEvent, error) {
		var events []types.AlertEvent
		for _, flight := range flights {
			for _, log := range flight.Logs {
				switch log.Type {
				case types.LogTypeEngine:
					events = append(events, checkEngine(th, clock, flight, log)...)
				case types.LogTypeCabinPressure:
					events = append(events, checkCabin(th, clock, flight, log)...)
				}
			}
		}

		return events, nil
	}
}

func checkEngine(th HealthThresholds, clock types.Clock, flight types.Flight, log types.FlightLog) []types.AlertEvent {
	var events []types.AlertEvent
	now := clock.Now()

	if vibration := log.Metric("engine_vibration"); vibration > th.EngineVibration {
		severity := types.SeverityMedium
		if vibration > th.EngineVibrationHigh {
			severity = types.SeverityHigh
		}
		events = append(events, newEvent(flight, now, "ENGINE_VIBRATION_HIGH", severity,
			"engine_vibration", vibration, th.EngineVibration,
			fmt.Sprintf("Engine vibration %.2f mm/s exceeds threshold %.1f mm/s", vibration, th.EngineVibration)))
	}

	if fuelFlow := log.Metric("fuel_flow"); fuelFlow > th.FuelFlow {
		events = append(events, newEvent(flight, now, "HIGH_FUEL_BURN", types.SeverityMedium,
			"fuel_flow", fuelFlow, th.FuelFlow,
			fmt.Sprintf("High fuel burn detected: %.0f kg/hr", fuelFlow)))
	}

	if oilTemp := log.Metric("oil_temperature"); oilTemp > th.OilTemperature {
		events = append(events, newEvent(flight, now, "HIGH_OIL_TEMPERATURE", types.SeverityHigh,
			"oil_temperature", oilTemp, th.OilTemperature,
			fmt.Sprintf("High oil temperature: %.1f C", oilTemp)))
	}

	return events
}

func checkCabin(th HealthThresholds, clock types.Clock, flight types.Flight, log types.FlightLog) []types.AlertEvent {
	var events []types.AlertEvent
	now := clock.Now()

	if drop := log.Metric("pressure_drop_rate"); drop > th.CabinPressureDrop {
		events = append(events, newEvent(flight, now, "RAPID_CABIN_DEPRESSURIZATION", types.SeverityCritical,
			"pressure_drop_rate", drop, th.CabinPressureDrop,
			fmt.Sprintf("Rapid cabin depressurization: %.3f PSI/min", drop)))
	}

	if temp := log.Metric("cabin_temperature"); temp > th.CabinTemperature {
		events = append(events, newEvent(flight, now, "HIGH_CABIN_TEMPERATURE", types.SeverityMedium,
			"cabin_temperature", temp, th.CabinTemperature,
			fmt.Sprintf("High cabin temperature: %.1f C", temp)))
	}

	return events
}

func newEvent(flight types.Flight, now time.Time, alertType string, severity types.Severity, metric string, value, threshold float64, message string) types.AlertEvent {
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
	}
}
