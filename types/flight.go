package types

// Telemetry log types attached to flights.
const (
	LogTypeEngine        = "engine_performance"
	LogTypeWeather       = "weather_data"
	LogTypeCabinPressure = "cabin_pressure"
	LogTypePassengerLoad = "passenger_load"
)

// FlightLog is one telemetry record attached to a flight.
//
// Metric values are stored in loosely-typed maps because the upstream feeds
// are heterogeneous; absent fields default to zero/false/"" rather than
// failing, per the data-shape error policy.
type FlightLog struct {
	// Type is one of the LogType constants.
	Type string `json:"log_type"`

	// Metrics holds numeric readings (e.g., "engine_vibration": 3.2).
	Metrics map[string]float64 `json:"metrics,omitempty"`

	// Flags holds boolean readings (e.g., "thunderstorm": true).
	Flags map[string]bool `json:"flags,omitempty"`

	// Labels holds categorical readings (e.g., "turbulence": "moderate").
	Labels map[string]string `json:"labels,omitempty"`
}

// Metric returns the named numeric reading, or 0 when absent.
func (l FlightLog) Metric(name string) float64 {
	return l.Metrics[name]
}

// Flag returns the named boolean reading, or false when absent.
func (l FlightLog) Flag(name string) bool {
	return l.Flags[name]
}

// Label returns the named categorical reading, or "" when absent.
func (l FlightLog) Label(name string) string {
	return l.Labels[name]
}

// Flight is a read-only input to the assignment engine and the monitors.
type Flight struct {
	// ID uniquely identifies the flight (e.g., "AI101").
	ID string `json:"flight_id"`

	// AircraftID identifies the operating airframe (e.g., "VT-AXB").
	AircraftID string `json:"aircraft_id"`

	// Origin and Destination are airport codes. Optional.
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`

	// Logs holds the telemetry records evaluated by the monitors.
	Logs []FlightLog `json:"logs,omitempty"`
}
