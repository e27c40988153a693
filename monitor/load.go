package monitor

import (
	"github.com/aerologix/flightops/types"
)

// LoadThresholds holds the passenger demand analysis limits.
type LoadThresholds struct {
	// Capacity is the assumed seat count per aircraft.
	Capacity int `yaml:"capacity"`

	// OverbookingFactor flags an OVERBOOKING_RISK when predicted passengers
	// exceed Capacity by this factor.
	OverbookingFactor float64 `yaml:"overbookingFactor"`

	// HighDemand is the load fraction above which a flight counts as
	// nearly full.
	HighDemand float64 `yaml:"highDemand"`

	// LowUtilization is the load fraction below which a flight counts as
	// underutilized.
	LowUtilization float64 `yaml:"lowUtilization"`
}

// DefaultLoadThresholds returns the reference demand limits.
func DefaultLoadThresholds() LoadThresholds {
	return LoadThresholds{
		Capacity:          180,
		OverbookingFactor: 1.1,
		HighDemand:        0.9,
		LowUtilization:    0.4,
	}
}

// LoadPrediction is the per-flight output of the load analysis.
type LoadPrediction struct {
	FlightID            string         `json:"flight_id"`
	AircraftID          string         `json:"aircraft_id"`
	PredictedPassengers int            `json:"predicted_passengers"`
	PredictedLoadFactor float64        `json:"predicted_load_factor"`
	Capacity            int            `json:"capacity"`
	AvailableSeats      int            `json:"available_seats"`
	Scenario            string         `json:"scenario"`
	ScenarioSeverity    types.Severity `json:"scenario_severity"`
	Trend               string         `json:"trend"`
	DemandLevel         string         `json:"demand_level"`
}

// DemandLevel categorizes a predicted load factor.
func DemandLevel(loadFactor float64) string {
	switch {
	case loadFactor > 0.9:
		return "VERY_HIGH"
	case loadFactor > 0.7:
		return "HIGH"
	case loadFactor > 0.5:
		return "MODERATE"
	case loadFactor > 0.3:
		return "LOW"
	default:
		return "VERY_LOW"
	}
}

// PredictLoad computes the passenger demand prediction for one flight from
// its passenger_load telemetry. Pure function; flights without load logs
// get a zero prediction with a LOW_UTILIZATION scenario. Counts derive from
// the load_factor reading when no explicit passenger_count is logged.
func PredictLoad(th LoadThresholds, flight types.Flight) LoadPrediction {
	var counts []float64
	var factors []float64

	for _, log := range flight.Logs {
		if log.Type != types.LogTypePassengerLoad {
			continue
		}

		factor := log.Metric("load_factor")
		count, ok := log.Metrics["passenger_count"]
		if !ok {
			count = factor * float64(th.Capacity)
		}

		counts = append(counts, count)
		factors = append(factors, factor)
	}

	passengers := int(mean(counts))
	loadFactor := mean(factors)
	if loadFactor > 1.0 {
		loadFactor = 1.0
	}

	available := th.Capacity - passengers
	if available < 0 {
		available = 0
	}

	scenario, severity := loadScenario(th, passengers)

	return LoadPrediction{
		FlightID:            flight.ID,
		AircraftID:          flight.AircraftID,
		PredictedPassengers: passengers,
		PredictedLoadFactor: loadFactor,
		Capacity:            th.Capacity,
		AvailableSeats:      available,
		Scenario:            scenario,
		ScenarioSeverity:    severity,
		Trend:               loadTrend(counts),
		DemandLevel:         DemandLevel(loadFactor),
	}
}

func loadScenario(th LoadThresholds, passengers int) (string, types.Severity) {
	capacity := float64(th.Capacity)
	predicted := float64(passengers)

	switch {
	case predicted > capacity*th.OverbookingFactor:
		return "OVERBOOKING_RISK", types.SeverityHigh
	case predicted > capacity*th.HighDemand:
		return "HIGH_DEMAND", types.SeverityMedium
	case predicted < capacity*th.LowUtilization:
		return "LOW_UTILIZATION", types.SeverityLow
	default:
		return "NORMAL_DEMAND", types.SeverityLow
	}
}

// loadTrend compares the first and last passenger counts; shifts within 5%
// count as stable.
func loadTrend(counts []float64) string {
	if len(counts) < 2 || counts[0] == 0 {
		return "stable"
	}

	change := (counts[len(counts)-1] - counts[0]) / counts[0]
	switch {
	case change > 0.05:
		return "increasing"
	case change < -0.05:
		return "decreasing"
	default:
		return "stable"
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
