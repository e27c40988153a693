package monitor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func loadFlight(factors ...float64) types.Flight {
	logs := make([]types.FlightLog, 0, len(factors))
	for _, f := range factors {
		logs = append(logs, types.FlightLog{
			Type:    types.LogTypePassengerLoad,
			Metrics: map[string]float64{"load_factor": f},
		})
	}

	return types.Flight{ID: "AI101", AircraftID: "VT-A01", Logs: logs}
}

func TestPredictLoadFromLoadFactor(t *testing.T) {
	th := DefaultLoadThresholds()

	// 80% of 180 seats, no explicit passenger count.
	p := PredictLoad(th, loadFlight(0.8))
	require.Equal(t, 144, p.PredictedPassengers)
	require.InDelta(t, 0.8, p.PredictedLoadFactor, 1e-9)
	require.Equal(t, 180, p.Capacity)
	require.Equal(t, 36, p.AvailableSeats)
	require.Equal(t, "HIGH", p.DemandLevel)
	require.Equal(t, "NORMAL_DEMAND", p.Scenario)
	require.Equal(t, "stable", p.Trend)
}

func TestPredictLoadPrefersPassengerCount(t *testing.T) {
	th := DefaultLoadThresholds()

	flight := types.Flight{ID: "AI101", Logs: []types.FlightLog{{
		Type:    types.LogTypePassengerLoad,
		Metrics: map[string]float64{"passenger_count": 150, "load_factor": 0.5},
	}}}

	p := PredictLoad(th, flight)
	require.Equal(t, 150, p.PredictedPassengers)
	require.InDelta(t, 0.5, p.PredictedLoadFactor, 1e-9)
}

func TestPredictLoadScenarios(t *testing.T) {
	th := DefaultLoadThresholds()

	tests := []struct {
		name         string
		factor       float64
		wantScenario string
		wantSeverity types.Severity
	}{
		{"overbooked", 1.2, "OVERBOOKING_RISK", types.SeverityHigh},
		{"nearly full", 0.95, "HIGH_DEMAND", types.SeverityMedium},
		{"underutilized", 0.2, "LOW_UTILIZATION", types.SeverityLow},
		{"normal", 0.6, "NORMAL_DEMAND", types.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PredictLoad(th, loadFlight(tt.factor))
			require.Equal(t, tt.wantScenario, p.Scenario)
			require.Equal(t, tt.wantSeverity, p.ScenarioSeverity)
		})
	}
}

func TestPredictLoadCapsFactorAtFull(t *testing.T) {
	p := PredictLoad(DefaultLoadThresholds(), loadFlight(1.3))
	require.InDelta(t, 1.0, p.PredictedLoadFactor, 1e-9)
	require.Zero(t, p.AvailableSeats)
}

func TestPredictLoadTrend(t *testing.T) {
	tests := []struct {
		name    string
		factors []float64
		want    string
	}{
		{"rising", []float64{0.5, 0.6, 0.7}, "increasing"},
		{"falling", []float64{0.7, 0.6, 0.5}, "decreasing"},
		{"flat", []float64{0.6, 0.61}, "stable"},
		{"single reading", []float64{0.6}, "stable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PredictLoad(DefaultLoadThresholds(), loadFlight(tt.factors...))
			require.Equal(t, tt.want, p.Trend)
		})
	}
}

func TestPredictLoadWithoutLogs(t *testing.T) {
	p := PredictLoad(DefaultLoadThresholds(), types.Flight{ID: "AI101"})
	require.Zero(t, p.PredictedPassengers)
	require.Equal(t, "LOW_UTILIZATION", p.Scenario)
	require.Equal(t, "VERY_LOW", p.DemandLevel)
	require.Equal(t, 180, p.AvailableSeats)
}

func TestDemandLevelBands(t *testing.T) {
	require.Equal(t, "VERY_HIGH", DemandLevel(0.95))
	require.Equal(t, "HIGH", DemandLevel(0.8))
	require.Equal(t, "MODERATE", DemandLevel(0.6))
	require.Equal(t, "LOW", DemandLevel(0.4))
	require.Equal(t, "VERY_LOW", DemandLevel(0.2))
}
