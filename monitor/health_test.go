package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

type frozenClock struct{ now time.Time }

func (c frozenClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func evalOne(t *testing.T, evaluate types.Evaluator, flight types.Flight) []types.AlertEvent {
	t.Helper()

	events, err := evaluate(context.Background(), []types.Flight{flight})
	require.NoError(t, err)

	return events
}

func TestHealthEngineVibration(t *testing.T) {
	evaluate := Health(DefaultHealthThresholds(), frozenClock{testNow})

	tests := []struct {
		name         string
		vibration    float64
		wantEvents   int
		wantSeverity types.Severity
	}{
		{"within limits", 2.5, 0, 0},
		{"above threshold", 3.5, 1, types.SeverityMedium},
		{"well above threshold", 6.2, 1, types.SeverityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flight := types.Flight{
				ID:         "AI101",
				AircraftID: "VT-A01",
				Logs: []types.FlightLog{{
					Type:    types.LogTypeEngine,
					Metrics: map[string]float64{"engine_vibration": tt.vibration},
				}},
			}

			events := evalOne(t, evaluate, flight)
			require.Len(t, events, tt.wantEvents)
			if tt.wantEvents > 0 {
				e := events[0]
				require.Equal(t, "ENGINE_VIBRATION_HIGH", e.Type)
				require.Equal(t, tt.wantSeverity, e.Severity)
				require.Equal(t, "AI101", e.FlightID)
				require.Equal(t, "engine_vibration", e.Metric)
				require.Equal(t, tt.vibration, e.Value)
				require.Equal(t, testNow, e.Timestamp)
			}
		})
	}
}

func TestHealthEngineFuelAndOil(t *testing.T) {
	evaluate := Health(DefaultHealthThresholds(), frozenClock{testNow})

	flight := types.Flight{
		ID: "AI102",
		Logs: []types.FlightLog{{
			Type: types.LogTypeEngine,
			Metrics: map[string]float64{
				"fuel_flow":       5200,
				"oil_temperature": 118,
			},
		}},
	}

	events := evalOne(t, evaluate, flight)
	require.Len(t, events, 2)
	require.Equal(t, "HIGH_FUEL_BURN", events[0].Type)
	require.Equal(t, types.SeverityMedium, events[0].Severity)
	require.Equal(t, "HIGH_OIL_TEMPERATURE", events[1].Type)
	require.Equal(t, types.SeverityHigh, events[1].Severity)
}

func TestHealthCabin(t *testing.T) {
	evaluate := Health(DefaultHealthThresholds(), frozenClock{testNow})

	t.Run("depressurization is CRITICAL", func(t *testing.T) {
		flight := types.Flight{
			ID: "AI103",
			Logs: []types.FlightLog{{
				Type:    types.LogTypeCabinPressure,
				Metrics: map[string]float64{"pressure_drop_rate": 0.25},
			}},
		}

		events := evalOne(t, evaluate, flight)
		require.Len(t, events, 1)
		require.Equal(t, "RAPID_CABIN_DEPRESSURIZATION", events[0].Type)
		require.Equal(t, types.SeverityCritical, events[0].Severity)
	})

	t.Run("high cabin temperature is MEDIUM", func(t *testing.T) {
		flight := types.Flight{
			ID: "AI104",
			Logs: []types.FlightLog{{
				Type:    types.LogTypeCabinPressure,
				Metrics: map[string]float64{"cabin_temperature": 33},
			}},
		}

		events := evalOne(t, evaluate, flight)
		require.Len(t, events, 1)
		require.Equal(t, "HIGH_CABIN_TEMPERATURE", events[0].Type)
		require.Equal(t, types.SeverityMedium, events[0].Severity)
	})
}

func TestHealthMissingMetricsDefaultToZero(t *testing.T) {
	evaluate := Health(DefaultHealthThresholds(), frozenClock{testNow})

	flight := types.Flight{
		ID: "AI105",
		Logs: []types.FlightLog{
			{Type: types.LogTypeEngine},
			{Type: types.LogTypeCabinPressure},
			{Type: types.LogTypeWeather, Metrics: map[string]float64{"crosswind": 80}},
		},
	}

	// Absent metrics read as zero and weather records are not health input.
	require.Empty(t, evalOne(t, evaluate, flight))
}
