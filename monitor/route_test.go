package monitor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func routeFlight(logs ...types.FlightLog) types.Flight {
	return types.Flight{
		ID:          "AI101",
		AircraftID:  "VT-A01",
		Origin:      "DEL",
		Destination: "BOM",
		Logs:        logs,
	}
}

func TestRouteQuietWeather(t *testing.T) {
	evaluate := Route(DefaultRouteThresholds(), frozenClock{testNow})

	flight := routeFlight(types.FlightLog{
		Type:    types.LogTypeWeather,
		Metrics: map[string]float64{"crosswind": 15, "visibility": 4000},
		Flags:   map[string]bool{"thunderstorm": false},
		Labels:  map[string]string{"turbulence": "light"},
	})

	require.Empty(t, evalOne(t, evaluate, flight))
}

func TestRouteEnrouteWeatherAlerts(t *testing.T) {
	evaluate := Route(DefaultRouteThresholds(), frozenClock{testNow})

	tests := []struct {
		name         string
		log          types.FlightLog
		wantType     string
		wantSeverity types.Severity
	}{
		{
			"severe turbulence",
			types.FlightLog{Type: types.LogTypeWeather, Labels: map[string]string{"turbulence": "severe"}},
			"SEVERE_TURBULENCE_ENROUTE", types.SeverityHigh,
		},
		{
			"thunderstorm",
			types.FlightLog{Type: types.LogTypeWeather, Flags: map[string]bool{"thunderstorm": true}},
			"THUNDERSTORM_ENROUTE", types.SeverityHigh,
		},
		{
			"high crosswind",
			types.FlightLog{Type: types.LogTypeWeather, Metrics: map[string]float64{"crosswind": 48}},
			"HIGH_CROSSWIND_ENROUTE", types.SeverityMedium,
		},
		{
			"low destination visibility",
			types.FlightLog{Type: types.LogTypeWeather, Metrics: map[string]float64{"visibility": 900}},
			"LOW_VISIBILITY_AT_DESTINATION", types.SeverityHigh,
		},
		{
			"high destination winds",
			types.FlightLog{Type: types.LogTypeWeather, Metrics: map[string]float64{"wind_speed": 38}},
			"HIGH_WINDS_AT_DESTINATION", types.SeverityMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := evalOne(t, evaluate, routeFlight(tt.log))

			// The weather alert plus the diversion recommendation it causes.
			require.Len(t, events, 2)
			require.Equal(t, tt.wantType, events[0].Type)
			require.Equal(t, tt.wantSeverity, events[0].Severity)
			require.Equal(t, testNow, events[0].Timestamp)
			require.Contains(t, events[0].Payload, "recommendation")
			require.Equal(t, "DIVERSION_RECOMMENDED", events[1].Type)
		})
	}
}

func TestRouteDiversionNamesPreferredAlternate(t *testing.T) {
	evaluate := Route(DefaultRouteThresholds(), frozenClock{testNow})

	flight := routeFlight(types.FlightLog{
		Type:  types.LogTypeWeather,
		Flags: map[string]bool{"thunderstorm": true},
	})

	events := evalOne(t, evaluate, flight)
	require.Len(t, events, 2)

	diversion := events[1]
	require.Equal(t, types.SeverityHigh, diversion.Severity)
	require.Equal(t, "BOM", diversion.Payload["current_destination"])
	require.Equal(t, "GOI", diversion.Payload["suggested_diversion"])
}

func TestRouteNoDiversionForUnknownDestination(t *testing.T) {
	evaluate := Route(DefaultRouteThresholds(), frozenClock{testNow})

	flight := routeFlight(types.FlightLog{
		Type:  types.LogTypeWeather,
		Flags: map[string]bool{"thunderstorm": true},
	})
	flight.Destination = "XYZ"

	events := evalOne(t, evaluate, flight)
	require.Len(t, events, 1)
	require.Equal(t, "THUNDERSTORM_ENROUTE", events[0].Type)
}

func TestRouteSkipsFlightsWithoutRoute(t *testing.T) {
	evaluate := Route(DefaultRouteThresholds(), frozenClock{testNow})

	flight := types.Flight{
		ID: "AI101",
		Logs: []types.FlightLog{{
			Type:  types.LogTypeWeather,
			Flags: map[string]bool{"thunderstorm": true},
		}},
	}

	require.Empty(t, evalOne(t, evaluate, flight))
}
