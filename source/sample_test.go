package source

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func TestSampleDeterministic(t *testing.T) {
	a := Sample(10, 42)
	b := Sample(10, 42)
	require.Equal(t, a, b)

	c := Sample(10, 43)
	require.NotEqual(t, a, c)
}

func TestSampleShape(t *testing.T) {
	flights := Sample(5, 7)
	require.Len(t, flights, 5)

	for i, f := range flights {
		require.Equal(t, fmt.Sprintf("AI%d", 100+i), f.ID)
		require.NotEmpty(t, f.AircraftID)
		require.NotEqual(t, f.Origin, f.Destination)
		require.Len(t, f.Logs, 4)

		byType := make(map[string]types.FlightLog)
		for _, log := range f.Logs {
			byType[log.Type] = log
		}
		require.Contains(t, byType, types.LogTypeWeather)
		require.Contains(t, byType, types.LogTypeEngine)
		require.Contains(t, byType, types.LogTypeCabinPressure)
		require.Contains(t, byType, types.LogTypePassengerLoad)
	}
}

func TestStaticListAndUpdate(t *testing.T) {
	src := NewStatic([]types.Flight{{ID: "AI101"}})

	flights, err := src.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 1)

	// Mutating the returned slice does not affect the source.
	flights[0].ID = "mutated"
	again, err := src.ListFlights(context.Background())
	require.NoError(t, err)
	require.Equal(t, "AI101", again[0].ID)

	src.Update([]types.Flight{{ID: "AI201"}, {ID: "AI202"}})
	updated, err := src.ListFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, updated, 2)
	require.Equal(t, "AI201", updated[0].ID)
}
