package source

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/aerologix/flightops/types"
)

var (
	sampleRoutes       = []string{"DEL", "BOM", "BLR", "MAA", "CCU", "HYD"}
	sampleTurbulence   = []string{"none", "light", "moderate", "severe"}
	sampleAircraftFmts = []string{"VT-A%02d", "VT-B%02d"}
)

// Sample generates a deterministic synthetic flight dataset with weather,
// engine, cabin and passenger-load telemetry.
//
// The same (n, seed) pair always yields the same dataset, making demo runs
// and tests reproducible. Metric ranges intentionally straddle the default
// monitor thresholds so a sample run produces a realistic mix of alerts.
//
// Parameters:
//   - n: Number of flights to generate
//   - seed: PRNG seed
//
// Returns:
//   - []types.Flight: Generated flights (AI100, AI101, ...)
func Sample(n int, seed int64) []types.Flight {
	s1 := uint64(seed)
	rng := rand.New(rand.NewPCG(s1, s1^0x9e3779b97f4a7c15))

	flights := make([]types.Flight, 0, n)
	for i := range n {
		origin := sampleRoutes[rng.IntN(len(sampleRoutes))]
		dest := sampleRoutes[rng.IntN(len(sampleRoutes))]
		for dest == origin {
			dest = sampleRoutes[rng.IntN(len(sampleRoutes))]
		}

		flight := types.Flight{
			ID:          fmt.Sprintf("AI%d", 100+i),
			AircraftID:  fmt.Sprintf(sampleAircraftFmts[i%len(sampleAircraftFmts)], rng.IntN(90)+10),
			Origin:      origin,
			Destination: dest,
			Logs: []types.FlightLog{
				{
					Type: types.LogTypeWeather,
					Metrics: map[string]float64{
						"crosswind":  rng.Float64() * 60,
						"visibility": 500 + rng.Float64()*9500,
					},
					Flags:  map[string]bool{"thunderstorm": rng.IntN(10) == 0},
					Labels: map[string]string{"turbulence": sampleTurbulence[rng.IntN(len(sampleTurbulence))]},
				},
				{
					Type: types.LogTypeEngine,
					Metrics: map[string]float64{
						"engine_thrust":    80 + rng.Float64()*40,
						"engine_vibration": 0.5 + rng.Float64()*5.5,
						"fuel_flow":        2000 + rng.Float64()*3000,
						"oil_temperature":  70 + rng.Float64()*50,
					},
				},
				{
					Type: types.LogTypeCabinPressure,
					Metrics: map[string]float64{
						"pressure_drop_rate": rng.Float64() * 0.2,
						"cabin_temperature":  18 + rng.Float64()*17,
					},
				},
				{
					Type: types.LogTypePassengerLoad,
					Metrics: map[string]float64{
						"load_factor": 0.4 + rng.Float64()*0.6,
					},
				},
			},
		}
		flights = append(flights, flight)
	}

	return flights
}
