package schedule

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"sync"
	"time"

	"github.com/aerologix/flightops/roster"
	"github.com/aerologix/flightops/types"
)

// Crew selection and duty parameters.
const (
	// captainWindow is the slice of the eligible pilot pool the captain is
	// drawn from; the first officer is drawn from the remainder, so the two
	// cockpit seats always come from disjoint index ranges.
	captainWindow = 5

	// maxAttendants is the cabin crew complement per flight.
	maxAttendants = 4

	// Flight durations are drawn uniformly from [minFlightHours, maxFlightHours].
	minFlightHours = 1
	maxFlightHours = 6

	// restFloorHours is added to the flight duration to form the rest period.
	restFloorHours = 10
)

// Engine assigns crew to flights, mutating roster availability as a side
// effect.
//
// Assign processes whole batches under a single mutex, so concurrent callers
// are serialized and roster mutation has exactly one writer at a time.
type Engine struct {
	roster   *roster.Roster
	selector types.CrewSelector
	clock    types.Clock
	logger   types.Logger
	metrics  types.MetricsCollector

	mu  sync.Mutex
	rng *rand.Rand
}

// NewEngine creates an assignment engine.
//
// Parameters:
//   - crewRoster: Roster the engine draws from and mutates
//   - sel: Crew selection policy
//   - clock: Time source for eligibility checks and rest periods
//
// Returns:
//   - *Engine: Initialized engine
func NewEngine(crewRoster *roster.Roster, sel types.CrewSelector, clock types.Clock) *Engine {
	return &Engine{
		roster:   crewRoster,
		selector: sel,
		clock:    clock,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// SetLogger sets the logger. Optional; defaults to silent.
func (e *Engine) SetLogger(logger types.Logger) {
	e.logger = logger
}

// SetMetrics sets the metrics collector. Optional.
func (e *Engine) SetMetrics(metrics types.MetricsCollector) {
	e.metrics = metrics
}

// SetDurationSeed makes flight-duration draws deterministic.
//
// Selection randomness is controlled separately via the selector; this only
// covers the 1-6 hour duration draw.
func (e *Engine) SetDurationSeed(seed int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s1 := uint64(seed)
	e.rng = rand.New(rand.NewPCG(s1, s1^0x9e3779b97f4a7c15))
}

// Assign assigns crew to the given flights in input order and returns the
// assignments together with detected issues and a utilization summary.
//
// Flights are processed in the caller-determined order; they are not
// re-sorted by scheduled time. Roster availability is updated after each
// flight, before the next one is processed, so the eligible pools shrink
// across the batch. A flight with an exhausted pool receives a partial or
// empty crew; the conflict detector flags it downstream. No retries are
// performed.
//
// Parameters:
//   - ctx: Context for cancellation between flights
//   - flights: Ordered flight batch
//
// Returns:
//   - types.AssignmentResult: Assignments, issues and summary
//   - error: Context cancellation only; scheduling problems are Issues, not errors
func (e *Engine) Assign(ctx context.Context, flights []types.Flight) (types.AssignmentResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Now()
	assignments := make([]types.Assignment, 0, len(flights))

	for _, flight := range flights {
		select {
		case <-ctx.Done():
			return types.AssignmentResult{}, fmt.Errorf("assignment batch cancelled: %w", ctx.Err())
		default:
		}

		assignments = append(assignments, e.assignOne(flight))
	}

	issues := Detect(assignments)
	summary := Summarize(assignments)

	if e.metrics != nil {
		e.metrics.RecordAssignmentBatch(len(flights), len(issues), time.Since(start))
	}
	if e.logger != nil {
		e.logger.Info("assignment batch completed",
			"flights", len(flights),
			"issues", len(issues),
			"crew_utilized", summary.TotalCrewUtilized,
		)
	}

	return types.AssignmentResult{
		Assignments: assignments,
		Issues:      issues,
		Summary:     summary,
	}, nil
}

// assignOne assigns crew to a single flight and updates roster availability.
func (e *Engine) assignOne(flight types.Flight) types.Assignment {
	now := e.clock.Now()

	pilots := e.roster.AvailablePilots(now)
	attendants := e.roster.AvailableAttendants(now)

	var captain, firstOfficer *types.CrewMember

	window := captainWindow
	if len(pilots) < window {
		window = len(pilots)
	}
	if window > 0 {
		if idx := e.selector.Pick(pilots[:window]); idx >= 0 {
			captain = pilots[idx]
		}
	}

	// The first officer comes from the pool beyond the captain window, so
	// captain != first officer whenever both are present. Pools of five or
	// fewer pilots get no first officer.
	if len(pilots) > captainWindow {
		if idx := e.selector.Pick(pilots[captainWindow:]); idx >= 0 {
			firstOfficer = pilots[captainWindow+idx]
		}
	}

	cabinCount := maxAttendants
	if len(attendants) < cabinCount {
		cabinCount = len(attendants)
	}
	cabin := make([]*types.CrewMember, 0, cabinCount)
	for _, idx := range e.selector.Sample(attendants, cabinCount) {
		cabin = append(cabin, attendants[idx])
	}

	duration := minFlightHours + e.rng.IntN(maxFlightHours-minFlightHours+1)
	restPeriod := time.Duration(duration+restFloorHours) * time.Hour
	availableAgain := now.Add(restPeriod)

	assignment := types.Assignment{
		FlightID:       flight.ID,
		AircraftID:     flight.AircraftID,
		Attendants:     make([]string, 0, len(cabin)),
		AssignmentTime: now,
	}

	var selected []string
	if captain != nil {
		id := captain.ID
		assignment.Captain = &id
		selected = append(selected, id)
	}
	if firstOfficer != nil {
		id := firstOfficer.ID
		assignment.FirstOfficer = &id
		selected = append(selected, id)
	}
	for _, a := range cabin {
		assignment.Attendants = append(assignment.Attendants, a.ID)
		selected = append(selected, a.ID)
	}
	assignment.CrewCount = len(selected)

	e.roster.MarkAssigned(selected, flight.ID, availableAgain)

	if e.logger != nil && (captain == nil || firstOfficer == nil) {
		e.logger.Debug("flight assigned with partial cockpit crew",
			"flight_id", flight.ID,
			"eligible_pilots", len(pilots),
		)
	}

	return assignment
}
