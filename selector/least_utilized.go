package selector

import (
	"sort"

	"github.com/aerologix/flightops/types"
)

// LeastUtilized selects the members with the fewest assigned flights,
// breaking ties by crew ID for determinism.
//
// Over repeated batches this spreads duty more evenly than random selection
// at the cost of predictability.
type LeastUtilized struct{}

var _ types.CrewSelector = (*LeastUtilized)(nil)

// NewLeastUtilized creates a new least-utilized selector.
func NewLeastUtilized() *LeastUtilized {
	return &LeastUtilized{}
}

// Pick selects the member with the fewest assigned flights.
func (lu *LeastUtilized) Pick(pool []*types.CrewMember) int {
	if len(pool) == 0 {
		return -1
	}

	best := 0
	for i, m := range pool[1:] {
		idx := i + 1
		if less(m, pool[best]) {
			best = idx
		}
	}

	return best
}

// Sample selects up to n distinct members ordered by ascending utilization.
func (lu *LeastUtilized) Sample(pool []*types.CrewMember, n int) []int {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}

	sort.SliceStable(indices, func(a, b int) bool {
		return less(pool[indices[a]], pool[indices[b]])
	})

	return indices[:n]
}

func less(a, b *types.CrewMember) bool {
	if a.Utilization() != b.Utilization() {
		return a.Utilization() < b.Utilization()
	}

	return a.ID < b.ID
}
