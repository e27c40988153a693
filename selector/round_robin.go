package selector

import (
	"sync"

	"github.com/aerologix/flightops/types"
)

// RoundRobin selects crew with a rotating cursor.
//
// Selection is fully deterministic for a given sequence of pool sizes, which
// makes it the selector of choice for reproducible scheduling runs and
// tests. It does not balance by utilization; see LeastUtilized for that.
type RoundRobin struct {
	mu     sync.Mutex
	cursor int
}

var _ types.CrewSelector = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin selector.
//
// Returns:
//   - *RoundRobin: Initialized selector with the cursor at zero
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Pick selects the member at the current cursor and advances it.
func (rr *RoundRobin) Pick(pool []*types.CrewMember) int {
	if len(pool) == 0 {
		return -1
	}

	rr.mu.Lock()
	defer rr.mu.Unlock()

	idx := rr.cursor % len(pool)
	rr.cursor++

	return idx
}

// Sample selects up to n consecutive members starting at the cursor.
func (rr *RoundRobin) Sample(pool []*types.CrewMember, n int) []int {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	rr.mu.Lock()
	defer rr.mu.Unlock()

	indices := make([]int, 0, n)
	for i := range n {
		indices = append(indices, (rr.cursor+i)%len(pool))
	}
	rr.cursor += n

	return indices
}
