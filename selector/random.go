package selector

import (
	rand "math/rand/v2"
	"sync"

	"github.com/aerologix/flightops/types"
)

// Random selects crew uniformly at random, matching the reference selection
// behavior.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ types.CrewSelector = (*Random)(nil)

// NewRandom creates a random selector seeded from the global PRNG.
//
// Returns:
//   - *Random: Initialized selector
func NewRandom() *Random {
	return &Random{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewRandomSeeded creates a random selector with a deterministic seed.
//
// Useful for reproducing a specific assignment run.
//
// Parameters:
//   - seed: PRNG seed
//
// Returns:
//   - *Random: Initialized selector
func NewRandomSeeded(seed int64) *Random {
	s1 := uint64(seed)
	s2 := s1 ^ 0x9e3779b97f4a7c15

	return &Random{rng: rand.New(rand.NewPCG(s1, s2))}
}

// Pick selects one member uniformly at random.
func (r *Random) Pick(pool []*types.CrewMember) int {
	if len(pool) == 0 {
		return -1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(len(pool))
}

// Sample selects up to n distinct members uniformly without replacement.
func (r *Random) Sample(pool []*types.CrewMember, n int) []int {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rng.Perm(len(pool))

	return perm[:n]
}
