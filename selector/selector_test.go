package selector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func pool(n int) []*types.CrewMember {
	members := make([]*types.CrewMember, n)
	for i := range members {
		members[i] = &types.CrewMember{ID: string(rune('A' + i))}
	}

	return members
}

func TestRandomPickBounds(t *testing.T) {
	r := NewRandomSeeded(1)
	p := pool(5)

	for range 100 {
		idx := r.Pick(p)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, len(p))
	}

	require.Equal(t, -1, r.Pick(nil))
}

func TestRandomSampleDistinct(t *testing.T) {
	r := NewRandomSeeded(7)
	p := pool(10)

	for range 50 {
		indices := r.Sample(p, 4)
		require.Len(t, indices, 4)

		seen := make(map[int]bool)
		for _, idx := range indices {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, len(p))
			require.False(t, seen[idx], "duplicate index %d", idx)
			seen[idx] = true
		}
	}
}

func TestRandomSampleClampsToPool(t *testing.T) {
	r := NewRandomSeeded(3)
	p := pool(2)

	require.Len(t, r.Sample(p, 4), 2)
	require.Nil(t, r.Sample(p, 0))
	require.Nil(t, r.Sample(nil, 4))
}

func TestRandomSeededReproducible(t *testing.T) {
	p := pool(8)

	a := NewRandomSeeded(42)
	b := NewRandomSeeded(42)

	for range 20 {
		require.Equal(t, a.Pick(p), b.Pick(p))
		require.Equal(t, a.Sample(p, 3), b.Sample(p, 3))
	}
}

func TestRoundRobinPick(t *testing.T) {
	rr := NewRoundRobin()
	p := pool(3)

	require.Equal(t, 0, rr.Pick(p))
	require.Equal(t, 1, rr.Pick(p))
	require.Equal(t, 2, rr.Pick(p))
	require.Equal(t, 0, rr.Pick(p))
	require.Equal(t, -1, rr.Pick(nil))
}

func TestRoundRobinSampleWraps(t *testing.T) {
	rr := NewRoundRobin()
	p := pool(4)

	require.Equal(t, []int{0, 1, 2}, rr.Sample(p, 3))
	require.Equal(t, []int{3, 0, 1}, rr.Sample(p, 3))
}

func TestLeastUtilizedPick(t *testing.T) {
	members := []*types.CrewMember{
		{ID: "C", AssignedFlights: []string{"AI1", "AI2"}},
		{ID: "B", AssignedFlights: []string{"AI1"}},
		{ID: "A", AssignedFlights: []string{"AI1"}},
	}

	lu := NewLeastUtilized()

	// ties break by ID
	require.Equal(t, 2, lu.Pick(members))
	require.Equal(t, -1, lu.Pick(nil))
}

func TestLeastUtilizedSampleOrder(t *testing.T) {
	members := []*types.CrewMember{
		{ID: "A", AssignedFlights: []string{"AI1", "AI2", "AI3"}},
		{ID: "B"},
		{ID: "C", AssignedFlights: []string{"AI1"}},
		{ID: "D"},
	}

	lu := NewLeastUtilized()

	require.Equal(t, []int{1, 3, 2}, lu.Sample(members, 3))
}
