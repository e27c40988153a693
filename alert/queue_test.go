package alert

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func event(producer string, seq int) types.AlertEvent {
	return types.AlertEvent{
		AlertID:  fmt.Sprintf("%s-%d", producer, seq),
		FlightID: producer,
		Value:    float64(seq),
		Type:     "TEST_ALERT",
		Severity: types.SeverityLow,
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(8)

	for i := range 5 {
		require.True(t, q.Enqueue("test", event("a", i)))
	}
	require.Equal(t, 5, q.Len())

	drained := q.Drain()
	require.Len(t, drained, 5)
	for i, e := range drained {
		require.Equal(t, fmt.Sprintf("a-%d", i), e.AlertID)
	}

	require.Nil(t, q.Drain())
}

func TestQueueConcurrentProducersDrainedExactlyOnce(t *testing.T) {
	q := NewQueue(64)

	const producers = 3
	const perProducer = 5

	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			for i := range perProducer {
				q.Enqueue(name, event(name, i))
			}
		}(fmt.Sprintf("prod%d", p))
	}
	wg.Wait()

	drained := q.Drain()
	require.Len(t, drained, producers*perProducer)

	// Every event appears exactly once, and each producer's own emission
	// order is preserved in the interleaving.
	lastSeq := map[string]float64{"prod0": -1, "prod1": -1, "prod2": -1}
	seen := make(map[string]bool)
	for _, e := range drained {
		require.False(t, seen[e.AlertID], "event %s delivered twice", e.AlertID)
		seen[e.AlertID] = true

		require.Greater(t, e.Value, lastSeq[e.FlightID], "producer %s order violated", e.FlightID)
		lastSeq[e.FlightID] = e.Value
	}

	require.Equal(t, 0, q.Len())
}

func TestQueueOverflowDropsNewest(t *testing.T) {
	q := NewQueue(2)

	require.True(t, q.Enqueue("test", event("a", 0)))
	require.True(t, q.Enqueue("test", event("a", 1)))
	require.False(t, q.Enqueue("test", event("a", 2)))
	require.False(t, q.Enqueue("test", event("a", 3)))

	require.Equal(t, uint64(2), q.Dropped())

	// The oldest events survive; the newest were dropped.
	drained := q.Drain()
	require.Len(t, drained, 2)
	require.Equal(t, "a-0", drained[0].AlertID)
	require.Equal(t, "a-1", drained[1].AlertID)

	// The queue stays usable after overflow.
	require.True(t, q.Enqueue("test", event("b", 0)))
	require.Equal(t, 1, q.Len())
}

func TestQueueDefaultCapacity(t *testing.T) {
	q := NewQueue(0)

	for i := range DefaultQueueCapacity {
		require.True(t, q.Enqueue("test", event("a", i)))
	}
	require.False(t, q.Enqueue("test", event("a", DefaultQueueCapacity)))
}
