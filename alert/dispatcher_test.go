package alert

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

type captureSink struct {
	mu     sync.Mutex
	events []types.AlertEvent
}

func (s *captureSink) Name() string { return "capture" }

func (s *captureSink) Deliver(_ context.Context, event types.AlertEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)

	return nil
}

func (s *captureSink) snapshot() []types.AlertEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]types.AlertEvent(nil), s.events...)
}

type failingSink struct{}

func (failingSink) Name() string { return "failing" }

func (failingSink) Deliver(context.Context, types.AlertEvent) error {
	return errors.New("delivery refused")
}

func TestDispatcherDeliversToSinks(t *testing.T) {
	q := NewQueue(16)
	d := NewDispatcher(q, 10*time.Millisecond)

	sink := &captureSink{}
	d.Subscribe(sink)

	q.Enqueue("test", event("a", 0))
	q.Enqueue("test", event("a", 1))

	require.NoError(t, d.Start(context.Background()))
	defer func() { _ = d.Stop() }()

	waitFor(t, time.Second, func() bool { return len(sink.snapshot()) == 2 })

	delivered := sink.snapshot()
	require.Equal(t, "a-0", delivered[0].AlertID)
	require.Equal(t, "a-1", delivered[1].AlertID)
}

func TestDispatcherUnsubscribe(t *testing.T) {
	q := NewQueue(16)
	d := NewDispatcher(q, 10*time.Millisecond)

	kept := &captureSink{}
	removed := &captureSink{}
	d.Subscribe(kept)
	id := d.Subscribe(removed)
	d.Unsubscribe(id)

	q.Enqueue("test", event("a", 0))

	require.NoError(t, d.Start(context.Background()))
	defer func() { _ = d.Stop() }()

	waitFor(t, time.Second, func() bool { return len(kept.snapshot()) == 1 })
	require.Empty(t, removed.snapshot())
}

func TestDispatcherLifecycle(t *testing.T) {
	q := NewQueue(4)
	d := NewDispatcher(q, 10*time.Millisecond)

	require.ErrorIs(t, d.Stop(), ErrDispatcherNotStarted)

	require.NoError(t, d.Start(context.Background()))
	require.ErrorIs(t, d.Start(context.Background()), ErrDispatcherStarted)

	done := d.Done()
	require.NoError(t, d.Stop())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher loop did not exit")
	}
}

func TestDispatcherDoneBeforeStart(t *testing.T) {
	d := NewDispatcher(NewQueue(4), 10*time.Millisecond)

	select {
	case <-d.Done():
	case <-time.After(time.Second):
		t.Fatal("Done blocked before the first Start")
	}
}

func TestDispatcherFinalDrainOnStop(t *testing.T) {
	q := NewQueue(16)
	d := NewDispatcher(q, time.Hour) // tick never fires during the test

	sink := &captureSink{}
	d.Subscribe(sink)

	require.NoError(t, d.Start(context.Background()))

	q.Enqueue("test", event("a", 0))
	q.Enqueue("test", event("a", 1))

	require.NoError(t, d.Stop())

	// Events queued at shutdown were delivered by the final drain.
	require.Len(t, sink.snapshot(), 2)
	require.Equal(t, 0, q.Len())
}

func TestDispatcherPersistsCriticalEvents(t *testing.T) {
	q := NewQueue(16)
	d := NewDispatcher(q, 10*time.Millisecond)

	path := t.TempDir() + "/critical.log"
	critical, err := OpenCriticalLog(path, nil)
	require.NoError(t, err)
	d.SetCriticalLog(critical)

	sink := &captureSink{}
	d.Subscribe(sink)

	low := event("a", 0)
	crit := event("a", 1)
	crit.Severity = types.SeverityCritical
	emergency := event("a", 2)
	emergency.Severity = types.SeverityEmergency

	q.Enqueue("test", low)
	q.Enqueue("test", crit)
	q.Enqueue("test", emergency)

	require.NoError(t, d.Start(context.Background()))
	waitFor(t, time.Second, func() bool { return len(sink.snapshot()) == 3 })
	require.NoError(t, d.Stop())
	require.NoError(t, critical.Close())

	data, err := readFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(data), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], `"a-1"`)
	require.Contains(t, lines[1], `"a-2"`)
}

func TestDispatcherSinkErrorDoesNotStopDelivery(t *testing.T) {
	q := NewQueue(16)
	d := NewDispatcher(q, 10*time.Millisecond)

	failing := failingSink{}
	working := &captureSink{}
	d.Subscribe(failing)
	d.Subscribe(working)

	q.Enqueue("test", event("a", 0))

	require.NoError(t, d.Start(context.Background()))
	defer func() { _ = d.Stop() }()

	waitFor(t, time.Second, func() bool { return len(working.snapshot()) == 1 })
}
