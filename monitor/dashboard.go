package monitor

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/aerologix/flightops/alert"
	"github.com/aerologix/flightops/types"
)

// Snapshot is the operations overview maintained by the dashboard-refresh
// producer.
type Snapshot struct {
	Flights       int       `json:"flights"`
	QueueDepth    int       `json:"queue_depth"`
	DroppedAlerts uint64    `json:"dropped_alerts"`
	RefreshedAt   time.Time `json:"refreshed_at"`
}

// Dashboard holds the latest operations snapshot.
//
// The refresh evaluator replaces the snapshot atomically on each tick and
// emits no alert events; readers (CLI, status endpoints) call Current at any
// time without coordination.
type Dashboard struct {
	queue   *alert.Queue
	clock   types.Clock
	current atomic.Pointer[Snapshot]
}

// NewDashboard creates a dashboard over the given queue.
func NewDashboard(queue *alert.Queue, clock types.Clock) *Dashboard {
	d := &Dashboard{queue: queue, clock: clock}
	d.current.Store(&Snapshot{})

	return d
}

// Current returns the latest snapshot.
func (d *Dashboard) Current() Snapshot {
	return *d.current.Load()
}

// Refresh returns the evaluator wrapped by the dashboard-refresh producer.
func (d *Dashboard) Refresh() types.Evaluator {
	return func(_ context.Context, flights []types.Flight) ([]types.AlertEvent, error) {
		d.current.Store(&Snapshot{
			Flights:       len(flights),
			QueueDepth:    d.queue.Len(),
			DroppedAlerts: d.queue.Dropped(),
			RefreshedAt:   d.clock.Now(),
		})

		return nil, nil
	}
}
