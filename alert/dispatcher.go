package alert

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/aerologix/flightops/types"
)

// Dispatcher lifecycle errors.
var (
	ErrDispatcherStarted    = errors.New("dispatcher already started")
	ErrDispatcherNotStarted = errors.New("dispatcher not started")
)

// DefaultDispatchTick is the dispatcher drain interval when none is
// configured.
const DefaultDispatchTick = time.Second

// Dispatcher drains the alert queue on a fixed tick and forwards every
// event to the registered sinks.
//
// Events at CRITICAL severity or above are additionally appended to the
// critical-alert log. Sink delivery failures are logged and counted, never
// retried. The dispatcher is the queue's single consumer.
type Dispatcher struct {
	queue    *Queue
	tick     time.Duration
	critical *CriticalLog
	logger   types.Logger
	metrics  types.MetricsCollector

	sinks  *xsync.Map[uint64, types.Sink]
	nextID atomic.Uint64

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	doneCh  chan struct{}
}

// NewDispatcher creates a dispatcher for the given queue.
//
// Parameters:
//   - queue: Queue to drain; the dispatcher becomes its single consumer
//   - tick: Drain interval; DefaultDispatchTick when <= 0
//
// Returns:
//   - *Dispatcher: Initialized dispatcher (not yet running)
func NewDispatcher(queue *Queue, tick time.Duration) *Dispatcher {
	if tick <= 0 {
		tick = DefaultDispatchTick
	}

	return &Dispatcher{
		queue: queue,
		tick:  tick,
		sinks: xsync.NewMap[uint64, types.Sink](),
	}
}

// SetCriticalLog sets the append-only log for CRITICAL and EMERGENCY
// events. Optional; without it critical events are only forwarded to sinks.
func (d *Dispatcher) SetCriticalLog(log *CriticalLog) {
	d.critical = log
}

// SetLogger sets the logger. Optional.
func (d *Dispatcher) SetLogger(logger types.Logger) {
	d.logger = logger
}

// SetMetrics sets the metrics collector. Optional.
func (d *Dispatcher) SetMetrics(metrics types.MetricsCollector) {
	d.metrics = metrics
}

// Subscribe registers a sink and returns its subscription ID.
//
// Safe to call while the dispatcher is running; the sink starts receiving
// events from the next drain.
func (d *Dispatcher) Subscribe(sink types.Sink) uint64 {
	id := d.nextID.Add(1)
	d.sinks.Store(id, sink)

	return id
}

// Unsubscribe removes a previously registered sink.
func (d *Dispatcher) Unsubscribe(id uint64) {
	d.sinks.Delete(id)
}

// Start launches the dispatcher tick loop in the background.
//
// Returns:
//   - error: ErrDispatcherStarted when already running
func (d *Dispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started {
		return ErrDispatcherStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	d.started = true
	d.cancel = cancel
	d.doneCh = make(chan struct{})

	go d.run(loopCtx)

	return nil
}

// Stop cancels the dispatcher loop, performs a final drain so events already
// queued at shutdown are not stranded, and waits for the loop to exit.
//
// Returns:
//   - error: ErrDispatcherNotStarted when not running
func (d *Dispatcher) Stop() error {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()

		return ErrDispatcherNotStarted
	}
	d.started = false
	cancel := d.cancel
	done := d.doneCh
	d.mu.Unlock()

	cancel()
	<-done

	return nil
}

// Done returns a channel closed when the dispatcher loop has fully exited.
// Before the first Start it returns an already-closed channel.
func (d *Dispatcher) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.doneCh == nil {
		return closedChan
	}

	return d.doneCh
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.doneCh)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Final drain; deliveries use a fresh context since ctx is gone.
			flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			d.drainOnce(flushCtx)
			cancel()

			return
		case <-ticker.C:
			d.drainOnce(ctx)
		}
	}
}

// drainOnce snapshot-drains the queue and dispatches every drained event.
func (d *Dispatcher) drainOnce(ctx context.Context) int {
	events := d.queue.Drain()
	for _, event := range events {
		d.dispatch(ctx, event)
	}

	if d.metrics != nil {
		d.metrics.RecordQueueDepth(d.queue.Len())
	}

	return len(events)
}

func (d *Dispatcher) dispatch(ctx context.Context, event types.AlertEvent) {
	d.sinks.Range(func(_ uint64, sink types.Sink) bool {
		if err := sink.Deliver(ctx, event); err != nil {
			if d.metrics != nil {
				d.metrics.RecordSinkError(sink.Name())
			}
			if d.logger != nil {
				d.logger.Error("sink delivery failed",
					"sink", sink.Name(),
					"alert_id", event.AlertID,
					"error", err,
				)
			}
		}

		return true
	})

	if event.Severity >= types.SeverityCritical && d.critical != nil {
		if err := d.critical.Append(event); err != nil && d.logger != nil {
			d.logger.Error("failed to persist critical alert",
				"alert_id", event.AlertID,
				"error", err,
			)
		}
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(event.Severity)
	}
}
