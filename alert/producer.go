package alert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aerologix/flightops/types"
)

// Producer lifecycle errors.
var (
	ErrProducerStarted    = errors.New("producer already started")
	ErrProducerNotStarted = errors.New("producer not started")
)

// Producer periodically evaluates a flight snapshot and pushes the resulting
// alert events onto the queue.
//
// Each tick reads the current snapshot from the flight source, invokes the
// evaluator and enqueues every event it returns, preserving evaluator output
// order. An error or panic inside one tick is caught, logged and counted;
// the next tick proceeds normally. The loop exits when its context is
// cancelled; termination latency is bounded by the interval, not
// instantaneous.
type Producer struct {
	name     string
	interval time.Duration
	source   types.FlightSource
	evaluate types.Evaluator
	queue    *Queue
	logger   types.Logger
	metrics  types.MetricsCollector

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	doneCh  chan struct{}
}

// NewProducer creates a periodic alert producer.
//
// Parameters:
//   - name: Producer name for logs and metrics (e.g., "health")
//   - interval: Tick interval
//   - source: Flight snapshot source queried each tick
//   - evaluate: Pure evaluator invoked on each snapshot
//   - queue: Destination queue
//
// Returns:
//   - *Producer: Initialized producer (not yet running)
func NewProducer(name string, interval time.Duration, source types.FlightSource, evaluate types.Evaluator, queue *Queue) *Producer {
	return &Producer{
		name:     name,
		interval: interval,
		source:   source,
		evaluate: evaluate,
		queue:    queue,
	}
}

// Name returns the producer name.
func (p *Producer) Name() string {
	return p.name
}

// SetLogger sets the logger. Optional.
func (p *Producer) SetLogger(logger types.Logger) {
	p.logger = logger
}

// SetMetrics sets the metrics collector. Optional.
func (p *Producer) SetMetrics(metrics types.MetricsCollector) {
	p.metrics = metrics
}

// Start launches the producer loop in the background.
//
// The first evaluation runs immediately; subsequent evaluations follow the
// configured interval.
//
// Parameters:
//   - ctx: Parent context; cancelling it stops the loop
//
// Returns:
//   - error: ErrProducerStarted when already running
func (p *Producer) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return ErrProducerStarted
	}

	loopCtx, cancel := context.WithCancel(ctx)
	p.started = true
	p.cancel = cancel
	p.doneCh = make(chan struct{})

	go p.run(loopCtx)

	return nil
}

// Stop cancels the producer loop and waits for it to exit.
//
// Returns:
//   - error: ErrProducerNotStarted when not running
func (p *Producer) Stop() error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()

		return ErrProducerNotStarted
	}
	p.started = false
	cancel := p.cancel
	done := p.doneCh
	p.mu.Unlock()

	cancel()
	<-done

	return nil
}

// closedChan is handed out by Done before the first Start, so callers never
// block on a nil channel.
var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)

	return ch
}()

// Done returns a channel closed when the producer loop has fully exited.
// Callers can select on it to make shutdown awaitable. Before the first
// Start it returns an already-closed channel.
func (p *Producer) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.doneCh == nil {
		return closedChan
	}

	return p.doneCh
}

func (p *Producer) run(ctx context.Context) {
	defer close(p.doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// First evaluation runs immediately.
	p.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			if p.logger != nil {
				p.logger.Debug("producer stopped", "producer", p.name)
			}

			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

// tick runs one evaluation with isolated-failure semantics: any error or
// panic is contained here and never terminates the loop.
func (p *Producer) tick(ctx context.Context) {
	err := p.evaluateOnce(ctx)
	if err == nil {
		return
	}

	if p.metrics != nil {
		p.metrics.RecordProducerError(p.name)
	}
	if p.logger != nil {
		p.logger.Error("producer tick failed", "producer", p.name, "error", err)
	}
}

func (p *Producer) evaluateOnce(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluator panic: %v", r)
		}
	}()

	flights, err := p.source.ListFlights(ctx)
	if err != nil {
		return fmt.Errorf("failed to list flights: %w", err)
	}

	events, err := p.evaluate(ctx, flights)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	for _, event := range events {
		p.queue.Enqueue(p.name, event)
	}

	return nil
}
