package flightops

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/aerologix/flightops/alert"
	"github.com/aerologix/flightops/internal/logging"
	"github.com/aerologix/flightops/internal/metrics"
	"github.com/aerologix/flightops/monitor"
	"github.com/aerologix/flightops/roster"
	"github.com/aerologix/flightops/schedule"
	"github.com/aerologix/flightops/selector"
	"github.com/aerologix/flightops/types"
)

// Producer loop names, also used as metric labels.
const (
	ProducerHealth    = "health"
	ProducerDelay     = "delay"
	ProducerCrew      = "crew"
	ProducerDashboard = "dashboard"
)

// Orchestrator wires the crew scheduling engine and the alert pipeline into
// one supervised unit.
//
// Orchestrator is the main entry point of the library. It owns:
//   - The crew scheduling engine and its roster
//   - The bounded alert queue shared by all producers
//   - The periodic monitor producers (health, delay, crew, dashboard)
//   - The dispatcher that fans events out to subscribed sinks
//   - The append-only critical alert log
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Sink subscription changes take effect on the next dispatch tick
//
// Lifecycle:
//   - Create with NewOrchestrator()
//   - Call Start() to open the critical log and launch the loops
//   - Subscribe sinks before or after Start()
//   - Call Stop() for graceful shutdown; queued events are drained first
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type OpsCenter interface {
//	    Start(ctx context.Context) error
//	    Stop(ctx context.Context) error
//	}
type Orchestrator struct {
	cfg    Config
	source types.FlightSource
	roster *roster.Roster

	// Optional dependencies
	logger  types.Logger
	metrics types.MetricsCollector
	clock   types.Clock

	// Internal components
	engine     *schedule.Engine
	queue      *alert.Queue
	dispatcher *alert.Dispatcher
	producers  []*alert.Producer
	dashboard  *monitor.Dashboard
	critical   *alert.CriticalLog

	// Lifecycle management
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrchestrator creates a new Orchestrator instance with the provided
// configuration.
//
// Returns a concrete *Orchestrator struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces for
// testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration with parsed durations
//   - source: Flight source polled by the monitor producers
//   - crewRoster: Crew pool consumed by the scheduling engine
//   - opts: Optional configuration (logger, metrics, clock, crew selector)
//
// Returns:
//   - *Orchestrator: Initialized orchestrator instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := flightops.Config{AirlineName: "AI Airways", HubAirport: "DEL"}
//	src := source.NewStatic(source.Sample(8, 42))
//	orch, err := flightops.NewOrchestrator(&cfg, src, roster.NewStandard(types.SystemClock()))
func NewOrchestrator(cfg *Config, source types.FlightSource, crewRoster *roster.Roster, opts ...Option) (*Orchestrator, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if source == nil {
		return nil, ErrFlightSourceRequired
	}
	if crewRoster == nil {
		return nil, ErrRosterRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Apply options
	options := &orchestratorOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	clockInstance := options.clock
	if clockInstance == nil {
		clockInstance = types.SystemClock()
	}

	selectorInstance := options.selector
	if selectorInstance == nil {
		selectorInstance = selector.NewRandom()
	}

	o := &Orchestrator{
		cfg:     *cfg,
		source:  source,
		roster:  crewRoster,
		logger:  loggerInstance,
		metrics: metricsCollector,
		clock:   clockInstance,
	}

	o.engine = schedule.NewEngine(crewRoster, selectorInstance, clockInstance)
	o.engine.SetLogger(loggerInstance)
	o.engine.SetMetrics(metricsCollector)

	o.queue = alert.NewQueue(cfg.QueueCapacity)
	o.queue.SetLogger(loggerInstance)
	o.queue.SetMetrics(metricsCollector)

	o.dispatcher = alert.NewDispatcher(o.queue, cfg.Intervals.DispatchTick)
	o.dispatcher.SetLogger(loggerInstance)
	o.dispatcher.SetMetrics(metricsCollector)

	o.dashboard = monitor.NewDashboard(o.queue, clockInstance)

	o.producers = []*alert.Producer{
		alert.NewProducer(ProducerHealth, cfg.Intervals.Health, source, monitor.Health(cfg.Health, clockInstance), o.queue),
		alert.NewProducer(ProducerDelay, cfg.Intervals.Delay, source, monitor.Delay(cfg.Delay, clockInstance), o.queue),
		alert.NewProducer(ProducerCrew, cfg.Intervals.Crew, source, monitor.Crew(o.engine, clockInstance), o.queue),
		alert.NewProducer(ProducerDashboard, cfg.Intervals.Dashboard, source, o.dashboard.Refresh(), o.queue),
	}
	for _, p := range o.producers {
		p.SetLogger(loggerInstance)
		p.SetMetrics(metricsCollector)
	}

	return o, nil
}

// Start opens the critical alert log and launches the dispatcher and all
// producer loops.
//
// An unwritable critical log path fails the whole startup; the critical log
// is the audit trail and the system must not run without it.
//
// Parameters:
//   - ctx: Startup context; only consulted during startup itself
//
// Returns:
//   - error: ErrAlreadyStarted, or the critical log open failure
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctx != nil {
		return ErrAlreadyStarted
	}

	critical, err := alert.OpenCriticalLog(o.cfg.CriticalLogPath, o.clock)
	if err != nil {
		return fmt.Errorf("failed to open critical alert log: %w", err)
	}
	o.critical = critical
	o.dispatcher.SetCriticalLog(critical)

	// Background loops outlive the startup context.
	o.ctx, o.cancel = context.WithCancel(context.Background())

	if err := o.dispatcher.Start(o.ctx); err != nil {
		o.teardownLocked()

		return fmt.Errorf("failed to start dispatcher: %w", err)
	}

	for _, p := range o.producers {
		if err := p.Start(o.ctx); err != nil {
			o.teardownLocked()

			return fmt.Errorf("failed to start producer %s: %w", p.Name(), err)
		}
	}

	o.logger.Info("operations center started",
		"airline", o.cfg.AirlineName,
		"hub", o.cfg.HubAirport,
		"critical_log", critical.Path(),
	)

	return nil
}

// Stop gracefully shuts down the orchestrator.
//
// Producers stop first so no new events arrive, then the dispatcher performs
// its final drain so events already queued are delivered rather than lost.
// Blocks until every loop has exited or ctx expires.
//
// Parameters:
//   - ctx: Context bounding the shutdown wait
//
// Returns:
//   - error: ErrNotStarted, or ctx.Err() when the join times out
func (o *Orchestrator) Stop(ctx context.Context) error {
	o.mu.Lock()

	if o.ctx == nil {
		o.mu.Unlock()

		return ErrNotStarted
	}

	// Collect the join points before cancelling so a concurrent Stop
	// cannot race the channel reads.
	joins := make([]<-chan struct{}, 0, len(o.producers)+1)
	for _, p := range o.producers {
		joins = append(joins, p.Done())
	}
	joins = append(joins, o.dispatcher.Done())

	cancel := o.cancel
	critical := o.critical
	o.ctx = nil
	o.cancel = nil
	o.critical = nil
	o.mu.Unlock()

	cancel()

	for _, done := range joins {
		select {
		case <-done:
		case <-ctx.Done():
			o.logger.Error("shutdown timeout exceeded, some loops may still be running")

			return ctx.Err()
		}
	}

	// Every loop has exited; reset the components so a later Start works.
	// These return immediately because the done channels are closed.
	for _, p := range o.producers {
		if err := p.Stop(); err != nil && !errors.Is(err, alert.ErrProducerNotStarted) {
			o.logger.Warn("producer stop", "producer", p.Name(), "error", err)
		}
	}
	if err := o.dispatcher.Stop(); err != nil && !errors.Is(err, alert.ErrDispatcherNotStarted) {
		o.logger.Warn("dispatcher stop", "error", err)
	}

	// Close after the dispatcher's final drain so late critical events
	// still reach the audit trail.
	if critical != nil {
		if err := critical.Close(); err != nil {
			o.logger.Error("failed to close critical alert log", "error", err)

			return fmt.Errorf("critical log close failed: %w", err)
		}
	}

	o.logger.Info("operations center stopped")

	return nil
}

// teardownLocked reverts a partially successful Start. Caller holds o.mu.
func (o *Orchestrator) teardownLocked() {
	o.cancel()
	o.ctx = nil
	o.cancel = nil

	for _, p := range o.producers {
		if err := p.Stop(); err != nil && !errors.Is(err, alert.ErrProducerNotStarted) {
			o.logger.Warn("producer stop", "producer", p.Name(), "error", err)
		}
	}
	if err := o.dispatcher.Stop(); err != nil && !errors.Is(err, alert.ErrDispatcherNotStarted) {
		o.logger.Warn("dispatcher stop", "error", err)
	}

	if o.critical != nil {
		_ = o.critical.Close()
		o.critical = nil
	}
}

// Running reports whether Start has been called without a matching Stop.
//
// Returns:
//   - bool: true while the loops are running
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.ctx != nil
}

// Subscribe registers a sink to receive every dispatched alert event.
//
// Parameters:
//   - sink: Destination for dispatched events
//
// Returns:
//   - uint64: Subscription ID for Unsubscribe
func (o *Orchestrator) Subscribe(sink types.Sink) uint64 {
	return o.dispatcher.Subscribe(sink)
}

// Unsubscribe removes a previously registered sink.
//
// Parameters:
//   - id: Subscription ID returned by Subscribe
func (o *Orchestrator) Unsubscribe(id uint64) {
	o.dispatcher.Unsubscribe(id)
}

// AssignFlights runs one crew assignment batch on demand, outside the
// periodic crew producer.
//
// Parameters:
//   - ctx: Context for cancellation
//   - flights: Flights to staff, processed in order
//
// Returns:
//   - AssignmentResult: Assignments, detected issues and summary
//   - error: Context cancellation
func (o *Orchestrator) AssignFlights(ctx context.Context, flights []types.Flight) (types.AssignmentResult, error) {
	return o.engine.Assign(ctx, flights)
}

// Engine returns the crew scheduling engine.
func (o *Orchestrator) Engine() *schedule.Engine {
	return o.engine
}

// Queue returns the shared alert queue.
func (o *Orchestrator) Queue() *alert.Queue {
	return o.queue
}

// Dashboard returns the latest operational snapshot.
//
// Returns:
//   - monitor.Snapshot: Flight count, queue depth and drop counter as of
//     the last dashboard refresh
func (o *Orchestrator) Dashboard() monitor.Snapshot {
	return o.dashboard.Current()
}
