package flightops

// Option configures an Orchestrator with optional dependencies.
type Option func(*orchestratorOptions)

// orchestratorOptions holds optional Orchestrator configuration.
type orchestratorOptions struct {
	logger   Logger
	metrics  MetricsCollector
	clock    Clock
	selector CrewSelector
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewOrchestrator
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	orch, err := flightops.NewOrchestrator(&cfg, src, crew, flightops.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *orchestratorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewOrchestrator
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *orchestratorOptions) {
		o.metrics = metrics
	}
}

// WithClock sets the time source used for crew eligibility and alert
// timestamps. Defaults to the system clock; tests inject a fixed clock for
// deterministic pool membership.
//
// Parameters:
//   - clock: Clock implementation
//
// Returns:
//   - Option: Functional option for NewOrchestrator
func WithClock(clock Clock) Option {
	return func(o *orchestratorOptions) {
		o.clock = clock
	}
}

// WithSelector sets the crew selection policy. Defaults to uniform random
// selection.
//
// Parameters:
//   - sel: CrewSelector implementation (see the selector package)
//
// Returns:
//   - Option: Functional option for NewOrchestrator
//
// Example:
//
//	orch, err := flightops.NewOrchestrator(&cfg, src, crew,
//	    flightops.WithSelector(selector.NewLeastUtilized()))
func WithSelector(sel CrewSelector) Option {
	return func(o *orchestratorOptions) {
		o.selector = sel
	}
}
