// Package flightops provides an airline operations core: crew assignment
// with conflict detection, and a concurrent alert pipeline that moves
// monitor findings from producers through a bounded queue to pluggable sinks.
//
// FlightOps staffs flights from a shared crew roster, flags double bookings
// and crew shortages, and continuously watches flight telemetry for aircraft
// health problems and predicted delays. CRITICAL and EMERGENCY alerts are
// additionally appended to a durable audit log.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import (
//	    "github.com/aerologix/flightops"
//	    "github.com/aerologix/flightops/roster"
//	    "github.com/aerologix/flightops/source"
//	    "github.com/aerologix/flightops/types"
//	)
//
//	cfg := flightops.Config{
//	    AirlineName: "AI Airways",
//	    HubAirport:  "DEL",
//	}
//
//	src := source.NewStatic(source.Sample(8, 42))
//	crew := roster.NewStandard(types.SystemClock())
//
//	orch, err := flightops.NewOrchestrator(&cfg, src, crew)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := orch.Start(ctx); err != nil {
//	    log.Fatal(err)
//	}
//	defer orch.Stop(context.Background())
//
// # Key Features
//
//   - Crew Assignment: Captain, first officer and cabin crew drawn from a
//     shared roster with pluggable selection policies
//   - Conflict Detection: Double bookings and crew shortages reported per
//     batch with severity grading
//   - Alert Pipeline: Independent producer loops feed one bounded FIFO
//     queue; a dispatcher fans events out to subscribed sinks
//   - Isolated Failures: A panicking or erroring monitor never takes down
//     its loop or its siblings
//   - Durable Audit Trail: CRITICAL and EMERGENCY events are appended to a
//     newline-delimited log that survives restarts
//
// # Architecture
//
// Events flow one way through the pipeline:
//
//	producers (health, delay, crew, dashboard) → queue → dispatcher → sinks
//
// Each producer polls the flight source on its own interval and enqueues
// whatever its evaluator finds. The dispatcher drains the queue on a short
// tick, delivers to every subscribed sink, and appends critical events to
// the audit log.
//
// # Advanced Usage
//
// Custom crew selection with options:
//
//	import (
//	    "github.com/aerologix/flightops"
//	    "github.com/aerologix/flightops/selector"
//	)
//
//	orch, err := flightops.NewOrchestrator(&cfg, src, crew,
//	    flightops.WithSelector(selector.NewLeastUtilized()),
//	    flightops.WithLogger(logging.NewSlogDefault()),
//	)
//
// Sinks implement a single Deliver method and can be registered at any time:
//
//	id := orch.Subscribe(sink.NewLogger(logger))
//	defer orch.Unsubscribe(id)
package flightops
