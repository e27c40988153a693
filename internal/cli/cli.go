// Package cli provides the flightops command line interface based on the
// Cobra framework.
//
// Command Structure:
//
//	flightops                      # Root command
//	├── monitor                    # Start the operations center
//	│   ├── --flights, -n          # Number of sample flights to monitor
//	│   ├── --seed                 # Sample data seed
//	│   ├── --duration             # Run time before clean shutdown (0 = until signal)
//	│   ├── --nats-url             # Publish alerts to this NATS server
//	│   └── --metrics-port         # Prometheus /metrics port (0 disables)
//	├── assign                     # Run one crew assignment batch
//	│   ├── --flights, -n          # Number of sample flights to staff
//	│   ├── --seed                 # Sample data seed
//	│   └── --selector             # Crew selection policy
//	├── report                     # One-pass crew, health, delay, route and load report
//	│   ├── --flights, -n          # Number of sample flights to analyze
//	│   ├── --seed                 # Sample data seed
//	│   └── --output, -o           # Also write the report to this file
//	├── --config, -c               # Config file path
//	├── --version                  # Display version information
//	└── --help                     # Display help information
//
// The monitor command starts the full pipeline, serves Prometheus metrics
// when enabled, and shuts down gracefully on SIGINT, SIGTERM, or when
// --duration elapses.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aerologix/flightops"
	"github.com/aerologix/flightops/internal/logging"
	"github.com/aerologix/flightops/internal/metrics"
	"github.com/aerologix/flightops/monitor"
	"github.com/aerologix/flightops/roster"
	"github.com/aerologix/flightops/schedule"
	"github.com/aerologix/flightops/selector"
	"github.com/aerologix/flightops/sink"
	"github.com/aerologix/flightops/source"
	"github.com/aerologix/flightops/types"
)

var configFile string

// BuildCLI assembles the flightops command tree.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flightops",
		Short: "FlightOps: airline crew assignment and flight alerting",
		Long: `FlightOps staffs flights from a shared crew roster, detects
double bookings and crew shortages, and continuously monitors flight
telemetry for aircraft health problems and predicted delays.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(buildMonitorCommand())
	rootCmd.AddCommand(buildAssignCommand())
	rootCmd.AddCommand(buildReportCommand())

	return rootCmd
}

func buildMonitorCommand() *cobra.Command {
	var flights int
	var seed int64
	var duration time.Duration
	var natsURL string
	var metricsPort int

	cmd := &cobra.Command{
		Use:   "monitor",
		Short: "Start the operations center",
		Long:  "Start the alert pipeline and monitor sample flights until interrupted or --duration elapses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMonitor(flights, seed, duration, natsURL, metricsPort)
		},
	}

	cmd.Flags().IntVarP(&flights, "flights", "n", 8, "number of sample flights to monitor")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "sample data seed")
	cmd.Flags().DurationVar(&duration, "duration", 0, "run time before clean shutdown (0 = until signal)")
	cmd.Flags().StringVar(&natsURL, "nats-url", "", "publish alerts to this NATS server")
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Prometheus /metrics port (0 disables)")

	return cmd
}

func buildAssignCommand() *cobra.Command {
	var flights int
	var seed int64
	var policy string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Run one crew assignment batch",
		Long:  "Staff a batch of sample flights and print assignments, issues and the summary as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssignment(flights, seed, policy)
		},
	}

	cmd.Flags().IntVarP(&flights, "flights", "n", 8, "number of sample flights to staff")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "sample data seed")
	cmd.Flags().StringVar(&policy, "selector", "random", "crew selection policy: random, round-robin, least-utilized")

	return cmd
}

func buildReportCommand() *cobra.Command {
	var flights int
	var seed int64
	var output string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "One-pass crew, health, delay, route and load report",
		Long:  "Staff a sample batch, evaluate health, delays, routes and passenger load, and print a combined report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(flights, seed, output)
		},
	}

	cmd.Flags().IntVarP(&flights, "flights", "n", 8, "number of sample flights to analyze")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "sample data seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "also write the report to this file")

	return cmd
}

func loadConfig() (*flightops.Config, error) {
	if configFile == "" {
		cfg := &flightops.Config{}
		flightops.SetDefaults(cfg)

		return cfg, nil
	}

	return flightops.LoadConfig(configFile)
}

func newSelector(policy string) (types.CrewSelector, error) {
	switch policy {
	case "random":
		return selector.NewRandom(), nil
	case "round-robin":
		return selector.NewRoundRobin(), nil
	case "least-utilized":
		return selector.NewLeastUtilized(), nil
	default:
		return nil, fmt.Errorf("unknown selector policy: %q", policy)
	}
}

func runMonitor(flights int, seed int64, duration time.Duration, natsURL string, metricsPort int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewSlogDefault()
	clock := types.SystemClock()
	src := source.NewStatic(source.Sample(flights, seed))
	crew := roster.NewStandard(clock)

	opts := []flightops.Option{flightops.WithLogger(logger)}
	if metricsPort > 0 {
		reg := prometheus.NewRegistry()
		opts = append(opts, flightops.WithMetrics(metrics.NewPrometheus(reg, "flightops")))
		go serveMetrics(logger, reg, metricsPort)
	}

	orch, err := flightops.NewOrchestrator(cfg, src, crew, opts...)
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	orch.Subscribe(sink.NewLogger(logger))

	if natsURL != "" {
		nc, err := nats.Connect(natsURL, nats.Name("flightops"))
		if err != nil {
			return fmt.Errorf("failed to connect to NATS at %s: %w", natsURL, err)
		}
		defer nc.Close()

		natsSink, err := sink.NewNATS(nc, "alerts")
		if err != nil {
			return err
		}
		orch.Subscribe(natsSink)
	}

	if err := orch.Start(context.Background()); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	logger.Info("monitoring flights, press Ctrl+C to stop", "flights", flights)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var timeUp <-chan time.Time
	if duration > 0 {
		timer := time.NewTimer(duration)
		defer timer.Stop()
		timeUp = timer.C
	}

	select {
	case <-sigChan:
	case <-timeUp:
	}

	logger.Info("shutting down...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return orch.Stop(stopCtx)
}

func runAssignment(flights int, seed int64, policy string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sel, err := newSelector(policy)
	if err != nil {
		return err
	}

	clock := types.SystemClock()
	src := source.NewStatic(source.Sample(flights, seed))
	crew := roster.NewStandard(clock)

	orch, err := flightops.NewOrchestrator(cfg, src, crew, flightops.WithSelector(sel))
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	batch, err := src.ListFlights(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list flights: %w", err)
	}

	result, err := orch.AssignFlights(context.Background(), batch)
	if err != nil {
		return fmt.Errorf("assignment failed: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))

	if countCritical(result.Issues) > 0 {
		return errors.New("critical issues detected")
	}

	return nil
}

func countCritical(issues []types.Issue) int {
	var n int
	for _, issue := range issues {
		if issue.Severity >= types.SeverityCritical {
			n++
		}
	}

	return n
}

func runReport(flights int, seed int64, output string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clock := types.SystemClock()
	data := source.Sample(flights, seed)
	crew := roster.NewStandard(clock)
	engine := schedule.NewEngine(crew, selector.NewRandom(), clock)

	result, err := engine.Assign(context.Background(), data)
	if err != nil {
		return fmt.Errorf("assignment failed: %w", err)
	}

	report, err := renderReport(cfg, clock, data, result)
	if err != nil {
		return err
	}

	fmt.Print(report)

	if output != "" {
		if err := os.WriteFile(output, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("report written to %s\n", output)
	}

	return nil
}

func renderReport(cfg *flightops.Config, clock types.Clock, data []types.Flight, result types.AssignmentResult) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "%s operations report  %s\n", cfg.AirlineName, clock.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "hub %s, %d flights\n\n", cfg.HubAirport, len(data))

	b.WriteString("CREW ASSIGNMENTS\n")
	for _, a := range result.Assignments {
		captain, firstOfficer := "-", "-"
		if a.Captain != nil {
			captain = *a.Captain
		}
		if a.FirstOfficer != nil {
			firstOfficer = *a.FirstOfficer
		}
		fmt.Fprintf(&b, "  %-8s capt=%-6s fo=%-6s attendants=%s\n",
			a.FlightID, captain, firstOfficer, strings.Join(a.Attendants, ","))
	}

	if len(result.Issues) > 0 {
		b.WriteString("\nSCHEDULING ISSUES\n")
		for _, issue := range result.Issues {
			switch issue.Type {
			case types.IssueDoubleBooking:
				fmt.Fprintf(&b, "  [%s] %s %s on %s\n",
					issue.Severity, issue.Type, issue.CrewID, strings.Join(issue.Flights, " and "))
			case types.IssueCrewShortage:
				fmt.Fprintf(&b, "  [%s] %s %s missing %s\n",
					issue.Severity, issue.Type, issue.FlightID, issue.MissingRole)
			}
		}
	}

	fmt.Fprintf(&b, "\nSUMMARY  flights=%d crew=%d avg=%.2f max=%d critical=%d\n",
		result.Summary.TotalFlightsScheduled, result.Summary.TotalCrewUtilized,
		result.Summary.AvgFlightsPerCrew, result.Summary.MaxFlightsPerCrew,
		countCritical(result.Issues))

	evaluate := monitor.Health(cfg.Health, clock)
	events, err := evaluate(context.Background(), data)
	if err != nil {
		return "", fmt.Errorf("health evaluation failed: %w", err)
	}

	b.WriteString("\nAIRCRAFT HEALTH\n")
	if len(events) == 0 {
		b.WriteString("  all clear\n")
	}
	for _, e := range events {
		fmt.Fprintf(&b, "  [%s] %-8s %s: %s\n", e.Severity, e.FlightID, e.Type, e.Message)
	}

	b.WriteString("\nDELAY OUTLOOK\n")
	for _, flight := range data {
		prediction := monitor.PredictDelay(cfg.Delay, flight)
		fmt.Fprintf(&b, "  %-8s %s -> %s  delay=%dmin  band=%s\n",
			flight.ID, flight.Origin, flight.Destination,
			prediction.DelayMinutes, prediction.Band)
	}

	routeEvaluate := monitor.Route(cfg.Route, clock)
	routeEvents, err := routeEvaluate(context.Background(), data)
	if err != nil {
		return "", fmt.Errorf("route evaluation failed: %w", err)
	}

	b.WriteString("\nROUTE ALERTS\n")
	if len(routeEvents) == 0 {
		b.WriteString("  all routes clear\n")
	}
	for _, e := range routeEvents {
		fmt.Fprintf(&b, "  [%s] %-8s %s: %s\n", e.Severity, e.FlightID, e.Type, e.Message)
	}

	b.WriteString("\nPASSENGER LOAD\n")
	for _, flight := range data {
		load := monitor.PredictLoad(cfg.Load, flight)
		fmt.Fprintf(&b, "  %-8s pax=%d/%d load=%.0f%%  demand=%s  scenario=%s\n",
			flight.ID, load.PredictedPassengers, load.Capacity,
			load.PredictedLoadFactor*100, load.DemandLevel, load.Scenario)
	}

	return b.String(), nil
}

func serveMetrics(logger types.Logger, reg *prometheus.Registry, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	addr := fmt.Sprintf(":%d", port)
	logger.Info("serving metrics", "addr", addr+"/metrics")

	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server failed", "error", err)
	}
}
