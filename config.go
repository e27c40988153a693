package flightops

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aerologix/flightops/monitor"
)

// Intervals configures the periodic task schedules.
//
// Each producer runs on its own fixed interval; the dispatcher drains the
// alert queue on its own tick. Stop latency for any task is bounded by that
// task's interval.
type Intervals struct {
	// Health is the aircraft health monitor interval.
	Health time.Duration `yaml:"health"`

	// Delay is the delay prediction interval.
	Delay time.Duration `yaml:"delay"`

	// Crew is the crew scheduling interval.
	Crew time.Duration `yaml:"crew"`

	// Dashboard is the operations snapshot refresh interval.
	Dashboard time.Duration `yaml:"dashboard"`

	// DispatchTick is the alert dispatcher drain interval.
	DispatchTick time.Duration `yaml:"dispatchTick"`
}

// Config is the configuration for the Orchestrator.
//
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// AirlineName is the operator name used in reports and logs.
	AirlineName string `yaml:"airlineName"`

	// HubAirport is the primary hub airport code.
	HubAirport string `yaml:"hubAirport"`

	// Intervals holds the periodic task schedules.
	Intervals Intervals `yaml:"intervals"`

	// QueueCapacity bounds the alert queue. Events arriving while the queue
	// is full are dropped and counted (drop-newest policy).
	QueueCapacity int `yaml:"queueCapacity"`

	// CriticalLogPath is the append-only log for CRITICAL and EMERGENCY
	// alert events.
	CriticalLogPath string `yaml:"criticalLogPath"`

	// Health holds the aircraft health alerting limits.
	Health monitor.HealthThresholds `yaml:"healthThresholds"`

	// Delay holds the delay prediction limits.
	Delay monitor.DelayThresholds `yaml:"delayThresholds"`

	// Route holds the enroute and destination weather limits.
	Route monitor.RouteThresholds `yaml:"routeThresholds"`

	// Load holds the passenger demand analysis limits.
	Load monitor.LoadThresholds `yaml:"loadThresholds"`
}

// Reference schedule defaults.
const (
	DefaultHealthInterval    = 30 * time.Second
	DefaultDelayInterval     = 60 * time.Second
	DefaultCrewInterval      = 5 * time.Minute
	DefaultDashboardInterval = 60 * time.Second
	DefaultDispatchTick      = time.Second
)

// DefaultCriticalLogPath is the critical-alert log location when none is
// configured.
const DefaultCriticalLogPath = "logs/critical_flight_alerts.log"

// SetDefaults fills in missing configuration values with defaults.
func SetDefaults(cfg *Config) {
	if cfg.AirlineName == "" {
		cfg.AirlineName = "AI Airways"
	}
	if cfg.HubAirport == "" {
		cfg.HubAirport = "DEL"
	}
	if cfg.Intervals.Health <= 0 {
		cfg.Intervals.Health = DefaultHealthInterval
	}
	if cfg.Intervals.Delay <= 0 {
		cfg.Intervals.Delay = DefaultDelayInterval
	}
	if cfg.Intervals.Crew <= 0 {
		cfg.Intervals.Crew = DefaultCrewInterval
	}
	if cfg.Intervals.Dashboard <= 0 {
		cfg.Intervals.Dashboard = DefaultDashboardInterval
	}
	if cfg.Intervals.DispatchTick <= 0 {
		cfg.Intervals.DispatchTick = DefaultDispatchTick
	}
	if cfg.QueueCapacity <= 0 {
		cfg.QueueCapacity = 1024
	}
	if cfg.CriticalLogPath == "" {
		cfg.CriticalLogPath = DefaultCriticalLogPath
	}

	zeroHealth := monitor.HealthThresholds{}
	if cfg.Health == zeroHealth {
		cfg.Health = monitor.DefaultHealthThresholds()
	}
	zeroDelay := monitor.DelayThresholds{}
	if cfg.Delay == zeroDelay {
		cfg.Delay = monitor.DefaultDelayThresholds()
	}
	zeroRoute := monitor.RouteThresholds{}
	if cfg.Route == zeroRoute {
		cfg.Route = monitor.DefaultRouteThresholds()
	}
	zeroLoad := monitor.LoadThresholds{}
	if cfg.Load == zeroLoad {
		cfg.Load = monitor.DefaultLoadThresholds()
	}
}

// Validate checks the configuration for consistency.
//
// Returns:
//   - error: Description of the first problem found, nil when valid
func (c *Config) Validate() error {
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queueCapacity must be positive, got %d", c.QueueCapacity)
	}
	if c.Intervals.DispatchTick <= 0 {
		return fmt.Errorf("dispatchTick must be positive, got %v", c.Intervals.DispatchTick)
	}
	for name, interval := range map[string]time.Duration{
		"health":    c.Intervals.Health,
		"delay":     c.Intervals.Delay,
		"crew":      c.Intervals.Crew,
		"dashboard": c.Intervals.Dashboard,
	} {
		if interval <= 0 {
			return fmt.Errorf("%s interval must be positive, got %v", name, interval)
		}
	}
	if c.CriticalLogPath == "" {
		return fmt.Errorf("criticalLogPath must not be empty")
	}

	return nil
}

// LoadConfig reads a YAML configuration file, applies defaults and validates
// the result.
//
// Parameters:
//   - path: Configuration file path
//
// Returns:
//   - *Config: Loaded configuration
//   - error: Read, parse or validation error
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}
