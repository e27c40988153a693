// Package sink provides alert sink implementations for the dispatcher.
package sink

import (
	"context"

	"github.com/aerologix/flightops/types"
)

// Logger writes every dispatched alert event to a structured logger, at a
// level mapped from the event severity.
type Logger struct {
	logger types.Logger
}

var _ types.Sink = (*Logger)(nil)

// NewLogger creates a logger sink.
func NewLogger(logger types.Logger) *Logger {
	return &Logger{logger: logger}
}

// Name returns "logger".
func (s *Logger) Name() string {
	return "logger"
}

// Deliver logs the event. Never fails.
func (s *Logger) Deliver(_ context.Context, event types.AlertEvent) error {
	fields := []any{
		"alert_id", event.AlertID,
		"alert_type", event.Type,
		"severity", event.Severity.String(),
		"flight_id", event.FlightID,
		"message", event.Message,
	}

	switch {
	case event.Severity >= types.SeverityCritical:
		s.logger.Error("alert", fields...)
	case event.Severity >= types.SeverityMedium:
		s.logger.Warn("alert", fields...)
	default:
		s.logger.Info("alert", fields...)
	}

	return nil
}
