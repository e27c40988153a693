package sink

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

type recordingLogger struct {
	levels []string
}

func (l *recordingLogger) Debug(string, ...any) { l.levels = append(l.levels, "debug") }
func (l *recordingLogger) Info(string, ...any)  { l.levels = append(l.levels, "info") }
func (l *recordingLogger) Warn(string, ...any)  { l.levels = append(l.levels, "warn") }
func (l *recordingLogger) Error(string, ...any) { l.levels = append(l.levels, "error") }
func (l *recordingLogger) Fatal(string, ...any) { l.levels = append(l.levels, "fatal") }

func TestLoggerSinkSeverityMapping(t *testing.T) {
	tests := []struct {
		severity  types.Severity
		wantLevel string
	}{
		{types.SeverityLow, "info"},
		{types.SeverityMedium, "warn"},
		{types.SeverityHigh, "warn"},
		{types.SeverityCritical, "error"},
		{types.SeverityEmergency, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			rec := &recordingLogger{}
			s := NewLogger(rec)

			err := s.Deliver(context.Background(), types.AlertEvent{Severity: tt.severity})
			require.NoError(t, err)
			require.Equal(t, []string{tt.wantLevel}, rec.levels)
		})
	}
}
