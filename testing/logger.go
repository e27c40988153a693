package testing

import (
	"testing"

	"github.com/aerologix/flightops/types"
)

// NewTestLogger returns a Logger that routes every message through the
// test's own log, so pipeline output shows up interleaved with test output
// and only when the test fails or -v is set. Fatal fails the test instead
// of exiting the process.
func NewTestLogger(tb testing.TB) types.Logger {
	return &tbLogger{tb: tb}
}

type tbLogger struct {
	tb testing.TB
}

var _ types.Logger = (*tbLogger)(nil)

func (l *tbLogger) logf(level, msg string, keysAndValues []any) {
	l.tb.Helper()
	if len(keysAndValues) == 0 {
		l.tb.Logf("%-5s %s", level, msg)
		return
	}
	l.tb.Logf("%-5s %s %v", level, msg, keysAndValues)
}

func (l *tbLogger) Debug(msg string, keysAndValues ...any) {
	l.logf("DEBUG", msg, keysAndValues)
}

func (l *tbLogger) Info(msg string, keysAndValues ...any) {
	l.logf("INFO", msg, keysAndValues)
}

func (l *tbLogger) Warn(msg string, keysAndValues ...any) {
	l.logf("WARN", msg, keysAndValues)
}

func (l *tbLogger) Error(msg string, keysAndValues ...any) {
	l.logf("ERROR", msg, keysAndValues)
}

// Fatal marks the test failed and stops it. It never calls os.Exit, so
// other tests in the package still run.
func (l *tbLogger) Fatal(msg string, keysAndValues ...any) {
	l.tb.Helper()
	if len(keysAndValues) == 0 {
		l.tb.Fatalf("FATAL %s", msg)
		return
	}
	l.tb.Fatalf("FATAL %s %v", msg, keysAndValues)
}
