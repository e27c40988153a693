package alert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/aerologix/flightops/types"
)

// CriticalLog is the append-only persistent log for CRITICAL and EMERGENCY
// alert events.
//
// Each event becomes one line: an RFC 3339 timestamp, a separator, and the
// event's full JSON representation. Lines are never rewritten. The log has a
// single writer (the dispatcher); the internal lock only guards against a
// concurrent Close.
type CriticalLog struct {
	mu    sync.Mutex
	file  *os.File
	path  string
	clock types.Clock
}

// OpenCriticalLog opens the log file for appending, creating it and any
// missing parent directories.
//
// Parameters:
//   - path: Log file path
//   - clock: Time source for line timestamps (system clock when nil)
//
// Returns:
//   - *CriticalLog: Open log
//   - error: File system error
func OpenCriticalLog(path string, clock types.Clock) (*CriticalLog, error) {
	if clock == nil {
		clock = types.SystemClock()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open critical alert log: %w", err)
	}

	return &CriticalLog{file: file, path: path, clock: clock}, nil
}

// Path returns the log file path.
func (l *CriticalLog) Path() string {
	return l.path
}

// Append writes one event to the log.
//
// Returns:
//   - error: Serialization or write error; the log remains usable afterwards
func (l *CriticalLog) Append(event types.AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode alert event: %w", err)
	}

	line := fmt.Sprintf("%s - %s\n", l.clock.Now().UTC().Format(time.RFC3339), payload)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("critical alert log is closed")
	}

	if _, err := l.file.WriteString(line); err != nil {
		return fmt.Errorf("failed to append critical alert: %w", err)
	}

	return nil
}

// Close closes the underlying file. Safe to call more than once.
func (l *CriticalLog) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	err := l.file.Close()
	l.file = nil

	return err
}
