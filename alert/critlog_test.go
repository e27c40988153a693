package alert

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aerologix/flightops/types"
)

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)

	return string(data), err
}

func TestCriticalLogLineFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "critical.log")
	log, err := OpenCriticalLog(path, nil)
	require.NoError(t, err)

	e := types.AlertEvent{
		AlertID:  "CREW_SHORTAGE-0000deadbeef",
		FlightID: "AI101",
		Type:     "CREW_SHORTAGE",
		Severity: types.SeverityCritical,
		Message:  "flight AI101 missing captain",
	}
	require.NoError(t, log.Append(e))
	require.NoError(t, log.Close())

	data, err := readFile(path)
	require.NoError(t, err)

	line := strings.TrimSuffix(data, "\n")
	require.NotContains(t, line, "\n", "expected exactly one line")

	// Timestamp prefix, separator, then the full JSON record.
	parts := strings.SplitN(line, " - ", 2)
	require.Len(t, parts, 2)

	_, err = time.Parse(time.RFC3339, parts[0])
	require.NoError(t, err, "prefix %q is not RFC 3339", parts[0])

	var decoded types.AlertEvent
	require.NoError(t, json.Unmarshal([]byte(parts[1]), &decoded))
	require.Equal(t, e.AlertID, decoded.AlertID)
	require.Equal(t, e.Severity, decoded.Severity)
	require.Equal(t, e.Message, decoded.Message)
}

func TestCriticalLogAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "critical.log")

	log, err := OpenCriticalLog(path, nil)
	require.NoError(t, err)
	require.NoError(t, log.Append(types.AlertEvent{AlertID: "first"}))
	require.NoError(t, log.Close())

	// Reopening appends; prior lines are never rewritten.
	log, err = OpenCriticalLog(path, nil)
	require.NoError(t, err)
	require.NoError(t, log.Append(types.AlertEvent{AlertID: "second"}))
	require.NoError(t, log.Close())

	data, err := readFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(data), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "first")
	require.Contains(t, lines[1], "second")
}

func TestCriticalLogStampsWithInjectedClock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "critical.log")
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	log, err := OpenCriticalLog(path, fixedClock{now})
	require.NoError(t, err)
	require.NoError(t, log.Append(types.AlertEvent{AlertID: "stamped"}))
	require.NoError(t, log.Close())

	data, err := readFile(path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(data, now.Format(time.RFC3339)+" - "),
		"line %q not stamped by the injected clock", data)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestCriticalLogCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "critical.log")
	log, err := OpenCriticalLog(path, nil)
	require.NoError(t, err)

	require.NoError(t, log.Close())
	require.NoError(t, log.Close())
}
