package types

import (
	"strings"
	"testing"
	"time"
)

func TestNewAlertIDStable(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	a := NewAlertID("ENGINE_VIBRATION_HIGH", "AI101", ts)
	b := NewAlertID("ENGINE_VIBRATION_HIGH", "AI101", ts)
	if a != b {
		t.Errorf("same inputs produced different IDs: %s vs %s", a, b)
	}

	if !strings.HasPrefix(a, "ENGINE_VIBRATION_HIGH-") {
		t.Errorf("ID %s missing type prefix", a)
	}
}

func TestNewAlertIDDistinguishesInputs(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	base := NewAlertID("DELAY_PREDICTED", "AI101", ts)

	tests := []struct {
		name string
		id   string
	}{
		{"different type", NewAlertID("CREW_SHORTAGE", "AI101", ts)},
		{"different flight", NewAlertID("DELAY_PREDICTED", "AI102", ts)},
		{"different time", NewAlertID("DELAY_PREDICTED", "AI101", ts.Add(time.Second))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.id == base {
				t.Errorf("expected distinct ID from %s", base)
			}
		})
	}
}
