package types

import (
	"fmt"
	"time"

	"github.com/zeebo/xxh3"
)

// AlertEvent is a unit of advisory information produced by a monitor and
// consumed exactly once by the dispatcher.
//
// Delivery is at-most-once: events are not redelivered after a crash. This
// is acceptable because the stream is advisory, not transactional.
type AlertEvent struct {
	// AlertID is a stable fingerprint of the event, derived from its type,
	// flight and timestamp. See NewAlertID.
	AlertID string `json:"alert_id"`

	FlightID   string `json:"flight_id"`
	AircraftID string `json:"aircraft_id,omitempty"`

	// Timestamp is when the producing monitor observed the condition.
	Timestamp time.Time `json:"timestamp"`

	// Type is the free-form alert type string (e.g., "ENGINE_VIBRATION_HIGH").
	Type string `json:"alert_type"`

	Severity Severity `json:"severity"`

	// Metric, Value and Threshold describe the reading that triggered the
	// alert, when one exists.
	Metric    string  `json:"metric,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`

	// Message is the human-readable description.
	Message string `json:"message"`

	// Payload carries opaque producer-specific detail.
	Payload map[string]any `json:"payload,omitempty"`
}

// NewAlertID derives a stable alert fingerprint from the alert type, flight
// ID and observation time.
//
// The same (type, flight, timestamp) triple always yields the same ID, so
// producers re-evaluating an unchanged snapshot emit identical IDs and
// downstream consumers can deduplicate.
func NewAlertID(alertType, flightID string, ts time.Time) string {
	h := xxh3.HashString(alertType + "|" + flightID + "|" + ts.Format(time.RFC3339Nano))

	return fmt.Sprintf("%s-%012x", alertType, h&0xffffffffffff)
}
