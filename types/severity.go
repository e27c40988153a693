package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Severity is the ordinal urgency classification attached to scheduling
// issues and alert events.
//
// Ordering is SeverityLow < SeverityMedium < SeverityHigh < SeverityCritical
// < SeverityEmergency. The ordering is used for filtering and display only;
// the alert queue itself remains FIFO and is never priority-ordered.
type Severity int

const (
	// SeverityLow indicates informational findings.
	SeverityLow Severity = iota

	// SeverityMedium indicates findings that deserve attention soon.
	SeverityMedium

	// SeverityHigh indicates findings requiring prompt action.
	SeverityHigh

	// SeverityCritical indicates findings requiring immediate action.
	// Critical and above are persisted to the critical-alert log.
	SeverityCritical

	// SeverityEmergency indicates safety-of-flight findings.
	SeverityEmergency
)

// String returns the canonical wire representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityEmergency:
		return "EMERGENCY"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity parses the wire representation of a severity.
//
// Parameters:
//   - s: Severity name, case-insensitive (e.g., "high", "CRITICAL")
//
// Returns:
//   - Severity: Parsed severity
//   - error: Error when the name is not a known severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOW":
		return SeverityLow, nil
	case "MEDIUM":
		return SeverityMedium, nil
	case "HIGH":
		return SeverityHigh, nil
	case "CRITICAL":
		return SeverityCritical, nil
	case "EMERGENCY":
		return SeverityEmergency, nil
	default:
		return SeverityLow, fmt.Errorf("unknown severity %q", s)
	}
}

// MarshalJSON encodes the severity as its canonical string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its string form.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	parsed, err := ParseSeverity(name)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
