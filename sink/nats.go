package sink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/aerologix/flightops/types"
)

// DefaultSubjectPrefix is the subject prefix used when none is configured.
const DefaultSubjectPrefix = "alerts"

// ErrNATSConnRequired is returned when the NATS connection is nil.
var ErrNATSConnRequired = errors.New("NATS connection is required")

// NATS publishes alert events as JSON to per-severity NATS subjects
// ("<prefix>.<severity>", e.g. "alerts.critical").
//
// Publishing is fire-and-forget, matching the pipeline's at-most-once
// delivery; subscribers that need durability should consume the subjects
// into their own storage.
type NATS struct {
	conn   *nats.Conn
	prefix string
}

var _ types.Sink = (*NATS)(nil)

// NewNATS creates a NATS sink.
//
// Parameters:
//   - conn: Established NATS connection
//   - prefix: Subject prefix; DefaultSubjectPrefix when empty
//
// Returns:
//   - *NATS: Initialized sink
//   - error: ErrNATSConnRequired when conn is nil
func NewNATS(conn *nats.Conn, prefix string) (*NATS, error) {
	if conn == nil {
		return nil, ErrNATSConnRequired
	}
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}

	return &NATS{conn: conn, prefix: prefix}, nil
}

// Name returns "nats".
func (s *NATS) Name() string {
	return "nats"
}

// Subject returns the subject an event with the given severity publishes to.
func (s *NATS) Subject(severity types.Severity) string {
	return fmt.Sprintf("%s.%s", s.prefix, strings.ToLower(severity.String()))
}

// Deliver publishes the event.
func (s *NATS) Deliver(_ context.Context, event types.AlertEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode alert event: %w", err)
	}

	if err := s.conn.Publish(s.Subject(event.Severity), data); err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}

	return nil
}
