package sink

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/require"

	opstest "github.com/aerologix/flightops/testing"
	"github.com/aerologix/flightops/types"
)

func TestNewNATSRequiresConnection(t *testing.T) {
	_, err := NewNATS(nil, "")
	require.ErrorIs(t, err, ErrNATSConnRequired)
}

func TestNATSSubject(t *testing.T) {
	_, nc := opstest.StartEmbeddedNATS(t)

	s, err := NewNATS(nc, "")
	require.NoError(t, err)
	require.Equal(t, "alerts.critical", s.Subject(types.SeverityCritical))
	require.Equal(t, "alerts.low", s.Subject(types.SeverityLow))

	custom, err := NewNATS(nc, "ops.alerts")
	require.NoError(t, err)
	require.Equal(t, "ops.alerts.high", custom.Subject(types.SeverityHigh))
}

func TestNATSDeliver(t *testing.T) {
	_, nc := opstest.StartEmbeddedNATS(t)

	s, err := NewNATS(nc, "")
	require.NoError(t, err)

	sub, err := nc.SubscribeSync("alerts.high")
	require.NoError(t, err)

	event := types.AlertEvent{
		AlertID:  "DELAY_PREDICTED-0000cafef00d",
		FlightID: "AI101",
		Type:     "DELAY_PREDICTED",
		Severity: types.SeverityHigh,
		Message:  "Flight AI101 delayed by 90 minutes",
	}
	require.NoError(t, s.Deliver(context.Background(), event))

	msg, err := sub.NextMsg(2 * time.Second)
	require.NoError(t, err)

	var decoded types.AlertEvent
	require.NoError(t, json.Unmarshal(msg.Data, &decoded))
	require.Equal(t, event.AlertID, decoded.AlertID)
	require.Equal(t, event.Severity, decoded.Severity)
}

func TestNATSSeveritiesRouteToDistinctSubjects(t *testing.T) {
	_, nc := opstest.StartEmbeddedNATS(t)

	s, err := NewNATS(nc, "routing")
	require.NoError(t, err)

	critical, err := nc.SubscribeSync("routing.critical")
	require.NoError(t, err)
	low, err := nc.SubscribeSync("routing.low")
	require.NoError(t, err)

	require.NoError(t, s.Deliver(context.Background(), types.AlertEvent{AlertID: "c", Severity: types.SeverityCritical}))
	require.NoError(t, s.Deliver(context.Background(), types.AlertEvent{AlertID: "l", Severity: types.SeverityLow}))

	msg, err := critical.NextMsg(2 * time.Second)
	require.NoError(t, err)
	require.Contains(t, string(msg.Data), `"c"`)

	msg, err = low.NextMsg(2 * time.Second)
	require.NoError(t, err)
	require.Contains(t, string(msg.Data), `"l"`)

	_, err = critical.NextMsg(250 * time.Millisecond)
	require.ErrorIs(t, err, nats.ErrTimeout)
}
