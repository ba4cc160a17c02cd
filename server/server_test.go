package server

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServerRegisterUnregisterTracksConnectionsAndMetrics(t *testing.T) {
	s := NewServer(DefaultConfig(), zap.NewNop())

	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()
	c := NewConnection(serverConn, zap.NewNop(), s.Metrics)

	s.Register(c)
	require.Len(t, s.Connections(), 1)
	require.Equal(t, float64(1), testCounterValue(t, s.Metrics.ConnectionsAccepted))

	s.Unregister(c, "closed")
	require.Empty(t, s.Connections())

	// Unregistering twice is a no-op and must not double-count.
	s.Unregister(c, "closed")
	require.Equal(t, float64(1), testCounterValue(t, s.Metrics.ConnectionsClosed.WithLabelValues("closed")))
}

func TestServerUnregisterDecrementsPlayersOnlineWhenPlayerAttached(t *testing.T) {
	s := NewServer(DefaultConfig(), zap.NewNop())

	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()
	c := NewConnection(serverConn, zap.NewNop(), s.Metrics)
	s.Register(c)

	p := NewPlayer(OfflinePlayerUUID("Notch"), "Notch", s.EntityIDs.Next(), s.Config)
	c.SetPlayer(p)
	s.Metrics.PlayersOnline.Inc()

	s.Unregister(c, "closed")
	require.Equal(t, float64(0), testGaugeValue(t, s.Metrics.PlayersOnline))
}
