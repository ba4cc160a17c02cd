package server

import (
	"net"
	"testing"

	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleHandshakeTransitionsToRequestedState(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	require.NoError(t, HandleHandshake(c, &packets.Handshake{NextState: packets.IntentStatus}))
	require.Equal(t, jp.StateStatus, c.State())

	c2 := NewConnection(serverConn, zap.NewNop(), nil)
	require.NoError(t, HandleHandshake(c2, &packets.Handshake{NextState: packets.IntentLogin}))
	require.Equal(t, jp.StateLogin, c2.State())
}

func TestHandleHandshakeRejectsInvalidNextState(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	err := HandleHandshake(c, &packets.Handshake{NextState: 99})
	require.Error(t, err)
	require.Equal(t, jp.StateHandshake, c.State())
}
