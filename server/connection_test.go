package server

import (
	"net"
	"testing"

	"github.com/go-mclib/mcserver/java_protocol/packets"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConnectionWriteReadRoundTrip(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)

	done := make(chan error, 1)
	go func() {
		done <- c.WritePacket(&packets.StatusPong{Payload: 0x1234})
	}()

	buf := make([]byte, 64)
	n, err := clientConn.Read(buf)
	require.NoError(t, err)
	require.NoError(t, <-done)
	require.Greater(t, n, 0)
}

func TestConnectionEnableEncryptionKeepsConnectionOpen(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	secret := make([]byte, 16)
	require.NoError(t, c.EnableEncryption(secret))
	c.AttachCipherToReader()
	require.False(t, c.IsClosed())
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	require.NoError(t, c.Close(""))
	require.NoError(t, c.Close(""))
	require.True(t, c.IsClosed())
}
