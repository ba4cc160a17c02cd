package server

import (
	"bufio"
	"net"
	"testing"

	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandleLoginStartOfflineModeCompletesJoinSequence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OnlineMode = false
	cfg.CompressionThreshold = -1
	s := NewServer(cfg, zap.NewNop())

	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), s.Metrics)
	s.Register(c)

	errc := make(chan error, 1)
	go func() {
		errc <- HandleLoginStart(s, c, &packets.LoginStart{Name: "Notch"})
	}()

	reader := bufio.NewReader(clientConn)

	loginSuccessFrame, err := jp.ReadFrame(reader, -1)
	require.NoError(t, err)
	require.Equal(t, (packets.LoginSuccess{}).ID(), loginSuccessFrame.ID)

	loginSuccess := &packets.LoginSuccess{}
	require.NoError(t, jp.DecodeInto(loginSuccess, loginSuccessFrame))
	require.Equal(t, "Notch", loginSuccess.Username)
	require.Equal(t, OfflinePlayerUUID("Notch").String(), loginSuccess.UUID)

	joinGameFrame, err := jp.ReadFrame(reader, -1)
	require.NoError(t, err)
	require.Equal(t, (packets.JoinGame{}).ID(), joinGameFrame.ID)

	// Drain the rest of the join sequence so HandleLoginStart's goroutine
	// can finish writing without blocking on net.Pipe's unbuffered sends.
	for i := 0; i < 3; i++ {
		_, err := jp.ReadFrame(reader, -1)
		require.NoError(t, err)
	}

	require.NoError(t, <-errc)
	require.Equal(t, jp.StatePlay, c.State())
	require.NotNil(t, c.Player())
	require.Equal(t, "Notch", c.Player().Username)
}

func TestCompleteLoginEnablesCompressionWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OnlineMode = false
	cfg.CompressionThreshold = 64
	s := NewServer(cfg, zap.NewNop())

	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), s.Metrics)
	s.Register(c)

	errc := make(chan error, 1)
	go func() {
		errc <- HandleLoginStart(s, c, &packets.LoginStart{Name: "Steve"})
	}()

	reader := bufio.NewReader(clientConn)

	setCompressionFrame, err := jp.ReadFrame(reader, -1)
	require.NoError(t, err)
	require.Equal(t, (packets.SetCompression{}).ID(), setCompressionFrame.ID)

	for i := 0; i < 5; i++ {
		_, err := jp.ReadFrame(reader, 64)
		require.NoError(t, err)
	}

	require.NoError(t, <-errc)
}
