package server

import (
	"bufio"
	"net"
	"testing"
	"time"

	jp "github.com/go-mclib/mcserver/java_protocol"
	"github.com/go-mclib/mcserver/java_protocol/packets"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPlayConnection(t *testing.T) (*Connection, net.Conn) {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() {
		serverConn.Close()
		clientConn.Close()
	})

	c := NewConnection(serverConn, zap.NewNop(), nil)
	c.SetState(jp.StatePlay)
	c.SetPlayer(NewPlayer(OfflinePlayerUUID("Alex"), "Alex", 1, DefaultConfig()))
	return c, clientConn
}

func TestHandleKeepAliveServerboundRecordsReplyOnlyForMatchingID(t *testing.T) {
	c, _ := newTestPlayConnection(t)
	clock := NewClock(time.Unix(0, 0))

	c.Player().LastKeepAliveID = 42
	require.NoError(t, HandleKeepAliveServerbound(c, clock, &packets.KeepAliveServerbound{KeepAliveID: 7}))
	require.True(t, c.Player().LastKeepAliveReceived.IsZero())

	clock.Advance(time.Second)
	require.NoError(t, HandleKeepAliveServerbound(c, clock, &packets.KeepAliveServerbound{KeepAliveID: 42}))
	require.False(t, c.Player().LastKeepAliveReceived.IsZero())
}

func TestHandleKeepAliveServerboundBeforeLoginIsProtocolViolation(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	clock := NewClock(time.Unix(0, 0))
	err := HandleKeepAliveServerbound(c, clock, &packets.KeepAliveServerbound{KeepAliveID: 1})
	require.Error(t, err)
}

func TestHandleClientSettingsStoresSettingsAndResendsPosition(t *testing.T) {
	c, clientConn := newTestPlayConnection(t)

	errc := make(chan error, 1)
	go func() {
		errc <- HandleClientSettings(c, &packets.ClientSettings{
			Locale:             "en_US",
			ViewDistance:       10,
			ChatMode:           0,
			ChatColors:         true,
			DisplayedSkinParts: 0x7f,
			MainHand:           1,
		})
	}()

	reader := bufio.NewReader(clientConn)
	frame, err := jp.ReadFrame(reader, -1)
	require.NoError(t, err)
	require.Equal(t, (packets.PlayerPositionAndLookClientbound{}).ID(), frame.ID)
	require.NoError(t, <-errc)

	require.Equal(t, "en_US", c.Player().Settings.Locale)
	require.Equal(t, int32(0), c.Player().LastTeleportID)
}

func TestHandlePluginMessageServerboundStoresBrandAndIgnoresOtherChannels(t *testing.T) {
	c, _ := newTestPlayConnection(t)

	brandBuf := ns.NewWriteBuffer()
	require.NoError(t, brandBuf.WriteString("vanilla"))

	require.NoError(t, HandlePluginMessageServerbound(c, &packets.PluginMessageServerbound{
		Channel: brandChannel,
		Data:    brandBuf.Bytes(),
	}))
	require.Equal(t, "vanilla", c.Player().ClientBrand)

	require.NoError(t, HandlePluginMessageServerbound(c, &packets.PluginMessageServerbound{
		Channel: "minecraft:unknown",
		Data:    []byte("ignored"),
	}))
	require.Equal(t, "vanilla", c.Player().ClientBrand)
}

func TestHandleTeleportConfirmRequiresPlayer(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()
	defer clientConn.Close()

	c := NewConnection(serverConn, zap.NewNop(), nil)
	require.Error(t, HandleTeleportConfirm(c, &packets.TeleportConfirm{}))
}

func TestHandleTeleportConfirmAdvancesOnMatch(t *testing.T) {
	c, _ := newTestPlayConnection(t)
	c.Player().LastTeleportID = 0

	require.NoError(t, HandleTeleportConfirm(c, &packets.TeleportConfirm{TeleportID: 0}))
	require.Equal(t, int32(1), c.Player().LastTeleportID)
}

func TestHandleTeleportConfirmResendsOnMismatch(t *testing.T) {
	c, clientConn := newTestPlayConnection(t)
	c.Player().LastTeleportID = 5

	errc := make(chan error, 1)
	go func() {
		errc <- HandleTeleportConfirm(c, &packets.TeleportConfirm{TeleportID: 2})
	}()

	reader := bufio.NewReader(clientConn)
	frame, err := jp.ReadFrame(reader, -1)
	require.NoError(t, err)
	require.Equal(t, (packets.PlayerPositionAndLookClientbound{}).ID(), frame.ID)
	require.NoError(t, <-errc)

	resent := &packets.PlayerPositionAndLookClientbound{}
	require.NoError(t, jp.DecodeInto(resent, frame))
	require.Equal(t, int32(5), resent.TeleportID)

	// A mismatched confirm does not advance the expected id.
	require.Equal(t, int32(5), c.Player().LastTeleportID)
}
