package packets

import (
	"testing"

	jp "github.com/go-mclib/mcserver/java_protocol"
	ns "github.com/go-mclib/mcserver/net_structures"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, p jp.Packet, fresh jp.Packet) {
	t.Helper()
	f, err := jp.EncodePacket(p)
	require.NoError(t, err)
	require.Equal(t, p.ID(), f.ID)

	require.NoError(t, jp.DecodeInto(fresh, f))

	f2, err := jp.EncodePacket(fresh)
	require.NoError(t, err)
	require.Equal(t, f.Body, f2.Body)
}

func TestHandshakeRoundTrip(t *testing.T) {
	roundTrip(t,
		&Handshake{ProtocolVersion: 335, ServerAddress: "localhost", ServerPort: 25565, NextState: IntentLogin},
		&Handshake{})
}

func TestStatusRoundTrip(t *testing.T) {
	roundTrip(t, &StatusResponse{JSON: `{"version":{"name":"1.12","protocol":335}}`}, &StatusResponse{})
	roundTrip(t, &StatusPing{Payload: int64(0xDEADBEEFCAFEBABE)}, &StatusPing{})
	roundTrip(t, &StatusPong{Payload: int64(0xDEADBEEFCAFEBABE)}, &StatusPong{})
}

func TestLoginRoundTrip(t *testing.T) {
	roundTrip(t, &LoginStart{Name: "Notch"}, &LoginStart{})
	roundTrip(t, &EncryptionRequest{ServerID: "", PublicKey: []byte{1, 2, 3}, VerifyToken: []byte{4, 5, 6, 7}}, &EncryptionRequest{})
	roundTrip(t, &EncryptionResponse{SharedSecret: make([]byte, 16), VerifyToken: []byte{1, 2, 3, 4}}, &EncryptionResponse{})
	roundTrip(t, &LoginSuccess{UUID: "069a79f4-44e9-4726-a5be-fca90e38aaf5", Username: "Notch"}, &LoginSuccess{})
	roundTrip(t, &SetCompression{Threshold: 256}, &SetCompression{})
	roundTrip(t, &LoginDisconnect{Reason: ns.ChatString("bye")}, &LoginDisconnect{})
}

func TestPlayRoundTrip(t *testing.T) {
	roundTrip(t, &TeleportConfirm{TeleportID: 7}, &TeleportConfirm{})
	roundTrip(t, &ChatMessage{Message: "hello"}, &ChatMessage{})
	roundTrip(t, &ClientSettings{Locale: "en_US", ViewDistance: 10, ChatMode: 0, ChatColors: true, DisplayedSkinParts: 0x7f, MainHand: 1}, &ClientSettings{})
	roundTrip(t, &PluginMessageServerbound{Channel: "minecraft:brand", Data: []byte("vanilla")}, &PluginMessageServerbound{})
	roundTrip(t, &KeepAliveServerbound{KeepAliveID: 42}, &KeepAliveServerbound{})
	roundTrip(t, &PlayerPositionAndLookServerbound{X: 1, Y: 64, Z: -1, Yaw: 90, Pitch: 0, OnGround: true}, &PlayerPositionAndLookServerbound{})
	roundTrip(t, &PlayerAbilitiesServerbound{Flags: 0x02, FlyingSpeed: 0.05, WalkingSpeed: 0.1}, &PlayerAbilitiesServerbound{})
	roundTrip(t, &HeldItemChangeServerbound{Slot: 3}, &HeldItemChangeServerbound{})

	roundTrip(t, &JoinGame{EntityID: 1, Gamemode: 0, Dimension: 0, Difficulty: 0, MaxPlayers: 255, LevelType: "default", ReducedDebugInfo: false}, &JoinGame{})
	roundTrip(t, &PluginMessageClientbound{Channel: "minecraft:brand", Data: []byte("Stronk")}, &PluginMessageClientbound{})
	roundTrip(t, &SpawnPosition{Location: ns.Position{X: 0, Y: 64, Z: 0}}, &SpawnPosition{})
	roundTrip(t, &PlayerAbilitiesClientbound{Flags: 0, FlyingSpeed: 0.05, FieldOfViewModifier: 1.0}, &PlayerAbilitiesClientbound{})
	roundTrip(t, &PlayerPositionAndLookClientbound{X: 0, Y: 64, Z: 0, Yaw: 0, Pitch: 0, Flags: 0, TeleportID: 0}, &PlayerPositionAndLookClientbound{})
	roundTrip(t, &KeepAliveClientbound{KeepAliveID: 99}, &KeepAliveClientbound{})
	roundTrip(t, &PlayDisconnect{Reason: ns.ChatString("timed out")}, &PlayDisconnect{})
}
