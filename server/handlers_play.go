package server

import (
	"github.com/go-mclib/mcserver/java_protocol/packets"
	ns "github.com/go-mclib/mcserver/net_structures"
)

// HandleKeepAliveServerbound records the client's reply, clearing the
// connection's keep-alive deadline until the next one is sent. A stale
// or mismatched id is tolerated rather than treated as a protocol
// violation — vanilla clients are not strict about replying to the
// exact outstanding id after a lag spike.
func HandleKeepAliveServerbound(c *Connection, clock *Clock, p *packets.KeepAliveServerbound) error {
	player := c.Player()
	if player == nil {
		return newError(KindProtocolViolation, "keep alive before login completed", nil)
	}
	if p.KeepAliveID == player.LastKeepAliveID {
		player.LastKeepAliveReceived = clock.Now()
	}
	return nil
}

// HandleTeleportConfirm advances the expected teleport id on a matching
// confirm. A mismatched id is not fatal: the client has confirmed a
// teleport the server no longer considers current, so the server resends
// the last authoritative position at the still-expected id rather than
// advancing past it.
func HandleTeleportConfirm(c *Connection, p *packets.TeleportConfirm) error {
	player := c.Player()
	if player == nil {
		return newError(KindProtocolViolation, "teleport confirm before login completed", nil)
	}

	if p.TeleportID != player.LastTeleportID {
		return c.WritePacket(&packets.PlayerPositionAndLookClientbound{
			X:          float64(player.Position.X),
			Y:          float64(player.Position.Y),
			Z:          float64(player.Position.Z),
			Yaw:        player.Yaw,
			Pitch:      player.Pitch,
			Flags:      0,
			TeleportID: player.LastTeleportID,
		})
	}

	player.LastTeleportID++
	return nil
}

// HandleClientSettings stores the client's locale/view-distance/skin
// preferences and, per vanilla behavior, answers with a fresh absolute
// Player Position and Look at teleport id 0 so the client can finish
// loading terrain around its spawn point. Teleport id 0 is pinned here
// (not advanced) so the first Teleport Confirm the client sends matches
// it exactly.
func HandleClientSettings(c *Connection, p *packets.ClientSettings) error {
	player := c.Player()
	if player == nil {
		return newError(KindProtocolViolation, "client settings before login completed", nil)
	}

	player.Settings = ClientSettings{
		Locale:             p.Locale,
		ViewDistance:       p.ViewDistance,
		ChatMode:           p.ChatMode,
		ChatColors:         p.ChatColors,
		DisplayedSkinParts: p.DisplayedSkinParts,
		MainHand:           p.MainHand,
	}

	player.LastTeleportID = 0
	return c.WritePacket(&packets.PlayerPositionAndLookClientbound{
		X:          float64(player.Position.X),
		Y:          float64(player.Position.Y),
		Z:          float64(player.Position.Z),
		Yaw:        player.Yaw,
		Pitch:      player.Pitch,
		Flags:      0,
		TeleportID: player.LastTeleportID,
	})
}

// brandChannel is the plugin-message channel vanilla clients and servers
// exchange their mod-loader/client brand string over. It is all-caps on
// the wire, unlike most other plugin channels.
const brandChannel = "MC|BRAND"

// HandlePluginMessageServerbound records the client's declared brand off
// the brand channel, decoding its payload as a String per the plugin
// message's own internal framing; all other channels are accepted but
// ignored, since no plugin-channel registry is modeled.
func HandlePluginMessageServerbound(c *Connection, p *packets.PluginMessageServerbound) error {
	player := c.Player()
	if player == nil {
		return newError(KindProtocolViolation, "plugin message before login completed", nil)
	}
	if p.Channel == brandChannel {
		brand, err := ns.NewReadBuffer(p.Data).ReadString()
		if err != nil {
			return newError(KindDecode, "decode client brand", err)
		}
		player.ClientBrand = brand
	}
	return nil
}
