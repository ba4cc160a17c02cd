package packets

import (
	jp "github.com/go-mclib/mcserver/java_protocol"
	ns "github.com/go-mclib/mcserver/net_structures"
)

// TeleportConfirm is Play/Serverbound/0x00.
type TeleportConfirm struct {
	TeleportID int32
}

func (TeleportConfirm) ID() int32       { return 0x00 }
func (TeleportConfirm) State() jp.State { return jp.StatePlay }
func (TeleportConfirm) Bound() jp.Bound { return jp.Serverbound }

func (p *TeleportConfirm) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.TeleportID = v
	return nil
}

func (p *TeleportConfirm) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.TeleportID)
}

// TabComplete is Play/Serverbound/0x02. Only the text field is modeled;
// the assume-command/looked-at-block fields are out of this spec's scope
// (no command parsing is implemented).
type TabComplete struct {
	Text string
}

func (TabComplete) ID() int32       { return 0x02 }
func (TabComplete) State() jp.State { return jp.StatePlay }
func (TabComplete) Bound() jp.Bound { return jp.Serverbound }

func (p *TabComplete) Read(buf *ns.PacketBuffer) error {
	s, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.Text = s
	return nil
}

func (p *TabComplete) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Text)
}

// ChatMessage is Play/Serverbound/0x03.
type ChatMessage struct {
	Message string
}

func (ChatMessage) ID() int32       { return 0x03 }
func (ChatMessage) State() jp.State { return jp.StatePlay }
func (ChatMessage) Bound() jp.Bound { return jp.Serverbound }

func (p *ChatMessage) Read(buf *ns.PacketBuffer) error {
	s, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.Message = s
	return nil
}

func (p *ChatMessage) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Message)
}

// ClientSettings is Play/Serverbound/0x05.
type ClientSettings struct {
	Locale              string
	ViewDistance        int8
	ChatMode            int32
	ChatColors          bool
	DisplayedSkinParts  uint8
	MainHand            int32
}

func (ClientSettings) ID() int32       { return 0x05 }
func (ClientSettings) State() jp.State { return jp.StatePlay }
func (ClientSettings) Bound() jp.Bound { return jp.Serverbound }

func (p *ClientSettings) Read(buf *ns.PacketBuffer) error {
	locale, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.Locale = locale

	vd, err := buf.ReadInt8()
	if err != nil {
		return err
	}
	p.ViewDistance = vd

	cm, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.ChatMode = cm

	cc, err := buf.ReadBool()
	if err != nil {
		return err
	}
	p.ChatColors = cc

	sp, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.DisplayedSkinParts = sp

	mh, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.MainHand = mh
	return nil
}

func (p *ClientSettings) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.Locale); err != nil {
		return err
	}
	if err := buf.WriteInt8(p.ViewDistance); err != nil {
		return err
	}
	if err := buf.WriteVarInt(p.ChatMode); err != nil {
		return err
	}
	if err := buf.WriteBool(p.ChatColors); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.DisplayedSkinParts); err != nil {
		return err
	}
	return buf.WriteVarInt(p.MainHand)
}

// CloseWindow is Play/Serverbound/0x09.
type CloseWindow struct {
	WindowID uint8
}

func (CloseWindow) ID() int32       { return 0x09 }
func (CloseWindow) State() jp.State { return jp.StatePlay }
func (CloseWindow) Bound() jp.Bound { return jp.Serverbound }

func (p *CloseWindow) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.WindowID = v
	return nil
}

func (p *CloseWindow) Write(buf *ns.PacketBuffer) error {
	return buf.WriteUint8(p.WindowID)
}

// PluginMessageServerbound is Play/Serverbound/0x0A. Data is the
// unprefixed remainder of the frame, per vanilla's plugin-channel
// convention.
type PluginMessageServerbound struct {
	Channel string
	Data    []byte
}

func (PluginMessageServerbound) ID() int32       { return 0x0A }
func (PluginMessageServerbound) State() jp.State { return jp.StatePlay }
func (PluginMessageServerbound) Bound() jp.Bound { return jp.Serverbound }

func (p *PluginMessageServerbound) Read(buf *ns.PacketBuffer) error {
	ch, err := buf.ReadIdentifier()
	if err != nil {
		return err
	}
	p.Channel = string(ch)

	rest, err := buf.Remaining()
	if err != nil {
		return err
	}
	p.Data = rest
	return nil
}

func (p *PluginMessageServerbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(ns.Identifier(p.Channel)); err != nil {
		return err
	}
	return buf.WriteRaw(p.Data)
}

// UseEntity is Play/Serverbound/0x0B. Only the target and the interaction
// type are modeled; the out-of-scope "hand"/location sub-fields for
// interact-at are omitted since entity simulation is a collaborator, not
// core.
type UseEntity struct {
	TargetEntityID int32
	Type           int32
}

func (UseEntity) ID() int32       { return 0x0B }
func (UseEntity) State() jp.State { return jp.StatePlay }
func (UseEntity) Bound() jp.Bound { return jp.Serverbound }

func (p *UseEntity) Read(buf *ns.PacketBuffer) error {
	id, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.TargetEntityID = id

	t, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Type = t
	return nil
}

func (p *UseEntity) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.TargetEntityID); err != nil {
		return err
	}
	return buf.WriteVarInt(p.Type)
}

// KeepAliveServerbound is Play/Serverbound/0x0C. At protocol 335 the id
// is a VarInt, not a Long — the original allocates a 5-byte VarInt
// buffer for both directions (mcpr_packet.c), and the 8-byte Long
// encoding wasn't introduced until 1.12.1 / protocol 338.
type KeepAliveServerbound struct {
	KeepAliveID int32
}

func (KeepAliveServerbound) ID() int32       { return 0x0C }
func (KeepAliveServerbound) State() jp.State { return jp.StatePlay }
func (KeepAliveServerbound) Bound() jp.Bound { return jp.Serverbound }

func (p *KeepAliveServerbound) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.KeepAliveID = v
	return nil
}

func (p *KeepAliveServerbound) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.KeepAliveID)
}

// PlayerPositionAndLookServerbound is Play/Serverbound/0x0F.
type PlayerPositionAndLookServerbound struct {
	X, Y, Z    float64
	Yaw, Pitch float32
	OnGround   bool
}

func (PlayerPositionAndLookServerbound) ID() int32       { return 0x0F }
func (PlayerPositionAndLookServerbound) State() jp.State { return jp.StatePlay }
func (PlayerPositionAndLookServerbound) Bound() jp.Bound { return jp.Serverbound }

func (p *PlayerPositionAndLookServerbound) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	yaw32, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.Yaw = yaw32
	pitch32, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.Pitch = pitch32
	if p.OnGround, err = buf.ReadBool(); err != nil {
		return err
	}
	return nil
}

func (p *PlayerPositionAndLookServerbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	return buf.WriteBool(p.OnGround)
}

// PlayerAbilitiesServerbound is Play/Serverbound/0x13.
type PlayerAbilitiesServerbound struct {
	Flags        uint8
	FlyingSpeed  float32
	WalkingSpeed float32
}

func (PlayerAbilitiesServerbound) ID() int32       { return 0x13 }
func (PlayerAbilitiesServerbound) State() jp.State { return jp.StatePlay }
func (PlayerAbilitiesServerbound) Bound() jp.Bound { return jp.Serverbound }

func (p *PlayerAbilitiesServerbound) Read(buf *ns.PacketBuffer) error {
	f, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.Flags = f

	fs, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.FlyingSpeed = fs

	ws, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.WalkingSpeed = ws
	return nil
}

func (p *PlayerAbilitiesServerbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return err
	}
	return buf.WriteFloat32(p.WalkingSpeed)
}

// HeldItemChangeServerbound is Play/Serverbound/0x1A.
type HeldItemChangeServerbound struct {
	Slot int16
}

func (HeldItemChangeServerbound) ID() int32       { return 0x1A }
func (HeldItemChangeServerbound) State() jp.State { return jp.StatePlay }
func (HeldItemChangeServerbound) Bound() jp.Bound { return jp.Serverbound }

func (p *HeldItemChangeServerbound) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadInt16()
	if err != nil {
		return err
	}
	p.Slot = v
	return nil
}

func (p *HeldItemChangeServerbound) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt16(p.Slot)
}

// --- Clientbound play packets needed for the join sequence (§4.7). ---

// JoinGame is Play/Clientbound. Numeric id per the protocol-335 table;
// see DESIGN.md for the sourcing of clientbound ids beyond those §4.5/4.6
// pin explicitly.
type JoinGame struct {
	EntityID         int32
	Gamemode         uint8
	Dimension        int32
	Difficulty       uint8
	MaxPlayers       uint8
	LevelType        string
	ReducedDebugInfo bool
}

func (JoinGame) ID() int32       { return 0x23 }
func (JoinGame) State() jp.State { return jp.StatePlay }
func (JoinGame) Bound() jp.Bound { return jp.Clientbound }

func (p *JoinGame) Read(buf *ns.PacketBuffer) error {
	var err error
	var eid int32
	if eid, err = buf.ReadInt32(); err != nil {
		return err
	}
	p.EntityID = eid
	gm, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.Gamemode = gm
	dim, err := buf.ReadInt32()
	if err != nil {
		return err
	}
	p.Dimension = dim
	diff, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.Difficulty = diff
	mp, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.MaxPlayers = mp
	lt, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.LevelType = lt
	rdi, err := buf.ReadBool()
	if err != nil {
		return err
	}
	p.ReducedDebugInfo = rdi
	return nil
}

func (p *JoinGame) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteInt32(p.EntityID); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Gamemode); err != nil {
		return err
	}
	if err := buf.WriteInt32(p.Dimension); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Difficulty); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.MaxPlayers); err != nil {
		return err
	}
	if err := buf.WriteString(p.LevelType); err != nil {
		return err
	}
	return buf.WriteBool(p.ReducedDebugInfo)
}

// PluginMessageClientbound carries the server brand, among other channels.
type PluginMessageClientbound struct {
	Channel string
	Data    []byte
}

func (PluginMessageClientbound) ID() int32       { return 0x18 }
func (PluginMessageClientbound) State() jp.State { return jp.StatePlay }
func (PluginMessageClientbound) Bound() jp.Bound { return jp.Clientbound }

func (p *PluginMessageClientbound) Read(buf *ns.PacketBuffer) error {
	ch, err := buf.ReadIdentifier()
	if err != nil {
		return err
	}
	p.Channel = string(ch)
	rest, err := buf.Remaining()
	if err != nil {
		return err
	}
	p.Data = rest
	return nil
}

func (p *PluginMessageClientbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteIdentifier(ns.Identifier(p.Channel)); err != nil {
		return err
	}
	return buf.WriteRaw(p.Data)
}

// SpawnPosition is Play/Clientbound, carrying the world compass target.
type SpawnPosition struct {
	Location ns.Position
}

func (SpawnPosition) ID() int32       { return 0x45 }
func (SpawnPosition) State() jp.State { return jp.StatePlay }
func (SpawnPosition) Bound() jp.Bound { return jp.Clientbound }

func (p *SpawnPosition) Read(buf *ns.PacketBuffer) error {
	pos, err := buf.ReadPosition()
	if err != nil {
		return err
	}
	p.Location = pos
	return nil
}

func (p *SpawnPosition) Write(buf *ns.PacketBuffer) error {
	return buf.WritePosition(p.Location)
}

// PlayerAbilitiesClientbound is Play/Clientbound.
type PlayerAbilitiesClientbound struct {
	Flags               uint8
	FlyingSpeed         float32
	FieldOfViewModifier float32
}

func (PlayerAbilitiesClientbound) ID() int32       { return 0x2C }
func (PlayerAbilitiesClientbound) State() jp.State { return jp.StatePlay }
func (PlayerAbilitiesClientbound) Bound() jp.Bound { return jp.Clientbound }

func (p *PlayerAbilitiesClientbound) Read(buf *ns.PacketBuffer) error {
	f, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.Flags = f
	fs, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.FlyingSpeed = fs
	fov, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.FieldOfViewModifier = fov
	return nil
}

func (p *PlayerAbilitiesClientbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.FlyingSpeed); err != nil {
		return err
	}
	return buf.WriteFloat32(p.FieldOfViewModifier)
}

// PlayerPositionAndLookClientbound is Play/Clientbound, the absolute
// teleport the server issues after Client Settings.
type PlayerPositionAndLookClientbound struct {
	X, Y, Z     float64
	Yaw, Pitch  float32
	Flags       uint8
	TeleportID  int32
}

func (PlayerPositionAndLookClientbound) ID() int32       { return 0x2F }
func (PlayerPositionAndLookClientbound) State() jp.State { return jp.StatePlay }
func (PlayerPositionAndLookClientbound) Bound() jp.Bound { return jp.Clientbound }

func (p *PlayerPositionAndLookClientbound) Read(buf *ns.PacketBuffer) error {
	var err error
	if p.X, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Y, err = buf.ReadFloat64(); err != nil {
		return err
	}
	if p.Z, err = buf.ReadFloat64(); err != nil {
		return err
	}
	yaw, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.Yaw = yaw
	pitch, err := buf.ReadFloat32()
	if err != nil {
		return err
	}
	p.Pitch = pitch
	flags, err := buf.ReadUint8()
	if err != nil {
		return err
	}
	p.Flags = flags
	tid, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.TeleportID = tid
	return nil
}

func (p *PlayerPositionAndLookClientbound) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteFloat64(p.X); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Y); err != nil {
		return err
	}
	if err := buf.WriteFloat64(p.Z); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Yaw); err != nil {
		return err
	}
	if err := buf.WriteFloat32(p.Pitch); err != nil {
		return err
	}
	if err := buf.WriteUint8(p.Flags); err != nil {
		return err
	}
	return buf.WriteVarInt(p.TeleportID)
}

// KeepAliveClientbound is Play/Clientbound. At protocol 335 the id is a
// VarInt (up to 5 bytes on the wire); the Long-encoded Keep Alive wasn't
// introduced until 1.12.1 / protocol 338.
type KeepAliveClientbound struct {
	KeepAliveID int32
}

func (KeepAliveClientbound) ID() int32       { return 0x1F }
func (KeepAliveClientbound) State() jp.State { return jp.StatePlay }
func (KeepAliveClientbound) Bound() jp.Bound { return jp.Clientbound }

func (p *KeepAliveClientbound) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.KeepAliveID = v
	return nil
}

func (p *KeepAliveClientbound) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.KeepAliveID)
}

// PlayDisconnect is Play/Clientbound/0x1A, per §4.6's explicit numbering.
type PlayDisconnect struct {
	Reason ns.Chat
}

func (PlayDisconnect) ID() int32       { return 0x1A }
func (PlayDisconnect) State() jp.State { return jp.StatePlay }
func (PlayDisconnect) Bound() jp.Bound { return jp.Clientbound }

func (p *PlayDisconnect) Read(buf *ns.PacketBuffer) error {
	c, err := buf.ReadChat()
	if err != nil {
		return err
	}
	p.Reason = c
	return nil
}

func (p *PlayDisconnect) Write(buf *ns.PacketBuffer) error {
	return buf.WriteChat(p.Reason)
}
