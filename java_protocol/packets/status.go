package packets

import (
	jp "github.com/go-mclib/mcserver/java_protocol"
	ns "github.com/go-mclib/mcserver/net_structures"
)

// StatusRequest is Status/Serverbound/0x00: an empty ping-for-MOTD request.
type StatusRequest struct{}

func (StatusRequest) ID() int32       { return 0x00 }
func (StatusRequest) State() jp.State { return jp.StateStatus }
func (StatusRequest) Bound() jp.Bound { return jp.Serverbound }
func (*StatusRequest) Read(*ns.PacketBuffer) error  { return nil }
func (*StatusRequest) Write(*ns.PacketBuffer) error { return nil }

// StatusResponse is Status/Clientbound/0x00: a JSON string describing
// version, protocol, players, and MOTD.
type StatusResponse struct {
	JSON string
}

func (StatusResponse) ID() int32       { return 0x00 }
func (StatusResponse) State() jp.State { return jp.StateStatus }
func (StatusResponse) Bound() jp.Bound { return jp.Clientbound }

func (p *StatusResponse) Read(buf *ns.PacketBuffer) error {
	s, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.JSON = s
	return nil
}

func (p *StatusResponse) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.JSON)
}

// StatusPing is Status/Serverbound/0x01: an opaque 8-byte payload the
// client expects echoed back in Pong.
type StatusPing struct {
	Payload int64
}

func (StatusPing) ID() int32       { return 0x01 }
func (StatusPing) State() jp.State { return jp.StateStatus }
func (StatusPing) Bound() jp.Bound { return jp.Serverbound }

func (p *StatusPing) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return err
	}
	p.Payload = v
	return nil
}

func (p *StatusPing) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}

// StatusPong is Status/Clientbound/0x01.
type StatusPong struct {
	Payload int64
}

func (StatusPong) ID() int32       { return 0x01 }
func (StatusPong) State() jp.State { return jp.StateStatus }
func (StatusPong) Bound() jp.Bound { return jp.Clientbound }

func (p *StatusPong) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadInt64()
	if err != nil {
		return err
	}
	p.Payload = v
	return nil
}

func (p *StatusPong) Write(buf *ns.PacketBuffer) error {
	return buf.WriteInt64(p.Payload)
}
