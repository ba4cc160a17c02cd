// Package packets defines the concrete packet variants of protocol 335:
// one Go type per (state, direction, id) triple, each satisfying
// java_protocol.Packet.
package packets

import (
	jp "github.com/go-mclib/mcserver/java_protocol"
	ns "github.com/go-mclib/mcserver/net_structures"
)

// Intent is the handshake's requested next state.
type Intent int32

const (
	IntentStatus Intent = 1
	IntentLogin  Intent = 2
)

// Handshake is Handshake/Serverbound/0x00, the first packet on every
// connection.
type Handshake struct {
	ProtocolVersion int32
	ServerAddress   string
	ServerPort      uint16
	NextState       Intent
}

func (Handshake) ID() int32          { return 0x00 }
func (Handshake) State() jp.State    { return jp.StateHandshake }
func (Handshake) Bound() jp.Bound    { return jp.Serverbound }

func (p *Handshake) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.ProtocolVersion = v

	addr, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.ServerAddress = addr

	port, err := buf.ReadUint16()
	if err != nil {
		return err
	}
	p.ServerPort = port

	next, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.NextState = Intent(next)
	return nil
}

func (p *Handshake) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteVarInt(p.ProtocolVersion); err != nil {
		return err
	}
	if err := buf.WriteString(p.ServerAddress); err != nil {
		return err
	}
	if err := buf.WriteUint16(p.ServerPort); err != nil {
		return err
	}
	return buf.WriteVarInt(int32(p.NextState))
}
