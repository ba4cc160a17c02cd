package packets

import (
	jp "github.com/go-mclib/mcserver/java_protocol"
	ns "github.com/go-mclib/mcserver/net_structures"
)

// LoginStart is Login/Serverbound/0x00.
type LoginStart struct {
	Name string
}

func (LoginStart) ID() int32       { return 0x00 }
func (LoginStart) State() jp.State { return jp.StateLogin }
func (LoginStart) Bound() jp.Bound { return jp.Serverbound }

func (p *LoginStart) Read(buf *ns.PacketBuffer) error {
	s, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.Name = s
	return nil
}

func (p *LoginStart) Write(buf *ns.PacketBuffer) error {
	return buf.WriteString(p.Name)
}

// LoginDisconnect is Login/Clientbound/0x00.
type LoginDisconnect struct {
	Reason ns.Chat
}

func (LoginDisconnect) ID() int32       { return 0x00 }
func (LoginDisconnect) State() jp.State { return jp.StateLogin }
func (LoginDisconnect) Bound() jp.Bound { return jp.Clientbound }

func (p *LoginDisconnect) Read(buf *ns.PacketBuffer) error {
	c, err := buf.ReadChat()
	if err != nil {
		return err
	}
	p.Reason = c
	return nil
}

func (p *LoginDisconnect) Write(buf *ns.PacketBuffer) error {
	return buf.WriteChat(p.Reason)
}

// MaxEncryptionTokenLength bounds the public key / verify token / shared
// secret byte arrays exchanged during login.
const MaxEncryptionTokenLength = 1024

// EncryptionRequest is Login/Clientbound/0x01. ServerID is always the
// empty string in vanilla; it is kept as a field because the wire format
// carries it regardless.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (EncryptionRequest) ID() int32       { return 0x01 }
func (EncryptionRequest) State() jp.State { return jp.StateLogin }
func (EncryptionRequest) Bound() jp.Bound { return jp.Clientbound }

func (p *EncryptionRequest) Read(buf *ns.PacketBuffer) error {
	s, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.ServerID = s

	pk, err := buf.ReadByteArray(MaxEncryptionTokenLength)
	if err != nil {
		return err
	}
	p.PublicKey = pk

	vt, err := buf.ReadByteArray(MaxEncryptionTokenLength)
	if err != nil {
		return err
	}
	p.VerifyToken = vt
	return nil
}

func (p *EncryptionRequest) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.ServerID); err != nil {
		return err
	}
	if err := buf.WriteByteArray(p.PublicKey); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// EncryptionResponse is Login/Serverbound/0x01.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (EncryptionResponse) ID() int32       { return 0x01 }
func (EncryptionResponse) State() jp.State { return jp.StateLogin }
func (EncryptionResponse) Bound() jp.Bound { return jp.Serverbound }

func (p *EncryptionResponse) Read(buf *ns.PacketBuffer) error {
	ss, err := buf.ReadByteArray(MaxEncryptionTokenLength)
	if err != nil {
		return err
	}
	p.SharedSecret = ss

	vt, err := buf.ReadByteArray(MaxEncryptionTokenLength)
	if err != nil {
		return err
	}
	p.VerifyToken = vt
	return nil
}

func (p *EncryptionResponse) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteByteArray(p.SharedSecret); err != nil {
		return err
	}
	return buf.WriteByteArray(p.VerifyToken)
}

// LoginSuccess is Login/Clientbound/0x02. At protocol 335 both fields are
// plain strings (UUID hyphenated), unlike later versions that switch UUID
// to a raw 16-byte field.
type LoginSuccess struct {
	UUID     string
	Username string
}

func (LoginSuccess) ID() int32       { return 0x02 }
func (LoginSuccess) State() jp.State { return jp.StateLogin }
func (LoginSuccess) Bound() jp.Bound { return jp.Clientbound }

func (p *LoginSuccess) Read(buf *ns.PacketBuffer) error {
	u, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.UUID = u

	n, err := buf.ReadString()
	if err != nil {
		return err
	}
	p.Username = n
	return nil
}

func (p *LoginSuccess) Write(buf *ns.PacketBuffer) error {
	if err := buf.WriteString(p.UUID); err != nil {
		return err
	}
	return buf.WriteString(p.Username)
}

// SetCompression is Login/Clientbound/0x03, sent exactly once, immediately
// before Login Success, per §3's compression-threshold invariant.
type SetCompression struct {
	Threshold int32
}

func (SetCompression) ID() int32       { return 0x03 }
func (SetCompression) State() jp.State { return jp.StateLogin }
func (SetCompression) Bound() jp.Bound { return jp.Clientbound }

func (p *SetCompression) Read(buf *ns.PacketBuffer) error {
	v, err := buf.ReadVarInt()
	if err != nil {
		return err
	}
	p.Threshold = v
	return nil
}

func (p *SetCompression) Write(buf *ns.PacketBuffer) error {
	return buf.WriteVarInt(p.Threshold)
}
