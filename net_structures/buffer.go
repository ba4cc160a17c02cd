package net_structures

import (
	"bufio"
	"bytes"
	"io"
)

// PacketBuffer is the scratch buffer a packet's Read/Write methods operate
// on: an io.Reader in decode mode, an io.Writer in encode mode, always
// backed by an in-memory byte slice so a fully assembled frame body can be
// pulled out with Bytes().
type PacketBuffer struct {
	r *bufio.Reader
	w *bytes.Buffer
}

// NewReadBuffer wraps a decoded, unframed packet body for reading.
func NewReadBuffer(body []byte) *PacketBuffer {
	return &PacketBuffer{r: bufio.NewReader(bytes.NewReader(body))}
}

// NewWriteBuffer returns an empty buffer ready for a packet's Write method.
func NewWriteBuffer() *PacketBuffer {
	return &PacketBuffer{w: new(bytes.Buffer)}
}

// Bytes returns the bytes written so far. Valid only in write mode.
func (b *PacketBuffer) Bytes() []byte {
	if b.w == nil {
		return nil
	}
	return b.w.Bytes()
}

func (b *PacketBuffer) writer() io.Writer { return b.w }
func (b *PacketBuffer) reader() io.Reader { return b.r }

func (b *PacketBuffer) WriteBool(v bool) error     { return Boolean(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteInt8(v int8) error     { return Int8(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteUint8(v uint8) error   { return Uint8(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteInt16(v int16) error   { return Int16(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteUint16(v uint16) error { return Uint16(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteInt32(v int32) error   { return Int32(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteInt64(v int64) error   { return Int64(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteFloat32(v float32) error { return Float32(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteFloat64(v float64) error { return Float64(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteVarInt(v int32) error    { return VarInt(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteVarLong(v int64) error   { return VarLong(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteString(v string) error   { return String(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteChat(v Chat) error       { return v.Encode(b.writer()) }
func (b *PacketBuffer) WriteIdentifier(v Identifier) error { return v.Encode(b.writer()) }
func (b *PacketBuffer) WriteUUID(v UUID) error       { return EncodeUUID(b.writer(), v) }
func (b *PacketBuffer) WriteAngle(v Angle) error     { return v.Encode(b.writer()) }
func (b *PacketBuffer) WritePosition(v Position) error { return v.Encode(b.writer()) }
func (b *PacketBuffer) WriteByteArray(v []byte) error  { return ByteArray(v).Encode(b.writer()) }
func (b *PacketBuffer) WriteRaw(v []byte) error {
	_, err := b.writer().Write(v)
	return err
}

func (b *PacketBuffer) ReadBool() (bool, error) {
	v, err := DecodeBoolean(b.reader())
	return bool(v), err
}
func (b *PacketBuffer) ReadInt8() (int8, error) {
	v, err := DecodeInt8(b.reader())
	return int8(v), err
}
func (b *PacketBuffer) ReadUint8() (uint8, error) {
	v, err := DecodeUint8(b.reader())
	return uint8(v), err
}
func (b *PacketBuffer) ReadInt16() (int16, error) {
	v, err := DecodeInt16(b.reader())
	return int16(v), err
}
func (b *PacketBuffer) ReadUint16() (uint16, error) {
	v, err := DecodeUint16(b.reader())
	return uint16(v), err
}
func (b *PacketBuffer) ReadInt32() (int32, error) {
	v, err := DecodeInt32(b.reader())
	return int32(v), err
}
func (b *PacketBuffer) ReadInt64() (int64, error) {
	v, err := DecodeInt64(b.reader())
	return int64(v), err
}
func (b *PacketBuffer) ReadFloat32() (float32, error) {
	v, err := DecodeFloat32(b.reader())
	return float32(v), err
}
func (b *PacketBuffer) ReadFloat64() (float64, error) {
	v, err := DecodeFloat64(b.reader())
	return float64(v), err
}
func (b *PacketBuffer) ReadVarInt() (int32, error) {
	v, _, err := DecodeVarInt(b.r)
	return int32(v), err
}
func (b *PacketBuffer) ReadVarLong() (int64, error) {
	v, _, err := DecodeVarLong(b.r)
	return int64(v), err
}
func (b *PacketBuffer) ReadString() (string, error) {
	v, err := DecodeString(b.reader())
	return string(v), err
}
func (b *PacketBuffer) ReadChat() (Chat, error) { return DecodeChat(b.reader()) }
func (b *PacketBuffer) ReadIdentifier() (Identifier, error) {
	return DecodeIdentifier(b.reader())
}
func (b *PacketBuffer) ReadUUID() (UUID, error)       { return DecodeUUID(b.reader()) }
func (b *PacketBuffer) ReadAngle() (Angle, error)     { return DecodeAngle(b.reader()) }
func (b *PacketBuffer) ReadPosition() (Position, error) { return DecodePosition(b.reader()) }
func (b *PacketBuffer) ReadByteArray(max int) ([]byte, error) {
	v, err := DecodeByteArray(b.r, max)
	return v, err
}
func (b *PacketBuffer) ReadFixed(n int) ([]byte, error) {
	return DecodeFixedByteArray(b.reader(), n)
}

// Remaining drains and returns whatever is left unread, for variable-tail
// fields such as a plugin message body whose length is implied by the
// outer frame rather than self-prefixed.
func (b *PacketBuffer) Remaining() ([]byte, error) {
	return io.ReadAll(b.reader())
}
