// Package net_structures implements the wire primitives of Minecraft Java
// Edition protocol version 335: VarInt/VarLong, strings, chat, UUIDs,
// positions, angles, and the buffered reader/writer that packets are built
// on top of.
package net_structures

import (
	"errors"
	"io"
)

const (
	// MaxVarIntLen is the maximum number of bytes a VarInt ever occupies on
	// the wire.
	MaxVarIntLen = 5
	// MaxVarLongLen is the maximum number of bytes a VarLong ever occupies
	// on the wire.
	MaxVarLongLen = 10

	segmentBits = 0x7F
	continueBit = 0x80
)

// ErrVarIntTooLong is returned when a VarInt's continuation bit is still
// set after the maximum number of bytes has been read.
var ErrVarIntTooLong = errors.New("net_structures: varint is too long")

// ErrVarLongTooLong is the VarLong analogue of ErrVarIntTooLong.
var ErrVarLongTooLong = errors.New("net_structures: varlong is too long")

// VarInt is a signed 32-bit integer encoded as 1 to 5 bytes, little-endian
// base-128 with the high bit of each byte a continuation flag.
type VarInt int32

// Len reports the number of bytes v occupies on the wire.
func (v VarInt) Len() int {
	u := uint32(v)
	n := 1
	for u >= continueBit {
		u >>= 7
		n++
	}
	return n
}

// Encode writes v to w.
func (v VarInt) Encode(w io.Writer) error {
	buf := [MaxVarIntLen]byte{}
	n := encodeVarInt(uint32(v), buf[:])
	_, err := w.Write(buf[:n])
	return err
}

func encodeVarInt(u uint32, buf []byte) int {
	n := 0
	for {
		b := byte(u & segmentBits)
		u >>= 7
		if u != 0 {
			b |= continueBit
		}
		buf[n] = b
		n++
		if u == 0 {
			return n
		}
	}
}

// DecodeVarInt reads a VarInt from r.
//
// The decode loop accumulates into a uint32 and only converts to the
// signed result once all continuation bytes are consumed, so a 5-byte
// encoding that sets bit 31 of its final byte still yields the correct
// two's-complement value instead of losing bits to an undersized
// intermediate.
func DecodeVarInt(r io.ByteReader) (VarInt, int, error) {
	var result uint32
	var position uint
	n := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, n, err
		}
		n++
		result |= uint32(b&segmentBits) << position
		if b&continueBit == 0 {
			return VarInt(int32(result)), n, nil
		}
		position += 7
		if position >= 32 {
			return 0, n, ErrVarIntTooLong
		}
	}
}

// VarLong is the 64-bit analogue of VarInt, encoded in at most 10 bytes.
type VarLong int64

// Len reports the number of bytes v occupies on the wire.
func (v VarLong) Len() int {
	u := uint64(v)
	n := 1
	for u >= continueBit {
		u >>= 7
		n++
	}
	return n
}

// Encode writes v to w.
func (v VarLong) Encode(w io.Writer) error {
	buf := [MaxVarLongLen]byte{}
	n := 0
	u := uint64(v)
	for {
		b := byte(u & segmentBits)
		u >>= 7
		if u != 0 {
			b |= continueBit
		}
		buf[n] = b
		n++
		if u == 0 {
			break
		}
	}
	_, err := w.Write(buf[:n])
	return err
}

// DecodeVarLong reads a VarLong from r.
func DecodeVarLong(r io.ByteReader) (VarLong, int, error) {
	var result uint64
	var position uint
	n := 0
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, n, err
		}
		n++
		result |= uint64(b&segmentBits) << position
		if b&continueBit == 0 {
			return VarLong(int64(result)), n, nil
		}
		position += 7
		if position >= 64 {
			return 0, n, ErrVarLongTooLong
		}
	}
}
