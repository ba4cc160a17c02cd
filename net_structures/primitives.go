package net_structures

import (
	"encoding/binary"
	"io"
	"math"
)

// Boolean is a single 0x00/0x01 byte.
type Boolean bool

func (b Boolean) Encode(w io.Writer) error {
	v := byte(0x00)
	if b {
		v = 0x01
	}
	_, err := w.Write([]byte{v})
	return err
}

func DecodeBoolean(r io.Reader) (Boolean, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false, err
	}
	return Boolean(buf[0] != 0), nil
}

type Int8 int8

func (v Int8) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeInt8(r io.Reader) (Int8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Int8(int8(buf[0])), nil
}

type Uint8 uint8

func (v Uint8) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(v)})
	return err
}

func DecodeUint8(r io.Reader) (Uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Uint8(buf[0]), nil
}

type Int16 int16

func (v Int16) Encode(w io.Writer) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

func DecodeInt16(r io.Reader) (Int16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Int16(int16(binary.BigEndian.Uint16(buf[:]))), nil
}

type Uint16 uint16

func (v Uint16) Encode(w io.Writer) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Write(buf[:])
	return err
}

func DecodeUint16(r io.Reader) (Uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Uint16(binary.BigEndian.Uint16(buf[:])), nil
}

type Int32 int32

func (v Int32) Encode(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func DecodeInt32(r io.Reader) (Int32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Int32(int32(binary.BigEndian.Uint32(buf[:]))), nil
}

type Int64 int64

func (v Int64) Encode(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func DecodeInt64(r io.Reader) (Int64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Int64(int64(binary.BigEndian.Uint64(buf[:]))), nil
}

type Float32 float32

func (v Float32) Encode(w io.Writer) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], math.Float32bits(float32(v)))
	_, err := w.Write(buf[:])
	return err
}

func DecodeFloat32(r io.Reader) (Float32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Float32(math.Float32frombits(binary.BigEndian.Uint32(buf[:]))), nil
}

type Float64 float64

func (v Float64) Encode(w io.Writer) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], math.Float64bits(float64(v)))
	_, err := w.Write(buf[:])
	return err
}

func DecodeFloat64(r io.Reader) (Float64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Float64(math.Float64frombits(binary.BigEndian.Uint64(buf[:]))), nil
}

// Angle is an unsigned 8-bit value where 256 steps equal one full turn.
type Angle uint8

func AngleFromDegrees(deg float64) Angle {
	steps := math.Mod(deg, 360)
	if steps < 0 {
		steps += 360
	}
	return Angle(uint8(steps / 360 * 256))
}

func (a Angle) Degrees() float64 {
	return float64(a) / 256 * 360
}

func (a Angle) Encode(w io.Writer) error {
	_, err := w.Write([]byte{byte(a)})
	return err
}

func DecodeAngle(r io.Reader) (Angle, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return Angle(buf[0]), nil
}
