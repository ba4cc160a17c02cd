// Package java_protocol implements the packet framing of Minecraft Java
// Edition protocol version 335: the Packet interface every concrete packet
// satisfies, and the frame format (length prefix, optional compression)
// that carries packets over TCP.
package java_protocol

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-mclib/mcserver/crypto"
	ns "github.com/go-mclib/mcserver/net_structures"
)

func compressPayload(payload []byte) ([]byte, error) {
	return crypto.CompressZlib(payload)
}

func decompressPayload(payload []byte, size int) ([]byte, error) {
	return crypto.DecompressZlib(payload, size)
}

// State names the four phases of the protocol. Configuration, present in
// modern protocol versions, does not exist at version 335 and is
// deliberately absent.
type State int

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
)

func (s State) String() string {
	switch s {
	case StateHandshake:
		return "handshake"
	case StateStatus:
		return "status"
	case StateLogin:
		return "login"
	case StatePlay:
		return "play"
	default:
		return "unknown"
	}
}

// Bound names the direction a packet travels.
type Bound int

const (
	Serverbound Bound = iota
	Clientbound
)

// Packet is satisfied by every concrete packet variant. ID, State, and
// Bound identify the variant within the protocol's (state, direction, id)
// tagged union; Read/Write (de)serialize the variant's field schema,
// excluding the outer frame and the packet id itself.
type Packet interface {
	ID() int32
	State() State
	Bound() Bound
	Read(buf *ns.PacketBuffer) error
	Write(buf *ns.PacketBuffer) error
}

// MaxFrameLength bounds the sanity check on an incoming frame's declared
// length, guarding against a hostile or corrupt length prefix.
const MaxFrameLength = 2 * 1024 * 1024

// MaxDecompressedLength bounds the sanity check on a frame's declared
// uncompressed size.
const MaxDecompressedLength = 8 * 1024 * 1024

// Frame is a fully reassembled, identified, but not yet type-decoded
// packet: the numeric id plus its raw field bytes.
type Frame struct {
	ID   int32
	Body []byte
}

// EncodePacket serializes p's fields via Write, returning the packet id
// and body the frame layer will wrap.
func EncodePacket(p Packet) (Frame, error) {
	buf := ns.NewWriteBuffer()
	if err := p.Write(buf); err != nil {
		return Frame{}, fmt.Errorf("java_protocol: encode packet 0x%02x: %w", p.ID(), err)
	}
	return Frame{ID: p.ID(), Body: buf.Bytes()}, nil
}

// DecodeInto decodes a frame's body into p via Read. p's ID/State/Bound
// must already match the frame (callers dispatch on (state, id) before
// calling this).
func DecodeInto(p Packet, f Frame) error {
	buf := ns.NewReadBuffer(f.Body)
	if err := p.Read(buf); err != nil {
		return fmt.Errorf("java_protocol: decode packet 0x%02x: %w", f.ID, err)
	}
	return nil
}

// WriteFrame serializes f onto w, applying compression framing when
// threshold >= 0 per §4.4: bodies at or above threshold are deflated with
// a data_length prefix; smaller bodies ship with data_length = 0 and the
// literal payload. threshold < 0 means compression is not enabled and the
// plain uncompressed frame (length ‖ id ‖ body) is written.
func WriteFrame(w io.Writer, f Frame, threshold int) error {
	idAndBody := ns.NewWriteBuffer()
	if err := idAndBody.WriteVarInt(f.ID); err != nil {
		return fmt.Errorf("java_protocol: write packet id: %w", err)
	}
	if err := idAndBody.WriteRaw(f.Body); err != nil {
		return fmt.Errorf("java_protocol: write frame body: %w", err)
	}
	payload := idAndBody.Bytes()

	if threshold < 0 {
		return writeUncompressedFrame(w, payload)
	}
	return writeCompressedFrame(w, payload, threshold)
}

func writeUncompressedFrame(w io.Writer, payload []byte) error {
	lenBuf := ns.NewWriteBuffer()
	if err := lenBuf.WriteVarInt(int32(len(payload))); err != nil {
		return err
	}
	if _, err := w.Write(lenBuf.Bytes()); err != nil {
		return fmt.Errorf("java_protocol: write frame length: %w", err)
	}
	_, err := w.Write(payload)
	if err != nil {
		return fmt.Errorf("java_protocol: write frame payload: %w", err)
	}
	return nil
}

func writeCompressedFrame(w io.Writer, payload []byte, threshold int) error {
	inner := ns.NewWriteBuffer()
	if len(payload) >= threshold {
		compressed, err := compressPayload(payload)
		if err != nil {
			return err
		}
		if err := inner.WriteVarInt(int32(len(payload))); err != nil {
			return err
		}
		if err := inner.WriteRaw(compressed); err != nil {
			return err
		}
	} else {
		if err := inner.WriteVarInt(0); err != nil {
			return err
		}
		if err := inner.WriteRaw(payload); err != nil {
			return err
		}
	}

	outer := ns.NewWriteBuffer()
	if err := outer.WriteVarInt(int32(len(inner.Bytes()))); err != nil {
		return err
	}
	if _, err := w.Write(outer.Bytes()); err != nil {
		return fmt.Errorf("java_protocol: write frame length: %w", err)
	}
	if _, err := w.Write(inner.Bytes()); err != nil {
		return fmt.Errorf("java_protocol: write frame payload: %w", err)
	}
	return nil
}

// ReadFrame reads exactly one frame from r, applying decompression when
// threshold >= 0. It blocks until a full frame is available; package
// server calls it from each connection's own reading goroutine.
func ReadFrame(r *bufio.Reader, threshold int) (Frame, error) {
	length, _, err := ns.DecodeVarInt(r)
	if err != nil {
		return Frame{}, fmt.Errorf("java_protocol: read frame length: %w", err)
	}
	if length < 0 || int(length) > MaxFrameLength {
		return Frame{}, fmt.Errorf("java_protocol: frame length %d exceeds sanity bound", length)
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return Frame{}, fmt.Errorf("java_protocol: read frame body: %w", err)
	}

	if threshold < 0 {
		return decodeUncompressedPayload(body)
	}
	return decodeCompressedPayload(body)
}

func decodeUncompressedPayload(payload []byte) (Frame, error) {
	pb := ns.NewReadBuffer(payload)
	id, err := pb.ReadVarInt()
	if err != nil {
		return Frame{}, fmt.Errorf("java_protocol: read packet id: %w", err)
	}
	rest, err := pb.Remaining()
	if err != nil {
		return Frame{}, err
	}
	return Frame{ID: id, Body: rest}, nil
}

func decodeCompressedPayload(payload []byte) (Frame, error) {
	pb := ns.NewReadBuffer(payload)
	dataLength, err := pb.ReadVarInt()
	if err != nil {
		return Frame{}, fmt.Errorf("java_protocol: read data length: %w", err)
	}
	rest, err := pb.Remaining()
	if err != nil {
		return Frame{}, err
	}

	if dataLength == 0 {
		return decodeUncompressedPayload(rest)
	}
	if int(dataLength) > MaxDecompressedLength {
		return Frame{}, fmt.Errorf("java_protocol: declared data length %d exceeds sanity bound", dataLength)
	}
	inflated, err := decompressPayload(rest, int(dataLength))
	if err != nil {
		return Frame{}, err
	}
	return decodeUncompressedPayload(inflated)
}
