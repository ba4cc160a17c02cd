package net_structures

import (
	"io"

	"github.com/google/uuid"
)

// UUID is encoded on the wire as 16 raw bytes, big-endian per RFC 4122.
type UUID = uuid.UUID

func EncodeUUID(w io.Writer, u UUID) error {
	b := u[:]
	_, err := w.Write(b)
	return err
}

func DecodeUUID(r io.Reader) (UUID, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return UUID{}, err
	}
	return uuid.FromBytes(buf[:])
}
