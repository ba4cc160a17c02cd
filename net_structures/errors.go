package net_structures

import "errors"

var (
	errBadReader        = errors.New("net_structures: reader must implement io.ByteReader")
	ErrByteArrayTooLong = errors.New("net_structures: byte array exceeds maximum length")
)
