package server

import (
	"crypto/md5"

	"github.com/google/uuid"
)

// OfflinePlayerUUID derives the stable per-username UUID vanilla servers
// use in offline mode, where no session-service query is made at all: a
// version-3 UUID over the raw MD5 of "OfflinePlayer:"+name, matching
// Java's UUID.nameUUIDFromBytes (which does not prepend a namespace UUID,
// unlike RFC 4122's version-3 construction). The original C source never
// implements an offline-mode path of its own; this is supplemented per
// SPEC_FULL.md.
func OfflinePlayerUUID(name string) uuid.UUID {
	sum := md5.Sum([]byte("OfflinePlayer:" + name))
	sum[6] = (sum[6] & 0x0f) | 0x30 // version 3
	sum[8] = (sum[8] & 0x3f) | 0x80 // RFC 4122 variant
	u, _ := uuid.FromBytes(sum[:])
	return u
}
