package crypto

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// ServerIDHash computes SHA1(serverID || sharedSecret || derPublicKey) and
// renders it the way Java's new BigInteger(digest).toString(16) would: the
// 20-byte digest is interpreted as a big-endian two's-complement integer,
// negated (and the sign recorded) if its high bit is set, rendered in
// lowercase hex with leading zeros stripped. Plain lowercase-hex SHA-1 is
// not what the vanilla session service expects.
func ServerIDHash(serverID string, sharedSecret, derPublicKey []byte) string {
	h := sha1.New()
	h.Write([]byte(serverID))
	h.Write(sharedSecret)
	h.Write(derPublicKey)
	return stringifyJavaSHA1(h.Sum(nil))
}

func stringifyJavaSHA1(digest []byte) string {
	negative := digest[0]&0x80 == 0x80
	if negative {
		digest = twosComplement(digest)
	}

	res := strings.TrimLeft(hex.EncodeToString(digest), "0")
	if res == "" {
		res = "0"
	}
	if negative {
		res = "-" + res
	}
	return res
}

// twosComplement negates p, treating it as a big-endian unsigned integer.
func twosComplement(p []byte) []byte {
	out := make([]byte, len(p))
	carry := true
	for i := len(p) - 1; i >= 0; i-- {
		out[i] = ^p[i]
		if carry {
			carry = out[i] == 0xff
			out[i]++
		}
	}
	return out
}
