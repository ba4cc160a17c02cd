package net_structures

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf16"
)

// MaxStringLength is the default upper bound, in UTF-16 code units, on a
// protocol String unless a specific packet documents a smaller one.
const MaxStringLength = 32767

// ErrStringTooLong is returned when a decoded or encoded string exceeds its
// permitted length.
var ErrStringTooLong = errors.New("net_structures: string exceeds maximum length")

// String is a VarInt-length-prefixed UTF-8 string with no trailing NUL.
type String string

func (s String) Encode(w io.Writer) error {
	return encodeLengthPrefixed(w, []byte(s), MaxStringLength)
}

func DecodeString(r io.Reader) (String, error) {
	b, err := decodeLengthPrefixed(r, MaxStringLength)
	if err != nil {
		return "", err
	}
	return String(b), nil
}

// Chat is a String whose content must be a valid JSON chat component. It is
// kept distinct from String at the primitive-codec level: the wire shape is
// identical, but a Chat value carries the obligation of being well-formed
// chat JSON, and call sites that need one must not silently accept a bare
// string instead.
type Chat string

func (c Chat) Encode(w io.Writer) error {
	return encodeLengthPrefixed(w, []byte(c), MaxStringLength)
}

func DecodeChat(r io.Reader) (Chat, error) {
	b, err := decodeLengthPrefixed(r, MaxStringLength)
	if err != nil {
		return "", err
	}
	return Chat(b), nil
}

// ChatString wraps a plain string in a minimal valid JSON chat component,
// e.g. for disconnect reasons produced by the server itself.
func ChatString(text string) Chat {
	return Chat(fmt.Sprintf(`{"text":%s}`, quoteJSON(text)))
}

func quoteJSON(s string) string {
	buf := make([]byte, 0, len(s)+2)
	buf = append(buf, '"')
	for _, r := range s {
		switch r {
		case '"':
			buf = append(buf, '\\', '"')
		case '\\':
			buf = append(buf, '\\', '\\')
		case '\n':
			buf = append(buf, '\\', 'n')
		default:
			buf = append(buf, string(r)...)
		}
	}
	buf = append(buf, '"')
	return string(buf)
}

func encodeLengthPrefixed(w io.Writer, b []byte, maxUnits int) error {
	if len(utf16.Encode([]rune(string(b)))) > maxUnits {
		return ErrStringTooLong
	}
	if err := VarInt(len(b)).Encode(w); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func decodeLengthPrefixed(r io.Reader, maxUnits int) ([]byte, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		return nil, errBadReader
	}
	n, _, err := DecodeVarInt(br)
	if err != nil {
		return nil, err
	}
	if n < 0 || int(n) > maxUnits*4 {
		return nil, ErrStringTooLong
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	if len(utf16.Encode([]rune(string(buf)))) > maxUnits {
		return nil, ErrStringTooLong
	}
	return buf, nil
}

// Identifier is a namespaced string of the form "namespace:path"; the
// namespace defaults to "minecraft" when absent.
type Identifier string

func (id Identifier) Namespace() string {
	for i, r := range id {
		if r == ':' {
			return string(id[:i])
		}
	}
	return "minecraft"
}

func (id Identifier) Path() string {
	for i, r := range id {
		if r == ':' {
			return string(id[i+1:])
		}
	}
	return string(id)
}

func (id Identifier) Encode(w io.Writer) error {
	return String(id).Encode(w)
}

func DecodeIdentifier(r io.Reader) (Identifier, error) {
	s, err := DecodeString(r)
	if err != nil {
		return "", err
	}
	return Identifier(s), nil
}
