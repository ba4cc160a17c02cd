package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// SharedSecretLength is the only length the protocol permits for a
// decrypted shared secret.
const SharedSecretLength = 16

// Session holds the pair of CFB8 stream contexts enabled for a connection
// once its Encryption Response has been validated. The two directions are
// independent streams sharing the same key/IV seed, per §4.3: CFB8 is
// stateful per direction, so encrypt and decrypt must not share one
// keystream cursor.
type Session struct {
	encrypt cipher.Stream
	decrypt cipher.Stream
}

// NewSession builds encrypt/decrypt CFB8 streams from the 16-byte shared
// secret, used as both AES-128 key and IV per the vanilla protocol.
func NewSession(sharedSecret []byte) (*Session, error) {
	if len(sharedSecret) != SharedSecretLength {
		return nil, fmt.Errorf("crypto: shared secret must be %d bytes, got %d", SharedSecretLength, len(sharedSecret))
	}
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("crypto: new aes cipher: %w", err)
	}
	return &Session{
		encrypt: NewEncryptStream(block, sharedSecret),
		decrypt: NewDecryptStream(block, sharedSecret),
	}, nil
}

// Encrypt encrypts data in place, through the connection's single
// continuous encrypt keystream, and returns it for convenience.
func (s *Session) Encrypt(data []byte) []byte {
	s.encrypt.XORKeyStream(data, data)
	return data
}

// Decrypt decrypts data in place through the connection's single
// continuous decrypt keystream, and returns it for convenience.
func (s *Session) Decrypt(data []byte) []byte {
	s.decrypt.XORKeyStream(data, data)
	return data
}
