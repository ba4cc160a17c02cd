package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"fmt"
)

// LoginKeyBits is the RSA modulus size the vanilla protocol expects for the
// per-login ephemeral key pair.
const LoginKeyBits = 1024

// GenerateLoginKeyPair mints a fresh RSA key pair for one login attempt.
// Nothing about it is persisted across connections or logins.
func GenerateLoginKeyPair() (*rsa.PrivateKey, error) {
	key, err := rsa.GenerateKey(rand.Reader, LoginKeyBits)
	if err != nil {
		return nil, fmt.Errorf("crypto: generate rsa key: %w", err)
	}
	return key, nil
}

// PublicKeyDER encodes key's public half as a DER SubjectPublicKeyInfo, the
// form the Encryption Request packet carries.
func PublicKeyDER(key *rsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("crypto: marshal public key: %w", err)
	}
	return der, nil
}

// DecryptPKCS1v15 decrypts data (the client's RSA-encrypted shared secret
// or verify token) under key using PKCS#1 v1.5 padding.
func DecryptPKCS1v15(key *rsa.PrivateKey, data []byte) ([]byte, error) {
	out, err := rsa.DecryptPKCS1v15(rand.Reader, key, data)
	if err != nil {
		return nil, fmt.Errorf("crypto: rsa decrypt: %w", err)
	}
	return out, nil
}
