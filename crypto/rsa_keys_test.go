package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateLoginKeyPairAndDecrypt(t *testing.T) {
	key, err := GenerateLoginKeyPair()
	require.NoError(t, err)
	require.Equal(t, LoginKeyBits, key.N.BitLen())

	der, err := PublicKeyDER(key)
	require.NoError(t, err)
	require.NotEmpty(t, der)

	sharedSecret := make([]byte, SharedSecretLength)
	_, err = rand.Read(sharedSecret)
	require.NoError(t, err)

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, &key.PublicKey, sharedSecret)
	require.NoError(t, err)

	decrypted, err := DecryptPKCS1v15(key, encrypted)
	require.NoError(t, err)
	require.Equal(t, sharedSecret, decrypted)
}
