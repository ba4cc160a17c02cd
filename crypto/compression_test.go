package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	data := []byte(strings.Repeat("minecraft protocol packet body ", 100))
	compressed, err := CompressZlib(data)
	require.NoError(t, err)
	require.Less(t, len(compressed), len(data))

	decompressed, err := DecompressZlib(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestDecompressRejectsOversizedOutput(t *testing.T) {
	data := []byte(strings.Repeat("x", 10000))
	compressed, err := CompressZlib(data)
	require.NoError(t, err)

	_, err = DecompressZlib(compressed, 100)
	require.Error(t, err)
}
