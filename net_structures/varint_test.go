package net_structures

import (
	"bufio"
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, -1, 127, 128, 255, 2097151, 2147483647, -2147483648, math.MinInt32, math.MaxInt32}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, VarInt(v).Encode(&buf))
		require.LessOrEqual(t, buf.Len(), MaxVarIntLen)
		require.GreaterOrEqual(t, buf.Len(), 1)

		got, n, err := DecodeVarInt(bufio.NewReader(&buf))
		require.NoError(t, err)
		require.Equal(t, int32(v), int32(got))
		require.Equal(t, VarInt(v).Len(), n)
	}
}

// TestVarIntSignExtensionBug targets the decoder's handling of a 5-byte
// encoding whose final byte sets bit 31 of the accumulated result: the
// decode must yield the exact two's-complement value, not a value
// corrupted by an undersized accumulator.
func TestVarIntSignExtensionBug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, VarInt(-1).Encode(&buf))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}, buf.Bytes())

	got, n, err := DecodeVarInt(bufio.NewReader(&buf))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, int32(-1), int32(got))
}

func TestVarIntTooLong(t *testing.T) {
	buf := bytes.NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	_, _, err := DecodeVarInt(bufio.NewReader(buf))
	require.ErrorIs(t, err, ErrVarIntTooLong)
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, 1 << 40}
	for _, v := range values {
		var buf bytes.Buffer
		require.NoError(t, VarLong(v).Encode(&buf))
		require.LessOrEqual(t, buf.Len(), MaxVarLongLen)

		got, n, err := DecodeVarLong(bufio.NewReader(&buf))
		require.NoError(t, err)
		require.Equal(t, v, int64(got))
		require.Equal(t, VarLong(v).Len(), n)
	}
}
