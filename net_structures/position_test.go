package net_structures

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionRoundTrip(t *testing.T) {
	cases := []Position{
		{X: 0, Y: 0, Z: 0},
		{X: -1, Y: -1, Z: -1},
		{X: 1<<25 - 1, Y: 1<<11 - 1, Z: 1<<25 - 1},
		{X: -(1 << 25), Y: -(1 << 11), Z: -(1 << 25)},
		{X: 18, Y: 64, Z: -18},
	}
	for _, p := range cases {
		var buf bytes.Buffer
		require.NoError(t, p.Encode(&buf))
		got, err := DecodePosition(&buf)
		require.NoError(t, err)
		require.Equal(t, p, got)
	}
}

func TestPositionPackedLayout(t *testing.T) {
	// X=18, Y=64, Z=-18 matches the worked example in the wiki's bit layout.
	p := Position{X: 18, Y: 64, Z: -18}
	require.Equal(t, int64(18)<<38|int64(64)<<26|(int64(-18)&zMask), p.Pack())
}
