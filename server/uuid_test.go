package server

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfflinePlayerUUIDIsStableAndVersion3(t *testing.T) {
	u1 := OfflinePlayerUUID("Notch")
	u2 := OfflinePlayerUUID("Notch")
	require.Equal(t, u1, u2)
	require.Equal(t, uint(3), uint(u1.Version()))

	other := OfflinePlayerUUID("jeb_")
	require.NotEqual(t, u1, other)
}
