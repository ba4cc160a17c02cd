package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.True(t, cfg.OnlineMode)
	require.Equal(t, int32(335), cfg.ProtocolVersion)
	require.Equal(t, 256, cfg.CompressionThreshold)
}

func TestLoadConfigAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "server.yaml")
	require.NoError(t, os.WriteFile(path, []byte("online_mode: false\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.False(t, cfg.OnlineMode)
	require.Equal(t, uint16(25565), cfg.ListenPort)
	require.Equal(t, "default", cfg.LevelType)
}
