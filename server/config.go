package server

import (
	"fmt"
	"os"
	"time"

	ns "github.com/go-mclib/mcserver/net_structures"
	"gopkg.in/yaml.v3"
)

// Config is the server's out-of-band configuration, loaded from YAML the
// way the corpus's server.yaml-based tools do.
type Config struct {
	ListenAddress string `yaml:"listen_address"`
	ListenPort    uint16 `yaml:"listen_port"`

	OnlineMode            bool   `yaml:"online_mode"`
	CompressionThreshold  int    `yaml:"compression_threshold"`
	MaxPlayers            int    `yaml:"max_players"`
	MOTD                  string `yaml:"motd"`
	ProtocolVersion       int32  `yaml:"protocol_version"`
	VersionName           string `yaml:"version_name"`
	ServerBrand           string `yaml:"server_brand"`
	MetricsAddress        string `yaml:"metrics_address"`

	Gamemode         uint8 `yaml:"gamemode"`
	Dimension        int32 `yaml:"dimension"`
	Difficulty       uint8 `yaml:"difficulty"`
	LevelType        string `yaml:"level_type"`
	ReducedDebugInfo bool   `yaml:"reduced_debug_info"`

	SpawnPosition ns.Position `yaml:"-"`

	KeepAliveInterval time.Duration `yaml:"-"`
	KeepAliveTimeout  time.Duration `yaml:"-"`
	TickInterval      time.Duration `yaml:"-"`
}

// DefaultConfig mirrors the original server's join-sequence defaults
// (hardcore=false, overworld, peaceful, 255 max players, default level
// type) promoted to configurable fields per SPEC_FULL.md's supplemented
// features.
func DefaultConfig() Config {
	return Config{
		ListenAddress:        "0.0.0.0",
		ListenPort:           25565,
		OnlineMode:           true,
		CompressionThreshold: 256,
		MaxPlayers:           255,
		MOTD:                 "A Minecraft Server",
		ProtocolVersion:      335,
		VersionName:          "1.12",
		ServerBrand:          "Stronk",
		MetricsAddress:       ":9100",
		Gamemode:             0,
		Dimension:            0,
		Difficulty:           0,
		LevelType:            "default",
		ReducedDebugInfo:     false,
		SpawnPosition:        ns.Position{X: 0, Y: 0, Z: 0},
		KeepAliveInterval:    10 * time.Second,
		KeepAliveTimeout:     30 * time.Second,
		TickInterval:         50 * time.Millisecond,
	}
}

// LoadConfig reads path as YAML over DefaultConfig, so a partial file
// still yields a runnable configuration. A file that cannot be opened is
// an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("server: open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("server: decode config: %w", err)
	}

	if cfg.ListenPort == 0 {
		cfg.ListenPort = 25565
	}
	if cfg.MaxPlayers == 0 {
		cfg.MaxPlayers = 255
	}
	if cfg.ProtocolVersion == 0 {
		cfg.ProtocolVersion = 335
	}
	if cfg.LevelType == "" {
		cfg.LevelType = "default"
	}
	if cfg.KeepAliveInterval == 0 {
		cfg.KeepAliveInterval = 10 * time.Second
	}
	if cfg.KeepAliveTimeout == 0 {
		cfg.KeepAliveTimeout = 30 * time.Second
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = 50 * time.Millisecond
	}
	return cfg, nil
}
