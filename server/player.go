package server

import (
	"time"

	ns "github.com/go-mclib/mcserver/net_structures"
)

// ClientSettings mirrors the serverbound Client Settings packet fields a
// handler stores for later use (chunk radius, skin layers, main hand).
type ClientSettings struct {
	Locale             string
	ViewDistance       int8
	ChatMode           int32
	ChatColors         bool
	DisplayedSkinParts uint8
	MainHand           int32
}

// Player is the per-connection game state that exists once a connection
// has completed login and entered Play, per §3's data model. It is owned
// by exactly one Connection and is never shared across goroutines without
// going through that connection's lock.
type Player struct {
	UUID     ns.UUID
	Username string
	EntityID int32

	Gamemode uint8

	Position ns.Position
	Yaw      float32
	Pitch    float32
	OnGround bool

	Invulnerable bool
	Flying       bool
	AllowFlying  bool
	FlyingSpeed  float32

	// CompassTarget is the block position clients point their compass at;
	// it seeds SpawnPosition on join and can be changed later.
	CompassTarget ns.Position

	SelectedSlot int8

	Settings ClientSettings

	ClientBrand string

	LastKeepAliveSent     time.Time
	LastKeepAliveID       int32
	LastKeepAliveReceived time.Time

	LastTeleportID int32
}

// NewPlayer builds the Play-state a successful login produces: spawn
// position and compass target both seeded from the server's configured
// spawn, gamemode from config, and a fresh entity id from the shared
// generator.
func NewPlayer(uuid ns.UUID, username string, entityID int32, cfg Config) *Player {
	return &Player{
		UUID:          uuid,
		Username:      username,
		EntityID:      entityID,
		Gamemode:      cfg.Gamemode,
		Position:      cfg.SpawnPosition,
		CompassTarget: cfg.SpawnPosition,
		AllowFlying:   cfg.Gamemode == 1, // creative
		FlyingSpeed:   0.05,
	}
}
