package config

import (
	"github.com/wildmere/emberhollow/shared/collision"
	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers use.
const Default = ecs.LayerDefault

// Config holds the window dimensions.
type Config struct {
	Width  int
	Height int
	Title  string
}

// GridConfig contains tile grid constants.
type GridConfig struct {
	TileSize int
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Movement, pixels per frame
	MoveSpeed float64

	// Interaction reach beyond the collision rect, in pixels
	InteractRange float64

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// CameraConfig contains camera follow and recenter tuning.
type CameraConfig struct {
	FollowSmoothing float64 // per-frame lerp factor while following
	RecenterSeconds float32 // glide duration after teleport/recovery
}

// ChestConfig contains chest footprint dimensions.
type ChestConfig struct {
	Width  float64
	Height float64
}

// DebugConfig contains development toggles.
type DebugConfig struct {
	SkipMenu      bool
	DrawColliders bool
}

// Global configuration instances
var C *Config
var Grid GridConfig
var Player PlayerConfig
var Camera CameraConfig
var Chest ChestConfig
var Debug DebugConfig

// Search is the free-space search tuning used by the recovery system.
var Search collision.SearchConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Emberhollow",
	}

	Grid = GridConfig{
		TileSize: 16,
	}

	Player = PlayerConfig{
		MoveSpeed:       2.0,
		InteractRange:   6.0,
		CollisionWidth:  12,
		CollisionHeight: 14,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		RecenterSeconds: 0.35,
	}

	Chest = ChestConfig{
		Width:  16,
		Height: 16,
	}

	Debug = DebugConfig{
		SkipMenu:      false,
		DrawColliders: false,
	}

	Search = collision.DefaultSearchConfig()
}
