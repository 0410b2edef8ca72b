package systems

import (
	"log"

	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/shared/collision"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi/ecs"
)

// RecoveryStatus is the outcome of a stuck-recovery attempt.
type RecoveryStatus int

const (
	RecoveryNotStuck RecoveryStatus = iota
	RecoveryMoved
	RecoveryFailed
)

// RecoveryResult reports what a recovery attempt did. Position is the
// player's center after the attempt, meaningful for NotStuck and Moved.
type RecoveryResult struct {
	Status   RecoveryStatus
	Position tilemap.Point
}

// TryRecover checks whether the player's collision rect overlaps blocked
// space and, if so, moves the player to the nearest free position. Velocity
// is zeroed on a move so the player does not immediately walk back into the
// wall, and the camera glides to the new position. If no free space exists
// within the search bounds the player is left where it is.
func TryRecover(e *ecs.ECS) RecoveryResult {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return RecoveryResult{Status: RecoveryNotStuck}
	}
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return RecoveryResult{Status: RecoveryNotStuck}
	}
	world := components.World.Get(worldEntry)
	if world.CurrentLevel == nil {
		return RecoveryResult{Status: RecoveryNotStuck}
	}

	obj := components.Object.Get(playerEntry)
	center := tilemap.Point{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}

	index := collision.Index{
		Grid:      world.CurrentLevel.Grid,
		Obstacles: world.Obstacles,
	}

	pos, found := collision.FindFreeSpace(center, obj.W, obj.H, index, cfg.Search)
	if !found {
		log.Printf("recovery: no free space near (%.0f, %.0f) on %s", center.X, center.Y, world.CurrentLevel.Name)
		return RecoveryResult{Status: RecoveryFailed, Position: center}
	}
	if pos == center {
		return RecoveryResult{Status: RecoveryNotStuck, Position: center}
	}

	obj.X = pos.X - obj.W/2
	obj.Y = pos.Y - obj.H/2
	obj.Update()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	RecenterCamera(e, pos)

	log.Printf("recovery: moved player (%.0f, %.0f) -> (%.0f, %.0f) on %s",
		center.X, center.Y, pos.X, pos.Y, world.CurrentLevel.Name)
	return RecoveryResult{Status: RecoveryMoved, Position: pos}
}

// UpdateManualRecovery runs a recovery attempt when the unstuck action is
// pressed. Edge-triggered, so holding the key does not retry every frame.
func UpdateManualRecovery(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionUnstuck).JustPressed {
		TryRecover(e)
	}
}
