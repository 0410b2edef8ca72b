package systems

import (
	"math"

	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// diagonalScale keeps diagonal movement at the same speed as cardinal movement
var diagonalScale = 1 / math.Sqrt2

// UpdatePlayer translates movement actions into velocity and keeps the
// facing direction in sync. Collision resolution happens afterwards in
// UpdateCollisions.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)

		var dirX, dirY float64
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			dirX -= 1
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			dirX += 1
		}
		if GetAction(input, cfg.ActionMoveUp).Pressed {
			dirY -= 1
		}
		if GetAction(input, cfg.ActionMoveDown).Pressed {
			dirY += 1
		}

		if dirX != 0 && dirY != 0 {
			dirX *= diagonalScale
			dirY *= diagonalScale
		}

		physics.SpeedX = dirX * physics.MaxSpeed
		physics.SpeedY = dirY * physics.MaxSpeed

		if dirX != 0 || dirY != 0 {
			player.Direction = components.Vector{X: dirX, Y: dirY}
		}
	})
}
