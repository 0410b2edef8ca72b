package systems

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi/ecs"
)

const glideDt = 1.0 / 60.0

// UpdateCamera follows the player with smoothing, clamped to the level
// bounds. While a recenter glide is active the follow logic is suspended
// and the tweens drive the position instead.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.GlideX != nil || camera.GlideY != nil {
		updateGlide(camera)
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.CurrentLevel == nil {
		return
	}

	targetX := playerObject.X + playerObject.W/2
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = clampCameraTarget(world.CurrentLevel.Grid, targetX, targetY)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func updateGlide(camera *components.CameraData) {
	if camera.GlideX != nil {
		x, doneX := camera.GlideX.Update(glideDt)
		camera.Position.X = float64(x)
		if doneX {
			camera.GlideX = nil
		}
	}
	if camera.GlideY != nil {
		y, doneY := camera.GlideY.Update(glideDt)
		camera.Position.Y = float64(y)
		if doneY {
			camera.GlideY = nil
		}
	}
}

// RecenterCamera starts a glide toward the given world position. Used after
// teleports and stuck recovery, where a hard follow snap would be jarring
// but an instant cut is not wanted either.
func RecenterCamera(e *ecs.ECS, pos tilemap.Point) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	targetX, targetY := pos.X, pos.Y
	if worldEntry, ok := components.World.First(e.World); ok {
		if world := components.World.Get(worldEntry); world.CurrentLevel != nil {
			targetX, targetY = clampCameraTarget(world.CurrentLevel.Grid, targetX, targetY)
		}
	}

	dur := config.Camera.RecenterSeconds
	camera.GlideX = gween.New(float32(camera.Position.X), float32(targetX), dur, ease.OutQuad)
	camera.GlideY = gween.New(float32(camera.Position.Y), float32(targetY), dur, ease.OutQuad)
}

// SnapCamera moves the camera immediately, cancelling any active glide.
// Used on level entry, where there is no previous position worth gliding
// from.
func SnapCamera(e *ecs.ECS, pos tilemap.Point) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	targetX, targetY := pos.X, pos.Y
	if worldEntry, ok := components.World.First(e.World); ok {
		if world := components.World.Get(worldEntry); world.CurrentLevel != nil {
			targetX, targetY = clampCameraTarget(world.CurrentLevel.Grid, targetX, targetY)
		}
	}

	camera.GlideX = nil
	camera.GlideY = nil
	camera.Position.X = targetX
	camera.Position.Y = targetY
}

// clampCameraTarget keeps the viewport inside the level. Levels smaller
// than the screen are centered on that axis instead.
func clampCameraTarget(grid *tilemap.Grid, x, y float64) (float64, float64) {
	screenW := float64(config.C.Width)
	screenH := float64(config.C.Height)
	levelW := grid.PixelWidth()
	levelH := grid.PixelHeight()

	if levelW <= screenW {
		x = levelW / 2
	} else {
		x = math.Max(screenW/2, math.Min(levelW-screenW/2, x))
	}
	if levelH <= screenH {
		y = levelH / 2
	} else {
		y = math.Max(screenH/2, math.Min(levelH-screenH/2, y))
	}
	return x, y
}
