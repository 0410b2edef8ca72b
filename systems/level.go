package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// BuildLevel creates the collision space and all the map's entities: one
// wall per blocked cell, chests with their saved open state, and portals.
// The player is spawned separately by the caller.
func BuildLevel(e *ecs.ECS, level *assets.Level) {
	factory.CreateSpace(e,
		int(level.Grid.PixelWidth()), int(level.Grid.PixelHeight()),
		config.Grid.TileSize, config.Grid.TileSize)
	factory.CreateWallsFromGrid(e, level.Grid)

	for _, spawn := range level.Chests {
		factory.CreateChest(e, spawn, ChestOpened(level.Name, spawn.ID))
	}
	for _, spawn := range level.Portals {
		factory.CreatePortal(e, spawn)
	}
}

// cameraTransform returns the world-to-screen transform for the current
// camera position.
func cameraTransform(e *ecs.ECS) (ebiten.GeoM, bool) {
	var geom ebiten.GeoM
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return geom, false
	}
	camera := components.Camera.Get(cameraEntry)

	geom.Translate(-camera.Position.X, -camera.Position.Y)
	geom.Translate(float64(config.C.Width)/2, float64(config.C.Height)/2)
	return geom, true
}

// DrawLevel draws the pre-rendered map background under the camera.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	geom, ok := cameraTransform(e)
	if !ok {
		return
	}

	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.CurrentLevel == nil || world.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM = geom
	screen.DrawImage(world.CurrentLevel.Background, opts)
}
