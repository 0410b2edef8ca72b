package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/systems"
	"github.com/wildmere/emberhollow/systems/factory"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the game on a loaded level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *assets.Level
	start        tilemap.Point
	once         sync.Once
}

// NewWorldScene starts play on level with the player's center at start.
func NewWorldScene(sc SceneChanger, level *assets.Level, start tilemap.Point) *WorldScene {
	return &WorldScene{sceneChanger: sc, level: level, start: start}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if systems.ActionJustPressed(ws.ecs, cfg.ActionMenuBack) {
		ws.saveLocation()
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateCollisions)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateChests)
	// Snapshot runs after chests so an open this frame frees the cell
	// before any recovery query sees it.
	e.AddSystem(systems.UpdateObstacleSnapshot)
	e.AddSystem(systems.UpdateTeleports)
	e.AddSystem(systems.UpdateManualRecovery)
	e.AddSystem(systems.UpdateCamera)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEntities)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = e

	factory.CreateWorld(e, ws.level)
	systems.BuildLevel(e, ws.level)
	factory.CreateCamera(e)
	factory.CreatePlayer(e, ws.start.X, ws.start.Y)

	systems.UpdateObstacleSnapshot(e)
	systems.SnapCamera(e, ws.start)

	// The spawn point can be inside a wall after a map edit; settle the
	// player onto free ground before the first frame.
	systems.TryRecover(e)
}

func (ws *WorldScene) saveLocation() {
	playerEntry, ok := tags.Player.First(ws.ecs.World)
	if !ok {
		return
	}
	worldEntry, ok := components.World.First(ws.ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.CurrentLevel == nil {
		return
	}

	obj := components.Object.Get(playerEntry)
	systems.SaveLocation(systems.SavedLocation{
		Map: world.CurrentLevel.Name,
		X:   obj.X + obj.W/2,
		Y:   obj.Y + obj.H/2,
	})
}
