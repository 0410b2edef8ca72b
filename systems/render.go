package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawEntities renders portals, chests, and the player as flat rects over
// the map background. Portals draw first so the player passes over them.
func DrawEntities(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	offsetX := float64(width)/2 - camera.Position.X
	offsetY := float64(height)/2 - camera.Position.Y

	drawRect := func(obj *components.ObjectData, c color.Color) {
		vector.DrawFilledRect(screen,
			float32(obj.X+offsetX), float32(obj.Y+offsetY),
			float32(obj.W), float32(obj.H), c, false)
	}

	tags.Portal.Each(e.World, func(entry *donburi.Entry) {
		drawRect(components.Object.Get(entry), cfg.PortalTeal)
	})

	tags.Chest.Each(e.World, func(entry *donburi.Entry) {
		chest := components.Chest.Get(entry)
		c := color.Color(cfg.ChestBrown)
		if chest.Open {
			c = cfg.ChestOpenDim
		}
		drawRect(components.Object.Get(entry), c)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawRect(components.Object.Get(entry), cfg.Blue)
	})

	if cfg.Debug.DrawColliders {
		drawColliders(e, screen, offsetX, offsetY)
	}
}

// drawColliders outlines every solid object in the space.
func drawColliders(e *ecs.ECS, screen *ebiten.Image, offsetX, offsetY float64) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !obj.HasTags(tags.ResolvSolid) {
			return
		}
		vector.StrokeRect(screen,
			float32(obj.X+offsetX), float32(obj.Y+offsetY),
			float32(obj.W), float32(obj.H), 1, cfg.Magenta, false)
	})
}
