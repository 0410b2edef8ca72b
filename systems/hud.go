package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/fonts"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the current map name and the control hints.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	if world.CurrentLevel == nil {
		return
	}

	mainFont := fonts.Main.Get()
	text.Draw(screen, world.CurrentLevel.Name, mainFont, hudMargin, hudMargin+12, cfg.White)

	hint := "E: open chest   U: unstuck   Esc: menu"
	hintFont := fonts.Small.Get()
	hintWidth := len(hint) * 7
	hintX := (cfg.C.Width - hintWidth) / 2
	text.Draw(screen, hint, hintFont, hintX, cfg.C.Height-8, cfg.White)
}
