package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/systems"
	"github.com/wildmere/emberhollow/ui"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene shows the map list and the continue option.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MapSelectUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	names, err := assets.MapNames()
	if err != nil {
		log.Printf("menu: listing maps: %v", err)
	}

	canContinue := systems.LoadLocation() != nil

	ms.menuUI = ui.NewMapSelectUI(names, canContinue,
		func(name string) { ms.startMap(name) },
		func() { ms.continueGame() },
	)
}

// startMap begins a fresh game on the named map at its spawn point.
func (ms *MenuScene) startMap(name string) {
	level, err := assets.LoadLevel(name)
	if err != nil {
		log.Printf("menu: map %s rejected: %v", name, err)
		ms.menuUI.SetStatus(err.Error())
		return
	}

	ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, level, level.PlayerSpawn))
}

// continueGame resumes from the saved location. A stale save pointing at a
// map that no longer loads degrades into a status message.
func (ms *MenuScene) continueGame() {
	loc := systems.LoadLocation()
	if loc == nil {
		ms.menuUI.SetStatus("No saved game")
		return
	}

	level, err := assets.LoadLevel(loc.Map)
	if err != nil {
		log.Printf("menu: saved map %s rejected: %v", loc.Map, err)
		ms.menuUI.SetStatus(err.Error())
		return
	}

	ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger, level, tilemap.Point{X: loc.X, Y: loc.Y}))
}
