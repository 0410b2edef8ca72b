package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/fonts"
	"github.com/wildmere/emberhollow/scenes"
	"github.com/wildmere/emberhollow/systems"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFont(fonts.Main, goregular.TTF)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 24)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = firstMapScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

// firstMapScene jumps straight into the first embedded map, bypassing the
// menu. Development convenience behind config.Debug.SkipMenu.
func firstMapScene(g *Game) Scene {
	names, err := assets.MapNames()
	if err != nil {
		log.Fatalf("no maps available: %v", err)
	}
	level, err := assets.LoadLevel(names[0])
	if err != nil {
		log.Fatalf("load map %s: %v", names[0], err)
	}
	return scenes.NewWorldScene(g, level, level.PlayerSpawn)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
