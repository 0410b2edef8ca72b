// Package assets embeds the game's maps and turns them into playable levels:
// a tile grid for collision plus a pre-rendered background image.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
	"github.com/wildmere/emberhollow/shared/tilemap"
)

//go:embed all:maps
var mapFS embed.FS

// ChestSpawn places a chest; ID is the stable key chest state is saved under.
type ChestSpawn struct {
	ID   string
	X, Y float64 // top-left, pixels
}

// PortalSpawn is a teleport zone and its destination.
type PortalSpawn struct {
	X, Y, W, H float64
	TargetMap  string  // empty or the current map name for in-map teleports
	TargetX    float64 // destination center
	TargetY    float64
}

// Level is one loaded map, ready for play.
type Level struct {
	Name        string
	Grid        *tilemap.Grid
	Background  *ebiten.Image
	PlayerSpawn tilemap.Point
	Chests      []ChestSpawn
	Portals     []PortalSpawn
}

// MapNames returns the embedded map names, sorted.
func MapNames() ([]string, error) {
	matches, err := fs.Glob(mapFS, "maps/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob maps: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files embedded under maps/")
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".tmx"))
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses and renders one embedded map. Malformed maps surface a
// *tilemap.MapFormatError and no level is produced.
func LoadLevel(name string) (*Level, error) {
	path := "maps/" + name + ".tmx"

	m, err := tiled.LoadFile(path, tiled.WithFileSystem(mapFS))
	if err != nil {
		return nil, &tilemap.MapFormatError{Map: name, Reason: "parse failed: " + err.Error(), Err: err}
	}

	grid, err := tilemap.FromTiledMap(name, m)
	if err != nil {
		return nil, err
	}

	level := &Level{Name: name, Grid: grid}

	// The collision overlay is marked invisible in the map files, so
	// rendering the visible layers composes exactly the art layers.
	renderer, err := render.NewRendererWithFileSystem(m, mapFS)
	if err != nil {
		return nil, fmt.Errorf("map %s: create renderer: %w", name, err)
	}
	if err := renderer.RenderVisibleLayers(); err != nil {
		return nil, fmt.Errorf("map %s: render layers: %w", name, err)
	}
	level.Background = ebiten.NewImageFromImage(renderer.Result)

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawn = tilemap.Point{X: o.X, Y: o.Y}
				break
			}
		case "Chests":
			for _, o := range og.Objects {
				level.Chests = append(level.Chests, ChestSpawn{
					ID: o.Name,
					X:  o.X,
					Y:  o.Y,
				})
			}
		case "Portals":
			for _, o := range og.Objects {
				level.Portals = append(level.Portals, PortalSpawn{
					X:         o.X,
					Y:         o.Y,
					W:         o.Width,
					H:         o.Height,
					TargetMap: o.Properties.GetString("targetMap"),
					TargetX:   o.Properties.GetFloat("targetX"),
					TargetY:   o.Properties.GetFloat("targetY"),
				})
			}
		}
	}

	return level, nil
}
