package factory

import (
	"github.com/solarlune/resolv"
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = wall // Link for O(1) lookup

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateWallsFromGrid creates a solid object for every blocked cell so that
// movement collision and the grid agree on what is impassable.
func CreateWallsFromGrid(ecs *ecs.ECS, grid *tilemap.Grid) {
	ts := float64(grid.TileSize())
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			if grid.Blocked(col, row) {
				CreateWall(ecs, float64(col)*ts, float64(row)*ts, ts, ts)
			}
		}
	}
}
