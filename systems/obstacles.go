package systems

import (
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacleSnapshot rebuilds the dynamic obstacle list from the solid
// entities that are not part of the tile grid. It runs once per frame,
// before any system that queries free space, so all queries in a frame see
// the same snapshot.
func UpdateObstacleSnapshot(ecs *ecs.ECS) {
	worldEntry, ok := components.World.First(ecs.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)
	world.Obstacles = world.Obstacles[:0]

	tags.Chest.Each(ecs.World, func(e *donburi.Entry) {
		chest := components.Chest.Get(e)
		if chest.Open {
			return
		}
		obj := components.Object.Get(e)
		world.Obstacles = append(world.Obstacles, tilemap.Rect{
			X: obj.X, Y: obj.Y, W: obj.W, H: obj.H,
		})
	})
}
