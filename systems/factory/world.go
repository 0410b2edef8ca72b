package factory

import (
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWorld(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	world := archetypes.World.Spawn(ecs)
	components.World.Set(world, &components.WorldData{
		CurrentLevel: level,
		Levels:       map[string]*assets.Level{level.Name: level},
	})
	return world
}
