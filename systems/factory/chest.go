package factory

import (
	"github.com/solarlune/resolv"
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChest spawns a chest. Closed chests are solid and sit in the
// collision space; an already-opened chest (restored from the save file)
// starts without a footprint.
func CreateChest(ecs *ecs.ECS, spawn assets.ChestSpawn, open bool) *donburi.Entry {
	chest := archetypes.Chest.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, cfg.Chest.Width, cfg.Chest.Height, tags.ResolvChest, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Chest.Width, cfg.Chest.Height))
	obj.Data = chest

	components.Object.SetValue(chest, components.ObjectData{Object: obj})
	components.Chest.SetValue(chest, components.ChestData{
		ID:   spawn.ID,
		Open: open,
	})

	if !open {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Add(obj)
		}
	}

	return chest
}
