package factory

import (
	"github.com/solarlune/resolv"
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePortal spawns a teleport zone. Portals are sensors, not solid.
func CreatePortal(ecs *ecs.ECS, spawn assets.PortalSpawn) *donburi.Entry {
	portal := archetypes.Portal.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, spawn.W, spawn.H, tags.ResolvPortal)
	obj.SetShape(resolv.NewRectangle(0, 0, spawn.W, spawn.H))
	obj.Data = portal

	components.Object.SetValue(portal, components.ObjectData{Object: obj})
	components.Portal.SetValue(portal, components.PortalData{
		TargetMap: spawn.TargetMap,
		TargetX:   spawn.TargetX,
		TargetY:   spawn.TargetY,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return portal
}
