package archetypes

import (
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Chest = newArchetype(
		tags.Chest,
		components.Chest,
		components.Object,
	)
	Portal = newArchetype(
		tags.Portal,
		components.Portal,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	World = newArchetype(
		components.World,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
