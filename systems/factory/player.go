package factory

import (
	"github.com/solarlune/resolv"
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its collision rect centered at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x-w/2, y-h/2, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player

	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{
		Direction: components.Vector{X: 0, Y: 1},
	})
	components.Physics.SetValue(player, components.PhysicsData{
		MaxSpeed: cfg.Player.MoveSpeed,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
