package systems

import (
	"github.com/solarlune/resolv"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves the player by its velocity, resolving each axis
// independently so sliding along walls works.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}

	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	dy := physics.SpeedY
	if dy == 0 {
		return
	}

	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			physics.SpeedY = 0
		}
	}

	object.Y += dy
}
