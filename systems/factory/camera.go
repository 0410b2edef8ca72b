package factory

import (
	"github.com/wildmere/emberhollow/archetypes"
	"github.com/wildmere/emberhollow/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
