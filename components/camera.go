package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2

	// Active recenter glide after a teleport or stuck recovery. While these
	// are set the follow logic is suspended; they are cleared on completion.
	GlideX *gween.Tween
	GlideY *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
