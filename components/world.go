package components

import (
	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/yohamta/donburi"
)

// WorldData is the singleton holding the active map and the per-frame
// dynamic obstacle snapshot. Obstacles is rebuilt once per frame, before
// any collision consumer runs, so every query within a frame sees the same
// set.
type WorldData struct {
	CurrentLevel *assets.Level
	Levels       map[string]*assets.Level // Loaded-map cache, keyed by name

	Obstacles []tilemap.Rect
}

var World = donburi.NewComponentType[WorldData]()
