package systems

import (
	"github.com/wildmere/emberhollow/components"
	cfg "github.com/wildmere/emberhollow/config"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateChests opens the nearest chest within interaction reach when the
// interact action is pressed. Opening a chest removes its collision
// footprint and records the chest ID in the save file.
func UpdateChests(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !GetAction(input, cfg.ActionInteract).JustPressed {
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	reach := tilemap.Rect{
		X: playerObj.X - cfg.Player.InteractRange,
		Y: playerObj.Y - cfg.Player.InteractRange,
		W: playerObj.W + 2*cfg.Player.InteractRange,
		H: playerObj.H + 2*cfg.Player.InteractRange,
	}

	tags.Chest.Each(e.World, func(entry *donburi.Entry) {
		chest := components.Chest.Get(entry)
		if chest.Open {
			return
		}
		obj := components.Object.Get(entry)
		if !reach.Overlaps(tilemap.Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}) {
			return
		}

		openChest(e, entry, chest)
	})
}

func openChest(e *ecs.ECS, entry *donburi.Entry, chest *components.ChestData) {
	chest.Open = true

	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	if worldEntry, ok := components.World.First(e.World); ok {
		if world := components.World.Get(worldEntry); world.CurrentLevel != nil {
			MarkChestOpened(world.CurrentLevel.Name, chest.ID)
		}
	}
}
