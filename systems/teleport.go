package systems

import (
	"log"

	"github.com/wildmere/emberhollow/assets"
	"github.com/wildmere/emberhollow/components"
	"github.com/wildmere/emberhollow/shared/tilemap"
	"github.com/wildmere/emberhollow/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTeleports moves the player to a portal's destination when the player
// overlaps it. Runs after collision resolution so the overlap test sees the
// player's final position for the frame.
func UpdateTeleports(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)

	check := obj.Check(0, 0, tags.ResolvPortal)
	if check == nil {
		return
	}
	portals := check.ObjectsByTags(tags.ResolvPortal)
	if len(portals) == 0 {
		return
	}

	portalEntry, ok := portals[0].Data.(*donburi.Entry)
	if !ok || !portalEntry.Valid() {
		return
	}
	portal := components.Portal.Get(portalEntry)

	teleportPlayer(e, playerEntry, portal)
}

// teleportPlayer moves the player to the portal destination, switching maps
// first when the destination is on another map. The destination may be
// blocked (a chest opened in front of it, a map edit), so a recovery pass
// always follows the placement.
func teleportPlayer(e *ecs.ECS, playerEntry *donburi.Entry, portal *components.PortalData) {
	worldEntry, ok := components.World.First(e.World)
	if !ok {
		return
	}
	world := components.World.Get(worldEntry)

	if portal.TargetMap != "" && (world.CurrentLevel == nil || portal.TargetMap != world.CurrentLevel.Name) {
		if !switchLevel(e, world, portal.TargetMap) {
			return
		}
	}

	obj := components.Object.Get(playerEntry)
	obj.X = portal.TargetX - obj.W/2
	obj.Y = portal.TargetY - obj.H/2
	obj.Update()

	physics := components.Physics.Get(playerEntry)
	physics.SpeedX = 0
	physics.SpeedY = 0

	UpdateObstacleSnapshot(e)
	SnapCamera(e, tilemap.Point{X: portal.TargetX, Y: portal.TargetY})
	TryRecover(e)

	// Checkpoint the arrival so a crash resumes on the right map.
	if world.CurrentLevel != nil {
		SaveLocation(SavedLocation{
			Map: world.CurrentLevel.Name,
			X:   obj.X + obj.W/2,
			Y:   obj.Y + obj.H/2,
		})
	}
}

// switchLevel tears down the current map's entities and builds the target
// map's, carrying the player across into the new collision space. On a load
// failure the current map stays active and the teleport is abandoned.
func switchLevel(e *ecs.ECS, world *components.WorldData, name string) bool {
	level, ok := world.Levels[name]
	if !ok {
		var err error
		level, err = assets.LoadLevel(name)
		if err != nil {
			log.Printf("teleport: cannot load map %s: %v", name, err)
			return false
		}
		world.Levels[name] = level
	}

	removeLevelEntities(e)
	world.CurrentLevel = level
	BuildLevel(e, level)

	// The old space died with its entities; re-home the player object.
	if playerEntry, ok := tags.Player.First(e.World); ok {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			components.Space.Get(spaceEntry).Add(components.Object.Get(playerEntry).Object)
		}
	}

	return true
}

// removeLevelEntities despawns everything owned by the current map: walls,
// chests, portals, and the collision space itself. The player, camera, and
// world singleton survive.
func removeLevelEntities(e *ecs.ECS) {
	var doomed []*donburi.Entry
	collect := func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	}
	tags.Wall.Each(e.World, collect)
	tags.Chest.Each(e.World, collect)
	tags.Portal.Each(e.World, collect)
	components.Space.Each(e.World, collect)

	for _, entry := range doomed {
		e.World.Remove(entry.Entity())
	}
}
