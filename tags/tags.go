package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Wall   = donburi.NewTag().SetName("Wall")
	Chest  = donburi.NewTag().SetName("Chest")
	Portal = donburi.NewTag().SetName("Portal")
)

// Resolv tags for movement collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvChest  = "chest"
	ResolvPortal = "portal"
)
