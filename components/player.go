package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Direction Vector // Last non-zero movement direction, for facing
}

var Player = donburi.NewComponentType[PlayerData]()
