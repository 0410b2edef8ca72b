package components

import "github.com/yohamta/donburi"

type ChestData struct {
	ID   string // Stable per-map identifier, used as the persistence key
	Open bool
}

var Chest = donburi.NewComponentType[ChestData]()
