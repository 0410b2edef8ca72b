package components

import "github.com/yohamta/donburi"

// PortalData describes a teleport zone. TargetMap may equal the current map
// for in-map teleports; TargetX/TargetY are the destination center in pixels.
type PortalData struct {
	TargetMap string
	TargetX   float64
	TargetY   float64
}

var Portal = donburi.NewComponentType[PortalData]()
