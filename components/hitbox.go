package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// HitboxData links an attacker to the resolv object that represents its
// current swing in the space.
type HitboxData struct {
	Object *resolv.Object
	Active bool
}

var Hitbox = donburi.NewComponentType[HitboxData]()
