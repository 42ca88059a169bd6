package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's body in the resolv space. Combatant bodies double
// as hurtboxes.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the body.
func (o ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

var Object = donburi.NewComponentType[ObjectData]()
