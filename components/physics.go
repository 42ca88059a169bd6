package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// MovementData is the per-entity movement controller. While SelfPropelled is
// false the entity ignores its own input and only follows Velocity.
type MovementData struct {
	Velocity      math.Vec2 // px/s
	SelfPropelled bool
	Facing        float64 // -1 left, 1 right
	OnGround      bool

	// Desired is the self-directed horizontal speed requested by input or AI.
	Desired float64
	Speed   float64
}

// SetSelfPropelled toggles whether input may drive the entity.
func (m *MovementData) SetSelfPropelled(enabled bool) {
	m.SelfPropelled = enabled
	if !enabled {
		m.Desired = 0
	}
}

// Jump launches a grounded, self-propelled body upward. It reports whether
// the jump happened.
func (m *MovementData) Jump(speed float64) bool {
	if !m.SelfPropelled || !m.OnGround {
		return false
	}
	m.Velocity.Y = -speed
	m.OnGround = false
	return true
}

// SetVelocity overrides the current velocity.
func (m *MovementData) SetVelocity(v math.Vec2) {
	m.Velocity = v
}

var Movement = donburi.NewComponentType[MovementData]()
