package combat

import (
	"math"

	"github.com/automoto/brawlcore/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// QuantizeDirection snaps a tilt input (screen space, y down) to one of the
// authored attack directions. The horizontal sign is ignored: forward is
// whichever way the combatant faces.
func QuantizeDirection(v math2.Vec2) config.AttackDirection {
	if v.X == 0 && v.Y == 0 {
		return config.DirectionNone
	}
	deg := math.Atan2(-v.Y, math.Abs(v.X)) * 180 / math.Pi
	switch {
	case deg > 67.5:
		return config.DirectionUp
	case deg > 22.5:
		return config.DirectionUpDiagonal
	case deg >= -22.5:
		return config.DirectionForward
	case deg >= -67.5:
		return config.DirectionDownDiagonal
	default:
		return config.DirectionDown
	}
}
