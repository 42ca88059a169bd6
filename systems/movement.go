package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement integrates velocity for every body with a movement
// controller. Self-propelled bodies follow their desired direction; bodies in
// hitstun keep the velocity forced on them and only feel gravity and ground
// friction.
func UpdateMovement(ecs *ecs.ECS) {
	dt := tickDelta()
	components.Movement.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		m := components.Movement.Get(e)
		obj := components.Object.Get(e).Object

		if m.SelfPropelled && m.Desired != 0 {
			m.Velocity.X = m.Desired * m.Speed
			m.Facing = math.Copysign(1, m.Desired)
		} else if m.SelfPropelled || m.OnGround {
			m.Velocity.X = approachZero(m.Velocity.X, cfg.Arena.Friction*dt)
		}

		m.Velocity.Y = math.Min(m.Velocity.Y+cfg.Arena.Gravity*dt, cfg.Arena.MaxFallSpeed)

		moveHorizontal(m, obj, m.Velocity.X*dt)
		moveVertical(m, obj, m.Velocity.Y*dt)
	})
}

func approachZero(v, step float64) float64 {
	if v > step {
		return v - step
	}
	if v < -step {
		return v + step
	}
	return 0
}

func moveHorizontal(m *components.MovementData, obj *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, wall := range check.ObjectsByTags(tags.ResolvSolid) {
			if !overlapsVertically(obj, wall) {
				continue
			}
			if dx > 0 {
				dx = math.Min(dx, wall.X-(obj.X+obj.W))
			} else {
				dx = math.Max(dx, wall.X+wall.W-obj.X)
			}
			m.Velocity.X = 0
		}
	}
	obj.X += dx
}

func moveVertical(m *components.MovementData, obj *resolv.Object, dy float64) {
	m.OnGround = false

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}
	check := obj.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		obj.Y += dy
		return
	}

	bottom := obj.Y + obj.H
	for _, other := range check.Objects {
		if !overlapsHorizontally(obj, other) {
			continue
		}
		if dy >= 0 {
			gap := other.Y - bottom
			// Only surfaces at or below the feet catch a falling body, which
			// also lets bodies pass up through platforms.
			if gap < -1 || (other.HasTags(tags.ResolvPlatform) && bottom > other.Y) {
				continue
			}
			if gap <= dy+1 {
				dy = math.Min(dy, math.Max(0, gap))
				m.Velocity.Y = 0
				m.OnGround = true
			}
		} else if other.HasTags(tags.ResolvSolid) {
			gap := other.Y + other.H - obj.Y
			if gap > 0 {
				continue // beside or below, not a ceiling
			}
			if gap > dy {
				dy = gap
				m.Velocity.Y = 0
			}
		}
	}
	obj.Y += dy
}

func overlapsHorizontally(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W
}

func overlapsVertically(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
