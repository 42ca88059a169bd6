package combat

import (
	"math"

	"github.com/automoto/brawlcore/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// minKnockbackResistance keeps the launch divisor away from zero.
const minKnockbackResistance = 0.01

// ComputeFinalDamage scales a profile's base damage. charge is 1 for
// attacks that were not charged.
func ComputeFinalDamage(p config.AttackProfile, stale, charge float64) float64 {
	return p.BaseDamage * stale * charge
}

// ComputeFinalKnockback scales the attacker-side launch force the same way.
func ComputeFinalKnockback(p config.AttackProfile, stale, charge float64) float64 {
	return p.BaseKnockbackForce * stale * charge
}

// ComputeKnockbackForce grows exponentially with the target's damage percent
// measured after the hit. rawInputForce is the designer-authored force,
// normalized by 1000.
func ComputeKnockbackForce(settings config.DamageSettings, weight config.WeightProfile, percentAfterHit, rawInputForce float64) float64 {
	force := settings.BaseKnockback
	force *= math.Pow(settings.KnockbackScalingBase, percentAfterHit/100)
	force *= weight.KnockbackScaling
	force *= rawInputForce / 1000
	return force
}

// DamagePercent is the accumulated damage ratio, 0 at full health and 100 at zero.
func DamagePercent(current, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return (max - current) / max * 100
}

// ChargeMultiplier maps held time onto [1, maxMultiplier].
func ChargeMultiplier(elapsed, chargeTime, maxMultiplier float64) float64 {
	if chargeTime <= 0 || maxMultiplier <= 1 {
		return 1
	}
	m := 1 + (elapsed/chargeTime)*(maxMultiplier-1)
	return clamp(m, 1, maxMultiplier)
}

// LaunchVelocity turns a direction and force into the velocity forced onto a
// target, divided by its knockback resistance.
func LaunchVelocity(dir math2.Vec2, force, resistance float64) math2.Vec2 {
	n := normalize(dir)
	r := math.Max(resistance, minKnockbackResistance)
	return math2.Vec2{X: n.X * force / r, Y: n.Y * force / r}
}

func normalize(v math2.Vec2) math2.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l == 0 {
		return math2.Vec2{}
	}
	return math2.Vec2{X: v.X / l, Y: v.Y / l}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
