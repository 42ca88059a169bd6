package combat

import (
	"math"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// testCatalog matches the numbers used in the worked combat examples.
func testCatalog() *config.Catalog {
	return config.NewCatalog(
		config.AttackProfile{
			Name:                "jab",
			Category:            config.CategoryLight,
			BaseDamage:          10,
			BaseKnockbackForce:  500,
			KnockbackDirection:  math2.NewVec2(1, 0),
			HitstunDuration:     0.2,
			AttackDuration:      0.3,
			RecoveryDuration:    0.2,
			MaxChargeMultiplier: 1,
			HitboxExtent:        math2.NewVec2(10, 10),
		},
		config.AttackProfile{
			Name:                "up_tilt",
			Category:            config.CategoryTilt,
			Direction:           config.DirectionUp,
			BaseDamage:          7,
			BaseKnockbackForce:  400,
			KnockbackDirection:  math2.NewVec2(0, -1),
			AttackDuration:      0.25,
			RecoveryDuration:    0.1,
			MaxChargeMultiplier: 1,
			HitboxExtent:        math2.NewVec2(10, 10),
			HitboxDelay:         0.05,
		},
		config.AttackProfile{
			Name:                "forward_tilt",
			Category:            config.CategoryTilt,
			Direction:           config.DirectionForward,
			BaseDamage:          8,
			BaseKnockbackForce:  450,
			KnockbackDirection:  math2.NewVec2(1, -0.5),
			AttackDuration:      0.25,
			RecoveryDuration:    0.1,
			MaxChargeMultiplier: 1,
			HitboxExtent:        math2.NewVec2(10, 10),
		},
		config.AttackProfile{
			Name:                "smash",
			Category:            config.CategorySmash,
			BaseDamage:          15,
			BaseKnockbackForce:  700,
			KnockbackDirection:  math2.NewVec2(1, -0.5),
			AttackDuration:      0.35,
			RecoveryDuration:    0.35,
			ChargeTime:          1.0,
			MaxChargeMultiplier: 2.0,
			HitboxExtent:        math2.NewVec2(20, 20),
		},
	)
}

func testStaleConfig() config.StaleConfig {
	return config.StaleConfig{
		Enabled:       true,
		DecayWindow:   10,
		Step:          0.05,
		MinMultiplier: 0.7,
		RecoveryTime:  5,
	}
}

// newCombatant creates an entity with every component the facade reads.
func newCombatant(w donburi.World, maxHealth float64) *donburi.Entry {
	e := w.Create(
		components.CombatState,
		components.Stale,
		components.Health,
		components.Weight,
		components.Movement,
	)
	entry := w.Entry(e)
	components.CombatState.SetValue(entry, components.NewCombatState())
	components.Health.SetValue(entry, components.HealthData{
		Current:       maxHealth,
		Max:           maxHealth,
		CanBeDefeated: true,
	})
	components.Weight.SetValue(entry, components.WeightData{
		Weight: config.DefaultWeight(),
		Damage: config.DefaultDamageSettings(),
	})
	components.Movement.SetValue(entry, components.MovementData{SelfPropelled: true, Facing: 1})
	return entry
}

// countingTarget records every ApplyDamage call.
type countingTarget struct {
	id    uint64
	calls int
	last  Hit
}

func (c *countingTarget) CombatID() uint64 { return c.id }

func (c *countingTarget) ApplyDamage(hit Hit) DamageResult {
	c.calls++
	c.last = hit
	return DamageResult{ActualDamage: hit.Damage, ResultingHealth: 100 - hit.Damage}
}

func vec(x, y float64) math2.Vec2 {
	return math2.NewVec2(x, y)
}
