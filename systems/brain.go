package systems

import (
	"math"

	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateBrains drives scripted combatants the way an input layer would: it
// only calls facade triggers and reads CanAttack/IsAttacking, never touching
// combat state directly. Run it before UpdateCombat.
func UpdateBrains(ecs *ecs.ECS) {
	dt := tickDelta()
	components.Brain.Each(ecs.World, func(e *donburi.Entry) {
		brain := components.Brain.Get(e)
		facade := combat.Combatant.Get(e).Facade
		move := components.Movement.Get(e)
		if facade == nil || isDown(e) {
			return
		}
		brain.Wait -= dt

		if !move.SelfPropelled {
			return // hitstun
		}
		if !ecs.World.Valid(brain.Target) || len(brain.Pattern) == 0 {
			move.Desired = 0
			return
		}
		if facade.IsCharging() {
			brain.Held += dt
			if brain.Held >= brain.ChargeFor {
				facade.SmashAttackRelease()
				brain.Held = 0
			}
			return
		}
		if facade.IsAttacking() {
			move.Desired = 0
			return
		}

		self := components.Object.Get(e).Center()
		target := components.Object.Get(ecs.World.Entry(brain.Target)).Center()
		dx := target.X - self.X
		if math.Abs(dx) > brain.Range {
			move.Desired = math.Copysign(1, dx)
			return
		}
		move.Desired = 0
		if dx != 0 {
			move.Facing = math.Copysign(1, dx)
		}
		if brain.Wait > 0 || !facade.CanAttack() {
			return
		}

		category := brain.Pattern[brain.Next%len(brain.Pattern)]
		brain.Next++
		switch category {
		case cfg.CategoryLight:
			facade.LightAttack()
		case cfg.CategoryTilt:
			facade.TiltAttack(math2.NewVec2(move.Facing, 0))
		case cfg.CategoryAerial:
			facade.AerialAttack()
		case cfg.CategorySmash:
			facade.SmashAttackStart()
			brain.Held = 0
		}
		brain.Wait = brain.Cooldown
	})
}
