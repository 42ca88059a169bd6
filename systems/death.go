package systems

import (
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RegisterDefeats starts the death sequence for every defeated combatant.
// Training dummies are never defeated, but once emptied they go down and
// refill the same way.
func RegisterDefeats(w donburi.World) {
	combat.Defeated.Subscribe(w, func(w donburi.World, e combat.DefeatedEvent) {
		knockDown(w, e.Target)
	})
	combat.HealthChanged.Subscribe(w, onDummyEmptied)
}

func onDummyEmptied(w donburi.World, e combat.HealthChangedEvent) {
	if e.Health > 0 || !w.Valid(e.Target) {
		return
	}
	if w.Entry(e.Target).HasComponent(tags.Dummy) {
		knockDown(w, e.Target)
	}
}

func knockDown(w donburi.World, target donburi.Entity) {
	if !w.Valid(target) {
		return
	}
	entry := w.Entry(target)
	if entry.HasComponent(components.Death) || !entry.HasComponent(combat.Combatant) {
		return
	}
	if f := combat.Combatant.Get(entry).Facade; f != nil {
		f.EndAttackNow()
	}
	donburi.Add(entry, components.Death, &components.DeathData{Timer: cfg.Combat.RespawnDelay})
}

// UpdateDeaths counts down defeated combatants and respawns them.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := tickDelta()
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer > 0 {
			return
		}
		donburi.Remove[components.DeathData](e, components.Death)
		RespawnCombatant(ecs.World, e)
	})
}

// RespawnCombatant puts a combatant back at its spawn with full health, no
// staling and no attack in progress.
func RespawnCombatant(w donburi.World, e *donburi.Entry) {
	combat.NewHitstunController(w, e).Reset()
	if f := combat.Combatant.Get(e).Facade; f != nil {
		f.EndAttackNow()
		f.ResetStaling()
	}

	if e.HasComponent(components.Spawn) {
		spawn := components.Spawn.Get(e)
		obj := components.Object.Get(e)
		obj.X = spawn.X - obj.W/2
		obj.Y = spawn.Y - obj.H
		obj.Update()
	}

	m := components.Movement.Get(e)
	m.SetVelocity(math.Vec2{})
	m.SetSelfPropelled(true)
	m.OnGround = false
}

// isDown reports whether e is waiting to respawn.
func isDown(e *donburi.Entry) bool {
	return e.HasComponent(components.Death)
}
