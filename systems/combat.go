package systems

import (
	"github.com/automoto/brawlcore/combat"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDelta is the fixed simulation step in seconds.
func tickDelta() float64 {
	if cfg.Combat.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(cfg.Combat.TickRate)
}

// UpdateCombat ticks every facade: scheduled events, attack phases, stale
// recovery and hitstun. It must run before UpdateCombatHitboxes so a swing
// that just ended cannot land in the same frame.
func UpdateCombat(ecs *ecs.ECS) {
	dt := tickDelta()
	combat.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		if f := combat.Combatant.Get(e).Facade; f != nil {
			f.Tick(dt)
		}
	})
}
