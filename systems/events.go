package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// ProcessEvents delivers every queued combat notification. Run it last in
// the frame.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

// RegisterCombatFeedback shows a health bar and a hit flash on every entity
// that takes damage and shakes the camera for every landed hit.
func RegisterCombatFeedback(w donburi.World) {
	combat.DamageReceived.Subscribe(w, onDamageReceived)
	combat.HitLanded.Subscribe(w, onHitLanded)
}

func onHitLanded(w donburi.World, e combat.HitLandedEvent) {
	intensity := math.Min(e.Damage*cfg.Camera.ShakePerDamage, cfg.Camera.MaxShake)
	TriggerScreenShake(w, intensity, cfg.Camera.ShakeFrames)
}

func onDamageReceived(w donburi.World, e combat.DamageReceivedEvent) {
	if !w.Valid(e.Target) {
		return
	}
	entry := w.Entry(e.Target)
	if entry.HasComponent(components.HealthBar) {
		components.HealthBar.Get(entry).TimeToLive = cfg.Combat.HealthBarDuration
	}
	if entry.HasComponent(components.Flash) {
		components.Flash.SetValue(entry, components.FlashData{
			Tween:     gween.New(1, 0, float32(cfg.Combat.FlashDuration), ease.OutQuad),
			Intensity: 1,
		})
	}
}

// LogCombatEvents writes one line per combat notification to logger.
func LogCombatEvents(w donburi.World, logger *log.Logger) {
	combat.HitLanded.Subscribe(w, func(w donburi.World, e combat.HitLandedEvent) {
		logger.Printf("hit: %s by %s on %s for %.1f", e.Attack, combatantName(w, e.Attacker), combatantName(w, e.Target), e.Damage)
	})
	combat.HealthChanged.Subscribe(w, func(w donburi.World, e combat.HealthChangedEvent) {
		logger.Printf("health: %s now %.1f", combatantName(w, e.Target), e.Health)
	})
	combat.HitstunChanged.Subscribe(w, func(w donburi.World, e combat.HitstunChangedEvent) {
		logger.Printf("hitstun: %s %v", combatantName(w, e.Target), e.InHitstun)
	})
	combat.Defeated.Subscribe(w, func(w donburi.World, e combat.DefeatedEvent) {
		logger.Printf("defeated: %s", combatantName(w, e.Target))
	})
}

func combatantName(w donburi.World, e donburi.Entity) string {
	if !w.Valid(e) {
		return "?"
	}
	entry := w.Entry(e)
	if !entry.HasComponent(combat.Combatant) {
		return "?"
	}
	return fmt.Sprintf("%s#%d", combat.Combatant.Get(entry).Name, e.Id())
}
