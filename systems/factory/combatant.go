package factory

import (
	"log"

	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCombatant spawns a combat-capable entity of the named archetype with
// its feet at (x, y) and binds a facade to it. Unknown archetypes fall back
// to the fighter.
func CreateCombatant(ecs *ecs.ECS, archetype string, x, y float64, catalog *cfg.Catalog, opts ...combat.Option) *donburi.Entry {
	return createCombatant(ecs, archetype, x, y, catalog, nil, opts)
}

// CreatePlayer spawns the locally controlled combatant.
func CreatePlayer(ecs *ecs.ECS, archetype string, x, y float64, catalog *cfg.Catalog, opts ...combat.Option) *donburi.Entry {
	return createCombatant(ecs, archetype, x, y, catalog, []donburi.IComponentType{tags.Player}, opts)
}

func createCombatant(ecs *ecs.ECS, archetype string, x, y float64, catalog *cfg.Catalog, extra []donburi.IComponentType, opts []combat.Option) *donburi.Entry {
	ac, ok := cfg.Archetypes[archetype]
	if !ok {
		if archetype != "" {
			log.Printf("Unknown archetype %q, using %s", archetype, cfg.ArchetypeFighter)
		}
		ac = cfg.Archetypes[cfg.ArchetypeFighter]
	}

	if !ac.CanBeDefeated {
		extra = append(extra, tags.Dummy)
	}
	entry := archetypes.Combatant.Spawn(ecs, extra...)

	obj := resolv.NewObject(x-ac.Width/2, y-ac.Height, ac.Width, ac.Height, tags.ResolvCharacter, tags.ResolvHurtbox)
	obj.SetShape(resolv.NewRectangle(0, 0, ac.Width, ac.Height))
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The hitbox joins the space only while armed.
	hitbox := resolv.NewObject(obj.X, obj.Y, 1, 1, tags.ResolvHitbox)
	hitbox.Data = entry
	components.Hitbox.SetValue(entry, components.HitboxData{Object: hitbox})

	components.CombatState.SetValue(entry, components.NewCombatState())
	components.Stale.SetValue(entry, components.StaleData{Records: make(map[string]*components.StaleRecord)})
	components.Health.SetValue(entry, components.HealthData{
		Current:       ac.MaxHealth,
		Max:           ac.MaxHealth,
		Invulnerable:  ac.Invulnerable,
		CanBeDefeated: ac.CanBeDefeated,
	})
	components.Weight.SetValue(entry, components.WeightData{Weight: ac.Weight, Damage: ac.Damage})
	components.Movement.SetValue(entry, components.MovementData{
		SelfPropelled: true,
		Facing:        1,
		Speed:         ac.MoveSpeed,
	})
	components.Flash.SetValue(entry, components.FlashData{})
	components.Spawn.SetValue(entry, components.SpawnData{X: x, Y: y})

	facade := combat.New(ecs.World, entry, catalog, opts...)
	combat.Combatant.SetValue(entry, combat.CombatantData{Name: ac.Name, Facade: facade})
	return entry
}

// AttachBrain makes a combatant fight target on its own.
func AttachBrain(entry *donburi.Entry, target donburi.Entity, pattern ...cfg.AttackCategory) {
	if len(pattern) == 0 {
		pattern = []cfg.AttackCategory{cfg.CategoryLight, cfg.CategoryTilt, cfg.CategorySmash, cfg.CategoryLight}
	}
	donburi.Add(entry, components.Brain, &components.BrainData{
		Target:    target,
		Pattern:   pattern,
		Range:     24,
		Cooldown:  0.4,
		ChargeFor: 0.6,
	})
}
