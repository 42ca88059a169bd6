package systems

import (
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombatHitboxes moves every armed hitbox in front of its owner and
// reports each hurtbox it overlaps to the owner's facade. The facade
// deduplicates, so the same target may be reported every frame.
func UpdateCombatHitboxes(ecs *ecs.ECS) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	combat.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		facade := combat.Combatant.Get(e).Facade
		hitbox := components.Hitbox.Get(e)
		if facade == nil || hitbox.Object == nil {
			return
		}

		attack, ok := facade.CurrentAttack()
		if !ok || !facade.HitboxArmed() {
			deactivateHitbox(space, hitbox)
			return
		}

		body := components.Object.Get(e)
		facing := components.Movement.Get(e).Facing
		placeHitbox(hitbox.Object, body, attack, facing)
		if !hitbox.Active {
			space.Add(hitbox.Object)
			hitbox.Active = true
		}
		hitbox.Object.Update()

		checkHitboxCollisions(ecs.World, e, facade, hitbox.Object, body, facing)
	})
}

// placeHitbox centers the attack's box at its offset from the owner's center,
// mirrored by facing.
func placeHitbox(obj *resolv.Object, body *components.ObjectData, attack cfg.AttackProfile, facing float64) {
	if facing == 0 {
		facing = 1
	}
	center := body.Center()
	cx := center.X + attack.HitboxOffset.X*facing
	cy := center.Y + attack.HitboxOffset.Y

	obj.W = attack.HitboxExtent.X * 2
	obj.H = attack.HitboxExtent.Y * 2
	obj.X = cx - attack.HitboxExtent.X
	obj.Y = cy - attack.HitboxExtent.Y
}

func deactivateHitbox(space *resolv.Space, hitbox *components.HitboxData) {
	if !hitbox.Active {
		return
	}
	space.Remove(hitbox.Object)
	hitbox.Active = false
}

func checkHitboxCollisions(w donburi.World, owner *donburi.Entry, facade *combat.Facade, hitbox *resolv.Object, body *components.ObjectData, facing float64) {
	check := hitbox.Check(0, 0, tags.ResolvHurtbox)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		target, ok := obj.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == owner.Entity() {
			continue
		}
		if !target.HasComponent(components.Health) {
			continue
		}
		// resolv reports shared cells; confirm the boxes really overlap.
		if !overlaps(hitbox, obj) {
			continue
		}
		targetBody := components.ObjectData{Object: obj}
		facade.OnCandidateHit(combat.NewHitstunController(w, target), combat.Overlap{
			Facing:         facing,
			AttackerCenter: body.Center(),
			TargetCenter:   targetBody.Center(),
		})
	}
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
