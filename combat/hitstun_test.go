package combat

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

type eventCounts struct {
	damage, health, hitstun, defeated, landed int
	lastHitstun                               bool
}

func countEvents(w donburi.World) *eventCounts {
	c := &eventCounts{}
	DamageReceived.Subscribe(w, func(w donburi.World, e DamageReceivedEvent) { c.damage++ })
	HealthChanged.Subscribe(w, func(w donburi.World, e HealthChangedEvent) { c.health++ })
	HitstunChanged.Subscribe(w, func(w donburi.World, e HitstunChangedEvent) {
		c.hitstun++
		c.lastHitstun = e.InHitstun
	})
	Defeated.Subscribe(w, func(w donburi.World, e DefeatedEvent) { c.defeated++ })
	HitLanded.Subscribe(w, func(w donburi.World, e HitLandedEvent) { c.landed++ })
	return c
}

func TestApplyDamageScenario(t *testing.T) {
	w := donburi.NewWorld()
	counts := countEvents(w)
	target := newCombatant(w, 100)
	hs := NewHitstunController(w, target)

	res := hs.ApplyDamage(Hit{Damage: 10, Direction: vec(1, 0), Force: 500, Hitstun: 0.2})
	events.ProcessAllEvents(w)

	if res.ActualDamage != 10 || res.ResultingHealth != 90 || res.WasLethal {
		t.Fatalf("result = %+v, want 10 damage, 90 health, not lethal", res)
	}
	h := components.Health.Get(target)
	if !almostEqual(h.DamagePercent, 10) {
		t.Errorf("damage percent = %v, want 10", h.DamagePercent)
	}

	wantForce := 254.59984403675605 // 500 * 1.2^(10/100) * 1 * 500/1000
	if !almostEqual(h.PendingKnockback.X, wantForce) || h.PendingKnockback.Y != 0 {
		t.Errorf("pending knockback = %+v, want {%v 0}", h.PendingKnockback, wantForce)
	}
	if !h.InHitstun || !almostEqual(h.HitstunTimer, 0.2) {
		t.Errorf("hitstun = %v/%v, want true/0.2", h.InHitstun, h.HitstunTimer)
	}

	mv := components.Movement.Get(target)
	if mv.SelfPropelled {
		t.Error("movement should not be self-propelled during hitstun")
	}
	if !almostEqual(mv.Velocity.X, wantForce) {
		t.Errorf("velocity = %+v, want knockback", mv.Velocity)
	}

	if counts.damage != 1 || counts.health != 1 || counts.hitstun != 1 {
		t.Errorf("events = %+v, want one damage, health and hitstun", counts)
	}
}

func TestApplyDamageShortCircuits(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *components.HealthData)
	}{
		{"invulnerable", func(h *components.HealthData) { h.Invulnerable = true }},
		{"already defeated", func(h *components.HealthData) { h.Current = 0; h.DamagePercent = 100 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := donburi.NewWorld()
			counts := countEvents(w)
			target := newCombatant(w, 100)
			tt.setup(components.Health.Get(target))
			before := *components.Health.Get(target)

			res := NewHitstunController(w, target).ApplyDamage(Hit{Damage: 10, Direction: vec(1, 0), Force: 500})
			events.ProcessAllEvents(w)

			if res.ActualDamage != 0 {
				t.Errorf("actual damage = %v, want 0", res.ActualDamage)
			}
			if after := *components.Health.Get(target); after != before {
				t.Errorf("health changed: %+v -> %+v", before, after)
			}
			if *counts != (eventCounts{}) {
				t.Errorf("no notifications expected, got %+v", counts)
			}
		})
	}
}

func TestApplyDamageLethal(t *testing.T) {
	w := donburi.NewWorld()
	counts := countEvents(w)
	target := newCombatant(w, 20)
	hs := NewHitstunController(w, target)

	res := hs.ApplyDamage(Hit{Damage: 50, Direction: vec(1, -1), Force: 600})
	events.ProcessAllEvents(w)

	if !res.WasLethal || res.ResultingHealth != 0 || res.ActualDamage != 20 {
		t.Errorf("result = %+v, want lethal at 0 health after 20 damage", res)
	}
	if counts.defeated != 1 {
		t.Errorf("defeated events = %d, want 1", counts.defeated)
	}
	// a killing blow still launches at the post-hit percent
	if h := components.Health.Get(target); h.PendingKnockback.X == 0 {
		t.Error("lethal hit should still carry knockback")
	}
	if hs.IsAlive() {
		t.Error("target should be dead")
	}

	// undefeatable targets bottom out without a defeat
	w = donburi.NewWorld()
	counts = countEvents(w)
	dummy := newCombatant(w, 20)
	components.Health.Get(dummy).CanBeDefeated = false
	res = NewHitstunController(w, dummy).ApplyDamage(Hit{Damage: 50, Direction: vec(1, 0), Force: 600})
	events.ProcessAllEvents(w)
	if res.WasLethal || counts.defeated != 0 {
		t.Errorf("undefeatable target: result %+v, defeated events %d", res, counts.defeated)
	}
}

func TestApplyDamageUsesTargetSettings(t *testing.T) {
	w := donburi.NewWorld()
	target := newCombatant(w, 100)
	wd := components.Weight.Get(target)
	wd.Damage.DamageMultiplier = 0.5
	wd.Damage.HitstunDuration = 0.4
	wd.Weight.HitstunMultiplier = 0.5
	wd.Weight.KnockbackResistance = 2

	res := NewHitstunController(w, target).ApplyDamage(Hit{Damage: 10, Direction: vec(1, 0), Force: 1000})
	if res.ActualDamage != 5 {
		t.Errorf("actual damage = %v, want 5", res.ActualDamage)
	}
	h := components.Health.Get(target)
	if !almostEqual(h.HitstunTimer, 0.2) {
		t.Errorf("hitstun = %v, want fallback 0.4 * 0.5", h.HitstunTimer)
	}
	force := ComputeKnockbackForce(wd.Damage, wd.Weight, 5, 1000)
	if !almostEqual(h.PendingKnockback.X, force/2) {
		t.Errorf("knockback = %v, want %v", h.PendingKnockback.X, force/2)
	}
}

func TestApplyDamageWithoutStunDropsKnockback(t *testing.T) {
	w := donburi.NewWorld()
	target := newCombatant(w, 100)
	components.Weight.Get(target).Damage.HitstunDuration = 0
	hs := NewHitstunController(w, target)

	res := hs.ApplyDamage(Hit{Damage: 10, Direction: vec(1, 0), Force: 500})
	if res.ActualDamage != 10 {
		t.Fatalf("actual damage = %v, want 10", res.ActualDamage)
	}
	h := components.Health.Get(target)
	if h.InHitstun || h.PendingKnockback != (math2.Vec2{}) {
		t.Errorf("hitstun %v pending %+v, want no stun and no pending launch", h.InHitstun, h.PendingKnockback)
	}

	hs.SetHitstun(0.3)
	if v := components.Movement.Get(target).Velocity; v != (math2.Vec2{}) {
		t.Errorf("later hitstun launched with a stale vector %+v", v)
	}
}

func TestHitstunTickAndClear(t *testing.T) {
	w := donburi.NewWorld()
	counts := countEvents(w)
	target := newCombatant(w, 100)
	hs := NewHitstunController(w, target)

	hs.ClearHitstun()
	events.ProcessAllEvents(w)
	if counts.hitstun != 0 {
		t.Fatal("ClearHitstun outside hitstun must not notify")
	}

	hs.SetHitstun(0)
	if hs.InHitstun() {
		t.Fatal("zero duration must not stun")
	}

	hs.SetHitstun(0.3)
	hs.Tick(0.1)
	if h := components.Health.Get(target); !h.InHitstun || h.HitstunTimer <= 0 {
		t.Fatalf("still expected in hitstun, got %+v", h)
	}
	hs.Tick(0.25)
	events.ProcessAllEvents(w)

	h := components.Health.Get(target)
	if h.InHitstun || h.HitstunTimer != 0 || h.PendingKnockback.X != 0 {
		t.Errorf("hitstun not cleared: %+v", h)
	}
	if !components.Movement.Get(target).SelfPropelled {
		t.Error("movement should be self-propelled again")
	}
	if counts.hitstun != 2 || counts.lastHitstun {
		t.Errorf("hitstun events = %d (last %v), want 2 ending false", counts.hitstun, counts.lastHitstun)
	}
}

func TestHealAndMaxHealth(t *testing.T) {
	w := donburi.NewWorld()
	counts := countEvents(w)
	target := newCombatant(w, 100)
	hs := NewHitstunController(w, target)

	hs.Heal(10)
	events.ProcessAllEvents(w)
	if counts.health != 0 {
		t.Error("healing at full health must not notify")
	}

	hs.ApplyDamage(Hit{Damage: 40, Direction: vec(1, 0), Force: 100})
	hs.Heal(100)
	h := components.Health.Get(target)
	if h.Current != 100 || h.DamagePercent != 0 {
		t.Errorf("heal should clamp to max, got %+v", h)
	}

	hs.ApplyDamage(Hit{Damage: 50, Direction: vec(1, 0), Force: 100})
	hs.SetMaxHealth(200)
	if h.Max != 200 || h.Current != 100 || !almostEqual(h.DamagePercent, 50) {
		t.Errorf("SetMaxHealth should keep the ratio, got %+v", h)
	}
	if !almostEqual(hs.HealthPercent(), 0.5) {
		t.Errorf("HealthPercent = %v, want 0.5", hs.HealthPercent())
	}

	hs.Reset()
	if h.Current != 200 || h.InHitstun {
		t.Errorf("Reset should restore full health and clear hitstun, got %+v", h)
	}

	h.Current = 0
	hs.Heal(10)
	if h.Current != 0 {
		t.Error("dead targets cannot be healed")
	}
}

type recordingMover struct {
	selfPropelled []bool
	velocity      []float64
}

func (r *recordingMover) SetSelfPropelled(enabled bool) {
	r.selfPropelled = append(r.selfPropelled, enabled)
}

func (r *recordingMover) SetVelocity(v math2.Vec2) {
	r.velocity = append(r.velocity, v.X)
}

func TestHitstunMovementOverride(t *testing.T) {
	w := donburi.NewWorld()
	target := newCombatant(w, 100)
	mover := &recordingMover{}
	hs := NewHitstunController(w, target).WithMovement(mover)

	hs.ApplyDamage(Hit{Damage: 10, Direction: vec(-1, 0), Force: 500})
	hs.Tick(1)

	if len(mover.selfPropelled) != 2 || mover.selfPropelled[0] || !mover.selfPropelled[1] {
		t.Errorf("self-propelled calls = %v, want [false true]", mover.selfPropelled)
	}
	if len(mover.velocity) != 1 || mover.velocity[0] >= 0 {
		t.Errorf("velocity calls = %v, want one leftward launch", mover.velocity)
	}
	if !components.Movement.Get(target).SelfPropelled {
		t.Error("entity movement must be untouched when overridden")
	}
}
