package combat

import (
	"math"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Hit is everything an attacker hands a target for one resolved overlap.
type Hit struct {
	Attacker  donburi.Entity
	Attack    string
	Damage    float64
	Direction math2.Vec2
	Force     float64 // raw, designer-authored force
	Hitstun   float64 // 0 falls back to the target's DamageSettings.HitstunDuration
}

type DamageResult struct {
	ActualDamage    float64
	ResultingHealth float64
	WasLethal       bool
}

// Damageable is the capability a hit-detection collaborator resolves once per
// overlap and passes to Facade.OnCandidateHit.
type Damageable interface {
	CombatID() uint64
	ApplyDamage(hit Hit) DamageResult
}

// MovementController is the movement layer hitstun overrides.
type MovementController interface {
	SetSelfPropelled(enabled bool)
	SetVelocity(v math2.Vec2)
}

// HitstunController owns all writes to one entity's health and hitstun. It
// resolves its components from the entry on every call, so it stays valid
// when the entity changes archetype.
type HitstunController struct {
	world    donburi.World
	entry    *donburi.Entry
	movement MovementController
}

// NewHitstunController binds a controller to an entry carrying
// components.Health. components.Weight and components.Movement are optional.
func NewHitstunController(world donburi.World, entry *donburi.Entry) *HitstunController {
	return &HitstunController{world: world, entry: entry}
}

// WithMovement replaces the entry's own movement component as the target of
// hitstun overrides.
func (h *HitstunController) WithMovement(m MovementController) *HitstunController {
	h.movement = m
	return h
}

func (h *HitstunController) CombatID() uint64 {
	return uint64(h.entry.Entity())
}

func (h *HitstunController) Entity() donburi.Entity {
	return h.entry.Entity()
}

func (h *HitstunController) health() *components.HealthData {
	return components.Health.Get(h.entry)
}

func (h *HitstunController) weight() components.WeightData {
	if h.entry.HasComponent(components.Weight) {
		return *components.Weight.Get(h.entry)
	}
	return components.WeightData{Weight: config.DefaultWeight(), Damage: config.DefaultDamageSettings()}
}

func (h *HitstunController) mover() MovementController {
	if h.movement != nil {
		return h.movement
	}
	if h.entry.HasComponent(components.Movement) {
		return components.Movement.Get(h.entry)
	}
	return nil
}

func (h *HitstunController) IsAlive() bool {
	return h.entry.Valid() && h.health().Current > 0
}

// HealthPercent is the remaining health in [0, 1].
func (h *HitstunController) HealthPercent() float64 {
	hd := h.health()
	if hd.Max <= 0 {
		return 0
	}
	return hd.Current / hd.Max
}

func (h *HitstunController) InHitstun() bool {
	return h.health().InHitstun
}

// ApplyDamage is the only path by which another entity changes this one's
// health. Invulnerable or defeated targets are left untouched.
func (h *HitstunController) ApplyDamage(hit Hit) DamageResult {
	if !h.IsAlive() {
		return DamageResult{}
	}
	hd := h.health()
	if hd.Invulnerable {
		return DamageResult{ResultingHealth: hd.Current}
	}
	wd := h.weight()

	actual := hit.Damage
	if wd.Damage.DamageMultiplier > 0 {
		actual *= wd.Damage.DamageMultiplier
	}
	if actual > hd.Current {
		actual = hd.Current
	}
	hd.Current = math.Max(0, hd.Current-actual)
	hd.DamagePercent = DamagePercent(hd.Current, hd.Max)

	// Knockback uses the percent after this hit so a lethal blow still launches.
	force := ComputeKnockbackForce(wd.Damage, wd.Weight, hd.DamagePercent, hit.Force)
	hd.PendingKnockback = LaunchVelocity(hit.Direction, force, wd.Weight.KnockbackResistance)

	stun := hit.Hitstun
	if stun <= 0 {
		stun = wd.Damage.HitstunDuration
	}
	if wd.Weight.HitstunMultiplier > 0 {
		stun *= wd.Weight.HitstunMultiplier
	}
	if stun > 0 {
		h.SetHitstun(stun)
	} else {
		// no stun means no launch; the vector must not leak into a later SetHitstun
		hd.PendingKnockback = math2.Vec2{}
	}

	target := h.entry.Entity()
	DamageReceived.Publish(h.world, DamageReceivedEvent{
		Target:    target,
		Damage:    actual,
		Direction: normalize(hit.Direction),
		Force:     force,
	})
	HealthChanged.Publish(h.world, HealthChangedEvent{Target: target, Health: hd.Current})

	lethal := hd.Current <= 0 && hd.CanBeDefeated
	if lethal {
		Defeated.Publish(h.world, DefeatedEvent{Target: target})
	}
	return DamageResult{ActualDamage: actual, ResultingHealth: hd.Current, WasLethal: lethal}
}

// SetHitstun locks self-propelled movement for duration seconds and forces the
// pending knockback as velocity. Non-positive durations are ignored.
func (h *HitstunController) SetHitstun(duration float64) {
	if duration <= 0 {
		return
	}
	hd := h.health()
	hd.InHitstun = true
	hd.HitstunTimer = duration
	if m := h.mover(); m != nil {
		m.SetSelfPropelled(false)
		m.SetVelocity(hd.PendingKnockback)
	}
	HitstunChanged.Publish(h.world, HitstunChangedEvent{Target: h.entry.Entity(), InHitstun: true})
}

func (h *HitstunController) Tick(dt float64) {
	hd := h.health()
	if !hd.InHitstun {
		return
	}
	hd.HitstunTimer -= dt
	if hd.HitstunTimer <= 0 {
		h.ClearHitstun()
	}
}

// ClearHitstun hands movement back to the entity. It does nothing outside hitstun.
func (h *HitstunController) ClearHitstun() {
	hd := h.health()
	if !hd.InHitstun {
		return
	}
	hd.InHitstun = false
	hd.HitstunTimer = 0
	hd.PendingKnockback = math2.Vec2{}
	if m := h.mover(); m != nil {
		m.SetSelfPropelled(true)
	}
	HitstunChanged.Publish(h.world, HitstunChangedEvent{Target: h.entry.Entity(), InHitstun: false})
}

func (h *HitstunController) Heal(amount float64) {
	if !h.IsAlive() || amount <= 0 {
		return
	}
	hd := h.health()
	next := math.Min(hd.Max, hd.Current+amount)
	if next == hd.Current {
		return
	}
	hd.Current = next
	hd.DamagePercent = DamagePercent(hd.Current, hd.Max)
	HealthChanged.Publish(h.world, HealthChangedEvent{Target: h.entry.Entity(), Health: hd.Current})
}

// SetMaxHealth changes the maximum and keeps the current health ratio.
func (h *HitstunController) SetMaxHealth(max float64) {
	if max <= 0 {
		return
	}
	hd := h.health()
	ratio := 1.0
	if hd.Max > 0 {
		ratio = hd.Current / hd.Max
	}
	hd.Max = max
	hd.Current = max * ratio
	hd.DamagePercent = DamagePercent(hd.Current, hd.Max)
	HealthChanged.Publish(h.world, HealthChangedEvent{Target: h.entry.Entity(), Health: hd.Current})
}

// Reset restores full health and clears any hitstun.
func (h *HitstunController) Reset() {
	h.ClearHitstun()
	hd := h.health()
	hd.Current = hd.Max
	hd.DamagePercent = 0
	HealthChanged.Publish(h.world, HealthChangedEvent{Target: h.entry.Entity(), Health: hd.Current})
}
