package combat

import (
	"log"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// Overlap describes one geometry report from the hit-detection layer.
type Overlap struct {
	// Facing is the attacker's facing sign. 0 means unknown, in which case
	// the target is pushed away from the attacker's center.
	Facing         float64
	AttackerCenter math2.Vec2
	TargetCenter   math2.Vec2
}

// Facade is the public combat surface of one entity. Input, AI and the
// hit-detection system talk to it; it composes the state machine, stale
// tracker, registry and the owner's hitstun controller.
//
// Components are looked up from the entry on every call.
type Facade struct {
	world   donburi.World
	entry   *donburi.Entry
	catalog *config.Catalog

	combat   config.CombatConfig
	stale    config.StaleConfig
	debug    config.DebugOptions
	logger   *log.Logger
	movement MovementController

	sched Scheduler
}

type Option func(*Facade)

func WithStaleConfig(cfg config.StaleConfig) Option {
	return func(f *Facade) { f.stale = cfg }
}

func WithCombatConfig(cfg config.CombatConfig) Option {
	return func(f *Facade) { f.combat = cfg }
}

func WithDebug(opts config.DebugOptions) Option {
	return func(f *Facade) { f.debug = opts }
}

// WithLogger sets where LogHits lines go. Without it the facade is silent.
func WithLogger(l *log.Logger) Option {
	return func(f *Facade) { f.logger = l }
}

// WithMovement overrides the movement controller hitstun acts on.
func WithMovement(m MovementController) Option {
	return func(f *Facade) { f.movement = m }
}

// New binds a facade to an entry that has components.CombatState. Health,
// Weight, Movement and Stale are used when present.
func New(world donburi.World, entry *donburi.Entry, catalog *config.Catalog, opts ...Option) *Facade {
	f := &Facade{
		world:   world,
		entry:   entry,
		catalog: catalog,
		combat:  config.Combat,
		stale:   config.Stale,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Facade) Entity() donburi.Entity {
	return f.entry.Entity()
}

func (f *Facade) CombatID() uint64 {
	return uint64(f.entry.Entity())
}

func (f *Facade) Debug() config.DebugOptions {
	return f.debug
}

func (f *Facade) SetDebug(opts config.DebugOptions) {
	f.debug = opts
}

func (f *Facade) Catalog() *config.Catalog {
	return f.catalog
}

func (f *Facade) state() *components.CombatStateData {
	return components.CombatState.Get(f.entry)
}

func (f *Facade) staleTracker() *StaleTracker {
	if !f.entry.HasComponent(components.Stale) {
		return nil
	}
	return NewStaleTracker(components.Stale.Get(f.entry), f.stale)
}

func (f *Facade) machine() *AttackStateMachine {
	return NewAttackStateMachine(f.state(), f.catalog, f.staleTracker(), &f.sched, f.combat)
}

// Hitstun returns the owner's own hitstun controller, or nil when the owner
// cannot be damaged.
func (f *Facade) Hitstun() *HitstunController {
	if !f.entry.HasComponent(components.Health) {
		return nil
	}
	return NewHitstunController(f.world, f.entry).WithMovement(f.movement)
}

func (f *Facade) valid() bool {
	return f != nil && f.entry != nil && f.entry.Valid()
}

// stunned reports whether the owner's input is locked by hitstun.
func (f *Facade) stunned() bool {
	hs := f.Hitstun()
	return hs != nil && hs.InHitstun()
}

func (f *Facade) trigger(category config.AttackCategory, dir config.AttackDirection) bool {
	if !f.valid() || f.stunned() {
		return false
	}
	return f.machine().TriggerAttack(category, dir)
}

func (f *Facade) LightAttack() bool {
	return f.trigger(config.CategoryLight, config.DirectionNone)
}

// TiltAttack quantizes the input direction and prefers a row authored for it.
func (f *Facade) TiltAttack(dir math2.Vec2) bool {
	return f.trigger(config.CategoryTilt, QuantizeDirection(dir))
}

func (f *Facade) AerialAttack() bool {
	return f.trigger(config.CategoryAerial, config.DirectionNone)
}

func (f *Facade) SmashAttackStart() bool {
	return f.trigger(config.CategorySmash, config.DirectionNone)
}

func (f *Facade) SmashAttackRelease() bool {
	if !f.valid() {
		return false
	}
	return f.machine().ReleaseCharge()
}

// Tick advances scheduled events, the attack phases, stale recovery and the
// owner's hitstun. Run it before hit detection in the same frame.
func (f *Facade) Tick(dt float64) {
	if !f.valid() {
		return
	}
	m := f.machine()
	for _, kind := range f.sched.Advance(dt) {
		switch kind {
		case EventArmHitbox:
			m.ArmHitbox()
		}
	}
	m.Tick(dt)
	if st := f.staleTracker(); st != nil {
		st.Update(f.state().Clock)
	}
	if hs := f.Hitstun(); hs != nil {
		hs.Tick(dt)
	}
}

// OnCandidateHit is called by the hit-detection layer for every overlap of
// this entity's hitbox. Repeated reports of the same target in one window
// apply damage once.
func (f *Facade) OnCandidateHit(target Damageable, overlap Overlap) DamageResult {
	if !f.valid() || target == nil {
		return DamageResult{}
	}
	s := f.state()
	if !s.HasAttack || s.Phase != config.PhaseAttacking || !s.WindowOpen || !s.HitboxArmed {
		return DamageResult{}
	}
	id := target.CombatID()
	if id == f.CombatID() && !f.combat.SelfHitAllowed {
		return DamageResult{}
	}
	if !NewHitRegistry(s.HitTargets).TryRegisterHit(id) {
		return DamageResult{}
	}

	attack := s.ActiveAttack
	hit := Hit{
		Attacker:  f.entry.Entity(),
		Attack:    attack.Name,
		Damage:    attack.BaseDamage,
		Direction: knockbackDirection(attack.KnockbackDirection, overlap),
		Force:     attack.BaseKnockbackForce,
		Hitstun:   attack.HitstunDuration,
	}
	res := target.ApplyDamage(hit)
	if res.ActualDamage <= 0 {
		return res
	}

	HitLanded.Publish(f.world, HitLandedEvent{
		Attacker: f.entry.Entity(),
		Target:   donburi.Entity(id),
		Attack:   attack.Name,
		Damage:   res.ActualDamage,
		Lethal:   res.WasLethal,
	})
	if f.debug.LogHits && f.logger != nil {
		f.logger.Printf("%s hit %d for %.1f (health %.1f, lethal %v)", attack.Name, id, res.ActualDamage, res.ResultingHealth, res.WasLethal)
	}
	return res
}

// knockbackDirection mirrors the authored hint so it points away from the
// attacker.
func knockbackDirection(hint math2.Vec2, o Overlap) math2.Vec2 {
	sign := o.Facing
	if sign == 0 {
		sign = 1
		if o.TargetCenter.X < o.AttackerCenter.X {
			sign = -1
		}
	}
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	if hint.X == 0 && hint.Y == 0 {
		return math2.Vec2{X: sign}
	}
	x := hint.X
	if x < 0 {
		x = -x
	}
	return math2.Vec2{X: x * sign, Y: hint.Y}
}

// EndAttackNow is the animation-completion hook.
func (f *Facade) EndAttackNow() {
	if !f.valid() {
		return
	}
	f.machine().ForceEndAttack()
}

// BeginAttackWindow opens a new externally timed window on the current attack.
// Targets hit in an earlier window may be hit again. Only a swing in the
// Attacking phase can open one.
func (f *Facade) BeginAttackWindow() {
	if !f.valid() || f.state().Phase != config.PhaseAttacking {
		return
	}
	f.machine().OpenWindow(f.combat.WindowArmDelay)
}

func (f *Facade) EndAttackWindow() {
	if !f.valid() {
		return
	}
	f.machine().CloseWindow()
}

// Hitstop briefly freezes the owner through its own hitstun.
func (f *Facade) Hitstop(duration float64) {
	if hs := f.Hitstun(); hs != nil && f.valid() {
		hs.SetHitstun(duration)
	}
}

func (f *Facade) CanAttack() bool {
	return f.valid() && f.machine().CanAttack()
}

func (f *Facade) IsAttacking() bool {
	return f.valid() && f.machine().IsAttacking()
}

func (f *Facade) IsCharging() bool {
	return f.valid() && f.machine().IsCharging()
}

func (f *Facade) ChargeProgress() float64 {
	if !f.valid() {
		return 0
	}
	return f.machine().ChargeProgress()
}

// CurrentAttack returns a copy of the active profile, scaled by stale and charge.
func (f *Facade) CurrentAttack() (config.AttackProfile, bool) {
	if !f.valid() {
		return config.AttackProfile{}, false
	}
	return f.machine().CurrentAttack()
}

func (f *Facade) Phase() config.AttackPhase {
	if !f.valid() {
		return config.PhaseIdle
	}
	return f.state().Phase
}

func (f *Facade) WindowOpen() bool {
	return f.valid() && f.state().WindowOpen
}

func (f *Facade) HitboxArmed() bool {
	return f.valid() && f.state().HitboxArmed
}

func (f *Facade) StaleMultiplier(moveName string) float64 {
	if st := f.staleTracker(); st != nil {
		return st.GetStaleMultiplier(moveName)
	}
	return 1
}

func (f *Facade) ResetStaling() {
	if st := f.staleTracker(); st != nil {
		st.Reset()
	}
}
