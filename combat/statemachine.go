package combat

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
)

// AttackStateMachine drives Idle -> Charging -> Attacking -> Recovery -> Idle
// over one combatant's CombatStateData. Every trigger is a silent no-op when
// its precondition fails; the bool results exist for callers that care.
type AttackStateMachine struct {
	state    *components.CombatStateData
	catalog  *config.Catalog
	stale    *StaleTracker // nil disables staling
	sched    *Scheduler
	registry *HitRegistry
	cfg      config.CombatConfig
}

func NewAttackStateMachine(state *components.CombatStateData, catalog *config.Catalog, stale *StaleTracker, sched *Scheduler, cfg config.CombatConfig) *AttackStateMachine {
	if state.HitTargets == nil {
		state.HitTargets = make(map[uint64]struct{})
	}
	if state.ChargeMultiplier == 0 {
		state.ChargeMultiplier = 1
	}
	if sched == nil {
		sched = &Scheduler{}
	}
	return &AttackStateMachine{
		state:    state,
		catalog:  catalog,
		stale:    stale,
		sched:    sched,
		registry: NewHitRegistry(state.HitTargets),
		cfg:      cfg,
	}
}

func (m *AttackStateMachine) Phase() config.AttackPhase {
	return m.state.Phase
}

// CanAttack is true while idle or charging; a new trigger abandons a held charge.
func (m *AttackStateMachine) CanAttack() bool {
	return m.state.Phase == config.PhaseIdle || m.state.Phase == config.PhaseCharging
}

func (m *AttackStateMachine) IsAttacking() bool {
	return m.state.Phase == config.PhaseAttacking || m.state.Phase == config.PhaseRecovery
}

func (m *AttackStateMachine) IsCharging() bool {
	return m.state.Phase == config.PhaseCharging
}

// ChargeProgress is elapsed/chargeTime in [0, 1] while charging, else 0.
func (m *AttackStateMachine) ChargeProgress() float64 {
	s := m.state
	if s.Phase != config.PhaseCharging || s.ActiveAttack.ChargeTime <= 0 {
		return 0
	}
	return clamp(s.ChargeElapsed/s.ActiveAttack.ChargeTime, 0, 1)
}

// CurrentAttack returns the active, already scaled profile.
func (m *AttackStateMachine) CurrentAttack() (config.AttackProfile, bool) {
	return m.state.ActiveAttack, m.state.HasAttack
}

func (m *AttackStateMachine) Registry() *HitRegistry {
	return m.registry
}

// TriggerAttack resolves the first catalog row for category (preferring one
// authored for dir) and starts it. Smash rows with a charge time enter
// Charging instead.
func (m *AttackStateMachine) TriggerAttack(category config.AttackCategory, dir config.AttackDirection) bool {
	if !m.CanAttack() {
		return false
	}
	profile, ok := m.catalog.LookupDirectional(category, dir)
	if !ok {
		return false
	}
	s := m.state
	if s.Phase == config.PhaseCharging {
		m.resetCharge()
	}
	s.Direction = dir

	if category == config.CategorySmash && profile.ChargeTime > 0 {
		s.Phase = config.PhaseCharging
		s.ActiveAttack = profile
		s.HasAttack = true
		s.PhaseTimer = 0
		s.ChargeElapsed = 0
		s.ChargeMultiplier = 1
		return true
	}
	m.commit(profile, 1)
	return true
}

// ReleaseCharge locks in the multiplier reached so far and swings.
func (m *AttackStateMachine) ReleaseCharge() bool {
	s := m.state
	if s.Phase != config.PhaseCharging {
		return false
	}
	p := s.ActiveAttack
	charge := ChargeMultiplier(s.ChargeElapsed, p.ChargeTime, p.MaxChargeMultiplier)
	m.commit(p, charge)
	return true
}

// commit enters Attacking with a copy of p scaled by stale and charge.
func (m *AttackStateMachine) commit(p config.AttackProfile, charge float64) {
	s := m.state
	stale := 1.0
	if m.stale != nil {
		stale = m.stale.GetStaleMultiplier(p.Name)
	}

	scaled := p
	scaled.BaseDamage = ComputeFinalDamage(p, stale, charge)
	scaled.BaseKnockbackForce = ComputeFinalKnockback(p, stale, charge)

	s.Phase = config.PhaseAttacking
	s.ActiveAttack = scaled
	s.HasAttack = true
	s.PhaseTimer = p.AttackDuration
	s.ChargeMultiplier = charge
	s.StaleMultiplier = stale

	if m.stale != nil {
		m.stale.RecordUse(p.Name, s.Clock)
	}
	m.OpenWindow(p.HitboxDelay)
}

// Tick advances the clock and the phase timers.
func (m *AttackStateMachine) Tick(dt float64) {
	s := m.state
	s.Clock += dt

	switch s.Phase {
	case config.PhaseCharging:
		s.ChargeElapsed += dt
		p := s.ActiveAttack
		s.ChargeMultiplier = ChargeMultiplier(s.ChargeElapsed, p.ChargeTime, p.MaxChargeMultiplier)
		if m.cfg.MaxChargeHold > 0 && s.ChargeElapsed >= m.cfg.MaxChargeHold {
			m.ReleaseCharge()
		}
	case config.PhaseAttacking:
		s.PhaseTimer -= dt
		if s.PhaseTimer <= 0 {
			s.Phase = config.PhaseRecovery
			s.PhaseTimer = s.ActiveAttack.RecoveryDuration
			m.CloseWindow()
		}
	case config.PhaseRecovery:
		s.PhaseTimer -= dt
		if s.PhaseTimer <= 0 {
			m.toIdle()
		}
	}
}

// ForceEndAttack snaps to Idle from any phase.
func (m *AttackStateMachine) ForceEndAttack() {
	m.toIdle()
	m.sched.Clear()
}

func (m *AttackStateMachine) toIdle() {
	s := m.state
	m.CloseWindow()
	s.Phase = config.PhaseIdle
	s.PhaseTimer = 0
	s.ActiveAttack = config.AttackProfile{}
	s.HasAttack = false
	s.StaleMultiplier = 1
	m.resetCharge()
}

func (m *AttackStateMachine) resetCharge() {
	m.state.ChargeElapsed = 0
	m.state.ChargeMultiplier = 1
}

// OpenWindow starts a fresh hit window. The hitbox arms after delay seconds,
// or at once when delay is 0.
func (m *AttackStateMachine) OpenWindow(delay float64) {
	s := m.state
	m.sched.Cancel(EventArmHitbox)
	m.registry.BeginWindow()
	s.WindowOpen = true
	s.HitboxArmed = delay <= 0
	if !s.HitboxArmed {
		m.sched.After(delay, EventArmHitbox)
	}
}

func (m *AttackStateMachine) CloseWindow() {
	s := m.state
	m.sched.Cancel(EventArmHitbox)
	m.registry.EndWindow()
	s.WindowOpen = false
	s.HitboxArmed = false
}

// ArmHitbox is run when a scheduled EventArmHitbox comes due.
func (m *AttackStateMachine) ArmHitbox() {
	if m.state.WindowOpen {
		m.state.HitboxArmed = true
	}
}
