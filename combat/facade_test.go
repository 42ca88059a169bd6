package combat

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func newTestFacade(opts ...Option) (donburi.World, *Facade) {
	w := donburi.NewWorld()
	attacker := newCombatant(w, 100)
	base := []Option{
		WithStaleConfig(testStaleConfig()),
		WithCombatConfig(config.CombatConfig{TickRate: 60, WindowArmDelay: 0.1}),
	}
	return w, New(w, attacker, testCatalog(), append(base, opts...)...)
}

func TestFacadeIdempotentHits(t *testing.T) {
	for _, n := range []int{1, 2, 50} {
		_, f := newTestFacade()
		target := &countingTarget{id: 999}
		f.LightAttack()
		for i := 0; i < n; i++ {
			f.OnCandidateHit(target, Overlap{Facing: 1})
		}
		if target.calls != 1 {
			t.Errorf("n=%d: ApplyDamage called %d times, want 1", n, target.calls)
		}
	}
}

func TestFacadeHitsRealTargetOnce(t *testing.T) {
	w, f := newTestFacade()
	counts := countEvents(w)
	targetEntry := newCombatant(w, 100)
	target := NewHitstunController(w, targetEntry)

	f.LightAttack()
	first := f.OnCandidateHit(target, Overlap{Facing: 1})
	second := f.OnCandidateHit(target, Overlap{Facing: 1})
	events.ProcessAllEvents(w)

	if first.ActualDamage != 10 || second.ActualDamage != 0 {
		t.Errorf("results = %+v / %+v, want 10 then 0", first, second)
	}
	if h := components.Health.Get(targetEntry); h.Current != 90 || !almostEqual(h.DamagePercent, 10) {
		t.Errorf("target health = %+v, want 90 at 10%%", h)
	}
	if counts.damage != 1 || counts.landed != 1 {
		t.Errorf("events = %+v, want one damage and one landed", counts)
	}
}

func TestFacadeWindowIsolation(t *testing.T) {
	_, f := newTestFacade()
	target := &countingTarget{id: 5}
	f.LightAttack()
	f.OnCandidateHit(target, Overlap{Facing: 1})

	f.BeginAttackWindow()
	if f.HitboxArmed() {
		t.Fatal("an external window arms after its delay")
	}
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 1 {
		t.Fatalf("unarmed window accepted a hit")
	}
	f.Tick(0.1)
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 2 {
		t.Fatalf("second window should accept the target again, calls = %d", target.calls)
	}

	f.BeginAttackWindow()
	f.Tick(0.1)
	f.OnCandidateHit(target, Overlap{Facing: 1})
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 3 {
		t.Errorf("third window: calls = %d, want 3", target.calls)
	}

	f.EndAttackWindow()
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 3 || f.WindowOpen() {
		t.Error("closed window must reject hits")
	}
}

func TestFacadeWindowOnlyInAttackingPhase(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Facade)
		phase config.AttackPhase
	}{
		{"charging smash", func(f *Facade) { f.SmashAttackStart() }, config.PhaseCharging},
		{"recovering jab", func(f *Facade) {
			f.LightAttack()
			f.Tick(0.31)
		}, config.PhaseRecovery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestFacade()
			target := &countingTarget{id: 7}
			tt.setup(f)

			f.BeginAttackWindow()
			f.Tick(0.1)
			if f.Phase() != tt.phase {
				t.Fatalf("phase = %v, want %v", f.Phase(), tt.phase)
			}
			if f.WindowOpen() {
				t.Error("window must stay closed outside Attacking")
			}
			if res := f.OnCandidateHit(target, Overlap{Facing: 1}); res.ActualDamage != 0 || target.calls != 0 {
				t.Errorf("hit accepted in %v: %+v, calls %d", f.Phase(), res, target.calls)
			}
			if n := len(f.state().HitTargets); n != 0 {
				t.Errorf("hit targets = %d outside Attacking", n)
			}
		})
	}
}

func TestFacadeRejectsTriggerWhileAttacking(t *testing.T) {
	_, f := newTestFacade()
	if !f.LightAttack() {
		t.Fatal("light attack should start")
	}
	if f.LightAttack() || f.AerialAttack() || f.SmashAttackStart() {
		t.Error("triggers during Attacking must be no-ops")
	}
	if f.Phase() != config.PhaseAttacking {
		t.Errorf("phase = %v", f.Phase())
	}
}

func TestFacadeSmashScenario(t *testing.T) {
	w, f := newTestFacade()
	targetEntry := newCombatant(w, 100)
	target := NewHitstunController(w, targetEntry)

	f.SmashAttackStart()
	for i := 0; i < 5; i++ {
		f.Tick(0.2)
	}
	if !f.IsCharging() || !almostEqual(f.ChargeProgress(), 1) {
		t.Fatalf("charging %v progress %v, want fully charged", f.IsCharging(), f.ChargeProgress())
	}
	f.SmashAttackRelease()

	p, ok := f.CurrentAttack()
	if !ok || !almostEqual(p.BaseDamage, 30) {
		t.Fatalf("current attack = %+v, want 30 damage", p)
	}
	res := f.OnCandidateHit(target, Overlap{Facing: 1})
	if !almostEqual(res.ActualDamage, 30) || !almostEqual(res.ResultingHealth, 70) {
		t.Errorf("result = %+v, want 30 damage", res)
	}
}

func TestFacadeInvulnerableTarget(t *testing.T) {
	w, f := newTestFacade()
	counts := countEvents(w)
	targetEntry := newCombatant(w, 100)
	components.Health.Get(targetEntry).Invulnerable = true

	f.LightAttack()
	res := f.OnCandidateHit(NewHitstunController(w, targetEntry), Overlap{Facing: 1})
	events.ProcessAllEvents(w)

	if res.ActualDamage != 0 {
		t.Errorf("actual damage = %v, want 0", res.ActualDamage)
	}
	if h := components.Health.Get(targetEntry); h.InHitstun || h.Current != 100 {
		t.Errorf("invulnerable target changed: %+v", h)
	}
	if *counts != (eventCounts{}) {
		t.Errorf("no notifications expected, got %+v", counts)
	}
}

func TestFacadeRejectsInvalidTargets(t *testing.T) {
	w, f := newTestFacade()
	f.LightAttack()

	if res := f.OnCandidateHit(nil, Overlap{}); res != (DamageResult{}) {
		t.Errorf("nil target result = %+v", res)
	}
	self := NewHitstunController(w, w.Entry(f.Entity()))
	if res := f.OnCandidateHit(self, Overlap{Facing: 1}); res.ActualDamage != 0 {
		t.Error("a combatant must not hit itself")
	}

	_, idle := newTestFacade()
	target := &countingTarget{id: 3}
	idle.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 0 {
		t.Error("hits outside an attack are ignored")
	}
}

func TestFacadeClosesWindowBeforeRecovery(t *testing.T) {
	_, f := newTestFacade()
	target := &countingTarget{id: 11}
	f.LightAttack()
	f.Tick(0.3)
	if f.Phase() != config.PhaseRecovery {
		t.Fatalf("phase = %v, want recovery", f.Phase())
	}
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 0 {
		t.Error("recovery must not deal damage")
	}
}

func TestFacadeHitboxDelay(t *testing.T) {
	_, f := newTestFacade()
	target := &countingTarget{id: 8}
	if !f.TiltAttack(vec(0, -1)) {
		t.Fatal("up tilt should start")
	}
	if p, _ := f.CurrentAttack(); p.Name != "up_tilt" {
		t.Fatalf("tilt resolved to %q", p.Name)
	}
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 0 {
		t.Fatal("hitbox is not armed before its delay")
	}
	f.Tick(0.05)
	f.OnCandidateHit(target, Overlap{Facing: 1})
	if target.calls != 1 {
		t.Errorf("calls = %d after the delay, want 1", target.calls)
	}
}

func TestFacadeKnockbackDirection(t *testing.T) {
	tests := []struct {
		name    string
		overlap Overlap
		wantX   float64
	}{
		{"facing right", Overlap{Facing: 1}, 1},
		{"facing left", Overlap{Facing: -1}, -1},
		{"target on the left", Overlap{AttackerCenter: vec(100, 0), TargetCenter: vec(80, 0)}, -1},
		{"target on the right", Overlap{AttackerCenter: vec(100, 0), TargetCenter: vec(120, 0)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newTestFacade()
			target := &countingTarget{id: 2}
			f.TiltAttack(vec(1, 0))
			f.OnCandidateHit(target, tt.overlap)
			if target.calls != 1 {
				t.Fatalf("calls = %d", target.calls)
			}
			d := target.last.Direction
			if d.X != tt.wantX || d.Y != -0.5 {
				t.Errorf("direction = %+v, want {%v -0.5}", d, tt.wantX)
			}
		})
	}
}

func TestFacadeHitstunBlocksInput(t *testing.T) {
	_, f := newTestFacade()
	f.Hitstop(0.05)
	if f.LightAttack() {
		t.Error("combatants in hitstun cannot attack")
	}
	f.Tick(0.05)
	if !f.LightAttack() {
		t.Error("attack should work once hitstun ends")
	}
}

func TestFacadeEndAttackNow(t *testing.T) {
	_, f := newTestFacade()
	f.TiltAttack(vec(0, -1))
	f.EndAttackNow()
	if f.Phase() != config.PhaseIdle || f.WindowOpen() || !f.CanAttack() {
		t.Errorf("EndAttackNow should return to idle, phase %v", f.Phase())
	}
	// the cancelled arm event must not fire into the next attack
	f.LightAttack()
	f.EndAttackWindow()
	f.Tick(0.1)
	if f.HitboxArmed() {
		t.Error("stale scheduled events leaked")
	}
}

func TestFacadeStaleAndLogging(t *testing.T) {
	var buf bytes.Buffer
	_, f := newTestFacade(
		WithDebug(config.DebugOptions{LogHits: true}),
		WithLogger(log.New(&buf, "", 0)),
	)

	f.LightAttack()
	f.OnCandidateHit(&countingTarget{id: 4}, Overlap{Facing: 1})
	if !strings.Contains(buf.String(), "jab hit 4") {
		t.Errorf("log = %q, want a hit line", buf.String())
	}
	if !almostEqual(f.StaleMultiplier("jab"), 0.95) {
		t.Errorf("stale multiplier = %v, want 0.95", f.StaleMultiplier("jab"))
	}
	f.ResetStaling()
	if f.StaleMultiplier("jab") != 1 {
		t.Error("ResetStaling should make moves fresh")
	}
}
