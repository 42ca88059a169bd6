package combat

import (
	"testing"

	"github.com/automoto/brawlcore/config"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestComputeFinalDamage(t *testing.T) {
	p := config.AttackProfile{BaseDamage: 10, BaseKnockbackForce: 500}
	tests := []struct {
		name          string
		stale, charge float64
		wantDamage    float64
		wantKnockback float64
	}{
		{"fresh uncharged", 1, 1, 10, 500},
		{"stale", 0.8, 1, 8, 400},
		{"full charge", 1, 2, 20, 1000},
		{"stale and charged", 0.7, 1.5, 10.5, 525},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeFinalDamage(p, tt.stale, tt.charge); !almostEqual(got, tt.wantDamage) {
				t.Errorf("damage = %v, want %v", got, tt.wantDamage)
			}
			if got := ComputeFinalKnockback(p, tt.stale, tt.charge); !almostEqual(got, tt.wantKnockback) {
				t.Errorf("knockback = %v, want %v", got, tt.wantKnockback)
			}
		})
	}
}

func TestComputeKnockbackForce(t *testing.T) {
	settings := config.DefaultDamageSettings()
	weight := config.DefaultWeight()

	got := ComputeKnockbackForce(settings, weight, 10, 500)
	want := 254.59984403675605
	if !almostEqual(got, want) {
		t.Errorf("force at 10%% = %v, want %v", got, want)
	}

	weight.KnockbackScaling = 2
	if got2 := ComputeKnockbackForce(settings, weight, 10, 500); !almostEqual(got2, 2*want) {
		t.Errorf("scaled force = %v, want %v", got2, 2*want)
	}
}

func TestKnockbackEscalatesWithPercent(t *testing.T) {
	settings := config.DefaultDamageSettings()
	weight := config.DefaultWeight()

	prev := ComputeKnockbackForce(settings, weight, 0, 450)
	for pct := 1.0; pct <= 300; pct++ {
		got := ComputeKnockbackForce(settings, weight, pct, 450)
		if got <= prev {
			t.Fatalf("force at %v%% = %v, not above %v", pct, got, prev)
		}
		prev = got
	}
}

func TestDamagePercent(t *testing.T) {
	const max = 100.0
	prev := -1.0
	for current := max; current >= 0; current -= 0.5 {
		got := DamagePercent(current, max)
		want := (max - current) / max * 100
		if !almostEqual(got, want) {
			t.Fatalf("DamagePercent(%v) = %v, want %v", current, got, want)
		}
		if got < prev {
			t.Fatalf("percent decreased from %v to %v at health %v", prev, got, current)
		}
		prev = got
	}
	if got := DamagePercent(0, 0); got != 0 {
		t.Errorf("zero max should give 0, got %v", got)
	}
}

func TestChargeMultiplierClamp(t *testing.T) {
	tests := []struct {
		name                string
		elapsed, chargeTime float64
		max                 float64
		want                float64
	}{
		{"not started", 0, 1, 2, 1},
		{"half", 0.5, 1, 2, 1.5},
		{"full", 1, 1, 2, 2},
		{"far beyond", 1e6, 1, 2, 2},
		{"no charge capability", 5, 0, 2, 1},
		{"max of one", 5, 1, 1, 1},
		{"negative elapsed", -1, 1, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChargeMultiplier(tt.elapsed, tt.chargeTime, tt.max)
			if !almostEqual(got, tt.want) {
				t.Errorf("ChargeMultiplier = %v, want %v", got, tt.want)
			}
			if got < 1 || got > tt.max && tt.max >= 1 {
				t.Errorf("ChargeMultiplier %v outside [1, %v]", got, tt.max)
			}
		})
	}
}

func TestLaunchVelocity(t *testing.T) {
	v := LaunchVelocity(math2.NewVec2(3, 4), 100, 2)
	if !almostEqual(v.X, 30) || !almostEqual(v.Y, 40) {
		t.Errorf("velocity = %+v, want {30 40}", v)
	}

	// resistance is floored so a zero divisor cannot blow up
	v = LaunchVelocity(math2.NewVec2(1, 0), 1, 0)
	if !almostEqual(v.X, 100) {
		t.Errorf("floored velocity = %v, want 100", v.X)
	}

	v = LaunchVelocity(math2.Vec2{}, 100, 1)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("zero direction should give zero velocity, got %+v", v)
	}
}
