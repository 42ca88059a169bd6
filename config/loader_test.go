package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCatalog = `
attacks:
  - name: poke
    category: light
    damage: 4
    knockback_force: 250
    knockback_direction: [1, -0.1]
    hitstun: 0.2
    attack_duration: 0.2
    recovery_duration: 0.1
    hitbox_offset: [16, 0]
    hitbox_extent: [8, 6]
  - name: launcher
    category: smash
    damage: 12
    knockback_force: 650
    attack_duration: 0.3
    recovery_duration: 0.4
    charge_time: 1.0
    max_charge_multiplier: 1.5
stale:
  enabled: true
  decay_window: 4
  step: 0.1
  min_multiplier: 0.5
  recovery_time: 2
archetypes:
  fighter:
    max_health: 80
  brute:
    max_health: 200
    weight:
      weight: 180
      knockback_resistance: 2
      knockback_scaling: 1
      hitstun_multiplier: 0.5
`

func TestReadCatalog(t *testing.T) {
	data, err := ReadCatalog(strings.NewReader(testCatalog), "yaml")
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}

	if data.Catalog.Len() != 2 {
		t.Fatalf("rows = %d, want 2", data.Catalog.Len())
	}
	poke, ok := data.Catalog.Lookup(CategoryLight)
	if !ok || poke.Name != "poke" {
		t.Fatalf("Lookup(light) = %q, %v", poke.Name, ok)
	}
	if poke.MaxChargeMultiplier != 1 {
		t.Errorf("poke charge multiplier = %v, want default 1", poke.MaxChargeMultiplier)
	}
	if poke.HitboxOffset.X != 16 || poke.HitboxExtent.Y != 6 {
		t.Errorf("poke hitbox = %v / %v", poke.HitboxOffset, poke.HitboxExtent)
	}

	launcher, _ := data.Catalog.Lookup(CategorySmash)
	if launcher.KnockbackDirection.X != 1 || launcher.KnockbackDirection.Y != -0.5 {
		t.Errorf("launcher knockback direction = %v, want default", launcher.KnockbackDirection)
	}
	if launcher.HitboxExtent.X != 25 {
		t.Errorf("launcher extent = %v, want default", launcher.HitboxExtent)
	}

	if data.Stale.Step != 0.1 || data.Stale.MinMultiplier != 0.5 {
		t.Errorf("stale = %+v", data.Stale)
	}

	if got := data.Archetypes[ArchetypeFighter].MaxHealth; got != 80 {
		t.Errorf("fighter health = %v, want 80", got)
	}
	brute, ok := data.Archetypes["brute"]
	if !ok {
		t.Fatal("brute archetype missing")
	}
	if brute.MaxHealth != 200 || brute.Weight.KnockbackResistance != 2 {
		t.Errorf("brute = %+v", brute)
	}
	if !brute.CanBeDefeated {
		t.Error("new archetypes inherit the fighter defaults")
	}
	if _, ok := data.Archetypes[ArchetypeDummy]; !ok {
		t.Error("built-in archetypes should survive a partial override")
	}
}

func TestReadCatalogKeepsDefaultStale(t *testing.T) {
	doc := `
attacks:
  - name: poke
    category: light
    damage: 4
    knockback_force: 250
    attack_duration: 0.2
`
	data, err := ReadCatalog(strings.NewReader(doc), "yaml")
	if err != nil {
		t.Fatalf("ReadCatalog: %v", err)
	}
	if data.Stale != Stale {
		t.Errorf("stale = %+v, want defaults %+v", data.Stale, Stale)
	}
}

func TestReadCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no attacks", "stale:\n  enabled: true\n"},
		{"unknown category", `
attacks:
  - name: poke
    category: kick
    damage: 4
    knockback_force: 250
    attack_duration: 0.2
`},
		{"bad vector", `
attacks:
  - name: poke
    category: light
    damage: 4
    knockback_force: 250
    attack_duration: 0.2
    hitbox_offset: [1, 2, 3]
`},
		{"zero damage", `
attacks:
  - name: poke
    category: light
    knockback_force: 250
    attack_duration: 0.2
`},
		{"bad stale floor", `
attacks:
  - name: poke
    category: light
    damage: 4
    knockback_force: 250
    attack_duration: 0.2
stale:
  min_multiplier: 1.5
`},
		{"flat scaling base", `
attacks:
  - name: poke
    category: light
    damage: 4
    knockback_force: 250
    attack_duration: 0.2
archetypes:
  fighter:
    damage:
      damage_multiplier: 1
      base_knockback: 500
      knockback_scaling_base: 1
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCatalog(strings.NewReader(tt.doc), "yaml")
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("err = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

func TestLoadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.yaml")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	data, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if data.Catalog.Len() != 2 {
		t.Errorf("rows = %d, want 2", data.Catalog.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSettingsValidate(t *testing.T) {
	d := DefaultDamageSettings()
	if err := d.Validate(); err != nil {
		t.Errorf("default damage settings: %v", err)
	}
	for _, base := range []float64{1, 0.9} {
		d.KnockbackScalingBase = base
		if err := d.Validate(); !errors.Is(err, ErrInvalidCatalog) {
			t.Errorf("base %v: err = %v", base, err)
		}
	}

	if err := Stale.Validate(); err != nil {
		t.Errorf("default stale: %v", err)
	}
	s := Stale
	s.Step = -1
	if err := s.Validate(); err == nil {
		t.Error("expected an error for a negative step")
	}

	w := DefaultWeight()
	w.KnockbackResistance = 0
	if err := w.Validate(); err == nil {
		t.Error("expected an error for zero resistance")
	}
}
