package assets

import (
	"slices"
	"testing"

	"github.com/automoto/brawlcore/config"
)

func TestArenaNames(t *testing.T) {
	names := ArenaNames()
	if !slices.Equal(names, []string{"duel", "training"}) {
		t.Errorf("ArenaNames() = %v", names)
	}
}

func TestLoadArena(t *testing.T) {
	a, err := LoadArena("training")
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}
	if len(a.Spawns) != 2 {
		t.Errorf("training spawns = %d, want 2", len(a.Spawns))
	}
	if _, err := LoadArena("missing"); err == nil {
		t.Error("expected an error for a missing arena")
	}
}

func TestBundledCatalogMatchesDefault(t *testing.T) {
	data, err := LoadCombatData()
	if err != nil {
		t.Fatalf("LoadCombatData: %v", err)
	}

	got := data.Catalog.Rows()
	want := config.DefaultCatalog().Rows()
	if len(got) != len(want) {
		t.Fatalf("rows = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if shadowed := data.Catalog.ShadowedRows(); len(shadowed) != 0 {
		t.Errorf("shadowed rows: %v", shadowed)
	}

	heavy := data.Archetypes[config.ArchetypeHeavy]
	if heavy.Weight.KnockbackResistance != 1.4 {
		t.Errorf("heavy resistance = %v, want 1.4", heavy.Weight.KnockbackResistance)
	}
	if data.Archetypes[config.ArchetypeDummy].CanBeDefeated {
		t.Error("dummy should not be defeatable")
	}
	if data.Stale != config.Stale {
		t.Errorf("stale = %+v, want %+v", data.Stale, config.Stale)
	}
}
