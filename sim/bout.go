// Package sim runs headless bouts: an arena, its combatants driven by brains
// and a tally of what happened.
package sim

import (
	"fmt"
	"log"
	"sort"

	"github.com/automoto/brawlcore/arena"
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/automoto/brawlcore/tags"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Tally is the running score of a bout.
type Tally struct {
	Ticks    int
	Hits     map[string]int     // landed hits per attack name
	Damage   map[string]float64 // damage dealt per combatant name
	Defeated []string
}

func (t Tally) TotalHits() int {
	n := 0
	for _, h := range t.Hits {
		n += h
	}
	return n
}

// String renders the tally with stable ordering.
func (t Tally) String() string {
	s := fmt.Sprintf("ticks=%d hits=%d", t.Ticks, t.TotalHits())
	for _, name := range sortedKeys(t.Hits) {
		s += fmt.Sprintf(" %s=%d", name, t.Hits[name])
	}
	for _, name := range sortedKeys(t.Damage) {
		s += fmt.Sprintf(" dmg[%s]=%.1f", name, t.Damage[name])
	}
	if len(t.Defeated) > 0 {
		s += fmt.Sprintf(" defeated=%v", t.Defeated)
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Bout is one arena populated and ready to step.
type Bout struct {
	ID       string
	ecs      *ecs.ECS
	fighters []*donburi.Entry
	tally    Tally
}

// NewBout builds the arena and gives every defeatable combatant a brain aimed
// at the next combatant in spawn order. A nil logger disables event logging.
func NewBout(a *arena.Arena, catalog *cfg.Catalog, logger *log.Logger, opts ...combat.Option) (*Bout, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if logger != nil {
		opts = append(opts, combat.WithLogger(logger))
	}

	b := &Bout{
		ID:  uuid.New().String(),
		ecs: ecs.NewECS(donburi.NewWorld()),
		tally: Tally{
			Hits:   make(map[string]int),
			Damage: make(map[string]float64),
		},
	}
	systems.AddCombatSystems(b.ecs)
	b.fighters = factory.CreateArena(b.ecs, a, catalog, opts...)

	if len(b.fighters) > 1 {
		for i, f := range b.fighters {
			if f.HasComponent(tags.Dummy) {
				continue
			}
			target := b.fighters[(i+1)%len(b.fighters)]
			factory.AttachBrain(f, target.Entity())
		}
	}

	w := b.ecs.World
	if logger != nil {
		systems.LogCombatEvents(w, logger)
	}
	combat.HitLanded.Subscribe(w, b.onHitLanded)
	combat.Defeated.Subscribe(w, b.onDefeated)
	return b, nil
}

func (b *Bout) onHitLanded(w donburi.World, e combat.HitLandedEvent) {
	b.tally.Hits[e.Attack]++
	b.tally.Damage[nameOf(w, e.Attacker)] += e.Damage
}

func (b *Bout) onDefeated(w donburi.World, e combat.DefeatedEvent) {
	b.tally.Defeated = append(b.tally.Defeated, nameOf(w, e.Target))
}

func nameOf(w donburi.World, e donburi.Entity) string {
	if !w.Valid(e) {
		return "?"
	}
	entry := w.Entry(e)
	if !entry.HasComponent(combat.Combatant) {
		return "?"
	}
	return combat.Combatant.Get(entry).Name
}

// Step advances the bout one tick.
func (b *Bout) Step() {
	b.ecs.Update()
	b.tally.Ticks++
}

// RunTicks steps up to n ticks, stopping early once someone is defeated. It
// returns the number of ticks run.
func (b *Bout) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		if b.Over() {
			return i
		}
		b.Step()
	}
	return n
}

// Over reports whether a combatant has been defeated.
func (b *Bout) Over() bool {
	return len(b.tally.Defeated) > 0
}

func (b *Bout) Tally() Tally {
	return b.tally
}

func (b *Bout) Fighters() []*donburi.Entry {
	return b.fighters
}

func (b *Bout) World() donburi.World {
	return b.ecs.World
}

// Health reports the current health of every combatant in spawn order.
func (b *Bout) Health() []float64 {
	out := make([]float64, len(b.fighters))
	for i, f := range b.fighters {
		out[i] = components.Health.Get(f).Current
	}
	return out
}
