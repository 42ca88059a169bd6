package factory

import (
	"github.com/automoto/brawlcore/arena"
	"github.com/automoto/brawlcore/combat"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the space, solids and every spawn of a. It returns the
// combatants in spawn order.
func CreateArena(ecs *ecs.ECS, a *arena.Arena, catalog *cfg.Catalog, opts ...combat.Option) []*donburi.Entry {
	CreateSpace(ecs, a.Width, a.Height, cfg.Arena.CellSize, cfg.Arena.CellSize)

	for _, w := range a.Walls {
		CreateWall(ecs, w.X, w.Y, w.W, w.H)
	}
	for _, p := range a.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.W, p.H)
	}

	fighters := make([]*donburi.Entry, 0, len(a.Spawns))
	for _, s := range a.Spawns {
		if s.Controlled {
			fighters = append(fighters, CreatePlayer(ecs, s.Archetype, s.X, s.Y, catalog, opts...))
			continue
		}
		fighters = append(fighters, CreateCombatant(ecs, s.Archetype, s.X, s.Y, catalog, opts...))
	}
	return fighters
}
