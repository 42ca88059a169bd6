package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/brawlcore/arena"
	"github.com/automoto/brawlcore/config"
)

var (
	//go:embed all:arenas
	arenaFS embed.FS

	//go:embed all:catalog
	catalogFS embed.FS
)

const (
	arenaDir    = "arenas"
	catalogFile = "catalog/attacks.yaml"
)

// ArenaFS exposes the embedded arenas for callers that load by path.
func ArenaFS() fs.FS {
	return arenaFS
}

// ArenaNames lists the bundled arenas without extension, sorted.
func ArenaNames() []string {
	entries, err := fs.ReadDir(arenaFS, arenaDir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".tmx" {
			continue
		}
		names = append(names, e.Name()[:len(e.Name())-len(".tmx")])
	}
	sort.Strings(names)
	return names
}

// LoadArena loads a bundled arena by name ("training", "duel").
func LoadArena(name string) (*arena.Arena, error) {
	a, err := arena.Load(arenaFS, path.Join(arenaDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("bundled arena %q: %w", name, err)
	}
	return a, nil
}

// LoadCombatData parses the bundled attack catalog.
func LoadCombatData() (*config.CombatData, error) {
	f, err := catalogFS.Open(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("open bundled catalog: %w", err)
	}
	defer f.Close()

	data, err := config.ReadCatalog(f, "yaml")
	if err != nil {
		return nil, fmt.Errorf("bundled catalog: %w", err)
	}
	return data, nil
}
