package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/automoto/brawlcore/arena"
	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/sim"
)

func main() {
	catalogPath := flag.String("catalog", "", "Attack catalog file (yaml, toml or json); empty uses the bundled one")
	arenaName := flag.String("arena", "duel", "Bundled arena name or path to a .tmx file")
	ticks := flag.Int("ticks", 3600, "Maximum ticks to simulate")
	rate := flag.Int("rate", 0, "Ticks per second (0 = as fast as possible)")
	logHits := flag.Bool("loghits", false, "Log every accepted hit from the attacker side")
	flag.Parse()

	data, err := loadCombatData(*catalogPath)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	for _, name := range data.Catalog.ShadowedRows() {
		log.Printf("Warning: attack %q is shadowed by an earlier row and will never be used", name)
	}
	config.Archetypes = data.Archetypes
	config.Stale = data.Stale

	a, err := loadArena(*arenaName)
	if err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}

	logger := log.New(os.Stdout, "", log.Lmicroseconds)
	bout, err := sim.NewBout(a, data.Catalog, logger,
		combat.WithStaleConfig(data.Stale),
		combat.WithDebug(config.DebugOptions{LogHits: *logHits}),
	)
	if err != nil {
		log.Fatalf("Failed to build bout: %v", err)
	}

	var loop *sim.GameLoop
	loop = sim.NewGameLoop(func() {
		bout.Step()
		if bout.Over() || bout.Tally().Ticks >= *ticks {
			loop.Stop()
		}
	}, *rate)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted")
		loop.Stop()
	}()

	log.Printf("Simulating %q for up to %d ticks (bout %s)", a.Name, *ticks, bout.ID)
	loop.Run()
	log.Printf("Result %s: %s", bout.ID, bout.Tally())
}

func loadCombatData(path string) (*config.CombatData, error) {
	if path == "" {
		return assets.LoadCombatData()
	}
	return config.LoadCatalog(path)
}

func loadArena(name string) (*arena.Arena, error) {
	if filepath.Ext(name) != ".tmx" {
		return assets.LoadArena(name)
	}
	return arena.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}
