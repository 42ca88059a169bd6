// Package arena parses TMX arenas into plain data shared by the sandbox and
// the headless simulator. It has no dependencies on ebitengine, donburi, or
// resolv.
package arena

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX file.
const (
	LayerWalls     = "Walls"
	LayerPlatforms = "Platforms"
	LayerSpawns    = "Spawns"
)

var ErrNoSpawns = errors.New("arena has no spawn points")

// Arena holds everything the combat sandbox needs from a map.
type Arena struct {
	Name      string
	Width     int
	Height    int
	Walls     []Rect
	Platforms []Rect
	Spawns    []Spawn
}

// Rect is an axis-aligned solid in map pixels.
type Rect struct {
	X, Y, W, H float64
}

// Spawn is where a combatant enters the arena.
type Spawn struct {
	X, Y       float64
	Index      int
	Archetype  string // config archetype name; empty means fighter
	Controlled bool   // driven by local input instead of a brain
}

// Load parses one TMX file. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	a := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  m.Width * m.TileWidth,
		Height: m.Height * m.TileHeight,
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case LayerWalls:
			for _, o := range og.Objects {
				a.Walls = append(a.Walls, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case LayerPlatforms:
			for _, o := range og.Objects {
				a.Platforms = append(a.Platforms, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case LayerSpawns:
			for _, o := range og.Objects {
				a.Spawns = append(a.Spawns, Spawn{
					X:          o.X,
					Y:          o.Y,
					Index:      o.Properties.GetInt("spawnIndex"),
					Archetype:  o.Properties.GetString("archetype"),
					Controlled: o.Properties.GetBool("controlled"),
				})
			}
		}
	}

	// Spawn order is by index, then left-to-right
	sort.SliceStable(a.Spawns, func(i, j int) bool {
		if a.Spawns[i].Index != a.Spawns[j].Index {
			return a.Spawns[i].Index < a.Spawns[j].Index
		}
		return a.Spawns[i].X < a.Spawns[j].X
	})

	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("arena %s: %w", a.Name, err)
	}
	return a, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}
	sort.Strings(names)
	return arenas, names, nil
}

// Validate rejects arenas nobody can fight in.
func (a *Arena) Validate() error {
	var errs []error
	if a.Width <= 0 || a.Height <= 0 {
		errs = append(errs, fmt.Errorf("bad size %dx%d", a.Width, a.Height))
	}
	if len(a.Spawns) == 0 {
		errs = append(errs, ErrNoSpawns)
	}
	for i, w := range a.Walls {
		if w.W <= 0 || w.H <= 0 {
			errs = append(errs, fmt.Errorf("wall %d has no area", i))
		}
	}
	for i, p := range a.Platforms {
		if p.W <= 0 || p.H <= 0 {
			errs = append(errs, fmt.Errorf("platform %d has no area", i))
		}
	}
	return errors.Join(errs...)
}

// Default is a flat box with two spawns, used when no map is available.
func Default(width, height int) *Arena {
	w, h := float64(width), float64(height)
	return &Arena{
		Name:   "default",
		Width:  width,
		Height: height,
		Walls: []Rect{
			{X: 0, Y: h - 32, W: w, H: 32},
			{X: -16, Y: 0, W: 16, H: h},
			{X: w, Y: 0, W: 16, H: h},
		},
		Spawns: []Spawn{
			{X: w * 0.3, Y: h - 80, Index: 0, Archetype: "fighter", Controlled: true},
			{X: w * 0.7, Y: h - 80, Index: 1, Archetype: "dummy"},
		},
	}
}
