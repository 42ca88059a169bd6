package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/brawlcore/arena"
	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/combat"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/input"
	"github.com/automoto/brawlcore/render"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/automoto/brawlcore/tags"
	"github.com/automoto/brawlcore/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is a training arena: the local player fights the arena's
// other combatants with every debug aid available.
type SandboxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arenaName    string
	panel        *ui.DebugPanel
	once         sync.Once

	restartArena string
	backToMenu   bool
}

// NewSandboxScene creates a sandbox for the named bundled arena
func NewSandboxScene(sc SceneChanger, arenaName string) *SandboxScene {
	return &SandboxScene{sceneChanger: sc, arenaName: arenaName}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
	s.panel.Update()

	if s.restartArena != "" {
		s.sceneChanger.ChangeScene(NewSandboxScene(s.sceneChanger, s.restartArena))
		return
	}
	if s.backToMenu {
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
	}
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	if s.panel.Visible {
		s.panel.UI.Draw(screen)
	}
}

func (s *SandboxScene) configure() {
	data, err := assets.LoadCombatData()
	if err != nil {
		log.Printf("Warning: bundled catalog unusable, using defaults: %v", err)
		data = &cfg.CombatData{Catalog: cfg.DefaultCatalog(), Stale: cfg.Stale, Archetypes: cfg.Archetypes}
	}
	cfg.Archetypes = data.Archetypes
	cfg.Stale = data.Stale

	a, err := assets.LoadArena(s.arenaName)
	if err != nil {
		log.Printf("Warning: %v; using the default arena", err)
		a = arena.Default(cfg.C.Width, cfg.C.Height)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and sandbox controls run first so the combat systems see this
	// frame's presses.
	ecs.AddSystem(input.Update)
	ecs.AddSystem(s.updateShortcuts)
	systems.AddCombatSystems(ecs)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, render.DrawArena)
	ecs.AddRenderer(cfg.Default, render.DrawCombatants)
	ecs.AddRenderer(cfg.Default, render.DrawHealthBars)
	ecs.AddRenderer(cfg.Default, render.DrawDebug)
	ecs.AddRenderer(cfg.Default, render.DrawHUD)

	s.ecs = ecs

	fighters := factory.CreateArena(ecs, a, data.Catalog,
		combat.WithStaleConfig(data.Stale),
		combat.WithDebug(cfg.Debug),
		combat.WithLogger(log.Default()),
	)
	factory.CreateCamera(ecs, a.Width, a.Height)
	systems.RegisterCombatFeedback(ecs.World)
	systems.RegisterDefeats(ecs.World)

	// Everyone but the player and dummies fights the player.
	if player, ok := tags.Player.First(ecs.World); ok {
		for _, f := range fighters {
			if f.HasComponent(tags.Player) || f.HasComponent(tags.Dummy) {
				continue
			}
			factory.AttachBrain(f, player.Entity())
		}
	}

	s.panel = ui.NewDebugPanel(cfg.Debug, assets.ArenaNames(), a.Name)
	s.panel.OnOptions = s.applyDebug
	s.panel.OnResetStale = s.resetStaling
	s.panel.OnRestart = func(name string) { s.restartArena = name }
}

// updateShortcuts handles the sandbox keys that are not combat input.
func (s *SandboxScene) updateShortcuts(e *ecs.ECS) {
	in := input.Get(e)

	if in.Action(cfg.ActionTogglePanel).JustPressed {
		s.panel.Visible = !s.panel.Visible
	}
	if in.Action(cfg.ActionMenuBack).JustPressed {
		s.backToMenu = true
	}
	if in.Action(cfg.ActionRestart).JustPressed {
		s.restartArena = s.arenaName
	}
	if in.Action(cfg.ActionResetStale).JustPressed {
		s.resetStaling()
	}

	opts := cfg.Debug
	if in.Action(cfg.ActionToggleHitboxes).JustPressed {
		opts.ShowHitboxes = !opts.ShowHitboxes
	}
	if in.Action(cfg.ActionToggleHurtboxes).JustPressed {
		opts.ShowHurtboxes = !opts.ShowHurtboxes
	}
	if opts != cfg.Debug {
		s.applyDebug(opts)
		s.panel.SetOptions(opts)
	}
}

// applyDebug pushes new toggles to the renderers, every facade and disk.
func (s *SandboxScene) applyDebug(opts cfg.DebugOptions) {
	cfg.Debug = opts
	combat.Combatant.Each(s.ecs.World, func(e *donburi.Entry) {
		if f := combat.Combatant.Get(e).Facade; f != nil {
			f.SetDebug(opts)
		}
	})
	if err := systems.SaveDebugOptions(opts); err != nil {
		log.Printf("Warning: debug options not saved: %v", err)
	}
}

func (s *SandboxScene) resetStaling() {
	tags.Player.Each(s.ecs.World, func(e *donburi.Entry) {
		if f := combat.Combatant.Get(e).Facade; f != nil {
			f.ResetStaling()
		}
	})
}
