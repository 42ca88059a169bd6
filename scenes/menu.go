package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/brawlcore/assets"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/fonts"
	"github.com/automoto/brawlcore/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var (
	menuTitleColor    = color.RGBA{255, 255, 255, 255}
	menuSelectedColor = color.RGBA{255, 200, 0, 255}
	menuNormalColor   = color.RGBA{160, 160, 160, 255}
)

// MenuScene lets the player pick an arena
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	arenas       []string
	selected     int
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.arenas = assets.ArenaNames()
	for i, name := range ms.arenas {
		if name == cfg.Arena.DefaultMap {
			ms.selected = i
		}
	}

	ms.ecs.AddSystem(input.Update)
	ms.ecs.AddSystem(ms.updateMenu)
	ms.ecs.AddRenderer(cfg.Default, ms.drawMenu)
}

func (ms *MenuScene) updateMenu(e *ecs.ECS) {
	in := input.Get(e)
	if len(ms.arenas) == 0 {
		if in.Action(cfg.ActionMenuSelect).JustPressed {
			ms.sceneChanger.ChangeScene(NewSandboxScene(ms.sceneChanger, ""))
		}
		return
	}

	if in.Action(cfg.ActionMenuUp).JustPressed {
		ms.selected = (ms.selected - 1 + len(ms.arenas)) % len(ms.arenas)
	}
	if in.Action(cfg.ActionMenuDown).JustPressed {
		ms.selected = (ms.selected + 1) % len(ms.arenas)
	}
	if in.Action(cfg.ActionMenuSelect).JustPressed {
		ms.sceneChanger.ChangeScene(NewSandboxScene(ms.sceneChanger, ms.arenas[ms.selected]))
	}
}

func (ms *MenuScene) drawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())

	drawCentered(screen, "BRAWL SANDBOX", fonts.Title.Get(), width, 60, menuTitleColor)
	y := 130.0
	for i, name := range ms.arenas {
		c := menuNormalColor
		label := name
		if i == ms.selected {
			c = menuSelectedColor
			label = "> " + name + " <"
		}
		drawCentered(screen, label, fonts.Regular.Get(), width, y, c)
		y += 24
	}
	drawCentered(screen, "up/down to choose, enter to fight", fonts.Small.Get(), width, float64(screen.Bounds().Dy())-30, menuNormalColor)
}

func drawCentered(screen *ebiten.Image, s string, face text.Face, width, y float64, c color.Color) {
	w, _ := text.Measure(s, face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((width-w)/2, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
