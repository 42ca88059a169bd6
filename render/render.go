// Package render draws the sandbox: arena solids, combatants, health bars,
// debug boxes and the HUD. Every function matches ecs.Renderer.
package render

import (
	"image/color"

	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var platformColor = color.RGBA{140, 120, 90, 255}

// view converts world coordinates to screen coordinates.
type view struct {
	offX, offY float64
}

func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	return float32(x + v.offX), float32(y + v.offY), float32(w), float32(h)
}

func viewOf(w donburi.World, screen *ebiten.Image) view {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return view{}
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return view{
		offX: float64(width)/2 - camera.Position.X,
		offY: float64(height)/2 - camera.Position.Y,
	}
}

// DrawArena renders walls as solid blocks and platforms as ledges.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	v := viewOf(ecs.World, screen)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)
		vector.FillRect(screen, x, y, w, h, cfg.Grey, false)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		x, y, w, _ := v.rect(o.X, o.Y, o.W, o.H)
		vector.FillRect(screen, x, y, w, 3, platformColor, false)
	})
}

// DrawCombatants renders each body tinted by archetype, flashing white when
// hit and outlined while charging.
func DrawCombatants(ecs *ecs.ECS, screen *ebiten.Image) {
	v := viewOf(ecs.World, screen)

	tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		m := components.Movement.Get(e)
		hp := components.Health.Get(e)
		x, y, w, h := v.rect(o.X, o.Y, o.W, o.H)

		tint := cfg.Archetypes[combat.Combatant.Get(e).Name].TintColor
		if tint.A == 0 {
			tint = cfg.White
		}
		if hp.InHitstun {
			tint = scale(tint, 0.6)
		}
		tint = flashTint(tint, components.Flash.Get(e).Intensity)
		vector.FillRect(screen, x, y, w, h, tint, false)

		// Eye on the facing side.
		eyeX := x + w - 5
		if m.Facing < 0 {
			eyeX = x + 2
		}
		vector.FillRect(screen, eyeX, y+6, 3, 3, color.Black, false)

		if f := combat.Combatant.Get(e).Facade; f != nil && f.IsCharging() {
			stroke := 1 + 2*float32(f.ChargeProgress())
			vector.StrokeRect(screen, x-2, y-2, w+4, h+4, stroke, cfg.Yellow, false)
		}
	})
}

// DrawHealthBars renders a bar above every combatant hit recently.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	v := viewOf(ecs.World, screen)

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if components.HealthBar.Get(e).TimeToLive <= 0 || !e.HasComponent(components.Health) {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)

		barWidth := 32.0
		barHeight := 4.0
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4

		healthPercentage := 0.0
		if hp.Max > 0 {
			healthPercentage = hp.Current / hp.Max
		}

		x, y, w, h := v.rect(barX, barY, barWidth, barHeight)
		vector.FillRect(screen, x, y, w, h, cfg.Red, false)
		vector.FillRect(screen, x, y, w*float32(healthPercentage), h, cfg.Green, false)
	})
}

func scale(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// flashTint blends c toward white by intensity in [0, 1].
func flashTint(c color.RGBA, intensity float32) color.RGBA {
	if intensity <= 0 {
		return c
	}
	if intensity > 1 {
		intensity = 1
	}
	lerp := func(v uint8) uint8 {
		return uint8(float32(v) + (255-float32(v))*intensity)
	}
	return color.RGBA{R: lerp(c.R), G: lerp(c.G), B: lerp(c.B), A: c.A}
}
