package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/fonts"
	"github.com/automoto/brawlcore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 10
	hudMargin    = 10
	hudLine      = 14
)

var (
	hudBackground = color.RGBA{40, 40, 40, 255}
	hudHealth     = color.RGBA{40, 220, 40, 255}
	hudCharge     = color.RGBA{255, 200, 0, 255}
	hudDim        = color.RGBA{150, 150, 150, 255}
)

const controlsHint = "move A/D  jump SPACE  light J  tilt K  smash L (hold)  F1 hitboxes  F2 hurtboxes  F3 unstale  TAB panel  R reset"

// DrawHUD renders the player's health, attack phase, charge and the stale
// multiplier of every catalog move, plus the damage of everyone else.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	facade := combat.Combatant.Get(playerEntry).Facade
	hp := components.Health.Get(playerEntry)
	face := fonts.Mono.Get()

	x, y := float32(hudMargin), float32(hudMargin)
	vector.FillRect(screen, x, y, hudBarWidth, hudBarHeight, hudBackground, false)
	if hp.Max > 0 {
		vector.FillRect(screen, x, y, hudBarWidth*float32(hp.Current/hp.Max), hudBarHeight, hudHealth, false)
	}
	drawText(screen, face, fmt.Sprintf("%.0f/%.0f  %.0f%%", hp.Current, hp.Max, hp.DamagePercent), x+hudBarWidth+6, y-2, cfg.White)
	y += hudBarHeight + 4

	if facade == nil {
		return
	}
	status := facade.Phase().String()
	if attack, ok := facade.CurrentAttack(); ok {
		status += " " + attack.Name
	}
	if hp.InHitstun {
		status += " (stunned)"
	}
	drawText(screen, face, status, x, y, cfg.White)
	y += hudLine

	if facade.IsCharging() {
		vector.FillRect(screen, x, y+2, hudBarWidth, 4, hudBackground, false)
		vector.FillRect(screen, x, y+2, hudBarWidth*float32(facade.ChargeProgress()), 4, hudCharge, false)
		y += 8
	}

	for _, row := range facade.Catalog().Rows() {
		m := facade.StaleMultiplier(row.Name)
		c := cfg.White
		if m < 1 {
			c = hudDim
		}
		drawText(screen, face, fmt.Sprintf("%-14s x%.2f", row.Name, m), x, y, c)
		y += hudLine
	}

	drawOpponents(ecs.World, screen, face, playerEntry)
	drawText(screen, fonts.Small.Get(), controlsHint, hudMargin, float32(screen.Bounds().Dy())-14, hudDim)
}

func drawOpponents(w donburi.World, screen *ebiten.Image, face text.Face, player *donburi.Entry) {
	x := float32(screen.Bounds().Dx()) - 150
	y := float32(hudMargin)
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		if e.Entity() == player.Entity() {
			return
		}
		hp := components.Health.Get(e)
		name := combat.Combatant.Get(e).Name
		drawText(screen, face, fmt.Sprintf("%-8s %5.0f%%", name, hp.DamagePercent), x, y, cfg.White)
		y += hudLine
	})
}

func drawText(screen *ebiten.Image, face text.Face, s string, x, y float32, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
