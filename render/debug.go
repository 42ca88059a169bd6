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

var (
	hurtboxColor     = color.RGBA{0, 255, 255, 255}
	armedColor       = color.RGBA{255, 40, 40, 255}
	windowOpenColor  = color.RGBA{255, 200, 0, 255}
	solidOutlineGrey = color.RGBA{160, 160, 160, 255}
)

// DrawDebug outlines hurtboxes and hitboxes according to cfg.Debug. An armed
// hitbox is red; a window that is open but not yet armed is amber.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHitboxes && !cfg.Debug.ShowHurtboxes {
		return
	}
	v := viewOf(ecs.World, screen)

	if cfg.Debug.ShowHurtboxes {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			for _, obj := range components.Space.Get(spaceEntry).Objects() {
				c := hurtboxColor
				switch {
				case obj.HasTags(tags.ResolvSolid), obj.HasTags(tags.ResolvPlatform):
					c = solidOutlineGrey
				case !obj.HasTags(tags.ResolvHurtbox):
					continue
				}
				x, y, w, h := v.rect(obj.X, obj.Y, obj.W, obj.H)
				vector.StrokeRect(screen, x, y, w, h, 1, c, false)
			}
		}
	}

	if cfg.Debug.ShowHitboxes {
		tags.Combatant.Each(ecs.World, func(e *donburi.Entry) {
			f := combat.Combatant.Get(e).Facade
			if f == nil || !f.WindowOpen() {
				return
			}
			hb := components.Hitbox.Get(e)
			c := windowOpenColor
			if f.HitboxArmed() {
				c = armedColor
			}
			if hb.Active {
				x, y, w, h := v.rect(hb.Object.X, hb.Object.Y, hb.Object.W, hb.Object.H)
				vector.StrokeRect(screen, x, y, w, h, 1, c, false)
				return
			}
			// Not placed yet: mark the owner instead.
			o := components.Object.Get(e)
			x, y, w, _ := v.rect(o.X, o.Y, o.W, o.H)
			vector.FillRect(screen, x, y-2, w, 1, c, false)
		})
	}
}
