package systems

import (
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances hit flashes and health bar lifetimes.
func UpdateEffects(ecs *ecs.ECS) {
	dt := tickDelta()

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Tween == nil {
			return
		}
		value, done := flash.Tween.Update(float32(dt))
		flash.Intensity = value
		if done {
			flash.Tween = nil
			flash.Intensity = 0
		}
	})

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive > 0 {
			bar.TimeToLive -= dt
		}
	})
}
