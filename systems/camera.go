package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdateCamera follows the player, or the middle of the fight when there is
// none, keeping the view inside the world.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if target, ok := cameraTarget(e.World); ok {
		screenWidth := float64(config.C.Width)
		screenHeight := float64(config.C.Height)

		targetX := clampView(target.X, screenWidth, camera.Bounds.X)
		targetY := clampView(target.Y, screenHeight, camera.Bounds.Y)

		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	}

	updateScreenShake(cameraEntry, camera)
}

// clampView keeps a view of size view centered on pos inside [0, world]. A
// world smaller than the view stays centered.
func clampView(pos, view, world float64) float64 {
	if world <= view {
		return world / 2
	}
	return math.Max(view/2, math.Min(world-view/2, pos))
}

func cameraTarget(w donburi.World) (math2.Vec2, bool) {
	if player, ok := tags.Player.First(w); ok && player.HasComponent(components.Object) {
		return components.Object.Get(player).Center(), true
	}

	var sum math2.Vec2
	n := 0
	tags.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Object.Get(e).Center()
		sum.X += c.X
		sum.Y += c.Y
		n++
	})
	if n == 0 {
		return math2.Vec2{}, false
	}
	return math2.NewVec2(sum.X/float64(n), sum.Y/float64(n)), true
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake; a weaker shake never replaces a
// stronger one still running.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || intensity <= 0 || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	donburi.Add(cameraEntry, components.ScreenShake, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
