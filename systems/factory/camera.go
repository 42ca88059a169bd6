package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the view centered on a world of the given size.
func CreateCamera(ecs *ecs.ECS, worldWidth, worldHeight int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	w, h := float64(worldWidth), float64(worldHeight)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.NewVec2(w/2, h/2),
		Bounds:   math.NewVec2(w, h),
	})
	return camera
}
