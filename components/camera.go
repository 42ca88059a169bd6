package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the center of the view in world space. Bounds is the size of
// the world the view is clamped to.
type CameraData struct {
	Position math.Vec2
	Bounds   math.Vec2
}

// ScreenShakeData is a decaying shake in frames.
type ScreenShakeData struct {
	Intensity float64
	Duration  int
	Elapsed   int
}

var Camera = donburi.NewComponentType[CameraData]()
var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
