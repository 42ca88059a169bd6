package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData tracks the hit flash drawn over a combatant. Intensity runs from
// 1 down to 0 along Tween.
type FlashData struct {
	Tween     *gween.Tween
	Intensity float32
}

var Flash = donburi.NewComponentType[FlashData]()
