package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// BrainData drives a scripted combatant: walk toward Target and cycle
// through Pattern whenever an attack is allowed.
type BrainData struct {
	Target  donburi.Entity
	Pattern []config.AttackCategory
	Next    int

	Range     float64 // horizontal distance at which the brain attacks
	Cooldown  float64 // seconds between attacks
	Wait      float64
	ChargeFor float64 // seconds a smash is held before release
	Held      float64
}

var Brain = donburi.NewComponentType[BrainData]()
