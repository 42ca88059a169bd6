package combat

import "github.com/yohamta/donburi"

// CombatantData ties an entity to its facade so systems can reach it.
type CombatantData struct {
	Name   string
	Facade *Facade
}

var Combatant = donburi.NewComponentType[CombatantData]()
