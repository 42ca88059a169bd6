// components/melee.go
package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// CombatStateData is the attacker side of one combatant.
type CombatStateData struct {
	Phase        config.AttackPhase
	ActiveAttack config.AttackProfile // scaled copy of the catalog row
	HasAttack    bool
	Direction    config.AttackDirection

	PhaseTimer       float64 // counts down in Attacking and Recovery
	ChargeElapsed    float64
	ChargeMultiplier float64 // clamped to [1, ActiveAttack.MaxChargeMultiplier]
	StaleMultiplier  float64 // applied when the swing committed

	HitTargets  map[uint64]struct{} // identities damaged by the current swing
	WindowOpen  bool
	HitboxArmed bool

	Clock float64 // seconds since the combatant was created
}

// NewCombatState returns an idle state.
func NewCombatState() CombatStateData {
	return CombatStateData{
		Phase:            config.PhaseIdle,
		ChargeMultiplier: 1,
		StaleMultiplier:  1,
		HitTargets:       make(map[uint64]struct{}),
	}
}

var CombatState = donburi.NewComponentType[CombatStateData]()
