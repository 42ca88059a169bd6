package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// HealthData is the receiving side of one combatant. DamagePercent is derived
// from Current and Max; write health through combat.HitstunController only.
type HealthData struct {
	Current       float64
	Max           float64
	DamagePercent float64

	Invulnerable  bool
	CanBeDefeated bool

	InHitstun        bool
	HitstunTimer     float64
	PendingKnockback math.Vec2
}

type HealthBarData struct {
	// TimeToLive is the number of seconds the health bar stays visible.
	TimeToLive float64
}

// WeightData holds the archetype tunables read when this entity is hit.
type WeightData struct {
	Weight config.WeightProfile
	Damage config.DamageSettings
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
var Weight = donburi.NewComponentType[WeightData]()
