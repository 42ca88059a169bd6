package components

import "github.com/yohamta/donburi"

// DeathData marks a defeated combatant. Timer counts down in seconds; when it
// reaches 0 the combatant respawns at its SpawnData.
type DeathData struct {
	Timer float64
}

// SpawnData is where a combatant entered the arena, feet position.
type SpawnData struct {
	X, Y float64
}

var Death = donburi.NewComponentType[DeathData]()
var Spawn = donburi.NewComponentType[SpawnData]()
