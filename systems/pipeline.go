package systems

import "github.com/yohamta/donburi/ecs"

// AddCombatSystems registers the simulation systems in their required order:
// players and brains issue input, facades tick, then hit detection, movement,
// space refresh, effects, respawns and finally the notification drain.
func AddCombatSystems(ecs *ecs.ECS) {
	ecs.AddSystem(UpdatePlayer)
	ecs.AddSystem(UpdateBrains)
	ecs.AddSystem(UpdateCombat)
	ecs.AddSystem(UpdateCombatHitboxes)
	ecs.AddSystem(UpdateMovement)
	ecs.AddSystem(UpdateObjects)
	ecs.AddSystem(UpdateEffects)
	ecs.AddSystem(UpdateDeaths)
	ecs.AddSystem(ProcessEvents)
}
