package systems

import (
	"github.com/automoto/brawlcore/combat"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// UpdatePlayer turns the polled InputData into facade calls for every
// player-tagged combatant. It must run after input polling and before
// UpdateCombat.
func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	tags.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		facade := combat.Combatant.Get(playerEntry).Facade
		if facade == nil || isDown(playerEntry) {
			return
		}
		handlePlayerInput(input, facade, components.Movement.Get(playerEntry))
	})
}

func handlePlayerInput(input *components.InputData, facade *combat.Facade, move *components.MovementData) {
	left := input.Action(cfg.ActionMoveLeft)
	right := input.Action(cfg.ActionMoveRight)

	// A held smash ends on release even if the charge was started this frame.
	if input.Action(cfg.ActionSmash).JustReleased && facade.IsCharging() {
		facade.SmashAttackRelease()
	}

	// Horizontal movement is locked while swinging or charging.
	move.Desired = 0
	if move.SelfPropelled && !facade.IsAttacking() && !facade.IsCharging() {
		if left.Pressed {
			move.Desired--
		}
		if right.Pressed {
			move.Desired++
		}
	}

	if input.Action(cfg.ActionJump).JustPressed && !facade.IsAttacking() {
		move.Jump(cfg.Arena.JumpSpeed)
	}

	switch {
	case input.Action(cfg.ActionLight).JustPressed:
		if move.OnGround {
			facade.LightAttack()
		} else {
			facade.AerialAttack()
		}
	case input.Action(cfg.ActionTilt).JustPressed:
		facade.TiltAttack(aimDirection(input, move.Facing))
	case input.Action(cfg.ActionSmash).JustPressed:
		facade.SmashAttackStart()
	}
}

// aimDirection builds the screen-space tilt input from the held directions.
// With nothing held the tilt goes forward.
func aimDirection(input *components.InputData, facing float64) math2.Vec2 {
	var dir math2.Vec2
	if input.Current[cfg.ActionMoveLeft] {
		dir.X--
	}
	if input.Current[cfg.ActionMoveRight] {
		dir.X++
	}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y--
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y++
	}
	if dir.X == 0 && dir.Y == 0 {
		dir.X = facing
	}
	return dir
}
