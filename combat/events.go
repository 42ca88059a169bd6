package combat

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// Notifications are queued into the world and delivered when the caller
// drains them (events.ProcessAllEvents) once per tick. Subscribers get no
// ordering guarantee and return nothing.

type DamageReceivedEvent struct {
	Target    donburi.Entity
	Damage    float64
	Direction math2.Vec2
	Force     float64
}

type HealthChangedEvent struct {
	Target donburi.Entity
	Health float64
}

type HitstunChangedEvent struct {
	Target    donburi.Entity
	InHitstun bool
}

// DefeatedEvent fires once when a defeatable entity's health reaches zero.
type DefeatedEvent struct {
	Target donburi.Entity
}

// HitLandedEvent is published on the attacker side for every accepted hit.
type HitLandedEvent struct {
	Attacker donburi.Entity
	Target   donburi.Entity
	Attack   string
	Damage   float64
	Lethal   bool
}

var (
	DamageReceived = events.NewEventType[DamageReceivedEvent]()
	HealthChanged  = events.NewEventType[HealthChangedEvent]()
	HitstunChanged = events.NewEventType[HitstunChangedEvent]()
	Defeated       = events.NewEventType[DefeatedEvent]()
	HitLanded      = events.NewEventType[HitLandedEvent]()
)
