package tags

import "github.com/yohamta/donburi"

var (
	Combatant = donburi.NewTag().SetName("Combatant")
	Player    = donburi.NewTag().SetName("Player")
	Dummy     = donburi.NewTag().SetName("Dummy")
	Wall      = donburi.NewTag().SetName("Wall")
	Platform  = donburi.NewTag().SetName("Platform")
)

// Resolv tags for collision and hit detection
const (
	ResolvSolid     = "solid"
	ResolvPlatform  = "platform"
	ResolvCharacter = "character"
	ResolvHurtbox   = "Hurtbox"
	ResolvHitbox    = "Hitbox"
)
