package config

// AttackPhase is the phase of a combatant's attack state machine.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseCharging
	PhaseAttacking
	PhaseRecovery
)

var phaseNames = map[AttackPhase]string{
	PhaseIdle:      "idle",
	PhaseCharging:  "charging",
	PhaseAttacking: "attacking",
	PhaseRecovery:  "recovery",
}

func (p AttackPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}
