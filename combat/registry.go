package combat

// HitRegistry guarantees one damage application per (swing, target) pair.
type HitRegistry struct {
	targets map[uint64]struct{}
}

// NewHitRegistry wraps an existing set, typically the combat state's HitTargets.
func NewHitRegistry(targets map[uint64]struct{}) *HitRegistry {
	if targets == nil {
		targets = make(map[uint64]struct{})
	}
	return &HitRegistry{targets: targets}
}

// BeginWindow starts a fresh swing. Hits from an earlier window never carry over.
func (r *HitRegistry) BeginWindow() {
	clear(r.targets)
}

// TryRegisterHit reports whether id has not yet been hit this swing, and
// records it.
func (r *HitRegistry) TryRegisterHit(id uint64) bool {
	if _, hit := r.targets[id]; hit {
		return false
	}
	r.targets[id] = struct{}{}
	return true
}

func (r *HitRegistry) EndWindow() {
	clear(r.targets)
}

func (r *HitRegistry) Len() int {
	return len(r.targets)
}

func (r *HitRegistry) Contains(id uint64) bool {
	_, ok := r.targets[id]
	return ok
}
