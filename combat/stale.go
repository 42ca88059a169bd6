package combat

import (
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/tanema/gween/ease"
)

// StaleTracker decays a move's damage and knockback while it is repeated
// inside the decay window and eases it back to full strength afterwards.
//
// Curve: the first use in a streak is fresh (1.0). Every use within
// DecayWindow of the previous one removes Step from the next use, floored at
// MinMultiplier.
// Once a move has been idle for DecayWindow it recovers from its floor to 1.0
// over RecoveryTime following ease.OutQuad, and its streak resets.
type StaleTracker struct {
	data *components.StaleData
	cfg  config.StaleConfig
}

func NewStaleTracker(data *components.StaleData, cfg config.StaleConfig) *StaleTracker {
	if data.Records == nil {
		data.Records = make(map[string]*components.StaleRecord)
	}
	return &StaleTracker{data: data, cfg: cfg}
}

// GetStaleMultiplier returns 1 for unknown moves or when staling is disabled.
func (s *StaleTracker) GetStaleMultiplier(moveName string) float64 {
	if !s.cfg.Enabled {
		return 1
	}
	if r, ok := s.data.Records[moveName]; ok {
		return r.Multiplier
	}
	return 1
}

// RecordUse counts one use of moveName at time now.
func (s *StaleTracker) RecordUse(moveName string, now float64) {
	if !s.cfg.Enabled {
		return
	}
	r, ok := s.data.Records[moveName]
	if !ok {
		r = &components.StaleRecord{MoveName: moveName, Multiplier: 1, Floor: 1}
		s.data.Records[moveName] = r
	}

	if r.UseCount > 0 && now-r.LastUseTime > s.cfg.DecayWindow {
		r.UseCount = 0
	}
	r.UseCount++
	r.LastUseTime = now

	// The stored value is what the next use of the move will read.
	m := 1 - s.cfg.Step*float64(r.UseCount)
	if m < s.cfg.MinMultiplier {
		m = s.cfg.MinMultiplier
	}
	r.Multiplier = m
	r.Floor = m
}

// Update applies time-based recovery to every record.
func (s *StaleTracker) Update(now float64) {
	if !s.cfg.Enabled {
		return
	}
	for _, r := range s.data.Records {
		idle := now - r.LastUseTime - s.cfg.DecayWindow
		if idle <= 0 || r.Floor >= 1 {
			continue
		}
		if s.cfg.RecoveryTime <= 0 || idle >= s.cfg.RecoveryTime {
			r.Multiplier = 1
			r.Floor = 1
			r.UseCount = 0
			continue
		}
		eased := ease.OutQuad(float32(idle), float32(r.Floor), float32(1-r.Floor), float32(s.cfg.RecoveryTime))
		r.Multiplier = clamp(float64(eased), r.Floor, 1)
	}
}

// Reset forgets all usage history.
func (s *StaleTracker) Reset() {
	clear(s.data.Records)
}

// Record returns a copy of the record for moveName.
func (s *StaleTracker) Record(moveName string) (components.StaleRecord, bool) {
	r, ok := s.data.Records[moveName]
	if !ok {
		return components.StaleRecord{}, false
	}
	return *r, true
}
