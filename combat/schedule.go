package combat

import "sort"

// ScheduledKind names a deferred action the facade performs inside its Tick.
type ScheduledKind int

const (
	// EventArmHitbox lets the open window start accepting overlaps.
	EventArmHitbox ScheduledKind = iota
)

// ScheduledEvent fires once Remaining reaches zero.
type ScheduledEvent struct {
	Kind      ScheduledKind
	Remaining float64
	seq       int
}

// Scheduler is an explicit list of delayed actions. Nothing runs on its own:
// the owner calls Advance from its tick and handles what comes back.
type Scheduler struct {
	pending []ScheduledEvent
	seq     int
}

func (s *Scheduler) After(delay float64, kind ScheduledKind) {
	s.seq++
	s.pending = append(s.pending, ScheduledEvent{Kind: kind, Remaining: delay, seq: s.seq})
}

// Advance moves time forward and returns the kinds that came due, earliest first.
func (s *Scheduler) Advance(dt float64) []ScheduledKind {
	if len(s.pending) == 0 {
		return nil
	}
	var due []ScheduledEvent
	kept := s.pending[:0]
	for _, ev := range s.pending {
		ev.Remaining -= dt
		if ev.Remaining <= 0 {
			due = append(due, ev)
			continue
		}
		kept = append(kept, ev)
	}
	s.pending = kept
	if len(due) == 0 {
		return nil
	}
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].Remaining != due[j].Remaining {
			return due[i].Remaining < due[j].Remaining
		}
		return due[i].seq < due[j].seq
	})
	kinds := make([]ScheduledKind, len(due))
	for i, ev := range due {
		kinds[i] = ev.Kind
	}
	return kinds
}

// Cancel drops every pending event of kind.
func (s *Scheduler) Cancel(kind ScheduledKind) {
	kept := s.pending[:0]
	for _, ev := range s.pending {
		if ev.Kind != kind {
			kept = append(kept, ev)
		}
	}
	s.pending = kept
}

func (s *Scheduler) Clear() {
	s.pending = s.pending[:0]
}

func (s *Scheduler) Pending(kind ScheduledKind) bool {
	for _, ev := range s.pending {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func (s *Scheduler) Len() int {
	return len(s.pending)
}
