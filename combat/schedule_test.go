package combat

import "testing"

func TestSchedulerAdvance(t *testing.T) {
	var s Scheduler
	s.After(0.1, EventArmHitbox)

	if due := s.Advance(0.05); len(due) != 0 {
		t.Fatalf("nothing should be due yet, got %v", due)
	}
	if !s.Pending(EventArmHitbox) {
		t.Fatal("event should still be pending")
	}
	due := s.Advance(0.05)
	if len(due) != 1 || due[0] != EventArmHitbox {
		t.Fatalf("due = %v, want [EventArmHitbox]", due)
	}
	if s.Len() != 0 {
		t.Errorf("fired events must be removed, %d left", s.Len())
	}
}

func TestSchedulerCancelAndClear(t *testing.T) {
	var s Scheduler
	s.After(0.1, EventArmHitbox)
	s.After(0.2, EventArmHitbox)
	s.Cancel(EventArmHitbox)
	if due := s.Advance(1); len(due) != 0 {
		t.Errorf("cancelled events fired: %v", due)
	}

	s.After(0.1, EventArmHitbox)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear left %d events", s.Len())
	}
}

func TestSchedulerDueOrder(t *testing.T) {
	var s Scheduler
	s.After(0.3, EventArmHitbox)
	s.After(0.1, EventArmHitbox)
	s.After(0.2, EventArmHitbox)
	if due := s.Advance(0.5); len(due) != 3 {
		t.Fatalf("want all three due, got %d", len(due))
	}
	if s.Len() != 0 {
		t.Errorf("%d events left", s.Len())
	}
}

func TestQuantizeDirection(t *testing.T) {
	tests := []struct {
		x, y float64
		want string
	}{
		{0, 0, ""},
		{1, 0, "forward"},
		{-1, 0, "forward"},
		{0, -1, "up"},
		{1, -1, "up_diagonal"},
		{-1, -1, "up_diagonal"},
		{1, 1, "down_diagonal"},
		{0, 1, "down"},
	}
	for _, tt := range tests {
		got := QuantizeDirection(vec(tt.x, tt.y)).String()
		if got != tt.want {
			t.Errorf("QuantizeDirection(%v, %v) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}
