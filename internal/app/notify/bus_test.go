package notify

import (
	"testing"
	"time"
)

func TestPushAndActive_Order(t *testing.T) {
	b := NewBus(0)

	b.Success("first")
	b.Error("second")
	b.Info("third")

	got := b.Active()
	if len(got) != 3 {
		t.Fatalf("Active() len = %d, want 3", len(got))
	}
	want := []string{"first", "second", "third"}
	for i, msg := range want {
		if got[i].Message != msg {
			t.Errorf("Active()[%d].Message = %q, want %q", i, got[i].Message, msg)
		}
	}
	if got[0].Kind != KindSuccess || got[1].Kind != KindError || got[2].Kind != KindInfo {
		t.Errorf("kinds = %v %v %v, want success error info", got[0].Kind, got[1].Kind, got[2].Kind)
	}
}

func TestDismiss_RemovesOnlyTarget(t *testing.T) {
	b := NewBus(0)

	b.Success("keep one")
	id := b.Error("drop me")
	b.Info("keep two")

	b.Dismiss(id)

	got := b.Active()
	if len(got) != 2 {
		t.Fatalf("Active() len = %d, want 2", len(got))
	}
	if got[0].Message != "keep one" || got[1].Message != "keep two" {
		t.Errorf("Active() = %+v, want insertion order preserved", got)
	}

	// Unknown ids are a no-op.
	b.Dismiss("not-there")
	if len(b.Active()) != 2 {
		t.Error("Dismiss of unknown id changed the queue")
	}
}

func TestActive_ExpiresByTTL(t *testing.T) {
	b := NewBus(5 * time.Second)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return current }

	b.Success("early")
	current = current.Add(3 * time.Second)
	b.Info("late")

	current = current.Add(3 * time.Second) // early is now 6s old, late 3s
	got := b.Active()
	if len(got) != 1 || got[0].Message != "late" {
		t.Fatalf("Active() = %+v, want only the late notice", got)
	}

	current = current.Add(10 * time.Second)
	if got := b.Active(); len(got) != 0 {
		t.Errorf("Active() = %+v, want empty after full expiry", got)
	}
}

func TestPush_IDsAreUnique(t *testing.T) {
	b := NewBus(0)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := b.Info("n")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
