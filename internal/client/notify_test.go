package client

import (
	"testing"
	"time"
)

func TestNotifierPushAndExpiry(t *testing.T) {
	current := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	n := NewNotifier(5 * time.Second)
	n.now = func() time.Time { return current }

	n.Push(NotificationInfo, "first")
	current = current.Add(3 * time.Second)
	n.Push(NotificationSuccess, "second")

	active := n.Active()
	if len(active) != 2 {
		t.Fatalf("expected 2 active, got %d", len(active))
	}
	if active[0].Message != "first" || active[1].Message != "second" {
		t.Errorf("order mismatch: %+v", active)
	}
	if active[0].ID == active[1].ID {
		t.Error("notifications share an ID")
	}

	// 3s later "first" is 6s old and expired, "second" is 3s old
	current = current.Add(3 * time.Second)
	active = n.Active()
	if len(active) != 1 {
		t.Fatalf("expected 1 active after expiry, got %d", len(active))
	}
	if active[0].Message != "second" {
		t.Errorf("wrong survivor: %+v", active[0])
	}

	current = current.Add(10 * time.Second)
	if active = n.Active(); len(active) != 0 {
		t.Errorf("expected none active, got %d", len(active))
	}
}

func TestNotifierStartTipsIdempotent(t *testing.T) {
	n := NewNotifier(time.Minute)
	defer n.Stop()

	if err := n.StartTips("strength"); err != nil {
		t.Fatalf("StartTips: %v", err)
	}
	// Second call is a no-op, not a second schedule
	if err := n.StartTips("cardio"); err != nil {
		t.Fatalf("StartTips again: %v", err)
	}
}

func TestNotifierStopWithoutStart(t *testing.T) {
	n := NewNotifier(time.Minute)
	n.Stop()
}
