package client

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/trackfit/trackfit/internal/workout"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "trackfit", "state.json"))
}

func TestStoreEmptyState(t *testing.T) {
	store := newTestStore(t)

	session, err := store.Session()
	if err != nil {
		t.Fatalf("Session on missing file: %v", err)
	}
	if session.LoggedIn() {
		t.Error("missing file should mean logged out")
	}

	plan, err := store.Plan()
	if err != nil {
		t.Fatalf("Plan on missing file: %v", err)
	}
	if plan != nil {
		t.Error("missing file should mean no plan")
	}
}

func TestStoreSessionRoundtrip(t *testing.T) {
	store := newTestStore(t)

	in := &Session{
		Token: "jwt-token",
		User:  Profile{ID: "u1", Name: "Alice", Email: "alice@example.com"},
	}
	if err := store.SaveSession(in); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	out, err := store.Session()
	if err != nil {
		t.Fatalf("Session: %v", err)
	}
	if !out.LoggedIn() {
		t.Fatal("saved session should be logged in")
	}
	if out.Token != in.Token || out.User != in.User {
		t.Errorf("roundtrip mismatch: %+v", out)
	}

	if err := store.ClearSession(); err != nil {
		t.Fatalf("ClearSession: %v", err)
	}
	out, err = store.Session()
	if err != nil {
		t.Fatalf("Session after clear: %v", err)
	}
	if out.LoggedIn() {
		t.Error("cleared session should be logged out")
	}
}

func TestStorePlanRoundtripKeepsTimestamps(t *testing.T) {
	store := newTestStore(t)

	created := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	in := &workout.Plan{
		ID:        "p1",
		Name:      "Beginner Strength Plan",
		Goal:      workout.GoalStrength,
		Level:     workout.LevelBeginner,
		CreatedAt: created,
		Days: []workout.Day{
			{Day: "Monday", Completed: true, Exercises: []workout.Exercise{
				{ID: "e1", Name: "Push-ups", Sets: 3, Reps: 10, Equipment: workout.EquipmentNone},
			}},
			{Day: "Thursday"},
		},
		CompletionPercentage: 50,
	}
	if err := store.SavePlan(in); err != nil {
		t.Fatalf("SavePlan: %v", err)
	}

	out, err := store.Plan()
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if out == nil {
		t.Fatal("no plan after save")
	}
	if !out.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", out.CreatedAt, created)
	}
	if len(out.Days) != 2 || !out.Days[0].Completed || out.Days[1].Completed {
		t.Errorf("days mismatch: %+v", out.Days)
	}
	if out.CompletionPercentage != 50 {
		t.Errorf("completion = %d, want 50", out.CompletionPercentage)
	}
	if out.Days[0].Exercises[0].Name != "Push-ups" {
		t.Errorf("exercise mismatch: %+v", out.Days[0].Exercises)
	}

	// Saving a session must not drop the plan
	if err := store.SaveSession(&Session{Token: "t"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}
	out, err = store.Plan()
	if err != nil {
		t.Fatalf("Plan after SaveSession: %v", err)
	}
	if out == nil {
		t.Fatal("plan lost after saving session")
	}

	if err := store.ClearPlan(); err != nil {
		t.Fatalf("ClearPlan: %v", err)
	}
	out, err = store.Plan()
	if err != nil {
		t.Fatalf("Plan after clear: %v", err)
	}
	if out != nil {
		t.Error("plan survived ClearPlan")
	}
}

func TestStoreFilePermissions(t *testing.T) {
	store := newTestStore(t)
	if err := store.SaveSession(&Session{Token: "secret"}); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	info, err := os.Stat(store.path)
	if err != nil {
		t.Fatalf("stat state file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("state file mode = %o, want 600", perm)
	}
}

func TestStoreRejectsCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewFileStore(path)
	if _, err := store.Session(); err == nil {
		t.Error("expected an error for corrupt state")
	}
}
