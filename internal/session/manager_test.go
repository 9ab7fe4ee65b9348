package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/claude/fitverse/internal/workout"
)

func newTestManager(t *testing.T) (*Manager, *fakePersistence) {
	t.Helper()
	store := &fakePersistence{}
	m := NewManager(store, &fakeRecordStore{}, &fakeProfiles{kg: 75, ok: true}, 2*time.Millisecond, nil)
	t.Cleanup(m.Shutdown)
	return m, store
}

func waitForElapsed(t *testing.T, s *Session, atLeast int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.Elapsed() >= atLeast {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timer never reached %d (at %d)", atLeast, s.Elapsed())
}

func TestManagerSessionPerUser(t *testing.T) {
	m, _ := newTestManager(t)

	a := m.Session("alice")
	b := m.Session("bob")
	if a == b {
		t.Fatal("distinct users share a session")
	}
	if got := m.Session("alice"); got != a {
		t.Error("same user got a new session on second lookup")
	}
}

func TestManagerClockDrivesTimer(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Start("alice"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := m.Session("alice")
	waitForElapsed(t, s, 3)

	// Pause detaches the clock; the timer must freeze.
	m.Pause("alice")
	frozen := s.Elapsed()
	time.Sleep(30 * time.Millisecond)
	if got := s.Elapsed(); got != frozen {
		t.Errorf("Elapsed moved from %d to %d while paused", frozen, got)
	}

	m.Resume("alice")
	waitForElapsed(t, s, frozen+1)
}

func TestManagerStartRejectsSecondWorkout(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Start("alice"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := m.Start("alice"); !errors.Is(err, ErrWorkoutActive) {
		t.Errorf("second Start = %v, want ErrWorkoutActive", err)
	}
}

func TestManagerStartFromTemplate(t *testing.T) {
	m, _ := newTestManager(t)

	tpl := workout.Template{
		ID: "leg-day", Name: "Leg Day",
		Exercises: []workout.TemplateExercise{{Name: "Barbell Squat", Sets: 3, Reps: 8}},
	}
	if err := m.StartFromTemplate("alice", tpl); err != nil {
		t.Fatalf("StartFromTemplate: %v", err)
	}
	w, ok := m.Session("alice").Active()
	if !ok || w.Name != "Leg Day" {
		t.Errorf("active = %q/%v, want Leg Day", w.Name, ok)
	}
	waitForElapsed(t, m.Session("alice"), 1)
}

func TestManagerFinishStopsClock(t *testing.T) {
	m, store := newTestManager(t)

	if err := m.Start("alice"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := m.Session("alice")
	s.AddExercise("squat", "Barbell Squat")
	reps, weight, done := 5, 100.0, true
	s.UpdateSet(0, 0, SetPatch{Reps: &reps, WeightKg: &weight, Completed: &done})

	if _, err := m.Finish(context.Background(), "alice", ""); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(store.saved))
	}
	if _, ok := s.Active(); ok {
		t.Error("session active after manager finish")
	}
	time.Sleep(30 * time.Millisecond)
	if got := s.Elapsed(); got != 0 {
		t.Errorf("Elapsed = %d after finish, want 0 with clock detached", got)
	}
}

func TestManagerFailedFinishKeepsClock(t *testing.T) {
	m, store := newTestManager(t)
	store.saveErr = errors.New("db down")

	if err := m.Start("alice"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := m.Session("alice")
	s.AddExercise("squat", "Barbell Squat")
	reps, weight, done := 5, 100.0, true
	s.UpdateSet(0, 0, SetPatch{Reps: &reps, WeightKg: &weight, Completed: &done})

	if _, err := m.Finish(context.Background(), "alice", ""); err == nil {
		t.Fatal("Finish succeeded despite save failure")
	}
	// Session stays active and the clock keeps ticking.
	before := s.Elapsed()
	waitForElapsed(t, s, before+1)
}

func TestManagerDiscardStopsClock(t *testing.T) {
	m, _ := newTestManager(t)

	if err := m.Start("alice"); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s := m.Session("alice")
	if err := m.Discard("alice"); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	if got := s.Elapsed(); got != 0 {
		t.Errorf("Elapsed = %d after discard, want 0", got)
	}
}
