// Package session manages a single in-progress workout per user: the
// running timer, exercise and set mutation, and the finish transition
// that runs the metrics, activation, and personal-record engines and
// hands the finalized workout to persistence.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/fitverse/internal/activation"
	"github.com/claude/fitverse/internal/records"
	"github.com/claude/fitverse/internal/workout"
	"github.com/google/uuid"
)

// Validation errors surfaced to the caller. These never corrupt session
// state: a failed operation leaves the session exactly as it was.
var (
	ErrWorkoutActive     = errors.New("a workout is already active")
	ErrNoActiveWorkout   = errors.New("no active workout")
	ErrNoExercises       = errors.New("cannot finish a workout with no exercises")
	ErrNoCompletedSets   = errors.New("complete at least one set before finishing")
	ErrIndexOutOfRange   = errors.New("exercise or set index out of range")
	ErrLastSet           = errors.New("cannot remove the only set of an exercise")
	ErrFinishInProgress  = errors.New("finish is in progress")
)

// Persistence is the collaborator that durably stores finished
// workouts. SaveWorkout is the primary effect; UpdateUserStats is
// best-effort and its failure never blocks a finish.
type Persistence interface {
	SaveWorkout(ctx context.Context, w workout.Workout) error
	UpdateUserStats(ctx context.Context, userID string, volume float64, durationSec int) error
}

// ProfileSource supplies the lifter's body weight for the calorie and
// activation calculations. Absence is valid; the session falls back to
// activation.DefaultBodyWeightKg.
type ProfileSource interface {
	BodyWeightKg(ctx context.Context, userID string) (float64, bool, error)
}

// SetPatch names the set fields an update may replace. Nil fields are
// left untouched.
type SetPatch struct {
	Reps      *int     `json:"reps,omitempty"`
	WeightKg  *float64 `json:"weight_kg,omitempty"`
	RPE       *int     `json:"rpe,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
}

// Session owns one user's active workout. All operations are
// serialized by an internal mutex; while a finish is in flight, every
// mutating operation is rejected with ErrFinishInProgress.
type Session struct {
	mu           sync.Mutex
	userID       string
	active       *workout.Workout
	timerSec     int
	timerRunning bool
	finishing    bool
	photoURL     string

	store    Persistence
	records  records.Store
	profiles ProfileSource
	log      *slog.Logger
}

// New creates an idle session for a user.
func New(userID string, store Persistence, recordStore records.Store, profiles ProfileSource, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		userID:   userID,
		store:    store,
		records:  recordStore,
		profiles: profiles,
		log:      log,
	}
}

// Start begins an empty workout and starts the timer. Starting while
// another workout is active is rejected; discard or finish it first.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return ErrWorkoutActive
	}

	now := time.Now()
	s.active = &workout.Workout{
		ID:        uuid.New(),
		UserID:    s.userID,
		Name:      "Workout - " + now.Format("Jan 2, 2006"),
		StartedAt: now,
	}
	s.timerSec = 0
	s.timerRunning = true
	return nil
}

// StartFromTemplate begins a workout pre-populated from a template.
// Each template exercise expands into its prescribed number of sets
// with the template's rep count, weight 0, not completed.
func (s *Session) StartFromTemplate(tpl workout.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return ErrWorkoutActive
	}

	exercises := make([]workout.Exercise, 0, len(tpl.Exercises))
	for _, te := range tpl.Exercises {
		sets := make([]workout.Set, te.Sets)
		for i := range sets {
			sets[i] = workout.Set{ID: uuid.New(), Reps: te.Reps}
		}
		exercises = append(exercises, workout.Exercise{
			ExerciseID: uuid.NewString(),
			Name:       te.Name,
			Sets:       sets,
		})
	}

	s.active = &workout.Workout{
		ID:        uuid.New(),
		UserID:    s.userID,
		Name:      tpl.Name,
		StartedAt: time.Now(),
		Exercises: exercises,
	}
	s.timerSec = 0
	s.timerRunning = true
	return nil
}

// AddExercise appends an exercise with a single empty set.
func (s *Session) AddExercise(exerciseID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mutable(); err != nil {
		return err
	}
	s.active.Exercises = append(s.active.Exercises, workout.Exercise{
		ExerciseID: exerciseID,
		Name:       name,
		Sets:       []workout.Set{{ID: uuid.New()}},
	})
	return nil
}

// UpdateSet replaces the patched fields of the targeted set.
func (s *Session) UpdateSet(exerciseIdx, setIdx int, patch SetPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mutable(); err != nil {
		return err
	}
	set, err := s.setAt(exerciseIdx, setIdx)
	if err != nil {
		return err
	}

	if patch.Reps != nil {
		set.Reps = *patch.Reps
	}
	if patch.WeightKg != nil {
		set.WeightKg = *patch.WeightKg
	}
	if patch.RPE != nil {
		set.RPE = patch.RPE
	}
	if patch.Completed != nil {
		set.Completed = *patch.Completed
	}
	return nil
}

// AddSet appends a set to the targeted exercise, carrying over the
// previous set's reps and weight as a progressive-overload convenience.
func (s *Session) AddSet(exerciseIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mutable(); err != nil {
		return err
	}
	if exerciseIdx < 0 || exerciseIdx >= len(s.active.Exercises) {
		return fmt.Errorf("%w: exercise %d", ErrIndexOutOfRange, exerciseIdx)
	}

	ex := &s.active.Exercises[exerciseIdx]
	next := workout.Set{ID: uuid.New()}
	if n := len(ex.Sets); n > 0 {
		next.Reps = ex.Sets[n-1].Reps
		next.WeightKg = ex.Sets[n-1].WeightKg
	}
	ex.Sets = append(ex.Sets, next)
	return nil
}

// RemoveSet deletes the targeted set. An exercise keeps at least one
// set at all times; removing the last one is rejected.
func (s *Session) RemoveSet(exerciseIdx, setIdx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.mutable(); err != nil {
		return err
	}
	if _, err := s.setAt(exerciseIdx, setIdx); err != nil {
		return err
	}

	ex := &s.active.Exercises[exerciseIdx]
	if len(ex.Sets) == 1 {
		return ErrLastSet
	}
	ex.Sets = append(ex.Sets[:setIdx], ex.Sets[setIdx+1:]...)
	return nil
}

// StartTimer resumes the timer without resetting elapsed seconds.
func (s *Session) StartTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && !s.finishing {
		s.timerRunning = true
	}
}

// PauseTimer stops the timer, preserving elapsed seconds.
func (s *Session) PauseTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timerRunning = false
}

// Tick advances the timer by exactly one second. It is driven by an
// external one-second clock (see Manager) and is a no-op while the
// timer is paused or no workout is active.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && s.timerRunning && !s.finishing {
		s.timerSec++
	}
}

// SetPhoto attaches (or clears) a photo URL for the workout in
// progress.
func (s *Session) SetPhoto(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photoURL = url
}

// Elapsed returns the timer's current value in seconds.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerSec
}

// TimerRunning reports whether the timer is currently advancing.
func (s *Session) TimerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timerRunning
}

// Active returns a snapshot of the in-progress workout with the
// current elapsed time, or ok=false when the session is idle.
func (s *Session) Active() (workout.Workout, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return workout.Workout{}, false
	}
	snap := snapshot(s.active)
	snap.DurationSec = s.timerSec
	return snap, true
}

// Discard clears the session without invoking any engine or
// persistence. Nothing is emitted.
func (s *Session) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ErrNoActiveWorkout
	}
	if s.finishing {
		return ErrFinishInProgress
	}
	s.reset()
	return nil
}

// Finish validates and finalizes the active workout: computes volume,
// calories, intensity, and muscle activation, evaluates personal
// records, saves the workout, best-effort updates aggregate user
// stats, and resets the session to idle. On any failure the session is
// left active and unchanged so the user can retry without losing data.
func (s *Session) Finish(ctx context.Context, photoURL string) (workout.Workout, error) {
	s.mu.Lock()
	if s.finishing {
		s.mu.Unlock()
		return workout.Workout{}, ErrFinishInProgress
	}
	if s.active == nil {
		s.mu.Unlock()
		return workout.Workout{}, ErrNoActiveWorkout
	}
	if len(s.active.Exercises) == 0 {
		s.mu.Unlock()
		return workout.Workout{}, ErrNoExercises
	}
	if !s.active.HasCompletedSet() {
		s.mu.Unlock()
		return workout.Workout{}, ErrNoCompletedSets
	}

	// Mark the session busy and snapshot the workout so collaborator
	// I/O runs without holding the lock. Mutations are rejected until
	// the finish resolves.
	s.finishing = true
	final := snapshot(s.active)
	final.DurationSec = s.timerSec
	if photoURL == "" {
		photoURL = s.photoURL
	}
	final.PhotoURL = photoURL
	s.mu.Unlock()

	finished, err := s.finalize(ctx, final)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.finishing = false
	if err != nil {
		// Session stays active; the caller can retry.
		return workout.Workout{}, err
	}
	s.reset()
	return finished, nil
}

// finalize runs the engines and persistence for an already-validated
// workout snapshot.
func (s *Session) finalize(ctx context.Context, final workout.Workout) (workout.Workout, error) {
	bodyWeight := s.bodyWeight(ctx)

	final.TotalVolume = final.Volume()
	final.Calories = workout.Calories(final, bodyWeight)
	final.IntensityScore = workout.IntensityScore(final)
	analysis := activation.Analyze(final, bodyWeight, s.log)
	final.MuscleActivation = &analysis

	prs, err := records.Evaluate(ctx, s.records, s.userID, final)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("evaluating personal records: %w", err)
	}
	final.PersonalRecords = prs

	if err := s.store.SaveWorkout(ctx, final); err != nil {
		return workout.Workout{}, fmt.Errorf("saving workout: %w", err)
	}

	// Aggregate stats are secondary: log and move on if the update
	// fails, the workout itself is already durable.
	if err := s.store.UpdateUserStats(ctx, s.userID, final.TotalVolume, final.DurationSec); err != nil {
		s.log.Warn("user stats update failed", "user", s.userID, "error", err)
	}

	s.log.Info("workout finished",
		"user", s.userID,
		"workout", final.ID,
		"volume_kg", final.TotalVolume,
		"duration_sec", final.DurationSec,
		"new_prs", len(prs),
	)
	return final, nil
}

// bodyWeight reads the lifter's profile weight, falling back to the
// documented default when the profile is absent or unreadable.
func (s *Session) bodyWeight(ctx context.Context) float64 {
	if s.profiles == nil {
		return activation.DefaultBodyWeightKg
	}
	kg, ok, err := s.profiles.BodyWeightKg(ctx, s.userID)
	if err != nil {
		s.log.Warn("profile lookup failed, using default body weight", "user", s.userID, "error", err)
		return activation.DefaultBodyWeightKg
	}
	if !ok || kg <= 0 {
		return activation.DefaultBodyWeightKg
	}
	return kg
}

// mutable guards every mutating operation: there must be an active
// workout and no finish in flight.
func (s *Session) mutable() error {
	if s.finishing {
		return ErrFinishInProgress
	}
	if s.active == nil {
		return ErrNoActiveWorkout
	}
	return nil
}

func (s *Session) setAt(exerciseIdx, setIdx int) (*workout.Set, error) {
	if exerciseIdx < 0 || exerciseIdx >= len(s.active.Exercises) {
		return nil, fmt.Errorf("%w: exercise %d", ErrIndexOutOfRange, exerciseIdx)
	}
	ex := &s.active.Exercises[exerciseIdx]
	if setIdx < 0 || setIdx >= len(ex.Sets) {
		return nil, fmt.Errorf("%w: set %d", ErrIndexOutOfRange, setIdx)
	}
	return &ex.Sets[setIdx], nil
}

// reset returns the session to idle. Callers hold the lock.
func (s *Session) reset() {
	s.active = nil
	s.timerSec = 0
	s.timerRunning = false
	s.photoURL = ""
}

// snapshot deep-copies a workout so the finalized result cannot alias
// the session's mutable state.
func snapshot(w *workout.Workout) workout.Workout {
	out := *w
	out.Exercises = make([]workout.Exercise, len(w.Exercises))
	for i, ex := range w.Exercises {
		sets := make([]workout.Set, len(ex.Sets))
		copy(sets, ex.Sets)
		ex.Sets = sets
		out.Exercises[i] = ex
	}
	return out
}
