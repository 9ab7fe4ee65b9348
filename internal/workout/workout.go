// Package workout defines the core data model for a strength training
// session: sets, exercises, the workout itself, and the templates a
// workout can be started from.
package workout

import (
	"time"

	"github.com/google/uuid"
)

// Set is one performance of an exercise at a given weight and rep count.
// Only completed sets contribute to volume, calories, activation, and PRs.
type Set struct {
	ID        uuid.UUID `json:"id"`
	Reps      int       `json:"reps"`
	WeightKg  float64   `json:"weight_kg"`
	RPE       *int      `json:"rpe,omitempty"`
	Completed bool      `json:"completed"`
}

// Exercise is an ordered sequence of sets performed for one movement.
// Name is used for library lookup and is not guaranteed to resolve.
// While a workout is active an exercise always holds at least one set.
type Exercise struct {
	ExerciseID string `json:"exercise_id"`
	Name       string `json:"name"`
	Sets       []Set  `json:"sets"`
}

// MaxCompletedWeight returns the heaviest completed set's weight, or 0
// when no set is completed.
func (e Exercise) MaxCompletedWeight() float64 {
	var max float64
	for _, s := range e.Sets {
		if s.Completed && s.WeightKg > max {
			max = s.WeightKg
		}
	}
	return max
}

// Workout is a single training session. It is created empty by the
// session's start operation, mutated while active, and frozen once
// finished — at which point the derived fields are populated.
type Workout struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	StartedAt   time.Time  `json:"started_at"`
	DurationSec int        `json:"duration_sec"`
	Exercises   []Exercise `json:"exercises"`
	PhotoURL    string     `json:"photo_url,omitempty"`

	// Populated on finish.
	TotalVolume      float64    `json:"total_volume,omitempty"`
	Calories         int        `json:"calories,omitempty"`
	IntensityScore   int        `json:"intensity_score,omitempty"`
	PersonalRecords  []Exercise `json:"personal_records,omitempty"`
	MuscleActivation *Analysis  `json:"muscle_activation,omitempty"`
}

// Volume returns the total mechanical work proxy: Σ(weight × reps)
// over completed sets only.
func (w Workout) Volume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				total += s.WeightKg * float64(s.Reps)
			}
		}
	}
	return total
}

// HasCompletedSet reports whether any set in any exercise is completed.
func (w Workout) HasCompletedSet() bool {
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			if s.Completed {
				return true
			}
		}
	}
	return false
}

// TemplateExercise is one prescribed movement in a workout template.
type TemplateExercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps int    `json:"reps"`
}

// Template is a predefined workout plan a session can be started from.
type Template struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Difficulty      string             `json:"difficulty"`
	DurationMinutes int                `json:"duration_minutes"`
	TargetMuscles   []string           `json:"target_muscles"`
	Exercises       []TemplateExercise `json:"exercises"`
}
