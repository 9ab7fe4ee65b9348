// Package records detects personal records: the heaviest completed-set
// weight ever logged per exercise for a given user.
package records

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/fitverse/internal/workout"
	"github.com/google/uuid"
)

// Best is a stored personal best for one exercise.
type Best struct {
	ExerciseID   string
	ExerciseName string
	WeightKg     float64
	WorkoutID    uuid.UUID
	AchievedAt   time.Time
}

// Store is the external persistence for personal bests. PutBests must
// apply all updates from one evaluation atomically: either every record
// from the workout commits or none do.
type Store interface {
	GetBestWeight(ctx context.Context, userID, exerciseID string) (weight float64, ok bool, err error)
	PutBests(ctx context.Context, userID string, bests []Best) error
}

// Evaluate compares a workout's per-exercise max completed weight with
// the stored bests. The first logged weight for an exercise counts as a
// record unconditionally; after that, only a strictly greater max does.
// Exercises with no completed weighted set (max weight 0) can never
// register a record. Returns the exercises that set a record, in
// workout order, after the batched store update succeeds.
func Evaluate(ctx context.Context, store Store, userID string, w workout.Workout) ([]workout.Exercise, error) {
	var prs []workout.Exercise
	var updates []Best

	for _, ex := range w.Exercises {
		maxWeight := ex.MaxCompletedWeight()
		if maxWeight == 0 {
			continue
		}

		current, ok, err := store.GetBestWeight(ctx, userID, ex.ExerciseID)
		if err != nil {
			return nil, fmt.Errorf("reading best for %s: %w", ex.Name, err)
		}
		if ok && maxWeight <= current {
			continue
		}

		prs = append(prs, ex)
		updates = append(updates, Best{
			ExerciseID:   ex.ExerciseID,
			ExerciseName: ex.Name,
			WeightKg:     maxWeight,
			WorkoutID:    w.ID,
			AchievedAt:   time.Now(),
		})
	}

	if len(updates) > 0 {
		if err := store.PutBests(ctx, userID, updates); err != nil {
			return nil, fmt.Errorf("storing personal records: %w", err)
		}
	}

	return prs, nil
}
