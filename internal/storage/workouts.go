package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/claude/fitverse/internal/workout"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SaveWorkout persists a finalized workout: the summary row plus one
// row per set, in a single transaction. The muscle activation analysis
// and personal records are stored as JSON on the summary row.
func (db *DB) SaveWorkout(ctx context.Context, w workout.Workout) error {
	var activationJSON, prJSON []byte
	var err error
	if w.MuscleActivation != nil {
		if activationJSON, err = json.Marshal(w.MuscleActivation); err != nil {
			return fmt.Errorf("encoding muscle activation: %w", err)
		}
	}
	if len(w.PersonalRecords) > 0 {
		if prJSON, err = json.Marshal(w.PersonalRecords); err != nil {
			return fmt.Errorf("encoding personal records: %w", err)
		}
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, user_id, name, started_at, duration_sec,
		 total_volume, calories, intensity_score, photo_url, muscle_activation, personal_records)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		w.ID, w.UserID, w.Name, w.StartedAt, w.DurationSec,
		w.TotalVolume, w.Calories, w.IntensityScore, nullIfEmpty(w.PhotoURL),
		activationJSON, prJSON)
	if err != nil {
		return fmt.Errorf("inserting workout: %w", err)
	}

	if err := insertSets(ctx, tx, w); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing workout: %w", err)
	}
	return nil
}

func insertSets(ctx context.Context, tx pgx.Tx, w workout.Workout) error {
	const cols = 10
	var valueStrings []string
	var args []any

	row := 0
	for exIdx, ex := range w.Exercises {
		for setIdx, set := range ex.Sets {
			base := row * cols
			valueStrings = append(valueStrings, fmt.Sprintf(
				"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5,
				base+6, base+7, base+8, base+9, base+10,
			))
			args = append(args, set.ID, w.ID, exIdx, ex.ExerciseID, ex.Name,
				setIdx, set.Reps, set.WeightKg, set.RPE, set.Completed)
			row++
		}
	}
	if len(args) == 0 {
		return nil
	}

	query := `INSERT INTO workout_sets (id, workout_id, exercise_position, exercise_id,
		exercise_name, set_position, reps, weight_kg, rpe, completed) VALUES ` +
		strings.Join(valueStrings, ",")

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting workout sets: %w", err)
	}
	return nil
}

// QueryWorkouts retrieves workout summaries (no sets) for a user in a
// time range, newest first.
func (db *DB) QueryWorkouts(ctx context.Context, userID string, start, end time.Time) ([]workout.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, started_at, duration_sec,
		 total_volume, calories, intensity_score, COALESCE(photo_url, '')
		 FROM workouts
		 WHERE user_id = $1 AND started_at >= $2 AND started_at < $3
		 ORDER BY started_at DESC`,
		userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []workout.Workout
	for rows.Next() {
		var w workout.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.StartedAt, &w.DurationSec,
			&w.TotalVolume, &w.Calories, &w.IntensityScore, &w.PhotoURL); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

// GetWorkout retrieves a single workout with its exercises and sets
// reconstructed in performance order.
func (db *DB) GetWorkout(ctx context.Context, userID string, workoutID uuid.UUID) (*workout.Workout, error) {
	var w workout.Workout
	var activationJSON, prJSON []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, started_at, duration_sec,
		 total_volume, calories, intensity_score, COALESCE(photo_url, ''),
		 muscle_activation, personal_records
		 FROM workouts
		 WHERE id = $1 AND user_id = $2`,
		workoutID, userID,
	).Scan(&w.ID, &w.UserID, &w.Name, &w.StartedAt, &w.DurationSec,
		&w.TotalVolume, &w.Calories, &w.IntensityScore, &w.PhotoURL,
		&activationJSON, &prJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}

	if len(activationJSON) > 0 {
		w.MuscleActivation = &workout.Analysis{}
		if err := json.Unmarshal(activationJSON, w.MuscleActivation); err != nil {
			return nil, fmt.Errorf("decoding muscle activation: %w", err)
		}
	}
	if len(prJSON) > 0 {
		if err := json.Unmarshal(prJSON, &w.PersonalRecords); err != nil {
			return nil, fmt.Errorf("decoding personal records: %w", err)
		}
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, exercise_position, exercise_id, exercise_name, reps, weight_kg, rpe, completed
		 FROM workout_sets
		 WHERE workout_id = $1
		 ORDER BY exercise_position ASC, set_position ASC`,
		workoutID)
	if err != nil {
		return nil, fmt.Errorf("querying workout sets: %w", err)
	}
	defer rows.Close()

	lastPos := -1
	for rows.Next() {
		var set workout.Set
		var pos int
		var exerciseID, exerciseName string
		if err := rows.Scan(&set.ID, &pos, &exerciseID, &exerciseName,
			&set.Reps, &set.WeightKg, &set.RPE, &set.Completed); err != nil {
			return nil, fmt.Errorf("scanning workout set: %w", err)
		}
		if pos != lastPos {
			w.Exercises = append(w.Exercises, workout.Exercise{
				ExerciseID: exerciseID,
				Name:       exerciseName,
			})
			lastPos = pos
		}
		ex := &w.Exercises[len(w.Exercises)-1]
		ex.Sets = append(ex.Sets, set)
	}
	return &w, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
