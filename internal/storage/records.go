package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/fitverse/internal/records"
	"github.com/jackc/pgx/v5"
)

// GetBestWeight returns the stored personal best for an exercise, with
// ok=false when the user has never logged it.
func (db *DB) GetBestWeight(ctx context.Context, userID, exerciseID string) (float64, bool, error) {
	var weight float64
	err := db.Pool.QueryRow(ctx,
		`SELECT weight_kg FROM personal_records WHERE user_id = $1 AND exercise_id = $2`,
		userID, exerciseID,
	).Scan(&weight)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("querying personal record: %w", err)
	}
	return weight, true, nil
}

// PutBests upserts a batch of personal bests in one transaction, so a
// workout's records either all commit or none do.
func (db *DB) PutBests(ctx context.Context, userID string, bests []records.Best) error {
	if len(bests) == 0 {
		return nil
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, b := range bests {
		_, err := tx.Exec(ctx,
			`INSERT INTO personal_records (user_id, exercise_id, exercise_name, weight_kg, workout_id, achieved_at)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 ON CONFLICT (user_id, exercise_id) DO UPDATE
				SET exercise_name = $3, weight_kg = $4, workout_id = $5, achieved_at = $6`,
			userID, b.ExerciseID, b.ExerciseName, b.WeightKg, b.WorkoutID, b.AchievedAt)
		if err != nil {
			return fmt.Errorf("upserting personal record for %s: %w", b.ExerciseName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing personal records: %w", err)
	}
	return nil
}

// ListBests returns all of a user's personal bests, heaviest first.
func (db *DB) ListBests(ctx context.Context, userID string) ([]records.Best, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT exercise_id, exercise_name, weight_kg, workout_id, achieved_at
		 FROM personal_records
		 WHERE user_id = $1
		 ORDER BY weight_kg DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying personal records: %w", err)
	}
	defer rows.Close()

	var result []records.Best
	for rows.Next() {
		var b records.Best
		if err := rows.Scan(&b.ExerciseID, &b.ExerciseName, &b.WeightKg, &b.WorkoutID, &b.AchievedAt); err != nil {
			return nil, fmt.Errorf("scanning personal record: %w", err)
		}
		result = append(result, b)
	}
	return result, rows.Err()
}
