package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// UserStats holds a user's lifetime aggregates, bumped on every finish.
type UserStats struct {
	TotalWorkouts int        `json:"total_workouts"`
	TotalVolume   float64    `json:"total_volume"`
	TotalTimeSec  int        `json:"total_time_sec"`
	LastWorkoutAt *time.Time `json:"last_workout_at,omitempty"`
}

// UpdateUserStats bumps the user's aggregates after a finished workout.
// The session layer treats this as best-effort: a failure is logged and
// never rolls back the workout save.
func (db *DB) UpdateUserStats(ctx context.Context, userID string, volume float64, durationSec int) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO user_stats (user_id, total_workouts, total_volume, total_time_sec, last_workout_at)
		VALUES ($1, 1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			total_workouts = user_stats.total_workouts + 1,
			total_volume   = user_stats.total_volume + $2,
			total_time_sec = user_stats.total_time_sec + $3,
			last_workout_at = NOW()
	`, userID, volume, durationSec)
	if err != nil {
		return fmt.Errorf("updating user stats: %w", err)
	}
	return nil
}

// GetUserStats returns the user's lifetime aggregates. A user with no
// finished workouts gets zeroes.
func (db *DB) GetUserStats(ctx context.Context, userID string) (*UserStats, error) {
	stats := &UserStats{}
	err := db.Pool.QueryRow(ctx, `
		SELECT total_workouts, total_volume, total_time_sec, last_workout_at
		FROM user_stats WHERE user_id = $1
	`, userID).Scan(&stats.TotalWorkouts, &stats.TotalVolume, &stats.TotalTimeSec, &stats.LastWorkoutAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying user stats: %w", err)
	}
	return stats, nil
}

// Streak counts consecutive training days ending today or yesterday.
// Multiple workouts on the same day count once.
func (db *DB) Streak(ctx context.Context, userID string) (int, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT DISTINCT started_at::date AS day
		FROM workouts
		WHERE user_id = $1
		ORDER BY day DESC
	`, userID)
	if err != nil {
		return 0, fmt.Errorf("querying workout days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return 0, fmt.Errorf("scanning workout day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return 0, err
	}

	streak := 0
	prev := time.Now().Truncate(24 * time.Hour)
	for _, day := range days {
		gap := prev.Sub(day.Truncate(24*time.Hour)).Hours() / 24
		if gap > 1.5 {
			break
		}
		streak++
		prev = day
	}
	return streak, nil
}

// WeeklySummary is the current-week activity rollup for the dashboard.
type WeeklySummary struct {
	Workouts      int     `json:"workouts"`
	ActiveMinutes int     `json:"active_minutes"`
	Volume        float64 `json:"volume"`
	Calories      int     `json:"calories"`
}

// GetWeeklySummary aggregates workouts since the start of the current
// week (Sunday).
func (db *DB) GetWeeklySummary(ctx context.Context, userID string) (*WeeklySummary, error) {
	summary := &WeeklySummary{}
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(duration_sec) / 60, 0),
		       COALESCE(SUM(total_volume), 0),
		       COALESCE(SUM(calories), 0)
		FROM workouts
		WHERE user_id = $1
		  AND started_at >= date_trunc('week', NOW() + interval '1 day') - interval '1 day'
	`, userID).Scan(&summary.Workouts, &summary.ActiveMinutes, &summary.Volume, &summary.Calories)
	if err != nil {
		return nil, fmt.Errorf("querying weekly summary: %w", err)
	}
	return summary, nil
}
