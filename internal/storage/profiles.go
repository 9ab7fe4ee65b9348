package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/claude/fitverse/internal/profile"
	"github.com/jackc/pgx/v5"
)

// UpsertProfile stores a user's profile, replacing any existing one.
func (db *DB) UpsertProfile(ctx context.Context, p profile.Profile) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO profiles (user_id, weight_kg, height_cm, age, gender, goal,
			activity_level, gym_days_per_week, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			weight_kg = $2, height_cm = $3, age = $4, gender = $5, goal = $6,
			activity_level = $7, gym_days_per_week = $8, updated_at = NOW()
	`, p.UserID, p.WeightKg, p.HeightCm, p.Age, p.Gender, p.Goal,
		p.ActivityLevel, p.GymDaysPerWeek)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// GetProfile returns the user's profile, with ok=false when none is
// stored.
func (db *DB) GetProfile(ctx context.Context, userID string) (profile.Profile, bool, error) {
	var p profile.Profile
	err := db.Pool.QueryRow(ctx, `
		SELECT user_id, weight_kg, height_cm, age, gender, goal,
		       activity_level, gym_days_per_week, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.WeightKg, &p.HeightCm, &p.Age, &p.Gender, &p.Goal,
		&p.ActivityLevel, &p.GymDaysPerWeek, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return profile.Profile{}, false, nil
	}
	if err != nil {
		return profile.Profile{}, false, fmt.Errorf("querying profile: %w", err)
	}
	return p, true, nil
}

// BodyWeightKg supplies the session layer with the lifter's body
// weight. ok=false tells the caller to use its documented default.
func (db *DB) BodyWeightKg(ctx context.Context, userID string) (float64, bool, error) {
	p, ok, err := db.GetProfile(ctx, userID)
	if err != nil || !ok {
		return 0, false, err
	}
	return p.WeightKg, p.WeightKg > 0, nil
}
