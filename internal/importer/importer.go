// Package importer loads historical workouts from a FitVerse mobile
// export into the database, running the same metrics, activation, and
// personal-record pipeline a live finish would.
package importer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/claude/fitverse/internal/activation"
	"github.com/claude/fitverse/internal/records"
	"github.com/claude/fitverse/internal/storage"
	"github.com/claude/fitverse/internal/workout"
)

// Stats tracks import progress.
type Stats struct {
	WorkoutsImported   int
	WorkoutsDuplicated int
	WorkoutsSkipped    int
	SetsImported       int
	RecordsSet         int
}

// Importer reads a mobile export file and inserts workouts into the DB.
type Importer struct {
	db     *storage.DB
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates a new Importer.
func New(db *storage.DB, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{db: db, log: log, dryRun: dryRun}
}

// Import processes the export at path for the given user. Workouts are
// replayed oldest first so personal records accumulate the same way
// they would have live. Already-imported workouts are skipped by ID.
func (imp *Importer) Import(ctx context.Context, path, userID string) (*Stats, error) {
	workouts, err := ReadExport(path)
	if err != nil {
		return &imp.stats, err
	}

	bodyWeight := imp.bodyWeight(ctx, userID)

	for i := range workouts {
		w := workouts[i]
		w.UserID = userID

		if !w.HasCompletedSet() {
			imp.log.Info("skipping workout with no completed sets", "workout", w.ID, "name", w.Name)
			imp.stats.WorkoutsSkipped++
			continue
		}

		existing, err := imp.db.GetWorkout(ctx, userID, w.ID)
		if err != nil {
			return &imp.stats, fmt.Errorf("checking for existing workout %s: %w", w.ID, err)
		}
		if existing != nil {
			imp.stats.WorkoutsDuplicated++
			continue
		}

		w.TotalVolume = w.Volume()
		w.Calories = workout.Calories(w, bodyWeight)
		w.IntensityScore = workout.IntensityScore(w)
		analysis := activation.Analyze(w, bodyWeight, imp.log)
		w.MuscleActivation = &analysis

		if imp.dryRun {
			imp.log.Info("dry run: would import workout",
				"workout", w.ID, "name", w.Name, "started_at", w.StartedAt, "volume", w.TotalVolume)
			imp.stats.WorkoutsImported++
			continue
		}

		prs, err := records.Evaluate(ctx, imp.db, userID, w)
		if err != nil {
			return &imp.stats, fmt.Errorf("evaluating records for workout %s: %w", w.ID, err)
		}
		w.PersonalRecords = prs
		imp.stats.RecordsSet += len(prs)

		if err := imp.db.SaveWorkout(ctx, w); err != nil {
			return &imp.stats, fmt.Errorf("saving workout %s: %w", w.ID, err)
		}
		if err := imp.db.UpdateUserStats(ctx, userID, w.TotalVolume, w.DurationSec); err != nil {
			return &imp.stats, fmt.Errorf("updating user stats: %w", err)
		}

		imp.stats.WorkoutsImported++
		for _, ex := range w.Exercises {
			imp.stats.SetsImported += len(ex.Sets)
		}
	}

	return &imp.stats, nil
}

func (imp *Importer) bodyWeight(ctx context.Context, userID string) float64 {
	kg, ok, err := imp.db.BodyWeightKg(ctx, userID)
	if err != nil {
		imp.log.Warn("profile lookup failed, using default body weight", "user", userID, "error", err)
		return activation.DefaultBodyWeightKg
	}
	if !ok || kg <= 0 {
		return activation.DefaultBodyWeightKg
	}
	return kg
}
