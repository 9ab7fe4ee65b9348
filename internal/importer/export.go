package importer

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/claude/fitverse/internal/workout"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ReadExport reads a FitVerse mobile export (a SQLite file with
// workouts and workout_sets tables) and reconstructs the workouts in
// chronological order.
func ReadExport(path string) ([]workout.Workout, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening export %s: %w", path, err)
	}
	defer db.Close()

	workouts, err := readWorkouts(db)
	if err != nil {
		return nil, err
	}

	for i := range workouts {
		if err := readSets(db, &workouts[i]); err != nil {
			return nil, err
		}
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].StartedAt.Before(workouts[j].StartedAt)
	})
	return workouts, nil
}

func readWorkouts(db *sql.DB) ([]workout.Workout, error) {
	rows, err := db.Query(
		`SELECT id, name, started_at, duration_sec, COALESCE(photo_url, '')
		 FROM workouts`)
	if err != nil {
		return nil, fmt.Errorf("querying export workouts: %w", err)
	}
	defer rows.Close()

	var result []workout.Workout
	for rows.Next() {
		var w workout.Workout
		var id, startedAt string
		if err := rows.Scan(&id, &w.Name, &startedAt, &w.DurationSec, &w.PhotoURL); err != nil {
			return nil, fmt.Errorf("scanning export workout: %w", err)
		}
		w.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("export workout %s: invalid id: %w", id, err)
		}
		w.StartedAt, err = parseExportTime(startedAt)
		if err != nil {
			return nil, fmt.Errorf("export workout %s: %w", id, err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

func readSets(db *sql.DB, w *workout.Workout) error {
	rows, err := db.Query(
		`SELECT exercise_id, exercise_name, reps, weight_kg, rpe, completed
		 FROM workout_sets
		 WHERE workout_id = ?
		 ORDER BY exercise_position ASC, set_position ASC`,
		w.ID.String())
	if err != nil {
		return fmt.Errorf("querying export sets for %s: %w", w.ID, err)
	}
	defer rows.Close()

	lastID := ""
	for rows.Next() {
		var set workout.Set
		var exerciseID, exerciseName string
		var rpe sql.NullInt64
		if err := rows.Scan(&exerciseID, &exerciseName, &set.Reps, &set.WeightKg, &rpe, &set.Completed); err != nil {
			return fmt.Errorf("scanning export set for %s: %w", w.ID, err)
		}
		set.ID = uuid.New()
		if rpe.Valid {
			v := int(rpe.Int64)
			set.RPE = &v
		}
		if exerciseID != lastID || len(w.Exercises) == 0 {
			w.Exercises = append(w.Exercises, workout.Exercise{
				ExerciseID: exerciseID,
				Name:       exerciseName,
			})
			lastID = exerciseID
		}
		ex := &w.Exercises[len(w.Exercises)-1]
		ex.Sets = append(ex.Sets, set)
	}
	return rows.Err()
}

// parseExportTime accepts the timestamp formats the mobile apps have
// written over time.
func parseExportTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}
