// Package templates holds the built-in workout templates a session can
// be started from.
package templates

import "github.com/claude/fitverse/internal/workout"

var builtin = []workout.Template{
	{
		ID: "push-day", Name: "Push Day",
		Description: "Chest + Shoulders + Triceps",
		Difficulty:  "Intermediate", DurationMinutes: 60,
		TargetMuscles: []string{"Chest", "Shoulders", "Triceps"},
		Exercises: []workout.TemplateExercise{
			{Name: "Barbell Bench Press", Sets: 4, Reps: 8},
			{Name: "Incline Dumbbell Press", Sets: 3, Reps: 10},
			{Name: "Overhead Shoulder Press", Sets: 4, Reps: 8},
			{Name: "Lateral Raise", Sets: 3, Reps: 15},
			{Name: "Tricep Pushdowns", Sets: 3, Reps: 12},
			{Name: "Tricep Dip", Sets: 3, Reps: 10},
		},
	},
	{
		ID: "pull-day", Name: "Pull Day",
		Description: "Back + Biceps",
		Difficulty:  "Intermediate", DurationMinutes: 60,
		TargetMuscles: []string{"Lats", "Mid Back", "Biceps"},
		Exercises: []workout.TemplateExercise{
			{Name: "Pull Up", Sets: 4, Reps: 8},
			{Name: "Barbell Row", Sets: 4, Reps: 8},
			{Name: "Lat Pulldown", Sets: 3, Reps: 12},
			{Name: "Face Pulls", Sets: 3, Reps: 15},
			{Name: "Barbell Curl", Sets: 3, Reps: 10},
			{Name: "Hammer Curl", Sets: 3, Reps: 12},
		},
	},
	{
		ID: "leg-day", Name: "Leg Day",
		Description: "Glutes + Quads + Hamstrings",
		Difficulty:  "Intermediate", DurationMinutes: 65,
		TargetMuscles: []string{"Quads", "Glutes", "Hamstrings", "Calves"},
		Exercises: []workout.TemplateExercise{
			{Name: "Barbell Squat", Sets: 4, Reps: 8},
			{Name: "Romanian Deadlift", Sets: 4, Reps: 8},
			{Name: "Leg Press", Sets: 3, Reps: 12},
			{Name: "Bulgarian Split Squat", Sets: 3, Reps: 10},
			{Name: "Leg Curl", Sets: 3, Reps: 12},
			{Name: "Calf Raises", Sets: 4, Reps: 15},
		},
	},
	{
		ID: "upper-body-strength", Name: "Upper Body Strength",
		Description: "Full Upper Body Power",
		Difficulty:  "Advanced", DurationMinutes: 70,
		TargetMuscles: []string{"Chest", "Back", "Shoulders", "Arms"},
		Exercises: []workout.TemplateExercise{
			{Name: "Barbell Bench Press", Sets: 5, Reps: 5},
			{Name: "Pull Up", Sets: 5, Reps: 5},
			{Name: "Overhead Shoulder Press", Sets: 4, Reps: 6},
			{Name: "Barbell Row", Sets: 4, Reps: 6},
			{Name: "Skull Crushers", Sets: 3, Reps: 10},
			{Name: "Barbell Curl", Sets: 3, Reps: 10},
		},
	},
	{
		ID: "full-body-beginner", Name: "Full Body Beginner",
		Description: "Perfect for getting started",
		Difficulty:  "Beginner", DurationMinutes: 45,
		TargetMuscles: []string{"Full Body"},
		Exercises: []workout.TemplateExercise{
			{Name: "Goblet Squats", Sets: 3, Reps: 12},
			{Name: "Push Up", Sets: 3, Reps: 10},
			{Name: "Lat Pulldown", Sets: 3, Reps: 12},
			{Name: "Overhead Shoulder Press", Sets: 3, Reps: 12},
			{Name: "Plank", Sets: 3, Reps: 30},
		},
	},
}

// All returns the template catalog.
func All() []workout.Template {
	out := make([]workout.Template, len(builtin))
	copy(out, builtin)
	return out
}

// Find returns the template with the given ID.
func Find(id string) (workout.Template, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return t, true
		}
	}
	return workout.Template{}, false
}
