package library

// catalog is the built-in exercise library. Order matters: fuzzy name
// lookup resolves ties by first match in this declaration order.
var catalog = []Definition{
	{
		ID: "bench_press", Name: "Barbell Bench Press", Category: "Chest",
		Equipment: "Barbell", Type: Compound,
		IntensityMultiplier: 0.4, MaxCap: 85,
		Muscles: []MuscleShare{
			{Name: "Pectoralis Major", BaseActivation: 60},
			{Name: "Triceps", BaseActivation: 25},
			{Name: "Anterior Deltoid", BaseActivation: 15},
		},
	},
	{
		ID: "squat", Name: "Barbell Squat", Category: "Legs",
		Equipment: "Barbell", Type: Compound,
		IntensityMultiplier: 0.45, MaxCap: 90,
		Muscles: []MuscleShare{
			{Name: "Quadriceps", BaseActivation: 40},
			{Name: "Glutes", BaseActivation: 35},
			{Name: "Hamstrings", BaseActivation: 15},
			{Name: "Core", BaseActivation: 10},
		},
	},
	{
		ID: "pullup", Name: "Pull Up", Category: "Back",
		Equipment: "Bodyweight", Type: Compound,
		IntensityMultiplier: 0.35, MaxCap: 85,
		Muscles: []MuscleShare{
			{Name: "Latissimus Dorsi", BaseActivation: 50},
			{Name: "Biceps", BaseActivation: 30},
			{Name: "Mid Back", BaseActivation: 20},
		},
	},
	{
		ID: "deadlift", Name: "Barbell Deadlift", Category: "Back",
		Equipment: "Barbell", Type: Compound,
		IntensityMultiplier: 0.5, MaxCap: 95,
		Muscles: []MuscleShare{
			{Name: "Hamstrings", BaseActivation: 35},
			{Name: "Glutes", BaseActivation: 30},
			{Name: "Lower Back", BaseActivation: 20},
			{Name: "Core", BaseActivation: 15},
		},
	},
	{
		ID: "pushup", Name: "Push Up", Category: "Chest",
		Equipment: "Bodyweight", Type: Compound,
		IntensityMultiplier: 0.3, MaxCap: 75,
		Muscles: []MuscleShare{
			{Name: "Pectoralis Major", BaseActivation: 55},
			{Name: "Triceps", BaseActivation: 30},
			{Name: "Anterior Deltoid", BaseActivation: 15},
		},
	},
	{
		ID: "barbell_row", Name: "Barbell Row", Category: "Back",
		Equipment: "Barbell", Type: Compound,
		IntensityMultiplier: 0.4, MaxCap: 85,
		Muscles: []MuscleShare{
			{Name: "Latissimus Dorsi", BaseActivation: 40},
			{Name: "Mid Back", BaseActivation: 35},
			{Name: "Biceps", BaseActivation: 15},
			{Name: "Lower Back", BaseActivation: 10},
		},
	},
	{
		ID: "shoulder_press", Name: "Overhead Shoulder Press", Category: "Shoulders",
		Equipment: "Dumbbell", Type: Compound,
		IntensityMultiplier: 0.4, MaxCap: 85,
		Muscles: []MuscleShare{
			{Name: "Anterior Deltoid", BaseActivation: 50},
			{Name: "Triceps", BaseActivation: 30},
			{Name: "Core", BaseActivation: 20},
		},
	},
	{
		ID: "lunges", Name: "Lunges", Category: "Legs",
		Equipment: "Dumbbell", Type: Compound,
		IntensityMultiplier: 0.4, MaxCap: 85,
		Muscles: []MuscleShare{
			{Name: "Quadriceps", BaseActivation: 40},
			{Name: "Glutes", BaseActivation: 35},
			{Name: "Hamstrings", BaseActivation: 25},
		},
	},
	{
		ID: "dumbbell_curl", Name: "Dumbbell Curl", Category: "Arms",
		Equipment: "Dumbbell", Type: Isolation,
		IntensityMultiplier: 0.35, MaxCap: 80,
		Muscles: []MuscleShare{
			{Name: "Biceps", BaseActivation: 80},
			{Name: "Forearms", BaseActivation: 20},
		},
	},
	{
		ID: "tricep_dip", Name: "Tricep Dip", Category: "Arms",
		Equipment: "Bodyweight", Type: Compound,
		IntensityMultiplier: 0.35, MaxCap: 80,
		Muscles: []MuscleShare{
			{Name: "Triceps", BaseActivation: 55},
			{Name: "Pectoralis Major", BaseActivation: 30},
			{Name: "Anterior Deltoid", BaseActivation: 15},
		},
	},
	{
		ID: "lateral_raise", Name: "Lateral Raise", Category: "Shoulders",
		Equipment: "Dumbbell", Type: Isolation,
		IntensityMultiplier: 0.3, MaxCap: 75,
		Muscles: []MuscleShare{
			{Name: "Lateral Deltoid", BaseActivation: 75},
			{Name: "Anterior Deltoid", BaseActivation: 25},
		},
	},
	{
		ID: "plank", Name: "Plank", Category: "Core",
		Equipment: "Bodyweight", Type: Isolation,
		IntensityMultiplier: 0.3, MaxCap: 75,
		Muscles: []MuscleShare{
			{Name: "Core", BaseActivation: 70},
			{Name: "Lower Back", BaseActivation: 20},
			{Name: "Glutes", BaseActivation: 10},
		},
	},
	{
		ID: "crunch", Name: "Crunch", Category: "Core",
		Equipment: "Bodyweight", Type: Isolation,
		IntensityMultiplier: 0.3, MaxCap: 75,
		Muscles: []MuscleShare{
			{Name: "Core", BaseActivation: 90},
			{Name: "Hip Flexors", BaseActivation: 10},
		},
	},
}
