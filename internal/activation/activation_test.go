package activation

import (
	"testing"

	"github.com/claude/fitverse/internal/workout"
)

func singleExercise(name string, sets ...workout.Set) workout.Workout {
	return workout.Workout{
		Exercises: []workout.Exercise{{Name: name, Sets: sets}},
	}
}

func TestAnalyzeBenchPress(t *testing.T) {
	w := singleExercise("Barbell Bench Press",
		workout.Set{Reps: 10, WeightKg: 80, Completed: true})

	a := Analyze(w, 75, nil)

	if len(a.Muscles) != 3 {
		t.Fatalf("muscles = %d, want 3", len(a.Muscles))
	}

	// weight factor 80/75×0.4, volume boost log10(9)×5: pecs hit the
	// 85 cap, triceps land at 36.9, front delts at 22.1.
	want := []struct {
		name      string
		pct       float64
		intensity workout.IntensityLevel
		stress    workout.StressLevel
		color     string
		hours     int
	}{
		{"Pectoralis Major", 85, workout.IntensityHigh, workout.StressIntense, "#ef4444", 63},
		{"Triceps", 36.9, workout.IntensityLow, workout.StressModerate, "#4ade80", 44},
		{"Anterior Deltoid", 22.1, workout.IntensityLow, workout.StressLight, "#4ade80", 25},
	}
	for i, m := range a.Muscles {
		if m.MuscleName != want[i].name {
			t.Errorf("muscle[%d] = %s, want %s", i, m.MuscleName, want[i].name)
			continue
		}
		if m.FinalPercentage != want[i].pct {
			t.Errorf("%s activation = %v, want %v", m.MuscleName, m.FinalPercentage, want[i].pct)
		}
		if m.IntensityLevel != want[i].intensity {
			t.Errorf("%s intensity = %s, want %s", m.MuscleName, m.IntensityLevel, want[i].intensity)
		}
		if m.StressLevel != want[i].stress {
			t.Errorf("%s stress = %s, want %s", m.MuscleName, m.StressLevel, want[i].stress)
		}
		if m.Color != want[i].color {
			t.Errorf("%s color = %s, want %s", m.MuscleName, m.Color, want[i].color)
		}
		if m.RecoveryHours != want[i].hours {
			t.Errorf("%s recovery = %dh, want %dh", m.MuscleName, m.RecoveryHours, want[i].hours)
		}
	}

	if a.OverallIntensity != workout.IntensityModerate {
		t.Errorf("overall intensity = %s, want Moderate", a.OverallIntensity)
	}
	if a.EstimatedRecoveryHours != 63 {
		t.Errorf("recovery hours = %d, want 63", a.EstimatedRecoveryHours)
	}
	if a.EstimatedRecoveryDays != 2 {
		t.Errorf("recovery days = %d, want 2", a.EstimatedRecoveryDays)
	}
	if a.Imbalance != nil {
		t.Errorf("imbalance = %+v, want nil for push-only session", a.Imbalance)
	}
}

func TestAnalyzeClampsAt100(t *testing.T) {
	w := singleExercise("Push Up",
		workout.Set{Reps: 10, Completed: true},
		workout.Set{Reps: 10, Completed: true},
		workout.Set{Reps: 10, Completed: true},
	)

	a := Analyze(w, 70, nil)
	for _, m := range a.Muscles {
		if m.FinalPercentage > 100 {
			t.Errorf("%s activation = %v, exceeds 100", m.MuscleName, m.FinalPercentage)
		}
	}
	if a.Muscles[0].MuscleName != "Pectoralis Major" || a.Muscles[0].FinalPercentage != 100 {
		t.Errorf("top muscle = %s at %v, want Pectoralis Major at 100",
			a.Muscles[0].MuscleName, a.Muscles[0].FinalPercentage)
	}
}

func TestAnalyzeBodyweightMovement(t *testing.T) {
	// Weight 0: no weight factor, no volume boost, base activation only.
	w := singleExercise("Pull Up", workout.Set{Reps: 8, Completed: true})

	a := Analyze(w, 70, nil)
	if len(a.Muscles) != 3 {
		t.Fatalf("muscles = %d, want 3", len(a.Muscles))
	}
	if a.Muscles[0].MuscleName != "Latissimus Dorsi" || a.Muscles[0].FinalPercentage != 50 {
		t.Errorf("lats = %s at %v, want Latissimus Dorsi at 50",
			a.Muscles[0].MuscleName, a.Muscles[0].FinalPercentage)
	}
}

func TestAnalyzeSkipsIncompleteSets(t *testing.T) {
	w := singleExercise("Barbell Bench Press", workout.Set{Reps: 10, WeightKg: 80})
	if a := Analyze(w, 75, nil); len(a.Muscles) != 0 {
		t.Errorf("muscles = %d, want 0 when nothing is completed", len(a.Muscles))
	}
}

func TestAnalyzeSkipsUnknownExercise(t *testing.T) {
	w := singleExercise("Underwater Basket Weaving", workout.Set{Reps: 10, WeightKg: 50, Completed: true})

	a := Analyze(w, 70, nil)
	if len(a.Muscles) != 0 {
		t.Fatalf("muscles = %d, want 0", len(a.Muscles))
	}
	if a.OverallIntensity != workout.IntensityLow {
		t.Errorf("overall = %s, want Low", a.OverallIntensity)
	}
	if a.EstimatedRecoveryHours != 24 {
		t.Errorf("recovery hours = %d, want floor of 24", a.EstimatedRecoveryHours)
	}
	if a.EstimatedRecoveryDays != 1 {
		t.Errorf("recovery days = %d, want 1", a.EstimatedRecoveryDays)
	}
}

func TestAnalyzeDefaultBodyWeight(t *testing.T) {
	w := singleExercise("Barbell Bench Press", workout.Set{Reps: 10, WeightKg: 80, Completed: true})

	got := Analyze(w, 0, nil)
	want := Analyze(w, DefaultBodyWeightKg, nil)
	if got.Muscles[1].FinalPercentage != want.Muscles[1].FinalPercentage {
		t.Errorf("zero body weight = %v, want same as default %v",
			got.Muscles[1].FinalPercentage, want.Muscles[1].FinalPercentage)
	}
}

func TestImbalanceBalanced(t *testing.T) {
	// Bodyweight push and pull with equal base sums (100 each).
	w := workout.Workout{Exercises: []workout.Exercise{
		{Name: "Push Up", Sets: []workout.Set{{Reps: 10, Completed: true}}},
		{Name: "Pull Up", Sets: []workout.Set{{Reps: 10, Completed: true}}},
	}}

	a := Analyze(w, 70, nil)
	if a.Imbalance == nil {
		t.Fatal("imbalance = nil, want a verdict")
	}
	if !a.Imbalance.IsBalanced {
		t.Errorf("IsBalanced = false, ratio %v", a.Imbalance.Ratio)
	}
	if a.Imbalance.Ratio != 1.0 {
		t.Errorf("ratio = %v, want 1.0", a.Imbalance.Ratio)
	}
	if a.Imbalance.PushActivation != 100 || a.Imbalance.PullActivation != 100 {
		t.Errorf("push/pull = %v/%v, want 100/100",
			a.Imbalance.PushActivation, a.Imbalance.PullActivation)
	}
}

func TestImbalancePushDominant(t *testing.T) {
	w := workout.Workout{Exercises: []workout.Exercise{
		{Name: "Barbell Bench Press", Sets: []workout.Set{
			{Reps: 10, WeightKg: 80, Completed: true},
			{Reps: 10, WeightKg: 80, Completed: true},
		}},
		{Name: "Pull Up", Sets: []workout.Set{{Reps: 5, Completed: true}}},
	}}

	a := Analyze(w, 75, nil)
	if a.Imbalance == nil {
		t.Fatal("imbalance = nil, want push-dominant verdict")
	}
	if a.Imbalance.IsBalanced {
		t.Error("IsBalanced = true, want false")
	}
	if a.Imbalance.Ratio <= 1.2 {
		t.Errorf("ratio = %v, want > 1.2", a.Imbalance.Ratio)
	}
}

func TestStressLevelBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want workout.StressLevel
	}{
		{0, workout.StressMinimal},
		{15, workout.StressMinimal},
		{15.1, workout.StressLight},
		{35, workout.StressLight},
		{55, workout.StressModerate},
		{75, workout.StressHigh},
		{90, workout.StressIntense},
		{90.1, workout.StressExtreme},
		{100, workout.StressExtreme},
	}
	for _, tt := range tests {
		if got := stressLevel(tt.pct); got != tt.want {
			t.Errorf("stressLevel(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestIntensityLevelBoundaries(t *testing.T) {
	tests := []struct {
		pct  float64
		want workout.IntensityLevel
	}{
		{39.9, workout.IntensityLow},
		{40, workout.IntensityModerate},
		{70, workout.IntensityModerate},
		{70.1, workout.IntensityHigh},
	}
	for _, tt := range tests {
		if got := intensityLevel(tt.pct); got != tt.want {
			t.Errorf("intensityLevel(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestActivationColorBands(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{10, "#86efac"},
		{20, "#86efac"},
		{40, "#4ade80"},
		{60, "#fbbf24"},
		{80, "#fb923c"},
		{95, "#ef4444"},
	}
	for _, tt := range tests {
		if got := activationColor(tt.pct); got != tt.want {
			t.Errorf("activationColor(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}
