// Package activation estimates per-muscle stress from a completed
// workout. It is a pure function of the workout, the lifter's body
// weight, and the exercise library — it holds no state and performs
// no I/O beyond warning about unresolvable exercise names.
package activation

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/claude/fitverse/internal/library"
	"github.com/claude/fitverse/internal/workout"
)

// DefaultBodyWeightKg is the documented fallback used when a lifter's
// profile weight is unknown.
const DefaultBodyWeightKg = 70.0

// Push/pull movement groups used for imbalance detection.
var (
	pushMuscles = []string{"Pectoralis Major", "Anterior Deltoid", "Triceps", "Quadriceps"}
	pullMuscles = []string{"Latissimus Dorsi", "Mid Back", "Biceps", "Hamstrings", "Lower Back"}
)

// Analyze computes the muscle activation breakdown for a workout.
// Exercises whose names do not resolve in the library are skipped with
// a warning. bodyWeightKg of zero or below falls back to
// DefaultBodyWeightKg.
func Analyze(w workout.Workout, bodyWeightKg float64, log *slog.Logger) workout.Analysis {
	if bodyWeightKg <= 0 {
		bodyWeightKg = DefaultBodyWeightKg
	}
	if log == nil {
		log = slog.Default()
	}

	// Accumulate activation per muscle across all completed sets,
	// clamping the running total at 100 after each addition.
	totals := map[string]float64{}
	for _, ex := range w.Exercises {
		def, ok := library.FindByName(ex.Name)
		if !ok {
			log.Warn("exercise not found in library, skipping", "exercise", ex.Name)
			continue
		}
		for _, set := range ex.Sets {
			if !set.Completed {
				continue
			}
			for _, muscle := range def.Muscles {
				contribution := setActivation(
					muscle.BaseActivation, set.WeightKg, bodyWeightKg,
					def.IntensityMultiplier, set.Reps, def.MaxCap)
				totals[muscle.Name] = math.Min(totals[muscle.Name]+contribution, 100)
			}
		}
	}

	muscles := make([]workout.MuscleActivation, 0, len(totals))
	for name, pct := range totals {
		stress := stressLevel(pct)
		hours := recoveryHours(pct, stress)
		muscles = append(muscles, workout.MuscleActivation{
			MuscleName:         name,
			FinalPercentage:    round1(pct),
			IntensityLevel:     intensityLevel(pct),
			StressLevel:        stress,
			Color:              activationColor(pct),
			RecoveryHours:      hours,
			RecoverySuggestion: recoverySuggestion(name, stress, hours),
		})
	}
	sort.Slice(muscles, func(i, j int) bool {
		if muscles[i].FinalPercentage != muscles[j].FinalPercentage {
			return muscles[i].FinalPercentage > muscles[j].FinalPercentage
		}
		return muscles[i].MuscleName < muscles[j].MuscleName
	})

	var avg float64
	for _, m := range muscles {
		avg += m.FinalPercentage
	}
	if len(muscles) > 0 {
		avg /= float64(len(muscles))
	}
	overall := intensityLevel(avg)

	recoveryHrs := 24
	for _, m := range muscles {
		if m.RecoveryHours > recoveryHrs {
			recoveryHrs = m.RecoveryHours
		}
	}

	return workout.Analysis{
		Muscles:                muscles,
		OverallIntensity:       overall,
		EstimatedRecoveryDays:  recoveryDays(overall, muscles),
		EstimatedRecoveryHours: recoveryHrs,
		Imbalance:              detectImbalance(muscles),
	}
}

// setActivation computes one set's activation contribution for one
// muscle. Bodyweight movements (weight 0) still score: the weight
// factor and volume boost go to zero and the base activation remains.
func setActivation(base, weightKg, bodyWeightKg, multiplier float64, reps int, maxCap float64) float64 {
	weightFactor := (weightKg / bodyWeightKg) * multiplier
	volumeBoost := math.Log10(1+(float64(reps)*weightKg)/100) * 5
	adjusted := base * (1 + weightFactor + volumeBoost/100)
	return math.Min(adjusted, maxCap)
}

func stressLevel(pct float64) workout.StressLevel {
	switch {
	case pct <= 15:
		return workout.StressMinimal
	case pct <= 35:
		return workout.StressLight
	case pct <= 55:
		return workout.StressModerate
	case pct <= 75:
		return workout.StressHigh
	case pct <= 90:
		return workout.StressIntense
	default:
		return workout.StressExtreme
	}
}

func intensityLevel(pct float64) workout.IntensityLevel {
	switch {
	case pct < 40:
		return workout.IntensityLow
	case pct <= 70:
		return workout.IntensityModerate
	default:
		return workout.IntensityHigh
	}
}

var stressBaseHours = map[workout.StressLevel]float64{
	workout.StressMinimal:  12,
	workout.StressLight:    24,
	workout.StressModerate: 36,
	workout.StressHigh:     48,
	workout.StressIntense:  60,
	workout.StressExtreme:  72,
}

// recoveryHours fine-tunes the tier's base hours by where the
// percentage sits within its 20-point band, adding up to 10 hours.
func recoveryHours(pct float64, stress workout.StressLevel) int {
	adjustment := math.Mod(pct, 20) * 0.5
	return int(math.Round(stressBaseHours[stress] + adjustment))
}

// activationColor maps a percentage to its heatmap band.
func activationColor(pct float64) string {
	switch {
	case pct <= 20:
		return "#86efac" // pale green
	case pct <= 40:
		return "#4ade80" // green
	case pct <= 60:
		return "#fbbf24" // yellow
	case pct <= 80:
		return "#fb923c" // orange
	default:
		return "#ef4444" // red
	}
}

func recoverySuggestion(muscle string, stress workout.StressLevel, hours int) string {
	switch stress {
	case workout.StressMinimal:
		return fmt.Sprintf("Light work on %s. Recovery: %dh. Can train again soon.", muscle, hours)
	case workout.StressLight:
		return fmt.Sprintf("Moderate %s activation. Recovery: %dh. Rest 1 day before training.", muscle, hours)
	case workout.StressModerate:
		return fmt.Sprintf("Good workout for %s. Recovery: %dh. Rest 1-2 days.", muscle, hours)
	case workout.StressHigh:
		return fmt.Sprintf("Strong %s activation. Recovery: %dh. Allow 2 days rest.", muscle, hours)
	case workout.StressIntense:
		return fmt.Sprintf("Intense %s work. Recovery: %dh. Rest 2-3 days.", muscle, hours)
	default:
		return fmt.Sprintf("Extreme %s stress. Recovery: %dh. Full 3 day recovery needed.", muscle, hours)
	}
}

// detectImbalance sums activation over the push and pull groups and
// emits a verdict only when both movement patterns were worked.
func detectImbalance(muscles []workout.MuscleActivation) *workout.Imbalance {
	var push, pull float64
	for _, m := range muscles {
		if contains(pushMuscles, m.MuscleName) {
			push += m.FinalPercentage
		}
		if contains(pullMuscles, m.MuscleName) {
			pull += m.FinalPercentage
		}
	}
	if push == 0 || pull == 0 {
		return nil
	}

	ratio := push / pull
	balanced := ratio >= 0.8 && ratio <= 1.2

	var recommendation string
	switch {
	case balanced:
		recommendation = "Balanced push/pull workout. Great muscle symmetry!"
	case ratio > 1.2:
		gap := int(math.Round((ratio - 1) * 100))
		recommendation = fmt.Sprintf("Push-dominant workout (+%d%%). Add more pulling exercises (rows, pull-ups, deadlifts) next session.", gap)
	default:
		gap := int(math.Round((1 - ratio) * 100))
		recommendation = fmt.Sprintf("Pull-dominant workout (+%d%%). Add more pushing exercises (bench press, push-ups, squats) next session.", gap)
	}

	return &workout.Imbalance{
		PushActivation: round1(push),
		PullActivation: round1(pull),
		Ratio:          math.Round(ratio*100) / 100,
		IsBalanced:     balanced,
		Recommendation: recommendation,
	}
}

// recoveryDays estimates full-body recovery: 3 days for a High workout
// or 3+ individually High muscles, 2 for Moderate or any High muscle,
// otherwise 1.
func recoveryDays(overall workout.IntensityLevel, muscles []workout.MuscleActivation) int {
	highCount := 0
	for _, m := range muscles {
		if m.IntensityLevel == workout.IntensityHigh {
			highCount++
		}
	}
	switch {
	case overall == workout.IntensityHigh || highCount >= 3:
		return 3
	case overall == workout.IntensityModerate || highCount >= 1:
		return 2
	default:
		return 1
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
