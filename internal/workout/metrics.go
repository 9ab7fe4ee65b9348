package workout

import "math"

// Stats holds the aggregate statistics for a single workout.
type Stats struct {
	TotalVolume   float64 `json:"total_volume"`
	TotalSets     int     `json:"total_sets"`
	TotalReps     int     `json:"total_reps"`
	CompletedSets int     `json:"completed_sets"`
	DurationSec   int     `json:"duration_sec"`
}

// CalcStats computes aggregate statistics for a workout. Volume and reps
// count completed sets only; TotalSets counts every set regardless of
// completion.
func CalcStats(w Workout) Stats {
	s := Stats{DurationSec: w.DurationSec}
	for _, ex := range w.Exercises {
		for _, set := range ex.Sets {
			s.TotalSets++
			if set.Completed {
				s.CompletedSets++
				s.TotalVolume += set.WeightKg * float64(set.Reps)
				s.TotalReps += set.Reps
			}
		}
	}
	return s
}

// Calories estimates calories burned using a MET formula:
// calories = MET × bodyWeight(kg) × duration(hours). The MET value is
// tiered on volume density (kg lifted per minute).
func Calories(w Workout, bodyWeightKg float64) int {
	stats := CalcStats(w)
	durationHours := float64(w.DurationSec) / 3600

	var volumePerMinute float64
	if w.DurationSec > 0 {
		volumePerMinute = stats.TotalVolume / (float64(w.DurationSec) / 60)
	}

	met := 3.5 // baseline for moderate weight training
	switch {
	case volumePerMinute > 1000:
		met = 6.0
	case volumePerMinute > 500:
		met = 5.0
	case volumePerMinute > 250:
		met = 4.0
	}

	return int(math.Round(met * bodyWeightKg * durationHours))
}

// IntensityScore computes a 0-100 composite of volume density, set
// density, and duration. Targets: 500 kg/min volume, 20 sets/hour, and
// 60 minutes each score 100 points; the blend weights them 50/30/20.
func IntensityScore(w Workout) int {
	stats := CalcStats(w)
	if stats.DurationSec == 0 {
		return 0
	}

	volumeDensity := stats.TotalVolume / (float64(stats.DurationSec) / 60)
	volumeScore := math.Min(100, volumeDensity/500*100)

	setsPerHour := float64(stats.TotalSets) / (float64(stats.DurationSec) / 3600)
	setScore := math.Min(100, setsPerHour/20*100)

	durationMins := float64(stats.DurationSec) / 60
	durationScore := math.Min(100, durationMins/60*100)

	return int(math.Round(volumeScore*0.5 + setScore*0.3 + durationScore*0.2))
}
