// Package profile defines the user profile and the nutrition target
// calculations derived from it (Mifflin-St Jeor BMR, activity-adjusted
// TDEE, goal-adjusted calories, and a macro split).
package profile

import (
	"math"
	"time"
)

type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

type ActivityLevel string

const (
	Sedentary  ActivityLevel = "sedentary"
	Light      ActivityLevel = "light"
	Moderate   ActivityLevel = "moderate"
	Active     ActivityLevel = "active"
	VeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	FatLoss     Goal = "fat_loss"
	MuscleGain  Goal = "muscle_gain"
	Maintenance Goal = "maintenance"
)

// activityMultipliers scale BMR to maintenance calories.
var activityMultipliers = map[ActivityLevel]float64{
	Sedentary:  1.2,
	Light:      1.375,
	Moderate:   1.55,
	Active:     1.725,
	VeryActive: 1.9,
}

// Profile is a lifter's stored profile. WeightKg feeds the calorie and
// muscle activation engines on workout finish.
type Profile struct {
	UserID         string        `json:"user_id"`
	WeightKg       float64       `json:"weight_kg"`
	HeightCm       float64       `json:"height_cm"`
	Age            int           `json:"age"`
	Gender         Gender        `json:"gender"`
	Goal           Goal          `json:"goal"`
	ActivityLevel  ActivityLevel `json:"activity_level"`
	GymDaysPerWeek int           `json:"gym_days_per_week"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Targets are the calculated daily nutrition targets.
type Targets struct {
	BMR                 int `json:"bmr"`
	MaintenanceCalories int `json:"maintenance_calories"`
	TargetCalories      int `json:"target_calories"`
	ProteinGrams        int `json:"protein_grams"`
	FatGrams            int `json:"fat_grams"`
	CarbGrams           int `json:"carb_grams"`
}

// BMR computes basal metabolic rate via Mifflin-St Jeor:
// 10×weight + 6.25×height − 5×age, +5 male / −161 female.
func BMR(weightKg, heightCm float64, age int, gender Gender) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if gender == Male {
		return base + 5
	}
	return base - 161
}

// MaintenanceCalories scales BMR by the activity multiplier.
func MaintenanceCalories(bmr float64, level ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[Sedentary]
	}
	return int(math.Round(bmr * mult))
}

// TargetCalories adjusts maintenance for the fitness goal: −400 for
// fat loss, +300 for muscle gain.
func TargetCalories(maintenance int, goal Goal) int {
	switch goal {
	case FatLoss:
		return maintenance - 400
	case MuscleGain:
		return maintenance + 300
	default:
		return maintenance
	}
}

// CalcTargets computes the full nutrition target set for a profile.
// Protein is 2.2 g/kg, fat is 25% of calories at 9 kcal/g, and carbs
// take the remaining calories at 4 kcal/g.
func CalcTargets(p Profile) Targets {
	bmr := BMR(p.WeightKg, p.HeightCm, p.Age, p.Gender)
	maintenance := MaintenanceCalories(bmr, p.ActivityLevel)
	target := TargetCalories(maintenance, p.Goal)

	protein := int(math.Round(p.WeightKg * 2.2))
	fat := int(math.Round(float64(target) * 0.25 / 9))
	carbs := int(math.Round(float64(target-protein*4-fat*9) / 4))

	return Targets{
		BMR:                 int(math.Round(bmr)),
		MaintenanceCalories: maintenance,
		TargetCalories:      target,
		ProteinGrams:        protein,
		FatGrams:            fat,
		CarbGrams:           carbs,
	}
}
