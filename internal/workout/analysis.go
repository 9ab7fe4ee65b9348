package workout

// StressLevel classifies how heavily a muscle was stressed.
type StressLevel string

const (
	StressMinimal  StressLevel = "Minimal"
	StressLight    StressLevel = "Light"
	StressModerate StressLevel = "Moderate"
	StressHigh     StressLevel = "High"
	StressIntense  StressLevel = "Intense"
	StressExtreme  StressLevel = "Extreme"
)

// IntensityLevel is the coarse Low/Moderate/High classification used for
// both individual muscles and the workout as a whole.
type IntensityLevel string

const (
	IntensityLow      IntensityLevel = "Low"
	IntensityModerate IntensityLevel = "Moderate"
	IntensityHigh     IntensityLevel = "High"
)

// MuscleActivation is the per-muscle outcome of the activation analysis.
type MuscleActivation struct {
	MuscleName         string         `json:"muscle_name"`
	FinalPercentage    float64        `json:"final_percentage"`
	IntensityLevel     IntensityLevel `json:"intensity_level"`
	StressLevel        StressLevel    `json:"stress_level"`
	Color              string         `json:"color"`
	RecoveryHours      int            `json:"recovery_hours"`
	RecoverySuggestion string         `json:"recovery_suggestion"`
}

// Imbalance describes the push/pull asymmetry of a workout. It is only
// produced when both movement patterns were activated.
type Imbalance struct {
	PushActivation float64 `json:"push_activation"`
	PullActivation float64 `json:"pull_activation"`
	Ratio          float64 `json:"ratio"`
	IsBalanced     bool    `json:"is_balanced"`
	Recommendation string  `json:"recommendation"`
}

// Analysis is the full muscle activation breakdown for one workout.
// Muscles are ordered by final percentage, highest first.
type Analysis struct {
	Muscles                []MuscleActivation `json:"muscles"`
	OverallIntensity       IntensityLevel     `json:"overall_intensity"`
	EstimatedRecoveryDays  int                `json:"estimated_recovery_days"`
	EstimatedRecoveryHours int                `json:"estimated_recovery_hours"`
	Imbalance              *Imbalance         `json:"imbalance,omitempty"`
}
