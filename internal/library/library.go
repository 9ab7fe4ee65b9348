// Package library holds the static exercise catalog: per-exercise
// muscle activation profiles consumed by the activation engine, plus
// the lookup used to resolve a logged exercise name to its definition.
package library

import "strings"

// MuscleShare is one muscle's base activation contribution for an exercise.
type MuscleShare struct {
	Name           string  `json:"name"`
	BaseActivation float64 `json:"base_activation"`
}

// MovementType distinguishes multi-joint from single-joint exercises.
type MovementType string

const (
	Compound  MovementType = "compound"
	Isolation MovementType = "isolation"
)

// Definition is the immutable library entry for one exercise.
type Definition struct {
	ID                  string        `json:"id"`
	Name                string        `json:"name"`
	Category            string        `json:"category"`
	Equipment           string        `json:"equipment"`
	Type                MovementType  `json:"type"`
	IntensityMultiplier float64       `json:"intensity_multiplier"`
	MaxCap              float64       `json:"max_cap"`
	Muscles             []MuscleShare `json:"muscles"`
}

// Find resolves an exercise by exact ID, then by case-insensitive
// two-way substring containment on the display name. Multiple entries
// can match a fuzzy name; the first match in catalog order wins. A miss
// is an expected outcome, not an error — the exercise is simply absent
// from any activation analysis.
func Find(idOrName string) (Definition, bool) {
	for _, def := range catalog {
		if def.ID == idOrName {
			return def, true
		}
	}
	return FindByName(idOrName)
}

// FindByName resolves an exercise by fuzzy display-name match only.
func FindByName(name string) (Definition, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return Definition{}, false
	}
	for _, def := range catalog {
		defName := strings.ToLower(def.Name)
		if strings.Contains(defName, normalized) || strings.Contains(normalized, defName) {
			return def, true
		}
	}
	return Definition{}, false
}

// All returns the full catalog in declaration order.
func All() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}
