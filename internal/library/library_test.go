package library

import "testing"

func TestFindByID(t *testing.T) {
	def, ok := Find("bench_press")
	if !ok {
		t.Fatal("Find(bench_press) not found")
	}
	if def.Name != "Barbell Bench Press" {
		t.Errorf("name = %q, want %q", def.Name, "Barbell Bench Press")
	}
	if def.IntensityMultiplier != 0.4 || def.MaxCap != 85 {
		t.Errorf("multiplier/cap = %v/%v, want 0.4/85", def.IntensityMultiplier, def.MaxCap)
	}
}

func TestFindByName(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{"query inside catalog name", "bench", "bench_press", true},
		{"catalog name inside query", "Wide Grip Pull Up Variation", "pullup", true},
		{"case insensitive", "BARBELL SQUAT", "squat", true},
		{"surrounding whitespace", "  deadlift  ", "deadlift", true},
		{"ambiguous resolves to first in catalog", "press", "bench_press", true},
		{"miss", "yoga flow", "", false},
		{"empty", "", "", false},
		{"whitespace only", "   ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, ok := FindByName(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("FindByName(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if ok && def.ID != tt.wantID {
				t.Errorf("FindByName(%q) = %s, want %s", tt.query, def.ID, tt.wantID)
			}
		})
	}
}

func TestFindFallsBackToName(t *testing.T) {
	def, ok := Find("Barbell Row")
	if !ok || def.ID != "barbell_row" {
		t.Fatalf("Find(Barbell Row) = %v, %v; want barbell_row", def.ID, ok)
	}
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("All() returned empty catalog")
	}
	all[0].ID = "mutated"
	if again := All(); again[0].ID == "mutated" {
		t.Error("mutating All() result leaked into the catalog")
	}
}

func TestMuscleSharesSumTo100(t *testing.T) {
	for _, def := range All() {
		var sum float64
		for _, m := range def.Muscles {
			sum += m.BaseActivation
		}
		if sum != 100 {
			t.Errorf("%s muscle shares sum to %v, want 100", def.ID, sum)
		}
	}
}
