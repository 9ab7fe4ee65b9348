package templates

import "testing"

func TestFind(t *testing.T) {
	tpl, ok := Find("push-day")
	if !ok {
		t.Fatal("Find(push-day) not found")
	}
	if tpl.Name != "Push Day" {
		t.Errorf("name = %q, want Push Day", tpl.Name)
	}
	if len(tpl.Exercises) == 0 {
		t.Error("template has no exercises")
	}

	if _, ok := Find("rest-day"); ok {
		t.Error("Find(rest-day) = true, want miss")
	}
}

func TestAllTemplatesWellFormed(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("templates = %d, want 5", len(all))
	}
	seen := map[string]bool{}
	for _, tpl := range all {
		if tpl.ID == "" || tpl.Name == "" || tpl.Difficulty == "" {
			t.Errorf("template %+v missing identity fields", tpl)
		}
		if seen[tpl.ID] {
			t.Errorf("duplicate template ID %s", tpl.ID)
		}
		seen[tpl.ID] = true
		for _, ex := range tpl.Exercises {
			if ex.Sets <= 0 || ex.Reps <= 0 {
				t.Errorf("%s: exercise %q has sets=%d reps=%d", tpl.ID, ex.Name, ex.Sets, ex.Reps)
			}
		}
	}
}
