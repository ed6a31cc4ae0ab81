package studyplan_test

import (
	"testing"

	"github.com/studypal/engine/internal/classify"
	"github.com/studypal/engine/internal/studyplan"
)

func TestGenerate(t *testing.T) {
	plan, err := studyplan.Generate("Python Basics", 10, classify.Easy)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if plan.Subject != "Python Basics" || plan.Difficulty != classify.Easy {
		t.Errorf("plan header = %q/%v", plan.Subject, plan.Difficulty)
	}
	if plan.NumDays < 3 || plan.NumDays > 7 {
		t.Errorf("NumDays = %d, want within 3..7", plan.NumDays)
	}
	if len(plan.Days) != plan.NumDays {
		t.Errorf("len(Days) = %d, want NumDays %d", len(plan.Days), plan.NumDays)
	}

	// Every template topic appears exactly once across the schedule.
	var total int
	for i, day := range plan.Days {
		if day.Day != i+1 {
			t.Errorf("Days[%d].Day = %d, want %d", i, day.Day, i+1)
		}
		if day.TotalMinutes != len(day.Topics)*day.MinutesPerTopic {
			t.Errorf("day %d minutes inconsistent: %+v", day.Day, day)
		}
		total += len(day.Topics)
	}
	if total != 5 {
		t.Errorf("scheduled %d topics, want all 5 template topics", total)
	}
}

func TestGenerate_DayRangeAcrossTemplates(t *testing.T) {
	for _, subject := range studyplan.Subjects() {
		for _, difficulty := range studyplan.Difficulties(subject) {
			plan, err := studyplan.Generate(subject, 6, difficulty)
			if err != nil {
				t.Fatalf("Generate(%q, %v) error = %v", subject, difficulty, err)
			}
			if plan.NumDays < 3 || plan.NumDays > 7 {
				t.Errorf("Generate(%q, %v) NumDays = %d, want within 3..7", subject, difficulty, plan.NumDays)
			}
		}
	}
}

func TestGenerate_InputErrors(t *testing.T) {
	tests := []struct {
		name       string
		subject    string
		hours      float64
		difficulty classify.Difficulty
	}{
		{"unknown subject", "Underwater Basket Weaving", 5, classify.Easy},
		{"unavailable difficulty", "Python Basics", 5, classify.Hard},
		{"zero hours", "Python Basics", 0, classify.Easy},
		{"negative hours", "Python Basics", -2, classify.Easy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := studyplan.Generate(tt.subject, tt.hours, tt.difficulty); err == nil {
				t.Error("Generate() expected error, got nil")
			}
		})
	}
}

func TestSubjectsSorted(t *testing.T) {
	subjects := studyplan.Subjects()
	if len(subjects) == 0 {
		t.Fatal("Subjects() is empty")
	}
	for i := 1; i < len(subjects); i++ {
		if subjects[i-1] > subjects[i] {
			t.Errorf("Subjects() not sorted: %v", subjects)
		}
	}
}

func TestDifficulties(t *testing.T) {
	got := studyplan.Difficulties("Python Basics")
	if len(got) != 2 || got[0] != classify.Easy || got[1] != classify.Medium {
		t.Errorf("Difficulties() = %v, want [easy medium]", got)
	}
	if studyplan.Difficulties("nope") != nil {
		t.Error("Difficulties() for unknown subject should be nil")
	}
}
