// Package studyplan generates day-by-day study schedules from a template
// topic list for a subject and difficulty. Output is structured data only;
// any export formatting belongs to the caller.
package studyplan

import (
	"fmt"
	"sort"
	"time"

	"github.com/studypal/engine/internal/classify"
)

const (
	minDays = 3
	maxDays = 7
)

// DaySchedule is one day of the plan.
type DaySchedule struct {
	Day             int      `json:"day"`
	Topics          []string `json:"topics"`
	MinutesPerTopic int      `json:"minutes_per_topic"`
	TotalMinutes    int      `json:"total_minutes"`
}

// Plan distributes a subject's topics over 3-7 days of study.
type Plan struct {
	Subject     string              `json:"subject"`
	Difficulty  classify.Difficulty `json:"difficulty"`
	TotalHours  float64             `json:"total_hours"`
	NumDays     int                 `json:"num_days"`
	HoursPerDay float64             `json:"hours_per_day"`
	CreatedAt   time.Time           `json:"created_at"`
	Days        []DaySchedule       `json:"daily_schedule"`
}

// Generate builds a plan for the subject at the given difficulty. Unknown
// subjects or difficulties and non-positive hours are input errors; the
// error message names what is available.
func Generate(subject string, totalHours float64, difficulty classify.Difficulty) (Plan, error) {
	byDifficulty, ok := templates[subject]
	if !ok {
		return Plan{}, fmt.Errorf("unknown subject %q (available: %v)", subject, Subjects())
	}
	topics, ok := byDifficulty[difficulty]
	if !ok {
		return Plan{}, fmt.Errorf("difficulty %q not available for %q (available: %v)",
			difficulty, subject, Difficulties(subject))
	}
	if totalHours <= 0 {
		return Plan{}, fmt.Errorf("total hours must be positive, got %g", totalHours)
	}

	numTopics := len(topics)
	numDays := numTopics
	if numDays < minDays {
		numDays = minDays
	}
	if numDays > maxDays {
		numDays = maxDays
	}

	hoursPerDay := totalHours / float64(numDays)
	minutesPerTopic := int(hoursPerDay * 60 * float64(numDays) / float64(numTopics))

	plan := Plan{
		Subject:     subject,
		Difficulty:  difficulty,
		TotalHours:  totalHours,
		NumDays:     numDays,
		HoursPerDay: float64(int(hoursPerDay*10)) / 10,
		CreatedAt:   time.Now(),
	}

	for day, dayTopics := range distributeTopics(topics, numDays) {
		plan.Days = append(plan.Days, DaySchedule{
			Day:             day + 1,
			Topics:          dayTopics,
			MinutesPerTopic: minutesPerTopic,
			TotalMinutes:    len(dayTopics) * minutesPerTopic,
		})
	}
	return plan, nil
}

// distributeTopics splits topics across numDays contiguous groups as evenly
// as possible. Boundaries use integer arithmetic so every topic lands in
// exactly one day regardless of the topic count.
func distributeTopics(topics []string, numDays int) [][]string {
	n := len(topics)
	days := make([][]string, numDays)
	for day := 0; day < numDays; day++ {
		start := day * n / numDays
		end := (day + 1) * n / numDays
		days[day] = append([]string(nil), topics[start:end]...)
	}
	return days
}

// Subjects lists subjects a plan can be generated for.
func Subjects() []string {
	out := make([]string, 0, len(templates))
	for s := range templates {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Difficulties lists the difficulty levels available for a subject.
func Difficulties(subject string) []classify.Difficulty {
	byDifficulty, ok := templates[subject]
	if !ok {
		return nil
	}
	var out []classify.Difficulty
	for _, d := range classify.Levels {
		if _, ok := byDifficulty[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
