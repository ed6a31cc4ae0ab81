package feedback

// SkillLevel grades overall performance across many quizzes.
type SkillLevel string

const (
	Beginner     SkillLevel = "beginner"
	Intermediate SkillLevel = "intermediate"
	Advanced     SkillLevel = "advanced"
)

// Trend compares early scores against recent ones.
type Trend string

const (
	Improving Trend = "improving"
	Stable    Trend = "stable"
	Declining Trend = "declining"
)

// PerformanceMetrics aggregates a score history.
type PerformanceMetrics struct {
	AvgScore     float64    `json:"avg_score"`
	TotalQuizzes int        `json:"total_quizzes"`
	Level        SkillLevel `json:"level"`
	Trend        Trend      `json:"trend"`
}

// Metrics summarizes a chronological list of quiz scores in [0, 1]. The
// trend compares the first three scores against the last three with a 0.1
// dead band; fewer than four scores always read stable.
func Metrics(scores []float64) PerformanceMetrics {
	m := PerformanceMetrics{Level: Beginner, Trend: Stable}
	if len(scores) == 0 {
		return m
	}

	var sum float64
	for _, s := range scores {
		sum += s
	}
	m.AvgScore = sum / float64(len(scores))
	m.TotalQuizzes = len(scores)

	switch {
	case m.AvgScore >= 0.8:
		m.Level = Advanced
	case m.AvgScore >= 0.6:
		m.Level = Intermediate
	}

	if len(scores) > 3 {
		first := mean(scores[:3])
		last := mean(scores[len(scores)-3:])
		switch {
		case last > first+0.1:
			m.Trend = Improving
		case last < first-0.1:
			m.Trend = Declining
		}
	}
	return m
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
