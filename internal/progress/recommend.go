package progress

import "github.com/studypal/engine/internal/classify"

// Topic bucket thresholds. Topics with fewer than minAttempts land in
// neither bucket: not enough signal either way.
const (
	minAttempts     = 3
	weakThreshold   = 0.6
	strongThreshold = 0.8
)

// Remediation sizes: weak topics get a larger practice quiz than the
// challenge quiz strong topics get.
const (
	weakQuizCount   = 5
	strongQuizCount = 3
)

// StepType distinguishes recommendation kinds.
type StepType string

const (
	StepReview StepType = "review"
	StepQuiz   StepType = "quiz"
)

// Step is one next-step recommendation.
type Step struct {
	Type       StepType            `json:"type"`
	Topic      string              `json:"topic"`
	Difficulty classify.Difficulty `json:"difficulty"`
	Count      int                 `json:"count,omitempty"`
	Reason     string              `json:"reason"`
}

// Profile is the derived learning-path view of a user: per-topic stats plus
// an ordered next-step list. Recomputed from the attempt log on every
// request, never stored as independent state.
type Profile struct {
	UserID     string      `json:"user_id"`
	TopicStats []TopicStat `json:"topic_stats"`
	NextSteps  []Step      `json:"next_steps"`
}

// BuildProfile derives a learning-path profile from an attempt log. Weak
// topics (attempts >= 3, accuracy < 0.6) each get a review step and an easy
// practice quiz; strong topics (attempts >= 3, accuracy > 0.8) each get a
// hard challenge quiz. Weak steps precede strong steps, and within a bucket
// topics keep their first-seen order. When neither bucket has members the
// single default step keeps the list non-empty.
func BuildProfile(userID string, attempts []Attempt) Profile {
	stats := orderedStats(ComputeStats(attempts))

	var weak, strong []TopicStat
	for _, s := range stats {
		if s.Attempts < minAttempts {
			continue
		}
		switch {
		case s.Accuracy < weakThreshold:
			weak = append(weak, s)
		case s.Accuracy > strongThreshold:
			strong = append(strong, s)
		}
	}

	var steps []Step
	for _, s := range weak {
		steps = append(steps,
			Step{
				Type:       StepReview,
				Topic:      s.Topic,
				Difficulty: classify.Easy,
				Reason:     "Score below 60%",
			},
			Step{
				Type:       StepQuiz,
				Topic:      s.Topic,
				Difficulty: classify.Easy,
				Count:      weakQuizCount,
				Reason:     "Practice to improve",
			},
		)
	}
	for _, s := range strong {
		steps = append(steps, Step{
			Type:       StepQuiz,
			Topic:      s.Topic,
			Difficulty: classify.Hard,
			Count:      strongQuizCount,
			Reason:     "Mastery high, challenge yourself",
		})
	}
	if len(steps) == 0 {
		steps = append(steps, Step{
			Type:       StepQuiz,
			Topic:      "General Knowledge",
			Difficulty: classify.Medium,
			Count:      weakQuizCount,
			Reason:     "Start your journey",
		})
	}

	return Profile{
		UserID:     userID,
		TopicStats: stats,
		NextSteps:  steps,
	}
}
