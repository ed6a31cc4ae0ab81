// Package feedback maps quiz accuracy to motivational messages and study
// tips. Bucket boundaries are exact and inclusive at the lower edge; only
// the message choice within a bucket is randomized.
package feedback

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Level is a feedback bucket derived from accuracy.
type Level string

const (
	Excellent Level = "excellent"
	Good      Level = "good"
	Okay      Level = "okay"
	NeedsWork Level = "needs_work"
)

// Bucket maps accuracy to its feedback level. Boundaries round up: exactly
// 0.8 is excellent, 0.6 good, 0.4 okay.
func Bucket(accuracy float64) Level {
	switch {
	case accuracy >= 0.8:
		return Excellent
	case accuracy >= 0.6:
		return Good
	case accuracy >= 0.4:
		return Okay
	default:
		return NeedsWork
	}
}

var templates = map[Level][]string{
	Excellent: {
		"Outstanding work! You've really mastered this material.",
		"Excellent! Your hard work is clearly paying off.",
		"Brilliant score! You're ready for tougher challenges.",
	},
	Good: {
		"Good job! You're well on your way.",
		"Nice work! A little more practice and you'll have this down.",
		"Solid performance! Keep the momentum going.",
	},
	Okay: {
		"Not bad! Review the ones you missed and try again.",
		"You're getting there. Focus on the tricky spots.",
		"A fair attempt. Another pass will make it click.",
	},
	NeedsWork: {
		"Keep at it! Every attempt teaches you something.",
		"Don't be discouraged. Go over the basics and retry.",
		"This topic needs more time. Slow down and rebuild from the fundamentals.",
	},
}

// Generator produces feedback messages. The random source only picks which
// template within a bucket is used; inject a seeded one in tests.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a feedback generator. A nil rng gets a time-seeded
// one.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate returns a motivational message for the accuracy, with the subject
// appended for context when present. Accuracy is clamped to [0, 1].
func (g *Generator) Generate(accuracy float64, subject string) string {
	if accuracy < 0 {
		accuracy = 0
	}
	if accuracy > 1 {
		accuracy = 1
	}

	pool := templates[Bucket(accuracy)]
	msg := pool[g.rng.Intn(len(pool))]

	if s := strings.TrimSpace(subject); s != "" {
		msg = fmt.Sprintf("%s Great work on %s!", msg, s)
	}
	return msg
}
